package booking

import (
	"context"

	"github.com/shareit-app/backend/internal/domain"
)

// Repository defines the persistence contract for bookings. Every query that
// returns bookings populates the item and booker summaries, so callers never
// trigger further loads.
type Repository interface {
	// Save persists a new booking and returns it with its assigned ID.
	Save(ctx context.Context, b *Booking) (*Booking, error)

	// FindByIDWithItemAndBooker retrieves one booking with its item and
	// booker populated.
	FindByIDWithItemAndBooker(ctx context.Context, id int64) (*Booking, error)

	// FindByBooker retrieves the booker's bookings matching the state,
	// ordered by start descending. A nil page returns all rows.
	FindByBooker(ctx context.Context, bookerID int64, state State, page *domain.Page) ([]*Booking, error)

	// FindByOwner retrieves bookings on the owner's items matching the
	// state, ordered by start descending. A nil page returns all rows.
	FindByOwner(ctx context.Context, ownerID int64, state State, page *domain.Page) ([]*Booking, error)

	// FindLastForOwnerItems retrieves bookings on the owner's items that
	// ended in the past, most recent end first.
	FindLastForOwnerItems(ctx context.Context, ownerID int64) ([]*Booking, error)

	// FindNextForOwnerItems retrieves bookings on the owner's items that
	// start in the future, soonest start first.
	FindNextForOwnerItems(ctx context.Context, ownerID int64) ([]*Booking, error)

	// FindPastByItem retrieves non-rejected bookings of the item that have
	// already started, most recent end first.
	FindPastByItem(ctx context.Context, itemID int64) ([]*Booking, error)

	// FindFutureByItem retrieves non-rejected bookings of the item that
	// start in the future, soonest start first.
	FindFutureByItem(ctx context.Context, itemID int64) ([]*Booking, error)

	// FindFinishedByItemAndBooker retrieves the booker's bookings of the
	// item whose end is in the past. Used to gate commenting.
	FindFinishedByItemAndBooker(ctx context.Context, itemID, bookerID int64) ([]*Booking, error)

	// Transition loads the booking with item and booker under a row lock,
	// applies fn, and persists the resulting status in the same
	// transaction. Two concurrent transitions of one booking serialize on
	// the lock, so both can never observe WAITING.
	Transition(ctx context.Context, id int64, fn func(*Booking) error) (*Booking, error)
}
