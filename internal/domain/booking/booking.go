package booking

import (
	"time"

	"github.com/shareit-app/backend/internal/domain"
)

// ItemSummary is the slice of an item a booking needs to carry: enough to
// display it and to resolve ownership without another fetch.
type ItemSummary struct {
	ID      int64
	Name    string
	OwnerID int64
}

// UserSummary is the slice of a user a booking carries for display.
type UserSummary struct {
	ID   int64
	Name string
}

// Booking is the aggregate root for one reservation of an item over the
// half-open interval [start, end).
type Booking struct {
	id     int64
	start  time.Time
	end    time.Time
	status Status
	item   ItemSummary
	booker UserSummary
}

// NewBooking creates a booking in WAITING status, pending persistence.
func NewBooking(booker UserSummary, item ItemSummary, start, end time.Time) (*Booking, error) {
	if !start.Before(end) {
		return nil, domain.NewValidationError("booking start must be before end")
	}
	if booker.ID == item.OwnerID {
		return nil, domain.NewValidationError("owner cannot book his own item")
	}
	return &Booking{
		start:  start,
		end:    end,
		status: StatusWaiting,
		item:   item,
		booker: booker,
	}, nil
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(id int64, start, end time.Time, status Status, item ItemSummary, booker UserSummary) *Booking {
	return &Booking{
		id:     id,
		start:  start,
		end:    end,
		status: status,
		item:   item,
		booker: booker,
	}
}

// ID returns the booking's identifier.
func (b *Booking) ID() int64 { return b.id }

// Start returns the inclusive start instant.
func (b *Booking) Start() time.Time { return b.start }

// End returns the exclusive end instant.
func (b *Booking) End() time.Time { return b.end }

// Status returns the current booking status.
func (b *Booking) Status() Status { return b.status }

// Item returns the booked item's summary.
func (b *Booking) Item() ItemSummary { return b.item }

// Booker returns the booking user's summary.
func (b *Booking) Booker() UserSummary { return b.booker }

// IsBooker reports whether the given user created this booking.
func (b *Booking) IsBooker(userID int64) bool { return b.booker.ID == userID }

// IsOwner reports whether the given user owns the booked item.
func (b *Booking) IsOwner(userID int64) bool { return b.item.OwnerID == userID }

// VisibleTo reports whether the given user may see this booking.
func (b *Booking) VisibleTo(userID int64) bool {
	return b.IsBooker(userID) || b.IsOwner(userID)
}

// Approve transitions the booking from WAITING to APPROVED.
func (b *Booking) Approve() error {
	if !b.status.CanTransitionTo(StatusApproved) {
		return domain.NewValidationError("status cannot be changed if status is not WAITING")
	}
	b.status = StatusApproved
	return nil
}

// Reject transitions the booking from WAITING to REJECTED.
func (b *Booking) Reject() error {
	if !b.status.CanTransitionTo(StatusRejected) {
		return domain.NewValidationError("status cannot be changed if status is not WAITING")
	}
	b.status = StatusRejected
	return nil
}

// Cancel transitions the booking from WAITING to CANCELLED.
func (b *Booking) Cancel() error {
	if !b.status.CanTransitionTo(StatusCancelled) {
		return domain.NewValidationError("only a waiting booking can be cancelled")
	}
	b.status = StatusCancelled
	return nil
}
