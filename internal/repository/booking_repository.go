package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shareit-app/backend/internal/domain"
	bookingDomain "github.com/shareit-app/backend/internal/domain/booking"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	StartTime time.Time `gorm:"not null;index"`
	EndTime   time.Time `gorm:"not null"`
	Status    string    `gorm:"size:20;not null;index"`
	ItemID    int64     `gorm:"not null;index"`
	BookerID  int64     `gorm:"not null;index"`

	Item   ItemModel `gorm:"foreignKey:ItemID"`
	Booker UserModel `gorm:"foreignKey:BookerID"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of
// booking.Repository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// Save persists a new booking.
func (r *GormBookingRepository) Save(ctx context.Context, b *bookingDomain.Booking) (*bookingDomain.Booking, error) {
	model := &BookingModel{
		StartTime: b.Start(),
		EndTime:   b.End(),
		Status:    b.Status().String(),
		ItemID:    b.Item().ID,
		BookerID:  b.Booker().ID,
	}
	if err := r.db.WithContext(ctx).Omit("Item", "Booker").Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}
	return bookingDomain.Reconstruct(model.ID, b.Start(), b.End(), b.Status(), b.Item(), b.Booker()), nil
}

// FindByIDWithItemAndBooker retrieves one booking with item and booker
// populated.
func (r *GormBookingRepository) FindByIDWithItemAndBooker(ctx context.Context, id int64) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", id)
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	return toDomainBooking(&model)
}

// FindByBooker retrieves the booker's bookings matching the state, ordered
// by start descending.
func (r *GormBookingRepository) FindByBooker(ctx context.Context, bookerID int64, state bookingDomain.State, page *domain.Page) ([]*bookingDomain.Booking, error) {
	query := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("bookings.booker_id = ?", bookerID)
	return r.listByState(query, state, page)
}

// FindByOwner retrieves bookings on the owner's items matching the state,
// ordered by start descending.
func (r *GormBookingRepository) FindByOwner(ctx context.Context, ownerID int64, state bookingDomain.State, page *domain.Page) ([]*bookingDomain.Booking, error) {
	query := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)
	return r.listByState(query, state, page)
}

func (r *GormBookingRepository) listByState(query *gorm.DB, state bookingDomain.State, page *domain.Page) ([]*bookingDomain.Booking, error) {
	now := time.Now().UTC()
	switch state {
	case bookingDomain.StateAll:
	case bookingDomain.StateCurrent:
		query = query.Where("bookings.start_time <= ? AND bookings.end_time > ?", now, now)
	case bookingDomain.StatePast:
		query = query.Where("bookings.end_time < ?", now)
	case bookingDomain.StateFuture:
		query = query.Where("bookings.start_time > ?", now)
	case bookingDomain.StateWaiting:
		query = query.Where("bookings.status = ?", bookingDomain.StatusWaiting.String())
	case bookingDomain.StateRejected:
		query = query.Where("bookings.status = ?", bookingDomain.StatusRejected.String())
	default:
		return nil, domain.NewInvalidStateError(string(state))
	}

	query = query.Order("bookings.start_time DESC")
	if page != nil {
		query = query.Offset(page.Offset).Limit(page.Limit)
	}

	var models []BookingModel
	if err := query.Preload("Item").Preload("Booker").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return toDomainBookings(models)
}

// FindLastForOwnerItems retrieves bookings on the owner's items that ended
// in the past, most recent end first.
func (r *GormBookingRepository) FindLastForOwnerItems(ctx context.Context, ownerID int64) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ? AND bookings.end_time < ?", ownerID, time.Now().UTC()).
		Order("bookings.end_time DESC").
		Preload("Item").
		Preload("Booker").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find last bookings for owner items: %w", err)
	}
	return toDomainBookings(models)
}

// FindNextForOwnerItems retrieves bookings on the owner's items that start
// in the future, soonest start first.
func (r *GormBookingRepository) FindNextForOwnerItems(ctx context.Context, ownerID int64) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ? AND bookings.start_time > ?", ownerID, time.Now().UTC()).
		Order("bookings.start_time ASC").
		Preload("Item").
		Preload("Booker").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find next bookings for owner items: %w", err)
	}
	return toDomainBookings(models)
}

// FindPastByItem retrieves non-rejected bookings of the item that have
// already started, most recent end first.
func (r *GormBookingRepository) FindPastByItem(ctx context.Context, itemID int64) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Where("item_id = ? AND start_time < ? AND status <> ?", itemID, time.Now().UTC(), bookingDomain.StatusRejected.String()).
		Order("end_time DESC").
		Preload("Item").
		Preload("Booker").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find past bookings by item: %w", err)
	}
	return toDomainBookings(models)
}

// FindFutureByItem retrieves non-rejected bookings of the item that start
// in the future, soonest start first.
func (r *GormBookingRepository) FindFutureByItem(ctx context.Context, itemID int64) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Where("item_id = ? AND start_time > ? AND status <> ?", itemID, time.Now().UTC(), bookingDomain.StatusRejected.String()).
		Order("start_time ASC").
		Preload("Item").
		Preload("Booker").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find future bookings by item: %w", err)
	}
	return toDomainBookings(models)
}

// FindFinishedByItemAndBooker retrieves the booker's bookings of the item
// whose end is in the past.
func (r *GormBookingRepository) FindFinishedByItemAndBooker(ctx context.Context, itemID, bookerID int64) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Where("item_id = ? AND booker_id = ? AND end_time < ?", itemID, bookerID, time.Now().UTC()).
		Preload("Item").
		Preload("Booker").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find finished bookings: %w", err)
	}
	return toDomainBookings(models)
}

// Transition applies fn to the booking and persists the resulting status,
// all inside one transaction holding a row lock on the booking. Concurrent
// transitions of the same booking serialize here instead of both observing
// WAITING.
func (r *GormBookingRepository) Transition(ctx context.Context, id int64, fn func(*bookingDomain.Booking) error) (*bookingDomain.Booking, error) {
	var result *bookingDomain.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model BookingModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("Booking", id)
			}
			return fmt.Errorf("failed to lock booking: %w", err)
		}
		if err := tx.First(&model.Item, model.ItemID).Error; err != nil {
			return fmt.Errorf("failed to load booking item: %w", err)
		}
		if err := tx.First(&model.Booker, model.BookerID).Error; err != nil {
			return fmt.Errorf("failed to load booking booker: %w", err)
		}

		b, err := toDomainBooking(&model)
		if err != nil {
			return err
		}
		if err := fn(b); err != nil {
			return err
		}
		if err := tx.Model(&BookingModel{}).Where("id = ?", id).
			Update("status", b.Status().String()).Error; err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}
		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// --- Conversion helpers ---

func toDomainBooking(m *BookingModel) (*bookingDomain.Booking, error) {
	status, err := bookingDomain.ParseStatus(m.Status)
	if err != nil {
		return nil, err
	}
	return bookingDomain.Reconstruct(
		m.ID,
		m.StartTime,
		m.EndTime,
		status,
		bookingDomain.ItemSummary{ID: m.Item.ID, Name: m.Item.Name, OwnerID: m.Item.OwnerID},
		bookingDomain.UserSummary{ID: m.Booker.ID, Name: m.Booker.Name},
	), nil
}

func toDomainBookings(models []BookingModel) ([]*bookingDomain.Booking, error) {
	bookings := make([]*bookingDomain.Booking, len(models))
	for i := range models {
		b, err := toDomainBooking(&models[i])
		if err != nil {
			return nil, err
		}
		bookings[i] = b
	}
	return bookings, nil
}
