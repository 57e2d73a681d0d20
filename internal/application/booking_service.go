package application

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/shareit-app/backend/internal/domain"
	bookingDomain "github.com/shareit-app/backend/internal/domain/booking"
	itemDomain "github.com/shareit-app/backend/internal/domain/item"
	userDomain "github.com/shareit-app/backend/internal/domain/user"
	"github.com/shareit-app/backend/internal/events"
	"github.com/shareit-app/backend/internal/kafka"
)

// CreateBookingRequest holds the data needed to reserve an item.
type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// BookingService is the application service orchestrating booking use cases.
type BookingService struct {
	bookings bookingDomain.Repository
	items    itemDomain.Repository
	users    userDomain.Repository
	producer *kafka.Producer
	logger   *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookings bookingDomain.Repository,
	items itemDomain.Repository,
	users userDomain.Repository,
	producer *kafka.Producer,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		items:    items,
		users:    users,
		producer: producer,
		logger:   logger,
	}
}

// Create reserves an item for the booker. The booking starts out WAITING
// for the owner's decision.
func (s *BookingService) Create(ctx context.Context, bookerID int64, req CreateBookingRequest) (*BookingDTO, error) {
	booker, err := s.users.FindByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	item, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !item.Available() {
		return nil, domain.NewValidationError("item is not available for booking")
	}

	bk, err := bookingDomain.NewBooking(
		bookingDomain.UserSummary{ID: booker.ID(), Name: booker.Name()},
		bookingDomain.ItemSummary{ID: item.ID(), Name: item.Name(), OwnerID: item.OwnerID()},
		req.Start,
		req.End,
	)
	if err != nil {
		return nil, err
	}

	saved, err := s.bookings.Save(ctx, bk)
	if err != nil {
		return nil, err
	}

	evt := events.BookingCreatedEvent{
		BookingID:  saved.ID(),
		ItemID:     saved.Item().ID,
		OwnerID:    saved.Item().OwnerID,
		BookerID:   saved.Booker().ID,
		Start:      saved.Start(),
		End:        saved.End(),
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, events.BookingCreated, saved.ID(), evt)

	result := toBookingDTO(saved)
	return &result, nil
}

// SetApproval lets the item's owner approve or reject a WAITING booking.
// The whole decision runs under a row lock, so of two concurrent decisions
// only the first sees the booking WAITING.
func (s *BookingService) SetApproval(ctx context.Context, ownerID, bookingID int64, approved bool) (*BookingDTO, error) {
	bk, err := s.bookings.Transition(ctx, bookingID, func(b *bookingDomain.Booking) error {
		if !b.IsOwner(ownerID) {
			// A non-owner must not learn the booking exists.
			return domain.NewNotFoundError("Booking", bookingID)
		}
		if approved {
			return b.Approve()
		}
		return b.Reject()
	})
	if err != nil {
		return nil, err
	}

	eventType := events.BookingApproved
	if !approved {
		eventType = events.BookingRejected
	}
	s.publishDecision(ctx, eventType, bk)

	result := toBookingDTO(bk)
	return &result, nil
}

// Cancel lets the booker withdraw a WAITING booking.
func (s *BookingService) Cancel(ctx context.Context, bookerID, bookingID int64) (*BookingDTO, error) {
	bk, err := s.bookings.Transition(ctx, bookingID, func(b *bookingDomain.Booking) error {
		if !b.IsBooker(bookerID) {
			return domain.NewNotFoundError("Booking", bookingID)
		}
		return b.Cancel()
	})
	if err != nil {
		return nil, err
	}

	s.publishDecision(ctx, events.BookingCancelled, bk)

	result := toBookingDTO(bk)
	return &result, nil
}

// GetByID retrieves one booking, visible only to its booker or the item's
// owner.
func (s *BookingService) GetByID(ctx context.Context, userID, bookingID int64) (*BookingDTO, error) {
	bk, err := s.bookings.FindByIDWithItemAndBooker(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !bk.VisibleTo(userID) {
		return nil, domain.NewNotFoundError("Booking", bookingID)
	}
	result := toBookingDTO(bk)
	return &result, nil
}

// ListByBooker retrieves the booker's bookings filtered by state, newest
// start first.
func (s *BookingService) ListByBooker(ctx context.Context, bookerID int64, stateToken string, from, size int) ([]BookingDTO, error) {
	if _, err := s.users.FindByID(ctx, bookerID); err != nil {
		return nil, err
	}
	state, err := bookingDomain.ParseState(stateToken)
	if err != nil {
		return nil, err
	}
	page, err := domain.NewPage(from, size)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.FindByBooker(ctx, bookerID, state, page)
	if err != nil {
		return nil, err
	}
	return toBookingDTOs(bookings), nil
}

// ListByOwner retrieves bookings on the owner's items filtered by state,
// newest start first.
func (s *BookingService) ListByOwner(ctx context.Context, ownerID int64, stateToken string, from, size int) ([]BookingDTO, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}
	state, err := bookingDomain.ParseState(stateToken)
	if err != nil {
		return nil, err
	}
	page, err := domain.NewPage(from, size)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.FindByOwner(ctx, ownerID, state, page)
	if err != nil {
		return nil, err
	}
	return toBookingDTOs(bookings), nil
}

// --- Helpers ---

func (s *BookingService) publishDecision(ctx context.Context, eventType string, bk *bookingDomain.Booking) {
	evt := events.BookingDecisionEvent{
		BookingID:  bk.ID(),
		ItemID:     bk.Item().ID,
		OwnerID:    bk.Item().OwnerID,
		BookerID:   bk.Booker().ID,
		Status:     bk.Status().String(),
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, eventType, bk.ID(), evt)
}

func (s *BookingService) publishEvent(ctx context.Context, eventType string, bookingID int64, data interface{}) {
	if s.producer == nil {
		return
	}
	cloudEvent, err := kafka.NewCloudEvent("shareit-server", eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}
	key := strconv.FormatInt(bookingID, 10)
	if err := s.producer.PublishEvent(ctx, events.TopicBookingEvents, key, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", events.TopicBookingEvents),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
