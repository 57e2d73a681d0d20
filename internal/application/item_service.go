package application

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/shareit-app/backend/internal/domain"
	bookingDomain "github.com/shareit-app/backend/internal/domain/booking"
	itemDomain "github.com/shareit-app/backend/internal/domain/item"
	requestDomain "github.com/shareit-app/backend/internal/domain/request"
	userDomain "github.com/shareit-app/backend/internal/domain/user"
)

// CreateItemRequest holds the data needed to list a new item.
type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId"`
}

// UpdateItemRequest holds the partial update of an item. Nil fields stay
// unchanged.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// CreateCommentRequest holds a new comment's text.
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// ItemService is the application service orchestrating item use cases.
type ItemService struct {
	items    itemDomain.Repository
	comments itemDomain.CommentRepository
	bookings bookingDomain.Repository
	requests requestDomain.Repository
	users    userDomain.Repository
	logger   *zap.Logger
}

// NewItemService creates a new ItemService.
func NewItemService(
	items itemDomain.Repository,
	comments itemDomain.CommentRepository,
	bookings bookingDomain.Repository,
	requests requestDomain.Repository,
	users userDomain.Repository,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		items:    items,
		comments: comments,
		bookings: bookings,
		requests: requests,
		users:    users,
		logger:   logger,
	}
}

// Create lists a new item for the owner, optionally tied to the item
// request it answers.
func (s *ItemService) Create(ctx context.Context, ownerID int64, req CreateItemRequest) (*ItemDTO, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}
	if req.RequestID != nil {
		if _, err := s.requests.FindByID(ctx, *req.RequestID); err != nil {
			return nil, err
		}
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	it, err := itemDomain.NewItem(ownerID, req.Name, req.Description, available, req.RequestID)
	if err != nil {
		return nil, err
	}

	saved, err := s.items.Save(ctx, it)
	if err != nil {
		return nil, err
	}
	result := toItemDTO(saved, nil)
	return &result, nil
}

// Update applies a partial update to the owner's item. A non-owner gets a
// not-found error.
func (s *ItemService) Update(ctx context.Context, ownerID, itemID int64, req UpdateItemRequest) (*ItemDTO, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !it.IsOwnedBy(ownerID) {
		return nil, domain.NewNotFoundError("Item", itemID)
	}
	if err := it.Update(req.Name, req.Description, req.Available); err != nil {
		return nil, err
	}

	updated, err := s.items.Update(ctx, it)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.FindByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	result := toItemDTO(updated, comments)
	return &result, nil
}

// GetByID retrieves one item with its comments. The owner additionally
// sees the item's last and next bookings.
func (s *ItemService) GetByID(ctx context.Context, userID, itemID int64) (*ItemDTO, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.FindByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	result := toItemDTO(it, comments)

	if it.IsOwnedBy(userID) {
		past, err := s.bookings.FindPastByItem(ctx, itemID)
		if err != nil {
			return nil, err
		}
		future, err := s.bookings.FindFutureByItem(ctx, itemID)
		if err != nil {
			return nil, err
		}
		result.LastBooking = firstBookingShort(past)
		result.NextBooking = firstBookingShort(future)
	}
	return &result, nil
}

// GetAllByOwner retrieves the owner's items with comments and last/next
// booking annotations, ordered by item ID.
func (s *ItemService) GetAllByOwner(ctx context.Context, ownerID int64) ([]ItemDTO, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}
	items, err := s.items.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	last, err := s.bookings.FindLastForOwnerItems(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	next, err := s.bookings.FindNextForOwnerItems(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	lastByItem := bookingPerItem(last)
	nextByItem := bookingPerItem(next)

	dtos := make([]ItemDTO, len(items))
	for i, it := range items {
		comments, err := s.comments.FindByItemID(ctx, it.ID())
		if err != nil {
			return nil, err
		}
		dto := toItemDTO(it, comments)
		dto.LastBooking = toBookingShortDTO(lastByItem[it.ID()])
		dto.NextBooking = toBookingShortDTO(nextByItem[it.ID()])
		dtos[i] = dto
	}
	return dtos, nil
}

// Search retrieves available items matching the text. Blank text yields an
// empty result without touching the store.
func (s *ItemService) Search(ctx context.Context, text string) ([]ItemDTO, error) {
	if strings.TrimSpace(text) == "" {
		return []ItemDTO{}, nil
	}
	items, err := s.items.Search(ctx, text)
	if err != nil {
		return nil, err
	}
	dtos := make([]ItemDTO, len(items))
	for i, it := range items {
		dtos[i] = toItemDTO(it, nil)
	}
	return dtos, nil
}

// AddComment lets a user comment on an item they have finished booking.
func (s *ItemService) AddComment(ctx context.Context, authorID, itemID int64, req CreateCommentRequest) (*CommentDTO, error) {
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		return nil, err
	}
	finished, err := s.bookings.FindFinishedByItemAndBooker(ctx, itemID, authorID)
	if err != nil {
		return nil, err
	}
	if len(finished) == 0 {
		return nil, domain.NewValidationError("user has no finished booking of this item")
	}

	c, err := itemDomain.NewComment(itemID, authorID, author.Name(), req.Text)
	if err != nil {
		return nil, err
	}
	saved, err := s.comments.Save(ctx, c)
	if err != nil {
		return nil, err
	}
	result := toCommentDTO(saved)
	return &result, nil
}

// --- Helpers ---

func firstBookingShort(bookings []*bookingDomain.Booking) *BookingShortDTO {
	if len(bookings) == 0 {
		return nil
	}
	return toBookingShortDTO(bookings[0])
}

// bookingPerItem folds an ordered booking list into one booking per item.
// The first booking seen for an item wins, so the input order decides which
// one that is.
func bookingPerItem(bookings []*bookingDomain.Booking) map[int64]*bookingDomain.Booking {
	byItem := make(map[int64]*bookingDomain.Booking, len(bookings))
	for _, b := range bookings {
		if _, ok := byItem[b.Item().ID]; !ok {
			byItem[b.Item().ID] = b
		}
	}
	return byItem
}
