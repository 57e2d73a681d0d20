package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/shareit-app/backend/internal/domain"
	itemDomain "github.com/shareit-app/backend/internal/domain/item"
	requestDomain "github.com/shareit-app/backend/internal/domain/request"
	userDomain "github.com/shareit-app/backend/internal/domain/user"
)

// CreateItemRequestRequest holds the description of a wanted item.
type CreateItemRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

// RequestService is the application service orchestrating item request use
// cases.
type RequestService struct {
	requests requestDomain.Repository
	items    itemDomain.Repository
	users    userDomain.Repository
	logger   *zap.Logger
}

// NewRequestService creates a new RequestService.
func NewRequestService(
	requests requestDomain.Repository,
	items itemDomain.Repository,
	users userDomain.Repository,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		requests: requests,
		items:    items,
		users:    users,
		logger:   logger,
	}
}

// Create records that the user is looking for an item.
func (s *RequestService) Create(ctx context.Context, requestorID int64, req CreateItemRequestRequest) (*ItemRequestDTO, error) {
	if _, err := s.users.FindByID(ctx, requestorID); err != nil {
		return nil, err
	}
	r, err := requestDomain.NewItemRequest(requestorID, req.Description)
	if err != nil {
		return nil, err
	}
	saved, err := s.requests.Save(ctx, r)
	if err != nil {
		return nil, err
	}
	result := toItemRequestDTO(saved, nil)
	return &result, nil
}

// GetOwn retrieves the user's own requests, newest first, each with the
// items offered for it.
func (s *RequestService) GetOwn(ctx context.Context, requestorID int64) ([]ItemRequestDTO, error) {
	if _, err := s.users.FindByID(ctx, requestorID); err != nil {
		return nil, err
	}
	requests, err := s.requests.FindByRequestorID(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

// GetOthers retrieves requests from other users, newest first, windowed by
// from and size.
func (s *RequestService) GetOthers(ctx context.Context, requestorID int64, from, size int) ([]ItemRequestDTO, error) {
	if _, err := s.users.FindByID(ctx, requestorID); err != nil {
		return nil, err
	}
	page, err := domain.NewPage(from, size)
	if err != nil {
		return nil, err
	}
	requests, err := s.requests.FindOthers(ctx, requestorID, page)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

// GetByID retrieves one request with the items offered for it. Any
// existing user may look at any request.
func (s *RequestService) GetByID(ctx context.Context, userID, requestID int64) (*ItemRequestDTO, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	r, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	items, err := s.items.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	result := toItemRequestDTO(r, items)
	return &result, nil
}

func (s *RequestService) attachItems(ctx context.Context, requests []*requestDomain.ItemRequest) ([]ItemRequestDTO, error) {
	dtos := make([]ItemRequestDTO, len(requests))
	for i, r := range requests {
		items, err := s.items.FindByRequestID(ctx, r.ID())
		if err != nil {
			return nil, err
		}
		dtos[i] = toItemRequestDTO(r, items)
	}
	return dtos, nil
}
