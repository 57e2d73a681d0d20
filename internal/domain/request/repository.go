package request

import (
	"context"

	"github.com/shareit-app/backend/internal/domain"
)

// Repository defines the persistence contract for item requests.
type Repository interface {
	// Save persists a new request and returns it with its assigned ID.
	Save(ctx context.Context, r *ItemRequest) (*ItemRequest, error)

	// FindByID retrieves a request by ID.
	FindByID(ctx context.Context, id int64) (*ItemRequest, error)

	// FindByRequestorID retrieves a user's own requests, newest first.
	FindByRequestorID(ctx context.Context, requestorID int64) ([]*ItemRequest, error)

	// FindOthers retrieves requests created by other users, newest first,
	// optionally windowed by page.
	FindOthers(ctx context.Context, requestorID int64, page *domain.Page) ([]*ItemRequest, error)
}
