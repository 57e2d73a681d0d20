package request

import (
	"strings"
	"time"

	"github.com/shareit-app/backend/internal/domain"
)

// ItemRequest is a user's ask for an item that is not currently listed.
// Fulfilling items reference the request by ID; the request does not own them.
type ItemRequest struct {
	id          int64
	description string
	requestorID int64
	created     time.Time
}

// NewItemRequest creates a request pending persistence.
func NewItemRequest(requestorID int64, description string) (*ItemRequest, error) {
	if strings.TrimSpace(description) == "" {
		return nil, domain.NewValidationError("request description is required")
	}
	return &ItemRequest{
		description: description,
		requestorID: requestorID,
		created:     time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds an ItemRequest from persistence data.
func Reconstruct(id int64, description string, requestorID int64, created time.Time) *ItemRequest {
	return &ItemRequest{
		id:          id,
		description: description,
		requestorID: requestorID,
		created:     created,
	}
}

// ID returns the request's identifier.
func (r *ItemRequest) ID() int64 { return r.id }

// Description returns what the requestor is asking for.
func (r *ItemRequest) Description() string { return r.description }

// RequestorID returns the requesting user's ID.
func (r *ItemRequest) RequestorID() int64 { return r.requestorID }

// Created returns the creation timestamp.
func (r *ItemRequest) Created() time.Time { return r.created }
