package item

import (
	"strings"

	"github.com/shareit-app/backend/internal/domain"
)

// Item is the aggregate root for a shareable possession.
type Item struct {
	id          int64
	name        string
	description string
	available   bool
	ownerID     int64
	requestID   *int64
}

// NewItem creates an item pending persistence; the store assigns the ID.
// requestID links the item to the request it fulfills, when there is one.
func NewItem(ownerID int64, name, description string, available bool, requestID *int64) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("item name is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, domain.NewValidationError("item description is required")
	}
	return &Item{
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
	}, nil
}

// Reconstruct rebuilds an Item from persistence data (no validation).
func Reconstruct(id int64, name, description string, available bool, ownerID int64, requestID *int64) *Item {
	return &Item{
		id:          id,
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
	}
}

// ID returns the item's identifier.
func (i *Item) ID() int64 { return i.id }

// Name returns the item's name.
func (i *Item) Name() string { return i.name }

// Description returns the item's description.
func (i *Item) Description() string { return i.description }

// Available reports whether the item can currently be booked.
func (i *Item) Available() bool { return i.available }

// OwnerID returns the owning user's ID.
func (i *Item) OwnerID() int64 { return i.ownerID }

// RequestID returns the originating item request ID, or nil.
func (i *Item) RequestID() *int64 { return i.requestID }

// IsOwnedBy reports whether the given user owns this item.
func (i *Item) IsOwnedBy(userID int64) bool { return i.ownerID == userID }

// Update applies a partial update; nil fields keep their current value.
func (i *Item) Update(name, description *string, available *bool) error {
	if name != nil {
		if strings.TrimSpace(*name) == "" {
			return domain.NewValidationError("item name must not be blank")
		}
		i.name = *name
	}
	if description != nil {
		if strings.TrimSpace(*description) == "" {
			return domain.NewValidationError("item description must not be blank")
		}
		i.description = *description
	}
	if available != nil {
		i.available = *available
	}
	return nil
}
