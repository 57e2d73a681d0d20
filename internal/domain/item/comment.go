package item

import (
	"strings"
	"time"

	"github.com/shareit-app/backend/internal/domain"
)

// Comment is feedback left on an item by a user who finished renting it.
type Comment struct {
	id         int64
	text       string
	itemID     int64
	authorID   int64
	authorName string
	created    time.Time
}

// NewComment creates a comment pending persistence. The creation timestamp
// is set here, not by the caller.
func NewComment(itemID, authorID int64, authorName, text string) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("comment text must not be blank")
	}
	return &Comment{
		text:       text,
		itemID:     itemID,
		authorID:   authorID,
		authorName: authorName,
		created:    time.Now().UTC(),
	}, nil
}

// ReconstructComment rebuilds a Comment from persistence data.
func ReconstructComment(id int64, text string, itemID, authorID int64, authorName string, created time.Time) *Comment {
	return &Comment{
		id:         id,
		text:       text,
		itemID:     itemID,
		authorID:   authorID,
		authorName: authorName,
		created:    created,
	}
}

// ID returns the comment's identifier.
func (c *Comment) ID() int64 { return c.id }

// Text returns the comment body.
func (c *Comment) Text() string { return c.text }

// ItemID returns the commented item's ID.
func (c *Comment) ItemID() int64 { return c.itemID }

// AuthorID returns the authoring user's ID.
func (c *Comment) AuthorID() int64 { return c.authorID }

// AuthorName returns the authoring user's display name.
func (c *Comment) AuthorName() string { return c.authorName }

// Created returns the creation timestamp.
func (c *Comment) Created() time.Time { return c.created }
