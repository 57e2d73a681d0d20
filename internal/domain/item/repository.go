package item

import "context"

// Repository defines the persistence contract for items.
type Repository interface {
	// Save persists a new item and returns it with its assigned ID.
	Save(ctx context.Context, i *Item) (*Item, error)

	// Update persists changes to an existing item.
	Update(ctx context.Context, i *Item) (*Item, error)

	// FindByID retrieves an item by ID.
	FindByID(ctx context.Context, id int64) (*Item, error)

	// FindByOwnerID retrieves all items owned by a user, ordered by ID.
	FindByOwnerID(ctx context.Context, ownerID int64) ([]*Item, error)

	// FindByRequestID retrieves items fulfilling the given item request.
	FindByRequestID(ctx context.Context, requestID int64) ([]*Item, error)

	// Search retrieves available items whose name or description contains
	// the text, case-insensitively.
	Search(ctx context.Context, text string) ([]*Item, error)
}

// CommentRepository defines the persistence contract for comments.
type CommentRepository interface {
	// Save persists a new comment and returns it with its assigned ID.
	Save(ctx context.Context, c *Comment) (*Comment, error)

	// FindByItemID retrieves comments on an item, oldest first.
	FindByItemID(ctx context.Context, itemID int64) ([]*Comment, error)
}
