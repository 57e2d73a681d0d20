package user

import "context"

// Repository defines the persistence contract for users.
type Repository interface {
	// Save persists a new user and returns it with its assigned ID.
	// A duplicate email surfaces as a conflict error.
	Save(ctx context.Context, u *User) (*User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, u *User) (*User, error)

	// FindByID retrieves a user by ID.
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindAll retrieves every user ordered by ID.
	FindAll(ctx context.Context) ([]*User, error)

	// Delete removes a user by ID.
	Delete(ctx context.Context, id int64) error
}
