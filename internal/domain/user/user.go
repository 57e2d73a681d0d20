package user

import (
	"strings"

	"github.com/shareit-app/backend/internal/domain"
)

// User is the aggregate root for an account.
type User struct {
	id    int64
	name  string
	email string
}

// NewUser creates a user pending persistence; the store assigns the ID.
func NewUser(name, email string) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("user name is required")
	}
	if !isValidEmail(email) {
		return nil, domain.NewValidationError("user email is invalid")
	}
	return &User{name: name, email: email}, nil
}

// Reconstruct rebuilds a User from persistence data (no validation).
func Reconstruct(id int64, name, email string) *User {
	return &User{id: id, name: name, email: email}
}

// ID returns the user's identifier.
func (u *User) ID() int64 { return u.id }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Email returns the unique email address.
func (u *User) Email() string { return u.email }

// Update applies a partial update; nil fields keep their current value.
func (u *User) Update(name, email *string) error {
	if name != nil {
		if strings.TrimSpace(*name) == "" {
			return domain.NewValidationError("user name must not be blank")
		}
		u.name = *name
	}
	if email != nil {
		if !isValidEmail(*email) {
			return domain.NewValidationError("user email is invalid")
		}
		u.email = *email
	}
	return nil
}

func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}
