package application

import (
	"context"

	"go.uber.org/zap"

	userDomain "github.com/shareit-app/backend/internal/domain/user"
)

// CreateUserRequest holds the data needed to register a user.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// UpdateUserRequest holds the partial update of a user. Nil fields stay
// unchanged.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserService is the application service orchestrating user use cases.
type UserService struct {
	users  userDomain.Repository
	logger *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(users userDomain.Repository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Create registers a new user. A duplicate email surfaces as a conflict.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserDTO, error) {
	u, err := userDomain.NewUser(req.Name, req.Email)
	if err != nil {
		return nil, err
	}
	saved, err := s.users.Save(ctx, u)
	if err != nil {
		return nil, err
	}
	result := toUserDTO(saved)
	return &result, nil
}

// Update applies a partial update to a user.
func (s *UserService) Update(ctx context.Context, userID int64, req UpdateUserRequest) (*UserDTO, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := u.Update(req.Name, req.Email); err != nil {
		return nil, err
	}
	updated, err := s.users.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	result := toUserDTO(updated)
	return &result, nil
}

// GetByID retrieves one user.
func (s *UserService) GetByID(ctx context.Context, userID int64) (*UserDTO, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := toUserDTO(u)
	return &result, nil
}

// GetAll retrieves every user ordered by ID.
func (s *UserService) GetAll(ctx context.Context) ([]UserDTO, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = toUserDTO(u)
	}
	return dtos, nil
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, userID int64) error {
	return s.users.Delete(ctx, userID)
}
