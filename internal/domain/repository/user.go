package repository

import (
	"context"

	"bodhira/internal/domain/entity"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// FindByUsername retrieves a user by their username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// Create creates a new user account.
	Create(ctx context.Context, user *entity.User) error
	// Update updates an existing user account.
	Update(ctx context.Context, user *entity.User) error
	// Delete deletes a user account by username.
	Delete(ctx context.Context, username string) error
}
