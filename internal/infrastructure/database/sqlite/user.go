package sqlite

import (
	"context"
	"errors"
	"fmt"

	"bodhira/internal/domain/entity"
	"bodhira/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByUsername retrieves a user by their username.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s not found: %w", username, err)
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to find user by username %s: %w", username, err)
	}
	return &user, nil
}

// Create creates a new user account.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to create user %s: %w", user.Username, err)
	}
	return nil
}

// Update updates an existing user account.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	// Use Save to update all fields, including zero values
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to update user %s: %w", user.Username, err)
	}
	return nil
}

// Delete deletes a user account by username.
func (r *userRepository) Delete(ctx context.Context, username string) error {
	if err := r.db.WithContext(ctx).Where("username = ?", username).Delete(&entity.User{}).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete user %s: %w", username, err)
	}
	return nil
}
