package repository

import (
	"context"

	"bodhira/internal/domain/entity"
)

// ReminderRepository defines the interface for reminder data operations.
type ReminderRepository interface {
	// FindByID retrieves a reminder by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Reminder, error)
	// FindByUserID retrieves all reminders for a specific user.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error)
	// FindAll retrieves all reminders (used for rebuilding triggers on startup).
	FindAll(ctx context.Context) ([]*entity.Reminder, error)
	// Create creates a new reminder. Returns the ID of the created reminder.
	Create(ctx context.Context, reminder *entity.Reminder) (uint, error)
	// Delete deletes a reminder by its ID.
	Delete(ctx context.Context, id uint) error
	// DeleteByUserID deletes all reminders for a specific user.
	DeleteByUserID(ctx context.Context, userID string) error
}
