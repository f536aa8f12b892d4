package service

import (
	"context"

	"bodhira/internal/application/dto"
)

// ReminderService defines the interface for reminder-related business logic.
type ReminderService interface {
	// CreateReminder stores a new reminder for the user and installs
	// its recurring trigger. Returns the created reminder in 12-hour
	// display form.
	CreateReminder(ctx context.Context, userID string, req dto.CreateReminderRequest) (dto.ReminderResponse, error)
	// ListReminders retrieves all reminders for the user in 12-hour
	// display form.
	ListReminders(ctx context.Context, userID string) ([]dto.ReminderResponse, error)
	// DeleteReminder removes a reminder owned by the user and
	// uninstalls its trigger.
	DeleteReminder(ctx context.Context, userID string, reminderID uint) error
}
