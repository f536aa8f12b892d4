package service

import (
	"context"

	"bodhira/internal/application/dto"
)

// UserService defines the interface for profile and device settings.
type UserService interface {
	// GetProfile retrieves the user's profile.
	GetProfile(ctx context.Context, username string) (dto.ProfileResponse, error)
	// UpdateProfileName updates the user's display name.
	UpdateProfileName(ctx context.Context, username string, req dto.ProfileUpdateRequest) (dto.ProfileResponse, error)
	// RegisterDevice stores the user's device token for push notifications.
	RegisterDevice(ctx context.Context, username string, req dto.RegisterDeviceRequest) error
	// SetNotificationsEnabled enables or disables push notifications.
	SetNotificationsEnabled(ctx context.Context, username string, enabled bool) error
	// DeleteAccount removes the user, their reminders and all live triggers.
	DeleteAccount(ctx context.Context, username string) error
}
