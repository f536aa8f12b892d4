package dto

import (
	"fmt"

	"bodhira/internal/domain/entity"
	appErrors "bodhira/internal/pkg/errors"
)

// ProfileResponse is the DTO for sending profile information to the client.
type ProfileResponse struct {
	Username             string  `json:"username"`
	Name                 *string `json:"name"`
	NotificationsEnabled bool    `json:"notifications_enabled"`
}

// ToProfileResponse converts an entity.User to a ProfileResponse DTO.
func ToProfileResponse(u *entity.User) ProfileResponse {
	return ProfileResponse{
		Username:             u.Username,
		Name:                 u.Name,
		NotificationsEnabled: u.NotificationsEnabled,
	}
}

// ProfileUpdateRequest is the DTO for updating the display name.
type ProfileUpdateRequest struct {
	Name string `json:"name"`
}

// Validate checks the profile update fields.
func (r ProfileUpdateRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", appErrors.ErrInvalidInput)
	}
	return nil
}
