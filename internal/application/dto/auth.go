package dto

import (
	"fmt"

	appErrors "bodhira/internal/pkg/errors"
)

// RegisterRequest is the DTO for creating a new account.
type RegisterRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Validate checks the registration fields.
func (r RegisterRequest) Validate() error {
	if r.Username == "" {
		return fmt.Errorf("%w: username is required", appErrors.ErrInvalidInput)
	}
	if r.Password == "" {
		return fmt.Errorf("%w: password is required", appErrors.ErrInvalidInput)
	}
	return nil
}

// LoginRequest is the DTO for exchanging credentials for a token.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// NewTokenResponse wraps a signed token in the response envelope.
func NewTokenResponse(token string) TokenResponse {
	return TokenResponse{AccessToken: token, TokenType: "bearer"}
}

// RegisterDeviceRequest is the DTO for registering a device token for
// push notifications.
type RegisterDeviceRequest struct {
	DeviceToken string `json:"device_token"`
	Platform    string `json:"platform"` // "ios", "android" or "web"
}

// Validate checks the device registration fields.
func (r RegisterDeviceRequest) Validate() error {
	if r.DeviceToken == "" {
		return fmt.Errorf("%w: device_token is required", appErrors.ErrInvalidInput)
	}
	switch r.Platform {
	case "ios", "android", "web":
		return nil
	}
	return fmt.Errorf("%w: platform must be one of ios, android, web", appErrors.ErrInvalidInput)
}

// ToggleNotificationsRequest is the DTO for enabling or disabling push
// notifications.
type ToggleNotificationsRequest struct {
	Enabled bool `json:"enabled"`
}
