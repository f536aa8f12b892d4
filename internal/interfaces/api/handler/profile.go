package handler

import (
	"errors"
	"fmt"
	"net/http"

	"bodhira/internal/application/dto"
	"bodhira/internal/application/service"
	appErrors "bodhira/internal/pkg/errors"
	"bodhira/internal/pkg/logger"
	"bodhira/internal/interfaces/api/middleware"

	"github.com/labstack/echo/v4"
)

// ProfileHandler handles profile reads and updates.
type ProfileHandler struct {
	userService service.UserService
	log         logger.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(userService service.UserService, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
		log:         log,
	}
}

// GetProfile returns the caller's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	username := middleware.Username(c)

	profile, err := h.userService.GetProfile(c.Request().Context(), username)
	if err != nil {
		if errors.Is(err, appErrors.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "profile not found"})
		}
		h.log.Error(fmt.Sprintf("Failed to get profile for user %s", username), err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get profile"})
	}

	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile updates the caller's display name.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	username := middleware.Username(c)

	var req dto.ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	profile, err := h.userService.UpdateProfileName(c.Request().Context(), username, req)
	if err != nil {
		switch {
		case errors.Is(err, appErrors.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, appErrors.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "profile not found"})
		default:
			h.log.Error(fmt.Sprintf("Failed to update profile for user %s", username), err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update profile"})
		}
	}

	return c.JSON(http.StatusOK, profile)
}

// DeleteAccount removes the caller's account, reminders and triggers.
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	username := middleware.Username(c)

	if err := h.userService.DeleteAccount(c.Request().Context(), username); err != nil {
		if errors.Is(err, appErrors.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		}
		h.log.Error(fmt.Sprintf("Failed to delete account for user %s", username), err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete account"})
	}

	return c.NoContent(http.StatusNoContent)
}
