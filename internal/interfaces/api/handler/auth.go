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

// AuthHandler handles registration, login and device settings.
type AuthHandler struct {
	authService service.AuthService
	userService service.UserService
	log         logger.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, userService service.UserService, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		log:         log,
	}
}

// Register creates a new account and returns a bearer token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	token, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appErrors.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, appErrors.ErrUserAlreadyExists):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "user already exists"})
		default:
			h.log.Error("Registration failed", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "registration failed"})
		}
	}

	return c.JSON(http.StatusCreated, dto.NewTokenResponse(token))
}

// Login exchanges credentials for a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	token, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, appErrors.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "incorrect username or password"})
		}
		h.log.Error(fmt.Sprintf("Login failed for user %s", req.Username), err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "login failed"})
	}

	return c.JSON(http.StatusOK, dto.NewTokenResponse(token))
}

// RegisterDevice stores the caller's device token for push notifications.
func (h *AuthHandler) RegisterDevice(c echo.Context) error {
	username := middleware.Username(c)

	var req dto.RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := h.userService.RegisterDevice(c.Request().Context(), username, req); err != nil {
		switch {
		case errors.Is(err, appErrors.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, appErrors.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		default:
			h.log.Error(fmt.Sprintf("Device registration failed for user %s", username), err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "device registration failed"})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "message": "Device registered for notifications"})
}

// ToggleNotifications enables or disables push notifications for the caller.
func (h *AuthHandler) ToggleNotifications(c echo.Context) error {
	username := middleware.Username(c)

	var req dto.ToggleNotificationsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := h.userService.SetNotificationsEnabled(c.Request().Context(), username, req.Enabled); err != nil {
		if errors.Is(err, appErrors.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		}
		h.log.Error(fmt.Sprintf("Failed to toggle notifications for user %s", username), err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update notification settings"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"status": "ok", "notifications_enabled": req.Enabled})
}
