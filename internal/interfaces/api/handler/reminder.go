package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"bodhira/internal/application/dto"
	"bodhira/internal/application/service"
	appErrors "bodhira/internal/pkg/errors"
	"bodhira/internal/pkg/logger"
	"bodhira/internal/interfaces/api/middleware"

	"github.com/labstack/echo/v4"
)

// ReminderHandler handles reminder CRUD for the authenticated user.
type ReminderHandler struct {
	reminderService service.ReminderService
	log             logger.Logger
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService service.ReminderService, log logger.Logger) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
		log:             log,
	}
}

// CreateReminder creates a reminder and installs its daily trigger.
func (h *ReminderHandler) CreateReminder(c echo.Context) error {
	username := middleware.Username(c)

	var req dto.CreateReminderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	reminder, err := h.reminderService.CreateReminder(c.Request().Context(), username, req)
	if err != nil {
		switch {
		case errors.Is(err, appErrors.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, appErrors.ErrScheduling):
			h.log.Error(fmt.Sprintf("Failed to schedule reminder for user %s", username), err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to schedule reminder"})
		default:
			h.log.Error(fmt.Sprintf("Failed to create reminder for user %s", username), err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create reminder"})
		}
	}

	return c.JSON(http.StatusCreated, reminder)
}

// ListReminders returns all reminders for the caller in 12-hour form.
func (h *ReminderHandler) ListReminders(c echo.Context) error {
	username := middleware.Username(c)

	reminders, err := h.reminderService.ListReminders(c.Request().Context(), username)
	if err != nil {
		h.log.Error(fmt.Sprintf("Failed to list reminders for user %s", username), err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to list reminders"})
	}

	return c.JSON(http.StatusOK, reminders)
}

// DeleteReminder removes a reminder and its trigger.
func (h *ReminderHandler) DeleteReminder(c echo.Context) error {
	username := middleware.Username(c)

	reminderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid reminder id"})
	}

	if err := h.reminderService.DeleteReminder(c.Request().Context(), username, uint(reminderID)); err != nil {
		if errors.Is(err, appErrors.ErrReminderNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "reminder not found"})
		}
		h.log.Error(fmt.Sprintf("Failed to delete reminder %d for user %s", reminderID, username), err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete reminder"})
	}

	return c.NoContent(http.StatusNoContent)
}
