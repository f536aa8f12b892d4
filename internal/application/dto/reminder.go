package dto

import (
	"fmt"
	"strings"

	"bodhira/internal/domain/constant"
	"bodhira/internal/domain/entity"
	appErrors "bodhira/internal/pkg/errors"
	"bodhira/internal/pkg/timeconv"
)

// CreateReminderRequest is the DTO for creating a new reminder. The
// hour arrives in 12-hour form with an AM/PM period; conversion to the
// 24-hour storage form happens in the service layer.
type CreateReminderRequest struct {
	Type    string `json:"type"`
	Hour    int    `json:"hour"`
	Minute  int    `json:"minute"`
	Period  string `json:"period"`
	Message string `json:"message"`
}

// Validate checks the request against the reminder field contracts.
func (r CreateReminderRequest) Validate() error {
	if !constant.ReminderType(r.Type).IsValid() {
		return fmt.Errorf("%w: type must be one of meditation, journaling, hydration, activity", appErrors.ErrInvalidInput)
	}
	if r.Hour < 1 || r.Hour > 12 {
		return fmt.Errorf("%w: hour must be between 1 and 12", appErrors.ErrInvalidInput)
	}
	if r.Minute < 0 || r.Minute > 59 {
		return fmt.Errorf("%w: minute must be between 0 and 59", appErrors.ErrInvalidInput)
	}
	if !strings.EqualFold(r.Period, timeconv.PeriodAM) && !strings.EqualFold(r.Period, timeconv.PeriodPM) {
		return fmt.Errorf("%w: period must be AM or PM", appErrors.ErrInvalidInput)
	}
	if r.Message == "" {
		return fmt.Errorf("%w: message is required", appErrors.ErrInvalidInput)
	}
	return nil
}

// ReminderResponse is the DTO for sending reminder information to the
// client, with the hour converted back to 12-hour form.
type ReminderResponse struct {
	ID      uint   `json:"id"`
	Type    string `json:"type"`
	Hour    int    `json:"hour"`
	Minute  int    `json:"minute"`
	Period  string `json:"period"`
	Message string `json:"message"`
}

// ToReminderResponse converts an entity.Reminder to a ReminderResponse DTO.
func ToReminderResponse(r *entity.Reminder) ReminderResponse {
	hour12, period := timeconv.To12Hour(r.Hour)
	return ReminderResponse{
		ID:      r.ID,
		Type:    r.Type.String(),
		Hour:    hour12,
		Minute:  r.Minute,
		Period:  period,
		Message: r.Message,
	}
}

// ToReminderResponseList converts a slice of entity.Reminder to a slice of ReminderResponse DTOs.
func ToReminderResponseList(reminders []*entity.Reminder) []ReminderResponse {
	list := make([]ReminderResponse, len(reminders))
	for i, r := range reminders {
		list[i] = ToReminderResponse(r)
	}
	return list
}
