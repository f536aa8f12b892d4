package service

import (
	"context"
	"errors"
	"fmt"

	"bodhira/internal/application/dto"
	"bodhira/internal/domain/constant"
	"bodhira/internal/domain/entity"
	"bodhira/internal/domain/repository"
	appErrors "bodhira/internal/pkg/errors"
	"bodhira/internal/pkg/logger"
	"bodhira/internal/pkg/timeconv"

	"gorm.io/gorm"
)

type reminderService struct {
	reminderRepo repository.ReminderRepository
	schedulerSvc SchedulerService
	log          logger.Logger
}

// NewReminderService creates a new instance of ReminderService implementation.
func NewReminderService(
	reminderRepo repository.ReminderRepository,
	schedulerSvc SchedulerService,
	log logger.Logger,
) ReminderService {
	return &reminderService{
		reminderRepo: reminderRepo,
		schedulerSvc: schedulerSvc,
		log:          log,
	}
}

// CreateReminder converts the requested time to 24-hour form, persists
// the reminder and installs its trigger. The durable write happens
// first; the trigger is a derived projection of the stored record.
func (s *reminderService) CreateReminder(ctx context.Context, userID string, req dto.CreateReminderRequest) (dto.ReminderResponse, error) {
	if err := req.Validate(); err != nil {
		return dto.ReminderResponse{}, err
	}

	reminder := &entity.Reminder{
		UserID:  userID,
		Type:    constant.ReminderType(req.Type),
		Hour:    timeconv.To24Hour(req.Hour, req.Period),
		Minute:  req.Minute,
		Message: req.Message,
	}

	reminderID, err := s.reminderRepo.Create(ctx, reminder)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to create reminder for user %s", userID), err)
		return dto.ReminderResponse{}, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	if err := s.schedulerSvc.Install(ctx, reminder); err != nil {
		// The record is durable; the trigger will be rebuilt on the
		// next rehydration even if installation fails now.
		s.log.Error(fmt.Sprintf("Failed to install trigger for reminder %d", reminderID), err)
		return dto.ReminderResponse{}, err
	}

	s.log.Info(fmt.Sprintf("Created reminder %d for user %s at %02d:%02d", reminderID, userID, reminder.Hour, reminder.Minute))
	return dto.ToReminderResponse(reminder), nil
}

// ListReminders retrieves all reminders for the user.
func (s *reminderService) ListReminders(ctx context.Context, userID string) ([]dto.ReminderResponse, error) {
	reminders, err := s.reminderRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list reminders for user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToReminderResponseList(reminders), nil
}

// DeleteReminder removes a reminder owned by the user and uninstalls
// its trigger. Reminders owned by other users are reported as not
// found.
func (s *reminderService) DeleteReminder(ctx context.Context, userID string, reminderID uint) error {
	reminder, err := s.reminderRepo.FindByID(ctx, reminderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.ErrReminderNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to find reminder %d for deletion", reminderID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	if reminder.UserID != userID {
		return appErrors.ErrReminderNotFound
	}

	if err := s.reminderRepo.Delete(ctx, reminderID); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete reminder %d", reminderID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	s.schedulerSvc.Uninstall(ctx, reminderID)
	s.log.Info(fmt.Sprintf("Deleted reminder %d for user %s", reminderID, userID))
	return nil
}
