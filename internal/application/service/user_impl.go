package service

import (
	"context"
	"errors"
	"fmt"

	"bodhira/internal/application/dto"
	"bodhira/internal/domain/entity"
	"bodhira/internal/domain/repository"
	appErrors "bodhira/internal/pkg/errors"
	"bodhira/internal/pkg/logger"

	"gorm.io/gorm"
)

type userService struct {
	userRepo     repository.UserRepository
	reminderRepo repository.ReminderRepository // needed for account deletion
	schedulerSvc SchedulerService
	log          logger.Logger
}

// NewUserService creates a new instance of UserService implementation.
func NewUserService(
	userRepo repository.UserRepository,
	reminderRepo repository.ReminderRepository,
	schedulerSvc SchedulerService,
	log logger.Logger,
) UserService {
	return &userService{
		userRepo:     userRepo,
		reminderRepo: reminderRepo,
		schedulerSvc: schedulerSvc,
		log:          log,
	}
}

// findUser fetches a user, translating a missing record into the
// application-level sentinel.
func (s *userService) findUser(ctx context.Context, username string) (*entity.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to find user %s", username), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return user, nil
}

// GetProfile retrieves the user's profile.
func (s *userService) GetProfile(ctx context.Context, username string) (dto.ProfileResponse, error) {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return dto.ProfileResponse{}, err
	}
	return dto.ToProfileResponse(user), nil
}

// UpdateProfileName updates the user's display name.
func (s *userService) UpdateProfileName(ctx context.Context, username string, req dto.ProfileUpdateRequest) (dto.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return dto.ProfileResponse{}, err
	}

	user, err := s.findUser(ctx, username)
	if err != nil {
		return dto.ProfileResponse{}, err
	}

	user.Name = &req.Name
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error(fmt.Sprintf("Failed to update profile name for user %s", username), err)
		return dto.ProfileResponse{}, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	s.log.Info(fmt.Sprintf("Updated profile name for user %s", username))
	return dto.ToProfileResponse(user), nil
}

// RegisterDevice stores the user's device token and platform.
func (s *userService) RegisterDevice(ctx context.Context, username string, req dto.RegisterDeviceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := s.findUser(ctx, username)
	if err != nil {
		return err
	}

	user.DeviceToken = &req.DeviceToken
	user.DevicePlatform = &req.Platform
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error(fmt.Sprintf("Failed to register device for user %s", username), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	s.log.Info(fmt.Sprintf("Registered %s device for user %s", req.Platform, username))
	return nil
}

// SetNotificationsEnabled enables or disables push notifications.
func (s *userService) SetNotificationsEnabled(ctx context.Context, username string, enabled bool) error {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return err
	}

	user.NotificationsEnabled = enabled
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error(fmt.Sprintf("Failed to toggle notifications for user %s", username), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	s.log.Info(fmt.Sprintf("Notifications for user %s set to %t", username, enabled))
	return nil
}

// DeleteAccount removes the user's reminders and their live triggers,
// then the account itself.
func (s *userService) DeleteAccount(ctx context.Context, username string) error {
	if _, err := s.findUser(ctx, username); err != nil {
		return err
	}

	// Uninstall triggers before dropping the rows so no firing can
	// outlive its reminder.
	reminders, err := s.reminderRepo.FindByUserID(ctx, username)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list reminders for user %s during account deletion", username), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	for _, reminder := range reminders {
		s.schedulerSvc.Uninstall(ctx, reminder.ID)
	}

	if err := s.reminderRepo.DeleteByUserID(ctx, username); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete reminders for user %s", username), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	if err := s.userRepo.Delete(ctx, username); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete account for user %s", username), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	s.log.Info(fmt.Sprintf("Deleted account and %d reminders for user %s", len(reminders), username))
	return nil
}
