package service

import (
	"context"
	"fmt"

	"bodhira/internal/domain/repository"
	"bodhira/internal/infrastructure/push"
	"bodhira/internal/pkg/logger"
)

type notifierService struct {
	userRepo   repository.UserRepository
	pushClient *push.Client
	log        logger.Logger
}

// NewNotifierService creates a new instance of NotifierService implementation.
func NewNotifierService(userRepo repository.UserRepository, pushClient *push.Client, log logger.Logger) NotifierService {
	return &notifierService{
		userRepo:   userRepo,
		pushClient: pushClient,
		log:        log,
	}
}

// Deliver looks up the user's device registration and pushes the
// notification through FCM. All failures are logged and absorbed.
func (s *notifierService) Deliver(ctx context.Context, userID, title, body string, data map[string]string) bool {
	user, err := s.userRepo.FindByUsername(ctx, userID)
	if err != nil {
		s.log.Warn(fmt.Sprintf("User %s not found for notification delivery", userID))
		return false
	}

	if user.DeviceToken == nil || *user.DeviceToken == "" {
		s.log.Warn(fmt.Sprintf("No device token for user %s", userID))
		return false
	}

	if !user.NotificationsEnabled {
		s.log.Info(fmt.Sprintf("Notifications disabled for user %s", userID))
		return false
	}

	return s.pushClient.Send(ctx, *user.DeviceToken, title, body, data)
}
