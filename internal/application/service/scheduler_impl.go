package service

import (
	"context"
	"fmt"

	"bodhira/internal/domain/entity"
	"bodhira/internal/domain/repository"
	"bodhira/internal/infrastructure/scheduler"
	appErrors "bodhira/internal/pkg/errors"
	"bodhira/internal/pkg/logger"
)

type schedulerService struct {
	cronScheduler *scheduler.Scheduler
	reminderRepo  repository.ReminderRepository
	notifier      NotifierService
	log           logger.Logger
}

// NewSchedulerService creates a new instance of SchedulerService implementation.
func NewSchedulerService(
	cronScheduler *scheduler.Scheduler,
	reminderRepo repository.ReminderRepository,
	notifier NotifierService,
	log logger.Logger,
) SchedulerService {
	return &schedulerService{
		cronScheduler: cronScheduler,
		reminderRepo:  reminderRepo,
		notifier:      notifier,
		log:           log,
	}
}

// reminderJobID derives the trigger key for a reminder. The key is the
// sole handle used for replacement and removal.
func reminderJobID(reminderID uint) string {
	return fmt.Sprintf("reminder_%d", reminderID)
}

// Install registers a daily trigger for the reminder under its job ID,
// replacing any previous trigger for the same reminder.
func (s *schedulerService) Install(ctx context.Context, reminder *entity.Reminder) error {
	if !reminder.HasValidTime() {
		return fmt.Errorf("%w: reminder %d has invalid time %d:%d", appErrors.ErrScheduling, reminder.ID, reminder.Hour, reminder.Minute)
	}

	jobID := reminderJobID(reminder.ID)
	if err := s.cronScheduler.UpsertDailyJob(jobID, reminder.Hour, reminder.Minute, s.fireFunc(reminder)); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
	}
	s.log.Info(fmt.Sprintf("Installed trigger %s firing daily at %02d:%02d", jobID, reminder.Hour, reminder.Minute))
	return nil
}

// fireFunc builds the recurring job body for a reminder. The user ID,
// message and type are captured at install time; callers that change a
// reminder must re-Install it. A failed delivery is logged and the
// trigger stays live for its next occurrence.
func (s *schedulerService) fireFunc(reminder *entity.Reminder) func() {
	reminderID := reminder.ID
	userID := reminder.UserID
	message := reminder.Message
	reminderType := reminder.Type
	title := reminderType.Title()

	return func() {
		s.log.Info(fmt.Sprintf("Firing reminder %d for user %s", reminderID, userID))
		data := map[string]string{
			"type":          "reminder",
			"reminder_type": reminderType.String(),
		}
		// The cron runner executes each job in its own goroutine, so a
		// slow delivery cannot hold up trigger bookkeeping or other jobs.
		if s.notifier.Deliver(context.Background(), userID, title, message, data) {
			s.log.Info(fmt.Sprintf("Notification delivered for reminder %d to user %s", reminderID, userID))
		} else {
			s.log.Warn(fmt.Sprintf("Could not deliver notification for reminder %d to user %s", reminderID, userID))
		}
	}
}

// Uninstall removes the trigger for a reminder ID if one is installed.
func (s *schedulerService) Uninstall(ctx context.Context, reminderID uint) {
	s.cronScheduler.RemoveJob(reminderJobID(reminderID))
}

// Rehydrate reads the full reminder set from the store and installs a
// trigger for each. Records that fail installation are logged and
// skipped; they never abort the rest of the rebuild.
func (s *schedulerService) Rehydrate(ctx context.Context) error {
	s.log.Info("Rebuilding reminder triggers from database...")
	reminders, err := s.reminderRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to retrieve reminders for trigger rebuild", err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	installed := 0
	for _, reminder := range reminders {
		if err := s.Install(ctx, reminder); err != nil {
			s.log.Error(fmt.Sprintf("Skipping reminder %d during trigger rebuild", reminder.ID), err)
			continue
		}
		installed++
	}

	s.log.Info(fmt.Sprintf("Trigger rebuild complete. Installed %d of %d reminders.", installed, len(reminders)))
	return nil
}

// Start begins firing installed triggers.
func (s *schedulerService) Start() {
	s.cronScheduler.Start()
}

// Stop halts firing; installed triggers survive a stop/start cycle
// within the same process.
func (s *schedulerService) Stop() {
	s.cronScheduler.Stop()
}
