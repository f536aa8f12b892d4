package service

import (
	"context"

	"bodhira/internal/domain/entity"
)

// SchedulerService converts persisted reminders into live recurring
// triggers and keeps the two in step. Triggers are volatile: they exist
// only in process memory and are rebuilt from the reminder store by
// Rehydrate on every startup.
type SchedulerService interface {
	// Install registers a daily trigger for the reminder, replacing any
	// trigger previously installed for the same reminder ID. Safe to
	// call repeatedly; the net effect is always exactly one live
	// trigger per reminder.
	Install(ctx context.Context, reminder *entity.Reminder) error
	// Uninstall removes the trigger for a reminder ID. A no-op when no
	// trigger is installed.
	Uninstall(ctx context.Context, reminderID uint)
	// Rehydrate reads all reminders from the store and installs a
	// trigger for each. Run once at startup, before Start.
	Rehydrate(ctx context.Context) error
	// Start begins firing installed triggers as their schedules elapse.
	Start()
	// Stop halts firing without discarding installed triggers.
	Stop()
}
