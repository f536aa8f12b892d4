package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"bodhira/internal/application/dto"
	"bodhira/internal/domain/entity"
	"bodhira/internal/infrastructure/database/sqlite"
	"bodhira/internal/infrastructure/scheduler"
	appErrors "bodhira/internal/pkg/errors"
	"bodhira/internal/pkg/logger"

	"gorm.io/gorm"
)

func newTestSchedulerService(t *testing.T, db *gorm.DB) SchedulerService {
	t.Helper()
	log := logger.New()
	return NewSchedulerService(scheduler.NewScheduler(log), sqlite.NewReminderRepository(db), &fakeNotifier{result: true}, log)
}

type userFixture struct {
	userSvc      UserService
	reminderSvc  ReminderService
	schedulerSvc SchedulerService
	db           *gorm.DB
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()
	db := newTestDB(t)
	log := logger.New()
	userRepo := sqlite.NewUserRepository(db)
	reminderRepo := sqlite.NewReminderRepository(db)
	schedulerSvc := newTestSchedulerService(t, db)
	return &userFixture{
		userSvc:      NewUserService(userRepo, reminderRepo, schedulerSvc, log),
		reminderSvc:  NewReminderService(reminderRepo, schedulerSvc, log),
		schedulerSvc: schedulerSvc,
		db:           db,
	}
}

func (f *userFixture) seedUser(t *testing.T, username string) {
	t.Helper()
	user := &entity.User{Username: username, PasswordHash: "x", NotificationsEnabled: true}
	if err := f.db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func TestRegisterDevice(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	f.seedUser(t, "alice")

	err := f.userSvc.RegisterDevice(ctx, "alice", dto.RegisterDeviceRequest{DeviceToken: "tok-123", Platform: "ios"})
	if err != nil {
		t.Fatalf("RegisterDevice: %v", err)
	}

	var user entity.User
	if err := f.db.Where("username = ?", "alice").First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.DeviceToken == nil || *user.DeviceToken != "tok-123" {
		t.Errorf("device token not stored")
	}
	if user.DevicePlatform == nil || *user.DevicePlatform != "ios" {
		t.Errorf("device platform not stored")
	}
	if !user.CanReceivePush() {
		t.Error("user with registered device should be push-eligible")
	}
}

func TestRegisterDeviceInvalidPlatform(t *testing.T) {
	f := newUserFixture(t)
	f.seedUser(t, "alice")

	err := f.userSvc.RegisterDevice(context.Background(), "alice", dto.RegisterDeviceRequest{DeviceToken: "tok", Platform: "blackberry"})
	if !errors.Is(err, appErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSetNotificationsEnabled(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	f.seedUser(t, "alice")

	if err := f.userSvc.SetNotificationsEnabled(ctx, "alice", false); err != nil {
		t.Fatalf("SetNotificationsEnabled: %v", err)
	}

	var user entity.User
	if err := f.db.Where("username = ?", "alice").First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.NotificationsEnabled {
		t.Error("notifications still enabled after disable")
	}
	if user.CanReceivePush() {
		t.Error("user with disabled notifications must not be push-eligible")
	}
}

func TestUpdateProfileName(t *testing.T) {
	f := newUserFixture(t)
	f.seedUser(t, "alice")

	profile, err := f.userSvc.UpdateProfileName(context.Background(), "alice", dto.ProfileUpdateRequest{Name: "Alice A."})
	if err != nil {
		t.Fatalf("UpdateProfileName: %v", err)
	}
	if profile.Name == nil || *profile.Name != "Alice A." {
		t.Errorf("profile name = %v; want Alice A.", profile.Name)
	}
}

func TestGetProfileUnknownUser(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.userSvc.GetProfile(context.Background(), "nobody")
	if !errors.Is(err, appErrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteAccountRemovesRemindersAndTriggers(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	f.seedUser(t, "alice")

	resp, err := f.reminderSvc.CreateReminder(ctx, "alice", dto.CreateReminderRequest{
		Type: "meditation", Hour: 6, Minute: 30, Period: "AM", Message: "Morning sit",
	})
	if err != nil {
		t.Fatalf("seed reminder: %v", err)
	}

	if err := f.userSvc.DeleteAccount(ctx, "alice"); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}

	impl := f.schedulerSvc.(*schedulerService)
	if impl.cronScheduler.HasJob(fmt.Sprintf("reminder_%d", resp.ID)) {
		t.Error("trigger still live after account deletion")
	}

	var reminderCount, userCount int64
	f.db.Model(&entity.Reminder{}).Count(&reminderCount)
	f.db.Model(&entity.User{}).Where("username = ?", "alice").Count(&userCount)
	if reminderCount != 0 {
		t.Errorf("reminders remaining = %d; want 0", reminderCount)
	}
	if userCount != 0 {
		t.Errorf("user rows remaining = %d; want 0", userCount)
	}
}
