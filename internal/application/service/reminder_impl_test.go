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

	"github.com/google/uuid"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:remindersvc_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := sqlite.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

type reminderFixture struct {
	svc           ReminderService
	cronScheduler *scheduler.Scheduler
	db            *gorm.DB
}

func newReminderFixture(t *testing.T) *reminderFixture {
	t.Helper()
	db := newTestDB(t)
	log := logger.New()
	reminderRepo := sqlite.NewReminderRepository(db)
	cronScheduler := scheduler.NewScheduler(log)
	schedulerSvc := NewSchedulerService(cronScheduler, reminderRepo, &fakeNotifier{result: true}, log)
	return &reminderFixture{
		svc:           NewReminderService(reminderRepo, schedulerSvc, log),
		cronScheduler: cronScheduler,
		db:            db,
	}
}

func TestCreateReminderStoresTwentyFourHourForm(t *testing.T) {
	f := newReminderFixture(t)

	resp, err := f.svc.CreateReminder(context.Background(), "u1", dto.CreateReminderRequest{
		Type: "hydration", Hour: 8, Minute: 0, Period: "AM", Message: "Drink water",
	})
	if err != nil {
		t.Fatalf("CreateReminder: %v", err)
	}

	var stored entity.Reminder
	if err := f.db.First(&stored, resp.ID).Error; err != nil {
		t.Fatalf("load stored reminder: %v", err)
	}
	if stored.Hour != 8 || stored.Minute != 0 {
		t.Errorf("stored time = %02d:%02d; want 08:00", stored.Hour, stored.Minute)
	}
	if resp.Hour != 8 || resp.Period != "AM" {
		t.Errorf("response time = %d %s; want 8 AM", resp.Hour, resp.Period)
	}

	jobID := fmt.Sprintf("reminder_%d", resp.ID)
	if !f.cronScheduler.HasJob(jobID) {
		t.Fatalf("expected trigger %s after creation", jobID)
	}
}

func TestCreateReminderEveningConversion(t *testing.T) {
	f := newReminderFixture(t)

	resp, err := f.svc.CreateReminder(context.Background(), "u1", dto.CreateReminderRequest{
		Type: "journaling", Hour: 9, Minute: 0, Period: "PM", Message: "Write it down",
	})
	if err != nil {
		t.Fatalf("CreateReminder: %v", err)
	}

	var stored entity.Reminder
	if err := f.db.First(&stored, resp.ID).Error; err != nil {
		t.Fatalf("load stored reminder: %v", err)
	}
	if stored.Hour != 21 {
		t.Errorf("stored hour = %d; want 21", stored.Hour)
	}
	if resp.Hour != 9 || resp.Period != "PM" {
		t.Errorf("response time = %d %s; want 9 PM", resp.Hour, resp.Period)
	}
}

func TestCreateReminderRejectsInvalidType(t *testing.T) {
	f := newReminderFixture(t)

	_, err := f.svc.CreateReminder(context.Background(), "u1", dto.CreateReminderRequest{
		Type: "napping", Hour: 2, Minute: 0, Period: "PM", Message: "Nap",
	})
	if !errors.Is(err, appErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if got := f.cronScheduler.JobCount(); got != 0 {
		t.Fatalf("JobCount = %d; want 0 after rejected create", got)
	}
}

func TestListRemindersReturnsTwelveHourForm(t *testing.T) {
	f := newReminderFixture(t)
	ctx := context.Background()

	seed := []dto.CreateReminderRequest{
		{Type: "meditation", Hour: 12, Minute: 0, Period: "AM", Message: "Midnight calm"},
		{Type: "hydration", Hour: 12, Minute: 30, Period: "PM", Message: "Noon water"},
	}
	for _, req := range seed {
		if _, err := f.svc.CreateReminder(ctx, "u1", req); err != nil {
			t.Fatalf("seed create: %v", err)
		}
	}

	list, err := f.svc.ListReminders(ctx, "u1")
	if err != nil {
		t.Fatalf("ListReminders: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len(list) = %d; want 2", len(list))
	}
	// Sorted by stored 24-hour time: midnight (0:00) before noon (12:30).
	if list[0].Hour != 12 || list[0].Period != "AM" {
		t.Errorf("list[0] = %d %s; want 12 AM", list[0].Hour, list[0].Period)
	}
	if list[1].Hour != 12 || list[1].Period != "PM" {
		t.Errorf("list[1] = %d %s; want 12 PM", list[1].Hour, list[1].Period)
	}
}

func TestDeleteReminderRemovesTrigger(t *testing.T) {
	f := newReminderFixture(t)
	ctx := context.Background()

	resp, err := f.svc.CreateReminder(ctx, "u1", dto.CreateReminderRequest{
		Type: "activity", Hour: 7, Minute: 0, Period: "AM", Message: "Morning run",
	})
	if err != nil {
		t.Fatalf("CreateReminder: %v", err)
	}

	if err := f.svc.DeleteReminder(ctx, "u1", resp.ID); err != nil {
		t.Fatalf("DeleteReminder: %v", err)
	}

	jobID := fmt.Sprintf("reminder_%d", resp.ID)
	if f.cronScheduler.HasJob(jobID) {
		t.Fatalf("trigger %s still live after deletion", jobID)
	}

	var count int64
	f.db.Model(&entity.Reminder{}).Count(&count)
	if count != 0 {
		t.Fatalf("stored reminders = %d; want 0", count)
	}
}

func TestDeleteReminderEnforcesOwnership(t *testing.T) {
	f := newReminderFixture(t)
	ctx := context.Background()

	resp, err := f.svc.CreateReminder(ctx, "u1", dto.CreateReminderRequest{
		Type: "activity", Hour: 7, Minute: 0, Period: "AM", Message: "Morning run",
	})
	if err != nil {
		t.Fatalf("CreateReminder: %v", err)
	}

	err = f.svc.DeleteReminder(ctx, "u2", resp.ID)
	if !errors.Is(err, appErrors.ErrReminderNotFound) {
		t.Fatalf("expected ErrReminderNotFound for foreign reminder, got %v", err)
	}

	jobID := fmt.Sprintf("reminder_%d", resp.ID)
	if !f.cronScheduler.HasJob(jobID) {
		t.Fatal("foreign delete attempt must not remove the trigger")
	}
}

func TestDeleteReminderUnknownID(t *testing.T) {
	f := newReminderFixture(t)

	err := f.svc.DeleteReminder(context.Background(), "u1", 12345)
	if !errors.Is(err, appErrors.ErrReminderNotFound) {
		t.Fatalf("expected ErrReminderNotFound, got %v", err)
	}
}
