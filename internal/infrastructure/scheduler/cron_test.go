package scheduler

import (
	"testing"
	"time"

	"bodhira/internal/pkg/logger"
)

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	return NewScheduler(logger.New())
}

func TestUpsertDailyJobAddsJob(t *testing.T) {
	s := newTestScheduler(t)

	if err := s.UpsertDailyJob("reminder_1", 8, 30, func() {}); err != nil {
		t.Fatalf("UpsertDailyJob: %v", err)
	}
	if !s.HasJob("reminder_1") {
		t.Fatal("expected job reminder_1 to be registered")
	}
	if got := s.JobCount(); got != 1 {
		t.Fatalf("JobCount = %d; want 1", got)
	}
}

func TestUpsertDailyJobReplacesExisting(t *testing.T) {
	s := newTestScheduler(t)

	if err := s.UpsertDailyJob("reminder_1", 8, 0, func() {}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := s.UpsertDailyJob("reminder_1", 21, 15, func() {}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if got := s.JobCount(); got != 1 {
		t.Fatalf("JobCount after replace = %d; want 1", got)
	}

	entries := s.GetEntries()
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d; want 1", len(entries))
	}
	// The surviving entry must fire at the replacement time, not the original.
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)
	next := entries[0].Schedule.Next(base)
	if next.Hour() != 21 || next.Minute() != 15 {
		t.Fatalf("next firing = %02d:%02d; want 21:15", next.Hour(), next.Minute())
	}
}

func TestRemoveJob(t *testing.T) {
	s := newTestScheduler(t)

	if err := s.UpsertDailyJob("reminder_1", 7, 0, func() {}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	s.RemoveJob("reminder_1")

	if s.HasJob("reminder_1") {
		t.Fatal("expected job reminder_1 to be removed")
	}
	if got := s.JobCount(); got != 0 {
		t.Fatalf("JobCount = %d; want 0", got)
	}
}

func TestRemoveJobUnknownIsNoop(t *testing.T) {
	s := newTestScheduler(t)

	if err := s.UpsertDailyJob("reminder_1", 7, 0, func() {}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	s.RemoveJob("reminder_99") // never registered

	if !s.HasJob("reminder_1") {
		t.Fatal("removing an unknown job must not touch other jobs")
	}
	if got := s.JobCount(); got != 1 {
		t.Fatalf("JobCount = %d; want 1", got)
	}
}

func TestDailySpec(t *testing.T) {
	if got := dailySpec(8, 0); got != "0 0 8 * * *" {
		t.Fatalf("dailySpec(8, 0) = %q; want %q", got, "0 0 8 * * *")
	}
	if got := dailySpec(21, 45); got != "0 45 21 * * *" {
		t.Fatalf("dailySpec(21, 45) = %q; want %q", got, "0 45 21 * * *")
	}
}
