package service

import (
	"context"
	"testing"

	"bodhira/internal/domain/entity"
	"bodhira/internal/infrastructure/database/sqlite"
	"bodhira/internal/infrastructure/push"
	"bodhira/internal/pkg/logger"

	"gorm.io/gorm"
)

// newDisabledNotifier builds a NotifierService over a push client with
// no credentials, which drops every send.
func newDisabledNotifier(t *testing.T, db *gorm.DB) NotifierService {
	t.Helper()
	t.Setenv("FIREBASE_SERVICE_ACCOUNT", "")
	log := logger.New()
	pushClient := push.NewClient(context.Background(), log)
	if pushClient.Enabled() {
		t.Fatal("expected push client without credentials to be disabled")
	}
	return NewNotifierService(sqlite.NewUserRepository(db), pushClient, log)
}

func TestDeliverUnknownUser(t *testing.T) {
	db := newTestDB(t)
	notifier := newDisabledNotifier(t, db)

	if notifier.Deliver(context.Background(), "nobody", "t", "b", nil) {
		t.Fatal("delivery to unknown user must report failure")
	}
}

func TestDeliverUserWithoutDevice(t *testing.T) {
	db := newTestDB(t)
	notifier := newDisabledNotifier(t, db)

	user := &entity.User{Username: "alice", PasswordHash: "x", NotificationsEnabled: true}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	if notifier.Deliver(context.Background(), "alice", "t", "b", nil) {
		t.Fatal("delivery without a device token must report failure")
	}
}

func TestDeliverNotificationsDisabled(t *testing.T) {
	db := newTestDB(t)
	notifier := newDisabledNotifier(t, db)

	token := "tok-123"
	user := &entity.User{Username: "alice", PasswordHash: "x", DeviceToken: &token, NotificationsEnabled: false}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	if notifier.Deliver(context.Background(), "alice", "t", "b", nil) {
		t.Fatal("delivery with notifications disabled must report failure")
	}
}

func TestDeliverDegradedClient(t *testing.T) {
	db := newTestDB(t)
	notifier := newDisabledNotifier(t, db)

	token := "tok-123"
	user := &entity.User{Username: "alice", PasswordHash: "x", DeviceToken: &token, NotificationsEnabled: true}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	// User is fully eligible but the transport has no credentials; the
	// outcome is a logged false, never an error.
	if notifier.Deliver(context.Background(), "alice", "t", "b", map[string]string{"type": "reminder"}) {
		t.Fatal("delivery through a degraded client must report failure")
	}
}
