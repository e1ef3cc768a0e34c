package services

import (
	"errors"
	"testing"
	"time"

	"core/apperrors"
	"core/models"

	"gorm.io/gorm"
)

func setupNotificationService(t *testing.T) (*NotificationService, *recordingSender, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	sender := &recordingSender{}
	return NewNotificationService(db, sender), sender, db
}

func TestCreateNotification(t *testing.T) {
	service, _, db := setupNotificationService(t)

	user := createTestUser(t, db, "player1", "TENNIS_PLAYER")

	if err := service.Create(user.Username, "Your registration for Championship has been approved."); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	notifications, err := service.GetForUser(user.Username)
	if err != nil {
		t.Fatalf("GetForUser failed: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifications))
	}
	if notifications[0].Read {
		t.Error("expected new notification to be unread")
	}
	if notifications[0].Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestCreateNotificationUnknownUser(t *testing.T) {
	service, _, _ := setupNotificationService(t)

	err := service.Create("ghost", "hello")
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCreateNotificationEmailMirror(t *testing.T) {
	service, sender, db := setupNotificationService(t)

	withEmail := models.User{Username: "player1", Name: "Test player1", Role: "TENNIS_PLAYER", Email: "player1@tennis-club.fr"}
	if err := db.Create(&withEmail).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	withoutEmail := createTestUser(t, db, "player2", "TENNIS_PLAYER")

	if err := service.Create(withEmail.Username, "message one"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := service.Create(withoutEmail.Username, "message two"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Seul l'utilisateur avec une adresse reçoit le miroir email
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(sender.sent))
	}
}

func TestMarkAsReadIdempotent(t *testing.T) {
	service, _, db := setupNotificationService(t)

	user := createTestUser(t, db, "player1", "TENNIS_PLAYER")
	if err := service.Create(user.Username, "hello"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	var notification models.Notification
	db.First(&notification)

	if err := service.MarkAsRead(notification.ID); err != nil {
		t.Fatalf("MarkAsRead failed: %v", err)
	}
	if err := service.MarkAsRead(notification.ID); err != nil {
		t.Errorf("expected second MarkAsRead to be a no-op, got %v", err)
	}

	db.First(&notification, notification.ID)
	if !notification.Read {
		t.Error("expected notification to be read")
	}
}

func TestMarkAsReadUnknown(t *testing.T) {
	service, _, _ := setupNotificationService(t)

	if err := service.MarkAsRead(999); !errors.Is(err, apperrors.ErrNotificationNotFound) {
		t.Errorf("expected ErrNotificationNotFound, got %v", err)
	}
}

func TestGetForUserMostRecentFirst(t *testing.T) {
	service, _, db := setupNotificationService(t)

	user := createTestUser(t, db, "player1", "TENNIS_PLAYER")

	base := time.Now().Add(-time.Hour)
	for i, message := range []string{"oldest", "middle", "newest"} {
		notification := models.Notification{
			UserID:    user.ID,
			Message:   message,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&notification).Error; err != nil {
			t.Fatalf("failed to seed notification: %v", err)
		}
	}

	notifications, err := service.GetForUser(user.Username)
	if err != nil {
		t.Fatalf("GetForUser failed: %v", err)
	}
	if len(notifications) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(notifications))
	}
	if notifications[0].Message != "newest" || notifications[2].Message != "oldest" {
		t.Errorf("expected newest first, got %s ... %s", notifications[0].Message, notifications[2].Message)
	}
}

func TestPurgeRead(t *testing.T) {
	service, _, db := setupNotificationService(t)

	user := createTestUser(t, db, "player1", "TENNIS_PLAYER")

	seeds := []struct {
		message string
		age     time.Duration
		read    bool
	}{
		{"old read", 40 * 24 * time.Hour, true},
		{"old unread", 40 * 24 * time.Hour, false},
		{"recent read", 24 * time.Hour, true},
	}
	for _, seed := range seeds {
		notification := models.Notification{
			UserID:    user.ID,
			Message:   seed.message,
			Timestamp: time.Now().Add(-seed.age),
			Read:      seed.read,
		}
		if err := db.Create(&notification).Error; err != nil {
			t.Fatalf("failed to seed notification: %v", err)
		}
	}

	purged, err := service.PurgeRead(30 * 24 * time.Hour)
	if err != nil {
		t.Fatalf("PurgeRead failed: %v", err)
	}
	if purged != 1 {
		t.Errorf("expected 1 purged notification, got %d", purged)
	}

	// Les non lues et les récentes restent
	remaining, err := service.GetForUser(user.Username)
	if err != nil {
		t.Fatalf("GetForUser failed: %v", err)
	}
	if len(remaining) != 2 {
		t.Errorf("expected 2 remaining notifications, got %d", len(remaining))
	}
}
