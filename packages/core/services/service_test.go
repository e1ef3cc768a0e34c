package services

import (
	"testing"
	"time"

	"core/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB ouvre une base sqlite en mémoire avec le même schéma que les
// migrations Postgres, contraintes d'unicité comprises.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	schema := []string{
		`CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			email TEXT,
			name TEXT,
			role TEXT NOT NULL DEFAULT 'TENNIS_PLAYER'
		)`,
		`CREATE TABLE tournaments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL,
			start_date DATETIME NOT NULL,
			end_date DATETIME NOT NULL,
			registration_deadline DATETIME NOT NULL,
			max_participants INTEGER NOT NULL,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME
		)`,
		`CREATE TABLE registrations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_id INTEGER NOT NULL,
			tournament_id INTEGER NOT NULL,
			registration_date DATETIME NOT NULL,
			status TEXT NOT NULL DEFAULT 'PENDING',
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME,
			UNIQUE (player_id, tournament_id)
		)`,
		`CREATE TABLE matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player1_id INTEGER NOT NULL,
			player2_id INTEGER NOT NULL,
			referee_id INTEGER NOT NULL,
			tournament_id INTEGER NOT NULL,
			court_number INTEGER NOT NULL,
			start_date DATETIME NOT NULL,
			sets TEXT DEFAULT '[]',
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME,
			UNIQUE (player1_id, player2_id, referee_id, tournament_id, start_date)
		)`,
		`CREATE TABLE notifications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			message TEXT NOT NULL,
			timestamp DATETIME NOT NULL,
			read BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME
		)`,
	}

	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create test schema: %v", err)
		}
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, role string) models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Name:     "Test " + username,
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

func createTestTournament(t *testing.T, db *gorm.DB, name string, maxParticipants int) models.Tournament {
	t.Helper()

	now := time.Now()
	tournament := models.Tournament{
		Name:                 name,
		StartDate:            now.AddDate(0, 1, 0),
		EndDate:              now.AddDate(0, 1, 7),
		RegistrationDeadline: now.AddDate(0, 0, 14),
		MaxParticipants:      maxParticipants,
	}
	if err := db.Create(&tournament).Error; err != nil {
		t.Fatalf("failed to create tournament %s: %v", name, err)
	}
	return tournament
}

// recordingSender capture les emails envoyés pendant les tests.
type recordingSender struct {
	sent []string
}

func (r *recordingSender) SendNotification(to, message string) error {
	r.sent = append(r.sent, to+": "+message)
	return nil
}
