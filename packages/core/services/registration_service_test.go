package services

import (
	"errors"
	"strings"
	"testing"

	"core/apperrors"
	"core/models"

	"gorm.io/gorm"
)

func setupRegistrationService(t *testing.T) (*RegistrationService, *NotificationService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	notifications := NewNotificationService(db, &recordingSender{})
	service := NewRegistrationService(db, notifications)
	return service, notifications, db
}

func TestRegisterPlayer(t *testing.T) {
	service, _, db := setupRegistrationService(t)

	player := createTestUser(t, db, "player1", "TENNIS_PLAYER")
	tournament := createTestTournament(t, db, "Championship", 32)

	response, err := service.RegisterPlayer(models.RegistrationRequest{
		PlayerUsername: player.Username,
		TournamentID:   tournament.ID,
	})
	if err != nil {
		t.Fatalf("RegisterPlayer failed: %v", err)
	}

	if response.Status != models.RegistrationPending {
		t.Errorf("expected status %s, got %s", models.RegistrationPending, response.Status)
	}
	if response.PlayerName != "player1" {
		t.Errorf("expected player name player1, got %s", response.PlayerName)
	}
	if response.TournamentName != "Championship" {
		t.Errorf("expected tournament name Championship, got %s", response.TournamentName)
	}
	if response.RegistrationDate.IsZero() {
		t.Error("expected registration date to be set")
	}
}

func TestRegisterPlayerUnknownUser(t *testing.T) {
	service, _, db := setupRegistrationService(t)

	tournament := createTestTournament(t, db, "Championship", 32)

	_, err := service.RegisterPlayer(models.RegistrationRequest{
		PlayerUsername: "ghost",
		TournamentID:   tournament.ID,
	})
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRegisterPlayerUnknownTournament(t *testing.T) {
	service, _, db := setupRegistrationService(t)

	createTestUser(t, db, "player1", "TENNIS_PLAYER")

	_, err := service.RegisterPlayer(models.RegistrationRequest{
		PlayerUsername: "player1",
		TournamentID:   999,
	})
	if !errors.Is(err, apperrors.ErrTournamentNotFound) {
		t.Errorf("expected ErrTournamentNotFound, got %v", err)
	}
}

func TestRegisterPlayerTwice(t *testing.T) {
	service, _, db := setupRegistrationService(t)

	player := createTestUser(t, db, "player1", "TENNIS_PLAYER")
	tournament := createTestTournament(t, db, "Championship", 32)

	if _, err := service.RegisterPlayer(models.RegistrationRequest{
		PlayerUsername: player.Username,
		TournamentID:   tournament.ID,
	}); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	_, err := service.RegisterPlayer(models.RegistrationRequest{
		PlayerUsername: player.Username,
		TournamentID:   tournament.ID,
	})
	if !errors.Is(err, apperrors.ErrRegistrationExists) {
		t.Errorf("expected ErrRegistrationExists, got %v", err)
	}

	// Une seule ligne doit exister
	var count int64
	db.Model(&models.Registration{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 registration, got %d", count)
	}
}

func TestRegisterPlayerConstraintBackstop(t *testing.T) {
	service, _, db := setupRegistrationService(t)

	player := createTestUser(t, db, "player1", "TENNIS_PLAYER")
	tournament := createTestTournament(t, db, "Championship", 32)

	req := models.RegistrationRequest{
		PlayerUsername: player.Username,
		TournamentID:   tournament.ID,
	}

	first, err := service.RegisterPlayer(req)
	if err != nil {
		t.Fatalf("RegisterPlayer failed: %v", err)
	}

	// Rend la ligne invisible pour le pré-check mais toujours présente pour
	// l'index unique : le second insert se comporte comme une soumission
	// concurrente dont l'écriture a déjà commité.
	if err := db.Delete(&models.Registration{}, first.ID).Error; err != nil {
		t.Fatalf("failed to hide registration from queries: %v", err)
	}

	if _, err := service.RegisterPlayer(req); !errors.Is(err, apperrors.ErrRegistrationExists) {
		t.Errorf("expected ErrRegistrationExists from the unique index, got %v", err)
	}
}

func TestRegisterPlayerTwoTournaments(t *testing.T) {
	service, _, db := setupRegistrationService(t)

	player := createTestUser(t, db, "player1", "TENNIS_PLAYER")
	t1 := createTestTournament(t, db, "Championship", 32)
	t2 := createTestTournament(t, db, "Open", 16)

	for _, tournament := range []models.Tournament{t1, t2} {
		if _, err := service.RegisterPlayer(models.RegistrationRequest{
			PlayerUsername: player.Username,
			TournamentID:   tournament.ID,
		}); err != nil {
			t.Fatalf("registration for %s failed: %v", tournament.Name, err)
		}
	}
}

func TestApproveRegistration(t *testing.T) {
	service, notifications, db := setupRegistrationService(t)

	player := createTestUser(t, db, "player1", "TENNIS_PLAYER")
	tournament := createTestTournament(t, db, "Championship", 32)

	response, err := service.RegisterPlayer(models.RegistrationRequest{
		PlayerUsername: player.Username,
		TournamentID:   tournament.ID,
	})
	if err != nil {
		t.Fatalf("RegisterPlayer failed: %v", err)
	}

	if err := service.Approve(response.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	var registration models.Registration
	db.First(&registration, response.ID)
	if registration.Status != models.RegistrationApproved {
		t.Errorf("expected status APPROVED, got %s", registration.Status)
	}

	// La décision notifie le joueur, exactement une fois
	got, err := notifications.GetForUser(player.Username)
	if err != nil {
		t.Fatalf("GetForUser failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(got))
	}
	if !strings.Contains(got[0].Message, "has been approved") {
		t.Errorf("unexpected notification message: %s", got[0].Message)
	}
}

func TestDenyRegistration(t *testing.T) {
	service, notifications, db := setupRegistrationService(t)

	player := createTestUser(t, db, "player1", "TENNIS_PLAYER")
	tournament := createTestTournament(t, db, "Championship", 32)

	response, err := service.RegisterPlayer(models.RegistrationRequest{
		PlayerUsername: player.Username,
		TournamentID:   tournament.ID,
	})
	if err != nil {
		t.Fatalf("RegisterPlayer failed: %v", err)
	}

	if err := service.Deny(response.ID); err != nil {
		t.Fatalf("Deny failed: %v", err)
	}

	var registration models.Registration
	db.First(&registration, response.ID)
	if registration.Status != models.RegistrationDenied {
		t.Errorf("expected status DENIED, got %s", registration.Status)
	}

	got, err := notifications.GetForUser(player.Username)
	if err != nil {
		t.Fatalf("GetForUser failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(got))
	}
	if !strings.Contains(got[0].Message, "was denied") {
		t.Errorf("unexpected notification message: %s", got[0].Message)
	}
}

func TestFinalRegistrationCannotTransition(t *testing.T) {
	service, _, db := setupRegistrationService(t)

	player := createTestUser(t, db, "player1", "TENNIS_PLAYER")
	tournament := createTestTournament(t, db, "Championship", 32)

	response, err := service.RegisterPlayer(models.RegistrationRequest{
		PlayerUsername: player.Username,
		TournamentID:   tournament.ID,
	})
	if err != nil {
		t.Fatalf("RegisterPlayer failed: %v", err)
	}

	if err := service.Approve(response.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	// Ni re-approbation ni bascule vers DENIED
	if err := service.Approve(response.ID); !errors.Is(err, apperrors.ErrRegistrationFinal) {
		t.Errorf("expected ErrRegistrationFinal on re-approve, got %v", err)
	}
	if err := service.Deny(response.ID); !errors.Is(err, apperrors.ErrRegistrationFinal) {
		t.Errorf("expected ErrRegistrationFinal on deny after approve, got %v", err)
	}
}

func TestApproveUnknownRegistration(t *testing.T) {
	service, _, _ := setupRegistrationService(t)

	if err := service.Approve(999); !errors.Is(err, apperrors.ErrRegistrationNotFound) {
		t.Errorf("expected ErrRegistrationNotFound, got %v", err)
	}
}

func TestApproveBeyondCapacity(t *testing.T) {
	service, _, db := setupRegistrationService(t)

	tournament := createTestTournament(t, db, "Small Cup", 2)

	ids := make([]uint, 0, 3)
	for _, username := range []string{"player1", "player2", "player3"} {
		player := createTestUser(t, db, username, "TENNIS_PLAYER")
		response, err := service.RegisterPlayer(models.RegistrationRequest{
			PlayerUsername: player.Username,
			TournamentID:   tournament.ID,
		})
		if err != nil {
			t.Fatalf("RegisterPlayer(%s) failed: %v", username, err)
		}
		ids = append(ids, response.ID)
	}

	if err := service.Approve(ids[0]); err != nil {
		t.Fatalf("first approve failed: %v", err)
	}
	if err := service.Approve(ids[1]); err != nil {
		t.Fatalf("second approve failed: %v", err)
	}

	if err := service.Approve(ids[2]); !errors.Is(err, apperrors.ErrTournamentFull) {
		t.Errorf("expected ErrTournamentFull, got %v", err)
	}

	// Refuser reste possible même tournoi plein
	if err := service.Deny(ids[2]); err != nil {
		t.Errorf("deny on full tournament failed: %v", err)
	}
}

func TestGetByPlayerEmpty(t *testing.T) {
	service, _, db := setupRegistrationService(t)

	player := createTestUser(t, db, "player1", "TENNIS_PLAYER")

	_, err := service.GetByPlayer(player.ID)
	if !errors.Is(err, apperrors.ErrRegistrationNotFound) {
		t.Errorf("expected ErrRegistrationNotFound, got %v", err)
	}
}

func TestGetByTournamentOnlyApproved(t *testing.T) {
	service, _, db := setupRegistrationService(t)

	tournament := createTestTournament(t, db, "Championship", 32)

	approved := createTestUser(t, db, "player1", "TENNIS_PLAYER")
	pending := createTestUser(t, db, "player2", "TENNIS_PLAYER")

	r1, err := service.RegisterPlayer(models.RegistrationRequest{PlayerUsername: approved.Username, TournamentID: tournament.ID})
	if err != nil {
		t.Fatalf("RegisterPlayer failed: %v", err)
	}
	if _, err := service.RegisterPlayer(models.RegistrationRequest{PlayerUsername: pending.Username, TournamentID: tournament.ID}); err != nil {
		t.Fatalf("RegisterPlayer failed: %v", err)
	}

	if err := service.Approve(r1.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	roster, err := service.GetByTournament(tournament.ID)
	if err != nil {
		t.Fatalf("GetByTournament failed: %v", err)
	}
	if len(roster) != 1 || roster[0].PlayerName != "player1" {
		t.Errorf("expected roster [player1], got %+v", roster)
	}

	pendingList, err := service.GetPendingByTournament(tournament.ID)
	if err != nil {
		t.Fatalf("GetPendingByTournament failed: %v", err)
	}
	if len(pendingList) != 1 || pendingList[0].PlayerName != "player2" {
		t.Errorf("expected pending [player2], got %+v", pendingList)
	}
}
