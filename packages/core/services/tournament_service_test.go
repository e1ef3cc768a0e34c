package services

import (
	"errors"
	"testing"

	"core/apperrors"
	"core/models"
)

func TestCreateTournament(t *testing.T) {
	db := setupTestDB(t)
	service := NewTournamentService(db)

	response, err := service.CreateTournament(models.CreateTournamentRequest{
		Name:            "Championship",
		StartDate:       "2026-10-01",
		EndDate:         "2026-10-14",
		MaxParticipants: 32,
	})
	if err != nil {
		t.Fatalf("CreateTournament failed: %v", err)
	}

	if response.Name != "Championship" {
		t.Errorf("expected name Championship, got %s", response.Name)
	}
	// Sans deadline explicite, la date de début fait office de limite
	if !response.RegistrationDeadline.Equal(response.StartDate) {
		t.Errorf("expected deadline to default to start date, got %s", response.RegistrationDeadline)
	}
}

func TestCreateTournamentNameTaken(t *testing.T) {
	db := setupTestDB(t)
	service := NewTournamentService(db)

	req := models.CreateTournamentRequest{
		Name:            "Championship",
		StartDate:       "2026-10-01",
		EndDate:         "2026-10-14",
		MaxParticipants: 32,
	}

	if _, err := service.CreateTournament(req); err != nil {
		t.Fatalf("first CreateTournament failed: %v", err)
	}
	if _, err := service.CreateTournament(req); !errors.Is(err, apperrors.ErrTournamentNameTaken) {
		t.Errorf("expected ErrTournamentNameTaken, got %v", err)
	}
}

func TestCreateTournamentInvalidDates(t *testing.T) {
	db := setupTestDB(t)
	service := NewTournamentService(db)

	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"bad start format", "01/10/2026", "2026-10-14"},
		{"bad end format", "2026-10-01", "14-10-2026"},
		{"end before start", "2026-10-14", "2026-10-01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateTournament(models.CreateTournamentRequest{
				Name:            "Championship " + tc.name,
				StartDate:       tc.start,
				EndDate:         tc.end,
				MaxParticipants: 32,
			})
			if !errors.Is(err, apperrors.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestDeleteTournament(t *testing.T) {
	db := setupTestDB(t)
	service := NewTournamentService(db)

	tournament := createTestTournament(t, db, "Championship", 32)

	if err := service.DeleteTournament(tournament.ID); err != nil {
		t.Fatalf("DeleteTournament failed: %v", err)
	}
	if err := service.DeleteTournament(tournament.ID); !errors.Is(err, apperrors.ErrTournamentNotFound) {
		t.Errorf("expected ErrTournamentNotFound on second delete, got %v", err)
	}
}

func TestGetAllTournamentsEmpty(t *testing.T) {
	db := setupTestDB(t)
	service := NewTournamentService(db)

	_, err := service.GetAllTournaments()
	if !errors.Is(err, apperrors.ErrTournamentNotFound) {
		t.Errorf("expected ErrTournamentNotFound, got %v", err)
	}
}

func TestGetTournamentsStartingAfter(t *testing.T) {
	db := setupTestDB(t)
	service := NewTournamentService(db)

	if _, err := service.CreateTournament(models.CreateTournamentRequest{
		Name:            "Spring Open",
		StartDate:       "2026-04-01",
		EndDate:         "2026-04-07",
		MaxParticipants: 16,
	}); err != nil {
		t.Fatalf("CreateTournament failed: %v", err)
	}
	if _, err := service.CreateTournament(models.CreateTournamentRequest{
		Name:            "Autumn Open",
		StartDate:       "2026-10-01",
		EndDate:         "2026-10-07",
		MaxParticipants: 16,
	}); err != nil {
		t.Fatalf("CreateTournament failed: %v", err)
	}

	tournaments, err := service.GetTournamentsStartingAfter("2026-06-01")
	if err != nil {
		t.Fatalf("GetTournamentsStartingAfter failed: %v", err)
	}
	if len(tournaments) != 1 || tournaments[0].Name != "Autumn Open" {
		t.Errorf("expected [Autumn Open], got %+v", tournaments)
	}

	if _, err := service.GetTournamentsStartingAfter("not-a-date"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
