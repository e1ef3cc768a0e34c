package services

import (
	"errors"
	"log"
	"time"

	"core/apperrors"
	"core/models"

	"gorm.io/gorm"
)

// RegistrationService gère le cycle de vie d'une inscription :
// PENDING à la création, puis une seule transition vers APPROVED ou DENIED.
// L'unicité (joueur, tournoi) est garantie par l'index unique en base ;
// le pré-check ne sert qu'à produire une erreur plus lisible.
type RegistrationService struct {
	db            *gorm.DB
	notifications *NotificationService
}

func NewRegistrationService(db *gorm.DB, notifications *NotificationService) *RegistrationService {
	return &RegistrationService{
		db:            db,
		notifications: notifications,
	}
}

func (s *RegistrationService) RegisterPlayer(req models.RegistrationRequest) (*models.RegistrationResponse, error) {
	var player models.User
	if err := s.db.Where("username = ?", req.PlayerUsername).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf(apperrors.ErrUserNotFound, "user with this username doesn't exist")
		}
		return nil, err
	}

	var tournament models.Tournament
	if err := s.db.First(&tournament, req.TournamentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf(apperrors.ErrTournamentNotFound, "tournament with this id doesn't exist")
		}
		return nil, err
	}

	var existing models.Registration
	err := s.db.Where("player_id = ? AND tournament_id = ?", player.ID, tournament.ID).First(&existing).Error
	if err == nil {
		return nil, apperrors.ErrRegistrationExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	registration := models.Registration{
		PlayerID:         player.ID,
		TournamentID:     tournament.ID,
		RegistrationDate: time.Now(),
		Status:           models.RegistrationPending,
	}

	if err := s.db.Create(&registration).Error; err != nil {
		// Deux soumissions concurrentes peuvent passer le pré-check :
		// l'index unique tranche, on retraduit en "déjà inscrit"
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrRegistrationExists
		}
		return nil, err
	}

	return &models.RegistrationResponse{
		ID:               registration.ID,
		PlayerName:       player.Username,
		TournamentName:   tournament.Name,
		RegistrationDate: registration.RegistrationDate,
		Status:           registration.Status,
	}, nil
}

// Approve passe l'inscription à APPROVED et notifie le joueur. Le roster est
// borné par max_participants : approuver au-delà échoue en conflit.
func (s *RegistrationService) Approve(registrationID uint) error {
	return s.finalize(registrationID, models.RegistrationApproved)
}

// Deny passe l'inscription à DENIED et notifie le joueur.
func (s *RegistrationService) Deny(registrationID uint) error {
	return s.finalize(registrationID, models.RegistrationDenied)
}

func (s *RegistrationService) finalize(registrationID uint, status string) error {
	var registration models.Registration
	if err := s.db.Preload("Player").Preload("Tournament").First(&registration, registrationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRegistrationNotFound
		}
		return err
	}

	if registration.IsFinal() {
		return apperrors.ErrRegistrationFinal
	}

	if status == models.RegistrationApproved {
		var approved int64
		if err := s.db.Model(&models.Registration{}).
			Where("tournament_id = ? AND status = ?", registration.TournamentID, models.RegistrationApproved).
			Count(&approved).Error; err != nil {
			return err
		}
		if approved >= int64(registration.Tournament.MaxParticipants) {
			return apperrors.ErrTournamentFull
		}
	}

	registration.Status = status
	if err := s.db.Save(&registration).Error; err != nil {
		return err
	}

	// La décision est durable à ce point ; un échec de notification est
	// loggé mais ne remet pas en cause le changement de statut.
	message := "Your registration for " + registration.Tournament.Name + " has been approved."
	if status == models.RegistrationDenied {
		message = "Your registration for " + registration.Tournament.Name + " was denied."
	}
	if err := s.notifications.Create(registration.Player.Username, message); err != nil {
		log.Printf("Failed to notify %s about registration %d: %v", registration.Player.Username, registration.ID, err)
	}

	return nil
}

func (s *RegistrationService) GetByPlayer(playerID uint) ([]models.RegistrationResponse, error) {
	var player models.User
	if err := s.db.First(&player, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf(apperrors.ErrUserNotFound, "user with this id doesn't exist")
		}
		return nil, err
	}

	var registrations []models.Registration
	if err := s.db.Where("player_id = ?", playerID).
		Preload("Player").
		Preload("Tournament").
		Find(&registrations).Error; err != nil {
		return nil, err
	}

	if len(registrations) == 0 {
		return nil, apperrors.NotFoundf(apperrors.ErrRegistrationNotFound, "this user is not registered for any tournament")
	}

	return toRegistrationResponses(registrations), nil
}

// GetByTournament retourne le roster : uniquement les inscriptions APPROVED.
// Les PENDING passent par GetPendingByTournament.
func (s *RegistrationService) GetByTournament(tournamentID uint) ([]models.RegistrationResponse, error) {
	return s.listByTournamentAndStatus(tournamentID, models.RegistrationApproved, "no registrations for this tournament")
}

func (s *RegistrationService) GetPendingByTournament(tournamentID uint) ([]models.RegistrationResponse, error) {
	return s.listByTournamentAndStatus(tournamentID, models.RegistrationPending, "no pending registrations for this tournament")
}

func (s *RegistrationService) listByTournamentAndStatus(tournamentID uint, status, emptyMessage string) ([]models.RegistrationResponse, error) {
	var tournament models.Tournament
	if err := s.db.First(&tournament, tournamentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf(apperrors.ErrTournamentNotFound, "tournament with this id doesn't exist")
		}
		return nil, err
	}

	var registrations []models.Registration
	if err := s.db.Where("tournament_id = ? AND status = ?", tournamentID, status).
		Preload("Player").
		Preload("Tournament").
		Find(&registrations).Error; err != nil {
		return nil, err
	}

	if len(registrations) == 0 {
		return nil, apperrors.NotFoundf(apperrors.ErrRegistrationNotFound, emptyMessage)
	}

	return toRegistrationResponses(registrations), nil
}

func toRegistrationResponses(registrations []models.Registration) []models.RegistrationResponse {
	responses := make([]models.RegistrationResponse, len(registrations))
	for i, r := range registrations {
		responses[i] = models.RegistrationResponse{
			ID:               r.ID,
			PlayerName:       r.Player.Username,
			TournamentName:   r.Tournament.Name,
			RegistrationDate: r.RegistrationDate,
			Status:           r.Status,
		}
	}
	return responses
}
