package services

import (
	"errors"
	"time"

	"core/apperrors"
	"core/models"

	"gorm.io/gorm"
)

type TournamentService struct {
	db *gorm.DB
}

func NewTournamentService(db *gorm.DB) *TournamentService {
	return &TournamentService{db: db}
}

func (s *TournamentService) CreateTournament(req models.CreateTournamentRequest) (*models.TournamentResponse, error) {
	var count int64
	if err := s.db.Model(&models.Tournament{}).Where("name = ?", req.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.ErrTournamentNameTaken
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.Invalid("startDate must use the YYYY-MM-DD format")
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, apperrors.Invalid("endDate must use the YYYY-MM-DD format")
	}
	if endDate.Before(startDate) {
		return nil, apperrors.Invalid("endDate cannot be before startDate")
	}

	deadline := startDate
	if req.RegistrationDeadline != "" {
		deadline, err = parseDate(req.RegistrationDeadline)
		if err != nil {
			return nil, apperrors.Invalid("registrationDeadline must use the YYYY-MM-DD format")
		}
	}

	tournament := models.Tournament{
		Name:                 req.Name,
		StartDate:            startDate,
		EndDate:              endDate,
		RegistrationDeadline: deadline,
		MaxParticipants:      req.MaxParticipants,
	}

	if err := s.db.Create(&tournament).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTournamentNameTaken
		}
		return nil, err
	}

	response := toTournamentResponse(tournament)
	return &response, nil
}

// DeleteTournament supprime définitivement le tournoi ; inscriptions et
// matchs suivent en cascade via les contraintes de la base.
func (s *TournamentService) DeleteTournament(tournamentID uint) error {
	result := s.db.Unscoped().Delete(&models.Tournament{}, tournamentID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTournamentNotFound
	}
	return nil
}

func (s *TournamentService) GetAllTournaments() ([]models.TournamentResponse, error) {
	var tournaments []models.Tournament
	if err := s.db.Find(&tournaments).Error; err != nil {
		return nil, err
	}
	if len(tournaments) == 0 {
		return nil, apperrors.NotFoundf(apperrors.ErrTournamentNotFound, "no tournaments")
	}
	return toTournamentResponses(tournaments), nil
}

func (s *TournamentService) GetTournamentByName(name string) (*models.TournamentResponse, error) {
	var tournament models.Tournament
	if err := s.db.Where("name = ?", name).First(&tournament).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf(apperrors.ErrTournamentNotFound, "no such tournament exists")
		}
		return nil, err
	}
	response := toTournamentResponse(tournament)
	return &response, nil
}

func (s *TournamentService) GetTournamentsStartingAfter(date string) ([]models.TournamentResponse, error) {
	parsed, err := parseDate(date)
	if err != nil {
		return nil, apperrors.Invalid("date must use the YYYY-MM-DD format")
	}

	var tournaments []models.Tournament
	if err := s.db.Where("start_date > ?", parsed).Find(&tournaments).Error; err != nil {
		return nil, err
	}
	if len(tournaments) == 0 {
		return nil, apperrors.NotFoundf(apperrors.ErrTournamentNotFound, "no tournaments starting after "+date)
	}
	return toTournamentResponses(tournaments), nil
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

func toTournamentResponse(t models.Tournament) models.TournamentResponse {
	return models.TournamentResponse{
		ID:                   t.ID,
		Name:                 t.Name,
		StartDate:            t.StartDate,
		EndDate:              t.EndDate,
		RegistrationDeadline: t.RegistrationDeadline,
		MaxParticipants:      t.MaxParticipants,
	}
}

func toTournamentResponses(tournaments []models.Tournament) []models.TournamentResponse {
	responses := make([]models.TournamentResponse, len(tournaments))
	for i, t := range tournaments {
		responses[i] = toTournamentResponse(t)
	}
	return responses
}
