package services

import (
	"errors"
	"fmt"
	"strings"

	"core/apperrors"
	"core/models"

	"gorm.io/gorm"
)

// MatchService valide et persiste les matchs. Un match est identifié par le
// tuple (player1, player2, referee, tournament, startDate) ; l'index unique
// en base est la garantie, le pré-check ne fait qu'améliorer le message.
// Aucun contrôle de double réservation (court ou joueur sur des créneaux
// qui se recouvrent) n'est effectué.
type MatchService struct {
	db *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{db: db}
}

func (s *MatchService) CreateMatch(req models.CreateMatchRequest) (*models.MatchResponse, error) {
	player1, err := s.findUser(req.Player1Username, "player1 not found")
	if err != nil {
		return nil, err
	}
	player2, err := s.findUser(req.Player2Username, "player2 not found")
	if err != nil {
		return nil, err
	}
	referee, err := s.findUser(req.RefereeUsername, "referee not found")
	if err != nil {
		return nil, err
	}

	var tournament models.Tournament
	if err := s.db.First(&tournament, req.TournamentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTournamentNotFound
		}
		return nil, err
	}

	if player1.ID == player2.ID {
		return nil, apperrors.Invalid("player1 and player2 must be different")
	}
	if referee.ID == player1.ID || referee.ID == player2.ID {
		return nil, apperrors.Invalid("the referee cannot be one of the players")
	}
	if err := validateSets(req.Sets); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Match{}).
		Where("player1_id = ? AND player2_id = ? AND referee_id = ? AND tournament_id = ? AND start_date = ?",
			player1.ID, player2.ID, referee.ID, tournament.ID, req.StartDate).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.ErrMatchExists
	}

	match := models.Match{
		Player1ID:    player1.ID,
		Player2ID:    player2.ID,
		RefereeID:    referee.ID,
		TournamentID: tournament.ID,
		CourtNumber:  req.CourtNumber,
		StartDate:    req.StartDate,
		Sets:         models.SetScores(req.Sets),
	}

	if err := s.db.Create(&match).Error; err != nil {
		// Deux créations concurrentes du même tuple : l'index tranche
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrMatchExists
		}
		return nil, err
	}

	response := toMatchResponse(match, *player1, *player2, *referee, tournament)
	return &response, nil
}

// UpdateScore remplace la séquence complète de sets du match : l'appelant
// renvoie tout l'historique, pas un incrément.
func (s *MatchService) UpdateScore(req models.UpdateScoreRequest) (*models.MatchResponse, error) {
	if err := validateSets(req.Sets); err != nil {
		return nil, err
	}

	var match models.Match
	if err := s.db.Preload("Player1").Preload("Player2").Preload("Referee").Preload("Tournament").
		First(&match, req.MatchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, err
	}

	match.Sets = models.SetScores(req.Sets)
	if err := s.db.Save(&match).Error; err != nil {
		return nil, err
	}

	response := toMatchResponse(match, match.Player1, match.Player2, match.Referee, match.Tournament)
	return &response, nil
}

// DeleteMatch supprime définitivement le match. Un soft delete laisserait
// la ligne occuper l'index unique d'identité et interdirait de reprogrammer
// le même tuple.
func (s *MatchService) DeleteMatch(matchID uint) error {
	result := s.db.Unscoped().Delete(&models.Match{}, matchID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrMatchNotFound
	}
	return nil
}

// GetByTournament retourne les matchs d'un tournoi ; une liste vide est un
// état normal, pas une erreur.
func (s *MatchService) GetByTournament(tournamentID uint) ([]models.MatchResponse, error) {
	var matches []models.Match
	if err := s.preloaded().Where("tournament_id = ?", tournamentID).Find(&matches).Error; err != nil {
		return nil, err
	}
	return toMatchResponses(matches), nil
}

func (s *MatchService) GetByReferee(username string) ([]models.MatchResponse, error) {
	referee, err := s.findUser(username, "referee not found")
	if err != nil {
		return nil, err
	}

	var matches []models.Match
	if err := s.preloaded().Where("referee_id = ?", referee.ID).Find(&matches).Error; err != nil {
		return nil, err
	}
	return toMatchResponses(matches), nil
}

func (s *MatchService) GetByPlayer(username string) ([]models.MatchResponse, error) {
	player, err := s.findUser(username, "player not found")
	if err != nil {
		return nil, err
	}

	var matches []models.Match
	if err := s.preloaded().Where("player1_id = ? OR player2_id = ?", player.ID, player.ID).Find(&matches).Error; err != nil {
		return nil, err
	}
	return toMatchResponses(matches), nil
}

// ExportCSVByTournament produit un export CSV des matchs d'un tournoi,
// avec le détail des sets sous la forme "6-4 | 7-5".
func (s *MatchService) ExportCSVByTournament(tournamentID uint) ([]byte, error) {
	matches, err := s.GetByTournament(tournamentID)
	if err != nil {
		return nil, err
	}

	var builder strings.Builder
	builder.WriteString("Match ID,Player 1,Player 2,Referee,Court,Start Date,Set Scores\n")

	for _, m := range matches {
		sets := make([]string, len(m.Sets))
		for i, set := range m.Sets {
			sets[i] = fmt.Sprintf("%d-%d", set.Player1Games, set.Player2Games)
		}
		builder.WriteString(fmt.Sprintf("%d,%s,%s,%s,%d,%s,%s\n",
			m.MatchID,
			m.Player1Name,
			m.Player2Name,
			m.RefereeName,
			m.CourtNumber,
			m.StartDate.Format("2006-01-02 15:04"),
			strings.Join(sets, " | "),
		))
	}

	return []byte(builder.String()), nil
}

func (s *MatchService) findUser(username, notFoundDetail string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf(apperrors.ErrUserNotFound, notFoundDetail)
		}
		return nil, err
	}
	return &user, nil
}

func (s *MatchService) preloaded() *gorm.DB {
	return s.db.Preload("Player1").Preload("Player2").Preload("Referee").Preload("Tournament")
}

func validateSets(sets []models.SetScore) error {
	for _, set := range sets {
		if set.Player1Games < 0 || set.Player2Games < 0 {
			return apperrors.Invalid("set scores cannot be negative")
		}
	}
	return nil
}

func toMatchResponse(m models.Match, player1, player2, referee models.User, tournament models.Tournament) models.MatchResponse {
	return models.MatchResponse{
		MatchID:        m.ID,
		Player1Name:    player1.Username,
		Player2Name:    player2.Username,
		RefereeName:    referee.Username,
		TournamentName: tournament.Name,
		CourtNumber:    m.CourtNumber,
		StartDate:      m.StartDate,
		Sets:           []models.SetScore(m.Sets),
	}
}

func toMatchResponses(matches []models.Match) []models.MatchResponse {
	responses := make([]models.MatchResponse, len(matches))
	for i, m := range matches {
		responses[i] = toMatchResponse(m, m.Player1, m.Player2, m.Referee, m.Tournament)
	}
	return responses
}
