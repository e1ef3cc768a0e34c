package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// SetScore est le nombre de jeux gagnés par chaque joueur dans un set.
// Pas d'identité propre : la séquence vit dans la colonne sets du match.
type SetScore struct {
	Player1Games int `json:"player1Games"`
	Player2Games int `json:"player2Games"`
}

type SetScores []SetScore

// Implémente l'interface driver.Valuer pour GORM
func (s SetScores) Value() (driver.Value, error) {
	if len(s) == 0 {
		return json.Marshal([]SetScore{})
	}
	return json.Marshal(s)
}

// Implémente l'interface sql.Scanner pour GORM
func (s *SetScores) Scan(value interface{}) error {
	if value == nil {
		*s = SetScores{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, s)
}

type Match struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Player1ID    uint           `gorm:"not null;uniqueIndex:idx_matches_identity;constraint:OnDelete:CASCADE" json:"player1_id"`
	Player2ID    uint           `gorm:"not null;uniqueIndex:idx_matches_identity;constraint:OnDelete:CASCADE" json:"player2_id"`
	RefereeID    uint           `gorm:"not null;uniqueIndex:idx_matches_identity;constraint:OnDelete:CASCADE" json:"referee_id"`
	TournamentID uint           `gorm:"not null;uniqueIndex:idx_matches_identity;constraint:OnDelete:CASCADE" json:"tournament_id"`
	CourtNumber  int            `gorm:"not null" json:"court_number"`
	StartDate    time.Time      `gorm:"not null;uniqueIndex:idx_matches_identity" json:"start_date"`
	Sets         SetScores      `gorm:"type:jsonb;default:'[]'::jsonb" json:"sets"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Player1    User       `gorm:"foreignKey:Player1ID;references:ID" json:"player1,omitempty"`
	Player2    User       `gorm:"foreignKey:Player2ID;references:ID" json:"player2,omitempty"`
	Referee    User       `gorm:"foreignKey:RefereeID;references:ID" json:"referee,omitempty"`
	Tournament Tournament `gorm:"foreignKey:TournamentID;references:ID" json:"tournament,omitempty"`
}

func (Match) TableName() string {
	return "matches"
}

// DTOs

type CreateMatchRequest struct {
	Player1Username string     `json:"player1Username" binding:"required"`
	Player2Username string     `json:"player2Username" binding:"required"`
	RefereeUsername string     `json:"refereeUsername" binding:"required"`
	TournamentID    uint       `json:"tournamentId" binding:"required"`
	CourtNumber     int        `json:"courtNumber" binding:"required"`
	StartDate       time.Time  `json:"startDate" binding:"required"`
	Sets            []SetScore `json:"sets,omitempty"`
}

type UpdateScoreRequest struct {
	MatchID uint       `json:"matchId" binding:"required"`
	Sets    []SetScore `json:"sets" binding:"required"`
}

type MatchResponse struct {
	MatchID        uint       `json:"matchId"`
	Player1Name    string     `json:"player1Name"`
	Player2Name    string     `json:"player2Name"`
	RefereeName    string     `json:"refereeName"`
	TournamentName string     `json:"tournamentName"`
	CourtNumber    int        `json:"courtNumber"`
	StartDate      time.Time  `json:"startDate"`
	Sets           []SetScore `json:"sets"`
}
