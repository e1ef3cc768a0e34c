package models

import (
	"time"

	"gorm.io/gorm"
)

// Statuts d'une inscription. PENDING est l'état initial, APPROVED et
// DENIED sont terminaux.
const (
	RegistrationPending  = "PENDING"
	RegistrationApproved = "APPROVED"
	RegistrationDenied   = "DENIED"
)

type Registration struct {
	ID               uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	PlayerID         uint           `gorm:"not null;uniqueIndex:idx_registrations_player_tournament;constraint:OnDelete:CASCADE" json:"player_id"`
	TournamentID     uint           `gorm:"not null;uniqueIndex:idx_registrations_player_tournament;constraint:OnDelete:CASCADE" json:"tournament_id"`
	RegistrationDate time.Time      `gorm:"not null" json:"registration_date"`
	Status           string         `gorm:"size:20;not null;default:PENDING" json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Player     User       `gorm:"foreignKey:PlayerID;references:ID" json:"player,omitempty"`
	Tournament Tournament `gorm:"foreignKey:TournamentID;references:ID" json:"tournament,omitempty"`
}

func (Registration) TableName() string {
	return "registrations"
}

// IsFinal indique si le statut est terminal (plus aucune transition permise)
func (r *Registration) IsFinal() bool {
	return r.Status == RegistrationApproved || r.Status == RegistrationDenied
}

// DTOs

type RegistrationRequest struct {
	PlayerUsername string `json:"playerUsername" binding:"required"`
	TournamentID   uint   `json:"tournamentId" binding:"required"`
}

type RegistrationResponse struct {
	ID               uint      `json:"id"`
	PlayerName       string    `json:"playerName"`
	TournamentName   string    `json:"tournamentName"`
	RegistrationDate time.Time `json:"registrationDate"`
	Status           string    `json:"status"`
}

// RegistrationStatusResponse est le payload "soft" renvoyé en 200 quand le
// joueur est déjà inscrit.
type RegistrationStatusResponse struct {
	Status string `json:"status"`
}
