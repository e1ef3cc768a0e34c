package models

import (
	"time"

	"gorm.io/gorm"
)

type Tournament struct {
	ID                   uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                 string         `gorm:"size:255;unique;not null" json:"name"`
	StartDate            time.Time      `gorm:"not null" json:"start_date"`
	EndDate              time.Time      `gorm:"not null" json:"end_date"`
	RegistrationDeadline time.Time      `json:"registration_deadline"`
	MaxParticipants      int            `gorm:"not null" json:"max_participants"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Registrations []Registration `gorm:"foreignKey:TournamentID" json:"registrations,omitempty"`
	Matches       []Match        `gorm:"foreignKey:TournamentID" json:"matches,omitempty"`
}

func (Tournament) TableName() string {
	return "tournaments"
}

// DTOs

type CreateTournamentRequest struct {
	Name                 string `json:"name" binding:"required"`
	StartDate            string `json:"startDate" binding:"required"`
	EndDate              string `json:"endDate" binding:"required"`
	RegistrationDeadline string `json:"registrationDeadline,omitempty"`
	MaxParticipants      int    `json:"maxParticipants" binding:"required,min=2"`
}

type TournamentResponse struct {
	ID                   uint      `json:"id"`
	Name                 string    `json:"name"`
	StartDate            time.Time `json:"startDate"`
	EndDate              time.Time `json:"endDate"`
	RegistrationDeadline time.Time `json:"registrationDeadline"`
	MaxParticipants      int       `json:"maxParticipants"`
}
