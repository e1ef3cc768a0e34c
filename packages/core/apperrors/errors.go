// Package apperrors est la taxonomie fermée des échecs du domaine et
// l'unique traducteur erreur -> (statut HTTP, payload). Les services ne
// connaissent que les sentinelles ; les handlers ne connaissent que Respond.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NotFound
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrTournamentNotFound   = errors.New("tournament not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrMatchNotFound        = errors.New("match not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

// Conflict
var (
	ErrRegistrationExists  = errors.New("the player is already registered for this tournament")
	ErrMatchExists         = errors.New("this match already exists in the tournament")
	ErrTournamentNameTaken = errors.New("a tournament with this name already exists")
	ErrTournamentFull      = errors.New("tournament is full")
	ErrRegistrationFinal   = errors.New("registration has already been finalized")
)

// InvalidInput / Unauthorized
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Invalid enveloppe un détail dans la famille InvalidInput
func Invalid(detail string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, detail)
}

// NotFoundf enveloppe un détail dans une sentinelle NotFound donnée
func NotFoundf(kind error, detail string) error {
	return fmt.Errorf("%w: %s", kind, detail)
}

var notFoundKinds = []error{
	ErrUserNotFound,
	ErrTournamentNotFound,
	ErrRegistrationNotFound,
	ErrMatchNotFound,
	ErrNotificationNotFound,
}

var conflictKinds = []error{
	ErrMatchExists,
	ErrTournamentNameTaken,
	ErrTournamentFull,
	ErrRegistrationFinal,
}

// Respond traduit toute erreur du domaine en réponse HTTP. La fonction est
// totale : une erreur hors taxonomie part en 500 avec le message embarqué.
func Respond(c *gin.Context, err error) {
	// Cas particulier : la double inscription est un succès "soft"
	if errors.Is(err, ErrRegistrationExists) {
		c.JSON(http.StatusOK, gin.H{"status": "You are already registered for this tournament"})
		return
	}

	for _, kind := range notFoundKinds {
		if errors.Is(err, kind) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
	}

	for _, kind := range conflictKinds {
		if errors.Is(err, kind) {
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
			return
		}
	}

	if errors.Is(err, ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if errors.Is(err, ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal error: " + err.Error()})
}

// Status retourne le statut HTTP qu'émettrait Respond, sans écrire de
// réponse. Utilisé par les tests pour vérifier la table complète.
func Status(err error) int {
	if errors.Is(err, ErrRegistrationExists) {
		return http.StatusOK
	}
	for _, kind := range notFoundKinds {
		if errors.Is(err, kind) {
			return http.StatusNotFound
		}
	}
	for _, kind := range conflictKinds {
		if errors.Is(err, kind) {
			return http.StatusConflict
		}
	}
	if errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrInvalidCredentials) {
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
