package handlers

import (
	"net/http"
	"strconv"

	"core/apperrors"
	"core/models"
	"core/services"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	registrationService *services.RegistrationService
}

func NewRegistrationHandler(registrationService *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// RegisterPlayer registers a player for a tournament
// @Summary Register a player for a tournament
// @Description Create a PENDING registration; registering twice for the same tournament returns a soft "already registered" status
// @Tags registrations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param registration body models.RegistrationRequest true "Registration data"
// @Success 201 {object} models.RegistrationResponse
// @Success 200 {object} models.RegistrationStatusResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/registrations [post]
func (h *RegistrationHandler) RegisterPlayer(c *gin.Context) {
	var req models.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	registration, err := h.registrationService.RegisterPlayer(req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, registration)
}

// ApproveRegistration approves a pending registration
// @Summary Approve a pending registration
// @Description Set the registration status to APPROVED and notify the player
// @Tags registrations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Registration ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/registrations/{id}/approve [post]
func (h *RegistrationHandler) ApproveRegistration(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.registrationService.Approve(id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration approved"})
}

// DenyRegistration denies a pending registration
// @Summary Deny a pending registration
// @Description Set the registration status to DENIED and notify the player
// @Tags registrations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Registration ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/registrations/{id}/deny [post]
func (h *RegistrationHandler) DenyRegistration(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.registrationService.Deny(id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration denied"})
}

// GetRegistrationsByPlayer lists the registrations of a player
// @Summary List registrations of a player
// @Tags registrations
// @Produce json
// @Param playerId path int true "Player ID"
// @Success 200 {array} models.RegistrationResponse
// @Failure 404 {object} map[string]string
// @Router /api/registrations/player/{playerId} [get]
func (h *RegistrationHandler) GetRegistrationsByPlayer(c *gin.Context) {
	playerID, err := strconv.ParseUint(c.Param("playerId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	registrations, svcErr := h.registrationService.GetByPlayer(uint(playerID))
	if svcErr != nil {
		apperrors.Respond(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, registrations)
}

// GetRegistrationsByTournament lists the roster of a tournament
// @Summary List approved registrations (roster) of a tournament
// @Tags registrations
// @Produce json
// @Param tournamentId path int true "Tournament ID"
// @Success 200 {array} models.RegistrationResponse
// @Failure 404 {object} map[string]string
// @Router /api/registrations/tournament/{tournamentId} [get]
func (h *RegistrationHandler) GetRegistrationsByTournament(c *gin.Context) {
	tournamentID, ok := parseTournamentID(c)
	if !ok {
		return
	}

	registrations, err := h.registrationService.GetByTournament(tournamentID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, registrations)
}

// GetRegisteredPlayers lists the usernames on a tournament roster
// @Summary List usernames of approved players for a tournament
// @Tags registrations
// @Produce json
// @Param tournamentId path int true "Tournament ID"
// @Success 200 {array} string
// @Failure 404 {object} map[string]string
// @Router /api/registrations/tournament/{tournamentId}/players [get]
func (h *RegistrationHandler) GetRegisteredPlayers(c *gin.Context) {
	tournamentID, ok := parseTournamentID(c)
	if !ok {
		return
	}

	registrations, err := h.registrationService.GetByTournament(tournamentID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	usernames := make([]string, len(registrations))
	for i, r := range registrations {
		usernames[i] = r.PlayerName
	}
	c.JSON(http.StatusOK, usernames)
}

// GetPendingRegistrations lists pending registrations of a tournament
// @Summary List pending registrations of a tournament
// @Tags registrations
// @Produce json
// @Param tournamentId path int true "Tournament ID"
// @Success 200 {array} models.RegistrationResponse
// @Failure 404 {object} map[string]string
// @Router /api/registrations/tournament/{tournamentId}/pending [get]
func (h *RegistrationHandler) GetPendingRegistrations(c *gin.Context) {
	tournamentID, ok := parseTournamentID(c)
	if !ok {
		return
	}

	registrations, err := h.registrationService.GetPendingByTournament(tournamentID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, registrations)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

func parseTournamentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("tournamentId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament ID"})
		return 0, false
	}
	return uint(id), true
}
