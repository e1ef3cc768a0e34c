package handlers

import (
	"net/http"

	"core/apperrors"
	"core/models"
	"core/services"

	"github.com/gin-gonic/gin"
)

type TournamentHandler struct {
	tournamentService *services.TournamentService
}

func NewTournamentHandler(tournamentService *services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: tournamentService}
}

// CreateTournament creates a new tournament
// @Summary Create a tournament
// @Tags tournaments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param tournament body models.CreateTournamentRequest true "Tournament data"
// @Success 201 {object} models.TournamentResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/tournaments [post]
func (h *TournamentHandler) CreateTournament(c *gin.Context) {
	var req models.CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tournament, err := h.tournamentService.CreateTournament(req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, tournament)
}

// DeleteTournament removes a tournament
// @Summary Delete a tournament and its registrations and matches
// @Tags tournaments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/tournaments/{id} [delete]
func (h *TournamentHandler) DeleteTournament(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.tournamentService.DeleteTournament(id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tournament deleted successfully."})
}

// GetAllTournaments lists every tournament
// @Summary List all tournaments
// @Tags tournaments
// @Produce json
// @Success 200 {array} models.TournamentResponse
// @Failure 404 {object} map[string]string
// @Router /api/tournaments [get]
func (h *TournamentHandler) GetAllTournaments(c *gin.Context) {
	tournaments, err := h.tournamentService.GetAllTournaments()
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, tournaments)
}

// GetTournamentByName fetches a tournament by its name
// @Summary Get a tournament by name
// @Tags tournaments
// @Produce json
// @Param name path string true "Tournament name"
// @Success 200 {object} models.TournamentResponse
// @Failure 404 {object} map[string]string
// @Router /api/tournaments/name/{name} [get]
func (h *TournamentHandler) GetTournamentByName(c *gin.Context) {
	tournament, err := h.tournamentService.GetTournamentByName(c.Param("name"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, tournament)
}

// GetTournamentsStartingAfter lists tournaments starting after a date
// @Summary List tournaments starting after a given date
// @Tags tournaments
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} models.TournamentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/tournaments/after/{date} [get]
func (h *TournamentHandler) GetTournamentsStartingAfter(c *gin.Context) {
	tournaments, err := h.tournamentService.GetTournamentsStartingAfter(c.Param("date"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, tournaments)
}
