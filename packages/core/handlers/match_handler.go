package handlers

import (
	"net/http"

	"core/apperrors"
	"core/models"
	"core/services"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// CreateMatch schedules a new match
// @Summary Schedule a match between two players with a referee
// @Description Reject self-play, self-refereeing and duplicate (players, referee, tournament, start date) tuples
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param match body models.CreateMatchRequest true "Match data"
// @Success 201 {object} models.MatchResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.CreateMatch(req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, match)
}

// UpdateScore replaces the set scores of a match
// @Summary Update the score of a match
// @Description Replace the complete sets sequence of the match (full replace, not an append)
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param score body models.UpdateScoreRequest true "Match ID and full sets sequence"
// @Success 200 {object} models.MatchResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/matches/score [put]
func (h *MatchHandler) UpdateScore(c *gin.Context) {
	var req models.UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.UpdateScore(req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// DeleteMatch removes a match
// @Summary Delete a match
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/matches/{id} [delete]
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.matchService.DeleteMatch(id); err != nil {
		// Le delete raté est remonté en échec générique, pas en 404
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete match: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Match deleted successfully."})
}

// GetMatchesByTournament lists the matches of a tournament
// @Summary List matches of a tournament
// @Tags matches
// @Produce json
// @Param tournamentId path int true "Tournament ID"
// @Success 200 {array} models.MatchResponse
// @Router /api/matches/tournament/{tournamentId} [get]
func (h *MatchHandler) GetMatchesByTournament(c *gin.Context) {
	tournamentID, ok := parseTournamentID(c)
	if !ok {
		return
	}

	matches, err := h.matchService.GetByTournament(tournamentID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetMatchesByReferee lists the matches officiated by a referee
// @Summary List matches of a referee
// @Tags matches
// @Produce json
// @Param refereeUsername path string true "Referee username"
// @Success 200 {array} models.MatchResponse
// @Failure 404 {object} map[string]string
// @Router /api/matches/referee/username/{refereeUsername} [get]
func (h *MatchHandler) GetMatchesByReferee(c *gin.Context) {
	matches, err := h.matchService.GetByReferee(c.Param("refereeUsername"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetMatchesByPlayer lists the matches of a player
// @Summary List matches of a player
// @Tags matches
// @Produce json
// @Param username path string true "Player username"
// @Success 200 {array} models.MatchResponse
// @Failure 404 {object} map[string]string
// @Router /api/matches/player/{username} [get]
func (h *MatchHandler) GetMatchesByPlayer(c *gin.Context) {
	matches, err := h.matchService.GetByPlayer(c.Param("username"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// ExportMatches exports the matches of a tournament as CSV
// @Summary Export matches of a tournament as CSV
// @Tags matches
// @Produce text/csv
// @Param tournamentId path int true "Tournament ID"
// @Success 200 {string} string "CSV content"
// @Router /api/matches/tournament/{tournamentId}/export [get]
func (h *MatchHandler) ExportMatches(c *gin.Context) {
	tournamentID, ok := parseTournamentID(c)
	if !ok {
		return
	}

	csv, err := h.matchService.ExportCSVByTournament(tournamentID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=matches.csv")
	c.Data(http.StatusOK, "text/csv", csv)
}
