package core

import (
	"log"

	"core/cron"
	"core/handlers"
	"core/services"

	authMiddleware "auth/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	RegistrationHandler *handlers.RegistrationHandler
	RegistrationService *services.RegistrationService
	MatchHandler        *handlers.MatchHandler
	MatchService        *services.MatchService
	TournamentHandler   *handlers.TournamentHandler
	TournamentService   *services.TournamentService
	NotificationHandler *handlers.NotificationHandler
	NotificationService *services.NotificationService
	Scheduler           *cron.Scheduler
	db                  *gorm.DB
}

func NewModule(db *gorm.DB) *Module {
	notificationService := services.NewNotificationService(db, services.NewEmailSender())
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	registrationService := services.NewRegistrationService(db, notificationService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)

	matchService := services.NewMatchService(db)
	matchHandler := handlers.NewMatchHandler(matchService)

	tournamentService := services.NewTournamentService(db)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService)

	scheduler := cron.NewScheduler(notificationService)

	return &Module{
		RegistrationHandler: registrationHandler,
		RegistrationService: registrationService,
		MatchHandler:        matchHandler,
		MatchService:        matchService,
		TournamentHandler:   tournamentHandler,
		TournamentService:   tournamentService,
		NotificationHandler: notificationHandler,
		NotificationService: notificationService,
		Scheduler:           scheduler,
		db:                  db,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	registrations := r.Group("/api/registrations")
	{
		registrations.POST("", authMiddleware.Require(authMiddleware.OpRegistrationCreate), m.RegistrationHandler.RegisterPlayer)
		registrations.POST("/:id/approve", authMiddleware.Require(authMiddleware.OpRegistrationApprove), m.RegistrationHandler.ApproveRegistration)
		registrations.POST("/:id/deny", authMiddleware.Require(authMiddleware.OpRegistrationDeny), m.RegistrationHandler.DenyRegistration)
		registrations.GET("/player/:playerId", m.RegistrationHandler.GetRegistrationsByPlayer)
		registrations.GET("/tournament/:tournamentId", m.RegistrationHandler.GetRegistrationsByTournament)
		registrations.GET("/tournament/:tournamentId/players", m.RegistrationHandler.GetRegisteredPlayers)
		registrations.GET("/tournament/:tournamentId/pending", m.RegistrationHandler.GetPendingRegistrations)
	}

	matches := r.Group("/api/matches")
	{
		matches.POST("", authMiddleware.Require(authMiddleware.OpMatchCreate), m.MatchHandler.CreateMatch)
		matches.PUT("/score", authMiddleware.Require(authMiddleware.OpMatchUpdateScore), m.MatchHandler.UpdateScore)
		matches.DELETE("/:id", authMiddleware.Require(authMiddleware.OpMatchDelete), m.MatchHandler.DeleteMatch)
		matches.GET("/tournament/:tournamentId", m.MatchHandler.GetMatchesByTournament)
		matches.GET("/tournament/:tournamentId/export", m.MatchHandler.ExportMatches)
		matches.GET("/referee/username/:refereeUsername", m.MatchHandler.GetMatchesByReferee)
		matches.GET("/player/:username", m.MatchHandler.GetMatchesByPlayer)
	}

	tournaments := r.Group("/api/tournaments")
	{
		tournaments.GET("", m.TournamentHandler.GetAllTournaments)
		tournaments.GET("/name/:name", m.TournamentHandler.GetTournamentByName)
		tournaments.GET("/after/:date", m.TournamentHandler.GetTournamentsStartingAfter)
		tournaments.POST("", authMiddleware.Require(authMiddleware.OpTournamentCreate), m.TournamentHandler.CreateTournament)
		tournaments.DELETE("/:id", authMiddleware.Require(authMiddleware.OpTournamentDelete), m.TournamentHandler.DeleteTournament)
	}

	notifications := r.Group("/api/notifications")
	{
		notifications.GET("/user/:username", m.NotificationHandler.GetUserNotifications)
		notifications.POST("/mark-as-read/:id", m.NotificationHandler.MarkAsRead)
	}
}

// StartScheduler starts the cron scheduler for notification retention
func (m *Module) StartScheduler() error {
	log.Println("Starting core module scheduler...")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	log.Println("Stopping core module scheduler...")
	m.Scheduler.Stop()
}

// RunNotificationPurgeNow manually triggers the purge (useful for testing)
func (m *Module) RunNotificationPurgeNow() {
	log.Println("Manually triggering notification purge...")
	m.Scheduler.RunNow()
}
