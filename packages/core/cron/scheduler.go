package cron

import (
	"log"
	"time"

	"core/services"

	"github.com/robfig/cron/v3"
)

// RetentionPeriod durée de conservation des notifications lues
const RetentionPeriod = 30 * 24 * time.Hour

type Scheduler struct {
	cron          *cron.Cron
	notifications *services.NotificationService
}

func NewScheduler(notifications *services.NotificationService) *Scheduler {
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:          c,
		notifications: notifications,
	}
}

// Start initializes and starts all scheduled jobs
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	// Purge des notifications lues toutes les heures
	_, err := s.cron.AddFunc("@hourly", s.runNotificationPurge)
	if err != nil {
		log.Printf("Error scheduling notification purge job: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started successfully")

	return nil
}

// Stop gracefully shuts down the scheduler
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	s.cron.Stop()
	log.Println("Cron scheduler stopped")
}

func (s *Scheduler) runNotificationPurge() {
	purged, err := s.notifications.PurgeRead(RetentionPeriod)
	if err != nil {
		log.Printf("Error purging read notifications: %v", err)
		return
	}

	if purged > 0 {
		log.Printf("Purged %d read notifications older than %s", purged, RetentionPeriod)
	}
}

// RunNow manually triggers the purge job (useful for testing)
func (s *Scheduler) RunNow() {
	log.Println("Manually triggering notification purge...")
	s.runNotificationPurge()
}
