package services

import (
	"errors"
	"log"
	"time"

	"core/apperrors"
	"core/models"

	"gorm.io/gorm"
)

// NotificationService crée et restitue les notifications par utilisateur.
// Seul le workflow d'inscription en crée dans ce core, mais l'API reste
// générique pour d'autres workflows.
type NotificationService struct {
	db     *gorm.DB
	sender EmailSender
}

func NewNotificationService(db *gorm.DB, sender EmailSender) *NotificationService {
	return &NotificationService{
		db:     db,
		sender: sender,
	}
}

func (s *NotificationService) Create(username, message string) error {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	notification := models.Notification{
		UserID:    user.ID,
		Message:   message,
		Timestamp: time.Now(),
		Read:      false,
	}

	if err := s.db.Create(&notification).Error; err != nil {
		return err
	}

	// Miroir email optionnel, best effort : la ligne en base fait foi
	if user.Email != "" {
		if err := s.sender.SendNotification(user.Email, message); err != nil {
			log.Printf("Failed to email notification %d to %s: %v", notification.ID, user.Email, err)
		}
	}

	return nil
}

// MarkAsRead est idempotent : marquer une notification déjà lue n'est pas
// une erreur, read ne transitionne que de false vers true.
func (s *NotificationService) MarkAsRead(notificationID uint) error {
	var notification models.Notification
	if err := s.db.First(&notification, notificationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return err
	}

	if notification.Read {
		return nil
	}

	notification.Read = true
	return s.db.Save(&notification).Error
}

// GetForUser retourne les notifications de l'utilisateur, les plus récentes
// d'abord.
func (s *NotificationService) GetForUser(username string) ([]models.NotificationResponse, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	var notifications []models.Notification
	if err := s.db.Where("user_id = ?", user.ID).
		Order("timestamp DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}

	responses := make([]models.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = models.NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			Timestamp: n.Timestamp,
			Read:      n.Read,
		}
	}
	return responses, nil
}

// PurgeRead supprime définitivement les notifications lues plus vieilles
// que la durée donnée. Appelé périodiquement par le scheduler.
func (s *NotificationService) PurgeRead(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	result := s.db.Unscoped().Where("read = ? AND timestamp < ?", true, cutoff).Delete(&models.Notification{})
	return result.RowsAffected, result.Error
}
