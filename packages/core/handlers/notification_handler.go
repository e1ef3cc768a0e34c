package handlers

import (
	"net/http"

	"core/apperrors"
	"core/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// GetUserNotifications lists the notifications of a user
// @Summary List notifications of a user, most recent first
// @Tags notifications
// @Produce json
// @Param username path string true "Username"
// @Success 200 {array} models.NotificationResponse
// @Failure 404 {object} map[string]string
// @Router /api/notifications/user/{username} [get]
func (h *NotificationHandler) GetUserNotifications(c *gin.Context) {
	notifications, err := h.notificationService.GetForUser(c.Param("username"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkAsRead marks a notification as read
// @Summary Mark a notification as read
// @Description Idempotent: marking an already-read notification is a no-op
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/notifications/mark-as-read/{id} [post]
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAsRead(id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
