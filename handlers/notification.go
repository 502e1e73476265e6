package handlers

import (
	"errors"
	"net/http"

	clientRepo "pushhub/database/repository/client"
	notificationRepo "pushhub/database/repository/notification"
	notificationSvc "pushhub/services/notification"
	"pushhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler serves send/poll/stats endpoints. A send only ever
// returns a queued acknowledgment; delivery outcome is observed by polling
// the record.
type NotificationHandler struct {
	Service notificationSvc.NotificationService
}

func NewNotificationHandler(svc notificationSvc.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

// SendNotificationHandler handles POST /api/notifications/send.
func (h *NotificationHandler) SendNotificationHandler(c *gin.Context) {
	clientID, ok := requireClientScope(c)
	if !ok {
		return
	}

	var req notificationSvc.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notif, err := h.Service.Send(c.Request.Context(), clientID, req)
	if err != nil {
		switch {
		case errors.Is(err, notificationSvc.ErrTitleTooLong),
			errors.Is(err, notificationSvc.ErrBodyTooLong),
			errors.Is(err, notificationSvc.ErrNoSubscribers):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, notificationSvc.ErrClientInactive):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, clientRepo.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, notificationSvc.ErrPushDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Notification send failed",
				zap.String("clientId", clientID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Notification send failed"})
		}
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":         "queued",
		"id":             notif.ID,
		"recipientCount": notif.RecipientCount,
	})
}

// GetNotificationHandler handles GET /api/notifications/:id.
func (h *NotificationHandler) GetNotificationHandler(c *gin.Context) {
	clientID, ok := requireClientScope(c)
	if !ok {
		return
	}

	id := c.Param("id")
	notif, err := h.Service.Get(c.Request.Context(), clientID, id)
	if err != nil {
		switch {
		case errors.Is(err, notificationRepo.ErrNotificationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, notificationSvc.ErrNotOwned):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Notification lookup failed", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Notification lookup failed"})
		}
		return
	}
	c.JSON(http.StatusOK, notif)
}

// ListNotificationsHandler handles GET /api/notifications.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	clientID, ok := requireClientScope(c)
	if !ok {
		return
	}

	notifs, err := h.Service.List(c.Request.Context(), clientID)
	if err != nil {
		utils.GetLogger().Error("Notification listing failed",
			zap.String("clientId", clientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Notification listing failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifs})
}

// DeleteNotificationHandler handles DELETE /api/notifications/:id.
func (h *NotificationHandler) DeleteNotificationHandler(c *gin.Context) {
	clientID, ok := requireClientScope(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), clientID, id); err != nil {
		switch {
		case errors.Is(err, notificationRepo.ErrNotificationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, notificationSvc.ErrNotOwned):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Notification deletion failed", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Notification deletion failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}

// NotificationStatsHandler handles GET /api/notifications/stats.
func (h *NotificationHandler) NotificationStatsHandler(c *gin.Context) {
	clientID, ok := requireClientScope(c)
	if !ok {
		return
	}

	stats, err := h.Service.Stats(c.Request.Context(), clientID)
	if err != nil {
		utils.GetLogger().Error("Notification stats failed",
			zap.String("clientId", clientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Notification stats failed"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
