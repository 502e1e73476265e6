package handlers

import (
	"errors"
	"net/http"

	subscriptionRepo "pushhub/database/repository/subscription"
	subscriptionSvc "pushhub/services/subscription"
	"pushhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubscriberHandler serves panel subscriber management endpoints.
type SubscriberHandler struct {
	Service subscriptionSvc.SubscriptionService
}

func NewSubscriberHandler(svc subscriptionSvc.SubscriptionService) *SubscriberHandler {
	return &SubscriberHandler{Service: svc}
}

// ListSubscribersHandler handles GET /api/subscribers.
func (h *SubscriberHandler) ListSubscribersHandler(c *gin.Context) {
	clientID, ok := requireClientScope(c)
	if !ok {
		return
	}

	subs, err := h.Service.List(c.Request.Context(), clientID)
	if err != nil {
		utils.GetLogger().Error("Subscriber listing failed",
			zap.String("clientId", clientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Subscriber listing failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribers": subs})
}

// CountSubscribersHandler handles GET /api/subscribers/count.
func (h *SubscriberHandler) CountSubscribersHandler(c *gin.Context) {
	clientID, ok := requireClientScope(c)
	if !ok {
		return
	}

	count, err := h.Service.Count(c.Request.Context(), clientID)
	if err != nil {
		utils.GetLogger().Error("Subscriber count failed",
			zap.String("clientId", clientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Subscriber count failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// RemoveSubscriberHandler handles DELETE /api/subscribers/:id.
func (h *SubscriberHandler) RemoveSubscriberHandler(c *gin.Context) {
	clientID, ok := requireClientScope(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.Service.Remove(c.Request.Context(), clientID, id); err != nil {
		if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Subscriber removal failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Subscriber removal failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscriber removed"})
}
