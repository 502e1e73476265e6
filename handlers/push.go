package handlers

import (
	"errors"
	"net/http"

	clientRepo "pushhub/database/repository/client"
	subscriptionRepo "pushhub/database/repository/subscription"
	"pushhub/models"
	subscriptionSvc "pushhub/services/subscription"
	"pushhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PushHandler serves the public endpoints consumed by third-party sites
// embedding the subscription snippet.
type PushHandler struct {
	Service subscriptionSvc.SubscriptionService
	// VAPIDPublicKey is exposed so browsers can create subscriptions.
	// Empty when push is disabled.
	VAPIDPublicKey string
}

func NewPushHandler(svc subscriptionSvc.SubscriptionService, vapidPublicKey string) *PushHandler {
	return &PushHandler{Service: svc, VAPIDPublicKey: vapidPublicKey}
}

// VAPIDPublicKeyHandler handles GET /api/push/vapid-public-key.
func (h *PushHandler) VAPIDPublicKeyHandler(c *gin.Context) {
	if h.VAPIDPublicKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Push sending is not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"publicKey": h.VAPIDPublicKey})
}

// SubscribeHandler handles POST /api/push/subscribe. Re-subscribing an
// already registered endpoint updates the stored record.
func (h *PushHandler) SubscribeHandler(c *gin.Context) {
	var payload models.SubscriptionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if payload.ClientID == "" {
		payload.ClientID = c.GetHeader("X-Client-ID")
	}
	if payload.UserAgent == "" {
		payload.UserAgent = c.Request.UserAgent()
	}

	sub, err := h.Service.Register(c.Request.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, subscriptionSvc.ErrInvalidPayload):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, subscriptionSvc.ErrClientInactive):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, clientRepo.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Subscription registration failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Subscription registration failed"})
		}
		return
	}
	c.JSON(http.StatusOK, sub)
}

// UnsubscribeHandler handles POST /api/push/unsubscribe.
func (h *PushHandler) UnsubscribeHandler(c *gin.Context) {
	var req struct {
		ClientID string `json:"clientId"`
		Endpoint string `json:"endpoint" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ClientID == "" {
		req.ClientID = c.GetHeader("X-Client-ID")
	}

	if err := h.Service.Unsubscribe(c.Request.Context(), req.ClientID, req.Endpoint); err != nil {
		if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Unsubscribe failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unsubscribe failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unsubscribed"})
}
