package handlers

import (
	"errors"
	"net/http"

	clientRepo "pushhub/database/repository/client"
	clientSvc "pushhub/services/client"
	"pushhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientHandler serves tenant management endpoints (master role).
type ClientHandler struct {
	Service clientSvc.ClientService
}

func NewClientHandler(svc clientSvc.ClientService) *ClientHandler {
	return &ClientHandler{Service: svc}
}

type clientRequest struct {
	Name    string `json:"name" binding:"required"`
	LogoURL string `json:"logoUrl"`
}

// CreateClientHandler handles POST /api/clients.
func (h *ClientHandler) CreateClientHandler(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), req.Name, req.LogoURL)
	if err != nil {
		if errors.Is(err, clientSvc.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Client creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Client creation failed"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetClientHandler handles GET /api/clients/:id.
func (h *ClientHandler) GetClientHandler(c *gin.Context) {
	id := c.Param("id")
	client, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Client lookup failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Client lookup failed"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// ListClientsHandler handles GET /api/clients.
func (h *ClientHandler) ListClientsHandler(c *gin.Context) {
	clients, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Client listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Client listing failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// UpdateClientHandler handles PUT /api/clients/:id.
func (h *ClientHandler) UpdateClientHandler(c *gin.Context) {
	id := c.Param("id")
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), id, req.Name, req.LogoURL)
	if err != nil {
		switch {
		case errors.Is(err, clientSvc.ErrEmptyName):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, clientRepo.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Client update failed", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Client update failed"})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetClientStatusHandler handles PUT /api/clients/:id/status.
func (h *ClientHandler) SetClientStatusHandler(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.SetStatus(c.Request.Context(), id, *req.Active); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Client status change failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Client status change failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client status updated"})
}

// DeleteClientHandler handles DELETE /api/clients/:id.
func (h *ClientHandler) DeleteClientHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Client deletion failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Client deletion failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}
