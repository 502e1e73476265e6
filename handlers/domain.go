package handlers

import (
	"errors"
	"net/http"

	clientRepo "pushhub/database/repository/client"
	domainRepo "pushhub/database/repository/domain"
	domainSvc "pushhub/services/domain"
	"pushhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DomainHandler serves registered-origin endpoints.
type DomainHandler struct {
	Service domainSvc.DomainService
}

func NewDomainHandler(svc domainSvc.DomainService) *DomainHandler {
	return &DomainHandler{Service: svc}
}

// RegisterDomainHandler handles POST /api/domains.
func (h *DomainHandler) RegisterDomainHandler(c *gin.Context) {
	clientID, ok := requireClientScope(c)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.Service.Register(c.Request.Context(), clientID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, domainSvc.ErrInvalidDomain):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domainSvc.ErrClientInactive):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, domainRepo.ErrDomainExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, clientRepo.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Domain registration failed",
				zap.String("clientId", clientID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Domain registration failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, d)
}

// ListDomainsHandler handles GET /api/domains.
func (h *DomainHandler) ListDomainsHandler(c *gin.Context) {
	clientID, ok := requireClientScope(c)
	if !ok {
		return
	}

	domains, err := h.Service.List(c.Request.Context(), clientID)
	if err != nil {
		utils.GetLogger().Error("Domain listing failed",
			zap.String("clientId", clientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Domain listing failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"domains": domains})
}

// DeleteDomainHandler handles DELETE /api/domains/:id.
func (h *DomainHandler) DeleteDomainHandler(c *gin.Context) {
	clientID, ok := requireClientScope(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), clientID, id); err != nil {
		switch {
		case errors.Is(err, domainRepo.ErrDomainNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, domainSvc.ErrNotOwned):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Domain deletion failed", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Domain deletion failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Domain deleted"})
}
