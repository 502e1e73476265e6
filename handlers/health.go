package handlers

import (
	"net/http"

	"pushhub/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"checks": utils.GetHealthStatus(),
	})
}
