package middleware

import (
	"net/http"

	"pushhub/models"

	"github.com/gin-gonic/gin"
)

// RequireMaster rejects requests whose session does not carry the master role.
func RequireMaster() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != models.RoleMaster {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Master role required"})
			return
		}
		c.Next()
	}
}
