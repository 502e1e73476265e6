package handlers

import (
	"net/http"

	userRepo "pushhub/database/repository/user"
	"pushhub/models"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle gathers everything route registration needs.
type HandlerBundle struct {
	UserRepo  userRepo.UserRepository
	AuthCache *redis.Client

	Auth          *AuthHandler
	Clients       *ClientHandler
	Domains       *DomainHandler
	Subscribers   *SubscriberHandler
	Notifications *NotificationHandler
	Push          *PushHandler
}

// clientScope resolves which tenant a panel request operates on. Client
// users are locked to their own tenant; master users select one with the
// clientId query parameter.
func clientScope(c *gin.Context) (string, bool) {
	if c.GetString("role") == models.RoleClient {
		id := c.GetString("clientID")
		return id, id != ""
	}
	id := c.Query("clientId")
	if id == "" {
		id = c.GetHeader("X-Client-ID")
	}
	return id, id != ""
}

// requireClientScope aborts with 400 when no tenant can be resolved.
func requireClientScope(c *gin.Context) (string, bool) {
	id, ok := clientScope(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing client scope: provide clientId"})
	}
	return id, ok
}
