package middleware

import (
	"net/http"
	"strings"

	userRepo "pushhub/database/repository/user"
	"pushhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthMiddleware authenticates panel requests. The token signature and
// expiry are checked first, then the token hash is matched against the
// session cache (fast path) or the user store, so revoked tokens stop
// working immediately.
func JWTAuthMiddleware(users userRepo.UserRepository, authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ExtractClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		tokenHash := utils.HashToken(tokenString)

		var userID string
		if authCache != nil {
			if cached, err := authCache.Get(c.Request.Context(), utils.AuthCachePrefix+tokenHash).Result(); err == nil {
				userID = cached
			}
		}
		if userID == "" {
			user, err := users.GetByTokenHash(c.Request.Context(), tokenHash)
			if err != nil || user == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or user not found"})
				return
			}
			userID = user.ID
		}

		role, _ := claims["role"].(string)
		clientID, _ := claims["clientId"].(string)

		c.Set("userID", userID)
		c.Set("role", role)
		c.Set("clientID", clientID)
		c.Next()
	}
}
