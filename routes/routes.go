package routes

import (
	"time"

	"pushhub/handlers"
	"pushhub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPushRoutes registers the public endpoints consumed by
// third-party sites embedding the subscription snippet.
func RegisterPushRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/push")
	{
		api.GET("/vapid-public-key", hb.Push.VAPIDPublicKeyHandler)
		api.POST("/subscribe", hb.Push.SubscribeHandler)
		api.POST("/unsubscribe", hb.Push.UnsubscribeHandler)
	}
}

// RegisterAuthRoutes registers panel session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)

		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		api.POST("/logout", hb.Auth.LogoutHandler)
	}
}

// RegisterClientRoutes registers tenant management endpoints (master only).
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
	api.Use(middleware.RequireMaster())
	{
		api.POST("", hb.Clients.CreateClientHandler)
		api.GET("", hb.Clients.ListClientsHandler)
		api.GET("/:id", hb.Clients.GetClientHandler)
		api.PUT("/:id", hb.Clients.UpdateClientHandler)
		api.PUT("/:id/status", hb.Clients.SetClientStatusHandler)
		api.DELETE("/:id", hb.Clients.DeleteClientHandler)
	}

	users := r.Group("/api/users")
	users.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
	users.Use(middleware.RequireMaster())
	{
		users.POST("", hb.Auth.CreateUserHandler)
	}
}

// RegisterPanelRoutes registers the tenant-scoped panel endpoints
// (domains, subscribers, notifications).
func RegisterPanelRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	domains := r.Group("/api/domains")
	domains.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
	{
		domains.POST("", hb.Domains.RegisterDomainHandler)
		domains.GET("", hb.Domains.ListDomainsHandler)
		domains.DELETE("/:id", hb.Domains.DeleteDomainHandler)
	}

	subscribers := r.Group("/api/subscribers")
	subscribers.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
	{
		subscribers.GET("", hb.Subscribers.ListSubscribersHandler)
		subscribers.GET("/count", hb.Subscribers.CountSubscribersHandler)
		subscribers.DELETE("/:id", hb.Subscribers.RemoveSubscriberHandler)
	}

	notifications := r.Group("/api/notifications")
	notifications.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
	{
		notifications.POST("/send", hb.Notifications.SendNotificationHandler)
		notifications.GET("", hb.Notifications.ListNotificationsHandler)
		notifications.GET("/stats", hb.Notifications.NotificationStatsHandler)
		notifications.GET("/:id", hb.Notifications.GetNotificationHandler)
		notifications.DELETE("/:id", hb.Notifications.DeleteNotificationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Client-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPushRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterPanelRoutes(r, hb)
	RegisterHealthRoute(r)
}
