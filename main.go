package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pushhub/config"
	"pushhub/database"
	clientRepoPkg "pushhub/database/repository/client"
	domainRepoPkg "pushhub/database/repository/domain"
	notificationRepoPkg "pushhub/database/repository/notification"
	subscriptionRepoPkg "pushhub/database/repository/subscription"
	userRepoPkg "pushhub/database/repository/user"
	"pushhub/handlers"
	"pushhub/middleware"
	"pushhub/queue"
	"pushhub/routes"
	authSvc "pushhub/services/auth"
	clientSvc "pushhub/services/client"
	"pushhub/services/dispatch"
	domainSvc "pushhub/services/domain"
	notificationSvc "pushhub/services/notification"
	"pushhub/services/push"
	subscriptionSvc "pushhub/services/subscription"
	"pushhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	clientRepo := clientRepoPkg.NewMongoClientRepo()
	domainRepo := domainRepoPkg.NewMongoDomainRepo()
	subscriptionRepo := subscriptionRepoPkg.NewMongoSubscriptionRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	clientService, err := clientSvc.NewDefaultClientService(clientRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize client service: %v", err)
	}
	domainService, err := domainSvc.NewDefaultDomainService(domainRepo, clientRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize domain service: %v", err)
	}
	subscriptionService, err := subscriptionSvc.NewDefaultSubscriptionService(
		subscriptionRepo, clientRepo, utils.GetCacheClient())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize subscription service: %v", err)
	}
	authService, err := authSvc.NewDefaultAuthService(userRepo, utils.GetAuthCacheClient())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize auth service: %v", err)
	}

	// Push delivery and the background dispatcher only come up with a
	// complete VAPID credential set; otherwise sends are refused and the
	// rest of the platform keeps running.
	var enqueuer queue.Enqueuer
	if config.PushEnabled() {
		deliverer, err := push.NewWebPushDeliverer(push.VAPIDConfig{
			PublicKey:  config.AppConfig.VAPIDPublicKey,
			PrivateKey: config.AppConfig.VAPIDPrivateKey,
			Subscriber: config.AppConfig.VAPIDSubscriber,
		})
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize push deliverer: %v", err)
		}

		engine, err := dispatch.NewDefaultDispatchEngine(
			subscriptionRepo, notificationRepo, clientRepo, deliverer)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize dispatch engine: %v", err)
		}

		queue.StartDispatchWorker(engine, notificationRepo)
		enqueuer = queue.NewAsynqEnqueuer()
	} else {
		logger.Warn("VAPID credentials absent; notification sending is disabled")
	}

	notificationService, err := notificationSvc.NewDefaultNotificationService(
		notificationRepo, clientRepo, subscriptionService, enqueuer)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:  userRepo,
		AuthCache: utils.GetAuthCacheClient(),

		Auth:          handlers.NewAuthHandler(authService),
		Clients:       handlers.NewClientHandler(clientService),
		Domains:       handlers.NewDomainHandler(domainService),
		Subscribers:   handlers.NewSubscriberHandler(subscriptionService),
		Notifications: handlers.NewNotificationHandler(notificationService),
		Push:          handlers.NewPushHandler(subscriptionService, config.AppConfig.VAPIDPublicKey),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
