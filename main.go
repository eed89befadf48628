package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wayfarer/config"
	"wayfarer/cron"
	"wayfarer/database"
	tripRepo "wayfarer/database/repository/trip"
	"wayfarer/handlers"
	"wayfarer/middleware"
	"wayfarer/routes"
	"wayfarer/services/itinerary"
	"wayfarer/services/places"
	"wayfarer/services/tasks"
	"wayfarer/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	tripRepository := tripRepo.NewMongoTripRepo()

	// Reminder queue client and background worker.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	defer asynqClient.Close()
	cron.InitReminderWorker(tripRepository)

	// Services.
	candidateSource := places.NewGooglePlacesSource(logger)
	sessionStore := itinerary.NewRedisSessionStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)
	planningService := &itinerary.DefaultPlanningSessionService{
		Store:     sessionStore,
		Source:    candidateSource,
		TripRepo:  tripRepository,
		Reminders: tasks.NewAsynqReminderScheduler(asynqClient),
		Logger:    logger,
	}

	// Handlers.
	handlerBundle := &routes.HandlerBundle{
		Itinerary: handlers.NewItineraryHandler(planningService, logger),
		Places:    handlers.NewPlacesHandler(candidateSource),
		Trips:     handlers.NewTripHandler(tripRepository),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
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
