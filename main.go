// File: roomly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"roomly/config"
	"roomly/handlers"
	"roomly/middleware"
	"roomly/routes"
	"roomly/services/records"
	"roomly/services/scheduling"
	"roomly/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	location, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid timezone %q: %v", config.AppConfig.Timezone, err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// External collaborator and session cache.
	recordsClient := records.NewHTTPClient(
		config.AppConfig.RecordsBaseURL,
		time.Duration(config.AppConfig.RecordsTimeoutSec)*time.Second,
		logger,
	)
	sessionStore := &scheduling.RedisSessionStore{Client: utils.GetSessionCacheClient()}

	// Services.
	scheduleService := &scheduling.DefaultScheduleService{
		Records:  recordsClient,
		Sessions: sessionStore,
		Window: scheduling.OperatingWindow{
			OpenHour:  config.AppConfig.OpenHour,
			CloseHour: config.AppConfig.CloseHour,
		},
		Location:   location,
		SessionTTL: time.Duration(config.AppConfig.SessionTTLMin) * time.Minute,
		Logger:     logger,
	}

	scheduleHandler := handlers.NewScheduleHandler(scheduleService, logger)

	// Register routes.
	routes.RegisterScheduleRoutes(router, scheduleHandler)
	routes.RegisterTimetableRoutes(router, scheduleHandler)
	routes.RegisterHealthRoute(router)

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
