package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bizlingo/bizlingo-be/internal/api"
	"github.com/bizlingo/bizlingo-be/internal/config"
	"github.com/bizlingo/bizlingo-be/internal/database"
	"github.com/bizlingo/bizlingo-be/internal/logger"
	"github.com/bizlingo/bizlingo-be/internal/monitoring"
	"github.com/bizlingo/bizlingo-be/internal/services"
	"github.com/bizlingo/bizlingo-be/internal/websocket"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up WebSocket Hub
	hub := websocket.NewHub()
	go hub.Run()

	// Set up services
	notificationService := services.NewNotificationService(db, hub)
	userService := services.NewUserService(db, notificationService)
	sessionService := services.NewSessionService(db)
	generationService := services.NewGenerationService()
	contentService := services.NewContentService(db, notificationService)
	productService := services.NewProductService(db, notificationService)

	// Set up and run the background stats sampler
	sampler := monitoring.NewStatsSampler(hub)
	go sampler.Run()

	// Set up and run the background session reaper
	reaper := monitoring.NewSessionReaper(sessionService, cfg.ReapSchedule)
	if err := reaper.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start session reaper")
	}

	// Set up router
	router := api.NewRouter(api.RouterDeps{
		Hub:           hub,
		Users:         userService,
		Sessions:      sessionService,
		Generator:     generationService,
		Contents:      contentService,
		Products:      productService,
		Notifications: notificationService,
		Sampler:       sampler,
		AllowedOrigin: cfg.AllowedOrigin,
		SessionTTL:    time.Duration(cfg.SessionTTL) * time.Hour,
	})

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	sampler.Stop() // Stop the stats sampler
	reaper.Stop()  // Stop the session reaper

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
