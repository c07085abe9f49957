package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	adapthttp "schedlink/internal/adapter/http"
	"schedlink/internal/adapter/postgres"
	"schedlink/internal/app"
	"schedlink/internal/config"
	"schedlink/internal/logging"
	"schedlink/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET required")
	}

	logger, err := logging.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to db", zap.Error(err))
	}
	defer db.Close()

	authSvc := app.NewAuthService(db, []byte(cfg.JWTSecret), time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	availSvc := app.NewAvailabilityService(db)
	linkSvc := app.NewLinkService(db, db, db)
	bookSvc := app.NewBookingService(db, db)
	calSvc := app.NewCalendarService(cfg.GoogleClientID, cfg.GoogleSecret, cfg.GoogleRedirectTo, db)
	if calSvc == nil {
		logger.Info("google calendar integration disabled")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := adapthttp.NewRouter(&adapthttp.Handler{
		Auth:         authSvc,
		Availability: availSvc,
		Links:        linkSvc,
		Bookings:     bookSvc,
		Calendar:     calSvc,
		Log:          logger,
	})

	logger.Info("listening", zap.String("port", cfg.AppPort))
	if err := server.Run(router, ":"+cfg.AppPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
