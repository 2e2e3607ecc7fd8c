package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/lib/pq"

	"timetableportal/config"
	"timetableportal/internal/adapters/auth"
	"timetableportal/internal/adapters/campusapi"
	deliveryhttp "timetableportal/internal/delivery/http"
	"timetableportal/internal/delivery/http/controllers"
	"timetableportal/internal/delivery/http/middleware"
	"timetableportal/internal/domain"
	"timetableportal/internal/repository/postgres"
	"timetableportal/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title Timetable Portal API
// @version 1.0
// @description Portal front-end service for the college timetable system.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), serviceTimeout)
	defer cancel()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		logger.Error("failed to ensure database schema", "error", err)
		os.Exit(1)
	}

	api := campusapi.NewClient(cfg.UpstreamAPIURL, nil)
	codec := auth.NewJWTCodec(cfg.JWTSecret)
	sessions := postgres.NewSessionRepository(db)

	authService := services.NewAuthService(api, sessions, codec, cfg.SessionTTL)
	viewerService := services.NewViewerService(api, serviceTimeout)
	entryService := services.NewEntryService(api, viewerService, serviceTimeout)

	authController := controllers.NewAuthController(logger, authService)
	viewController := controllers.NewViewController(logger, viewerService)
	entryController := controllers.NewEntryController(logger, entryService, viewerService)

	requireSession := middleware.RequireSession(codec, authService, logger)
	mux := deliveryhttp.NewRouter(authController, viewController, entryController, requireSession)

	go sweepExpiredSessions(sessions, logger)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	logger.Info("starting server", "port", cfg.Port, "environment", cfg.Environment)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// sweepExpiredSessions removes expired session rows on an hourly tick.
// Expiry is also enforced on every lookup, so the sweep only keeps the
// table from growing without bound.
func sweepExpiredSessions(sessions domain.SessionRepository, logger *slog.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for now := range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), serviceTimeout)
		n, err := sessions.DeleteExpired(ctx, now)
		cancel()
		if err != nil {
			logger.Warn("session sweep failed", "error", err)
			continue
		}
		if n > 0 {
			logger.Debug("session sweep removed rows", "count", n)
		}
	}
}
