package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calendar-gateway/config"
	_ "calendar-gateway/docs" // Swagger docs
	"calendar-gateway/internal/cache"
	cacheBolt "calendar-gateway/internal/cache/boltdb"
	cacheMemory "calendar-gateway/internal/cache/memory"
	"calendar-gateway/internal/calendar"
	calendarRest "calendar-gateway/internal/calendar/delivery/rest"
	"calendar-gateway/internal/calendar/usecase"
	"calendar-gateway/internal/httpserver"
	"calendar-gateway/internal/middleware"
	"calendar-gateway/pkg/gcal"
	"calendar-gateway/pkg/log"
)

// @title       Calendar Gateway API
// @description Google Calendar event normalization and caching gateway.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Gateway...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Cache store
	var store cache.Store
	switch cfg.Cache.Backend {
	case "memory":
		store = cacheMemory.New(cfg.Cache.MemorySize, cfg.Cache.Prefix)
		logger.Info(ctx, "Cache backend: in-memory LRU")
	default:
		boltStore, boltErr := cacheBolt.New(cfg.Cache.Path, cfg.Cache.Prefix)
		if boltErr != nil {
			logger.Error(ctx, "Failed to open cache database: ", boltErr)
			return
		}
		defer boltStore.Close()
		store = boltStore
		logger.Infof(ctx, "Cache backend: bolt (%s)", cfg.Cache.Path)
	}

	// 4. Upstream Google Calendar client
	opts := []gcal.Option{
		gcal.WithRateLimit(cfg.GoogleCalendar.RateLimitPerSec),
	}
	if cfg.GoogleCalendar.BaseURL != "" {
		opts = append(opts, gcal.WithBaseURL(cfg.GoogleCalendar.BaseURL))
	}

	creds := calendar.StaticCredentials{Key: cfg.GoogleCalendar.APIKey}
	if cfg.GoogleCalendar.CredentialsPath != "" {
		hc, saErr := gcal.NewHTTPClientFromServiceAccount(ctx, cfg.GoogleCalendar.CredentialsPath)
		if saErr != nil {
			logger.Warnf(ctx, "Service account credentials not usable (optional): %v", saErr)
		} else {
			opts = append(opts, gcal.WithHTTPClient(hc))
			creds.ServiceAccount = true
			logger.Info(ctx, "Google Calendar service account transport initialized")
		}
	}
	if !creds.Configured() {
		logger.Warn(ctx, "No Google Calendar credential configured; event requests will fail until one is set")
	}

	client := gcal.NewClient(cfg.GoogleCalendar.APIKey, opts...)

	// 5. Calendar domain
	calendarUC := usecase.New(logger, creds, client, store)
	calendarHandler := calendarRest.New(logger, calendarUC)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger),
		CalendarHandler: calendarHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
