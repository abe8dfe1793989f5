package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/openwindow/advisor/internal/api/http"
	"github.com/openwindow/advisor/internal/config"
	"github.com/openwindow/advisor/internal/report"
	"github.com/openwindow/advisor/internal/scheduler"
	"github.com/openwindow/advisor/internal/store"
	"github.com/openwindow/advisor/internal/weather"
	"github.com/openwindow/advisor/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound Open-Meteo calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// In-memory forecast cache with configured staleness.
	memStore := store.NewMemoryStore(cfg.StoreMaxAge)

	provider := providers.NewOpenMeteoProvider(httpClient)
	service := weather.NewService(memStore, provider, cfg.ForecastDays)

	// City-based locations need coordinates before Open-Meteo can serve them.
	locs := make([]weather.Location, 0, len(cfg.Locations))
	for _, loc := range cfg.Locations {
		resolved, err := providers.ResolveCoordinates(cfg.GeocoderAPIKey, loc)
		if err != nil {
			log.Fatalf("failed to resolve location %s: %v", loc.Key(), err)
		}
		locs = append(locs, resolved)
	}

	// Scheduler that keeps cached forecasts warm.
	sched := scheduler.New(locs, cfg.FetchInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "openwindow-advisor",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "openwindow-advisor",
		})
	})

	// API routes.
	refs := report.ReferenceRange(cfg.ReferenceMin, cfg.ReferenceMax, cfg.ReferenceStep)
	httpapi.RegisterRoutes(app, service, refs)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
