// LeadFlow broker server — ingests messaging and billing webhooks, runs
// the funnel trigger engine and follow-up scheduler, and serves the
// operator read model.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/leadflowhq/leadflow/pkg/api"
	"github.com/leadflowhq/leadflow/pkg/assets"
	"github.com/leadflowhq/leadflow/pkg/cleanup"
	"github.com/leadflowhq/leadflow/pkg/config"
	"github.com/leadflowhq/leadflow/pkg/database"
	"github.com/leadflowhq/leadflow/pkg/detect"
	"github.com/leadflowhq/leadflow/pkg/dispatch"
	"github.com/leadflowhq/leadflow/pkg/events"
	"github.com/leadflowhq/leadflow/pkg/funnel"
	"github.com/leadflowhq/leadflow/pkg/llm"
	"github.com/leadflowhq/leadflow/pkg/masking"
	"github.com/leadflowhq/leadflow/pkg/messenger"
	"github.com/leadflowhq/leadflow/pkg/respond"
	"github.com/leadflowhq/leadflow/pkg/scheduler"
	"github.com/leadflowhq/leadflow/pkg/services"
	"github.com/leadflowhq/leadflow/pkg/slack"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting LeadFlow",
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	contactService := services.NewContactService(dbClient.Client)
	threadService := services.NewThreadService(dbClient.Client)
	messageService := services.NewMessageService(dbClient.Client)
	jobService := services.NewJobService(dbClient.Client)
	salesService := services.NewSalesService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	maskingService := masking.NewService(cfg.Masking)
	slog.Info("Services initialized")

	// 4. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	// Start NotifyListener (dedicated pgx connection for LISTEN)
	notifyListener := events.NewNotifyListener(dbConfig.ConnString(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 5. Pipeline: engine, detectors, provider clients, processor, dispatcher
	engine := funnel.NewEngine(cfg.Funnels)
	library := assets.NewLibrary(cfg.Funnels)
	supportDetector := detect.NewSupportDetector(cfg.Funnels.SupportMarkers)
	funnelDetector := detect.NewFunnelDetector(cfg.Funnels)
	llmClient := llm.NewOpenAIClient(cfg.LLM)
	sender := messenger.NewHTTPSender(cfg.Messenger)

	var notifier *slack.Service
	if cfg.Slack != nil && cfg.Slack.Enabled {
		notifier = slack.NewService(slack.ServiceConfig{
			Token:        os.Getenv(cfg.Slack.TokenEnv),
			Channel:      cfg.Slack.Channel,
			DashboardURL: cfg.DashboardURL,
		})
		if notifier == nil {
			slog.Warn("Slack notifications enabled but token or channel missing")
		}
	}

	processor := respond.NewProcessor(
		threadService, messageService, jobService, engine,
		library, sender, eventPublisher, cfg,
	)
	dispatcher := dispatch.NewDispatcher(
		contactService, threadService, messageService, jobService, salesService,
		engine, supportDetector, funnelDetector,
		llmClient, processor, eventPublisher, notifier, cfg,
	)
	slog.Info("Dispatch pipeline initialized")

	// 6. Background loops (before the HTTP server takes traffic)
	jobScheduler := scheduler.NewScheduler(jobService, threadService, processor, dispatcher, cfg.Scheduler)
	jobScheduler.Start(ctx)

	cleanupService := cleanup.NewService(cfg.Retention, messageService, jobService, eventService)
	cleanupService.Start(ctx)

	// 7. HTTP server
	httpServer := api.NewServer(cfg, dbClient,
		threadService, messageService, contactService, salesService,
		dispatcher, connManager)
	httpServer.SetEngine(engine)
	httpServer.SetSender(sender)
	httpServer.SetMasker(maskingService)
	httpServer.SetEventSink(eventPublisher)
	if err := httpServer.ValidateWiring(); err != nil {
		slog.Error("HTTP server wiring incomplete", "error", err)
		os.Exit(1)
	}

	// 8. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("LeadFlow started successfully")

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop accepting webhooks first, then drain loops.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	loopShutdownCtx, loopCancel := context.WithTimeout(ctx, 30*time.Second)
	defer loopCancel()

	done := make(chan struct{})
	go func() {
		jobScheduler.Stop()
		cleanupService.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Background loops stopped gracefully")
	case <-loopShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — leased jobs will be reclaimed after lease expiry")
	}

	slog.Info("Shutdown complete")
}
