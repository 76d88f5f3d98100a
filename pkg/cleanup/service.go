// Package cleanup enforces data retention: dedupe-ledger rows, terminal
// scheduled jobs, and operator-stream outbox rows are purged on a fixed
// interval. All operations are idempotent and safe to run from multiple
// replicas.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/leadflowhq/leadflow/pkg/config"
	"github.com/leadflowhq/leadflow/pkg/services"
)

// Service is the retention loop.
type Service struct {
	config   *config.RetentionConfig
	messages *services.MessageService
	jobs     *services.JobService
	events   *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	messages *services.MessageService,
	jobs *services.JobService,
	events *services.EventService,
) *Service {
	return &Service{
		config:   cfg,
		messages: messages,
		jobs:     jobs,
		events:   events,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"dedupe_window", s.config.DedupeWindow,
		"job_retention", s.config.JobRetention,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeInboundLedger(ctx)
	s.purgeTerminalJobs(ctx)
	s.purgeEvents(ctx)
}

func (s *Service) purgeInboundLedger(_ context.Context) {
	cutoff := time.Now().Add(-s.config.DedupeWindow)
	count, err := s.messages.PurgeInboundBefore(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: inbound ledger purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged inbound ledger rows", "count", count)
	}
}

func (s *Service) purgeTerminalJobs(_ context.Context) {
	cutoff := time.Now().Add(-s.config.JobRetention)
	count, err := s.jobs.PurgeTerminalBefore(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: job purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged terminal jobs", "count", count)
	}
}

func (s *Service) purgeEvents(_ context.Context) {
	cutoff := time.Now().Add(-s.config.EventTTL)
	count, err := s.events.PurgeEventsBefore(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: event purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged outbox events", "count", count)
	}
}
