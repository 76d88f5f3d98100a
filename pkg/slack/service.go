package slack

import (
	"context"
	"log/slog"
	"time"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// TakeoverInput contains data for a human-takeover notification.
type TakeoverInput struct {
	ThreadID     string
	ContactName  string
	ContactPhone string
	LastMessage  string
}

// SaleInput contains data for an approved-sale notification.
type SaleInput struct {
	ThreadID     string
	ContactName  string
	ContactPhone string
	OrderID      string
	Value        float64
}

// Service handles operator notification delivery.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NotifyTakeover sends a human-takeover notification.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyTakeover(ctx context.Context, input TakeoverInput) {
	if s == nil {
		return
	}

	blocks := BuildTakeoverMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, 5*time.Second); err != nil {
		s.logger.Error("Failed to send takeover notification",
			"thread_id", input.ThreadID,
			"error", err)
	}
}

// NotifySale sends an approved-sale notification.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifySale(ctx context.Context, input SaleInput) {
	if s == nil {
		return
	}

	blocks := BuildSaleMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, 10*time.Second); err != nil {
		s.logger.Error("Failed to send sale notification",
			"thread_id", input.ThreadID,
			"order_id", input.OrderID,
			"error", err)
	}
}
