package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes operator-stream events for WebSocket delivery.
// Every event is stored in the events table and broadcast via NOTIFY in
// one transaction, so a committed row is always announced and an announced
// event can always be caught up from the outbox.
//
// Each public method accepts a specific typed payload struct — see payloads.go.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// --- Typed public methods ---

// PublishMessageCreated persists and broadcasts a message.created event
// on the thread's channel.
func (p *EventPublisher) PublishMessageCreated(ctx context.Context, threadID string, payload MessageCreatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal MessageCreatedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, threadID, ThreadChannel(threadID), payloadJSON)
}

// PublishStageChanged persists a stage.changed event to the thread channel
// and broadcasts a transient copy to the global threads channel so the
// funnel overview updates without a per-thread subscription.
// Both publishes are best-effort; the first error encountered is returned.
func (p *EventPublisher) PublishStageChanged(ctx context.Context, threadID string, payload StageChangedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StageChangedPayload: %w", err)
	}
	return p.publishToThreadAndGlobal(ctx, threadID, payloadJSON,
		"thread_id", threadID, "to", payload.To)
}

// PublishTakeoverChanged persists a takeover.changed event to the thread
// channel and broadcasts a transient copy to the global threads channel.
func (p *EventPublisher) PublishTakeoverChanged(ctx context.Context, threadID string, payload TakeoverChangedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TakeoverChangedPayload: %w", err)
	}
	return p.publishToThreadAndGlobal(ctx, threadID, payloadJSON,
		"thread_id", threadID, "enabled", payload.Enabled)
}

// PublishSaleRecorded persists a sale.recorded event to the thread channel
// and broadcasts a transient copy to the global threads channel.
func (p *EventPublisher) PublishSaleRecorded(ctx context.Context, threadID string, payload SaleRecordedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SaleRecordedPayload: %w", err)
	}
	return p.publishToThreadAndGlobal(ctx, threadID, payloadJSON,
		"thread_id", threadID, "order_id", payload.OrderID)
}

// publishToThreadAndGlobal persists to the thread channel then mirrors a
// transient copy to the global threads channel. If the persistent publish
// fails the transient one is still attempted.
func (p *EventPublisher) publishToThreadAndGlobal(ctx context.Context, threadID string, payloadJSON []byte, logArgs ...any) error {
	var firstErr error
	if err := p.persistAndNotify(ctx, threadID, ThreadChannel(threadID), payloadJSON); err != nil {
		slog.Warn("Failed to publish event to thread channel",
			append(logArgs, "error", err)...)
		firstErr = err
	}

	if err := p.notifyOnly(ctx, GlobalThreadsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish event to global threads channel",
			append(logArgs, "error", err)...)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and broadcasts
// via NOTIFY in a single transaction (pg_notify is transactional — held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, threadID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (thread_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		threadID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting to DB.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		ThreadID  string `json:"thread_id"`
		MessageID string `json:"message_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"thread_id": routing.ThreadID,
		"truncated": true,
	}
	if routing.MessageID != "" {
		truncated["message_id"] = routing.MessageID
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
