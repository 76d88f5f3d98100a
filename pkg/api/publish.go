package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/leadflowhq/leadflow/ent"
	"github.com/leadflowhq/leadflow/pkg/events"
)

// Operator-stream publishing for mutations the API layer performs itself.
// Best-effort: a publish failure never fails the request.

func (s *Server) publishMessage(ctx context.Context, msg *ent.Message) {
	if s.sink == nil || msg == nil {
		return
	}
	err := s.sink.PublishMessageCreated(ctx, msg.ThreadID, events.MessageCreatedPayload{
		Type:      events.EventTypeMessageCreated,
		ThreadID:  msg.ThreadID,
		MessageID: msg.ID,
		Role:      string(msg.Role),
		Content:   msg.Content,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Failed to publish message event", "thread_id", msg.ThreadID, "error", err)
	}
}

func (s *Server) publishStageChanged(ctx context.Context, threadID, from, to, author string) {
	if s.sink == nil {
		return
	}
	err := s.sink.PublishStageChanged(ctx, threadID, events.StageChangedPayload{
		Type:      events.EventTypeStageChanged,
		ThreadID:  threadID,
		From:      from,
		To:        to,
		Author:    author,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Failed to publish stage event", "thread_id", threadID, "error", err)
	}
}

func (s *Server) publishTakeover(ctx context.Context, threadID string, enabled bool) {
	if s.sink == nil {
		return
	}
	err := s.sink.PublishTakeoverChanged(ctx, threadID, events.TakeoverChangedPayload{
		Type:      events.EventTypeTakeoverChanged,
		ThreadID:  threadID,
		Enabled:   enabled,
		Reason:    "operator",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Failed to publish takeover event", "thread_id", threadID, "error", err)
	}
}
