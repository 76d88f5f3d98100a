package services

import (
	"context"
	"fmt"
	"time"

	"github.com/leadflowhq/leadflow/ent"
	"github.com/leadflowhq/leadflow/ent/event"
)

// EventService reads the operator-stream outbox: WebSocket catch-up for
// reconnecting clients, and retention cleanup.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince retrieves up to limit events on a channel after the given
// cursor id, oldest first. A limit of 0 or less means no cap.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	q := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

// PurgeEventsBefore deletes outbox rows older than the cutoff.
func (s *EventService) PurgeEventsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge events: %w", err)
	}
	return count, nil
}
