package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leadflowhq/leadflow/ent"
	"github.com/leadflowhq/leadflow/ent/inboundevent"
	"github.com/leadflowhq/leadflow/ent/message"
	"github.com/leadflowhq/leadflow/pkg/models"
)

// MessageService manages the immutable per-thread transcript and the
// inbound dedupe ledger.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// CreateMessage appends a message to a thread's transcript
func (s *MessageService) CreateMessage(httpCtx context.Context, req models.CreateMessageRequest) (*ent.Message, error) {
	if req.ThreadID == "" {
		return nil, NewValidationError("thread_id", "required")
	}
	if req.Role == "" {
		return nil, NewValidationError("role", "required")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	builder := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetThreadID(req.ThreadID).
		SetRole(message.Role(req.Role)).
		SetContent(req.Content).
		SetIsHuman(req.IsHuman)
	if req.Author != "" {
		builder.SetAuthor(req.Author)
	}
	if req.ProviderMessageID != "" {
		builder.SetProviderMessageID(req.ProviderMessageID)
	}

	msg, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return msg, nil
}

// ListMessages retrieves a thread's transcript slice, chronological order
func (s *MessageService) ListMessages(ctx context.Context, threadID string, limit, offset int) (*models.MessageListResponse, error) {
	query := s.client.Message.Query().Where(message.ThreadIDEQ(threadID))

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	if limit <= 0 || limit > 500 {
		limit = 100
	}

	messages, err := query.
		Order(ent.Asc(message.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return &models.MessageListResponse{
		Messages:   messages,
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// RecentHistory returns the newest window messages in chronological
// order, for the generative fallback's context.
func (s *MessageService) RecentHistory(ctx context.Context, threadID string, window int) ([]*ent.Message, error) {
	if window <= 0 {
		window = 20
	}

	messages, err := s.client.Message.Query().
		Where(
			message.ThreadIDEQ(threadID),
			message.RoleNEQ(message.RoleSystem),
		).
		Order(ent.Desc(message.FieldCreatedAt)).
		Limit(window).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent history: %w", err)
	}

	// Reverse to chronological.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// RecordInbound inserts an inbound event into the dedupe ledger. Returns
// ErrDuplicateInbound when the key was already recorded, which is how
// provider redelivery is detected.
func (s *MessageService) RecordInbound(httpCtx context.Context, threadID, dedupeKey string) error {
	if dedupeKey == "" {
		return NewValidationError("dedupe_key", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	err := s.client.InboundEvent.Create().
		SetID(uuid.New().String()).
		SetThreadID(threadID).
		SetDedupeKey(dedupeKey).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrDuplicateInbound
		}
		return fmt.Errorf("failed to record inbound event: %w", err)
	}
	return nil
}

// PurgeInboundBefore deletes dedupe ledger rows older than the cutoff.
func (s *MessageService) PurgeInboundBefore(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := s.client.InboundEvent.Delete().
		Where(inboundevent.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge inbound events: %w", err)
	}
	return count, nil
}
