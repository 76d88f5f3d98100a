package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/pkg/models"
)

func TestCreateMessage_Validation(t *testing.T) {
	client := newEntClient(t)
	svc := NewMessageService(client)
	thread := newFixtureThread(t, client, "+15551112222")
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.CreateMessageRequest
	}{
		{"missing thread", models.CreateMessageRequest{Role: "user", Content: "hi"}},
		{"missing role", models.CreateMessageRequest{ThreadID: thread.ID, Content: "hi"}},
		{"missing content", models.CreateMessageRequest{ThreadID: thread.ID, Role: "user"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateMessage(ctx, tt.req)
			assert.True(t, IsValidationError(err))
		})
	}

	msg, err := svc.CreateMessage(ctx, models.CreateMessageRequest{
		ThreadID: thread.ID,
		Role:     "assistant",
		Content:  "Hello!",
		IsHuman:  true,
		Author:   "ana@example.com",
	})
	require.NoError(t, err)
	assert.True(t, msg.IsHuman)
	require.NotNil(t, msg.Author)
	assert.Equal(t, "ana@example.com", *msg.Author)
}

func TestRecordInbound_DetectsRedelivery(t *testing.T) {
	client := newEntClient(t)
	svc := NewMessageService(client)
	thread := newFixtureThread(t, client, "+15551112222")
	ctx := context.Background()

	require.NoError(t, svc.RecordInbound(ctx, thread.ID, "sid:SM-1"))
	err := svc.RecordInbound(ctx, thread.ID, "sid:SM-1")
	assert.ErrorIs(t, err, ErrDuplicateInbound)

	// A different key on the same thread is fine.
	assert.NoError(t, svc.RecordInbound(ctx, thread.ID, "sid:SM-2"))
}

func TestRecentHistory_ExcludesSystemAndIsChronological(t *testing.T) {
	client := newEntClient(t)
	svc := NewMessageService(client)
	thread := newFixtureThread(t, client, "+15551112222")
	ctx := context.Background()

	for _, m := range []struct {
		role    string
		content string
	}{
		{"user", "first"},
		{"assistant", "second"},
		{"system", "Stage changed: (none) -> cold (trigger: entry)"},
		{"user", "third"},
	} {
		_, err := svc.CreateMessage(ctx, models.CreateMessageRequest{
			ThreadID: thread.ID, Role: m.role, Content: m.content,
		})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	history, err := svc.RecentHistory(ctx, thread.ID, 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "second", history[0].Content)
	assert.Equal(t, "third", history[1].Content)
}

func TestListMessages_Pagination(t *testing.T) {
	client := newEntClient(t)
	svc := NewMessageService(client)
	thread := newFixtureThread(t, client, "+15551112222")
	ctx := context.Background()

	for _, content := range []string{"one", "two", "three"} {
		_, err := svc.CreateMessage(ctx, models.CreateMessageRequest{
			ThreadID: thread.ID, Role: "user", Content: content,
		})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	page, err := svc.ListMessages(ctx, thread.ID, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalCount)
	require.Len(t, page.Messages, 2)
	assert.Equal(t, "two", page.Messages[0].Content)
	assert.Equal(t, "three", page.Messages[1].Content)
}
