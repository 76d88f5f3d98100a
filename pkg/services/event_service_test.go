package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEventsSince_CursorAndLimit(t *testing.T) {
	client := newEntClient(t)
	svc := NewEventService(client)
	thread := newFixtureThread(t, client, "+15551112222")
	ctx := context.Background()

	channel := "thread:" + thread.ID
	var ids []int
	for i := 0; i < 3; i++ {
		evt, err := client.Event.Create().
			SetThreadID(thread.ID).
			SetChannel(channel).
			SetPayload(map[string]interface{}{"type": "message.created", "n": i}).
			Save(ctx)
		require.NoError(t, err)
		ids = append(ids, evt.ID)
	}

	// Everything after the first id, capped at one row.
	events, err := svc.GetEventsSince(ctx, channel, ids[0], 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, ids[1], events[0].ID)

	// Cursor zero with no cap returns all, oldest first.
	events, err = svc.GetEventsSince(ctx, channel, 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, ids[0], events[0].ID)

	// Other channels are invisible.
	events, err = svc.GetEventsSince(ctx, "threads", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestPurgeEventsBefore(t *testing.T) {
	client := newEntClient(t)
	svc := NewEventService(client)
	thread := newFixtureThread(t, client, "+15551112222")
	ctx := context.Background()

	_, err := client.Event.Create().
		SetThreadID(thread.ID).
		SetChannel("thread:" + thread.ID).
		SetPayload(map[string]interface{}{"type": "message.created"}).
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Event.Create().
		SetThreadID(thread.ID).
		SetChannel("thread:" + thread.ID).
		SetPayload(map[string]interface{}{"type": "message.created"}).
		Save(ctx)
	require.NoError(t, err)

	purged, err := svc.PurgeEventsBefore(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	remaining, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}
