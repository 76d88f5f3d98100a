package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/ent"
	"github.com/leadflowhq/leadflow/ent/scheduledjob"
	"github.com/leadflowhq/leadflow/pkg/config"
	"github.com/leadflowhq/leadflow/pkg/services"
	testdb "github.com/leadflowhq/leadflow/test/database"
)

func setupCleanup(t *testing.T) (*ent.Client, *Service, string) {
	t.Helper()
	db := testdb.NewTestClient(t)
	entClient := db.Client

	cfg := &config.RetentionConfig{
		DedupeWindow:    48 * time.Hour,
		JobRetention:    7 * 24 * time.Hour,
		EventTTL:        24 * time.Hour,
		CleanupInterval: time.Hour,
	}
	svc := NewService(cfg,
		services.NewMessageService(entClient),
		services.NewJobService(entClient),
		services.NewEventService(entClient),
	)

	ctx := context.Background()
	contact, err := entClient.Contact.Create().
		SetID(uuid.New().String()).
		SetPhone("+15551112222").
		Save(ctx)
	require.NoError(t, err)
	thread, err := entClient.Thread.Create().
		SetID(uuid.New().String()).
		SetContactID(contact.ID).
		SetChannel("whatsapp").
		Save(ctx)
	require.NoError(t, err)

	return entClient, svc, thread.ID
}

func TestRunAll_PurgesOldInboundLedgerRows(t *testing.T) {
	client, svc, threadID := setupCleanup(t)
	ctx := context.Background()

	_, err := client.InboundEvent.Create().
		SetID(uuid.New().String()).
		SetThreadID(threadID).
		SetDedupeKey("sid:old").
		SetCreatedAt(time.Now().Add(-72 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.InboundEvent.Create().
		SetID(uuid.New().String()).
		SetThreadID(threadID).
		SetDedupeKey("sid:recent").
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	remaining, err := client.InboundEvent.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "sid:recent", remaining[0].DedupeKey)
}

func TestRunAll_PurgesOldTerminalJobsOnly(t *testing.T) {
	client, svc, threadID := setupCleanup(t)
	ctx := context.Background()

	old := time.Now().Add(-8 * 24 * time.Hour)

	// Old fired job: purged.
	_, err := client.ScheduledJob.Create().
		SetID(uuid.New().String()).
		SetThreadID(threadID).
		SetKey("cart_recovery_old").
		SetFireAt(old).
		SetActionKind("action_list").
		SetActionPayload(map[string]interface{}{}).
		SetStatus(scheduledjob.StatusFired).
		SetCreatedAt(old).
		Save(ctx)
	require.NoError(t, err)

	// Old but still pending: kept, retention never drops live work.
	pending, err := client.ScheduledJob.Create().
		SetID(uuid.New().String()).
		SetThreadID(threadID).
		SetKey("cart_recovery_pending").
		SetFireAt(time.Now().Add(time.Hour)).
		SetActionKind("action_list").
		SetActionPayload(map[string]interface{}{}).
		SetStatus(scheduledjob.StatusPending).
		SetCreatedAt(old).
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	remaining, err := client.ScheduledJob.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, pending.ID, remaining[0].ID)
}

func TestRunAll_PurgesExpiredOutboxEvents(t *testing.T) {
	client, svc, threadID := setupCleanup(t)
	ctx := context.Background()

	_, err := client.Event.Create().
		SetThreadID(threadID).
		SetChannel("thread:" + threadID).
		SetPayload(map[string]interface{}{"type": "message.created"}).
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Event.Create().
		SetThreadID(threadID).
		SetChannel("thread:" + threadID).
		SetPayload(map[string]interface{}{"type": "message.created"}).
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	count, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
