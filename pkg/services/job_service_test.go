package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/ent"
	"github.com/leadflowhq/leadflow/ent/scheduledjob"
)

func TestSchedule_UpsertsBySlot(t *testing.T) {
	client := newEntClient(t)
	svc := NewJobService(client)
	thread := newFixtureThread(t, client, "+15551112222")
	ctx := context.Background()

	first, err := svc.Schedule(ctx, thread.ID, "cart_recovery_30m",
		time.Now().Add(30*time.Minute), "action_list", map[string]interface{}{"v": 1})
	require.NoError(t, err)

	// Scheduling the same slot replaces fire_at and payload.
	laterFire := time.Now().Add(time.Hour)
	second, err := svc.Schedule(ctx, thread.ID, "cart_recovery_30m",
		laterFire, "action_list", map[string]interface{}{"v": 2})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.WithinDuration(t, laterFire, second.FireAt, time.Second)
	assert.EqualValues(t, 2, second.ActionPayload["v"])

	pending, err := client.ScheduledJob.Query().
		Where(
			scheduledjob.ThreadIDEQ(thread.ID),
			scheduledjob.StatusEQ(scheduledjob.StatusPending),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)

	// A different key is its own slot.
	_, err = svc.Schedule(ctx, thread.ID, "reengage_7d",
		time.Now().Add(7*24*time.Hour), "action_list", nil)
	require.NoError(t, err)

	_, err = svc.Schedule(ctx, "", "k", time.Now(), "action_list", nil)
	assert.True(t, IsValidationError(err))
}

func TestCancelByPrefix_OnlyPendingFamily(t *testing.T) {
	client := newEntClient(t)
	svc := NewJobService(client)
	thread := newFixtureThread(t, client, "+15551112222")
	ctx := context.Background()

	recovery, err := svc.Schedule(ctx, thread.ID, "cart_recovery_30m",
		time.Now().Add(time.Hour), "action_list", nil)
	require.NoError(t, err)
	abandon, err := svc.Schedule(ctx, thread.ID, "cart_recovery_abandon",
		time.Now().Add(2*time.Hour), "action_list", nil)
	require.NoError(t, err)
	other, err := svc.Schedule(ctx, thread.ID, "reengage_7d",
		time.Now().Add(time.Hour), "action_list", nil)
	require.NoError(t, err)

	cancelled, err := svc.CancelByPrefix(ctx, thread.ID, "cart_recovery_")
	require.NoError(t, err)
	assert.Equal(t, 2, cancelled)

	for _, id := range []string{recovery.ID, abandon.ID} {
		job, err := client.ScheduledJob.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, scheduledjob.StatusCancelled, job.Status)
	}
	job, err := client.ScheduledJob.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledjob.StatusPending, job.Status)

	// Cancelled jobs are not cancelled twice.
	cancelled, err = svc.CancelByPrefix(ctx, thread.ID, "cart_recovery_")
	require.NoError(t, err)
	assert.Zero(t, cancelled)

	has, err := svc.HasPendingWithPrefix(ctx, thread.ID, "cart_recovery_")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestClaimDue_LeaseLifecycle(t *testing.T) {
	client := newEntClient(t)
	svc := NewJobService(client)
	thread := newFixtureThread(t, client, "+15551112222")
	ctx := context.Background()

	due, err := svc.Schedule(ctx, thread.ID, "cart_recovery_30m",
		time.Now().Add(-time.Minute), "action_list", nil)
	require.NoError(t, err)
	_, err = svc.Schedule(ctx, thread.ID, "reengage_7d",
		time.Now().Add(time.Hour), "action_list", nil)
	require.NoError(t, err)

	claimed, err := svc.ClaimDue(ctx, "worker-1", time.Minute, 10)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, due.ID, claimed[0].ID)
	require.NotNil(t, claimed[0].LeaseOwner)
	assert.Equal(t, "worker-1", *claimed[0].LeaseOwner)

	// Held leases hide the job from other workers.
	again, err := svc.ClaimDue(ctx, "worker-2", time.Minute, 10)
	require.NoError(t, err)
	assert.Empty(t, again)

	// An expired lease makes the job claimable again.
	require.NoError(t, client.ScheduledJob.UpdateOneID(due.ID).
		SetLeasedUntil(time.Now().Add(-time.Second)).
		Exec(ctx))
	reclaimed, err := svc.ClaimDue(ctx, "worker-2", time.Minute, 10)
	require.NoError(t, err)
	require.Len(t, reclaimed, 1)
	assert.Equal(t, due.ID, reclaimed[0].ID)

	// Terminal states clear the lease.
	require.NoError(t, svc.MarkFired(ctx, due.ID))
	job, err := client.ScheduledJob.Get(ctx, due.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledjob.StatusFired, job.Status)
	assert.Nil(t, job.LeasedUntil)
	assert.NotNil(t, job.FiredAt)
}

func TestMarkFired_DoesNotOverwriteCancellation(t *testing.T) {
	client := newEntClient(t)
	svc := NewJobService(client)
	thread := newFixtureThread(t, client, "+15551112222")
	ctx := context.Background()

	job, err := svc.Schedule(ctx, thread.ID, "cart_recovery_30m",
		time.Now().Add(-time.Minute), "action_list", nil)
	require.NoError(t, err)

	claimed, err := svc.ClaimDue(ctx, "worker-1", time.Minute, 10)
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	// Inbound activity cancels the job while the worker still holds it.
	cancelled, err := svc.CancelByPrefix(ctx, thread.ID, "cart_recovery_")
	require.NoError(t, err)
	require.Equal(t, 1, cancelled)

	// The worker finishes and reports success; the cancellation on
	// record wins.
	require.NoError(t, svc.MarkFired(ctx, job.ID))
	got, err := client.ScheduledJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledjob.StatusCancelled, got.Status)
	assert.Nil(t, got.FiredAt)

	require.NoError(t, svc.MarkFailed(ctx, job.ID, "late failure"))
	got, err = client.ScheduledJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledjob.StatusCancelled, got.Status)
}

func TestPurgeTerminalBefore_KeepsPending(t *testing.T) {
	client := newEntClient(t)
	svc := NewJobService(client)
	thread := newFixtureThread(t, client, "+15551112222")
	ctx := context.Background()

	old := time.Now().Add(-30 * 24 * time.Hour)
	fired, err := client.ScheduledJob.Create().
		SetID("job-fired").
		SetThreadID(thread.ID).
		SetKey("cart_recovery_30m").
		SetFireAt(old).
		SetActionKind("action_list").
		SetStatus(scheduledjob.StatusFired).
		SetCreatedAt(old).
		Save(ctx)
	require.NoError(t, err)
	pending, err := client.ScheduledJob.Create().
		SetID("job-pending").
		SetThreadID(thread.ID).
		SetKey("reengage_7d").
		SetFireAt(old).
		SetActionKind("action_list").
		SetCreatedAt(old).
		Save(ctx)
	require.NoError(t, err)

	purged, err := svc.PurgeTerminalBefore(ctx, time.Now().Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	_, err = client.ScheduledJob.Get(ctx, fired.ID)
	assert.True(t, ent.IsNotFound(err))
	_, err = client.ScheduledJob.Get(ctx, pending.ID)
	assert.NoError(t, err)
}
