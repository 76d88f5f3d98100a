package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/ent/message"
	"github.com/leadflowhq/leadflow/pkg/models"
)

func TestGetOrCreateThread_OnePerContactChannel(t *testing.T) {
	client := newEntClient(t)
	contacts := NewContactService(client)
	svc := NewThreadService(client)
	ctx := context.Background()

	contact, err := contacts.GetOrCreateContact(ctx, "+15551112222", "Maria Silva")
	require.NoError(t, err)

	first, err := svc.GetOrCreateThread(ctx, contact.ID, "whatsapp")
	require.NoError(t, err)
	again, err := svc.GetOrCreateThread(ctx, contact.ID, "whatsapp")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	// Channel defaults to whatsapp when omitted.
	defaulted, err := svc.GetOrCreateThread(ctx, contact.ID, "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, defaulted.ID)

	other, err := svc.GetOrCreateThread(ctx, contact.ID, "instagram")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestTransitionStage_RecordsSystemMessage(t *testing.T) {
	client := newEntClient(t)
	svc := NewThreadService(client)
	thread := newFixtureThread(t, client, "+15551112222")
	ctx := context.Background()

	updated, sysMsg, err := svc.TransitionStage(ctx, models.StageTransition{
		ThreadID:  thread.ID,
		From:      "",
		To:        "cold",
		Trigger:   "entry",
		ChangedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, "cold", updated.LeadStage)
	assert.Equal(t, "cold", updated.Meta["stage_id"])
	assert.Equal(t, "Stage changed: (none) -> cold (trigger: entry)", sysMsg.Content)
	assert.Equal(t, message.RoleSystem, sysMsg.Role)

	// Operator override attributes the author instead of a trigger.
	_, sysMsg, err = svc.TransitionStage(ctx, models.StageTransition{
		ThreadID:  thread.ID,
		From:      "cold",
		To:        "hot",
		Author:    "ana@example.com",
		ChangedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Stage changed: cold -> hot (by ana@example.com)", sysMsg.Content)
}

func TestTransitionStage_UnknownThread(t *testing.T) {
	client := newEntClient(t)
	svc := NewThreadService(client)

	_, _, err := svc.TransitionStage(context.Background(), models.StageTransition{
		ThreadID:  "00000000-0000-0000-0000-000000000000",
		To:        "cold",
		ChangedAt: time.Now(),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetTakeover_Note(t *testing.T) {
	client := newEntClient(t)
	svc := NewThreadService(client)
	thread := newFixtureThread(t, client, "+15551112222")
	ctx := context.Background()

	updated, sysMsg, err := svc.SetTakeover(ctx, thread.ID, true, "support-detector")
	require.NoError(t, err)
	assert.True(t, updated.HumanTakeover)
	assert.Equal(t, "Human takeover enabled by support-detector", sysMsg.Content)

	updated, sysMsg, err = svc.SetTakeover(ctx, thread.ID, false, "")
	require.NoError(t, err)
	assert.False(t, updated.HumanTakeover)
	assert.Equal(t, "Human takeover disabled", sysMsg.Content)
}

func TestSeedClassification_WriteOnce(t *testing.T) {
	client := newEntClient(t)
	svc := NewThreadService(client)
	thread := newFixtureThread(t, client, "+15551112222")
	ctx := context.Background()

	seeded, err := svc.SeedClassification(ctx, thread.ID, "primary", "", "instagram_bio", []string{"instagram"})
	require.NoError(t, err)
	assert.Equal(t, "primary", seeded.Meta["funnel_id"])
	assert.Equal(t, "instagram_bio", seeded.Meta["source"])
	assert.Empty(t, seeded.LeadStage, "no initial stage leaves the thread unseeded")

	// funnel_id and source stick; tags union.
	seeded, err = svc.SeedClassification(ctx, thread.ID, "other", "offer", "ads", []string{"promo", "instagram"})
	require.NoError(t, err)
	assert.Equal(t, "primary", seeded.Meta["funnel_id"])
	assert.Equal(t, "instagram_bio", seeded.Meta["source"])
	assert.Empty(t, seeded.LeadStage, "a later verdict cannot restage the thread")
	assert.ElementsMatch(t, []string{"instagram", "promo"}, seeded.Meta["tags"])
}

func TestSeedClassification_InitialStage(t *testing.T) {
	client := newEntClient(t)
	svc := NewThreadService(client)
	thread := newFixtureThread(t, client, "+15551112222")
	ctx := context.Background()

	seeded, err := svc.SeedClassification(ctx, thread.ID, "vip", "offer", "campaign", nil)
	require.NoError(t, err)
	assert.Equal(t, "vip", seeded.Meta["funnel_id"])
	assert.Equal(t, "offer", seeded.LeadStage)
	assert.Equal(t, "offer", seeded.Meta["stage_id"])
}

func TestPatchMeta(t *testing.T) {
	client := newEntClient(t)
	svc := NewThreadService(client)
	thread := newFixtureThread(t, client, "+15551112222")
	ctx := context.Background()

	patched, err := svc.PatchMeta(ctx, thread.ID, models.MetaPatchRequest{
		"notes": "asked about refunds",
		"tags":  []interface{}{"vip"},
	})
	require.NoError(t, err)
	assert.Equal(t, "asked about refunds", patched.Meta["notes"])

	// Null deletes; tags merge instead of replacing.
	patched, err = svc.PatchMeta(ctx, thread.ID, models.MetaPatchRequest{
		"notes": nil,
		"tags":  []interface{}{"priority"},
	})
	require.NoError(t, err)
	_, hasNotes := patched.Meta["notes"]
	assert.False(t, hasNotes)
	assert.ElementsMatch(t, []string{"vip", "priority"}, patched.Meta["tags"])
}

func TestListThreads_Filters(t *testing.T) {
	client := newEntClient(t)
	svc := NewThreadService(client)
	ctx := context.Background()

	hot := newFixtureThread(t, client, "+15551110001")
	require.NoError(t, client.Thread.UpdateOneID(hot.ID).SetLeadStage("hot").Exec(ctx))
	taken := newFixtureThread(t, client, "+15551110002")
	require.NoError(t, client.Thread.UpdateOneID(taken.ID).SetHumanTakeover(true).Exec(ctx))

	byStage, err := svc.ListThreads(ctx, models.ThreadFilters{Stage: "hot"})
	require.NoError(t, err)
	require.Len(t, byStage.Threads, 1)
	assert.Equal(t, hot.ID, byStage.Threads[0].ID)

	takeover := true
	byTakeover, err := svc.ListThreads(ctx, models.ThreadFilters{Takeover: &takeover})
	require.NoError(t, err)
	require.Len(t, byTakeover.Threads, 1)
	assert.Equal(t, taken.ID, byTakeover.Threads[0].ID)

	all, err := svc.ListThreads(ctx, models.ThreadFilters{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.TotalCount)
}
