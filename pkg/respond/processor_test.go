package respond

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/ent"
	entmessage "github.com/leadflowhq/leadflow/ent/message"
	"github.com/leadflowhq/leadflow/ent/scheduledjob"
	"github.com/leadflowhq/leadflow/pkg/assets"
	"github.com/leadflowhq/leadflow/pkg/config"
	"github.com/leadflowhq/leadflow/pkg/funnel"
	"github.com/leadflowhq/leadflow/pkg/llm"
	"github.com/leadflowhq/leadflow/pkg/messenger"
	"github.com/leadflowhq/leadflow/pkg/services"
	testdb "github.com/leadflowhq/leadflow/test/database"
)

// fakeSender records sends and fails on demand.
type fakeSender struct {
	mu         sync.Mutex
	texts      []string
	mediaURLs  []string
	attempts   int
	transient  int  // fail this many leading attempts with ErrTransient
	permanent  bool // fail every attempt with ErrPermanent
	providerID string
}

func (f *fakeSender) SendText(_ context.Context, _, body string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts++
	if f.permanent {
		return "", messenger.ErrPermanent
	}
	if f.transient > 0 {
		f.transient--
		return "", messenger.ErrTransient
	}
	f.texts = append(f.texts, body)
	return f.providerID, nil
}

func (f *fakeSender) SendMedia(_ context.Context, _, mediaURL string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts++
	if f.permanent {
		return "", messenger.ErrPermanent
	}
	if f.transient > 0 {
		f.transient--
		return "", messenger.ErrTransient
	}
	f.mediaURLs = append(f.mediaURLs, mediaURL)
	return f.providerID, nil
}

type processorFixture struct {
	client    *ent.Client
	processor *Processor
	sender    *fakeSender
	threads   *services.ThreadService
	messages  *services.MessageService
	jobs      *services.JobService
	thread    *ent.Thread
}

func setupProcessor(t *testing.T) *processorFixture {
	t.Helper()
	db := testdb.NewTestClient(t)
	entClient := db.Client

	cfg := &config.Config{
		PublicBaseURL: "https://media.example.com",
		Scheduler:     config.DefaultSchedulerConfig(),
		Funnels:       config.GetBuiltinConfig().Funnels,
	}

	sender := &fakeSender{providerID: "SM123"}
	threads := services.NewThreadService(entClient)
	messages := services.NewMessageService(entClient)
	jobs := services.NewJobService(entClient)
	processor := NewProcessor(
		threads, messages, jobs,
		funnel.NewEngine(cfg.Funnels),
		assets.NewLibrary(cfg.Funnels),
		sender, nil, cfg,
	)

	ctx := context.Background()
	contact, err := entClient.Contact.Create().
		SetID(uuid.New().String()).
		SetPhone("+15551112222").
		SetName("Maria Silva").
		Save(ctx)
	require.NoError(t, err)

	thread, err := entClient.Thread.Create().
		SetID(uuid.New().String()).
		SetContactID(contact.ID).
		SetChannel("whatsapp").
		SetLeadStage("cold").
		SetMeta(map[string]interface{}{"funnel_id": "primary", "stage_id": "cold"}).
		Save(ctx)
	require.NoError(t, err)

	return &processorFixture{
		client:    entClient,
		processor: processor,
		sender:    sender,
		threads:   threads,
		messages:  messages,
		jobs:      jobs,
		thread:    thread,
	}
}

func (f *processorFixture) messageContents(t *testing.T, role entmessage.Role) []string {
	t.Helper()
	msgs, err := f.client.Message.Query().
		Where(entmessage.ThreadIDEQ(f.thread.ID), entmessage.RoleEQ(role)).
		Order(ent.Asc(entmessage.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	contents := make([]string, len(msgs))
	for i, m := range msgs {
		contents[i] = m.Content
	}
	return contents
}

func TestExecuteActions_SendsAndCommitsStage(t *testing.T) {
	f := setupProcessor(t)
	ctx := context.Background()

	actions := []*funnel.Action{
		{Kind: funnel.ActionSendAudio, Asset: "welcome"},
		{Kind: funnel.ActionSendText, Text: "Tell me what's holding you back"},
		{Kind: funnel.ActionSetStage, Stage: "warming"},
	}

	err := f.processor.ExecuteActions(ctx, f.thread, "Maria Silva", actions, Origin{Trigger: "pain"})
	require.NoError(t, err)

	// Sends went out in order, media rooted at the public base.
	require.Len(t, f.sender.mediaURLs, 1)
	assert.Equal(t, "https://media.example.com/audios/welcome.opus", f.sender.mediaURLs[0])
	require.Len(t, f.sender.texts, 1)

	// Transcript: sentinel marker for the audio, literal text for the text.
	assistant := f.messageContents(t, entmessage.RoleAssistant)
	require.Len(t, assistant, 2)
	assert.Equal(t, "[Audio sent: welcome]", assistant[0])
	assert.Equal(t, "Tell me what's holding you back", assistant[1])

	// Stage committed with a system message, and the caller's view updated.
	assert.Equal(t, "warming", f.thread.LeadStage)
	assert.Equal(t, "warming", f.thread.Meta["stage_id"])
	system := f.messageContents(t, entmessage.RoleSystem)
	require.Len(t, system, 1)
	assert.Contains(t, system[0], "cold -> warming")
	assert.Contains(t, system[0], "pain")
}

func TestExecuteActions_TemplateRendersNameAndLink(t *testing.T) {
	f := setupProcessor(t)
	ctx := context.Background()

	actions := []*funnel.Action{
		{Kind: funnel.ActionSendText, Template: "checkout_monthly"},
	}

	err := f.processor.ExecuteActions(ctx, f.thread, "Maria Silva", actions, Origin{Trigger: "plan_choice_monthly"})
	require.NoError(t, err)

	require.Len(t, f.sender.texts, 1)
	assert.Equal(t, "Here is your monthly checkout link, Maria: https://pay.example.com/monthly", f.sender.texts[0])
}

func TestExecuteActions_TransientFailureRetriesOnce(t *testing.T) {
	f := setupProcessor(t)
	f.sender.transient = 1
	ctx := context.Background()

	actions := []*funnel.Action{
		{Kind: funnel.ActionSendText, Text: "hello"},
	}

	err := f.processor.ExecuteActions(ctx, f.thread, "", actions, Origin{})
	require.NoError(t, err)

	assert.Equal(t, 2, f.sender.attempts)
	assert.Len(t, f.sender.texts, 1)
}

func TestExecuteActions_PermanentFailureAborts(t *testing.T) {
	f := setupProcessor(t)
	f.sender.permanent = true
	ctx := context.Background()

	actions := []*funnel.Action{
		{Kind: funnel.ActionSendText, Text: "hello"},
		{Kind: funnel.ActionSetStage, Stage: "warming"},
		{Kind: funnel.ActionSchedule, Key: "cart_recovery_30m"},
	}

	err := f.processor.ExecuteActions(ctx, f.thread, "", actions, Origin{})
	require.Error(t, err)

	// No retry on permanent failures.
	assert.Equal(t, 1, f.sender.attempts)

	// Stage untouched, no job scheduled, a system message marks the break.
	updated, getErr := f.client.Thread.Get(ctx, f.thread.ID)
	require.NoError(t, getErr)
	assert.Equal(t, "cold", updated.LeadStage)

	jobCount, countErr := f.client.ScheduledJob.Query().Count(ctx)
	require.NoError(t, countErr)
	assert.Zero(t, jobCount)

	system := f.messageContents(t, entmessage.RoleSystem)
	require.Len(t, system, 1)
	assert.Contains(t, system[0], "aborted")
}

func TestExecuteActions_ExhaustedTransientRetriesAbort(t *testing.T) {
	f := setupProcessor(t)
	f.sender.transient = 2
	ctx := context.Background()

	actions := []*funnel.Action{
		{Kind: funnel.ActionSendText, Text: "hello"},
	}

	err := f.processor.ExecuteActions(ctx, f.thread, "", actions, Origin{})
	require.Error(t, err)
	assert.Equal(t, 2, f.sender.attempts)
}

func TestExecuteActions_ScheduleUsesCartRecoveryDefaults(t *testing.T) {
	f := setupProcessor(t)
	ctx := context.Background()

	actions := []*funnel.Action{
		{Kind: funnel.ActionSendText, Text: "checkout link"},
		{Kind: funnel.ActionSchedule, Key: "cart_recovery_30m"},
	}

	err := f.processor.ExecuteActions(ctx, f.thread, "", actions, Origin{Trigger: "plan_choice_monthly"})
	require.NoError(t, err)

	job, err := f.client.ScheduledJob.Query().
		Where(scheduledjob.ThreadIDEQ(f.thread.ID), scheduledjob.KeyEQ("cart_recovery_30m")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, scheduledjob.StatusPending, job.Status)
	assert.Equal(t, funnel.PayloadKindActionList, job.ActionKind)

	// Fire time honors the configured delay.
	wantFire := time.Now().Add(config.DefaultSchedulerConfig().CartRecoveryDelay)
	assert.WithinDuration(t, wantFire, job.FireAt, 10*time.Second)

	// Payload decodes back into the builtin cart-recovery sequence.
	decoded, err := funnel.DecodePayload(job.ActionPayload)
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	assert.Equal(t, funnel.ActionSendAudio, decoded[0].Kind)
	assert.Equal(t, "recovery", decoded[0].Asset)
	assert.Equal(t, funnel.ActionSetStage, decoded[2].Kind)
	assert.Equal(t, "cart_recovery", decoded[2].Stage)
}

func TestExecuteActions_CancelByPrefix(t *testing.T) {
	f := setupProcessor(t)
	ctx := context.Background()

	_, err := f.jobs.Schedule(ctx, f.thread.ID, "cart_recovery_30m", time.Now().Add(time.Hour), funnel.PayloadKindActionList, map[string]interface{}{"actions": []interface{}{}})
	require.NoError(t, err)

	actions := []*funnel.Action{
		{Kind: funnel.ActionCancel, Prefix: "cart_recovery_"},
	}
	err = f.processor.ExecuteActions(ctx, f.thread, "", actions, Origin{})
	require.NoError(t, err)

	job, err := f.client.ScheduledJob.Query().
		Where(scheduledjob.ThreadIDEQ(f.thread.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, scheduledjob.StatusCancelled, job.Status)
}

func TestExecuteLLM_TextReply(t *testing.T) {
	f := setupProcessor(t)
	ctx := context.Background()

	err := f.processor.ExecuteLLM(ctx, f.thread, "Maria", &llm.Response{
		Type:    llm.ResponseText,
		Message: "Happy to explain the program!",
	})
	require.NoError(t, err)

	require.Len(t, f.sender.texts, 1)
	assert.Equal(t, "Happy to explain the program!", f.sender.texts[0])
	assert.Equal(t, "cold", f.thread.LeadStage)
}

func TestExecuteLLM_LegalStageSuggestionCommits(t *testing.T) {
	f := setupProcessor(t)
	ctx := context.Background()

	err := f.processor.ExecuteLLM(ctx, f.thread, "Maria", &llm.Response{
		Type:      llm.ResponseText,
		Message:   "Let's talk about what bothers you.",
		NextStage: "warming",
	})
	require.NoError(t, err)

	assert.Equal(t, "warming", f.thread.LeadStage)
	system := f.messageContents(t, entmessage.RoleSystem)
	require.Len(t, system, 1)
	assert.Contains(t, system[0], "cold -> warming")
}

func TestExecuteLLM_IllegalStageSuggestionRejected(t *testing.T) {
	f := setupProcessor(t)
	ctx := context.Background()

	err := f.processor.ExecuteLLM(ctx, f.thread, "Maria", &llm.Response{
		Type:      llm.ResponseText,
		Message:   "Sure thing!",
		NextStage: "platinum_vip",
	})
	require.NoError(t, err)

	// Reply still goes out; stage stays; the rejection is on the record.
	require.Len(t, f.sender.texts, 1)
	assert.Equal(t, "cold", f.thread.LeadStage)
	system := f.messageContents(t, entmessage.RoleSystem)
	require.Len(t, system, 1)
	assert.Contains(t, system[0], "platinum_vip")
}

func TestExecuteLLM_SkippedStageSuggestionRejected(t *testing.T) {
	f := setupProcessor(t)
	ctx := context.Background()

	// hot and customer are real stages, but no trigger reaches either
	// from cold; the suggestion must not let the backend skip the funnel.
	for _, target := range []string{"hot", "customer"} {
		err := f.processor.ExecuteLLM(ctx, f.thread, "Maria", &llm.Response{
			Type:      llm.ResponseText,
			Message:   "You're ready to buy!",
			NextStage: target,
		})
		require.NoError(t, err)
		assert.Equal(t, "cold", f.thread.LeadStage)
	}

	system := f.messageContents(t, entmessage.RoleSystem)
	require.Len(t, system, 2)
	assert.Contains(t, system[0], `not a legal successor of "cold"`)
}

func TestExecuteLLM_AudioDescriptor(t *testing.T) {
	f := setupProcessor(t)
	ctx := context.Background()

	err := f.processor.ExecuteLLM(ctx, f.thread, "Maria", &llm.Response{
		Type:    llm.ResponseAudio,
		AssetID: "plans",
	})
	require.NoError(t, err)

	require.Len(t, f.sender.mediaURLs, 1)
	assert.Equal(t, "https://media.example.com/audios/plans.opus", f.sender.mediaURLs[0])
	assistant := f.messageContents(t, entmessage.RoleAssistant)
	require.Len(t, assistant, 1)
	assert.Equal(t, "[Audio sent: plans]", assistant[0])
}
