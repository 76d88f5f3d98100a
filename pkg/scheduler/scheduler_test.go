package scheduler

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
	"github.com/leadflowhq/leadflow/pkg/messenger"
	"github.com/leadflowhq/leadflow/pkg/respond"
	"github.com/leadflowhq/leadflow/pkg/services"
	testdb "github.com/leadflowhq/leadflow/test/database"
)

// serialLocker is a process-local stand-in for the dispatcher's keyed
// lock registry.
type serialLocker struct{ mu sync.Mutex }

func (l *serialLocker) WithThreadLock(_ string, fn func() error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn()
}

type fakeSender struct {
	mu        sync.Mutex
	texts     []string
	mediaURLs []string
	permanent bool
}

func (f *fakeSender) SendText(_ context.Context, _, body string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.permanent {
		return "", messenger.ErrPermanent
	}
	f.texts = append(f.texts, body)
	return "SM-text", nil
}

func (f *fakeSender) SendMedia(_ context.Context, _, mediaURL string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.permanent {
		return "", messenger.ErrPermanent
	}
	f.mediaURLs = append(f.mediaURLs, mediaURL)
	return "SM-media", nil
}

type schedulerFixture struct {
	client    *ent.Client
	scheduler *Scheduler
	sender    *fakeSender
	jobs      *services.JobService
	threads   *services.ThreadService
	thread    *ent.Thread
	cfg       *config.Config
}

func setupScheduler(t *testing.T) *schedulerFixture {
	t.Helper()
	db := testdb.NewTestClient(t)
	entClient := db.Client

	cfg := &config.Config{
		PublicBaseURL: "https://media.example.com",
		Scheduler:     config.DefaultSchedulerConfig(),
		Funnels:       config.GetBuiltinConfig().Funnels,
	}

	sender := &fakeSender{}
	threads := services.NewThreadService(entClient)
	messages := services.NewMessageService(entClient)
	jobs := services.NewJobService(entClient)
	processor := respond.NewProcessor(
		threads, messages, jobs,
		funnel.NewEngine(cfg.Funnels),
		assets.NewLibrary(cfg.Funnels),
		sender, nil, cfg,
	)
	sched := NewScheduler(jobs, threads, processor, &serialLocker{}, cfg.Scheduler)

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
		SetLeadStage("hot").
		SetMeta(map[string]interface{}{"funnel_id": "primary", "stage_id": "hot"}).
		Save(ctx)
	require.NoError(t, err)

	return &schedulerFixture{
		client:    entClient,
		scheduler: sched,
		sender:    sender,
		jobs:      jobs,
		threads:   threads,
		thread:    thread,
		cfg:       cfg,
	}
}

func (f *schedulerFixture) scheduleRecovery(t *testing.T, fireAt time.Time) *ent.ScheduledJob {
	t.Helper()
	payload, err := funnel.EncodePayload(funnel.FromConfig(f.cfg.Funnels.CartRecovery))
	require.NoError(t, err)
	job, err := f.jobs.Schedule(context.Background(), f.thread.ID, "cart_recovery_30m", fireAt, funnel.PayloadKindActionList, payload)
	require.NoError(t, err)
	return job
}

func (f *schedulerFixture) jobStatus(t *testing.T, jobID string) scheduledjob.Status {
	t.Helper()
	job, err := f.client.ScheduledJob.Get(context.Background(), jobID)
	require.NoError(t, err)
	return job.Status
}

func TestTick_FiresDueJob(t *testing.T) {
	f := setupScheduler(t)
	ctx := context.Background()

	job := f.scheduleRecovery(t, time.Now().Add(-time.Minute))

	assert.Equal(t, 1, f.scheduler.tick(ctx))

	// The recovery sequence went out and moved the thread.
	require.Len(t, f.sender.mediaURLs, 1)
	assert.Equal(t, "https://media.example.com/audios/recovery.opus", f.sender.mediaURLs[0])
	require.Len(t, f.sender.texts, 1)
	assert.Equal(t, "Your spot is still reserved, Maria. The link is waiting for you: https://pay.example.com/monthly", f.sender.texts[0])

	thread, err := f.client.Thread.Get(ctx, f.thread.ID)
	require.NoError(t, err)
	assert.Equal(t, "cart_recovery", thread.LeadStage)

	assert.Equal(t, scheduledjob.StatusFired, f.jobStatus(t, job.ID))
}

func TestTick_FutureJobIsLeftAlone(t *testing.T) {
	f := setupScheduler(t)

	job := f.scheduleRecovery(t, time.Now().Add(time.Hour))

	assert.Zero(t, f.scheduler.tick(context.Background()))
	assert.Equal(t, scheduledjob.StatusPending, f.jobStatus(t, job.ID))
	assert.Empty(t, f.sender.texts)
	assert.Empty(t, f.sender.mediaURLs)
}

func TestTick_TakeoverSuppressesJob(t *testing.T) {
	f := setupScheduler(t)
	ctx := context.Background()

	job := f.scheduleRecovery(t, time.Now().Add(-time.Minute))
	_, _, err := f.threads.SetTakeover(ctx, f.thread.ID, true, "operator")
	require.NoError(t, err)

	assert.Equal(t, 1, f.scheduler.tick(ctx))

	assert.Equal(t, scheduledjob.StatusCancelled, f.jobStatus(t, job.ID))
	assert.Empty(t, f.sender.texts)
	assert.Empty(t, f.sender.mediaURLs)

	thread, err := f.client.Thread.Get(ctx, f.thread.ID)
	require.NoError(t, err)
	assert.Equal(t, "hot", thread.LeadStage)
}

func TestTick_MalformedPayloadFailsJob(t *testing.T) {
	f := setupScheduler(t)
	ctx := context.Background()

	job, err := f.jobs.Schedule(ctx, f.thread.ID, "cart_recovery_bad", time.Now().Add(-time.Minute),
		funnel.PayloadKindActionList, map[string]interface{}{"actions": "not-a-list"})
	require.NoError(t, err)

	assert.Equal(t, 1, f.scheduler.tick(ctx))

	stored, err := f.client.ScheduledJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledjob.StatusFailed, stored.Status)
	require.NotNil(t, stored.ErrorMessage)
	assert.Contains(t, *stored.ErrorMessage, "decode payload")
}

func TestTick_UnknownActionKindFailsJob(t *testing.T) {
	f := setupScheduler(t)
	ctx := context.Background()

	job, err := f.jobs.Schedule(ctx, f.thread.ID, "mystery", time.Now().Add(-time.Minute),
		"reminder_email", map[string]interface{}{})
	require.NoError(t, err)

	assert.Equal(t, 1, f.scheduler.tick(ctx))
	assert.Equal(t, scheduledjob.StatusFailed, f.jobStatus(t, job.ID))
}

func TestTick_SendFailureMarksJobFailed(t *testing.T) {
	f := setupScheduler(t)
	f.sender.permanent = true
	ctx := context.Background()

	job := f.scheduleRecovery(t, time.Now().Add(-time.Minute))

	assert.Equal(t, 1, f.scheduler.tick(ctx))
	assert.Equal(t, scheduledjob.StatusFailed, f.jobStatus(t, job.ID))

	// The abort left its trace in the transcript.
	system, err := f.client.Message.Query().
		Where(entmessage.ThreadIDEQ(f.thread.ID), entmessage.RoleEQ(entmessage.RoleSystem)).
		All(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, system)
	assert.Contains(t, system[0].Content, "aborted")
}

func TestTick_ExpiredLeaseIsReclaimed(t *testing.T) {
	f := setupScheduler(t)
	ctx := context.Background()

	job := f.scheduleRecovery(t, time.Now().Add(-time.Minute))

	// Another worker leased the job but its lease has already lapsed, as
	// after a crash mid-execution.
	claimed, err := f.jobs.ClaimDue(ctx, "dead-worker", -time.Second, 10)
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	assert.Equal(t, 1, f.scheduler.tick(ctx))
	assert.Equal(t, scheduledjob.StatusFired, f.jobStatus(t, job.ID))
}
