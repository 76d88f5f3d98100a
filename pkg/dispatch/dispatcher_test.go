package dispatch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/ent"
	entcontact "github.com/leadflowhq/leadflow/ent/contact"
	entmessage "github.com/leadflowhq/leadflow/ent/message"
	"github.com/leadflowhq/leadflow/ent/salesevent"
	"github.com/leadflowhq/leadflow/ent/scheduledjob"
	"github.com/leadflowhq/leadflow/pkg/assets"
	"github.com/leadflowhq/leadflow/pkg/config"
	"github.com/leadflowhq/leadflow/pkg/detect"
	"github.com/leadflowhq/leadflow/pkg/funnel"
	"github.com/leadflowhq/leadflow/pkg/llm"
	"github.com/leadflowhq/leadflow/pkg/models"
	"github.com/leadflowhq/leadflow/pkg/respond"
	"github.com/leadflowhq/leadflow/pkg/services"
	testdb "github.com/leadflowhq/leadflow/test/database"
)

// stubSender records outbound sends.
type stubSender struct {
	mu        sync.Mutex
	texts     []string
	mediaURLs []string
}

func (s *stubSender) SendText(_ context.Context, _, body string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts = append(s.texts, body)
	return "SM-text", nil
}

func (s *stubSender) SendMedia(_ context.Context, _, mediaURL string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mediaURLs = append(s.mediaURLs, mediaURL)
	return "SM-media", nil
}

func (s *stubSender) sends() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.texts) + len(s.mediaURLs)
}

// stubLLM returns a fixed response or error and records the last request.
type stubLLM struct {
	resp    *llm.Response
	err     error
	lastReq *llm.Request
	calls   int
}

func (s *stubLLM) Respond(_ context.Context, req *llm.Request) (*llm.Response, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type dispatcherFixture struct {
	client     *ent.Client
	dispatcher *Dispatcher
	sender     *stubSender
	llm        *stubLLM
	threads    *services.ThreadService
	jobs       *services.JobService
	cfg        *config.Config
}

func setupDispatcher(t *testing.T) *dispatcherFixture {
	return setupDispatcherWithFunnels(t, config.GetBuiltinConfig().Funnels)
}

func setupDispatcherWithFunnels(t *testing.T, fc *config.FunnelsConfig) *dispatcherFixture {
	t.Helper()
	db := testdb.NewTestClient(t)
	entClient := db.Client

	cfg := &config.Config{
		PublicBaseURL: "https://media.example.com",
		Billing:       config.DefaultBillingConfig(),
		LLM:           config.DefaultLLMConfig(),
		Scheduler:     config.DefaultSchedulerConfig(),
		Funnels:       fc,
	}

	sender := &stubSender{}
	llmClient := &stubLLM{resp: &llm.Response{Type: llm.ResponseText, Message: "generated reply"}}

	contacts := services.NewContactService(entClient)
	threads := services.NewThreadService(entClient)
	messages := services.NewMessageService(entClient)
	jobs := services.NewJobService(entClient)
	sales := services.NewSalesService(entClient)
	engine := funnel.NewEngine(cfg.Funnels)

	processor := respond.NewProcessor(
		threads, messages, jobs, engine,
		assets.NewLibrary(cfg.Funnels),
		sender, nil, cfg,
	)
	dispatcher := NewDispatcher(
		contacts, threads, messages, jobs, sales, engine,
		detect.NewSupportDetector(nil),
		detect.NewFunnelDetector(cfg.Funnels),
		llmClient, processor, nil, nil, cfg,
	)

	return &dispatcherFixture{
		client:     entClient,
		dispatcher: dispatcher,
		sender:     sender,
		llm:        llmClient,
		threads:    threads,
		jobs:       jobs,
		cfg:        cfg,
	}
}

func (f *dispatcherFixture) onlyThread(t *testing.T) *ent.Thread {
	t.Helper()
	th, err := f.client.Thread.Query().Only(context.Background())
	require.NoError(t, err)
	return th
}

func (f *dispatcherFixture) messagesByRole(t *testing.T, threadID string, role entmessage.Role) []*ent.Message {
	t.Helper()
	msgs, err := f.client.Message.Query().
		Where(entmessage.ThreadIDEQ(threadID), entmessage.RoleEQ(role)).
		Order(ent.Asc(entmessage.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return msgs
}

func inbound(body string) models.InboundMessage {
	return models.InboundMessage{
		Phone:       "whatsapp:+15551112222",
		Body:        body,
		ProfileName: "Maria Silva",
		MessageSid:  "SM-" + body,
		Channel:     "whatsapp",
	}
}

func TestHandleInbound_FirstMessageRunsEntryTrigger(t *testing.T) {
	f := setupDispatcher(t)
	ctx := context.Background()

	err := f.dispatcher.HandleInbound(ctx, inbound("Hello! Saw you on instagram"))
	require.NoError(t, err)

	// Contact and thread materialized from the webhook alone.
	contact, err := f.client.Contact.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+15551112222", contact.Phone)
	require.NotNil(t, contact.Name)
	assert.Equal(t, "Maria Silva", *contact.Name)

	th := f.onlyThread(t)
	assert.Equal(t, "cold", th.LeadStage)
	assert.Equal(t, "primary", th.Meta["funnel_id"])
	assert.Contains(t, th.Meta["tags"], "instagram")

	// Entry trigger: welcome audio, then the unseeded -> cold transition.
	require.Len(t, f.sender.mediaURLs, 1)
	assert.Equal(t, "https://media.example.com/audios/welcome.opus", f.sender.mediaURLs[0])

	users := f.messagesByRole(t, th.ID, entmessage.RoleUser)
	require.Len(t, users, 1)
	assert.Equal(t, "Hello! Saw you on instagram", users[0].Content)

	// Trigger matched, so the generative backend was never asked.
	assert.Zero(t, f.llm.calls)
}

func TestHandleInbound_DetectionSeedsInitialStage(t *testing.T) {
	// A campaign funnel with no unseeded entry trigger: the detection
	// rule seeds the initial stage, and the same first message then
	// matches triggers from that stage.
	fc := config.GetBuiltinConfig().Funnels
	fc.Funnels["vip"] = &config.FunnelConfig{
		Type: "sales",
		Stages: []*config.StageConfig{
			{ID: "offer", Order: 1},
			{ID: "hot", Order: 2},
		},
		Triggers: []*config.TriggerConfig{{
			Name:        "vip_accept",
			PriorStages: []string{"offer"},
			Match:       &config.KeywordSpecConfig{Any: []string{"invite"}},
			Actions: []*config.ActionConfig{
				{Kind: "send_text", Text: "Your invite is confirmed."},
				{Kind: "set_stage", Stage: "hot"},
			},
		}},
	}
	fc.Detection.Campaigns = append(fc.Detection.Campaigns, &config.DetectRule{
		Keywords:     []string{"vip invite"},
		Funnel:       "vip",
		Source:       "campaign",
		InitialStage: "offer",
	})
	f := setupDispatcherWithFunnels(t, fc)
	ctx := context.Background()

	require.NoError(t, f.dispatcher.HandleInbound(ctx, inbound("I got a VIP invite")))

	th := f.onlyThread(t)
	assert.Equal(t, "vip", th.Meta["funnel_id"])
	assert.Equal(t, "hot", th.LeadStage)
	assert.Contains(t, f.sender.texts, "Your invite is confirmed.")
	assert.Zero(t, f.llm.calls)
}

func TestHandleInbound_RedeliveryIsDropped(t *testing.T) {
	f := setupDispatcher(t)
	ctx := context.Background()

	msg := inbound("Hello")
	require.NoError(t, f.dispatcher.HandleInbound(ctx, msg))
	require.NoError(t, f.dispatcher.HandleInbound(ctx, msg))

	th := f.onlyThread(t)
	users := f.messagesByRole(t, th.ID, entmessage.RoleUser)
	assert.Len(t, users, 1, "redelivered message must not duplicate the transcript")
	assert.Equal(t, 1, f.sender.sends(), "redelivery must not resend")
}

func TestHandleInbound_EmptyBodyPersistsMediaPlaceholder(t *testing.T) {
	f := setupDispatcher(t)
	ctx := context.Background()

	msg := inbound("")
	msg.MessageSid = "SM-media-only"
	require.NoError(t, f.dispatcher.HandleInbound(ctx, msg))

	th := f.onlyThread(t)
	users := f.messagesByRole(t, th.ID, entmessage.RoleUser)
	require.Len(t, users, 1)
	assert.Equal(t, "[media received]", users[0].Content)
}

func TestHandleInbound_TakeoverSilencesBot(t *testing.T) {
	f := setupDispatcher(t)
	ctx := context.Background()

	require.NoError(t, f.dispatcher.HandleInbound(ctx, inbound("Hello")))
	th := f.onlyThread(t)
	sendsBefore := f.sender.sends()

	_, _, err := f.threads.SetTakeover(ctx, th.ID, true, "operator")
	require.NoError(t, err)

	require.NoError(t, f.dispatcher.HandleInbound(ctx, inbound("how much is the plan?")))

	// The message lands in the transcript, but nothing goes out and the
	// stage does not move.
	users := f.messagesByRole(t, th.ID, entmessage.RoleUser)
	assert.Len(t, users, 2)
	assert.Equal(t, sendsBefore, f.sender.sends())
	assert.Zero(t, f.llm.calls)

	after, err := f.client.Thread.Get(ctx, th.ID)
	require.NoError(t, err)
	assert.Equal(t, "cold", after.LeadStage)
}

func TestHandleInbound_SupportIntentHandsOff(t *testing.T) {
	f := setupDispatcher(t)
	ctx := context.Background()

	require.NoError(t, f.dispatcher.HandleInbound(ctx, inbound("Hello")))
	require.NoError(t, f.dispatcher.HandleInbound(ctx, inbound("I was charged twice, I want a refund")))

	th := f.onlyThread(t)
	assert.True(t, th.HumanTakeover)

	// Canned handoff text went out; subsequent messages stay unanswered.
	assert.Contains(t, f.sender.texts, "Thanks for reaching out! One of our team members will get back to you shortly.")

	sendsBefore := f.sender.sends()
	require.NoError(t, f.dispatcher.HandleInbound(ctx, inbound("anyone there?")))
	assert.Equal(t, sendsBefore, f.sender.sends())
}

func TestHandleInbound_FunnelWalkColdToHot(t *testing.T) {
	f := setupDispatcher(t)
	ctx := context.Background()

	require.NoError(t, f.dispatcher.HandleInbound(ctx, inbound("Hi!")))
	require.NoError(t, f.dispatcher.HandleInbound(ctx, inbound("my belly bothers me all day")))
	require.NoError(t, f.dispatcher.HandleInbound(ctx, inbound("how much does it cost?")))
	require.NoError(t, f.dispatcher.HandleInbound(ctx, inbound("monthly please")))

	th := f.onlyThread(t)
	assert.Equal(t, "hot", th.LeadStage)

	// The monthly choice sent the checkout link and armed cart recovery.
	assert.Contains(t, f.sender.texts, "Here is your monthly checkout link, Maria: https://pay.example.com/monthly")
	job, err := f.client.ScheduledJob.Query().
		Where(scheduledjob.ThreadIDEQ(th.ID), scheduledjob.KeyEQ("cart_recovery_30m")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, scheduledjob.StatusPending, job.Status)

	// Any further inbound activity disarms it.
	require.NoError(t, f.dispatcher.HandleInbound(ctx, inbound("actually one more question")))
	job, err = f.client.ScheduledJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledjob.StatusCancelled, job.Status)
}

func TestHandleInbound_UnmatchedGoesToLLM(t *testing.T) {
	f := setupDispatcher(t)
	ctx := context.Background()

	require.NoError(t, f.dispatcher.HandleInbound(ctx, inbound("Hello")))
	require.NoError(t, f.dispatcher.HandleInbound(ctx, inbound("do you ship to Portugal?")))

	require.Equal(t, 1, f.llm.calls)
	assert.Contains(t, f.sender.texts, "generated reply")

	// The request carried funnel context and the current user text.
	require.NotNil(t, f.llm.lastReq)
	assert.Equal(t, "primary", f.llm.lastReq.FunnelID)
	assert.Equal(t, "cold", f.llm.lastReq.Stage)
	assert.Equal(t, "do you ship to Portugal?", f.llm.lastReq.UserText)

	// The current turn travels only as UserText; history holds the
	// prior conversation.
	require.NotEmpty(t, f.llm.lastReq.History)
	for _, turn := range f.llm.lastReq.History {
		assert.NotEqual(t, "do you ship to Portugal?", turn.Content)
	}
	last := f.llm.lastReq.History[len(f.llm.lastReq.History)-1]
	assert.Equal(t, "assistant", last.Role)
}

func TestHandleInbound_LLMUnavailableSendsFallback(t *testing.T) {
	f := setupDispatcher(t)
	f.llm.err = llm.ErrUnavailable
	ctx := context.Background()

	require.NoError(t, f.dispatcher.HandleInbound(ctx, inbound("Hello")))
	require.NoError(t, f.dispatcher.HandleInbound(ctx, inbound("do you ship to Portugal?")))

	assert.Contains(t, f.sender.texts, f.cfg.LLM.FallbackText)

	// The canned fallback never moves the stage.
	th := f.onlyThread(t)
	assert.Equal(t, "cold", th.LeadStage)
}

func saleEvent(orderID string) *models.BillingEvent {
	return &models.BillingEvent{
		Kind:       "sale.approved",
		OrderID:    orderID,
		BuyerEmail: "maria@example.com",
		BuyerPhone: "+15551112222",
		BuyerName:  "Maria Silva",
		Value:      97.5,
		RawPayload: `{"event":"sale.approved"}`,
	}
}

func TestHandleSale_AdvancesToCustomer(t *testing.T) {
	f := setupDispatcher(t)
	ctx := context.Background()

	// The contact reached hot and has a recovery follow-up armed.
	require.NoError(t, f.dispatcher.HandleInbound(ctx, inbound("Hi!")))
	require.NoError(t, f.dispatcher.HandleInbound(ctx, inbound("how much does it cost?")))
	require.NoError(t, f.dispatcher.HandleInbound(ctx, inbound("monthly please")))

	require.NoError(t, f.dispatcher.HandleSale(ctx, saleEvent("ORD-1")))

	th := f.onlyThread(t)
	assert.Equal(t, "customer", th.LeadStage)

	// Recovery died with the purchase.
	pending, err := f.client.ScheduledJob.Query().
		Where(scheduledjob.ThreadIDEQ(th.ID), scheduledjob.StatusEQ(scheduledjob.StatusPending)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, pending)

	// Post-purchase welcome rendered with the buyer's first name.
	assert.Contains(t, f.sender.texts, "Welcome aboard, Maria! Your access details are on their way to your email.")

	// Identity and aggregates learned from the billing payload.
	contact, err := f.client.Contact.Query().Where(entcontact.PhoneEQ("+15551112222")).Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, contact.Email)
	assert.Equal(t, "maria@example.com", *contact.Email)
	assert.Equal(t, 1, contact.OrderCount)
	assert.InDelta(t, 97.5, contact.TotalSpent, 0.001)
}

func TestHandleSale_RedeliveryIsIdempotent(t *testing.T) {
	f := setupDispatcher(t)
	ctx := context.Background()

	require.NoError(t, f.dispatcher.HandleInbound(ctx, inbound("Hi!")))
	require.NoError(t, f.dispatcher.HandleSale(ctx, saleEvent("ORD-1")))
	welcomes := f.sender.sends()

	require.NoError(t, f.dispatcher.HandleSale(ctx, saleEvent("ORD-1")))

	count, err := f.client.SalesEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, welcomes, f.sender.sends(), "redelivered sale must not resend the welcome")

	contact, err := f.client.Contact.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, contact.OrderCount)
}

func TestHandleSale_UnknownBuyerPersistsWithoutThread(t *testing.T) {
	f := setupDispatcher(t)
	ctx := context.Background()

	evt := saleEvent("ORD-9")
	evt.BuyerPhone = "+19998887777"
	evt.BuyerEmail = "stranger@example.com"
	require.NoError(t, f.dispatcher.HandleSale(ctx, evt))

	// Recorded for the ledger, but no conversation exists to advance.
	recorded, err := f.client.SalesEvent.Query().
		Where(salesevent.OrderIDEQ("ORD-9")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sale.approved", recorded.EventKind)

	threadCount, err := f.client.Thread.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, threadCount)
	assert.Zero(t, f.sender.sends())
}

func TestHandleAbandonment_ArmsRecoveryOnce(t *testing.T) {
	f := setupDispatcher(t)
	ctx := context.Background()

	require.NoError(t, f.dispatcher.HandleInbound(ctx, inbound("Hi!")))
	th := f.onlyThread(t)

	evt := saleEvent("ORD-2")
	evt.Kind = "cart.abandonment"
	require.NoError(t, f.dispatcher.HandleAbandonment(ctx, evt))

	job, err := f.client.ScheduledJob.Query().
		Where(scheduledjob.ThreadIDEQ(th.ID), scheduledjob.KeyEQ("cart_recovery_abandon")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, scheduledjob.StatusPending, job.Status)
	assert.WithinDuration(t, time.Now().Add(f.cfg.Scheduler.CartRecoveryDelay), job.FireAt, 10*time.Second)

	// A second checkout attempt must not reset the running timer.
	evt2 := saleEvent("ORD-3")
	evt2.Kind = "cart.abandonment"
	require.NoError(t, f.dispatcher.HandleAbandonment(ctx, evt2))

	unchanged, err := f.client.ScheduledJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, job.FireAt, unchanged.FireAt, time.Second)

	pending, err := f.client.ScheduledJob.Query().
		Where(scheduledjob.ThreadIDEQ(th.ID), scheduledjob.StatusEQ(scheduledjob.StatusPending)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
}

func TestHandleInbound_InvalidPhoneRejected(t *testing.T) {
	f := setupDispatcher(t)

	err := f.dispatcher.HandleInbound(context.Background(), models.InboundMessage{
		Phone: "whatsapp:", Body: "hi", Channel: "whatsapp",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	count, err := f.client.Thread.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
