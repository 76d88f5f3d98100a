// Package e2e provides end-to-end test infrastructure for the leadflow pipeline.
package e2e

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/ent"
	"github.com/leadflowhq/leadflow/pkg/api"
	"github.com/leadflowhq/leadflow/pkg/assets"
	"github.com/leadflowhq/leadflow/pkg/config"
	"github.com/leadflowhq/leadflow/pkg/database"
	"github.com/leadflowhq/leadflow/pkg/detect"
	"github.com/leadflowhq/leadflow/pkg/dispatch"
	"github.com/leadflowhq/leadflow/pkg/events"
	"github.com/leadflowhq/leadflow/pkg/funnel"
	"github.com/leadflowhq/leadflow/pkg/masking"
	"github.com/leadflowhq/leadflow/pkg/messenger"
	"github.com/leadflowhq/leadflow/pkg/respond"
	"github.com/leadflowhq/leadflow/pkg/scheduler"
	"github.com/leadflowhq/leadflow/pkg/services"
	leadslack "github.com/leadflowhq/leadflow/pkg/slack"
	testdb "github.com/leadflowhq/leadflow/test/database"
	"github.com/leadflowhq/leadflow/test/util"
)

// e2eWebhookSecret signs billing webhooks in tests.
const e2eWebhookSecret = "e2e-webhook-secret"

// TestApp boots a complete leadflow instance for e2e testing: a real HTTP
// server, real streaming infrastructure over pg_notify, a real outbound
// sender pointed at a fake provider, and a scripted LLM.
type TestApp struct {
	// Core
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client

	// Mocks / test wiring
	Provider  *FakeProvider
	LLMClient *ScriptedLLMClient

	// Real infrastructure
	EventPublisher *events.EventPublisher
	ConnManager    *events.ConnectionManager
	NotifyListener *events.NotifyListener
	Dispatcher     *dispatch.Dispatcher
	Scheduler      *scheduler.Scheduler
	Server         *api.Server

	// Runtime
	BaseURL string // e.g. "http://127.0.0.1:54321"
	WSURL   string // e.g. "ws://127.0.0.1:54321/api/v1/ws"

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	cfg               *config.Config
	llmClient         *ScriptedLLMClient
	cartRecoveryDelay time.Duration
	tickInterval      time.Duration
	slackService      *leadslack.Service
	dbClient          *database.Client // injected DB client (for multi-instance tests)
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithConfig sets a custom config. The messenger API base URL is still
// repointed at the fake provider.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(c *testAppConfig) { c.cfg = cfg }
}

// WithLLMClient sets a pre-scripted LLM client.
func WithLLMClient(client *ScriptedLLMClient) TestAppOption {
	return func(c *testAppConfig) { c.llmClient = client }
}

// WithCartRecoveryDelay shortens the cart-recovery follow-up delay so
// scheduler tests don't wait 30 minutes.
func WithCartRecoveryDelay(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.cartRecoveryDelay = d }
}

// WithTickInterval sets the scheduler poll interval.
func WithTickInterval(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.tickInterval = d }
}

// WithSlackService injects a Slack notification service into the
// dispatcher. Used for testing handoff notifications with a mock API.
func WithSlackService(svc *leadslack.Service) TestAppOption {
	return func(c *testAppConfig) { c.slackService = svc }
}

// WithDBClient injects a pre-created database client, skipping the default
// per-test schema creation. Used when two TestApp instances must share one
// database schema.
func WithDBClient(client *database.Client) TestAppOption {
	return func(c *testAppConfig) { c.dbClient = client }
}

// NewTestApp creates and starts a full leadflow test instance.
// Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{
		tickInterval: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(tc)
	}

	if tc.cfg == nil {
		tc.cfg = defaultTestConfig()
	}
	if tc.llmClient == nil {
		tc.llmClient = NewScriptedLLMClient()
	}

	// Scheduler settings are always test-appropriate, whatever the config.
	if tc.cfg.Scheduler == nil {
		tc.cfg.Scheduler = config.DefaultSchedulerConfig()
	}
	tc.cfg.Scheduler.TickInterval = tc.tickInterval
	tc.cfg.Scheduler.JobLease = 5 * time.Second
	if tc.cartRecoveryDelay > 0 {
		tc.cfg.Scheduler.CartRecoveryDelay = tc.cartRecoveryDelay
	}

	// 1. Database — *database.Client for the API server, *ent.Client for
	// direct assertions.
	var dbClient *database.Client
	if tc.dbClient != nil {
		dbClient = tc.dbClient
	} else {
		dbClient = testdb.NewTestClient(t)
	}
	entClient := dbClient.Client

	// 2. Event publishing — real, backed by the test DB.
	eventPublisher := events.NewEventPublisher(dbClient.DB())

	// 3. Streaming infrastructure.
	eventService := services.NewEventService(entClient)
	adapter := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(adapter, 5*time.Second)

	// 4. NotifyListener — real, dedicated pgx connection.
	baseConnStr := util.GetBaseConnectionString(t)
	notifyListener := events.NewNotifyListener(baseConnStr, connManager)
	ctx := context.Background()
	require.NoError(t, notifyListener.Start(ctx))
	connManager.SetListener(notifyListener)

	// 5. Fake provider — an httptest server speaking the provider's
	// Messages API, exercised through the real HTTP sender.
	provider := NewFakeProvider(t)
	tc.cfg.Messenger.APIBaseURL = provider.URL()
	sender := messenger.NewHTTPSender(tc.cfg.Messenger)

	// 6. Domain services.
	contactService := services.NewContactService(entClient)
	threadService := services.NewThreadService(entClient)
	messageService := services.NewMessageService(entClient)
	jobService := services.NewJobService(entClient)
	salesService := services.NewSalesService(entClient)

	// 7. Pipeline.
	engine := funnel.NewEngine(tc.cfg.Funnels)
	processor := respond.NewProcessor(
		threadService, messageService, jobService, engine,
		assets.NewLibrary(tc.cfg.Funnels),
		sender, eventPublisher, tc.cfg,
	)
	dispatcher := dispatch.NewDispatcher(
		contactService, threadService, messageService, jobService, salesService,
		engine,
		detect.NewSupportDetector(nil),
		detect.NewFunnelDetector(tc.cfg.Funnels),
		tc.llmClient, processor, eventPublisher, tc.slackService, tc.cfg,
	)

	// 8. Follow-up scheduler, sharing the dispatcher's per-thread locks.
	sched := scheduler.NewScheduler(jobService, threadService, processor, dispatcher, tc.cfg.Scheduler)
	sched.Start(ctx)

	// 9. HTTP server on a random port.
	server := api.NewServer(tc.cfg, dbClient, threadService, messageService, contactService, salesService, dispatcher, connManager)
	server.SetEngine(engine)
	server.SetSender(sender)
	server.SetMasker(masking.NewService(tc.cfg.Masking))
	server.SetEventSink(eventPublisher)

	require.NoError(t, server.ValidateWiring(), "server wiring incomplete — did you forget a Set* call?")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		_ = server.StartWithListener(ln)
	}()

	addr := ln.Addr().String()

	app := &TestApp{
		Config:         tc.cfg,
		DBClient:       dbClient,
		EntClient:      entClient,
		Provider:       provider,
		LLMClient:      tc.llmClient,
		EventPublisher: eventPublisher,
		ConnManager:    connManager,
		NotifyListener: notifyListener,
		Dispatcher:     dispatcher,
		Scheduler:      sched,
		Server:         server,
		BaseURL:        fmt.Sprintf("http://%s", addr),
		WSURL:          fmt.Sprintf("ws://%s/api/v1/ws", addr),
		t:              t,
	}

	// Register cleanup in reverse-creation order.
	t.Cleanup(func() {
		sched.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		notifyListener.Stop(context.Background())
		// DB cleanup handled by testdb.NewTestClient/SetupTestDatabase
	})

	return app
}

// defaultTestConfig builds a config with builtin funnels, the shared test
// webhook secret, and provider credentials the fake provider accepts.
func defaultTestConfig() *config.Config {
	messengerCfg := config.DefaultMessengerConfig()
	messengerCfg.AccountID = "AC-e2e"
	messengerCfg.AuthToken = "e2e-auth-token"
	messengerCfg.FromNumber = "whatsapp:+14155238886"

	billingCfg := config.DefaultBillingConfig()
	billingCfg.WebhookSecret = e2eWebhookSecret

	return &config.Config{
		PublicBaseURL: "https://media.example.com",
		Messenger:     messengerCfg,
		Billing:       billingCfg,
		LLM:           config.DefaultLLMConfig(),
		Scheduler:     config.DefaultSchedulerConfig(),
		Retention:     config.DefaultRetentionConfig(),
		Masking:       config.DefaultMaskingConfig(),
		Funnels:       config.GetBuiltinConfig().Funnels,
	}
}
