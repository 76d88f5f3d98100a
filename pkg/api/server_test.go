package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/ent"
	"github.com/leadflowhq/leadflow/pkg/assets"
	"github.com/leadflowhq/leadflow/pkg/config"
	"github.com/leadflowhq/leadflow/pkg/detect"
	"github.com/leadflowhq/leadflow/pkg/dispatch"
	"github.com/leadflowhq/leadflow/pkg/funnel"
	"github.com/leadflowhq/leadflow/pkg/llm"
	"github.com/leadflowhq/leadflow/pkg/respond"
	"github.com/leadflowhq/leadflow/pkg/services"
	testdb "github.com/leadflowhq/leadflow/test/database"
)

const testWebhookSecret = "test-webhook-secret"

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

// stubLLM returns a fixed response.
type stubLLM struct {
	resp *llm.Response
}

func (s *stubLLM) Respond(_ context.Context, _ *llm.Request) (*llm.Response, error) {
	return s.resp, nil
}

type serverFixture struct {
	client *ent.Client
	server *Server
	sender *stubSender
}

// newTestServer wires a full Server against a test database, a recording
// sender, and a canned LLM. No WebSocket manager and no event sink.
func newTestServer(t *testing.T) *serverFixture {
	t.Helper()
	db := testdb.NewTestClient(t)
	entClient := db.Client

	cfg := &config.Config{
		PublicBaseURL: "https://media.example.com",
		Billing:       config.DefaultBillingConfig(),
		LLM:           config.DefaultLLMConfig(),
		Scheduler:     config.DefaultSchedulerConfig(),
		Funnels:       config.GetBuiltinConfig().Funnels,
	}
	cfg.Billing.WebhookSecret = testWebhookSecret

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
	dispatcher := dispatch.NewDispatcher(
		contacts, threads, messages, jobs, sales, engine,
		detect.NewSupportDetector(nil),
		detect.NewFunnelDetector(cfg.Funnels),
		llmClient, processor, nil, nil, cfg,
	)

	server := NewServer(cfg, db, threads, messages, contacts, sales, dispatcher, nil)
	server.SetEngine(engine)
	server.SetSender(sender)

	require.NoError(t, server.ValidateWiring())

	return &serverFixture{
		client: entClient,
		server: server,
		sender: sender,
	}
}

// do runs a request through the full middleware + routing stack.
func (f *serverFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.server.echo.ServeHTTP(rec, req)
	return rec
}

// seedThread creates a contact and thread seeded into the primary funnel.
func (f *serverFixture) seedThread(t *testing.T, phone, name, stage string) *ent.Thread {
	t.Helper()
	ctx := context.Background()

	contact, err := f.client.Contact.Create().
		SetID(uuid.New().String()).
		SetPhone(phone).
		SetName(name).
		Save(ctx)
	require.NoError(t, err)

	builder := f.client.Thread.Create().
		SetID(uuid.New().String()).
		SetContactID(contact.ID).
		SetChannel("whatsapp").
		SetMeta(map[string]interface{}{"funnel_id": "primary", "stage_id": stage})
	if stage != "" {
		builder.SetLeadStage(stage)
	}
	thread, err := builder.Save(ctx)
	require.NoError(t, err)
	return thread
}

func TestValidateWiring_MissingSender(t *testing.T) {
	s := &Server{}
	assert.Error(t, s.ValidateWiring())
}

func TestHealthEndpoint(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	require.NotNil(t, resp.Database)
	assert.Equal(t, "healthy", resp.Database.Status)
}

func TestVersionEndpoint(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/version", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "leadflow", resp.App)
	assert.NotEmpty(t, resp.Commit)
}
