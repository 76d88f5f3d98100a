package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/ent/message"
)

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestListThreadsHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name   string
		query  string
		errMsg string
	}{
		{
			name:   "invalid takeover flag",
			query:  "takeover=maybe",
			errMsg: "invalid takeover",
		},
		{
			name:   "search too short",
			query:  "search=ab",
			errMsg: "search query must be at least 3 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/threads?"+tt.query, nil)
			c := e.NewContext(req, httptest.NewRecorder())

			err := s.listThreadsHandler(c)
			if assert.Error(t, err) {
				he, ok := err.(*echo.HTTPError)
				if assert.True(t, ok, "expected echo.HTTPError") {
					assert.Equal(t, http.StatusBadRequest, he.Code)
					assert.Contains(t, he.Message, tt.errMsg)
				}
			}
		})
	}
}

func TestGetThread_NotFound(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/threads/00000000-0000-0000-0000-000000000000", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListThreads_FiltersByStage(t *testing.T) {
	f := newTestServer(t)
	f.seedThread(t, "+15551110001", "Maria Silva", "hot")
	f.seedThread(t, "+15551110002", "Joana Reis", "cold")

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/threads?stage=hot", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		TotalCount int `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalCount)
}

func TestPatchThread_StageOverride(t *testing.T) {
	f := newTestServer(t)
	thread := f.seedThread(t, "+15551112222", "Maria Silva", "warm")

	req := jsonRequest(http.MethodPatch, "/api/v1/threads/"+thread.ID, `{"stage":"hot"}`)
	req.Header.Set("X-Forwarded-User", "ana@example.com")
	rec := f.do(req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	ctx := context.Background()
	updated, err := f.client.Thread.Get(ctx, thread.ID)
	require.NoError(t, err)
	assert.Equal(t, "hot", updated.LeadStage)
	assert.Equal(t, "hot", updated.Meta["stage_id"])

	// Override is recorded as an attributed system message.
	sysMsg, err := f.client.Message.Query().
		Where(message.RoleEQ(message.RoleSystem)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Stage changed: warm -> hot (by ana@example.com)", sysMsg.Content)
}

func TestPatchThread_UndefinedStageRejected(t *testing.T) {
	f := newTestServer(t)
	thread := f.seedThread(t, "+15551112222", "Maria Silva", "warm")

	rec := f.do(jsonRequest(http.MethodPatch, "/api/v1/threads/"+thread.ID, `{"stage":"vip"}`))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	updated, err := f.client.Thread.Get(context.Background(), thread.ID)
	require.NoError(t, err)
	assert.Equal(t, "warm", updated.LeadStage)
}

func TestPatchThread_MetaMerge(t *testing.T) {
	f := newTestServer(t)
	thread := f.seedThread(t, "+15551112222", "Maria Silva", "warm")

	rec := f.do(jsonRequest(http.MethodPatch, "/api/v1/threads/"+thread.ID,
		`{"meta":{"tags":["vip"],"notes":"asked about refunds"}}`))
	require.Equal(t, http.StatusOK, rec.Code)

	updated, err := f.client.Thread.Get(context.Background(), thread.ID)
	require.NoError(t, err)
	assert.Equal(t, "asked about refunds", updated.Meta["notes"])
	assert.Contains(t, updated.Meta["tags"], "vip")
}

func TestPatchThread_EmptyBodyRejected(t *testing.T) {
	f := newTestServer(t)
	thread := f.seedThread(t, "+15551112222", "Maria Silva", "warm")

	rec := f.do(jsonRequest(http.MethodPatch, "/api/v1/threads/"+thread.ID, `{}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTakeoverToggle(t *testing.T) {
	f := newTestServer(t)
	thread := f.seedThread(t, "+15551112222", "Maria Silva", "warm")

	req := jsonRequest(http.MethodPost, "/api/v1/threads/"+thread.ID+"/takeover", `{"enabled":true}`)
	req.Header.Set("X-Forwarded-User", "ana@example.com")
	rec := f.do(req)
	require.Equal(t, http.StatusOK, rec.Code)

	ctx := context.Background()
	updated, err := f.client.Thread.Get(ctx, thread.ID)
	require.NoError(t, err)
	assert.True(t, updated.HumanTakeover)

	sysMsg, err := f.client.Message.Query().
		Where(message.RoleEQ(message.RoleSystem)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Human takeover enabled by ana@example.com", sysMsg.Content)
}

func TestHumanReply_SendsAndRecords(t *testing.T) {
	f := newTestServer(t)
	thread := f.seedThread(t, "+15551112222", "Maria Silva", "warm")

	req := jsonRequest(http.MethodPost, "/api/v1/threads/"+thread.ID+"/messages",
		`{"text":"Hello, this is Ana from support."}`)
	req.Header.Set("X-Forwarded-User", "ana@example.com")
	rec := f.do(req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	assert.Equal(t, []string{"Hello, this is Ana from support."}, f.sender.texts)

	msg, err := f.client.Message.Query().Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, message.RoleAssistant, msg.Role)
	assert.True(t, msg.IsHuman)
	require.NotNil(t, msg.Author)
	assert.Equal(t, "ana@example.com", *msg.Author)
}

func TestHumanReply_EmptyTextRejected(t *testing.T) {
	f := newTestServer(t)
	thread := f.seedThread(t, "+15551112222", "Maria Silva", "warm")

	rec := f.do(jsonRequest(http.MethodPost, "/api/v1/threads/"+thread.ID+"/messages", `{"text":"   "}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, f.sender.sends())
}

func TestListMessages_ChronologicalSlice(t *testing.T) {
	f := newTestServer(t)
	thread := f.seedThread(t, "+15551112222", "Maria Silva", "warm")

	ctx := context.Background()
	for _, content := range []string{"first", "second", "third"} {
		_, err := f.client.Message.Create().
			SetID(uuid.New().String()).
			SetThreadID(thread.ID).
			SetRole(message.RoleUser).
			SetContent(content).
			Save(ctx)
		require.NoError(t, err)
	}

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/threads/"+thread.ID+"/messages?limit=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Messages []struct {
			Content string `json:"content"`
		} `json:"messages"`
		TotalCount int `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalCount)
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, "first", resp.Messages[0].Content)
	assert.Equal(t, "second", resp.Messages[1].Content)
}
