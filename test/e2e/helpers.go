package e2e

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/ent"
	"github.com/leadflowhq/leadflow/ent/contact"
	"github.com/leadflowhq/leadflow/ent/message"
	"github.com/leadflowhq/leadflow/ent/scheduledjob"
	"github.com/leadflowhq/leadflow/ent/thread"
)

// ────────────────────────────────────────────────────────────
// Webhook Helpers
// ────────────────────────────────────────────────────────────

// SendInbound delivers a provider webhook for one user message and expects
// a 2xx acknowledgment. A fresh message sid is generated per call.
func (app *TestApp) SendInbound(t *testing.T, phone, body string) {
	t.Helper()
	app.SendInboundSid(t, phone, body, "SM-"+uuid.New().String(), http.StatusOK)
}

// SendInboundSid delivers a provider webhook with an explicit message sid,
// asserting the given status. Used for redelivery tests.
func (app *TestApp) SendInboundSid(t *testing.T, phone, body, sid string, expectedStatus int) {
	t.Helper()
	form := url.Values{}
	form.Set("From", "whatsapp:"+phone)
	form.Set("Body", body)
	form.Set("MessageSid", sid)
	form.Set("ProfileName", "Maria Silva")

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
		app.BaseURL+"/webhooks/messaging", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	respBody, _ := io.ReadAll(resp.Body)
	require.Equal(t, expectedStatus, resp.StatusCode,
		"messaging webhook: unexpected status (body: %s)", respBody)
}

// SendBilling delivers a signed billing webhook and asserts the status.
// The signature is HMAC-SHA256 hex over the raw body, sent in X-Signature.
func (app *TestApp) SendBilling(t *testing.T, event map[string]interface{}, expectedStatus int) {
	t.Helper()
	body, err := json.Marshal(event)
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
		app.BaseURL+"/webhooks/billing", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Signature", SignBilling(e2eWebhookSecret, body))

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	respBody, _ := io.ReadAll(resp.Body)
	require.Equal(t, expectedStatus, resp.StatusCode,
		"billing webhook: unexpected status (body: %s)", respBody)
}

// SignBilling computes the billing webhook signature for a raw body.
func SignBilling(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// ────────────────────────────────────────────────────────────
// HTTP Client Helpers
// ────────────────────────────────────────────────────────────

func (app *TestApp) getJSON(t *testing.T, path string, expectedStatus int) map[string]interface{} {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, app.BaseURL+path, nil)
	require.NoError(t, err)
	return app.doJSON(t, req, expectedStatus)
}

func (app *TestApp) sendJSON(t *testing.T, method, path string, body interface{}, expectedStatus int) map[string]interface{} {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return app.doJSON(t, req, expectedStatus)
}

func (app *TestApp) doJSON(t *testing.T, req *http.Request, expectedStatus int) map[string]interface{} {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, resp.StatusCode,
		"%s %s: unexpected status (body: %s)", req.Method, req.URL.Path, data)
	var result map[string]interface{}
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &result))
	}
	return result
}

// GetThreadJSON calls GET /api/v1/threads/:id.
func (app *TestApp) GetThreadJSON(t *testing.T, threadID string) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/api/v1/threads/"+threadID, http.StatusOK)
}

// PatchThread calls PATCH /api/v1/threads/:id.
func (app *TestApp) PatchThread(t *testing.T, threadID string, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	return app.sendJSON(t, http.MethodPatch, "/api/v1/threads/"+threadID, body, http.StatusOK)
}

// SetTakeover calls POST /api/v1/threads/:id/takeover.
func (app *TestApp) SetTakeover(t *testing.T, threadID string, enabled bool) map[string]interface{} {
	t.Helper()
	return app.sendJSON(t, http.MethodPost, "/api/v1/threads/"+threadID+"/takeover",
		map[string]interface{}{"enabled": enabled}, http.StatusOK)
}

// SendHumanReply calls POST /api/v1/threads/:id/messages.
func (app *TestApp) SendHumanReply(t *testing.T, threadID, text string) map[string]interface{} {
	t.Helper()
	return app.sendJSON(t, http.MethodPost, "/api/v1/threads/"+threadID+"/messages",
		map[string]interface{}{"text": text}, http.StatusCreated)
}

// ────────────────────────────────────────────────────────────
// Database Assertions
// ────────────────────────────────────────────────────────────

// ThreadByPhone looks up the single thread of the contact with the phone.
func (app *TestApp) ThreadByPhone(t *testing.T, phone string) *ent.Thread {
	t.Helper()
	ctx := context.Background()
	c, err := app.EntClient.Contact.Query().Where(contact.PhoneEQ(phone)).Only(ctx)
	require.NoError(t, err)
	th, err := app.EntClient.Thread.Query().Where(thread.ContactIDEQ(c.ID)).Only(ctx)
	require.NoError(t, err)
	return th
}

// Messages returns a thread's transcript, oldest first.
func (app *TestApp) Messages(t *testing.T, threadID string) []*ent.Message {
	t.Helper()
	msgs, err := app.EntClient.Message.Query().
		Where(message.ThreadIDEQ(threadID)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return msgs
}

// Jobs returns all scheduled jobs for a thread, oldest first.
func (app *TestApp) Jobs(t *testing.T, threadID string) []*ent.ScheduledJob {
	t.Helper()
	jobs, err := app.EntClient.ScheduledJob.Query().
		Where(scheduledjob.ThreadIDEQ(threadID)).
		Order(ent.Asc(scheduledjob.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return jobs
}

// WaitForStage polls the DB until the contact's thread reaches the stage,
// then returns the thread.
func (app *TestApp) WaitForStage(t *testing.T, phone, stage string) *ent.Thread {
	t.Helper()
	var th *ent.Thread
	require.Eventually(t, func() bool {
		ctx := context.Background()
		c, err := app.EntClient.Contact.Query().Where(contact.PhoneEQ(phone)).Only(ctx)
		if err != nil {
			return false
		}
		th, err = app.EntClient.Thread.Query().Where(thread.ContactIDEQ(c.ID)).Only(ctx)
		if err != nil {
			return false
		}
		return th.LeadStage == stage
	}, 15*time.Second, 50*time.Millisecond,
		"thread for %s did not reach stage %q", phone, stage)
	return th
}

// WaitForJobStatus polls the DB until the job reaches the status.
func (app *TestApp) WaitForJobStatus(t *testing.T, jobID string, status scheduledjob.Status) {
	t.Helper()
	var last scheduledjob.Status
	require.Eventually(t, func() bool {
		job, err := app.EntClient.ScheduledJob.Get(context.Background(), jobID)
		if err != nil {
			return false
		}
		last = job.Status
		return job.Status == status
	}, 15*time.Second, 50*time.Millisecond,
		"job %s did not reach status %q (last: %s)", jobID, status, last)
}

// WaitForSendCount polls until the fake provider accepted at least n sends.
func (app *TestApp) WaitForSendCount(t *testing.T, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return app.Provider.SendCount() >= n
	}, 15*time.Second, 50*time.Millisecond,
		"provider did not reach %d sends (got %d)", n, app.Provider.SendCount())
}

// transcript flattens messages into "role:content" lines for assertions.
func transcript(msgs []*ent.Message) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, fmt.Sprintf("%s:%s", m.Role, m.Content))
	}
	return out
}
