package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/ent/message"
)

func messagingForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/messaging", strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func TestMessagingWebhook_FormPostRunsPipeline(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(messagingForm(url.Values{
		"From":        {"whatsapp:+15551112222"},
		"Body":        {"Hi!"},
		"MessageSid":  {"SM-1"},
		"ProfileName": {"Maria Silva"},
	}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	ctx := context.Background()
	thread, err := f.client.Thread.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cold", thread.LeadStage)

	userMsgs, err := f.client.Message.Query().
		Where(message.RoleEQ(message.RoleUser)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, userMsgs)

	// Entry trigger sends the welcome audio.
	assert.NotZero(t, f.sender.sends())
}

func TestMessagingWebhook_JSONBodyAccepted(t *testing.T) {
	f := newTestServer(t)

	body := `{"From":"whatsapp:+15551112222","Body":"Hi!","MessageSid":"SM-1","ProfileName":"Maria Silva"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/messaging", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := f.do(req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	count, err := f.client.Thread.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMessagingWebhook_RedeliveryAcknowledged(t *testing.T) {
	f := newTestServer(t)

	values := url.Values{
		"From":       {"whatsapp:+15551112222"},
		"Body":       {"Hi!"},
		"MessageSid": {"SM-1"},
	}
	rec := f.do(messagingForm(values))
	require.Equal(t, http.StatusOK, rec.Code)
	rec = f.do(messagingForm(values))
	require.Equal(t, http.StatusOK, rec.Code)

	userMsgs, err := f.client.Message.Query().
		Where(message.RoleEQ(message.RoleUser)).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, userMsgs)
}

func TestMessagingWebhook_MissingFromRejected(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(messagingForm(url.Values{"Body": {"Hi!"}}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMessagingWebhook_InvalidPhoneRejected(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(messagingForm(url.Values{
		"From": {"whatsapp:garbage"},
		"Body": {"Hi!"},
	}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
