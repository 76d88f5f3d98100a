package api

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/ent/salesevent"
)

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyBillingSignature(t *testing.T) {
	body := []byte(`{"event":"sale.approved","order_id":"ORD-1"}`)
	good := signBody(testWebhookSecret, body)

	t.Run("valid header signature", func(t *testing.T) {
		assert.True(t, verifyBillingSignature(testWebhookSecret, body, good, ""))
	})

	t.Run("tampered body rejected", func(t *testing.T) {
		tampered := []byte(`{"event":"sale.approved","order_id":"ORD-2"}`)
		assert.False(t, verifyBillingSignature(testWebhookSecret, tampered, good, ""))
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		assert.False(t, verifyBillingSignature("other-secret", body, good, ""))
	})

	t.Run("body fallback signs with field empty", func(t *testing.T) {
		template := `{"event":"sale.approved","order_id":"ORD-1","signature":"%s"}`
		sig := signBody(testWebhookSecret, []byte(fmt.Sprintf(template, "")))
		signed := []byte(fmt.Sprintf(template, sig))
		assert.True(t, verifyBillingSignature(testWebhookSecret, signed, "", sig))
	})

	t.Run("no signature at all rejected", func(t *testing.T) {
		assert.False(t, verifyBillingSignature(testWebhookSecret, body, "", ""))
	})

	t.Run("empty secret rejects everything", func(t *testing.T) {
		assert.False(t, verifyBillingSignature("", body, good, ""))
	})
}

func billingRequest(body []byte, sig string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/billing", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if sig != "" {
		req.Header.Set("X-Signature", sig)
	}
	return req
}

func TestBillingWebhook_SignatureMismatchHasNoSideEffects(t *testing.T) {
	f := newTestServer(t)
	body := []byte(`{"event":"sale.approved","order_id":"ORD-1","buyer_phone":"+15551112222","value":97.5}`)

	rec := f.do(billingRequest(body, "deadbeef"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	count, err := f.client.SalesEvent.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, f.sender.sends())
}

func TestBillingWebhook_SaleApproved(t *testing.T) {
	f := newTestServer(t)
	thread := f.seedThread(t, "+15551112222", "Maria Silva", "hot")

	body := []byte(`{"event":"sale.approved","order_id":"ORD-1","buyer_email":"maria@example.com","buyer_phone":"+15551112222","value":97.5,"product_id":"plan_monthly"}`)
	rec := f.do(billingRequest(body, signBody(testWebhookSecret, body)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	ctx := context.Background()
	sale, err := f.client.SalesEvent.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", sale.OrderID)
	assert.Equal(t, "sale.approved", sale.EventKind)

	updated, err := f.client.Thread.Get(ctx, thread.ID)
	require.NoError(t, err)
	assert.Equal(t, "customer", updated.LeadStage)

	// Post-purchase welcome went out.
	assert.NotZero(t, f.sender.sends())
}

func TestBillingWebhook_RedeliveryIsIdempotent(t *testing.T) {
	f := newTestServer(t)
	f.seedThread(t, "+15551112222", "Maria Silva", "hot")

	body := []byte(`{"event":"sale.approved","order_id":"ORD-1","buyer_phone":"+15551112222","value":97.5}`)
	sig := signBody(testWebhookSecret, body)

	rec := f.do(billingRequest(body, sig))
	require.Equal(t, http.StatusOK, rec.Code)
	rec = f.do(billingRequest(body, sig))
	require.Equal(t, http.StatusOK, rec.Code)

	count, err := f.client.SalesEvent.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBillingWebhook_UnknownEventPersistedAndIgnored(t *testing.T) {
	f := newTestServer(t)

	body := []byte(`{"event":"subscription.renewed","order_id":"ORD-9","value":19.9}`)
	rec := f.do(billingRequest(body, signBody(testWebhookSecret, body)))
	require.Equal(t, http.StatusOK, rec.Code)

	sale, err := f.client.SalesEvent.Query().
		Where(salesevent.EventKindEQ("subscription.renewed")).
		Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ORD-9", sale.OrderID)
	assert.Zero(t, f.sender.sends())
}

func TestBillingWebhook_MalformedBodyRejected(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(billingRequest([]byte("not-json"), "irrelevant"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
