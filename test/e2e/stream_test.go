package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOperatorStream covers the WebSocket surface: subscription catch-up
// delivers events published before the client connected, and later
// pipeline activity streams live over pg_notify.
func TestOperatorStream(t *testing.T) {
	app := NewTestApp(t)
	phone := "+15554440001"

	// Activity before anyone is watching.
	app.SendInbound(t, phone, "hi")
	th := app.ThreadByPhone(t, phone)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ws, err := WSConnect(ctx, app.WSURL)
	require.NoError(t, err)
	defer func() { _ = ws.Close() }()

	_, err = ws.WaitForEventType("connection.established", 5*time.Second)
	require.NoError(t, err)

	require.NoError(t, ws.Subscribe("thread:"+th.ID))
	_, err = ws.WaitForEventType("subscription.confirmed", 5*time.Second)
	require.NoError(t, err)

	// Catch-up: the pre-subscription user message and the entry stage
	// change arrive with their outbox cursor ids.
	caughtUp, err := ws.WaitForEvent(func(e WSEvent) bool {
		return e.Type == "message.created" && e.Parsed["role"] == "user"
	}, 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, th.ID, caughtUp.Parsed["thread_id"])
	assert.NotNil(t, caughtUp.Parsed["db_event_id"])

	_, err = ws.WaitForStage("cold", 5*time.Second)
	require.NoError(t, err)

	// Live: a trigger match streams the assistant message and the stage
	// change as they happen.
	app.SendInbound(t, phone, "how much does it cost?")

	stageEvt, err := ws.WaitForStage("warm", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "cold", stageEvt.Parsed["from"])
	assert.Equal(t, "plans_interest", stageEvt.Parsed["trigger"])

	_, err = ws.WaitForEvent(func(e WSEvent) bool {
		return e.Type == "message.created" && e.Parsed["role"] == "assistant"
	}, 10*time.Second)
	require.NoError(t, err)
}

// TestStreamTakeoverAndSale verifies the takeover and sale event kinds
// reach subscribers.
func TestStreamTakeoverAndSale(t *testing.T) {
	app := NewTestApp(t)
	phone := "+15554440002"

	app.SendInbound(t, phone, "hi")
	app.SendInbound(t, phone, "how much does it cost?")
	app.SendInbound(t, phone, "monthly")
	th := app.ThreadByPhone(t, phone)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ws, err := WSConnect(ctx, app.WSURL)
	require.NoError(t, err)
	defer func() { _ = ws.Close() }()

	require.NoError(t, ws.Subscribe("thread:"+th.ID))
	_, err = ws.WaitForEventType("subscription.confirmed", 5*time.Second)
	require.NoError(t, err)

	app.SetTakeover(t, th.ID, true)
	takeoverEvt, err := ws.WaitForEventType("takeover.changed", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, true, takeoverEvt.Parsed["enabled"])
	app.SetTakeover(t, th.ID, false)

	app.SendBilling(t, map[string]interface{}{
		"event":       "sale.approved",
		"order_id":    "ORD-STREAM-1",
		"buyer_phone": phone,
		"value":       97.5,
	}, 200)

	saleEvt, err := ws.WaitForEventType("sale.recorded", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "ORD-STREAM-1", saleEvt.Parsed["order_id"])
	_, err = ws.WaitForStage("customer", 10*time.Second)
	require.NoError(t, err)
}
