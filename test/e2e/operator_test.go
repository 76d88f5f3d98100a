package e2e

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHumanReplyDeliveredThroughProvider sends an operator reply through
// the API and checks it leaves through the real HTTP sender.
func TestHumanReplyDeliveredThroughProvider(t *testing.T) {
	app := NewTestApp(t)
	phone := "+15552220001"

	app.SendInbound(t, phone, "hi")
	th := app.ThreadByPhone(t, phone)
	app.SetTakeover(t, th.ID, true)

	resp := app.SendHumanReply(t, th.ID, "Hi Maria, Ana here. Happy to help!")
	assert.Equal(t, "assistant", resp["role"])
	assert.Equal(t, true, resp["is_human"])

	bodies := app.Provider.Bodies()
	require.NotEmpty(t, bodies)
	assert.Equal(t, "Hi Maria, Ana here. Happy to help!", bodies[len(bodies)-1])

	lines := transcript(app.Messages(t, th.ID))
	assert.Contains(t, lines, "assistant:Hi Maria, Ana here. Happy to help!")
}

// TestStageOverrideRecomputesTriggers verifies an operator override is
// accepted even when it skips stages, and the next inbound matches
// triggers against the overridden stage.
func TestStageOverrideRecomputesTriggers(t *testing.T) {
	app := NewTestApp(t)
	phone := "+15552220002"

	app.SendInbound(t, phone, "hi")
	th := app.ThreadByPhone(t, phone)
	require.Equal(t, "cold", th.LeadStage)

	// cold → warm is not a trigger path, but operators may force it.
	patched := app.PatchThread(t, th.ID, map[string]interface{}{"stage": "warm"})
	assert.Equal(t, "warm", patched["lead_stage"])

	// An undefined stage is rejected.
	app.sendJSON(t, http.MethodPatch, "/api/v1/threads/"+th.ID,
		map[string]interface{}{"stage": "lukewarm"}, http.StatusUnprocessableEntity)

	// The plan-choice trigger only fires from warm; it now matches.
	app.SendInbound(t, phone, "monthly")
	th = app.ThreadByPhone(t, phone)
	assert.Equal(t, "hot", th.LeadStage)
	bodies := app.Provider.Bodies()
	assert.Contains(t, bodies[len(bodies)-1], "https://pay.example.com/monthly")
}

// TestFunnelAnalyticsEndToEnd checks the read-model rollup over real
// pipeline activity.
func TestFunnelAnalyticsEndToEnd(t *testing.T) {
	app := NewTestApp(t)

	// Two threads: one stalls in cold, one converts.
	app.SendInbound(t, "+15552220003", "hi")
	buyer := "+15552220004"
	app.SendInbound(t, buyer, "hi")
	app.SendInbound(t, buyer, "how much does it cost?")
	app.SendInbound(t, buyer, "monthly")
	app.SendBilling(t, map[string]interface{}{
		"event":       "sale.approved",
		"order_id":    "ORD-ANALYTICS-1",
		"buyer_phone": buyer,
		"value":       197.0,
	}, 200)

	stats := app.getJSON(t, "/api/v1/analytics/funnel", http.StatusOK)
	assert.Equal(t, "primary", stats["funnel_id"])
	assert.Equal(t, float64(2), stats["total_threads"])
	assert.Equal(t, float64(1), stats["sales_count"])
	assert.InDelta(t, 197.0, stats["sales_value"], 0.001)

	stages, ok := stats["stages"].([]interface{})
	require.True(t, ok, "stages missing: %v", stats)
	byStage := map[string]float64{}
	for _, raw := range stages {
		row := raw.(map[string]interface{})
		byStage[row["stage"].(string)] = row["count"].(float64)
	}
	assert.Equal(t, float64(1), byStage["cold"])
	assert.Equal(t, float64(1), byStage["customer"])

	// Unknown funnels 404 instead of returning empty rollups.
	req, err := http.NewRequest(http.MethodGet,
		fmt.Sprintf("%s/api/v1/analytics/funnel?funnel_id=%s", app.BaseURL, "ghost"), nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = res.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
