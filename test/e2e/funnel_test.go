package e2e

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/ent/scheduledjob"
)

// TestFunnelWalkthrough drives one contact from first contact to a hot
// lead purely through deterministic triggers: the LLM is never consulted.
func TestFunnelWalkthrough(t *testing.T) {
	app := NewTestApp(t)
	phone := "+15551112222"

	// First message: contact + thread created, entry trigger fires.
	app.SendInbound(t, phone, "I want to know about the product")

	th := app.ThreadByPhone(t, phone)
	assert.Equal(t, "cold", th.LeadStage)
	assert.Equal(t, "primary", th.Meta["funnel_id"])

	msgs := app.Messages(t, th.ID)
	lines := transcript(msgs)
	require.Contains(t, lines, "user:I want to know about the product")
	require.Contains(t, lines, "assistant:[Audio sent: welcome]")

	sends := app.Provider.Sends()
	require.Len(t, sends, 1)
	assert.Equal(t, "whatsapp:"+phone, sends[0].To)
	assert.Equal(t, "whatsapp:+14155238886", sends[0].From)
	assert.True(t, strings.HasSuffix(sends[0].MediaURL, "/audios/welcome.opus"),
		"welcome audio URL, got %q", sends[0].MediaURL)

	// Pain keywords: audio + 8-image sequence + prompt, stage → warming.
	app.SendInbound(t, phone, "my belly bothers me")

	th = app.ThreadByPhone(t, phone)
	assert.Equal(t, "warming", th.LeadStage)

	require.Equal(t, 11, app.Provider.SendCount())
	media := app.Provider.MediaURLs()
	assert.True(t, strings.HasSuffix(media[1], "/audios/pain_generic.opus"))
	for i := 1; i <= 8; i++ {
		assert.True(t, strings.HasSuffix(media[1+i], fmt.Sprintf("/images/results_%d.jpg", i)),
			"image %d, got %q", i, media[1+i])
	}
	bodies := app.Provider.Bodies()
	assert.Equal(t, "Tell me what's holding you back", bodies[len(bodies)-1])

	// Pricing interest: plans audio + description, stage → warm.
	app.SendInbound(t, phone, "how much does it cost?")

	th = app.ThreadByPhone(t, phone)
	assert.Equal(t, "warm", th.LeadStage)
	bodies = app.Provider.Bodies()
	assert.Contains(t, bodies[len(bodies)-1], "We have two plans")

	// Plan choice: checkout link, stage → hot, recovery follow-up queued.
	app.SendInbound(t, phone, "monthly")

	th = app.ThreadByPhone(t, phone)
	assert.Equal(t, "hot", th.LeadStage)
	assert.Equal(t, "hot", th.Meta["stage_id"])
	bodies = app.Provider.Bodies()
	assert.Contains(t, bodies[len(bodies)-1], "https://pay.example.com/monthly")

	jobs := app.Jobs(t, th.ID)
	require.Len(t, jobs, 1)
	assert.Equal(t, "cart_recovery_30m", jobs[0].Key)
	assert.Equal(t, scheduledjob.StatusPending, jobs[0].Status)
	until := time.Until(jobs[0].FireAt)
	assert.Greater(t, until, 25*time.Minute)
	assert.Less(t, until, 35*time.Minute)

	// The whole walk was trigger-driven.
	assert.Zero(t, app.LLMClient.CallCount())
}

// TestInboundRedeliveryDropped verifies provider redelivery with the same
// message sid is acknowledged without duplicating the transcript.
func TestInboundRedeliveryDropped(t *testing.T) {
	app := NewTestApp(t)
	phone := "+15553334444"

	app.SendInboundSid(t, phone, "hello", "SM-redelivered", 200)
	app.SendInboundSid(t, phone, "hello", "SM-redelivered", 200)

	th := app.ThreadByPhone(t, phone)
	var users int
	for _, m := range app.Messages(t, th.ID) {
		if m.Role == "user" {
			users++
		}
	}
	assert.Equal(t, 1, users)
	assert.Equal(t, 1, app.Provider.SendCount(), "redelivery must not re-send the welcome audio")
}

// TestGenerativeFallback exercises the LLM path for unmatched messages
// and the canned fallback once the backend goes unavailable.
func TestGenerativeFallback(t *testing.T) {
	llmClient := NewScriptedLLMClient()
	llmClient.AddText("Our program fits around your routine.")
	app := NewTestApp(t, WithLLMClient(llmClient))
	phone := "+15556667777"

	// First message is the entry trigger; no LLM involved yet.
	app.SendInbound(t, phone, "hi")
	th := app.ThreadByPhone(t, phone)
	require.Equal(t, "cold", th.LeadStage)
	require.Zero(t, llmClient.CallCount())

	// Unmatched in cold: scripted reply goes out, stage untouched.
	app.SendInbound(t, phone, "tell me more about how this works for night shifts")

	require.Equal(t, 1, llmClient.CallCount())
	bodies := app.Provider.Bodies()
	assert.Equal(t, "Our program fits around your routine.", bodies[len(bodies)-1])
	th = app.ThreadByPhone(t, phone)
	assert.Equal(t, "cold", th.LeadStage)

	captured := llmClient.CapturedRequests()[0]
	assert.Equal(t, "primary", captured.FunnelID)
	assert.Equal(t, "cold", captured.Stage)
	assert.NotEmpty(t, captured.History)
	for _, turn := range captured.History {
		assert.NotEqual(t, captured.UserText, turn.Content,
			"current turn must not be duplicated into history")
	}

	// Script exhausted: the backend reads as unavailable and the canned
	// fallback goes out instead. Still a 200 to the provider.
	app.SendInbound(t, phone, "one more question")

	bodies = app.Provider.Bodies()
	assert.Equal(t, app.Config.LLM.FallbackText, bodies[len(bodies)-1])
	th = app.ThreadByPhone(t, phone)
	assert.Equal(t, "cold", th.LeadStage, "fallback never mutates stage")
}
