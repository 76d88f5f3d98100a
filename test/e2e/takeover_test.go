package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSupportHandoff covers the whole takeover lifecycle: a support
// message flips the gate and sends the handoff text, later inbounds are
// recorded but answered by nobody, and an operator hands the thread back.
func TestSupportHandoff(t *testing.T) {
	app := NewTestApp(t)
	phone := "+15558880001"

	app.SendInbound(t, phone, "hi")
	th := app.ThreadByPhone(t, phone)
	require.Equal(t, "cold", th.LeadStage)
	require.Equal(t, 1, app.Provider.SendCount())

	// Support marker: handoff text, takeover on.
	app.SendInbound(t, phone, "I can't log into the app")

	th = app.ThreadByPhone(t, phone)
	assert.True(t, th.HumanTakeover)
	bodies := app.Provider.Bodies()
	require.NotEmpty(t, bodies)
	assert.Contains(t, bodies[len(bodies)-1], "One of our team members will get back to you")

	lines := transcript(app.Messages(t, th.ID))
	assert.Contains(t, lines, "system:Human takeover enabled by support-detector")

	// While a human owns the thread the bot stays silent: the inbound is
	// persisted, nothing goes out, the LLM is not consulted.
	before := app.Provider.SendCount()
	app.SendInbound(t, phone, "are you there?")

	lines = transcript(app.Messages(t, th.ID))
	assert.Contains(t, lines, "user:are you there?")
	assert.Equal(t, before, app.Provider.SendCount())
	assert.Zero(t, app.LLMClient.CallCount())

	// Operator hands back; triggers resume against the current stage.
	app.SetTakeover(t, th.ID, false)
	app.SendInbound(t, phone, "how much does it cost?")

	th = app.ThreadByPhone(t, phone)
	assert.Equal(t, "warm", th.LeadStage)
	assert.Greater(t, app.Provider.SendCount(), before)
}

// TestSupportDetectionDiacritics verifies matching is case- and
// diacritic-insensitive, so "CANCELÁR" still reads as "cancelar".
func TestSupportDetectionDiacritics(t *testing.T) {
	app := NewTestApp(t)
	phone := "+15558880002"

	app.SendInbound(t, phone, "quero CANCELÁR minha conta")

	th := app.ThreadByPhone(t, phone)
	assert.True(t, th.HumanTakeover)
	bodies := app.Provider.Bodies()
	require.NotEmpty(t, bodies)
	assert.Contains(t, bodies[len(bodies)-1], "One of our team members will get back to you")
}
