package e2e

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/ent/scheduledjob"
)

// TestCartRecoveryFires compresses the recovery delay so the scheduler
// leases and fires the follow-up within the test: recovery audio + text
// go out and the thread lands in cart_recovery.
func TestCartRecoveryFires(t *testing.T) {
	app := NewTestApp(t,
		WithCartRecoveryDelay(300*time.Millisecond),
		WithTickInterval(100*time.Millisecond),
	)
	phone := "+15557770001"

	app.SendInbound(t, phone, "hi")
	app.SendInbound(t, phone, "how much does it cost?")
	app.SendInbound(t, phone, "monthly")

	th := app.ThreadByPhone(t, phone)
	require.Equal(t, "hot", th.LeadStage)
	jobs := app.Jobs(t, th.ID)
	require.Len(t, jobs, 1)
	require.Equal(t, "cart_recovery_30m", jobs[0].Key)

	app.WaitForStage(t, phone, "cart_recovery")
	app.WaitForJobStatus(t, jobs[0].ID, scheduledjob.StatusFired)

	media := app.Provider.MediaURLs()
	require.NotEmpty(t, media)
	assert.True(t, strings.HasSuffix(media[len(media)-1], "/audios/recovery.opus"),
		"recovery audio, got %q", media[len(media)-1])
	bodies := app.Provider.Bodies()
	assert.Contains(t, bodies[len(bodies)-1], "Your spot is still reserved")

	lines := transcript(app.Messages(t, th.ID))
	assert.Contains(t, lines, "system:Stage changed: hot -> cart_recovery (trigger: cart_recovery_30m)")
}

// TestInboundCancelsRecovery verifies contact activity makes the pending
// follow-up stale before it fires.
func TestInboundCancelsRecovery(t *testing.T) {
	app := NewTestApp(t,
		WithCartRecoveryDelay(5*time.Second),
		WithTickInterval(100*time.Millisecond),
	)
	phone := "+15557770002"

	app.SendInbound(t, phone, "hi")
	app.SendInbound(t, phone, "how much does it cost?")
	app.SendInbound(t, phone, "monthly")

	th := app.ThreadByPhone(t, phone)
	jobs := app.Jobs(t, th.ID)
	require.Len(t, jobs, 1)
	require.Equal(t, scheduledjob.StatusPending, jobs[0].Status)

	// Any inbound within the delay window cancels the family.
	app.SendInbound(t, phone, "still thinking about it")

	app.WaitForJobStatus(t, jobs[0].ID, scheduledjob.StatusCancelled)
	assert.Equal(t, "hot", app.ThreadByPhone(t, phone).LeadStage)
}
