package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/ent/salesevent"
	"github.com/leadflowhq/leadflow/ent/scheduledjob"
)

// TestSaleEndToEnd covers the happy purchase path: a hot lead's payment
// webhook cancels the pending recovery follow-up, advances the thread to
// customer, sends the post-purchase welcome, and persists the sale linked
// to the contact.
func TestSaleEndToEnd(t *testing.T) {
	app := NewTestApp(t)
	phone := "+15559990001"

	// Walk to hot: checkout link sent, recovery follow-up queued.
	app.SendInbound(t, phone, "hi")
	app.SendInbound(t, phone, "how much does it cost?")
	app.SendInbound(t, phone, "monthly")

	th := app.ThreadByPhone(t, phone)
	require.Equal(t, "hot", th.LeadStage)
	jobs := app.Jobs(t, th.ID)
	require.Len(t, jobs, 1)
	require.Equal(t, scheduledjob.StatusPending, jobs[0].Status)

	event := map[string]interface{}{
		"event":       "sale.approved",
		"order_id":    "ORD-E2E-1",
		"buyer_email": "maria@example.com",
		"buyer_phone": phone,
		"buyer_name":  "Maria Silva",
		"value":       97.5,
		"product_id":  "PROD-1",
	}
	app.SendBilling(t, event, 200)

	// Recovery follow-up cancelled before it could fire.
	job, err := app.EntClient.ScheduledJob.Get(context.Background(), jobs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledjob.StatusCancelled, job.Status)

	th = app.ThreadByPhone(t, phone)
	assert.Equal(t, "customer", th.LeadStage)

	bodies := app.Provider.Bodies()
	require.NotEmpty(t, bodies)
	assert.Contains(t, bodies[len(bodies)-1], "Welcome aboard")

	// Sale persisted and correlated to the buyer.
	sale, err := app.EntClient.SalesEvent.Query().
		Where(salesevent.OrderIDEQ("ORD-E2E-1"), salesevent.EventKindEQ("sale.approved")).
		Only(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sale.ContactID)
	assert.Equal(t, th.ContactID, *sale.ContactID)

	contact, err := app.EntClient.Contact.Get(context.Background(), th.ContactID)
	require.NoError(t, err)
	require.NotNil(t, contact.Email)
	assert.Equal(t, "maria@example.com", *contact.Email)
	assert.Equal(t, 1, contact.OrderCount)
	assert.InDelta(t, 97.5, contact.TotalSpent, 0.001)

	// Redelivery is a no-op: one sale row, no second welcome.
	before := app.Provider.SendCount()
	app.SendBilling(t, event, 200)

	count, err := app.EntClient.SalesEvent.Query().
		Where(salesevent.OrderIDEQ("ORD-E2E-1"), salesevent.EventKindEQ("sale.approved")).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, before, app.Provider.SendCount())
	assert.Equal(t, "customer", app.ThreadByPhone(t, phone).LeadStage)
}

// TestSaleWithoutMatchingContact verifies a sale for an unknown buyer is
// still persisted for audit, with no conversation side effects.
func TestSaleWithoutMatchingContact(t *testing.T) {
	app := NewTestApp(t)

	app.SendBilling(t, map[string]interface{}{
		"event":       "sale.approved",
		"order_id":    "ORD-E2E-ORPHAN",
		"buyer_email": "stranger@example.com",
		"value":       197.0,
	}, 200)

	sale, err := app.EntClient.SalesEvent.Query().
		Where(salesevent.OrderIDEQ("ORD-E2E-ORPHAN")).
		Only(context.Background())
	require.NoError(t, err)
	assert.Nil(t, sale.ContactID)
	assert.Zero(t, app.Provider.SendCount())
}
