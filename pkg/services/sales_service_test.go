package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/pkg/models"
)

func TestRecordSale_IdempotentOnRedelivery(t *testing.T) {
	client := newEntClient(t)
	svc := NewSalesService(client)
	ctx := context.Background()

	evt := &models.BillingEvent{
		Kind:       "sale.approved",
		OrderID:    "ORD-1",
		BuyerEmail: "maria@example.com",
		Value:      97.5,
		RawPayload: "{}",
	}

	first, created, err := svc.Record(ctx, "billing-test", evt, "")
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := svc.Record(ctx, "billing-test", evt, "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	// Same order id from a different event kind is a new row.
	_, created, err = svc.Record(ctx, "billing-test", &models.BillingEvent{
		Kind: "refund.issued", OrderID: "ORD-1", RawPayload: "{}",
	}, "")
	require.NoError(t, err)
	assert.True(t, created)
}

func TestRecordSale_Validation(t *testing.T) {
	client := newEntClient(t)
	svc := NewSalesService(client)
	ctx := context.Background()

	_, _, err := svc.Record(ctx, "billing-test", &models.BillingEvent{OrderID: "ORD-1"}, "")
	assert.True(t, IsValidationError(err))
	_, _, err = svc.Record(ctx, "billing-test", &models.BillingEvent{Kind: "sale.approved"}, "")
	assert.True(t, IsValidationError(err))
}

func TestTotalsSince(t *testing.T) {
	client := newEntClient(t)
	svc := NewSalesService(client)
	ctx := context.Background()

	seed := func(orderID, kind string, value float64, at time.Time) {
		_, err := client.SalesEvent.Create().
			SetID(uuid.New().String()).
			SetSource("billing-test").
			SetEventKind(kind).
			SetOrderID(orderID).
			SetValue(value).
			SetRawPayload("{}").
			SetCreatedAt(at).
			Save(ctx)
		require.NoError(t, err)
	}
	now := time.Now()
	seed("ORD-1", "sale.approved", 97.5, now.Add(-time.Hour))
	seed("ORD-2", "sale.approved", 197, now.Add(-2*time.Hour))
	seed("ORD-3", "sale.approved", 500, now.Add(-72*time.Hour))
	seed("ORD-4", "cart.abandonment", 0, now.Add(-time.Hour))

	count, total, err := svc.TotalsSince(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.InDelta(t, 294.5, total, 0.001)

	// Empty window short-circuits without a SUM over zero rows.
	count, total, err = svc.TotalsSince(ctx, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, total)
}

func TestListSales_Filters(t *testing.T) {
	client := newEntClient(t)
	svc := NewSalesService(client)
	ctx := context.Background()

	contactID := uuid.New().String()
	_, err := client.Contact.Create().
		SetID(contactID).
		SetPhone("+15551112222").
		Save(ctx)
	require.NoError(t, err)

	_, _, err = svc.Record(ctx, "billing-test", &models.BillingEvent{
		Kind: "sale.approved", OrderID: "ORD-1", Value: 97.5, RawPayload: "{}",
	}, contactID)
	require.NoError(t, err)
	_, _, err = svc.Record(ctx, "billing-test", &models.BillingEvent{
		Kind: "cart.abandonment", OrderID: "ORD-2", RawPayload: "{}",
	}, "")
	require.NoError(t, err)

	byKind, err := svc.ListSales(ctx, models.SalesFilters{Kind: "sale.approved"})
	require.NoError(t, err)
	assert.Equal(t, 1, byKind.TotalCount)

	byContact, err := svc.ListSales(ctx, models.SalesFilters{ContactID: contactID})
	require.NoError(t, err)
	require.Len(t, byContact.Events, 1)
	assert.Equal(t, "ORD-1", byContact.Events[0].OrderID)
}
