package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/pkg/models"
)

func TestFunnelAnalytics(t *testing.T) {
	f := newTestServer(t)
	f.seedThread(t, "+15551110001", "Maria Silva", "cold")
	f.seedThread(t, "+15551110002", "Joana Reis", "cold")
	f.seedThread(t, "+15551110003", "Pedro Costa", "hot")
	taken := f.seedThread(t, "+15551110004", "Rui Alves", "customer")

	ctx := context.Background()
	require.NoError(t, f.client.Thread.UpdateOneID(taken.ID).SetHumanTakeover(true).Exec(ctx))

	// Two approved sales in the window, one outside it, one abandonment.
	newSale := func(orderID, kind string, value float64, at time.Time) {
		_, err := f.client.SalesEvent.Create().
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
	newSale("ORD-1", "sale.approved", 97.5, now.Add(-time.Hour))
	newSale("ORD-2", "sale.approved", 197, now.Add(-2*time.Hour))
	newSale("ORD-3", "sale.approved", 97.5, now.Add(-72*time.Hour))
	newSale("ORD-4", "cart.abandonment", 0, now.Add(-time.Hour))

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/analytics/funnel", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.FunnelAnalytics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "primary", resp.FunnelID)
	assert.Equal(t, 4, resp.TotalThreads)
	assert.Equal(t, 1, resp.TakeoverCount)
	assert.Equal(t, 2, resp.SalesCount)
	assert.InDelta(t, 294.5, resp.SalesValue, 0.001)

	byStage := make(map[string]int, len(resp.Stages))
	for _, sc := range resp.Stages {
		byStage[sc.Stage] = sc.Count
	}
	assert.Equal(t, 2, byStage["cold"])
	assert.Equal(t, 1, byStage["hot"])
	assert.Equal(t, 1, byStage["customer"])
}

func TestFunnelAnalytics_SinceWindow(t *testing.T) {
	f := newTestServer(t)
	f.seedThread(t, "+15551110001", "Maria Silva", "cold")

	ctx := context.Background()
	_, err := f.client.SalesEvent.Create().
		SetID(uuid.New().String()).
		SetSource("billing-test").
		SetEventKind("sale.approved").
		SetOrderID("ORD-1").
		SetValue(97.5).
		SetRawPayload("{}").
		SetCreatedAt(time.Now().Add(-72 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	since := time.Now().Add(-7 * 24 * time.Hour).UTC().Format(time.RFC3339)
	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/analytics/funnel?since="+since, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.FunnelAnalytics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.SalesCount)
}

func TestFunnelAnalytics_UnknownFunnel(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/analytics/funnel?funnel_id=nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFunnelAnalytics_InvalidSince(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/analytics/funnel?since=yesterday", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
