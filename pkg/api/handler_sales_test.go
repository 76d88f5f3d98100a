package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSales_FiltersByKind(t *testing.T) {
	f := newTestServer(t)

	ctx := context.Background()
	for _, row := range []struct {
		orderID string
		kind    string
	}{
		{"ORD-1", "sale.approved"},
		{"ORD-2", "sale.approved"},
		{"ORD-3", "cart.abandonment"},
	} {
		_, err := f.client.SalesEvent.Create().
			SetID(uuid.New().String()).
			SetSource("billing-test").
			SetEventKind(row.kind).
			SetOrderID(row.orderID).
			SetValue(97.5).
			SetRawPayload("{}").
			Save(ctx)
		require.NoError(t, err)
	}

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/sales?kind=sale.approved", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		TotalCount int `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalCount)
}
