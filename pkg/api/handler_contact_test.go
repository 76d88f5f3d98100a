package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListContacts_Search(t *testing.T) {
	f := newTestServer(t)
	f.seedThread(t, "+15551110001", "Maria Silva", "cold")
	f.seedThread(t, "+15551110002", "Joana Reis", "cold")

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/contacts?search=maria", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		TotalCount int `json:"total_count"`
		Contacts   []struct {
			Phone string `json:"phone"`
		} `json:"contacts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalCount)
	require.Len(t, resp.Contacts, 1)
	assert.Equal(t, "+15551110001", resp.Contacts[0].Phone)
}

func TestGetContact_NotFound(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/contacts/00000000-0000-0000-0000-000000000000", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
