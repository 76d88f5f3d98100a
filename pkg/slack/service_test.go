package slack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService_DisabledWithoutCredentials(t *testing.T) {
	assert.Nil(t, NewService(ServiceConfig{Token: "", Channel: "#sales"}))
	assert.Nil(t, NewService(ServiceConfig{Token: "xoxb-token", Channel: ""}))
	assert.NotNil(t, NewService(ServiceConfig{Token: "xoxb-token", Channel: "#sales"}))
}

func TestNilService_IsNoOp(t *testing.T) {
	var s *Service
	// Must not panic.
	s.NotifyTakeover(context.Background(), TakeoverInput{ThreadID: "t1"})
	s.NotifySale(context.Background(), SaleInput{ThreadID: "t1", OrderID: "o1"})
}

func TestNotifyTakeover_PostsToMockAPI(t *testing.T) {
	var posted bool
	mock := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posted = true
		assert.Equal(t, "/chat.postMessage", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C123","ts":"1.0"}`))
	}))
	defer mock.Close()

	client := NewClientWithAPIURL("xoxb-test", "C123", mock.URL+"/")
	svc := NewServiceWithClient(client, "http://dash.local")

	svc.NotifyTakeover(context.Background(), TakeoverInput{
		ThreadID:     "thread-1",
		ContactPhone: "+15551112222",
		LastMessage:  "I can't log into the app",
	})
	assert.True(t, posted)
}

func TestBuildTakeoverMessage(t *testing.T) {
	blocks := BuildTakeoverMessage(TakeoverInput{
		ThreadID:     "thread-1",
		ContactName:  "Maria",
		ContactPhone: "+15551112222",
		LastMessage:  "I can't log into the app",
	}, "http://dash.local")

	require.Len(t, blocks, 3)

	header, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, "Human takeover")
	assert.Contains(t, header.Text.Text, "Maria")

	quote, ok := blocks[1].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, quote.Text.Text, "I can't log into the app")
}

func TestBuildSaleMessage(t *testing.T) {
	blocks := BuildSaleMessage(SaleInput{
		ThreadID:     "thread-1",
		ContactPhone: "+15551112222",
		OrderID:      "ord-42",
		Value:        97.5,
	}, "http://dash.local")

	require.NotEmpty(t, blocks)
	header, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, "Sale approved")
	assert.Contains(t, header.Text.Text, "ord-42")
	assert.Contains(t, header.Text.Text, "97.50")
}

func TestBuildTakeoverMessage_FallsBackToPhone(t *testing.T) {
	blocks := BuildTakeoverMessage(TakeoverInput{
		ThreadID:     "thread-1",
		ContactPhone: "+15551112222",
	}, "http://dash.local")

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, "+15551112222")
}
