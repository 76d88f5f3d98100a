package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/pkg/config"
)

func testLLMConfig(baseURL string) *config.LLMConfig {
	cfg := config.DefaultLLMConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = baseURL + "/v1"
	cfg.MaxAttempts = 2
	cfg.RetryDelay = 10 * time.Millisecond
	cfg.Timeout = 5 * time.Second
	cfg.HistoryWindow = 3
	return cfg
}

func completionBody(content string) []byte {
	body, _ := json.Marshal(openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: "assistant", Content: content}},
		},
	})
	return body
}

func TestOpenAIClientRespond(t *testing.T) {
	var gotReq openai.ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		w.Write(completionBody("Happy to help!"))
	}))
	defer server.Close()

	client := NewOpenAIClient(testLLMConfig(server.URL))
	resp, err := client.Respond(context.Background(), &Request{
		ThreadID:    "t1",
		FunnelID:    "primary",
		Stage:       "cold",
		ContactName: "Maria",
		History: []Turn{
			{Role: "user", Content: "old 1"},
			{Role: "assistant", Content: "old 2"},
			{Role: "user", Content: "recent 1"},
			{Role: "assistant", Content: "recent 2"},
		},
		UserText: "tell me more",
	})
	require.NoError(t, err)
	assert.Equal(t, ResponseText, resp.Type)
	assert.Equal(t, "Happy to help!", resp.Message)

	// System prompt + windowed history (3 of 4) + current text.
	require.Len(t, gotReq.Messages, 5)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Contains(t, gotReq.Messages[0].Content, "stage=cold")
	assert.Contains(t, gotReq.Messages[0].Content, "contact_name=Maria")
	assert.Equal(t, "old 2", gotReq.Messages[1].Content)
	assert.Equal(t, "tell me more", gotReq.Messages[4].Content)
}

func TestOpenAIClientRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(completionBody("second try"))
	}))
	defer server.Close()

	client := NewOpenAIClient(testLLMConfig(server.URL))
	resp, err := client.Respond(context.Background(), &Request{UserText: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "second try", resp.Message)
	assert.Equal(t, int32(2), calls.Load())
}

func TestOpenAIClientUnavailable(t *testing.T) {
	t.Run("persistent backend failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewOpenAIClient(testLLMConfig(server.URL))
		_, err := client.Respond(context.Background(), &Request{UserText: "hi"})
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("malformed descriptor output", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write(completionBody(`{"response_type": "audio"}`))
		}))
		defer server.Close()

		client := NewOpenAIClient(testLLMConfig(server.URL))
		_, err := client.Respond(context.Background(), &Request{UserText: "hi"})
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestFallbackResponse(t *testing.T) {
	cfg := config.DefaultLLMConfig()
	resp := FallbackResponse(cfg)
	assert.Equal(t, ResponseText, resp.Type)
	assert.Equal(t, cfg.FallbackText, resp.Message)
	assert.Empty(t, resp.NextStage)
}
