// Package llm adapts the generative backend for conversational fallback:
// when no trigger matches an inbound message, the dispatcher asks the
// backend for a reply. The backend returns either free text or a
// structured action descriptor; parsing is strict and failures surface
// as ErrUnavailable so the caller can fall back to canned text.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/avast/retry-go/v4"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/leadflowhq/leadflow/pkg/config"
)

// ErrUnavailable is returned for timeouts, backend errors, and malformed
// output. The dispatcher treats it as "send the generic fallback text".
var ErrUnavailable = errors.New("llm unavailable")

// Turn is one prior message of the conversation history.
type Turn struct {
	Role    string // "user" or "assistant"
	Content string
}

// Request carries everything the backend needs for one reply.
type Request struct {
	ThreadID    string
	FunnelID    string
	Stage       string
	ContactName string
	History     []Turn
	UserText    string
}

// Client produces a reply for an unmatched inbound message.
type Client interface {
	Respond(ctx context.Context, req *Request) (*Response, error)
}

// OpenAIClient is the production Client: chat completions with a token
// bucket rate limit and bounded retries on retryable API errors.
type OpenAIClient struct {
	client  *openai.Client
	cfg     *config.LLMConfig
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewOpenAIClient creates a client from LLM configuration.
func NewOpenAIClient(cfg *config.LLMConfig) *OpenAIClient {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAIClient{
		client:  openai.NewClientWithConfig(apiCfg),
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerMinute/60.0), cfg.Burst),
		logger:  slog.Default().With("component", "llm"),
	}
}

// Respond implements Client.
func (c *OpenAIClient) Respond(ctx context.Context, req *Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait: %v", ErrUnavailable, err)
	}

	messages := c.buildMessages(req)

	var completion openai.ChatCompletionResponse
	err := retry.Do(
		func() error {
			var apiErr error
			completion, apiErr = c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
				Model:    c.cfg.Model,
				Messages: messages,
			})
			return apiErr
		},
		retry.RetryIf(isRetryableError),
		retry.Attempts(uint(c.cfg.MaxAttempts)),
		retry.Delay(c.cfg.RetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("Retrying LLM request", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion", ErrUnavailable)
	}

	resp, err := ParseResponse(completion.Choices[0].Message.Content)
	if err != nil {
		c.logger.Warn("Malformed LLM output", "thread_id", req.ThreadID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

// buildMessages assembles the chat request: system prompt with structured
// context, then the bounded history window, then the current user text.
func (c *OpenAIClient) buildMessages(req *Request) []openai.ChatCompletionMessage {
	system := c.cfg.SystemPrompt
	system += fmt.Sprintf("\n\nContext: funnel=%s stage=%s", req.FunnelID, req.Stage)
	if req.ContactName != "" {
		system += fmt.Sprintf(" contact_name=%s", req.ContactName)
	}

	history := req.History
	if len(history) > c.cfg.HistoryWindow {
		history = history[len(history)-c.cfg.HistoryWindow:]
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: system,
	})
	for _, turn := range history {
		role := openai.ChatMessageRoleUser
		if turn.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.UserText,
	})
	return messages
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.HTTPStatusCode
		return code == 429 || code >= 500
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return true
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	return false
}

// FallbackResponse returns the configured canned reply used when the
// backend is unavailable. Sending it never mutates stage.
func FallbackResponse(cfg *config.LLMConfig) *Response {
	return &Response{Type: ResponseText, Message: cfg.FallbackText}
}
