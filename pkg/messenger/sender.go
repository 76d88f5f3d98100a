// Package messenger sends outbound messages through the messaging
// provider's REST API.
package messenger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/leadflowhq/leadflow/pkg/config"
)

var (
	// ErrTransient marks failures worth one retry: network errors, 429,
	// provider 5xx.
	ErrTransient = errors.New("transient send failure")

	// ErrPermanent marks failures a retry cannot fix: bad request,
	// authentication, invalid recipient.
	ErrPermanent = errors.New("permanent send failure")
)

const defaultAPIBaseURL = "https://api.twilio.com"

// Sender delivers outbound messages to a contact. Implementations return
// the provider's message id on success.
type Sender interface {
	// SendText sends a plain text message.
	SendText(ctx context.Context, toPhone, body string) (string, error)
	// SendMedia sends a media message by public URL.
	SendMedia(ctx context.Context, toPhone, mediaURL string) (string, error)
}

// HTTPSender is the production Sender: form-encoded POSTs against the
// provider's Messages endpoint with basic auth.
type HTTPSender struct {
	cfg        *config.MessengerConfig
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewHTTPSender creates a sender from messenger configuration.
func NewHTTPSender(cfg *config.MessengerConfig) *HTTPSender {
	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}
	return &HTTPSender{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     slog.Default().With("component", "messenger"),
	}
}

// SendText implements Sender.
func (s *HTTPSender) SendText(ctx context.Context, toPhone, body string) (string, error) {
	form := url.Values{}
	form.Set("Body", body)
	return s.send(ctx, toPhone, form)
}

// SendMedia implements Sender.
func (s *HTTPSender) SendMedia(ctx context.Context, toPhone, mediaURL string) (string, error) {
	form := url.Values{}
	form.Set("MediaUrl", mediaURL)
	return s.send(ctx, toPhone, form)
}

func (s *HTTPSender) send(ctx context.Context, toPhone string, form url.Values) (string, error) {
	form.Set("To", channelAddress(s.cfg.FromNumber, toPhone))
	form.Set("From", s.cfg.FromNumber)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.baseURL, s.cfg.AccountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPermanent, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.cfg.AccountID, s.cfg.AuthToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransient, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrTransient, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var parsed struct {
			Sid string `json:"sid"`
		}
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			s.logger.Warn("Provider response not parseable, send succeeded without message id",
				"status", resp.StatusCode)
			return "", nil
		}
		return parsed.Sid, nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", fmt.Errorf("%w: provider returned %d", ErrTransient, resp.StatusCode)
	default:
		return "", fmt.Errorf("%w: provider returned %d: %s", ErrPermanent, resp.StatusCode, truncate(string(respBody), 200))
	}
}

// channelAddress prefixes the recipient with the sender's channel scheme
// ("whatsapp:+555199..." when sending from a whatsapp number).
func channelAddress(from, toPhone string) string {
	if idx := strings.IndexByte(from, ':'); idx > 0 {
		return from[:idx+1] + toPhone
	}
	return toPhone
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
