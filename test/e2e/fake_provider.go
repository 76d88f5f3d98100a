package e2e

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// ProviderSend is one message the fake provider accepted.
type ProviderSend struct {
	To       string
	From     string
	Body     string
	MediaURL string
}

// FakeProvider emulates the messaging provider's Messages API: it accepts
// form-encoded POSTs on the Accounts endpoint, records them, and answers
// with a message sid. Failure injection forces transient or permanent
// provider errors for resilience tests.
type FakeProvider struct {
	srv *httptest.Server

	mu       sync.Mutex
	sends    []ProviderSend
	seq      int
	failNext int // remaining requests to fail
	failCode int // status code for injected failures
}

// NewFakeProvider starts the fake provider. Shutdown is registered via
// t.Cleanup.
func NewFakeProvider(t *testing.T) *FakeProvider {
	t.Helper()
	p := &FakeProvider{}
	p.srv = httptest.NewServer(http.HandlerFunc(p.handle))
	t.Cleanup(p.srv.Close)
	return p
}

// URL returns the provider's base URL for MessengerConfig.APIBaseURL.
func (p *FakeProvider) URL() string {
	return p.srv.URL
}

func (p *FakeProvider) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "/Messages.json") {
		http.NotFound(w, r)
		return
	}
	if _, _, ok := r.BasicAuth(); !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failNext > 0 {
		p.failNext--
		w.WriteHeader(p.failCode)
		return
	}

	p.seq++
	p.sends = append(p.sends, ProviderSend{
		To:       r.PostFormValue("To"),
		From:     r.PostFormValue("From"),
		Body:     r.PostFormValue("Body"),
		MediaURL: r.PostFormValue("MediaUrl"),
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	fmt.Fprintf(w, `{"sid":"SM-e2e-%d"}`, p.seq)
}

// FailNext makes the next n requests answer with the given status code
// before recording resumes.
func (p *FakeProvider) FailNext(n, code int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failNext = n
	p.failCode = code
}

// Sends returns a snapshot of accepted messages in arrival order.
func (p *FakeProvider) Sends() []ProviderSend {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ProviderSend, len(p.sends))
	copy(out, p.sends)
	return out
}

// SendCount returns how many messages the provider accepted.
func (p *FakeProvider) SendCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sends)
}

// Bodies returns the text bodies of accepted messages, skipping media.
func (p *FakeProvider) Bodies() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, s := range p.sends {
		if s.Body != "" {
			out = append(out, s.Body)
		}
	}
	return out
}

// MediaURLs returns the media URLs of accepted messages, skipping text.
func (p *FakeProvider) MediaURLs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, s := range p.sends {
		if s.MediaURL != "" {
			out = append(out, s.MediaURL)
		}
	}
	return out
}

// Reset clears recorded sends.
func (p *FakeProvider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sends = nil
}
