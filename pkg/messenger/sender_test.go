package messenger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/pkg/config"
)

func testSender(t *testing.T, handler http.HandlerFunc) *HTTPSender {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewHTTPSender(&config.MessengerConfig{
		AccountID:  "AC123",
		AuthToken:  "token",
		FromNumber: "whatsapp:+14155238886",
		APIBaseURL: server.URL,
		Timeout:    5 * time.Second,
	})
}

func TestSendText(t *testing.T) {
	var gotForm map[string]string
	sender := testSender(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "token", pass)
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)

		gotForm = map[string]string{
			"To":   r.PostFormValue("To"),
			"From": r.PostFormValue("From"),
			"Body": r.PostFormValue("Body"),
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid": "SM123"}`))
	})

	sid, err := sender.SendText(context.Background(), "+5511999990000", "hello")
	require.NoError(t, err)
	assert.Equal(t, "SM123", sid)
	assert.Equal(t, "whatsapp:+5511999990000", gotForm["To"])
	assert.Equal(t, "whatsapp:+14155238886", gotForm["From"])
	assert.Equal(t, "hello", gotForm["Body"])
}

func TestSendMedia(t *testing.T) {
	sender := testSender(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "https://leadflow.example.com/media/audios/welcome.opus", r.PostFormValue("MediaUrl"))
		w.Write([]byte(`{"sid": "MM456"}`))
	})

	sid, err := sender.SendMedia(context.Background(), "+5511999990000",
		"https://leadflow.example.com/media/audios/welcome.opus")
	require.NoError(t, err)
	assert.Equal(t, "MM456", sid)
}

func TestSendErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{"rate limited is transient", http.StatusTooManyRequests, ErrTransient},
		{"server error is transient", http.StatusServiceUnavailable, ErrTransient},
		{"bad request is permanent", http.StatusBadRequest, ErrPermanent},
		{"unauthorized is permanent", http.StatusUnauthorized, ErrPermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := testSender(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			})
			_, err := sender.SendText(context.Background(), "+5511999990000", "x")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("connection failure is transient", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()
		sender := NewHTTPSender(&config.MessengerConfig{
			AccountID:  "AC123",
			AuthToken:  "token",
			FromNumber: "whatsapp:+14155238886",
			APIBaseURL: server.URL,
			Timeout:    time.Second,
		})
		_, err := sender.SendText(context.Background(), "+5511999990000", "x")
		assert.ErrorIs(t, err, ErrTransient)
	})
}
