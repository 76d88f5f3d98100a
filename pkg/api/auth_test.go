package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestExtractAuthor(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "forwarded user wins",
			headers: map[string]string{"X-Forwarded-User": "ana", "X-Forwarded-Email": "ana@example.com"},
			want:    "ana",
		},
		{
			name:    "forwarded email second",
			headers: map[string]string{"X-Forwarded-Email": "ana@example.com", "X-Remote-User": "svc"},
			want:    "ana@example.com",
		},
		{
			name:    "remote user third",
			headers: map[string]string{"X-Remote-User": "svc"},
			want:    "svc",
		},
		{
			name:    "no headers falls back",
			headers: nil,
			want:    "api-client",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.want, extractAuthor(c))
		})
	}
}
