package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThreadChannel(t *testing.T) {
	tests := []struct {
		name     string
		threadID string
		want     string
	}{
		{
			name:     "formats thread channel correctly",
			threadID: "abc-123",
			want:     "thread:abc-123",
		},
		{
			name:     "handles UUID format",
			threadID: "550e8400-e29b-41d4-a716-446655440000",
			want:     "thread:550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:     "handles empty string",
			threadID: "",
			want:     "thread:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ThreadChannel(tt.threadID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct
	types := []string{
		EventTypeMessageCreated,
		EventTypeStageChanged,
		EventTypeTakeoverChanged,
		EventTypeSaleRecorded,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

func TestGlobalThreadsChannel(t *testing.T) {
	assert.Equal(t, "threads", GlobalThreadsChannel)
}
