package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(MessageCreatedPayload{
			Type:     EventTypeMessageCreated,
			ThreadID: "abc-123",
			Content:  "hello there",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeMessageCreated)
		assert.Contains(t, result, "abc-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(MessageCreatedPayload{
			Type:      EventTypeMessageCreated,
			ThreadID:  "abc-123",
			MessageID: "msg-456",
			Content:   strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(MessageCreatedPayload{
			Type:      EventTypeMessageCreated,
			ThreadID:  "thread-789",
			MessageID: "msg-456",
			Content:   strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeMessageCreated)
		assert.Contains(t, result, "thread-789")
		assert.Contains(t, result, "msg-456")
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(StageChangedPayload{
			Type:     EventTypeStageChanged,
			ThreadID: "abc-123",
			From:     "cold",
			To:       "warming",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, float64(42), m["db_event_id"])
		assert.Equal(t, "warming", m["to"])
	})

	t.Run("keeps db_event_id when truncating", func(t *testing.T) {
		payload, _ := json.Marshal(MessageCreatedPayload{
			Type:     EventTypeMessageCreated,
			ThreadID: "abc-123",
			Content:  strings.Repeat("y", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 7)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, float64(7), m["db_event_id"])
		assert.Equal(t, true, m["truncated"])
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		_, err := injectDBEventIDAndTruncate([]byte("not json"), 1)
		assert.Error(t, err)
	})
}
