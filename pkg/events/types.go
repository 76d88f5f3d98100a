// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Every conversation change the operator dashboard cares about is published
// twice from the same transaction scope: an outbox row in the events table
// (the catch-up source for reconnecting clients) and a pg_notify on the
// thread's channel (the live path). The integer outbox id is the cursor
// clients present on reconnect.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// A message was appended to a thread — user, assistant, human, or system.
	EventTypeMessageCreated = "message.created"

	// A thread moved to a new funnel stage.
	EventTypeStageChanged = "stage.changed"

	// The human-takeover flag flipped on or off.
	EventTypeTakeoverChanged = "takeover.changed"

	// A billing sale was recorded against a contact.
	EventTypeSaleRecorded = "sale.recorded"
)

// GlobalThreadsChannel is the channel for thread-level lifecycle events.
// The thread list page subscribes to this for real-time updates.
const GlobalThreadsChannel = "threads"

// ThreadChannel returns the channel name for a specific thread's events.
// Format: "thread:{thread_id}"
func ThreadChannel(threadID string) string {
	return "thread:" + threadID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "thread:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
