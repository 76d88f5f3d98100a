package events

// MessageCreatedPayload is the payload for message.created events.
// Published for every message appended to a thread, regardless of role.
type MessageCreatedPayload struct {
	Type      string `json:"type"`       // always EventTypeMessageCreated
	ThreadID  string `json:"thread_id"`  // owning thread
	MessageID string `json:"message_id"` // new message UUID
	Role      string `json:"role"`       // user, assistant, human, system
	Content   string `json:"content"`    // message text (sentinel markers for media)
	Timestamp string `json:"timestamp"`  // RFC3339Nano
}

// StageChangedPayload is the payload for stage.changed events.
// Published after the stage transition transaction commits.
type StageChangedPayload struct {
	Type      string `json:"type"`      // always EventTypeStageChanged
	ThreadID  string `json:"thread_id"` // thread that moved
	From      string `json:"from"`      // previous stage id
	To        string `json:"to"`        // new stage id
	Trigger   string `json:"trigger"`   // trigger id, llm decision, or operator override
	Author    string `json:"author"`    // bot, llm, scheduler, operator
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// TakeoverChangedPayload is the payload for takeover.changed events.
type TakeoverChangedPayload struct {
	Type      string `json:"type"`      // always EventTypeTakeoverChanged
	ThreadID  string `json:"thread_id"` // affected thread
	Enabled   bool   `json:"enabled"`   // true = humans own the thread now
	Reason    string `json:"reason"`    // support_detected or operator
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// SaleRecordedPayload is the payload for sale.recorded events.
// Published when a billing sale.approved event lands and is matched
// to a contact.
type SaleRecordedPayload struct {
	Type      string  `json:"type"`      // always EventTypeSaleRecorded
	ThreadID  string  `json:"thread_id"` // matched thread (may be empty if no conversation exists)
	OrderID   string  `json:"order_id"`  // billing provider order id
	Value     float64 `json:"value"`     // sale amount
	Timestamp string  `json:"timestamp"` // RFC3339Nano
}
