package models

// InboundMessage is a parsed messaging-provider webhook: one user message.
// Phone is already normalized (channel prefix stripped, E.164).
type InboundMessage struct {
	Phone       string `json:"phone"`
	Body        string `json:"body"`
	ProfileName string `json:"profile_name,omitempty"`
	// MessageSid is the provider's message id, used as the dedupe key when
	// present.
	MessageSid string `json:"message_sid,omitempty"`
	Channel    string `json:"channel"`
}
