package models

import "github.com/leadflowhq/leadflow/ent"

// CreateMessageRequest contains fields for appending a message to a thread
type CreateMessageRequest struct {
	ThreadID          string `json:"thread_id"`
	Role              string `json:"role"`
	Content           string `json:"content"`
	IsHuman           bool   `json:"is_human,omitempty"`
	Author            string `json:"author,omitempty"`
	ProviderMessageID string `json:"provider_message_id,omitempty"`
}

// MessageListResponse contains a paginated transcript slice
type MessageListResponse struct {
	Messages   []*ent.Message `json:"messages"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}

// HumanReplyRequest is an operator-authored outbound message
type HumanReplyRequest struct {
	Text string `json:"text"`
}
