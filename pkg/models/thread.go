package models

import (
	"time"

	"github.com/leadflowhq/leadflow/ent"
)

// ThreadFilters contains filtering options for listing threads
type ThreadFilters struct {
	Stage    string `json:"stage,omitempty"`
	Takeover *bool  `json:"takeover,omitempty"`
	FunnelID string `json:"funnel_id,omitempty"`
	// Search matches contact phone or name.
	Search string `json:"search,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// ThreadListResponse contains a paginated thread list, newest activity first
type ThreadListResponse struct {
	Threads    []*ent.Thread `json:"threads"`
	TotalCount int           `json:"total_count"`
	Limit      int           `json:"limit"`
	Offset     int           `json:"offset"`
}

// StageOverrideRequest is an operator-forced stage transition
type StageOverrideRequest struct {
	Stage string `json:"stage"`
}

// TakeoverRequest toggles the human-takeover gate on a thread
type TakeoverRequest struct {
	Enabled bool `json:"enabled"`
}

// MetaPatchRequest merges keys into thread meta; a null value deletes the key
type MetaPatchRequest map[string]any

// StageTransition describes one stage change for transcript system messages
// and operator-stream payloads.
type StageTransition struct {
	ThreadID  string    `json:"thread_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Trigger   string    `json:"trigger,omitempty"`
	Author    string    `json:"author,omitempty"`
	ChangedAt time.Time `json:"changed_at"`
}
