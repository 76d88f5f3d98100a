package models

import "github.com/leadflowhq/leadflow/ent"

// ContactFilters contains filtering options for listing contacts
type ContactFilters struct {
	Search string `json:"search,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// ContactListResponse contains a paginated contact list
type ContactListResponse struct {
	Contacts   []*ent.Contact `json:"contacts"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}
