package models

import "github.com/leadflowhq/leadflow/ent"

// BillingEvent is a parsed billing-platform webhook payload.
type BillingEvent struct {
	// Kind is the platform event name, e.g. "sale.approved" or
	// "cart.abandonment".
	Kind       string  `json:"event"`
	OrderID    string  `json:"order_id"`
	BuyerEmail string  `json:"buyer_email,omitempty"`
	BuyerPhone string  `json:"buyer_phone,omitempty"`
	BuyerName  string  `json:"buyer_name,omitempty"`
	Value      float64 `json:"value,omitempty"`
	ProductID  string  `json:"product_id,omitempty"`
	// RawPayload is the webhook body after sensitive-data masking.
	RawPayload string `json:"-"`
}

// SalesFilters contains filtering options for listing sales events
type SalesFilters struct {
	Kind      string `json:"kind,omitempty"`
	ContactID string `json:"contact_id,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// SalesListResponse contains a paginated sales-event list
type SalesListResponse struct {
	Events     []*ent.SalesEvent `json:"events"`
	TotalCount int               `json:"total_count"`
	Limit      int               `json:"limit"`
	Offset     int               `json:"offset"`
}
