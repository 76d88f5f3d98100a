package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SalesEvent holds the schema definition for the SalesEvent entity.
// Immutable record of a billing-platform webhook. The (source,
// event_kind, order_id) unique index makes redelivery a no-op.
type SalesEvent struct {
	ent.Schema
}

// Fields of the SalesEvent.
func (SalesEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sales_event_id").
			Unique().
			Immutable(),
		field.String("source").
			Immutable().
			Comment("Billing platform identifier"),
		field.String("event_kind").
			Immutable().
			Comment("e.g. 'sale.approved', 'cart.abandonment'"),
		field.String("order_id").
			Immutable(),
		field.String("buyer_email").
			Optional().
			Nillable().
			Immutable(),
		field.String("buyer_phone").
			Optional().
			Nillable().
			Immutable(),
		field.Float("value").
			Default(0).
			Immutable(),
		field.String("product_id").
			Optional().
			Nillable().
			Immutable(),
		field.Text("raw_payload").
			Immutable().
			Comment("Webhook body after sensitive-data masking"),
		field.String("contact_id").
			Optional().
			Nillable().
			Comment("Set when the buyer could be correlated to a contact"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SalesEvent.
func (SalesEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("contact", Contact.Type).
			Ref("sales_events").
			Field("contact_id").
			Unique(),
	}
}

// Indexes of the SalesEvent.
func (SalesEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Webhook redelivery idempotency
		index.Fields("source", "event_kind", "order_id").
			Unique(),
		index.Fields("created_at"),
		index.Fields("contact_id"),
	}
}
