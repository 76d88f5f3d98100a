package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Contact holds the schema definition for the Contact entity.
// A contact is a person identified by a normalized E.164 phone number,
// created lazily on first inbound message from an unknown phone.
type Contact struct {
	ent.Schema
}

// Fields of the Contact.
func (Contact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("contact_id").
			Unique().
			Immutable(),
		field.String("phone").
			Unique().
			Immutable().
			Comment("Normalized E.164 phone number"),
		field.String("email").
			Optional().
			Nillable().
			Comment("Learned from billing webhooks or operator edits"),
		field.String("name").
			Optional().
			Nillable(),
		field.Int("order_count").
			Default(0).
			Comment("Aggregate: number of approved sales"),
		field.Float("total_spent").
			Default(0).
			Comment("Aggregate: sum of approved sale values"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Contact.
func (Contact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("threads", Thread.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sales_events", SalesEvent.Type),
	}
}

// Indexes of the Contact.
func (Contact) Indexes() []ent.Index {
	return []ent.Index{
		// Billing webhooks correlate by buyer email
		index.Fields("email"),
		index.Fields("created_at"),
	}
}
