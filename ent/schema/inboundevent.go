package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InboundEvent holds the schema definition for the InboundEvent entity.
// Dedupe ledger for messaging webhooks: the provider may redeliver, so
// each accepted inbound records a key (provider message id when supplied,
// otherwise thread + timestamp bucket + content hash). Rows are purged by
// the retention cleanup after the dedupe window.
type InboundEvent struct {
	ent.Schema
}

// Fields of the InboundEvent.
func (InboundEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("inbound_event_id").
			Unique().
			Immutable(),
		field.String("thread_id").
			Immutable(),
		field.String("dedupe_key").
			Unique().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the InboundEvent.
func (InboundEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("thread", Thread.Type).
			Ref("inbound_events").
			Field("thread_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the InboundEvent.
func (InboundEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Retention sweep
		index.Fields("created_at"),
	}
}
