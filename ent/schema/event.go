package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Outbox row for operator-stream events (message.created, stage.changed,
// takeover.changed, sale.recorded). Rows are inserted in the same
// transaction as the pg_notify that announces them; the integer id is the
// catch-up cursor for reconnecting WebSocket clients.
type Event struct {
	ent.Schema
}

// Fields of the Event.
// The implicit integer id is intentional: catch-up ordering needs a
// monotonically increasing cursor.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("thread_id").
			Immutable(),
		field.String("channel").
			Immutable().
			Comment("NOTIFY channel the event was published to"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("thread", Thread.Type).
			Ref("events").
			Field("thread_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Event.
// The (channel, id) catch-up index includes the implicit id column, which
// Ent cannot express; it is created in pkg/database/migrations.go.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel"),
		// Retention sweep
		index.Fields("created_at"),
	}
}
