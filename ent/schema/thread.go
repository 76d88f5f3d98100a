package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Thread holds the schema definition for the Thread entity.
// A thread is the 1:1 conversation with a contact on one channel.
// lead_stage is the authoritative funnel position; meta.stage_id is
// mirrored on every transition for dashboard compatibility but never
// read by the engine.
type Thread struct {
	ent.Schema
}

// Fields of the Thread.
func (Thread) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("thread_id").
			Unique().
			Immutable(),
		field.String("contact_id").
			Immutable(),
		field.String("channel").
			Default("whatsapp").
			Immutable().
			Comment("Channel origin tag (e.g. 'whatsapp')"),
		field.String("lead_stage").
			Default("").
			Comment("Current funnel stage; empty until the funnel detector seeds it"),
		field.Bool("human_takeover").
			Default(false).
			Comment("Suppresses all automated outbound activity"),
		field.JSON("meta", map[string]interface{}{}).
			Optional().
			Comment("funnel_id, stage_id, tags[], source, detector outputs"),
		field.Time("last_message_at").
			Optional().
			Nillable().
			Comment("For newest-activity-first thread listing"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Thread.
func (Thread) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("contact", Contact.Type).
			Ref("threads").
			Field("contact_id").
			Unique().
			Required().
			Immutable(),
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("scheduled_jobs", ScheduledJob.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("inbound_events", InboundEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Thread.
func (Thread) Indexes() []ent.Index {
	return []ent.Index{
		// One live thread per (contact, channel)
		index.Fields("contact_id", "channel").
			Unique(),
		index.Fields("lead_stage"),
		index.Fields("human_takeover"),
		index.Fields("last_message_at"),
	}
}
