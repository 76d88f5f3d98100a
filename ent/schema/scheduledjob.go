package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduledJob holds the schema definition for the ScheduledJob entity.
// A scheduled job is a future action list against a thread (cart
// recovery, re-engagement). Jobs stay pending while leased; a lease that
// expires without the job reaching a terminal status makes it eligible
// for re-lease, which is how firing survives worker crashes.
//
// The partial unique index enforcing "one pending job per (thread, key)"
// cannot be expressed by Ent and is created in pkg/database/migrations.go.
type ScheduledJob struct {
	ent.Schema
}

// Fields of the ScheduledJob.
func (ScheduledJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("thread_id").
			Immutable(),
		field.String("key").
			Comment("Purpose key, e.g. 'cart_recovery_30m'; cancellation is by prefix"),
		field.Time("fire_at"),
		field.String("action_kind").
			Comment("Discriminator for action_payload (e.g. 'action_list')"),
		field.JSON("action_payload", map[string]interface{}{}).
			Optional().
			Comment("Serialized action list executed when the job fires"),
		field.Enum("status").
			Values("pending", "fired", "cancelled", "failed").
			Default("pending"),
		field.Time("leased_until").
			Optional().
			Nillable().
			Comment("Set while a scheduler worker owns the job"),
		field.String("lease_owner").
			Optional().
			Nillable().
			Comment("Worker instance that holds the lease"),
		field.Time("fired_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ScheduledJob.
func (ScheduledJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("thread", Thread.Type).
			Ref("scheduled_jobs").
			Field("thread_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ScheduledJob.
func (ScheduledJob) Indexes() []ent.Index {
	return []ent.Index{
		// Due-job scan
		index.Fields("status", "fire_at"),
		// Cancel-by-prefix and upsert lookup
		index.Fields("thread_id", "key"),
		index.Fields("status", "created_at"),
	}
}
