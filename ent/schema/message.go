package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
// Messages are the immutable, ordered record of a thread: inbound user
// text, automated and human assistant replies, and system entries that
// record stage transitions and pipeline outcomes. Media sends are stored
// as sentinel markers ("[Audio sent: welcome]") so the transcript stays
// readable without storing blobs.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("thread_id").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant", "system").
			Immutable(),
		field.Text("content").
			Immutable().
			Comment("Literal text or a sentinel marker for media artifacts"),
		field.Bool("is_human").
			Default(false).
			Immutable().
			Comment("Assistant messages only: authored by an operator"),
		field.String("author").
			Optional().
			Nillable().
			Immutable().
			Comment("Operator identity from proxy headers, human messages only"),
		field.String("provider_message_id").
			Optional().
			Nillable().
			Comment("Message id returned by the messaging provider"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("thread", Thread.Type).
			Ref("messages").
			Field("thread_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		// Transcript reads are always (thread, chronological)
		index.Fields("thread_id", "created_at"),
	}
}
