package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OutboxAttempt holds the schema definition for the OutboxAttempt entity —
// an append-only audit row for one execution attempt of an outbox action.
type OutboxAttempt struct {
	ent.Schema
}

// Fields of the OutboxAttempt.
func (OutboxAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("attempt_id").
			Unique().
			Immutable(),
		field.String("outbox_id"),
		field.Int("attempt"),
		field.Enum("status").
			Values("completed", "retry_scheduled", "failed"),
		field.String("error_class").
			Optional().
			Nillable(),
		field.String("error_code").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("Truncated to 1000 characters before persistence"),
		field.Time("retry_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the OutboxAttempt.
func (OutboxAttempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("action", OutboxAction.Type).
			Ref("attempts").
			Field("outbox_id").
			Unique().
			Required(),
	}
}

// Indexes of the OutboxAttempt.
func (OutboxAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("outbox_id", "attempt"),
	}
}
