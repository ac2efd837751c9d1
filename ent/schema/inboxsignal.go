package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InboxSignal holds the schema definition for the InboxSignal entity —
// one external event routed to one loop, processed at most once.
type InboxSignal struct {
	ent.Schema
}

// Fields of the InboxSignal.
func (InboxSignal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("signal_id").
			Unique().
			Immutable(),
		field.String("loop_id"),
		field.String("cause_type"),
		field.String("canonical_cause_id"),
		field.Int("cause_identity_version").
			Default(1),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.String("head_sha").
			Optional().
			Nillable().
			Comment("Head SHA carried by the signal, when the cause kind has one"),
		field.Time("received_at").
			Default(time.Now),
		field.Time("processed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the InboxSignal.
func (InboxSignal) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("loop", Loop.Type).
			Ref("signals").
			Field("loop_id").
			Unique().
			Required(),
	}
}

// Indexes of the InboxSignal.
func (InboxSignal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("loop_id", "canonical_cause_id").
			Unique(),
		index.Fields("loop_id", "received_at"),
	}
}
