package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GateFinding holds the schema definition for the GateFinding entity — a
// single reviewer finding at a head SHA, resolvable across re-evaluations
// through its stable finding id.
type GateFinding struct {
	ent.Schema
}

// Fields of the GateFinding.
func (GateFinding) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("finding_id").
			Unique().
			Immutable(),
		field.String("loop_id"),
		field.Enum("gate_kind").
			Values("deep_review", "carmack_review"),
		field.String("head_sha"),
		field.String("stable_finding_id").
			Comment("Caller-provided or content-hash derived; portable across re-evaluations"),
		field.Enum("severity").
			Values("critical", "high", "medium", "low"),
		field.String("category"),
		field.String("title"),
		field.Text("detail"),
		field.Text("suggested_fix").
			Optional().
			Nillable(),
		field.Bool("is_blocking").
			Default(true),
		field.Time("resolved_at").
			Optional().
			Nillable(),
		field.String("resolved_by_event_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the GateFinding.
func (GateFinding) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("loop", Loop.Type).
			Ref("gate_findings").
			Field("loop_id").
			Unique().
			Required(),
	}
}

// Indexes of the GateFinding.
func (GateFinding) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("loop_id", "gate_kind", "head_sha", "stable_finding_id").
			Unique(),
		index.Fields("loop_id", "head_sha"),
	}
}
