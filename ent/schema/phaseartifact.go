package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PhaseArtifact holds the schema definition for the PhaseArtifact entity —
// the durable output of one loop phase (plan, implementation snapshot,
// review, UI run, babysit report).
type PhaseArtifact struct {
	ent.Schema
}

// Fields of the PhaseArtifact.
func (PhaseArtifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("artifact_id").
			Unique().
			Immutable(),
		field.String("loop_id"),
		field.Enum("phase").
			Values("planning", "implementing", "reviewing", "ui_testing", "pr_linking", "pr_babysitting"),
		field.String("artifact_type"),
		field.String("head_sha").
			Optional().
			Nillable().
			Comment("Nil only for planning and pr_linking artifacts"),
		field.Int("loop_version"),
		field.Enum("status").
			Values("generated", "approved", "accepted", "superseded").
			Default("generated"),
		field.String("generated_by"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.String("approved_by_user_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the PhaseArtifact.
func (PhaseArtifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("loop", Loop.Type).
			Ref("artifacts").
			Field("loop_id").
			Unique().
			Required(),
		edge.To("tasks", PlanTask.Type),
	}
}

// Indexes of the PhaseArtifact.
func (PhaseArtifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("loop_id", "phase", "status"),
		index.Fields("loop_id", "phase", "head_sha"),
	}
}
