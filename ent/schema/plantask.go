package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlanTask holds the schema definition for the PlanTask entity — one task of
// a plan artifact, completed by the agent or a human with head-SHA evidence.
type PlanTask struct {
	ent.Schema
}

// Fields of the PlanTask.
func (PlanTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("artifact_id"),
		field.String("stable_task_id"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.JSON("acceptance_criteria", []string{}).
			Optional(),
		field.Enum("status").
			Values("todo", "in_progress", "done", "skipped", "blocked").
			Default("todo"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Enum("completed_by").
			Values("agent", "human").
			Optional().
			Nillable(),
		field.JSON("completion_evidence", map[string]interface{}{}).
			Optional().
			Comment("Must carry the head SHA the work landed on"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the PlanTask.
func (PlanTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("artifact", PhaseArtifact.Type).
			Ref("tasks").
			Field("artifact_id").
			Unique().
			Required(),
	}
}

// Indexes of the PlanTask.
func (PlanTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("artifact_id", "stable_task_id").
			Unique(),
	}
}
