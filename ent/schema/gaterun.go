package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GateRun holds the schema definition for the GateRun entity — the persisted
// outcome of one gate evaluation at a specific head SHA. All gate kinds share
// one table discriminated by gate_kind; the (loop, gate, head) key is unique
// and upserts overwrite with the newer loop version.
type GateRun struct {
	ent.Schema
}

// Fields of the GateRun.
func (GateRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("gate_run_id").
			Unique().
			Immutable(),
		field.String("loop_id"),
		field.Enum("gate_kind").
			Values("ci", "review_threads", "deep_review", "carmack_review"),
		field.String("head_sha"),
		field.Int("loop_version"),
		field.String("status").
			Comment("passed, blocked, capability_error, transient_error or invalid_output"),
		field.Bool("gate_passed").
			Default(false),
		field.String("trigger_event").
			Optional().
			Comment("Cause type of the signal that triggered this evaluation"),
		field.String("error_code").
			Optional().
			Nillable(),
		field.String("required_check_source").
			Optional().
			Comment("ruleset, branch_protection, allowlist or no_required (CI gate)"),
		field.JSON("required_checks", []string{}).
			Optional(),
		field.JSON("failing_required_checks", []string{}).
			Optional(),
		field.Int("unresolved_thread_count").
			Optional().
			Nillable(),
		field.String("unresolved_thread_count_source").
			Optional().
			Nillable(),
		field.Bool("invalid_output").
			Default(false).
			Comment("LLM output failed schema validation (review gates)"),
		field.JSON("details", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the GateRun.
func (GateRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("loop", Loop.Type).
			Ref("gate_runs").
			Field("loop_id").
			Unique().
			Required(),
	}
}

// Indexes of the GateRun.
func (GateRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("loop_id", "gate_kind", "head_sha").
			Unique(),
		index.Fields("loop_id", "gate_kind", "created_at"),
	}
}
