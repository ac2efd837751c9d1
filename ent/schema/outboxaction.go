package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OutboxAction holds the schema definition for the OutboxAction entity —
// a transactional-outbox row carrying one side effect produced by a
// state transition.
type OutboxAction struct {
	ent.Schema
}

// Fields of the OutboxAction.
func (OutboxAction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("outbox_id").
			Unique().
			Immutable(),
		field.String("loop_id"),
		field.Int("transition_seq").
			Comment("Sequence of the transition that produced this action"),
		field.Enum("action_type").
			Values(
				"publish_status_comment", "publish_check_summary",
				"enqueue_fix_task", "publish_video_link", "emit_telemetry",
			),
		field.String("supersession_group").
			Comment("Derived from action_type; newer transitions cancel older pending siblings"),
		field.String("action_key").
			Comment("Dedup key, unique per loop"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "canceled").
			Default("pending"),
		field.Int("attempt_count").
			Default(0),
		field.Time("next_retry_at").
			Optional().
			Nillable(),
		field.String("claimed_by").
			Optional().
			Nillable(),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("last_error_class").
			Optional().
			Nillable(),
		field.String("last_error_code").
			Optional().
			Nillable(),
		field.String("last_error_message").
			Optional().
			Nillable(),
		field.String("superseded_by_outbox_id").
			Optional().
			Nillable().
			Comment("Weak back-reference from a canceled row to its replacement"),
		field.String("canceled_reason").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the OutboxAction.
func (OutboxAction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("loop", Loop.Type).
			Ref("outbox_actions").
			Field("loop_id").
			Unique().
			Required(),
		edge.To("attempts", OutboxAttempt.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the OutboxAction.
func (OutboxAction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("loop_id", "action_key").
			Unique(),
		index.Fields("loop_id", "status"),
		index.Fields("loop_id", "supersession_group", "status"),
		index.Fields("status", "next_retry_at"),
	}
}
