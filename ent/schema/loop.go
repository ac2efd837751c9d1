package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Loop holds the schema definition for the Loop entity — the persistent
// coordinator for a single pull request under automated iteration.
type Loop struct {
	ent.Schema
}

// Fields of the Loop.
func (Loop) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("loop_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Comment("Owning user (already authorized by the caller)"),
		field.String("repo_full_name").
			Comment("Repository identifier in owner/name form"),
		field.Int("pr_number").
			Optional().
			Nillable().
			Comment("Pull request number; nil until the PR is linked"),
		field.String("thread_id").
			Comment("Agent thread driving this loop"),
		field.String("thread_chat_id").
			Optional().
			Nillable(),
		field.Enum("state").
			Values(
				"planning", "implementing", "reviewing", "ui_testing", "pr_babysitting",
				"blocked_on_human_feedback",
				"terminated_pr_closed", "terminated_pr_merged", "done", "stopped",
			).
			Default("planning"),
		field.Enum("plan_approval_policy").
			Values("auto", "human_required").
			Default("auto"),
		field.String("current_head_sha").
			Optional().
			Nillable().
			Comment("Tip of the PR branch under evaluation"),
		field.Int("loop_version").
			Default(0).
			Comment("Monotonically non-decreasing; bumped on head-SHA change, rejects stale signals"),
		field.Int("transition_seq").
			Default(0).
			Comment("Monotonic sequence of applied state transitions; orders outbox supersession"),
		field.Int("fix_attempt_count").
			Default(0),
		field.Int("max_fix_attempts").
			Default(3),
		field.Int("iteration_count").
			Default(0).
			Comment("Signal-inbox ticks processed; bounded by the max-iterations guardrail"),
		field.Time("cooldown_until").
			Optional().
			Nillable(),
		field.String("active_plan_artifact_id").
			Optional().
			Nillable(),
		field.String("active_implementation_artifact_id").
			Optional().
			Nillable(),
		field.String("active_review_artifact_id").
			Optional().
			Nillable(),
		field.String("active_ui_artifact_id").
			Optional().
			Nillable(),
		field.String("active_babysit_artifact_id").
			Optional().
			Nillable(),
		field.String("canonical_status_comment_id").
			Optional().
			Nillable().
			Comment("Single status comment updated in place on the PR"),
		field.String("canonical_check_run_id").
			Optional().
			Nillable(),
		field.String("video_capture_status").
			Optional().
			Nillable(),
		field.String("latest_video_artifact_key").
			Optional().
			Nillable().
			Comment("Object-store key of the most recent capture"),
		field.Time("latest_video_captured_at").
			Optional().
			Nillable(),
		field.String("latest_video_failure_class").
			Optional().
			Nillable(),
		field.String("latest_video_failure_message").
			Optional().
			Nillable(),
		field.Time("latest_video_failed_at").
			Optional().
			Nillable(),
		field.String("stop_reason").
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

// Edges of the Loop.
func (Loop) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("signals", InboxSignal.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("outbox_actions", OutboxAction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("gate_runs", GateRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("gate_findings", GateFinding.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("artifacts", PhaseArtifact.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Loop. The partial unique indexes enforce at most one active
// loop per (user, thread) and per (repo, pr, user); terminal rows do not
// count against either scope.
func (Loop) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
		index.Fields("user_id", "thread_id"),
		index.Fields("repo_full_name", "pr_number"),
		index.Fields("state", "updated_at"),
		index.Fields("user_id", "thread_id").
			Unique().
			StorageKey("loop_active_user_thread").
			Annotations(entsql.IndexWhere(
				"state NOT IN ('terminated_pr_closed', 'terminated_pr_merged', 'done', 'stopped')")),
		index.Fields("repo_full_name", "pr_number", "user_id").
			Unique().
			StorageKey("loop_active_repo_pr_user").
			Annotations(entsql.IndexWhere(
				"pr_number IS NOT NULL AND state NOT IN ('terminated_pr_closed', 'terminated_pr_merged', 'done', 'stopped')")),
	}
}
