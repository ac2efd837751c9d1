// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GateFindingsColumns holds the columns for the "gate_findings" table.
	GateFindingsColumns = []*schema.Column{
		{Name: "finding_id", Type: field.TypeString, Unique: true},
		{Name: "gate_kind", Type: field.TypeEnum, Enums: []string{"deep_review", "carmack_review"}},
		{Name: "head_sha", Type: field.TypeString},
		{Name: "stable_finding_id", Type: field.TypeString},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"critical", "high", "medium", "low"}},
		{Name: "category", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "detail", Type: field.TypeString, Size: 2147483647},
		{Name: "suggested_fix", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_blocking", Type: field.TypeBool, Default: true},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "resolved_by_event_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "loop_id", Type: field.TypeString},
	}
	// GateFindingsTable holds the schema information for the "gate_findings" table.
	GateFindingsTable = &schema.Table{
		Name:       "gate_findings",
		Columns:    GateFindingsColumns,
		PrimaryKey: []*schema.Column{GateFindingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "gate_findings_loops_gate_findings",
				Columns:    []*schema.Column{GateFindingsColumns[13]},
				RefColumns: []*schema.Column{LoopsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "gatefinding_loop_id_gate_kind_head_sha_stable_finding_id",
				Unique:  true,
				Columns: []*schema.Column{GateFindingsColumns[13], GateFindingsColumns[1], GateFindingsColumns[2], GateFindingsColumns[3]},
			},
			{
				Name:    "gatefinding_loop_id_head_sha",
				Unique:  false,
				Columns: []*schema.Column{GateFindingsColumns[13], GateFindingsColumns[2]},
			},
		},
	}
	// GateRunsColumns holds the columns for the "gate_runs" table.
	GateRunsColumns = []*schema.Column{
		{Name: "gate_run_id", Type: field.TypeString, Unique: true},
		{Name: "gate_kind", Type: field.TypeEnum, Enums: []string{"ci", "review_threads", "deep_review", "carmack_review"}},
		{Name: "head_sha", Type: field.TypeString},
		{Name: "loop_version", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString},
		{Name: "gate_passed", Type: field.TypeBool, Default: false},
		{Name: "trigger_event", Type: field.TypeString, Nullable: true},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "required_check_source", Type: field.TypeString, Nullable: true},
		{Name: "required_checks", Type: field.TypeJSON, Nullable: true},
		{Name: "failing_required_checks", Type: field.TypeJSON, Nullable: true},
		{Name: "unresolved_thread_count", Type: field.TypeInt, Nullable: true},
		{Name: "unresolved_thread_count_source", Type: field.TypeString, Nullable: true},
		{Name: "invalid_output", Type: field.TypeBool, Default: false},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "loop_id", Type: field.TypeString},
	}
	// GateRunsTable holds the schema information for the "gate_runs" table.
	GateRunsTable = &schema.Table{
		Name:       "gate_runs",
		Columns:    GateRunsColumns,
		PrimaryKey: []*schema.Column{GateRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "gate_runs_loops_gate_runs",
				Columns:    []*schema.Column{GateRunsColumns[17]},
				RefColumns: []*schema.Column{LoopsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "gaterun_loop_id_gate_kind_head_sha",
				Unique:  true,
				Columns: []*schema.Column{GateRunsColumns[17], GateRunsColumns[1], GateRunsColumns[2]},
			},
			{
				Name:    "gaterun_loop_id_gate_kind_created_at",
				Unique:  false,
				Columns: []*schema.Column{GateRunsColumns[17], GateRunsColumns[1], GateRunsColumns[15]},
			},
		},
	}
	// InboxSignalsColumns holds the columns for the "inbox_signals" table.
	InboxSignalsColumns = []*schema.Column{
		{Name: "signal_id", Type: field.TypeString, Unique: true},
		{Name: "cause_type", Type: field.TypeString},
		{Name: "canonical_cause_id", Type: field.TypeString},
		{Name: "cause_identity_version", Type: field.TypeInt, Default: 1},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "head_sha", Type: field.TypeString, Nullable: true},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "loop_id", Type: field.TypeString},
	}
	// InboxSignalsTable holds the schema information for the "inbox_signals" table.
	InboxSignalsTable = &schema.Table{
		Name:       "inbox_signals",
		Columns:    InboxSignalsColumns,
		PrimaryKey: []*schema.Column{InboxSignalsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "inbox_signals_loops_signals",
				Columns:    []*schema.Column{InboxSignalsColumns[8]},
				RefColumns: []*schema.Column{LoopsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "inboxsignal_loop_id_canonical_cause_id",
				Unique:  true,
				Columns: []*schema.Column{InboxSignalsColumns[8], InboxSignalsColumns[2]},
			},
			{
				Name:    "inboxsignal_loop_id_received_at",
				Unique:  false,
				Columns: []*schema.Column{InboxSignalsColumns[8], InboxSignalsColumns[6]},
			},
		},
	}
	// LoopsColumns holds the columns for the "loops" table.
	LoopsColumns = []*schema.Column{
		{Name: "loop_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "repo_full_name", Type: field.TypeString},
		{Name: "pr_number", Type: field.TypeInt, Nullable: true},
		{Name: "thread_id", Type: field.TypeString},
		{Name: "thread_chat_id", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"planning", "implementing", "reviewing", "ui_testing", "pr_babysitting", "blocked_on_human_feedback", "terminated_pr_closed", "terminated_pr_merged", "done", "stopped"}, Default: "planning"},
		{Name: "plan_approval_policy", Type: field.TypeEnum, Enums: []string{"auto", "human_required"}, Default: "auto"},
		{Name: "current_head_sha", Type: field.TypeString, Nullable: true},
		{Name: "loop_version", Type: field.TypeInt, Default: 0},
		{Name: "transition_seq", Type: field.TypeInt, Default: 0},
		{Name: "fix_attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "max_fix_attempts", Type: field.TypeInt, Default: 3},
		{Name: "iteration_count", Type: field.TypeInt, Default: 0},
		{Name: "cooldown_until", Type: field.TypeTime, Nullable: true},
		{Name: "active_plan_artifact_id", Type: field.TypeString, Nullable: true},
		{Name: "active_implementation_artifact_id", Type: field.TypeString, Nullable: true},
		{Name: "active_review_artifact_id", Type: field.TypeString, Nullable: true},
		{Name: "active_ui_artifact_id", Type: field.TypeString, Nullable: true},
		{Name: "active_babysit_artifact_id", Type: field.TypeString, Nullable: true},
		{Name: "canonical_status_comment_id", Type: field.TypeString, Nullable: true},
		{Name: "canonical_check_run_id", Type: field.TypeString, Nullable: true},
		{Name: "video_capture_status", Type: field.TypeString, Nullable: true},
		{Name: "latest_video_artifact_key", Type: field.TypeString, Nullable: true},
		{Name: "latest_video_captured_at", Type: field.TypeTime, Nullable: true},
		{Name: "latest_video_failure_class", Type: field.TypeString, Nullable: true},
		{Name: "latest_video_failure_message", Type: field.TypeString, Nullable: true},
		{Name: "latest_video_failed_at", Type: field.TypeTime, Nullable: true},
		{Name: "stop_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LoopsTable holds the schema information for the "loops" table.
	LoopsTable = &schema.Table{
		Name:       "loops",
		Columns:    LoopsColumns,
		PrimaryKey: []*schema.Column{LoopsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "loop_state",
				Unique:  false,
				Columns: []*schema.Column{LoopsColumns[6]},
			},
			{
				Name:    "loop_user_id_thread_id",
				Unique:  false,
				Columns: []*schema.Column{LoopsColumns[1], LoopsColumns[4]},
			},
			{
				Name:    "loop_repo_full_name_pr_number",
				Unique:  false,
				Columns: []*schema.Column{LoopsColumns[2], LoopsColumns[3]},
			},
			{
				Name:    "loop_state_updated_at",
				Unique:  false,
				Columns: []*schema.Column{LoopsColumns[6], LoopsColumns[30]},
			},
			{
				Name:    "loop_active_user_thread",
				Unique:  true,
				Columns: []*schema.Column{LoopsColumns[1], LoopsColumns[4]},
				Annotation: &entsql.IndexAnnotation{
					Where: "state NOT IN ('terminated_pr_closed', 'terminated_pr_merged', 'done', 'stopped')",
				},
			},
			{
				Name:    "loop_active_repo_pr_user",
				Unique:  true,
				Columns: []*schema.Column{LoopsColumns[2], LoopsColumns[3], LoopsColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "pr_number IS NOT NULL AND state NOT IN ('terminated_pr_closed', 'terminated_pr_merged', 'done', 'stopped')",
				},
			},
		},
	}
	// LoopLeasesColumns holds the columns for the "loop_leases" table.
	LoopLeasesColumns = []*schema.Column{
		{Name: "loop_id", Type: field.TypeString, Unique: true},
		{Name: "lease_owner", Type: field.TypeString, Nullable: true},
		{Name: "lease_epoch", Type: field.TypeInt, Default: 0},
		{Name: "lease_expires_at", Type: field.TypeTime, Nullable: true},
	}
	// LoopLeasesTable holds the schema information for the "loop_leases" table.
	LoopLeasesTable = &schema.Table{
		Name:       "loop_leases",
		Columns:    LoopLeasesColumns,
		PrimaryKey: []*schema.Column{LoopLeasesColumns[0]},
	}
	// OutboxActionsColumns holds the columns for the "outbox_actions" table.
	OutboxActionsColumns = []*schema.Column{
		{Name: "outbox_id", Type: field.TypeString, Unique: true},
		{Name: "transition_seq", Type: field.TypeInt},
		{Name: "action_type", Type: field.TypeEnum, Enums: []string{"publish_status_comment", "publish_check_summary", "enqueue_fix_task", "publish_video_link", "emit_telemetry"}},
		{Name: "supersession_group", Type: field.TypeString},
		{Name: "action_key", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "canceled"}, Default: "pending"},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "next_retry_at", Type: field.TypeTime, Nullable: true},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error_class", Type: field.TypeString, Nullable: true},
		{Name: "last_error_code", Type: field.TypeString, Nullable: true},
		{Name: "last_error_message", Type: field.TypeString, Nullable: true},
		{Name: "superseded_by_outbox_id", Type: field.TypeString, Nullable: true},
		{Name: "canceled_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "loop_id", Type: field.TypeString},
	}
	// OutboxActionsTable holds the schema information for the "outbox_actions" table.
	OutboxActionsTable = &schema.Table{
		Name:       "outbox_actions",
		Columns:    OutboxActionsColumns,
		PrimaryKey: []*schema.Column{OutboxActionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "outbox_actions_loops_outbox_actions",
				Columns:    []*schema.Column{OutboxActionsColumns[19]},
				RefColumns: []*schema.Column{LoopsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "outboxaction_loop_id_action_key",
				Unique:  true,
				Columns: []*schema.Column{OutboxActionsColumns[19], OutboxActionsColumns[4]},
			},
			{
				Name:    "outboxaction_loop_id_status",
				Unique:  false,
				Columns: []*schema.Column{OutboxActionsColumns[19], OutboxActionsColumns[6]},
			},
			{
				Name:    "outboxaction_loop_id_supersession_group_status",
				Unique:  false,
				Columns: []*schema.Column{OutboxActionsColumns[19], OutboxActionsColumns[3], OutboxActionsColumns[6]},
			},
			{
				Name:    "outboxaction_status_next_retry_at",
				Unique:  false,
				Columns: []*schema.Column{OutboxActionsColumns[6], OutboxActionsColumns[8]},
			},
		},
	}
	// OutboxAttemptsColumns holds the columns for the "outbox_attempts" table.
	OutboxAttemptsColumns = []*schema.Column{
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "attempt", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"completed", "retry_scheduled", "failed"}},
		{Name: "error_class", Type: field.TypeString, Nullable: true},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "retry_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "outbox_id", Type: field.TypeString},
	}
	// OutboxAttemptsTable holds the schema information for the "outbox_attempts" table.
	OutboxAttemptsTable = &schema.Table{
		Name:       "outbox_attempts",
		Columns:    OutboxAttemptsColumns,
		PrimaryKey: []*schema.Column{OutboxAttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "outbox_attempts_outbox_actions_attempts",
				Columns:    []*schema.Column{OutboxAttemptsColumns[8]},
				RefColumns: []*schema.Column{OutboxActionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "outboxattempt_outbox_id_attempt",
				Unique:  false,
				Columns: []*schema.Column{OutboxAttemptsColumns[8], OutboxAttemptsColumns[1]},
			},
		},
	}
	// ParitySamplesColumns holds the columns for the "parity_samples" table.
	ParitySamplesColumns = []*schema.Column{
		{Name: "sample_id", Type: field.TypeString, Unique: true},
		{Name: "cause_type", Type: field.TypeString},
		{Name: "target_class", Type: field.TypeString},
		{Name: "matched", Type: field.TypeBool},
		{Name: "eligible", Type: field.TypeBool, Default: true},
		{Name: "observed_at", Type: field.TypeTime},
	}
	// ParitySamplesTable holds the schema information for the "parity_samples" table.
	ParitySamplesTable = &schema.Table{
		Name:       "parity_samples",
		Columns:    ParitySamplesColumns,
		PrimaryKey: []*schema.Column{ParitySamplesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "paritysample_cause_type_target_class",
				Unique:  false,
				Columns: []*schema.Column{ParitySamplesColumns[1], ParitySamplesColumns[2]},
			},
			{
				Name:    "paritysample_observed_at",
				Unique:  false,
				Columns: []*schema.Column{ParitySamplesColumns[5]},
			},
		},
	}
	// PhaseArtifactsColumns holds the columns for the "phase_artifacts" table.
	PhaseArtifactsColumns = []*schema.Column{
		{Name: "artifact_id", Type: field.TypeString, Unique: true},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"planning", "implementing", "reviewing", "ui_testing", "pr_linking", "pr_babysitting"}},
		{Name: "artifact_type", Type: field.TypeString},
		{Name: "head_sha", Type: field.TypeString, Nullable: true},
		{Name: "loop_version", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"generated", "approved", "accepted", "superseded"}, Default: "generated"},
		{Name: "generated_by", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "approved_by_user_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "loop_id", Type: field.TypeString},
	}
	// PhaseArtifactsTable holds the schema information for the "phase_artifacts" table.
	PhaseArtifactsTable = &schema.Table{
		Name:       "phase_artifacts",
		Columns:    PhaseArtifactsColumns,
		PrimaryKey: []*schema.Column{PhaseArtifactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "phase_artifacts_loops_artifacts",
				Columns:    []*schema.Column{PhaseArtifactsColumns[11]},
				RefColumns: []*schema.Column{LoopsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "phaseartifact_loop_id_phase_status",
				Unique:  false,
				Columns: []*schema.Column{PhaseArtifactsColumns[11], PhaseArtifactsColumns[1], PhaseArtifactsColumns[5]},
			},
			{
				Name:    "phaseartifact_loop_id_phase_head_sha",
				Unique:  false,
				Columns: []*schema.Column{PhaseArtifactsColumns[11], PhaseArtifactsColumns[1], PhaseArtifactsColumns[3]},
			},
		},
	}
	// PlanTasksColumns holds the columns for the "plan_tasks" table.
	PlanTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "stable_task_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "acceptance_criteria", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"todo", "in_progress", "done", "skipped", "blocked"}, Default: "todo"},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_by", Type: field.TypeEnum, Nullable: true, Enums: []string{"agent", "human"}},
		{Name: "completion_evidence", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "artifact_id", Type: field.TypeString},
	}
	// PlanTasksTable holds the schema information for the "plan_tasks" table.
	PlanTasksTable = &schema.Table{
		Name:       "plan_tasks",
		Columns:    PlanTasksColumns,
		PrimaryKey: []*schema.Column{PlanTasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "plan_tasks_phase_artifacts_tasks",
				Columns:    []*schema.Column{PlanTasksColumns[10]},
				RefColumns: []*schema.Column{PhaseArtifactsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "plantask_artifact_id_stable_task_id",
				Unique:  true,
				Columns: []*schema.Column{PlanTasksColumns[10], PlanTasksColumns[1]},
			},
		},
	}
	// WebhookDeliveriesColumns holds the columns for the "webhook_deliveries" table.
	WebhookDeliveriesColumns = []*schema.Column{
		{Name: "delivery_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "claimant_token", Type: field.TypeString},
		{Name: "claim_expires_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WebhookDeliveriesTable holds the schema information for the "webhook_deliveries" table.
	WebhookDeliveriesTable = &schema.Table{
		Name:       "webhook_deliveries",
		Columns:    WebhookDeliveriesColumns,
		PrimaryKey: []*schema.Column{WebhookDeliveriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhookdelivery_claim_expires_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GateFindingsTable,
		GateRunsTable,
		InboxSignalsTable,
		LoopsTable,
		LoopLeasesTable,
		OutboxActionsTable,
		OutboxAttemptsTable,
		ParitySamplesTable,
		PhaseArtifactsTable,
		PlanTasksTable,
		WebhookDeliveriesTable,
	}
)

func init() {
	GateFindingsTable.ForeignKeys[0].RefTable = LoopsTable
	GateRunsTable.ForeignKeys[0].RefTable = LoopsTable
	InboxSignalsTable.ForeignKeys[0].RefTable = LoopsTable
	OutboxActionsTable.ForeignKeys[0].RefTable = LoopsTable
	OutboxAttemptsTable.ForeignKeys[0].RefTable = OutboxActionsTable
	PhaseArtifactsTable.ForeignKeys[0].RefTable = LoopsTable
	PlanTasksTable.ForeignKeys[0].RefTable = PhaseArtifactsTable
}
