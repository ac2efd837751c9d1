// Code generated by ent, DO NOT EDIT.

package loop

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the loop type in the database.
	Label = "loop"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "loop_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldRepoFullName holds the string denoting the repo_full_name field in the database.
	FieldRepoFullName = "repo_full_name"
	// FieldPrNumber holds the string denoting the pr_number field in the database.
	FieldPrNumber = "pr_number"
	// FieldThreadID holds the string denoting the thread_id field in the database.
	FieldThreadID = "thread_id"
	// FieldThreadChatID holds the string denoting the thread_chat_id field in the database.
	FieldThreadChatID = "thread_chat_id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldPlanApprovalPolicy holds the string denoting the plan_approval_policy field in the database.
	FieldPlanApprovalPolicy = "plan_approval_policy"
	// FieldCurrentHeadSha holds the string denoting the current_head_sha field in the database.
	FieldCurrentHeadSha = "current_head_sha"
	// FieldLoopVersion holds the string denoting the loop_version field in the database.
	FieldLoopVersion = "loop_version"
	// FieldTransitionSeq holds the string denoting the transition_seq field in the database.
	FieldTransitionSeq = "transition_seq"
	// FieldFixAttemptCount holds the string denoting the fix_attempt_count field in the database.
	FieldFixAttemptCount = "fix_attempt_count"
	// FieldMaxFixAttempts holds the string denoting the max_fix_attempts field in the database.
	FieldMaxFixAttempts = "max_fix_attempts"
	// FieldIterationCount holds the string denoting the iteration_count field in the database.
	FieldIterationCount = "iteration_count"
	// FieldCooldownUntil holds the string denoting the cooldown_until field in the database.
	FieldCooldownUntil = "cooldown_until"
	// FieldActivePlanArtifactID holds the string denoting the active_plan_artifact_id field in the database.
	FieldActivePlanArtifactID = "active_plan_artifact_id"
	// FieldActiveImplementationArtifactID holds the string denoting the active_implementation_artifact_id field in the database.
	FieldActiveImplementationArtifactID = "active_implementation_artifact_id"
	// FieldActiveReviewArtifactID holds the string denoting the active_review_artifact_id field in the database.
	FieldActiveReviewArtifactID = "active_review_artifact_id"
	// FieldActiveUIArtifactID holds the string denoting the active_ui_artifact_id field in the database.
	FieldActiveUIArtifactID = "active_ui_artifact_id"
	// FieldActiveBabysitArtifactID holds the string denoting the active_babysit_artifact_id field in the database.
	FieldActiveBabysitArtifactID = "active_babysit_artifact_id"
	// FieldCanonicalStatusCommentID holds the string denoting the canonical_status_comment_id field in the database.
	FieldCanonicalStatusCommentID = "canonical_status_comment_id"
	// FieldCanonicalCheckRunID holds the string denoting the canonical_check_run_id field in the database.
	FieldCanonicalCheckRunID = "canonical_check_run_id"
	// FieldVideoCaptureStatus holds the string denoting the video_capture_status field in the database.
	FieldVideoCaptureStatus = "video_capture_status"
	// FieldLatestVideoArtifactKey holds the string denoting the latest_video_artifact_key field in the database.
	FieldLatestVideoArtifactKey = "latest_video_artifact_key"
	// FieldLatestVideoCapturedAt holds the string denoting the latest_video_captured_at field in the database.
	FieldLatestVideoCapturedAt = "latest_video_captured_at"
	// FieldLatestVideoFailureClass holds the string denoting the latest_video_failure_class field in the database.
	FieldLatestVideoFailureClass = "latest_video_failure_class"
	// FieldLatestVideoFailureMessage holds the string denoting the latest_video_failure_message field in the database.
	FieldLatestVideoFailureMessage = "latest_video_failure_message"
	// FieldLatestVideoFailedAt holds the string denoting the latest_video_failed_at field in the database.
	FieldLatestVideoFailedAt = "latest_video_failed_at"
	// FieldStopReason holds the string denoting the stop_reason field in the database.
	FieldStopReason = "stop_reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSignals holds the string denoting the signals edge name in mutations.
	EdgeSignals = "signals"
	// EdgeOutboxActions holds the string denoting the outbox_actions edge name in mutations.
	EdgeOutboxActions = "outbox_actions"
	// EdgeGateRuns holds the string denoting the gate_runs edge name in mutations.
	EdgeGateRuns = "gate_runs"
	// EdgeGateFindings holds the string denoting the gate_findings edge name in mutations.
	EdgeGateFindings = "gate_findings"
	// EdgeArtifacts holds the string denoting the artifacts edge name in mutations.
	EdgeArtifacts = "artifacts"
	// InboxSignalFieldID holds the string denoting the ID field of the InboxSignal.
	InboxSignalFieldID = "signal_id"
	// OutboxActionFieldID holds the string denoting the ID field of the OutboxAction.
	OutboxActionFieldID = "outbox_id"
	// GateRunFieldID holds the string denoting the ID field of the GateRun.
	GateRunFieldID = "gate_run_id"
	// GateFindingFieldID holds the string denoting the ID field of the GateFinding.
	GateFindingFieldID = "finding_id"
	// PhaseArtifactFieldID holds the string denoting the ID field of the PhaseArtifact.
	PhaseArtifactFieldID = "artifact_id"
	// Table holds the table name of the loop in the database.
	Table = "loops"
	// SignalsTable is the table that holds the signals relation/edge.
	SignalsTable = "inbox_signals"
	// SignalsInverseTable is the table name for the InboxSignal entity.
	// It exists in this package in order to avoid circular dependency with the "inboxsignal" package.
	SignalsInverseTable = "inbox_signals"
	// SignalsColumn is the table column denoting the signals relation/edge.
	SignalsColumn = "loop_id"
	// OutboxActionsTable is the table that holds the outbox_actions relation/edge.
	OutboxActionsTable = "outbox_actions"
	// OutboxActionsInverseTable is the table name for the OutboxAction entity.
	// It exists in this package in order to avoid circular dependency with the "outboxaction" package.
	OutboxActionsInverseTable = "outbox_actions"
	// OutboxActionsColumn is the table column denoting the outbox_actions relation/edge.
	OutboxActionsColumn = "loop_id"
	// GateRunsTable is the table that holds the gate_runs relation/edge.
	GateRunsTable = "gate_runs"
	// GateRunsInverseTable is the table name for the GateRun entity.
	// It exists in this package in order to avoid circular dependency with the "gaterun" package.
	GateRunsInverseTable = "gate_runs"
	// GateRunsColumn is the table column denoting the gate_runs relation/edge.
	GateRunsColumn = "loop_id"
	// GateFindingsTable is the table that holds the gate_findings relation/edge.
	GateFindingsTable = "gate_findings"
	// GateFindingsInverseTable is the table name for the GateFinding entity.
	// It exists in this package in order to avoid circular dependency with the "gatefinding" package.
	GateFindingsInverseTable = "gate_findings"
	// GateFindingsColumn is the table column denoting the gate_findings relation/edge.
	GateFindingsColumn = "loop_id"
	// ArtifactsTable is the table that holds the artifacts relation/edge.
	ArtifactsTable = "phase_artifacts"
	// ArtifactsInverseTable is the table name for the PhaseArtifact entity.
	// It exists in this package in order to avoid circular dependency with the "phaseartifact" package.
	ArtifactsInverseTable = "phase_artifacts"
	// ArtifactsColumn is the table column denoting the artifacts relation/edge.
	ArtifactsColumn = "loop_id"
)

// Columns holds all SQL columns for loop fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldRepoFullName,
	FieldPrNumber,
	FieldThreadID,
	FieldThreadChatID,
	FieldState,
	FieldPlanApprovalPolicy,
	FieldCurrentHeadSha,
	FieldLoopVersion,
	FieldTransitionSeq,
	FieldFixAttemptCount,
	FieldMaxFixAttempts,
	FieldIterationCount,
	FieldCooldownUntil,
	FieldActivePlanArtifactID,
	FieldActiveImplementationArtifactID,
	FieldActiveReviewArtifactID,
	FieldActiveUIArtifactID,
	FieldActiveBabysitArtifactID,
	FieldCanonicalStatusCommentID,
	FieldCanonicalCheckRunID,
	FieldVideoCaptureStatus,
	FieldLatestVideoArtifactKey,
	FieldLatestVideoCapturedAt,
	FieldLatestVideoFailureClass,
	FieldLatestVideoFailureMessage,
	FieldLatestVideoFailedAt,
	FieldStopReason,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultLoopVersion holds the default value on creation for the "loop_version" field.
	DefaultLoopVersion int
	// DefaultTransitionSeq holds the default value on creation for the "transition_seq" field.
	DefaultTransitionSeq int
	// DefaultFixAttemptCount holds the default value on creation for the "fix_attempt_count" field.
	DefaultFixAttemptCount int
	// DefaultMaxFixAttempts holds the default value on creation for the "max_fix_attempts" field.
	DefaultMaxFixAttempts int
	// DefaultIterationCount holds the default value on creation for the "iteration_count" field.
	DefaultIterationCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StatePlanning is the default value of the State enum.
const DefaultState = StatePlanning

// State values.
const (
	StatePlanning               State = "planning"
	StateImplementing           State = "implementing"
	StateReviewing              State = "reviewing"
	StateUITesting              State = "ui_testing"
	StatePrBabysitting          State = "pr_babysitting"
	StateBlockedOnHumanFeedback State = "blocked_on_human_feedback"
	StateTerminatedPrClosed     State = "terminated_pr_closed"
	StateTerminatedPrMerged     State = "terminated_pr_merged"
	StateDone                   State = "done"
	StateStopped                State = "stopped"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StatePlanning, StateImplementing, StateReviewing, StateUITesting, StatePrBabysitting, StateBlockedOnHumanFeedback, StateTerminatedPrClosed, StateTerminatedPrMerged, StateDone, StateStopped:
		return nil
	default:
		return fmt.Errorf("loop: invalid enum value for state field: %q", s)
	}
}

// PlanApprovalPolicy defines the type for the "plan_approval_policy" enum field.
type PlanApprovalPolicy string

// PlanApprovalPolicyAuto is the default value of the PlanApprovalPolicy enum.
const DefaultPlanApprovalPolicy = PlanApprovalPolicyAuto

// PlanApprovalPolicy values.
const (
	PlanApprovalPolicyAuto          PlanApprovalPolicy = "auto"
	PlanApprovalPolicyHumanRequired PlanApprovalPolicy = "human_required"
)

func (pap PlanApprovalPolicy) String() string {
	return string(pap)
}

// PlanApprovalPolicyValidator is a validator for the "plan_approval_policy" field enum values. It is called by the builders before save.
func PlanApprovalPolicyValidator(pap PlanApprovalPolicy) error {
	switch pap {
	case PlanApprovalPolicyAuto, PlanApprovalPolicyHumanRequired:
		return nil
	default:
		return fmt.Errorf("loop: invalid enum value for plan_approval_policy field: %q", pap)
	}
}

// OrderOption defines the ordering options for the Loop queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByRepoFullName orders the results by the repo_full_name field.
func ByRepoFullName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepoFullName, opts...).ToFunc()
}

// ByPrNumber orders the results by the pr_number field.
func ByPrNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrNumber, opts...).ToFunc()
}

// ByThreadID orders the results by the thread_id field.
func ByThreadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreadID, opts...).ToFunc()
}

// ByThreadChatID orders the results by the thread_chat_id field.
func ByThreadChatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreadChatID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByPlanApprovalPolicy orders the results by the plan_approval_policy field.
func ByPlanApprovalPolicy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanApprovalPolicy, opts...).ToFunc()
}

// ByCurrentHeadSha orders the results by the current_head_sha field.
func ByCurrentHeadSha(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentHeadSha, opts...).ToFunc()
}

// ByLoopVersion orders the results by the loop_version field.
func ByLoopVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoopVersion, opts...).ToFunc()
}

// ByTransitionSeq orders the results by the transition_seq field.
func ByTransitionSeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransitionSeq, opts...).ToFunc()
}

// ByFixAttemptCount orders the results by the fix_attempt_count field.
func ByFixAttemptCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFixAttemptCount, opts...).ToFunc()
}

// ByMaxFixAttempts orders the results by the max_fix_attempts field.
func ByMaxFixAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxFixAttempts, opts...).ToFunc()
}

// ByIterationCount orders the results by the iteration_count field.
func ByIterationCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIterationCount, opts...).ToFunc()
}

// ByCooldownUntil orders the results by the cooldown_until field.
func ByCooldownUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCooldownUntil, opts...).ToFunc()
}

// ByActivePlanArtifactID orders the results by the active_plan_artifact_id field.
func ByActivePlanArtifactID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivePlanArtifactID, opts...).ToFunc()
}

// ByActiveImplementationArtifactID orders the results by the active_implementation_artifact_id field.
func ByActiveImplementationArtifactID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveImplementationArtifactID, opts...).ToFunc()
}

// ByActiveReviewArtifactID orders the results by the active_review_artifact_id field.
func ByActiveReviewArtifactID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveReviewArtifactID, opts...).ToFunc()
}

// ByActiveUIArtifactID orders the results by the active_ui_artifact_id field.
func ByActiveUIArtifactID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveUIArtifactID, opts...).ToFunc()
}

// ByActiveBabysitArtifactID orders the results by the active_babysit_artifact_id field.
func ByActiveBabysitArtifactID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveBabysitArtifactID, opts...).ToFunc()
}

// ByCanonicalStatusCommentID orders the results by the canonical_status_comment_id field.
func ByCanonicalStatusCommentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalStatusCommentID, opts...).ToFunc()
}

// ByCanonicalCheckRunID orders the results by the canonical_check_run_id field.
func ByCanonicalCheckRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalCheckRunID, opts...).ToFunc()
}

// ByVideoCaptureStatus orders the results by the video_capture_status field.
func ByVideoCaptureStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVideoCaptureStatus, opts...).ToFunc()
}

// ByLatestVideoArtifactKey orders the results by the latest_video_artifact_key field.
func ByLatestVideoArtifactKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatestVideoArtifactKey, opts...).ToFunc()
}

// ByLatestVideoCapturedAt orders the results by the latest_video_captured_at field.
func ByLatestVideoCapturedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatestVideoCapturedAt, opts...).ToFunc()
}

// ByLatestVideoFailureClass orders the results by the latest_video_failure_class field.
func ByLatestVideoFailureClass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatestVideoFailureClass, opts...).ToFunc()
}

// ByLatestVideoFailureMessage orders the results by the latest_video_failure_message field.
func ByLatestVideoFailureMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatestVideoFailureMessage, opts...).ToFunc()
}

// ByLatestVideoFailedAt orders the results by the latest_video_failed_at field.
func ByLatestVideoFailedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatestVideoFailedAt, opts...).ToFunc()
}

// ByStopReason orders the results by the stop_reason field.
func ByStopReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStopReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySignalsCount orders the results by signals count.
func BySignalsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSignalsStep(), opts...)
	}
}

// BySignals orders the results by signals terms.
func BySignals(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSignalsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByOutboxActionsCount orders the results by outbox_actions count.
func ByOutboxActionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOutboxActionsStep(), opts...)
	}
}

// ByOutboxActions orders the results by outbox_actions terms.
func ByOutboxActions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOutboxActionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByGateRunsCount orders the results by gate_runs count.
func ByGateRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGateRunsStep(), opts...)
	}
}

// ByGateRuns orders the results by gate_runs terms.
func ByGateRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGateRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByGateFindingsCount orders the results by gate_findings count.
func ByGateFindingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGateFindingsStep(), opts...)
	}
}

// ByGateFindings orders the results by gate_findings terms.
func ByGateFindings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGateFindingsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByArtifactsCount orders the results by artifacts count.
func ByArtifactsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newArtifactsStep(), opts...)
	}
}

// ByArtifacts orders the results by artifacts terms.
func ByArtifacts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArtifactsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSignalsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SignalsInverseTable, InboxSignalFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SignalsTable, SignalsColumn),
	)
}
func newOutboxActionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OutboxActionsInverseTable, OutboxActionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OutboxActionsTable, OutboxActionsColumn),
	)
}
func newGateRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GateRunsInverseTable, GateRunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GateRunsTable, GateRunsColumn),
	)
}
func newGateFindingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GateFindingsInverseTable, GateFindingFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GateFindingsTable, GateFindingsColumn),
	)
}
func newArtifactsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArtifactsInverseTable, PhaseArtifactFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ArtifactsTable, ArtifactsColumn),
	)
}
