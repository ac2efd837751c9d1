// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/loopd/ent/loop"
)

// Loop is the model entity for the Loop schema.
type Loop struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owning user (already authorized by the caller)
	UserID string `json:"user_id,omitempty"`
	// Repository identifier in owner/name form
	RepoFullName string `json:"repo_full_name,omitempty"`
	// Pull request number; nil until the PR is linked
	PrNumber *int `json:"pr_number,omitempty"`
	// Agent thread driving this loop
	ThreadID string `json:"thread_id,omitempty"`
	// ThreadChatID holds the value of the "thread_chat_id" field.
	ThreadChatID *string `json:"thread_chat_id,omitempty"`
	// State holds the value of the "state" field.
	State loop.State `json:"state,omitempty"`
	// PlanApprovalPolicy holds the value of the "plan_approval_policy" field.
	PlanApprovalPolicy loop.PlanApprovalPolicy `json:"plan_approval_policy,omitempty"`
	// Tip of the PR branch under evaluation
	CurrentHeadSha *string `json:"current_head_sha,omitempty"`
	// Monotonically non-decreasing; bumped on head-SHA change, rejects stale signals
	LoopVersion int `json:"loop_version,omitempty"`
	// Monotonic sequence of applied state transitions; orders outbox supersession
	TransitionSeq int `json:"transition_seq,omitempty"`
	// FixAttemptCount holds the value of the "fix_attempt_count" field.
	FixAttemptCount int `json:"fix_attempt_count,omitempty"`
	// MaxFixAttempts holds the value of the "max_fix_attempts" field.
	MaxFixAttempts int `json:"max_fix_attempts,omitempty"`
	// Signal-inbox ticks processed; bounded by the max-iterations guardrail
	IterationCount int `json:"iteration_count,omitempty"`
	// CooldownUntil holds the value of the "cooldown_until" field.
	CooldownUntil *time.Time `json:"cooldown_until,omitempty"`
	// ActivePlanArtifactID holds the value of the "active_plan_artifact_id" field.
	ActivePlanArtifactID *string `json:"active_plan_artifact_id,omitempty"`
	// ActiveImplementationArtifactID holds the value of the "active_implementation_artifact_id" field.
	ActiveImplementationArtifactID *string `json:"active_implementation_artifact_id,omitempty"`
	// ActiveReviewArtifactID holds the value of the "active_review_artifact_id" field.
	ActiveReviewArtifactID *string `json:"active_review_artifact_id,omitempty"`
	// ActiveUIArtifactID holds the value of the "active_ui_artifact_id" field.
	ActiveUIArtifactID *string `json:"active_ui_artifact_id,omitempty"`
	// ActiveBabysitArtifactID holds the value of the "active_babysit_artifact_id" field.
	ActiveBabysitArtifactID *string `json:"active_babysit_artifact_id,omitempty"`
	// Single status comment updated in place on the PR
	CanonicalStatusCommentID *string `json:"canonical_status_comment_id,omitempty"`
	// CanonicalCheckRunID holds the value of the "canonical_check_run_id" field.
	CanonicalCheckRunID *string `json:"canonical_check_run_id,omitempty"`
	// VideoCaptureStatus holds the value of the "video_capture_status" field.
	VideoCaptureStatus *string `json:"video_capture_status,omitempty"`
	// Object-store key of the most recent capture
	LatestVideoArtifactKey *string `json:"latest_video_artifact_key,omitempty"`
	// LatestVideoCapturedAt holds the value of the "latest_video_captured_at" field.
	LatestVideoCapturedAt *time.Time `json:"latest_video_captured_at,omitempty"`
	// LatestVideoFailureClass holds the value of the "latest_video_failure_class" field.
	LatestVideoFailureClass *string `json:"latest_video_failure_class,omitempty"`
	// LatestVideoFailureMessage holds the value of the "latest_video_failure_message" field.
	LatestVideoFailureMessage *string `json:"latest_video_failure_message,omitempty"`
	// LatestVideoFailedAt holds the value of the "latest_video_failed_at" field.
	LatestVideoFailedAt *time.Time `json:"latest_video_failed_at,omitempty"`
	// StopReason holds the value of the "stop_reason" field.
	StopReason *string `json:"stop_reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LoopQuery when eager-loading is set.
	Edges        LoopEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LoopEdges holds the relations/edges for other nodes in the graph.
type LoopEdges struct {
	// Signals holds the value of the signals edge.
	Signals []*InboxSignal `json:"signals,omitempty"`
	// OutboxActions holds the value of the outbox_actions edge.
	OutboxActions []*OutboxAction `json:"outbox_actions,omitempty"`
	// GateRuns holds the value of the gate_runs edge.
	GateRuns []*GateRun `json:"gate_runs,omitempty"`
	// GateFindings holds the value of the gate_findings edge.
	GateFindings []*GateFinding `json:"gate_findings,omitempty"`
	// Artifacts holds the value of the artifacts edge.
	Artifacts []*PhaseArtifact `json:"artifacts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// SignalsOrErr returns the Signals value or an error if the edge
// was not loaded in eager-loading.
func (e LoopEdges) SignalsOrErr() ([]*InboxSignal, error) {
	if e.loadedTypes[0] {
		return e.Signals, nil
	}
	return nil, &NotLoadedError{edge: "signals"}
}

// OutboxActionsOrErr returns the OutboxActions value or an error if the edge
// was not loaded in eager-loading.
func (e LoopEdges) OutboxActionsOrErr() ([]*OutboxAction, error) {
	if e.loadedTypes[1] {
		return e.OutboxActions, nil
	}
	return nil, &NotLoadedError{edge: "outbox_actions"}
}

// GateRunsOrErr returns the GateRuns value or an error if the edge
// was not loaded in eager-loading.
func (e LoopEdges) GateRunsOrErr() ([]*GateRun, error) {
	if e.loadedTypes[2] {
		return e.GateRuns, nil
	}
	return nil, &NotLoadedError{edge: "gate_runs"}
}

// GateFindingsOrErr returns the GateFindings value or an error if the edge
// was not loaded in eager-loading.
func (e LoopEdges) GateFindingsOrErr() ([]*GateFinding, error) {
	if e.loadedTypes[3] {
		return e.GateFindings, nil
	}
	return nil, &NotLoadedError{edge: "gate_findings"}
}

// ArtifactsOrErr returns the Artifacts value or an error if the edge
// was not loaded in eager-loading.
func (e LoopEdges) ArtifactsOrErr() ([]*PhaseArtifact, error) {
	if e.loadedTypes[4] {
		return e.Artifacts, nil
	}
	return nil, &NotLoadedError{edge: "artifacts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Loop) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case loop.FieldPrNumber, loop.FieldLoopVersion, loop.FieldTransitionSeq, loop.FieldFixAttemptCount, loop.FieldMaxFixAttempts, loop.FieldIterationCount:
			values[i] = new(sql.NullInt64)
		case loop.FieldID, loop.FieldUserID, loop.FieldRepoFullName, loop.FieldThreadID, loop.FieldThreadChatID, loop.FieldState, loop.FieldPlanApprovalPolicy, loop.FieldCurrentHeadSha, loop.FieldActivePlanArtifactID, loop.FieldActiveImplementationArtifactID, loop.FieldActiveReviewArtifactID, loop.FieldActiveUIArtifactID, loop.FieldActiveBabysitArtifactID, loop.FieldCanonicalStatusCommentID, loop.FieldCanonicalCheckRunID, loop.FieldVideoCaptureStatus, loop.FieldLatestVideoArtifactKey, loop.FieldLatestVideoFailureClass, loop.FieldLatestVideoFailureMessage, loop.FieldStopReason:
			values[i] = new(sql.NullString)
		case loop.FieldCooldownUntil, loop.FieldLatestVideoCapturedAt, loop.FieldLatestVideoFailedAt, loop.FieldCreatedAt, loop.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Loop fields.
func (_m *Loop) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case loop.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case loop.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case loop.FieldRepoFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo_full_name", values[i])
			} else if value.Valid {
				_m.RepoFullName = value.String
			}
		case loop.FieldPrNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pr_number", values[i])
			} else if value.Valid {
				_m.PrNumber = new(int)
				*_m.PrNumber = int(value.Int64)
			}
		case loop.FieldThreadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thread_id", values[i])
			} else if value.Valid {
				_m.ThreadID = value.String
			}
		case loop.FieldThreadChatID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thread_chat_id", values[i])
			} else if value.Valid {
				_m.ThreadChatID = new(string)
				*_m.ThreadChatID = value.String
			}
		case loop.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = loop.State(value.String)
			}
		case loop.FieldPlanApprovalPolicy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_approval_policy", values[i])
			} else if value.Valid {
				_m.PlanApprovalPolicy = loop.PlanApprovalPolicy(value.String)
			}
		case loop.FieldCurrentHeadSha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_head_sha", values[i])
			} else if value.Valid {
				_m.CurrentHeadSha = new(string)
				*_m.CurrentHeadSha = value.String
			}
		case loop.FieldLoopVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field loop_version", values[i])
			} else if value.Valid {
				_m.LoopVersion = int(value.Int64)
			}
		case loop.FieldTransitionSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field transition_seq", values[i])
			} else if value.Valid {
				_m.TransitionSeq = int(value.Int64)
			}
		case loop.FieldFixAttemptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fix_attempt_count", values[i])
			} else if value.Valid {
				_m.FixAttemptCount = int(value.Int64)
			}
		case loop.FieldMaxFixAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_fix_attempts", values[i])
			} else if value.Valid {
				_m.MaxFixAttempts = int(value.Int64)
			}
		case loop.FieldIterationCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iteration_count", values[i])
			} else if value.Valid {
				_m.IterationCount = int(value.Int64)
			}
		case loop.FieldCooldownUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cooldown_until", values[i])
			} else if value.Valid {
				_m.CooldownUntil = new(time.Time)
				*_m.CooldownUntil = value.Time
			}
		case loop.FieldActivePlanArtifactID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field active_plan_artifact_id", values[i])
			} else if value.Valid {
				_m.ActivePlanArtifactID = new(string)
				*_m.ActivePlanArtifactID = value.String
			}
		case loop.FieldActiveImplementationArtifactID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field active_implementation_artifact_id", values[i])
			} else if value.Valid {
				_m.ActiveImplementationArtifactID = new(string)
				*_m.ActiveImplementationArtifactID = value.String
			}
		case loop.FieldActiveReviewArtifactID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field active_review_artifact_id", values[i])
			} else if value.Valid {
				_m.ActiveReviewArtifactID = new(string)
				*_m.ActiveReviewArtifactID = value.String
			}
		case loop.FieldActiveUIArtifactID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field active_ui_artifact_id", values[i])
			} else if value.Valid {
				_m.ActiveUIArtifactID = new(string)
				*_m.ActiveUIArtifactID = value.String
			}
		case loop.FieldActiveBabysitArtifactID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field active_babysit_artifact_id", values[i])
			} else if value.Valid {
				_m.ActiveBabysitArtifactID = new(string)
				*_m.ActiveBabysitArtifactID = value.String
			}
		case loop.FieldCanonicalStatusCommentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_status_comment_id", values[i])
			} else if value.Valid {
				_m.CanonicalStatusCommentID = new(string)
				*_m.CanonicalStatusCommentID = value.String
			}
		case loop.FieldCanonicalCheckRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_check_run_id", values[i])
			} else if value.Valid {
				_m.CanonicalCheckRunID = new(string)
				*_m.CanonicalCheckRunID = value.String
			}
		case loop.FieldVideoCaptureStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field video_capture_status", values[i])
			} else if value.Valid {
				_m.VideoCaptureStatus = new(string)
				*_m.VideoCaptureStatus = value.String
			}
		case loop.FieldLatestVideoArtifactKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field latest_video_artifact_key", values[i])
			} else if value.Valid {
				_m.LatestVideoArtifactKey = new(string)
				*_m.LatestVideoArtifactKey = value.String
			}
		case loop.FieldLatestVideoCapturedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field latest_video_captured_at", values[i])
			} else if value.Valid {
				_m.LatestVideoCapturedAt = new(time.Time)
				*_m.LatestVideoCapturedAt = value.Time
			}
		case loop.FieldLatestVideoFailureClass:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field latest_video_failure_class", values[i])
			} else if value.Valid {
				_m.LatestVideoFailureClass = new(string)
				*_m.LatestVideoFailureClass = value.String
			}
		case loop.FieldLatestVideoFailureMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field latest_video_failure_message", values[i])
			} else if value.Valid {
				_m.LatestVideoFailureMessage = new(string)
				*_m.LatestVideoFailureMessage = value.String
			}
		case loop.FieldLatestVideoFailedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field latest_video_failed_at", values[i])
			} else if value.Valid {
				_m.LatestVideoFailedAt = new(time.Time)
				*_m.LatestVideoFailedAt = value.Time
			}
		case loop.FieldStopReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stop_reason", values[i])
			} else if value.Valid {
				_m.StopReason = new(string)
				*_m.StopReason = value.String
			}
		case loop.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case loop.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Loop.
// This includes values selected through modifiers, order, etc.
func (_m *Loop) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySignals queries the "signals" edge of the Loop entity.
func (_m *Loop) QuerySignals() *InboxSignalQuery {
	return NewLoopClient(_m.config).QuerySignals(_m)
}

// QueryOutboxActions queries the "outbox_actions" edge of the Loop entity.
func (_m *Loop) QueryOutboxActions() *OutboxActionQuery {
	return NewLoopClient(_m.config).QueryOutboxActions(_m)
}

// QueryGateRuns queries the "gate_runs" edge of the Loop entity.
func (_m *Loop) QueryGateRuns() *GateRunQuery {
	return NewLoopClient(_m.config).QueryGateRuns(_m)
}

// QueryGateFindings queries the "gate_findings" edge of the Loop entity.
func (_m *Loop) QueryGateFindings() *GateFindingQuery {
	return NewLoopClient(_m.config).QueryGateFindings(_m)
}

// QueryArtifacts queries the "artifacts" edge of the Loop entity.
func (_m *Loop) QueryArtifacts() *PhaseArtifactQuery {
	return NewLoopClient(_m.config).QueryArtifacts(_m)
}

// Update returns a builder for updating this Loop.
// Note that you need to call Loop.Unwrap() before calling this method if this Loop
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Loop) Update() *LoopUpdateOne {
	return NewLoopClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Loop entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Loop) Unwrap() *Loop {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Loop is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Loop) String() string {
	var builder strings.Builder
	builder.WriteString("Loop(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("repo_full_name=")
	builder.WriteString(_m.RepoFullName)
	builder.WriteString(", ")
	if v := _m.PrNumber; v != nil {
		builder.WriteString("pr_number=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("thread_id=")
	builder.WriteString(_m.ThreadID)
	builder.WriteString(", ")
	if v := _m.ThreadChatID; v != nil {
		builder.WriteString("thread_chat_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("plan_approval_policy=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlanApprovalPolicy))
	builder.WriteString(", ")
	if v := _m.CurrentHeadSha; v != nil {
		builder.WriteString("current_head_sha=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("loop_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.LoopVersion))
	builder.WriteString(", ")
	builder.WriteString("transition_seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.TransitionSeq))
	builder.WriteString(", ")
	builder.WriteString("fix_attempt_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FixAttemptCount))
	builder.WriteString(", ")
	builder.WriteString("max_fix_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxFixAttempts))
	builder.WriteString(", ")
	builder.WriteString("iteration_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.IterationCount))
	builder.WriteString(", ")
	if v := _m.CooldownUntil; v != nil {
		builder.WriteString("cooldown_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ActivePlanArtifactID; v != nil {
		builder.WriteString("active_plan_artifact_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ActiveImplementationArtifactID; v != nil {
		builder.WriteString("active_implementation_artifact_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ActiveReviewArtifactID; v != nil {
		builder.WriteString("active_review_artifact_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ActiveUIArtifactID; v != nil {
		builder.WriteString("active_ui_artifact_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ActiveBabysitArtifactID; v != nil {
		builder.WriteString("active_babysit_artifact_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CanonicalStatusCommentID; v != nil {
		builder.WriteString("canonical_status_comment_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CanonicalCheckRunID; v != nil {
		builder.WriteString("canonical_check_run_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VideoCaptureStatus; v != nil {
		builder.WriteString("video_capture_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LatestVideoArtifactKey; v != nil {
		builder.WriteString("latest_video_artifact_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LatestVideoCapturedAt; v != nil {
		builder.WriteString("latest_video_captured_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LatestVideoFailureClass; v != nil {
		builder.WriteString("latest_video_failure_class=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LatestVideoFailureMessage; v != nil {
		builder.WriteString("latest_video_failure_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LatestVideoFailedAt; v != nil {
		builder.WriteString("latest_video_failed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.StopReason; v != nil {
		builder.WriteString("stop_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Loops is a parsable slice of Loop.
type Loops []*Loop
