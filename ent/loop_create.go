// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/loopd/ent/gatefinding"
	"github.com/codeready-toolchain/loopd/ent/gaterun"
	"github.com/codeready-toolchain/loopd/ent/inboxsignal"
	"github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/outboxaction"
	"github.com/codeready-toolchain/loopd/ent/phaseartifact"
)

// LoopCreate is the builder for creating a Loop entity.
type LoopCreate struct {
	config
	mutation *LoopMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *LoopCreate) SetUserID(v string) *LoopCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRepoFullName sets the "repo_full_name" field.
func (_c *LoopCreate) SetRepoFullName(v string) *LoopCreate {
	_c.mutation.SetRepoFullName(v)
	return _c
}

// SetPrNumber sets the "pr_number" field.
func (_c *LoopCreate) SetPrNumber(v int) *LoopCreate {
	_c.mutation.SetPrNumber(v)
	return _c
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_c *LoopCreate) SetNillablePrNumber(v *int) *LoopCreate {
	if v != nil {
		_c.SetPrNumber(*v)
	}
	return _c
}

// SetThreadID sets the "thread_id" field.
func (_c *LoopCreate) SetThreadID(v string) *LoopCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetThreadChatID sets the "thread_chat_id" field.
func (_c *LoopCreate) SetThreadChatID(v string) *LoopCreate {
	_c.mutation.SetThreadChatID(v)
	return _c
}

// SetNillableThreadChatID sets the "thread_chat_id" field if the given value is not nil.
func (_c *LoopCreate) SetNillableThreadChatID(v *string) *LoopCreate {
	if v != nil {
		_c.SetThreadChatID(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *LoopCreate) SetState(v loop.State) *LoopCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *LoopCreate) SetNillableState(v *loop.State) *LoopCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetPlanApprovalPolicy sets the "plan_approval_policy" field.
func (_c *LoopCreate) SetPlanApprovalPolicy(v loop.PlanApprovalPolicy) *LoopCreate {
	_c.mutation.SetPlanApprovalPolicy(v)
	return _c
}

// SetNillablePlanApprovalPolicy sets the "plan_approval_policy" field if the given value is not nil.
func (_c *LoopCreate) SetNillablePlanApprovalPolicy(v *loop.PlanApprovalPolicy) *LoopCreate {
	if v != nil {
		_c.SetPlanApprovalPolicy(*v)
	}
	return _c
}

// SetCurrentHeadSha sets the "current_head_sha" field.
func (_c *LoopCreate) SetCurrentHeadSha(v string) *LoopCreate {
	_c.mutation.SetCurrentHeadSha(v)
	return _c
}

// SetNillableCurrentHeadSha sets the "current_head_sha" field if the given value is not nil.
func (_c *LoopCreate) SetNillableCurrentHeadSha(v *string) *LoopCreate {
	if v != nil {
		_c.SetCurrentHeadSha(*v)
	}
	return _c
}

// SetLoopVersion sets the "loop_version" field.
func (_c *LoopCreate) SetLoopVersion(v int) *LoopCreate {
	_c.mutation.SetLoopVersion(v)
	return _c
}

// SetNillableLoopVersion sets the "loop_version" field if the given value is not nil.
func (_c *LoopCreate) SetNillableLoopVersion(v *int) *LoopCreate {
	if v != nil {
		_c.SetLoopVersion(*v)
	}
	return _c
}

// SetTransitionSeq sets the "transition_seq" field.
func (_c *LoopCreate) SetTransitionSeq(v int) *LoopCreate {
	_c.mutation.SetTransitionSeq(v)
	return _c
}

// SetNillableTransitionSeq sets the "transition_seq" field if the given value is not nil.
func (_c *LoopCreate) SetNillableTransitionSeq(v *int) *LoopCreate {
	if v != nil {
		_c.SetTransitionSeq(*v)
	}
	return _c
}

// SetFixAttemptCount sets the "fix_attempt_count" field.
func (_c *LoopCreate) SetFixAttemptCount(v int) *LoopCreate {
	_c.mutation.SetFixAttemptCount(v)
	return _c
}

// SetNillableFixAttemptCount sets the "fix_attempt_count" field if the given value is not nil.
func (_c *LoopCreate) SetNillableFixAttemptCount(v *int) *LoopCreate {
	if v != nil {
		_c.SetFixAttemptCount(*v)
	}
	return _c
}

// SetMaxFixAttempts sets the "max_fix_attempts" field.
func (_c *LoopCreate) SetMaxFixAttempts(v int) *LoopCreate {
	_c.mutation.SetMaxFixAttempts(v)
	return _c
}

// SetNillableMaxFixAttempts sets the "max_fix_attempts" field if the given value is not nil.
func (_c *LoopCreate) SetNillableMaxFixAttempts(v *int) *LoopCreate {
	if v != nil {
		_c.SetMaxFixAttempts(*v)
	}
	return _c
}

// SetIterationCount sets the "iteration_count" field.
func (_c *LoopCreate) SetIterationCount(v int) *LoopCreate {
	_c.mutation.SetIterationCount(v)
	return _c
}

// SetNillableIterationCount sets the "iteration_count" field if the given value is not nil.
func (_c *LoopCreate) SetNillableIterationCount(v *int) *LoopCreate {
	if v != nil {
		_c.SetIterationCount(*v)
	}
	return _c
}

// SetCooldownUntil sets the "cooldown_until" field.
func (_c *LoopCreate) SetCooldownUntil(v time.Time) *LoopCreate {
	_c.mutation.SetCooldownUntil(v)
	return _c
}

// SetNillableCooldownUntil sets the "cooldown_until" field if the given value is not nil.
func (_c *LoopCreate) SetNillableCooldownUntil(v *time.Time) *LoopCreate {
	if v != nil {
		_c.SetCooldownUntil(*v)
	}
	return _c
}

// SetActivePlanArtifactID sets the "active_plan_artifact_id" field.
func (_c *LoopCreate) SetActivePlanArtifactID(v string) *LoopCreate {
	_c.mutation.SetActivePlanArtifactID(v)
	return _c
}

// SetNillableActivePlanArtifactID sets the "active_plan_artifact_id" field if the given value is not nil.
func (_c *LoopCreate) SetNillableActivePlanArtifactID(v *string) *LoopCreate {
	if v != nil {
		_c.SetActivePlanArtifactID(*v)
	}
	return _c
}

// SetActiveImplementationArtifactID sets the "active_implementation_artifact_id" field.
func (_c *LoopCreate) SetActiveImplementationArtifactID(v string) *LoopCreate {
	_c.mutation.SetActiveImplementationArtifactID(v)
	return _c
}

// SetNillableActiveImplementationArtifactID sets the "active_implementation_artifact_id" field if the given value is not nil.
func (_c *LoopCreate) SetNillableActiveImplementationArtifactID(v *string) *LoopCreate {
	if v != nil {
		_c.SetActiveImplementationArtifactID(*v)
	}
	return _c
}

// SetActiveReviewArtifactID sets the "active_review_artifact_id" field.
func (_c *LoopCreate) SetActiveReviewArtifactID(v string) *LoopCreate {
	_c.mutation.SetActiveReviewArtifactID(v)
	return _c
}

// SetNillableActiveReviewArtifactID sets the "active_review_artifact_id" field if the given value is not nil.
func (_c *LoopCreate) SetNillableActiveReviewArtifactID(v *string) *LoopCreate {
	if v != nil {
		_c.SetActiveReviewArtifactID(*v)
	}
	return _c
}

// SetActiveUIArtifactID sets the "active_ui_artifact_id" field.
func (_c *LoopCreate) SetActiveUIArtifactID(v string) *LoopCreate {
	_c.mutation.SetActiveUIArtifactID(v)
	return _c
}

// SetNillableActiveUIArtifactID sets the "active_ui_artifact_id" field if the given value is not nil.
func (_c *LoopCreate) SetNillableActiveUIArtifactID(v *string) *LoopCreate {
	if v != nil {
		_c.SetActiveUIArtifactID(*v)
	}
	return _c
}

// SetActiveBabysitArtifactID sets the "active_babysit_artifact_id" field.
func (_c *LoopCreate) SetActiveBabysitArtifactID(v string) *LoopCreate {
	_c.mutation.SetActiveBabysitArtifactID(v)
	return _c
}

// SetNillableActiveBabysitArtifactID sets the "active_babysit_artifact_id" field if the given value is not nil.
func (_c *LoopCreate) SetNillableActiveBabysitArtifactID(v *string) *LoopCreate {
	if v != nil {
		_c.SetActiveBabysitArtifactID(*v)
	}
	return _c
}

// SetCanonicalStatusCommentID sets the "canonical_status_comment_id" field.
func (_c *LoopCreate) SetCanonicalStatusCommentID(v string) *LoopCreate {
	_c.mutation.SetCanonicalStatusCommentID(v)
	return _c
}

// SetNillableCanonicalStatusCommentID sets the "canonical_status_comment_id" field if the given value is not nil.
func (_c *LoopCreate) SetNillableCanonicalStatusCommentID(v *string) *LoopCreate {
	if v != nil {
		_c.SetCanonicalStatusCommentID(*v)
	}
	return _c
}

// SetCanonicalCheckRunID sets the "canonical_check_run_id" field.
func (_c *LoopCreate) SetCanonicalCheckRunID(v string) *LoopCreate {
	_c.mutation.SetCanonicalCheckRunID(v)
	return _c
}

// SetNillableCanonicalCheckRunID sets the "canonical_check_run_id" field if the given value is not nil.
func (_c *LoopCreate) SetNillableCanonicalCheckRunID(v *string) *LoopCreate {
	if v != nil {
		_c.SetCanonicalCheckRunID(*v)
	}
	return _c
}

// SetVideoCaptureStatus sets the "video_capture_status" field.
func (_c *LoopCreate) SetVideoCaptureStatus(v string) *LoopCreate {
	_c.mutation.SetVideoCaptureStatus(v)
	return _c
}

// SetNillableVideoCaptureStatus sets the "video_capture_status" field if the given value is not nil.
func (_c *LoopCreate) SetNillableVideoCaptureStatus(v *string) *LoopCreate {
	if v != nil {
		_c.SetVideoCaptureStatus(*v)
	}
	return _c
}

// SetLatestVideoArtifactKey sets the "latest_video_artifact_key" field.
func (_c *LoopCreate) SetLatestVideoArtifactKey(v string) *LoopCreate {
	_c.mutation.SetLatestVideoArtifactKey(v)
	return _c
}

// SetNillableLatestVideoArtifactKey sets the "latest_video_artifact_key" field if the given value is not nil.
func (_c *LoopCreate) SetNillableLatestVideoArtifactKey(v *string) *LoopCreate {
	if v != nil {
		_c.SetLatestVideoArtifactKey(*v)
	}
	return _c
}

// SetLatestVideoCapturedAt sets the "latest_video_captured_at" field.
func (_c *LoopCreate) SetLatestVideoCapturedAt(v time.Time) *LoopCreate {
	_c.mutation.SetLatestVideoCapturedAt(v)
	return _c
}

// SetNillableLatestVideoCapturedAt sets the "latest_video_captured_at" field if the given value is not nil.
func (_c *LoopCreate) SetNillableLatestVideoCapturedAt(v *time.Time) *LoopCreate {
	if v != nil {
		_c.SetLatestVideoCapturedAt(*v)
	}
	return _c
}

// SetLatestVideoFailureClass sets the "latest_video_failure_class" field.
func (_c *LoopCreate) SetLatestVideoFailureClass(v string) *LoopCreate {
	_c.mutation.SetLatestVideoFailureClass(v)
	return _c
}

// SetNillableLatestVideoFailureClass sets the "latest_video_failure_class" field if the given value is not nil.
func (_c *LoopCreate) SetNillableLatestVideoFailureClass(v *string) *LoopCreate {
	if v != nil {
		_c.SetLatestVideoFailureClass(*v)
	}
	return _c
}

// SetLatestVideoFailureMessage sets the "latest_video_failure_message" field.
func (_c *LoopCreate) SetLatestVideoFailureMessage(v string) *LoopCreate {
	_c.mutation.SetLatestVideoFailureMessage(v)
	return _c
}

// SetNillableLatestVideoFailureMessage sets the "latest_video_failure_message" field if the given value is not nil.
func (_c *LoopCreate) SetNillableLatestVideoFailureMessage(v *string) *LoopCreate {
	if v != nil {
		_c.SetLatestVideoFailureMessage(*v)
	}
	return _c
}

// SetLatestVideoFailedAt sets the "latest_video_failed_at" field.
func (_c *LoopCreate) SetLatestVideoFailedAt(v time.Time) *LoopCreate {
	_c.mutation.SetLatestVideoFailedAt(v)
	return _c
}

// SetNillableLatestVideoFailedAt sets the "latest_video_failed_at" field if the given value is not nil.
func (_c *LoopCreate) SetNillableLatestVideoFailedAt(v *time.Time) *LoopCreate {
	if v != nil {
		_c.SetLatestVideoFailedAt(*v)
	}
	return _c
}

// SetStopReason sets the "stop_reason" field.
func (_c *LoopCreate) SetStopReason(v string) *LoopCreate {
	_c.mutation.SetStopReason(v)
	return _c
}

// SetNillableStopReason sets the "stop_reason" field if the given value is not nil.
func (_c *LoopCreate) SetNillableStopReason(v *string) *LoopCreate {
	if v != nil {
		_c.SetStopReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LoopCreate) SetCreatedAt(v time.Time) *LoopCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LoopCreate) SetNillableCreatedAt(v *time.Time) *LoopCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LoopCreate) SetUpdatedAt(v time.Time) *LoopCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LoopCreate) SetNillableUpdatedAt(v *time.Time) *LoopCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LoopCreate) SetID(v string) *LoopCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddSignalIDs adds the "signals" edge to the InboxSignal entity by IDs.
func (_c *LoopCreate) AddSignalIDs(ids ...string) *LoopCreate {
	_c.mutation.AddSignalIDs(ids...)
	return _c
}

// AddSignals adds the "signals" edges to the InboxSignal entity.
func (_c *LoopCreate) AddSignals(v ...*InboxSignal) *LoopCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSignalIDs(ids...)
}

// AddOutboxActionIDs adds the "outbox_actions" edge to the OutboxAction entity by IDs.
func (_c *LoopCreate) AddOutboxActionIDs(ids ...string) *LoopCreate {
	_c.mutation.AddOutboxActionIDs(ids...)
	return _c
}

// AddOutboxActions adds the "outbox_actions" edges to the OutboxAction entity.
func (_c *LoopCreate) AddOutboxActions(v ...*OutboxAction) *LoopCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOutboxActionIDs(ids...)
}

// AddGateRunIDs adds the "gate_runs" edge to the GateRun entity by IDs.
func (_c *LoopCreate) AddGateRunIDs(ids ...string) *LoopCreate {
	_c.mutation.AddGateRunIDs(ids...)
	return _c
}

// AddGateRuns adds the "gate_runs" edges to the GateRun entity.
func (_c *LoopCreate) AddGateRuns(v ...*GateRun) *LoopCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGateRunIDs(ids...)
}

// AddGateFindingIDs adds the "gate_findings" edge to the GateFinding entity by IDs.
func (_c *LoopCreate) AddGateFindingIDs(ids ...string) *LoopCreate {
	_c.mutation.AddGateFindingIDs(ids...)
	return _c
}

// AddGateFindings adds the "gate_findings" edges to the GateFinding entity.
func (_c *LoopCreate) AddGateFindings(v ...*GateFinding) *LoopCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGateFindingIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the PhaseArtifact entity by IDs.
func (_c *LoopCreate) AddArtifactIDs(ids ...string) *LoopCreate {
	_c.mutation.AddArtifactIDs(ids...)
	return _c
}

// AddArtifacts adds the "artifacts" edges to the PhaseArtifact entity.
func (_c *LoopCreate) AddArtifacts(v ...*PhaseArtifact) *LoopCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddArtifactIDs(ids...)
}

// Mutation returns the LoopMutation object of the builder.
func (_c *LoopCreate) Mutation() *LoopMutation {
	return _c.mutation
}

// Save creates the Loop in the database.
func (_c *LoopCreate) Save(ctx context.Context) (*Loop, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LoopCreate) SaveX(ctx context.Context) *Loop {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LoopCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LoopCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LoopCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := loop.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.PlanApprovalPolicy(); !ok {
		v := loop.DefaultPlanApprovalPolicy
		_c.mutation.SetPlanApprovalPolicy(v)
	}
	if _, ok := _c.mutation.LoopVersion(); !ok {
		v := loop.DefaultLoopVersion
		_c.mutation.SetLoopVersion(v)
	}
	if _, ok := _c.mutation.TransitionSeq(); !ok {
		v := loop.DefaultTransitionSeq
		_c.mutation.SetTransitionSeq(v)
	}
	if _, ok := _c.mutation.FixAttemptCount(); !ok {
		v := loop.DefaultFixAttemptCount
		_c.mutation.SetFixAttemptCount(v)
	}
	if _, ok := _c.mutation.MaxFixAttempts(); !ok {
		v := loop.DefaultMaxFixAttempts
		_c.mutation.SetMaxFixAttempts(v)
	}
	if _, ok := _c.mutation.IterationCount(); !ok {
		v := loop.DefaultIterationCount
		_c.mutation.SetIterationCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := loop.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := loop.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LoopCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Loop.user_id"`)}
	}
	if _, ok := _c.mutation.RepoFullName(); !ok {
		return &ValidationError{Name: "repo_full_name", err: errors.New(`ent: missing required field "Loop.repo_full_name"`)}
	}
	if _, ok := _c.mutation.ThreadID(); !ok {
		return &ValidationError{Name: "thread_id", err: errors.New(`ent: missing required field "Loop.thread_id"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Loop.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := loop.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Loop.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PlanApprovalPolicy(); !ok {
		return &ValidationError{Name: "plan_approval_policy", err: errors.New(`ent: missing required field "Loop.plan_approval_policy"`)}
	}
	if v, ok := _c.mutation.PlanApprovalPolicy(); ok {
		if err := loop.PlanApprovalPolicyValidator(v); err != nil {
			return &ValidationError{Name: "plan_approval_policy", err: fmt.Errorf(`ent: validator failed for field "Loop.plan_approval_policy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LoopVersion(); !ok {
		return &ValidationError{Name: "loop_version", err: errors.New(`ent: missing required field "Loop.loop_version"`)}
	}
	if _, ok := _c.mutation.TransitionSeq(); !ok {
		return &ValidationError{Name: "transition_seq", err: errors.New(`ent: missing required field "Loop.transition_seq"`)}
	}
	if _, ok := _c.mutation.FixAttemptCount(); !ok {
		return &ValidationError{Name: "fix_attempt_count", err: errors.New(`ent: missing required field "Loop.fix_attempt_count"`)}
	}
	if _, ok := _c.mutation.MaxFixAttempts(); !ok {
		return &ValidationError{Name: "max_fix_attempts", err: errors.New(`ent: missing required field "Loop.max_fix_attempts"`)}
	}
	if _, ok := _c.mutation.IterationCount(); !ok {
		return &ValidationError{Name: "iteration_count", err: errors.New(`ent: missing required field "Loop.iteration_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Loop.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Loop.updated_at"`)}
	}
	return nil
}

func (_c *LoopCreate) sqlSave(ctx context.Context) (*Loop, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Loop.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LoopCreate) createSpec() (*Loop, *sqlgraph.CreateSpec) {
	var (
		_node = &Loop{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(loop.Table, sqlgraph.NewFieldSpec(loop.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(loop.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.RepoFullName(); ok {
		_spec.SetField(loop.FieldRepoFullName, field.TypeString, value)
		_node.RepoFullName = value
	}
	if value, ok := _c.mutation.PrNumber(); ok {
		_spec.SetField(loop.FieldPrNumber, field.TypeInt, value)
		_node.PrNumber = &value
	}
	if value, ok := _c.mutation.ThreadID(); ok {
		_spec.SetField(loop.FieldThreadID, field.TypeString, value)
		_node.ThreadID = value
	}
	if value, ok := _c.mutation.ThreadChatID(); ok {
		_spec.SetField(loop.FieldThreadChatID, field.TypeString, value)
		_node.ThreadChatID = &value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(loop.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.PlanApprovalPolicy(); ok {
		_spec.SetField(loop.FieldPlanApprovalPolicy, field.TypeEnum, value)
		_node.PlanApprovalPolicy = value
	}
	if value, ok := _c.mutation.CurrentHeadSha(); ok {
		_spec.SetField(loop.FieldCurrentHeadSha, field.TypeString, value)
		_node.CurrentHeadSha = &value
	}
	if value, ok := _c.mutation.LoopVersion(); ok {
		_spec.SetField(loop.FieldLoopVersion, field.TypeInt, value)
		_node.LoopVersion = value
	}
	if value, ok := _c.mutation.TransitionSeq(); ok {
		_spec.SetField(loop.FieldTransitionSeq, field.TypeInt, value)
		_node.TransitionSeq = value
	}
	if value, ok := _c.mutation.FixAttemptCount(); ok {
		_spec.SetField(loop.FieldFixAttemptCount, field.TypeInt, value)
		_node.FixAttemptCount = value
	}
	if value, ok := _c.mutation.MaxFixAttempts(); ok {
		_spec.SetField(loop.FieldMaxFixAttempts, field.TypeInt, value)
		_node.MaxFixAttempts = value
	}
	if value, ok := _c.mutation.IterationCount(); ok {
		_spec.SetField(loop.FieldIterationCount, field.TypeInt, value)
		_node.IterationCount = value
	}
	if value, ok := _c.mutation.CooldownUntil(); ok {
		_spec.SetField(loop.FieldCooldownUntil, field.TypeTime, value)
		_node.CooldownUntil = &value
	}
	if value, ok := _c.mutation.ActivePlanArtifactID(); ok {
		_spec.SetField(loop.FieldActivePlanArtifactID, field.TypeString, value)
		_node.ActivePlanArtifactID = &value
	}
	if value, ok := _c.mutation.ActiveImplementationArtifactID(); ok {
		_spec.SetField(loop.FieldActiveImplementationArtifactID, field.TypeString, value)
		_node.ActiveImplementationArtifactID = &value
	}
	if value, ok := _c.mutation.ActiveReviewArtifactID(); ok {
		_spec.SetField(loop.FieldActiveReviewArtifactID, field.TypeString, value)
		_node.ActiveReviewArtifactID = &value
	}
	if value, ok := _c.mutation.ActiveUIArtifactID(); ok {
		_spec.SetField(loop.FieldActiveUIArtifactID, field.TypeString, value)
		_node.ActiveUIArtifactID = &value
	}
	if value, ok := _c.mutation.ActiveBabysitArtifactID(); ok {
		_spec.SetField(loop.FieldActiveBabysitArtifactID, field.TypeString, value)
		_node.ActiveBabysitArtifactID = &value
	}
	if value, ok := _c.mutation.CanonicalStatusCommentID(); ok {
		_spec.SetField(loop.FieldCanonicalStatusCommentID, field.TypeString, value)
		_node.CanonicalStatusCommentID = &value
	}
	if value, ok := _c.mutation.CanonicalCheckRunID(); ok {
		_spec.SetField(loop.FieldCanonicalCheckRunID, field.TypeString, value)
		_node.CanonicalCheckRunID = &value
	}
	if value, ok := _c.mutation.VideoCaptureStatus(); ok {
		_spec.SetField(loop.FieldVideoCaptureStatus, field.TypeString, value)
		_node.VideoCaptureStatus = &value
	}
	if value, ok := _c.mutation.LatestVideoArtifactKey(); ok {
		_spec.SetField(loop.FieldLatestVideoArtifactKey, field.TypeString, value)
		_node.LatestVideoArtifactKey = &value
	}
	if value, ok := _c.mutation.LatestVideoCapturedAt(); ok {
		_spec.SetField(loop.FieldLatestVideoCapturedAt, field.TypeTime, value)
		_node.LatestVideoCapturedAt = &value
	}
	if value, ok := _c.mutation.LatestVideoFailureClass(); ok {
		_spec.SetField(loop.FieldLatestVideoFailureClass, field.TypeString, value)
		_node.LatestVideoFailureClass = &value
	}
	if value, ok := _c.mutation.LatestVideoFailureMessage(); ok {
		_spec.SetField(loop.FieldLatestVideoFailureMessage, field.TypeString, value)
		_node.LatestVideoFailureMessage = &value
	}
	if value, ok := _c.mutation.LatestVideoFailedAt(); ok {
		_spec.SetField(loop.FieldLatestVideoFailedAt, field.TypeTime, value)
		_node.LatestVideoFailedAt = &value
	}
	if value, ok := _c.mutation.StopReason(); ok {
		_spec.SetField(loop.FieldStopReason, field.TypeString, value)
		_node.StopReason = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(loop.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(loop.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SignalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   loop.SignalsTable,
			Columns: []string{loop.SignalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inboxsignal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OutboxActionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   loop.OutboxActionsTable,
			Columns: []string{loop.OutboxActionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outboxaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GateRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   loop.GateRunsTable,
			Columns: []string{loop.GateRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gaterun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GateFindingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   loop.GateFindingsTable,
			Columns: []string{loop.GateFindingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gatefinding.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ArtifactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   loop.ArtifactsTable,
			Columns: []string{loop.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(phaseartifact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Loop.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LoopUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *LoopCreate) OnConflict(opts ...sql.ConflictOption) *LoopUpsertOne {
	_c.conflict = opts
	return &LoopUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Loop.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LoopCreate) OnConflictColumns(columns ...string) *LoopUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LoopUpsertOne{
		create: _c,
	}
}

type (
	// LoopUpsertOne is the builder for "upsert"-ing
	//  one Loop node.
	LoopUpsertOne struct {
		create *LoopCreate
	}

	// LoopUpsert is the "OnConflict" setter.
	LoopUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *LoopUpsert) SetUserID(v string) *LoopUpsert {
	u.Set(loop.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *LoopUpsert) UpdateUserID() *LoopUpsert {
	u.SetExcluded(loop.FieldUserID)
	return u
}

// SetRepoFullName sets the "repo_full_name" field.
func (u *LoopUpsert) SetRepoFullName(v string) *LoopUpsert {
	u.Set(loop.FieldRepoFullName, v)
	return u
}

// UpdateRepoFullName sets the "repo_full_name" field to the value that was provided on create.
func (u *LoopUpsert) UpdateRepoFullName() *LoopUpsert {
	u.SetExcluded(loop.FieldRepoFullName)
	return u
}

// SetPrNumber sets the "pr_number" field.
func (u *LoopUpsert) SetPrNumber(v int) *LoopUpsert {
	u.Set(loop.FieldPrNumber, v)
	return u
}

// UpdatePrNumber sets the "pr_number" field to the value that was provided on create.
func (u *LoopUpsert) UpdatePrNumber() *LoopUpsert {
	u.SetExcluded(loop.FieldPrNumber)
	return u
}

// AddPrNumber adds v to the "pr_number" field.
func (u *LoopUpsert) AddPrNumber(v int) *LoopUpsert {
	u.Add(loop.FieldPrNumber, v)
	return u
}

// ClearPrNumber clears the value of the "pr_number" field.
func (u *LoopUpsert) ClearPrNumber() *LoopUpsert {
	u.SetNull(loop.FieldPrNumber)
	return u
}

// SetThreadID sets the "thread_id" field.
func (u *LoopUpsert) SetThreadID(v string) *LoopUpsert {
	u.Set(loop.FieldThreadID, v)
	return u
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *LoopUpsert) UpdateThreadID() *LoopUpsert {
	u.SetExcluded(loop.FieldThreadID)
	return u
}

// SetThreadChatID sets the "thread_chat_id" field.
func (u *LoopUpsert) SetThreadChatID(v string) *LoopUpsert {
	u.Set(loop.FieldThreadChatID, v)
	return u
}

// UpdateThreadChatID sets the "thread_chat_id" field to the value that was provided on create.
func (u *LoopUpsert) UpdateThreadChatID() *LoopUpsert {
	u.SetExcluded(loop.FieldThreadChatID)
	return u
}

// ClearThreadChatID clears the value of the "thread_chat_id" field.
func (u *LoopUpsert) ClearThreadChatID() *LoopUpsert {
	u.SetNull(loop.FieldThreadChatID)
	return u
}

// SetState sets the "state" field.
func (u *LoopUpsert) SetState(v loop.State) *LoopUpsert {
	u.Set(loop.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *LoopUpsert) UpdateState() *LoopUpsert {
	u.SetExcluded(loop.FieldState)
	return u
}

// SetPlanApprovalPolicy sets the "plan_approval_policy" field.
func (u *LoopUpsert) SetPlanApprovalPolicy(v loop.PlanApprovalPolicy) *LoopUpsert {
	u.Set(loop.FieldPlanApprovalPolicy, v)
	return u
}

// UpdatePlanApprovalPolicy sets the "plan_approval_policy" field to the value that was provided on create.
func (u *LoopUpsert) UpdatePlanApprovalPolicy() *LoopUpsert {
	u.SetExcluded(loop.FieldPlanApprovalPolicy)
	return u
}

// SetCurrentHeadSha sets the "current_head_sha" field.
func (u *LoopUpsert) SetCurrentHeadSha(v string) *LoopUpsert {
	u.Set(loop.FieldCurrentHeadSha, v)
	return u
}

// UpdateCurrentHeadSha sets the "current_head_sha" field to the value that was provided on create.
func (u *LoopUpsert) UpdateCurrentHeadSha() *LoopUpsert {
	u.SetExcluded(loop.FieldCurrentHeadSha)
	return u
}

// ClearCurrentHeadSha clears the value of the "current_head_sha" field.
func (u *LoopUpsert) ClearCurrentHeadSha() *LoopUpsert {
	u.SetNull(loop.FieldCurrentHeadSha)
	return u
}

// SetLoopVersion sets the "loop_version" field.
func (u *LoopUpsert) SetLoopVersion(v int) *LoopUpsert {
	u.Set(loop.FieldLoopVersion, v)
	return u
}

// UpdateLoopVersion sets the "loop_version" field to the value that was provided on create.
func (u *LoopUpsert) UpdateLoopVersion() *LoopUpsert {
	u.SetExcluded(loop.FieldLoopVersion)
	return u
}

// AddLoopVersion adds v to the "loop_version" field.
func (u *LoopUpsert) AddLoopVersion(v int) *LoopUpsert {
	u.Add(loop.FieldLoopVersion, v)
	return u
}

// SetTransitionSeq sets the "transition_seq" field.
func (u *LoopUpsert) SetTransitionSeq(v int) *LoopUpsert {
	u.Set(loop.FieldTransitionSeq, v)
	return u
}

// UpdateTransitionSeq sets the "transition_seq" field to the value that was provided on create.
func (u *LoopUpsert) UpdateTransitionSeq() *LoopUpsert {
	u.SetExcluded(loop.FieldTransitionSeq)
	return u
}

// AddTransitionSeq adds v to the "transition_seq" field.
func (u *LoopUpsert) AddTransitionSeq(v int) *LoopUpsert {
	u.Add(loop.FieldTransitionSeq, v)
	return u
}

// SetFixAttemptCount sets the "fix_attempt_count" field.
func (u *LoopUpsert) SetFixAttemptCount(v int) *LoopUpsert {
	u.Set(loop.FieldFixAttemptCount, v)
	return u
}

// UpdateFixAttemptCount sets the "fix_attempt_count" field to the value that was provided on create.
func (u *LoopUpsert) UpdateFixAttemptCount() *LoopUpsert {
	u.SetExcluded(loop.FieldFixAttemptCount)
	return u
}

// AddFixAttemptCount adds v to the "fix_attempt_count" field.
func (u *LoopUpsert) AddFixAttemptCount(v int) *LoopUpsert {
	u.Add(loop.FieldFixAttemptCount, v)
	return u
}

// SetMaxFixAttempts sets the "max_fix_attempts" field.
func (u *LoopUpsert) SetMaxFixAttempts(v int) *LoopUpsert {
	u.Set(loop.FieldMaxFixAttempts, v)
	return u
}

// UpdateMaxFixAttempts sets the "max_fix_attempts" field to the value that was provided on create.
func (u *LoopUpsert) UpdateMaxFixAttempts() *LoopUpsert {
	u.SetExcluded(loop.FieldMaxFixAttempts)
	return u
}

// AddMaxFixAttempts adds v to the "max_fix_attempts" field.
func (u *LoopUpsert) AddMaxFixAttempts(v int) *LoopUpsert {
	u.Add(loop.FieldMaxFixAttempts, v)
	return u
}

// SetIterationCount sets the "iteration_count" field.
func (u *LoopUpsert) SetIterationCount(v int) *LoopUpsert {
	u.Set(loop.FieldIterationCount, v)
	return u
}

// UpdateIterationCount sets the "iteration_count" field to the value that was provided on create.
func (u *LoopUpsert) UpdateIterationCount() *LoopUpsert {
	u.SetExcluded(loop.FieldIterationCount)
	return u
}

// AddIterationCount adds v to the "iteration_count" field.
func (u *LoopUpsert) AddIterationCount(v int) *LoopUpsert {
	u.Add(loop.FieldIterationCount, v)
	return u
}

// SetCooldownUntil sets the "cooldown_until" field.
func (u *LoopUpsert) SetCooldownUntil(v time.Time) *LoopUpsert {
	u.Set(loop.FieldCooldownUntil, v)
	return u
}

// UpdateCooldownUntil sets the "cooldown_until" field to the value that was provided on create.
func (u *LoopUpsert) UpdateCooldownUntil() *LoopUpsert {
	u.SetExcluded(loop.FieldCooldownUntil)
	return u
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (u *LoopUpsert) ClearCooldownUntil() *LoopUpsert {
	u.SetNull(loop.FieldCooldownUntil)
	return u
}

// SetActivePlanArtifactID sets the "active_plan_artifact_id" field.
func (u *LoopUpsert) SetActivePlanArtifactID(v string) *LoopUpsert {
	u.Set(loop.FieldActivePlanArtifactID, v)
	return u
}

// UpdateActivePlanArtifactID sets the "active_plan_artifact_id" field to the value that was provided on create.
func (u *LoopUpsert) UpdateActivePlanArtifactID() *LoopUpsert {
	u.SetExcluded(loop.FieldActivePlanArtifactID)
	return u
}

// ClearActivePlanArtifactID clears the value of the "active_plan_artifact_id" field.
func (u *LoopUpsert) ClearActivePlanArtifactID() *LoopUpsert {
	u.SetNull(loop.FieldActivePlanArtifactID)
	return u
}

// SetActiveImplementationArtifactID sets the "active_implementation_artifact_id" field.
func (u *LoopUpsert) SetActiveImplementationArtifactID(v string) *LoopUpsert {
	u.Set(loop.FieldActiveImplementationArtifactID, v)
	return u
}

// UpdateActiveImplementationArtifactID sets the "active_implementation_artifact_id" field to the value that was provided on create.
func (u *LoopUpsert) UpdateActiveImplementationArtifactID() *LoopUpsert {
	u.SetExcluded(loop.FieldActiveImplementationArtifactID)
	return u
}

// ClearActiveImplementationArtifactID clears the value of the "active_implementation_artifact_id" field.
func (u *LoopUpsert) ClearActiveImplementationArtifactID() *LoopUpsert {
	u.SetNull(loop.FieldActiveImplementationArtifactID)
	return u
}

// SetActiveReviewArtifactID sets the "active_review_artifact_id" field.
func (u *LoopUpsert) SetActiveReviewArtifactID(v string) *LoopUpsert {
	u.Set(loop.FieldActiveReviewArtifactID, v)
	return u
}

// UpdateActiveReviewArtifactID sets the "active_review_artifact_id" field to the value that was provided on create.
func (u *LoopUpsert) UpdateActiveReviewArtifactID() *LoopUpsert {
	u.SetExcluded(loop.FieldActiveReviewArtifactID)
	return u
}

// ClearActiveReviewArtifactID clears the value of the "active_review_artifact_id" field.
func (u *LoopUpsert) ClearActiveReviewArtifactID() *LoopUpsert {
	u.SetNull(loop.FieldActiveReviewArtifactID)
	return u
}

// SetActiveUIArtifactID sets the "active_ui_artifact_id" field.
func (u *LoopUpsert) SetActiveUIArtifactID(v string) *LoopUpsert {
	u.Set(loop.FieldActiveUIArtifactID, v)
	return u
}

// UpdateActiveUIArtifactID sets the "active_ui_artifact_id" field to the value that was provided on create.
func (u *LoopUpsert) UpdateActiveUIArtifactID() *LoopUpsert {
	u.SetExcluded(loop.FieldActiveUIArtifactID)
	return u
}

// ClearActiveUIArtifactID clears the value of the "active_ui_artifact_id" field.
func (u *LoopUpsert) ClearActiveUIArtifactID() *LoopUpsert {
	u.SetNull(loop.FieldActiveUIArtifactID)
	return u
}

// SetActiveBabysitArtifactID sets the "active_babysit_artifact_id" field.
func (u *LoopUpsert) SetActiveBabysitArtifactID(v string) *LoopUpsert {
	u.Set(loop.FieldActiveBabysitArtifactID, v)
	return u
}

// UpdateActiveBabysitArtifactID sets the "active_babysit_artifact_id" field to the value that was provided on create.
func (u *LoopUpsert) UpdateActiveBabysitArtifactID() *LoopUpsert {
	u.SetExcluded(loop.FieldActiveBabysitArtifactID)
	return u
}

// ClearActiveBabysitArtifactID clears the value of the "active_babysit_artifact_id" field.
func (u *LoopUpsert) ClearActiveBabysitArtifactID() *LoopUpsert {
	u.SetNull(loop.FieldActiveBabysitArtifactID)
	return u
}

// SetCanonicalStatusCommentID sets the "canonical_status_comment_id" field.
func (u *LoopUpsert) SetCanonicalStatusCommentID(v string) *LoopUpsert {
	u.Set(loop.FieldCanonicalStatusCommentID, v)
	return u
}

// UpdateCanonicalStatusCommentID sets the "canonical_status_comment_id" field to the value that was provided on create.
func (u *LoopUpsert) UpdateCanonicalStatusCommentID() *LoopUpsert {
	u.SetExcluded(loop.FieldCanonicalStatusCommentID)
	return u
}

// ClearCanonicalStatusCommentID clears the value of the "canonical_status_comment_id" field.
func (u *LoopUpsert) ClearCanonicalStatusCommentID() *LoopUpsert {
	u.SetNull(loop.FieldCanonicalStatusCommentID)
	return u
}

// SetCanonicalCheckRunID sets the "canonical_check_run_id" field.
func (u *LoopUpsert) SetCanonicalCheckRunID(v string) *LoopUpsert {
	u.Set(loop.FieldCanonicalCheckRunID, v)
	return u
}

// UpdateCanonicalCheckRunID sets the "canonical_check_run_id" field to the value that was provided on create.
func (u *LoopUpsert) UpdateCanonicalCheckRunID() *LoopUpsert {
	u.SetExcluded(loop.FieldCanonicalCheckRunID)
	return u
}

// ClearCanonicalCheckRunID clears the value of the "canonical_check_run_id" field.
func (u *LoopUpsert) ClearCanonicalCheckRunID() *LoopUpsert {
	u.SetNull(loop.FieldCanonicalCheckRunID)
	return u
}

// SetVideoCaptureStatus sets the "video_capture_status" field.
func (u *LoopUpsert) SetVideoCaptureStatus(v string) *LoopUpsert {
	u.Set(loop.FieldVideoCaptureStatus, v)
	return u
}

// UpdateVideoCaptureStatus sets the "video_capture_status" field to the value that was provided on create.
func (u *LoopUpsert) UpdateVideoCaptureStatus() *LoopUpsert {
	u.SetExcluded(loop.FieldVideoCaptureStatus)
	return u
}

// ClearVideoCaptureStatus clears the value of the "video_capture_status" field.
func (u *LoopUpsert) ClearVideoCaptureStatus() *LoopUpsert {
	u.SetNull(loop.FieldVideoCaptureStatus)
	return u
}

// SetLatestVideoArtifactKey sets the "latest_video_artifact_key" field.
func (u *LoopUpsert) SetLatestVideoArtifactKey(v string) *LoopUpsert {
	u.Set(loop.FieldLatestVideoArtifactKey, v)
	return u
}

// UpdateLatestVideoArtifactKey sets the "latest_video_artifact_key" field to the value that was provided on create.
func (u *LoopUpsert) UpdateLatestVideoArtifactKey() *LoopUpsert {
	u.SetExcluded(loop.FieldLatestVideoArtifactKey)
	return u
}

// ClearLatestVideoArtifactKey clears the value of the "latest_video_artifact_key" field.
func (u *LoopUpsert) ClearLatestVideoArtifactKey() *LoopUpsert {
	u.SetNull(loop.FieldLatestVideoArtifactKey)
	return u
}

// SetLatestVideoCapturedAt sets the "latest_video_captured_at" field.
func (u *LoopUpsert) SetLatestVideoCapturedAt(v time.Time) *LoopUpsert {
	u.Set(loop.FieldLatestVideoCapturedAt, v)
	return u
}

// UpdateLatestVideoCapturedAt sets the "latest_video_captured_at" field to the value that was provided on create.
func (u *LoopUpsert) UpdateLatestVideoCapturedAt() *LoopUpsert {
	u.SetExcluded(loop.FieldLatestVideoCapturedAt)
	return u
}

// ClearLatestVideoCapturedAt clears the value of the "latest_video_captured_at" field.
func (u *LoopUpsert) ClearLatestVideoCapturedAt() *LoopUpsert {
	u.SetNull(loop.FieldLatestVideoCapturedAt)
	return u
}

// SetLatestVideoFailureClass sets the "latest_video_failure_class" field.
func (u *LoopUpsert) SetLatestVideoFailureClass(v string) *LoopUpsert {
	u.Set(loop.FieldLatestVideoFailureClass, v)
	return u
}

// UpdateLatestVideoFailureClass sets the "latest_video_failure_class" field to the value that was provided on create.
func (u *LoopUpsert) UpdateLatestVideoFailureClass() *LoopUpsert {
	u.SetExcluded(loop.FieldLatestVideoFailureClass)
	return u
}

// ClearLatestVideoFailureClass clears the value of the "latest_video_failure_class" field.
func (u *LoopUpsert) ClearLatestVideoFailureClass() *LoopUpsert {
	u.SetNull(loop.FieldLatestVideoFailureClass)
	return u
}

// SetLatestVideoFailureMessage sets the "latest_video_failure_message" field.
func (u *LoopUpsert) SetLatestVideoFailureMessage(v string) *LoopUpsert {
	u.Set(loop.FieldLatestVideoFailureMessage, v)
	return u
}

// UpdateLatestVideoFailureMessage sets the "latest_video_failure_message" field to the value that was provided on create.
func (u *LoopUpsert) UpdateLatestVideoFailureMessage() *LoopUpsert {
	u.SetExcluded(loop.FieldLatestVideoFailureMessage)
	return u
}

// ClearLatestVideoFailureMessage clears the value of the "latest_video_failure_message" field.
func (u *LoopUpsert) ClearLatestVideoFailureMessage() *LoopUpsert {
	u.SetNull(loop.FieldLatestVideoFailureMessage)
	return u
}

// SetLatestVideoFailedAt sets the "latest_video_failed_at" field.
func (u *LoopUpsert) SetLatestVideoFailedAt(v time.Time) *LoopUpsert {
	u.Set(loop.FieldLatestVideoFailedAt, v)
	return u
}

// UpdateLatestVideoFailedAt sets the "latest_video_failed_at" field to the value that was provided on create.
func (u *LoopUpsert) UpdateLatestVideoFailedAt() *LoopUpsert {
	u.SetExcluded(loop.FieldLatestVideoFailedAt)
	return u
}

// ClearLatestVideoFailedAt clears the value of the "latest_video_failed_at" field.
func (u *LoopUpsert) ClearLatestVideoFailedAt() *LoopUpsert {
	u.SetNull(loop.FieldLatestVideoFailedAt)
	return u
}

// SetStopReason sets the "stop_reason" field.
func (u *LoopUpsert) SetStopReason(v string) *LoopUpsert {
	u.Set(loop.FieldStopReason, v)
	return u
}

// UpdateStopReason sets the "stop_reason" field to the value that was provided on create.
func (u *LoopUpsert) UpdateStopReason() *LoopUpsert {
	u.SetExcluded(loop.FieldStopReason)
	return u
}

// ClearStopReason clears the value of the "stop_reason" field.
func (u *LoopUpsert) ClearStopReason() *LoopUpsert {
	u.SetNull(loop.FieldStopReason)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LoopUpsert) SetUpdatedAt(v time.Time) *LoopUpsert {
	u.Set(loop.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LoopUpsert) UpdateUpdatedAt() *LoopUpsert {
	u.SetExcluded(loop.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Loop.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(loop.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LoopUpsertOne) UpdateNewValues() *LoopUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(loop.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(loop.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Loop.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LoopUpsertOne) Ignore() *LoopUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LoopUpsertOne) DoNothing() *LoopUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LoopCreate.OnConflict
// documentation for more info.
func (u *LoopUpsertOne) Update(set func(*LoopUpsert)) *LoopUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LoopUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *LoopUpsertOne) SetUserID(v string) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateUserID() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateUserID()
	})
}

// SetRepoFullName sets the "repo_full_name" field.
func (u *LoopUpsertOne) SetRepoFullName(v string) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetRepoFullName(v)
	})
}

// UpdateRepoFullName sets the "repo_full_name" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateRepoFullName() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateRepoFullName()
	})
}

// SetPrNumber sets the "pr_number" field.
func (u *LoopUpsertOne) SetPrNumber(v int) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetPrNumber(v)
	})
}

// AddPrNumber adds v to the "pr_number" field.
func (u *LoopUpsertOne) AddPrNumber(v int) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.AddPrNumber(v)
	})
}

// UpdatePrNumber sets the "pr_number" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdatePrNumber() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdatePrNumber()
	})
}

// ClearPrNumber clears the value of the "pr_number" field.
func (u *LoopUpsertOne) ClearPrNumber() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.ClearPrNumber()
	})
}

// SetThreadID sets the "thread_id" field.
func (u *LoopUpsertOne) SetThreadID(v string) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetThreadID(v)
	})
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateThreadID() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateThreadID()
	})
}

// SetThreadChatID sets the "thread_chat_id" field.
func (u *LoopUpsertOne) SetThreadChatID(v string) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetThreadChatID(v)
	})
}

// UpdateThreadChatID sets the "thread_chat_id" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateThreadChatID() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateThreadChatID()
	})
}

// ClearThreadChatID clears the value of the "thread_chat_id" field.
func (u *LoopUpsertOne) ClearThreadChatID() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.ClearThreadChatID()
	})
}

// SetState sets the "state" field.
func (u *LoopUpsertOne) SetState(v loop.State) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateState() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateState()
	})
}

// SetPlanApprovalPolicy sets the "plan_approval_policy" field.
func (u *LoopUpsertOne) SetPlanApprovalPolicy(v loop.PlanApprovalPolicy) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetPlanApprovalPolicy(v)
	})
}

// UpdatePlanApprovalPolicy sets the "plan_approval_policy" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdatePlanApprovalPolicy() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdatePlanApprovalPolicy()
	})
}

// SetCurrentHeadSha sets the "current_head_sha" field.
func (u *LoopUpsertOne) SetCurrentHeadSha(v string) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetCurrentHeadSha(v)
	})
}

// UpdateCurrentHeadSha sets the "current_head_sha" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateCurrentHeadSha() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateCurrentHeadSha()
	})
}

// ClearCurrentHeadSha clears the value of the "current_head_sha" field.
func (u *LoopUpsertOne) ClearCurrentHeadSha() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.ClearCurrentHeadSha()
	})
}

// SetLoopVersion sets the "loop_version" field.
func (u *LoopUpsertOne) SetLoopVersion(v int) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetLoopVersion(v)
	})
}

// AddLoopVersion adds v to the "loop_version" field.
func (u *LoopUpsertOne) AddLoopVersion(v int) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.AddLoopVersion(v)
	})
}

// UpdateLoopVersion sets the "loop_version" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateLoopVersion() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateLoopVersion()
	})
}

// SetTransitionSeq sets the "transition_seq" field.
func (u *LoopUpsertOne) SetTransitionSeq(v int) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetTransitionSeq(v)
	})
}

// AddTransitionSeq adds v to the "transition_seq" field.
func (u *LoopUpsertOne) AddTransitionSeq(v int) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.AddTransitionSeq(v)
	})
}

// UpdateTransitionSeq sets the "transition_seq" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateTransitionSeq() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateTransitionSeq()
	})
}

// SetFixAttemptCount sets the "fix_attempt_count" field.
func (u *LoopUpsertOne) SetFixAttemptCount(v int) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetFixAttemptCount(v)
	})
}

// AddFixAttemptCount adds v to the "fix_attempt_count" field.
func (u *LoopUpsertOne) AddFixAttemptCount(v int) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.AddFixAttemptCount(v)
	})
}

// UpdateFixAttemptCount sets the "fix_attempt_count" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateFixAttemptCount() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateFixAttemptCount()
	})
}

// SetMaxFixAttempts sets the "max_fix_attempts" field.
func (u *LoopUpsertOne) SetMaxFixAttempts(v int) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetMaxFixAttempts(v)
	})
}

// AddMaxFixAttempts adds v to the "max_fix_attempts" field.
func (u *LoopUpsertOne) AddMaxFixAttempts(v int) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.AddMaxFixAttempts(v)
	})
}

// UpdateMaxFixAttempts sets the "max_fix_attempts" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateMaxFixAttempts() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateMaxFixAttempts()
	})
}

// SetIterationCount sets the "iteration_count" field.
func (u *LoopUpsertOne) SetIterationCount(v int) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetIterationCount(v)
	})
}

// AddIterationCount adds v to the "iteration_count" field.
func (u *LoopUpsertOne) AddIterationCount(v int) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.AddIterationCount(v)
	})
}

// UpdateIterationCount sets the "iteration_count" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateIterationCount() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateIterationCount()
	})
}

// SetCooldownUntil sets the "cooldown_until" field.
func (u *LoopUpsertOne) SetCooldownUntil(v time.Time) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetCooldownUntil(v)
	})
}

// UpdateCooldownUntil sets the "cooldown_until" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateCooldownUntil() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateCooldownUntil()
	})
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (u *LoopUpsertOne) ClearCooldownUntil() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.ClearCooldownUntil()
	})
}

// SetActivePlanArtifactID sets the "active_plan_artifact_id" field.
func (u *LoopUpsertOne) SetActivePlanArtifactID(v string) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetActivePlanArtifactID(v)
	})
}

// UpdateActivePlanArtifactID sets the "active_plan_artifact_id" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateActivePlanArtifactID() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateActivePlanArtifactID()
	})
}

// ClearActivePlanArtifactID clears the value of the "active_plan_artifact_id" field.
func (u *LoopUpsertOne) ClearActivePlanArtifactID() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.ClearActivePlanArtifactID()
	})
}

// SetActiveImplementationArtifactID sets the "active_implementation_artifact_id" field.
func (u *LoopUpsertOne) SetActiveImplementationArtifactID(v string) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetActiveImplementationArtifactID(v)
	})
}

// UpdateActiveImplementationArtifactID sets the "active_implementation_artifact_id" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateActiveImplementationArtifactID() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateActiveImplementationArtifactID()
	})
}

// ClearActiveImplementationArtifactID clears the value of the "active_implementation_artifact_id" field.
func (u *LoopUpsertOne) ClearActiveImplementationArtifactID() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.ClearActiveImplementationArtifactID()
	})
}

// SetActiveReviewArtifactID sets the "active_review_artifact_id" field.
func (u *LoopUpsertOne) SetActiveReviewArtifactID(v string) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetActiveReviewArtifactID(v)
	})
}

// UpdateActiveReviewArtifactID sets the "active_review_artifact_id" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateActiveReviewArtifactID() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateActiveReviewArtifactID()
	})
}

// ClearActiveReviewArtifactID clears the value of the "active_review_artifact_id" field.
func (u *LoopUpsertOne) ClearActiveReviewArtifactID() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.ClearActiveReviewArtifactID()
	})
}

// SetActiveUIArtifactID sets the "active_ui_artifact_id" field.
func (u *LoopUpsertOne) SetActiveUIArtifactID(v string) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetActiveUIArtifactID(v)
	})
}

// UpdateActiveUIArtifactID sets the "active_ui_artifact_id" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateActiveUIArtifactID() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateActiveUIArtifactID()
	})
}

// ClearActiveUIArtifactID clears the value of the "active_ui_artifact_id" field.
func (u *LoopUpsertOne) ClearActiveUIArtifactID() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.ClearActiveUIArtifactID()
	})
}

// SetActiveBabysitArtifactID sets the "active_babysit_artifact_id" field.
func (u *LoopUpsertOne) SetActiveBabysitArtifactID(v string) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetActiveBabysitArtifactID(v)
	})
}

// UpdateActiveBabysitArtifactID sets the "active_babysit_artifact_id" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateActiveBabysitArtifactID() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateActiveBabysitArtifactID()
	})
}

// ClearActiveBabysitArtifactID clears the value of the "active_babysit_artifact_id" field.
func (u *LoopUpsertOne) ClearActiveBabysitArtifactID() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.ClearActiveBabysitArtifactID()
	})
}

// SetCanonicalStatusCommentID sets the "canonical_status_comment_id" field.
func (u *LoopUpsertOne) SetCanonicalStatusCommentID(v string) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetCanonicalStatusCommentID(v)
	})
}

// UpdateCanonicalStatusCommentID sets the "canonical_status_comment_id" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateCanonicalStatusCommentID() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateCanonicalStatusCommentID()
	})
}

// ClearCanonicalStatusCommentID clears the value of the "canonical_status_comment_id" field.
func (u *LoopUpsertOne) ClearCanonicalStatusCommentID() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.ClearCanonicalStatusCommentID()
	})
}

// SetCanonicalCheckRunID sets the "canonical_check_run_id" field.
func (u *LoopUpsertOne) SetCanonicalCheckRunID(v string) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetCanonicalCheckRunID(v)
	})
}

// UpdateCanonicalCheckRunID sets the "canonical_check_run_id" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateCanonicalCheckRunID() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateCanonicalCheckRunID()
	})
}

// ClearCanonicalCheckRunID clears the value of the "canonical_check_run_id" field.
func (u *LoopUpsertOne) ClearCanonicalCheckRunID() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.ClearCanonicalCheckRunID()
	})
}

// SetVideoCaptureStatus sets the "video_capture_status" field.
func (u *LoopUpsertOne) SetVideoCaptureStatus(v string) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetVideoCaptureStatus(v)
	})
}

// UpdateVideoCaptureStatus sets the "video_capture_status" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateVideoCaptureStatus() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateVideoCaptureStatus()
	})
}

// ClearVideoCaptureStatus clears the value of the "video_capture_status" field.
func (u *LoopUpsertOne) ClearVideoCaptureStatus() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.ClearVideoCaptureStatus()
	})
}

// SetLatestVideoArtifactKey sets the "latest_video_artifact_key" field.
func (u *LoopUpsertOne) SetLatestVideoArtifactKey(v string) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetLatestVideoArtifactKey(v)
	})
}

// UpdateLatestVideoArtifactKey sets the "latest_video_artifact_key" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateLatestVideoArtifactKey() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateLatestVideoArtifactKey()
	})
}

// ClearLatestVideoArtifactKey clears the value of the "latest_video_artifact_key" field.
func (u *LoopUpsertOne) ClearLatestVideoArtifactKey() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.ClearLatestVideoArtifactKey()
	})
}

// SetLatestVideoCapturedAt sets the "latest_video_captured_at" field.
func (u *LoopUpsertOne) SetLatestVideoCapturedAt(v time.Time) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetLatestVideoCapturedAt(v)
	})
}

// UpdateLatestVideoCapturedAt sets the "latest_video_captured_at" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateLatestVideoCapturedAt() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateLatestVideoCapturedAt()
	})
}

// ClearLatestVideoCapturedAt clears the value of the "latest_video_captured_at" field.
func (u *LoopUpsertOne) ClearLatestVideoCapturedAt() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.ClearLatestVideoCapturedAt()
	})
}

// SetLatestVideoFailureClass sets the "latest_video_failure_class" field.
func (u *LoopUpsertOne) SetLatestVideoFailureClass(v string) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetLatestVideoFailureClass(v)
	})
}

// UpdateLatestVideoFailureClass sets the "latest_video_failure_class" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateLatestVideoFailureClass() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateLatestVideoFailureClass()
	})
}

// ClearLatestVideoFailureClass clears the value of the "latest_video_failure_class" field.
func (u *LoopUpsertOne) ClearLatestVideoFailureClass() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.ClearLatestVideoFailureClass()
	})
}

// SetLatestVideoFailureMessage sets the "latest_video_failure_message" field.
func (u *LoopUpsertOne) SetLatestVideoFailureMessage(v string) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetLatestVideoFailureMessage(v)
	})
}

// UpdateLatestVideoFailureMessage sets the "latest_video_failure_message" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateLatestVideoFailureMessage() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateLatestVideoFailureMessage()
	})
}

// ClearLatestVideoFailureMessage clears the value of the "latest_video_failure_message" field.
func (u *LoopUpsertOne) ClearLatestVideoFailureMessage() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.ClearLatestVideoFailureMessage()
	})
}

// SetLatestVideoFailedAt sets the "latest_video_failed_at" field.
func (u *LoopUpsertOne) SetLatestVideoFailedAt(v time.Time) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetLatestVideoFailedAt(v)
	})
}

// UpdateLatestVideoFailedAt sets the "latest_video_failed_at" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateLatestVideoFailedAt() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateLatestVideoFailedAt()
	})
}

// ClearLatestVideoFailedAt clears the value of the "latest_video_failed_at" field.
func (u *LoopUpsertOne) ClearLatestVideoFailedAt() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.ClearLatestVideoFailedAt()
	})
}

// SetStopReason sets the "stop_reason" field.
func (u *LoopUpsertOne) SetStopReason(v string) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetStopReason(v)
	})
}

// UpdateStopReason sets the "stop_reason" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateStopReason() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateStopReason()
	})
}

// ClearStopReason clears the value of the "stop_reason" field.
func (u *LoopUpsertOne) ClearStopReason() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.ClearStopReason()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LoopUpsertOne) SetUpdatedAt(v time.Time) *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LoopUpsertOne) UpdateUpdatedAt() *LoopUpsertOne {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LoopUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LoopCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LoopUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LoopUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LoopUpsertOne.ID is not supported by MySQL driver. Use LoopUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LoopUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LoopCreateBulk is the builder for creating many Loop entities in bulk.
type LoopCreateBulk struct {
	config
	err      error
	builders []*LoopCreate
	conflict []sql.ConflictOption
}

// Save creates the Loop entities in the database.
func (_c *LoopCreateBulk) Save(ctx context.Context) ([]*Loop, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Loop, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LoopMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LoopCreateBulk) SaveX(ctx context.Context) []*Loop {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LoopCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LoopCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Loop.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LoopUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *LoopCreateBulk) OnConflict(opts ...sql.ConflictOption) *LoopUpsertBulk {
	_c.conflict = opts
	return &LoopUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Loop.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LoopCreateBulk) OnConflictColumns(columns ...string) *LoopUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LoopUpsertBulk{
		create: _c,
	}
}

// LoopUpsertBulk is the builder for "upsert"-ing
// a bulk of Loop nodes.
type LoopUpsertBulk struct {
	create *LoopCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Loop.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(loop.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LoopUpsertBulk) UpdateNewValues() *LoopUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(loop.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(loop.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Loop.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LoopUpsertBulk) Ignore() *LoopUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LoopUpsertBulk) DoNothing() *LoopUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LoopCreateBulk.OnConflict
// documentation for more info.
func (u *LoopUpsertBulk) Update(set func(*LoopUpsert)) *LoopUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LoopUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *LoopUpsertBulk) SetUserID(v string) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateUserID() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateUserID()
	})
}

// SetRepoFullName sets the "repo_full_name" field.
func (u *LoopUpsertBulk) SetRepoFullName(v string) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetRepoFullName(v)
	})
}

// UpdateRepoFullName sets the "repo_full_name" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateRepoFullName() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateRepoFullName()
	})
}

// SetPrNumber sets the "pr_number" field.
func (u *LoopUpsertBulk) SetPrNumber(v int) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetPrNumber(v)
	})
}

// AddPrNumber adds v to the "pr_number" field.
func (u *LoopUpsertBulk) AddPrNumber(v int) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.AddPrNumber(v)
	})
}

// UpdatePrNumber sets the "pr_number" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdatePrNumber() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdatePrNumber()
	})
}

// ClearPrNumber clears the value of the "pr_number" field.
func (u *LoopUpsertBulk) ClearPrNumber() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.ClearPrNumber()
	})
}

// SetThreadID sets the "thread_id" field.
func (u *LoopUpsertBulk) SetThreadID(v string) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetThreadID(v)
	})
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateThreadID() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateThreadID()
	})
}

// SetThreadChatID sets the "thread_chat_id" field.
func (u *LoopUpsertBulk) SetThreadChatID(v string) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetThreadChatID(v)
	})
}

// UpdateThreadChatID sets the "thread_chat_id" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateThreadChatID() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateThreadChatID()
	})
}

// ClearThreadChatID clears the value of the "thread_chat_id" field.
func (u *LoopUpsertBulk) ClearThreadChatID() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.ClearThreadChatID()
	})
}

// SetState sets the "state" field.
func (u *LoopUpsertBulk) SetState(v loop.State) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateState() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateState()
	})
}

// SetPlanApprovalPolicy sets the "plan_approval_policy" field.
func (u *LoopUpsertBulk) SetPlanApprovalPolicy(v loop.PlanApprovalPolicy) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetPlanApprovalPolicy(v)
	})
}

// UpdatePlanApprovalPolicy sets the "plan_approval_policy" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdatePlanApprovalPolicy() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdatePlanApprovalPolicy()
	})
}

// SetCurrentHeadSha sets the "current_head_sha" field.
func (u *LoopUpsertBulk) SetCurrentHeadSha(v string) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetCurrentHeadSha(v)
	})
}

// UpdateCurrentHeadSha sets the "current_head_sha" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateCurrentHeadSha() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateCurrentHeadSha()
	})
}

// ClearCurrentHeadSha clears the value of the "current_head_sha" field.
func (u *LoopUpsertBulk) ClearCurrentHeadSha() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.ClearCurrentHeadSha()
	})
}

// SetLoopVersion sets the "loop_version" field.
func (u *LoopUpsertBulk) SetLoopVersion(v int) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetLoopVersion(v)
	})
}

// AddLoopVersion adds v to the "loop_version" field.
func (u *LoopUpsertBulk) AddLoopVersion(v int) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.AddLoopVersion(v)
	})
}

// UpdateLoopVersion sets the "loop_version" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateLoopVersion() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateLoopVersion()
	})
}

// SetTransitionSeq sets the "transition_seq" field.
func (u *LoopUpsertBulk) SetTransitionSeq(v int) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetTransitionSeq(v)
	})
}

// AddTransitionSeq adds v to the "transition_seq" field.
func (u *LoopUpsertBulk) AddTransitionSeq(v int) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.AddTransitionSeq(v)
	})
}

// UpdateTransitionSeq sets the "transition_seq" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateTransitionSeq() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateTransitionSeq()
	})
}

// SetFixAttemptCount sets the "fix_attempt_count" field.
func (u *LoopUpsertBulk) SetFixAttemptCount(v int) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetFixAttemptCount(v)
	})
}

// AddFixAttemptCount adds v to the "fix_attempt_count" field.
func (u *LoopUpsertBulk) AddFixAttemptCount(v int) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.AddFixAttemptCount(v)
	})
}

// UpdateFixAttemptCount sets the "fix_attempt_count" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateFixAttemptCount() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateFixAttemptCount()
	})
}

// SetMaxFixAttempts sets the "max_fix_attempts" field.
func (u *LoopUpsertBulk) SetMaxFixAttempts(v int) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetMaxFixAttempts(v)
	})
}

// AddMaxFixAttempts adds v to the "max_fix_attempts" field.
func (u *LoopUpsertBulk) AddMaxFixAttempts(v int) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.AddMaxFixAttempts(v)
	})
}

// UpdateMaxFixAttempts sets the "max_fix_attempts" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateMaxFixAttempts() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateMaxFixAttempts()
	})
}

// SetIterationCount sets the "iteration_count" field.
func (u *LoopUpsertBulk) SetIterationCount(v int) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetIterationCount(v)
	})
}

// AddIterationCount adds v to the "iteration_count" field.
func (u *LoopUpsertBulk) AddIterationCount(v int) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.AddIterationCount(v)
	})
}

// UpdateIterationCount sets the "iteration_count" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateIterationCount() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateIterationCount()
	})
}

// SetCooldownUntil sets the "cooldown_until" field.
func (u *LoopUpsertBulk) SetCooldownUntil(v time.Time) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetCooldownUntil(v)
	})
}

// UpdateCooldownUntil sets the "cooldown_until" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateCooldownUntil() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateCooldownUntil()
	})
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (u *LoopUpsertBulk) ClearCooldownUntil() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.ClearCooldownUntil()
	})
}

// SetActivePlanArtifactID sets the "active_plan_artifact_id" field.
func (u *LoopUpsertBulk) SetActivePlanArtifactID(v string) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetActivePlanArtifactID(v)
	})
}

// UpdateActivePlanArtifactID sets the "active_plan_artifact_id" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateActivePlanArtifactID() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateActivePlanArtifactID()
	})
}

// ClearActivePlanArtifactID clears the value of the "active_plan_artifact_id" field.
func (u *LoopUpsertBulk) ClearActivePlanArtifactID() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.ClearActivePlanArtifactID()
	})
}

// SetActiveImplementationArtifactID sets the "active_implementation_artifact_id" field.
func (u *LoopUpsertBulk) SetActiveImplementationArtifactID(v string) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetActiveImplementationArtifactID(v)
	})
}

// UpdateActiveImplementationArtifactID sets the "active_implementation_artifact_id" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateActiveImplementationArtifactID() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateActiveImplementationArtifactID()
	})
}

// ClearActiveImplementationArtifactID clears the value of the "active_implementation_artifact_id" field.
func (u *LoopUpsertBulk) ClearActiveImplementationArtifactID() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.ClearActiveImplementationArtifactID()
	})
}

// SetActiveReviewArtifactID sets the "active_review_artifact_id" field.
func (u *LoopUpsertBulk) SetActiveReviewArtifactID(v string) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetActiveReviewArtifactID(v)
	})
}

// UpdateActiveReviewArtifactID sets the "active_review_artifact_id" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateActiveReviewArtifactID() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateActiveReviewArtifactID()
	})
}

// ClearActiveReviewArtifactID clears the value of the "active_review_artifact_id" field.
func (u *LoopUpsertBulk) ClearActiveReviewArtifactID() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.ClearActiveReviewArtifactID()
	})
}

// SetActiveUIArtifactID sets the "active_ui_artifact_id" field.
func (u *LoopUpsertBulk) SetActiveUIArtifactID(v string) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetActiveUIArtifactID(v)
	})
}

// UpdateActiveUIArtifactID sets the "active_ui_artifact_id" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateActiveUIArtifactID() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateActiveUIArtifactID()
	})
}

// ClearActiveUIArtifactID clears the value of the "active_ui_artifact_id" field.
func (u *LoopUpsertBulk) ClearActiveUIArtifactID() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.ClearActiveUIArtifactID()
	})
}

// SetActiveBabysitArtifactID sets the "active_babysit_artifact_id" field.
func (u *LoopUpsertBulk) SetActiveBabysitArtifactID(v string) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetActiveBabysitArtifactID(v)
	})
}

// UpdateActiveBabysitArtifactID sets the "active_babysit_artifact_id" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateActiveBabysitArtifactID() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateActiveBabysitArtifactID()
	})
}

// ClearActiveBabysitArtifactID clears the value of the "active_babysit_artifact_id" field.
func (u *LoopUpsertBulk) ClearActiveBabysitArtifactID() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.ClearActiveBabysitArtifactID()
	})
}

// SetCanonicalStatusCommentID sets the "canonical_status_comment_id" field.
func (u *LoopUpsertBulk) SetCanonicalStatusCommentID(v string) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetCanonicalStatusCommentID(v)
	})
}

// UpdateCanonicalStatusCommentID sets the "canonical_status_comment_id" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateCanonicalStatusCommentID() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateCanonicalStatusCommentID()
	})
}

// ClearCanonicalStatusCommentID clears the value of the "canonical_status_comment_id" field.
func (u *LoopUpsertBulk) ClearCanonicalStatusCommentID() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.ClearCanonicalStatusCommentID()
	})
}

// SetCanonicalCheckRunID sets the "canonical_check_run_id" field.
func (u *LoopUpsertBulk) SetCanonicalCheckRunID(v string) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetCanonicalCheckRunID(v)
	})
}

// UpdateCanonicalCheckRunID sets the "canonical_check_run_id" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateCanonicalCheckRunID() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateCanonicalCheckRunID()
	})
}

// ClearCanonicalCheckRunID clears the value of the "canonical_check_run_id" field.
func (u *LoopUpsertBulk) ClearCanonicalCheckRunID() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.ClearCanonicalCheckRunID()
	})
}

// SetVideoCaptureStatus sets the "video_capture_status" field.
func (u *LoopUpsertBulk) SetVideoCaptureStatus(v string) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetVideoCaptureStatus(v)
	})
}

// UpdateVideoCaptureStatus sets the "video_capture_status" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateVideoCaptureStatus() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateVideoCaptureStatus()
	})
}

// ClearVideoCaptureStatus clears the value of the "video_capture_status" field.
func (u *LoopUpsertBulk) ClearVideoCaptureStatus() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.ClearVideoCaptureStatus()
	})
}

// SetLatestVideoArtifactKey sets the "latest_video_artifact_key" field.
func (u *LoopUpsertBulk) SetLatestVideoArtifactKey(v string) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetLatestVideoArtifactKey(v)
	})
}

// UpdateLatestVideoArtifactKey sets the "latest_video_artifact_key" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateLatestVideoArtifactKey() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateLatestVideoArtifactKey()
	})
}

// ClearLatestVideoArtifactKey clears the value of the "latest_video_artifact_key" field.
func (u *LoopUpsertBulk) ClearLatestVideoArtifactKey() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.ClearLatestVideoArtifactKey()
	})
}

// SetLatestVideoCapturedAt sets the "latest_video_captured_at" field.
func (u *LoopUpsertBulk) SetLatestVideoCapturedAt(v time.Time) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetLatestVideoCapturedAt(v)
	})
}

// UpdateLatestVideoCapturedAt sets the "latest_video_captured_at" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateLatestVideoCapturedAt() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateLatestVideoCapturedAt()
	})
}

// ClearLatestVideoCapturedAt clears the value of the "latest_video_captured_at" field.
func (u *LoopUpsertBulk) ClearLatestVideoCapturedAt() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.ClearLatestVideoCapturedAt()
	})
}

// SetLatestVideoFailureClass sets the "latest_video_failure_class" field.
func (u *LoopUpsertBulk) SetLatestVideoFailureClass(v string) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetLatestVideoFailureClass(v)
	})
}

// UpdateLatestVideoFailureClass sets the "latest_video_failure_class" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateLatestVideoFailureClass() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateLatestVideoFailureClass()
	})
}

// ClearLatestVideoFailureClass clears the value of the "latest_video_failure_class" field.
func (u *LoopUpsertBulk) ClearLatestVideoFailureClass() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.ClearLatestVideoFailureClass()
	})
}

// SetLatestVideoFailureMessage sets the "latest_video_failure_message" field.
func (u *LoopUpsertBulk) SetLatestVideoFailureMessage(v string) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetLatestVideoFailureMessage(v)
	})
}

// UpdateLatestVideoFailureMessage sets the "latest_video_failure_message" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateLatestVideoFailureMessage() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateLatestVideoFailureMessage()
	})
}

// ClearLatestVideoFailureMessage clears the value of the "latest_video_failure_message" field.
func (u *LoopUpsertBulk) ClearLatestVideoFailureMessage() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.ClearLatestVideoFailureMessage()
	})
}

// SetLatestVideoFailedAt sets the "latest_video_failed_at" field.
func (u *LoopUpsertBulk) SetLatestVideoFailedAt(v time.Time) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetLatestVideoFailedAt(v)
	})
}

// UpdateLatestVideoFailedAt sets the "latest_video_failed_at" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateLatestVideoFailedAt() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateLatestVideoFailedAt()
	})
}

// ClearLatestVideoFailedAt clears the value of the "latest_video_failed_at" field.
func (u *LoopUpsertBulk) ClearLatestVideoFailedAt() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.ClearLatestVideoFailedAt()
	})
}

// SetStopReason sets the "stop_reason" field.
func (u *LoopUpsertBulk) SetStopReason(v string) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetStopReason(v)
	})
}

// UpdateStopReason sets the "stop_reason" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateStopReason() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateStopReason()
	})
}

// ClearStopReason clears the value of the "stop_reason" field.
func (u *LoopUpsertBulk) ClearStopReason() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.ClearStopReason()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LoopUpsertBulk) SetUpdatedAt(v time.Time) *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LoopUpsertBulk) UpdateUpdatedAt() *LoopUpsertBulk {
	return u.Update(func(s *LoopUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LoopUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LoopCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LoopCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LoopUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
