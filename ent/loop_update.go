// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/loopd/ent/gatefinding"
	"github.com/codeready-toolchain/loopd/ent/gaterun"
	"github.com/codeready-toolchain/loopd/ent/inboxsignal"
	"github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/outboxaction"
	"github.com/codeready-toolchain/loopd/ent/phaseartifact"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// LoopUpdate is the builder for updating Loop entities.
type LoopUpdate struct {
	config
	hooks    []Hook
	mutation *LoopMutation
}

// Where appends a list predicates to the LoopUpdate builder.
func (_u *LoopUpdate) Where(ps ...predicate.Loop) *LoopUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LoopUpdate) SetUserID(v string) *LoopUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableUserID(v *string) *LoopUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRepoFullName sets the "repo_full_name" field.
func (_u *LoopUpdate) SetRepoFullName(v string) *LoopUpdate {
	_u.mutation.SetRepoFullName(v)
	return _u
}

// SetNillableRepoFullName sets the "repo_full_name" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableRepoFullName(v *string) *LoopUpdate {
	if v != nil {
		_u.SetRepoFullName(*v)
	}
	return _u
}

// SetPrNumber sets the "pr_number" field.
func (_u *LoopUpdate) SetPrNumber(v int) *LoopUpdate {
	_u.mutation.ResetPrNumber()
	_u.mutation.SetPrNumber(v)
	return _u
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_u *LoopUpdate) SetNillablePrNumber(v *int) *LoopUpdate {
	if v != nil {
		_u.SetPrNumber(*v)
	}
	return _u
}

// AddPrNumber adds value to the "pr_number" field.
func (_u *LoopUpdate) AddPrNumber(v int) *LoopUpdate {
	_u.mutation.AddPrNumber(v)
	return _u
}

// ClearPrNumber clears the value of the "pr_number" field.
func (_u *LoopUpdate) ClearPrNumber() *LoopUpdate {
	_u.mutation.ClearPrNumber()
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *LoopUpdate) SetThreadID(v string) *LoopUpdate {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableThreadID(v *string) *LoopUpdate {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// SetThreadChatID sets the "thread_chat_id" field.
func (_u *LoopUpdate) SetThreadChatID(v string) *LoopUpdate {
	_u.mutation.SetThreadChatID(v)
	return _u
}

// SetNillableThreadChatID sets the "thread_chat_id" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableThreadChatID(v *string) *LoopUpdate {
	if v != nil {
		_u.SetThreadChatID(*v)
	}
	return _u
}

// ClearThreadChatID clears the value of the "thread_chat_id" field.
func (_u *LoopUpdate) ClearThreadChatID() *LoopUpdate {
	_u.mutation.ClearThreadChatID()
	return _u
}

// SetState sets the "state" field.
func (_u *LoopUpdate) SetState(v loop.State) *LoopUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableState(v *loop.State) *LoopUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPlanApprovalPolicy sets the "plan_approval_policy" field.
func (_u *LoopUpdate) SetPlanApprovalPolicy(v loop.PlanApprovalPolicy) *LoopUpdate {
	_u.mutation.SetPlanApprovalPolicy(v)
	return _u
}

// SetNillablePlanApprovalPolicy sets the "plan_approval_policy" field if the given value is not nil.
func (_u *LoopUpdate) SetNillablePlanApprovalPolicy(v *loop.PlanApprovalPolicy) *LoopUpdate {
	if v != nil {
		_u.SetPlanApprovalPolicy(*v)
	}
	return _u
}

// SetCurrentHeadSha sets the "current_head_sha" field.
func (_u *LoopUpdate) SetCurrentHeadSha(v string) *LoopUpdate {
	_u.mutation.SetCurrentHeadSha(v)
	return _u
}

// SetNillableCurrentHeadSha sets the "current_head_sha" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableCurrentHeadSha(v *string) *LoopUpdate {
	if v != nil {
		_u.SetCurrentHeadSha(*v)
	}
	return _u
}

// ClearCurrentHeadSha clears the value of the "current_head_sha" field.
func (_u *LoopUpdate) ClearCurrentHeadSha() *LoopUpdate {
	_u.mutation.ClearCurrentHeadSha()
	return _u
}

// SetLoopVersion sets the "loop_version" field.
func (_u *LoopUpdate) SetLoopVersion(v int) *LoopUpdate {
	_u.mutation.ResetLoopVersion()
	_u.mutation.SetLoopVersion(v)
	return _u
}

// SetNillableLoopVersion sets the "loop_version" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableLoopVersion(v *int) *LoopUpdate {
	if v != nil {
		_u.SetLoopVersion(*v)
	}
	return _u
}

// AddLoopVersion adds value to the "loop_version" field.
func (_u *LoopUpdate) AddLoopVersion(v int) *LoopUpdate {
	_u.mutation.AddLoopVersion(v)
	return _u
}

// SetTransitionSeq sets the "transition_seq" field.
func (_u *LoopUpdate) SetTransitionSeq(v int) *LoopUpdate {
	_u.mutation.ResetTransitionSeq()
	_u.mutation.SetTransitionSeq(v)
	return _u
}

// SetNillableTransitionSeq sets the "transition_seq" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableTransitionSeq(v *int) *LoopUpdate {
	if v != nil {
		_u.SetTransitionSeq(*v)
	}
	return _u
}

// AddTransitionSeq adds value to the "transition_seq" field.
func (_u *LoopUpdate) AddTransitionSeq(v int) *LoopUpdate {
	_u.mutation.AddTransitionSeq(v)
	return _u
}

// SetFixAttemptCount sets the "fix_attempt_count" field.
func (_u *LoopUpdate) SetFixAttemptCount(v int) *LoopUpdate {
	_u.mutation.ResetFixAttemptCount()
	_u.mutation.SetFixAttemptCount(v)
	return _u
}

// SetNillableFixAttemptCount sets the "fix_attempt_count" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableFixAttemptCount(v *int) *LoopUpdate {
	if v != nil {
		_u.SetFixAttemptCount(*v)
	}
	return _u
}

// AddFixAttemptCount adds value to the "fix_attempt_count" field.
func (_u *LoopUpdate) AddFixAttemptCount(v int) *LoopUpdate {
	_u.mutation.AddFixAttemptCount(v)
	return _u
}

// SetMaxFixAttempts sets the "max_fix_attempts" field.
func (_u *LoopUpdate) SetMaxFixAttempts(v int) *LoopUpdate {
	_u.mutation.ResetMaxFixAttempts()
	_u.mutation.SetMaxFixAttempts(v)
	return _u
}

// SetNillableMaxFixAttempts sets the "max_fix_attempts" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableMaxFixAttempts(v *int) *LoopUpdate {
	if v != nil {
		_u.SetMaxFixAttempts(*v)
	}
	return _u
}

// AddMaxFixAttempts adds value to the "max_fix_attempts" field.
func (_u *LoopUpdate) AddMaxFixAttempts(v int) *LoopUpdate {
	_u.mutation.AddMaxFixAttempts(v)
	return _u
}

// SetIterationCount sets the "iteration_count" field.
func (_u *LoopUpdate) SetIterationCount(v int) *LoopUpdate {
	_u.mutation.ResetIterationCount()
	_u.mutation.SetIterationCount(v)
	return _u
}

// SetNillableIterationCount sets the "iteration_count" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableIterationCount(v *int) *LoopUpdate {
	if v != nil {
		_u.SetIterationCount(*v)
	}
	return _u
}

// AddIterationCount adds value to the "iteration_count" field.
func (_u *LoopUpdate) AddIterationCount(v int) *LoopUpdate {
	_u.mutation.AddIterationCount(v)
	return _u
}

// SetCooldownUntil sets the "cooldown_until" field.
func (_u *LoopUpdate) SetCooldownUntil(v time.Time) *LoopUpdate {
	_u.mutation.SetCooldownUntil(v)
	return _u
}

// SetNillableCooldownUntil sets the "cooldown_until" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableCooldownUntil(v *time.Time) *LoopUpdate {
	if v != nil {
		_u.SetCooldownUntil(*v)
	}
	return _u
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (_u *LoopUpdate) ClearCooldownUntil() *LoopUpdate {
	_u.mutation.ClearCooldownUntil()
	return _u
}

// SetActivePlanArtifactID sets the "active_plan_artifact_id" field.
func (_u *LoopUpdate) SetActivePlanArtifactID(v string) *LoopUpdate {
	_u.mutation.SetActivePlanArtifactID(v)
	return _u
}

// SetNillableActivePlanArtifactID sets the "active_plan_artifact_id" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableActivePlanArtifactID(v *string) *LoopUpdate {
	if v != nil {
		_u.SetActivePlanArtifactID(*v)
	}
	return _u
}

// ClearActivePlanArtifactID clears the value of the "active_plan_artifact_id" field.
func (_u *LoopUpdate) ClearActivePlanArtifactID() *LoopUpdate {
	_u.mutation.ClearActivePlanArtifactID()
	return _u
}

// SetActiveImplementationArtifactID sets the "active_implementation_artifact_id" field.
func (_u *LoopUpdate) SetActiveImplementationArtifactID(v string) *LoopUpdate {
	_u.mutation.SetActiveImplementationArtifactID(v)
	return _u
}

// SetNillableActiveImplementationArtifactID sets the "active_implementation_artifact_id" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableActiveImplementationArtifactID(v *string) *LoopUpdate {
	if v != nil {
		_u.SetActiveImplementationArtifactID(*v)
	}
	return _u
}

// ClearActiveImplementationArtifactID clears the value of the "active_implementation_artifact_id" field.
func (_u *LoopUpdate) ClearActiveImplementationArtifactID() *LoopUpdate {
	_u.mutation.ClearActiveImplementationArtifactID()
	return _u
}

// SetActiveReviewArtifactID sets the "active_review_artifact_id" field.
func (_u *LoopUpdate) SetActiveReviewArtifactID(v string) *LoopUpdate {
	_u.mutation.SetActiveReviewArtifactID(v)
	return _u
}

// SetNillableActiveReviewArtifactID sets the "active_review_artifact_id" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableActiveReviewArtifactID(v *string) *LoopUpdate {
	if v != nil {
		_u.SetActiveReviewArtifactID(*v)
	}
	return _u
}

// ClearActiveReviewArtifactID clears the value of the "active_review_artifact_id" field.
func (_u *LoopUpdate) ClearActiveReviewArtifactID() *LoopUpdate {
	_u.mutation.ClearActiveReviewArtifactID()
	return _u
}

// SetActiveUIArtifactID sets the "active_ui_artifact_id" field.
func (_u *LoopUpdate) SetActiveUIArtifactID(v string) *LoopUpdate {
	_u.mutation.SetActiveUIArtifactID(v)
	return _u
}

// SetNillableActiveUIArtifactID sets the "active_ui_artifact_id" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableActiveUIArtifactID(v *string) *LoopUpdate {
	if v != nil {
		_u.SetActiveUIArtifactID(*v)
	}
	return _u
}

// ClearActiveUIArtifactID clears the value of the "active_ui_artifact_id" field.
func (_u *LoopUpdate) ClearActiveUIArtifactID() *LoopUpdate {
	_u.mutation.ClearActiveUIArtifactID()
	return _u
}

// SetActiveBabysitArtifactID sets the "active_babysit_artifact_id" field.
func (_u *LoopUpdate) SetActiveBabysitArtifactID(v string) *LoopUpdate {
	_u.mutation.SetActiveBabysitArtifactID(v)
	return _u
}

// SetNillableActiveBabysitArtifactID sets the "active_babysit_artifact_id" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableActiveBabysitArtifactID(v *string) *LoopUpdate {
	if v != nil {
		_u.SetActiveBabysitArtifactID(*v)
	}
	return _u
}

// ClearActiveBabysitArtifactID clears the value of the "active_babysit_artifact_id" field.
func (_u *LoopUpdate) ClearActiveBabysitArtifactID() *LoopUpdate {
	_u.mutation.ClearActiveBabysitArtifactID()
	return _u
}

// SetCanonicalStatusCommentID sets the "canonical_status_comment_id" field.
func (_u *LoopUpdate) SetCanonicalStatusCommentID(v string) *LoopUpdate {
	_u.mutation.SetCanonicalStatusCommentID(v)
	return _u
}

// SetNillableCanonicalStatusCommentID sets the "canonical_status_comment_id" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableCanonicalStatusCommentID(v *string) *LoopUpdate {
	if v != nil {
		_u.SetCanonicalStatusCommentID(*v)
	}
	return _u
}

// ClearCanonicalStatusCommentID clears the value of the "canonical_status_comment_id" field.
func (_u *LoopUpdate) ClearCanonicalStatusCommentID() *LoopUpdate {
	_u.mutation.ClearCanonicalStatusCommentID()
	return _u
}

// SetCanonicalCheckRunID sets the "canonical_check_run_id" field.
func (_u *LoopUpdate) SetCanonicalCheckRunID(v string) *LoopUpdate {
	_u.mutation.SetCanonicalCheckRunID(v)
	return _u
}

// SetNillableCanonicalCheckRunID sets the "canonical_check_run_id" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableCanonicalCheckRunID(v *string) *LoopUpdate {
	if v != nil {
		_u.SetCanonicalCheckRunID(*v)
	}
	return _u
}

// ClearCanonicalCheckRunID clears the value of the "canonical_check_run_id" field.
func (_u *LoopUpdate) ClearCanonicalCheckRunID() *LoopUpdate {
	_u.mutation.ClearCanonicalCheckRunID()
	return _u
}

// SetVideoCaptureStatus sets the "video_capture_status" field.
func (_u *LoopUpdate) SetVideoCaptureStatus(v string) *LoopUpdate {
	_u.mutation.SetVideoCaptureStatus(v)
	return _u
}

// SetNillableVideoCaptureStatus sets the "video_capture_status" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableVideoCaptureStatus(v *string) *LoopUpdate {
	if v != nil {
		_u.SetVideoCaptureStatus(*v)
	}
	return _u
}

// ClearVideoCaptureStatus clears the value of the "video_capture_status" field.
func (_u *LoopUpdate) ClearVideoCaptureStatus() *LoopUpdate {
	_u.mutation.ClearVideoCaptureStatus()
	return _u
}

// SetLatestVideoArtifactKey sets the "latest_video_artifact_key" field.
func (_u *LoopUpdate) SetLatestVideoArtifactKey(v string) *LoopUpdate {
	_u.mutation.SetLatestVideoArtifactKey(v)
	return _u
}

// SetNillableLatestVideoArtifactKey sets the "latest_video_artifact_key" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableLatestVideoArtifactKey(v *string) *LoopUpdate {
	if v != nil {
		_u.SetLatestVideoArtifactKey(*v)
	}
	return _u
}

// ClearLatestVideoArtifactKey clears the value of the "latest_video_artifact_key" field.
func (_u *LoopUpdate) ClearLatestVideoArtifactKey() *LoopUpdate {
	_u.mutation.ClearLatestVideoArtifactKey()
	return _u
}

// SetLatestVideoCapturedAt sets the "latest_video_captured_at" field.
func (_u *LoopUpdate) SetLatestVideoCapturedAt(v time.Time) *LoopUpdate {
	_u.mutation.SetLatestVideoCapturedAt(v)
	return _u
}

// SetNillableLatestVideoCapturedAt sets the "latest_video_captured_at" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableLatestVideoCapturedAt(v *time.Time) *LoopUpdate {
	if v != nil {
		_u.SetLatestVideoCapturedAt(*v)
	}
	return _u
}

// ClearLatestVideoCapturedAt clears the value of the "latest_video_captured_at" field.
func (_u *LoopUpdate) ClearLatestVideoCapturedAt() *LoopUpdate {
	_u.mutation.ClearLatestVideoCapturedAt()
	return _u
}

// SetLatestVideoFailureClass sets the "latest_video_failure_class" field.
func (_u *LoopUpdate) SetLatestVideoFailureClass(v string) *LoopUpdate {
	_u.mutation.SetLatestVideoFailureClass(v)
	return _u
}

// SetNillableLatestVideoFailureClass sets the "latest_video_failure_class" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableLatestVideoFailureClass(v *string) *LoopUpdate {
	if v != nil {
		_u.SetLatestVideoFailureClass(*v)
	}
	return _u
}

// ClearLatestVideoFailureClass clears the value of the "latest_video_failure_class" field.
func (_u *LoopUpdate) ClearLatestVideoFailureClass() *LoopUpdate {
	_u.mutation.ClearLatestVideoFailureClass()
	return _u
}

// SetLatestVideoFailureMessage sets the "latest_video_failure_message" field.
func (_u *LoopUpdate) SetLatestVideoFailureMessage(v string) *LoopUpdate {
	_u.mutation.SetLatestVideoFailureMessage(v)
	return _u
}

// SetNillableLatestVideoFailureMessage sets the "latest_video_failure_message" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableLatestVideoFailureMessage(v *string) *LoopUpdate {
	if v != nil {
		_u.SetLatestVideoFailureMessage(*v)
	}
	return _u
}

// ClearLatestVideoFailureMessage clears the value of the "latest_video_failure_message" field.
func (_u *LoopUpdate) ClearLatestVideoFailureMessage() *LoopUpdate {
	_u.mutation.ClearLatestVideoFailureMessage()
	return _u
}

// SetLatestVideoFailedAt sets the "latest_video_failed_at" field.
func (_u *LoopUpdate) SetLatestVideoFailedAt(v time.Time) *LoopUpdate {
	_u.mutation.SetLatestVideoFailedAt(v)
	return _u
}

// SetNillableLatestVideoFailedAt sets the "latest_video_failed_at" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableLatestVideoFailedAt(v *time.Time) *LoopUpdate {
	if v != nil {
		_u.SetLatestVideoFailedAt(*v)
	}
	return _u
}

// ClearLatestVideoFailedAt clears the value of the "latest_video_failed_at" field.
func (_u *LoopUpdate) ClearLatestVideoFailedAt() *LoopUpdate {
	_u.mutation.ClearLatestVideoFailedAt()
	return _u
}

// SetStopReason sets the "stop_reason" field.
func (_u *LoopUpdate) SetStopReason(v string) *LoopUpdate {
	_u.mutation.SetStopReason(v)
	return _u
}

// SetNillableStopReason sets the "stop_reason" field if the given value is not nil.
func (_u *LoopUpdate) SetNillableStopReason(v *string) *LoopUpdate {
	if v != nil {
		_u.SetStopReason(*v)
	}
	return _u
}

// ClearStopReason clears the value of the "stop_reason" field.
func (_u *LoopUpdate) ClearStopReason() *LoopUpdate {
	_u.mutation.ClearStopReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LoopUpdate) SetUpdatedAt(v time.Time) *LoopUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSignalIDs adds the "signals" edge to the InboxSignal entity by IDs.
func (_u *LoopUpdate) AddSignalIDs(ids ...string) *LoopUpdate {
	_u.mutation.AddSignalIDs(ids...)
	return _u
}

// AddSignals adds the "signals" edges to the InboxSignal entity.
func (_u *LoopUpdate) AddSignals(v ...*InboxSignal) *LoopUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSignalIDs(ids...)
}

// AddOutboxActionIDs adds the "outbox_actions" edge to the OutboxAction entity by IDs.
func (_u *LoopUpdate) AddOutboxActionIDs(ids ...string) *LoopUpdate {
	_u.mutation.AddOutboxActionIDs(ids...)
	return _u
}

// AddOutboxActions adds the "outbox_actions" edges to the OutboxAction entity.
func (_u *LoopUpdate) AddOutboxActions(v ...*OutboxAction) *LoopUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutboxActionIDs(ids...)
}

// AddGateRunIDs adds the "gate_runs" edge to the GateRun entity by IDs.
func (_u *LoopUpdate) AddGateRunIDs(ids ...string) *LoopUpdate {
	_u.mutation.AddGateRunIDs(ids...)
	return _u
}

// AddGateRuns adds the "gate_runs" edges to the GateRun entity.
func (_u *LoopUpdate) AddGateRuns(v ...*GateRun) *LoopUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGateRunIDs(ids...)
}

// AddGateFindingIDs adds the "gate_findings" edge to the GateFinding entity by IDs.
func (_u *LoopUpdate) AddGateFindingIDs(ids ...string) *LoopUpdate {
	_u.mutation.AddGateFindingIDs(ids...)
	return _u
}

// AddGateFindings adds the "gate_findings" edges to the GateFinding entity.
func (_u *LoopUpdate) AddGateFindings(v ...*GateFinding) *LoopUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGateFindingIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the PhaseArtifact entity by IDs.
func (_u *LoopUpdate) AddArtifactIDs(ids ...string) *LoopUpdate {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the PhaseArtifact entity.
func (_u *LoopUpdate) AddArtifacts(v ...*PhaseArtifact) *LoopUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// Mutation returns the LoopMutation object of the builder.
func (_u *LoopUpdate) Mutation() *LoopMutation {
	return _u.mutation
}

// ClearSignals clears all "signals" edges to the InboxSignal entity.
func (_u *LoopUpdate) ClearSignals() *LoopUpdate {
	_u.mutation.ClearSignals()
	return _u
}

// RemoveSignalIDs removes the "signals" edge to InboxSignal entities by IDs.
func (_u *LoopUpdate) RemoveSignalIDs(ids ...string) *LoopUpdate {
	_u.mutation.RemoveSignalIDs(ids...)
	return _u
}

// RemoveSignals removes "signals" edges to InboxSignal entities.
func (_u *LoopUpdate) RemoveSignals(v ...*InboxSignal) *LoopUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSignalIDs(ids...)
}

// ClearOutboxActions clears all "outbox_actions" edges to the OutboxAction entity.
func (_u *LoopUpdate) ClearOutboxActions() *LoopUpdate {
	_u.mutation.ClearOutboxActions()
	return _u
}

// RemoveOutboxActionIDs removes the "outbox_actions" edge to OutboxAction entities by IDs.
func (_u *LoopUpdate) RemoveOutboxActionIDs(ids ...string) *LoopUpdate {
	_u.mutation.RemoveOutboxActionIDs(ids...)
	return _u
}

// RemoveOutboxActions removes "outbox_actions" edges to OutboxAction entities.
func (_u *LoopUpdate) RemoveOutboxActions(v ...*OutboxAction) *LoopUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutboxActionIDs(ids...)
}

// ClearGateRuns clears all "gate_runs" edges to the GateRun entity.
func (_u *LoopUpdate) ClearGateRuns() *LoopUpdate {
	_u.mutation.ClearGateRuns()
	return _u
}

// RemoveGateRunIDs removes the "gate_runs" edge to GateRun entities by IDs.
func (_u *LoopUpdate) RemoveGateRunIDs(ids ...string) *LoopUpdate {
	_u.mutation.RemoveGateRunIDs(ids...)
	return _u
}

// RemoveGateRuns removes "gate_runs" edges to GateRun entities.
func (_u *LoopUpdate) RemoveGateRuns(v ...*GateRun) *LoopUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGateRunIDs(ids...)
}

// ClearGateFindings clears all "gate_findings" edges to the GateFinding entity.
func (_u *LoopUpdate) ClearGateFindings() *LoopUpdate {
	_u.mutation.ClearGateFindings()
	return _u
}

// RemoveGateFindingIDs removes the "gate_findings" edge to GateFinding entities by IDs.
func (_u *LoopUpdate) RemoveGateFindingIDs(ids ...string) *LoopUpdate {
	_u.mutation.RemoveGateFindingIDs(ids...)
	return _u
}

// RemoveGateFindings removes "gate_findings" edges to GateFinding entities.
func (_u *LoopUpdate) RemoveGateFindings(v ...*GateFinding) *LoopUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGateFindingIDs(ids...)
}

// ClearArtifacts clears all "artifacts" edges to the PhaseArtifact entity.
func (_u *LoopUpdate) ClearArtifacts() *LoopUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to PhaseArtifact entities by IDs.
func (_u *LoopUpdate) RemoveArtifactIDs(ids ...string) *LoopUpdate {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to PhaseArtifact entities.
func (_u *LoopUpdate) RemoveArtifacts(v ...*PhaseArtifact) *LoopUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LoopUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LoopUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LoopUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LoopUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LoopUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := loop.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LoopUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := loop.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Loop.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanApprovalPolicy(); ok {
		if err := loop.PlanApprovalPolicyValidator(v); err != nil {
			return &ValidationError{Name: "plan_approval_policy", err: fmt.Errorf(`ent: validator failed for field "Loop.plan_approval_policy": %w`, err)}
		}
	}
	return nil
}

func (_u *LoopUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(loop.Table, loop.Columns, sqlgraph.NewFieldSpec(loop.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(loop.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepoFullName(); ok {
		_spec.SetField(loop.FieldRepoFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrNumber(); ok {
		_spec.SetField(loop.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrNumber(); ok {
		_spec.AddField(loop.FieldPrNumber, field.TypeInt, value)
	}
	if _u.mutation.PrNumberCleared() {
		_spec.ClearField(loop.FieldPrNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(loop.FieldThreadID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThreadChatID(); ok {
		_spec.SetField(loop.FieldThreadChatID, field.TypeString, value)
	}
	if _u.mutation.ThreadChatIDCleared() {
		_spec.ClearField(loop.FieldThreadChatID, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(loop.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PlanApprovalPolicy(); ok {
		_spec.SetField(loop.FieldPlanApprovalPolicy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentHeadSha(); ok {
		_spec.SetField(loop.FieldCurrentHeadSha, field.TypeString, value)
	}
	if _u.mutation.CurrentHeadShaCleared() {
		_spec.ClearField(loop.FieldCurrentHeadSha, field.TypeString)
	}
	if value, ok := _u.mutation.LoopVersion(); ok {
		_spec.SetField(loop.FieldLoopVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLoopVersion(); ok {
		_spec.AddField(loop.FieldLoopVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TransitionSeq(); ok {
		_spec.SetField(loop.FieldTransitionSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTransitionSeq(); ok {
		_spec.AddField(loop.FieldTransitionSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FixAttemptCount(); ok {
		_spec.SetField(loop.FieldFixAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFixAttemptCount(); ok {
		_spec.AddField(loop.FieldFixAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxFixAttempts(); ok {
		_spec.SetField(loop.FieldMaxFixAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxFixAttempts(); ok {
		_spec.AddField(loop.FieldMaxFixAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IterationCount(); ok {
		_spec.SetField(loop.FieldIterationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterationCount(); ok {
		_spec.AddField(loop.FieldIterationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CooldownUntil(); ok {
		_spec.SetField(loop.FieldCooldownUntil, field.TypeTime, value)
	}
	if _u.mutation.CooldownUntilCleared() {
		_spec.ClearField(loop.FieldCooldownUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.ActivePlanArtifactID(); ok {
		_spec.SetField(loop.FieldActivePlanArtifactID, field.TypeString, value)
	}
	if _u.mutation.ActivePlanArtifactIDCleared() {
		_spec.ClearField(loop.FieldActivePlanArtifactID, field.TypeString)
	}
	if value, ok := _u.mutation.ActiveImplementationArtifactID(); ok {
		_spec.SetField(loop.FieldActiveImplementationArtifactID, field.TypeString, value)
	}
	if _u.mutation.ActiveImplementationArtifactIDCleared() {
		_spec.ClearField(loop.FieldActiveImplementationArtifactID, field.TypeString)
	}
	if value, ok := _u.mutation.ActiveReviewArtifactID(); ok {
		_spec.SetField(loop.FieldActiveReviewArtifactID, field.TypeString, value)
	}
	if _u.mutation.ActiveReviewArtifactIDCleared() {
		_spec.ClearField(loop.FieldActiveReviewArtifactID, field.TypeString)
	}
	if value, ok := _u.mutation.ActiveUIArtifactID(); ok {
		_spec.SetField(loop.FieldActiveUIArtifactID, field.TypeString, value)
	}
	if _u.mutation.ActiveUIArtifactIDCleared() {
		_spec.ClearField(loop.FieldActiveUIArtifactID, field.TypeString)
	}
	if value, ok := _u.mutation.ActiveBabysitArtifactID(); ok {
		_spec.SetField(loop.FieldActiveBabysitArtifactID, field.TypeString, value)
	}
	if _u.mutation.ActiveBabysitArtifactIDCleared() {
		_spec.ClearField(loop.FieldActiveBabysitArtifactID, field.TypeString)
	}
	if value, ok := _u.mutation.CanonicalStatusCommentID(); ok {
		_spec.SetField(loop.FieldCanonicalStatusCommentID, field.TypeString, value)
	}
	if _u.mutation.CanonicalStatusCommentIDCleared() {
		_spec.ClearField(loop.FieldCanonicalStatusCommentID, field.TypeString)
	}
	if value, ok := _u.mutation.CanonicalCheckRunID(); ok {
		_spec.SetField(loop.FieldCanonicalCheckRunID, field.TypeString, value)
	}
	if _u.mutation.CanonicalCheckRunIDCleared() {
		_spec.ClearField(loop.FieldCanonicalCheckRunID, field.TypeString)
	}
	if value, ok := _u.mutation.VideoCaptureStatus(); ok {
		_spec.SetField(loop.FieldVideoCaptureStatus, field.TypeString, value)
	}
	if _u.mutation.VideoCaptureStatusCleared() {
		_spec.ClearField(loop.FieldVideoCaptureStatus, field.TypeString)
	}
	if value, ok := _u.mutation.LatestVideoArtifactKey(); ok {
		_spec.SetField(loop.FieldLatestVideoArtifactKey, field.TypeString, value)
	}
	if _u.mutation.LatestVideoArtifactKeyCleared() {
		_spec.ClearField(loop.FieldLatestVideoArtifactKey, field.TypeString)
	}
	if value, ok := _u.mutation.LatestVideoCapturedAt(); ok {
		_spec.SetField(loop.FieldLatestVideoCapturedAt, field.TypeTime, value)
	}
	if _u.mutation.LatestVideoCapturedAtCleared() {
		_spec.ClearField(loop.FieldLatestVideoCapturedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LatestVideoFailureClass(); ok {
		_spec.SetField(loop.FieldLatestVideoFailureClass, field.TypeString, value)
	}
	if _u.mutation.LatestVideoFailureClassCleared() {
		_spec.ClearField(loop.FieldLatestVideoFailureClass, field.TypeString)
	}
	if value, ok := _u.mutation.LatestVideoFailureMessage(); ok {
		_spec.SetField(loop.FieldLatestVideoFailureMessage, field.TypeString, value)
	}
	if _u.mutation.LatestVideoFailureMessageCleared() {
		_spec.ClearField(loop.FieldLatestVideoFailureMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LatestVideoFailedAt(); ok {
		_spec.SetField(loop.FieldLatestVideoFailedAt, field.TypeTime, value)
	}
	if _u.mutation.LatestVideoFailedAtCleared() {
		_spec.ClearField(loop.FieldLatestVideoFailedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StopReason(); ok {
		_spec.SetField(loop.FieldStopReason, field.TypeString, value)
	}
	if _u.mutation.StopReasonCleared() {
		_spec.ClearField(loop.FieldStopReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(loop.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SignalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSignalsIDs(); len(nodes) > 0 && !_u.mutation.SignalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SignalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutboxActionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutboxActionsIDs(); len(nodes) > 0 && !_u.mutation.OutboxActionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutboxActionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GateRunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGateRunsIDs(); len(nodes) > 0 && !_u.mutation.GateRunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GateRunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GateFindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGateFindingsIDs(); len(nodes) > 0 && !_u.mutation.GateFindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GateFindingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{loop.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LoopUpdateOne is the builder for updating a single Loop entity.
type LoopUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LoopMutation
}

// SetUserID sets the "user_id" field.
func (_u *LoopUpdateOne) SetUserID(v string) *LoopUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableUserID(v *string) *LoopUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRepoFullName sets the "repo_full_name" field.
func (_u *LoopUpdateOne) SetRepoFullName(v string) *LoopUpdateOne {
	_u.mutation.SetRepoFullName(v)
	return _u
}

// SetNillableRepoFullName sets the "repo_full_name" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableRepoFullName(v *string) *LoopUpdateOne {
	if v != nil {
		_u.SetRepoFullName(*v)
	}
	return _u
}

// SetPrNumber sets the "pr_number" field.
func (_u *LoopUpdateOne) SetPrNumber(v int) *LoopUpdateOne {
	_u.mutation.ResetPrNumber()
	_u.mutation.SetPrNumber(v)
	return _u
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillablePrNumber(v *int) *LoopUpdateOne {
	if v != nil {
		_u.SetPrNumber(*v)
	}
	return _u
}

// AddPrNumber adds value to the "pr_number" field.
func (_u *LoopUpdateOne) AddPrNumber(v int) *LoopUpdateOne {
	_u.mutation.AddPrNumber(v)
	return _u
}

// ClearPrNumber clears the value of the "pr_number" field.
func (_u *LoopUpdateOne) ClearPrNumber() *LoopUpdateOne {
	_u.mutation.ClearPrNumber()
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *LoopUpdateOne) SetThreadID(v string) *LoopUpdateOne {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableThreadID(v *string) *LoopUpdateOne {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// SetThreadChatID sets the "thread_chat_id" field.
func (_u *LoopUpdateOne) SetThreadChatID(v string) *LoopUpdateOne {
	_u.mutation.SetThreadChatID(v)
	return _u
}

// SetNillableThreadChatID sets the "thread_chat_id" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableThreadChatID(v *string) *LoopUpdateOne {
	if v != nil {
		_u.SetThreadChatID(*v)
	}
	return _u
}

// ClearThreadChatID clears the value of the "thread_chat_id" field.
func (_u *LoopUpdateOne) ClearThreadChatID() *LoopUpdateOne {
	_u.mutation.ClearThreadChatID()
	return _u
}

// SetState sets the "state" field.
func (_u *LoopUpdateOne) SetState(v loop.State) *LoopUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableState(v *loop.State) *LoopUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPlanApprovalPolicy sets the "plan_approval_policy" field.
func (_u *LoopUpdateOne) SetPlanApprovalPolicy(v loop.PlanApprovalPolicy) *LoopUpdateOne {
	_u.mutation.SetPlanApprovalPolicy(v)
	return _u
}

// SetNillablePlanApprovalPolicy sets the "plan_approval_policy" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillablePlanApprovalPolicy(v *loop.PlanApprovalPolicy) *LoopUpdateOne {
	if v != nil {
		_u.SetPlanApprovalPolicy(*v)
	}
	return _u
}

// SetCurrentHeadSha sets the "current_head_sha" field.
func (_u *LoopUpdateOne) SetCurrentHeadSha(v string) *LoopUpdateOne {
	_u.mutation.SetCurrentHeadSha(v)
	return _u
}

// SetNillableCurrentHeadSha sets the "current_head_sha" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableCurrentHeadSha(v *string) *LoopUpdateOne {
	if v != nil {
		_u.SetCurrentHeadSha(*v)
	}
	return _u
}

// ClearCurrentHeadSha clears the value of the "current_head_sha" field.
func (_u *LoopUpdateOne) ClearCurrentHeadSha() *LoopUpdateOne {
	_u.mutation.ClearCurrentHeadSha()
	return _u
}

// SetLoopVersion sets the "loop_version" field.
func (_u *LoopUpdateOne) SetLoopVersion(v int) *LoopUpdateOne {
	_u.mutation.ResetLoopVersion()
	_u.mutation.SetLoopVersion(v)
	return _u
}

// SetNillableLoopVersion sets the "loop_version" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableLoopVersion(v *int) *LoopUpdateOne {
	if v != nil {
		_u.SetLoopVersion(*v)
	}
	return _u
}

// AddLoopVersion adds value to the "loop_version" field.
func (_u *LoopUpdateOne) AddLoopVersion(v int) *LoopUpdateOne {
	_u.mutation.AddLoopVersion(v)
	return _u
}

// SetTransitionSeq sets the "transition_seq" field.
func (_u *LoopUpdateOne) SetTransitionSeq(v int) *LoopUpdateOne {
	_u.mutation.ResetTransitionSeq()
	_u.mutation.SetTransitionSeq(v)
	return _u
}

// SetNillableTransitionSeq sets the "transition_seq" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableTransitionSeq(v *int) *LoopUpdateOne {
	if v != nil {
		_u.SetTransitionSeq(*v)
	}
	return _u
}

// AddTransitionSeq adds value to the "transition_seq" field.
func (_u *LoopUpdateOne) AddTransitionSeq(v int) *LoopUpdateOne {
	_u.mutation.AddTransitionSeq(v)
	return _u
}

// SetFixAttemptCount sets the "fix_attempt_count" field.
func (_u *LoopUpdateOne) SetFixAttemptCount(v int) *LoopUpdateOne {
	_u.mutation.ResetFixAttemptCount()
	_u.mutation.SetFixAttemptCount(v)
	return _u
}

// SetNillableFixAttemptCount sets the "fix_attempt_count" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableFixAttemptCount(v *int) *LoopUpdateOne {
	if v != nil {
		_u.SetFixAttemptCount(*v)
	}
	return _u
}

// AddFixAttemptCount adds value to the "fix_attempt_count" field.
func (_u *LoopUpdateOne) AddFixAttemptCount(v int) *LoopUpdateOne {
	_u.mutation.AddFixAttemptCount(v)
	return _u
}

// SetMaxFixAttempts sets the "max_fix_attempts" field.
func (_u *LoopUpdateOne) SetMaxFixAttempts(v int) *LoopUpdateOne {
	_u.mutation.ResetMaxFixAttempts()
	_u.mutation.SetMaxFixAttempts(v)
	return _u
}

// SetNillableMaxFixAttempts sets the "max_fix_attempts" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableMaxFixAttempts(v *int) *LoopUpdateOne {
	if v != nil {
		_u.SetMaxFixAttempts(*v)
	}
	return _u
}

// AddMaxFixAttempts adds value to the "max_fix_attempts" field.
func (_u *LoopUpdateOne) AddMaxFixAttempts(v int) *LoopUpdateOne {
	_u.mutation.AddMaxFixAttempts(v)
	return _u
}

// SetIterationCount sets the "iteration_count" field.
func (_u *LoopUpdateOne) SetIterationCount(v int) *LoopUpdateOne {
	_u.mutation.ResetIterationCount()
	_u.mutation.SetIterationCount(v)
	return _u
}

// SetNillableIterationCount sets the "iteration_count" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableIterationCount(v *int) *LoopUpdateOne {
	if v != nil {
		_u.SetIterationCount(*v)
	}
	return _u
}

// AddIterationCount adds value to the "iteration_count" field.
func (_u *LoopUpdateOne) AddIterationCount(v int) *LoopUpdateOne {
	_u.mutation.AddIterationCount(v)
	return _u
}

// SetCooldownUntil sets the "cooldown_until" field.
func (_u *LoopUpdateOne) SetCooldownUntil(v time.Time) *LoopUpdateOne {
	_u.mutation.SetCooldownUntil(v)
	return _u
}

// SetNillableCooldownUntil sets the "cooldown_until" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableCooldownUntil(v *time.Time) *LoopUpdateOne {
	if v != nil {
		_u.SetCooldownUntil(*v)
	}
	return _u
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (_u *LoopUpdateOne) ClearCooldownUntil() *LoopUpdateOne {
	_u.mutation.ClearCooldownUntil()
	return _u
}

// SetActivePlanArtifactID sets the "active_plan_artifact_id" field.
func (_u *LoopUpdateOne) SetActivePlanArtifactID(v string) *LoopUpdateOne {
	_u.mutation.SetActivePlanArtifactID(v)
	return _u
}

// SetNillableActivePlanArtifactID sets the "active_plan_artifact_id" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableActivePlanArtifactID(v *string) *LoopUpdateOne {
	if v != nil {
		_u.SetActivePlanArtifactID(*v)
	}
	return _u
}

// ClearActivePlanArtifactID clears the value of the "active_plan_artifact_id" field.
func (_u *LoopUpdateOne) ClearActivePlanArtifactID() *LoopUpdateOne {
	_u.mutation.ClearActivePlanArtifactID()
	return _u
}

// SetActiveImplementationArtifactID sets the "active_implementation_artifact_id" field.
func (_u *LoopUpdateOne) SetActiveImplementationArtifactID(v string) *LoopUpdateOne {
	_u.mutation.SetActiveImplementationArtifactID(v)
	return _u
}

// SetNillableActiveImplementationArtifactID sets the "active_implementation_artifact_id" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableActiveImplementationArtifactID(v *string) *LoopUpdateOne {
	if v != nil {
		_u.SetActiveImplementationArtifactID(*v)
	}
	return _u
}

// ClearActiveImplementationArtifactID clears the value of the "active_implementation_artifact_id" field.
func (_u *LoopUpdateOne) ClearActiveImplementationArtifactID() *LoopUpdateOne {
	_u.mutation.ClearActiveImplementationArtifactID()
	return _u
}

// SetActiveReviewArtifactID sets the "active_review_artifact_id" field.
func (_u *LoopUpdateOne) SetActiveReviewArtifactID(v string) *LoopUpdateOne {
	_u.mutation.SetActiveReviewArtifactID(v)
	return _u
}

// SetNillableActiveReviewArtifactID sets the "active_review_artifact_id" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableActiveReviewArtifactID(v *string) *LoopUpdateOne {
	if v != nil {
		_u.SetActiveReviewArtifactID(*v)
	}
	return _u
}

// ClearActiveReviewArtifactID clears the value of the "active_review_artifact_id" field.
func (_u *LoopUpdateOne) ClearActiveReviewArtifactID() *LoopUpdateOne {
	_u.mutation.ClearActiveReviewArtifactID()
	return _u
}

// SetActiveUIArtifactID sets the "active_ui_artifact_id" field.
func (_u *LoopUpdateOne) SetActiveUIArtifactID(v string) *LoopUpdateOne {
	_u.mutation.SetActiveUIArtifactID(v)
	return _u
}

// SetNillableActiveUIArtifactID sets the "active_ui_artifact_id" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableActiveUIArtifactID(v *string) *LoopUpdateOne {
	if v != nil {
		_u.SetActiveUIArtifactID(*v)
	}
	return _u
}

// ClearActiveUIArtifactID clears the value of the "active_ui_artifact_id" field.
func (_u *LoopUpdateOne) ClearActiveUIArtifactID() *LoopUpdateOne {
	_u.mutation.ClearActiveUIArtifactID()
	return _u
}

// SetActiveBabysitArtifactID sets the "active_babysit_artifact_id" field.
func (_u *LoopUpdateOne) SetActiveBabysitArtifactID(v string) *LoopUpdateOne {
	_u.mutation.SetActiveBabysitArtifactID(v)
	return _u
}

// SetNillableActiveBabysitArtifactID sets the "active_babysit_artifact_id" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableActiveBabysitArtifactID(v *string) *LoopUpdateOne {
	if v != nil {
		_u.SetActiveBabysitArtifactID(*v)
	}
	return _u
}

// ClearActiveBabysitArtifactID clears the value of the "active_babysit_artifact_id" field.
func (_u *LoopUpdateOne) ClearActiveBabysitArtifactID() *LoopUpdateOne {
	_u.mutation.ClearActiveBabysitArtifactID()
	return _u
}

// SetCanonicalStatusCommentID sets the "canonical_status_comment_id" field.
func (_u *LoopUpdateOne) SetCanonicalStatusCommentID(v string) *LoopUpdateOne {
	_u.mutation.SetCanonicalStatusCommentID(v)
	return _u
}

// SetNillableCanonicalStatusCommentID sets the "canonical_status_comment_id" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableCanonicalStatusCommentID(v *string) *LoopUpdateOne {
	if v != nil {
		_u.SetCanonicalStatusCommentID(*v)
	}
	return _u
}

// ClearCanonicalStatusCommentID clears the value of the "canonical_status_comment_id" field.
func (_u *LoopUpdateOne) ClearCanonicalStatusCommentID() *LoopUpdateOne {
	_u.mutation.ClearCanonicalStatusCommentID()
	return _u
}

// SetCanonicalCheckRunID sets the "canonical_check_run_id" field.
func (_u *LoopUpdateOne) SetCanonicalCheckRunID(v string) *LoopUpdateOne {
	_u.mutation.SetCanonicalCheckRunID(v)
	return _u
}

// SetNillableCanonicalCheckRunID sets the "canonical_check_run_id" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableCanonicalCheckRunID(v *string) *LoopUpdateOne {
	if v != nil {
		_u.SetCanonicalCheckRunID(*v)
	}
	return _u
}

// ClearCanonicalCheckRunID clears the value of the "canonical_check_run_id" field.
func (_u *LoopUpdateOne) ClearCanonicalCheckRunID() *LoopUpdateOne {
	_u.mutation.ClearCanonicalCheckRunID()
	return _u
}

// SetVideoCaptureStatus sets the "video_capture_status" field.
func (_u *LoopUpdateOne) SetVideoCaptureStatus(v string) *LoopUpdateOne {
	_u.mutation.SetVideoCaptureStatus(v)
	return _u
}

// SetNillableVideoCaptureStatus sets the "video_capture_status" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableVideoCaptureStatus(v *string) *LoopUpdateOne {
	if v != nil {
		_u.SetVideoCaptureStatus(*v)
	}
	return _u
}

// ClearVideoCaptureStatus clears the value of the "video_capture_status" field.
func (_u *LoopUpdateOne) ClearVideoCaptureStatus() *LoopUpdateOne {
	_u.mutation.ClearVideoCaptureStatus()
	return _u
}

// SetLatestVideoArtifactKey sets the "latest_video_artifact_key" field.
func (_u *LoopUpdateOne) SetLatestVideoArtifactKey(v string) *LoopUpdateOne {
	_u.mutation.SetLatestVideoArtifactKey(v)
	return _u
}

// SetNillableLatestVideoArtifactKey sets the "latest_video_artifact_key" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableLatestVideoArtifactKey(v *string) *LoopUpdateOne {
	if v != nil {
		_u.SetLatestVideoArtifactKey(*v)
	}
	return _u
}

// ClearLatestVideoArtifactKey clears the value of the "latest_video_artifact_key" field.
func (_u *LoopUpdateOne) ClearLatestVideoArtifactKey() *LoopUpdateOne {
	_u.mutation.ClearLatestVideoArtifactKey()
	return _u
}

// SetLatestVideoCapturedAt sets the "latest_video_captured_at" field.
func (_u *LoopUpdateOne) SetLatestVideoCapturedAt(v time.Time) *LoopUpdateOne {
	_u.mutation.SetLatestVideoCapturedAt(v)
	return _u
}

// SetNillableLatestVideoCapturedAt sets the "latest_video_captured_at" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableLatestVideoCapturedAt(v *time.Time) *LoopUpdateOne {
	if v != nil {
		_u.SetLatestVideoCapturedAt(*v)
	}
	return _u
}

// ClearLatestVideoCapturedAt clears the value of the "latest_video_captured_at" field.
func (_u *LoopUpdateOne) ClearLatestVideoCapturedAt() *LoopUpdateOne {
	_u.mutation.ClearLatestVideoCapturedAt()
	return _u
}

// SetLatestVideoFailureClass sets the "latest_video_failure_class" field.
func (_u *LoopUpdateOne) SetLatestVideoFailureClass(v string) *LoopUpdateOne {
	_u.mutation.SetLatestVideoFailureClass(v)
	return _u
}

// SetNillableLatestVideoFailureClass sets the "latest_video_failure_class" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableLatestVideoFailureClass(v *string) *LoopUpdateOne {
	if v != nil {
		_u.SetLatestVideoFailureClass(*v)
	}
	return _u
}

// ClearLatestVideoFailureClass clears the value of the "latest_video_failure_class" field.
func (_u *LoopUpdateOne) ClearLatestVideoFailureClass() *LoopUpdateOne {
	_u.mutation.ClearLatestVideoFailureClass()
	return _u
}

// SetLatestVideoFailureMessage sets the "latest_video_failure_message" field.
func (_u *LoopUpdateOne) SetLatestVideoFailureMessage(v string) *LoopUpdateOne {
	_u.mutation.SetLatestVideoFailureMessage(v)
	return _u
}

// SetNillableLatestVideoFailureMessage sets the "latest_video_failure_message" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableLatestVideoFailureMessage(v *string) *LoopUpdateOne {
	if v != nil {
		_u.SetLatestVideoFailureMessage(*v)
	}
	return _u
}

// ClearLatestVideoFailureMessage clears the value of the "latest_video_failure_message" field.
func (_u *LoopUpdateOne) ClearLatestVideoFailureMessage() *LoopUpdateOne {
	_u.mutation.ClearLatestVideoFailureMessage()
	return _u
}

// SetLatestVideoFailedAt sets the "latest_video_failed_at" field.
func (_u *LoopUpdateOne) SetLatestVideoFailedAt(v time.Time) *LoopUpdateOne {
	_u.mutation.SetLatestVideoFailedAt(v)
	return _u
}

// SetNillableLatestVideoFailedAt sets the "latest_video_failed_at" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableLatestVideoFailedAt(v *time.Time) *LoopUpdateOne {
	if v != nil {
		_u.SetLatestVideoFailedAt(*v)
	}
	return _u
}

// ClearLatestVideoFailedAt clears the value of the "latest_video_failed_at" field.
func (_u *LoopUpdateOne) ClearLatestVideoFailedAt() *LoopUpdateOne {
	_u.mutation.ClearLatestVideoFailedAt()
	return _u
}

// SetStopReason sets the "stop_reason" field.
func (_u *LoopUpdateOne) SetStopReason(v string) *LoopUpdateOne {
	_u.mutation.SetStopReason(v)
	return _u
}

// SetNillableStopReason sets the "stop_reason" field if the given value is not nil.
func (_u *LoopUpdateOne) SetNillableStopReason(v *string) *LoopUpdateOne {
	if v != nil {
		_u.SetStopReason(*v)
	}
	return _u
}

// ClearStopReason clears the value of the "stop_reason" field.
func (_u *LoopUpdateOne) ClearStopReason() *LoopUpdateOne {
	_u.mutation.ClearStopReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LoopUpdateOne) SetUpdatedAt(v time.Time) *LoopUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSignalIDs adds the "signals" edge to the InboxSignal entity by IDs.
func (_u *LoopUpdateOne) AddSignalIDs(ids ...string) *LoopUpdateOne {
	_u.mutation.AddSignalIDs(ids...)
	return _u
}

// AddSignals adds the "signals" edges to the InboxSignal entity.
func (_u *LoopUpdateOne) AddSignals(v ...*InboxSignal) *LoopUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSignalIDs(ids...)
}

// AddOutboxActionIDs adds the "outbox_actions" edge to the OutboxAction entity by IDs.
func (_u *LoopUpdateOne) AddOutboxActionIDs(ids ...string) *LoopUpdateOne {
	_u.mutation.AddOutboxActionIDs(ids...)
	return _u
}

// AddOutboxActions adds the "outbox_actions" edges to the OutboxAction entity.
func (_u *LoopUpdateOne) AddOutboxActions(v ...*OutboxAction) *LoopUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutboxActionIDs(ids...)
}

// AddGateRunIDs adds the "gate_runs" edge to the GateRun entity by IDs.
func (_u *LoopUpdateOne) AddGateRunIDs(ids ...string) *LoopUpdateOne {
	_u.mutation.AddGateRunIDs(ids...)
	return _u
}

// AddGateRuns adds the "gate_runs" edges to the GateRun entity.
func (_u *LoopUpdateOne) AddGateRuns(v ...*GateRun) *LoopUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGateRunIDs(ids...)
}

// AddGateFindingIDs adds the "gate_findings" edge to the GateFinding entity by IDs.
func (_u *LoopUpdateOne) AddGateFindingIDs(ids ...string) *LoopUpdateOne {
	_u.mutation.AddGateFindingIDs(ids...)
	return _u
}

// AddGateFindings adds the "gate_findings" edges to the GateFinding entity.
func (_u *LoopUpdateOne) AddGateFindings(v ...*GateFinding) *LoopUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGateFindingIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the PhaseArtifact entity by IDs.
func (_u *LoopUpdateOne) AddArtifactIDs(ids ...string) *LoopUpdateOne {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the PhaseArtifact entity.
func (_u *LoopUpdateOne) AddArtifacts(v ...*PhaseArtifact) *LoopUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// Mutation returns the LoopMutation object of the builder.
func (_u *LoopUpdateOne) Mutation() *LoopMutation {
	return _u.mutation
}

// ClearSignals clears all "signals" edges to the InboxSignal entity.
func (_u *LoopUpdateOne) ClearSignals() *LoopUpdateOne {
	_u.mutation.ClearSignals()
	return _u
}

// RemoveSignalIDs removes the "signals" edge to InboxSignal entities by IDs.
func (_u *LoopUpdateOne) RemoveSignalIDs(ids ...string) *LoopUpdateOne {
	_u.mutation.RemoveSignalIDs(ids...)
	return _u
}

// RemoveSignals removes "signals" edges to InboxSignal entities.
func (_u *LoopUpdateOne) RemoveSignals(v ...*InboxSignal) *LoopUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSignalIDs(ids...)
}

// ClearOutboxActions clears all "outbox_actions" edges to the OutboxAction entity.
func (_u *LoopUpdateOne) ClearOutboxActions() *LoopUpdateOne {
	_u.mutation.ClearOutboxActions()
	return _u
}

// RemoveOutboxActionIDs removes the "outbox_actions" edge to OutboxAction entities by IDs.
func (_u *LoopUpdateOne) RemoveOutboxActionIDs(ids ...string) *LoopUpdateOne {
	_u.mutation.RemoveOutboxActionIDs(ids...)
	return _u
}

// RemoveOutboxActions removes "outbox_actions" edges to OutboxAction entities.
func (_u *LoopUpdateOne) RemoveOutboxActions(v ...*OutboxAction) *LoopUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutboxActionIDs(ids...)
}

// ClearGateRuns clears all "gate_runs" edges to the GateRun entity.
func (_u *LoopUpdateOne) ClearGateRuns() *LoopUpdateOne {
	_u.mutation.ClearGateRuns()
	return _u
}

// RemoveGateRunIDs removes the "gate_runs" edge to GateRun entities by IDs.
func (_u *LoopUpdateOne) RemoveGateRunIDs(ids ...string) *LoopUpdateOne {
	_u.mutation.RemoveGateRunIDs(ids...)
	return _u
}

// RemoveGateRuns removes "gate_runs" edges to GateRun entities.
func (_u *LoopUpdateOne) RemoveGateRuns(v ...*GateRun) *LoopUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGateRunIDs(ids...)
}

// ClearGateFindings clears all "gate_findings" edges to the GateFinding entity.
func (_u *LoopUpdateOne) ClearGateFindings() *LoopUpdateOne {
	_u.mutation.ClearGateFindings()
	return _u
}

// RemoveGateFindingIDs removes the "gate_findings" edge to GateFinding entities by IDs.
func (_u *LoopUpdateOne) RemoveGateFindingIDs(ids ...string) *LoopUpdateOne {
	_u.mutation.RemoveGateFindingIDs(ids...)
	return _u
}

// RemoveGateFindings removes "gate_findings" edges to GateFinding entities.
func (_u *LoopUpdateOne) RemoveGateFindings(v ...*GateFinding) *LoopUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGateFindingIDs(ids...)
}

// ClearArtifacts clears all "artifacts" edges to the PhaseArtifact entity.
func (_u *LoopUpdateOne) ClearArtifacts() *LoopUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to PhaseArtifact entities by IDs.
func (_u *LoopUpdateOne) RemoveArtifactIDs(ids ...string) *LoopUpdateOne {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to PhaseArtifact entities.
func (_u *LoopUpdateOne) RemoveArtifacts(v ...*PhaseArtifact) *LoopUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// Where appends a list predicates to the LoopUpdate builder.
func (_u *LoopUpdateOne) Where(ps ...predicate.Loop) *LoopUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LoopUpdateOne) Select(field string, fields ...string) *LoopUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Loop entity.
func (_u *LoopUpdateOne) Save(ctx context.Context) (*Loop, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LoopUpdateOne) SaveX(ctx context.Context) *Loop {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LoopUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LoopUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LoopUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := loop.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LoopUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := loop.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Loop.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanApprovalPolicy(); ok {
		if err := loop.PlanApprovalPolicyValidator(v); err != nil {
			return &ValidationError{Name: "plan_approval_policy", err: fmt.Errorf(`ent: validator failed for field "Loop.plan_approval_policy": %w`, err)}
		}
	}
	return nil
}

func (_u *LoopUpdateOne) sqlSave(ctx context.Context) (_node *Loop, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(loop.Table, loop.Columns, sqlgraph.NewFieldSpec(loop.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Loop.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, loop.FieldID)
		for _, f := range fields {
			if !loop.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != loop.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(loop.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepoFullName(); ok {
		_spec.SetField(loop.FieldRepoFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrNumber(); ok {
		_spec.SetField(loop.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrNumber(); ok {
		_spec.AddField(loop.FieldPrNumber, field.TypeInt, value)
	}
	if _u.mutation.PrNumberCleared() {
		_spec.ClearField(loop.FieldPrNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(loop.FieldThreadID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThreadChatID(); ok {
		_spec.SetField(loop.FieldThreadChatID, field.TypeString, value)
	}
	if _u.mutation.ThreadChatIDCleared() {
		_spec.ClearField(loop.FieldThreadChatID, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(loop.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PlanApprovalPolicy(); ok {
		_spec.SetField(loop.FieldPlanApprovalPolicy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentHeadSha(); ok {
		_spec.SetField(loop.FieldCurrentHeadSha, field.TypeString, value)
	}
	if _u.mutation.CurrentHeadShaCleared() {
		_spec.ClearField(loop.FieldCurrentHeadSha, field.TypeString)
	}
	if value, ok := _u.mutation.LoopVersion(); ok {
		_spec.SetField(loop.FieldLoopVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLoopVersion(); ok {
		_spec.AddField(loop.FieldLoopVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TransitionSeq(); ok {
		_spec.SetField(loop.FieldTransitionSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTransitionSeq(); ok {
		_spec.AddField(loop.FieldTransitionSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FixAttemptCount(); ok {
		_spec.SetField(loop.FieldFixAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFixAttemptCount(); ok {
		_spec.AddField(loop.FieldFixAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxFixAttempts(); ok {
		_spec.SetField(loop.FieldMaxFixAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxFixAttempts(); ok {
		_spec.AddField(loop.FieldMaxFixAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IterationCount(); ok {
		_spec.SetField(loop.FieldIterationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterationCount(); ok {
		_spec.AddField(loop.FieldIterationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CooldownUntil(); ok {
		_spec.SetField(loop.FieldCooldownUntil, field.TypeTime, value)
	}
	if _u.mutation.CooldownUntilCleared() {
		_spec.ClearField(loop.FieldCooldownUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.ActivePlanArtifactID(); ok {
		_spec.SetField(loop.FieldActivePlanArtifactID, field.TypeString, value)
	}
	if _u.mutation.ActivePlanArtifactIDCleared() {
		_spec.ClearField(loop.FieldActivePlanArtifactID, field.TypeString)
	}
	if value, ok := _u.mutation.ActiveImplementationArtifactID(); ok {
		_spec.SetField(loop.FieldActiveImplementationArtifactID, field.TypeString, value)
	}
	if _u.mutation.ActiveImplementationArtifactIDCleared() {
		_spec.ClearField(loop.FieldActiveImplementationArtifactID, field.TypeString)
	}
	if value, ok := _u.mutation.ActiveReviewArtifactID(); ok {
		_spec.SetField(loop.FieldActiveReviewArtifactID, field.TypeString, value)
	}
	if _u.mutation.ActiveReviewArtifactIDCleared() {
		_spec.ClearField(loop.FieldActiveReviewArtifactID, field.TypeString)
	}
	if value, ok := _u.mutation.ActiveUIArtifactID(); ok {
		_spec.SetField(loop.FieldActiveUIArtifactID, field.TypeString, value)
	}
	if _u.mutation.ActiveUIArtifactIDCleared() {
		_spec.ClearField(loop.FieldActiveUIArtifactID, field.TypeString)
	}
	if value, ok := _u.mutation.ActiveBabysitArtifactID(); ok {
		_spec.SetField(loop.FieldActiveBabysitArtifactID, field.TypeString, value)
	}
	if _u.mutation.ActiveBabysitArtifactIDCleared() {
		_spec.ClearField(loop.FieldActiveBabysitArtifactID, field.TypeString)
	}
	if value, ok := _u.mutation.CanonicalStatusCommentID(); ok {
		_spec.SetField(loop.FieldCanonicalStatusCommentID, field.TypeString, value)
	}
	if _u.mutation.CanonicalStatusCommentIDCleared() {
		_spec.ClearField(loop.FieldCanonicalStatusCommentID, field.TypeString)
	}
	if value, ok := _u.mutation.CanonicalCheckRunID(); ok {
		_spec.SetField(loop.FieldCanonicalCheckRunID, field.TypeString, value)
	}
	if _u.mutation.CanonicalCheckRunIDCleared() {
		_spec.ClearField(loop.FieldCanonicalCheckRunID, field.TypeString)
	}
	if value, ok := _u.mutation.VideoCaptureStatus(); ok {
		_spec.SetField(loop.FieldVideoCaptureStatus, field.TypeString, value)
	}
	if _u.mutation.VideoCaptureStatusCleared() {
		_spec.ClearField(loop.FieldVideoCaptureStatus, field.TypeString)
	}
	if value, ok := _u.mutation.LatestVideoArtifactKey(); ok {
		_spec.SetField(loop.FieldLatestVideoArtifactKey, field.TypeString, value)
	}
	if _u.mutation.LatestVideoArtifactKeyCleared() {
		_spec.ClearField(loop.FieldLatestVideoArtifactKey, field.TypeString)
	}
	if value, ok := _u.mutation.LatestVideoCapturedAt(); ok {
		_spec.SetField(loop.FieldLatestVideoCapturedAt, field.TypeTime, value)
	}
	if _u.mutation.LatestVideoCapturedAtCleared() {
		_spec.ClearField(loop.FieldLatestVideoCapturedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LatestVideoFailureClass(); ok {
		_spec.SetField(loop.FieldLatestVideoFailureClass, field.TypeString, value)
	}
	if _u.mutation.LatestVideoFailureClassCleared() {
		_spec.ClearField(loop.FieldLatestVideoFailureClass, field.TypeString)
	}
	if value, ok := _u.mutation.LatestVideoFailureMessage(); ok {
		_spec.SetField(loop.FieldLatestVideoFailureMessage, field.TypeString, value)
	}
	if _u.mutation.LatestVideoFailureMessageCleared() {
		_spec.ClearField(loop.FieldLatestVideoFailureMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LatestVideoFailedAt(); ok {
		_spec.SetField(loop.FieldLatestVideoFailedAt, field.TypeTime, value)
	}
	if _u.mutation.LatestVideoFailedAtCleared() {
		_spec.ClearField(loop.FieldLatestVideoFailedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StopReason(); ok {
		_spec.SetField(loop.FieldStopReason, field.TypeString, value)
	}
	if _u.mutation.StopReasonCleared() {
		_spec.ClearField(loop.FieldStopReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(loop.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SignalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSignalsIDs(); len(nodes) > 0 && !_u.mutation.SignalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SignalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutboxActionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutboxActionsIDs(); len(nodes) > 0 && !_u.mutation.OutboxActionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutboxActionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GateRunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGateRunsIDs(); len(nodes) > 0 && !_u.mutation.GateRunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GateRunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GateFindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGateFindingsIDs(); len(nodes) > 0 && !_u.mutation.GateFindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GateFindingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Loop{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{loop.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
