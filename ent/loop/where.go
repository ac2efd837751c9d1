// Code generated by ent, DO NOT EDIT.

package loop

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Loop {
	return predicate.Loop(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Loop {
	return predicate.Loop(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldUserID, v))
}

// RepoFullName applies equality check predicate on the "repo_full_name" field. It's identical to RepoFullNameEQ.
func RepoFullName(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldRepoFullName, v))
}

// PrNumber applies equality check predicate on the "pr_number" field. It's identical to PrNumberEQ.
func PrNumber(v int) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldPrNumber, v))
}

// ThreadID applies equality check predicate on the "thread_id" field. It's identical to ThreadIDEQ.
func ThreadID(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldThreadID, v))
}

// ThreadChatID applies equality check predicate on the "thread_chat_id" field. It's identical to ThreadChatIDEQ.
func ThreadChatID(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldThreadChatID, v))
}

// CurrentHeadSha applies equality check predicate on the "current_head_sha" field. It's identical to CurrentHeadShaEQ.
func CurrentHeadSha(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldCurrentHeadSha, v))
}

// LoopVersion applies equality check predicate on the "loop_version" field. It's identical to LoopVersionEQ.
func LoopVersion(v int) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldLoopVersion, v))
}

// TransitionSeq applies equality check predicate on the "transition_seq" field. It's identical to TransitionSeqEQ.
func TransitionSeq(v int) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldTransitionSeq, v))
}

// FixAttemptCount applies equality check predicate on the "fix_attempt_count" field. It's identical to FixAttemptCountEQ.
func FixAttemptCount(v int) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldFixAttemptCount, v))
}

// MaxFixAttempts applies equality check predicate on the "max_fix_attempts" field. It's identical to MaxFixAttemptsEQ.
func MaxFixAttempts(v int) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldMaxFixAttempts, v))
}

// IterationCount applies equality check predicate on the "iteration_count" field. It's identical to IterationCountEQ.
func IterationCount(v int) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldIterationCount, v))
}

// CooldownUntil applies equality check predicate on the "cooldown_until" field. It's identical to CooldownUntilEQ.
func CooldownUntil(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldCooldownUntil, v))
}

// ActivePlanArtifactID applies equality check predicate on the "active_plan_artifact_id" field. It's identical to ActivePlanArtifactIDEQ.
func ActivePlanArtifactID(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldActivePlanArtifactID, v))
}

// ActiveImplementationArtifactID applies equality check predicate on the "active_implementation_artifact_id" field. It's identical to ActiveImplementationArtifactIDEQ.
func ActiveImplementationArtifactID(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldActiveImplementationArtifactID, v))
}

// ActiveReviewArtifactID applies equality check predicate on the "active_review_artifact_id" field. It's identical to ActiveReviewArtifactIDEQ.
func ActiveReviewArtifactID(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldActiveReviewArtifactID, v))
}

// ActiveUIArtifactID applies equality check predicate on the "active_ui_artifact_id" field. It's identical to ActiveUIArtifactIDEQ.
func ActiveUIArtifactID(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldActiveUIArtifactID, v))
}

// ActiveBabysitArtifactID applies equality check predicate on the "active_babysit_artifact_id" field. It's identical to ActiveBabysitArtifactIDEQ.
func ActiveBabysitArtifactID(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldActiveBabysitArtifactID, v))
}

// CanonicalStatusCommentID applies equality check predicate on the "canonical_status_comment_id" field. It's identical to CanonicalStatusCommentIDEQ.
func CanonicalStatusCommentID(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldCanonicalStatusCommentID, v))
}

// CanonicalCheckRunID applies equality check predicate on the "canonical_check_run_id" field. It's identical to CanonicalCheckRunIDEQ.
func CanonicalCheckRunID(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldCanonicalCheckRunID, v))
}

// VideoCaptureStatus applies equality check predicate on the "video_capture_status" field. It's identical to VideoCaptureStatusEQ.
func VideoCaptureStatus(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldVideoCaptureStatus, v))
}

// LatestVideoArtifactKey applies equality check predicate on the "latest_video_artifact_key" field. It's identical to LatestVideoArtifactKeyEQ.
func LatestVideoArtifactKey(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldLatestVideoArtifactKey, v))
}

// LatestVideoCapturedAt applies equality check predicate on the "latest_video_captured_at" field. It's identical to LatestVideoCapturedAtEQ.
func LatestVideoCapturedAt(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldLatestVideoCapturedAt, v))
}

// LatestVideoFailureClass applies equality check predicate on the "latest_video_failure_class" field. It's identical to LatestVideoFailureClassEQ.
func LatestVideoFailureClass(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldLatestVideoFailureClass, v))
}

// LatestVideoFailureMessage applies equality check predicate on the "latest_video_failure_message" field. It's identical to LatestVideoFailureMessageEQ.
func LatestVideoFailureMessage(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldLatestVideoFailureMessage, v))
}

// LatestVideoFailedAt applies equality check predicate on the "latest_video_failed_at" field. It's identical to LatestVideoFailedAtEQ.
func LatestVideoFailedAt(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldLatestVideoFailedAt, v))
}

// StopReason applies equality check predicate on the "stop_reason" field. It's identical to StopReasonEQ.
func StopReason(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldStopReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContainsFold(FieldUserID, v))
}

// RepoFullNameEQ applies the EQ predicate on the "repo_full_name" field.
func RepoFullNameEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldRepoFullName, v))
}

// RepoFullNameNEQ applies the NEQ predicate on the "repo_full_name" field.
func RepoFullNameNEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldRepoFullName, v))
}

// RepoFullNameIn applies the In predicate on the "repo_full_name" field.
func RepoFullNameIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldRepoFullName, vs...))
}

// RepoFullNameNotIn applies the NotIn predicate on the "repo_full_name" field.
func RepoFullNameNotIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldRepoFullName, vs...))
}

// RepoFullNameGT applies the GT predicate on the "repo_full_name" field.
func RepoFullNameGT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldRepoFullName, v))
}

// RepoFullNameGTE applies the GTE predicate on the "repo_full_name" field.
func RepoFullNameGTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldRepoFullName, v))
}

// RepoFullNameLT applies the LT predicate on the "repo_full_name" field.
func RepoFullNameLT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldRepoFullName, v))
}

// RepoFullNameLTE applies the LTE predicate on the "repo_full_name" field.
func RepoFullNameLTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldRepoFullName, v))
}

// RepoFullNameContains applies the Contains predicate on the "repo_full_name" field.
func RepoFullNameContains(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContains(FieldRepoFullName, v))
}

// RepoFullNameHasPrefix applies the HasPrefix predicate on the "repo_full_name" field.
func RepoFullNameHasPrefix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasPrefix(FieldRepoFullName, v))
}

// RepoFullNameHasSuffix applies the HasSuffix predicate on the "repo_full_name" field.
func RepoFullNameHasSuffix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasSuffix(FieldRepoFullName, v))
}

// RepoFullNameEqualFold applies the EqualFold predicate on the "repo_full_name" field.
func RepoFullNameEqualFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEqualFold(FieldRepoFullName, v))
}

// RepoFullNameContainsFold applies the ContainsFold predicate on the "repo_full_name" field.
func RepoFullNameContainsFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContainsFold(FieldRepoFullName, v))
}

// PrNumberEQ applies the EQ predicate on the "pr_number" field.
func PrNumberEQ(v int) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldPrNumber, v))
}

// PrNumberNEQ applies the NEQ predicate on the "pr_number" field.
func PrNumberNEQ(v int) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldPrNumber, v))
}

// PrNumberIn applies the In predicate on the "pr_number" field.
func PrNumberIn(vs ...int) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldPrNumber, vs...))
}

// PrNumberNotIn applies the NotIn predicate on the "pr_number" field.
func PrNumberNotIn(vs ...int) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldPrNumber, vs...))
}

// PrNumberGT applies the GT predicate on the "pr_number" field.
func PrNumberGT(v int) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldPrNumber, v))
}

// PrNumberGTE applies the GTE predicate on the "pr_number" field.
func PrNumberGTE(v int) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldPrNumber, v))
}

// PrNumberLT applies the LT predicate on the "pr_number" field.
func PrNumberLT(v int) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldPrNumber, v))
}

// PrNumberLTE applies the LTE predicate on the "pr_number" field.
func PrNumberLTE(v int) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldPrNumber, v))
}

// PrNumberIsNil applies the IsNil predicate on the "pr_number" field.
func PrNumberIsNil() predicate.Loop {
	return predicate.Loop(sql.FieldIsNull(FieldPrNumber))
}

// PrNumberNotNil applies the NotNil predicate on the "pr_number" field.
func PrNumberNotNil() predicate.Loop {
	return predicate.Loop(sql.FieldNotNull(FieldPrNumber))
}

// ThreadIDEQ applies the EQ predicate on the "thread_id" field.
func ThreadIDEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldThreadID, v))
}

// ThreadIDNEQ applies the NEQ predicate on the "thread_id" field.
func ThreadIDNEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldThreadID, v))
}

// ThreadIDIn applies the In predicate on the "thread_id" field.
func ThreadIDIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldThreadID, vs...))
}

// ThreadIDNotIn applies the NotIn predicate on the "thread_id" field.
func ThreadIDNotIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldThreadID, vs...))
}

// ThreadIDGT applies the GT predicate on the "thread_id" field.
func ThreadIDGT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldThreadID, v))
}

// ThreadIDGTE applies the GTE predicate on the "thread_id" field.
func ThreadIDGTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldThreadID, v))
}

// ThreadIDLT applies the LT predicate on the "thread_id" field.
func ThreadIDLT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldThreadID, v))
}

// ThreadIDLTE applies the LTE predicate on the "thread_id" field.
func ThreadIDLTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldThreadID, v))
}

// ThreadIDContains applies the Contains predicate on the "thread_id" field.
func ThreadIDContains(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContains(FieldThreadID, v))
}

// ThreadIDHasPrefix applies the HasPrefix predicate on the "thread_id" field.
func ThreadIDHasPrefix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasPrefix(FieldThreadID, v))
}

// ThreadIDHasSuffix applies the HasSuffix predicate on the "thread_id" field.
func ThreadIDHasSuffix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasSuffix(FieldThreadID, v))
}

// ThreadIDEqualFold applies the EqualFold predicate on the "thread_id" field.
func ThreadIDEqualFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEqualFold(FieldThreadID, v))
}

// ThreadIDContainsFold applies the ContainsFold predicate on the "thread_id" field.
func ThreadIDContainsFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContainsFold(FieldThreadID, v))
}

// ThreadChatIDEQ applies the EQ predicate on the "thread_chat_id" field.
func ThreadChatIDEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldThreadChatID, v))
}

// ThreadChatIDNEQ applies the NEQ predicate on the "thread_chat_id" field.
func ThreadChatIDNEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldThreadChatID, v))
}

// ThreadChatIDIn applies the In predicate on the "thread_chat_id" field.
func ThreadChatIDIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldThreadChatID, vs...))
}

// ThreadChatIDNotIn applies the NotIn predicate on the "thread_chat_id" field.
func ThreadChatIDNotIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldThreadChatID, vs...))
}

// ThreadChatIDGT applies the GT predicate on the "thread_chat_id" field.
func ThreadChatIDGT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldThreadChatID, v))
}

// ThreadChatIDGTE applies the GTE predicate on the "thread_chat_id" field.
func ThreadChatIDGTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldThreadChatID, v))
}

// ThreadChatIDLT applies the LT predicate on the "thread_chat_id" field.
func ThreadChatIDLT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldThreadChatID, v))
}

// ThreadChatIDLTE applies the LTE predicate on the "thread_chat_id" field.
func ThreadChatIDLTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldThreadChatID, v))
}

// ThreadChatIDContains applies the Contains predicate on the "thread_chat_id" field.
func ThreadChatIDContains(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContains(FieldThreadChatID, v))
}

// ThreadChatIDHasPrefix applies the HasPrefix predicate on the "thread_chat_id" field.
func ThreadChatIDHasPrefix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasPrefix(FieldThreadChatID, v))
}

// ThreadChatIDHasSuffix applies the HasSuffix predicate on the "thread_chat_id" field.
func ThreadChatIDHasSuffix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasSuffix(FieldThreadChatID, v))
}

// ThreadChatIDIsNil applies the IsNil predicate on the "thread_chat_id" field.
func ThreadChatIDIsNil() predicate.Loop {
	return predicate.Loop(sql.FieldIsNull(FieldThreadChatID))
}

// ThreadChatIDNotNil applies the NotNil predicate on the "thread_chat_id" field.
func ThreadChatIDNotNil() predicate.Loop {
	return predicate.Loop(sql.FieldNotNull(FieldThreadChatID))
}

// ThreadChatIDEqualFold applies the EqualFold predicate on the "thread_chat_id" field.
func ThreadChatIDEqualFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEqualFold(FieldThreadChatID, v))
}

// ThreadChatIDContainsFold applies the ContainsFold predicate on the "thread_chat_id" field.
func ThreadChatIDContainsFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContainsFold(FieldThreadChatID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldState, vs...))
}

// PlanApprovalPolicyEQ applies the EQ predicate on the "plan_approval_policy" field.
func PlanApprovalPolicyEQ(v PlanApprovalPolicy) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldPlanApprovalPolicy, v))
}

// PlanApprovalPolicyNEQ applies the NEQ predicate on the "plan_approval_policy" field.
func PlanApprovalPolicyNEQ(v PlanApprovalPolicy) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldPlanApprovalPolicy, v))
}

// PlanApprovalPolicyIn applies the In predicate on the "plan_approval_policy" field.
func PlanApprovalPolicyIn(vs ...PlanApprovalPolicy) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldPlanApprovalPolicy, vs...))
}

// PlanApprovalPolicyNotIn applies the NotIn predicate on the "plan_approval_policy" field.
func PlanApprovalPolicyNotIn(vs ...PlanApprovalPolicy) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldPlanApprovalPolicy, vs...))
}

// CurrentHeadShaEQ applies the EQ predicate on the "current_head_sha" field.
func CurrentHeadShaEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldCurrentHeadSha, v))
}

// CurrentHeadShaNEQ applies the NEQ predicate on the "current_head_sha" field.
func CurrentHeadShaNEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldCurrentHeadSha, v))
}

// CurrentHeadShaIn applies the In predicate on the "current_head_sha" field.
func CurrentHeadShaIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldCurrentHeadSha, vs...))
}

// CurrentHeadShaNotIn applies the NotIn predicate on the "current_head_sha" field.
func CurrentHeadShaNotIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldCurrentHeadSha, vs...))
}

// CurrentHeadShaGT applies the GT predicate on the "current_head_sha" field.
func CurrentHeadShaGT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldCurrentHeadSha, v))
}

// CurrentHeadShaGTE applies the GTE predicate on the "current_head_sha" field.
func CurrentHeadShaGTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldCurrentHeadSha, v))
}

// CurrentHeadShaLT applies the LT predicate on the "current_head_sha" field.
func CurrentHeadShaLT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldCurrentHeadSha, v))
}

// CurrentHeadShaLTE applies the LTE predicate on the "current_head_sha" field.
func CurrentHeadShaLTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldCurrentHeadSha, v))
}

// CurrentHeadShaContains applies the Contains predicate on the "current_head_sha" field.
func CurrentHeadShaContains(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContains(FieldCurrentHeadSha, v))
}

// CurrentHeadShaHasPrefix applies the HasPrefix predicate on the "current_head_sha" field.
func CurrentHeadShaHasPrefix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasPrefix(FieldCurrentHeadSha, v))
}

// CurrentHeadShaHasSuffix applies the HasSuffix predicate on the "current_head_sha" field.
func CurrentHeadShaHasSuffix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasSuffix(FieldCurrentHeadSha, v))
}

// CurrentHeadShaIsNil applies the IsNil predicate on the "current_head_sha" field.
func CurrentHeadShaIsNil() predicate.Loop {
	return predicate.Loop(sql.FieldIsNull(FieldCurrentHeadSha))
}

// CurrentHeadShaNotNil applies the NotNil predicate on the "current_head_sha" field.
func CurrentHeadShaNotNil() predicate.Loop {
	return predicate.Loop(sql.FieldNotNull(FieldCurrentHeadSha))
}

// CurrentHeadShaEqualFold applies the EqualFold predicate on the "current_head_sha" field.
func CurrentHeadShaEqualFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEqualFold(FieldCurrentHeadSha, v))
}

// CurrentHeadShaContainsFold applies the ContainsFold predicate on the "current_head_sha" field.
func CurrentHeadShaContainsFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContainsFold(FieldCurrentHeadSha, v))
}

// LoopVersionEQ applies the EQ predicate on the "loop_version" field.
func LoopVersionEQ(v int) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldLoopVersion, v))
}

// LoopVersionNEQ applies the NEQ predicate on the "loop_version" field.
func LoopVersionNEQ(v int) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldLoopVersion, v))
}

// LoopVersionIn applies the In predicate on the "loop_version" field.
func LoopVersionIn(vs ...int) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldLoopVersion, vs...))
}

// LoopVersionNotIn applies the NotIn predicate on the "loop_version" field.
func LoopVersionNotIn(vs ...int) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldLoopVersion, vs...))
}

// LoopVersionGT applies the GT predicate on the "loop_version" field.
func LoopVersionGT(v int) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldLoopVersion, v))
}

// LoopVersionGTE applies the GTE predicate on the "loop_version" field.
func LoopVersionGTE(v int) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldLoopVersion, v))
}

// LoopVersionLT applies the LT predicate on the "loop_version" field.
func LoopVersionLT(v int) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldLoopVersion, v))
}

// LoopVersionLTE applies the LTE predicate on the "loop_version" field.
func LoopVersionLTE(v int) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldLoopVersion, v))
}

// TransitionSeqEQ applies the EQ predicate on the "transition_seq" field.
func TransitionSeqEQ(v int) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldTransitionSeq, v))
}

// TransitionSeqNEQ applies the NEQ predicate on the "transition_seq" field.
func TransitionSeqNEQ(v int) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldTransitionSeq, v))
}

// TransitionSeqIn applies the In predicate on the "transition_seq" field.
func TransitionSeqIn(vs ...int) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldTransitionSeq, vs...))
}

// TransitionSeqNotIn applies the NotIn predicate on the "transition_seq" field.
func TransitionSeqNotIn(vs ...int) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldTransitionSeq, vs...))
}

// TransitionSeqGT applies the GT predicate on the "transition_seq" field.
func TransitionSeqGT(v int) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldTransitionSeq, v))
}

// TransitionSeqGTE applies the GTE predicate on the "transition_seq" field.
func TransitionSeqGTE(v int) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldTransitionSeq, v))
}

// TransitionSeqLT applies the LT predicate on the "transition_seq" field.
func TransitionSeqLT(v int) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldTransitionSeq, v))
}

// TransitionSeqLTE applies the LTE predicate on the "transition_seq" field.
func TransitionSeqLTE(v int) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldTransitionSeq, v))
}

// FixAttemptCountEQ applies the EQ predicate on the "fix_attempt_count" field.
func FixAttemptCountEQ(v int) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldFixAttemptCount, v))
}

// FixAttemptCountNEQ applies the NEQ predicate on the "fix_attempt_count" field.
func FixAttemptCountNEQ(v int) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldFixAttemptCount, v))
}

// FixAttemptCountIn applies the In predicate on the "fix_attempt_count" field.
func FixAttemptCountIn(vs ...int) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldFixAttemptCount, vs...))
}

// FixAttemptCountNotIn applies the NotIn predicate on the "fix_attempt_count" field.
func FixAttemptCountNotIn(vs ...int) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldFixAttemptCount, vs...))
}

// FixAttemptCountGT applies the GT predicate on the "fix_attempt_count" field.
func FixAttemptCountGT(v int) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldFixAttemptCount, v))
}

// FixAttemptCountGTE applies the GTE predicate on the "fix_attempt_count" field.
func FixAttemptCountGTE(v int) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldFixAttemptCount, v))
}

// FixAttemptCountLT applies the LT predicate on the "fix_attempt_count" field.
func FixAttemptCountLT(v int) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldFixAttemptCount, v))
}

// FixAttemptCountLTE applies the LTE predicate on the "fix_attempt_count" field.
func FixAttemptCountLTE(v int) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldFixAttemptCount, v))
}

// MaxFixAttemptsEQ applies the EQ predicate on the "max_fix_attempts" field.
func MaxFixAttemptsEQ(v int) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldMaxFixAttempts, v))
}

// MaxFixAttemptsNEQ applies the NEQ predicate on the "max_fix_attempts" field.
func MaxFixAttemptsNEQ(v int) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldMaxFixAttempts, v))
}

// MaxFixAttemptsIn applies the In predicate on the "max_fix_attempts" field.
func MaxFixAttemptsIn(vs ...int) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldMaxFixAttempts, vs...))
}

// MaxFixAttemptsNotIn applies the NotIn predicate on the "max_fix_attempts" field.
func MaxFixAttemptsNotIn(vs ...int) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldMaxFixAttempts, vs...))
}

// MaxFixAttemptsGT applies the GT predicate on the "max_fix_attempts" field.
func MaxFixAttemptsGT(v int) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldMaxFixAttempts, v))
}

// MaxFixAttemptsGTE applies the GTE predicate on the "max_fix_attempts" field.
func MaxFixAttemptsGTE(v int) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldMaxFixAttempts, v))
}

// MaxFixAttemptsLT applies the LT predicate on the "max_fix_attempts" field.
func MaxFixAttemptsLT(v int) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldMaxFixAttempts, v))
}

// MaxFixAttemptsLTE applies the LTE predicate on the "max_fix_attempts" field.
func MaxFixAttemptsLTE(v int) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldMaxFixAttempts, v))
}

// IterationCountEQ applies the EQ predicate on the "iteration_count" field.
func IterationCountEQ(v int) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldIterationCount, v))
}

// IterationCountNEQ applies the NEQ predicate on the "iteration_count" field.
func IterationCountNEQ(v int) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldIterationCount, v))
}

// IterationCountIn applies the In predicate on the "iteration_count" field.
func IterationCountIn(vs ...int) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldIterationCount, vs...))
}

// IterationCountNotIn applies the NotIn predicate on the "iteration_count" field.
func IterationCountNotIn(vs ...int) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldIterationCount, vs...))
}

// IterationCountGT applies the GT predicate on the "iteration_count" field.
func IterationCountGT(v int) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldIterationCount, v))
}

// IterationCountGTE applies the GTE predicate on the "iteration_count" field.
func IterationCountGTE(v int) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldIterationCount, v))
}

// IterationCountLT applies the LT predicate on the "iteration_count" field.
func IterationCountLT(v int) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldIterationCount, v))
}

// IterationCountLTE applies the LTE predicate on the "iteration_count" field.
func IterationCountLTE(v int) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldIterationCount, v))
}

// CooldownUntilEQ applies the EQ predicate on the "cooldown_until" field.
func CooldownUntilEQ(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldCooldownUntil, v))
}

// CooldownUntilNEQ applies the NEQ predicate on the "cooldown_until" field.
func CooldownUntilNEQ(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldCooldownUntil, v))
}

// CooldownUntilIn applies the In predicate on the "cooldown_until" field.
func CooldownUntilIn(vs ...time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldCooldownUntil, vs...))
}

// CooldownUntilNotIn applies the NotIn predicate on the "cooldown_until" field.
func CooldownUntilNotIn(vs ...time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldCooldownUntil, vs...))
}

// CooldownUntilGT applies the GT predicate on the "cooldown_until" field.
func CooldownUntilGT(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldCooldownUntil, v))
}

// CooldownUntilGTE applies the GTE predicate on the "cooldown_until" field.
func CooldownUntilGTE(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldCooldownUntil, v))
}

// CooldownUntilLT applies the LT predicate on the "cooldown_until" field.
func CooldownUntilLT(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldCooldownUntil, v))
}

// CooldownUntilLTE applies the LTE predicate on the "cooldown_until" field.
func CooldownUntilLTE(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldCooldownUntil, v))
}

// CooldownUntilIsNil applies the IsNil predicate on the "cooldown_until" field.
func CooldownUntilIsNil() predicate.Loop {
	return predicate.Loop(sql.FieldIsNull(FieldCooldownUntil))
}

// CooldownUntilNotNil applies the NotNil predicate on the "cooldown_until" field.
func CooldownUntilNotNil() predicate.Loop {
	return predicate.Loop(sql.FieldNotNull(FieldCooldownUntil))
}

// ActivePlanArtifactIDEQ applies the EQ predicate on the "active_plan_artifact_id" field.
func ActivePlanArtifactIDEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldActivePlanArtifactID, v))
}

// ActivePlanArtifactIDNEQ applies the NEQ predicate on the "active_plan_artifact_id" field.
func ActivePlanArtifactIDNEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldActivePlanArtifactID, v))
}

// ActivePlanArtifactIDIn applies the In predicate on the "active_plan_artifact_id" field.
func ActivePlanArtifactIDIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldActivePlanArtifactID, vs...))
}

// ActivePlanArtifactIDNotIn applies the NotIn predicate on the "active_plan_artifact_id" field.
func ActivePlanArtifactIDNotIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldActivePlanArtifactID, vs...))
}

// ActivePlanArtifactIDGT applies the GT predicate on the "active_plan_artifact_id" field.
func ActivePlanArtifactIDGT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldActivePlanArtifactID, v))
}

// ActivePlanArtifactIDGTE applies the GTE predicate on the "active_plan_artifact_id" field.
func ActivePlanArtifactIDGTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldActivePlanArtifactID, v))
}

// ActivePlanArtifactIDLT applies the LT predicate on the "active_plan_artifact_id" field.
func ActivePlanArtifactIDLT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldActivePlanArtifactID, v))
}

// ActivePlanArtifactIDLTE applies the LTE predicate on the "active_plan_artifact_id" field.
func ActivePlanArtifactIDLTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldActivePlanArtifactID, v))
}

// ActivePlanArtifactIDContains applies the Contains predicate on the "active_plan_artifact_id" field.
func ActivePlanArtifactIDContains(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContains(FieldActivePlanArtifactID, v))
}

// ActivePlanArtifactIDHasPrefix applies the HasPrefix predicate on the "active_plan_artifact_id" field.
func ActivePlanArtifactIDHasPrefix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasPrefix(FieldActivePlanArtifactID, v))
}

// ActivePlanArtifactIDHasSuffix applies the HasSuffix predicate on the "active_plan_artifact_id" field.
func ActivePlanArtifactIDHasSuffix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasSuffix(FieldActivePlanArtifactID, v))
}

// ActivePlanArtifactIDIsNil applies the IsNil predicate on the "active_plan_artifact_id" field.
func ActivePlanArtifactIDIsNil() predicate.Loop {
	return predicate.Loop(sql.FieldIsNull(FieldActivePlanArtifactID))
}

// ActivePlanArtifactIDNotNil applies the NotNil predicate on the "active_plan_artifact_id" field.
func ActivePlanArtifactIDNotNil() predicate.Loop {
	return predicate.Loop(sql.FieldNotNull(FieldActivePlanArtifactID))
}

// ActivePlanArtifactIDEqualFold applies the EqualFold predicate on the "active_plan_artifact_id" field.
func ActivePlanArtifactIDEqualFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEqualFold(FieldActivePlanArtifactID, v))
}

// ActivePlanArtifactIDContainsFold applies the ContainsFold predicate on the "active_plan_artifact_id" field.
func ActivePlanArtifactIDContainsFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContainsFold(FieldActivePlanArtifactID, v))
}

// ActiveImplementationArtifactIDEQ applies the EQ predicate on the "active_implementation_artifact_id" field.
func ActiveImplementationArtifactIDEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldActiveImplementationArtifactID, v))
}

// ActiveImplementationArtifactIDNEQ applies the NEQ predicate on the "active_implementation_artifact_id" field.
func ActiveImplementationArtifactIDNEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldActiveImplementationArtifactID, v))
}

// ActiveImplementationArtifactIDIn applies the In predicate on the "active_implementation_artifact_id" field.
func ActiveImplementationArtifactIDIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldActiveImplementationArtifactID, vs...))
}

// ActiveImplementationArtifactIDNotIn applies the NotIn predicate on the "active_implementation_artifact_id" field.
func ActiveImplementationArtifactIDNotIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldActiveImplementationArtifactID, vs...))
}

// ActiveImplementationArtifactIDGT applies the GT predicate on the "active_implementation_artifact_id" field.
func ActiveImplementationArtifactIDGT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldActiveImplementationArtifactID, v))
}

// ActiveImplementationArtifactIDGTE applies the GTE predicate on the "active_implementation_artifact_id" field.
func ActiveImplementationArtifactIDGTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldActiveImplementationArtifactID, v))
}

// ActiveImplementationArtifactIDLT applies the LT predicate on the "active_implementation_artifact_id" field.
func ActiveImplementationArtifactIDLT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldActiveImplementationArtifactID, v))
}

// ActiveImplementationArtifactIDLTE applies the LTE predicate on the "active_implementation_artifact_id" field.
func ActiveImplementationArtifactIDLTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldActiveImplementationArtifactID, v))
}

// ActiveImplementationArtifactIDContains applies the Contains predicate on the "active_implementation_artifact_id" field.
func ActiveImplementationArtifactIDContains(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContains(FieldActiveImplementationArtifactID, v))
}

// ActiveImplementationArtifactIDHasPrefix applies the HasPrefix predicate on the "active_implementation_artifact_id" field.
func ActiveImplementationArtifactIDHasPrefix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasPrefix(FieldActiveImplementationArtifactID, v))
}

// ActiveImplementationArtifactIDHasSuffix applies the HasSuffix predicate on the "active_implementation_artifact_id" field.
func ActiveImplementationArtifactIDHasSuffix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasSuffix(FieldActiveImplementationArtifactID, v))
}

// ActiveImplementationArtifactIDIsNil applies the IsNil predicate on the "active_implementation_artifact_id" field.
func ActiveImplementationArtifactIDIsNil() predicate.Loop {
	return predicate.Loop(sql.FieldIsNull(FieldActiveImplementationArtifactID))
}

// ActiveImplementationArtifactIDNotNil applies the NotNil predicate on the "active_implementation_artifact_id" field.
func ActiveImplementationArtifactIDNotNil() predicate.Loop {
	return predicate.Loop(sql.FieldNotNull(FieldActiveImplementationArtifactID))
}

// ActiveImplementationArtifactIDEqualFold applies the EqualFold predicate on the "active_implementation_artifact_id" field.
func ActiveImplementationArtifactIDEqualFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEqualFold(FieldActiveImplementationArtifactID, v))
}

// ActiveImplementationArtifactIDContainsFold applies the ContainsFold predicate on the "active_implementation_artifact_id" field.
func ActiveImplementationArtifactIDContainsFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContainsFold(FieldActiveImplementationArtifactID, v))
}

// ActiveReviewArtifactIDEQ applies the EQ predicate on the "active_review_artifact_id" field.
func ActiveReviewArtifactIDEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldActiveReviewArtifactID, v))
}

// ActiveReviewArtifactIDNEQ applies the NEQ predicate on the "active_review_artifact_id" field.
func ActiveReviewArtifactIDNEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldActiveReviewArtifactID, v))
}

// ActiveReviewArtifactIDIn applies the In predicate on the "active_review_artifact_id" field.
func ActiveReviewArtifactIDIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldActiveReviewArtifactID, vs...))
}

// ActiveReviewArtifactIDNotIn applies the NotIn predicate on the "active_review_artifact_id" field.
func ActiveReviewArtifactIDNotIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldActiveReviewArtifactID, vs...))
}

// ActiveReviewArtifactIDGT applies the GT predicate on the "active_review_artifact_id" field.
func ActiveReviewArtifactIDGT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldActiveReviewArtifactID, v))
}

// ActiveReviewArtifactIDGTE applies the GTE predicate on the "active_review_artifact_id" field.
func ActiveReviewArtifactIDGTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldActiveReviewArtifactID, v))
}

// ActiveReviewArtifactIDLT applies the LT predicate on the "active_review_artifact_id" field.
func ActiveReviewArtifactIDLT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldActiveReviewArtifactID, v))
}

// ActiveReviewArtifactIDLTE applies the LTE predicate on the "active_review_artifact_id" field.
func ActiveReviewArtifactIDLTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldActiveReviewArtifactID, v))
}

// ActiveReviewArtifactIDContains applies the Contains predicate on the "active_review_artifact_id" field.
func ActiveReviewArtifactIDContains(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContains(FieldActiveReviewArtifactID, v))
}

// ActiveReviewArtifactIDHasPrefix applies the HasPrefix predicate on the "active_review_artifact_id" field.
func ActiveReviewArtifactIDHasPrefix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasPrefix(FieldActiveReviewArtifactID, v))
}

// ActiveReviewArtifactIDHasSuffix applies the HasSuffix predicate on the "active_review_artifact_id" field.
func ActiveReviewArtifactIDHasSuffix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasSuffix(FieldActiveReviewArtifactID, v))
}

// ActiveReviewArtifactIDIsNil applies the IsNil predicate on the "active_review_artifact_id" field.
func ActiveReviewArtifactIDIsNil() predicate.Loop {
	return predicate.Loop(sql.FieldIsNull(FieldActiveReviewArtifactID))
}

// ActiveReviewArtifactIDNotNil applies the NotNil predicate on the "active_review_artifact_id" field.
func ActiveReviewArtifactIDNotNil() predicate.Loop {
	return predicate.Loop(sql.FieldNotNull(FieldActiveReviewArtifactID))
}

// ActiveReviewArtifactIDEqualFold applies the EqualFold predicate on the "active_review_artifact_id" field.
func ActiveReviewArtifactIDEqualFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEqualFold(FieldActiveReviewArtifactID, v))
}

// ActiveReviewArtifactIDContainsFold applies the ContainsFold predicate on the "active_review_artifact_id" field.
func ActiveReviewArtifactIDContainsFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContainsFold(FieldActiveReviewArtifactID, v))
}

// ActiveUIArtifactIDEQ applies the EQ predicate on the "active_ui_artifact_id" field.
func ActiveUIArtifactIDEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldActiveUIArtifactID, v))
}

// ActiveUIArtifactIDNEQ applies the NEQ predicate on the "active_ui_artifact_id" field.
func ActiveUIArtifactIDNEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldActiveUIArtifactID, v))
}

// ActiveUIArtifactIDIn applies the In predicate on the "active_ui_artifact_id" field.
func ActiveUIArtifactIDIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldActiveUIArtifactID, vs...))
}

// ActiveUIArtifactIDNotIn applies the NotIn predicate on the "active_ui_artifact_id" field.
func ActiveUIArtifactIDNotIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldActiveUIArtifactID, vs...))
}

// ActiveUIArtifactIDGT applies the GT predicate on the "active_ui_artifact_id" field.
func ActiveUIArtifactIDGT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldActiveUIArtifactID, v))
}

// ActiveUIArtifactIDGTE applies the GTE predicate on the "active_ui_artifact_id" field.
func ActiveUIArtifactIDGTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldActiveUIArtifactID, v))
}

// ActiveUIArtifactIDLT applies the LT predicate on the "active_ui_artifact_id" field.
func ActiveUIArtifactIDLT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldActiveUIArtifactID, v))
}

// ActiveUIArtifactIDLTE applies the LTE predicate on the "active_ui_artifact_id" field.
func ActiveUIArtifactIDLTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldActiveUIArtifactID, v))
}

// ActiveUIArtifactIDContains applies the Contains predicate on the "active_ui_artifact_id" field.
func ActiveUIArtifactIDContains(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContains(FieldActiveUIArtifactID, v))
}

// ActiveUIArtifactIDHasPrefix applies the HasPrefix predicate on the "active_ui_artifact_id" field.
func ActiveUIArtifactIDHasPrefix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasPrefix(FieldActiveUIArtifactID, v))
}

// ActiveUIArtifactIDHasSuffix applies the HasSuffix predicate on the "active_ui_artifact_id" field.
func ActiveUIArtifactIDHasSuffix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasSuffix(FieldActiveUIArtifactID, v))
}

// ActiveUIArtifactIDIsNil applies the IsNil predicate on the "active_ui_artifact_id" field.
func ActiveUIArtifactIDIsNil() predicate.Loop {
	return predicate.Loop(sql.FieldIsNull(FieldActiveUIArtifactID))
}

// ActiveUIArtifactIDNotNil applies the NotNil predicate on the "active_ui_artifact_id" field.
func ActiveUIArtifactIDNotNil() predicate.Loop {
	return predicate.Loop(sql.FieldNotNull(FieldActiveUIArtifactID))
}

// ActiveUIArtifactIDEqualFold applies the EqualFold predicate on the "active_ui_artifact_id" field.
func ActiveUIArtifactIDEqualFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEqualFold(FieldActiveUIArtifactID, v))
}

// ActiveUIArtifactIDContainsFold applies the ContainsFold predicate on the "active_ui_artifact_id" field.
func ActiveUIArtifactIDContainsFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContainsFold(FieldActiveUIArtifactID, v))
}

// ActiveBabysitArtifactIDEQ applies the EQ predicate on the "active_babysit_artifact_id" field.
func ActiveBabysitArtifactIDEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldActiveBabysitArtifactID, v))
}

// ActiveBabysitArtifactIDNEQ applies the NEQ predicate on the "active_babysit_artifact_id" field.
func ActiveBabysitArtifactIDNEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldActiveBabysitArtifactID, v))
}

// ActiveBabysitArtifactIDIn applies the In predicate on the "active_babysit_artifact_id" field.
func ActiveBabysitArtifactIDIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldActiveBabysitArtifactID, vs...))
}

// ActiveBabysitArtifactIDNotIn applies the NotIn predicate on the "active_babysit_artifact_id" field.
func ActiveBabysitArtifactIDNotIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldActiveBabysitArtifactID, vs...))
}

// ActiveBabysitArtifactIDGT applies the GT predicate on the "active_babysit_artifact_id" field.
func ActiveBabysitArtifactIDGT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldActiveBabysitArtifactID, v))
}

// ActiveBabysitArtifactIDGTE applies the GTE predicate on the "active_babysit_artifact_id" field.
func ActiveBabysitArtifactIDGTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldActiveBabysitArtifactID, v))
}

// ActiveBabysitArtifactIDLT applies the LT predicate on the "active_babysit_artifact_id" field.
func ActiveBabysitArtifactIDLT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldActiveBabysitArtifactID, v))
}

// ActiveBabysitArtifactIDLTE applies the LTE predicate on the "active_babysit_artifact_id" field.
func ActiveBabysitArtifactIDLTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldActiveBabysitArtifactID, v))
}

// ActiveBabysitArtifactIDContains applies the Contains predicate on the "active_babysit_artifact_id" field.
func ActiveBabysitArtifactIDContains(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContains(FieldActiveBabysitArtifactID, v))
}

// ActiveBabysitArtifactIDHasPrefix applies the HasPrefix predicate on the "active_babysit_artifact_id" field.
func ActiveBabysitArtifactIDHasPrefix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasPrefix(FieldActiveBabysitArtifactID, v))
}

// ActiveBabysitArtifactIDHasSuffix applies the HasSuffix predicate on the "active_babysit_artifact_id" field.
func ActiveBabysitArtifactIDHasSuffix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasSuffix(FieldActiveBabysitArtifactID, v))
}

// ActiveBabysitArtifactIDIsNil applies the IsNil predicate on the "active_babysit_artifact_id" field.
func ActiveBabysitArtifactIDIsNil() predicate.Loop {
	return predicate.Loop(sql.FieldIsNull(FieldActiveBabysitArtifactID))
}

// ActiveBabysitArtifactIDNotNil applies the NotNil predicate on the "active_babysit_artifact_id" field.
func ActiveBabysitArtifactIDNotNil() predicate.Loop {
	return predicate.Loop(sql.FieldNotNull(FieldActiveBabysitArtifactID))
}

// ActiveBabysitArtifactIDEqualFold applies the EqualFold predicate on the "active_babysit_artifact_id" field.
func ActiveBabysitArtifactIDEqualFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEqualFold(FieldActiveBabysitArtifactID, v))
}

// ActiveBabysitArtifactIDContainsFold applies the ContainsFold predicate on the "active_babysit_artifact_id" field.
func ActiveBabysitArtifactIDContainsFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContainsFold(FieldActiveBabysitArtifactID, v))
}

// CanonicalStatusCommentIDEQ applies the EQ predicate on the "canonical_status_comment_id" field.
func CanonicalStatusCommentIDEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldCanonicalStatusCommentID, v))
}

// CanonicalStatusCommentIDNEQ applies the NEQ predicate on the "canonical_status_comment_id" field.
func CanonicalStatusCommentIDNEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldCanonicalStatusCommentID, v))
}

// CanonicalStatusCommentIDIn applies the In predicate on the "canonical_status_comment_id" field.
func CanonicalStatusCommentIDIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldCanonicalStatusCommentID, vs...))
}

// CanonicalStatusCommentIDNotIn applies the NotIn predicate on the "canonical_status_comment_id" field.
func CanonicalStatusCommentIDNotIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldCanonicalStatusCommentID, vs...))
}

// CanonicalStatusCommentIDGT applies the GT predicate on the "canonical_status_comment_id" field.
func CanonicalStatusCommentIDGT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldCanonicalStatusCommentID, v))
}

// CanonicalStatusCommentIDGTE applies the GTE predicate on the "canonical_status_comment_id" field.
func CanonicalStatusCommentIDGTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldCanonicalStatusCommentID, v))
}

// CanonicalStatusCommentIDLT applies the LT predicate on the "canonical_status_comment_id" field.
func CanonicalStatusCommentIDLT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldCanonicalStatusCommentID, v))
}

// CanonicalStatusCommentIDLTE applies the LTE predicate on the "canonical_status_comment_id" field.
func CanonicalStatusCommentIDLTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldCanonicalStatusCommentID, v))
}

// CanonicalStatusCommentIDContains applies the Contains predicate on the "canonical_status_comment_id" field.
func CanonicalStatusCommentIDContains(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContains(FieldCanonicalStatusCommentID, v))
}

// CanonicalStatusCommentIDHasPrefix applies the HasPrefix predicate on the "canonical_status_comment_id" field.
func CanonicalStatusCommentIDHasPrefix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasPrefix(FieldCanonicalStatusCommentID, v))
}

// CanonicalStatusCommentIDHasSuffix applies the HasSuffix predicate on the "canonical_status_comment_id" field.
func CanonicalStatusCommentIDHasSuffix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasSuffix(FieldCanonicalStatusCommentID, v))
}

// CanonicalStatusCommentIDIsNil applies the IsNil predicate on the "canonical_status_comment_id" field.
func CanonicalStatusCommentIDIsNil() predicate.Loop {
	return predicate.Loop(sql.FieldIsNull(FieldCanonicalStatusCommentID))
}

// CanonicalStatusCommentIDNotNil applies the NotNil predicate on the "canonical_status_comment_id" field.
func CanonicalStatusCommentIDNotNil() predicate.Loop {
	return predicate.Loop(sql.FieldNotNull(FieldCanonicalStatusCommentID))
}

// CanonicalStatusCommentIDEqualFold applies the EqualFold predicate on the "canonical_status_comment_id" field.
func CanonicalStatusCommentIDEqualFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEqualFold(FieldCanonicalStatusCommentID, v))
}

// CanonicalStatusCommentIDContainsFold applies the ContainsFold predicate on the "canonical_status_comment_id" field.
func CanonicalStatusCommentIDContainsFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContainsFold(FieldCanonicalStatusCommentID, v))
}

// CanonicalCheckRunIDEQ applies the EQ predicate on the "canonical_check_run_id" field.
func CanonicalCheckRunIDEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldCanonicalCheckRunID, v))
}

// CanonicalCheckRunIDNEQ applies the NEQ predicate on the "canonical_check_run_id" field.
func CanonicalCheckRunIDNEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldCanonicalCheckRunID, v))
}

// CanonicalCheckRunIDIn applies the In predicate on the "canonical_check_run_id" field.
func CanonicalCheckRunIDIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldCanonicalCheckRunID, vs...))
}

// CanonicalCheckRunIDNotIn applies the NotIn predicate on the "canonical_check_run_id" field.
func CanonicalCheckRunIDNotIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldCanonicalCheckRunID, vs...))
}

// CanonicalCheckRunIDGT applies the GT predicate on the "canonical_check_run_id" field.
func CanonicalCheckRunIDGT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldCanonicalCheckRunID, v))
}

// CanonicalCheckRunIDGTE applies the GTE predicate on the "canonical_check_run_id" field.
func CanonicalCheckRunIDGTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldCanonicalCheckRunID, v))
}

// CanonicalCheckRunIDLT applies the LT predicate on the "canonical_check_run_id" field.
func CanonicalCheckRunIDLT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldCanonicalCheckRunID, v))
}

// CanonicalCheckRunIDLTE applies the LTE predicate on the "canonical_check_run_id" field.
func CanonicalCheckRunIDLTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldCanonicalCheckRunID, v))
}

// CanonicalCheckRunIDContains applies the Contains predicate on the "canonical_check_run_id" field.
func CanonicalCheckRunIDContains(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContains(FieldCanonicalCheckRunID, v))
}

// CanonicalCheckRunIDHasPrefix applies the HasPrefix predicate on the "canonical_check_run_id" field.
func CanonicalCheckRunIDHasPrefix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasPrefix(FieldCanonicalCheckRunID, v))
}

// CanonicalCheckRunIDHasSuffix applies the HasSuffix predicate on the "canonical_check_run_id" field.
func CanonicalCheckRunIDHasSuffix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasSuffix(FieldCanonicalCheckRunID, v))
}

// CanonicalCheckRunIDIsNil applies the IsNil predicate on the "canonical_check_run_id" field.
func CanonicalCheckRunIDIsNil() predicate.Loop {
	return predicate.Loop(sql.FieldIsNull(FieldCanonicalCheckRunID))
}

// CanonicalCheckRunIDNotNil applies the NotNil predicate on the "canonical_check_run_id" field.
func CanonicalCheckRunIDNotNil() predicate.Loop {
	return predicate.Loop(sql.FieldNotNull(FieldCanonicalCheckRunID))
}

// CanonicalCheckRunIDEqualFold applies the EqualFold predicate on the "canonical_check_run_id" field.
func CanonicalCheckRunIDEqualFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEqualFold(FieldCanonicalCheckRunID, v))
}

// CanonicalCheckRunIDContainsFold applies the ContainsFold predicate on the "canonical_check_run_id" field.
func CanonicalCheckRunIDContainsFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContainsFold(FieldCanonicalCheckRunID, v))
}

// VideoCaptureStatusEQ applies the EQ predicate on the "video_capture_status" field.
func VideoCaptureStatusEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldVideoCaptureStatus, v))
}

// VideoCaptureStatusNEQ applies the NEQ predicate on the "video_capture_status" field.
func VideoCaptureStatusNEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldVideoCaptureStatus, v))
}

// VideoCaptureStatusIn applies the In predicate on the "video_capture_status" field.
func VideoCaptureStatusIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldVideoCaptureStatus, vs...))
}

// VideoCaptureStatusNotIn applies the NotIn predicate on the "video_capture_status" field.
func VideoCaptureStatusNotIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldVideoCaptureStatus, vs...))
}

// VideoCaptureStatusGT applies the GT predicate on the "video_capture_status" field.
func VideoCaptureStatusGT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldVideoCaptureStatus, v))
}

// VideoCaptureStatusGTE applies the GTE predicate on the "video_capture_status" field.
func VideoCaptureStatusGTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldVideoCaptureStatus, v))
}

// VideoCaptureStatusLT applies the LT predicate on the "video_capture_status" field.
func VideoCaptureStatusLT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldVideoCaptureStatus, v))
}

// VideoCaptureStatusLTE applies the LTE predicate on the "video_capture_status" field.
func VideoCaptureStatusLTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldVideoCaptureStatus, v))
}

// VideoCaptureStatusContains applies the Contains predicate on the "video_capture_status" field.
func VideoCaptureStatusContains(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContains(FieldVideoCaptureStatus, v))
}

// VideoCaptureStatusHasPrefix applies the HasPrefix predicate on the "video_capture_status" field.
func VideoCaptureStatusHasPrefix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasPrefix(FieldVideoCaptureStatus, v))
}

// VideoCaptureStatusHasSuffix applies the HasSuffix predicate on the "video_capture_status" field.
func VideoCaptureStatusHasSuffix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasSuffix(FieldVideoCaptureStatus, v))
}

// VideoCaptureStatusIsNil applies the IsNil predicate on the "video_capture_status" field.
func VideoCaptureStatusIsNil() predicate.Loop {
	return predicate.Loop(sql.FieldIsNull(FieldVideoCaptureStatus))
}

// VideoCaptureStatusNotNil applies the NotNil predicate on the "video_capture_status" field.
func VideoCaptureStatusNotNil() predicate.Loop {
	return predicate.Loop(sql.FieldNotNull(FieldVideoCaptureStatus))
}

// VideoCaptureStatusEqualFold applies the EqualFold predicate on the "video_capture_status" field.
func VideoCaptureStatusEqualFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEqualFold(FieldVideoCaptureStatus, v))
}

// VideoCaptureStatusContainsFold applies the ContainsFold predicate on the "video_capture_status" field.
func VideoCaptureStatusContainsFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContainsFold(FieldVideoCaptureStatus, v))
}

// LatestVideoArtifactKeyEQ applies the EQ predicate on the "latest_video_artifact_key" field.
func LatestVideoArtifactKeyEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldLatestVideoArtifactKey, v))
}

// LatestVideoArtifactKeyNEQ applies the NEQ predicate on the "latest_video_artifact_key" field.
func LatestVideoArtifactKeyNEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldLatestVideoArtifactKey, v))
}

// LatestVideoArtifactKeyIn applies the In predicate on the "latest_video_artifact_key" field.
func LatestVideoArtifactKeyIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldLatestVideoArtifactKey, vs...))
}

// LatestVideoArtifactKeyNotIn applies the NotIn predicate on the "latest_video_artifact_key" field.
func LatestVideoArtifactKeyNotIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldLatestVideoArtifactKey, vs...))
}

// LatestVideoArtifactKeyGT applies the GT predicate on the "latest_video_artifact_key" field.
func LatestVideoArtifactKeyGT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldLatestVideoArtifactKey, v))
}

// LatestVideoArtifactKeyGTE applies the GTE predicate on the "latest_video_artifact_key" field.
func LatestVideoArtifactKeyGTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldLatestVideoArtifactKey, v))
}

// LatestVideoArtifactKeyLT applies the LT predicate on the "latest_video_artifact_key" field.
func LatestVideoArtifactKeyLT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldLatestVideoArtifactKey, v))
}

// LatestVideoArtifactKeyLTE applies the LTE predicate on the "latest_video_artifact_key" field.
func LatestVideoArtifactKeyLTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldLatestVideoArtifactKey, v))
}

// LatestVideoArtifactKeyContains applies the Contains predicate on the "latest_video_artifact_key" field.
func LatestVideoArtifactKeyContains(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContains(FieldLatestVideoArtifactKey, v))
}

// LatestVideoArtifactKeyHasPrefix applies the HasPrefix predicate on the "latest_video_artifact_key" field.
func LatestVideoArtifactKeyHasPrefix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasPrefix(FieldLatestVideoArtifactKey, v))
}

// LatestVideoArtifactKeyHasSuffix applies the HasSuffix predicate on the "latest_video_artifact_key" field.
func LatestVideoArtifactKeyHasSuffix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasSuffix(FieldLatestVideoArtifactKey, v))
}

// LatestVideoArtifactKeyIsNil applies the IsNil predicate on the "latest_video_artifact_key" field.
func LatestVideoArtifactKeyIsNil() predicate.Loop {
	return predicate.Loop(sql.FieldIsNull(FieldLatestVideoArtifactKey))
}

// LatestVideoArtifactKeyNotNil applies the NotNil predicate on the "latest_video_artifact_key" field.
func LatestVideoArtifactKeyNotNil() predicate.Loop {
	return predicate.Loop(sql.FieldNotNull(FieldLatestVideoArtifactKey))
}

// LatestVideoArtifactKeyEqualFold applies the EqualFold predicate on the "latest_video_artifact_key" field.
func LatestVideoArtifactKeyEqualFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEqualFold(FieldLatestVideoArtifactKey, v))
}

// LatestVideoArtifactKeyContainsFold applies the ContainsFold predicate on the "latest_video_artifact_key" field.
func LatestVideoArtifactKeyContainsFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContainsFold(FieldLatestVideoArtifactKey, v))
}

// LatestVideoCapturedAtEQ applies the EQ predicate on the "latest_video_captured_at" field.
func LatestVideoCapturedAtEQ(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldLatestVideoCapturedAt, v))
}

// LatestVideoCapturedAtNEQ applies the NEQ predicate on the "latest_video_captured_at" field.
func LatestVideoCapturedAtNEQ(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldLatestVideoCapturedAt, v))
}

// LatestVideoCapturedAtIn applies the In predicate on the "latest_video_captured_at" field.
func LatestVideoCapturedAtIn(vs ...time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldLatestVideoCapturedAt, vs...))
}

// LatestVideoCapturedAtNotIn applies the NotIn predicate on the "latest_video_captured_at" field.
func LatestVideoCapturedAtNotIn(vs ...time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldLatestVideoCapturedAt, vs...))
}

// LatestVideoCapturedAtGT applies the GT predicate on the "latest_video_captured_at" field.
func LatestVideoCapturedAtGT(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldLatestVideoCapturedAt, v))
}

// LatestVideoCapturedAtGTE applies the GTE predicate on the "latest_video_captured_at" field.
func LatestVideoCapturedAtGTE(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldLatestVideoCapturedAt, v))
}

// LatestVideoCapturedAtLT applies the LT predicate on the "latest_video_captured_at" field.
func LatestVideoCapturedAtLT(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldLatestVideoCapturedAt, v))
}

// LatestVideoCapturedAtLTE applies the LTE predicate on the "latest_video_captured_at" field.
func LatestVideoCapturedAtLTE(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldLatestVideoCapturedAt, v))
}

// LatestVideoCapturedAtIsNil applies the IsNil predicate on the "latest_video_captured_at" field.
func LatestVideoCapturedAtIsNil() predicate.Loop {
	return predicate.Loop(sql.FieldIsNull(FieldLatestVideoCapturedAt))
}

// LatestVideoCapturedAtNotNil applies the NotNil predicate on the "latest_video_captured_at" field.
func LatestVideoCapturedAtNotNil() predicate.Loop {
	return predicate.Loop(sql.FieldNotNull(FieldLatestVideoCapturedAt))
}

// LatestVideoFailureClassEQ applies the EQ predicate on the "latest_video_failure_class" field.
func LatestVideoFailureClassEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldLatestVideoFailureClass, v))
}

// LatestVideoFailureClassNEQ applies the NEQ predicate on the "latest_video_failure_class" field.
func LatestVideoFailureClassNEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldLatestVideoFailureClass, v))
}

// LatestVideoFailureClassIn applies the In predicate on the "latest_video_failure_class" field.
func LatestVideoFailureClassIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldLatestVideoFailureClass, vs...))
}

// LatestVideoFailureClassNotIn applies the NotIn predicate on the "latest_video_failure_class" field.
func LatestVideoFailureClassNotIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldLatestVideoFailureClass, vs...))
}

// LatestVideoFailureClassGT applies the GT predicate on the "latest_video_failure_class" field.
func LatestVideoFailureClassGT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldLatestVideoFailureClass, v))
}

// LatestVideoFailureClassGTE applies the GTE predicate on the "latest_video_failure_class" field.
func LatestVideoFailureClassGTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldLatestVideoFailureClass, v))
}

// LatestVideoFailureClassLT applies the LT predicate on the "latest_video_failure_class" field.
func LatestVideoFailureClassLT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldLatestVideoFailureClass, v))
}

// LatestVideoFailureClassLTE applies the LTE predicate on the "latest_video_failure_class" field.
func LatestVideoFailureClassLTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldLatestVideoFailureClass, v))
}

// LatestVideoFailureClassContains applies the Contains predicate on the "latest_video_failure_class" field.
func LatestVideoFailureClassContains(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContains(FieldLatestVideoFailureClass, v))
}

// LatestVideoFailureClassHasPrefix applies the HasPrefix predicate on the "latest_video_failure_class" field.
func LatestVideoFailureClassHasPrefix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasPrefix(FieldLatestVideoFailureClass, v))
}

// LatestVideoFailureClassHasSuffix applies the HasSuffix predicate on the "latest_video_failure_class" field.
func LatestVideoFailureClassHasSuffix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasSuffix(FieldLatestVideoFailureClass, v))
}

// LatestVideoFailureClassIsNil applies the IsNil predicate on the "latest_video_failure_class" field.
func LatestVideoFailureClassIsNil() predicate.Loop {
	return predicate.Loop(sql.FieldIsNull(FieldLatestVideoFailureClass))
}

// LatestVideoFailureClassNotNil applies the NotNil predicate on the "latest_video_failure_class" field.
func LatestVideoFailureClassNotNil() predicate.Loop {
	return predicate.Loop(sql.FieldNotNull(FieldLatestVideoFailureClass))
}

// LatestVideoFailureClassEqualFold applies the EqualFold predicate on the "latest_video_failure_class" field.
func LatestVideoFailureClassEqualFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEqualFold(FieldLatestVideoFailureClass, v))
}

// LatestVideoFailureClassContainsFold applies the ContainsFold predicate on the "latest_video_failure_class" field.
func LatestVideoFailureClassContainsFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContainsFold(FieldLatestVideoFailureClass, v))
}

// LatestVideoFailureMessageEQ applies the EQ predicate on the "latest_video_failure_message" field.
func LatestVideoFailureMessageEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldLatestVideoFailureMessage, v))
}

// LatestVideoFailureMessageNEQ applies the NEQ predicate on the "latest_video_failure_message" field.
func LatestVideoFailureMessageNEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldLatestVideoFailureMessage, v))
}

// LatestVideoFailureMessageIn applies the In predicate on the "latest_video_failure_message" field.
func LatestVideoFailureMessageIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldLatestVideoFailureMessage, vs...))
}

// LatestVideoFailureMessageNotIn applies the NotIn predicate on the "latest_video_failure_message" field.
func LatestVideoFailureMessageNotIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldLatestVideoFailureMessage, vs...))
}

// LatestVideoFailureMessageGT applies the GT predicate on the "latest_video_failure_message" field.
func LatestVideoFailureMessageGT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldLatestVideoFailureMessage, v))
}

// LatestVideoFailureMessageGTE applies the GTE predicate on the "latest_video_failure_message" field.
func LatestVideoFailureMessageGTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldLatestVideoFailureMessage, v))
}

// LatestVideoFailureMessageLT applies the LT predicate on the "latest_video_failure_message" field.
func LatestVideoFailureMessageLT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldLatestVideoFailureMessage, v))
}

// LatestVideoFailureMessageLTE applies the LTE predicate on the "latest_video_failure_message" field.
func LatestVideoFailureMessageLTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldLatestVideoFailureMessage, v))
}

// LatestVideoFailureMessageContains applies the Contains predicate on the "latest_video_failure_message" field.
func LatestVideoFailureMessageContains(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContains(FieldLatestVideoFailureMessage, v))
}

// LatestVideoFailureMessageHasPrefix applies the HasPrefix predicate on the "latest_video_failure_message" field.
func LatestVideoFailureMessageHasPrefix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasPrefix(FieldLatestVideoFailureMessage, v))
}

// LatestVideoFailureMessageHasSuffix applies the HasSuffix predicate on the "latest_video_failure_message" field.
func LatestVideoFailureMessageHasSuffix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasSuffix(FieldLatestVideoFailureMessage, v))
}

// LatestVideoFailureMessageIsNil applies the IsNil predicate on the "latest_video_failure_message" field.
func LatestVideoFailureMessageIsNil() predicate.Loop {
	return predicate.Loop(sql.FieldIsNull(FieldLatestVideoFailureMessage))
}

// LatestVideoFailureMessageNotNil applies the NotNil predicate on the "latest_video_failure_message" field.
func LatestVideoFailureMessageNotNil() predicate.Loop {
	return predicate.Loop(sql.FieldNotNull(FieldLatestVideoFailureMessage))
}

// LatestVideoFailureMessageEqualFold applies the EqualFold predicate on the "latest_video_failure_message" field.
func LatestVideoFailureMessageEqualFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEqualFold(FieldLatestVideoFailureMessage, v))
}

// LatestVideoFailureMessageContainsFold applies the ContainsFold predicate on the "latest_video_failure_message" field.
func LatestVideoFailureMessageContainsFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContainsFold(FieldLatestVideoFailureMessage, v))
}

// LatestVideoFailedAtEQ applies the EQ predicate on the "latest_video_failed_at" field.
func LatestVideoFailedAtEQ(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldLatestVideoFailedAt, v))
}

// LatestVideoFailedAtNEQ applies the NEQ predicate on the "latest_video_failed_at" field.
func LatestVideoFailedAtNEQ(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldLatestVideoFailedAt, v))
}

// LatestVideoFailedAtIn applies the In predicate on the "latest_video_failed_at" field.
func LatestVideoFailedAtIn(vs ...time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldLatestVideoFailedAt, vs...))
}

// LatestVideoFailedAtNotIn applies the NotIn predicate on the "latest_video_failed_at" field.
func LatestVideoFailedAtNotIn(vs ...time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldLatestVideoFailedAt, vs...))
}

// LatestVideoFailedAtGT applies the GT predicate on the "latest_video_failed_at" field.
func LatestVideoFailedAtGT(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldLatestVideoFailedAt, v))
}

// LatestVideoFailedAtGTE applies the GTE predicate on the "latest_video_failed_at" field.
func LatestVideoFailedAtGTE(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldLatestVideoFailedAt, v))
}

// LatestVideoFailedAtLT applies the LT predicate on the "latest_video_failed_at" field.
func LatestVideoFailedAtLT(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldLatestVideoFailedAt, v))
}

// LatestVideoFailedAtLTE applies the LTE predicate on the "latest_video_failed_at" field.
func LatestVideoFailedAtLTE(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldLatestVideoFailedAt, v))
}

// LatestVideoFailedAtIsNil applies the IsNil predicate on the "latest_video_failed_at" field.
func LatestVideoFailedAtIsNil() predicate.Loop {
	return predicate.Loop(sql.FieldIsNull(FieldLatestVideoFailedAt))
}

// LatestVideoFailedAtNotNil applies the NotNil predicate on the "latest_video_failed_at" field.
func LatestVideoFailedAtNotNil() predicate.Loop {
	return predicate.Loop(sql.FieldNotNull(FieldLatestVideoFailedAt))
}

// StopReasonEQ applies the EQ predicate on the "stop_reason" field.
func StopReasonEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldStopReason, v))
}

// StopReasonNEQ applies the NEQ predicate on the "stop_reason" field.
func StopReasonNEQ(v string) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldStopReason, v))
}

// StopReasonIn applies the In predicate on the "stop_reason" field.
func StopReasonIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldStopReason, vs...))
}

// StopReasonNotIn applies the NotIn predicate on the "stop_reason" field.
func StopReasonNotIn(vs ...string) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldStopReason, vs...))
}

// StopReasonGT applies the GT predicate on the "stop_reason" field.
func StopReasonGT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldStopReason, v))
}

// StopReasonGTE applies the GTE predicate on the "stop_reason" field.
func StopReasonGTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldStopReason, v))
}

// StopReasonLT applies the LT predicate on the "stop_reason" field.
func StopReasonLT(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldStopReason, v))
}

// StopReasonLTE applies the LTE predicate on the "stop_reason" field.
func StopReasonLTE(v string) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldStopReason, v))
}

// StopReasonContains applies the Contains predicate on the "stop_reason" field.
func StopReasonContains(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContains(FieldStopReason, v))
}

// StopReasonHasPrefix applies the HasPrefix predicate on the "stop_reason" field.
func StopReasonHasPrefix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasPrefix(FieldStopReason, v))
}

// StopReasonHasSuffix applies the HasSuffix predicate on the "stop_reason" field.
func StopReasonHasSuffix(v string) predicate.Loop {
	return predicate.Loop(sql.FieldHasSuffix(FieldStopReason, v))
}

// StopReasonIsNil applies the IsNil predicate on the "stop_reason" field.
func StopReasonIsNil() predicate.Loop {
	return predicate.Loop(sql.FieldIsNull(FieldStopReason))
}

// StopReasonNotNil applies the NotNil predicate on the "stop_reason" field.
func StopReasonNotNil() predicate.Loop {
	return predicate.Loop(sql.FieldNotNull(FieldStopReason))
}

// StopReasonEqualFold applies the EqualFold predicate on the "stop_reason" field.
func StopReasonEqualFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldEqualFold(FieldStopReason, v))
}

// StopReasonContainsFold applies the ContainsFold predicate on the "stop_reason" field.
func StopReasonContainsFold(v string) predicate.Loop {
	return predicate.Loop(sql.FieldContainsFold(FieldStopReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Loop {
	return predicate.Loop(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSignals applies the HasEdge predicate on the "signals" edge.
func HasSignals() predicate.Loop {
	return predicate.Loop(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SignalsTable, SignalsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSignalsWith applies the HasEdge predicate on the "signals" edge with a given conditions (other predicates).
func HasSignalsWith(preds ...predicate.InboxSignal) predicate.Loop {
	return predicate.Loop(func(s *sql.Selector) {
		step := newSignalsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOutboxActions applies the HasEdge predicate on the "outbox_actions" edge.
func HasOutboxActions() predicate.Loop {
	return predicate.Loop(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OutboxActionsTable, OutboxActionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOutboxActionsWith applies the HasEdge predicate on the "outbox_actions" edge with a given conditions (other predicates).
func HasOutboxActionsWith(preds ...predicate.OutboxAction) predicate.Loop {
	return predicate.Loop(func(s *sql.Selector) {
		step := newOutboxActionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGateRuns applies the HasEdge predicate on the "gate_runs" edge.
func HasGateRuns() predicate.Loop {
	return predicate.Loop(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GateRunsTable, GateRunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGateRunsWith applies the HasEdge predicate on the "gate_runs" edge with a given conditions (other predicates).
func HasGateRunsWith(preds ...predicate.GateRun) predicate.Loop {
	return predicate.Loop(func(s *sql.Selector) {
		step := newGateRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGateFindings applies the HasEdge predicate on the "gate_findings" edge.
func HasGateFindings() predicate.Loop {
	return predicate.Loop(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GateFindingsTable, GateFindingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGateFindingsWith applies the HasEdge predicate on the "gate_findings" edge with a given conditions (other predicates).
func HasGateFindingsWith(preds ...predicate.GateFinding) predicate.Loop {
	return predicate.Loop(func(s *sql.Selector) {
		step := newGateFindingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasArtifacts applies the HasEdge predicate on the "artifacts" edge.
func HasArtifacts() predicate.Loop {
	return predicate.Loop(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ArtifactsTable, ArtifactsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArtifactsWith applies the HasEdge predicate on the "artifacts" edge with a given conditions (other predicates).
func HasArtifactsWith(preds ...predicate.PhaseArtifact) predicate.Loop {
	return predicate.Loop(func(s *sql.Selector) {
		step := newArtifactsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Loop) predicate.Loop {
	return predicate.Loop(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Loop) predicate.Loop {
	return predicate.Loop(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Loop) predicate.Loop {
	return predicate.Loop(sql.NotPredicates(p))
}
