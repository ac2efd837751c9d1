// Code generated by ent, DO NOT EDIT.

package outboxaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldContainsFold(FieldID, id))
}

// LoopID applies equality check predicate on the "loop_id" field. It's identical to LoopIDEQ.
func LoopID(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldLoopID, v))
}

// TransitionSeq applies equality check predicate on the "transition_seq" field. It's identical to TransitionSeqEQ.
func TransitionSeq(v int) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldTransitionSeq, v))
}

// SupersessionGroup applies equality check predicate on the "supersession_group" field. It's identical to SupersessionGroupEQ.
func SupersessionGroup(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldSupersessionGroup, v))
}

// ActionKey applies equality check predicate on the "action_key" field. It's identical to ActionKeyEQ.
func ActionKey(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldActionKey, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldAttemptCount, v))
}

// NextRetryAt applies equality check predicate on the "next_retry_at" field. It's identical to NextRetryAtEQ.
func NextRetryAt(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldNextRetryAt, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedAt applies equality check predicate on the "claimed_at" field. It's identical to ClaimedAtEQ.
func ClaimedAt(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldClaimedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldCompletedAt, v))
}

// LastErrorClass applies equality check predicate on the "last_error_class" field. It's identical to LastErrorClassEQ.
func LastErrorClass(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldLastErrorClass, v))
}

// LastErrorCode applies equality check predicate on the "last_error_code" field. It's identical to LastErrorCodeEQ.
func LastErrorCode(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldLastErrorCode, v))
}

// LastErrorMessage applies equality check predicate on the "last_error_message" field. It's identical to LastErrorMessageEQ.
func LastErrorMessage(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldLastErrorMessage, v))
}

// SupersededByOutboxID applies equality check predicate on the "superseded_by_outbox_id" field. It's identical to SupersededByOutboxIDEQ.
func SupersededByOutboxID(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldSupersededByOutboxID, v))
}

// CanceledReason applies equality check predicate on the "canceled_reason" field. It's identical to CanceledReasonEQ.
func CanceledReason(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldCanceledReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldUpdatedAt, v))
}

// LoopIDEQ applies the EQ predicate on the "loop_id" field.
func LoopIDEQ(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldLoopID, v))
}

// LoopIDNEQ applies the NEQ predicate on the "loop_id" field.
func LoopIDNEQ(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNEQ(FieldLoopID, v))
}

// LoopIDIn applies the In predicate on the "loop_id" field.
func LoopIDIn(vs ...string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIn(FieldLoopID, vs...))
}

// LoopIDNotIn applies the NotIn predicate on the "loop_id" field.
func LoopIDNotIn(vs ...string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotIn(FieldLoopID, vs...))
}

// LoopIDGT applies the GT predicate on the "loop_id" field.
func LoopIDGT(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGT(FieldLoopID, v))
}

// LoopIDGTE applies the GTE predicate on the "loop_id" field.
func LoopIDGTE(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGTE(FieldLoopID, v))
}

// LoopIDLT applies the LT predicate on the "loop_id" field.
func LoopIDLT(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLT(FieldLoopID, v))
}

// LoopIDLTE applies the LTE predicate on the "loop_id" field.
func LoopIDLTE(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLTE(FieldLoopID, v))
}

// LoopIDContains applies the Contains predicate on the "loop_id" field.
func LoopIDContains(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldContains(FieldLoopID, v))
}

// LoopIDHasPrefix applies the HasPrefix predicate on the "loop_id" field.
func LoopIDHasPrefix(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldHasPrefix(FieldLoopID, v))
}

// LoopIDHasSuffix applies the HasSuffix predicate on the "loop_id" field.
func LoopIDHasSuffix(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldHasSuffix(FieldLoopID, v))
}

// LoopIDEqualFold applies the EqualFold predicate on the "loop_id" field.
func LoopIDEqualFold(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEqualFold(FieldLoopID, v))
}

// LoopIDContainsFold applies the ContainsFold predicate on the "loop_id" field.
func LoopIDContainsFold(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldContainsFold(FieldLoopID, v))
}

// TransitionSeqEQ applies the EQ predicate on the "transition_seq" field.
func TransitionSeqEQ(v int) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldTransitionSeq, v))
}

// TransitionSeqNEQ applies the NEQ predicate on the "transition_seq" field.
func TransitionSeqNEQ(v int) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNEQ(FieldTransitionSeq, v))
}

// TransitionSeqIn applies the In predicate on the "transition_seq" field.
func TransitionSeqIn(vs ...int) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIn(FieldTransitionSeq, vs...))
}

// TransitionSeqNotIn applies the NotIn predicate on the "transition_seq" field.
func TransitionSeqNotIn(vs ...int) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotIn(FieldTransitionSeq, vs...))
}

// TransitionSeqGT applies the GT predicate on the "transition_seq" field.
func TransitionSeqGT(v int) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGT(FieldTransitionSeq, v))
}

// TransitionSeqGTE applies the GTE predicate on the "transition_seq" field.
func TransitionSeqGTE(v int) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGTE(FieldTransitionSeq, v))
}

// TransitionSeqLT applies the LT predicate on the "transition_seq" field.
func TransitionSeqLT(v int) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLT(FieldTransitionSeq, v))
}

// TransitionSeqLTE applies the LTE predicate on the "transition_seq" field.
func TransitionSeqLTE(v int) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLTE(FieldTransitionSeq, v))
}

// ActionTypeEQ applies the EQ predicate on the "action_type" field.
func ActionTypeEQ(v ActionType) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldActionType, v))
}

// ActionTypeNEQ applies the NEQ predicate on the "action_type" field.
func ActionTypeNEQ(v ActionType) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNEQ(FieldActionType, v))
}

// ActionTypeIn applies the In predicate on the "action_type" field.
func ActionTypeIn(vs ...ActionType) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIn(FieldActionType, vs...))
}

// ActionTypeNotIn applies the NotIn predicate on the "action_type" field.
func ActionTypeNotIn(vs ...ActionType) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotIn(FieldActionType, vs...))
}

// SupersessionGroupEQ applies the EQ predicate on the "supersession_group" field.
func SupersessionGroupEQ(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldSupersessionGroup, v))
}

// SupersessionGroupNEQ applies the NEQ predicate on the "supersession_group" field.
func SupersessionGroupNEQ(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNEQ(FieldSupersessionGroup, v))
}

// SupersessionGroupIn applies the In predicate on the "supersession_group" field.
func SupersessionGroupIn(vs ...string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIn(FieldSupersessionGroup, vs...))
}

// SupersessionGroupNotIn applies the NotIn predicate on the "supersession_group" field.
func SupersessionGroupNotIn(vs ...string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotIn(FieldSupersessionGroup, vs...))
}

// SupersessionGroupGT applies the GT predicate on the "supersession_group" field.
func SupersessionGroupGT(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGT(FieldSupersessionGroup, v))
}

// SupersessionGroupGTE applies the GTE predicate on the "supersession_group" field.
func SupersessionGroupGTE(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGTE(FieldSupersessionGroup, v))
}

// SupersessionGroupLT applies the LT predicate on the "supersession_group" field.
func SupersessionGroupLT(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLT(FieldSupersessionGroup, v))
}

// SupersessionGroupLTE applies the LTE predicate on the "supersession_group" field.
func SupersessionGroupLTE(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLTE(FieldSupersessionGroup, v))
}

// SupersessionGroupContains applies the Contains predicate on the "supersession_group" field.
func SupersessionGroupContains(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldContains(FieldSupersessionGroup, v))
}

// SupersessionGroupHasPrefix applies the HasPrefix predicate on the "supersession_group" field.
func SupersessionGroupHasPrefix(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldHasPrefix(FieldSupersessionGroup, v))
}

// SupersessionGroupHasSuffix applies the HasSuffix predicate on the "supersession_group" field.
func SupersessionGroupHasSuffix(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldHasSuffix(FieldSupersessionGroup, v))
}

// SupersessionGroupEqualFold applies the EqualFold predicate on the "supersession_group" field.
func SupersessionGroupEqualFold(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEqualFold(FieldSupersessionGroup, v))
}

// SupersessionGroupContainsFold applies the ContainsFold predicate on the "supersession_group" field.
func SupersessionGroupContainsFold(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldContainsFold(FieldSupersessionGroup, v))
}

// ActionKeyEQ applies the EQ predicate on the "action_key" field.
func ActionKeyEQ(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldActionKey, v))
}

// ActionKeyNEQ applies the NEQ predicate on the "action_key" field.
func ActionKeyNEQ(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNEQ(FieldActionKey, v))
}

// ActionKeyIn applies the In predicate on the "action_key" field.
func ActionKeyIn(vs ...string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIn(FieldActionKey, vs...))
}

// ActionKeyNotIn applies the NotIn predicate on the "action_key" field.
func ActionKeyNotIn(vs ...string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotIn(FieldActionKey, vs...))
}

// ActionKeyGT applies the GT predicate on the "action_key" field.
func ActionKeyGT(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGT(FieldActionKey, v))
}

// ActionKeyGTE applies the GTE predicate on the "action_key" field.
func ActionKeyGTE(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGTE(FieldActionKey, v))
}

// ActionKeyLT applies the LT predicate on the "action_key" field.
func ActionKeyLT(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLT(FieldActionKey, v))
}

// ActionKeyLTE applies the LTE predicate on the "action_key" field.
func ActionKeyLTE(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLTE(FieldActionKey, v))
}

// ActionKeyContains applies the Contains predicate on the "action_key" field.
func ActionKeyContains(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldContains(FieldActionKey, v))
}

// ActionKeyHasPrefix applies the HasPrefix predicate on the "action_key" field.
func ActionKeyHasPrefix(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldHasPrefix(FieldActionKey, v))
}

// ActionKeyHasSuffix applies the HasSuffix predicate on the "action_key" field.
func ActionKeyHasSuffix(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldHasSuffix(FieldActionKey, v))
}

// ActionKeyEqualFold applies the EqualFold predicate on the "action_key" field.
func ActionKeyEqualFold(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEqualFold(FieldActionKey, v))
}

// ActionKeyContainsFold applies the ContainsFold predicate on the "action_key" field.
func ActionKeyContainsFold(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldContainsFold(FieldActionKey, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotNull(FieldPayload))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLTE(FieldAttemptCount, v))
}

// NextRetryAtEQ applies the EQ predicate on the "next_retry_at" field.
func NextRetryAtEQ(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldNextRetryAt, v))
}

// NextRetryAtNEQ applies the NEQ predicate on the "next_retry_at" field.
func NextRetryAtNEQ(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNEQ(FieldNextRetryAt, v))
}

// NextRetryAtIn applies the In predicate on the "next_retry_at" field.
func NextRetryAtIn(vs ...time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIn(FieldNextRetryAt, vs...))
}

// NextRetryAtNotIn applies the NotIn predicate on the "next_retry_at" field.
func NextRetryAtNotIn(vs ...time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotIn(FieldNextRetryAt, vs...))
}

// NextRetryAtGT applies the GT predicate on the "next_retry_at" field.
func NextRetryAtGT(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGT(FieldNextRetryAt, v))
}

// NextRetryAtGTE applies the GTE predicate on the "next_retry_at" field.
func NextRetryAtGTE(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGTE(FieldNextRetryAt, v))
}

// NextRetryAtLT applies the LT predicate on the "next_retry_at" field.
func NextRetryAtLT(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLT(FieldNextRetryAt, v))
}

// NextRetryAtLTE applies the LTE predicate on the "next_retry_at" field.
func NextRetryAtLTE(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLTE(FieldNextRetryAt, v))
}

// NextRetryAtIsNil applies the IsNil predicate on the "next_retry_at" field.
func NextRetryAtIsNil() predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIsNull(FieldNextRetryAt))
}

// NextRetryAtNotNil applies the NotNil predicate on the "next_retry_at" field.
func NextRetryAtNotNil() predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotNull(FieldNextRetryAt))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldContainsFold(FieldClaimedBy, v))
}

// ClaimedAtEQ applies the EQ predicate on the "claimed_at" field.
func ClaimedAtEQ(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldClaimedAt, v))
}

// ClaimedAtNEQ applies the NEQ predicate on the "claimed_at" field.
func ClaimedAtNEQ(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNEQ(FieldClaimedAt, v))
}

// ClaimedAtIn applies the In predicate on the "claimed_at" field.
func ClaimedAtIn(vs ...time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIn(FieldClaimedAt, vs...))
}

// ClaimedAtNotIn applies the NotIn predicate on the "claimed_at" field.
func ClaimedAtNotIn(vs ...time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotIn(FieldClaimedAt, vs...))
}

// ClaimedAtGT applies the GT predicate on the "claimed_at" field.
func ClaimedAtGT(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGT(FieldClaimedAt, v))
}

// ClaimedAtGTE applies the GTE predicate on the "claimed_at" field.
func ClaimedAtGTE(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGTE(FieldClaimedAt, v))
}

// ClaimedAtLT applies the LT predicate on the "claimed_at" field.
func ClaimedAtLT(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLT(FieldClaimedAt, v))
}

// ClaimedAtLTE applies the LTE predicate on the "claimed_at" field.
func ClaimedAtLTE(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLTE(FieldClaimedAt, v))
}

// ClaimedAtIsNil applies the IsNil predicate on the "claimed_at" field.
func ClaimedAtIsNil() predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIsNull(FieldClaimedAt))
}

// ClaimedAtNotNil applies the NotNil predicate on the "claimed_at" field.
func ClaimedAtNotNil() predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotNull(FieldClaimedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotNull(FieldCompletedAt))
}

// LastErrorClassEQ applies the EQ predicate on the "last_error_class" field.
func LastErrorClassEQ(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldLastErrorClass, v))
}

// LastErrorClassNEQ applies the NEQ predicate on the "last_error_class" field.
func LastErrorClassNEQ(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNEQ(FieldLastErrorClass, v))
}

// LastErrorClassIn applies the In predicate on the "last_error_class" field.
func LastErrorClassIn(vs ...string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIn(FieldLastErrorClass, vs...))
}

// LastErrorClassNotIn applies the NotIn predicate on the "last_error_class" field.
func LastErrorClassNotIn(vs ...string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotIn(FieldLastErrorClass, vs...))
}

// LastErrorClassGT applies the GT predicate on the "last_error_class" field.
func LastErrorClassGT(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGT(FieldLastErrorClass, v))
}

// LastErrorClassGTE applies the GTE predicate on the "last_error_class" field.
func LastErrorClassGTE(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGTE(FieldLastErrorClass, v))
}

// LastErrorClassLT applies the LT predicate on the "last_error_class" field.
func LastErrorClassLT(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLT(FieldLastErrorClass, v))
}

// LastErrorClassLTE applies the LTE predicate on the "last_error_class" field.
func LastErrorClassLTE(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLTE(FieldLastErrorClass, v))
}

// LastErrorClassContains applies the Contains predicate on the "last_error_class" field.
func LastErrorClassContains(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldContains(FieldLastErrorClass, v))
}

// LastErrorClassHasPrefix applies the HasPrefix predicate on the "last_error_class" field.
func LastErrorClassHasPrefix(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldHasPrefix(FieldLastErrorClass, v))
}

// LastErrorClassHasSuffix applies the HasSuffix predicate on the "last_error_class" field.
func LastErrorClassHasSuffix(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldHasSuffix(FieldLastErrorClass, v))
}

// LastErrorClassIsNil applies the IsNil predicate on the "last_error_class" field.
func LastErrorClassIsNil() predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIsNull(FieldLastErrorClass))
}

// LastErrorClassNotNil applies the NotNil predicate on the "last_error_class" field.
func LastErrorClassNotNil() predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotNull(FieldLastErrorClass))
}

// LastErrorClassEqualFold applies the EqualFold predicate on the "last_error_class" field.
func LastErrorClassEqualFold(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEqualFold(FieldLastErrorClass, v))
}

// LastErrorClassContainsFold applies the ContainsFold predicate on the "last_error_class" field.
func LastErrorClassContainsFold(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldContainsFold(FieldLastErrorClass, v))
}

// LastErrorCodeEQ applies the EQ predicate on the "last_error_code" field.
func LastErrorCodeEQ(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldLastErrorCode, v))
}

// LastErrorCodeNEQ applies the NEQ predicate on the "last_error_code" field.
func LastErrorCodeNEQ(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNEQ(FieldLastErrorCode, v))
}

// LastErrorCodeIn applies the In predicate on the "last_error_code" field.
func LastErrorCodeIn(vs ...string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIn(FieldLastErrorCode, vs...))
}

// LastErrorCodeNotIn applies the NotIn predicate on the "last_error_code" field.
func LastErrorCodeNotIn(vs ...string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotIn(FieldLastErrorCode, vs...))
}

// LastErrorCodeGT applies the GT predicate on the "last_error_code" field.
func LastErrorCodeGT(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGT(FieldLastErrorCode, v))
}

// LastErrorCodeGTE applies the GTE predicate on the "last_error_code" field.
func LastErrorCodeGTE(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGTE(FieldLastErrorCode, v))
}

// LastErrorCodeLT applies the LT predicate on the "last_error_code" field.
func LastErrorCodeLT(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLT(FieldLastErrorCode, v))
}

// LastErrorCodeLTE applies the LTE predicate on the "last_error_code" field.
func LastErrorCodeLTE(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLTE(FieldLastErrorCode, v))
}

// LastErrorCodeContains applies the Contains predicate on the "last_error_code" field.
func LastErrorCodeContains(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldContains(FieldLastErrorCode, v))
}

// LastErrorCodeHasPrefix applies the HasPrefix predicate on the "last_error_code" field.
func LastErrorCodeHasPrefix(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldHasPrefix(FieldLastErrorCode, v))
}

// LastErrorCodeHasSuffix applies the HasSuffix predicate on the "last_error_code" field.
func LastErrorCodeHasSuffix(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldHasSuffix(FieldLastErrorCode, v))
}

// LastErrorCodeIsNil applies the IsNil predicate on the "last_error_code" field.
func LastErrorCodeIsNil() predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIsNull(FieldLastErrorCode))
}

// LastErrorCodeNotNil applies the NotNil predicate on the "last_error_code" field.
func LastErrorCodeNotNil() predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotNull(FieldLastErrorCode))
}

// LastErrorCodeEqualFold applies the EqualFold predicate on the "last_error_code" field.
func LastErrorCodeEqualFold(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEqualFold(FieldLastErrorCode, v))
}

// LastErrorCodeContainsFold applies the ContainsFold predicate on the "last_error_code" field.
func LastErrorCodeContainsFold(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldContainsFold(FieldLastErrorCode, v))
}

// LastErrorMessageEQ applies the EQ predicate on the "last_error_message" field.
func LastErrorMessageEQ(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldLastErrorMessage, v))
}

// LastErrorMessageNEQ applies the NEQ predicate on the "last_error_message" field.
func LastErrorMessageNEQ(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNEQ(FieldLastErrorMessage, v))
}

// LastErrorMessageIn applies the In predicate on the "last_error_message" field.
func LastErrorMessageIn(vs ...string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIn(FieldLastErrorMessage, vs...))
}

// LastErrorMessageNotIn applies the NotIn predicate on the "last_error_message" field.
func LastErrorMessageNotIn(vs ...string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotIn(FieldLastErrorMessage, vs...))
}

// LastErrorMessageGT applies the GT predicate on the "last_error_message" field.
func LastErrorMessageGT(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGT(FieldLastErrorMessage, v))
}

// LastErrorMessageGTE applies the GTE predicate on the "last_error_message" field.
func LastErrorMessageGTE(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGTE(FieldLastErrorMessage, v))
}

// LastErrorMessageLT applies the LT predicate on the "last_error_message" field.
func LastErrorMessageLT(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLT(FieldLastErrorMessage, v))
}

// LastErrorMessageLTE applies the LTE predicate on the "last_error_message" field.
func LastErrorMessageLTE(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLTE(FieldLastErrorMessage, v))
}

// LastErrorMessageContains applies the Contains predicate on the "last_error_message" field.
func LastErrorMessageContains(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldContains(FieldLastErrorMessage, v))
}

// LastErrorMessageHasPrefix applies the HasPrefix predicate on the "last_error_message" field.
func LastErrorMessageHasPrefix(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldHasPrefix(FieldLastErrorMessage, v))
}

// LastErrorMessageHasSuffix applies the HasSuffix predicate on the "last_error_message" field.
func LastErrorMessageHasSuffix(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldHasSuffix(FieldLastErrorMessage, v))
}

// LastErrorMessageIsNil applies the IsNil predicate on the "last_error_message" field.
func LastErrorMessageIsNil() predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIsNull(FieldLastErrorMessage))
}

// LastErrorMessageNotNil applies the NotNil predicate on the "last_error_message" field.
func LastErrorMessageNotNil() predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotNull(FieldLastErrorMessage))
}

// LastErrorMessageEqualFold applies the EqualFold predicate on the "last_error_message" field.
func LastErrorMessageEqualFold(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEqualFold(FieldLastErrorMessage, v))
}

// LastErrorMessageContainsFold applies the ContainsFold predicate on the "last_error_message" field.
func LastErrorMessageContainsFold(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldContainsFold(FieldLastErrorMessage, v))
}

// SupersededByOutboxIDEQ applies the EQ predicate on the "superseded_by_outbox_id" field.
func SupersededByOutboxIDEQ(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldSupersededByOutboxID, v))
}

// SupersededByOutboxIDNEQ applies the NEQ predicate on the "superseded_by_outbox_id" field.
func SupersededByOutboxIDNEQ(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNEQ(FieldSupersededByOutboxID, v))
}

// SupersededByOutboxIDIn applies the In predicate on the "superseded_by_outbox_id" field.
func SupersededByOutboxIDIn(vs ...string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIn(FieldSupersededByOutboxID, vs...))
}

// SupersededByOutboxIDNotIn applies the NotIn predicate on the "superseded_by_outbox_id" field.
func SupersededByOutboxIDNotIn(vs ...string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotIn(FieldSupersededByOutboxID, vs...))
}

// SupersededByOutboxIDGT applies the GT predicate on the "superseded_by_outbox_id" field.
func SupersededByOutboxIDGT(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGT(FieldSupersededByOutboxID, v))
}

// SupersededByOutboxIDGTE applies the GTE predicate on the "superseded_by_outbox_id" field.
func SupersededByOutboxIDGTE(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGTE(FieldSupersededByOutboxID, v))
}

// SupersededByOutboxIDLT applies the LT predicate on the "superseded_by_outbox_id" field.
func SupersededByOutboxIDLT(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLT(FieldSupersededByOutboxID, v))
}

// SupersededByOutboxIDLTE applies the LTE predicate on the "superseded_by_outbox_id" field.
func SupersededByOutboxIDLTE(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLTE(FieldSupersededByOutboxID, v))
}

// SupersededByOutboxIDContains applies the Contains predicate on the "superseded_by_outbox_id" field.
func SupersededByOutboxIDContains(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldContains(FieldSupersededByOutboxID, v))
}

// SupersededByOutboxIDHasPrefix applies the HasPrefix predicate on the "superseded_by_outbox_id" field.
func SupersededByOutboxIDHasPrefix(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldHasPrefix(FieldSupersededByOutboxID, v))
}

// SupersededByOutboxIDHasSuffix applies the HasSuffix predicate on the "superseded_by_outbox_id" field.
func SupersededByOutboxIDHasSuffix(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldHasSuffix(FieldSupersededByOutboxID, v))
}

// SupersededByOutboxIDIsNil applies the IsNil predicate on the "superseded_by_outbox_id" field.
func SupersededByOutboxIDIsNil() predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIsNull(FieldSupersededByOutboxID))
}

// SupersededByOutboxIDNotNil applies the NotNil predicate on the "superseded_by_outbox_id" field.
func SupersededByOutboxIDNotNil() predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotNull(FieldSupersededByOutboxID))
}

// SupersededByOutboxIDEqualFold applies the EqualFold predicate on the "superseded_by_outbox_id" field.
func SupersededByOutboxIDEqualFold(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEqualFold(FieldSupersededByOutboxID, v))
}

// SupersededByOutboxIDContainsFold applies the ContainsFold predicate on the "superseded_by_outbox_id" field.
func SupersededByOutboxIDContainsFold(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldContainsFold(FieldSupersededByOutboxID, v))
}

// CanceledReasonEQ applies the EQ predicate on the "canceled_reason" field.
func CanceledReasonEQ(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldCanceledReason, v))
}

// CanceledReasonNEQ applies the NEQ predicate on the "canceled_reason" field.
func CanceledReasonNEQ(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNEQ(FieldCanceledReason, v))
}

// CanceledReasonIn applies the In predicate on the "canceled_reason" field.
func CanceledReasonIn(vs ...string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIn(FieldCanceledReason, vs...))
}

// CanceledReasonNotIn applies the NotIn predicate on the "canceled_reason" field.
func CanceledReasonNotIn(vs ...string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotIn(FieldCanceledReason, vs...))
}

// CanceledReasonGT applies the GT predicate on the "canceled_reason" field.
func CanceledReasonGT(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGT(FieldCanceledReason, v))
}

// CanceledReasonGTE applies the GTE predicate on the "canceled_reason" field.
func CanceledReasonGTE(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGTE(FieldCanceledReason, v))
}

// CanceledReasonLT applies the LT predicate on the "canceled_reason" field.
func CanceledReasonLT(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLT(FieldCanceledReason, v))
}

// CanceledReasonLTE applies the LTE predicate on the "canceled_reason" field.
func CanceledReasonLTE(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLTE(FieldCanceledReason, v))
}

// CanceledReasonContains applies the Contains predicate on the "canceled_reason" field.
func CanceledReasonContains(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldContains(FieldCanceledReason, v))
}

// CanceledReasonHasPrefix applies the HasPrefix predicate on the "canceled_reason" field.
func CanceledReasonHasPrefix(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldHasPrefix(FieldCanceledReason, v))
}

// CanceledReasonHasSuffix applies the HasSuffix predicate on the "canceled_reason" field.
func CanceledReasonHasSuffix(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldHasSuffix(FieldCanceledReason, v))
}

// CanceledReasonIsNil applies the IsNil predicate on the "canceled_reason" field.
func CanceledReasonIsNil() predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIsNull(FieldCanceledReason))
}

// CanceledReasonNotNil applies the NotNil predicate on the "canceled_reason" field.
func CanceledReasonNotNil() predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotNull(FieldCanceledReason))
}

// CanceledReasonEqualFold applies the EqualFold predicate on the "canceled_reason" field.
func CanceledReasonEqualFold(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEqualFold(FieldCanceledReason, v))
}

// CanceledReasonContainsFold applies the ContainsFold predicate on the "canceled_reason" field.
func CanceledReasonContainsFold(v string) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldContainsFold(FieldCanceledReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.OutboxAction {
	return predicate.OutboxAction(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasLoop applies the HasEdge predicate on the "loop" edge.
func HasLoop() predicate.OutboxAction {
	return predicate.OutboxAction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LoopTable, LoopColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLoopWith applies the HasEdge predicate on the "loop" edge with a given conditions (other predicates).
func HasLoopWith(preds ...predicate.Loop) predicate.OutboxAction {
	return predicate.OutboxAction(func(s *sql.Selector) {
		step := newLoopStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAttempts applies the HasEdge predicate on the "attempts" edge.
func HasAttempts() predicate.OutboxAction {
	return predicate.OutboxAction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttemptsTable, AttemptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttemptsWith applies the HasEdge predicate on the "attempts" edge with a given conditions (other predicates).
func HasAttemptsWith(preds ...predicate.OutboxAttempt) predicate.OutboxAction {
	return predicate.OutboxAction(func(s *sql.Selector) {
		step := newAttemptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OutboxAction) predicate.OutboxAction {
	return predicate.OutboxAction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OutboxAction) predicate.OutboxAction {
	return predicate.OutboxAction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OutboxAction) predicate.OutboxAction {
	return predicate.OutboxAction(sql.NotPredicates(p))
}
