// Code generated by ent, DO NOT EDIT.

package gaterun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GateRun {
	return predicate.GateRun(sql.FieldContainsFold(FieldID, id))
}

// LoopID applies equality check predicate on the "loop_id" field. It's identical to LoopIDEQ.
func LoopID(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldLoopID, v))
}

// HeadSha applies equality check predicate on the "head_sha" field. It's identical to HeadShaEQ.
func HeadSha(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldHeadSha, v))
}

// LoopVersion applies equality check predicate on the "loop_version" field. It's identical to LoopVersionEQ.
func LoopVersion(v int) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldLoopVersion, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldStatus, v))
}

// GatePassed applies equality check predicate on the "gate_passed" field. It's identical to GatePassedEQ.
func GatePassed(v bool) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldGatePassed, v))
}

// TriggerEvent applies equality check predicate on the "trigger_event" field. It's identical to TriggerEventEQ.
func TriggerEvent(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldTriggerEvent, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldErrorCode, v))
}

// RequiredCheckSource applies equality check predicate on the "required_check_source" field. It's identical to RequiredCheckSourceEQ.
func RequiredCheckSource(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldRequiredCheckSource, v))
}

// UnresolvedThreadCount applies equality check predicate on the "unresolved_thread_count" field. It's identical to UnresolvedThreadCountEQ.
func UnresolvedThreadCount(v int) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldUnresolvedThreadCount, v))
}

// UnresolvedThreadCountSource applies equality check predicate on the "unresolved_thread_count_source" field. It's identical to UnresolvedThreadCountSourceEQ.
func UnresolvedThreadCountSource(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldUnresolvedThreadCountSource, v))
}

// InvalidOutput applies equality check predicate on the "invalid_output" field. It's identical to InvalidOutputEQ.
func InvalidOutput(v bool) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldInvalidOutput, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// LoopIDEQ applies the EQ predicate on the "loop_id" field.
func LoopIDEQ(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldLoopID, v))
}

// LoopIDNEQ applies the NEQ predicate on the "loop_id" field.
func LoopIDNEQ(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldLoopID, v))
}

// LoopIDIn applies the In predicate on the "loop_id" field.
func LoopIDIn(vs ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldIn(FieldLoopID, vs...))
}

// LoopIDNotIn applies the NotIn predicate on the "loop_id" field.
func LoopIDNotIn(vs ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNotIn(FieldLoopID, vs...))
}

// LoopIDGT applies the GT predicate on the "loop_id" field.
func LoopIDGT(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGT(FieldLoopID, v))
}

// LoopIDGTE applies the GTE predicate on the "loop_id" field.
func LoopIDGTE(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGTE(FieldLoopID, v))
}

// LoopIDLT applies the LT predicate on the "loop_id" field.
func LoopIDLT(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLT(FieldLoopID, v))
}

// LoopIDLTE applies the LTE predicate on the "loop_id" field.
func LoopIDLTE(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLTE(FieldLoopID, v))
}

// LoopIDContains applies the Contains predicate on the "loop_id" field.
func LoopIDContains(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldContains(FieldLoopID, v))
}

// LoopIDHasPrefix applies the HasPrefix predicate on the "loop_id" field.
func LoopIDHasPrefix(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldHasPrefix(FieldLoopID, v))
}

// LoopIDHasSuffix applies the HasSuffix predicate on the "loop_id" field.
func LoopIDHasSuffix(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldHasSuffix(FieldLoopID, v))
}

// LoopIDEqualFold applies the EqualFold predicate on the "loop_id" field.
func LoopIDEqualFold(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEqualFold(FieldLoopID, v))
}

// LoopIDContainsFold applies the ContainsFold predicate on the "loop_id" field.
func LoopIDContainsFold(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldContainsFold(FieldLoopID, v))
}

// GateKindEQ applies the EQ predicate on the "gate_kind" field.
func GateKindEQ(v GateKind) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldGateKind, v))
}

// GateKindNEQ applies the NEQ predicate on the "gate_kind" field.
func GateKindNEQ(v GateKind) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldGateKind, v))
}

// GateKindIn applies the In predicate on the "gate_kind" field.
func GateKindIn(vs ...GateKind) predicate.GateRun {
	return predicate.GateRun(sql.FieldIn(FieldGateKind, vs...))
}

// GateKindNotIn applies the NotIn predicate on the "gate_kind" field.
func GateKindNotIn(vs ...GateKind) predicate.GateRun {
	return predicate.GateRun(sql.FieldNotIn(FieldGateKind, vs...))
}

// HeadShaEQ applies the EQ predicate on the "head_sha" field.
func HeadShaEQ(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldHeadSha, v))
}

// HeadShaNEQ applies the NEQ predicate on the "head_sha" field.
func HeadShaNEQ(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldHeadSha, v))
}

// HeadShaIn applies the In predicate on the "head_sha" field.
func HeadShaIn(vs ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldIn(FieldHeadSha, vs...))
}

// HeadShaNotIn applies the NotIn predicate on the "head_sha" field.
func HeadShaNotIn(vs ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNotIn(FieldHeadSha, vs...))
}

// HeadShaGT applies the GT predicate on the "head_sha" field.
func HeadShaGT(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGT(FieldHeadSha, v))
}

// HeadShaGTE applies the GTE predicate on the "head_sha" field.
func HeadShaGTE(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGTE(FieldHeadSha, v))
}

// HeadShaLT applies the LT predicate on the "head_sha" field.
func HeadShaLT(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLT(FieldHeadSha, v))
}

// HeadShaLTE applies the LTE predicate on the "head_sha" field.
func HeadShaLTE(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLTE(FieldHeadSha, v))
}

// HeadShaContains applies the Contains predicate on the "head_sha" field.
func HeadShaContains(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldContains(FieldHeadSha, v))
}

// HeadShaHasPrefix applies the HasPrefix predicate on the "head_sha" field.
func HeadShaHasPrefix(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldHasPrefix(FieldHeadSha, v))
}

// HeadShaHasSuffix applies the HasSuffix predicate on the "head_sha" field.
func HeadShaHasSuffix(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldHasSuffix(FieldHeadSha, v))
}

// HeadShaEqualFold applies the EqualFold predicate on the "head_sha" field.
func HeadShaEqualFold(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEqualFold(FieldHeadSha, v))
}

// HeadShaContainsFold applies the ContainsFold predicate on the "head_sha" field.
func HeadShaContainsFold(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldContainsFold(FieldHeadSha, v))
}

// LoopVersionEQ applies the EQ predicate on the "loop_version" field.
func LoopVersionEQ(v int) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldLoopVersion, v))
}

// LoopVersionNEQ applies the NEQ predicate on the "loop_version" field.
func LoopVersionNEQ(v int) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldLoopVersion, v))
}

// LoopVersionIn applies the In predicate on the "loop_version" field.
func LoopVersionIn(vs ...int) predicate.GateRun {
	return predicate.GateRun(sql.FieldIn(FieldLoopVersion, vs...))
}

// LoopVersionNotIn applies the NotIn predicate on the "loop_version" field.
func LoopVersionNotIn(vs ...int) predicate.GateRun {
	return predicate.GateRun(sql.FieldNotIn(FieldLoopVersion, vs...))
}

// LoopVersionGT applies the GT predicate on the "loop_version" field.
func LoopVersionGT(v int) predicate.GateRun {
	return predicate.GateRun(sql.FieldGT(FieldLoopVersion, v))
}

// LoopVersionGTE applies the GTE predicate on the "loop_version" field.
func LoopVersionGTE(v int) predicate.GateRun {
	return predicate.GateRun(sql.FieldGTE(FieldLoopVersion, v))
}

// LoopVersionLT applies the LT predicate on the "loop_version" field.
func LoopVersionLT(v int) predicate.GateRun {
	return predicate.GateRun(sql.FieldLT(FieldLoopVersion, v))
}

// LoopVersionLTE applies the LTE predicate on the "loop_version" field.
func LoopVersionLTE(v int) predicate.GateRun {
	return predicate.GateRun(sql.FieldLTE(FieldLoopVersion, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldContainsFold(FieldStatus, v))
}

// GatePassedEQ applies the EQ predicate on the "gate_passed" field.
func GatePassedEQ(v bool) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldGatePassed, v))
}

// GatePassedNEQ applies the NEQ predicate on the "gate_passed" field.
func GatePassedNEQ(v bool) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldGatePassed, v))
}

// TriggerEventEQ applies the EQ predicate on the "trigger_event" field.
func TriggerEventEQ(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldTriggerEvent, v))
}

// TriggerEventNEQ applies the NEQ predicate on the "trigger_event" field.
func TriggerEventNEQ(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldTriggerEvent, v))
}

// TriggerEventIn applies the In predicate on the "trigger_event" field.
func TriggerEventIn(vs ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldIn(FieldTriggerEvent, vs...))
}

// TriggerEventNotIn applies the NotIn predicate on the "trigger_event" field.
func TriggerEventNotIn(vs ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNotIn(FieldTriggerEvent, vs...))
}

// TriggerEventGT applies the GT predicate on the "trigger_event" field.
func TriggerEventGT(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGT(FieldTriggerEvent, v))
}

// TriggerEventGTE applies the GTE predicate on the "trigger_event" field.
func TriggerEventGTE(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGTE(FieldTriggerEvent, v))
}

// TriggerEventLT applies the LT predicate on the "trigger_event" field.
func TriggerEventLT(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLT(FieldTriggerEvent, v))
}

// TriggerEventLTE applies the LTE predicate on the "trigger_event" field.
func TriggerEventLTE(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLTE(FieldTriggerEvent, v))
}

// TriggerEventContains applies the Contains predicate on the "trigger_event" field.
func TriggerEventContains(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldContains(FieldTriggerEvent, v))
}

// TriggerEventHasPrefix applies the HasPrefix predicate on the "trigger_event" field.
func TriggerEventHasPrefix(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldHasPrefix(FieldTriggerEvent, v))
}

// TriggerEventHasSuffix applies the HasSuffix predicate on the "trigger_event" field.
func TriggerEventHasSuffix(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldHasSuffix(FieldTriggerEvent, v))
}

// TriggerEventIsNil applies the IsNil predicate on the "trigger_event" field.
func TriggerEventIsNil() predicate.GateRun {
	return predicate.GateRun(sql.FieldIsNull(FieldTriggerEvent))
}

// TriggerEventNotNil applies the NotNil predicate on the "trigger_event" field.
func TriggerEventNotNil() predicate.GateRun {
	return predicate.GateRun(sql.FieldNotNull(FieldTriggerEvent))
}

// TriggerEventEqualFold applies the EqualFold predicate on the "trigger_event" field.
func TriggerEventEqualFold(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEqualFold(FieldTriggerEvent, v))
}

// TriggerEventContainsFold applies the ContainsFold predicate on the "trigger_event" field.
func TriggerEventContainsFold(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldContainsFold(FieldTriggerEvent, v))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.GateRun {
	return predicate.GateRun(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.GateRun {
	return predicate.GateRun(sql.FieldNotNull(FieldErrorCode))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldContainsFold(FieldErrorCode, v))
}

// RequiredCheckSourceEQ applies the EQ predicate on the "required_check_source" field.
func RequiredCheckSourceEQ(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldRequiredCheckSource, v))
}

// RequiredCheckSourceNEQ applies the NEQ predicate on the "required_check_source" field.
func RequiredCheckSourceNEQ(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldRequiredCheckSource, v))
}

// RequiredCheckSourceIn applies the In predicate on the "required_check_source" field.
func RequiredCheckSourceIn(vs ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldIn(FieldRequiredCheckSource, vs...))
}

// RequiredCheckSourceNotIn applies the NotIn predicate on the "required_check_source" field.
func RequiredCheckSourceNotIn(vs ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNotIn(FieldRequiredCheckSource, vs...))
}

// RequiredCheckSourceGT applies the GT predicate on the "required_check_source" field.
func RequiredCheckSourceGT(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGT(FieldRequiredCheckSource, v))
}

// RequiredCheckSourceGTE applies the GTE predicate on the "required_check_source" field.
func RequiredCheckSourceGTE(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGTE(FieldRequiredCheckSource, v))
}

// RequiredCheckSourceLT applies the LT predicate on the "required_check_source" field.
func RequiredCheckSourceLT(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLT(FieldRequiredCheckSource, v))
}

// RequiredCheckSourceLTE applies the LTE predicate on the "required_check_source" field.
func RequiredCheckSourceLTE(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLTE(FieldRequiredCheckSource, v))
}

// RequiredCheckSourceContains applies the Contains predicate on the "required_check_source" field.
func RequiredCheckSourceContains(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldContains(FieldRequiredCheckSource, v))
}

// RequiredCheckSourceHasPrefix applies the HasPrefix predicate on the "required_check_source" field.
func RequiredCheckSourceHasPrefix(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldHasPrefix(FieldRequiredCheckSource, v))
}

// RequiredCheckSourceHasSuffix applies the HasSuffix predicate on the "required_check_source" field.
func RequiredCheckSourceHasSuffix(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldHasSuffix(FieldRequiredCheckSource, v))
}

// RequiredCheckSourceIsNil applies the IsNil predicate on the "required_check_source" field.
func RequiredCheckSourceIsNil() predicate.GateRun {
	return predicate.GateRun(sql.FieldIsNull(FieldRequiredCheckSource))
}

// RequiredCheckSourceNotNil applies the NotNil predicate on the "required_check_source" field.
func RequiredCheckSourceNotNil() predicate.GateRun {
	return predicate.GateRun(sql.FieldNotNull(FieldRequiredCheckSource))
}

// RequiredCheckSourceEqualFold applies the EqualFold predicate on the "required_check_source" field.
func RequiredCheckSourceEqualFold(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEqualFold(FieldRequiredCheckSource, v))
}

// RequiredCheckSourceContainsFold applies the ContainsFold predicate on the "required_check_source" field.
func RequiredCheckSourceContainsFold(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldContainsFold(FieldRequiredCheckSource, v))
}

// RequiredChecksIsNil applies the IsNil predicate on the "required_checks" field.
func RequiredChecksIsNil() predicate.GateRun {
	return predicate.GateRun(sql.FieldIsNull(FieldRequiredChecks))
}

// RequiredChecksNotNil applies the NotNil predicate on the "required_checks" field.
func RequiredChecksNotNil() predicate.GateRun {
	return predicate.GateRun(sql.FieldNotNull(FieldRequiredChecks))
}

// FailingRequiredChecksIsNil applies the IsNil predicate on the "failing_required_checks" field.
func FailingRequiredChecksIsNil() predicate.GateRun {
	return predicate.GateRun(sql.FieldIsNull(FieldFailingRequiredChecks))
}

// FailingRequiredChecksNotNil applies the NotNil predicate on the "failing_required_checks" field.
func FailingRequiredChecksNotNil() predicate.GateRun {
	return predicate.GateRun(sql.FieldNotNull(FieldFailingRequiredChecks))
}

// UnresolvedThreadCountEQ applies the EQ predicate on the "unresolved_thread_count" field.
func UnresolvedThreadCountEQ(v int) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldUnresolvedThreadCount, v))
}

// UnresolvedThreadCountNEQ applies the NEQ predicate on the "unresolved_thread_count" field.
func UnresolvedThreadCountNEQ(v int) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldUnresolvedThreadCount, v))
}

// UnresolvedThreadCountIn applies the In predicate on the "unresolved_thread_count" field.
func UnresolvedThreadCountIn(vs ...int) predicate.GateRun {
	return predicate.GateRun(sql.FieldIn(FieldUnresolvedThreadCount, vs...))
}

// UnresolvedThreadCountNotIn applies the NotIn predicate on the "unresolved_thread_count" field.
func UnresolvedThreadCountNotIn(vs ...int) predicate.GateRun {
	return predicate.GateRun(sql.FieldNotIn(FieldUnresolvedThreadCount, vs...))
}

// UnresolvedThreadCountGT applies the GT predicate on the "unresolved_thread_count" field.
func UnresolvedThreadCountGT(v int) predicate.GateRun {
	return predicate.GateRun(sql.FieldGT(FieldUnresolvedThreadCount, v))
}

// UnresolvedThreadCountGTE applies the GTE predicate on the "unresolved_thread_count" field.
func UnresolvedThreadCountGTE(v int) predicate.GateRun {
	return predicate.GateRun(sql.FieldGTE(FieldUnresolvedThreadCount, v))
}

// UnresolvedThreadCountLT applies the LT predicate on the "unresolved_thread_count" field.
func UnresolvedThreadCountLT(v int) predicate.GateRun {
	return predicate.GateRun(sql.FieldLT(FieldUnresolvedThreadCount, v))
}

// UnresolvedThreadCountLTE applies the LTE predicate on the "unresolved_thread_count" field.
func UnresolvedThreadCountLTE(v int) predicate.GateRun {
	return predicate.GateRun(sql.FieldLTE(FieldUnresolvedThreadCount, v))
}

// UnresolvedThreadCountIsNil applies the IsNil predicate on the "unresolved_thread_count" field.
func UnresolvedThreadCountIsNil() predicate.GateRun {
	return predicate.GateRun(sql.FieldIsNull(FieldUnresolvedThreadCount))
}

// UnresolvedThreadCountNotNil applies the NotNil predicate on the "unresolved_thread_count" field.
func UnresolvedThreadCountNotNil() predicate.GateRun {
	return predicate.GateRun(sql.FieldNotNull(FieldUnresolvedThreadCount))
}

// UnresolvedThreadCountSourceEQ applies the EQ predicate on the "unresolved_thread_count_source" field.
func UnresolvedThreadCountSourceEQ(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldUnresolvedThreadCountSource, v))
}

// UnresolvedThreadCountSourceNEQ applies the NEQ predicate on the "unresolved_thread_count_source" field.
func UnresolvedThreadCountSourceNEQ(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldUnresolvedThreadCountSource, v))
}

// UnresolvedThreadCountSourceIn applies the In predicate on the "unresolved_thread_count_source" field.
func UnresolvedThreadCountSourceIn(vs ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldIn(FieldUnresolvedThreadCountSource, vs...))
}

// UnresolvedThreadCountSourceNotIn applies the NotIn predicate on the "unresolved_thread_count_source" field.
func UnresolvedThreadCountSourceNotIn(vs ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNotIn(FieldUnresolvedThreadCountSource, vs...))
}

// UnresolvedThreadCountSourceGT applies the GT predicate on the "unresolved_thread_count_source" field.
func UnresolvedThreadCountSourceGT(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGT(FieldUnresolvedThreadCountSource, v))
}

// UnresolvedThreadCountSourceGTE applies the GTE predicate on the "unresolved_thread_count_source" field.
func UnresolvedThreadCountSourceGTE(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGTE(FieldUnresolvedThreadCountSource, v))
}

// UnresolvedThreadCountSourceLT applies the LT predicate on the "unresolved_thread_count_source" field.
func UnresolvedThreadCountSourceLT(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLT(FieldUnresolvedThreadCountSource, v))
}

// UnresolvedThreadCountSourceLTE applies the LTE predicate on the "unresolved_thread_count_source" field.
func UnresolvedThreadCountSourceLTE(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLTE(FieldUnresolvedThreadCountSource, v))
}

// UnresolvedThreadCountSourceContains applies the Contains predicate on the "unresolved_thread_count_source" field.
func UnresolvedThreadCountSourceContains(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldContains(FieldUnresolvedThreadCountSource, v))
}

// UnresolvedThreadCountSourceHasPrefix applies the HasPrefix predicate on the "unresolved_thread_count_source" field.
func UnresolvedThreadCountSourceHasPrefix(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldHasPrefix(FieldUnresolvedThreadCountSource, v))
}

// UnresolvedThreadCountSourceHasSuffix applies the HasSuffix predicate on the "unresolved_thread_count_source" field.
func UnresolvedThreadCountSourceHasSuffix(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldHasSuffix(FieldUnresolvedThreadCountSource, v))
}

// UnresolvedThreadCountSourceIsNil applies the IsNil predicate on the "unresolved_thread_count_source" field.
func UnresolvedThreadCountSourceIsNil() predicate.GateRun {
	return predicate.GateRun(sql.FieldIsNull(FieldUnresolvedThreadCountSource))
}

// UnresolvedThreadCountSourceNotNil applies the NotNil predicate on the "unresolved_thread_count_source" field.
func UnresolvedThreadCountSourceNotNil() predicate.GateRun {
	return predicate.GateRun(sql.FieldNotNull(FieldUnresolvedThreadCountSource))
}

// UnresolvedThreadCountSourceEqualFold applies the EqualFold predicate on the "unresolved_thread_count_source" field.
func UnresolvedThreadCountSourceEqualFold(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEqualFold(FieldUnresolvedThreadCountSource, v))
}

// UnresolvedThreadCountSourceContainsFold applies the ContainsFold predicate on the "unresolved_thread_count_source" field.
func UnresolvedThreadCountSourceContainsFold(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldContainsFold(FieldUnresolvedThreadCountSource, v))
}

// InvalidOutputEQ applies the EQ predicate on the "invalid_output" field.
func InvalidOutputEQ(v bool) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldInvalidOutput, v))
}

// InvalidOutputNEQ applies the NEQ predicate on the "invalid_output" field.
func InvalidOutputNEQ(v bool) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldInvalidOutput, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.GateRun {
	return predicate.GateRun(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.GateRun {
	return predicate.GateRun(sql.FieldNotNull(FieldDetails))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasLoop applies the HasEdge predicate on the "loop" edge.
func HasLoop() predicate.GateRun {
	return predicate.GateRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LoopTable, LoopColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLoopWith applies the HasEdge predicate on the "loop" edge with a given conditions (other predicates).
func HasLoopWith(preds ...predicate.Loop) predicate.GateRun {
	return predicate.GateRun(func(s *sql.Selector) {
		step := newLoopStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GateRun) predicate.GateRun {
	return predicate.GateRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GateRun) predicate.GateRun {
	return predicate.GateRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GateRun) predicate.GateRun {
	return predicate.GateRun(sql.NotPredicates(p))
}
