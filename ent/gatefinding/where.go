// Code generated by ent, DO NOT EDIT.

package gatefinding

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldContainsFold(FieldID, id))
}

// LoopID applies equality check predicate on the "loop_id" field. It's identical to LoopIDEQ.
func LoopID(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldLoopID, v))
}

// HeadSha applies equality check predicate on the "head_sha" field. It's identical to HeadShaEQ.
func HeadSha(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldHeadSha, v))
}

// StableFindingID applies equality check predicate on the "stable_finding_id" field. It's identical to StableFindingIDEQ.
func StableFindingID(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldStableFindingID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldCategory, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldTitle, v))
}

// Detail applies equality check predicate on the "detail" field. It's identical to DetailEQ.
func Detail(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldDetail, v))
}

// SuggestedFix applies equality check predicate on the "suggested_fix" field. It's identical to SuggestedFixEQ.
func SuggestedFix(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldSuggestedFix, v))
}

// IsBlocking applies equality check predicate on the "is_blocking" field. It's identical to IsBlockingEQ.
func IsBlocking(v bool) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldIsBlocking, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedByEventID applies equality check predicate on the "resolved_by_event_id" field. It's identical to ResolvedByEventIDEQ.
func ResolvedByEventID(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldResolvedByEventID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldCreatedAt, v))
}

// LoopIDEQ applies the EQ predicate on the "loop_id" field.
func LoopIDEQ(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldLoopID, v))
}

// LoopIDNEQ applies the NEQ predicate on the "loop_id" field.
func LoopIDNEQ(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNEQ(FieldLoopID, v))
}

// LoopIDIn applies the In predicate on the "loop_id" field.
func LoopIDIn(vs ...string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldIn(FieldLoopID, vs...))
}

// LoopIDNotIn applies the NotIn predicate on the "loop_id" field.
func LoopIDNotIn(vs ...string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNotIn(FieldLoopID, vs...))
}

// LoopIDGT applies the GT predicate on the "loop_id" field.
func LoopIDGT(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGT(FieldLoopID, v))
}

// LoopIDGTE applies the GTE predicate on the "loop_id" field.
func LoopIDGTE(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGTE(FieldLoopID, v))
}

// LoopIDLT applies the LT predicate on the "loop_id" field.
func LoopIDLT(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLT(FieldLoopID, v))
}

// LoopIDLTE applies the LTE predicate on the "loop_id" field.
func LoopIDLTE(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLTE(FieldLoopID, v))
}

// LoopIDContains applies the Contains predicate on the "loop_id" field.
func LoopIDContains(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldContains(FieldLoopID, v))
}

// LoopIDHasPrefix applies the HasPrefix predicate on the "loop_id" field.
func LoopIDHasPrefix(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldHasPrefix(FieldLoopID, v))
}

// LoopIDHasSuffix applies the HasSuffix predicate on the "loop_id" field.
func LoopIDHasSuffix(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldHasSuffix(FieldLoopID, v))
}

// LoopIDEqualFold applies the EqualFold predicate on the "loop_id" field.
func LoopIDEqualFold(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEqualFold(FieldLoopID, v))
}

// LoopIDContainsFold applies the ContainsFold predicate on the "loop_id" field.
func LoopIDContainsFold(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldContainsFold(FieldLoopID, v))
}

// GateKindEQ applies the EQ predicate on the "gate_kind" field.
func GateKindEQ(v GateKind) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldGateKind, v))
}

// GateKindNEQ applies the NEQ predicate on the "gate_kind" field.
func GateKindNEQ(v GateKind) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNEQ(FieldGateKind, v))
}

// GateKindIn applies the In predicate on the "gate_kind" field.
func GateKindIn(vs ...GateKind) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldIn(FieldGateKind, vs...))
}

// GateKindNotIn applies the NotIn predicate on the "gate_kind" field.
func GateKindNotIn(vs ...GateKind) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNotIn(FieldGateKind, vs...))
}

// HeadShaEQ applies the EQ predicate on the "head_sha" field.
func HeadShaEQ(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldHeadSha, v))
}

// HeadShaNEQ applies the NEQ predicate on the "head_sha" field.
func HeadShaNEQ(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNEQ(FieldHeadSha, v))
}

// HeadShaIn applies the In predicate on the "head_sha" field.
func HeadShaIn(vs ...string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldIn(FieldHeadSha, vs...))
}

// HeadShaNotIn applies the NotIn predicate on the "head_sha" field.
func HeadShaNotIn(vs ...string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNotIn(FieldHeadSha, vs...))
}

// HeadShaGT applies the GT predicate on the "head_sha" field.
func HeadShaGT(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGT(FieldHeadSha, v))
}

// HeadShaGTE applies the GTE predicate on the "head_sha" field.
func HeadShaGTE(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGTE(FieldHeadSha, v))
}

// HeadShaLT applies the LT predicate on the "head_sha" field.
func HeadShaLT(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLT(FieldHeadSha, v))
}

// HeadShaLTE applies the LTE predicate on the "head_sha" field.
func HeadShaLTE(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLTE(FieldHeadSha, v))
}

// HeadShaContains applies the Contains predicate on the "head_sha" field.
func HeadShaContains(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldContains(FieldHeadSha, v))
}

// HeadShaHasPrefix applies the HasPrefix predicate on the "head_sha" field.
func HeadShaHasPrefix(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldHasPrefix(FieldHeadSha, v))
}

// HeadShaHasSuffix applies the HasSuffix predicate on the "head_sha" field.
func HeadShaHasSuffix(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldHasSuffix(FieldHeadSha, v))
}

// HeadShaEqualFold applies the EqualFold predicate on the "head_sha" field.
func HeadShaEqualFold(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEqualFold(FieldHeadSha, v))
}

// HeadShaContainsFold applies the ContainsFold predicate on the "head_sha" field.
func HeadShaContainsFold(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldContainsFold(FieldHeadSha, v))
}

// StableFindingIDEQ applies the EQ predicate on the "stable_finding_id" field.
func StableFindingIDEQ(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldStableFindingID, v))
}

// StableFindingIDNEQ applies the NEQ predicate on the "stable_finding_id" field.
func StableFindingIDNEQ(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNEQ(FieldStableFindingID, v))
}

// StableFindingIDIn applies the In predicate on the "stable_finding_id" field.
func StableFindingIDIn(vs ...string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldIn(FieldStableFindingID, vs...))
}

// StableFindingIDNotIn applies the NotIn predicate on the "stable_finding_id" field.
func StableFindingIDNotIn(vs ...string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNotIn(FieldStableFindingID, vs...))
}

// StableFindingIDGT applies the GT predicate on the "stable_finding_id" field.
func StableFindingIDGT(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGT(FieldStableFindingID, v))
}

// StableFindingIDGTE applies the GTE predicate on the "stable_finding_id" field.
func StableFindingIDGTE(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGTE(FieldStableFindingID, v))
}

// StableFindingIDLT applies the LT predicate on the "stable_finding_id" field.
func StableFindingIDLT(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLT(FieldStableFindingID, v))
}

// StableFindingIDLTE applies the LTE predicate on the "stable_finding_id" field.
func StableFindingIDLTE(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLTE(FieldStableFindingID, v))
}

// StableFindingIDContains applies the Contains predicate on the "stable_finding_id" field.
func StableFindingIDContains(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldContains(FieldStableFindingID, v))
}

// StableFindingIDHasPrefix applies the HasPrefix predicate on the "stable_finding_id" field.
func StableFindingIDHasPrefix(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldHasPrefix(FieldStableFindingID, v))
}

// StableFindingIDHasSuffix applies the HasSuffix predicate on the "stable_finding_id" field.
func StableFindingIDHasSuffix(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldHasSuffix(FieldStableFindingID, v))
}

// StableFindingIDEqualFold applies the EqualFold predicate on the "stable_finding_id" field.
func StableFindingIDEqualFold(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEqualFold(FieldStableFindingID, v))
}

// StableFindingIDContainsFold applies the ContainsFold predicate on the "stable_finding_id" field.
func StableFindingIDContainsFold(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldContainsFold(FieldStableFindingID, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNotIn(FieldSeverity, vs...))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldContainsFold(FieldCategory, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldContainsFold(FieldTitle, v))
}

// DetailEQ applies the EQ predicate on the "detail" field.
func DetailEQ(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldDetail, v))
}

// DetailNEQ applies the NEQ predicate on the "detail" field.
func DetailNEQ(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNEQ(FieldDetail, v))
}

// DetailIn applies the In predicate on the "detail" field.
func DetailIn(vs ...string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldIn(FieldDetail, vs...))
}

// DetailNotIn applies the NotIn predicate on the "detail" field.
func DetailNotIn(vs ...string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNotIn(FieldDetail, vs...))
}

// DetailGT applies the GT predicate on the "detail" field.
func DetailGT(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGT(FieldDetail, v))
}

// DetailGTE applies the GTE predicate on the "detail" field.
func DetailGTE(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGTE(FieldDetail, v))
}

// DetailLT applies the LT predicate on the "detail" field.
func DetailLT(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLT(FieldDetail, v))
}

// DetailLTE applies the LTE predicate on the "detail" field.
func DetailLTE(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLTE(FieldDetail, v))
}

// DetailContains applies the Contains predicate on the "detail" field.
func DetailContains(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldContains(FieldDetail, v))
}

// DetailHasPrefix applies the HasPrefix predicate on the "detail" field.
func DetailHasPrefix(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldHasPrefix(FieldDetail, v))
}

// DetailHasSuffix applies the HasSuffix predicate on the "detail" field.
func DetailHasSuffix(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldHasSuffix(FieldDetail, v))
}

// DetailEqualFold applies the EqualFold predicate on the "detail" field.
func DetailEqualFold(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEqualFold(FieldDetail, v))
}

// DetailContainsFold applies the ContainsFold predicate on the "detail" field.
func DetailContainsFold(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldContainsFold(FieldDetail, v))
}

// SuggestedFixEQ applies the EQ predicate on the "suggested_fix" field.
func SuggestedFixEQ(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldSuggestedFix, v))
}

// SuggestedFixNEQ applies the NEQ predicate on the "suggested_fix" field.
func SuggestedFixNEQ(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNEQ(FieldSuggestedFix, v))
}

// SuggestedFixIn applies the In predicate on the "suggested_fix" field.
func SuggestedFixIn(vs ...string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldIn(FieldSuggestedFix, vs...))
}

// SuggestedFixNotIn applies the NotIn predicate on the "suggested_fix" field.
func SuggestedFixNotIn(vs ...string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNotIn(FieldSuggestedFix, vs...))
}

// SuggestedFixGT applies the GT predicate on the "suggested_fix" field.
func SuggestedFixGT(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGT(FieldSuggestedFix, v))
}

// SuggestedFixGTE applies the GTE predicate on the "suggested_fix" field.
func SuggestedFixGTE(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGTE(FieldSuggestedFix, v))
}

// SuggestedFixLT applies the LT predicate on the "suggested_fix" field.
func SuggestedFixLT(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLT(FieldSuggestedFix, v))
}

// SuggestedFixLTE applies the LTE predicate on the "suggested_fix" field.
func SuggestedFixLTE(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLTE(FieldSuggestedFix, v))
}

// SuggestedFixContains applies the Contains predicate on the "suggested_fix" field.
func SuggestedFixContains(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldContains(FieldSuggestedFix, v))
}

// SuggestedFixHasPrefix applies the HasPrefix predicate on the "suggested_fix" field.
func SuggestedFixHasPrefix(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldHasPrefix(FieldSuggestedFix, v))
}

// SuggestedFixHasSuffix applies the HasSuffix predicate on the "suggested_fix" field.
func SuggestedFixHasSuffix(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldHasSuffix(FieldSuggestedFix, v))
}

// SuggestedFixIsNil applies the IsNil predicate on the "suggested_fix" field.
func SuggestedFixIsNil() predicate.GateFinding {
	return predicate.GateFinding(sql.FieldIsNull(FieldSuggestedFix))
}

// SuggestedFixNotNil applies the NotNil predicate on the "suggested_fix" field.
func SuggestedFixNotNil() predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNotNull(FieldSuggestedFix))
}

// SuggestedFixEqualFold applies the EqualFold predicate on the "suggested_fix" field.
func SuggestedFixEqualFold(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEqualFold(FieldSuggestedFix, v))
}

// SuggestedFixContainsFold applies the ContainsFold predicate on the "suggested_fix" field.
func SuggestedFixContainsFold(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldContainsFold(FieldSuggestedFix, v))
}

// IsBlockingEQ applies the EQ predicate on the "is_blocking" field.
func IsBlockingEQ(v bool) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldIsBlocking, v))
}

// IsBlockingNEQ applies the NEQ predicate on the "is_blocking" field.
func IsBlockingNEQ(v bool) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNEQ(FieldIsBlocking, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.GateFinding {
	return predicate.GateFinding(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNotNull(FieldResolvedAt))
}

// ResolvedByEventIDEQ applies the EQ predicate on the "resolved_by_event_id" field.
func ResolvedByEventIDEQ(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldResolvedByEventID, v))
}

// ResolvedByEventIDNEQ applies the NEQ predicate on the "resolved_by_event_id" field.
func ResolvedByEventIDNEQ(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNEQ(FieldResolvedByEventID, v))
}

// ResolvedByEventIDIn applies the In predicate on the "resolved_by_event_id" field.
func ResolvedByEventIDIn(vs ...string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldIn(FieldResolvedByEventID, vs...))
}

// ResolvedByEventIDNotIn applies the NotIn predicate on the "resolved_by_event_id" field.
func ResolvedByEventIDNotIn(vs ...string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNotIn(FieldResolvedByEventID, vs...))
}

// ResolvedByEventIDGT applies the GT predicate on the "resolved_by_event_id" field.
func ResolvedByEventIDGT(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGT(FieldResolvedByEventID, v))
}

// ResolvedByEventIDGTE applies the GTE predicate on the "resolved_by_event_id" field.
func ResolvedByEventIDGTE(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGTE(FieldResolvedByEventID, v))
}

// ResolvedByEventIDLT applies the LT predicate on the "resolved_by_event_id" field.
func ResolvedByEventIDLT(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLT(FieldResolvedByEventID, v))
}

// ResolvedByEventIDLTE applies the LTE predicate on the "resolved_by_event_id" field.
func ResolvedByEventIDLTE(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLTE(FieldResolvedByEventID, v))
}

// ResolvedByEventIDContains applies the Contains predicate on the "resolved_by_event_id" field.
func ResolvedByEventIDContains(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldContains(FieldResolvedByEventID, v))
}

// ResolvedByEventIDHasPrefix applies the HasPrefix predicate on the "resolved_by_event_id" field.
func ResolvedByEventIDHasPrefix(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldHasPrefix(FieldResolvedByEventID, v))
}

// ResolvedByEventIDHasSuffix applies the HasSuffix predicate on the "resolved_by_event_id" field.
func ResolvedByEventIDHasSuffix(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldHasSuffix(FieldResolvedByEventID, v))
}

// ResolvedByEventIDIsNil applies the IsNil predicate on the "resolved_by_event_id" field.
func ResolvedByEventIDIsNil() predicate.GateFinding {
	return predicate.GateFinding(sql.FieldIsNull(FieldResolvedByEventID))
}

// ResolvedByEventIDNotNil applies the NotNil predicate on the "resolved_by_event_id" field.
func ResolvedByEventIDNotNil() predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNotNull(FieldResolvedByEventID))
}

// ResolvedByEventIDEqualFold applies the EqualFold predicate on the "resolved_by_event_id" field.
func ResolvedByEventIDEqualFold(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEqualFold(FieldResolvedByEventID, v))
}

// ResolvedByEventIDContainsFold applies the ContainsFold predicate on the "resolved_by_event_id" field.
func ResolvedByEventIDContainsFold(v string) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldContainsFold(FieldResolvedByEventID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GateFinding {
	return predicate.GateFinding(sql.FieldLTE(FieldCreatedAt, v))
}

// HasLoop applies the HasEdge predicate on the "loop" edge.
func HasLoop() predicate.GateFinding {
	return predicate.GateFinding(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LoopTable, LoopColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLoopWith applies the HasEdge predicate on the "loop" edge with a given conditions (other predicates).
func HasLoopWith(preds ...predicate.Loop) predicate.GateFinding {
	return predicate.GateFinding(func(s *sql.Selector) {
		step := newLoopStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GateFinding) predicate.GateFinding {
	return predicate.GateFinding(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GateFinding) predicate.GateFinding {
	return predicate.GateFinding(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GateFinding) predicate.GateFinding {
	return predicate.GateFinding(sql.NotPredicates(p))
}
