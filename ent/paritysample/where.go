// Code generated by ent, DO NOT EDIT.

package paritysample

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldContainsFold(FieldID, id))
}

// CauseType applies equality check predicate on the "cause_type" field. It's identical to CauseTypeEQ.
func CauseType(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldEQ(FieldCauseType, v))
}

// TargetClass applies equality check predicate on the "target_class" field. It's identical to TargetClassEQ.
func TargetClass(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldEQ(FieldTargetClass, v))
}

// Matched applies equality check predicate on the "matched" field. It's identical to MatchedEQ.
func Matched(v bool) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldEQ(FieldMatched, v))
}

// Eligible applies equality check predicate on the "eligible" field. It's identical to EligibleEQ.
func Eligible(v bool) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldEQ(FieldEligible, v))
}

// ObservedAt applies equality check predicate on the "observed_at" field. It's identical to ObservedAtEQ.
func ObservedAt(v time.Time) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldEQ(FieldObservedAt, v))
}

// CauseTypeEQ applies the EQ predicate on the "cause_type" field.
func CauseTypeEQ(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldEQ(FieldCauseType, v))
}

// CauseTypeNEQ applies the NEQ predicate on the "cause_type" field.
func CauseTypeNEQ(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldNEQ(FieldCauseType, v))
}

// CauseTypeIn applies the In predicate on the "cause_type" field.
func CauseTypeIn(vs ...string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldIn(FieldCauseType, vs...))
}

// CauseTypeNotIn applies the NotIn predicate on the "cause_type" field.
func CauseTypeNotIn(vs ...string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldNotIn(FieldCauseType, vs...))
}

// CauseTypeGT applies the GT predicate on the "cause_type" field.
func CauseTypeGT(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldGT(FieldCauseType, v))
}

// CauseTypeGTE applies the GTE predicate on the "cause_type" field.
func CauseTypeGTE(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldGTE(FieldCauseType, v))
}

// CauseTypeLT applies the LT predicate on the "cause_type" field.
func CauseTypeLT(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldLT(FieldCauseType, v))
}

// CauseTypeLTE applies the LTE predicate on the "cause_type" field.
func CauseTypeLTE(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldLTE(FieldCauseType, v))
}

// CauseTypeContains applies the Contains predicate on the "cause_type" field.
func CauseTypeContains(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldContains(FieldCauseType, v))
}

// CauseTypeHasPrefix applies the HasPrefix predicate on the "cause_type" field.
func CauseTypeHasPrefix(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldHasPrefix(FieldCauseType, v))
}

// CauseTypeHasSuffix applies the HasSuffix predicate on the "cause_type" field.
func CauseTypeHasSuffix(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldHasSuffix(FieldCauseType, v))
}

// CauseTypeEqualFold applies the EqualFold predicate on the "cause_type" field.
func CauseTypeEqualFold(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldEqualFold(FieldCauseType, v))
}

// CauseTypeContainsFold applies the ContainsFold predicate on the "cause_type" field.
func CauseTypeContainsFold(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldContainsFold(FieldCauseType, v))
}

// TargetClassEQ applies the EQ predicate on the "target_class" field.
func TargetClassEQ(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldEQ(FieldTargetClass, v))
}

// TargetClassNEQ applies the NEQ predicate on the "target_class" field.
func TargetClassNEQ(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldNEQ(FieldTargetClass, v))
}

// TargetClassIn applies the In predicate on the "target_class" field.
func TargetClassIn(vs ...string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldIn(FieldTargetClass, vs...))
}

// TargetClassNotIn applies the NotIn predicate on the "target_class" field.
func TargetClassNotIn(vs ...string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldNotIn(FieldTargetClass, vs...))
}

// TargetClassGT applies the GT predicate on the "target_class" field.
func TargetClassGT(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldGT(FieldTargetClass, v))
}

// TargetClassGTE applies the GTE predicate on the "target_class" field.
func TargetClassGTE(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldGTE(FieldTargetClass, v))
}

// TargetClassLT applies the LT predicate on the "target_class" field.
func TargetClassLT(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldLT(FieldTargetClass, v))
}

// TargetClassLTE applies the LTE predicate on the "target_class" field.
func TargetClassLTE(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldLTE(FieldTargetClass, v))
}

// TargetClassContains applies the Contains predicate on the "target_class" field.
func TargetClassContains(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldContains(FieldTargetClass, v))
}

// TargetClassHasPrefix applies the HasPrefix predicate on the "target_class" field.
func TargetClassHasPrefix(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldHasPrefix(FieldTargetClass, v))
}

// TargetClassHasSuffix applies the HasSuffix predicate on the "target_class" field.
func TargetClassHasSuffix(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldHasSuffix(FieldTargetClass, v))
}

// TargetClassEqualFold applies the EqualFold predicate on the "target_class" field.
func TargetClassEqualFold(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldEqualFold(FieldTargetClass, v))
}

// TargetClassContainsFold applies the ContainsFold predicate on the "target_class" field.
func TargetClassContainsFold(v string) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldContainsFold(FieldTargetClass, v))
}

// MatchedEQ applies the EQ predicate on the "matched" field.
func MatchedEQ(v bool) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldEQ(FieldMatched, v))
}

// MatchedNEQ applies the NEQ predicate on the "matched" field.
func MatchedNEQ(v bool) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldNEQ(FieldMatched, v))
}

// EligibleEQ applies the EQ predicate on the "eligible" field.
func EligibleEQ(v bool) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldEQ(FieldEligible, v))
}

// EligibleNEQ applies the NEQ predicate on the "eligible" field.
func EligibleNEQ(v bool) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldNEQ(FieldEligible, v))
}

// ObservedAtEQ applies the EQ predicate on the "observed_at" field.
func ObservedAtEQ(v time.Time) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldEQ(FieldObservedAt, v))
}

// ObservedAtNEQ applies the NEQ predicate on the "observed_at" field.
func ObservedAtNEQ(v time.Time) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldNEQ(FieldObservedAt, v))
}

// ObservedAtIn applies the In predicate on the "observed_at" field.
func ObservedAtIn(vs ...time.Time) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldIn(FieldObservedAt, vs...))
}

// ObservedAtNotIn applies the NotIn predicate on the "observed_at" field.
func ObservedAtNotIn(vs ...time.Time) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldNotIn(FieldObservedAt, vs...))
}

// ObservedAtGT applies the GT predicate on the "observed_at" field.
func ObservedAtGT(v time.Time) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldGT(FieldObservedAt, v))
}

// ObservedAtGTE applies the GTE predicate on the "observed_at" field.
func ObservedAtGTE(v time.Time) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldGTE(FieldObservedAt, v))
}

// ObservedAtLT applies the LT predicate on the "observed_at" field.
func ObservedAtLT(v time.Time) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldLT(FieldObservedAt, v))
}

// ObservedAtLTE applies the LTE predicate on the "observed_at" field.
func ObservedAtLTE(v time.Time) predicate.ParitySample {
	return predicate.ParitySample(sql.FieldLTE(FieldObservedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ParitySample) predicate.ParitySample {
	return predicate.ParitySample(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ParitySample) predicate.ParitySample {
	return predicate.ParitySample(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ParitySample) predicate.ParitySample {
	return predicate.ParitySample(sql.NotPredicates(p))
}
