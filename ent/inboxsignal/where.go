// Code generated by ent, DO NOT EDIT.

package inboxsignal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldContainsFold(FieldID, id))
}

// LoopID applies equality check predicate on the "loop_id" field. It's identical to LoopIDEQ.
func LoopID(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldEQ(FieldLoopID, v))
}

// CauseType applies equality check predicate on the "cause_type" field. It's identical to CauseTypeEQ.
func CauseType(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldEQ(FieldCauseType, v))
}

// CanonicalCauseID applies equality check predicate on the "canonical_cause_id" field. It's identical to CanonicalCauseIDEQ.
func CanonicalCauseID(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldEQ(FieldCanonicalCauseID, v))
}

// CauseIdentityVersion applies equality check predicate on the "cause_identity_version" field. It's identical to CauseIdentityVersionEQ.
func CauseIdentityVersion(v int) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldEQ(FieldCauseIdentityVersion, v))
}

// HeadSha applies equality check predicate on the "head_sha" field. It's identical to HeadShaEQ.
func HeadSha(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldEQ(FieldHeadSha, v))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldEQ(FieldReceivedAt, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldEQ(FieldProcessedAt, v))
}

// LoopIDEQ applies the EQ predicate on the "loop_id" field.
func LoopIDEQ(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldEQ(FieldLoopID, v))
}

// LoopIDNEQ applies the NEQ predicate on the "loop_id" field.
func LoopIDNEQ(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldNEQ(FieldLoopID, v))
}

// LoopIDIn applies the In predicate on the "loop_id" field.
func LoopIDIn(vs ...string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldIn(FieldLoopID, vs...))
}

// LoopIDNotIn applies the NotIn predicate on the "loop_id" field.
func LoopIDNotIn(vs ...string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldNotIn(FieldLoopID, vs...))
}

// LoopIDGT applies the GT predicate on the "loop_id" field.
func LoopIDGT(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldGT(FieldLoopID, v))
}

// LoopIDGTE applies the GTE predicate on the "loop_id" field.
func LoopIDGTE(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldGTE(FieldLoopID, v))
}

// LoopIDLT applies the LT predicate on the "loop_id" field.
func LoopIDLT(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldLT(FieldLoopID, v))
}

// LoopIDLTE applies the LTE predicate on the "loop_id" field.
func LoopIDLTE(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldLTE(FieldLoopID, v))
}

// LoopIDContains applies the Contains predicate on the "loop_id" field.
func LoopIDContains(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldContains(FieldLoopID, v))
}

// LoopIDHasPrefix applies the HasPrefix predicate on the "loop_id" field.
func LoopIDHasPrefix(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldHasPrefix(FieldLoopID, v))
}

// LoopIDHasSuffix applies the HasSuffix predicate on the "loop_id" field.
func LoopIDHasSuffix(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldHasSuffix(FieldLoopID, v))
}

// LoopIDEqualFold applies the EqualFold predicate on the "loop_id" field.
func LoopIDEqualFold(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldEqualFold(FieldLoopID, v))
}

// LoopIDContainsFold applies the ContainsFold predicate on the "loop_id" field.
func LoopIDContainsFold(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldContainsFold(FieldLoopID, v))
}

// CauseTypeEQ applies the EQ predicate on the "cause_type" field.
func CauseTypeEQ(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldEQ(FieldCauseType, v))
}

// CauseTypeNEQ applies the NEQ predicate on the "cause_type" field.
func CauseTypeNEQ(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldNEQ(FieldCauseType, v))
}

// CauseTypeIn applies the In predicate on the "cause_type" field.
func CauseTypeIn(vs ...string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldIn(FieldCauseType, vs...))
}

// CauseTypeNotIn applies the NotIn predicate on the "cause_type" field.
func CauseTypeNotIn(vs ...string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldNotIn(FieldCauseType, vs...))
}

// CauseTypeGT applies the GT predicate on the "cause_type" field.
func CauseTypeGT(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldGT(FieldCauseType, v))
}

// CauseTypeGTE applies the GTE predicate on the "cause_type" field.
func CauseTypeGTE(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldGTE(FieldCauseType, v))
}

// CauseTypeLT applies the LT predicate on the "cause_type" field.
func CauseTypeLT(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldLT(FieldCauseType, v))
}

// CauseTypeLTE applies the LTE predicate on the "cause_type" field.
func CauseTypeLTE(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldLTE(FieldCauseType, v))
}

// CauseTypeContains applies the Contains predicate on the "cause_type" field.
func CauseTypeContains(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldContains(FieldCauseType, v))
}

// CauseTypeHasPrefix applies the HasPrefix predicate on the "cause_type" field.
func CauseTypeHasPrefix(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldHasPrefix(FieldCauseType, v))
}

// CauseTypeHasSuffix applies the HasSuffix predicate on the "cause_type" field.
func CauseTypeHasSuffix(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldHasSuffix(FieldCauseType, v))
}

// CauseTypeEqualFold applies the EqualFold predicate on the "cause_type" field.
func CauseTypeEqualFold(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldEqualFold(FieldCauseType, v))
}

// CauseTypeContainsFold applies the ContainsFold predicate on the "cause_type" field.
func CauseTypeContainsFold(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldContainsFold(FieldCauseType, v))
}

// CanonicalCauseIDEQ applies the EQ predicate on the "canonical_cause_id" field.
func CanonicalCauseIDEQ(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldEQ(FieldCanonicalCauseID, v))
}

// CanonicalCauseIDNEQ applies the NEQ predicate on the "canonical_cause_id" field.
func CanonicalCauseIDNEQ(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldNEQ(FieldCanonicalCauseID, v))
}

// CanonicalCauseIDIn applies the In predicate on the "canonical_cause_id" field.
func CanonicalCauseIDIn(vs ...string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldIn(FieldCanonicalCauseID, vs...))
}

// CanonicalCauseIDNotIn applies the NotIn predicate on the "canonical_cause_id" field.
func CanonicalCauseIDNotIn(vs ...string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldNotIn(FieldCanonicalCauseID, vs...))
}

// CanonicalCauseIDGT applies the GT predicate on the "canonical_cause_id" field.
func CanonicalCauseIDGT(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldGT(FieldCanonicalCauseID, v))
}

// CanonicalCauseIDGTE applies the GTE predicate on the "canonical_cause_id" field.
func CanonicalCauseIDGTE(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldGTE(FieldCanonicalCauseID, v))
}

// CanonicalCauseIDLT applies the LT predicate on the "canonical_cause_id" field.
func CanonicalCauseIDLT(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldLT(FieldCanonicalCauseID, v))
}

// CanonicalCauseIDLTE applies the LTE predicate on the "canonical_cause_id" field.
func CanonicalCauseIDLTE(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldLTE(FieldCanonicalCauseID, v))
}

// CanonicalCauseIDContains applies the Contains predicate on the "canonical_cause_id" field.
func CanonicalCauseIDContains(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldContains(FieldCanonicalCauseID, v))
}

// CanonicalCauseIDHasPrefix applies the HasPrefix predicate on the "canonical_cause_id" field.
func CanonicalCauseIDHasPrefix(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldHasPrefix(FieldCanonicalCauseID, v))
}

// CanonicalCauseIDHasSuffix applies the HasSuffix predicate on the "canonical_cause_id" field.
func CanonicalCauseIDHasSuffix(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldHasSuffix(FieldCanonicalCauseID, v))
}

// CanonicalCauseIDEqualFold applies the EqualFold predicate on the "canonical_cause_id" field.
func CanonicalCauseIDEqualFold(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldEqualFold(FieldCanonicalCauseID, v))
}

// CanonicalCauseIDContainsFold applies the ContainsFold predicate on the "canonical_cause_id" field.
func CanonicalCauseIDContainsFold(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldContainsFold(FieldCanonicalCauseID, v))
}

// CauseIdentityVersionEQ applies the EQ predicate on the "cause_identity_version" field.
func CauseIdentityVersionEQ(v int) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldEQ(FieldCauseIdentityVersion, v))
}

// CauseIdentityVersionNEQ applies the NEQ predicate on the "cause_identity_version" field.
func CauseIdentityVersionNEQ(v int) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldNEQ(FieldCauseIdentityVersion, v))
}

// CauseIdentityVersionIn applies the In predicate on the "cause_identity_version" field.
func CauseIdentityVersionIn(vs ...int) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldIn(FieldCauseIdentityVersion, vs...))
}

// CauseIdentityVersionNotIn applies the NotIn predicate on the "cause_identity_version" field.
func CauseIdentityVersionNotIn(vs ...int) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldNotIn(FieldCauseIdentityVersion, vs...))
}

// CauseIdentityVersionGT applies the GT predicate on the "cause_identity_version" field.
func CauseIdentityVersionGT(v int) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldGT(FieldCauseIdentityVersion, v))
}

// CauseIdentityVersionGTE applies the GTE predicate on the "cause_identity_version" field.
func CauseIdentityVersionGTE(v int) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldGTE(FieldCauseIdentityVersion, v))
}

// CauseIdentityVersionLT applies the LT predicate on the "cause_identity_version" field.
func CauseIdentityVersionLT(v int) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldLT(FieldCauseIdentityVersion, v))
}

// CauseIdentityVersionLTE applies the LTE predicate on the "cause_identity_version" field.
func CauseIdentityVersionLTE(v int) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldLTE(FieldCauseIdentityVersion, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldNotNull(FieldPayload))
}

// HeadShaEQ applies the EQ predicate on the "head_sha" field.
func HeadShaEQ(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldEQ(FieldHeadSha, v))
}

// HeadShaNEQ applies the NEQ predicate on the "head_sha" field.
func HeadShaNEQ(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldNEQ(FieldHeadSha, v))
}

// HeadShaIn applies the In predicate on the "head_sha" field.
func HeadShaIn(vs ...string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldIn(FieldHeadSha, vs...))
}

// HeadShaNotIn applies the NotIn predicate on the "head_sha" field.
func HeadShaNotIn(vs ...string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldNotIn(FieldHeadSha, vs...))
}

// HeadShaGT applies the GT predicate on the "head_sha" field.
func HeadShaGT(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldGT(FieldHeadSha, v))
}

// HeadShaGTE applies the GTE predicate on the "head_sha" field.
func HeadShaGTE(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldGTE(FieldHeadSha, v))
}

// HeadShaLT applies the LT predicate on the "head_sha" field.
func HeadShaLT(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldLT(FieldHeadSha, v))
}

// HeadShaLTE applies the LTE predicate on the "head_sha" field.
func HeadShaLTE(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldLTE(FieldHeadSha, v))
}

// HeadShaContains applies the Contains predicate on the "head_sha" field.
func HeadShaContains(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldContains(FieldHeadSha, v))
}

// HeadShaHasPrefix applies the HasPrefix predicate on the "head_sha" field.
func HeadShaHasPrefix(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldHasPrefix(FieldHeadSha, v))
}

// HeadShaHasSuffix applies the HasSuffix predicate on the "head_sha" field.
func HeadShaHasSuffix(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldHasSuffix(FieldHeadSha, v))
}

// HeadShaIsNil applies the IsNil predicate on the "head_sha" field.
func HeadShaIsNil() predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldIsNull(FieldHeadSha))
}

// HeadShaNotNil applies the NotNil predicate on the "head_sha" field.
func HeadShaNotNil() predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldNotNull(FieldHeadSha))
}

// HeadShaEqualFold applies the EqualFold predicate on the "head_sha" field.
func HeadShaEqualFold(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldEqualFold(FieldHeadSha, v))
}

// HeadShaContainsFold applies the ContainsFold predicate on the "head_sha" field.
func HeadShaContainsFold(v string) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldContainsFold(FieldHeadSha, v))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldLTE(FieldReceivedAt, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.InboxSignal {
	return predicate.InboxSignal(sql.FieldNotNull(FieldProcessedAt))
}

// HasLoop applies the HasEdge predicate on the "loop" edge.
func HasLoop() predicate.InboxSignal {
	return predicate.InboxSignal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LoopTable, LoopColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLoopWith applies the HasEdge predicate on the "loop" edge with a given conditions (other predicates).
func HasLoopWith(preds ...predicate.Loop) predicate.InboxSignal {
	return predicate.InboxSignal(func(s *sql.Selector) {
		step := newLoopStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InboxSignal) predicate.InboxSignal {
	return predicate.InboxSignal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InboxSignal) predicate.InboxSignal {
	return predicate.InboxSignal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InboxSignal) predicate.InboxSignal {
	return predicate.InboxSignal(sql.NotPredicates(p))
}
