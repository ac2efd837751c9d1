// Code generated by ent, DO NOT EDIT.

package looplease

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldContainsFold(FieldID, id))
}

// LeaseOwner applies equality check predicate on the "lease_owner" field. It's identical to LeaseOwnerEQ.
func LeaseOwner(v string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldEQ(FieldLeaseOwner, v))
}

// LeaseEpoch applies equality check predicate on the "lease_epoch" field. It's identical to LeaseEpochEQ.
func LeaseEpoch(v int) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldEQ(FieldLeaseEpoch, v))
}

// LeaseExpiresAt applies equality check predicate on the "lease_expires_at" field. It's identical to LeaseExpiresAtEQ.
func LeaseExpiresAt(v time.Time) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// LeaseOwnerEQ applies the EQ predicate on the "lease_owner" field.
func LeaseOwnerEQ(v string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldEQ(FieldLeaseOwner, v))
}

// LeaseOwnerNEQ applies the NEQ predicate on the "lease_owner" field.
func LeaseOwnerNEQ(v string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldNEQ(FieldLeaseOwner, v))
}

// LeaseOwnerIn applies the In predicate on the "lease_owner" field.
func LeaseOwnerIn(vs ...string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldIn(FieldLeaseOwner, vs...))
}

// LeaseOwnerNotIn applies the NotIn predicate on the "lease_owner" field.
func LeaseOwnerNotIn(vs ...string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldNotIn(FieldLeaseOwner, vs...))
}

// LeaseOwnerGT applies the GT predicate on the "lease_owner" field.
func LeaseOwnerGT(v string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldGT(FieldLeaseOwner, v))
}

// LeaseOwnerGTE applies the GTE predicate on the "lease_owner" field.
func LeaseOwnerGTE(v string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldGTE(FieldLeaseOwner, v))
}

// LeaseOwnerLT applies the LT predicate on the "lease_owner" field.
func LeaseOwnerLT(v string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldLT(FieldLeaseOwner, v))
}

// LeaseOwnerLTE applies the LTE predicate on the "lease_owner" field.
func LeaseOwnerLTE(v string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldLTE(FieldLeaseOwner, v))
}

// LeaseOwnerContains applies the Contains predicate on the "lease_owner" field.
func LeaseOwnerContains(v string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldContains(FieldLeaseOwner, v))
}

// LeaseOwnerHasPrefix applies the HasPrefix predicate on the "lease_owner" field.
func LeaseOwnerHasPrefix(v string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldHasPrefix(FieldLeaseOwner, v))
}

// LeaseOwnerHasSuffix applies the HasSuffix predicate on the "lease_owner" field.
func LeaseOwnerHasSuffix(v string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldHasSuffix(FieldLeaseOwner, v))
}

// LeaseOwnerIsNil applies the IsNil predicate on the "lease_owner" field.
func LeaseOwnerIsNil() predicate.LoopLease {
	return predicate.LoopLease(sql.FieldIsNull(FieldLeaseOwner))
}

// LeaseOwnerNotNil applies the NotNil predicate on the "lease_owner" field.
func LeaseOwnerNotNil() predicate.LoopLease {
	return predicate.LoopLease(sql.FieldNotNull(FieldLeaseOwner))
}

// LeaseOwnerEqualFold applies the EqualFold predicate on the "lease_owner" field.
func LeaseOwnerEqualFold(v string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldEqualFold(FieldLeaseOwner, v))
}

// LeaseOwnerContainsFold applies the ContainsFold predicate on the "lease_owner" field.
func LeaseOwnerContainsFold(v string) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldContainsFold(FieldLeaseOwner, v))
}

// LeaseEpochEQ applies the EQ predicate on the "lease_epoch" field.
func LeaseEpochEQ(v int) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldEQ(FieldLeaseEpoch, v))
}

// LeaseEpochNEQ applies the NEQ predicate on the "lease_epoch" field.
func LeaseEpochNEQ(v int) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldNEQ(FieldLeaseEpoch, v))
}

// LeaseEpochIn applies the In predicate on the "lease_epoch" field.
func LeaseEpochIn(vs ...int) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldIn(FieldLeaseEpoch, vs...))
}

// LeaseEpochNotIn applies the NotIn predicate on the "lease_epoch" field.
func LeaseEpochNotIn(vs ...int) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldNotIn(FieldLeaseEpoch, vs...))
}

// LeaseEpochGT applies the GT predicate on the "lease_epoch" field.
func LeaseEpochGT(v int) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldGT(FieldLeaseEpoch, v))
}

// LeaseEpochGTE applies the GTE predicate on the "lease_epoch" field.
func LeaseEpochGTE(v int) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldGTE(FieldLeaseEpoch, v))
}

// LeaseEpochLT applies the LT predicate on the "lease_epoch" field.
func LeaseEpochLT(v int) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldLT(FieldLeaseEpoch, v))
}

// LeaseEpochLTE applies the LTE predicate on the "lease_epoch" field.
func LeaseEpochLTE(v int) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldLTE(FieldLeaseEpoch, v))
}

// LeaseExpiresAtEQ applies the EQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtEQ(v time.Time) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtNEQ applies the NEQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtNEQ(v time.Time) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldNEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIn applies the In predicate on the "lease_expires_at" field.
func LeaseExpiresAtIn(vs ...time.Time) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtNotIn applies the NotIn predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotIn(vs ...time.Time) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldNotIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtGT applies the GT predicate on the "lease_expires_at" field.
func LeaseExpiresAtGT(v time.Time) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldGT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtGTE applies the GTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtGTE(v time.Time) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldGTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLT applies the LT predicate on the "lease_expires_at" field.
func LeaseExpiresAtLT(v time.Time) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldLT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLTE applies the LTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtLTE(v time.Time) predicate.LoopLease {
	return predicate.LoopLease(sql.FieldLTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIsNil applies the IsNil predicate on the "lease_expires_at" field.
func LeaseExpiresAtIsNil() predicate.LoopLease {
	return predicate.LoopLease(sql.FieldIsNull(FieldLeaseExpiresAt))
}

// LeaseExpiresAtNotNil applies the NotNil predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotNil() predicate.LoopLease {
	return predicate.LoopLease(sql.FieldNotNull(FieldLeaseExpiresAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LoopLease) predicate.LoopLease {
	return predicate.LoopLease(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LoopLease) predicate.LoopLease {
	return predicate.LoopLease(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LoopLease) predicate.LoopLease {
	return predicate.LoopLease(sql.NotPredicates(p))
}
