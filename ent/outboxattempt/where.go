// Code generated by ent, DO NOT EDIT.

package outboxattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldContainsFold(FieldID, id))
}

// OutboxID applies equality check predicate on the "outbox_id" field. It's identical to OutboxIDEQ.
func OutboxID(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEQ(FieldOutboxID, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEQ(FieldAttempt, v))
}

// ErrorClass applies equality check predicate on the "error_class" field. It's identical to ErrorClassEQ.
func ErrorClass(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEQ(FieldErrorClass, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEQ(FieldErrorMessage, v))
}

// RetryAt applies equality check predicate on the "retry_at" field. It's identical to RetryAtEQ.
func RetryAt(v time.Time) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEQ(FieldRetryAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// OutboxIDEQ applies the EQ predicate on the "outbox_id" field.
func OutboxIDEQ(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEQ(FieldOutboxID, v))
}

// OutboxIDNEQ applies the NEQ predicate on the "outbox_id" field.
func OutboxIDNEQ(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNEQ(FieldOutboxID, v))
}

// OutboxIDIn applies the In predicate on the "outbox_id" field.
func OutboxIDIn(vs ...string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldIn(FieldOutboxID, vs...))
}

// OutboxIDNotIn applies the NotIn predicate on the "outbox_id" field.
func OutboxIDNotIn(vs ...string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNotIn(FieldOutboxID, vs...))
}

// OutboxIDGT applies the GT predicate on the "outbox_id" field.
func OutboxIDGT(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldGT(FieldOutboxID, v))
}

// OutboxIDGTE applies the GTE predicate on the "outbox_id" field.
func OutboxIDGTE(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldGTE(FieldOutboxID, v))
}

// OutboxIDLT applies the LT predicate on the "outbox_id" field.
func OutboxIDLT(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldLT(FieldOutboxID, v))
}

// OutboxIDLTE applies the LTE predicate on the "outbox_id" field.
func OutboxIDLTE(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldLTE(FieldOutboxID, v))
}

// OutboxIDContains applies the Contains predicate on the "outbox_id" field.
func OutboxIDContains(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldContains(FieldOutboxID, v))
}

// OutboxIDHasPrefix applies the HasPrefix predicate on the "outbox_id" field.
func OutboxIDHasPrefix(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldHasPrefix(FieldOutboxID, v))
}

// OutboxIDHasSuffix applies the HasSuffix predicate on the "outbox_id" field.
func OutboxIDHasSuffix(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldHasSuffix(FieldOutboxID, v))
}

// OutboxIDEqualFold applies the EqualFold predicate on the "outbox_id" field.
func OutboxIDEqualFold(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEqualFold(FieldOutboxID, v))
}

// OutboxIDContainsFold applies the ContainsFold predicate on the "outbox_id" field.
func OutboxIDContainsFold(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldContainsFold(FieldOutboxID, v))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldLTE(FieldAttempt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorClassEQ applies the EQ predicate on the "error_class" field.
func ErrorClassEQ(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEQ(FieldErrorClass, v))
}

// ErrorClassNEQ applies the NEQ predicate on the "error_class" field.
func ErrorClassNEQ(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNEQ(FieldErrorClass, v))
}

// ErrorClassIn applies the In predicate on the "error_class" field.
func ErrorClassIn(vs ...string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldIn(FieldErrorClass, vs...))
}

// ErrorClassNotIn applies the NotIn predicate on the "error_class" field.
func ErrorClassNotIn(vs ...string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNotIn(FieldErrorClass, vs...))
}

// ErrorClassGT applies the GT predicate on the "error_class" field.
func ErrorClassGT(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldGT(FieldErrorClass, v))
}

// ErrorClassGTE applies the GTE predicate on the "error_class" field.
func ErrorClassGTE(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldGTE(FieldErrorClass, v))
}

// ErrorClassLT applies the LT predicate on the "error_class" field.
func ErrorClassLT(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldLT(FieldErrorClass, v))
}

// ErrorClassLTE applies the LTE predicate on the "error_class" field.
func ErrorClassLTE(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldLTE(FieldErrorClass, v))
}

// ErrorClassContains applies the Contains predicate on the "error_class" field.
func ErrorClassContains(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldContains(FieldErrorClass, v))
}

// ErrorClassHasPrefix applies the HasPrefix predicate on the "error_class" field.
func ErrorClassHasPrefix(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldHasPrefix(FieldErrorClass, v))
}

// ErrorClassHasSuffix applies the HasSuffix predicate on the "error_class" field.
func ErrorClassHasSuffix(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldHasSuffix(FieldErrorClass, v))
}

// ErrorClassIsNil applies the IsNil predicate on the "error_class" field.
func ErrorClassIsNil() predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldIsNull(FieldErrorClass))
}

// ErrorClassNotNil applies the NotNil predicate on the "error_class" field.
func ErrorClassNotNil() predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNotNull(FieldErrorClass))
}

// ErrorClassEqualFold applies the EqualFold predicate on the "error_class" field.
func ErrorClassEqualFold(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEqualFold(FieldErrorClass, v))
}

// ErrorClassContainsFold applies the ContainsFold predicate on the "error_class" field.
func ErrorClassContainsFold(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldContainsFold(FieldErrorClass, v))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNotNull(FieldErrorCode))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldContainsFold(FieldErrorCode, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RetryAtEQ applies the EQ predicate on the "retry_at" field.
func RetryAtEQ(v time.Time) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEQ(FieldRetryAt, v))
}

// RetryAtNEQ applies the NEQ predicate on the "retry_at" field.
func RetryAtNEQ(v time.Time) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNEQ(FieldRetryAt, v))
}

// RetryAtIn applies the In predicate on the "retry_at" field.
func RetryAtIn(vs ...time.Time) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldIn(FieldRetryAt, vs...))
}

// RetryAtNotIn applies the NotIn predicate on the "retry_at" field.
func RetryAtNotIn(vs ...time.Time) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNotIn(FieldRetryAt, vs...))
}

// RetryAtGT applies the GT predicate on the "retry_at" field.
func RetryAtGT(v time.Time) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldGT(FieldRetryAt, v))
}

// RetryAtGTE applies the GTE predicate on the "retry_at" field.
func RetryAtGTE(v time.Time) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldGTE(FieldRetryAt, v))
}

// RetryAtLT applies the LT predicate on the "retry_at" field.
func RetryAtLT(v time.Time) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldLT(FieldRetryAt, v))
}

// RetryAtLTE applies the LTE predicate on the "retry_at" field.
func RetryAtLTE(v time.Time) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldLTE(FieldRetryAt, v))
}

// RetryAtIsNil applies the IsNil predicate on the "retry_at" field.
func RetryAtIsNil() predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldIsNull(FieldRetryAt))
}

// RetryAtNotNil applies the NotNil predicate on the "retry_at" field.
func RetryAtNotNil() predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNotNull(FieldRetryAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAction applies the HasEdge predicate on the "action" edge.
func HasAction() predicate.OutboxAttempt {
	return predicate.OutboxAttempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ActionTable, ActionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasActionWith applies the HasEdge predicate on the "action" edge with a given conditions (other predicates).
func HasActionWith(preds ...predicate.OutboxAction) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(func(s *sql.Selector) {
		step := newActionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OutboxAttempt) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OutboxAttempt) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OutboxAttempt) predicate.OutboxAttempt {
	return predicate.OutboxAttempt(sql.NotPredicates(p))
}
