// Code generated by ent, DO NOT EDIT.

package plantask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldContainsFold(FieldID, id))
}

// ArtifactID applies equality check predicate on the "artifact_id" field. It's identical to ArtifactIDEQ.
func ArtifactID(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldEQ(FieldArtifactID, v))
}

// StableTaskID applies equality check predicate on the "stable_task_id" field. It's identical to StableTaskIDEQ.
func StableTaskID(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldEQ(FieldStableTaskID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldEQ(FieldDescription, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldEQ(FieldCreatedAt, v))
}

// ArtifactIDEQ applies the EQ predicate on the "artifact_id" field.
func ArtifactIDEQ(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldEQ(FieldArtifactID, v))
}

// ArtifactIDNEQ applies the NEQ predicate on the "artifact_id" field.
func ArtifactIDNEQ(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNEQ(FieldArtifactID, v))
}

// ArtifactIDIn applies the In predicate on the "artifact_id" field.
func ArtifactIDIn(vs ...string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldIn(FieldArtifactID, vs...))
}

// ArtifactIDNotIn applies the NotIn predicate on the "artifact_id" field.
func ArtifactIDNotIn(vs ...string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNotIn(FieldArtifactID, vs...))
}

// ArtifactIDGT applies the GT predicate on the "artifact_id" field.
func ArtifactIDGT(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldGT(FieldArtifactID, v))
}

// ArtifactIDGTE applies the GTE predicate on the "artifact_id" field.
func ArtifactIDGTE(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldGTE(FieldArtifactID, v))
}

// ArtifactIDLT applies the LT predicate on the "artifact_id" field.
func ArtifactIDLT(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldLT(FieldArtifactID, v))
}

// ArtifactIDLTE applies the LTE predicate on the "artifact_id" field.
func ArtifactIDLTE(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldLTE(FieldArtifactID, v))
}

// ArtifactIDContains applies the Contains predicate on the "artifact_id" field.
func ArtifactIDContains(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldContains(FieldArtifactID, v))
}

// ArtifactIDHasPrefix applies the HasPrefix predicate on the "artifact_id" field.
func ArtifactIDHasPrefix(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldHasPrefix(FieldArtifactID, v))
}

// ArtifactIDHasSuffix applies the HasSuffix predicate on the "artifact_id" field.
func ArtifactIDHasSuffix(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldHasSuffix(FieldArtifactID, v))
}

// ArtifactIDEqualFold applies the EqualFold predicate on the "artifact_id" field.
func ArtifactIDEqualFold(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldEqualFold(FieldArtifactID, v))
}

// ArtifactIDContainsFold applies the ContainsFold predicate on the "artifact_id" field.
func ArtifactIDContainsFold(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldContainsFold(FieldArtifactID, v))
}

// StableTaskIDEQ applies the EQ predicate on the "stable_task_id" field.
func StableTaskIDEQ(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldEQ(FieldStableTaskID, v))
}

// StableTaskIDNEQ applies the NEQ predicate on the "stable_task_id" field.
func StableTaskIDNEQ(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNEQ(FieldStableTaskID, v))
}

// StableTaskIDIn applies the In predicate on the "stable_task_id" field.
func StableTaskIDIn(vs ...string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldIn(FieldStableTaskID, vs...))
}

// StableTaskIDNotIn applies the NotIn predicate on the "stable_task_id" field.
func StableTaskIDNotIn(vs ...string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNotIn(FieldStableTaskID, vs...))
}

// StableTaskIDGT applies the GT predicate on the "stable_task_id" field.
func StableTaskIDGT(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldGT(FieldStableTaskID, v))
}

// StableTaskIDGTE applies the GTE predicate on the "stable_task_id" field.
func StableTaskIDGTE(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldGTE(FieldStableTaskID, v))
}

// StableTaskIDLT applies the LT predicate on the "stable_task_id" field.
func StableTaskIDLT(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldLT(FieldStableTaskID, v))
}

// StableTaskIDLTE applies the LTE predicate on the "stable_task_id" field.
func StableTaskIDLTE(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldLTE(FieldStableTaskID, v))
}

// StableTaskIDContains applies the Contains predicate on the "stable_task_id" field.
func StableTaskIDContains(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldContains(FieldStableTaskID, v))
}

// StableTaskIDHasPrefix applies the HasPrefix predicate on the "stable_task_id" field.
func StableTaskIDHasPrefix(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldHasPrefix(FieldStableTaskID, v))
}

// StableTaskIDHasSuffix applies the HasSuffix predicate on the "stable_task_id" field.
func StableTaskIDHasSuffix(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldHasSuffix(FieldStableTaskID, v))
}

// StableTaskIDEqualFold applies the EqualFold predicate on the "stable_task_id" field.
func StableTaskIDEqualFold(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldEqualFold(FieldStableTaskID, v))
}

// StableTaskIDContainsFold applies the ContainsFold predicate on the "stable_task_id" field.
func StableTaskIDContainsFold(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldContainsFold(FieldStableTaskID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.PlanTask {
	return predicate.PlanTask(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldContainsFold(FieldDescription, v))
}

// AcceptanceCriteriaIsNil applies the IsNil predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaIsNil() predicate.PlanTask {
	return predicate.PlanTask(sql.FieldIsNull(FieldAcceptanceCriteria))
}

// AcceptanceCriteriaNotNil applies the NotNil predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaNotNil() predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNotNull(FieldAcceptanceCriteria))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNotIn(FieldStatus, vs...))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PlanTask {
	return predicate.PlanTask(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNotNull(FieldCompletedAt))
}

// CompletedByEQ applies the EQ predicate on the "completed_by" field.
func CompletedByEQ(v CompletedBy) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldEQ(FieldCompletedBy, v))
}

// CompletedByNEQ applies the NEQ predicate on the "completed_by" field.
func CompletedByNEQ(v CompletedBy) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNEQ(FieldCompletedBy, v))
}

// CompletedByIn applies the In predicate on the "completed_by" field.
func CompletedByIn(vs ...CompletedBy) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldIn(FieldCompletedBy, vs...))
}

// CompletedByNotIn applies the NotIn predicate on the "completed_by" field.
func CompletedByNotIn(vs ...CompletedBy) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNotIn(FieldCompletedBy, vs...))
}

// CompletedByIsNil applies the IsNil predicate on the "completed_by" field.
func CompletedByIsNil() predicate.PlanTask {
	return predicate.PlanTask(sql.FieldIsNull(FieldCompletedBy))
}

// CompletedByNotNil applies the NotNil predicate on the "completed_by" field.
func CompletedByNotNil() predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNotNull(FieldCompletedBy))
}

// CompletionEvidenceIsNil applies the IsNil predicate on the "completion_evidence" field.
func CompletionEvidenceIsNil() predicate.PlanTask {
	return predicate.PlanTask(sql.FieldIsNull(FieldCompletionEvidence))
}

// CompletionEvidenceNotNil applies the NotNil predicate on the "completion_evidence" field.
func CompletionEvidenceNotNil() predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNotNull(FieldCompletionEvidence))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PlanTask {
	return predicate.PlanTask(sql.FieldLTE(FieldCreatedAt, v))
}

// HasArtifact applies the HasEdge predicate on the "artifact" edge.
func HasArtifact() predicate.PlanTask {
	return predicate.PlanTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ArtifactTable, ArtifactColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArtifactWith applies the HasEdge predicate on the "artifact" edge with a given conditions (other predicates).
func HasArtifactWith(preds ...predicate.PhaseArtifact) predicate.PlanTask {
	return predicate.PlanTask(func(s *sql.Selector) {
		step := newArtifactStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlanTask) predicate.PlanTask {
	return predicate.PlanTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlanTask) predicate.PlanTask {
	return predicate.PlanTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlanTask) predicate.PlanTask {
	return predicate.PlanTask(sql.NotPredicates(p))
}
