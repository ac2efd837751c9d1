// Code generated by ent, DO NOT EDIT.

package phaseartifact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldContainsFold(FieldID, id))
}

// LoopID applies equality check predicate on the "loop_id" field. It's identical to LoopIDEQ.
func LoopID(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEQ(FieldLoopID, v))
}

// ArtifactType applies equality check predicate on the "artifact_type" field. It's identical to ArtifactTypeEQ.
func ArtifactType(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEQ(FieldArtifactType, v))
}

// HeadSha applies equality check predicate on the "head_sha" field. It's identical to HeadShaEQ.
func HeadSha(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEQ(FieldHeadSha, v))
}

// LoopVersion applies equality check predicate on the "loop_version" field. It's identical to LoopVersionEQ.
func LoopVersion(v int) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEQ(FieldLoopVersion, v))
}

// GeneratedBy applies equality check predicate on the "generated_by" field. It's identical to GeneratedByEQ.
func GeneratedBy(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEQ(FieldGeneratedBy, v))
}

// ApprovedByUserID applies equality check predicate on the "approved_by_user_id" field. It's identical to ApprovedByUserIDEQ.
func ApprovedByUserID(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEQ(FieldApprovedByUserID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEQ(FieldUpdatedAt, v))
}

// LoopIDEQ applies the EQ predicate on the "loop_id" field.
func LoopIDEQ(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEQ(FieldLoopID, v))
}

// LoopIDNEQ applies the NEQ predicate on the "loop_id" field.
func LoopIDNEQ(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNEQ(FieldLoopID, v))
}

// LoopIDIn applies the In predicate on the "loop_id" field.
func LoopIDIn(vs ...string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldIn(FieldLoopID, vs...))
}

// LoopIDNotIn applies the NotIn predicate on the "loop_id" field.
func LoopIDNotIn(vs ...string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNotIn(FieldLoopID, vs...))
}

// LoopIDGT applies the GT predicate on the "loop_id" field.
func LoopIDGT(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldGT(FieldLoopID, v))
}

// LoopIDGTE applies the GTE predicate on the "loop_id" field.
func LoopIDGTE(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldGTE(FieldLoopID, v))
}

// LoopIDLT applies the LT predicate on the "loop_id" field.
func LoopIDLT(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldLT(FieldLoopID, v))
}

// LoopIDLTE applies the LTE predicate on the "loop_id" field.
func LoopIDLTE(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldLTE(FieldLoopID, v))
}

// LoopIDContains applies the Contains predicate on the "loop_id" field.
func LoopIDContains(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldContains(FieldLoopID, v))
}

// LoopIDHasPrefix applies the HasPrefix predicate on the "loop_id" field.
func LoopIDHasPrefix(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldHasPrefix(FieldLoopID, v))
}

// LoopIDHasSuffix applies the HasSuffix predicate on the "loop_id" field.
func LoopIDHasSuffix(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldHasSuffix(FieldLoopID, v))
}

// LoopIDEqualFold applies the EqualFold predicate on the "loop_id" field.
func LoopIDEqualFold(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEqualFold(FieldLoopID, v))
}

// LoopIDContainsFold applies the ContainsFold predicate on the "loop_id" field.
func LoopIDContainsFold(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldContainsFold(FieldLoopID, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v Phase) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v Phase) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...Phase) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...Phase) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNotIn(FieldPhase, vs...))
}

// ArtifactTypeEQ applies the EQ predicate on the "artifact_type" field.
func ArtifactTypeEQ(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEQ(FieldArtifactType, v))
}

// ArtifactTypeNEQ applies the NEQ predicate on the "artifact_type" field.
func ArtifactTypeNEQ(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNEQ(FieldArtifactType, v))
}

// ArtifactTypeIn applies the In predicate on the "artifact_type" field.
func ArtifactTypeIn(vs ...string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldIn(FieldArtifactType, vs...))
}

// ArtifactTypeNotIn applies the NotIn predicate on the "artifact_type" field.
func ArtifactTypeNotIn(vs ...string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNotIn(FieldArtifactType, vs...))
}

// ArtifactTypeGT applies the GT predicate on the "artifact_type" field.
func ArtifactTypeGT(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldGT(FieldArtifactType, v))
}

// ArtifactTypeGTE applies the GTE predicate on the "artifact_type" field.
func ArtifactTypeGTE(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldGTE(FieldArtifactType, v))
}

// ArtifactTypeLT applies the LT predicate on the "artifact_type" field.
func ArtifactTypeLT(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldLT(FieldArtifactType, v))
}

// ArtifactTypeLTE applies the LTE predicate on the "artifact_type" field.
func ArtifactTypeLTE(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldLTE(FieldArtifactType, v))
}

// ArtifactTypeContains applies the Contains predicate on the "artifact_type" field.
func ArtifactTypeContains(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldContains(FieldArtifactType, v))
}

// ArtifactTypeHasPrefix applies the HasPrefix predicate on the "artifact_type" field.
func ArtifactTypeHasPrefix(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldHasPrefix(FieldArtifactType, v))
}

// ArtifactTypeHasSuffix applies the HasSuffix predicate on the "artifact_type" field.
func ArtifactTypeHasSuffix(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldHasSuffix(FieldArtifactType, v))
}

// ArtifactTypeEqualFold applies the EqualFold predicate on the "artifact_type" field.
func ArtifactTypeEqualFold(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEqualFold(FieldArtifactType, v))
}

// ArtifactTypeContainsFold applies the ContainsFold predicate on the "artifact_type" field.
func ArtifactTypeContainsFold(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldContainsFold(FieldArtifactType, v))
}

// HeadShaEQ applies the EQ predicate on the "head_sha" field.
func HeadShaEQ(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEQ(FieldHeadSha, v))
}

// HeadShaNEQ applies the NEQ predicate on the "head_sha" field.
func HeadShaNEQ(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNEQ(FieldHeadSha, v))
}

// HeadShaIn applies the In predicate on the "head_sha" field.
func HeadShaIn(vs ...string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldIn(FieldHeadSha, vs...))
}

// HeadShaNotIn applies the NotIn predicate on the "head_sha" field.
func HeadShaNotIn(vs ...string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNotIn(FieldHeadSha, vs...))
}

// HeadShaGT applies the GT predicate on the "head_sha" field.
func HeadShaGT(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldGT(FieldHeadSha, v))
}

// HeadShaGTE applies the GTE predicate on the "head_sha" field.
func HeadShaGTE(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldGTE(FieldHeadSha, v))
}

// HeadShaLT applies the LT predicate on the "head_sha" field.
func HeadShaLT(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldLT(FieldHeadSha, v))
}

// HeadShaLTE applies the LTE predicate on the "head_sha" field.
func HeadShaLTE(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldLTE(FieldHeadSha, v))
}

// HeadShaContains applies the Contains predicate on the "head_sha" field.
func HeadShaContains(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldContains(FieldHeadSha, v))
}

// HeadShaHasPrefix applies the HasPrefix predicate on the "head_sha" field.
func HeadShaHasPrefix(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldHasPrefix(FieldHeadSha, v))
}

// HeadShaHasSuffix applies the HasSuffix predicate on the "head_sha" field.
func HeadShaHasSuffix(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldHasSuffix(FieldHeadSha, v))
}

// HeadShaIsNil applies the IsNil predicate on the "head_sha" field.
func HeadShaIsNil() predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldIsNull(FieldHeadSha))
}

// HeadShaNotNil applies the NotNil predicate on the "head_sha" field.
func HeadShaNotNil() predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNotNull(FieldHeadSha))
}

// HeadShaEqualFold applies the EqualFold predicate on the "head_sha" field.
func HeadShaEqualFold(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEqualFold(FieldHeadSha, v))
}

// HeadShaContainsFold applies the ContainsFold predicate on the "head_sha" field.
func HeadShaContainsFold(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldContainsFold(FieldHeadSha, v))
}

// LoopVersionEQ applies the EQ predicate on the "loop_version" field.
func LoopVersionEQ(v int) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEQ(FieldLoopVersion, v))
}

// LoopVersionNEQ applies the NEQ predicate on the "loop_version" field.
func LoopVersionNEQ(v int) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNEQ(FieldLoopVersion, v))
}

// LoopVersionIn applies the In predicate on the "loop_version" field.
func LoopVersionIn(vs ...int) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldIn(FieldLoopVersion, vs...))
}

// LoopVersionNotIn applies the NotIn predicate on the "loop_version" field.
func LoopVersionNotIn(vs ...int) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNotIn(FieldLoopVersion, vs...))
}

// LoopVersionGT applies the GT predicate on the "loop_version" field.
func LoopVersionGT(v int) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldGT(FieldLoopVersion, v))
}

// LoopVersionGTE applies the GTE predicate on the "loop_version" field.
func LoopVersionGTE(v int) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldGTE(FieldLoopVersion, v))
}

// LoopVersionLT applies the LT predicate on the "loop_version" field.
func LoopVersionLT(v int) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldLT(FieldLoopVersion, v))
}

// LoopVersionLTE applies the LTE predicate on the "loop_version" field.
func LoopVersionLTE(v int) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldLTE(FieldLoopVersion, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNotIn(FieldStatus, vs...))
}

// GeneratedByEQ applies the EQ predicate on the "generated_by" field.
func GeneratedByEQ(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEQ(FieldGeneratedBy, v))
}

// GeneratedByNEQ applies the NEQ predicate on the "generated_by" field.
func GeneratedByNEQ(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNEQ(FieldGeneratedBy, v))
}

// GeneratedByIn applies the In predicate on the "generated_by" field.
func GeneratedByIn(vs ...string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldIn(FieldGeneratedBy, vs...))
}

// GeneratedByNotIn applies the NotIn predicate on the "generated_by" field.
func GeneratedByNotIn(vs ...string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNotIn(FieldGeneratedBy, vs...))
}

// GeneratedByGT applies the GT predicate on the "generated_by" field.
func GeneratedByGT(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldGT(FieldGeneratedBy, v))
}

// GeneratedByGTE applies the GTE predicate on the "generated_by" field.
func GeneratedByGTE(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldGTE(FieldGeneratedBy, v))
}

// GeneratedByLT applies the LT predicate on the "generated_by" field.
func GeneratedByLT(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldLT(FieldGeneratedBy, v))
}

// GeneratedByLTE applies the LTE predicate on the "generated_by" field.
func GeneratedByLTE(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldLTE(FieldGeneratedBy, v))
}

// GeneratedByContains applies the Contains predicate on the "generated_by" field.
func GeneratedByContains(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldContains(FieldGeneratedBy, v))
}

// GeneratedByHasPrefix applies the HasPrefix predicate on the "generated_by" field.
func GeneratedByHasPrefix(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldHasPrefix(FieldGeneratedBy, v))
}

// GeneratedByHasSuffix applies the HasSuffix predicate on the "generated_by" field.
func GeneratedByHasSuffix(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldHasSuffix(FieldGeneratedBy, v))
}

// GeneratedByEqualFold applies the EqualFold predicate on the "generated_by" field.
func GeneratedByEqualFold(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEqualFold(FieldGeneratedBy, v))
}

// GeneratedByContainsFold applies the ContainsFold predicate on the "generated_by" field.
func GeneratedByContainsFold(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldContainsFold(FieldGeneratedBy, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNotNull(FieldPayload))
}

// ApprovedByUserIDEQ applies the EQ predicate on the "approved_by_user_id" field.
func ApprovedByUserIDEQ(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEQ(FieldApprovedByUserID, v))
}

// ApprovedByUserIDNEQ applies the NEQ predicate on the "approved_by_user_id" field.
func ApprovedByUserIDNEQ(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNEQ(FieldApprovedByUserID, v))
}

// ApprovedByUserIDIn applies the In predicate on the "approved_by_user_id" field.
func ApprovedByUserIDIn(vs ...string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldIn(FieldApprovedByUserID, vs...))
}

// ApprovedByUserIDNotIn applies the NotIn predicate on the "approved_by_user_id" field.
func ApprovedByUserIDNotIn(vs ...string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNotIn(FieldApprovedByUserID, vs...))
}

// ApprovedByUserIDGT applies the GT predicate on the "approved_by_user_id" field.
func ApprovedByUserIDGT(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldGT(FieldApprovedByUserID, v))
}

// ApprovedByUserIDGTE applies the GTE predicate on the "approved_by_user_id" field.
func ApprovedByUserIDGTE(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldGTE(FieldApprovedByUserID, v))
}

// ApprovedByUserIDLT applies the LT predicate on the "approved_by_user_id" field.
func ApprovedByUserIDLT(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldLT(FieldApprovedByUserID, v))
}

// ApprovedByUserIDLTE applies the LTE predicate on the "approved_by_user_id" field.
func ApprovedByUserIDLTE(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldLTE(FieldApprovedByUserID, v))
}

// ApprovedByUserIDContains applies the Contains predicate on the "approved_by_user_id" field.
func ApprovedByUserIDContains(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldContains(FieldApprovedByUserID, v))
}

// ApprovedByUserIDHasPrefix applies the HasPrefix predicate on the "approved_by_user_id" field.
func ApprovedByUserIDHasPrefix(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldHasPrefix(FieldApprovedByUserID, v))
}

// ApprovedByUserIDHasSuffix applies the HasSuffix predicate on the "approved_by_user_id" field.
func ApprovedByUserIDHasSuffix(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldHasSuffix(FieldApprovedByUserID, v))
}

// ApprovedByUserIDIsNil applies the IsNil predicate on the "approved_by_user_id" field.
func ApprovedByUserIDIsNil() predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldIsNull(FieldApprovedByUserID))
}

// ApprovedByUserIDNotNil applies the NotNil predicate on the "approved_by_user_id" field.
func ApprovedByUserIDNotNil() predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNotNull(FieldApprovedByUserID))
}

// ApprovedByUserIDEqualFold applies the EqualFold predicate on the "approved_by_user_id" field.
func ApprovedByUserIDEqualFold(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEqualFold(FieldApprovedByUserID, v))
}

// ApprovedByUserIDContainsFold applies the ContainsFold predicate on the "approved_by_user_id" field.
func ApprovedByUserIDContainsFold(v string) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldContainsFold(FieldApprovedByUserID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasLoop applies the HasEdge predicate on the "loop" edge.
func HasLoop() predicate.PhaseArtifact {
	return predicate.PhaseArtifact(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LoopTable, LoopColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLoopWith applies the HasEdge predicate on the "loop" edge with a given conditions (other predicates).
func HasLoopWith(preds ...predicate.Loop) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(func(s *sql.Selector) {
		step := newLoopStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.PhaseArtifact {
	return predicate.PhaseArtifact(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.PlanTask) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PhaseArtifact) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PhaseArtifact) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PhaseArtifact) predicate.PhaseArtifact {
	return predicate.PhaseArtifact(sql.NotPredicates(p))
}
