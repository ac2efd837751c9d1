// Code generated by ent, DO NOT EDIT.

package phaseartifact

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the phaseartifact type in the database.
	Label = "phase_artifact"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "artifact_id"
	// FieldLoopID holds the string denoting the loop_id field in the database.
	FieldLoopID = "loop_id"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldArtifactType holds the string denoting the artifact_type field in the database.
	FieldArtifactType = "artifact_type"
	// FieldHeadSha holds the string denoting the head_sha field in the database.
	FieldHeadSha = "head_sha"
	// FieldLoopVersion holds the string denoting the loop_version field in the database.
	FieldLoopVersion = "loop_version"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldGeneratedBy holds the string denoting the generated_by field in the database.
	FieldGeneratedBy = "generated_by"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldApprovedByUserID holds the string denoting the approved_by_user_id field in the database.
	FieldApprovedByUserID = "approved_by_user_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeLoop holds the string denoting the loop edge name in mutations.
	EdgeLoop = "loop"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// LoopFieldID holds the string denoting the ID field of the Loop.
	LoopFieldID = "loop_id"
	// PlanTaskFieldID holds the string denoting the ID field of the PlanTask.
	PlanTaskFieldID = "task_id"
	// Table holds the table name of the phaseartifact in the database.
	Table = "phase_artifacts"
	// LoopTable is the table that holds the loop relation/edge.
	LoopTable = "phase_artifacts"
	// LoopInverseTable is the table name for the Loop entity.
	// It exists in this package in order to avoid circular dependency with the "loop" package.
	LoopInverseTable = "loops"
	// LoopColumn is the table column denoting the loop relation/edge.
	LoopColumn = "loop_id"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "plan_tasks"
	// TasksInverseTable is the table name for the PlanTask entity.
	// It exists in this package in order to avoid circular dependency with the "plantask" package.
	TasksInverseTable = "plan_tasks"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "artifact_id"
)

// Columns holds all SQL columns for phaseartifact fields.
var Columns = []string{
	FieldID,
	FieldLoopID,
	FieldPhase,
	FieldArtifactType,
	FieldHeadSha,
	FieldLoopVersion,
	FieldStatus,
	FieldGeneratedBy,
	FieldPayload,
	FieldApprovedByUserID,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Phase defines the type for the "phase" enum field.
type Phase string

// Phase values.
const (
	PhasePlanning      Phase = "planning"
	PhaseImplementing  Phase = "implementing"
	PhaseReviewing     Phase = "reviewing"
	PhaseUITesting     Phase = "ui_testing"
	PhasePrLinking     Phase = "pr_linking"
	PhasePrBabysitting Phase = "pr_babysitting"
)

func (ph Phase) String() string {
	return string(ph)
}

// PhaseValidator is a validator for the "phase" field enum values. It is called by the builders before save.
func PhaseValidator(ph Phase) error {
	switch ph {
	case PhasePlanning, PhaseImplementing, PhaseReviewing, PhaseUITesting, PhasePrLinking, PhasePrBabysitting:
		return nil
	default:
		return fmt.Errorf("phaseartifact: invalid enum value for phase field: %q", ph)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusGenerated is the default value of the Status enum.
const DefaultStatus = StatusGenerated

// Status values.
const (
	StatusGenerated  Status = "generated"
	StatusApproved   Status = "approved"
	StatusAccepted   Status = "accepted"
	StatusSuperseded Status = "superseded"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusGenerated, StatusApproved, StatusAccepted, StatusSuperseded:
		return nil
	default:
		return fmt.Errorf("phaseartifact: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PhaseArtifact queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLoopID orders the results by the loop_id field.
func ByLoopID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoopID, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByArtifactType orders the results by the artifact_type field.
func ByArtifactType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtifactType, opts...).ToFunc()
}

// ByHeadSha orders the results by the head_sha field.
func ByHeadSha(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeadSha, opts...).ToFunc()
}

// ByLoopVersion orders the results by the loop_version field.
func ByLoopVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoopVersion, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByGeneratedBy orders the results by the generated_by field.
func ByGeneratedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedBy, opts...).ToFunc()
}

// ByApprovedByUserID orders the results by the approved_by_user_id field.
func ByApprovedByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedByUserID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLoopField orders the results by loop field.
func ByLoopField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLoopStep(), sql.OrderByField(field, opts...))
	}
}

// ByTasksCount orders the results by tasks count.
func ByTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTasksStep(), opts...)
	}
}

// ByTasks orders the results by tasks terms.
func ByTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLoopStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LoopInverseTable, LoopFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LoopTable, LoopColumn),
	)
}
func newTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TasksInverseTable, PlanTaskFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
	)
}
