// Code generated by ent, DO NOT EDIT.

package plantask

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the plantask type in the database.
	Label = "plan_task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldArtifactID holds the string denoting the artifact_id field in the database.
	FieldArtifactID = "artifact_id"
	// FieldStableTaskID holds the string denoting the stable_task_id field in the database.
	FieldStableTaskID = "stable_task_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldAcceptanceCriteria holds the string denoting the acceptance_criteria field in the database.
	FieldAcceptanceCriteria = "acceptance_criteria"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCompletedBy holds the string denoting the completed_by field in the database.
	FieldCompletedBy = "completed_by"
	// FieldCompletionEvidence holds the string denoting the completion_evidence field in the database.
	FieldCompletionEvidence = "completion_evidence"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeArtifact holds the string denoting the artifact edge name in mutations.
	EdgeArtifact = "artifact"
	// PhaseArtifactFieldID holds the string denoting the ID field of the PhaseArtifact.
	PhaseArtifactFieldID = "artifact_id"
	// Table holds the table name of the plantask in the database.
	Table = "plan_tasks"
	// ArtifactTable is the table that holds the artifact relation/edge.
	ArtifactTable = "plan_tasks"
	// ArtifactInverseTable is the table name for the PhaseArtifact entity.
	// It exists in this package in order to avoid circular dependency with the "phaseartifact" package.
	ArtifactInverseTable = "phase_artifacts"
	// ArtifactColumn is the table column denoting the artifact relation/edge.
	ArtifactColumn = "artifact_id"
)

// Columns holds all SQL columns for plantask fields.
var Columns = []string{
	FieldID,
	FieldArtifactID,
	FieldStableTaskID,
	FieldTitle,
	FieldDescription,
	FieldAcceptanceCriteria,
	FieldStatus,
	FieldCompletedAt,
	FieldCompletedBy,
	FieldCompletionEvidence,
	FieldCreatedAt,
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
)

// Status defines the type for the "status" enum field.
type Status string

// StatusTodo is the default value of the Status enum.
const DefaultStatus = StatusTodo

// Status values.
const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusSkipped    Status = "skipped"
	StatusBlocked    Status = "blocked"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone, StatusSkipped, StatusBlocked:
		return nil
	default:
		return fmt.Errorf("plantask: invalid enum value for status field: %q", s)
	}
}

// CompletedBy defines the type for the "completed_by" enum field.
type CompletedBy string

// CompletedBy values.
const (
	CompletedByAgent CompletedBy = "agent"
	CompletedByHuman CompletedBy = "human"
)

func (cb CompletedBy) String() string {
	return string(cb)
}

// CompletedByValidator is a validator for the "completed_by" field enum values. It is called by the builders before save.
func CompletedByValidator(cb CompletedBy) error {
	switch cb {
	case CompletedByAgent, CompletedByHuman:
		return nil
	default:
		return fmt.Errorf("plantask: invalid enum value for completed_by field: %q", cb)
	}
}

// OrderOption defines the ordering options for the PlanTask queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByArtifactID orders the results by the artifact_id field.
func ByArtifactID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtifactID, opts...).ToFunc()
}

// ByStableTaskID orders the results by the stable_task_id field.
func ByStableTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStableTaskID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCompletedBy orders the results by the completed_by field.
func ByCompletedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByArtifactField orders the results by artifact field.
func ByArtifactField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArtifactStep(), sql.OrderByField(field, opts...))
	}
}
func newArtifactStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArtifactInverseTable, PhaseArtifactFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ArtifactTable, ArtifactColumn),
	)
}
