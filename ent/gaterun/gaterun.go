// Code generated by ent, DO NOT EDIT.

package gaterun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the gaterun type in the database.
	Label = "gate_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "gate_run_id"
	// FieldLoopID holds the string denoting the loop_id field in the database.
	FieldLoopID = "loop_id"
	// FieldGateKind holds the string denoting the gate_kind field in the database.
	FieldGateKind = "gate_kind"
	// FieldHeadSha holds the string denoting the head_sha field in the database.
	FieldHeadSha = "head_sha"
	// FieldLoopVersion holds the string denoting the loop_version field in the database.
	FieldLoopVersion = "loop_version"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldGatePassed holds the string denoting the gate_passed field in the database.
	FieldGatePassed = "gate_passed"
	// FieldTriggerEvent holds the string denoting the trigger_event field in the database.
	FieldTriggerEvent = "trigger_event"
	// FieldErrorCode holds the string denoting the error_code field in the database.
	FieldErrorCode = "error_code"
	// FieldRequiredCheckSource holds the string denoting the required_check_source field in the database.
	FieldRequiredCheckSource = "required_check_source"
	// FieldRequiredChecks holds the string denoting the required_checks field in the database.
	FieldRequiredChecks = "required_checks"
	// FieldFailingRequiredChecks holds the string denoting the failing_required_checks field in the database.
	FieldFailingRequiredChecks = "failing_required_checks"
	// FieldUnresolvedThreadCount holds the string denoting the unresolved_thread_count field in the database.
	FieldUnresolvedThreadCount = "unresolved_thread_count"
	// FieldUnresolvedThreadCountSource holds the string denoting the unresolved_thread_count_source field in the database.
	FieldUnresolvedThreadCountSource = "unresolved_thread_count_source"
	// FieldInvalidOutput holds the string denoting the invalid_output field in the database.
	FieldInvalidOutput = "invalid_output"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeLoop holds the string denoting the loop edge name in mutations.
	EdgeLoop = "loop"
	// LoopFieldID holds the string denoting the ID field of the Loop.
	LoopFieldID = "loop_id"
	// Table holds the table name of the gaterun in the database.
	Table = "gate_runs"
	// LoopTable is the table that holds the loop relation/edge.
	LoopTable = "gate_runs"
	// LoopInverseTable is the table name for the Loop entity.
	// It exists in this package in order to avoid circular dependency with the "loop" package.
	LoopInverseTable = "loops"
	// LoopColumn is the table column denoting the loop relation/edge.
	LoopColumn = "loop_id"
)

// Columns holds all SQL columns for gaterun fields.
var Columns = []string{
	FieldID,
	FieldLoopID,
	FieldGateKind,
	FieldHeadSha,
	FieldLoopVersion,
	FieldStatus,
	FieldGatePassed,
	FieldTriggerEvent,
	FieldErrorCode,
	FieldRequiredCheckSource,
	FieldRequiredChecks,
	FieldFailingRequiredChecks,
	FieldUnresolvedThreadCount,
	FieldUnresolvedThreadCountSource,
	FieldInvalidOutput,
	FieldDetails,
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
	// DefaultGatePassed holds the default value on creation for the "gate_passed" field.
	DefaultGatePassed bool
	// DefaultInvalidOutput holds the default value on creation for the "invalid_output" field.
	DefaultInvalidOutput bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// GateKind defines the type for the "gate_kind" enum field.
type GateKind string

// GateKind values.
const (
	GateKindCi            GateKind = "ci"
	GateKindReviewThreads GateKind = "review_threads"
	GateKindDeepReview    GateKind = "deep_review"
	GateKindCarmackReview GateKind = "carmack_review"
)

func (gk GateKind) String() string {
	return string(gk)
}

// GateKindValidator is a validator for the "gate_kind" field enum values. It is called by the builders before save.
func GateKindValidator(gk GateKind) error {
	switch gk {
	case GateKindCi, GateKindReviewThreads, GateKindDeepReview, GateKindCarmackReview:
		return nil
	default:
		return fmt.Errorf("gaterun: invalid enum value for gate_kind field: %q", gk)
	}
}

// OrderOption defines the ordering options for the GateRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLoopID orders the results by the loop_id field.
func ByLoopID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoopID, opts...).ToFunc()
}

// ByGateKind orders the results by the gate_kind field.
func ByGateKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGateKind, opts...).ToFunc()
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

// ByGatePassed orders the results by the gate_passed field.
func ByGatePassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGatePassed, opts...).ToFunc()
}

// ByTriggerEvent orders the results by the trigger_event field.
func ByTriggerEvent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerEvent, opts...).ToFunc()
}

// ByErrorCode orders the results by the error_code field.
func ByErrorCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCode, opts...).ToFunc()
}

// ByRequiredCheckSource orders the results by the required_check_source field.
func ByRequiredCheckSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiredCheckSource, opts...).ToFunc()
}

// ByUnresolvedThreadCount orders the results by the unresolved_thread_count field.
func ByUnresolvedThreadCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnresolvedThreadCount, opts...).ToFunc()
}

// ByUnresolvedThreadCountSource orders the results by the unresolved_thread_count_source field.
func ByUnresolvedThreadCountSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnresolvedThreadCountSource, opts...).ToFunc()
}

// ByInvalidOutput orders the results by the invalid_output field.
func ByInvalidOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvalidOutput, opts...).ToFunc()
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
func newLoopStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LoopInverseTable, LoopFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LoopTable, LoopColumn),
	)
}
