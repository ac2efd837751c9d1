// Code generated by ent, DO NOT EDIT.

package gatefinding

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the gatefinding type in the database.
	Label = "gate_finding"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "finding_id"
	// FieldLoopID holds the string denoting the loop_id field in the database.
	FieldLoopID = "loop_id"
	// FieldGateKind holds the string denoting the gate_kind field in the database.
	FieldGateKind = "gate_kind"
	// FieldHeadSha holds the string denoting the head_sha field in the database.
	FieldHeadSha = "head_sha"
	// FieldStableFindingID holds the string denoting the stable_finding_id field in the database.
	FieldStableFindingID = "stable_finding_id"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDetail holds the string denoting the detail field in the database.
	FieldDetail = "detail"
	// FieldSuggestedFix holds the string denoting the suggested_fix field in the database.
	FieldSuggestedFix = "suggested_fix"
	// FieldIsBlocking holds the string denoting the is_blocking field in the database.
	FieldIsBlocking = "is_blocking"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// FieldResolvedByEventID holds the string denoting the resolved_by_event_id field in the database.
	FieldResolvedByEventID = "resolved_by_event_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeLoop holds the string denoting the loop edge name in mutations.
	EdgeLoop = "loop"
	// LoopFieldID holds the string denoting the ID field of the Loop.
	LoopFieldID = "loop_id"
	// Table holds the table name of the gatefinding in the database.
	Table = "gate_findings"
	// LoopTable is the table that holds the loop relation/edge.
	LoopTable = "gate_findings"
	// LoopInverseTable is the table name for the Loop entity.
	// It exists in this package in order to avoid circular dependency with the "loop" package.
	LoopInverseTable = "loops"
	// LoopColumn is the table column denoting the loop relation/edge.
	LoopColumn = "loop_id"
)

// Columns holds all SQL columns for gatefinding fields.
var Columns = []string{
	FieldID,
	FieldLoopID,
	FieldGateKind,
	FieldHeadSha,
	FieldStableFindingID,
	FieldSeverity,
	FieldCategory,
	FieldTitle,
	FieldDetail,
	FieldSuggestedFix,
	FieldIsBlocking,
	FieldResolvedAt,
	FieldResolvedByEventID,
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
	// DefaultIsBlocking holds the default value on creation for the "is_blocking" field.
	DefaultIsBlocking bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// GateKind defines the type for the "gate_kind" enum field.
type GateKind string

// GateKind values.
const (
	GateKindDeepReview    GateKind = "deep_review"
	GateKindCarmackReview GateKind = "carmack_review"
)

func (gk GateKind) String() string {
	return string(gk)
}

// GateKindValidator is a validator for the "gate_kind" field enum values. It is called by the builders before save.
func GateKindValidator(gk GateKind) error {
	switch gk {
	case GateKindDeepReview, GateKindCarmackReview:
		return nil
	default:
		return fmt.Errorf("gatefinding: invalid enum value for gate_kind field: %q", gk)
	}
}

// Severity defines the type for the "severity" enum field.
type Severity string

// Severity values.
const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return nil
	default:
		return fmt.Errorf("gatefinding: invalid enum value for severity field: %q", s)
	}
}

// OrderOption defines the ordering options for the GateFinding queries.
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

// ByStableFindingID orders the results by the stable_finding_id field.
func ByStableFindingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStableFindingID, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDetail orders the results by the detail field.
func ByDetail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetail, opts...).ToFunc()
}

// BySuggestedFix orders the results by the suggested_fix field.
func BySuggestedFix(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuggestedFix, opts...).ToFunc()
}

// ByIsBlocking orders the results by the is_blocking field.
func ByIsBlocking(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsBlocking, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// ByResolvedByEventID orders the results by the resolved_by_event_id field.
func ByResolvedByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedByEventID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
