// Code generated by ent, DO NOT EDIT.

package inboxsignal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the inboxsignal type in the database.
	Label = "inbox_signal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "signal_id"
	// FieldLoopID holds the string denoting the loop_id field in the database.
	FieldLoopID = "loop_id"
	// FieldCauseType holds the string denoting the cause_type field in the database.
	FieldCauseType = "cause_type"
	// FieldCanonicalCauseID holds the string denoting the canonical_cause_id field in the database.
	FieldCanonicalCauseID = "canonical_cause_id"
	// FieldCauseIdentityVersion holds the string denoting the cause_identity_version field in the database.
	FieldCauseIdentityVersion = "cause_identity_version"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldHeadSha holds the string denoting the head_sha field in the database.
	FieldHeadSha = "head_sha"
	// FieldReceivedAt holds the string denoting the received_at field in the database.
	FieldReceivedAt = "received_at"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// EdgeLoop holds the string denoting the loop edge name in mutations.
	EdgeLoop = "loop"
	// LoopFieldID holds the string denoting the ID field of the Loop.
	LoopFieldID = "loop_id"
	// Table holds the table name of the inboxsignal in the database.
	Table = "inbox_signals"
	// LoopTable is the table that holds the loop relation/edge.
	LoopTable = "inbox_signals"
	// LoopInverseTable is the table name for the Loop entity.
	// It exists in this package in order to avoid circular dependency with the "loop" package.
	LoopInverseTable = "loops"
	// LoopColumn is the table column denoting the loop relation/edge.
	LoopColumn = "loop_id"
)

// Columns holds all SQL columns for inboxsignal fields.
var Columns = []string{
	FieldID,
	FieldLoopID,
	FieldCauseType,
	FieldCanonicalCauseID,
	FieldCauseIdentityVersion,
	FieldPayload,
	FieldHeadSha,
	FieldReceivedAt,
	FieldProcessedAt,
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
	// DefaultCauseIdentityVersion holds the default value on creation for the "cause_identity_version" field.
	DefaultCauseIdentityVersion int
	// DefaultReceivedAt holds the default value on creation for the "received_at" field.
	DefaultReceivedAt func() time.Time
)

// OrderOption defines the ordering options for the InboxSignal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLoopID orders the results by the loop_id field.
func ByLoopID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoopID, opts...).ToFunc()
}

// ByCauseType orders the results by the cause_type field.
func ByCauseType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCauseType, opts...).ToFunc()
}

// ByCanonicalCauseID orders the results by the canonical_cause_id field.
func ByCanonicalCauseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalCauseID, opts...).ToFunc()
}

// ByCauseIdentityVersion orders the results by the cause_identity_version field.
func ByCauseIdentityVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCauseIdentityVersion, opts...).ToFunc()
}

// ByHeadSha orders the results by the head_sha field.
func ByHeadSha(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeadSha, opts...).ToFunc()
}

// ByReceivedAt orders the results by the received_at field.
func ByReceivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceivedAt, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
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
