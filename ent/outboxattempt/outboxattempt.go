// Code generated by ent, DO NOT EDIT.

package outboxattempt

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the outboxattempt type in the database.
	Label = "outbox_attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "attempt_id"
	// FieldOutboxID holds the string denoting the outbox_id field in the database.
	FieldOutboxID = "outbox_id"
	// FieldAttempt holds the string denoting the attempt field in the database.
	FieldAttempt = "attempt"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorClass holds the string denoting the error_class field in the database.
	FieldErrorClass = "error_class"
	// FieldErrorCode holds the string denoting the error_code field in the database.
	FieldErrorCode = "error_code"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldRetryAt holds the string denoting the retry_at field in the database.
	FieldRetryAt = "retry_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAction holds the string denoting the action edge name in mutations.
	EdgeAction = "action"
	// OutboxActionFieldID holds the string denoting the ID field of the OutboxAction.
	OutboxActionFieldID = "outbox_id"
	// Table holds the table name of the outboxattempt in the database.
	Table = "outbox_attempts"
	// ActionTable is the table that holds the action relation/edge.
	ActionTable = "outbox_attempts"
	// ActionInverseTable is the table name for the OutboxAction entity.
	// It exists in this package in order to avoid circular dependency with the "outboxaction" package.
	ActionInverseTable = "outbox_actions"
	// ActionColumn is the table column denoting the action relation/edge.
	ActionColumn = "outbox_id"
)

// Columns holds all SQL columns for outboxattempt fields.
var Columns = []string{
	FieldID,
	FieldOutboxID,
	FieldAttempt,
	FieldStatus,
	FieldErrorClass,
	FieldErrorCode,
	FieldErrorMessage,
	FieldRetryAt,
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

// Status values.
const (
	StatusCompleted      Status = "completed"
	StatusRetryScheduled Status = "retry_scheduled"
	StatusFailed         Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusCompleted, StatusRetryScheduled, StatusFailed:
		return nil
	default:
		return fmt.Errorf("outboxattempt: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the OutboxAttempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOutboxID orders the results by the outbox_id field.
func ByOutboxID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutboxID, opts...).ToFunc()
}

// ByAttempt orders the results by the attempt field.
func ByAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorClass orders the results by the error_class field.
func ByErrorClass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorClass, opts...).ToFunc()
}

// ByErrorCode orders the results by the error_code field.
func ByErrorCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCode, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByRetryAt orders the results by the retry_at field.
func ByRetryAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByActionField orders the results by action field.
func ByActionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newActionStep(), sql.OrderByField(field, opts...))
	}
}
func newActionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ActionInverseTable, OutboxActionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ActionTable, ActionColumn),
	)
}
