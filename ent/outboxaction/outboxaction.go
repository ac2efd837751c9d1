// Code generated by ent, DO NOT EDIT.

package outboxaction

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the outboxaction type in the database.
	Label = "outbox_action"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "outbox_id"
	// FieldLoopID holds the string denoting the loop_id field in the database.
	FieldLoopID = "loop_id"
	// FieldTransitionSeq holds the string denoting the transition_seq field in the database.
	FieldTransitionSeq = "transition_seq"
	// FieldActionType holds the string denoting the action_type field in the database.
	FieldActionType = "action_type"
	// FieldSupersessionGroup holds the string denoting the supersession_group field in the database.
	FieldSupersessionGroup = "supersession_group"
	// FieldActionKey holds the string denoting the action_key field in the database.
	FieldActionKey = "action_key"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAttemptCount holds the string denoting the attempt_count field in the database.
	FieldAttemptCount = "attempt_count"
	// FieldNextRetryAt holds the string denoting the next_retry_at field in the database.
	FieldNextRetryAt = "next_retry_at"
	// FieldClaimedBy holds the string denoting the claimed_by field in the database.
	FieldClaimedBy = "claimed_by"
	// FieldClaimedAt holds the string denoting the claimed_at field in the database.
	FieldClaimedAt = "claimed_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldLastErrorClass holds the string denoting the last_error_class field in the database.
	FieldLastErrorClass = "last_error_class"
	// FieldLastErrorCode holds the string denoting the last_error_code field in the database.
	FieldLastErrorCode = "last_error_code"
	// FieldLastErrorMessage holds the string denoting the last_error_message field in the database.
	FieldLastErrorMessage = "last_error_message"
	// FieldSupersededByOutboxID holds the string denoting the superseded_by_outbox_id field in the database.
	FieldSupersededByOutboxID = "superseded_by_outbox_id"
	// FieldCanceledReason holds the string denoting the canceled_reason field in the database.
	FieldCanceledReason = "canceled_reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeLoop holds the string denoting the loop edge name in mutations.
	EdgeLoop = "loop"
	// EdgeAttempts holds the string denoting the attempts edge name in mutations.
	EdgeAttempts = "attempts"
	// LoopFieldID holds the string denoting the ID field of the Loop.
	LoopFieldID = "loop_id"
	// OutboxAttemptFieldID holds the string denoting the ID field of the OutboxAttempt.
	OutboxAttemptFieldID = "attempt_id"
	// Table holds the table name of the outboxaction in the database.
	Table = "outbox_actions"
	// LoopTable is the table that holds the loop relation/edge.
	LoopTable = "outbox_actions"
	// LoopInverseTable is the table name for the Loop entity.
	// It exists in this package in order to avoid circular dependency with the "loop" package.
	LoopInverseTable = "loops"
	// LoopColumn is the table column denoting the loop relation/edge.
	LoopColumn = "loop_id"
	// AttemptsTable is the table that holds the attempts relation/edge.
	AttemptsTable = "outbox_attempts"
	// AttemptsInverseTable is the table name for the OutboxAttempt entity.
	// It exists in this package in order to avoid circular dependency with the "outboxattempt" package.
	AttemptsInverseTable = "outbox_attempts"
	// AttemptsColumn is the table column denoting the attempts relation/edge.
	AttemptsColumn = "outbox_id"
)

// Columns holds all SQL columns for outboxaction fields.
var Columns = []string{
	FieldID,
	FieldLoopID,
	FieldTransitionSeq,
	FieldActionType,
	FieldSupersessionGroup,
	FieldActionKey,
	FieldPayload,
	FieldStatus,
	FieldAttemptCount,
	FieldNextRetryAt,
	FieldClaimedBy,
	FieldClaimedAt,
	FieldCompletedAt,
	FieldLastErrorClass,
	FieldLastErrorCode,
	FieldLastErrorMessage,
	FieldSupersededByOutboxID,
	FieldCanceledReason,
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
	// DefaultAttemptCount holds the default value on creation for the "attempt_count" field.
	DefaultAttemptCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ActionType defines the type for the "action_type" enum field.
type ActionType string

// ActionType values.
const (
	ActionTypePublishStatusComment ActionType = "publish_status_comment"
	ActionTypePublishCheckSummary  ActionType = "publish_check_summary"
	ActionTypeEnqueueFixTask       ActionType = "enqueue_fix_task"
	ActionTypePublishVideoLink     ActionType = "publish_video_link"
	ActionTypeEmitTelemetry        ActionType = "emit_telemetry"
)

func (at ActionType) String() string {
	return string(at)
}

// ActionTypeValidator is a validator for the "action_type" field enum values. It is called by the builders before save.
func ActionTypeValidator(at ActionType) error {
	switch at {
	case ActionTypePublishStatusComment, ActionTypePublishCheckSummary, ActionTypeEnqueueFixTask, ActionTypePublishVideoLink, ActionTypeEmitTelemetry:
		return nil
	default:
		return fmt.Errorf("outboxaction: invalid enum value for action_type field: %q", at)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed, StatusCanceled:
		return nil
	default:
		return fmt.Errorf("outboxaction: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the OutboxAction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLoopID orders the results by the loop_id field.
func ByLoopID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoopID, opts...).ToFunc()
}

// ByTransitionSeq orders the results by the transition_seq field.
func ByTransitionSeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransitionSeq, opts...).ToFunc()
}

// ByActionType orders the results by the action_type field.
func ByActionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionType, opts...).ToFunc()
}

// BySupersessionGroup orders the results by the supersession_group field.
func BySupersessionGroup(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupersessionGroup, opts...).ToFunc()
}

// ByActionKey orders the results by the action_key field.
func ByActionKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionKey, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAttemptCount orders the results by the attempt_count field.
func ByAttemptCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptCount, opts...).ToFunc()
}

// ByNextRetryAt orders the results by the next_retry_at field.
func ByNextRetryAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextRetryAt, opts...).ToFunc()
}

// ByClaimedBy orders the results by the claimed_by field.
func ByClaimedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedBy, opts...).ToFunc()
}

// ByClaimedAt orders the results by the claimed_at field.
func ByClaimedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLastErrorClass orders the results by the last_error_class field.
func ByLastErrorClass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastErrorClass, opts...).ToFunc()
}

// ByLastErrorCode orders the results by the last_error_code field.
func ByLastErrorCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastErrorCode, opts...).ToFunc()
}

// ByLastErrorMessage orders the results by the last_error_message field.
func ByLastErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastErrorMessage, opts...).ToFunc()
}

// BySupersededByOutboxID orders the results by the superseded_by_outbox_id field.
func BySupersededByOutboxID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupersededByOutboxID, opts...).ToFunc()
}

// ByCanceledReason orders the results by the canceled_reason field.
func ByCanceledReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanceledReason, opts...).ToFunc()
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

// ByAttemptsCount orders the results by attempts count.
func ByAttemptsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttemptsStep(), opts...)
	}
}

// ByAttempts orders the results by attempts terms.
func ByAttempts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttemptsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLoopStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LoopInverseTable, LoopFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LoopTable, LoopColumn),
	)
}
func newAttemptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttemptsInverseTable, OutboxAttemptFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttemptsTable, AttemptsColumn),
	)
}
