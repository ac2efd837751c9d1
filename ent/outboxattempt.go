// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/loopd/ent/outboxaction"
	"github.com/codeready-toolchain/loopd/ent/outboxattempt"
)

// OutboxAttempt is the model entity for the OutboxAttempt schema.
type OutboxAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OutboxID holds the value of the "outbox_id" field.
	OutboxID string `json:"outbox_id,omitempty"`
	// Attempt holds the value of the "attempt" field.
	Attempt int `json:"attempt,omitempty"`
	// Status holds the value of the "status" field.
	Status outboxattempt.Status `json:"status,omitempty"`
	// ErrorClass holds the value of the "error_class" field.
	ErrorClass *string `json:"error_class,omitempty"`
	// ErrorCode holds the value of the "error_code" field.
	ErrorCode *string `json:"error_code,omitempty"`
	// Truncated to 1000 characters before persistence
	ErrorMessage *string `json:"error_message,omitempty"`
	// RetryAt holds the value of the "retry_at" field.
	RetryAt *time.Time `json:"retry_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OutboxAttemptQuery when eager-loading is set.
	Edges        OutboxAttemptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OutboxAttemptEdges holds the relations/edges for other nodes in the graph.
type OutboxAttemptEdges struct {
	// Action holds the value of the action edge.
	Action *OutboxAction `json:"action,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ActionOrErr returns the Action value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OutboxAttemptEdges) ActionOrErr() (*OutboxAction, error) {
	if e.Action != nil {
		return e.Action, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: outboxaction.Label}
	}
	return nil, &NotLoadedError{edge: "action"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OutboxAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case outboxattempt.FieldAttempt:
			values[i] = new(sql.NullInt64)
		case outboxattempt.FieldID, outboxattempt.FieldOutboxID, outboxattempt.FieldStatus, outboxattempt.FieldErrorClass, outboxattempt.FieldErrorCode, outboxattempt.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case outboxattempt.FieldRetryAt, outboxattempt.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OutboxAttempt fields.
func (_m *OutboxAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case outboxattempt.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case outboxattempt.FieldOutboxID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outbox_id", values[i])
			} else if value.Valid {
				_m.OutboxID = value.String
			}
		case outboxattempt.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				_m.Attempt = int(value.Int64)
			}
		case outboxattempt.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = outboxattempt.Status(value.String)
			}
		case outboxattempt.FieldErrorClass:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_class", values[i])
			} else if value.Valid {
				_m.ErrorClass = new(string)
				*_m.ErrorClass = value.String
			}
		case outboxattempt.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = new(string)
				*_m.ErrorCode = value.String
			}
		case outboxattempt.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case outboxattempt.FieldRetryAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field retry_at", values[i])
			} else if value.Valid {
				_m.RetryAt = new(time.Time)
				*_m.RetryAt = value.Time
			}
		case outboxattempt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OutboxAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *OutboxAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAction queries the "action" edge of the OutboxAttempt entity.
func (_m *OutboxAttempt) QueryAction() *OutboxActionQuery {
	return NewOutboxAttemptClient(_m.config).QueryAction(_m)
}

// Update returns a builder for updating this OutboxAttempt.
// Note that you need to call OutboxAttempt.Unwrap() before calling this method if this OutboxAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OutboxAttempt) Update() *OutboxAttemptUpdateOne {
	return NewOutboxAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OutboxAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OutboxAttempt) Unwrap() *OutboxAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OutboxAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OutboxAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("OutboxAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("outbox_id=")
	builder.WriteString(_m.OutboxID)
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ErrorClass; v != nil {
		builder.WriteString("error_class=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorCode; v != nil {
		builder.WriteString("error_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RetryAt; v != nil {
		builder.WriteString("retry_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// OutboxAttempts is a parsable slice of OutboxAttempt.
type OutboxAttempts []*OutboxAttempt
