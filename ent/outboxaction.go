// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/outboxaction"
)

// OutboxAction is the model entity for the OutboxAction schema.
type OutboxAction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// LoopID holds the value of the "loop_id" field.
	LoopID string `json:"loop_id,omitempty"`
	// Sequence of the transition that produced this action
	TransitionSeq int `json:"transition_seq,omitempty"`
	// ActionType holds the value of the "action_type" field.
	ActionType outboxaction.ActionType `json:"action_type,omitempty"`
	// Derived from action_type; newer transitions cancel older pending siblings
	SupersessionGroup string `json:"supersession_group,omitempty"`
	// Dedup key, unique per loop
	ActionKey string `json:"action_key,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// Status holds the value of the "status" field.
	Status outboxaction.Status `json:"status,omitempty"`
	// AttemptCount holds the value of the "attempt_count" field.
	AttemptCount int `json:"attempt_count,omitempty"`
	// NextRetryAt holds the value of the "next_retry_at" field.
	NextRetryAt *time.Time `json:"next_retry_at,omitempty"`
	// ClaimedBy holds the value of the "claimed_by" field.
	ClaimedBy *string `json:"claimed_by,omitempty"`
	// ClaimedAt holds the value of the "claimed_at" field.
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// LastErrorClass holds the value of the "last_error_class" field.
	LastErrorClass *string `json:"last_error_class,omitempty"`
	// LastErrorCode holds the value of the "last_error_code" field.
	LastErrorCode *string `json:"last_error_code,omitempty"`
	// LastErrorMessage holds the value of the "last_error_message" field.
	LastErrorMessage *string `json:"last_error_message,omitempty"`
	// Weak back-reference from a canceled row to its replacement
	SupersededByOutboxID *string `json:"superseded_by_outbox_id,omitempty"`
	// CanceledReason holds the value of the "canceled_reason" field.
	CanceledReason *string `json:"canceled_reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OutboxActionQuery when eager-loading is set.
	Edges        OutboxActionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OutboxActionEdges holds the relations/edges for other nodes in the graph.
type OutboxActionEdges struct {
	// Loop holds the value of the loop edge.
	Loop *Loop `json:"loop,omitempty"`
	// Attempts holds the value of the attempts edge.
	Attempts []*OutboxAttempt `json:"attempts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// LoopOrErr returns the Loop value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OutboxActionEdges) LoopOrErr() (*Loop, error) {
	if e.Loop != nil {
		return e.Loop, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: loop.Label}
	}
	return nil, &NotLoadedError{edge: "loop"}
}

// AttemptsOrErr returns the Attempts value or an error if the edge
// was not loaded in eager-loading.
func (e OutboxActionEdges) AttemptsOrErr() ([]*OutboxAttempt, error) {
	if e.loadedTypes[1] {
		return e.Attempts, nil
	}
	return nil, &NotLoadedError{edge: "attempts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OutboxAction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case outboxaction.FieldPayload:
			values[i] = new([]byte)
		case outboxaction.FieldTransitionSeq, outboxaction.FieldAttemptCount:
			values[i] = new(sql.NullInt64)
		case outboxaction.FieldID, outboxaction.FieldLoopID, outboxaction.FieldActionType, outboxaction.FieldSupersessionGroup, outboxaction.FieldActionKey, outboxaction.FieldStatus, outboxaction.FieldClaimedBy, outboxaction.FieldLastErrorClass, outboxaction.FieldLastErrorCode, outboxaction.FieldLastErrorMessage, outboxaction.FieldSupersededByOutboxID, outboxaction.FieldCanceledReason:
			values[i] = new(sql.NullString)
		case outboxaction.FieldNextRetryAt, outboxaction.FieldClaimedAt, outboxaction.FieldCompletedAt, outboxaction.FieldCreatedAt, outboxaction.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OutboxAction fields.
func (_m *OutboxAction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case outboxaction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case outboxaction.FieldLoopID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field loop_id", values[i])
			} else if value.Valid {
				_m.LoopID = value.String
			}
		case outboxaction.FieldTransitionSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field transition_seq", values[i])
			} else if value.Valid {
				_m.TransitionSeq = int(value.Int64)
			}
		case outboxaction.FieldActionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_type", values[i])
			} else if value.Valid {
				_m.ActionType = outboxaction.ActionType(value.String)
			}
		case outboxaction.FieldSupersessionGroup:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supersession_group", values[i])
			} else if value.Valid {
				_m.SupersessionGroup = value.String
			}
		case outboxaction.FieldActionKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_key", values[i])
			} else if value.Valid {
				_m.ActionKey = value.String
			}
		case outboxaction.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case outboxaction.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = outboxaction.Status(value.String)
			}
		case outboxaction.FieldAttemptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_count", values[i])
			} else if value.Valid {
				_m.AttemptCount = int(value.Int64)
			}
		case outboxaction.FieldNextRetryAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_retry_at", values[i])
			} else if value.Valid {
				_m.NextRetryAt = new(time.Time)
				*_m.NextRetryAt = value.Time
			}
		case outboxaction.FieldClaimedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_by", values[i])
			} else if value.Valid {
				_m.ClaimedBy = new(string)
				*_m.ClaimedBy = value.String
			}
		case outboxaction.FieldClaimedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_at", values[i])
			} else if value.Valid {
				_m.ClaimedAt = new(time.Time)
				*_m.ClaimedAt = value.Time
			}
		case outboxaction.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case outboxaction.FieldLastErrorClass:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error_class", values[i])
			} else if value.Valid {
				_m.LastErrorClass = new(string)
				*_m.LastErrorClass = value.String
			}
		case outboxaction.FieldLastErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error_code", values[i])
			} else if value.Valid {
				_m.LastErrorCode = new(string)
				*_m.LastErrorCode = value.String
			}
		case outboxaction.FieldLastErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error_message", values[i])
			} else if value.Valid {
				_m.LastErrorMessage = new(string)
				*_m.LastErrorMessage = value.String
			}
		case outboxaction.FieldSupersededByOutboxID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field superseded_by_outbox_id", values[i])
			} else if value.Valid {
				_m.SupersededByOutboxID = new(string)
				*_m.SupersededByOutboxID = value.String
			}
		case outboxaction.FieldCanceledReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canceled_reason", values[i])
			} else if value.Valid {
				_m.CanceledReason = new(string)
				*_m.CanceledReason = value.String
			}
		case outboxaction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case outboxaction.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OutboxAction.
// This includes values selected through modifiers, order, etc.
func (_m *OutboxAction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLoop queries the "loop" edge of the OutboxAction entity.
func (_m *OutboxAction) QueryLoop() *LoopQuery {
	return NewOutboxActionClient(_m.config).QueryLoop(_m)
}

// QueryAttempts queries the "attempts" edge of the OutboxAction entity.
func (_m *OutboxAction) QueryAttempts() *OutboxAttemptQuery {
	return NewOutboxActionClient(_m.config).QueryAttempts(_m)
}

// Update returns a builder for updating this OutboxAction.
// Note that you need to call OutboxAction.Unwrap() before calling this method if this OutboxAction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OutboxAction) Update() *OutboxActionUpdateOne {
	return NewOutboxActionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OutboxAction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OutboxAction) Unwrap() *OutboxAction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OutboxAction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OutboxAction) String() string {
	var builder strings.Builder
	builder.WriteString("OutboxAction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("loop_id=")
	builder.WriteString(_m.LoopID)
	builder.WriteString(", ")
	builder.WriteString("transition_seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.TransitionSeq))
	builder.WriteString(", ")
	builder.WriteString("action_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionType))
	builder.WriteString(", ")
	builder.WriteString("supersession_group=")
	builder.WriteString(_m.SupersessionGroup)
	builder.WriteString(", ")
	builder.WriteString("action_key=")
	builder.WriteString(_m.ActionKey)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("attempt_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptCount))
	builder.WriteString(", ")
	if v := _m.NextRetryAt; v != nil {
		builder.WriteString("next_retry_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ClaimedBy; v != nil {
		builder.WriteString("claimed_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClaimedAt; v != nil {
		builder.WriteString("claimed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastErrorClass; v != nil {
		builder.WriteString("last_error_class=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastErrorCode; v != nil {
		builder.WriteString("last_error_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastErrorMessage; v != nil {
		builder.WriteString("last_error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SupersededByOutboxID; v != nil {
		builder.WriteString("superseded_by_outbox_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CanceledReason; v != nil {
		builder.WriteString("canceled_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// OutboxActions is a parsable slice of OutboxAction.
type OutboxActions []*OutboxAction
