// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/loopd/ent/inboxsignal"
	"github.com/codeready-toolchain/loopd/ent/loop"
)

// InboxSignal is the model entity for the InboxSignal schema.
type InboxSignal struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// LoopID holds the value of the "loop_id" field.
	LoopID string `json:"loop_id,omitempty"`
	// CauseType holds the value of the "cause_type" field.
	CauseType string `json:"cause_type,omitempty"`
	// CanonicalCauseID holds the value of the "canonical_cause_id" field.
	CanonicalCauseID string `json:"canonical_cause_id,omitempty"`
	// CauseIdentityVersion holds the value of the "cause_identity_version" field.
	CauseIdentityVersion int `json:"cause_identity_version,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// Head SHA carried by the signal, when the cause kind has one
	HeadSha *string `json:"head_sha,omitempty"`
	// ReceivedAt holds the value of the "received_at" field.
	ReceivedAt time.Time `json:"received_at,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InboxSignalQuery when eager-loading is set.
	Edges        InboxSignalEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InboxSignalEdges holds the relations/edges for other nodes in the graph.
type InboxSignalEdges struct {
	// Loop holds the value of the loop edge.
	Loop *Loop `json:"loop,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LoopOrErr returns the Loop value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InboxSignalEdges) LoopOrErr() (*Loop, error) {
	if e.Loop != nil {
		return e.Loop, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: loop.Label}
	}
	return nil, &NotLoadedError{edge: "loop"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InboxSignal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case inboxsignal.FieldPayload:
			values[i] = new([]byte)
		case inboxsignal.FieldCauseIdentityVersion:
			values[i] = new(sql.NullInt64)
		case inboxsignal.FieldID, inboxsignal.FieldLoopID, inboxsignal.FieldCauseType, inboxsignal.FieldCanonicalCauseID, inboxsignal.FieldHeadSha:
			values[i] = new(sql.NullString)
		case inboxsignal.FieldReceivedAt, inboxsignal.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InboxSignal fields.
func (_m *InboxSignal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case inboxsignal.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case inboxsignal.FieldLoopID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field loop_id", values[i])
			} else if value.Valid {
				_m.LoopID = value.String
			}
		case inboxsignal.FieldCauseType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cause_type", values[i])
			} else if value.Valid {
				_m.CauseType = value.String
			}
		case inboxsignal.FieldCanonicalCauseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_cause_id", values[i])
			} else if value.Valid {
				_m.CanonicalCauseID = value.String
			}
		case inboxsignal.FieldCauseIdentityVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cause_identity_version", values[i])
			} else if value.Valid {
				_m.CauseIdentityVersion = int(value.Int64)
			}
		case inboxsignal.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case inboxsignal.FieldHeadSha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field head_sha", values[i])
			} else if value.Valid {
				_m.HeadSha = new(string)
				*_m.HeadSha = value.String
			}
		case inboxsignal.FieldReceivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_at", values[i])
			} else if value.Valid {
				_m.ReceivedAt = value.Time
			}
		case inboxsignal.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = new(time.Time)
				*_m.ProcessedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InboxSignal.
// This includes values selected through modifiers, order, etc.
func (_m *InboxSignal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLoop queries the "loop" edge of the InboxSignal entity.
func (_m *InboxSignal) QueryLoop() *LoopQuery {
	return NewInboxSignalClient(_m.config).QueryLoop(_m)
}

// Update returns a builder for updating this InboxSignal.
// Note that you need to call InboxSignal.Unwrap() before calling this method if this InboxSignal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InboxSignal) Update() *InboxSignalUpdateOne {
	return NewInboxSignalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InboxSignal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InboxSignal) Unwrap() *InboxSignal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InboxSignal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InboxSignal) String() string {
	var builder strings.Builder
	builder.WriteString("InboxSignal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("loop_id=")
	builder.WriteString(_m.LoopID)
	builder.WriteString(", ")
	builder.WriteString("cause_type=")
	builder.WriteString(_m.CauseType)
	builder.WriteString(", ")
	builder.WriteString("canonical_cause_id=")
	builder.WriteString(_m.CanonicalCauseID)
	builder.WriteString(", ")
	builder.WriteString("cause_identity_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.CauseIdentityVersion))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	if v := _m.HeadSha; v != nil {
		builder.WriteString("head_sha=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("received_at=")
	builder.WriteString(_m.ReceivedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ProcessedAt; v != nil {
		builder.WriteString("processed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// InboxSignals is a parsable slice of InboxSignal.
type InboxSignals []*InboxSignal
