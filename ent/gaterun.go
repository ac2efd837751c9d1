// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/loopd/ent/gaterun"
	"github.com/codeready-toolchain/loopd/ent/loop"
)

// GateRun is the model entity for the GateRun schema.
type GateRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// LoopID holds the value of the "loop_id" field.
	LoopID string `json:"loop_id,omitempty"`
	// GateKind holds the value of the "gate_kind" field.
	GateKind gaterun.GateKind `json:"gate_kind,omitempty"`
	// HeadSha holds the value of the "head_sha" field.
	HeadSha string `json:"head_sha,omitempty"`
	// LoopVersion holds the value of the "loop_version" field.
	LoopVersion int `json:"loop_version,omitempty"`
	// passed, blocked, capability_error, transient_error or invalid_output
	Status string `json:"status,omitempty"`
	// GatePassed holds the value of the "gate_passed" field.
	GatePassed bool `json:"gate_passed,omitempty"`
	// Cause type of the signal that triggered this evaluation
	TriggerEvent string `json:"trigger_event,omitempty"`
	// ErrorCode holds the value of the "error_code" field.
	ErrorCode *string `json:"error_code,omitempty"`
	// ruleset, branch_protection, allowlist or no_required (CI gate)
	RequiredCheckSource string `json:"required_check_source,omitempty"`
	// RequiredChecks holds the value of the "required_checks" field.
	RequiredChecks []string `json:"required_checks,omitempty"`
	// FailingRequiredChecks holds the value of the "failing_required_checks" field.
	FailingRequiredChecks []string `json:"failing_required_checks,omitempty"`
	// UnresolvedThreadCount holds the value of the "unresolved_thread_count" field.
	UnresolvedThreadCount *int `json:"unresolved_thread_count,omitempty"`
	// UnresolvedThreadCountSource holds the value of the "unresolved_thread_count_source" field.
	UnresolvedThreadCountSource *string `json:"unresolved_thread_count_source,omitempty"`
	// LLM output failed schema validation (review gates)
	InvalidOutput bool `json:"invalid_output,omitempty"`
	// Details holds the value of the "details" field.
	Details map[string]interface{} `json:"details,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GateRunQuery when eager-loading is set.
	Edges        GateRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GateRunEdges holds the relations/edges for other nodes in the graph.
type GateRunEdges struct {
	// Loop holds the value of the loop edge.
	Loop *Loop `json:"loop,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LoopOrErr returns the Loop value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GateRunEdges) LoopOrErr() (*Loop, error) {
	if e.Loop != nil {
		return e.Loop, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: loop.Label}
	}
	return nil, &NotLoadedError{edge: "loop"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GateRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gaterun.FieldRequiredChecks, gaterun.FieldFailingRequiredChecks, gaterun.FieldDetails:
			values[i] = new([]byte)
		case gaterun.FieldGatePassed, gaterun.FieldInvalidOutput:
			values[i] = new(sql.NullBool)
		case gaterun.FieldLoopVersion, gaterun.FieldUnresolvedThreadCount:
			values[i] = new(sql.NullInt64)
		case gaterun.FieldID, gaterun.FieldLoopID, gaterun.FieldGateKind, gaterun.FieldHeadSha, gaterun.FieldStatus, gaterun.FieldTriggerEvent, gaterun.FieldErrorCode, gaterun.FieldRequiredCheckSource, gaterun.FieldUnresolvedThreadCountSource:
			values[i] = new(sql.NullString)
		case gaterun.FieldCreatedAt, gaterun.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GateRun fields.
func (_m *GateRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gaterun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case gaterun.FieldLoopID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field loop_id", values[i])
			} else if value.Valid {
				_m.LoopID = value.String
			}
		case gaterun.FieldGateKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gate_kind", values[i])
			} else if value.Valid {
				_m.GateKind = gaterun.GateKind(value.String)
			}
		case gaterun.FieldHeadSha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field head_sha", values[i])
			} else if value.Valid {
				_m.HeadSha = value.String
			}
		case gaterun.FieldLoopVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field loop_version", values[i])
			} else if value.Valid {
				_m.LoopVersion = int(value.Int64)
			}
		case gaterun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case gaterun.FieldGatePassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field gate_passed", values[i])
			} else if value.Valid {
				_m.GatePassed = value.Bool
			}
		case gaterun.FieldTriggerEvent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_event", values[i])
			} else if value.Valid {
				_m.TriggerEvent = value.String
			}
		case gaterun.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = new(string)
				*_m.ErrorCode = value.String
			}
		case gaterun.FieldRequiredCheckSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field required_check_source", values[i])
			} else if value.Valid {
				_m.RequiredCheckSource = value.String
			}
		case gaterun.FieldRequiredChecks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field required_checks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequiredChecks); err != nil {
					return fmt.Errorf("unmarshal field required_checks: %w", err)
				}
			}
		case gaterun.FieldFailingRequiredChecks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field failing_required_checks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FailingRequiredChecks); err != nil {
					return fmt.Errorf("unmarshal field failing_required_checks: %w", err)
				}
			}
		case gaterun.FieldUnresolvedThreadCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field unresolved_thread_count", values[i])
			} else if value.Valid {
				_m.UnresolvedThreadCount = new(int)
				*_m.UnresolvedThreadCount = int(value.Int64)
			}
		case gaterun.FieldUnresolvedThreadCountSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unresolved_thread_count_source", values[i])
			} else if value.Valid {
				_m.UnresolvedThreadCountSource = new(string)
				*_m.UnresolvedThreadCountSource = value.String
			}
		case gaterun.FieldInvalidOutput:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field invalid_output", values[i])
			} else if value.Valid {
				_m.InvalidOutput = value.Bool
			}
		case gaterun.FieldDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Details); err != nil {
					return fmt.Errorf("unmarshal field details: %w", err)
				}
			}
		case gaterun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case gaterun.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the GateRun.
// This includes values selected through modifiers, order, etc.
func (_m *GateRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLoop queries the "loop" edge of the GateRun entity.
func (_m *GateRun) QueryLoop() *LoopQuery {
	return NewGateRunClient(_m.config).QueryLoop(_m)
}

// Update returns a builder for updating this GateRun.
// Note that you need to call GateRun.Unwrap() before calling this method if this GateRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GateRun) Update() *GateRunUpdateOne {
	return NewGateRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GateRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GateRun) Unwrap() *GateRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GateRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GateRun) String() string {
	var builder strings.Builder
	builder.WriteString("GateRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("loop_id=")
	builder.WriteString(_m.LoopID)
	builder.WriteString(", ")
	builder.WriteString("gate_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.GateKind))
	builder.WriteString(", ")
	builder.WriteString("head_sha=")
	builder.WriteString(_m.HeadSha)
	builder.WriteString(", ")
	builder.WriteString("loop_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.LoopVersion))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("gate_passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.GatePassed))
	builder.WriteString(", ")
	builder.WriteString("trigger_event=")
	builder.WriteString(_m.TriggerEvent)
	builder.WriteString(", ")
	if v := _m.ErrorCode; v != nil {
		builder.WriteString("error_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("required_check_source=")
	builder.WriteString(_m.RequiredCheckSource)
	builder.WriteString(", ")
	builder.WriteString("required_checks=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiredChecks))
	builder.WriteString(", ")
	builder.WriteString("failing_required_checks=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailingRequiredChecks))
	builder.WriteString(", ")
	if v := _m.UnresolvedThreadCount; v != nil {
		builder.WriteString("unresolved_thread_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.UnresolvedThreadCountSource; v != nil {
		builder.WriteString("unresolved_thread_count_source=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("invalid_output=")
	builder.WriteString(fmt.Sprintf("%v", _m.InvalidOutput))
	builder.WriteString(", ")
	builder.WriteString("details=")
	builder.WriteString(fmt.Sprintf("%v", _m.Details))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GateRuns is a parsable slice of GateRun.
type GateRuns []*GateRun
