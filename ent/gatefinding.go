// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/loopd/ent/gatefinding"
	"github.com/codeready-toolchain/loopd/ent/loop"
)

// GateFinding is the model entity for the GateFinding schema.
type GateFinding struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// LoopID holds the value of the "loop_id" field.
	LoopID string `json:"loop_id,omitempty"`
	// GateKind holds the value of the "gate_kind" field.
	GateKind gatefinding.GateKind `json:"gate_kind,omitempty"`
	// HeadSha holds the value of the "head_sha" field.
	HeadSha string `json:"head_sha,omitempty"`
	// Caller-provided or content-hash derived; portable across re-evaluations
	StableFindingID string `json:"stable_finding_id,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity gatefinding.Severity `json:"severity,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Detail holds the value of the "detail" field.
	Detail string `json:"detail,omitempty"`
	// SuggestedFix holds the value of the "suggested_fix" field.
	SuggestedFix *string `json:"suggested_fix,omitempty"`
	// IsBlocking holds the value of the "is_blocking" field.
	IsBlocking bool `json:"is_blocking,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// ResolvedByEventID holds the value of the "resolved_by_event_id" field.
	ResolvedByEventID *string `json:"resolved_by_event_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GateFindingQuery when eager-loading is set.
	Edges        GateFindingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GateFindingEdges holds the relations/edges for other nodes in the graph.
type GateFindingEdges struct {
	// Loop holds the value of the loop edge.
	Loop *Loop `json:"loop,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LoopOrErr returns the Loop value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GateFindingEdges) LoopOrErr() (*Loop, error) {
	if e.Loop != nil {
		return e.Loop, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: loop.Label}
	}
	return nil, &NotLoadedError{edge: "loop"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GateFinding) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gatefinding.FieldIsBlocking:
			values[i] = new(sql.NullBool)
		case gatefinding.FieldID, gatefinding.FieldLoopID, gatefinding.FieldGateKind, gatefinding.FieldHeadSha, gatefinding.FieldStableFindingID, gatefinding.FieldSeverity, gatefinding.FieldCategory, gatefinding.FieldTitle, gatefinding.FieldDetail, gatefinding.FieldSuggestedFix, gatefinding.FieldResolvedByEventID:
			values[i] = new(sql.NullString)
		case gatefinding.FieldResolvedAt, gatefinding.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GateFinding fields.
func (_m *GateFinding) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gatefinding.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case gatefinding.FieldLoopID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field loop_id", values[i])
			} else if value.Valid {
				_m.LoopID = value.String
			}
		case gatefinding.FieldGateKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gate_kind", values[i])
			} else if value.Valid {
				_m.GateKind = gatefinding.GateKind(value.String)
			}
		case gatefinding.FieldHeadSha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field head_sha", values[i])
			} else if value.Valid {
				_m.HeadSha = value.String
			}
		case gatefinding.FieldStableFindingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stable_finding_id", values[i])
			} else if value.Valid {
				_m.StableFindingID = value.String
			}
		case gatefinding.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = gatefinding.Severity(value.String)
			}
		case gatefinding.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case gatefinding.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case gatefinding.FieldDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value.Valid {
				_m.Detail = value.String
			}
		case gatefinding.FieldSuggestedFix:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suggested_fix", values[i])
			} else if value.Valid {
				_m.SuggestedFix = new(string)
				*_m.SuggestedFix = value.String
			}
		case gatefinding.FieldIsBlocking:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_blocking", values[i])
			} else if value.Valid {
				_m.IsBlocking = value.Bool
			}
		case gatefinding.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		case gatefinding.FieldResolvedByEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_by_event_id", values[i])
			} else if value.Valid {
				_m.ResolvedByEventID = new(string)
				*_m.ResolvedByEventID = value.String
			}
		case gatefinding.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the GateFinding.
// This includes values selected through modifiers, order, etc.
func (_m *GateFinding) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLoop queries the "loop" edge of the GateFinding entity.
func (_m *GateFinding) QueryLoop() *LoopQuery {
	return NewGateFindingClient(_m.config).QueryLoop(_m)
}

// Update returns a builder for updating this GateFinding.
// Note that you need to call GateFinding.Unwrap() before calling this method if this GateFinding
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GateFinding) Update() *GateFindingUpdateOne {
	return NewGateFindingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GateFinding entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GateFinding) Unwrap() *GateFinding {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GateFinding is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GateFinding) String() string {
	var builder strings.Builder
	builder.WriteString("GateFinding(")
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
	builder.WriteString("stable_finding_id=")
	builder.WriteString(_m.StableFindingID)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("detail=")
	builder.WriteString(_m.Detail)
	builder.WriteString(", ")
	if v := _m.SuggestedFix; v != nil {
		builder.WriteString("suggested_fix=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_blocking=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsBlocking))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ResolvedByEventID; v != nil {
		builder.WriteString("resolved_by_event_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GateFindings is a parsable slice of GateFinding.
type GateFindings []*GateFinding
