// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/loopd/ent/paritysample"
)

// ParitySample is the model entity for the ParitySample schema.
type ParitySample struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CauseType holds the value of the "cause_type" field.
	CauseType string `json:"cause_type,omitempty"`
	// TargetClass holds the value of the "target_class" field.
	TargetClass string `json:"target_class,omitempty"`
	// Matched holds the value of the "matched" field.
	Matched bool `json:"matched,omitempty"`
	// Eligible holds the value of the "eligible" field.
	Eligible bool `json:"eligible,omitempty"`
	// ObservedAt holds the value of the "observed_at" field.
	ObservedAt   time.Time `json:"observed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ParitySample) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case paritysample.FieldMatched, paritysample.FieldEligible:
			values[i] = new(sql.NullBool)
		case paritysample.FieldID, paritysample.FieldCauseType, paritysample.FieldTargetClass:
			values[i] = new(sql.NullString)
		case paritysample.FieldObservedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ParitySample fields.
func (_m *ParitySample) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case paritysample.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case paritysample.FieldCauseType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cause_type", values[i])
			} else if value.Valid {
				_m.CauseType = value.String
			}
		case paritysample.FieldTargetClass:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_class", values[i])
			} else if value.Valid {
				_m.TargetClass = value.String
			}
		case paritysample.FieldMatched:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field matched", values[i])
			} else if value.Valid {
				_m.Matched = value.Bool
			}
		case paritysample.FieldEligible:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field eligible", values[i])
			} else if value.Valid {
				_m.Eligible = value.Bool
			}
		case paritysample.FieldObservedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field observed_at", values[i])
			} else if value.Valid {
				_m.ObservedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ParitySample.
// This includes values selected through modifiers, order, etc.
func (_m *ParitySample) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ParitySample.
// Note that you need to call ParitySample.Unwrap() before calling this method if this ParitySample
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ParitySample) Update() *ParitySampleUpdateOne {
	return NewParitySampleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ParitySample entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ParitySample) Unwrap() *ParitySample {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ParitySample is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ParitySample) String() string {
	var builder strings.Builder
	builder.WriteString("ParitySample(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("cause_type=")
	builder.WriteString(_m.CauseType)
	builder.WriteString(", ")
	builder.WriteString("target_class=")
	builder.WriteString(_m.TargetClass)
	builder.WriteString(", ")
	builder.WriteString("matched=")
	builder.WriteString(fmt.Sprintf("%v", _m.Matched))
	builder.WriteString(", ")
	builder.WriteString("eligible=")
	builder.WriteString(fmt.Sprintf("%v", _m.Eligible))
	builder.WriteString(", ")
	builder.WriteString("observed_at=")
	builder.WriteString(_m.ObservedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ParitySamples is a parsable slice of ParitySample.
type ParitySamples []*ParitySample
