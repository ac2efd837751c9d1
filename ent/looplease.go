// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/loopd/ent/looplease"
)

// LoopLease is the model entity for the LoopLease schema.
type LoopLease struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// LeaseOwner holds the value of the "lease_owner" field.
	LeaseOwner *string `json:"lease_owner,omitempty"`
	// LeaseEpoch holds the value of the "lease_epoch" field.
	LeaseEpoch int `json:"lease_epoch,omitempty"`
	// LeaseExpiresAt holds the value of the "lease_expires_at" field.
	LeaseExpiresAt *time.Time `json:"lease_expires_at,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LoopLease) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case looplease.FieldLeaseEpoch:
			values[i] = new(sql.NullInt64)
		case looplease.FieldID, looplease.FieldLeaseOwner:
			values[i] = new(sql.NullString)
		case looplease.FieldLeaseExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LoopLease fields.
func (_m *LoopLease) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case looplease.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case looplease.FieldLeaseOwner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lease_owner", values[i])
			} else if value.Valid {
				_m.LeaseOwner = new(string)
				*_m.LeaseOwner = value.String
			}
		case looplease.FieldLeaseEpoch:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lease_epoch", values[i])
			} else if value.Valid {
				_m.LeaseEpoch = int(value.Int64)
			}
		case looplease.FieldLeaseExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field lease_expires_at", values[i])
			} else if value.Valid {
				_m.LeaseExpiresAt = new(time.Time)
				*_m.LeaseExpiresAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LoopLease.
// This includes values selected through modifiers, order, etc.
func (_m *LoopLease) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LoopLease.
// Note that you need to call LoopLease.Unwrap() before calling this method if this LoopLease
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LoopLease) Update() *LoopLeaseUpdateOne {
	return NewLoopLeaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LoopLease entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LoopLease) Unwrap() *LoopLease {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LoopLease is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LoopLease) String() string {
	var builder strings.Builder
	builder.WriteString("LoopLease(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.LeaseOwner; v != nil {
		builder.WriteString("lease_owner=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("lease_epoch=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeaseEpoch))
	builder.WriteString(", ")
	if v := _m.LeaseExpiresAt; v != nil {
		builder.WriteString("lease_expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// LoopLeases is a parsable slice of LoopLease.
type LoopLeases []*LoopLease
