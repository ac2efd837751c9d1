// Code generated by ent, DO NOT EDIT.

package paritysample

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the paritysample type in the database.
	Label = "parity_sample"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "sample_id"
	// FieldCauseType holds the string denoting the cause_type field in the database.
	FieldCauseType = "cause_type"
	// FieldTargetClass holds the string denoting the target_class field in the database.
	FieldTargetClass = "target_class"
	// FieldMatched holds the string denoting the matched field in the database.
	FieldMatched = "matched"
	// FieldEligible holds the string denoting the eligible field in the database.
	FieldEligible = "eligible"
	// FieldObservedAt holds the string denoting the observed_at field in the database.
	FieldObservedAt = "observed_at"
	// Table holds the table name of the paritysample in the database.
	Table = "parity_samples"
)

// Columns holds all SQL columns for paritysample fields.
var Columns = []string{
	FieldID,
	FieldCauseType,
	FieldTargetClass,
	FieldMatched,
	FieldEligible,
	FieldObservedAt,
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
	// DefaultEligible holds the default value on creation for the "eligible" field.
	DefaultEligible bool
	// DefaultObservedAt holds the default value on creation for the "observed_at" field.
	DefaultObservedAt func() time.Time
)

// OrderOption defines the ordering options for the ParitySample queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCauseType orders the results by the cause_type field.
func ByCauseType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCauseType, opts...).ToFunc()
}

// ByTargetClass orders the results by the target_class field.
func ByTargetClass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetClass, opts...).ToFunc()
}

// ByMatched orders the results by the matched field.
func ByMatched(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatched, opts...).ToFunc()
}

// ByEligible orders the results by the eligible field.
func ByEligible(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEligible, opts...).ToFunc()
}

// ByObservedAt orders the results by the observed_at field.
func ByObservedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservedAt, opts...).ToFunc()
}
