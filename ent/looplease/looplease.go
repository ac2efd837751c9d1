// Code generated by ent, DO NOT EDIT.

package looplease

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the looplease type in the database.
	Label = "loop_lease"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "loop_id"
	// FieldLeaseOwner holds the string denoting the lease_owner field in the database.
	FieldLeaseOwner = "lease_owner"
	// FieldLeaseEpoch holds the string denoting the lease_epoch field in the database.
	FieldLeaseEpoch = "lease_epoch"
	// FieldLeaseExpiresAt holds the string denoting the lease_expires_at field in the database.
	FieldLeaseExpiresAt = "lease_expires_at"
	// Table holds the table name of the looplease in the database.
	Table = "loop_leases"
)

// Columns holds all SQL columns for looplease fields.
var Columns = []string{
	FieldID,
	FieldLeaseOwner,
	FieldLeaseEpoch,
	FieldLeaseExpiresAt,
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
	// DefaultLeaseEpoch holds the default value on creation for the "lease_epoch" field.
	DefaultLeaseEpoch int
)

// OrderOption defines the ordering options for the LoopLease queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLeaseOwner orders the results by the lease_owner field.
func ByLeaseOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaseOwner, opts...).ToFunc()
}

// ByLeaseEpoch orders the results by the lease_epoch field.
func ByLeaseEpoch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaseEpoch, opts...).ToFunc()
}

// ByLeaseExpiresAt orders the results by the lease_expires_at field.
func ByLeaseExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaseExpiresAt, opts...).ToFunc()
}
