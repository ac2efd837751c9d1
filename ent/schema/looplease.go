package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// LoopLease holds the schema definition for the LoopLease entity — a
// TTL-bounded mutex row serializing all worker mutations of one loop.
// The row id equals the loop id; epoch increments on every acquire/steal.
type LoopLease struct {
	ent.Schema
}

// Fields of the LoopLease.
func (LoopLease) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("loop_id").
			Unique().
			Immutable(),
		field.String("lease_owner").
			Optional().
			Nillable(),
		field.Int("lease_epoch").
			Default(0),
		field.Time("lease_expires_at").
			Optional().
			Nillable(),
	}
}
