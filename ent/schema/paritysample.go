package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ParitySample holds the schema definition for the ParitySample entity —
// an append-only behavioural-parity observation recorded while the two
// coordinator implementations run side by side.
type ParitySample struct {
	ent.Schema
}

// Fields of the ParitySample.
func (ParitySample) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sample_id").
			Unique().
			Immutable(),
		field.String("cause_type"),
		field.String("target_class"),
		field.Bool("matched"),
		field.Bool("eligible").
			Default(true),
		field.Time("observed_at").
			Default(time.Now),
	}
}

// Indexes of the ParitySample.
func (ParitySample) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cause_type", "target_class"),
		index.Fields("observed_at"),
	}
}
