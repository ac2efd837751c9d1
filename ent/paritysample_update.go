// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/loopd/ent/paritysample"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// ParitySampleUpdate is the builder for updating ParitySample entities.
type ParitySampleUpdate struct {
	config
	hooks    []Hook
	mutation *ParitySampleMutation
}

// Where appends a list predicates to the ParitySampleUpdate builder.
func (_u *ParitySampleUpdate) Where(ps ...predicate.ParitySample) *ParitySampleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCauseType sets the "cause_type" field.
func (_u *ParitySampleUpdate) SetCauseType(v string) *ParitySampleUpdate {
	_u.mutation.SetCauseType(v)
	return _u
}

// SetNillableCauseType sets the "cause_type" field if the given value is not nil.
func (_u *ParitySampleUpdate) SetNillableCauseType(v *string) *ParitySampleUpdate {
	if v != nil {
		_u.SetCauseType(*v)
	}
	return _u
}

// SetTargetClass sets the "target_class" field.
func (_u *ParitySampleUpdate) SetTargetClass(v string) *ParitySampleUpdate {
	_u.mutation.SetTargetClass(v)
	return _u
}

// SetNillableTargetClass sets the "target_class" field if the given value is not nil.
func (_u *ParitySampleUpdate) SetNillableTargetClass(v *string) *ParitySampleUpdate {
	if v != nil {
		_u.SetTargetClass(*v)
	}
	return _u
}

// SetMatched sets the "matched" field.
func (_u *ParitySampleUpdate) SetMatched(v bool) *ParitySampleUpdate {
	_u.mutation.SetMatched(v)
	return _u
}

// SetNillableMatched sets the "matched" field if the given value is not nil.
func (_u *ParitySampleUpdate) SetNillableMatched(v *bool) *ParitySampleUpdate {
	if v != nil {
		_u.SetMatched(*v)
	}
	return _u
}

// SetEligible sets the "eligible" field.
func (_u *ParitySampleUpdate) SetEligible(v bool) *ParitySampleUpdate {
	_u.mutation.SetEligible(v)
	return _u
}

// SetNillableEligible sets the "eligible" field if the given value is not nil.
func (_u *ParitySampleUpdate) SetNillableEligible(v *bool) *ParitySampleUpdate {
	if v != nil {
		_u.SetEligible(*v)
	}
	return _u
}

// SetObservedAt sets the "observed_at" field.
func (_u *ParitySampleUpdate) SetObservedAt(v time.Time) *ParitySampleUpdate {
	_u.mutation.SetObservedAt(v)
	return _u
}

// SetNillableObservedAt sets the "observed_at" field if the given value is not nil.
func (_u *ParitySampleUpdate) SetNillableObservedAt(v *time.Time) *ParitySampleUpdate {
	if v != nil {
		_u.SetObservedAt(*v)
	}
	return _u
}

// Mutation returns the ParitySampleMutation object of the builder.
func (_u *ParitySampleUpdate) Mutation() *ParitySampleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParitySampleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParitySampleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParitySampleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParitySampleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ParitySampleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(paritysample.Table, paritysample.Columns, sqlgraph.NewFieldSpec(paritysample.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CauseType(); ok {
		_spec.SetField(paritysample.FieldCauseType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetClass(); ok {
		_spec.SetField(paritysample.FieldTargetClass, field.TypeString, value)
	}
	if value, ok := _u.mutation.Matched(); ok {
		_spec.SetField(paritysample.FieldMatched, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Eligible(); ok {
		_spec.SetField(paritysample.FieldEligible, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ObservedAt(); ok {
		_spec.SetField(paritysample.FieldObservedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paritysample.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParitySampleUpdateOne is the builder for updating a single ParitySample entity.
type ParitySampleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParitySampleMutation
}

// SetCauseType sets the "cause_type" field.
func (_u *ParitySampleUpdateOne) SetCauseType(v string) *ParitySampleUpdateOne {
	_u.mutation.SetCauseType(v)
	return _u
}

// SetNillableCauseType sets the "cause_type" field if the given value is not nil.
func (_u *ParitySampleUpdateOne) SetNillableCauseType(v *string) *ParitySampleUpdateOne {
	if v != nil {
		_u.SetCauseType(*v)
	}
	return _u
}

// SetTargetClass sets the "target_class" field.
func (_u *ParitySampleUpdateOne) SetTargetClass(v string) *ParitySampleUpdateOne {
	_u.mutation.SetTargetClass(v)
	return _u
}

// SetNillableTargetClass sets the "target_class" field if the given value is not nil.
func (_u *ParitySampleUpdateOne) SetNillableTargetClass(v *string) *ParitySampleUpdateOne {
	if v != nil {
		_u.SetTargetClass(*v)
	}
	return _u
}

// SetMatched sets the "matched" field.
func (_u *ParitySampleUpdateOne) SetMatched(v bool) *ParitySampleUpdateOne {
	_u.mutation.SetMatched(v)
	return _u
}

// SetNillableMatched sets the "matched" field if the given value is not nil.
func (_u *ParitySampleUpdateOne) SetNillableMatched(v *bool) *ParitySampleUpdateOne {
	if v != nil {
		_u.SetMatched(*v)
	}
	return _u
}

// SetEligible sets the "eligible" field.
func (_u *ParitySampleUpdateOne) SetEligible(v bool) *ParitySampleUpdateOne {
	_u.mutation.SetEligible(v)
	return _u
}

// SetNillableEligible sets the "eligible" field if the given value is not nil.
func (_u *ParitySampleUpdateOne) SetNillableEligible(v *bool) *ParitySampleUpdateOne {
	if v != nil {
		_u.SetEligible(*v)
	}
	return _u
}

// SetObservedAt sets the "observed_at" field.
func (_u *ParitySampleUpdateOne) SetObservedAt(v time.Time) *ParitySampleUpdateOne {
	_u.mutation.SetObservedAt(v)
	return _u
}

// SetNillableObservedAt sets the "observed_at" field if the given value is not nil.
func (_u *ParitySampleUpdateOne) SetNillableObservedAt(v *time.Time) *ParitySampleUpdateOne {
	if v != nil {
		_u.SetObservedAt(*v)
	}
	return _u
}

// Mutation returns the ParitySampleMutation object of the builder.
func (_u *ParitySampleUpdateOne) Mutation() *ParitySampleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ParitySampleUpdate builder.
func (_u *ParitySampleUpdateOne) Where(ps ...predicate.ParitySample) *ParitySampleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParitySampleUpdateOne) Select(field string, fields ...string) *ParitySampleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ParitySample entity.
func (_u *ParitySampleUpdateOne) Save(ctx context.Context) (*ParitySample, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParitySampleUpdateOne) SaveX(ctx context.Context) *ParitySample {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParitySampleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParitySampleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ParitySampleUpdateOne) sqlSave(ctx context.Context) (_node *ParitySample, err error) {
	_spec := sqlgraph.NewUpdateSpec(paritysample.Table, paritysample.Columns, sqlgraph.NewFieldSpec(paritysample.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ParitySample.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paritysample.FieldID)
		for _, f := range fields {
			if !paritysample.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != paritysample.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CauseType(); ok {
		_spec.SetField(paritysample.FieldCauseType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetClass(); ok {
		_spec.SetField(paritysample.FieldTargetClass, field.TypeString, value)
	}
	if value, ok := _u.mutation.Matched(); ok {
		_spec.SetField(paritysample.FieldMatched, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Eligible(); ok {
		_spec.SetField(paritysample.FieldEligible, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ObservedAt(); ok {
		_spec.SetField(paritysample.FieldObservedAt, field.TypeTime, value)
	}
	_node = &ParitySample{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paritysample.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
