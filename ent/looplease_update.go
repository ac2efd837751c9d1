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
	"github.com/codeready-toolchain/loopd/ent/looplease"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// LoopLeaseUpdate is the builder for updating LoopLease entities.
type LoopLeaseUpdate struct {
	config
	hooks    []Hook
	mutation *LoopLeaseMutation
}

// Where appends a list predicates to the LoopLeaseUpdate builder.
func (_u *LoopLeaseUpdate) Where(ps ...predicate.LoopLease) *LoopLeaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLeaseOwner sets the "lease_owner" field.
func (_u *LoopLeaseUpdate) SetLeaseOwner(v string) *LoopLeaseUpdate {
	_u.mutation.SetLeaseOwner(v)
	return _u
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_u *LoopLeaseUpdate) SetNillableLeaseOwner(v *string) *LoopLeaseUpdate {
	if v != nil {
		_u.SetLeaseOwner(*v)
	}
	return _u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (_u *LoopLeaseUpdate) ClearLeaseOwner() *LoopLeaseUpdate {
	_u.mutation.ClearLeaseOwner()
	return _u
}

// SetLeaseEpoch sets the "lease_epoch" field.
func (_u *LoopLeaseUpdate) SetLeaseEpoch(v int) *LoopLeaseUpdate {
	_u.mutation.ResetLeaseEpoch()
	_u.mutation.SetLeaseEpoch(v)
	return _u
}

// SetNillableLeaseEpoch sets the "lease_epoch" field if the given value is not nil.
func (_u *LoopLeaseUpdate) SetNillableLeaseEpoch(v *int) *LoopLeaseUpdate {
	if v != nil {
		_u.SetLeaseEpoch(*v)
	}
	return _u
}

// AddLeaseEpoch adds value to the "lease_epoch" field.
func (_u *LoopLeaseUpdate) AddLeaseEpoch(v int) *LoopLeaseUpdate {
	_u.mutation.AddLeaseEpoch(v)
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *LoopLeaseUpdate) SetLeaseExpiresAt(v time.Time) *LoopLeaseUpdate {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *LoopLeaseUpdate) SetNillableLeaseExpiresAt(v *time.Time) *LoopLeaseUpdate {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *LoopLeaseUpdate) ClearLeaseExpiresAt() *LoopLeaseUpdate {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// Mutation returns the LoopLeaseMutation object of the builder.
func (_u *LoopLeaseUpdate) Mutation() *LoopLeaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LoopLeaseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LoopLeaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LoopLeaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LoopLeaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LoopLeaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(looplease.Table, looplease.Columns, sqlgraph.NewFieldSpec(looplease.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LeaseOwner(); ok {
		_spec.SetField(looplease.FieldLeaseOwner, field.TypeString, value)
	}
	if _u.mutation.LeaseOwnerCleared() {
		_spec.ClearField(looplease.FieldLeaseOwner, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseEpoch(); ok {
		_spec.SetField(looplease.FieldLeaseEpoch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeaseEpoch(); ok {
		_spec.AddField(looplease.FieldLeaseEpoch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(looplease.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(looplease.FieldLeaseExpiresAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{looplease.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LoopLeaseUpdateOne is the builder for updating a single LoopLease entity.
type LoopLeaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LoopLeaseMutation
}

// SetLeaseOwner sets the "lease_owner" field.
func (_u *LoopLeaseUpdateOne) SetLeaseOwner(v string) *LoopLeaseUpdateOne {
	_u.mutation.SetLeaseOwner(v)
	return _u
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_u *LoopLeaseUpdateOne) SetNillableLeaseOwner(v *string) *LoopLeaseUpdateOne {
	if v != nil {
		_u.SetLeaseOwner(*v)
	}
	return _u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (_u *LoopLeaseUpdateOne) ClearLeaseOwner() *LoopLeaseUpdateOne {
	_u.mutation.ClearLeaseOwner()
	return _u
}

// SetLeaseEpoch sets the "lease_epoch" field.
func (_u *LoopLeaseUpdateOne) SetLeaseEpoch(v int) *LoopLeaseUpdateOne {
	_u.mutation.ResetLeaseEpoch()
	_u.mutation.SetLeaseEpoch(v)
	return _u
}

// SetNillableLeaseEpoch sets the "lease_epoch" field if the given value is not nil.
func (_u *LoopLeaseUpdateOne) SetNillableLeaseEpoch(v *int) *LoopLeaseUpdateOne {
	if v != nil {
		_u.SetLeaseEpoch(*v)
	}
	return _u
}

// AddLeaseEpoch adds value to the "lease_epoch" field.
func (_u *LoopLeaseUpdateOne) AddLeaseEpoch(v int) *LoopLeaseUpdateOne {
	_u.mutation.AddLeaseEpoch(v)
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *LoopLeaseUpdateOne) SetLeaseExpiresAt(v time.Time) *LoopLeaseUpdateOne {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *LoopLeaseUpdateOne) SetNillableLeaseExpiresAt(v *time.Time) *LoopLeaseUpdateOne {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *LoopLeaseUpdateOne) ClearLeaseExpiresAt() *LoopLeaseUpdateOne {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// Mutation returns the LoopLeaseMutation object of the builder.
func (_u *LoopLeaseUpdateOne) Mutation() *LoopLeaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the LoopLeaseUpdate builder.
func (_u *LoopLeaseUpdateOne) Where(ps ...predicate.LoopLease) *LoopLeaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LoopLeaseUpdateOne) Select(field string, fields ...string) *LoopLeaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LoopLease entity.
func (_u *LoopLeaseUpdateOne) Save(ctx context.Context) (*LoopLease, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LoopLeaseUpdateOne) SaveX(ctx context.Context) *LoopLease {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LoopLeaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LoopLeaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LoopLeaseUpdateOne) sqlSave(ctx context.Context) (_node *LoopLease, err error) {
	_spec := sqlgraph.NewUpdateSpec(looplease.Table, looplease.Columns, sqlgraph.NewFieldSpec(looplease.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LoopLease.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, looplease.FieldID)
		for _, f := range fields {
			if !looplease.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != looplease.FieldID {
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
	if value, ok := _u.mutation.LeaseOwner(); ok {
		_spec.SetField(looplease.FieldLeaseOwner, field.TypeString, value)
	}
	if _u.mutation.LeaseOwnerCleared() {
		_spec.ClearField(looplease.FieldLeaseOwner, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseEpoch(); ok {
		_spec.SetField(looplease.FieldLeaseEpoch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeaseEpoch(); ok {
		_spec.AddField(looplease.FieldLeaseEpoch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(looplease.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(looplease.FieldLeaseExpiresAt, field.TypeTime)
	}
	_node = &LoopLease{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{looplease.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
