// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/loopd/ent/inboxsignal"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// InboxSignalDelete is the builder for deleting a InboxSignal entity.
type InboxSignalDelete struct {
	config
	hooks    []Hook
	mutation *InboxSignalMutation
}

// Where appends a list predicates to the InboxSignalDelete builder.
func (_d *InboxSignalDelete) Where(ps ...predicate.InboxSignal) *InboxSignalDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InboxSignalDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InboxSignalDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InboxSignalDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(inboxsignal.Table, sqlgraph.NewFieldSpec(inboxsignal.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// InboxSignalDeleteOne is the builder for deleting a single InboxSignal entity.
type InboxSignalDeleteOne struct {
	_d *InboxSignalDelete
}

// Where appends a list predicates to the InboxSignalDelete builder.
func (_d *InboxSignalDeleteOne) Where(ps ...predicate.InboxSignal) *InboxSignalDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InboxSignalDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{inboxsignal.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InboxSignalDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
