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
	"github.com/codeready-toolchain/loopd/ent/outboxaction"
	"github.com/codeready-toolchain/loopd/ent/outboxattempt"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// OutboxAttemptUpdate is the builder for updating OutboxAttempt entities.
type OutboxAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *OutboxAttemptMutation
}

// Where appends a list predicates to the OutboxAttemptUpdate builder.
func (_u *OutboxAttemptUpdate) Where(ps ...predicate.OutboxAttempt) *OutboxAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOutboxID sets the "outbox_id" field.
func (_u *OutboxAttemptUpdate) SetOutboxID(v string) *OutboxAttemptUpdate {
	_u.mutation.SetOutboxID(v)
	return _u
}

// SetNillableOutboxID sets the "outbox_id" field if the given value is not nil.
func (_u *OutboxAttemptUpdate) SetNillableOutboxID(v *string) *OutboxAttemptUpdate {
	if v != nil {
		_u.SetOutboxID(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *OutboxAttemptUpdate) SetAttempt(v int) *OutboxAttemptUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *OutboxAttemptUpdate) SetNillableAttempt(v *int) *OutboxAttemptUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *OutboxAttemptUpdate) AddAttempt(v int) *OutboxAttemptUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *OutboxAttemptUpdate) SetStatus(v outboxattempt.Status) *OutboxAttemptUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OutboxAttemptUpdate) SetNillableStatus(v *outboxattempt.Status) *OutboxAttemptUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorClass sets the "error_class" field.
func (_u *OutboxAttemptUpdate) SetErrorClass(v string) *OutboxAttemptUpdate {
	_u.mutation.SetErrorClass(v)
	return _u
}

// SetNillableErrorClass sets the "error_class" field if the given value is not nil.
func (_u *OutboxAttemptUpdate) SetNillableErrorClass(v *string) *OutboxAttemptUpdate {
	if v != nil {
		_u.SetErrorClass(*v)
	}
	return _u
}

// ClearErrorClass clears the value of the "error_class" field.
func (_u *OutboxAttemptUpdate) ClearErrorClass() *OutboxAttemptUpdate {
	_u.mutation.ClearErrorClass()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *OutboxAttemptUpdate) SetErrorCode(v string) *OutboxAttemptUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *OutboxAttemptUpdate) SetNillableErrorCode(v *string) *OutboxAttemptUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *OutboxAttemptUpdate) ClearErrorCode() *OutboxAttemptUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *OutboxAttemptUpdate) SetErrorMessage(v string) *OutboxAttemptUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *OutboxAttemptUpdate) SetNillableErrorMessage(v *string) *OutboxAttemptUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *OutboxAttemptUpdate) ClearErrorMessage() *OutboxAttemptUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryAt sets the "retry_at" field.
func (_u *OutboxAttemptUpdate) SetRetryAt(v time.Time) *OutboxAttemptUpdate {
	_u.mutation.SetRetryAt(v)
	return _u
}

// SetNillableRetryAt sets the "retry_at" field if the given value is not nil.
func (_u *OutboxAttemptUpdate) SetNillableRetryAt(v *time.Time) *OutboxAttemptUpdate {
	if v != nil {
		_u.SetRetryAt(*v)
	}
	return _u
}

// ClearRetryAt clears the value of the "retry_at" field.
func (_u *OutboxAttemptUpdate) ClearRetryAt() *OutboxAttemptUpdate {
	_u.mutation.ClearRetryAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OutboxAttemptUpdate) SetCreatedAt(v time.Time) *OutboxAttemptUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OutboxAttemptUpdate) SetNillableCreatedAt(v *time.Time) *OutboxAttemptUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetActionID sets the "action" edge to the OutboxAction entity by ID.
func (_u *OutboxAttemptUpdate) SetActionID(id string) *OutboxAttemptUpdate {
	_u.mutation.SetActionID(id)
	return _u
}

// SetAction sets the "action" edge to the OutboxAction entity.
func (_u *OutboxAttemptUpdate) SetAction(v *OutboxAction) *OutboxAttemptUpdate {
	return _u.SetActionID(v.ID)
}

// Mutation returns the OutboxAttemptMutation object of the builder.
func (_u *OutboxAttemptUpdate) Mutation() *OutboxAttemptMutation {
	return _u.mutation
}

// ClearAction clears the "action" edge to the OutboxAction entity.
func (_u *OutboxAttemptUpdate) ClearAction() *OutboxAttemptUpdate {
	_u.mutation.ClearAction()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OutboxAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutboxAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OutboxAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutboxAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutboxAttemptUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := outboxattempt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OutboxAttempt.status": %w`, err)}
		}
	}
	if _u.mutation.ActionCleared() && len(_u.mutation.ActionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OutboxAttempt.action"`)
	}
	return nil
}

func (_u *OutboxAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outboxattempt.Table, outboxattempt.Columns, sqlgraph.NewFieldSpec(outboxattempt.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(outboxattempt.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(outboxattempt.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(outboxattempt.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorClass(); ok {
		_spec.SetField(outboxattempt.FieldErrorClass, field.TypeString, value)
	}
	if _u.mutation.ErrorClassCleared() {
		_spec.ClearField(outboxattempt.FieldErrorClass, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(outboxattempt.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(outboxattempt.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(outboxattempt.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(outboxattempt.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryAt(); ok {
		_spec.SetField(outboxattempt.FieldRetryAt, field.TypeTime, value)
	}
	if _u.mutation.RetryAtCleared() {
		_spec.ClearField(outboxattempt.FieldRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(outboxattempt.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ActionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   outboxattempt.ActionTable,
			Columns: []string{outboxattempt.ActionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outboxaction.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   outboxattempt.ActionTable,
			Columns: []string{outboxattempt.ActionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outboxaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outboxattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OutboxAttemptUpdateOne is the builder for updating a single OutboxAttempt entity.
type OutboxAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OutboxAttemptMutation
}

// SetOutboxID sets the "outbox_id" field.
func (_u *OutboxAttemptUpdateOne) SetOutboxID(v string) *OutboxAttemptUpdateOne {
	_u.mutation.SetOutboxID(v)
	return _u
}

// SetNillableOutboxID sets the "outbox_id" field if the given value is not nil.
func (_u *OutboxAttemptUpdateOne) SetNillableOutboxID(v *string) *OutboxAttemptUpdateOne {
	if v != nil {
		_u.SetOutboxID(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *OutboxAttemptUpdateOne) SetAttempt(v int) *OutboxAttemptUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *OutboxAttemptUpdateOne) SetNillableAttempt(v *int) *OutboxAttemptUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *OutboxAttemptUpdateOne) AddAttempt(v int) *OutboxAttemptUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *OutboxAttemptUpdateOne) SetStatus(v outboxattempt.Status) *OutboxAttemptUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OutboxAttemptUpdateOne) SetNillableStatus(v *outboxattempt.Status) *OutboxAttemptUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorClass sets the "error_class" field.
func (_u *OutboxAttemptUpdateOne) SetErrorClass(v string) *OutboxAttemptUpdateOne {
	_u.mutation.SetErrorClass(v)
	return _u
}

// SetNillableErrorClass sets the "error_class" field if the given value is not nil.
func (_u *OutboxAttemptUpdateOne) SetNillableErrorClass(v *string) *OutboxAttemptUpdateOne {
	if v != nil {
		_u.SetErrorClass(*v)
	}
	return _u
}

// ClearErrorClass clears the value of the "error_class" field.
func (_u *OutboxAttemptUpdateOne) ClearErrorClass() *OutboxAttemptUpdateOne {
	_u.mutation.ClearErrorClass()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *OutboxAttemptUpdateOne) SetErrorCode(v string) *OutboxAttemptUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *OutboxAttemptUpdateOne) SetNillableErrorCode(v *string) *OutboxAttemptUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *OutboxAttemptUpdateOne) ClearErrorCode() *OutboxAttemptUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *OutboxAttemptUpdateOne) SetErrorMessage(v string) *OutboxAttemptUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *OutboxAttemptUpdateOne) SetNillableErrorMessage(v *string) *OutboxAttemptUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *OutboxAttemptUpdateOne) ClearErrorMessage() *OutboxAttemptUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryAt sets the "retry_at" field.
func (_u *OutboxAttemptUpdateOne) SetRetryAt(v time.Time) *OutboxAttemptUpdateOne {
	_u.mutation.SetRetryAt(v)
	return _u
}

// SetNillableRetryAt sets the "retry_at" field if the given value is not nil.
func (_u *OutboxAttemptUpdateOne) SetNillableRetryAt(v *time.Time) *OutboxAttemptUpdateOne {
	if v != nil {
		_u.SetRetryAt(*v)
	}
	return _u
}

// ClearRetryAt clears the value of the "retry_at" field.
func (_u *OutboxAttemptUpdateOne) ClearRetryAt() *OutboxAttemptUpdateOne {
	_u.mutation.ClearRetryAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OutboxAttemptUpdateOne) SetCreatedAt(v time.Time) *OutboxAttemptUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OutboxAttemptUpdateOne) SetNillableCreatedAt(v *time.Time) *OutboxAttemptUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetActionID sets the "action" edge to the OutboxAction entity by ID.
func (_u *OutboxAttemptUpdateOne) SetActionID(id string) *OutboxAttemptUpdateOne {
	_u.mutation.SetActionID(id)
	return _u
}

// SetAction sets the "action" edge to the OutboxAction entity.
func (_u *OutboxAttemptUpdateOne) SetAction(v *OutboxAction) *OutboxAttemptUpdateOne {
	return _u.SetActionID(v.ID)
}

// Mutation returns the OutboxAttemptMutation object of the builder.
func (_u *OutboxAttemptUpdateOne) Mutation() *OutboxAttemptMutation {
	return _u.mutation
}

// ClearAction clears the "action" edge to the OutboxAction entity.
func (_u *OutboxAttemptUpdateOne) ClearAction() *OutboxAttemptUpdateOne {
	_u.mutation.ClearAction()
	return _u
}

// Where appends a list predicates to the OutboxAttemptUpdate builder.
func (_u *OutboxAttemptUpdateOne) Where(ps ...predicate.OutboxAttempt) *OutboxAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OutboxAttemptUpdateOne) Select(field string, fields ...string) *OutboxAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OutboxAttempt entity.
func (_u *OutboxAttemptUpdateOne) Save(ctx context.Context) (*OutboxAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutboxAttemptUpdateOne) SaveX(ctx context.Context) *OutboxAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OutboxAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutboxAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutboxAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := outboxattempt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OutboxAttempt.status": %w`, err)}
		}
	}
	if _u.mutation.ActionCleared() && len(_u.mutation.ActionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OutboxAttempt.action"`)
	}
	return nil
}

func (_u *OutboxAttemptUpdateOne) sqlSave(ctx context.Context) (_node *OutboxAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outboxattempt.Table, outboxattempt.Columns, sqlgraph.NewFieldSpec(outboxattempt.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OutboxAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, outboxattempt.FieldID)
		for _, f := range fields {
			if !outboxattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != outboxattempt.FieldID {
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
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(outboxattempt.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(outboxattempt.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(outboxattempt.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorClass(); ok {
		_spec.SetField(outboxattempt.FieldErrorClass, field.TypeString, value)
	}
	if _u.mutation.ErrorClassCleared() {
		_spec.ClearField(outboxattempt.FieldErrorClass, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(outboxattempt.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(outboxattempt.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(outboxattempt.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(outboxattempt.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryAt(); ok {
		_spec.SetField(outboxattempt.FieldRetryAt, field.TypeTime, value)
	}
	if _u.mutation.RetryAtCleared() {
		_spec.ClearField(outboxattempt.FieldRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(outboxattempt.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ActionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   outboxattempt.ActionTable,
			Columns: []string{outboxattempt.ActionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outboxaction.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   outboxattempt.ActionTable,
			Columns: []string{outboxattempt.ActionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outboxaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OutboxAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outboxattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
