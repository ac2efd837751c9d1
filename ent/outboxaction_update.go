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
	"github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/outboxaction"
	"github.com/codeready-toolchain/loopd/ent/outboxattempt"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// OutboxActionUpdate is the builder for updating OutboxAction entities.
type OutboxActionUpdate struct {
	config
	hooks    []Hook
	mutation *OutboxActionMutation
}

// Where appends a list predicates to the OutboxActionUpdate builder.
func (_u *OutboxActionUpdate) Where(ps ...predicate.OutboxAction) *OutboxActionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLoopID sets the "loop_id" field.
func (_u *OutboxActionUpdate) SetLoopID(v string) *OutboxActionUpdate {
	_u.mutation.SetLoopID(v)
	return _u
}

// SetNillableLoopID sets the "loop_id" field if the given value is not nil.
func (_u *OutboxActionUpdate) SetNillableLoopID(v *string) *OutboxActionUpdate {
	if v != nil {
		_u.SetLoopID(*v)
	}
	return _u
}

// SetTransitionSeq sets the "transition_seq" field.
func (_u *OutboxActionUpdate) SetTransitionSeq(v int) *OutboxActionUpdate {
	_u.mutation.ResetTransitionSeq()
	_u.mutation.SetTransitionSeq(v)
	return _u
}

// SetNillableTransitionSeq sets the "transition_seq" field if the given value is not nil.
func (_u *OutboxActionUpdate) SetNillableTransitionSeq(v *int) *OutboxActionUpdate {
	if v != nil {
		_u.SetTransitionSeq(*v)
	}
	return _u
}

// AddTransitionSeq adds value to the "transition_seq" field.
func (_u *OutboxActionUpdate) AddTransitionSeq(v int) *OutboxActionUpdate {
	_u.mutation.AddTransitionSeq(v)
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *OutboxActionUpdate) SetActionType(v outboxaction.ActionType) *OutboxActionUpdate {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *OutboxActionUpdate) SetNillableActionType(v *outboxaction.ActionType) *OutboxActionUpdate {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetSupersessionGroup sets the "supersession_group" field.
func (_u *OutboxActionUpdate) SetSupersessionGroup(v string) *OutboxActionUpdate {
	_u.mutation.SetSupersessionGroup(v)
	return _u
}

// SetNillableSupersessionGroup sets the "supersession_group" field if the given value is not nil.
func (_u *OutboxActionUpdate) SetNillableSupersessionGroup(v *string) *OutboxActionUpdate {
	if v != nil {
		_u.SetSupersessionGroup(*v)
	}
	return _u
}

// SetActionKey sets the "action_key" field.
func (_u *OutboxActionUpdate) SetActionKey(v string) *OutboxActionUpdate {
	_u.mutation.SetActionKey(v)
	return _u
}

// SetNillableActionKey sets the "action_key" field if the given value is not nil.
func (_u *OutboxActionUpdate) SetNillableActionKey(v *string) *OutboxActionUpdate {
	if v != nil {
		_u.SetActionKey(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *OutboxActionUpdate) SetPayload(v map[string]interface{}) *OutboxActionUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *OutboxActionUpdate) ClearPayload() *OutboxActionUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetStatus sets the "status" field.
func (_u *OutboxActionUpdate) SetStatus(v outboxaction.Status) *OutboxActionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OutboxActionUpdate) SetNillableStatus(v *outboxaction.Status) *OutboxActionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *OutboxActionUpdate) SetAttemptCount(v int) *OutboxActionUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *OutboxActionUpdate) SetNillableAttemptCount(v *int) *OutboxActionUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *OutboxActionUpdate) AddAttemptCount(v int) *OutboxActionUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *OutboxActionUpdate) SetNextRetryAt(v time.Time) *OutboxActionUpdate {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *OutboxActionUpdate) SetNillableNextRetryAt(v *time.Time) *OutboxActionUpdate {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *OutboxActionUpdate) ClearNextRetryAt() *OutboxActionUpdate {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *OutboxActionUpdate) SetClaimedBy(v string) *OutboxActionUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *OutboxActionUpdate) SetNillableClaimedBy(v *string) *OutboxActionUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *OutboxActionUpdate) ClearClaimedBy() *OutboxActionUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *OutboxActionUpdate) SetClaimedAt(v time.Time) *OutboxActionUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *OutboxActionUpdate) SetNillableClaimedAt(v *time.Time) *OutboxActionUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *OutboxActionUpdate) ClearClaimedAt() *OutboxActionUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *OutboxActionUpdate) SetCompletedAt(v time.Time) *OutboxActionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *OutboxActionUpdate) SetNillableCompletedAt(v *time.Time) *OutboxActionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *OutboxActionUpdate) ClearCompletedAt() *OutboxActionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastErrorClass sets the "last_error_class" field.
func (_u *OutboxActionUpdate) SetLastErrorClass(v string) *OutboxActionUpdate {
	_u.mutation.SetLastErrorClass(v)
	return _u
}

// SetNillableLastErrorClass sets the "last_error_class" field if the given value is not nil.
func (_u *OutboxActionUpdate) SetNillableLastErrorClass(v *string) *OutboxActionUpdate {
	if v != nil {
		_u.SetLastErrorClass(*v)
	}
	return _u
}

// ClearLastErrorClass clears the value of the "last_error_class" field.
func (_u *OutboxActionUpdate) ClearLastErrorClass() *OutboxActionUpdate {
	_u.mutation.ClearLastErrorClass()
	return _u
}

// SetLastErrorCode sets the "last_error_code" field.
func (_u *OutboxActionUpdate) SetLastErrorCode(v string) *OutboxActionUpdate {
	_u.mutation.SetLastErrorCode(v)
	return _u
}

// SetNillableLastErrorCode sets the "last_error_code" field if the given value is not nil.
func (_u *OutboxActionUpdate) SetNillableLastErrorCode(v *string) *OutboxActionUpdate {
	if v != nil {
		_u.SetLastErrorCode(*v)
	}
	return _u
}

// ClearLastErrorCode clears the value of the "last_error_code" field.
func (_u *OutboxActionUpdate) ClearLastErrorCode() *OutboxActionUpdate {
	_u.mutation.ClearLastErrorCode()
	return _u
}

// SetLastErrorMessage sets the "last_error_message" field.
func (_u *OutboxActionUpdate) SetLastErrorMessage(v string) *OutboxActionUpdate {
	_u.mutation.SetLastErrorMessage(v)
	return _u
}

// SetNillableLastErrorMessage sets the "last_error_message" field if the given value is not nil.
func (_u *OutboxActionUpdate) SetNillableLastErrorMessage(v *string) *OutboxActionUpdate {
	if v != nil {
		_u.SetLastErrorMessage(*v)
	}
	return _u
}

// ClearLastErrorMessage clears the value of the "last_error_message" field.
func (_u *OutboxActionUpdate) ClearLastErrorMessage() *OutboxActionUpdate {
	_u.mutation.ClearLastErrorMessage()
	return _u
}

// SetSupersededByOutboxID sets the "superseded_by_outbox_id" field.
func (_u *OutboxActionUpdate) SetSupersededByOutboxID(v string) *OutboxActionUpdate {
	_u.mutation.SetSupersededByOutboxID(v)
	return _u
}

// SetNillableSupersededByOutboxID sets the "superseded_by_outbox_id" field if the given value is not nil.
func (_u *OutboxActionUpdate) SetNillableSupersededByOutboxID(v *string) *OutboxActionUpdate {
	if v != nil {
		_u.SetSupersededByOutboxID(*v)
	}
	return _u
}

// ClearSupersededByOutboxID clears the value of the "superseded_by_outbox_id" field.
func (_u *OutboxActionUpdate) ClearSupersededByOutboxID() *OutboxActionUpdate {
	_u.mutation.ClearSupersededByOutboxID()
	return _u
}

// SetCanceledReason sets the "canceled_reason" field.
func (_u *OutboxActionUpdate) SetCanceledReason(v string) *OutboxActionUpdate {
	_u.mutation.SetCanceledReason(v)
	return _u
}

// SetNillableCanceledReason sets the "canceled_reason" field if the given value is not nil.
func (_u *OutboxActionUpdate) SetNillableCanceledReason(v *string) *OutboxActionUpdate {
	if v != nil {
		_u.SetCanceledReason(*v)
	}
	return _u
}

// ClearCanceledReason clears the value of the "canceled_reason" field.
func (_u *OutboxActionUpdate) ClearCanceledReason() *OutboxActionUpdate {
	_u.mutation.ClearCanceledReason()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OutboxActionUpdate) SetCreatedAt(v time.Time) *OutboxActionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OutboxActionUpdate) SetNillableCreatedAt(v *time.Time) *OutboxActionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OutboxActionUpdate) SetUpdatedAt(v time.Time) *OutboxActionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLoop sets the "loop" edge to the Loop entity.
func (_u *OutboxActionUpdate) SetLoop(v *Loop) *OutboxActionUpdate {
	return _u.SetLoopID(v.ID)
}

// AddAttemptIDs adds the "attempts" edge to the OutboxAttempt entity by IDs.
func (_u *OutboxActionUpdate) AddAttemptIDs(ids ...string) *OutboxActionUpdate {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the OutboxAttempt entity.
func (_u *OutboxActionUpdate) AddAttempts(v ...*OutboxAttempt) *OutboxActionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the OutboxActionMutation object of the builder.
func (_u *OutboxActionUpdate) Mutation() *OutboxActionMutation {
	return _u.mutation
}

// ClearLoop clears the "loop" edge to the Loop entity.
func (_u *OutboxActionUpdate) ClearLoop() *OutboxActionUpdate {
	_u.mutation.ClearLoop()
	return _u
}

// ClearAttempts clears all "attempts" edges to the OutboxAttempt entity.
func (_u *OutboxActionUpdate) ClearAttempts() *OutboxActionUpdate {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to OutboxAttempt entities by IDs.
func (_u *OutboxActionUpdate) RemoveAttemptIDs(ids ...string) *OutboxActionUpdate {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to OutboxAttempt entities.
func (_u *OutboxActionUpdate) RemoveAttempts(v ...*OutboxAttempt) *OutboxActionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OutboxActionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutboxActionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OutboxActionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutboxActionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OutboxActionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := outboxaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutboxActionUpdate) check() error {
	if v, ok := _u.mutation.ActionType(); ok {
		if err := outboxaction.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "OutboxAction.action_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := outboxaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OutboxAction.status": %w`, err)}
		}
	}
	if _u.mutation.LoopCleared() && len(_u.mutation.LoopIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OutboxAction.loop"`)
	}
	return nil
}

func (_u *OutboxActionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outboxaction.Table, outboxaction.Columns, sqlgraph.NewFieldSpec(outboxaction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TransitionSeq(); ok {
		_spec.SetField(outboxaction.FieldTransitionSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTransitionSeq(); ok {
		_spec.AddField(outboxaction.FieldTransitionSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(outboxaction.FieldActionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SupersessionGroup(); ok {
		_spec.SetField(outboxaction.FieldSupersessionGroup, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionKey(); ok {
		_spec.SetField(outboxaction.FieldActionKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(outboxaction.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(outboxaction.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(outboxaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(outboxaction.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(outboxaction.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(outboxaction.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(outboxaction.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(outboxaction.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(outboxaction.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(outboxaction.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(outboxaction.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(outboxaction.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(outboxaction.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastErrorClass(); ok {
		_spec.SetField(outboxaction.FieldLastErrorClass, field.TypeString, value)
	}
	if _u.mutation.LastErrorClassCleared() {
		_spec.ClearField(outboxaction.FieldLastErrorClass, field.TypeString)
	}
	if value, ok := _u.mutation.LastErrorCode(); ok {
		_spec.SetField(outboxaction.FieldLastErrorCode, field.TypeString, value)
	}
	if _u.mutation.LastErrorCodeCleared() {
		_spec.ClearField(outboxaction.FieldLastErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.LastErrorMessage(); ok {
		_spec.SetField(outboxaction.FieldLastErrorMessage, field.TypeString, value)
	}
	if _u.mutation.LastErrorMessageCleared() {
		_spec.ClearField(outboxaction.FieldLastErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.SupersededByOutboxID(); ok {
		_spec.SetField(outboxaction.FieldSupersededByOutboxID, field.TypeString, value)
	}
	if _u.mutation.SupersededByOutboxIDCleared() {
		_spec.ClearField(outboxaction.FieldSupersededByOutboxID, field.TypeString)
	}
	if value, ok := _u.mutation.CanceledReason(); ok {
		_spec.SetField(outboxaction.FieldCanceledReason, field.TypeString, value)
	}
	if _u.mutation.CanceledReasonCleared() {
		_spec.ClearField(outboxaction.FieldCanceledReason, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(outboxaction.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(outboxaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LoopCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   outboxaction.LoopTable,
			Columns: []string{outboxaction.LoopColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(loop.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LoopIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   outboxaction.LoopTable,
			Columns: []string{outboxaction.LoopColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(loop.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   outboxaction.AttemptsTable,
			Columns: []string{outboxaction.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outboxattempt.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   outboxaction.AttemptsTable,
			Columns: []string{outboxaction.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outboxattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   outboxaction.AttemptsTable,
			Columns: []string{outboxaction.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outboxattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outboxaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OutboxActionUpdateOne is the builder for updating a single OutboxAction entity.
type OutboxActionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OutboxActionMutation
}

// SetLoopID sets the "loop_id" field.
func (_u *OutboxActionUpdateOne) SetLoopID(v string) *OutboxActionUpdateOne {
	_u.mutation.SetLoopID(v)
	return _u
}

// SetNillableLoopID sets the "loop_id" field if the given value is not nil.
func (_u *OutboxActionUpdateOne) SetNillableLoopID(v *string) *OutboxActionUpdateOne {
	if v != nil {
		_u.SetLoopID(*v)
	}
	return _u
}

// SetTransitionSeq sets the "transition_seq" field.
func (_u *OutboxActionUpdateOne) SetTransitionSeq(v int) *OutboxActionUpdateOne {
	_u.mutation.ResetTransitionSeq()
	_u.mutation.SetTransitionSeq(v)
	return _u
}

// SetNillableTransitionSeq sets the "transition_seq" field if the given value is not nil.
func (_u *OutboxActionUpdateOne) SetNillableTransitionSeq(v *int) *OutboxActionUpdateOne {
	if v != nil {
		_u.SetTransitionSeq(*v)
	}
	return _u
}

// AddTransitionSeq adds value to the "transition_seq" field.
func (_u *OutboxActionUpdateOne) AddTransitionSeq(v int) *OutboxActionUpdateOne {
	_u.mutation.AddTransitionSeq(v)
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *OutboxActionUpdateOne) SetActionType(v outboxaction.ActionType) *OutboxActionUpdateOne {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *OutboxActionUpdateOne) SetNillableActionType(v *outboxaction.ActionType) *OutboxActionUpdateOne {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetSupersessionGroup sets the "supersession_group" field.
func (_u *OutboxActionUpdateOne) SetSupersessionGroup(v string) *OutboxActionUpdateOne {
	_u.mutation.SetSupersessionGroup(v)
	return _u
}

// SetNillableSupersessionGroup sets the "supersession_group" field if the given value is not nil.
func (_u *OutboxActionUpdateOne) SetNillableSupersessionGroup(v *string) *OutboxActionUpdateOne {
	if v != nil {
		_u.SetSupersessionGroup(*v)
	}
	return _u
}

// SetActionKey sets the "action_key" field.
func (_u *OutboxActionUpdateOne) SetActionKey(v string) *OutboxActionUpdateOne {
	_u.mutation.SetActionKey(v)
	return _u
}

// SetNillableActionKey sets the "action_key" field if the given value is not nil.
func (_u *OutboxActionUpdateOne) SetNillableActionKey(v *string) *OutboxActionUpdateOne {
	if v != nil {
		_u.SetActionKey(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *OutboxActionUpdateOne) SetPayload(v map[string]interface{}) *OutboxActionUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *OutboxActionUpdateOne) ClearPayload() *OutboxActionUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetStatus sets the "status" field.
func (_u *OutboxActionUpdateOne) SetStatus(v outboxaction.Status) *OutboxActionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OutboxActionUpdateOne) SetNillableStatus(v *outboxaction.Status) *OutboxActionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *OutboxActionUpdateOne) SetAttemptCount(v int) *OutboxActionUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *OutboxActionUpdateOne) SetNillableAttemptCount(v *int) *OutboxActionUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *OutboxActionUpdateOne) AddAttemptCount(v int) *OutboxActionUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *OutboxActionUpdateOne) SetNextRetryAt(v time.Time) *OutboxActionUpdateOne {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *OutboxActionUpdateOne) SetNillableNextRetryAt(v *time.Time) *OutboxActionUpdateOne {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *OutboxActionUpdateOne) ClearNextRetryAt() *OutboxActionUpdateOne {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *OutboxActionUpdateOne) SetClaimedBy(v string) *OutboxActionUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *OutboxActionUpdateOne) SetNillableClaimedBy(v *string) *OutboxActionUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *OutboxActionUpdateOne) ClearClaimedBy() *OutboxActionUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *OutboxActionUpdateOne) SetClaimedAt(v time.Time) *OutboxActionUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *OutboxActionUpdateOne) SetNillableClaimedAt(v *time.Time) *OutboxActionUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *OutboxActionUpdateOne) ClearClaimedAt() *OutboxActionUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *OutboxActionUpdateOne) SetCompletedAt(v time.Time) *OutboxActionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *OutboxActionUpdateOne) SetNillableCompletedAt(v *time.Time) *OutboxActionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *OutboxActionUpdateOne) ClearCompletedAt() *OutboxActionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastErrorClass sets the "last_error_class" field.
func (_u *OutboxActionUpdateOne) SetLastErrorClass(v string) *OutboxActionUpdateOne {
	_u.mutation.SetLastErrorClass(v)
	return _u
}

// SetNillableLastErrorClass sets the "last_error_class" field if the given value is not nil.
func (_u *OutboxActionUpdateOne) SetNillableLastErrorClass(v *string) *OutboxActionUpdateOne {
	if v != nil {
		_u.SetLastErrorClass(*v)
	}
	return _u
}

// ClearLastErrorClass clears the value of the "last_error_class" field.
func (_u *OutboxActionUpdateOne) ClearLastErrorClass() *OutboxActionUpdateOne {
	_u.mutation.ClearLastErrorClass()
	return _u
}

// SetLastErrorCode sets the "last_error_code" field.
func (_u *OutboxActionUpdateOne) SetLastErrorCode(v string) *OutboxActionUpdateOne {
	_u.mutation.SetLastErrorCode(v)
	return _u
}

// SetNillableLastErrorCode sets the "last_error_code" field if the given value is not nil.
func (_u *OutboxActionUpdateOne) SetNillableLastErrorCode(v *string) *OutboxActionUpdateOne {
	if v != nil {
		_u.SetLastErrorCode(*v)
	}
	return _u
}

// ClearLastErrorCode clears the value of the "last_error_code" field.
func (_u *OutboxActionUpdateOne) ClearLastErrorCode() *OutboxActionUpdateOne {
	_u.mutation.ClearLastErrorCode()
	return _u
}

// SetLastErrorMessage sets the "last_error_message" field.
func (_u *OutboxActionUpdateOne) SetLastErrorMessage(v string) *OutboxActionUpdateOne {
	_u.mutation.SetLastErrorMessage(v)
	return _u
}

// SetNillableLastErrorMessage sets the "last_error_message" field if the given value is not nil.
func (_u *OutboxActionUpdateOne) SetNillableLastErrorMessage(v *string) *OutboxActionUpdateOne {
	if v != nil {
		_u.SetLastErrorMessage(*v)
	}
	return _u
}

// ClearLastErrorMessage clears the value of the "last_error_message" field.
func (_u *OutboxActionUpdateOne) ClearLastErrorMessage() *OutboxActionUpdateOne {
	_u.mutation.ClearLastErrorMessage()
	return _u
}

// SetSupersededByOutboxID sets the "superseded_by_outbox_id" field.
func (_u *OutboxActionUpdateOne) SetSupersededByOutboxID(v string) *OutboxActionUpdateOne {
	_u.mutation.SetSupersededByOutboxID(v)
	return _u
}

// SetNillableSupersededByOutboxID sets the "superseded_by_outbox_id" field if the given value is not nil.
func (_u *OutboxActionUpdateOne) SetNillableSupersededByOutboxID(v *string) *OutboxActionUpdateOne {
	if v != nil {
		_u.SetSupersededByOutboxID(*v)
	}
	return _u
}

// ClearSupersededByOutboxID clears the value of the "superseded_by_outbox_id" field.
func (_u *OutboxActionUpdateOne) ClearSupersededByOutboxID() *OutboxActionUpdateOne {
	_u.mutation.ClearSupersededByOutboxID()
	return _u
}

// SetCanceledReason sets the "canceled_reason" field.
func (_u *OutboxActionUpdateOne) SetCanceledReason(v string) *OutboxActionUpdateOne {
	_u.mutation.SetCanceledReason(v)
	return _u
}

// SetNillableCanceledReason sets the "canceled_reason" field if the given value is not nil.
func (_u *OutboxActionUpdateOne) SetNillableCanceledReason(v *string) *OutboxActionUpdateOne {
	if v != nil {
		_u.SetCanceledReason(*v)
	}
	return _u
}

// ClearCanceledReason clears the value of the "canceled_reason" field.
func (_u *OutboxActionUpdateOne) ClearCanceledReason() *OutboxActionUpdateOne {
	_u.mutation.ClearCanceledReason()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OutboxActionUpdateOne) SetCreatedAt(v time.Time) *OutboxActionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OutboxActionUpdateOne) SetNillableCreatedAt(v *time.Time) *OutboxActionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OutboxActionUpdateOne) SetUpdatedAt(v time.Time) *OutboxActionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLoop sets the "loop" edge to the Loop entity.
func (_u *OutboxActionUpdateOne) SetLoop(v *Loop) *OutboxActionUpdateOne {
	return _u.SetLoopID(v.ID)
}

// AddAttemptIDs adds the "attempts" edge to the OutboxAttempt entity by IDs.
func (_u *OutboxActionUpdateOne) AddAttemptIDs(ids ...string) *OutboxActionUpdateOne {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the OutboxAttempt entity.
func (_u *OutboxActionUpdateOne) AddAttempts(v ...*OutboxAttempt) *OutboxActionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the OutboxActionMutation object of the builder.
func (_u *OutboxActionUpdateOne) Mutation() *OutboxActionMutation {
	return _u.mutation
}

// ClearLoop clears the "loop" edge to the Loop entity.
func (_u *OutboxActionUpdateOne) ClearLoop() *OutboxActionUpdateOne {
	_u.mutation.ClearLoop()
	return _u
}

// ClearAttempts clears all "attempts" edges to the OutboxAttempt entity.
func (_u *OutboxActionUpdateOne) ClearAttempts() *OutboxActionUpdateOne {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to OutboxAttempt entities by IDs.
func (_u *OutboxActionUpdateOne) RemoveAttemptIDs(ids ...string) *OutboxActionUpdateOne {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to OutboxAttempt entities.
func (_u *OutboxActionUpdateOne) RemoveAttempts(v ...*OutboxAttempt) *OutboxActionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Where appends a list predicates to the OutboxActionUpdate builder.
func (_u *OutboxActionUpdateOne) Where(ps ...predicate.OutboxAction) *OutboxActionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OutboxActionUpdateOne) Select(field string, fields ...string) *OutboxActionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OutboxAction entity.
func (_u *OutboxActionUpdateOne) Save(ctx context.Context) (*OutboxAction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutboxActionUpdateOne) SaveX(ctx context.Context) *OutboxAction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OutboxActionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutboxActionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OutboxActionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := outboxaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutboxActionUpdateOne) check() error {
	if v, ok := _u.mutation.ActionType(); ok {
		if err := outboxaction.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "OutboxAction.action_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := outboxaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OutboxAction.status": %w`, err)}
		}
	}
	if _u.mutation.LoopCleared() && len(_u.mutation.LoopIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OutboxAction.loop"`)
	}
	return nil
}

func (_u *OutboxActionUpdateOne) sqlSave(ctx context.Context) (_node *OutboxAction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outboxaction.Table, outboxaction.Columns, sqlgraph.NewFieldSpec(outboxaction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OutboxAction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, outboxaction.FieldID)
		for _, f := range fields {
			if !outboxaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != outboxaction.FieldID {
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
	if value, ok := _u.mutation.TransitionSeq(); ok {
		_spec.SetField(outboxaction.FieldTransitionSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTransitionSeq(); ok {
		_spec.AddField(outboxaction.FieldTransitionSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(outboxaction.FieldActionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SupersessionGroup(); ok {
		_spec.SetField(outboxaction.FieldSupersessionGroup, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionKey(); ok {
		_spec.SetField(outboxaction.FieldActionKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(outboxaction.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(outboxaction.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(outboxaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(outboxaction.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(outboxaction.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(outboxaction.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(outboxaction.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(outboxaction.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(outboxaction.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(outboxaction.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(outboxaction.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(outboxaction.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(outboxaction.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastErrorClass(); ok {
		_spec.SetField(outboxaction.FieldLastErrorClass, field.TypeString, value)
	}
	if _u.mutation.LastErrorClassCleared() {
		_spec.ClearField(outboxaction.FieldLastErrorClass, field.TypeString)
	}
	if value, ok := _u.mutation.LastErrorCode(); ok {
		_spec.SetField(outboxaction.FieldLastErrorCode, field.TypeString, value)
	}
	if _u.mutation.LastErrorCodeCleared() {
		_spec.ClearField(outboxaction.FieldLastErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.LastErrorMessage(); ok {
		_spec.SetField(outboxaction.FieldLastErrorMessage, field.TypeString, value)
	}
	if _u.mutation.LastErrorMessageCleared() {
		_spec.ClearField(outboxaction.FieldLastErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.SupersededByOutboxID(); ok {
		_spec.SetField(outboxaction.FieldSupersededByOutboxID, field.TypeString, value)
	}
	if _u.mutation.SupersededByOutboxIDCleared() {
		_spec.ClearField(outboxaction.FieldSupersededByOutboxID, field.TypeString)
	}
	if value, ok := _u.mutation.CanceledReason(); ok {
		_spec.SetField(outboxaction.FieldCanceledReason, field.TypeString, value)
	}
	if _u.mutation.CanceledReasonCleared() {
		_spec.ClearField(outboxaction.FieldCanceledReason, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(outboxaction.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(outboxaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LoopCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   outboxaction.LoopTable,
			Columns: []string{outboxaction.LoopColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(loop.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LoopIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   outboxaction.LoopTable,
			Columns: []string{outboxaction.LoopColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(loop.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   outboxaction.AttemptsTable,
			Columns: []string{outboxaction.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outboxattempt.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   outboxaction.AttemptsTable,
			Columns: []string{outboxaction.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outboxattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   outboxaction.AttemptsTable,
			Columns: []string{outboxaction.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outboxattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OutboxAction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outboxaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
