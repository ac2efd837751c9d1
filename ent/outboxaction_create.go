// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/outboxaction"
	"github.com/codeready-toolchain/loopd/ent/outboxattempt"
)

// OutboxActionCreate is the builder for creating a OutboxAction entity.
type OutboxActionCreate struct {
	config
	mutation *OutboxActionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLoopID sets the "loop_id" field.
func (_c *OutboxActionCreate) SetLoopID(v string) *OutboxActionCreate {
	_c.mutation.SetLoopID(v)
	return _c
}

// SetTransitionSeq sets the "transition_seq" field.
func (_c *OutboxActionCreate) SetTransitionSeq(v int) *OutboxActionCreate {
	_c.mutation.SetTransitionSeq(v)
	return _c
}

// SetActionType sets the "action_type" field.
func (_c *OutboxActionCreate) SetActionType(v outboxaction.ActionType) *OutboxActionCreate {
	_c.mutation.SetActionType(v)
	return _c
}

// SetSupersessionGroup sets the "supersession_group" field.
func (_c *OutboxActionCreate) SetSupersessionGroup(v string) *OutboxActionCreate {
	_c.mutation.SetSupersessionGroup(v)
	return _c
}

// SetActionKey sets the "action_key" field.
func (_c *OutboxActionCreate) SetActionKey(v string) *OutboxActionCreate {
	_c.mutation.SetActionKey(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *OutboxActionCreate) SetPayload(v map[string]interface{}) *OutboxActionCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *OutboxActionCreate) SetStatus(v outboxaction.Status) *OutboxActionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *OutboxActionCreate) SetNillableStatus(v *outboxaction.Status) *OutboxActionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *OutboxActionCreate) SetAttemptCount(v int) *OutboxActionCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *OutboxActionCreate) SetNillableAttemptCount(v *int) *OutboxActionCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_c *OutboxActionCreate) SetNextRetryAt(v time.Time) *OutboxActionCreate {
	_c.mutation.SetNextRetryAt(v)
	return _c
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_c *OutboxActionCreate) SetNillableNextRetryAt(v *time.Time) *OutboxActionCreate {
	if v != nil {
		_c.SetNextRetryAt(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *OutboxActionCreate) SetClaimedBy(v string) *OutboxActionCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *OutboxActionCreate) SetNillableClaimedBy(v *string) *OutboxActionCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *OutboxActionCreate) SetClaimedAt(v time.Time) *OutboxActionCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *OutboxActionCreate) SetNillableClaimedAt(v *time.Time) *OutboxActionCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *OutboxActionCreate) SetCompletedAt(v time.Time) *OutboxActionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *OutboxActionCreate) SetNillableCompletedAt(v *time.Time) *OutboxActionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastErrorClass sets the "last_error_class" field.
func (_c *OutboxActionCreate) SetLastErrorClass(v string) *OutboxActionCreate {
	_c.mutation.SetLastErrorClass(v)
	return _c
}

// SetNillableLastErrorClass sets the "last_error_class" field if the given value is not nil.
func (_c *OutboxActionCreate) SetNillableLastErrorClass(v *string) *OutboxActionCreate {
	if v != nil {
		_c.SetLastErrorClass(*v)
	}
	return _c
}

// SetLastErrorCode sets the "last_error_code" field.
func (_c *OutboxActionCreate) SetLastErrorCode(v string) *OutboxActionCreate {
	_c.mutation.SetLastErrorCode(v)
	return _c
}

// SetNillableLastErrorCode sets the "last_error_code" field if the given value is not nil.
func (_c *OutboxActionCreate) SetNillableLastErrorCode(v *string) *OutboxActionCreate {
	if v != nil {
		_c.SetLastErrorCode(*v)
	}
	return _c
}

// SetLastErrorMessage sets the "last_error_message" field.
func (_c *OutboxActionCreate) SetLastErrorMessage(v string) *OutboxActionCreate {
	_c.mutation.SetLastErrorMessage(v)
	return _c
}

// SetNillableLastErrorMessage sets the "last_error_message" field if the given value is not nil.
func (_c *OutboxActionCreate) SetNillableLastErrorMessage(v *string) *OutboxActionCreate {
	if v != nil {
		_c.SetLastErrorMessage(*v)
	}
	return _c
}

// SetSupersededByOutboxID sets the "superseded_by_outbox_id" field.
func (_c *OutboxActionCreate) SetSupersededByOutboxID(v string) *OutboxActionCreate {
	_c.mutation.SetSupersededByOutboxID(v)
	return _c
}

// SetNillableSupersededByOutboxID sets the "superseded_by_outbox_id" field if the given value is not nil.
func (_c *OutboxActionCreate) SetNillableSupersededByOutboxID(v *string) *OutboxActionCreate {
	if v != nil {
		_c.SetSupersededByOutboxID(*v)
	}
	return _c
}

// SetCanceledReason sets the "canceled_reason" field.
func (_c *OutboxActionCreate) SetCanceledReason(v string) *OutboxActionCreate {
	_c.mutation.SetCanceledReason(v)
	return _c
}

// SetNillableCanceledReason sets the "canceled_reason" field if the given value is not nil.
func (_c *OutboxActionCreate) SetNillableCanceledReason(v *string) *OutboxActionCreate {
	if v != nil {
		_c.SetCanceledReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OutboxActionCreate) SetCreatedAt(v time.Time) *OutboxActionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OutboxActionCreate) SetNillableCreatedAt(v *time.Time) *OutboxActionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OutboxActionCreate) SetUpdatedAt(v time.Time) *OutboxActionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OutboxActionCreate) SetNillableUpdatedAt(v *time.Time) *OutboxActionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OutboxActionCreate) SetID(v string) *OutboxActionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetLoop sets the "loop" edge to the Loop entity.
func (_c *OutboxActionCreate) SetLoop(v *Loop) *OutboxActionCreate {
	return _c.SetLoopID(v.ID)
}

// AddAttemptIDs adds the "attempts" edge to the OutboxAttempt entity by IDs.
func (_c *OutboxActionCreate) AddAttemptIDs(ids ...string) *OutboxActionCreate {
	_c.mutation.AddAttemptIDs(ids...)
	return _c
}

// AddAttempts adds the "attempts" edges to the OutboxAttempt entity.
func (_c *OutboxActionCreate) AddAttempts(v ...*OutboxAttempt) *OutboxActionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttemptIDs(ids...)
}

// Mutation returns the OutboxActionMutation object of the builder.
func (_c *OutboxActionCreate) Mutation() *OutboxActionMutation {
	return _c.mutation
}

// Save creates the OutboxAction in the database.
func (_c *OutboxActionCreate) Save(ctx context.Context) (*OutboxAction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OutboxActionCreate) SaveX(ctx context.Context) *OutboxAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutboxActionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutboxActionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OutboxActionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := outboxaction.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := outboxaction.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := outboxaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := outboxaction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OutboxActionCreate) check() error {
	if _, ok := _c.mutation.LoopID(); !ok {
		return &ValidationError{Name: "loop_id", err: errors.New(`ent: missing required field "OutboxAction.loop_id"`)}
	}
	if _, ok := _c.mutation.TransitionSeq(); !ok {
		return &ValidationError{Name: "transition_seq", err: errors.New(`ent: missing required field "OutboxAction.transition_seq"`)}
	}
	if _, ok := _c.mutation.ActionType(); !ok {
		return &ValidationError{Name: "action_type", err: errors.New(`ent: missing required field "OutboxAction.action_type"`)}
	}
	if v, ok := _c.mutation.ActionType(); ok {
		if err := outboxaction.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "OutboxAction.action_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SupersessionGroup(); !ok {
		return &ValidationError{Name: "supersession_group", err: errors.New(`ent: missing required field "OutboxAction.supersession_group"`)}
	}
	if _, ok := _c.mutation.ActionKey(); !ok {
		return &ValidationError{Name: "action_key", err: errors.New(`ent: missing required field "OutboxAction.action_key"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "OutboxAction.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := outboxaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OutboxAction.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "OutboxAction.attempt_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OutboxAction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "OutboxAction.updated_at"`)}
	}
	if len(_c.mutation.LoopIDs()) == 0 {
		return &ValidationError{Name: "loop", err: errors.New(`ent: missing required edge "OutboxAction.loop"`)}
	}
	return nil
}

func (_c *OutboxActionCreate) sqlSave(ctx context.Context) (*OutboxAction, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected OutboxAction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OutboxActionCreate) createSpec() (*OutboxAction, *sqlgraph.CreateSpec) {
	var (
		_node = &OutboxAction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(outboxaction.Table, sqlgraph.NewFieldSpec(outboxaction.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TransitionSeq(); ok {
		_spec.SetField(outboxaction.FieldTransitionSeq, field.TypeInt, value)
		_node.TransitionSeq = value
	}
	if value, ok := _c.mutation.ActionType(); ok {
		_spec.SetField(outboxaction.FieldActionType, field.TypeEnum, value)
		_node.ActionType = value
	}
	if value, ok := _c.mutation.SupersessionGroup(); ok {
		_spec.SetField(outboxaction.FieldSupersessionGroup, field.TypeString, value)
		_node.SupersessionGroup = value
	}
	if value, ok := _c.mutation.ActionKey(); ok {
		_spec.SetField(outboxaction.FieldActionKey, field.TypeString, value)
		_node.ActionKey = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(outboxaction.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(outboxaction.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(outboxaction.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.NextRetryAt(); ok {
		_spec.SetField(outboxaction.FieldNextRetryAt, field.TypeTime, value)
		_node.NextRetryAt = &value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(outboxaction.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(outboxaction.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(outboxaction.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastErrorClass(); ok {
		_spec.SetField(outboxaction.FieldLastErrorClass, field.TypeString, value)
		_node.LastErrorClass = &value
	}
	if value, ok := _c.mutation.LastErrorCode(); ok {
		_spec.SetField(outboxaction.FieldLastErrorCode, field.TypeString, value)
		_node.LastErrorCode = &value
	}
	if value, ok := _c.mutation.LastErrorMessage(); ok {
		_spec.SetField(outboxaction.FieldLastErrorMessage, field.TypeString, value)
		_node.LastErrorMessage = &value
	}
	if value, ok := _c.mutation.SupersededByOutboxID(); ok {
		_spec.SetField(outboxaction.FieldSupersededByOutboxID, field.TypeString, value)
		_node.SupersededByOutboxID = &value
	}
	if value, ok := _c.mutation.CanceledReason(); ok {
		_spec.SetField(outboxaction.FieldCanceledReason, field.TypeString, value)
		_node.CanceledReason = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(outboxaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(outboxaction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LoopIDs(); len(nodes) > 0 {
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
		_node.LoopID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OutboxAction.Create().
//		SetLoopID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OutboxActionUpsert) {
//			SetLoopID(v+v).
//		}).
//		Exec(ctx)
func (_c *OutboxActionCreate) OnConflict(opts ...sql.ConflictOption) *OutboxActionUpsertOne {
	_c.conflict = opts
	return &OutboxActionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OutboxAction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OutboxActionCreate) OnConflictColumns(columns ...string) *OutboxActionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OutboxActionUpsertOne{
		create: _c,
	}
}

type (
	// OutboxActionUpsertOne is the builder for "upsert"-ing
	//  one OutboxAction node.
	OutboxActionUpsertOne struct {
		create *OutboxActionCreate
	}

	// OutboxActionUpsert is the "OnConflict" setter.
	OutboxActionUpsert struct {
		*sql.UpdateSet
	}
)

// SetLoopID sets the "loop_id" field.
func (u *OutboxActionUpsert) SetLoopID(v string) *OutboxActionUpsert {
	u.Set(outboxaction.FieldLoopID, v)
	return u
}

// UpdateLoopID sets the "loop_id" field to the value that was provided on create.
func (u *OutboxActionUpsert) UpdateLoopID() *OutboxActionUpsert {
	u.SetExcluded(outboxaction.FieldLoopID)
	return u
}

// SetTransitionSeq sets the "transition_seq" field.
func (u *OutboxActionUpsert) SetTransitionSeq(v int) *OutboxActionUpsert {
	u.Set(outboxaction.FieldTransitionSeq, v)
	return u
}

// UpdateTransitionSeq sets the "transition_seq" field to the value that was provided on create.
func (u *OutboxActionUpsert) UpdateTransitionSeq() *OutboxActionUpsert {
	u.SetExcluded(outboxaction.FieldTransitionSeq)
	return u
}

// AddTransitionSeq adds v to the "transition_seq" field.
func (u *OutboxActionUpsert) AddTransitionSeq(v int) *OutboxActionUpsert {
	u.Add(outboxaction.FieldTransitionSeq, v)
	return u
}

// SetActionType sets the "action_type" field.
func (u *OutboxActionUpsert) SetActionType(v outboxaction.ActionType) *OutboxActionUpsert {
	u.Set(outboxaction.FieldActionType, v)
	return u
}

// UpdateActionType sets the "action_type" field to the value that was provided on create.
func (u *OutboxActionUpsert) UpdateActionType() *OutboxActionUpsert {
	u.SetExcluded(outboxaction.FieldActionType)
	return u
}

// SetSupersessionGroup sets the "supersession_group" field.
func (u *OutboxActionUpsert) SetSupersessionGroup(v string) *OutboxActionUpsert {
	u.Set(outboxaction.FieldSupersessionGroup, v)
	return u
}

// UpdateSupersessionGroup sets the "supersession_group" field to the value that was provided on create.
func (u *OutboxActionUpsert) UpdateSupersessionGroup() *OutboxActionUpsert {
	u.SetExcluded(outboxaction.FieldSupersessionGroup)
	return u
}

// SetActionKey sets the "action_key" field.
func (u *OutboxActionUpsert) SetActionKey(v string) *OutboxActionUpsert {
	u.Set(outboxaction.FieldActionKey, v)
	return u
}

// UpdateActionKey sets the "action_key" field to the value that was provided on create.
func (u *OutboxActionUpsert) UpdateActionKey() *OutboxActionUpsert {
	u.SetExcluded(outboxaction.FieldActionKey)
	return u
}

// SetPayload sets the "payload" field.
func (u *OutboxActionUpsert) SetPayload(v map[string]interface{}) *OutboxActionUpsert {
	u.Set(outboxaction.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *OutboxActionUpsert) UpdatePayload() *OutboxActionUpsert {
	u.SetExcluded(outboxaction.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *OutboxActionUpsert) ClearPayload() *OutboxActionUpsert {
	u.SetNull(outboxaction.FieldPayload)
	return u
}

// SetStatus sets the "status" field.
func (u *OutboxActionUpsert) SetStatus(v outboxaction.Status) *OutboxActionUpsert {
	u.Set(outboxaction.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OutboxActionUpsert) UpdateStatus() *OutboxActionUpsert {
	u.SetExcluded(outboxaction.FieldStatus)
	return u
}

// SetAttemptCount sets the "attempt_count" field.
func (u *OutboxActionUpsert) SetAttemptCount(v int) *OutboxActionUpsert {
	u.Set(outboxaction.FieldAttemptCount, v)
	return u
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *OutboxActionUpsert) UpdateAttemptCount() *OutboxActionUpsert {
	u.SetExcluded(outboxaction.FieldAttemptCount)
	return u
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *OutboxActionUpsert) AddAttemptCount(v int) *OutboxActionUpsert {
	u.Add(outboxaction.FieldAttemptCount, v)
	return u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (u *OutboxActionUpsert) SetNextRetryAt(v time.Time) *OutboxActionUpsert {
	u.Set(outboxaction.FieldNextRetryAt, v)
	return u
}

// UpdateNextRetryAt sets the "next_retry_at" field to the value that was provided on create.
func (u *OutboxActionUpsert) UpdateNextRetryAt() *OutboxActionUpsert {
	u.SetExcluded(outboxaction.FieldNextRetryAt)
	return u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (u *OutboxActionUpsert) ClearNextRetryAt() *OutboxActionUpsert {
	u.SetNull(outboxaction.FieldNextRetryAt)
	return u
}

// SetClaimedBy sets the "claimed_by" field.
func (u *OutboxActionUpsert) SetClaimedBy(v string) *OutboxActionUpsert {
	u.Set(outboxaction.FieldClaimedBy, v)
	return u
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *OutboxActionUpsert) UpdateClaimedBy() *OutboxActionUpsert {
	u.SetExcluded(outboxaction.FieldClaimedBy)
	return u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *OutboxActionUpsert) ClearClaimedBy() *OutboxActionUpsert {
	u.SetNull(outboxaction.FieldClaimedBy)
	return u
}

// SetClaimedAt sets the "claimed_at" field.
func (u *OutboxActionUpsert) SetClaimedAt(v time.Time) *OutboxActionUpsert {
	u.Set(outboxaction.FieldClaimedAt, v)
	return u
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *OutboxActionUpsert) UpdateClaimedAt() *OutboxActionUpsert {
	u.SetExcluded(outboxaction.FieldClaimedAt)
	return u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *OutboxActionUpsert) ClearClaimedAt() *OutboxActionUpsert {
	u.SetNull(outboxaction.FieldClaimedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *OutboxActionUpsert) SetCompletedAt(v time.Time) *OutboxActionUpsert {
	u.Set(outboxaction.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *OutboxActionUpsert) UpdateCompletedAt() *OutboxActionUpsert {
	u.SetExcluded(outboxaction.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *OutboxActionUpsert) ClearCompletedAt() *OutboxActionUpsert {
	u.SetNull(outboxaction.FieldCompletedAt)
	return u
}

// SetLastErrorClass sets the "last_error_class" field.
func (u *OutboxActionUpsert) SetLastErrorClass(v string) *OutboxActionUpsert {
	u.Set(outboxaction.FieldLastErrorClass, v)
	return u
}

// UpdateLastErrorClass sets the "last_error_class" field to the value that was provided on create.
func (u *OutboxActionUpsert) UpdateLastErrorClass() *OutboxActionUpsert {
	u.SetExcluded(outboxaction.FieldLastErrorClass)
	return u
}

// ClearLastErrorClass clears the value of the "last_error_class" field.
func (u *OutboxActionUpsert) ClearLastErrorClass() *OutboxActionUpsert {
	u.SetNull(outboxaction.FieldLastErrorClass)
	return u
}

// SetLastErrorCode sets the "last_error_code" field.
func (u *OutboxActionUpsert) SetLastErrorCode(v string) *OutboxActionUpsert {
	u.Set(outboxaction.FieldLastErrorCode, v)
	return u
}

// UpdateLastErrorCode sets the "last_error_code" field to the value that was provided on create.
func (u *OutboxActionUpsert) UpdateLastErrorCode() *OutboxActionUpsert {
	u.SetExcluded(outboxaction.FieldLastErrorCode)
	return u
}

// ClearLastErrorCode clears the value of the "last_error_code" field.
func (u *OutboxActionUpsert) ClearLastErrorCode() *OutboxActionUpsert {
	u.SetNull(outboxaction.FieldLastErrorCode)
	return u
}

// SetLastErrorMessage sets the "last_error_message" field.
func (u *OutboxActionUpsert) SetLastErrorMessage(v string) *OutboxActionUpsert {
	u.Set(outboxaction.FieldLastErrorMessage, v)
	return u
}

// UpdateLastErrorMessage sets the "last_error_message" field to the value that was provided on create.
func (u *OutboxActionUpsert) UpdateLastErrorMessage() *OutboxActionUpsert {
	u.SetExcluded(outboxaction.FieldLastErrorMessage)
	return u
}

// ClearLastErrorMessage clears the value of the "last_error_message" field.
func (u *OutboxActionUpsert) ClearLastErrorMessage() *OutboxActionUpsert {
	u.SetNull(outboxaction.FieldLastErrorMessage)
	return u
}

// SetSupersededByOutboxID sets the "superseded_by_outbox_id" field.
func (u *OutboxActionUpsert) SetSupersededByOutboxID(v string) *OutboxActionUpsert {
	u.Set(outboxaction.FieldSupersededByOutboxID, v)
	return u
}

// UpdateSupersededByOutboxID sets the "superseded_by_outbox_id" field to the value that was provided on create.
func (u *OutboxActionUpsert) UpdateSupersededByOutboxID() *OutboxActionUpsert {
	u.SetExcluded(outboxaction.FieldSupersededByOutboxID)
	return u
}

// ClearSupersededByOutboxID clears the value of the "superseded_by_outbox_id" field.
func (u *OutboxActionUpsert) ClearSupersededByOutboxID() *OutboxActionUpsert {
	u.SetNull(outboxaction.FieldSupersededByOutboxID)
	return u
}

// SetCanceledReason sets the "canceled_reason" field.
func (u *OutboxActionUpsert) SetCanceledReason(v string) *OutboxActionUpsert {
	u.Set(outboxaction.FieldCanceledReason, v)
	return u
}

// UpdateCanceledReason sets the "canceled_reason" field to the value that was provided on create.
func (u *OutboxActionUpsert) UpdateCanceledReason() *OutboxActionUpsert {
	u.SetExcluded(outboxaction.FieldCanceledReason)
	return u
}

// ClearCanceledReason clears the value of the "canceled_reason" field.
func (u *OutboxActionUpsert) ClearCanceledReason() *OutboxActionUpsert {
	u.SetNull(outboxaction.FieldCanceledReason)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *OutboxActionUpsert) SetCreatedAt(v time.Time) *OutboxActionUpsert {
	u.Set(outboxaction.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *OutboxActionUpsert) UpdateCreatedAt() *OutboxActionUpsert {
	u.SetExcluded(outboxaction.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OutboxActionUpsert) SetUpdatedAt(v time.Time) *OutboxActionUpsert {
	u.Set(outboxaction.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OutboxActionUpsert) UpdateUpdatedAt() *OutboxActionUpsert {
	u.SetExcluded(outboxaction.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.OutboxAction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(outboxaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OutboxActionUpsertOne) UpdateNewValues() *OutboxActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(outboxaction.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OutboxAction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OutboxActionUpsertOne) Ignore() *OutboxActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OutboxActionUpsertOne) DoNothing() *OutboxActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OutboxActionCreate.OnConflict
// documentation for more info.
func (u *OutboxActionUpsertOne) Update(set func(*OutboxActionUpsert)) *OutboxActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OutboxActionUpsert{UpdateSet: update})
	}))
	return u
}

// SetLoopID sets the "loop_id" field.
func (u *OutboxActionUpsertOne) SetLoopID(v string) *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetLoopID(v)
	})
}

// UpdateLoopID sets the "loop_id" field to the value that was provided on create.
func (u *OutboxActionUpsertOne) UpdateLoopID() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateLoopID()
	})
}

// SetTransitionSeq sets the "transition_seq" field.
func (u *OutboxActionUpsertOne) SetTransitionSeq(v int) *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetTransitionSeq(v)
	})
}

// AddTransitionSeq adds v to the "transition_seq" field.
func (u *OutboxActionUpsertOne) AddTransitionSeq(v int) *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.AddTransitionSeq(v)
	})
}

// UpdateTransitionSeq sets the "transition_seq" field to the value that was provided on create.
func (u *OutboxActionUpsertOne) UpdateTransitionSeq() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateTransitionSeq()
	})
}

// SetActionType sets the "action_type" field.
func (u *OutboxActionUpsertOne) SetActionType(v outboxaction.ActionType) *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetActionType(v)
	})
}

// UpdateActionType sets the "action_type" field to the value that was provided on create.
func (u *OutboxActionUpsertOne) UpdateActionType() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateActionType()
	})
}

// SetSupersessionGroup sets the "supersession_group" field.
func (u *OutboxActionUpsertOne) SetSupersessionGroup(v string) *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetSupersessionGroup(v)
	})
}

// UpdateSupersessionGroup sets the "supersession_group" field to the value that was provided on create.
func (u *OutboxActionUpsertOne) UpdateSupersessionGroup() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateSupersessionGroup()
	})
}

// SetActionKey sets the "action_key" field.
func (u *OutboxActionUpsertOne) SetActionKey(v string) *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetActionKey(v)
	})
}

// UpdateActionKey sets the "action_key" field to the value that was provided on create.
func (u *OutboxActionUpsertOne) UpdateActionKey() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateActionKey()
	})
}

// SetPayload sets the "payload" field.
func (u *OutboxActionUpsertOne) SetPayload(v map[string]interface{}) *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *OutboxActionUpsertOne) UpdatePayload() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *OutboxActionUpsertOne) ClearPayload() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.ClearPayload()
	})
}

// SetStatus sets the "status" field.
func (u *OutboxActionUpsertOne) SetStatus(v outboxaction.Status) *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OutboxActionUpsertOne) UpdateStatus() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateStatus()
	})
}

// SetAttemptCount sets the "attempt_count" field.
func (u *OutboxActionUpsertOne) SetAttemptCount(v int) *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetAttemptCount(v)
	})
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *OutboxActionUpsertOne) AddAttemptCount(v int) *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.AddAttemptCount(v)
	})
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *OutboxActionUpsertOne) UpdateAttemptCount() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateAttemptCount()
	})
}

// SetNextRetryAt sets the "next_retry_at" field.
func (u *OutboxActionUpsertOne) SetNextRetryAt(v time.Time) *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetNextRetryAt(v)
	})
}

// UpdateNextRetryAt sets the "next_retry_at" field to the value that was provided on create.
func (u *OutboxActionUpsertOne) UpdateNextRetryAt() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateNextRetryAt()
	})
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (u *OutboxActionUpsertOne) ClearNextRetryAt() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.ClearNextRetryAt()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *OutboxActionUpsertOne) SetClaimedBy(v string) *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *OutboxActionUpsertOne) UpdateClaimedBy() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *OutboxActionUpsertOne) ClearClaimedBy() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.ClearClaimedBy()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *OutboxActionUpsertOne) SetClaimedAt(v time.Time) *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *OutboxActionUpsertOne) UpdateClaimedAt() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *OutboxActionUpsertOne) ClearClaimedAt() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.ClearClaimedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *OutboxActionUpsertOne) SetCompletedAt(v time.Time) *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *OutboxActionUpsertOne) UpdateCompletedAt() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *OutboxActionUpsertOne) ClearCompletedAt() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLastErrorClass sets the "last_error_class" field.
func (u *OutboxActionUpsertOne) SetLastErrorClass(v string) *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetLastErrorClass(v)
	})
}

// UpdateLastErrorClass sets the "last_error_class" field to the value that was provided on create.
func (u *OutboxActionUpsertOne) UpdateLastErrorClass() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateLastErrorClass()
	})
}

// ClearLastErrorClass clears the value of the "last_error_class" field.
func (u *OutboxActionUpsertOne) ClearLastErrorClass() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.ClearLastErrorClass()
	})
}

// SetLastErrorCode sets the "last_error_code" field.
func (u *OutboxActionUpsertOne) SetLastErrorCode(v string) *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetLastErrorCode(v)
	})
}

// UpdateLastErrorCode sets the "last_error_code" field to the value that was provided on create.
func (u *OutboxActionUpsertOne) UpdateLastErrorCode() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateLastErrorCode()
	})
}

// ClearLastErrorCode clears the value of the "last_error_code" field.
func (u *OutboxActionUpsertOne) ClearLastErrorCode() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.ClearLastErrorCode()
	})
}

// SetLastErrorMessage sets the "last_error_message" field.
func (u *OutboxActionUpsertOne) SetLastErrorMessage(v string) *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetLastErrorMessage(v)
	})
}

// UpdateLastErrorMessage sets the "last_error_message" field to the value that was provided on create.
func (u *OutboxActionUpsertOne) UpdateLastErrorMessage() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateLastErrorMessage()
	})
}

// ClearLastErrorMessage clears the value of the "last_error_message" field.
func (u *OutboxActionUpsertOne) ClearLastErrorMessage() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.ClearLastErrorMessage()
	})
}

// SetSupersededByOutboxID sets the "superseded_by_outbox_id" field.
func (u *OutboxActionUpsertOne) SetSupersededByOutboxID(v string) *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetSupersededByOutboxID(v)
	})
}

// UpdateSupersededByOutboxID sets the "superseded_by_outbox_id" field to the value that was provided on create.
func (u *OutboxActionUpsertOne) UpdateSupersededByOutboxID() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateSupersededByOutboxID()
	})
}

// ClearSupersededByOutboxID clears the value of the "superseded_by_outbox_id" field.
func (u *OutboxActionUpsertOne) ClearSupersededByOutboxID() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.ClearSupersededByOutboxID()
	})
}

// SetCanceledReason sets the "canceled_reason" field.
func (u *OutboxActionUpsertOne) SetCanceledReason(v string) *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetCanceledReason(v)
	})
}

// UpdateCanceledReason sets the "canceled_reason" field to the value that was provided on create.
func (u *OutboxActionUpsertOne) UpdateCanceledReason() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateCanceledReason()
	})
}

// ClearCanceledReason clears the value of the "canceled_reason" field.
func (u *OutboxActionUpsertOne) ClearCanceledReason() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.ClearCanceledReason()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *OutboxActionUpsertOne) SetCreatedAt(v time.Time) *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *OutboxActionUpsertOne) UpdateCreatedAt() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OutboxActionUpsertOne) SetUpdatedAt(v time.Time) *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OutboxActionUpsertOne) UpdateUpdatedAt() *OutboxActionUpsertOne {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *OutboxActionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OutboxActionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OutboxActionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OutboxActionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: OutboxActionUpsertOne.ID is not supported by MySQL driver. Use OutboxActionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OutboxActionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OutboxActionCreateBulk is the builder for creating many OutboxAction entities in bulk.
type OutboxActionCreateBulk struct {
	config
	err      error
	builders []*OutboxActionCreate
	conflict []sql.ConflictOption
}

// Save creates the OutboxAction entities in the database.
func (_c *OutboxActionCreateBulk) Save(ctx context.Context) ([]*OutboxAction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OutboxAction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OutboxActionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OutboxActionCreateBulk) SaveX(ctx context.Context) []*OutboxAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutboxActionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutboxActionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OutboxAction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OutboxActionUpsert) {
//			SetLoopID(v+v).
//		}).
//		Exec(ctx)
func (_c *OutboxActionCreateBulk) OnConflict(opts ...sql.ConflictOption) *OutboxActionUpsertBulk {
	_c.conflict = opts
	return &OutboxActionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OutboxAction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OutboxActionCreateBulk) OnConflictColumns(columns ...string) *OutboxActionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OutboxActionUpsertBulk{
		create: _c,
	}
}

// OutboxActionUpsertBulk is the builder for "upsert"-ing
// a bulk of OutboxAction nodes.
type OutboxActionUpsertBulk struct {
	create *OutboxActionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OutboxAction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(outboxaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OutboxActionUpsertBulk) UpdateNewValues() *OutboxActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(outboxaction.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OutboxAction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OutboxActionUpsertBulk) Ignore() *OutboxActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OutboxActionUpsertBulk) DoNothing() *OutboxActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OutboxActionCreateBulk.OnConflict
// documentation for more info.
func (u *OutboxActionUpsertBulk) Update(set func(*OutboxActionUpsert)) *OutboxActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OutboxActionUpsert{UpdateSet: update})
	}))
	return u
}

// SetLoopID sets the "loop_id" field.
func (u *OutboxActionUpsertBulk) SetLoopID(v string) *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetLoopID(v)
	})
}

// UpdateLoopID sets the "loop_id" field to the value that was provided on create.
func (u *OutboxActionUpsertBulk) UpdateLoopID() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateLoopID()
	})
}

// SetTransitionSeq sets the "transition_seq" field.
func (u *OutboxActionUpsertBulk) SetTransitionSeq(v int) *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetTransitionSeq(v)
	})
}

// AddTransitionSeq adds v to the "transition_seq" field.
func (u *OutboxActionUpsertBulk) AddTransitionSeq(v int) *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.AddTransitionSeq(v)
	})
}

// UpdateTransitionSeq sets the "transition_seq" field to the value that was provided on create.
func (u *OutboxActionUpsertBulk) UpdateTransitionSeq() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateTransitionSeq()
	})
}

// SetActionType sets the "action_type" field.
func (u *OutboxActionUpsertBulk) SetActionType(v outboxaction.ActionType) *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetActionType(v)
	})
}

// UpdateActionType sets the "action_type" field to the value that was provided on create.
func (u *OutboxActionUpsertBulk) UpdateActionType() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateActionType()
	})
}

// SetSupersessionGroup sets the "supersession_group" field.
func (u *OutboxActionUpsertBulk) SetSupersessionGroup(v string) *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetSupersessionGroup(v)
	})
}

// UpdateSupersessionGroup sets the "supersession_group" field to the value that was provided on create.
func (u *OutboxActionUpsertBulk) UpdateSupersessionGroup() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateSupersessionGroup()
	})
}

// SetActionKey sets the "action_key" field.
func (u *OutboxActionUpsertBulk) SetActionKey(v string) *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetActionKey(v)
	})
}

// UpdateActionKey sets the "action_key" field to the value that was provided on create.
func (u *OutboxActionUpsertBulk) UpdateActionKey() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateActionKey()
	})
}

// SetPayload sets the "payload" field.
func (u *OutboxActionUpsertBulk) SetPayload(v map[string]interface{}) *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *OutboxActionUpsertBulk) UpdatePayload() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *OutboxActionUpsertBulk) ClearPayload() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.ClearPayload()
	})
}

// SetStatus sets the "status" field.
func (u *OutboxActionUpsertBulk) SetStatus(v outboxaction.Status) *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OutboxActionUpsertBulk) UpdateStatus() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateStatus()
	})
}

// SetAttemptCount sets the "attempt_count" field.
func (u *OutboxActionUpsertBulk) SetAttemptCount(v int) *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetAttemptCount(v)
	})
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *OutboxActionUpsertBulk) AddAttemptCount(v int) *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.AddAttemptCount(v)
	})
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *OutboxActionUpsertBulk) UpdateAttemptCount() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateAttemptCount()
	})
}

// SetNextRetryAt sets the "next_retry_at" field.
func (u *OutboxActionUpsertBulk) SetNextRetryAt(v time.Time) *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetNextRetryAt(v)
	})
}

// UpdateNextRetryAt sets the "next_retry_at" field to the value that was provided on create.
func (u *OutboxActionUpsertBulk) UpdateNextRetryAt() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateNextRetryAt()
	})
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (u *OutboxActionUpsertBulk) ClearNextRetryAt() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.ClearNextRetryAt()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *OutboxActionUpsertBulk) SetClaimedBy(v string) *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *OutboxActionUpsertBulk) UpdateClaimedBy() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *OutboxActionUpsertBulk) ClearClaimedBy() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.ClearClaimedBy()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *OutboxActionUpsertBulk) SetClaimedAt(v time.Time) *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *OutboxActionUpsertBulk) UpdateClaimedAt() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *OutboxActionUpsertBulk) ClearClaimedAt() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.ClearClaimedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *OutboxActionUpsertBulk) SetCompletedAt(v time.Time) *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *OutboxActionUpsertBulk) UpdateCompletedAt() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *OutboxActionUpsertBulk) ClearCompletedAt() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLastErrorClass sets the "last_error_class" field.
func (u *OutboxActionUpsertBulk) SetLastErrorClass(v string) *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetLastErrorClass(v)
	})
}

// UpdateLastErrorClass sets the "last_error_class" field to the value that was provided on create.
func (u *OutboxActionUpsertBulk) UpdateLastErrorClass() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateLastErrorClass()
	})
}

// ClearLastErrorClass clears the value of the "last_error_class" field.
func (u *OutboxActionUpsertBulk) ClearLastErrorClass() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.ClearLastErrorClass()
	})
}

// SetLastErrorCode sets the "last_error_code" field.
func (u *OutboxActionUpsertBulk) SetLastErrorCode(v string) *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetLastErrorCode(v)
	})
}

// UpdateLastErrorCode sets the "last_error_code" field to the value that was provided on create.
func (u *OutboxActionUpsertBulk) UpdateLastErrorCode() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateLastErrorCode()
	})
}

// ClearLastErrorCode clears the value of the "last_error_code" field.
func (u *OutboxActionUpsertBulk) ClearLastErrorCode() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.ClearLastErrorCode()
	})
}

// SetLastErrorMessage sets the "last_error_message" field.
func (u *OutboxActionUpsertBulk) SetLastErrorMessage(v string) *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetLastErrorMessage(v)
	})
}

// UpdateLastErrorMessage sets the "last_error_message" field to the value that was provided on create.
func (u *OutboxActionUpsertBulk) UpdateLastErrorMessage() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateLastErrorMessage()
	})
}

// ClearLastErrorMessage clears the value of the "last_error_message" field.
func (u *OutboxActionUpsertBulk) ClearLastErrorMessage() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.ClearLastErrorMessage()
	})
}

// SetSupersededByOutboxID sets the "superseded_by_outbox_id" field.
func (u *OutboxActionUpsertBulk) SetSupersededByOutboxID(v string) *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetSupersededByOutboxID(v)
	})
}

// UpdateSupersededByOutboxID sets the "superseded_by_outbox_id" field to the value that was provided on create.
func (u *OutboxActionUpsertBulk) UpdateSupersededByOutboxID() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateSupersededByOutboxID()
	})
}

// ClearSupersededByOutboxID clears the value of the "superseded_by_outbox_id" field.
func (u *OutboxActionUpsertBulk) ClearSupersededByOutboxID() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.ClearSupersededByOutboxID()
	})
}

// SetCanceledReason sets the "canceled_reason" field.
func (u *OutboxActionUpsertBulk) SetCanceledReason(v string) *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetCanceledReason(v)
	})
}

// UpdateCanceledReason sets the "canceled_reason" field to the value that was provided on create.
func (u *OutboxActionUpsertBulk) UpdateCanceledReason() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateCanceledReason()
	})
}

// ClearCanceledReason clears the value of the "canceled_reason" field.
func (u *OutboxActionUpsertBulk) ClearCanceledReason() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.ClearCanceledReason()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *OutboxActionUpsertBulk) SetCreatedAt(v time.Time) *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *OutboxActionUpsertBulk) UpdateCreatedAt() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OutboxActionUpsertBulk) SetUpdatedAt(v time.Time) *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OutboxActionUpsertBulk) UpdateUpdatedAt() *OutboxActionUpsertBulk {
	return u.Update(func(s *OutboxActionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *OutboxActionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OutboxActionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OutboxActionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OutboxActionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
