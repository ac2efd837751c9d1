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
	"github.com/codeready-toolchain/loopd/ent/predicate"
	"github.com/codeready-toolchain/loopd/ent/webhookdelivery"
)

// WebhookDeliveryUpdate is the builder for updating WebhookDelivery entities.
type WebhookDeliveryUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookDeliveryMutation
}

// Where appends a list predicates to the WebhookDeliveryUpdate builder.
func (_u *WebhookDeliveryUpdate) Where(ps ...predicate.WebhookDelivery) *WebhookDeliveryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *WebhookDeliveryUpdate) SetEventType(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableEventType(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetClaimantToken sets the "claimant_token" field.
func (_u *WebhookDeliveryUpdate) SetClaimantToken(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetClaimantToken(v)
	return _u
}

// SetNillableClaimantToken sets the "claimant_token" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableClaimantToken(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetClaimantToken(*v)
	}
	return _u
}

// SetClaimExpiresAt sets the "claim_expires_at" field.
func (_u *WebhookDeliveryUpdate) SetClaimExpiresAt(v time.Time) *WebhookDeliveryUpdate {
	_u.mutation.SetClaimExpiresAt(v)
	return _u
}

// SetNillableClaimExpiresAt sets the "claim_expires_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableClaimExpiresAt(v *time.Time) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetClaimExpiresAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WebhookDeliveryUpdate) SetCompletedAt(v time.Time) *WebhookDeliveryUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableCompletedAt(v *time.Time) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WebhookDeliveryUpdate) ClearCompletedAt() *WebhookDeliveryUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WebhookDeliveryUpdate) SetCreatedAt(v time.Time) *WebhookDeliveryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableCreatedAt(v *time.Time) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WebhookDeliveryUpdate) SetUpdatedAt(v time.Time) *WebhookDeliveryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WebhookDeliveryMutation object of the builder.
func (_u *WebhookDeliveryUpdate) Mutation() *WebhookDeliveryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookDeliveryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookDeliveryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookDeliveryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookDeliveryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WebhookDeliveryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := webhookdelivery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *WebhookDeliveryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(webhookdelivery.Table, webhookdelivery.Columns, sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(webhookdelivery.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimantToken(); ok {
		_spec.SetField(webhookdelivery.FieldClaimantToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimExpiresAt(); ok {
		_spec.SetField(webhookdelivery.FieldClaimExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(webhookdelivery.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(webhookdelivery.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookdelivery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookDeliveryUpdateOne is the builder for updating a single WebhookDelivery entity.
type WebhookDeliveryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookDeliveryMutation
}

// SetEventType sets the "event_type" field.
func (_u *WebhookDeliveryUpdateOne) SetEventType(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableEventType(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetClaimantToken sets the "claimant_token" field.
func (_u *WebhookDeliveryUpdateOne) SetClaimantToken(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetClaimantToken(v)
	return _u
}

// SetNillableClaimantToken sets the "claimant_token" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableClaimantToken(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetClaimantToken(*v)
	}
	return _u
}

// SetClaimExpiresAt sets the "claim_expires_at" field.
func (_u *WebhookDeliveryUpdateOne) SetClaimExpiresAt(v time.Time) *WebhookDeliveryUpdateOne {
	_u.mutation.SetClaimExpiresAt(v)
	return _u
}

// SetNillableClaimExpiresAt sets the "claim_expires_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableClaimExpiresAt(v *time.Time) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetClaimExpiresAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WebhookDeliveryUpdateOne) SetCompletedAt(v time.Time) *WebhookDeliveryUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableCompletedAt(v *time.Time) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WebhookDeliveryUpdateOne) ClearCompletedAt() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WebhookDeliveryUpdateOne) SetCreatedAt(v time.Time) *WebhookDeliveryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableCreatedAt(v *time.Time) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WebhookDeliveryUpdateOne) SetUpdatedAt(v time.Time) *WebhookDeliveryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WebhookDeliveryMutation object of the builder.
func (_u *WebhookDeliveryUpdateOne) Mutation() *WebhookDeliveryMutation {
	return _u.mutation
}

// Where appends a list predicates to the WebhookDeliveryUpdate builder.
func (_u *WebhookDeliveryUpdateOne) Where(ps ...predicate.WebhookDelivery) *WebhookDeliveryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookDeliveryUpdateOne) Select(field string, fields ...string) *WebhookDeliveryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookDelivery entity.
func (_u *WebhookDeliveryUpdateOne) Save(ctx context.Context) (*WebhookDelivery, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookDeliveryUpdateOne) SaveX(ctx context.Context) *WebhookDelivery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookDeliveryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookDeliveryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WebhookDeliveryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := webhookdelivery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *WebhookDeliveryUpdateOne) sqlSave(ctx context.Context) (_node *WebhookDelivery, err error) {
	_spec := sqlgraph.NewUpdateSpec(webhookdelivery.Table, webhookdelivery.Columns, sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookDelivery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookdelivery.FieldID)
		for _, f := range fields {
			if !webhookdelivery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhookdelivery.FieldID {
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
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(webhookdelivery.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimantToken(); ok {
		_spec.SetField(webhookdelivery.FieldClaimantToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimExpiresAt(); ok {
		_spec.SetField(webhookdelivery.FieldClaimExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(webhookdelivery.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(webhookdelivery.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WebhookDelivery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookdelivery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
