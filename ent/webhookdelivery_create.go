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
	"github.com/codeready-toolchain/loopd/ent/webhookdelivery"
)

// WebhookDeliveryCreate is the builder for creating a WebhookDelivery entity.
type WebhookDeliveryCreate struct {
	config
	mutation *WebhookDeliveryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventType sets the "event_type" field.
func (_c *WebhookDeliveryCreate) SetEventType(v string) *WebhookDeliveryCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetClaimantToken sets the "claimant_token" field.
func (_c *WebhookDeliveryCreate) SetClaimantToken(v string) *WebhookDeliveryCreate {
	_c.mutation.SetClaimantToken(v)
	return _c
}

// SetClaimExpiresAt sets the "claim_expires_at" field.
func (_c *WebhookDeliveryCreate) SetClaimExpiresAt(v time.Time) *WebhookDeliveryCreate {
	_c.mutation.SetClaimExpiresAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *WebhookDeliveryCreate) SetCompletedAt(v time.Time) *WebhookDeliveryCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableCompletedAt(v *time.Time) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WebhookDeliveryCreate) SetCreatedAt(v time.Time) *WebhookDeliveryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableCreatedAt(v *time.Time) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WebhookDeliveryCreate) SetUpdatedAt(v time.Time) *WebhookDeliveryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableUpdatedAt(v *time.Time) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WebhookDeliveryCreate) SetID(v string) *WebhookDeliveryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WebhookDeliveryMutation object of the builder.
func (_c *WebhookDeliveryCreate) Mutation() *WebhookDeliveryMutation {
	return _c.mutation
}

// Save creates the WebhookDelivery in the database.
func (_c *WebhookDeliveryCreate) Save(ctx context.Context) (*WebhookDelivery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebhookDeliveryCreate) SaveX(ctx context.Context) *WebhookDelivery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookDeliveryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookDeliveryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebhookDeliveryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := webhookdelivery.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := webhookdelivery.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebhookDeliveryCreate) check() error {
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "WebhookDelivery.event_type"`)}
	}
	if _, ok := _c.mutation.ClaimantToken(); !ok {
		return &ValidationError{Name: "claimant_token", err: errors.New(`ent: missing required field "WebhookDelivery.claimant_token"`)}
	}
	if _, ok := _c.mutation.ClaimExpiresAt(); !ok {
		return &ValidationError{Name: "claim_expires_at", err: errors.New(`ent: missing required field "WebhookDelivery.claim_expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WebhookDelivery.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WebhookDelivery.updated_at"`)}
	}
	return nil
}

func (_c *WebhookDeliveryCreate) sqlSave(ctx context.Context) (*WebhookDelivery, error) {
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
			return nil, fmt.Errorf("unexpected WebhookDelivery.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WebhookDeliveryCreate) createSpec() (*WebhookDelivery, *sqlgraph.CreateSpec) {
	var (
		_node = &WebhookDelivery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(webhookdelivery.Table, sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(webhookdelivery.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.ClaimantToken(); ok {
		_spec.SetField(webhookdelivery.FieldClaimantToken, field.TypeString, value)
		_node.ClaimantToken = value
	}
	if value, ok := _c.mutation.ClaimExpiresAt(); ok {
		_spec.SetField(webhookdelivery.FieldClaimExpiresAt, field.TypeTime, value)
		_node.ClaimExpiresAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(webhookdelivery.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WebhookDelivery.Create().
//		SetEventType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WebhookDeliveryUpsert) {
//			SetEventType(v+v).
//		}).
//		Exec(ctx)
func (_c *WebhookDeliveryCreate) OnConflict(opts ...sql.ConflictOption) *WebhookDeliveryUpsertOne {
	_c.conflict = opts
	return &WebhookDeliveryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WebhookDeliveryCreate) OnConflictColumns(columns ...string) *WebhookDeliveryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WebhookDeliveryUpsertOne{
		create: _c,
	}
}

type (
	// WebhookDeliveryUpsertOne is the builder for "upsert"-ing
	//  one WebhookDelivery node.
	WebhookDeliveryUpsertOne struct {
		create *WebhookDeliveryCreate
	}

	// WebhookDeliveryUpsert is the "OnConflict" setter.
	WebhookDeliveryUpsert struct {
		*sql.UpdateSet
	}
)

// SetEventType sets the "event_type" field.
func (u *WebhookDeliveryUpsert) SetEventType(v string) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateEventType() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldEventType)
	return u
}

// SetClaimantToken sets the "claimant_token" field.
func (u *WebhookDeliveryUpsert) SetClaimantToken(v string) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldClaimantToken, v)
	return u
}

// UpdateClaimantToken sets the "claimant_token" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateClaimantToken() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldClaimantToken)
	return u
}

// SetClaimExpiresAt sets the "claim_expires_at" field.
func (u *WebhookDeliveryUpsert) SetClaimExpiresAt(v time.Time) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldClaimExpiresAt, v)
	return u
}

// UpdateClaimExpiresAt sets the "claim_expires_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateClaimExpiresAt() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldClaimExpiresAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *WebhookDeliveryUpsert) SetCompletedAt(v time.Time) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateCompletedAt() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *WebhookDeliveryUpsert) ClearCompletedAt() *WebhookDeliveryUpsert {
	u.SetNull(webhookdelivery.FieldCompletedAt)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *WebhookDeliveryUpsert) SetCreatedAt(v time.Time) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateCreatedAt() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WebhookDeliveryUpsert) SetUpdatedAt(v time.Time) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateUpdatedAt() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(webhookdelivery.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WebhookDeliveryUpsertOne) UpdateNewValues() *WebhookDeliveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(webhookdelivery.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WebhookDeliveryUpsertOne) Ignore() *WebhookDeliveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WebhookDeliveryUpsertOne) DoNothing() *WebhookDeliveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WebhookDeliveryCreate.OnConflict
// documentation for more info.
func (u *WebhookDeliveryUpsertOne) Update(set func(*WebhookDeliveryUpsert)) *WebhookDeliveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WebhookDeliveryUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventType sets the "event_type" field.
func (u *WebhookDeliveryUpsertOne) SetEventType(v string) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateEventType() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateEventType()
	})
}

// SetClaimantToken sets the "claimant_token" field.
func (u *WebhookDeliveryUpsertOne) SetClaimantToken(v string) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetClaimantToken(v)
	})
}

// UpdateClaimantToken sets the "claimant_token" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateClaimantToken() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateClaimantToken()
	})
}

// SetClaimExpiresAt sets the "claim_expires_at" field.
func (u *WebhookDeliveryUpsertOne) SetClaimExpiresAt(v time.Time) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetClaimExpiresAt(v)
	})
}

// UpdateClaimExpiresAt sets the "claim_expires_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateClaimExpiresAt() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateClaimExpiresAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *WebhookDeliveryUpsertOne) SetCompletedAt(v time.Time) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateCompletedAt() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *WebhookDeliveryUpsertOne) ClearCompletedAt() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearCompletedAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *WebhookDeliveryUpsertOne) SetCreatedAt(v time.Time) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateCreatedAt() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WebhookDeliveryUpsertOne) SetUpdatedAt(v time.Time) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateUpdatedAt() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WebhookDeliveryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WebhookDeliveryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WebhookDeliveryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WebhookDeliveryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WebhookDeliveryUpsertOne.ID is not supported by MySQL driver. Use WebhookDeliveryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WebhookDeliveryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WebhookDeliveryCreateBulk is the builder for creating many WebhookDelivery entities in bulk.
type WebhookDeliveryCreateBulk struct {
	config
	err      error
	builders []*WebhookDeliveryCreate
	conflict []sql.ConflictOption
}

// Save creates the WebhookDelivery entities in the database.
func (_c *WebhookDeliveryCreateBulk) Save(ctx context.Context) ([]*WebhookDelivery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WebhookDelivery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebhookDeliveryMutation)
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
func (_c *WebhookDeliveryCreateBulk) SaveX(ctx context.Context) []*WebhookDelivery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookDeliveryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookDeliveryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WebhookDelivery.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WebhookDeliveryUpsert) {
//			SetEventType(v+v).
//		}).
//		Exec(ctx)
func (_c *WebhookDeliveryCreateBulk) OnConflict(opts ...sql.ConflictOption) *WebhookDeliveryUpsertBulk {
	_c.conflict = opts
	return &WebhookDeliveryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WebhookDeliveryCreateBulk) OnConflictColumns(columns ...string) *WebhookDeliveryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WebhookDeliveryUpsertBulk{
		create: _c,
	}
}

// WebhookDeliveryUpsertBulk is the builder for "upsert"-ing
// a bulk of WebhookDelivery nodes.
type WebhookDeliveryUpsertBulk struct {
	create *WebhookDeliveryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(webhookdelivery.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WebhookDeliveryUpsertBulk) UpdateNewValues() *WebhookDeliveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(webhookdelivery.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WebhookDeliveryUpsertBulk) Ignore() *WebhookDeliveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WebhookDeliveryUpsertBulk) DoNothing() *WebhookDeliveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WebhookDeliveryCreateBulk.OnConflict
// documentation for more info.
func (u *WebhookDeliveryUpsertBulk) Update(set func(*WebhookDeliveryUpsert)) *WebhookDeliveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WebhookDeliveryUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventType sets the "event_type" field.
func (u *WebhookDeliveryUpsertBulk) SetEventType(v string) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateEventType() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateEventType()
	})
}

// SetClaimantToken sets the "claimant_token" field.
func (u *WebhookDeliveryUpsertBulk) SetClaimantToken(v string) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetClaimantToken(v)
	})
}

// UpdateClaimantToken sets the "claimant_token" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateClaimantToken() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateClaimantToken()
	})
}

// SetClaimExpiresAt sets the "claim_expires_at" field.
func (u *WebhookDeliveryUpsertBulk) SetClaimExpiresAt(v time.Time) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetClaimExpiresAt(v)
	})
}

// UpdateClaimExpiresAt sets the "claim_expires_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateClaimExpiresAt() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateClaimExpiresAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *WebhookDeliveryUpsertBulk) SetCompletedAt(v time.Time) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateCompletedAt() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *WebhookDeliveryUpsertBulk) ClearCompletedAt() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearCompletedAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *WebhookDeliveryUpsertBulk) SetCreatedAt(v time.Time) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateCreatedAt() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WebhookDeliveryUpsertBulk) SetUpdatedAt(v time.Time) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateUpdatedAt() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WebhookDeliveryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WebhookDeliveryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WebhookDeliveryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WebhookDeliveryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
