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
	"github.com/codeready-toolchain/loopd/ent/looplease"
)

// LoopLeaseCreate is the builder for creating a LoopLease entity.
type LoopLeaseCreate struct {
	config
	mutation *LoopLeaseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLeaseOwner sets the "lease_owner" field.
func (_c *LoopLeaseCreate) SetLeaseOwner(v string) *LoopLeaseCreate {
	_c.mutation.SetLeaseOwner(v)
	return _c
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_c *LoopLeaseCreate) SetNillableLeaseOwner(v *string) *LoopLeaseCreate {
	if v != nil {
		_c.SetLeaseOwner(*v)
	}
	return _c
}

// SetLeaseEpoch sets the "lease_epoch" field.
func (_c *LoopLeaseCreate) SetLeaseEpoch(v int) *LoopLeaseCreate {
	_c.mutation.SetLeaseEpoch(v)
	return _c
}

// SetNillableLeaseEpoch sets the "lease_epoch" field if the given value is not nil.
func (_c *LoopLeaseCreate) SetNillableLeaseEpoch(v *int) *LoopLeaseCreate {
	if v != nil {
		_c.SetLeaseEpoch(*v)
	}
	return _c
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_c *LoopLeaseCreate) SetLeaseExpiresAt(v time.Time) *LoopLeaseCreate {
	_c.mutation.SetLeaseExpiresAt(v)
	return _c
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_c *LoopLeaseCreate) SetNillableLeaseExpiresAt(v *time.Time) *LoopLeaseCreate {
	if v != nil {
		_c.SetLeaseExpiresAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LoopLeaseCreate) SetID(v string) *LoopLeaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LoopLeaseMutation object of the builder.
func (_c *LoopLeaseCreate) Mutation() *LoopLeaseMutation {
	return _c.mutation
}

// Save creates the LoopLease in the database.
func (_c *LoopLeaseCreate) Save(ctx context.Context) (*LoopLease, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LoopLeaseCreate) SaveX(ctx context.Context) *LoopLease {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LoopLeaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LoopLeaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LoopLeaseCreate) defaults() {
	if _, ok := _c.mutation.LeaseEpoch(); !ok {
		v := looplease.DefaultLeaseEpoch
		_c.mutation.SetLeaseEpoch(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LoopLeaseCreate) check() error {
	if _, ok := _c.mutation.LeaseEpoch(); !ok {
		return &ValidationError{Name: "lease_epoch", err: errors.New(`ent: missing required field "LoopLease.lease_epoch"`)}
	}
	return nil
}

func (_c *LoopLeaseCreate) sqlSave(ctx context.Context) (*LoopLease, error) {
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
			return nil, fmt.Errorf("unexpected LoopLease.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LoopLeaseCreate) createSpec() (*LoopLease, *sqlgraph.CreateSpec) {
	var (
		_node = &LoopLease{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(looplease.Table, sqlgraph.NewFieldSpec(looplease.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.LeaseOwner(); ok {
		_spec.SetField(looplease.FieldLeaseOwner, field.TypeString, value)
		_node.LeaseOwner = &value
	}
	if value, ok := _c.mutation.LeaseEpoch(); ok {
		_spec.SetField(looplease.FieldLeaseEpoch, field.TypeInt, value)
		_node.LeaseEpoch = value
	}
	if value, ok := _c.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(looplease.FieldLeaseExpiresAt, field.TypeTime, value)
		_node.LeaseExpiresAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LoopLease.Create().
//		SetLeaseOwner(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LoopLeaseUpsert) {
//			SetLeaseOwner(v+v).
//		}).
//		Exec(ctx)
func (_c *LoopLeaseCreate) OnConflict(opts ...sql.ConflictOption) *LoopLeaseUpsertOne {
	_c.conflict = opts
	return &LoopLeaseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LoopLease.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LoopLeaseCreate) OnConflictColumns(columns ...string) *LoopLeaseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LoopLeaseUpsertOne{
		create: _c,
	}
}

type (
	// LoopLeaseUpsertOne is the builder for "upsert"-ing
	//  one LoopLease node.
	LoopLeaseUpsertOne struct {
		create *LoopLeaseCreate
	}

	// LoopLeaseUpsert is the "OnConflict" setter.
	LoopLeaseUpsert struct {
		*sql.UpdateSet
	}
)

// SetLeaseOwner sets the "lease_owner" field.
func (u *LoopLeaseUpsert) SetLeaseOwner(v string) *LoopLeaseUpsert {
	u.Set(looplease.FieldLeaseOwner, v)
	return u
}

// UpdateLeaseOwner sets the "lease_owner" field to the value that was provided on create.
func (u *LoopLeaseUpsert) UpdateLeaseOwner() *LoopLeaseUpsert {
	u.SetExcluded(looplease.FieldLeaseOwner)
	return u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (u *LoopLeaseUpsert) ClearLeaseOwner() *LoopLeaseUpsert {
	u.SetNull(looplease.FieldLeaseOwner)
	return u
}

// SetLeaseEpoch sets the "lease_epoch" field.
func (u *LoopLeaseUpsert) SetLeaseEpoch(v int) *LoopLeaseUpsert {
	u.Set(looplease.FieldLeaseEpoch, v)
	return u
}

// UpdateLeaseEpoch sets the "lease_epoch" field to the value that was provided on create.
func (u *LoopLeaseUpsert) UpdateLeaseEpoch() *LoopLeaseUpsert {
	u.SetExcluded(looplease.FieldLeaseEpoch)
	return u
}

// AddLeaseEpoch adds v to the "lease_epoch" field.
func (u *LoopLeaseUpsert) AddLeaseEpoch(v int) *LoopLeaseUpsert {
	u.Add(looplease.FieldLeaseEpoch, v)
	return u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *LoopLeaseUpsert) SetLeaseExpiresAt(v time.Time) *LoopLeaseUpsert {
	u.Set(looplease.FieldLeaseExpiresAt, v)
	return u
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *LoopLeaseUpsert) UpdateLeaseExpiresAt() *LoopLeaseUpsert {
	u.SetExcluded(looplease.FieldLeaseExpiresAt)
	return u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *LoopLeaseUpsert) ClearLeaseExpiresAt() *LoopLeaseUpsert {
	u.SetNull(looplease.FieldLeaseExpiresAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LoopLease.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(looplease.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LoopLeaseUpsertOne) UpdateNewValues() *LoopLeaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(looplease.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LoopLease.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LoopLeaseUpsertOne) Ignore() *LoopLeaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LoopLeaseUpsertOne) DoNothing() *LoopLeaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LoopLeaseCreate.OnConflict
// documentation for more info.
func (u *LoopLeaseUpsertOne) Update(set func(*LoopLeaseUpsert)) *LoopLeaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LoopLeaseUpsert{UpdateSet: update})
	}))
	return u
}

// SetLeaseOwner sets the "lease_owner" field.
func (u *LoopLeaseUpsertOne) SetLeaseOwner(v string) *LoopLeaseUpsertOne {
	return u.Update(func(s *LoopLeaseUpsert) {
		s.SetLeaseOwner(v)
	})
}

// UpdateLeaseOwner sets the "lease_owner" field to the value that was provided on create.
func (u *LoopLeaseUpsertOne) UpdateLeaseOwner() *LoopLeaseUpsertOne {
	return u.Update(func(s *LoopLeaseUpsert) {
		s.UpdateLeaseOwner()
	})
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (u *LoopLeaseUpsertOne) ClearLeaseOwner() *LoopLeaseUpsertOne {
	return u.Update(func(s *LoopLeaseUpsert) {
		s.ClearLeaseOwner()
	})
}

// SetLeaseEpoch sets the "lease_epoch" field.
func (u *LoopLeaseUpsertOne) SetLeaseEpoch(v int) *LoopLeaseUpsertOne {
	return u.Update(func(s *LoopLeaseUpsert) {
		s.SetLeaseEpoch(v)
	})
}

// AddLeaseEpoch adds v to the "lease_epoch" field.
func (u *LoopLeaseUpsertOne) AddLeaseEpoch(v int) *LoopLeaseUpsertOne {
	return u.Update(func(s *LoopLeaseUpsert) {
		s.AddLeaseEpoch(v)
	})
}

// UpdateLeaseEpoch sets the "lease_epoch" field to the value that was provided on create.
func (u *LoopLeaseUpsertOne) UpdateLeaseEpoch() *LoopLeaseUpsertOne {
	return u.Update(func(s *LoopLeaseUpsert) {
		s.UpdateLeaseEpoch()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *LoopLeaseUpsertOne) SetLeaseExpiresAt(v time.Time) *LoopLeaseUpsertOne {
	return u.Update(func(s *LoopLeaseUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *LoopLeaseUpsertOne) UpdateLeaseExpiresAt() *LoopLeaseUpsertOne {
	return u.Update(func(s *LoopLeaseUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *LoopLeaseUpsertOne) ClearLeaseExpiresAt() *LoopLeaseUpsertOne {
	return u.Update(func(s *LoopLeaseUpsert) {
		s.ClearLeaseExpiresAt()
	})
}

// Exec executes the query.
func (u *LoopLeaseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LoopLeaseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LoopLeaseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LoopLeaseUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LoopLeaseUpsertOne.ID is not supported by MySQL driver. Use LoopLeaseUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LoopLeaseUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LoopLeaseCreateBulk is the builder for creating many LoopLease entities in bulk.
type LoopLeaseCreateBulk struct {
	config
	err      error
	builders []*LoopLeaseCreate
	conflict []sql.ConflictOption
}

// Save creates the LoopLease entities in the database.
func (_c *LoopLeaseCreateBulk) Save(ctx context.Context) ([]*LoopLease, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LoopLease, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LoopLeaseMutation)
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
func (_c *LoopLeaseCreateBulk) SaveX(ctx context.Context) []*LoopLease {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LoopLeaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LoopLeaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LoopLease.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LoopLeaseUpsert) {
//			SetLeaseOwner(v+v).
//		}).
//		Exec(ctx)
func (_c *LoopLeaseCreateBulk) OnConflict(opts ...sql.ConflictOption) *LoopLeaseUpsertBulk {
	_c.conflict = opts
	return &LoopLeaseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LoopLease.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LoopLeaseCreateBulk) OnConflictColumns(columns ...string) *LoopLeaseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LoopLeaseUpsertBulk{
		create: _c,
	}
}

// LoopLeaseUpsertBulk is the builder for "upsert"-ing
// a bulk of LoopLease nodes.
type LoopLeaseUpsertBulk struct {
	create *LoopLeaseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LoopLease.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(looplease.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LoopLeaseUpsertBulk) UpdateNewValues() *LoopLeaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(looplease.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LoopLease.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LoopLeaseUpsertBulk) Ignore() *LoopLeaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LoopLeaseUpsertBulk) DoNothing() *LoopLeaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LoopLeaseCreateBulk.OnConflict
// documentation for more info.
func (u *LoopLeaseUpsertBulk) Update(set func(*LoopLeaseUpsert)) *LoopLeaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LoopLeaseUpsert{UpdateSet: update})
	}))
	return u
}

// SetLeaseOwner sets the "lease_owner" field.
func (u *LoopLeaseUpsertBulk) SetLeaseOwner(v string) *LoopLeaseUpsertBulk {
	return u.Update(func(s *LoopLeaseUpsert) {
		s.SetLeaseOwner(v)
	})
}

// UpdateLeaseOwner sets the "lease_owner" field to the value that was provided on create.
func (u *LoopLeaseUpsertBulk) UpdateLeaseOwner() *LoopLeaseUpsertBulk {
	return u.Update(func(s *LoopLeaseUpsert) {
		s.UpdateLeaseOwner()
	})
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (u *LoopLeaseUpsertBulk) ClearLeaseOwner() *LoopLeaseUpsertBulk {
	return u.Update(func(s *LoopLeaseUpsert) {
		s.ClearLeaseOwner()
	})
}

// SetLeaseEpoch sets the "lease_epoch" field.
func (u *LoopLeaseUpsertBulk) SetLeaseEpoch(v int) *LoopLeaseUpsertBulk {
	return u.Update(func(s *LoopLeaseUpsert) {
		s.SetLeaseEpoch(v)
	})
}

// AddLeaseEpoch adds v to the "lease_epoch" field.
func (u *LoopLeaseUpsertBulk) AddLeaseEpoch(v int) *LoopLeaseUpsertBulk {
	return u.Update(func(s *LoopLeaseUpsert) {
		s.AddLeaseEpoch(v)
	})
}

// UpdateLeaseEpoch sets the "lease_epoch" field to the value that was provided on create.
func (u *LoopLeaseUpsertBulk) UpdateLeaseEpoch() *LoopLeaseUpsertBulk {
	return u.Update(func(s *LoopLeaseUpsert) {
		s.UpdateLeaseEpoch()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *LoopLeaseUpsertBulk) SetLeaseExpiresAt(v time.Time) *LoopLeaseUpsertBulk {
	return u.Update(func(s *LoopLeaseUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *LoopLeaseUpsertBulk) UpdateLeaseExpiresAt() *LoopLeaseUpsertBulk {
	return u.Update(func(s *LoopLeaseUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *LoopLeaseUpsertBulk) ClearLeaseExpiresAt() *LoopLeaseUpsertBulk {
	return u.Update(func(s *LoopLeaseUpsert) {
		s.ClearLeaseExpiresAt()
	})
}

// Exec executes the query.
func (u *LoopLeaseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LoopLeaseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LoopLeaseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LoopLeaseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
