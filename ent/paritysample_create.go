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
	"github.com/codeready-toolchain/loopd/ent/paritysample"
)

// ParitySampleCreate is the builder for creating a ParitySample entity.
type ParitySampleCreate struct {
	config
	mutation *ParitySampleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCauseType sets the "cause_type" field.
func (_c *ParitySampleCreate) SetCauseType(v string) *ParitySampleCreate {
	_c.mutation.SetCauseType(v)
	return _c
}

// SetTargetClass sets the "target_class" field.
func (_c *ParitySampleCreate) SetTargetClass(v string) *ParitySampleCreate {
	_c.mutation.SetTargetClass(v)
	return _c
}

// SetMatched sets the "matched" field.
func (_c *ParitySampleCreate) SetMatched(v bool) *ParitySampleCreate {
	_c.mutation.SetMatched(v)
	return _c
}

// SetEligible sets the "eligible" field.
func (_c *ParitySampleCreate) SetEligible(v bool) *ParitySampleCreate {
	_c.mutation.SetEligible(v)
	return _c
}

// SetNillableEligible sets the "eligible" field if the given value is not nil.
func (_c *ParitySampleCreate) SetNillableEligible(v *bool) *ParitySampleCreate {
	if v != nil {
		_c.SetEligible(*v)
	}
	return _c
}

// SetObservedAt sets the "observed_at" field.
func (_c *ParitySampleCreate) SetObservedAt(v time.Time) *ParitySampleCreate {
	_c.mutation.SetObservedAt(v)
	return _c
}

// SetNillableObservedAt sets the "observed_at" field if the given value is not nil.
func (_c *ParitySampleCreate) SetNillableObservedAt(v *time.Time) *ParitySampleCreate {
	if v != nil {
		_c.SetObservedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ParitySampleCreate) SetID(v string) *ParitySampleCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ParitySampleMutation object of the builder.
func (_c *ParitySampleCreate) Mutation() *ParitySampleMutation {
	return _c.mutation
}

// Save creates the ParitySample in the database.
func (_c *ParitySampleCreate) Save(ctx context.Context) (*ParitySample, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParitySampleCreate) SaveX(ctx context.Context) *ParitySample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParitySampleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParitySampleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ParitySampleCreate) defaults() {
	if _, ok := _c.mutation.Eligible(); !ok {
		v := paritysample.DefaultEligible
		_c.mutation.SetEligible(v)
	}
	if _, ok := _c.mutation.ObservedAt(); !ok {
		v := paritysample.DefaultObservedAt()
		_c.mutation.SetObservedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParitySampleCreate) check() error {
	if _, ok := _c.mutation.CauseType(); !ok {
		return &ValidationError{Name: "cause_type", err: errors.New(`ent: missing required field "ParitySample.cause_type"`)}
	}
	if _, ok := _c.mutation.TargetClass(); !ok {
		return &ValidationError{Name: "target_class", err: errors.New(`ent: missing required field "ParitySample.target_class"`)}
	}
	if _, ok := _c.mutation.Matched(); !ok {
		return &ValidationError{Name: "matched", err: errors.New(`ent: missing required field "ParitySample.matched"`)}
	}
	if _, ok := _c.mutation.Eligible(); !ok {
		return &ValidationError{Name: "eligible", err: errors.New(`ent: missing required field "ParitySample.eligible"`)}
	}
	if _, ok := _c.mutation.ObservedAt(); !ok {
		return &ValidationError{Name: "observed_at", err: errors.New(`ent: missing required field "ParitySample.observed_at"`)}
	}
	return nil
}

func (_c *ParitySampleCreate) sqlSave(ctx context.Context) (*ParitySample, error) {
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
			return nil, fmt.Errorf("unexpected ParitySample.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ParitySampleCreate) createSpec() (*ParitySample, *sqlgraph.CreateSpec) {
	var (
		_node = &ParitySample{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paritysample.Table, sqlgraph.NewFieldSpec(paritysample.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CauseType(); ok {
		_spec.SetField(paritysample.FieldCauseType, field.TypeString, value)
		_node.CauseType = value
	}
	if value, ok := _c.mutation.TargetClass(); ok {
		_spec.SetField(paritysample.FieldTargetClass, field.TypeString, value)
		_node.TargetClass = value
	}
	if value, ok := _c.mutation.Matched(); ok {
		_spec.SetField(paritysample.FieldMatched, field.TypeBool, value)
		_node.Matched = value
	}
	if value, ok := _c.mutation.Eligible(); ok {
		_spec.SetField(paritysample.FieldEligible, field.TypeBool, value)
		_node.Eligible = value
	}
	if value, ok := _c.mutation.ObservedAt(); ok {
		_spec.SetField(paritysample.FieldObservedAt, field.TypeTime, value)
		_node.ObservedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ParitySample.Create().
//		SetCauseType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ParitySampleUpsert) {
//			SetCauseType(v+v).
//		}).
//		Exec(ctx)
func (_c *ParitySampleCreate) OnConflict(opts ...sql.ConflictOption) *ParitySampleUpsertOne {
	_c.conflict = opts
	return &ParitySampleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ParitySample.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ParitySampleCreate) OnConflictColumns(columns ...string) *ParitySampleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ParitySampleUpsertOne{
		create: _c,
	}
}

type (
	// ParitySampleUpsertOne is the builder for "upsert"-ing
	//  one ParitySample node.
	ParitySampleUpsertOne struct {
		create *ParitySampleCreate
	}

	// ParitySampleUpsert is the "OnConflict" setter.
	ParitySampleUpsert struct {
		*sql.UpdateSet
	}
)

// SetCauseType sets the "cause_type" field.
func (u *ParitySampleUpsert) SetCauseType(v string) *ParitySampleUpsert {
	u.Set(paritysample.FieldCauseType, v)
	return u
}

// UpdateCauseType sets the "cause_type" field to the value that was provided on create.
func (u *ParitySampleUpsert) UpdateCauseType() *ParitySampleUpsert {
	u.SetExcluded(paritysample.FieldCauseType)
	return u
}

// SetTargetClass sets the "target_class" field.
func (u *ParitySampleUpsert) SetTargetClass(v string) *ParitySampleUpsert {
	u.Set(paritysample.FieldTargetClass, v)
	return u
}

// UpdateTargetClass sets the "target_class" field to the value that was provided on create.
func (u *ParitySampleUpsert) UpdateTargetClass() *ParitySampleUpsert {
	u.SetExcluded(paritysample.FieldTargetClass)
	return u
}

// SetMatched sets the "matched" field.
func (u *ParitySampleUpsert) SetMatched(v bool) *ParitySampleUpsert {
	u.Set(paritysample.FieldMatched, v)
	return u
}

// UpdateMatched sets the "matched" field to the value that was provided on create.
func (u *ParitySampleUpsert) UpdateMatched() *ParitySampleUpsert {
	u.SetExcluded(paritysample.FieldMatched)
	return u
}

// SetEligible sets the "eligible" field.
func (u *ParitySampleUpsert) SetEligible(v bool) *ParitySampleUpsert {
	u.Set(paritysample.FieldEligible, v)
	return u
}

// UpdateEligible sets the "eligible" field to the value that was provided on create.
func (u *ParitySampleUpsert) UpdateEligible() *ParitySampleUpsert {
	u.SetExcluded(paritysample.FieldEligible)
	return u
}

// SetObservedAt sets the "observed_at" field.
func (u *ParitySampleUpsert) SetObservedAt(v time.Time) *ParitySampleUpsert {
	u.Set(paritysample.FieldObservedAt, v)
	return u
}

// UpdateObservedAt sets the "observed_at" field to the value that was provided on create.
func (u *ParitySampleUpsert) UpdateObservedAt() *ParitySampleUpsert {
	u.SetExcluded(paritysample.FieldObservedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ParitySample.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paritysample.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ParitySampleUpsertOne) UpdateNewValues() *ParitySampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(paritysample.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ParitySample.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ParitySampleUpsertOne) Ignore() *ParitySampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ParitySampleUpsertOne) DoNothing() *ParitySampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ParitySampleCreate.OnConflict
// documentation for more info.
func (u *ParitySampleUpsertOne) Update(set func(*ParitySampleUpsert)) *ParitySampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ParitySampleUpsert{UpdateSet: update})
	}))
	return u
}

// SetCauseType sets the "cause_type" field.
func (u *ParitySampleUpsertOne) SetCauseType(v string) *ParitySampleUpsertOne {
	return u.Update(func(s *ParitySampleUpsert) {
		s.SetCauseType(v)
	})
}

// UpdateCauseType sets the "cause_type" field to the value that was provided on create.
func (u *ParitySampleUpsertOne) UpdateCauseType() *ParitySampleUpsertOne {
	return u.Update(func(s *ParitySampleUpsert) {
		s.UpdateCauseType()
	})
}

// SetTargetClass sets the "target_class" field.
func (u *ParitySampleUpsertOne) SetTargetClass(v string) *ParitySampleUpsertOne {
	return u.Update(func(s *ParitySampleUpsert) {
		s.SetTargetClass(v)
	})
}

// UpdateTargetClass sets the "target_class" field to the value that was provided on create.
func (u *ParitySampleUpsertOne) UpdateTargetClass() *ParitySampleUpsertOne {
	return u.Update(func(s *ParitySampleUpsert) {
		s.UpdateTargetClass()
	})
}

// SetMatched sets the "matched" field.
func (u *ParitySampleUpsertOne) SetMatched(v bool) *ParitySampleUpsertOne {
	return u.Update(func(s *ParitySampleUpsert) {
		s.SetMatched(v)
	})
}

// UpdateMatched sets the "matched" field to the value that was provided on create.
func (u *ParitySampleUpsertOne) UpdateMatched() *ParitySampleUpsertOne {
	return u.Update(func(s *ParitySampleUpsert) {
		s.UpdateMatched()
	})
}

// SetEligible sets the "eligible" field.
func (u *ParitySampleUpsertOne) SetEligible(v bool) *ParitySampleUpsertOne {
	return u.Update(func(s *ParitySampleUpsert) {
		s.SetEligible(v)
	})
}

// UpdateEligible sets the "eligible" field to the value that was provided on create.
func (u *ParitySampleUpsertOne) UpdateEligible() *ParitySampleUpsertOne {
	return u.Update(func(s *ParitySampleUpsert) {
		s.UpdateEligible()
	})
}

// SetObservedAt sets the "observed_at" field.
func (u *ParitySampleUpsertOne) SetObservedAt(v time.Time) *ParitySampleUpsertOne {
	return u.Update(func(s *ParitySampleUpsert) {
		s.SetObservedAt(v)
	})
}

// UpdateObservedAt sets the "observed_at" field to the value that was provided on create.
func (u *ParitySampleUpsertOne) UpdateObservedAt() *ParitySampleUpsertOne {
	return u.Update(func(s *ParitySampleUpsert) {
		s.UpdateObservedAt()
	})
}

// Exec executes the query.
func (u *ParitySampleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ParitySampleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ParitySampleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ParitySampleUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ParitySampleUpsertOne.ID is not supported by MySQL driver. Use ParitySampleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ParitySampleUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ParitySampleCreateBulk is the builder for creating many ParitySample entities in bulk.
type ParitySampleCreateBulk struct {
	config
	err      error
	builders []*ParitySampleCreate
	conflict []sql.ConflictOption
}

// Save creates the ParitySample entities in the database.
func (_c *ParitySampleCreateBulk) Save(ctx context.Context) ([]*ParitySample, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ParitySample, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParitySampleMutation)
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
func (_c *ParitySampleCreateBulk) SaveX(ctx context.Context) []*ParitySample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParitySampleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParitySampleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ParitySample.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ParitySampleUpsert) {
//			SetCauseType(v+v).
//		}).
//		Exec(ctx)
func (_c *ParitySampleCreateBulk) OnConflict(opts ...sql.ConflictOption) *ParitySampleUpsertBulk {
	_c.conflict = opts
	return &ParitySampleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ParitySample.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ParitySampleCreateBulk) OnConflictColumns(columns ...string) *ParitySampleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ParitySampleUpsertBulk{
		create: _c,
	}
}

// ParitySampleUpsertBulk is the builder for "upsert"-ing
// a bulk of ParitySample nodes.
type ParitySampleUpsertBulk struct {
	create *ParitySampleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ParitySample.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paritysample.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ParitySampleUpsertBulk) UpdateNewValues() *ParitySampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(paritysample.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ParitySample.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ParitySampleUpsertBulk) Ignore() *ParitySampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ParitySampleUpsertBulk) DoNothing() *ParitySampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ParitySampleCreateBulk.OnConflict
// documentation for more info.
func (u *ParitySampleUpsertBulk) Update(set func(*ParitySampleUpsert)) *ParitySampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ParitySampleUpsert{UpdateSet: update})
	}))
	return u
}

// SetCauseType sets the "cause_type" field.
func (u *ParitySampleUpsertBulk) SetCauseType(v string) *ParitySampleUpsertBulk {
	return u.Update(func(s *ParitySampleUpsert) {
		s.SetCauseType(v)
	})
}

// UpdateCauseType sets the "cause_type" field to the value that was provided on create.
func (u *ParitySampleUpsertBulk) UpdateCauseType() *ParitySampleUpsertBulk {
	return u.Update(func(s *ParitySampleUpsert) {
		s.UpdateCauseType()
	})
}

// SetTargetClass sets the "target_class" field.
func (u *ParitySampleUpsertBulk) SetTargetClass(v string) *ParitySampleUpsertBulk {
	return u.Update(func(s *ParitySampleUpsert) {
		s.SetTargetClass(v)
	})
}

// UpdateTargetClass sets the "target_class" field to the value that was provided on create.
func (u *ParitySampleUpsertBulk) UpdateTargetClass() *ParitySampleUpsertBulk {
	return u.Update(func(s *ParitySampleUpsert) {
		s.UpdateTargetClass()
	})
}

// SetMatched sets the "matched" field.
func (u *ParitySampleUpsertBulk) SetMatched(v bool) *ParitySampleUpsertBulk {
	return u.Update(func(s *ParitySampleUpsert) {
		s.SetMatched(v)
	})
}

// UpdateMatched sets the "matched" field to the value that was provided on create.
func (u *ParitySampleUpsertBulk) UpdateMatched() *ParitySampleUpsertBulk {
	return u.Update(func(s *ParitySampleUpsert) {
		s.UpdateMatched()
	})
}

// SetEligible sets the "eligible" field.
func (u *ParitySampleUpsertBulk) SetEligible(v bool) *ParitySampleUpsertBulk {
	return u.Update(func(s *ParitySampleUpsert) {
		s.SetEligible(v)
	})
}

// UpdateEligible sets the "eligible" field to the value that was provided on create.
func (u *ParitySampleUpsertBulk) UpdateEligible() *ParitySampleUpsertBulk {
	return u.Update(func(s *ParitySampleUpsert) {
		s.UpdateEligible()
	})
}

// SetObservedAt sets the "observed_at" field.
func (u *ParitySampleUpsertBulk) SetObservedAt(v time.Time) *ParitySampleUpsertBulk {
	return u.Update(func(s *ParitySampleUpsert) {
		s.SetObservedAt(v)
	})
}

// UpdateObservedAt sets the "observed_at" field to the value that was provided on create.
func (u *ParitySampleUpsertBulk) UpdateObservedAt() *ParitySampleUpsertBulk {
	return u.Update(func(s *ParitySampleUpsert) {
		s.UpdateObservedAt()
	})
}

// Exec executes the query.
func (u *ParitySampleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ParitySampleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ParitySampleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ParitySampleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
