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
	"github.com/codeready-toolchain/loopd/ent/inboxsignal"
	"github.com/codeready-toolchain/loopd/ent/loop"
)

// InboxSignalCreate is the builder for creating a InboxSignal entity.
type InboxSignalCreate struct {
	config
	mutation *InboxSignalMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLoopID sets the "loop_id" field.
func (_c *InboxSignalCreate) SetLoopID(v string) *InboxSignalCreate {
	_c.mutation.SetLoopID(v)
	return _c
}

// SetCauseType sets the "cause_type" field.
func (_c *InboxSignalCreate) SetCauseType(v string) *InboxSignalCreate {
	_c.mutation.SetCauseType(v)
	return _c
}

// SetCanonicalCauseID sets the "canonical_cause_id" field.
func (_c *InboxSignalCreate) SetCanonicalCauseID(v string) *InboxSignalCreate {
	_c.mutation.SetCanonicalCauseID(v)
	return _c
}

// SetCauseIdentityVersion sets the "cause_identity_version" field.
func (_c *InboxSignalCreate) SetCauseIdentityVersion(v int) *InboxSignalCreate {
	_c.mutation.SetCauseIdentityVersion(v)
	return _c
}

// SetNillableCauseIdentityVersion sets the "cause_identity_version" field if the given value is not nil.
func (_c *InboxSignalCreate) SetNillableCauseIdentityVersion(v *int) *InboxSignalCreate {
	if v != nil {
		_c.SetCauseIdentityVersion(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *InboxSignalCreate) SetPayload(v map[string]interface{}) *InboxSignalCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetHeadSha sets the "head_sha" field.
func (_c *InboxSignalCreate) SetHeadSha(v string) *InboxSignalCreate {
	_c.mutation.SetHeadSha(v)
	return _c
}

// SetNillableHeadSha sets the "head_sha" field if the given value is not nil.
func (_c *InboxSignalCreate) SetNillableHeadSha(v *string) *InboxSignalCreate {
	if v != nil {
		_c.SetHeadSha(*v)
	}
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *InboxSignalCreate) SetReceivedAt(v time.Time) *InboxSignalCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *InboxSignalCreate) SetNillableReceivedAt(v *time.Time) *InboxSignalCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *InboxSignalCreate) SetProcessedAt(v time.Time) *InboxSignalCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *InboxSignalCreate) SetNillableProcessedAt(v *time.Time) *InboxSignalCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InboxSignalCreate) SetID(v string) *InboxSignalCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetLoop sets the "loop" edge to the Loop entity.
func (_c *InboxSignalCreate) SetLoop(v *Loop) *InboxSignalCreate {
	return _c.SetLoopID(v.ID)
}

// Mutation returns the InboxSignalMutation object of the builder.
func (_c *InboxSignalCreate) Mutation() *InboxSignalMutation {
	return _c.mutation
}

// Save creates the InboxSignal in the database.
func (_c *InboxSignalCreate) Save(ctx context.Context) (*InboxSignal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InboxSignalCreate) SaveX(ctx context.Context) *InboxSignal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InboxSignalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InboxSignalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InboxSignalCreate) defaults() {
	if _, ok := _c.mutation.CauseIdentityVersion(); !ok {
		v := inboxsignal.DefaultCauseIdentityVersion
		_c.mutation.SetCauseIdentityVersion(v)
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := inboxsignal.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InboxSignalCreate) check() error {
	if _, ok := _c.mutation.LoopID(); !ok {
		return &ValidationError{Name: "loop_id", err: errors.New(`ent: missing required field "InboxSignal.loop_id"`)}
	}
	if _, ok := _c.mutation.CauseType(); !ok {
		return &ValidationError{Name: "cause_type", err: errors.New(`ent: missing required field "InboxSignal.cause_type"`)}
	}
	if _, ok := _c.mutation.CanonicalCauseID(); !ok {
		return &ValidationError{Name: "canonical_cause_id", err: errors.New(`ent: missing required field "InboxSignal.canonical_cause_id"`)}
	}
	if _, ok := _c.mutation.CauseIdentityVersion(); !ok {
		return &ValidationError{Name: "cause_identity_version", err: errors.New(`ent: missing required field "InboxSignal.cause_identity_version"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "InboxSignal.received_at"`)}
	}
	if len(_c.mutation.LoopIDs()) == 0 {
		return &ValidationError{Name: "loop", err: errors.New(`ent: missing required edge "InboxSignal.loop"`)}
	}
	return nil
}

func (_c *InboxSignalCreate) sqlSave(ctx context.Context) (*InboxSignal, error) {
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
			return nil, fmt.Errorf("unexpected InboxSignal.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InboxSignalCreate) createSpec() (*InboxSignal, *sqlgraph.CreateSpec) {
	var (
		_node = &InboxSignal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(inboxsignal.Table, sqlgraph.NewFieldSpec(inboxsignal.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CauseType(); ok {
		_spec.SetField(inboxsignal.FieldCauseType, field.TypeString, value)
		_node.CauseType = value
	}
	if value, ok := _c.mutation.CanonicalCauseID(); ok {
		_spec.SetField(inboxsignal.FieldCanonicalCauseID, field.TypeString, value)
		_node.CanonicalCauseID = value
	}
	if value, ok := _c.mutation.CauseIdentityVersion(); ok {
		_spec.SetField(inboxsignal.FieldCauseIdentityVersion, field.TypeInt, value)
		_node.CauseIdentityVersion = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(inboxsignal.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.HeadSha(); ok {
		_spec.SetField(inboxsignal.FieldHeadSha, field.TypeString, value)
		_node.HeadSha = &value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(inboxsignal.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(inboxsignal.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if nodes := _c.mutation.LoopIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   inboxsignal.LoopTable,
			Columns: []string{inboxsignal.LoopColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InboxSignal.Create().
//		SetLoopID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InboxSignalUpsert) {
//			SetLoopID(v+v).
//		}).
//		Exec(ctx)
func (_c *InboxSignalCreate) OnConflict(opts ...sql.ConflictOption) *InboxSignalUpsertOne {
	_c.conflict = opts
	return &InboxSignalUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InboxSignal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InboxSignalCreate) OnConflictColumns(columns ...string) *InboxSignalUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InboxSignalUpsertOne{
		create: _c,
	}
}

type (
	// InboxSignalUpsertOne is the builder for "upsert"-ing
	//  one InboxSignal node.
	InboxSignalUpsertOne struct {
		create *InboxSignalCreate
	}

	// InboxSignalUpsert is the "OnConflict" setter.
	InboxSignalUpsert struct {
		*sql.UpdateSet
	}
)

// SetLoopID sets the "loop_id" field.
func (u *InboxSignalUpsert) SetLoopID(v string) *InboxSignalUpsert {
	u.Set(inboxsignal.FieldLoopID, v)
	return u
}

// UpdateLoopID sets the "loop_id" field to the value that was provided on create.
func (u *InboxSignalUpsert) UpdateLoopID() *InboxSignalUpsert {
	u.SetExcluded(inboxsignal.FieldLoopID)
	return u
}

// SetCauseType sets the "cause_type" field.
func (u *InboxSignalUpsert) SetCauseType(v string) *InboxSignalUpsert {
	u.Set(inboxsignal.FieldCauseType, v)
	return u
}

// UpdateCauseType sets the "cause_type" field to the value that was provided on create.
func (u *InboxSignalUpsert) UpdateCauseType() *InboxSignalUpsert {
	u.SetExcluded(inboxsignal.FieldCauseType)
	return u
}

// SetCanonicalCauseID sets the "canonical_cause_id" field.
func (u *InboxSignalUpsert) SetCanonicalCauseID(v string) *InboxSignalUpsert {
	u.Set(inboxsignal.FieldCanonicalCauseID, v)
	return u
}

// UpdateCanonicalCauseID sets the "canonical_cause_id" field to the value that was provided on create.
func (u *InboxSignalUpsert) UpdateCanonicalCauseID() *InboxSignalUpsert {
	u.SetExcluded(inboxsignal.FieldCanonicalCauseID)
	return u
}

// SetCauseIdentityVersion sets the "cause_identity_version" field.
func (u *InboxSignalUpsert) SetCauseIdentityVersion(v int) *InboxSignalUpsert {
	u.Set(inboxsignal.FieldCauseIdentityVersion, v)
	return u
}

// UpdateCauseIdentityVersion sets the "cause_identity_version" field to the value that was provided on create.
func (u *InboxSignalUpsert) UpdateCauseIdentityVersion() *InboxSignalUpsert {
	u.SetExcluded(inboxsignal.FieldCauseIdentityVersion)
	return u
}

// AddCauseIdentityVersion adds v to the "cause_identity_version" field.
func (u *InboxSignalUpsert) AddCauseIdentityVersion(v int) *InboxSignalUpsert {
	u.Add(inboxsignal.FieldCauseIdentityVersion, v)
	return u
}

// SetPayload sets the "payload" field.
func (u *InboxSignalUpsert) SetPayload(v map[string]interface{}) *InboxSignalUpsert {
	u.Set(inboxsignal.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *InboxSignalUpsert) UpdatePayload() *InboxSignalUpsert {
	u.SetExcluded(inboxsignal.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *InboxSignalUpsert) ClearPayload() *InboxSignalUpsert {
	u.SetNull(inboxsignal.FieldPayload)
	return u
}

// SetHeadSha sets the "head_sha" field.
func (u *InboxSignalUpsert) SetHeadSha(v string) *InboxSignalUpsert {
	u.Set(inboxsignal.FieldHeadSha, v)
	return u
}

// UpdateHeadSha sets the "head_sha" field to the value that was provided on create.
func (u *InboxSignalUpsert) UpdateHeadSha() *InboxSignalUpsert {
	u.SetExcluded(inboxsignal.FieldHeadSha)
	return u
}

// ClearHeadSha clears the value of the "head_sha" field.
func (u *InboxSignalUpsert) ClearHeadSha() *InboxSignalUpsert {
	u.SetNull(inboxsignal.FieldHeadSha)
	return u
}

// SetReceivedAt sets the "received_at" field.
func (u *InboxSignalUpsert) SetReceivedAt(v time.Time) *InboxSignalUpsert {
	u.Set(inboxsignal.FieldReceivedAt, v)
	return u
}

// UpdateReceivedAt sets the "received_at" field to the value that was provided on create.
func (u *InboxSignalUpsert) UpdateReceivedAt() *InboxSignalUpsert {
	u.SetExcluded(inboxsignal.FieldReceivedAt)
	return u
}

// SetProcessedAt sets the "processed_at" field.
func (u *InboxSignalUpsert) SetProcessedAt(v time.Time) *InboxSignalUpsert {
	u.Set(inboxsignal.FieldProcessedAt, v)
	return u
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *InboxSignalUpsert) UpdateProcessedAt() *InboxSignalUpsert {
	u.SetExcluded(inboxsignal.FieldProcessedAt)
	return u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *InboxSignalUpsert) ClearProcessedAt() *InboxSignalUpsert {
	u.SetNull(inboxsignal.FieldProcessedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.InboxSignal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(inboxsignal.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InboxSignalUpsertOne) UpdateNewValues() *InboxSignalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(inboxsignal.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InboxSignal.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InboxSignalUpsertOne) Ignore() *InboxSignalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InboxSignalUpsertOne) DoNothing() *InboxSignalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InboxSignalCreate.OnConflict
// documentation for more info.
func (u *InboxSignalUpsertOne) Update(set func(*InboxSignalUpsert)) *InboxSignalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InboxSignalUpsert{UpdateSet: update})
	}))
	return u
}

// SetLoopID sets the "loop_id" field.
func (u *InboxSignalUpsertOne) SetLoopID(v string) *InboxSignalUpsertOne {
	return u.Update(func(s *InboxSignalUpsert) {
		s.SetLoopID(v)
	})
}

// UpdateLoopID sets the "loop_id" field to the value that was provided on create.
func (u *InboxSignalUpsertOne) UpdateLoopID() *InboxSignalUpsertOne {
	return u.Update(func(s *InboxSignalUpsert) {
		s.UpdateLoopID()
	})
}

// SetCauseType sets the "cause_type" field.
func (u *InboxSignalUpsertOne) SetCauseType(v string) *InboxSignalUpsertOne {
	return u.Update(func(s *InboxSignalUpsert) {
		s.SetCauseType(v)
	})
}

// UpdateCauseType sets the "cause_type" field to the value that was provided on create.
func (u *InboxSignalUpsertOne) UpdateCauseType() *InboxSignalUpsertOne {
	return u.Update(func(s *InboxSignalUpsert) {
		s.UpdateCauseType()
	})
}

// SetCanonicalCauseID sets the "canonical_cause_id" field.
func (u *InboxSignalUpsertOne) SetCanonicalCauseID(v string) *InboxSignalUpsertOne {
	return u.Update(func(s *InboxSignalUpsert) {
		s.SetCanonicalCauseID(v)
	})
}

// UpdateCanonicalCauseID sets the "canonical_cause_id" field to the value that was provided on create.
func (u *InboxSignalUpsertOne) UpdateCanonicalCauseID() *InboxSignalUpsertOne {
	return u.Update(func(s *InboxSignalUpsert) {
		s.UpdateCanonicalCauseID()
	})
}

// SetCauseIdentityVersion sets the "cause_identity_version" field.
func (u *InboxSignalUpsertOne) SetCauseIdentityVersion(v int) *InboxSignalUpsertOne {
	return u.Update(func(s *InboxSignalUpsert) {
		s.SetCauseIdentityVersion(v)
	})
}

// AddCauseIdentityVersion adds v to the "cause_identity_version" field.
func (u *InboxSignalUpsertOne) AddCauseIdentityVersion(v int) *InboxSignalUpsertOne {
	return u.Update(func(s *InboxSignalUpsert) {
		s.AddCauseIdentityVersion(v)
	})
}

// UpdateCauseIdentityVersion sets the "cause_identity_version" field to the value that was provided on create.
func (u *InboxSignalUpsertOne) UpdateCauseIdentityVersion() *InboxSignalUpsertOne {
	return u.Update(func(s *InboxSignalUpsert) {
		s.UpdateCauseIdentityVersion()
	})
}

// SetPayload sets the "payload" field.
func (u *InboxSignalUpsertOne) SetPayload(v map[string]interface{}) *InboxSignalUpsertOne {
	return u.Update(func(s *InboxSignalUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *InboxSignalUpsertOne) UpdatePayload() *InboxSignalUpsertOne {
	return u.Update(func(s *InboxSignalUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *InboxSignalUpsertOne) ClearPayload() *InboxSignalUpsertOne {
	return u.Update(func(s *InboxSignalUpsert) {
		s.ClearPayload()
	})
}

// SetHeadSha sets the "head_sha" field.
func (u *InboxSignalUpsertOne) SetHeadSha(v string) *InboxSignalUpsertOne {
	return u.Update(func(s *InboxSignalUpsert) {
		s.SetHeadSha(v)
	})
}

// UpdateHeadSha sets the "head_sha" field to the value that was provided on create.
func (u *InboxSignalUpsertOne) UpdateHeadSha() *InboxSignalUpsertOne {
	return u.Update(func(s *InboxSignalUpsert) {
		s.UpdateHeadSha()
	})
}

// ClearHeadSha clears the value of the "head_sha" field.
func (u *InboxSignalUpsertOne) ClearHeadSha() *InboxSignalUpsertOne {
	return u.Update(func(s *InboxSignalUpsert) {
		s.ClearHeadSha()
	})
}

// SetReceivedAt sets the "received_at" field.
func (u *InboxSignalUpsertOne) SetReceivedAt(v time.Time) *InboxSignalUpsertOne {
	return u.Update(func(s *InboxSignalUpsert) {
		s.SetReceivedAt(v)
	})
}

// UpdateReceivedAt sets the "received_at" field to the value that was provided on create.
func (u *InboxSignalUpsertOne) UpdateReceivedAt() *InboxSignalUpsertOne {
	return u.Update(func(s *InboxSignalUpsert) {
		s.UpdateReceivedAt()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *InboxSignalUpsertOne) SetProcessedAt(v time.Time) *InboxSignalUpsertOne {
	return u.Update(func(s *InboxSignalUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *InboxSignalUpsertOne) UpdateProcessedAt() *InboxSignalUpsertOne {
	return u.Update(func(s *InboxSignalUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *InboxSignalUpsertOne) ClearProcessedAt() *InboxSignalUpsertOne {
	return u.Update(func(s *InboxSignalUpsert) {
		s.ClearProcessedAt()
	})
}

// Exec executes the query.
func (u *InboxSignalUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InboxSignalCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InboxSignalUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InboxSignalUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InboxSignalUpsertOne.ID is not supported by MySQL driver. Use InboxSignalUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InboxSignalUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InboxSignalCreateBulk is the builder for creating many InboxSignal entities in bulk.
type InboxSignalCreateBulk struct {
	config
	err      error
	builders []*InboxSignalCreate
	conflict []sql.ConflictOption
}

// Save creates the InboxSignal entities in the database.
func (_c *InboxSignalCreateBulk) Save(ctx context.Context) ([]*InboxSignal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InboxSignal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InboxSignalMutation)
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
func (_c *InboxSignalCreateBulk) SaveX(ctx context.Context) []*InboxSignal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InboxSignalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InboxSignalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InboxSignal.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InboxSignalUpsert) {
//			SetLoopID(v+v).
//		}).
//		Exec(ctx)
func (_c *InboxSignalCreateBulk) OnConflict(opts ...sql.ConflictOption) *InboxSignalUpsertBulk {
	_c.conflict = opts
	return &InboxSignalUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InboxSignal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InboxSignalCreateBulk) OnConflictColumns(columns ...string) *InboxSignalUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InboxSignalUpsertBulk{
		create: _c,
	}
}

// InboxSignalUpsertBulk is the builder for "upsert"-ing
// a bulk of InboxSignal nodes.
type InboxSignalUpsertBulk struct {
	create *InboxSignalCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.InboxSignal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(inboxsignal.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InboxSignalUpsertBulk) UpdateNewValues() *InboxSignalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(inboxsignal.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InboxSignal.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InboxSignalUpsertBulk) Ignore() *InboxSignalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InboxSignalUpsertBulk) DoNothing() *InboxSignalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InboxSignalCreateBulk.OnConflict
// documentation for more info.
func (u *InboxSignalUpsertBulk) Update(set func(*InboxSignalUpsert)) *InboxSignalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InboxSignalUpsert{UpdateSet: update})
	}))
	return u
}

// SetLoopID sets the "loop_id" field.
func (u *InboxSignalUpsertBulk) SetLoopID(v string) *InboxSignalUpsertBulk {
	return u.Update(func(s *InboxSignalUpsert) {
		s.SetLoopID(v)
	})
}

// UpdateLoopID sets the "loop_id" field to the value that was provided on create.
func (u *InboxSignalUpsertBulk) UpdateLoopID() *InboxSignalUpsertBulk {
	return u.Update(func(s *InboxSignalUpsert) {
		s.UpdateLoopID()
	})
}

// SetCauseType sets the "cause_type" field.
func (u *InboxSignalUpsertBulk) SetCauseType(v string) *InboxSignalUpsertBulk {
	return u.Update(func(s *InboxSignalUpsert) {
		s.SetCauseType(v)
	})
}

// UpdateCauseType sets the "cause_type" field to the value that was provided on create.
func (u *InboxSignalUpsertBulk) UpdateCauseType() *InboxSignalUpsertBulk {
	return u.Update(func(s *InboxSignalUpsert) {
		s.UpdateCauseType()
	})
}

// SetCanonicalCauseID sets the "canonical_cause_id" field.
func (u *InboxSignalUpsertBulk) SetCanonicalCauseID(v string) *InboxSignalUpsertBulk {
	return u.Update(func(s *InboxSignalUpsert) {
		s.SetCanonicalCauseID(v)
	})
}

// UpdateCanonicalCauseID sets the "canonical_cause_id" field to the value that was provided on create.
func (u *InboxSignalUpsertBulk) UpdateCanonicalCauseID() *InboxSignalUpsertBulk {
	return u.Update(func(s *InboxSignalUpsert) {
		s.UpdateCanonicalCauseID()
	})
}

// SetCauseIdentityVersion sets the "cause_identity_version" field.
func (u *InboxSignalUpsertBulk) SetCauseIdentityVersion(v int) *InboxSignalUpsertBulk {
	return u.Update(func(s *InboxSignalUpsert) {
		s.SetCauseIdentityVersion(v)
	})
}

// AddCauseIdentityVersion adds v to the "cause_identity_version" field.
func (u *InboxSignalUpsertBulk) AddCauseIdentityVersion(v int) *InboxSignalUpsertBulk {
	return u.Update(func(s *InboxSignalUpsert) {
		s.AddCauseIdentityVersion(v)
	})
}

// UpdateCauseIdentityVersion sets the "cause_identity_version" field to the value that was provided on create.
func (u *InboxSignalUpsertBulk) UpdateCauseIdentityVersion() *InboxSignalUpsertBulk {
	return u.Update(func(s *InboxSignalUpsert) {
		s.UpdateCauseIdentityVersion()
	})
}

// SetPayload sets the "payload" field.
func (u *InboxSignalUpsertBulk) SetPayload(v map[string]interface{}) *InboxSignalUpsertBulk {
	return u.Update(func(s *InboxSignalUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *InboxSignalUpsertBulk) UpdatePayload() *InboxSignalUpsertBulk {
	return u.Update(func(s *InboxSignalUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *InboxSignalUpsertBulk) ClearPayload() *InboxSignalUpsertBulk {
	return u.Update(func(s *InboxSignalUpsert) {
		s.ClearPayload()
	})
}

// SetHeadSha sets the "head_sha" field.
func (u *InboxSignalUpsertBulk) SetHeadSha(v string) *InboxSignalUpsertBulk {
	return u.Update(func(s *InboxSignalUpsert) {
		s.SetHeadSha(v)
	})
}

// UpdateHeadSha sets the "head_sha" field to the value that was provided on create.
func (u *InboxSignalUpsertBulk) UpdateHeadSha() *InboxSignalUpsertBulk {
	return u.Update(func(s *InboxSignalUpsert) {
		s.UpdateHeadSha()
	})
}

// ClearHeadSha clears the value of the "head_sha" field.
func (u *InboxSignalUpsertBulk) ClearHeadSha() *InboxSignalUpsertBulk {
	return u.Update(func(s *InboxSignalUpsert) {
		s.ClearHeadSha()
	})
}

// SetReceivedAt sets the "received_at" field.
func (u *InboxSignalUpsertBulk) SetReceivedAt(v time.Time) *InboxSignalUpsertBulk {
	return u.Update(func(s *InboxSignalUpsert) {
		s.SetReceivedAt(v)
	})
}

// UpdateReceivedAt sets the "received_at" field to the value that was provided on create.
func (u *InboxSignalUpsertBulk) UpdateReceivedAt() *InboxSignalUpsertBulk {
	return u.Update(func(s *InboxSignalUpsert) {
		s.UpdateReceivedAt()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *InboxSignalUpsertBulk) SetProcessedAt(v time.Time) *InboxSignalUpsertBulk {
	return u.Update(func(s *InboxSignalUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *InboxSignalUpsertBulk) UpdateProcessedAt() *InboxSignalUpsertBulk {
	return u.Update(func(s *InboxSignalUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *InboxSignalUpsertBulk) ClearProcessedAt() *InboxSignalUpsertBulk {
	return u.Update(func(s *InboxSignalUpsert) {
		s.ClearProcessedAt()
	})
}

// Exec executes the query.
func (u *InboxSignalUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InboxSignalCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InboxSignalCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InboxSignalUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
