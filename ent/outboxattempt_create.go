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
	"github.com/codeready-toolchain/loopd/ent/outboxaction"
	"github.com/codeready-toolchain/loopd/ent/outboxattempt"
)

// OutboxAttemptCreate is the builder for creating a OutboxAttempt entity.
type OutboxAttemptCreate struct {
	config
	mutation *OutboxAttemptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOutboxID sets the "outbox_id" field.
func (_c *OutboxAttemptCreate) SetOutboxID(v string) *OutboxAttemptCreate {
	_c.mutation.SetOutboxID(v)
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *OutboxAttemptCreate) SetAttempt(v int) *OutboxAttemptCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *OutboxAttemptCreate) SetStatus(v outboxattempt.Status) *OutboxAttemptCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrorClass sets the "error_class" field.
func (_c *OutboxAttemptCreate) SetErrorClass(v string) *OutboxAttemptCreate {
	_c.mutation.SetErrorClass(v)
	return _c
}

// SetNillableErrorClass sets the "error_class" field if the given value is not nil.
func (_c *OutboxAttemptCreate) SetNillableErrorClass(v *string) *OutboxAttemptCreate {
	if v != nil {
		_c.SetErrorClass(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *OutboxAttemptCreate) SetErrorCode(v string) *OutboxAttemptCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *OutboxAttemptCreate) SetNillableErrorCode(v *string) *OutboxAttemptCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *OutboxAttemptCreate) SetErrorMessage(v string) *OutboxAttemptCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *OutboxAttemptCreate) SetNillableErrorMessage(v *string) *OutboxAttemptCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRetryAt sets the "retry_at" field.
func (_c *OutboxAttemptCreate) SetRetryAt(v time.Time) *OutboxAttemptCreate {
	_c.mutation.SetRetryAt(v)
	return _c
}

// SetNillableRetryAt sets the "retry_at" field if the given value is not nil.
func (_c *OutboxAttemptCreate) SetNillableRetryAt(v *time.Time) *OutboxAttemptCreate {
	if v != nil {
		_c.SetRetryAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OutboxAttemptCreate) SetCreatedAt(v time.Time) *OutboxAttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OutboxAttemptCreate) SetNillableCreatedAt(v *time.Time) *OutboxAttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OutboxAttemptCreate) SetID(v string) *OutboxAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetActionID sets the "action" edge to the OutboxAction entity by ID.
func (_c *OutboxAttemptCreate) SetActionID(id string) *OutboxAttemptCreate {
	_c.mutation.SetActionID(id)
	return _c
}

// SetAction sets the "action" edge to the OutboxAction entity.
func (_c *OutboxAttemptCreate) SetAction(v *OutboxAction) *OutboxAttemptCreate {
	return _c.SetActionID(v.ID)
}

// Mutation returns the OutboxAttemptMutation object of the builder.
func (_c *OutboxAttemptCreate) Mutation() *OutboxAttemptMutation {
	return _c.mutation
}

// Save creates the OutboxAttempt in the database.
func (_c *OutboxAttemptCreate) Save(ctx context.Context) (*OutboxAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OutboxAttemptCreate) SaveX(ctx context.Context) *OutboxAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutboxAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutboxAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OutboxAttemptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := outboxattempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OutboxAttemptCreate) check() error {
	if _, ok := _c.mutation.OutboxID(); !ok {
		return &ValidationError{Name: "outbox_id", err: errors.New(`ent: missing required field "OutboxAttempt.outbox_id"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "OutboxAttempt.attempt"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "OutboxAttempt.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := outboxattempt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OutboxAttempt.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OutboxAttempt.created_at"`)}
	}
	if len(_c.mutation.ActionIDs()) == 0 {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required edge "OutboxAttempt.action"`)}
	}
	return nil
}

func (_c *OutboxAttemptCreate) sqlSave(ctx context.Context) (*OutboxAttempt, error) {
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
			return nil, fmt.Errorf("unexpected OutboxAttempt.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OutboxAttemptCreate) createSpec() (*OutboxAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &OutboxAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(outboxattempt.Table, sqlgraph.NewFieldSpec(outboxattempt.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(outboxattempt.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(outboxattempt.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorClass(); ok {
		_spec.SetField(outboxattempt.FieldErrorClass, field.TypeString, value)
		_node.ErrorClass = &value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(outboxattempt.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(outboxattempt.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.RetryAt(); ok {
		_spec.SetField(outboxattempt.FieldRetryAt, field.TypeTime, value)
		_node.RetryAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(outboxattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ActionIDs(); len(nodes) > 0 {
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
		_node.OutboxID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OutboxAttempt.Create().
//		SetOutboxID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OutboxAttemptUpsert) {
//			SetOutboxID(v+v).
//		}).
//		Exec(ctx)
func (_c *OutboxAttemptCreate) OnConflict(opts ...sql.ConflictOption) *OutboxAttemptUpsertOne {
	_c.conflict = opts
	return &OutboxAttemptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OutboxAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OutboxAttemptCreate) OnConflictColumns(columns ...string) *OutboxAttemptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OutboxAttemptUpsertOne{
		create: _c,
	}
}

type (
	// OutboxAttemptUpsertOne is the builder for "upsert"-ing
	//  one OutboxAttempt node.
	OutboxAttemptUpsertOne struct {
		create *OutboxAttemptCreate
	}

	// OutboxAttemptUpsert is the "OnConflict" setter.
	OutboxAttemptUpsert struct {
		*sql.UpdateSet
	}
)

// SetOutboxID sets the "outbox_id" field.
func (u *OutboxAttemptUpsert) SetOutboxID(v string) *OutboxAttemptUpsert {
	u.Set(outboxattempt.FieldOutboxID, v)
	return u
}

// UpdateOutboxID sets the "outbox_id" field to the value that was provided on create.
func (u *OutboxAttemptUpsert) UpdateOutboxID() *OutboxAttemptUpsert {
	u.SetExcluded(outboxattempt.FieldOutboxID)
	return u
}

// SetAttempt sets the "attempt" field.
func (u *OutboxAttemptUpsert) SetAttempt(v int) *OutboxAttemptUpsert {
	u.Set(outboxattempt.FieldAttempt, v)
	return u
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *OutboxAttemptUpsert) UpdateAttempt() *OutboxAttemptUpsert {
	u.SetExcluded(outboxattempt.FieldAttempt)
	return u
}

// AddAttempt adds v to the "attempt" field.
func (u *OutboxAttemptUpsert) AddAttempt(v int) *OutboxAttemptUpsert {
	u.Add(outboxattempt.FieldAttempt, v)
	return u
}

// SetStatus sets the "status" field.
func (u *OutboxAttemptUpsert) SetStatus(v outboxattempt.Status) *OutboxAttemptUpsert {
	u.Set(outboxattempt.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OutboxAttemptUpsert) UpdateStatus() *OutboxAttemptUpsert {
	u.SetExcluded(outboxattempt.FieldStatus)
	return u
}

// SetErrorClass sets the "error_class" field.
func (u *OutboxAttemptUpsert) SetErrorClass(v string) *OutboxAttemptUpsert {
	u.Set(outboxattempt.FieldErrorClass, v)
	return u
}

// UpdateErrorClass sets the "error_class" field to the value that was provided on create.
func (u *OutboxAttemptUpsert) UpdateErrorClass() *OutboxAttemptUpsert {
	u.SetExcluded(outboxattempt.FieldErrorClass)
	return u
}

// ClearErrorClass clears the value of the "error_class" field.
func (u *OutboxAttemptUpsert) ClearErrorClass() *OutboxAttemptUpsert {
	u.SetNull(outboxattempt.FieldErrorClass)
	return u
}

// SetErrorCode sets the "error_code" field.
func (u *OutboxAttemptUpsert) SetErrorCode(v string) *OutboxAttemptUpsert {
	u.Set(outboxattempt.FieldErrorCode, v)
	return u
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *OutboxAttemptUpsert) UpdateErrorCode() *OutboxAttemptUpsert {
	u.SetExcluded(outboxattempt.FieldErrorCode)
	return u
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *OutboxAttemptUpsert) ClearErrorCode() *OutboxAttemptUpsert {
	u.SetNull(outboxattempt.FieldErrorCode)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *OutboxAttemptUpsert) SetErrorMessage(v string) *OutboxAttemptUpsert {
	u.Set(outboxattempt.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *OutboxAttemptUpsert) UpdateErrorMessage() *OutboxAttemptUpsert {
	u.SetExcluded(outboxattempt.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *OutboxAttemptUpsert) ClearErrorMessage() *OutboxAttemptUpsert {
	u.SetNull(outboxattempt.FieldErrorMessage)
	return u
}

// SetRetryAt sets the "retry_at" field.
func (u *OutboxAttemptUpsert) SetRetryAt(v time.Time) *OutboxAttemptUpsert {
	u.Set(outboxattempt.FieldRetryAt, v)
	return u
}

// UpdateRetryAt sets the "retry_at" field to the value that was provided on create.
func (u *OutboxAttemptUpsert) UpdateRetryAt() *OutboxAttemptUpsert {
	u.SetExcluded(outboxattempt.FieldRetryAt)
	return u
}

// ClearRetryAt clears the value of the "retry_at" field.
func (u *OutboxAttemptUpsert) ClearRetryAt() *OutboxAttemptUpsert {
	u.SetNull(outboxattempt.FieldRetryAt)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *OutboxAttemptUpsert) SetCreatedAt(v time.Time) *OutboxAttemptUpsert {
	u.Set(outboxattempt.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *OutboxAttemptUpsert) UpdateCreatedAt() *OutboxAttemptUpsert {
	u.SetExcluded(outboxattempt.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.OutboxAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(outboxattempt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OutboxAttemptUpsertOne) UpdateNewValues() *OutboxAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(outboxattempt.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OutboxAttempt.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OutboxAttemptUpsertOne) Ignore() *OutboxAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OutboxAttemptUpsertOne) DoNothing() *OutboxAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OutboxAttemptCreate.OnConflict
// documentation for more info.
func (u *OutboxAttemptUpsertOne) Update(set func(*OutboxAttemptUpsert)) *OutboxAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OutboxAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// SetOutboxID sets the "outbox_id" field.
func (u *OutboxAttemptUpsertOne) SetOutboxID(v string) *OutboxAttemptUpsertOne {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.SetOutboxID(v)
	})
}

// UpdateOutboxID sets the "outbox_id" field to the value that was provided on create.
func (u *OutboxAttemptUpsertOne) UpdateOutboxID() *OutboxAttemptUpsertOne {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.UpdateOutboxID()
	})
}

// SetAttempt sets the "attempt" field.
func (u *OutboxAttemptUpsertOne) SetAttempt(v int) *OutboxAttemptUpsertOne {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *OutboxAttemptUpsertOne) AddAttempt(v int) *OutboxAttemptUpsertOne {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *OutboxAttemptUpsertOne) UpdateAttempt() *OutboxAttemptUpsertOne {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.UpdateAttempt()
	})
}

// SetStatus sets the "status" field.
func (u *OutboxAttemptUpsertOne) SetStatus(v outboxattempt.Status) *OutboxAttemptUpsertOne {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OutboxAttemptUpsertOne) UpdateStatus() *OutboxAttemptUpsertOne {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorClass sets the "error_class" field.
func (u *OutboxAttemptUpsertOne) SetErrorClass(v string) *OutboxAttemptUpsertOne {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.SetErrorClass(v)
	})
}

// UpdateErrorClass sets the "error_class" field to the value that was provided on create.
func (u *OutboxAttemptUpsertOne) UpdateErrorClass() *OutboxAttemptUpsertOne {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.UpdateErrorClass()
	})
}

// ClearErrorClass clears the value of the "error_class" field.
func (u *OutboxAttemptUpsertOne) ClearErrorClass() *OutboxAttemptUpsertOne {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.ClearErrorClass()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *OutboxAttemptUpsertOne) SetErrorCode(v string) *OutboxAttemptUpsertOne {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *OutboxAttemptUpsertOne) UpdateErrorCode() *OutboxAttemptUpsertOne {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *OutboxAttemptUpsertOne) ClearErrorCode() *OutboxAttemptUpsertOne {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.ClearErrorCode()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *OutboxAttemptUpsertOne) SetErrorMessage(v string) *OutboxAttemptUpsertOne {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *OutboxAttemptUpsertOne) UpdateErrorMessage() *OutboxAttemptUpsertOne {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *OutboxAttemptUpsertOne) ClearErrorMessage() *OutboxAttemptUpsertOne {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.ClearErrorMessage()
	})
}

// SetRetryAt sets the "retry_at" field.
func (u *OutboxAttemptUpsertOne) SetRetryAt(v time.Time) *OutboxAttemptUpsertOne {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.SetRetryAt(v)
	})
}

// UpdateRetryAt sets the "retry_at" field to the value that was provided on create.
func (u *OutboxAttemptUpsertOne) UpdateRetryAt() *OutboxAttemptUpsertOne {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.UpdateRetryAt()
	})
}

// ClearRetryAt clears the value of the "retry_at" field.
func (u *OutboxAttemptUpsertOne) ClearRetryAt() *OutboxAttemptUpsertOne {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.ClearRetryAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *OutboxAttemptUpsertOne) SetCreatedAt(v time.Time) *OutboxAttemptUpsertOne {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *OutboxAttemptUpsertOne) UpdateCreatedAt() *OutboxAttemptUpsertOne {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *OutboxAttemptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OutboxAttemptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OutboxAttemptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OutboxAttemptUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: OutboxAttemptUpsertOne.ID is not supported by MySQL driver. Use OutboxAttemptUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OutboxAttemptUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OutboxAttemptCreateBulk is the builder for creating many OutboxAttempt entities in bulk.
type OutboxAttemptCreateBulk struct {
	config
	err      error
	builders []*OutboxAttemptCreate
	conflict []sql.ConflictOption
}

// Save creates the OutboxAttempt entities in the database.
func (_c *OutboxAttemptCreateBulk) Save(ctx context.Context) ([]*OutboxAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OutboxAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OutboxAttemptMutation)
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
func (_c *OutboxAttemptCreateBulk) SaveX(ctx context.Context) []*OutboxAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutboxAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutboxAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OutboxAttempt.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OutboxAttemptUpsert) {
//			SetOutboxID(v+v).
//		}).
//		Exec(ctx)
func (_c *OutboxAttemptCreateBulk) OnConflict(opts ...sql.ConflictOption) *OutboxAttemptUpsertBulk {
	_c.conflict = opts
	return &OutboxAttemptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OutboxAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OutboxAttemptCreateBulk) OnConflictColumns(columns ...string) *OutboxAttemptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OutboxAttemptUpsertBulk{
		create: _c,
	}
}

// OutboxAttemptUpsertBulk is the builder for "upsert"-ing
// a bulk of OutboxAttempt nodes.
type OutboxAttemptUpsertBulk struct {
	create *OutboxAttemptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OutboxAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(outboxattempt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OutboxAttemptUpsertBulk) UpdateNewValues() *OutboxAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(outboxattempt.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OutboxAttempt.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OutboxAttemptUpsertBulk) Ignore() *OutboxAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OutboxAttemptUpsertBulk) DoNothing() *OutboxAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OutboxAttemptCreateBulk.OnConflict
// documentation for more info.
func (u *OutboxAttemptUpsertBulk) Update(set func(*OutboxAttemptUpsert)) *OutboxAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OutboxAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// SetOutboxID sets the "outbox_id" field.
func (u *OutboxAttemptUpsertBulk) SetOutboxID(v string) *OutboxAttemptUpsertBulk {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.SetOutboxID(v)
	})
}

// UpdateOutboxID sets the "outbox_id" field to the value that was provided on create.
func (u *OutboxAttemptUpsertBulk) UpdateOutboxID() *OutboxAttemptUpsertBulk {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.UpdateOutboxID()
	})
}

// SetAttempt sets the "attempt" field.
func (u *OutboxAttemptUpsertBulk) SetAttempt(v int) *OutboxAttemptUpsertBulk {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *OutboxAttemptUpsertBulk) AddAttempt(v int) *OutboxAttemptUpsertBulk {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *OutboxAttemptUpsertBulk) UpdateAttempt() *OutboxAttemptUpsertBulk {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.UpdateAttempt()
	})
}

// SetStatus sets the "status" field.
func (u *OutboxAttemptUpsertBulk) SetStatus(v outboxattempt.Status) *OutboxAttemptUpsertBulk {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OutboxAttemptUpsertBulk) UpdateStatus() *OutboxAttemptUpsertBulk {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorClass sets the "error_class" field.
func (u *OutboxAttemptUpsertBulk) SetErrorClass(v string) *OutboxAttemptUpsertBulk {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.SetErrorClass(v)
	})
}

// UpdateErrorClass sets the "error_class" field to the value that was provided on create.
func (u *OutboxAttemptUpsertBulk) UpdateErrorClass() *OutboxAttemptUpsertBulk {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.UpdateErrorClass()
	})
}

// ClearErrorClass clears the value of the "error_class" field.
func (u *OutboxAttemptUpsertBulk) ClearErrorClass() *OutboxAttemptUpsertBulk {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.ClearErrorClass()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *OutboxAttemptUpsertBulk) SetErrorCode(v string) *OutboxAttemptUpsertBulk {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *OutboxAttemptUpsertBulk) UpdateErrorCode() *OutboxAttemptUpsertBulk {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *OutboxAttemptUpsertBulk) ClearErrorCode() *OutboxAttemptUpsertBulk {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.ClearErrorCode()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *OutboxAttemptUpsertBulk) SetErrorMessage(v string) *OutboxAttemptUpsertBulk {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *OutboxAttemptUpsertBulk) UpdateErrorMessage() *OutboxAttemptUpsertBulk {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *OutboxAttemptUpsertBulk) ClearErrorMessage() *OutboxAttemptUpsertBulk {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.ClearErrorMessage()
	})
}

// SetRetryAt sets the "retry_at" field.
func (u *OutboxAttemptUpsertBulk) SetRetryAt(v time.Time) *OutboxAttemptUpsertBulk {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.SetRetryAt(v)
	})
}

// UpdateRetryAt sets the "retry_at" field to the value that was provided on create.
func (u *OutboxAttemptUpsertBulk) UpdateRetryAt() *OutboxAttemptUpsertBulk {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.UpdateRetryAt()
	})
}

// ClearRetryAt clears the value of the "retry_at" field.
func (u *OutboxAttemptUpsertBulk) ClearRetryAt() *OutboxAttemptUpsertBulk {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.ClearRetryAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *OutboxAttemptUpsertBulk) SetCreatedAt(v time.Time) *OutboxAttemptUpsertBulk {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *OutboxAttemptUpsertBulk) UpdateCreatedAt() *OutboxAttemptUpsertBulk {
	return u.Update(func(s *OutboxAttemptUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *OutboxAttemptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OutboxAttemptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OutboxAttemptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OutboxAttemptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
