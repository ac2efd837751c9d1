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
	"github.com/codeready-toolchain/loopd/ent/phaseartifact"
	"github.com/codeready-toolchain/loopd/ent/plantask"
)

// PhaseArtifactCreate is the builder for creating a PhaseArtifact entity.
type PhaseArtifactCreate struct {
	config
	mutation *PhaseArtifactMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLoopID sets the "loop_id" field.
func (_c *PhaseArtifactCreate) SetLoopID(v string) *PhaseArtifactCreate {
	_c.mutation.SetLoopID(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *PhaseArtifactCreate) SetPhase(v phaseartifact.Phase) *PhaseArtifactCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetArtifactType sets the "artifact_type" field.
func (_c *PhaseArtifactCreate) SetArtifactType(v string) *PhaseArtifactCreate {
	_c.mutation.SetArtifactType(v)
	return _c
}

// SetHeadSha sets the "head_sha" field.
func (_c *PhaseArtifactCreate) SetHeadSha(v string) *PhaseArtifactCreate {
	_c.mutation.SetHeadSha(v)
	return _c
}

// SetNillableHeadSha sets the "head_sha" field if the given value is not nil.
func (_c *PhaseArtifactCreate) SetNillableHeadSha(v *string) *PhaseArtifactCreate {
	if v != nil {
		_c.SetHeadSha(*v)
	}
	return _c
}

// SetLoopVersion sets the "loop_version" field.
func (_c *PhaseArtifactCreate) SetLoopVersion(v int) *PhaseArtifactCreate {
	_c.mutation.SetLoopVersion(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PhaseArtifactCreate) SetStatus(v phaseartifact.Status) *PhaseArtifactCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PhaseArtifactCreate) SetNillableStatus(v *phaseartifact.Status) *PhaseArtifactCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetGeneratedBy sets the "generated_by" field.
func (_c *PhaseArtifactCreate) SetGeneratedBy(v string) *PhaseArtifactCreate {
	_c.mutation.SetGeneratedBy(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *PhaseArtifactCreate) SetPayload(v map[string]interface{}) *PhaseArtifactCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetApprovedByUserID sets the "approved_by_user_id" field.
func (_c *PhaseArtifactCreate) SetApprovedByUserID(v string) *PhaseArtifactCreate {
	_c.mutation.SetApprovedByUserID(v)
	return _c
}

// SetNillableApprovedByUserID sets the "approved_by_user_id" field if the given value is not nil.
func (_c *PhaseArtifactCreate) SetNillableApprovedByUserID(v *string) *PhaseArtifactCreate {
	if v != nil {
		_c.SetApprovedByUserID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PhaseArtifactCreate) SetCreatedAt(v time.Time) *PhaseArtifactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PhaseArtifactCreate) SetNillableCreatedAt(v *time.Time) *PhaseArtifactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PhaseArtifactCreate) SetUpdatedAt(v time.Time) *PhaseArtifactCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PhaseArtifactCreate) SetNillableUpdatedAt(v *time.Time) *PhaseArtifactCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PhaseArtifactCreate) SetID(v string) *PhaseArtifactCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetLoop sets the "loop" edge to the Loop entity.
func (_c *PhaseArtifactCreate) SetLoop(v *Loop) *PhaseArtifactCreate {
	return _c.SetLoopID(v.ID)
}

// AddTaskIDs adds the "tasks" edge to the PlanTask entity by IDs.
func (_c *PhaseArtifactCreate) AddTaskIDs(ids ...string) *PhaseArtifactCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the PlanTask entity.
func (_c *PhaseArtifactCreate) AddTasks(v ...*PlanTask) *PhaseArtifactCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// Mutation returns the PhaseArtifactMutation object of the builder.
func (_c *PhaseArtifactCreate) Mutation() *PhaseArtifactMutation {
	return _c.mutation
}

// Save creates the PhaseArtifact in the database.
func (_c *PhaseArtifactCreate) Save(ctx context.Context) (*PhaseArtifact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PhaseArtifactCreate) SaveX(ctx context.Context) *PhaseArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhaseArtifactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhaseArtifactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PhaseArtifactCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := phaseartifact.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := phaseartifact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := phaseartifact.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PhaseArtifactCreate) check() error {
	if _, ok := _c.mutation.LoopID(); !ok {
		return &ValidationError{Name: "loop_id", err: errors.New(`ent: missing required field "PhaseArtifact.loop_id"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "PhaseArtifact.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := phaseartifact.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "PhaseArtifact.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ArtifactType(); !ok {
		return &ValidationError{Name: "artifact_type", err: errors.New(`ent: missing required field "PhaseArtifact.artifact_type"`)}
	}
	if _, ok := _c.mutation.LoopVersion(); !ok {
		return &ValidationError{Name: "loop_version", err: errors.New(`ent: missing required field "PhaseArtifact.loop_version"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PhaseArtifact.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := phaseartifact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PhaseArtifact.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GeneratedBy(); !ok {
		return &ValidationError{Name: "generated_by", err: errors.New(`ent: missing required field "PhaseArtifact.generated_by"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PhaseArtifact.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PhaseArtifact.updated_at"`)}
	}
	if len(_c.mutation.LoopIDs()) == 0 {
		return &ValidationError{Name: "loop", err: errors.New(`ent: missing required edge "PhaseArtifact.loop"`)}
	}
	return nil
}

func (_c *PhaseArtifactCreate) sqlSave(ctx context.Context) (*PhaseArtifact, error) {
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
			return nil, fmt.Errorf("unexpected PhaseArtifact.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PhaseArtifactCreate) createSpec() (*PhaseArtifact, *sqlgraph.CreateSpec) {
	var (
		_node = &PhaseArtifact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(phaseartifact.Table, sqlgraph.NewFieldSpec(phaseartifact.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(phaseartifact.FieldPhase, field.TypeEnum, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.ArtifactType(); ok {
		_spec.SetField(phaseartifact.FieldArtifactType, field.TypeString, value)
		_node.ArtifactType = value
	}
	if value, ok := _c.mutation.HeadSha(); ok {
		_spec.SetField(phaseartifact.FieldHeadSha, field.TypeString, value)
		_node.HeadSha = &value
	}
	if value, ok := _c.mutation.LoopVersion(); ok {
		_spec.SetField(phaseartifact.FieldLoopVersion, field.TypeInt, value)
		_node.LoopVersion = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(phaseartifact.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.GeneratedBy(); ok {
		_spec.SetField(phaseartifact.FieldGeneratedBy, field.TypeString, value)
		_node.GeneratedBy = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(phaseartifact.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.ApprovedByUserID(); ok {
		_spec.SetField(phaseartifact.FieldApprovedByUserID, field.TypeString, value)
		_node.ApprovedByUserID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(phaseartifact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(phaseartifact.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LoopIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   phaseartifact.LoopTable,
			Columns: []string{phaseartifact.LoopColumn},
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
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   phaseartifact.TasksTable,
			Columns: []string{phaseartifact.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plantask.FieldID, field.TypeString),
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
//	client.PhaseArtifact.Create().
//		SetLoopID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PhaseArtifactUpsert) {
//			SetLoopID(v+v).
//		}).
//		Exec(ctx)
func (_c *PhaseArtifactCreate) OnConflict(opts ...sql.ConflictOption) *PhaseArtifactUpsertOne {
	_c.conflict = opts
	return &PhaseArtifactUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PhaseArtifact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PhaseArtifactCreate) OnConflictColumns(columns ...string) *PhaseArtifactUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PhaseArtifactUpsertOne{
		create: _c,
	}
}

type (
	// PhaseArtifactUpsertOne is the builder for "upsert"-ing
	//  one PhaseArtifact node.
	PhaseArtifactUpsertOne struct {
		create *PhaseArtifactCreate
	}

	// PhaseArtifactUpsert is the "OnConflict" setter.
	PhaseArtifactUpsert struct {
		*sql.UpdateSet
	}
)

// SetLoopID sets the "loop_id" field.
func (u *PhaseArtifactUpsert) SetLoopID(v string) *PhaseArtifactUpsert {
	u.Set(phaseartifact.FieldLoopID, v)
	return u
}

// UpdateLoopID sets the "loop_id" field to the value that was provided on create.
func (u *PhaseArtifactUpsert) UpdateLoopID() *PhaseArtifactUpsert {
	u.SetExcluded(phaseartifact.FieldLoopID)
	return u
}

// SetPhase sets the "phase" field.
func (u *PhaseArtifactUpsert) SetPhase(v phaseartifact.Phase) *PhaseArtifactUpsert {
	u.Set(phaseartifact.FieldPhase, v)
	return u
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *PhaseArtifactUpsert) UpdatePhase() *PhaseArtifactUpsert {
	u.SetExcluded(phaseartifact.FieldPhase)
	return u
}

// SetArtifactType sets the "artifact_type" field.
func (u *PhaseArtifactUpsert) SetArtifactType(v string) *PhaseArtifactUpsert {
	u.Set(phaseartifact.FieldArtifactType, v)
	return u
}

// UpdateArtifactType sets the "artifact_type" field to the value that was provided on create.
func (u *PhaseArtifactUpsert) UpdateArtifactType() *PhaseArtifactUpsert {
	u.SetExcluded(phaseartifact.FieldArtifactType)
	return u
}

// SetHeadSha sets the "head_sha" field.
func (u *PhaseArtifactUpsert) SetHeadSha(v string) *PhaseArtifactUpsert {
	u.Set(phaseartifact.FieldHeadSha, v)
	return u
}

// UpdateHeadSha sets the "head_sha" field to the value that was provided on create.
func (u *PhaseArtifactUpsert) UpdateHeadSha() *PhaseArtifactUpsert {
	u.SetExcluded(phaseartifact.FieldHeadSha)
	return u
}

// ClearHeadSha clears the value of the "head_sha" field.
func (u *PhaseArtifactUpsert) ClearHeadSha() *PhaseArtifactUpsert {
	u.SetNull(phaseartifact.FieldHeadSha)
	return u
}

// SetLoopVersion sets the "loop_version" field.
func (u *PhaseArtifactUpsert) SetLoopVersion(v int) *PhaseArtifactUpsert {
	u.Set(phaseartifact.FieldLoopVersion, v)
	return u
}

// UpdateLoopVersion sets the "loop_version" field to the value that was provided on create.
func (u *PhaseArtifactUpsert) UpdateLoopVersion() *PhaseArtifactUpsert {
	u.SetExcluded(phaseartifact.FieldLoopVersion)
	return u
}

// AddLoopVersion adds v to the "loop_version" field.
func (u *PhaseArtifactUpsert) AddLoopVersion(v int) *PhaseArtifactUpsert {
	u.Add(phaseartifact.FieldLoopVersion, v)
	return u
}

// SetStatus sets the "status" field.
func (u *PhaseArtifactUpsert) SetStatus(v phaseartifact.Status) *PhaseArtifactUpsert {
	u.Set(phaseartifact.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PhaseArtifactUpsert) UpdateStatus() *PhaseArtifactUpsert {
	u.SetExcluded(phaseartifact.FieldStatus)
	return u
}

// SetGeneratedBy sets the "generated_by" field.
func (u *PhaseArtifactUpsert) SetGeneratedBy(v string) *PhaseArtifactUpsert {
	u.Set(phaseartifact.FieldGeneratedBy, v)
	return u
}

// UpdateGeneratedBy sets the "generated_by" field to the value that was provided on create.
func (u *PhaseArtifactUpsert) UpdateGeneratedBy() *PhaseArtifactUpsert {
	u.SetExcluded(phaseartifact.FieldGeneratedBy)
	return u
}

// SetPayload sets the "payload" field.
func (u *PhaseArtifactUpsert) SetPayload(v map[string]interface{}) *PhaseArtifactUpsert {
	u.Set(phaseartifact.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *PhaseArtifactUpsert) UpdatePayload() *PhaseArtifactUpsert {
	u.SetExcluded(phaseartifact.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *PhaseArtifactUpsert) ClearPayload() *PhaseArtifactUpsert {
	u.SetNull(phaseartifact.FieldPayload)
	return u
}

// SetApprovedByUserID sets the "approved_by_user_id" field.
func (u *PhaseArtifactUpsert) SetApprovedByUserID(v string) *PhaseArtifactUpsert {
	u.Set(phaseartifact.FieldApprovedByUserID, v)
	return u
}

// UpdateApprovedByUserID sets the "approved_by_user_id" field to the value that was provided on create.
func (u *PhaseArtifactUpsert) UpdateApprovedByUserID() *PhaseArtifactUpsert {
	u.SetExcluded(phaseartifact.FieldApprovedByUserID)
	return u
}

// ClearApprovedByUserID clears the value of the "approved_by_user_id" field.
func (u *PhaseArtifactUpsert) ClearApprovedByUserID() *PhaseArtifactUpsert {
	u.SetNull(phaseartifact.FieldApprovedByUserID)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *PhaseArtifactUpsert) SetCreatedAt(v time.Time) *PhaseArtifactUpsert {
	u.Set(phaseartifact.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PhaseArtifactUpsert) UpdateCreatedAt() *PhaseArtifactUpsert {
	u.SetExcluded(phaseartifact.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PhaseArtifactUpsert) SetUpdatedAt(v time.Time) *PhaseArtifactUpsert {
	u.Set(phaseartifact.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PhaseArtifactUpsert) UpdateUpdatedAt() *PhaseArtifactUpsert {
	u.SetExcluded(phaseartifact.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PhaseArtifact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(phaseartifact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PhaseArtifactUpsertOne) UpdateNewValues() *PhaseArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(phaseartifact.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PhaseArtifact.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PhaseArtifactUpsertOne) Ignore() *PhaseArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PhaseArtifactUpsertOne) DoNothing() *PhaseArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PhaseArtifactCreate.OnConflict
// documentation for more info.
func (u *PhaseArtifactUpsertOne) Update(set func(*PhaseArtifactUpsert)) *PhaseArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PhaseArtifactUpsert{UpdateSet: update})
	}))
	return u
}

// SetLoopID sets the "loop_id" field.
func (u *PhaseArtifactUpsertOne) SetLoopID(v string) *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetLoopID(v)
	})
}

// UpdateLoopID sets the "loop_id" field to the value that was provided on create.
func (u *PhaseArtifactUpsertOne) UpdateLoopID() *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdateLoopID()
	})
}

// SetPhase sets the "phase" field.
func (u *PhaseArtifactUpsertOne) SetPhase(v phaseartifact.Phase) *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *PhaseArtifactUpsertOne) UpdatePhase() *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdatePhase()
	})
}

// SetArtifactType sets the "artifact_type" field.
func (u *PhaseArtifactUpsertOne) SetArtifactType(v string) *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetArtifactType(v)
	})
}

// UpdateArtifactType sets the "artifact_type" field to the value that was provided on create.
func (u *PhaseArtifactUpsertOne) UpdateArtifactType() *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdateArtifactType()
	})
}

// SetHeadSha sets the "head_sha" field.
func (u *PhaseArtifactUpsertOne) SetHeadSha(v string) *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetHeadSha(v)
	})
}

// UpdateHeadSha sets the "head_sha" field to the value that was provided on create.
func (u *PhaseArtifactUpsertOne) UpdateHeadSha() *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdateHeadSha()
	})
}

// ClearHeadSha clears the value of the "head_sha" field.
func (u *PhaseArtifactUpsertOne) ClearHeadSha() *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.ClearHeadSha()
	})
}

// SetLoopVersion sets the "loop_version" field.
func (u *PhaseArtifactUpsertOne) SetLoopVersion(v int) *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetLoopVersion(v)
	})
}

// AddLoopVersion adds v to the "loop_version" field.
func (u *PhaseArtifactUpsertOne) AddLoopVersion(v int) *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.AddLoopVersion(v)
	})
}

// UpdateLoopVersion sets the "loop_version" field to the value that was provided on create.
func (u *PhaseArtifactUpsertOne) UpdateLoopVersion() *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdateLoopVersion()
	})
}

// SetStatus sets the "status" field.
func (u *PhaseArtifactUpsertOne) SetStatus(v phaseartifact.Status) *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PhaseArtifactUpsertOne) UpdateStatus() *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdateStatus()
	})
}

// SetGeneratedBy sets the "generated_by" field.
func (u *PhaseArtifactUpsertOne) SetGeneratedBy(v string) *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetGeneratedBy(v)
	})
}

// UpdateGeneratedBy sets the "generated_by" field to the value that was provided on create.
func (u *PhaseArtifactUpsertOne) UpdateGeneratedBy() *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdateGeneratedBy()
	})
}

// SetPayload sets the "payload" field.
func (u *PhaseArtifactUpsertOne) SetPayload(v map[string]interface{}) *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *PhaseArtifactUpsertOne) UpdatePayload() *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *PhaseArtifactUpsertOne) ClearPayload() *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.ClearPayload()
	})
}

// SetApprovedByUserID sets the "approved_by_user_id" field.
func (u *PhaseArtifactUpsertOne) SetApprovedByUserID(v string) *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetApprovedByUserID(v)
	})
}

// UpdateApprovedByUserID sets the "approved_by_user_id" field to the value that was provided on create.
func (u *PhaseArtifactUpsertOne) UpdateApprovedByUserID() *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdateApprovedByUserID()
	})
}

// ClearApprovedByUserID clears the value of the "approved_by_user_id" field.
func (u *PhaseArtifactUpsertOne) ClearApprovedByUserID() *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.ClearApprovedByUserID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *PhaseArtifactUpsertOne) SetCreatedAt(v time.Time) *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PhaseArtifactUpsertOne) UpdateCreatedAt() *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PhaseArtifactUpsertOne) SetUpdatedAt(v time.Time) *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PhaseArtifactUpsertOne) UpdateUpdatedAt() *PhaseArtifactUpsertOne {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PhaseArtifactUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PhaseArtifactCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PhaseArtifactUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PhaseArtifactUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PhaseArtifactUpsertOne.ID is not supported by MySQL driver. Use PhaseArtifactUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PhaseArtifactUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PhaseArtifactCreateBulk is the builder for creating many PhaseArtifact entities in bulk.
type PhaseArtifactCreateBulk struct {
	config
	err      error
	builders []*PhaseArtifactCreate
	conflict []sql.ConflictOption
}

// Save creates the PhaseArtifact entities in the database.
func (_c *PhaseArtifactCreateBulk) Save(ctx context.Context) ([]*PhaseArtifact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PhaseArtifact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PhaseArtifactMutation)
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
func (_c *PhaseArtifactCreateBulk) SaveX(ctx context.Context) []*PhaseArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhaseArtifactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhaseArtifactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PhaseArtifact.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PhaseArtifactUpsert) {
//			SetLoopID(v+v).
//		}).
//		Exec(ctx)
func (_c *PhaseArtifactCreateBulk) OnConflict(opts ...sql.ConflictOption) *PhaseArtifactUpsertBulk {
	_c.conflict = opts
	return &PhaseArtifactUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PhaseArtifact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PhaseArtifactCreateBulk) OnConflictColumns(columns ...string) *PhaseArtifactUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PhaseArtifactUpsertBulk{
		create: _c,
	}
}

// PhaseArtifactUpsertBulk is the builder for "upsert"-ing
// a bulk of PhaseArtifact nodes.
type PhaseArtifactUpsertBulk struct {
	create *PhaseArtifactCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PhaseArtifact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(phaseartifact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PhaseArtifactUpsertBulk) UpdateNewValues() *PhaseArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(phaseartifact.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PhaseArtifact.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PhaseArtifactUpsertBulk) Ignore() *PhaseArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PhaseArtifactUpsertBulk) DoNothing() *PhaseArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PhaseArtifactCreateBulk.OnConflict
// documentation for more info.
func (u *PhaseArtifactUpsertBulk) Update(set func(*PhaseArtifactUpsert)) *PhaseArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PhaseArtifactUpsert{UpdateSet: update})
	}))
	return u
}

// SetLoopID sets the "loop_id" field.
func (u *PhaseArtifactUpsertBulk) SetLoopID(v string) *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetLoopID(v)
	})
}

// UpdateLoopID sets the "loop_id" field to the value that was provided on create.
func (u *PhaseArtifactUpsertBulk) UpdateLoopID() *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdateLoopID()
	})
}

// SetPhase sets the "phase" field.
func (u *PhaseArtifactUpsertBulk) SetPhase(v phaseartifact.Phase) *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *PhaseArtifactUpsertBulk) UpdatePhase() *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdatePhase()
	})
}

// SetArtifactType sets the "artifact_type" field.
func (u *PhaseArtifactUpsertBulk) SetArtifactType(v string) *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetArtifactType(v)
	})
}

// UpdateArtifactType sets the "artifact_type" field to the value that was provided on create.
func (u *PhaseArtifactUpsertBulk) UpdateArtifactType() *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdateArtifactType()
	})
}

// SetHeadSha sets the "head_sha" field.
func (u *PhaseArtifactUpsertBulk) SetHeadSha(v string) *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetHeadSha(v)
	})
}

// UpdateHeadSha sets the "head_sha" field to the value that was provided on create.
func (u *PhaseArtifactUpsertBulk) UpdateHeadSha() *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdateHeadSha()
	})
}

// ClearHeadSha clears the value of the "head_sha" field.
func (u *PhaseArtifactUpsertBulk) ClearHeadSha() *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.ClearHeadSha()
	})
}

// SetLoopVersion sets the "loop_version" field.
func (u *PhaseArtifactUpsertBulk) SetLoopVersion(v int) *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetLoopVersion(v)
	})
}

// AddLoopVersion adds v to the "loop_version" field.
func (u *PhaseArtifactUpsertBulk) AddLoopVersion(v int) *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.AddLoopVersion(v)
	})
}

// UpdateLoopVersion sets the "loop_version" field to the value that was provided on create.
func (u *PhaseArtifactUpsertBulk) UpdateLoopVersion() *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdateLoopVersion()
	})
}

// SetStatus sets the "status" field.
func (u *PhaseArtifactUpsertBulk) SetStatus(v phaseartifact.Status) *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PhaseArtifactUpsertBulk) UpdateStatus() *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdateStatus()
	})
}

// SetGeneratedBy sets the "generated_by" field.
func (u *PhaseArtifactUpsertBulk) SetGeneratedBy(v string) *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetGeneratedBy(v)
	})
}

// UpdateGeneratedBy sets the "generated_by" field to the value that was provided on create.
func (u *PhaseArtifactUpsertBulk) UpdateGeneratedBy() *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdateGeneratedBy()
	})
}

// SetPayload sets the "payload" field.
func (u *PhaseArtifactUpsertBulk) SetPayload(v map[string]interface{}) *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *PhaseArtifactUpsertBulk) UpdatePayload() *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *PhaseArtifactUpsertBulk) ClearPayload() *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.ClearPayload()
	})
}

// SetApprovedByUserID sets the "approved_by_user_id" field.
func (u *PhaseArtifactUpsertBulk) SetApprovedByUserID(v string) *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetApprovedByUserID(v)
	})
}

// UpdateApprovedByUserID sets the "approved_by_user_id" field to the value that was provided on create.
func (u *PhaseArtifactUpsertBulk) UpdateApprovedByUserID() *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdateApprovedByUserID()
	})
}

// ClearApprovedByUserID clears the value of the "approved_by_user_id" field.
func (u *PhaseArtifactUpsertBulk) ClearApprovedByUserID() *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.ClearApprovedByUserID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *PhaseArtifactUpsertBulk) SetCreatedAt(v time.Time) *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PhaseArtifactUpsertBulk) UpdateCreatedAt() *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PhaseArtifactUpsertBulk) SetUpdatedAt(v time.Time) *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PhaseArtifactUpsertBulk) UpdateUpdatedAt() *PhaseArtifactUpsertBulk {
	return u.Update(func(s *PhaseArtifactUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PhaseArtifactUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PhaseArtifactCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PhaseArtifactCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PhaseArtifactUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
