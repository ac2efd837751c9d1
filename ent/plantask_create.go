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
	"github.com/codeready-toolchain/loopd/ent/phaseartifact"
	"github.com/codeready-toolchain/loopd/ent/plantask"
)

// PlanTaskCreate is the builder for creating a PlanTask entity.
type PlanTaskCreate struct {
	config
	mutation *PlanTaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetArtifactID sets the "artifact_id" field.
func (_c *PlanTaskCreate) SetArtifactID(v string) *PlanTaskCreate {
	_c.mutation.SetArtifactID(v)
	return _c
}

// SetStableTaskID sets the "stable_task_id" field.
func (_c *PlanTaskCreate) SetStableTaskID(v string) *PlanTaskCreate {
	_c.mutation.SetStableTaskID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *PlanTaskCreate) SetTitle(v string) *PlanTaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PlanTaskCreate) SetDescription(v string) *PlanTaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *PlanTaskCreate) SetNillableDescription(v *string) *PlanTaskCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (_c *PlanTaskCreate) SetAcceptanceCriteria(v []string) *PlanTaskCreate {
	_c.mutation.SetAcceptanceCriteria(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PlanTaskCreate) SetStatus(v plantask.Status) *PlanTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PlanTaskCreate) SetNillableStatus(v *plantask.Status) *PlanTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PlanTaskCreate) SetCompletedAt(v time.Time) *PlanTaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PlanTaskCreate) SetNillableCompletedAt(v *time.Time) *PlanTaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCompletedBy sets the "completed_by" field.
func (_c *PlanTaskCreate) SetCompletedBy(v plantask.CompletedBy) *PlanTaskCreate {
	_c.mutation.SetCompletedBy(v)
	return _c
}

// SetNillableCompletedBy sets the "completed_by" field if the given value is not nil.
func (_c *PlanTaskCreate) SetNillableCompletedBy(v *plantask.CompletedBy) *PlanTaskCreate {
	if v != nil {
		_c.SetCompletedBy(*v)
	}
	return _c
}

// SetCompletionEvidence sets the "completion_evidence" field.
func (_c *PlanTaskCreate) SetCompletionEvidence(v map[string]interface{}) *PlanTaskCreate {
	_c.mutation.SetCompletionEvidence(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlanTaskCreate) SetCreatedAt(v time.Time) *PlanTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlanTaskCreate) SetNillableCreatedAt(v *time.Time) *PlanTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PlanTaskCreate) SetID(v string) *PlanTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetArtifact sets the "artifact" edge to the PhaseArtifact entity.
func (_c *PlanTaskCreate) SetArtifact(v *PhaseArtifact) *PlanTaskCreate {
	return _c.SetArtifactID(v.ID)
}

// Mutation returns the PlanTaskMutation object of the builder.
func (_c *PlanTaskCreate) Mutation() *PlanTaskMutation {
	return _c.mutation
}

// Save creates the PlanTask in the database.
func (_c *PlanTaskCreate) Save(ctx context.Context) (*PlanTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanTaskCreate) SaveX(ctx context.Context) *PlanTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanTaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := plantask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := plantask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanTaskCreate) check() error {
	if _, ok := _c.mutation.ArtifactID(); !ok {
		return &ValidationError{Name: "artifact_id", err: errors.New(`ent: missing required field "PlanTask.artifact_id"`)}
	}
	if _, ok := _c.mutation.StableTaskID(); !ok {
		return &ValidationError{Name: "stable_task_id", err: errors.New(`ent: missing required field "PlanTask.stable_task_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "PlanTask.title"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PlanTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := plantask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PlanTask.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CompletedBy(); ok {
		if err := plantask.CompletedByValidator(v); err != nil {
			return &ValidationError{Name: "completed_by", err: fmt.Errorf(`ent: validator failed for field "PlanTask.completed_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PlanTask.created_at"`)}
	}
	if len(_c.mutation.ArtifactIDs()) == 0 {
		return &ValidationError{Name: "artifact", err: errors.New(`ent: missing required edge "PlanTask.artifact"`)}
	}
	return nil
}

func (_c *PlanTaskCreate) sqlSave(ctx context.Context) (*PlanTask, error) {
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
			return nil, fmt.Errorf("unexpected PlanTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlanTaskCreate) createSpec() (*PlanTask, *sqlgraph.CreateSpec) {
	var (
		_node = &PlanTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(plantask.Table, sqlgraph.NewFieldSpec(plantask.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StableTaskID(); ok {
		_spec.SetField(plantask.FieldStableTaskID, field.TypeString, value)
		_node.StableTaskID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(plantask.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(plantask.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.AcceptanceCriteria(); ok {
		_spec.SetField(plantask.FieldAcceptanceCriteria, field.TypeJSON, value)
		_node.AcceptanceCriteria = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(plantask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(plantask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CompletedBy(); ok {
		_spec.SetField(plantask.FieldCompletedBy, field.TypeEnum, value)
		_node.CompletedBy = &value
	}
	if value, ok := _c.mutation.CompletionEvidence(); ok {
		_spec.SetField(plantask.FieldCompletionEvidence, field.TypeJSON, value)
		_node.CompletionEvidence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(plantask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ArtifactIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   plantask.ArtifactTable,
			Columns: []string{plantask.ArtifactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(phaseartifact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ArtifactID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlanTask.Create().
//		SetArtifactID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlanTaskUpsert) {
//			SetArtifactID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlanTaskCreate) OnConflict(opts ...sql.ConflictOption) *PlanTaskUpsertOne {
	_c.conflict = opts
	return &PlanTaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlanTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlanTaskCreate) OnConflictColumns(columns ...string) *PlanTaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlanTaskUpsertOne{
		create: _c,
	}
}

type (
	// PlanTaskUpsertOne is the builder for "upsert"-ing
	//  one PlanTask node.
	PlanTaskUpsertOne struct {
		create *PlanTaskCreate
	}

	// PlanTaskUpsert is the "OnConflict" setter.
	PlanTaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetArtifactID sets the "artifact_id" field.
func (u *PlanTaskUpsert) SetArtifactID(v string) *PlanTaskUpsert {
	u.Set(plantask.FieldArtifactID, v)
	return u
}

// UpdateArtifactID sets the "artifact_id" field to the value that was provided on create.
func (u *PlanTaskUpsert) UpdateArtifactID() *PlanTaskUpsert {
	u.SetExcluded(plantask.FieldArtifactID)
	return u
}

// SetStableTaskID sets the "stable_task_id" field.
func (u *PlanTaskUpsert) SetStableTaskID(v string) *PlanTaskUpsert {
	u.Set(plantask.FieldStableTaskID, v)
	return u
}

// UpdateStableTaskID sets the "stable_task_id" field to the value that was provided on create.
func (u *PlanTaskUpsert) UpdateStableTaskID() *PlanTaskUpsert {
	u.SetExcluded(plantask.FieldStableTaskID)
	return u
}

// SetTitle sets the "title" field.
func (u *PlanTaskUpsert) SetTitle(v string) *PlanTaskUpsert {
	u.Set(plantask.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PlanTaskUpsert) UpdateTitle() *PlanTaskUpsert {
	u.SetExcluded(plantask.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *PlanTaskUpsert) SetDescription(v string) *PlanTaskUpsert {
	u.Set(plantask.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PlanTaskUpsert) UpdateDescription() *PlanTaskUpsert {
	u.SetExcluded(plantask.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *PlanTaskUpsert) ClearDescription() *PlanTaskUpsert {
	u.SetNull(plantask.FieldDescription)
	return u
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (u *PlanTaskUpsert) SetAcceptanceCriteria(v []string) *PlanTaskUpsert {
	u.Set(plantask.FieldAcceptanceCriteria, v)
	return u
}

// UpdateAcceptanceCriteria sets the "acceptance_criteria" field to the value that was provided on create.
func (u *PlanTaskUpsert) UpdateAcceptanceCriteria() *PlanTaskUpsert {
	u.SetExcluded(plantask.FieldAcceptanceCriteria)
	return u
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (u *PlanTaskUpsert) ClearAcceptanceCriteria() *PlanTaskUpsert {
	u.SetNull(plantask.FieldAcceptanceCriteria)
	return u
}

// SetStatus sets the "status" field.
func (u *PlanTaskUpsert) SetStatus(v plantask.Status) *PlanTaskUpsert {
	u.Set(plantask.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PlanTaskUpsert) UpdateStatus() *PlanTaskUpsert {
	u.SetExcluded(plantask.FieldStatus)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *PlanTaskUpsert) SetCompletedAt(v time.Time) *PlanTaskUpsert {
	u.Set(plantask.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PlanTaskUpsert) UpdateCompletedAt() *PlanTaskUpsert {
	u.SetExcluded(plantask.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PlanTaskUpsert) ClearCompletedAt() *PlanTaskUpsert {
	u.SetNull(plantask.FieldCompletedAt)
	return u
}

// SetCompletedBy sets the "completed_by" field.
func (u *PlanTaskUpsert) SetCompletedBy(v plantask.CompletedBy) *PlanTaskUpsert {
	u.Set(plantask.FieldCompletedBy, v)
	return u
}

// UpdateCompletedBy sets the "completed_by" field to the value that was provided on create.
func (u *PlanTaskUpsert) UpdateCompletedBy() *PlanTaskUpsert {
	u.SetExcluded(plantask.FieldCompletedBy)
	return u
}

// ClearCompletedBy clears the value of the "completed_by" field.
func (u *PlanTaskUpsert) ClearCompletedBy() *PlanTaskUpsert {
	u.SetNull(plantask.FieldCompletedBy)
	return u
}

// SetCompletionEvidence sets the "completion_evidence" field.
func (u *PlanTaskUpsert) SetCompletionEvidence(v map[string]interface{}) *PlanTaskUpsert {
	u.Set(plantask.FieldCompletionEvidence, v)
	return u
}

// UpdateCompletionEvidence sets the "completion_evidence" field to the value that was provided on create.
func (u *PlanTaskUpsert) UpdateCompletionEvidence() *PlanTaskUpsert {
	u.SetExcluded(plantask.FieldCompletionEvidence)
	return u
}

// ClearCompletionEvidence clears the value of the "completion_evidence" field.
func (u *PlanTaskUpsert) ClearCompletionEvidence() *PlanTaskUpsert {
	u.SetNull(plantask.FieldCompletionEvidence)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *PlanTaskUpsert) SetCreatedAt(v time.Time) *PlanTaskUpsert {
	u.Set(plantask.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PlanTaskUpsert) UpdateCreatedAt() *PlanTaskUpsert {
	u.SetExcluded(plantask.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PlanTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(plantask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PlanTaskUpsertOne) UpdateNewValues() *PlanTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(plantask.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlanTask.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PlanTaskUpsertOne) Ignore() *PlanTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlanTaskUpsertOne) DoNothing() *PlanTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlanTaskCreate.OnConflict
// documentation for more info.
func (u *PlanTaskUpsertOne) Update(set func(*PlanTaskUpsert)) *PlanTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlanTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetArtifactID sets the "artifact_id" field.
func (u *PlanTaskUpsertOne) SetArtifactID(v string) *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.SetArtifactID(v)
	})
}

// UpdateArtifactID sets the "artifact_id" field to the value that was provided on create.
func (u *PlanTaskUpsertOne) UpdateArtifactID() *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.UpdateArtifactID()
	})
}

// SetStableTaskID sets the "stable_task_id" field.
func (u *PlanTaskUpsertOne) SetStableTaskID(v string) *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.SetStableTaskID(v)
	})
}

// UpdateStableTaskID sets the "stable_task_id" field to the value that was provided on create.
func (u *PlanTaskUpsertOne) UpdateStableTaskID() *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.UpdateStableTaskID()
	})
}

// SetTitle sets the "title" field.
func (u *PlanTaskUpsertOne) SetTitle(v string) *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PlanTaskUpsertOne) UpdateTitle() *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *PlanTaskUpsertOne) SetDescription(v string) *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PlanTaskUpsertOne) UpdateDescription() *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *PlanTaskUpsertOne) ClearDescription() *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.ClearDescription()
	})
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (u *PlanTaskUpsertOne) SetAcceptanceCriteria(v []string) *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.SetAcceptanceCriteria(v)
	})
}

// UpdateAcceptanceCriteria sets the "acceptance_criteria" field to the value that was provided on create.
func (u *PlanTaskUpsertOne) UpdateAcceptanceCriteria() *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.UpdateAcceptanceCriteria()
	})
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (u *PlanTaskUpsertOne) ClearAcceptanceCriteria() *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.ClearAcceptanceCriteria()
	})
}

// SetStatus sets the "status" field.
func (u *PlanTaskUpsertOne) SetStatus(v plantask.Status) *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PlanTaskUpsertOne) UpdateStatus() *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PlanTaskUpsertOne) SetCompletedAt(v time.Time) *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PlanTaskUpsertOne) UpdateCompletedAt() *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PlanTaskUpsertOne) ClearCompletedAt() *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetCompletedBy sets the "completed_by" field.
func (u *PlanTaskUpsertOne) SetCompletedBy(v plantask.CompletedBy) *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.SetCompletedBy(v)
	})
}

// UpdateCompletedBy sets the "completed_by" field to the value that was provided on create.
func (u *PlanTaskUpsertOne) UpdateCompletedBy() *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.UpdateCompletedBy()
	})
}

// ClearCompletedBy clears the value of the "completed_by" field.
func (u *PlanTaskUpsertOne) ClearCompletedBy() *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.ClearCompletedBy()
	})
}

// SetCompletionEvidence sets the "completion_evidence" field.
func (u *PlanTaskUpsertOne) SetCompletionEvidence(v map[string]interface{}) *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.SetCompletionEvidence(v)
	})
}

// UpdateCompletionEvidence sets the "completion_evidence" field to the value that was provided on create.
func (u *PlanTaskUpsertOne) UpdateCompletionEvidence() *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.UpdateCompletionEvidence()
	})
}

// ClearCompletionEvidence clears the value of the "completion_evidence" field.
func (u *PlanTaskUpsertOne) ClearCompletionEvidence() *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.ClearCompletionEvidence()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *PlanTaskUpsertOne) SetCreatedAt(v time.Time) *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PlanTaskUpsertOne) UpdateCreatedAt() *PlanTaskUpsertOne {
	return u.Update(func(s *PlanTaskUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *PlanTaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlanTaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlanTaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PlanTaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PlanTaskUpsertOne.ID is not supported by MySQL driver. Use PlanTaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PlanTaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PlanTaskCreateBulk is the builder for creating many PlanTask entities in bulk.
type PlanTaskCreateBulk struct {
	config
	err      error
	builders []*PlanTaskCreate
	conflict []sql.ConflictOption
}

// Save creates the PlanTask entities in the database.
func (_c *PlanTaskCreateBulk) Save(ctx context.Context) ([]*PlanTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlanTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanTaskMutation)
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
func (_c *PlanTaskCreateBulk) SaveX(ctx context.Context) []*PlanTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlanTask.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlanTaskUpsert) {
//			SetArtifactID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlanTaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *PlanTaskUpsertBulk {
	_c.conflict = opts
	return &PlanTaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlanTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlanTaskCreateBulk) OnConflictColumns(columns ...string) *PlanTaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlanTaskUpsertBulk{
		create: _c,
	}
}

// PlanTaskUpsertBulk is the builder for "upsert"-ing
// a bulk of PlanTask nodes.
type PlanTaskUpsertBulk struct {
	create *PlanTaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PlanTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(plantask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PlanTaskUpsertBulk) UpdateNewValues() *PlanTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(plantask.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlanTask.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PlanTaskUpsertBulk) Ignore() *PlanTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlanTaskUpsertBulk) DoNothing() *PlanTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlanTaskCreateBulk.OnConflict
// documentation for more info.
func (u *PlanTaskUpsertBulk) Update(set func(*PlanTaskUpsert)) *PlanTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlanTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetArtifactID sets the "artifact_id" field.
func (u *PlanTaskUpsertBulk) SetArtifactID(v string) *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.SetArtifactID(v)
	})
}

// UpdateArtifactID sets the "artifact_id" field to the value that was provided on create.
func (u *PlanTaskUpsertBulk) UpdateArtifactID() *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.UpdateArtifactID()
	})
}

// SetStableTaskID sets the "stable_task_id" field.
func (u *PlanTaskUpsertBulk) SetStableTaskID(v string) *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.SetStableTaskID(v)
	})
}

// UpdateStableTaskID sets the "stable_task_id" field to the value that was provided on create.
func (u *PlanTaskUpsertBulk) UpdateStableTaskID() *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.UpdateStableTaskID()
	})
}

// SetTitle sets the "title" field.
func (u *PlanTaskUpsertBulk) SetTitle(v string) *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PlanTaskUpsertBulk) UpdateTitle() *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *PlanTaskUpsertBulk) SetDescription(v string) *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PlanTaskUpsertBulk) UpdateDescription() *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *PlanTaskUpsertBulk) ClearDescription() *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.ClearDescription()
	})
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (u *PlanTaskUpsertBulk) SetAcceptanceCriteria(v []string) *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.SetAcceptanceCriteria(v)
	})
}

// UpdateAcceptanceCriteria sets the "acceptance_criteria" field to the value that was provided on create.
func (u *PlanTaskUpsertBulk) UpdateAcceptanceCriteria() *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.UpdateAcceptanceCriteria()
	})
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (u *PlanTaskUpsertBulk) ClearAcceptanceCriteria() *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.ClearAcceptanceCriteria()
	})
}

// SetStatus sets the "status" field.
func (u *PlanTaskUpsertBulk) SetStatus(v plantask.Status) *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PlanTaskUpsertBulk) UpdateStatus() *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PlanTaskUpsertBulk) SetCompletedAt(v time.Time) *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PlanTaskUpsertBulk) UpdateCompletedAt() *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PlanTaskUpsertBulk) ClearCompletedAt() *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetCompletedBy sets the "completed_by" field.
func (u *PlanTaskUpsertBulk) SetCompletedBy(v plantask.CompletedBy) *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.SetCompletedBy(v)
	})
}

// UpdateCompletedBy sets the "completed_by" field to the value that was provided on create.
func (u *PlanTaskUpsertBulk) UpdateCompletedBy() *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.UpdateCompletedBy()
	})
}

// ClearCompletedBy clears the value of the "completed_by" field.
func (u *PlanTaskUpsertBulk) ClearCompletedBy() *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.ClearCompletedBy()
	})
}

// SetCompletionEvidence sets the "completion_evidence" field.
func (u *PlanTaskUpsertBulk) SetCompletionEvidence(v map[string]interface{}) *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.SetCompletionEvidence(v)
	})
}

// UpdateCompletionEvidence sets the "completion_evidence" field to the value that was provided on create.
func (u *PlanTaskUpsertBulk) UpdateCompletionEvidence() *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.UpdateCompletionEvidence()
	})
}

// ClearCompletionEvidence clears the value of the "completion_evidence" field.
func (u *PlanTaskUpsertBulk) ClearCompletionEvidence() *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.ClearCompletionEvidence()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *PlanTaskUpsertBulk) SetCreatedAt(v time.Time) *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PlanTaskUpsertBulk) UpdateCreatedAt() *PlanTaskUpsertBulk {
	return u.Update(func(s *PlanTaskUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *PlanTaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PlanTaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlanTaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlanTaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
