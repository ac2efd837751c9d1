// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/loopd/ent/phaseartifact"
	"github.com/codeready-toolchain/loopd/ent/plantask"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// PlanTaskUpdate is the builder for updating PlanTask entities.
type PlanTaskUpdate struct {
	config
	hooks    []Hook
	mutation *PlanTaskMutation
}

// Where appends a list predicates to the PlanTaskUpdate builder.
func (_u *PlanTaskUpdate) Where(ps ...predicate.PlanTask) *PlanTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetArtifactID sets the "artifact_id" field.
func (_u *PlanTaskUpdate) SetArtifactID(v string) *PlanTaskUpdate {
	_u.mutation.SetArtifactID(v)
	return _u
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_u *PlanTaskUpdate) SetNillableArtifactID(v *string) *PlanTaskUpdate {
	if v != nil {
		_u.SetArtifactID(*v)
	}
	return _u
}

// SetStableTaskID sets the "stable_task_id" field.
func (_u *PlanTaskUpdate) SetStableTaskID(v string) *PlanTaskUpdate {
	_u.mutation.SetStableTaskID(v)
	return _u
}

// SetNillableStableTaskID sets the "stable_task_id" field if the given value is not nil.
func (_u *PlanTaskUpdate) SetNillableStableTaskID(v *string) *PlanTaskUpdate {
	if v != nil {
		_u.SetStableTaskID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PlanTaskUpdate) SetTitle(v string) *PlanTaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PlanTaskUpdate) SetNillableTitle(v *string) *PlanTaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PlanTaskUpdate) SetDescription(v string) *PlanTaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PlanTaskUpdate) SetNillableDescription(v *string) *PlanTaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PlanTaskUpdate) ClearDescription() *PlanTaskUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (_u *PlanTaskUpdate) SetAcceptanceCriteria(v []string) *PlanTaskUpdate {
	_u.mutation.SetAcceptanceCriteria(v)
	return _u
}

// AppendAcceptanceCriteria appends value to the "acceptance_criteria" field.
func (_u *PlanTaskUpdate) AppendAcceptanceCriteria(v []string) *PlanTaskUpdate {
	_u.mutation.AppendAcceptanceCriteria(v)
	return _u
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (_u *PlanTaskUpdate) ClearAcceptanceCriteria() *PlanTaskUpdate {
	_u.mutation.ClearAcceptanceCriteria()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlanTaskUpdate) SetStatus(v plantask.Status) *PlanTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlanTaskUpdate) SetNillableStatus(v *plantask.Status) *PlanTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PlanTaskUpdate) SetCompletedAt(v time.Time) *PlanTaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PlanTaskUpdate) SetNillableCompletedAt(v *time.Time) *PlanTaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PlanTaskUpdate) ClearCompletedAt() *PlanTaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCompletedBy sets the "completed_by" field.
func (_u *PlanTaskUpdate) SetCompletedBy(v plantask.CompletedBy) *PlanTaskUpdate {
	_u.mutation.SetCompletedBy(v)
	return _u
}

// SetNillableCompletedBy sets the "completed_by" field if the given value is not nil.
func (_u *PlanTaskUpdate) SetNillableCompletedBy(v *plantask.CompletedBy) *PlanTaskUpdate {
	if v != nil {
		_u.SetCompletedBy(*v)
	}
	return _u
}

// ClearCompletedBy clears the value of the "completed_by" field.
func (_u *PlanTaskUpdate) ClearCompletedBy() *PlanTaskUpdate {
	_u.mutation.ClearCompletedBy()
	return _u
}

// SetCompletionEvidence sets the "completion_evidence" field.
func (_u *PlanTaskUpdate) SetCompletionEvidence(v map[string]interface{}) *PlanTaskUpdate {
	_u.mutation.SetCompletionEvidence(v)
	return _u
}

// ClearCompletionEvidence clears the value of the "completion_evidence" field.
func (_u *PlanTaskUpdate) ClearCompletionEvidence() *PlanTaskUpdate {
	_u.mutation.ClearCompletionEvidence()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PlanTaskUpdate) SetCreatedAt(v time.Time) *PlanTaskUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PlanTaskUpdate) SetNillableCreatedAt(v *time.Time) *PlanTaskUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetArtifact sets the "artifact" edge to the PhaseArtifact entity.
func (_u *PlanTaskUpdate) SetArtifact(v *PhaseArtifact) *PlanTaskUpdate {
	return _u.SetArtifactID(v.ID)
}

// Mutation returns the PlanTaskMutation object of the builder.
func (_u *PlanTaskUpdate) Mutation() *PlanTaskMutation {
	return _u.mutation
}

// ClearArtifact clears the "artifact" edge to the PhaseArtifact entity.
func (_u *PlanTaskUpdate) ClearArtifact() *PlanTaskUpdate {
	_u.mutation.ClearArtifact()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanTaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := plantask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PlanTask.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedBy(); ok {
		if err := plantask.CompletedByValidator(v); err != nil {
			return &ValidationError{Name: "completed_by", err: fmt.Errorf(`ent: validator failed for field "PlanTask.completed_by": %w`, err)}
		}
	}
	if _u.mutation.ArtifactCleared() && len(_u.mutation.ArtifactIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlanTask.artifact"`)
	}
	return nil
}

func (_u *PlanTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plantask.Table, plantask.Columns, sqlgraph.NewFieldSpec(plantask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StableTaskID(); ok {
		_spec.SetField(plantask.FieldStableTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(plantask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(plantask.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(plantask.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AcceptanceCriteria(); ok {
		_spec.SetField(plantask.FieldAcceptanceCriteria, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAcceptanceCriteria(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plantask.FieldAcceptanceCriteria, value)
		})
	}
	if _u.mutation.AcceptanceCriteriaCleared() {
		_spec.ClearField(plantask.FieldAcceptanceCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(plantask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(plantask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(plantask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedBy(); ok {
		_spec.SetField(plantask.FieldCompletedBy, field.TypeEnum, value)
	}
	if _u.mutation.CompletedByCleared() {
		_spec.ClearField(plantask.FieldCompletedBy, field.TypeEnum)
	}
	if value, ok := _u.mutation.CompletionEvidence(); ok {
		_spec.SetField(plantask.FieldCompletionEvidence, field.TypeJSON, value)
	}
	if _u.mutation.CompletionEvidenceCleared() {
		_spec.ClearField(plantask.FieldCompletionEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(plantask.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ArtifactCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plantask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanTaskUpdateOne is the builder for updating a single PlanTask entity.
type PlanTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanTaskMutation
}

// SetArtifactID sets the "artifact_id" field.
func (_u *PlanTaskUpdateOne) SetArtifactID(v string) *PlanTaskUpdateOne {
	_u.mutation.SetArtifactID(v)
	return _u
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_u *PlanTaskUpdateOne) SetNillableArtifactID(v *string) *PlanTaskUpdateOne {
	if v != nil {
		_u.SetArtifactID(*v)
	}
	return _u
}

// SetStableTaskID sets the "stable_task_id" field.
func (_u *PlanTaskUpdateOne) SetStableTaskID(v string) *PlanTaskUpdateOne {
	_u.mutation.SetStableTaskID(v)
	return _u
}

// SetNillableStableTaskID sets the "stable_task_id" field if the given value is not nil.
func (_u *PlanTaskUpdateOne) SetNillableStableTaskID(v *string) *PlanTaskUpdateOne {
	if v != nil {
		_u.SetStableTaskID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PlanTaskUpdateOne) SetTitle(v string) *PlanTaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PlanTaskUpdateOne) SetNillableTitle(v *string) *PlanTaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PlanTaskUpdateOne) SetDescription(v string) *PlanTaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PlanTaskUpdateOne) SetNillableDescription(v *string) *PlanTaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PlanTaskUpdateOne) ClearDescription() *PlanTaskUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (_u *PlanTaskUpdateOne) SetAcceptanceCriteria(v []string) *PlanTaskUpdateOne {
	_u.mutation.SetAcceptanceCriteria(v)
	return _u
}

// AppendAcceptanceCriteria appends value to the "acceptance_criteria" field.
func (_u *PlanTaskUpdateOne) AppendAcceptanceCriteria(v []string) *PlanTaskUpdateOne {
	_u.mutation.AppendAcceptanceCriteria(v)
	return _u
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (_u *PlanTaskUpdateOne) ClearAcceptanceCriteria() *PlanTaskUpdateOne {
	_u.mutation.ClearAcceptanceCriteria()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlanTaskUpdateOne) SetStatus(v plantask.Status) *PlanTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlanTaskUpdateOne) SetNillableStatus(v *plantask.Status) *PlanTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PlanTaskUpdateOne) SetCompletedAt(v time.Time) *PlanTaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PlanTaskUpdateOne) SetNillableCompletedAt(v *time.Time) *PlanTaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PlanTaskUpdateOne) ClearCompletedAt() *PlanTaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCompletedBy sets the "completed_by" field.
func (_u *PlanTaskUpdateOne) SetCompletedBy(v plantask.CompletedBy) *PlanTaskUpdateOne {
	_u.mutation.SetCompletedBy(v)
	return _u
}

// SetNillableCompletedBy sets the "completed_by" field if the given value is not nil.
func (_u *PlanTaskUpdateOne) SetNillableCompletedBy(v *plantask.CompletedBy) *PlanTaskUpdateOne {
	if v != nil {
		_u.SetCompletedBy(*v)
	}
	return _u
}

// ClearCompletedBy clears the value of the "completed_by" field.
func (_u *PlanTaskUpdateOne) ClearCompletedBy() *PlanTaskUpdateOne {
	_u.mutation.ClearCompletedBy()
	return _u
}

// SetCompletionEvidence sets the "completion_evidence" field.
func (_u *PlanTaskUpdateOne) SetCompletionEvidence(v map[string]interface{}) *PlanTaskUpdateOne {
	_u.mutation.SetCompletionEvidence(v)
	return _u
}

// ClearCompletionEvidence clears the value of the "completion_evidence" field.
func (_u *PlanTaskUpdateOne) ClearCompletionEvidence() *PlanTaskUpdateOne {
	_u.mutation.ClearCompletionEvidence()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PlanTaskUpdateOne) SetCreatedAt(v time.Time) *PlanTaskUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PlanTaskUpdateOne) SetNillableCreatedAt(v *time.Time) *PlanTaskUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetArtifact sets the "artifact" edge to the PhaseArtifact entity.
func (_u *PlanTaskUpdateOne) SetArtifact(v *PhaseArtifact) *PlanTaskUpdateOne {
	return _u.SetArtifactID(v.ID)
}

// Mutation returns the PlanTaskMutation object of the builder.
func (_u *PlanTaskUpdateOne) Mutation() *PlanTaskMutation {
	return _u.mutation
}

// ClearArtifact clears the "artifact" edge to the PhaseArtifact entity.
func (_u *PlanTaskUpdateOne) ClearArtifact() *PlanTaskUpdateOne {
	_u.mutation.ClearArtifact()
	return _u
}

// Where appends a list predicates to the PlanTaskUpdate builder.
func (_u *PlanTaskUpdateOne) Where(ps ...predicate.PlanTask) *PlanTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanTaskUpdateOne) Select(field string, fields ...string) *PlanTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlanTask entity.
func (_u *PlanTaskUpdateOne) Save(ctx context.Context) (*PlanTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanTaskUpdateOne) SaveX(ctx context.Context) *PlanTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := plantask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PlanTask.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedBy(); ok {
		if err := plantask.CompletedByValidator(v); err != nil {
			return &ValidationError{Name: "completed_by", err: fmt.Errorf(`ent: validator failed for field "PlanTask.completed_by": %w`, err)}
		}
	}
	if _u.mutation.ArtifactCleared() && len(_u.mutation.ArtifactIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlanTask.artifact"`)
	}
	return nil
}

func (_u *PlanTaskUpdateOne) sqlSave(ctx context.Context) (_node *PlanTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plantask.Table, plantask.Columns, sqlgraph.NewFieldSpec(plantask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlanTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plantask.FieldID)
		for _, f := range fields {
			if !plantask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != plantask.FieldID {
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
	if value, ok := _u.mutation.StableTaskID(); ok {
		_spec.SetField(plantask.FieldStableTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(plantask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(plantask.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(plantask.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AcceptanceCriteria(); ok {
		_spec.SetField(plantask.FieldAcceptanceCriteria, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAcceptanceCriteria(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plantask.FieldAcceptanceCriteria, value)
		})
	}
	if _u.mutation.AcceptanceCriteriaCleared() {
		_spec.ClearField(plantask.FieldAcceptanceCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(plantask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(plantask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(plantask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedBy(); ok {
		_spec.SetField(plantask.FieldCompletedBy, field.TypeEnum, value)
	}
	if _u.mutation.CompletedByCleared() {
		_spec.ClearField(plantask.FieldCompletedBy, field.TypeEnum)
	}
	if value, ok := _u.mutation.CompletionEvidence(); ok {
		_spec.SetField(plantask.FieldCompletionEvidence, field.TypeJSON, value)
	}
	if _u.mutation.CompletionEvidenceCleared() {
		_spec.ClearField(plantask.FieldCompletionEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(plantask.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ArtifactCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PlanTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plantask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
