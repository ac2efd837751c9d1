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
	"github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/phaseartifact"
	"github.com/codeready-toolchain/loopd/ent/plantask"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// PhaseArtifactUpdate is the builder for updating PhaseArtifact entities.
type PhaseArtifactUpdate struct {
	config
	hooks    []Hook
	mutation *PhaseArtifactMutation
}

// Where appends a list predicates to the PhaseArtifactUpdate builder.
func (_u *PhaseArtifactUpdate) Where(ps ...predicate.PhaseArtifact) *PhaseArtifactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLoopID sets the "loop_id" field.
func (_u *PhaseArtifactUpdate) SetLoopID(v string) *PhaseArtifactUpdate {
	_u.mutation.SetLoopID(v)
	return _u
}

// SetNillableLoopID sets the "loop_id" field if the given value is not nil.
func (_u *PhaseArtifactUpdate) SetNillableLoopID(v *string) *PhaseArtifactUpdate {
	if v != nil {
		_u.SetLoopID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *PhaseArtifactUpdate) SetPhase(v phaseartifact.Phase) *PhaseArtifactUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *PhaseArtifactUpdate) SetNillablePhase(v *phaseartifact.Phase) *PhaseArtifactUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetArtifactType sets the "artifact_type" field.
func (_u *PhaseArtifactUpdate) SetArtifactType(v string) *PhaseArtifactUpdate {
	_u.mutation.SetArtifactType(v)
	return _u
}

// SetNillableArtifactType sets the "artifact_type" field if the given value is not nil.
func (_u *PhaseArtifactUpdate) SetNillableArtifactType(v *string) *PhaseArtifactUpdate {
	if v != nil {
		_u.SetArtifactType(*v)
	}
	return _u
}

// SetHeadSha sets the "head_sha" field.
func (_u *PhaseArtifactUpdate) SetHeadSha(v string) *PhaseArtifactUpdate {
	_u.mutation.SetHeadSha(v)
	return _u
}

// SetNillableHeadSha sets the "head_sha" field if the given value is not nil.
func (_u *PhaseArtifactUpdate) SetNillableHeadSha(v *string) *PhaseArtifactUpdate {
	if v != nil {
		_u.SetHeadSha(*v)
	}
	return _u
}

// ClearHeadSha clears the value of the "head_sha" field.
func (_u *PhaseArtifactUpdate) ClearHeadSha() *PhaseArtifactUpdate {
	_u.mutation.ClearHeadSha()
	return _u
}

// SetLoopVersion sets the "loop_version" field.
func (_u *PhaseArtifactUpdate) SetLoopVersion(v int) *PhaseArtifactUpdate {
	_u.mutation.ResetLoopVersion()
	_u.mutation.SetLoopVersion(v)
	return _u
}

// SetNillableLoopVersion sets the "loop_version" field if the given value is not nil.
func (_u *PhaseArtifactUpdate) SetNillableLoopVersion(v *int) *PhaseArtifactUpdate {
	if v != nil {
		_u.SetLoopVersion(*v)
	}
	return _u
}

// AddLoopVersion adds value to the "loop_version" field.
func (_u *PhaseArtifactUpdate) AddLoopVersion(v int) *PhaseArtifactUpdate {
	_u.mutation.AddLoopVersion(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PhaseArtifactUpdate) SetStatus(v phaseartifact.Status) *PhaseArtifactUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PhaseArtifactUpdate) SetNillableStatus(v *phaseartifact.Status) *PhaseArtifactUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGeneratedBy sets the "generated_by" field.
func (_u *PhaseArtifactUpdate) SetGeneratedBy(v string) *PhaseArtifactUpdate {
	_u.mutation.SetGeneratedBy(v)
	return _u
}

// SetNillableGeneratedBy sets the "generated_by" field if the given value is not nil.
func (_u *PhaseArtifactUpdate) SetNillableGeneratedBy(v *string) *PhaseArtifactUpdate {
	if v != nil {
		_u.SetGeneratedBy(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *PhaseArtifactUpdate) SetPayload(v map[string]interface{}) *PhaseArtifactUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *PhaseArtifactUpdate) ClearPayload() *PhaseArtifactUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetApprovedByUserID sets the "approved_by_user_id" field.
func (_u *PhaseArtifactUpdate) SetApprovedByUserID(v string) *PhaseArtifactUpdate {
	_u.mutation.SetApprovedByUserID(v)
	return _u
}

// SetNillableApprovedByUserID sets the "approved_by_user_id" field if the given value is not nil.
func (_u *PhaseArtifactUpdate) SetNillableApprovedByUserID(v *string) *PhaseArtifactUpdate {
	if v != nil {
		_u.SetApprovedByUserID(*v)
	}
	return _u
}

// ClearApprovedByUserID clears the value of the "approved_by_user_id" field.
func (_u *PhaseArtifactUpdate) ClearApprovedByUserID() *PhaseArtifactUpdate {
	_u.mutation.ClearApprovedByUserID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PhaseArtifactUpdate) SetCreatedAt(v time.Time) *PhaseArtifactUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PhaseArtifactUpdate) SetNillableCreatedAt(v *time.Time) *PhaseArtifactUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PhaseArtifactUpdate) SetUpdatedAt(v time.Time) *PhaseArtifactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLoop sets the "loop" edge to the Loop entity.
func (_u *PhaseArtifactUpdate) SetLoop(v *Loop) *PhaseArtifactUpdate {
	return _u.SetLoopID(v.ID)
}

// AddTaskIDs adds the "tasks" edge to the PlanTask entity by IDs.
func (_u *PhaseArtifactUpdate) AddTaskIDs(ids ...string) *PhaseArtifactUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the PlanTask entity.
func (_u *PhaseArtifactUpdate) AddTasks(v ...*PlanTask) *PhaseArtifactUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the PhaseArtifactMutation object of the builder.
func (_u *PhaseArtifactUpdate) Mutation() *PhaseArtifactMutation {
	return _u.mutation
}

// ClearLoop clears the "loop" edge to the Loop entity.
func (_u *PhaseArtifactUpdate) ClearLoop() *PhaseArtifactUpdate {
	_u.mutation.ClearLoop()
	return _u
}

// ClearTasks clears all "tasks" edges to the PlanTask entity.
func (_u *PhaseArtifactUpdate) ClearTasks() *PhaseArtifactUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to PlanTask entities by IDs.
func (_u *PhaseArtifactUpdate) RemoveTaskIDs(ids ...string) *PhaseArtifactUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to PlanTask entities.
func (_u *PhaseArtifactUpdate) RemoveTasks(v ...*PlanTask) *PhaseArtifactUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PhaseArtifactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhaseArtifactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PhaseArtifactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhaseArtifactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PhaseArtifactUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := phaseartifact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhaseArtifactUpdate) check() error {
	if v, ok := _u.mutation.Phase(); ok {
		if err := phaseartifact.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "PhaseArtifact.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := phaseartifact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PhaseArtifact.status": %w`, err)}
		}
	}
	if _u.mutation.LoopCleared() && len(_u.mutation.LoopIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PhaseArtifact.loop"`)
	}
	return nil
}

func (_u *PhaseArtifactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(phaseartifact.Table, phaseartifact.Columns, sqlgraph.NewFieldSpec(phaseartifact.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(phaseartifact.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ArtifactType(); ok {
		_spec.SetField(phaseartifact.FieldArtifactType, field.TypeString, value)
	}
	if value, ok := _u.mutation.HeadSha(); ok {
		_spec.SetField(phaseartifact.FieldHeadSha, field.TypeString, value)
	}
	if _u.mutation.HeadShaCleared() {
		_spec.ClearField(phaseartifact.FieldHeadSha, field.TypeString)
	}
	if value, ok := _u.mutation.LoopVersion(); ok {
		_spec.SetField(phaseartifact.FieldLoopVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLoopVersion(); ok {
		_spec.AddField(phaseartifact.FieldLoopVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(phaseartifact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GeneratedBy(); ok {
		_spec.SetField(phaseartifact.FieldGeneratedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(phaseartifact.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(phaseartifact.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedByUserID(); ok {
		_spec.SetField(phaseartifact.FieldApprovedByUserID, field.TypeString, value)
	}
	if _u.mutation.ApprovedByUserIDCleared() {
		_spec.ClearField(phaseartifact.FieldApprovedByUserID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(phaseartifact.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(phaseartifact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LoopCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LoopIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{phaseartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PhaseArtifactUpdateOne is the builder for updating a single PhaseArtifact entity.
type PhaseArtifactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PhaseArtifactMutation
}

// SetLoopID sets the "loop_id" field.
func (_u *PhaseArtifactUpdateOne) SetLoopID(v string) *PhaseArtifactUpdateOne {
	_u.mutation.SetLoopID(v)
	return _u
}

// SetNillableLoopID sets the "loop_id" field if the given value is not nil.
func (_u *PhaseArtifactUpdateOne) SetNillableLoopID(v *string) *PhaseArtifactUpdateOne {
	if v != nil {
		_u.SetLoopID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *PhaseArtifactUpdateOne) SetPhase(v phaseartifact.Phase) *PhaseArtifactUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *PhaseArtifactUpdateOne) SetNillablePhase(v *phaseartifact.Phase) *PhaseArtifactUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetArtifactType sets the "artifact_type" field.
func (_u *PhaseArtifactUpdateOne) SetArtifactType(v string) *PhaseArtifactUpdateOne {
	_u.mutation.SetArtifactType(v)
	return _u
}

// SetNillableArtifactType sets the "artifact_type" field if the given value is not nil.
func (_u *PhaseArtifactUpdateOne) SetNillableArtifactType(v *string) *PhaseArtifactUpdateOne {
	if v != nil {
		_u.SetArtifactType(*v)
	}
	return _u
}

// SetHeadSha sets the "head_sha" field.
func (_u *PhaseArtifactUpdateOne) SetHeadSha(v string) *PhaseArtifactUpdateOne {
	_u.mutation.SetHeadSha(v)
	return _u
}

// SetNillableHeadSha sets the "head_sha" field if the given value is not nil.
func (_u *PhaseArtifactUpdateOne) SetNillableHeadSha(v *string) *PhaseArtifactUpdateOne {
	if v != nil {
		_u.SetHeadSha(*v)
	}
	return _u
}

// ClearHeadSha clears the value of the "head_sha" field.
func (_u *PhaseArtifactUpdateOne) ClearHeadSha() *PhaseArtifactUpdateOne {
	_u.mutation.ClearHeadSha()
	return _u
}

// SetLoopVersion sets the "loop_version" field.
func (_u *PhaseArtifactUpdateOne) SetLoopVersion(v int) *PhaseArtifactUpdateOne {
	_u.mutation.ResetLoopVersion()
	_u.mutation.SetLoopVersion(v)
	return _u
}

// SetNillableLoopVersion sets the "loop_version" field if the given value is not nil.
func (_u *PhaseArtifactUpdateOne) SetNillableLoopVersion(v *int) *PhaseArtifactUpdateOne {
	if v != nil {
		_u.SetLoopVersion(*v)
	}
	return _u
}

// AddLoopVersion adds value to the "loop_version" field.
func (_u *PhaseArtifactUpdateOne) AddLoopVersion(v int) *PhaseArtifactUpdateOne {
	_u.mutation.AddLoopVersion(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PhaseArtifactUpdateOne) SetStatus(v phaseartifact.Status) *PhaseArtifactUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PhaseArtifactUpdateOne) SetNillableStatus(v *phaseartifact.Status) *PhaseArtifactUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGeneratedBy sets the "generated_by" field.
func (_u *PhaseArtifactUpdateOne) SetGeneratedBy(v string) *PhaseArtifactUpdateOne {
	_u.mutation.SetGeneratedBy(v)
	return _u
}

// SetNillableGeneratedBy sets the "generated_by" field if the given value is not nil.
func (_u *PhaseArtifactUpdateOne) SetNillableGeneratedBy(v *string) *PhaseArtifactUpdateOne {
	if v != nil {
		_u.SetGeneratedBy(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *PhaseArtifactUpdateOne) SetPayload(v map[string]interface{}) *PhaseArtifactUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *PhaseArtifactUpdateOne) ClearPayload() *PhaseArtifactUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetApprovedByUserID sets the "approved_by_user_id" field.
func (_u *PhaseArtifactUpdateOne) SetApprovedByUserID(v string) *PhaseArtifactUpdateOne {
	_u.mutation.SetApprovedByUserID(v)
	return _u
}

// SetNillableApprovedByUserID sets the "approved_by_user_id" field if the given value is not nil.
func (_u *PhaseArtifactUpdateOne) SetNillableApprovedByUserID(v *string) *PhaseArtifactUpdateOne {
	if v != nil {
		_u.SetApprovedByUserID(*v)
	}
	return _u
}

// ClearApprovedByUserID clears the value of the "approved_by_user_id" field.
func (_u *PhaseArtifactUpdateOne) ClearApprovedByUserID() *PhaseArtifactUpdateOne {
	_u.mutation.ClearApprovedByUserID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PhaseArtifactUpdateOne) SetCreatedAt(v time.Time) *PhaseArtifactUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PhaseArtifactUpdateOne) SetNillableCreatedAt(v *time.Time) *PhaseArtifactUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PhaseArtifactUpdateOne) SetUpdatedAt(v time.Time) *PhaseArtifactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLoop sets the "loop" edge to the Loop entity.
func (_u *PhaseArtifactUpdateOne) SetLoop(v *Loop) *PhaseArtifactUpdateOne {
	return _u.SetLoopID(v.ID)
}

// AddTaskIDs adds the "tasks" edge to the PlanTask entity by IDs.
func (_u *PhaseArtifactUpdateOne) AddTaskIDs(ids ...string) *PhaseArtifactUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the PlanTask entity.
func (_u *PhaseArtifactUpdateOne) AddTasks(v ...*PlanTask) *PhaseArtifactUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the PhaseArtifactMutation object of the builder.
func (_u *PhaseArtifactUpdateOne) Mutation() *PhaseArtifactMutation {
	return _u.mutation
}

// ClearLoop clears the "loop" edge to the Loop entity.
func (_u *PhaseArtifactUpdateOne) ClearLoop() *PhaseArtifactUpdateOne {
	_u.mutation.ClearLoop()
	return _u
}

// ClearTasks clears all "tasks" edges to the PlanTask entity.
func (_u *PhaseArtifactUpdateOne) ClearTasks() *PhaseArtifactUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to PlanTask entities by IDs.
func (_u *PhaseArtifactUpdateOne) RemoveTaskIDs(ids ...string) *PhaseArtifactUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to PlanTask entities.
func (_u *PhaseArtifactUpdateOne) RemoveTasks(v ...*PlanTask) *PhaseArtifactUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Where appends a list predicates to the PhaseArtifactUpdate builder.
func (_u *PhaseArtifactUpdateOne) Where(ps ...predicate.PhaseArtifact) *PhaseArtifactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PhaseArtifactUpdateOne) Select(field string, fields ...string) *PhaseArtifactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PhaseArtifact entity.
func (_u *PhaseArtifactUpdateOne) Save(ctx context.Context) (*PhaseArtifact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhaseArtifactUpdateOne) SaveX(ctx context.Context) *PhaseArtifact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PhaseArtifactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhaseArtifactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PhaseArtifactUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := phaseartifact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhaseArtifactUpdateOne) check() error {
	if v, ok := _u.mutation.Phase(); ok {
		if err := phaseartifact.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "PhaseArtifact.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := phaseartifact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PhaseArtifact.status": %w`, err)}
		}
	}
	if _u.mutation.LoopCleared() && len(_u.mutation.LoopIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PhaseArtifact.loop"`)
	}
	return nil
}

func (_u *PhaseArtifactUpdateOne) sqlSave(ctx context.Context) (_node *PhaseArtifact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(phaseartifact.Table, phaseartifact.Columns, sqlgraph.NewFieldSpec(phaseartifact.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PhaseArtifact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, phaseartifact.FieldID)
		for _, f := range fields {
			if !phaseartifact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != phaseartifact.FieldID {
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
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(phaseartifact.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ArtifactType(); ok {
		_spec.SetField(phaseartifact.FieldArtifactType, field.TypeString, value)
	}
	if value, ok := _u.mutation.HeadSha(); ok {
		_spec.SetField(phaseartifact.FieldHeadSha, field.TypeString, value)
	}
	if _u.mutation.HeadShaCleared() {
		_spec.ClearField(phaseartifact.FieldHeadSha, field.TypeString)
	}
	if value, ok := _u.mutation.LoopVersion(); ok {
		_spec.SetField(phaseartifact.FieldLoopVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLoopVersion(); ok {
		_spec.AddField(phaseartifact.FieldLoopVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(phaseartifact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GeneratedBy(); ok {
		_spec.SetField(phaseartifact.FieldGeneratedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(phaseartifact.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(phaseartifact.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedByUserID(); ok {
		_spec.SetField(phaseartifact.FieldApprovedByUserID, field.TypeString, value)
	}
	if _u.mutation.ApprovedByUserIDCleared() {
		_spec.ClearField(phaseartifact.FieldApprovedByUserID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(phaseartifact.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(phaseartifact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LoopCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LoopIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PhaseArtifact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{phaseartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
