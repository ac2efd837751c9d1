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
	"github.com/codeready-toolchain/loopd/ent/gaterun"
	"github.com/codeready-toolchain/loopd/ent/loop"
)

// GateRunCreate is the builder for creating a GateRun entity.
type GateRunCreate struct {
	config
	mutation *GateRunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLoopID sets the "loop_id" field.
func (_c *GateRunCreate) SetLoopID(v string) *GateRunCreate {
	_c.mutation.SetLoopID(v)
	return _c
}

// SetGateKind sets the "gate_kind" field.
func (_c *GateRunCreate) SetGateKind(v gaterun.GateKind) *GateRunCreate {
	_c.mutation.SetGateKind(v)
	return _c
}

// SetHeadSha sets the "head_sha" field.
func (_c *GateRunCreate) SetHeadSha(v string) *GateRunCreate {
	_c.mutation.SetHeadSha(v)
	return _c
}

// SetLoopVersion sets the "loop_version" field.
func (_c *GateRunCreate) SetLoopVersion(v int) *GateRunCreate {
	_c.mutation.SetLoopVersion(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *GateRunCreate) SetStatus(v string) *GateRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetGatePassed sets the "gate_passed" field.
func (_c *GateRunCreate) SetGatePassed(v bool) *GateRunCreate {
	_c.mutation.SetGatePassed(v)
	return _c
}

// SetNillableGatePassed sets the "gate_passed" field if the given value is not nil.
func (_c *GateRunCreate) SetNillableGatePassed(v *bool) *GateRunCreate {
	if v != nil {
		_c.SetGatePassed(*v)
	}
	return _c
}

// SetTriggerEvent sets the "trigger_event" field.
func (_c *GateRunCreate) SetTriggerEvent(v string) *GateRunCreate {
	_c.mutation.SetTriggerEvent(v)
	return _c
}

// SetNillableTriggerEvent sets the "trigger_event" field if the given value is not nil.
func (_c *GateRunCreate) SetNillableTriggerEvent(v *string) *GateRunCreate {
	if v != nil {
		_c.SetTriggerEvent(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *GateRunCreate) SetErrorCode(v string) *GateRunCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *GateRunCreate) SetNillableErrorCode(v *string) *GateRunCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetRequiredCheckSource sets the "required_check_source" field.
func (_c *GateRunCreate) SetRequiredCheckSource(v string) *GateRunCreate {
	_c.mutation.SetRequiredCheckSource(v)
	return _c
}

// SetNillableRequiredCheckSource sets the "required_check_source" field if the given value is not nil.
func (_c *GateRunCreate) SetNillableRequiredCheckSource(v *string) *GateRunCreate {
	if v != nil {
		_c.SetRequiredCheckSource(*v)
	}
	return _c
}

// SetRequiredChecks sets the "required_checks" field.
func (_c *GateRunCreate) SetRequiredChecks(v []string) *GateRunCreate {
	_c.mutation.SetRequiredChecks(v)
	return _c
}

// SetFailingRequiredChecks sets the "failing_required_checks" field.
func (_c *GateRunCreate) SetFailingRequiredChecks(v []string) *GateRunCreate {
	_c.mutation.SetFailingRequiredChecks(v)
	return _c
}

// SetUnresolvedThreadCount sets the "unresolved_thread_count" field.
func (_c *GateRunCreate) SetUnresolvedThreadCount(v int) *GateRunCreate {
	_c.mutation.SetUnresolvedThreadCount(v)
	return _c
}

// SetNillableUnresolvedThreadCount sets the "unresolved_thread_count" field if the given value is not nil.
func (_c *GateRunCreate) SetNillableUnresolvedThreadCount(v *int) *GateRunCreate {
	if v != nil {
		_c.SetUnresolvedThreadCount(*v)
	}
	return _c
}

// SetUnresolvedThreadCountSource sets the "unresolved_thread_count_source" field.
func (_c *GateRunCreate) SetUnresolvedThreadCountSource(v string) *GateRunCreate {
	_c.mutation.SetUnresolvedThreadCountSource(v)
	return _c
}

// SetNillableUnresolvedThreadCountSource sets the "unresolved_thread_count_source" field if the given value is not nil.
func (_c *GateRunCreate) SetNillableUnresolvedThreadCountSource(v *string) *GateRunCreate {
	if v != nil {
		_c.SetUnresolvedThreadCountSource(*v)
	}
	return _c
}

// SetInvalidOutput sets the "invalid_output" field.
func (_c *GateRunCreate) SetInvalidOutput(v bool) *GateRunCreate {
	_c.mutation.SetInvalidOutput(v)
	return _c
}

// SetNillableInvalidOutput sets the "invalid_output" field if the given value is not nil.
func (_c *GateRunCreate) SetNillableInvalidOutput(v *bool) *GateRunCreate {
	if v != nil {
		_c.SetInvalidOutput(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *GateRunCreate) SetDetails(v map[string]interface{}) *GateRunCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GateRunCreate) SetCreatedAt(v time.Time) *GateRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GateRunCreate) SetNillableCreatedAt(v *time.Time) *GateRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GateRunCreate) SetUpdatedAt(v time.Time) *GateRunCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GateRunCreate) SetNillableUpdatedAt(v *time.Time) *GateRunCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GateRunCreate) SetID(v string) *GateRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetLoop sets the "loop" edge to the Loop entity.
func (_c *GateRunCreate) SetLoop(v *Loop) *GateRunCreate {
	return _c.SetLoopID(v.ID)
}

// Mutation returns the GateRunMutation object of the builder.
func (_c *GateRunCreate) Mutation() *GateRunMutation {
	return _c.mutation
}

// Save creates the GateRun in the database.
func (_c *GateRunCreate) Save(ctx context.Context) (*GateRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GateRunCreate) SaveX(ctx context.Context) *GateRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GateRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GateRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GateRunCreate) defaults() {
	if _, ok := _c.mutation.GatePassed(); !ok {
		v := gaterun.DefaultGatePassed
		_c.mutation.SetGatePassed(v)
	}
	if _, ok := _c.mutation.InvalidOutput(); !ok {
		v := gaterun.DefaultInvalidOutput
		_c.mutation.SetInvalidOutput(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := gaterun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := gaterun.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GateRunCreate) check() error {
	if _, ok := _c.mutation.LoopID(); !ok {
		return &ValidationError{Name: "loop_id", err: errors.New(`ent: missing required field "GateRun.loop_id"`)}
	}
	if _, ok := _c.mutation.GateKind(); !ok {
		return &ValidationError{Name: "gate_kind", err: errors.New(`ent: missing required field "GateRun.gate_kind"`)}
	}
	if v, ok := _c.mutation.GateKind(); ok {
		if err := gaterun.GateKindValidator(v); err != nil {
			return &ValidationError{Name: "gate_kind", err: fmt.Errorf(`ent: validator failed for field "GateRun.gate_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HeadSha(); !ok {
		return &ValidationError{Name: "head_sha", err: errors.New(`ent: missing required field "GateRun.head_sha"`)}
	}
	if _, ok := _c.mutation.LoopVersion(); !ok {
		return &ValidationError{Name: "loop_version", err: errors.New(`ent: missing required field "GateRun.loop_version"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "GateRun.status"`)}
	}
	if _, ok := _c.mutation.GatePassed(); !ok {
		return &ValidationError{Name: "gate_passed", err: errors.New(`ent: missing required field "GateRun.gate_passed"`)}
	}
	if _, ok := _c.mutation.InvalidOutput(); !ok {
		return &ValidationError{Name: "invalid_output", err: errors.New(`ent: missing required field "GateRun.invalid_output"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GateRun.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "GateRun.updated_at"`)}
	}
	if len(_c.mutation.LoopIDs()) == 0 {
		return &ValidationError{Name: "loop", err: errors.New(`ent: missing required edge "GateRun.loop"`)}
	}
	return nil
}

func (_c *GateRunCreate) sqlSave(ctx context.Context) (*GateRun, error) {
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
			return nil, fmt.Errorf("unexpected GateRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GateRunCreate) createSpec() (*GateRun, *sqlgraph.CreateSpec) {
	var (
		_node = &GateRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gaterun.Table, sqlgraph.NewFieldSpec(gaterun.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GateKind(); ok {
		_spec.SetField(gaterun.FieldGateKind, field.TypeEnum, value)
		_node.GateKind = value
	}
	if value, ok := _c.mutation.HeadSha(); ok {
		_spec.SetField(gaterun.FieldHeadSha, field.TypeString, value)
		_node.HeadSha = value
	}
	if value, ok := _c.mutation.LoopVersion(); ok {
		_spec.SetField(gaterun.FieldLoopVersion, field.TypeInt, value)
		_node.LoopVersion = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(gaterun.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.GatePassed(); ok {
		_spec.SetField(gaterun.FieldGatePassed, field.TypeBool, value)
		_node.GatePassed = value
	}
	if value, ok := _c.mutation.TriggerEvent(); ok {
		_spec.SetField(gaterun.FieldTriggerEvent, field.TypeString, value)
		_node.TriggerEvent = value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(gaterun.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.RequiredCheckSource(); ok {
		_spec.SetField(gaterun.FieldRequiredCheckSource, field.TypeString, value)
		_node.RequiredCheckSource = value
	}
	if value, ok := _c.mutation.RequiredChecks(); ok {
		_spec.SetField(gaterun.FieldRequiredChecks, field.TypeJSON, value)
		_node.RequiredChecks = value
	}
	if value, ok := _c.mutation.FailingRequiredChecks(); ok {
		_spec.SetField(gaterun.FieldFailingRequiredChecks, field.TypeJSON, value)
		_node.FailingRequiredChecks = value
	}
	if value, ok := _c.mutation.UnresolvedThreadCount(); ok {
		_spec.SetField(gaterun.FieldUnresolvedThreadCount, field.TypeInt, value)
		_node.UnresolvedThreadCount = &value
	}
	if value, ok := _c.mutation.UnresolvedThreadCountSource(); ok {
		_spec.SetField(gaterun.FieldUnresolvedThreadCountSource, field.TypeString, value)
		_node.UnresolvedThreadCountSource = &value
	}
	if value, ok := _c.mutation.InvalidOutput(); ok {
		_spec.SetField(gaterun.FieldInvalidOutput, field.TypeBool, value)
		_node.InvalidOutput = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(gaterun.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(gaterun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(gaterun.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LoopIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   gaterun.LoopTable,
			Columns: []string{gaterun.LoopColumn},
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
//	client.GateRun.Create().
//		SetLoopID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GateRunUpsert) {
//			SetLoopID(v+v).
//		}).
//		Exec(ctx)
func (_c *GateRunCreate) OnConflict(opts ...sql.ConflictOption) *GateRunUpsertOne {
	_c.conflict = opts
	return &GateRunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GateRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GateRunCreate) OnConflictColumns(columns ...string) *GateRunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GateRunUpsertOne{
		create: _c,
	}
}

type (
	// GateRunUpsertOne is the builder for "upsert"-ing
	//  one GateRun node.
	GateRunUpsertOne struct {
		create *GateRunCreate
	}

	// GateRunUpsert is the "OnConflict" setter.
	GateRunUpsert struct {
		*sql.UpdateSet
	}
)

// SetLoopID sets the "loop_id" field.
func (u *GateRunUpsert) SetLoopID(v string) *GateRunUpsert {
	u.Set(gaterun.FieldLoopID, v)
	return u
}

// UpdateLoopID sets the "loop_id" field to the value that was provided on create.
func (u *GateRunUpsert) UpdateLoopID() *GateRunUpsert {
	u.SetExcluded(gaterun.FieldLoopID)
	return u
}

// SetGateKind sets the "gate_kind" field.
func (u *GateRunUpsert) SetGateKind(v gaterun.GateKind) *GateRunUpsert {
	u.Set(gaterun.FieldGateKind, v)
	return u
}

// UpdateGateKind sets the "gate_kind" field to the value that was provided on create.
func (u *GateRunUpsert) UpdateGateKind() *GateRunUpsert {
	u.SetExcluded(gaterun.FieldGateKind)
	return u
}

// SetHeadSha sets the "head_sha" field.
func (u *GateRunUpsert) SetHeadSha(v string) *GateRunUpsert {
	u.Set(gaterun.FieldHeadSha, v)
	return u
}

// UpdateHeadSha sets the "head_sha" field to the value that was provided on create.
func (u *GateRunUpsert) UpdateHeadSha() *GateRunUpsert {
	u.SetExcluded(gaterun.FieldHeadSha)
	return u
}

// SetLoopVersion sets the "loop_version" field.
func (u *GateRunUpsert) SetLoopVersion(v int) *GateRunUpsert {
	u.Set(gaterun.FieldLoopVersion, v)
	return u
}

// UpdateLoopVersion sets the "loop_version" field to the value that was provided on create.
func (u *GateRunUpsert) UpdateLoopVersion() *GateRunUpsert {
	u.SetExcluded(gaterun.FieldLoopVersion)
	return u
}

// AddLoopVersion adds v to the "loop_version" field.
func (u *GateRunUpsert) AddLoopVersion(v int) *GateRunUpsert {
	u.Add(gaterun.FieldLoopVersion, v)
	return u
}

// SetStatus sets the "status" field.
func (u *GateRunUpsert) SetStatus(v string) *GateRunUpsert {
	u.Set(gaterun.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GateRunUpsert) UpdateStatus() *GateRunUpsert {
	u.SetExcluded(gaterun.FieldStatus)
	return u
}

// SetGatePassed sets the "gate_passed" field.
func (u *GateRunUpsert) SetGatePassed(v bool) *GateRunUpsert {
	u.Set(gaterun.FieldGatePassed, v)
	return u
}

// UpdateGatePassed sets the "gate_passed" field to the value that was provided on create.
func (u *GateRunUpsert) UpdateGatePassed() *GateRunUpsert {
	u.SetExcluded(gaterun.FieldGatePassed)
	return u
}

// SetTriggerEvent sets the "trigger_event" field.
func (u *GateRunUpsert) SetTriggerEvent(v string) *GateRunUpsert {
	u.Set(gaterun.FieldTriggerEvent, v)
	return u
}

// UpdateTriggerEvent sets the "trigger_event" field to the value that was provided on create.
func (u *GateRunUpsert) UpdateTriggerEvent() *GateRunUpsert {
	u.SetExcluded(gaterun.FieldTriggerEvent)
	return u
}

// ClearTriggerEvent clears the value of the "trigger_event" field.
func (u *GateRunUpsert) ClearTriggerEvent() *GateRunUpsert {
	u.SetNull(gaterun.FieldTriggerEvent)
	return u
}

// SetErrorCode sets the "error_code" field.
func (u *GateRunUpsert) SetErrorCode(v string) *GateRunUpsert {
	u.Set(gaterun.FieldErrorCode, v)
	return u
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *GateRunUpsert) UpdateErrorCode() *GateRunUpsert {
	u.SetExcluded(gaterun.FieldErrorCode)
	return u
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *GateRunUpsert) ClearErrorCode() *GateRunUpsert {
	u.SetNull(gaterun.FieldErrorCode)
	return u
}

// SetRequiredCheckSource sets the "required_check_source" field.
func (u *GateRunUpsert) SetRequiredCheckSource(v string) *GateRunUpsert {
	u.Set(gaterun.FieldRequiredCheckSource, v)
	return u
}

// UpdateRequiredCheckSource sets the "required_check_source" field to the value that was provided on create.
func (u *GateRunUpsert) UpdateRequiredCheckSource() *GateRunUpsert {
	u.SetExcluded(gaterun.FieldRequiredCheckSource)
	return u
}

// ClearRequiredCheckSource clears the value of the "required_check_source" field.
func (u *GateRunUpsert) ClearRequiredCheckSource() *GateRunUpsert {
	u.SetNull(gaterun.FieldRequiredCheckSource)
	return u
}

// SetRequiredChecks sets the "required_checks" field.
func (u *GateRunUpsert) SetRequiredChecks(v []string) *GateRunUpsert {
	u.Set(gaterun.FieldRequiredChecks, v)
	return u
}

// UpdateRequiredChecks sets the "required_checks" field to the value that was provided on create.
func (u *GateRunUpsert) UpdateRequiredChecks() *GateRunUpsert {
	u.SetExcluded(gaterun.FieldRequiredChecks)
	return u
}

// ClearRequiredChecks clears the value of the "required_checks" field.
func (u *GateRunUpsert) ClearRequiredChecks() *GateRunUpsert {
	u.SetNull(gaterun.FieldRequiredChecks)
	return u
}

// SetFailingRequiredChecks sets the "failing_required_checks" field.
func (u *GateRunUpsert) SetFailingRequiredChecks(v []string) *GateRunUpsert {
	u.Set(gaterun.FieldFailingRequiredChecks, v)
	return u
}

// UpdateFailingRequiredChecks sets the "failing_required_checks" field to the value that was provided on create.
func (u *GateRunUpsert) UpdateFailingRequiredChecks() *GateRunUpsert {
	u.SetExcluded(gaterun.FieldFailingRequiredChecks)
	return u
}

// ClearFailingRequiredChecks clears the value of the "failing_required_checks" field.
func (u *GateRunUpsert) ClearFailingRequiredChecks() *GateRunUpsert {
	u.SetNull(gaterun.FieldFailingRequiredChecks)
	return u
}

// SetUnresolvedThreadCount sets the "unresolved_thread_count" field.
func (u *GateRunUpsert) SetUnresolvedThreadCount(v int) *GateRunUpsert {
	u.Set(gaterun.FieldUnresolvedThreadCount, v)
	return u
}

// UpdateUnresolvedThreadCount sets the "unresolved_thread_count" field to the value that was provided on create.
func (u *GateRunUpsert) UpdateUnresolvedThreadCount() *GateRunUpsert {
	u.SetExcluded(gaterun.FieldUnresolvedThreadCount)
	return u
}

// AddUnresolvedThreadCount adds v to the "unresolved_thread_count" field.
func (u *GateRunUpsert) AddUnresolvedThreadCount(v int) *GateRunUpsert {
	u.Add(gaterun.FieldUnresolvedThreadCount, v)
	return u
}

// ClearUnresolvedThreadCount clears the value of the "unresolved_thread_count" field.
func (u *GateRunUpsert) ClearUnresolvedThreadCount() *GateRunUpsert {
	u.SetNull(gaterun.FieldUnresolvedThreadCount)
	return u
}

// SetUnresolvedThreadCountSource sets the "unresolved_thread_count_source" field.
func (u *GateRunUpsert) SetUnresolvedThreadCountSource(v string) *GateRunUpsert {
	u.Set(gaterun.FieldUnresolvedThreadCountSource, v)
	return u
}

// UpdateUnresolvedThreadCountSource sets the "unresolved_thread_count_source" field to the value that was provided on create.
func (u *GateRunUpsert) UpdateUnresolvedThreadCountSource() *GateRunUpsert {
	u.SetExcluded(gaterun.FieldUnresolvedThreadCountSource)
	return u
}

// ClearUnresolvedThreadCountSource clears the value of the "unresolved_thread_count_source" field.
func (u *GateRunUpsert) ClearUnresolvedThreadCountSource() *GateRunUpsert {
	u.SetNull(gaterun.FieldUnresolvedThreadCountSource)
	return u
}

// SetInvalidOutput sets the "invalid_output" field.
func (u *GateRunUpsert) SetInvalidOutput(v bool) *GateRunUpsert {
	u.Set(gaterun.FieldInvalidOutput, v)
	return u
}

// UpdateInvalidOutput sets the "invalid_output" field to the value that was provided on create.
func (u *GateRunUpsert) UpdateInvalidOutput() *GateRunUpsert {
	u.SetExcluded(gaterun.FieldInvalidOutput)
	return u
}

// SetDetails sets the "details" field.
func (u *GateRunUpsert) SetDetails(v map[string]interface{}) *GateRunUpsert {
	u.Set(gaterun.FieldDetails, v)
	return u
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *GateRunUpsert) UpdateDetails() *GateRunUpsert {
	u.SetExcluded(gaterun.FieldDetails)
	return u
}

// ClearDetails clears the value of the "details" field.
func (u *GateRunUpsert) ClearDetails() *GateRunUpsert {
	u.SetNull(gaterun.FieldDetails)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *GateRunUpsert) SetCreatedAt(v time.Time) *GateRunUpsert {
	u.Set(gaterun.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *GateRunUpsert) UpdateCreatedAt() *GateRunUpsert {
	u.SetExcluded(gaterun.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GateRunUpsert) SetUpdatedAt(v time.Time) *GateRunUpsert {
	u.Set(gaterun.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GateRunUpsert) UpdateUpdatedAt() *GateRunUpsert {
	u.SetExcluded(gaterun.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GateRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gaterun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GateRunUpsertOne) UpdateNewValues() *GateRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(gaterun.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GateRun.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GateRunUpsertOne) Ignore() *GateRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GateRunUpsertOne) DoNothing() *GateRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GateRunCreate.OnConflict
// documentation for more info.
func (u *GateRunUpsertOne) Update(set func(*GateRunUpsert)) *GateRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GateRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetLoopID sets the "loop_id" field.
func (u *GateRunUpsertOne) SetLoopID(v string) *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.SetLoopID(v)
	})
}

// UpdateLoopID sets the "loop_id" field to the value that was provided on create.
func (u *GateRunUpsertOne) UpdateLoopID() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateLoopID()
	})
}

// SetGateKind sets the "gate_kind" field.
func (u *GateRunUpsertOne) SetGateKind(v gaterun.GateKind) *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.SetGateKind(v)
	})
}

// UpdateGateKind sets the "gate_kind" field to the value that was provided on create.
func (u *GateRunUpsertOne) UpdateGateKind() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateGateKind()
	})
}

// SetHeadSha sets the "head_sha" field.
func (u *GateRunUpsertOne) SetHeadSha(v string) *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.SetHeadSha(v)
	})
}

// UpdateHeadSha sets the "head_sha" field to the value that was provided on create.
func (u *GateRunUpsertOne) UpdateHeadSha() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateHeadSha()
	})
}

// SetLoopVersion sets the "loop_version" field.
func (u *GateRunUpsertOne) SetLoopVersion(v int) *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.SetLoopVersion(v)
	})
}

// AddLoopVersion adds v to the "loop_version" field.
func (u *GateRunUpsertOne) AddLoopVersion(v int) *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.AddLoopVersion(v)
	})
}

// UpdateLoopVersion sets the "loop_version" field to the value that was provided on create.
func (u *GateRunUpsertOne) UpdateLoopVersion() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateLoopVersion()
	})
}

// SetStatus sets the "status" field.
func (u *GateRunUpsertOne) SetStatus(v string) *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GateRunUpsertOne) UpdateStatus() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateStatus()
	})
}

// SetGatePassed sets the "gate_passed" field.
func (u *GateRunUpsertOne) SetGatePassed(v bool) *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.SetGatePassed(v)
	})
}

// UpdateGatePassed sets the "gate_passed" field to the value that was provided on create.
func (u *GateRunUpsertOne) UpdateGatePassed() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateGatePassed()
	})
}

// SetTriggerEvent sets the "trigger_event" field.
func (u *GateRunUpsertOne) SetTriggerEvent(v string) *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.SetTriggerEvent(v)
	})
}

// UpdateTriggerEvent sets the "trigger_event" field to the value that was provided on create.
func (u *GateRunUpsertOne) UpdateTriggerEvent() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateTriggerEvent()
	})
}

// ClearTriggerEvent clears the value of the "trigger_event" field.
func (u *GateRunUpsertOne) ClearTriggerEvent() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.ClearTriggerEvent()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *GateRunUpsertOne) SetErrorCode(v string) *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *GateRunUpsertOne) UpdateErrorCode() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *GateRunUpsertOne) ClearErrorCode() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.ClearErrorCode()
	})
}

// SetRequiredCheckSource sets the "required_check_source" field.
func (u *GateRunUpsertOne) SetRequiredCheckSource(v string) *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.SetRequiredCheckSource(v)
	})
}

// UpdateRequiredCheckSource sets the "required_check_source" field to the value that was provided on create.
func (u *GateRunUpsertOne) UpdateRequiredCheckSource() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateRequiredCheckSource()
	})
}

// ClearRequiredCheckSource clears the value of the "required_check_source" field.
func (u *GateRunUpsertOne) ClearRequiredCheckSource() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.ClearRequiredCheckSource()
	})
}

// SetRequiredChecks sets the "required_checks" field.
func (u *GateRunUpsertOne) SetRequiredChecks(v []string) *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.SetRequiredChecks(v)
	})
}

// UpdateRequiredChecks sets the "required_checks" field to the value that was provided on create.
func (u *GateRunUpsertOne) UpdateRequiredChecks() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateRequiredChecks()
	})
}

// ClearRequiredChecks clears the value of the "required_checks" field.
func (u *GateRunUpsertOne) ClearRequiredChecks() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.ClearRequiredChecks()
	})
}

// SetFailingRequiredChecks sets the "failing_required_checks" field.
func (u *GateRunUpsertOne) SetFailingRequiredChecks(v []string) *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.SetFailingRequiredChecks(v)
	})
}

// UpdateFailingRequiredChecks sets the "failing_required_checks" field to the value that was provided on create.
func (u *GateRunUpsertOne) UpdateFailingRequiredChecks() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateFailingRequiredChecks()
	})
}

// ClearFailingRequiredChecks clears the value of the "failing_required_checks" field.
func (u *GateRunUpsertOne) ClearFailingRequiredChecks() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.ClearFailingRequiredChecks()
	})
}

// SetUnresolvedThreadCount sets the "unresolved_thread_count" field.
func (u *GateRunUpsertOne) SetUnresolvedThreadCount(v int) *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.SetUnresolvedThreadCount(v)
	})
}

// AddUnresolvedThreadCount adds v to the "unresolved_thread_count" field.
func (u *GateRunUpsertOne) AddUnresolvedThreadCount(v int) *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.AddUnresolvedThreadCount(v)
	})
}

// UpdateUnresolvedThreadCount sets the "unresolved_thread_count" field to the value that was provided on create.
func (u *GateRunUpsertOne) UpdateUnresolvedThreadCount() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateUnresolvedThreadCount()
	})
}

// ClearUnresolvedThreadCount clears the value of the "unresolved_thread_count" field.
func (u *GateRunUpsertOne) ClearUnresolvedThreadCount() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.ClearUnresolvedThreadCount()
	})
}

// SetUnresolvedThreadCountSource sets the "unresolved_thread_count_source" field.
func (u *GateRunUpsertOne) SetUnresolvedThreadCountSource(v string) *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.SetUnresolvedThreadCountSource(v)
	})
}

// UpdateUnresolvedThreadCountSource sets the "unresolved_thread_count_source" field to the value that was provided on create.
func (u *GateRunUpsertOne) UpdateUnresolvedThreadCountSource() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateUnresolvedThreadCountSource()
	})
}

// ClearUnresolvedThreadCountSource clears the value of the "unresolved_thread_count_source" field.
func (u *GateRunUpsertOne) ClearUnresolvedThreadCountSource() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.ClearUnresolvedThreadCountSource()
	})
}

// SetInvalidOutput sets the "invalid_output" field.
func (u *GateRunUpsertOne) SetInvalidOutput(v bool) *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.SetInvalidOutput(v)
	})
}

// UpdateInvalidOutput sets the "invalid_output" field to the value that was provided on create.
func (u *GateRunUpsertOne) UpdateInvalidOutput() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateInvalidOutput()
	})
}

// SetDetails sets the "details" field.
func (u *GateRunUpsertOne) SetDetails(v map[string]interface{}) *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.SetDetails(v)
	})
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *GateRunUpsertOne) UpdateDetails() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateDetails()
	})
}

// ClearDetails clears the value of the "details" field.
func (u *GateRunUpsertOne) ClearDetails() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.ClearDetails()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *GateRunUpsertOne) SetCreatedAt(v time.Time) *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *GateRunUpsertOne) UpdateCreatedAt() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GateRunUpsertOne) SetUpdatedAt(v time.Time) *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GateRunUpsertOne) UpdateUpdatedAt() *GateRunUpsertOne {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GateRunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GateRunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GateRunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GateRunUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GateRunUpsertOne.ID is not supported by MySQL driver. Use GateRunUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GateRunUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GateRunCreateBulk is the builder for creating many GateRun entities in bulk.
type GateRunCreateBulk struct {
	config
	err      error
	builders []*GateRunCreate
	conflict []sql.ConflictOption
}

// Save creates the GateRun entities in the database.
func (_c *GateRunCreateBulk) Save(ctx context.Context) ([]*GateRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GateRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GateRunMutation)
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
func (_c *GateRunCreateBulk) SaveX(ctx context.Context) []*GateRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GateRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GateRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GateRun.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GateRunUpsert) {
//			SetLoopID(v+v).
//		}).
//		Exec(ctx)
func (_c *GateRunCreateBulk) OnConflict(opts ...sql.ConflictOption) *GateRunUpsertBulk {
	_c.conflict = opts
	return &GateRunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GateRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GateRunCreateBulk) OnConflictColumns(columns ...string) *GateRunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GateRunUpsertBulk{
		create: _c,
	}
}

// GateRunUpsertBulk is the builder for "upsert"-ing
// a bulk of GateRun nodes.
type GateRunUpsertBulk struct {
	create *GateRunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GateRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gaterun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GateRunUpsertBulk) UpdateNewValues() *GateRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(gaterun.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GateRun.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GateRunUpsertBulk) Ignore() *GateRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GateRunUpsertBulk) DoNothing() *GateRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GateRunCreateBulk.OnConflict
// documentation for more info.
func (u *GateRunUpsertBulk) Update(set func(*GateRunUpsert)) *GateRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GateRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetLoopID sets the "loop_id" field.
func (u *GateRunUpsertBulk) SetLoopID(v string) *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.SetLoopID(v)
	})
}

// UpdateLoopID sets the "loop_id" field to the value that was provided on create.
func (u *GateRunUpsertBulk) UpdateLoopID() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateLoopID()
	})
}

// SetGateKind sets the "gate_kind" field.
func (u *GateRunUpsertBulk) SetGateKind(v gaterun.GateKind) *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.SetGateKind(v)
	})
}

// UpdateGateKind sets the "gate_kind" field to the value that was provided on create.
func (u *GateRunUpsertBulk) UpdateGateKind() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateGateKind()
	})
}

// SetHeadSha sets the "head_sha" field.
func (u *GateRunUpsertBulk) SetHeadSha(v string) *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.SetHeadSha(v)
	})
}

// UpdateHeadSha sets the "head_sha" field to the value that was provided on create.
func (u *GateRunUpsertBulk) UpdateHeadSha() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateHeadSha()
	})
}

// SetLoopVersion sets the "loop_version" field.
func (u *GateRunUpsertBulk) SetLoopVersion(v int) *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.SetLoopVersion(v)
	})
}

// AddLoopVersion adds v to the "loop_version" field.
func (u *GateRunUpsertBulk) AddLoopVersion(v int) *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.AddLoopVersion(v)
	})
}

// UpdateLoopVersion sets the "loop_version" field to the value that was provided on create.
func (u *GateRunUpsertBulk) UpdateLoopVersion() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateLoopVersion()
	})
}

// SetStatus sets the "status" field.
func (u *GateRunUpsertBulk) SetStatus(v string) *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GateRunUpsertBulk) UpdateStatus() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateStatus()
	})
}

// SetGatePassed sets the "gate_passed" field.
func (u *GateRunUpsertBulk) SetGatePassed(v bool) *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.SetGatePassed(v)
	})
}

// UpdateGatePassed sets the "gate_passed" field to the value that was provided on create.
func (u *GateRunUpsertBulk) UpdateGatePassed() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateGatePassed()
	})
}

// SetTriggerEvent sets the "trigger_event" field.
func (u *GateRunUpsertBulk) SetTriggerEvent(v string) *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.SetTriggerEvent(v)
	})
}

// UpdateTriggerEvent sets the "trigger_event" field to the value that was provided on create.
func (u *GateRunUpsertBulk) UpdateTriggerEvent() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateTriggerEvent()
	})
}

// ClearTriggerEvent clears the value of the "trigger_event" field.
func (u *GateRunUpsertBulk) ClearTriggerEvent() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.ClearTriggerEvent()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *GateRunUpsertBulk) SetErrorCode(v string) *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *GateRunUpsertBulk) UpdateErrorCode() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *GateRunUpsertBulk) ClearErrorCode() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.ClearErrorCode()
	})
}

// SetRequiredCheckSource sets the "required_check_source" field.
func (u *GateRunUpsertBulk) SetRequiredCheckSource(v string) *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.SetRequiredCheckSource(v)
	})
}

// UpdateRequiredCheckSource sets the "required_check_source" field to the value that was provided on create.
func (u *GateRunUpsertBulk) UpdateRequiredCheckSource() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateRequiredCheckSource()
	})
}

// ClearRequiredCheckSource clears the value of the "required_check_source" field.
func (u *GateRunUpsertBulk) ClearRequiredCheckSource() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.ClearRequiredCheckSource()
	})
}

// SetRequiredChecks sets the "required_checks" field.
func (u *GateRunUpsertBulk) SetRequiredChecks(v []string) *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.SetRequiredChecks(v)
	})
}

// UpdateRequiredChecks sets the "required_checks" field to the value that was provided on create.
func (u *GateRunUpsertBulk) UpdateRequiredChecks() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateRequiredChecks()
	})
}

// ClearRequiredChecks clears the value of the "required_checks" field.
func (u *GateRunUpsertBulk) ClearRequiredChecks() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.ClearRequiredChecks()
	})
}

// SetFailingRequiredChecks sets the "failing_required_checks" field.
func (u *GateRunUpsertBulk) SetFailingRequiredChecks(v []string) *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.SetFailingRequiredChecks(v)
	})
}

// UpdateFailingRequiredChecks sets the "failing_required_checks" field to the value that was provided on create.
func (u *GateRunUpsertBulk) UpdateFailingRequiredChecks() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateFailingRequiredChecks()
	})
}

// ClearFailingRequiredChecks clears the value of the "failing_required_checks" field.
func (u *GateRunUpsertBulk) ClearFailingRequiredChecks() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.ClearFailingRequiredChecks()
	})
}

// SetUnresolvedThreadCount sets the "unresolved_thread_count" field.
func (u *GateRunUpsertBulk) SetUnresolvedThreadCount(v int) *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.SetUnresolvedThreadCount(v)
	})
}

// AddUnresolvedThreadCount adds v to the "unresolved_thread_count" field.
func (u *GateRunUpsertBulk) AddUnresolvedThreadCount(v int) *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.AddUnresolvedThreadCount(v)
	})
}

// UpdateUnresolvedThreadCount sets the "unresolved_thread_count" field to the value that was provided on create.
func (u *GateRunUpsertBulk) UpdateUnresolvedThreadCount() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateUnresolvedThreadCount()
	})
}

// ClearUnresolvedThreadCount clears the value of the "unresolved_thread_count" field.
func (u *GateRunUpsertBulk) ClearUnresolvedThreadCount() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.ClearUnresolvedThreadCount()
	})
}

// SetUnresolvedThreadCountSource sets the "unresolved_thread_count_source" field.
func (u *GateRunUpsertBulk) SetUnresolvedThreadCountSource(v string) *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.SetUnresolvedThreadCountSource(v)
	})
}

// UpdateUnresolvedThreadCountSource sets the "unresolved_thread_count_source" field to the value that was provided on create.
func (u *GateRunUpsertBulk) UpdateUnresolvedThreadCountSource() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateUnresolvedThreadCountSource()
	})
}

// ClearUnresolvedThreadCountSource clears the value of the "unresolved_thread_count_source" field.
func (u *GateRunUpsertBulk) ClearUnresolvedThreadCountSource() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.ClearUnresolvedThreadCountSource()
	})
}

// SetInvalidOutput sets the "invalid_output" field.
func (u *GateRunUpsertBulk) SetInvalidOutput(v bool) *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.SetInvalidOutput(v)
	})
}

// UpdateInvalidOutput sets the "invalid_output" field to the value that was provided on create.
func (u *GateRunUpsertBulk) UpdateInvalidOutput() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateInvalidOutput()
	})
}

// SetDetails sets the "details" field.
func (u *GateRunUpsertBulk) SetDetails(v map[string]interface{}) *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.SetDetails(v)
	})
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *GateRunUpsertBulk) UpdateDetails() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateDetails()
	})
}

// ClearDetails clears the value of the "details" field.
func (u *GateRunUpsertBulk) ClearDetails() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.ClearDetails()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *GateRunUpsertBulk) SetCreatedAt(v time.Time) *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *GateRunUpsertBulk) UpdateCreatedAt() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GateRunUpsertBulk) SetUpdatedAt(v time.Time) *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GateRunUpsertBulk) UpdateUpdatedAt() *GateRunUpsertBulk {
	return u.Update(func(s *GateRunUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GateRunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GateRunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GateRunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GateRunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
