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
	"github.com/codeready-toolchain/loopd/ent/gaterun"
	"github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// GateRunUpdate is the builder for updating GateRun entities.
type GateRunUpdate struct {
	config
	hooks    []Hook
	mutation *GateRunMutation
}

// Where appends a list predicates to the GateRunUpdate builder.
func (_u *GateRunUpdate) Where(ps ...predicate.GateRun) *GateRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLoopID sets the "loop_id" field.
func (_u *GateRunUpdate) SetLoopID(v string) *GateRunUpdate {
	_u.mutation.SetLoopID(v)
	return _u
}

// SetNillableLoopID sets the "loop_id" field if the given value is not nil.
func (_u *GateRunUpdate) SetNillableLoopID(v *string) *GateRunUpdate {
	if v != nil {
		_u.SetLoopID(*v)
	}
	return _u
}

// SetGateKind sets the "gate_kind" field.
func (_u *GateRunUpdate) SetGateKind(v gaterun.GateKind) *GateRunUpdate {
	_u.mutation.SetGateKind(v)
	return _u
}

// SetNillableGateKind sets the "gate_kind" field if the given value is not nil.
func (_u *GateRunUpdate) SetNillableGateKind(v *gaterun.GateKind) *GateRunUpdate {
	if v != nil {
		_u.SetGateKind(*v)
	}
	return _u
}

// SetHeadSha sets the "head_sha" field.
func (_u *GateRunUpdate) SetHeadSha(v string) *GateRunUpdate {
	_u.mutation.SetHeadSha(v)
	return _u
}

// SetNillableHeadSha sets the "head_sha" field if the given value is not nil.
func (_u *GateRunUpdate) SetNillableHeadSha(v *string) *GateRunUpdate {
	if v != nil {
		_u.SetHeadSha(*v)
	}
	return _u
}

// SetLoopVersion sets the "loop_version" field.
func (_u *GateRunUpdate) SetLoopVersion(v int) *GateRunUpdate {
	_u.mutation.ResetLoopVersion()
	_u.mutation.SetLoopVersion(v)
	return _u
}

// SetNillableLoopVersion sets the "loop_version" field if the given value is not nil.
func (_u *GateRunUpdate) SetNillableLoopVersion(v *int) *GateRunUpdate {
	if v != nil {
		_u.SetLoopVersion(*v)
	}
	return _u
}

// AddLoopVersion adds value to the "loop_version" field.
func (_u *GateRunUpdate) AddLoopVersion(v int) *GateRunUpdate {
	_u.mutation.AddLoopVersion(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *GateRunUpdate) SetStatus(v string) *GateRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GateRunUpdate) SetNillableStatus(v *string) *GateRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGatePassed sets the "gate_passed" field.
func (_u *GateRunUpdate) SetGatePassed(v bool) *GateRunUpdate {
	_u.mutation.SetGatePassed(v)
	return _u
}

// SetNillableGatePassed sets the "gate_passed" field if the given value is not nil.
func (_u *GateRunUpdate) SetNillableGatePassed(v *bool) *GateRunUpdate {
	if v != nil {
		_u.SetGatePassed(*v)
	}
	return _u
}

// SetTriggerEvent sets the "trigger_event" field.
func (_u *GateRunUpdate) SetTriggerEvent(v string) *GateRunUpdate {
	_u.mutation.SetTriggerEvent(v)
	return _u
}

// SetNillableTriggerEvent sets the "trigger_event" field if the given value is not nil.
func (_u *GateRunUpdate) SetNillableTriggerEvent(v *string) *GateRunUpdate {
	if v != nil {
		_u.SetTriggerEvent(*v)
	}
	return _u
}

// ClearTriggerEvent clears the value of the "trigger_event" field.
func (_u *GateRunUpdate) ClearTriggerEvent() *GateRunUpdate {
	_u.mutation.ClearTriggerEvent()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *GateRunUpdate) SetErrorCode(v string) *GateRunUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *GateRunUpdate) SetNillableErrorCode(v *string) *GateRunUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *GateRunUpdate) ClearErrorCode() *GateRunUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetRequiredCheckSource sets the "required_check_source" field.
func (_u *GateRunUpdate) SetRequiredCheckSource(v string) *GateRunUpdate {
	_u.mutation.SetRequiredCheckSource(v)
	return _u
}

// SetNillableRequiredCheckSource sets the "required_check_source" field if the given value is not nil.
func (_u *GateRunUpdate) SetNillableRequiredCheckSource(v *string) *GateRunUpdate {
	if v != nil {
		_u.SetRequiredCheckSource(*v)
	}
	return _u
}

// ClearRequiredCheckSource clears the value of the "required_check_source" field.
func (_u *GateRunUpdate) ClearRequiredCheckSource() *GateRunUpdate {
	_u.mutation.ClearRequiredCheckSource()
	return _u
}

// SetRequiredChecks sets the "required_checks" field.
func (_u *GateRunUpdate) SetRequiredChecks(v []string) *GateRunUpdate {
	_u.mutation.SetRequiredChecks(v)
	return _u
}

// AppendRequiredChecks appends value to the "required_checks" field.
func (_u *GateRunUpdate) AppendRequiredChecks(v []string) *GateRunUpdate {
	_u.mutation.AppendRequiredChecks(v)
	return _u
}

// ClearRequiredChecks clears the value of the "required_checks" field.
func (_u *GateRunUpdate) ClearRequiredChecks() *GateRunUpdate {
	_u.mutation.ClearRequiredChecks()
	return _u
}

// SetFailingRequiredChecks sets the "failing_required_checks" field.
func (_u *GateRunUpdate) SetFailingRequiredChecks(v []string) *GateRunUpdate {
	_u.mutation.SetFailingRequiredChecks(v)
	return _u
}

// AppendFailingRequiredChecks appends value to the "failing_required_checks" field.
func (_u *GateRunUpdate) AppendFailingRequiredChecks(v []string) *GateRunUpdate {
	_u.mutation.AppendFailingRequiredChecks(v)
	return _u
}

// ClearFailingRequiredChecks clears the value of the "failing_required_checks" field.
func (_u *GateRunUpdate) ClearFailingRequiredChecks() *GateRunUpdate {
	_u.mutation.ClearFailingRequiredChecks()
	return _u
}

// SetUnresolvedThreadCount sets the "unresolved_thread_count" field.
func (_u *GateRunUpdate) SetUnresolvedThreadCount(v int) *GateRunUpdate {
	_u.mutation.ResetUnresolvedThreadCount()
	_u.mutation.SetUnresolvedThreadCount(v)
	return _u
}

// SetNillableUnresolvedThreadCount sets the "unresolved_thread_count" field if the given value is not nil.
func (_u *GateRunUpdate) SetNillableUnresolvedThreadCount(v *int) *GateRunUpdate {
	if v != nil {
		_u.SetUnresolvedThreadCount(*v)
	}
	return _u
}

// AddUnresolvedThreadCount adds value to the "unresolved_thread_count" field.
func (_u *GateRunUpdate) AddUnresolvedThreadCount(v int) *GateRunUpdate {
	_u.mutation.AddUnresolvedThreadCount(v)
	return _u
}

// ClearUnresolvedThreadCount clears the value of the "unresolved_thread_count" field.
func (_u *GateRunUpdate) ClearUnresolvedThreadCount() *GateRunUpdate {
	_u.mutation.ClearUnresolvedThreadCount()
	return _u
}

// SetUnresolvedThreadCountSource sets the "unresolved_thread_count_source" field.
func (_u *GateRunUpdate) SetUnresolvedThreadCountSource(v string) *GateRunUpdate {
	_u.mutation.SetUnresolvedThreadCountSource(v)
	return _u
}

// SetNillableUnresolvedThreadCountSource sets the "unresolved_thread_count_source" field if the given value is not nil.
func (_u *GateRunUpdate) SetNillableUnresolvedThreadCountSource(v *string) *GateRunUpdate {
	if v != nil {
		_u.SetUnresolvedThreadCountSource(*v)
	}
	return _u
}

// ClearUnresolvedThreadCountSource clears the value of the "unresolved_thread_count_source" field.
func (_u *GateRunUpdate) ClearUnresolvedThreadCountSource() *GateRunUpdate {
	_u.mutation.ClearUnresolvedThreadCountSource()
	return _u
}

// SetInvalidOutput sets the "invalid_output" field.
func (_u *GateRunUpdate) SetInvalidOutput(v bool) *GateRunUpdate {
	_u.mutation.SetInvalidOutput(v)
	return _u
}

// SetNillableInvalidOutput sets the "invalid_output" field if the given value is not nil.
func (_u *GateRunUpdate) SetNillableInvalidOutput(v *bool) *GateRunUpdate {
	if v != nil {
		_u.SetInvalidOutput(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *GateRunUpdate) SetDetails(v map[string]interface{}) *GateRunUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *GateRunUpdate) ClearDetails() *GateRunUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GateRunUpdate) SetCreatedAt(v time.Time) *GateRunUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GateRunUpdate) SetNillableCreatedAt(v *time.Time) *GateRunUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GateRunUpdate) SetUpdatedAt(v time.Time) *GateRunUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLoop sets the "loop" edge to the Loop entity.
func (_u *GateRunUpdate) SetLoop(v *Loop) *GateRunUpdate {
	return _u.SetLoopID(v.ID)
}

// Mutation returns the GateRunMutation object of the builder.
func (_u *GateRunUpdate) Mutation() *GateRunMutation {
	return _u.mutation
}

// ClearLoop clears the "loop" edge to the Loop entity.
func (_u *GateRunUpdate) ClearLoop() *GateRunUpdate {
	_u.mutation.ClearLoop()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GateRunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GateRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GateRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GateRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GateRunUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := gaterun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GateRunUpdate) check() error {
	if v, ok := _u.mutation.GateKind(); ok {
		if err := gaterun.GateKindValidator(v); err != nil {
			return &ValidationError{Name: "gate_kind", err: fmt.Errorf(`ent: validator failed for field "GateRun.gate_kind": %w`, err)}
		}
	}
	if _u.mutation.LoopCleared() && len(_u.mutation.LoopIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GateRun.loop"`)
	}
	return nil
}

func (_u *GateRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gaterun.Table, gaterun.Columns, sqlgraph.NewFieldSpec(gaterun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GateKind(); ok {
		_spec.SetField(gaterun.FieldGateKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.HeadSha(); ok {
		_spec.SetField(gaterun.FieldHeadSha, field.TypeString, value)
	}
	if value, ok := _u.mutation.LoopVersion(); ok {
		_spec.SetField(gaterun.FieldLoopVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLoopVersion(); ok {
		_spec.AddField(gaterun.FieldLoopVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(gaterun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.GatePassed(); ok {
		_spec.SetField(gaterun.FieldGatePassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TriggerEvent(); ok {
		_spec.SetField(gaterun.FieldTriggerEvent, field.TypeString, value)
	}
	if _u.mutation.TriggerEventCleared() {
		_spec.ClearField(gaterun.FieldTriggerEvent, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(gaterun.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(gaterun.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.RequiredCheckSource(); ok {
		_spec.SetField(gaterun.FieldRequiredCheckSource, field.TypeString, value)
	}
	if _u.mutation.RequiredCheckSourceCleared() {
		_spec.ClearField(gaterun.FieldRequiredCheckSource, field.TypeString)
	}
	if value, ok := _u.mutation.RequiredChecks(); ok {
		_spec.SetField(gaterun.FieldRequiredChecks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredChecks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gaterun.FieldRequiredChecks, value)
		})
	}
	if _u.mutation.RequiredChecksCleared() {
		_spec.ClearField(gaterun.FieldRequiredChecks, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailingRequiredChecks(); ok {
		_spec.SetField(gaterun.FieldFailingRequiredChecks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailingRequiredChecks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gaterun.FieldFailingRequiredChecks, value)
		})
	}
	if _u.mutation.FailingRequiredChecksCleared() {
		_spec.ClearField(gaterun.FieldFailingRequiredChecks, field.TypeJSON)
	}
	if value, ok := _u.mutation.UnresolvedThreadCount(); ok {
		_spec.SetField(gaterun.FieldUnresolvedThreadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnresolvedThreadCount(); ok {
		_spec.AddField(gaterun.FieldUnresolvedThreadCount, field.TypeInt, value)
	}
	if _u.mutation.UnresolvedThreadCountCleared() {
		_spec.ClearField(gaterun.FieldUnresolvedThreadCount, field.TypeInt)
	}
	if value, ok := _u.mutation.UnresolvedThreadCountSource(); ok {
		_spec.SetField(gaterun.FieldUnresolvedThreadCountSource, field.TypeString, value)
	}
	if _u.mutation.UnresolvedThreadCountSourceCleared() {
		_spec.ClearField(gaterun.FieldUnresolvedThreadCountSource, field.TypeString)
	}
	if value, ok := _u.mutation.InvalidOutput(); ok {
		_spec.SetField(gaterun.FieldInvalidOutput, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(gaterun.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(gaterun.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(gaterun.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(gaterun.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LoopCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LoopIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gaterun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GateRunUpdateOne is the builder for updating a single GateRun entity.
type GateRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GateRunMutation
}

// SetLoopID sets the "loop_id" field.
func (_u *GateRunUpdateOne) SetLoopID(v string) *GateRunUpdateOne {
	_u.mutation.SetLoopID(v)
	return _u
}

// SetNillableLoopID sets the "loop_id" field if the given value is not nil.
func (_u *GateRunUpdateOne) SetNillableLoopID(v *string) *GateRunUpdateOne {
	if v != nil {
		_u.SetLoopID(*v)
	}
	return _u
}

// SetGateKind sets the "gate_kind" field.
func (_u *GateRunUpdateOne) SetGateKind(v gaterun.GateKind) *GateRunUpdateOne {
	_u.mutation.SetGateKind(v)
	return _u
}

// SetNillableGateKind sets the "gate_kind" field if the given value is not nil.
func (_u *GateRunUpdateOne) SetNillableGateKind(v *gaterun.GateKind) *GateRunUpdateOne {
	if v != nil {
		_u.SetGateKind(*v)
	}
	return _u
}

// SetHeadSha sets the "head_sha" field.
func (_u *GateRunUpdateOne) SetHeadSha(v string) *GateRunUpdateOne {
	_u.mutation.SetHeadSha(v)
	return _u
}

// SetNillableHeadSha sets the "head_sha" field if the given value is not nil.
func (_u *GateRunUpdateOne) SetNillableHeadSha(v *string) *GateRunUpdateOne {
	if v != nil {
		_u.SetHeadSha(*v)
	}
	return _u
}

// SetLoopVersion sets the "loop_version" field.
func (_u *GateRunUpdateOne) SetLoopVersion(v int) *GateRunUpdateOne {
	_u.mutation.ResetLoopVersion()
	_u.mutation.SetLoopVersion(v)
	return _u
}

// SetNillableLoopVersion sets the "loop_version" field if the given value is not nil.
func (_u *GateRunUpdateOne) SetNillableLoopVersion(v *int) *GateRunUpdateOne {
	if v != nil {
		_u.SetLoopVersion(*v)
	}
	return _u
}

// AddLoopVersion adds value to the "loop_version" field.
func (_u *GateRunUpdateOne) AddLoopVersion(v int) *GateRunUpdateOne {
	_u.mutation.AddLoopVersion(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *GateRunUpdateOne) SetStatus(v string) *GateRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GateRunUpdateOne) SetNillableStatus(v *string) *GateRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGatePassed sets the "gate_passed" field.
func (_u *GateRunUpdateOne) SetGatePassed(v bool) *GateRunUpdateOne {
	_u.mutation.SetGatePassed(v)
	return _u
}

// SetNillableGatePassed sets the "gate_passed" field if the given value is not nil.
func (_u *GateRunUpdateOne) SetNillableGatePassed(v *bool) *GateRunUpdateOne {
	if v != nil {
		_u.SetGatePassed(*v)
	}
	return _u
}

// SetTriggerEvent sets the "trigger_event" field.
func (_u *GateRunUpdateOne) SetTriggerEvent(v string) *GateRunUpdateOne {
	_u.mutation.SetTriggerEvent(v)
	return _u
}

// SetNillableTriggerEvent sets the "trigger_event" field if the given value is not nil.
func (_u *GateRunUpdateOne) SetNillableTriggerEvent(v *string) *GateRunUpdateOne {
	if v != nil {
		_u.SetTriggerEvent(*v)
	}
	return _u
}

// ClearTriggerEvent clears the value of the "trigger_event" field.
func (_u *GateRunUpdateOne) ClearTriggerEvent() *GateRunUpdateOne {
	_u.mutation.ClearTriggerEvent()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *GateRunUpdateOne) SetErrorCode(v string) *GateRunUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *GateRunUpdateOne) SetNillableErrorCode(v *string) *GateRunUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *GateRunUpdateOne) ClearErrorCode() *GateRunUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetRequiredCheckSource sets the "required_check_source" field.
func (_u *GateRunUpdateOne) SetRequiredCheckSource(v string) *GateRunUpdateOne {
	_u.mutation.SetRequiredCheckSource(v)
	return _u
}

// SetNillableRequiredCheckSource sets the "required_check_source" field if the given value is not nil.
func (_u *GateRunUpdateOne) SetNillableRequiredCheckSource(v *string) *GateRunUpdateOne {
	if v != nil {
		_u.SetRequiredCheckSource(*v)
	}
	return _u
}

// ClearRequiredCheckSource clears the value of the "required_check_source" field.
func (_u *GateRunUpdateOne) ClearRequiredCheckSource() *GateRunUpdateOne {
	_u.mutation.ClearRequiredCheckSource()
	return _u
}

// SetRequiredChecks sets the "required_checks" field.
func (_u *GateRunUpdateOne) SetRequiredChecks(v []string) *GateRunUpdateOne {
	_u.mutation.SetRequiredChecks(v)
	return _u
}

// AppendRequiredChecks appends value to the "required_checks" field.
func (_u *GateRunUpdateOne) AppendRequiredChecks(v []string) *GateRunUpdateOne {
	_u.mutation.AppendRequiredChecks(v)
	return _u
}

// ClearRequiredChecks clears the value of the "required_checks" field.
func (_u *GateRunUpdateOne) ClearRequiredChecks() *GateRunUpdateOne {
	_u.mutation.ClearRequiredChecks()
	return _u
}

// SetFailingRequiredChecks sets the "failing_required_checks" field.
func (_u *GateRunUpdateOne) SetFailingRequiredChecks(v []string) *GateRunUpdateOne {
	_u.mutation.SetFailingRequiredChecks(v)
	return _u
}

// AppendFailingRequiredChecks appends value to the "failing_required_checks" field.
func (_u *GateRunUpdateOne) AppendFailingRequiredChecks(v []string) *GateRunUpdateOne {
	_u.mutation.AppendFailingRequiredChecks(v)
	return _u
}

// ClearFailingRequiredChecks clears the value of the "failing_required_checks" field.
func (_u *GateRunUpdateOne) ClearFailingRequiredChecks() *GateRunUpdateOne {
	_u.mutation.ClearFailingRequiredChecks()
	return _u
}

// SetUnresolvedThreadCount sets the "unresolved_thread_count" field.
func (_u *GateRunUpdateOne) SetUnresolvedThreadCount(v int) *GateRunUpdateOne {
	_u.mutation.ResetUnresolvedThreadCount()
	_u.mutation.SetUnresolvedThreadCount(v)
	return _u
}

// SetNillableUnresolvedThreadCount sets the "unresolved_thread_count" field if the given value is not nil.
func (_u *GateRunUpdateOne) SetNillableUnresolvedThreadCount(v *int) *GateRunUpdateOne {
	if v != nil {
		_u.SetUnresolvedThreadCount(*v)
	}
	return _u
}

// AddUnresolvedThreadCount adds value to the "unresolved_thread_count" field.
func (_u *GateRunUpdateOne) AddUnresolvedThreadCount(v int) *GateRunUpdateOne {
	_u.mutation.AddUnresolvedThreadCount(v)
	return _u
}

// ClearUnresolvedThreadCount clears the value of the "unresolved_thread_count" field.
func (_u *GateRunUpdateOne) ClearUnresolvedThreadCount() *GateRunUpdateOne {
	_u.mutation.ClearUnresolvedThreadCount()
	return _u
}

// SetUnresolvedThreadCountSource sets the "unresolved_thread_count_source" field.
func (_u *GateRunUpdateOne) SetUnresolvedThreadCountSource(v string) *GateRunUpdateOne {
	_u.mutation.SetUnresolvedThreadCountSource(v)
	return _u
}

// SetNillableUnresolvedThreadCountSource sets the "unresolved_thread_count_source" field if the given value is not nil.
func (_u *GateRunUpdateOne) SetNillableUnresolvedThreadCountSource(v *string) *GateRunUpdateOne {
	if v != nil {
		_u.SetUnresolvedThreadCountSource(*v)
	}
	return _u
}

// ClearUnresolvedThreadCountSource clears the value of the "unresolved_thread_count_source" field.
func (_u *GateRunUpdateOne) ClearUnresolvedThreadCountSource() *GateRunUpdateOne {
	_u.mutation.ClearUnresolvedThreadCountSource()
	return _u
}

// SetInvalidOutput sets the "invalid_output" field.
func (_u *GateRunUpdateOne) SetInvalidOutput(v bool) *GateRunUpdateOne {
	_u.mutation.SetInvalidOutput(v)
	return _u
}

// SetNillableInvalidOutput sets the "invalid_output" field if the given value is not nil.
func (_u *GateRunUpdateOne) SetNillableInvalidOutput(v *bool) *GateRunUpdateOne {
	if v != nil {
		_u.SetInvalidOutput(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *GateRunUpdateOne) SetDetails(v map[string]interface{}) *GateRunUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *GateRunUpdateOne) ClearDetails() *GateRunUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GateRunUpdateOne) SetCreatedAt(v time.Time) *GateRunUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GateRunUpdateOne) SetNillableCreatedAt(v *time.Time) *GateRunUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GateRunUpdateOne) SetUpdatedAt(v time.Time) *GateRunUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLoop sets the "loop" edge to the Loop entity.
func (_u *GateRunUpdateOne) SetLoop(v *Loop) *GateRunUpdateOne {
	return _u.SetLoopID(v.ID)
}

// Mutation returns the GateRunMutation object of the builder.
func (_u *GateRunUpdateOne) Mutation() *GateRunMutation {
	return _u.mutation
}

// ClearLoop clears the "loop" edge to the Loop entity.
func (_u *GateRunUpdateOne) ClearLoop() *GateRunUpdateOne {
	_u.mutation.ClearLoop()
	return _u
}

// Where appends a list predicates to the GateRunUpdate builder.
func (_u *GateRunUpdateOne) Where(ps ...predicate.GateRun) *GateRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GateRunUpdateOne) Select(field string, fields ...string) *GateRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GateRun entity.
func (_u *GateRunUpdateOne) Save(ctx context.Context) (*GateRun, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GateRunUpdateOne) SaveX(ctx context.Context) *GateRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GateRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GateRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GateRunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := gaterun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GateRunUpdateOne) check() error {
	if v, ok := _u.mutation.GateKind(); ok {
		if err := gaterun.GateKindValidator(v); err != nil {
			return &ValidationError{Name: "gate_kind", err: fmt.Errorf(`ent: validator failed for field "GateRun.gate_kind": %w`, err)}
		}
	}
	if _u.mutation.LoopCleared() && len(_u.mutation.LoopIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GateRun.loop"`)
	}
	return nil
}

func (_u *GateRunUpdateOne) sqlSave(ctx context.Context) (_node *GateRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gaterun.Table, gaterun.Columns, sqlgraph.NewFieldSpec(gaterun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GateRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gaterun.FieldID)
		for _, f := range fields {
			if !gaterun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gaterun.FieldID {
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
	if value, ok := _u.mutation.GateKind(); ok {
		_spec.SetField(gaterun.FieldGateKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.HeadSha(); ok {
		_spec.SetField(gaterun.FieldHeadSha, field.TypeString, value)
	}
	if value, ok := _u.mutation.LoopVersion(); ok {
		_spec.SetField(gaterun.FieldLoopVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLoopVersion(); ok {
		_spec.AddField(gaterun.FieldLoopVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(gaterun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.GatePassed(); ok {
		_spec.SetField(gaterun.FieldGatePassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TriggerEvent(); ok {
		_spec.SetField(gaterun.FieldTriggerEvent, field.TypeString, value)
	}
	if _u.mutation.TriggerEventCleared() {
		_spec.ClearField(gaterun.FieldTriggerEvent, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(gaterun.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(gaterun.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.RequiredCheckSource(); ok {
		_spec.SetField(gaterun.FieldRequiredCheckSource, field.TypeString, value)
	}
	if _u.mutation.RequiredCheckSourceCleared() {
		_spec.ClearField(gaterun.FieldRequiredCheckSource, field.TypeString)
	}
	if value, ok := _u.mutation.RequiredChecks(); ok {
		_spec.SetField(gaterun.FieldRequiredChecks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredChecks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gaterun.FieldRequiredChecks, value)
		})
	}
	if _u.mutation.RequiredChecksCleared() {
		_spec.ClearField(gaterun.FieldRequiredChecks, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailingRequiredChecks(); ok {
		_spec.SetField(gaterun.FieldFailingRequiredChecks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailingRequiredChecks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gaterun.FieldFailingRequiredChecks, value)
		})
	}
	if _u.mutation.FailingRequiredChecksCleared() {
		_spec.ClearField(gaterun.FieldFailingRequiredChecks, field.TypeJSON)
	}
	if value, ok := _u.mutation.UnresolvedThreadCount(); ok {
		_spec.SetField(gaterun.FieldUnresolvedThreadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnresolvedThreadCount(); ok {
		_spec.AddField(gaterun.FieldUnresolvedThreadCount, field.TypeInt, value)
	}
	if _u.mutation.UnresolvedThreadCountCleared() {
		_spec.ClearField(gaterun.FieldUnresolvedThreadCount, field.TypeInt)
	}
	if value, ok := _u.mutation.UnresolvedThreadCountSource(); ok {
		_spec.SetField(gaterun.FieldUnresolvedThreadCountSource, field.TypeString, value)
	}
	if _u.mutation.UnresolvedThreadCountSourceCleared() {
		_spec.ClearField(gaterun.FieldUnresolvedThreadCountSource, field.TypeString)
	}
	if value, ok := _u.mutation.InvalidOutput(); ok {
		_spec.SetField(gaterun.FieldInvalidOutput, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(gaterun.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(gaterun.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(gaterun.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(gaterun.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LoopCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LoopIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &GateRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gaterun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
