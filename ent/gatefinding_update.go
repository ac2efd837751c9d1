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
	"github.com/codeready-toolchain/loopd/ent/gatefinding"
	"github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// GateFindingUpdate is the builder for updating GateFinding entities.
type GateFindingUpdate struct {
	config
	hooks    []Hook
	mutation *GateFindingMutation
}

// Where appends a list predicates to the GateFindingUpdate builder.
func (_u *GateFindingUpdate) Where(ps ...predicate.GateFinding) *GateFindingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLoopID sets the "loop_id" field.
func (_u *GateFindingUpdate) SetLoopID(v string) *GateFindingUpdate {
	_u.mutation.SetLoopID(v)
	return _u
}

// SetNillableLoopID sets the "loop_id" field if the given value is not nil.
func (_u *GateFindingUpdate) SetNillableLoopID(v *string) *GateFindingUpdate {
	if v != nil {
		_u.SetLoopID(*v)
	}
	return _u
}

// SetGateKind sets the "gate_kind" field.
func (_u *GateFindingUpdate) SetGateKind(v gatefinding.GateKind) *GateFindingUpdate {
	_u.mutation.SetGateKind(v)
	return _u
}

// SetNillableGateKind sets the "gate_kind" field if the given value is not nil.
func (_u *GateFindingUpdate) SetNillableGateKind(v *gatefinding.GateKind) *GateFindingUpdate {
	if v != nil {
		_u.SetGateKind(*v)
	}
	return _u
}

// SetHeadSha sets the "head_sha" field.
func (_u *GateFindingUpdate) SetHeadSha(v string) *GateFindingUpdate {
	_u.mutation.SetHeadSha(v)
	return _u
}

// SetNillableHeadSha sets the "head_sha" field if the given value is not nil.
func (_u *GateFindingUpdate) SetNillableHeadSha(v *string) *GateFindingUpdate {
	if v != nil {
		_u.SetHeadSha(*v)
	}
	return _u
}

// SetStableFindingID sets the "stable_finding_id" field.
func (_u *GateFindingUpdate) SetStableFindingID(v string) *GateFindingUpdate {
	_u.mutation.SetStableFindingID(v)
	return _u
}

// SetNillableStableFindingID sets the "stable_finding_id" field if the given value is not nil.
func (_u *GateFindingUpdate) SetNillableStableFindingID(v *string) *GateFindingUpdate {
	if v != nil {
		_u.SetStableFindingID(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *GateFindingUpdate) SetSeverity(v gatefinding.Severity) *GateFindingUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *GateFindingUpdate) SetNillableSeverity(v *gatefinding.Severity) *GateFindingUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *GateFindingUpdate) SetCategory(v string) *GateFindingUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *GateFindingUpdate) SetNillableCategory(v *string) *GateFindingUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *GateFindingUpdate) SetTitle(v string) *GateFindingUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *GateFindingUpdate) SetNillableTitle(v *string) *GateFindingUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *GateFindingUpdate) SetDetail(v string) *GateFindingUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *GateFindingUpdate) SetNillableDetail(v *string) *GateFindingUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// SetSuggestedFix sets the "suggested_fix" field.
func (_u *GateFindingUpdate) SetSuggestedFix(v string) *GateFindingUpdate {
	_u.mutation.SetSuggestedFix(v)
	return _u
}

// SetNillableSuggestedFix sets the "suggested_fix" field if the given value is not nil.
func (_u *GateFindingUpdate) SetNillableSuggestedFix(v *string) *GateFindingUpdate {
	if v != nil {
		_u.SetSuggestedFix(*v)
	}
	return _u
}

// ClearSuggestedFix clears the value of the "suggested_fix" field.
func (_u *GateFindingUpdate) ClearSuggestedFix() *GateFindingUpdate {
	_u.mutation.ClearSuggestedFix()
	return _u
}

// SetIsBlocking sets the "is_blocking" field.
func (_u *GateFindingUpdate) SetIsBlocking(v bool) *GateFindingUpdate {
	_u.mutation.SetIsBlocking(v)
	return _u
}

// SetNillableIsBlocking sets the "is_blocking" field if the given value is not nil.
func (_u *GateFindingUpdate) SetNillableIsBlocking(v *bool) *GateFindingUpdate {
	if v != nil {
		_u.SetIsBlocking(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *GateFindingUpdate) SetResolvedAt(v time.Time) *GateFindingUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *GateFindingUpdate) SetNillableResolvedAt(v *time.Time) *GateFindingUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *GateFindingUpdate) ClearResolvedAt() *GateFindingUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolvedByEventID sets the "resolved_by_event_id" field.
func (_u *GateFindingUpdate) SetResolvedByEventID(v string) *GateFindingUpdate {
	_u.mutation.SetResolvedByEventID(v)
	return _u
}

// SetNillableResolvedByEventID sets the "resolved_by_event_id" field if the given value is not nil.
func (_u *GateFindingUpdate) SetNillableResolvedByEventID(v *string) *GateFindingUpdate {
	if v != nil {
		_u.SetResolvedByEventID(*v)
	}
	return _u
}

// ClearResolvedByEventID clears the value of the "resolved_by_event_id" field.
func (_u *GateFindingUpdate) ClearResolvedByEventID() *GateFindingUpdate {
	_u.mutation.ClearResolvedByEventID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GateFindingUpdate) SetCreatedAt(v time.Time) *GateFindingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GateFindingUpdate) SetNillableCreatedAt(v *time.Time) *GateFindingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetLoop sets the "loop" edge to the Loop entity.
func (_u *GateFindingUpdate) SetLoop(v *Loop) *GateFindingUpdate {
	return _u.SetLoopID(v.ID)
}

// Mutation returns the GateFindingMutation object of the builder.
func (_u *GateFindingUpdate) Mutation() *GateFindingMutation {
	return _u.mutation
}

// ClearLoop clears the "loop" edge to the Loop entity.
func (_u *GateFindingUpdate) ClearLoop() *GateFindingUpdate {
	_u.mutation.ClearLoop()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GateFindingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GateFindingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GateFindingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GateFindingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GateFindingUpdate) check() error {
	if v, ok := _u.mutation.GateKind(); ok {
		if err := gatefinding.GateKindValidator(v); err != nil {
			return &ValidationError{Name: "gate_kind", err: fmt.Errorf(`ent: validator failed for field "GateFinding.gate_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := gatefinding.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "GateFinding.severity": %w`, err)}
		}
	}
	if _u.mutation.LoopCleared() && len(_u.mutation.LoopIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GateFinding.loop"`)
	}
	return nil
}

func (_u *GateFindingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gatefinding.Table, gatefinding.Columns, sqlgraph.NewFieldSpec(gatefinding.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GateKind(); ok {
		_spec.SetField(gatefinding.FieldGateKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.HeadSha(); ok {
		_spec.SetField(gatefinding.FieldHeadSha, field.TypeString, value)
	}
	if value, ok := _u.mutation.StableFindingID(); ok {
		_spec.SetField(gatefinding.FieldStableFindingID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(gatefinding.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(gatefinding.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(gatefinding.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(gatefinding.FieldDetail, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuggestedFix(); ok {
		_spec.SetField(gatefinding.FieldSuggestedFix, field.TypeString, value)
	}
	if _u.mutation.SuggestedFixCleared() {
		_spec.ClearField(gatefinding.FieldSuggestedFix, field.TypeString)
	}
	if value, ok := _u.mutation.IsBlocking(); ok {
		_spec.SetField(gatefinding.FieldIsBlocking, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(gatefinding.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(gatefinding.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedByEventID(); ok {
		_spec.SetField(gatefinding.FieldResolvedByEventID, field.TypeString, value)
	}
	if _u.mutation.ResolvedByEventIDCleared() {
		_spec.ClearField(gatefinding.FieldResolvedByEventID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(gatefinding.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.LoopCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   gatefinding.LoopTable,
			Columns: []string{gatefinding.LoopColumn},
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
			Table:   gatefinding.LoopTable,
			Columns: []string{gatefinding.LoopColumn},
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
			err = &NotFoundError{gatefinding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GateFindingUpdateOne is the builder for updating a single GateFinding entity.
type GateFindingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GateFindingMutation
}

// SetLoopID sets the "loop_id" field.
func (_u *GateFindingUpdateOne) SetLoopID(v string) *GateFindingUpdateOne {
	_u.mutation.SetLoopID(v)
	return _u
}

// SetNillableLoopID sets the "loop_id" field if the given value is not nil.
func (_u *GateFindingUpdateOne) SetNillableLoopID(v *string) *GateFindingUpdateOne {
	if v != nil {
		_u.SetLoopID(*v)
	}
	return _u
}

// SetGateKind sets the "gate_kind" field.
func (_u *GateFindingUpdateOne) SetGateKind(v gatefinding.GateKind) *GateFindingUpdateOne {
	_u.mutation.SetGateKind(v)
	return _u
}

// SetNillableGateKind sets the "gate_kind" field if the given value is not nil.
func (_u *GateFindingUpdateOne) SetNillableGateKind(v *gatefinding.GateKind) *GateFindingUpdateOne {
	if v != nil {
		_u.SetGateKind(*v)
	}
	return _u
}

// SetHeadSha sets the "head_sha" field.
func (_u *GateFindingUpdateOne) SetHeadSha(v string) *GateFindingUpdateOne {
	_u.mutation.SetHeadSha(v)
	return _u
}

// SetNillableHeadSha sets the "head_sha" field if the given value is not nil.
func (_u *GateFindingUpdateOne) SetNillableHeadSha(v *string) *GateFindingUpdateOne {
	if v != nil {
		_u.SetHeadSha(*v)
	}
	return _u
}

// SetStableFindingID sets the "stable_finding_id" field.
func (_u *GateFindingUpdateOne) SetStableFindingID(v string) *GateFindingUpdateOne {
	_u.mutation.SetStableFindingID(v)
	return _u
}

// SetNillableStableFindingID sets the "stable_finding_id" field if the given value is not nil.
func (_u *GateFindingUpdateOne) SetNillableStableFindingID(v *string) *GateFindingUpdateOne {
	if v != nil {
		_u.SetStableFindingID(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *GateFindingUpdateOne) SetSeverity(v gatefinding.Severity) *GateFindingUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *GateFindingUpdateOne) SetNillableSeverity(v *gatefinding.Severity) *GateFindingUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *GateFindingUpdateOne) SetCategory(v string) *GateFindingUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *GateFindingUpdateOne) SetNillableCategory(v *string) *GateFindingUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *GateFindingUpdateOne) SetTitle(v string) *GateFindingUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *GateFindingUpdateOne) SetNillableTitle(v *string) *GateFindingUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *GateFindingUpdateOne) SetDetail(v string) *GateFindingUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *GateFindingUpdateOne) SetNillableDetail(v *string) *GateFindingUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// SetSuggestedFix sets the "suggested_fix" field.
func (_u *GateFindingUpdateOne) SetSuggestedFix(v string) *GateFindingUpdateOne {
	_u.mutation.SetSuggestedFix(v)
	return _u
}

// SetNillableSuggestedFix sets the "suggested_fix" field if the given value is not nil.
func (_u *GateFindingUpdateOne) SetNillableSuggestedFix(v *string) *GateFindingUpdateOne {
	if v != nil {
		_u.SetSuggestedFix(*v)
	}
	return _u
}

// ClearSuggestedFix clears the value of the "suggested_fix" field.
func (_u *GateFindingUpdateOne) ClearSuggestedFix() *GateFindingUpdateOne {
	_u.mutation.ClearSuggestedFix()
	return _u
}

// SetIsBlocking sets the "is_blocking" field.
func (_u *GateFindingUpdateOne) SetIsBlocking(v bool) *GateFindingUpdateOne {
	_u.mutation.SetIsBlocking(v)
	return _u
}

// SetNillableIsBlocking sets the "is_blocking" field if the given value is not nil.
func (_u *GateFindingUpdateOne) SetNillableIsBlocking(v *bool) *GateFindingUpdateOne {
	if v != nil {
		_u.SetIsBlocking(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *GateFindingUpdateOne) SetResolvedAt(v time.Time) *GateFindingUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *GateFindingUpdateOne) SetNillableResolvedAt(v *time.Time) *GateFindingUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *GateFindingUpdateOne) ClearResolvedAt() *GateFindingUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolvedByEventID sets the "resolved_by_event_id" field.
func (_u *GateFindingUpdateOne) SetResolvedByEventID(v string) *GateFindingUpdateOne {
	_u.mutation.SetResolvedByEventID(v)
	return _u
}

// SetNillableResolvedByEventID sets the "resolved_by_event_id" field if the given value is not nil.
func (_u *GateFindingUpdateOne) SetNillableResolvedByEventID(v *string) *GateFindingUpdateOne {
	if v != nil {
		_u.SetResolvedByEventID(*v)
	}
	return _u
}

// ClearResolvedByEventID clears the value of the "resolved_by_event_id" field.
func (_u *GateFindingUpdateOne) ClearResolvedByEventID() *GateFindingUpdateOne {
	_u.mutation.ClearResolvedByEventID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GateFindingUpdateOne) SetCreatedAt(v time.Time) *GateFindingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GateFindingUpdateOne) SetNillableCreatedAt(v *time.Time) *GateFindingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetLoop sets the "loop" edge to the Loop entity.
func (_u *GateFindingUpdateOne) SetLoop(v *Loop) *GateFindingUpdateOne {
	return _u.SetLoopID(v.ID)
}

// Mutation returns the GateFindingMutation object of the builder.
func (_u *GateFindingUpdateOne) Mutation() *GateFindingMutation {
	return _u.mutation
}

// ClearLoop clears the "loop" edge to the Loop entity.
func (_u *GateFindingUpdateOne) ClearLoop() *GateFindingUpdateOne {
	_u.mutation.ClearLoop()
	return _u
}

// Where appends a list predicates to the GateFindingUpdate builder.
func (_u *GateFindingUpdateOne) Where(ps ...predicate.GateFinding) *GateFindingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GateFindingUpdateOne) Select(field string, fields ...string) *GateFindingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GateFinding entity.
func (_u *GateFindingUpdateOne) Save(ctx context.Context) (*GateFinding, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GateFindingUpdateOne) SaveX(ctx context.Context) *GateFinding {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GateFindingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GateFindingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GateFindingUpdateOne) check() error {
	if v, ok := _u.mutation.GateKind(); ok {
		if err := gatefinding.GateKindValidator(v); err != nil {
			return &ValidationError{Name: "gate_kind", err: fmt.Errorf(`ent: validator failed for field "GateFinding.gate_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := gatefinding.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "GateFinding.severity": %w`, err)}
		}
	}
	if _u.mutation.LoopCleared() && len(_u.mutation.LoopIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GateFinding.loop"`)
	}
	return nil
}

func (_u *GateFindingUpdateOne) sqlSave(ctx context.Context) (_node *GateFinding, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gatefinding.Table, gatefinding.Columns, sqlgraph.NewFieldSpec(gatefinding.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GateFinding.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gatefinding.FieldID)
		for _, f := range fields {
			if !gatefinding.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gatefinding.FieldID {
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
		_spec.SetField(gatefinding.FieldGateKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.HeadSha(); ok {
		_spec.SetField(gatefinding.FieldHeadSha, field.TypeString, value)
	}
	if value, ok := _u.mutation.StableFindingID(); ok {
		_spec.SetField(gatefinding.FieldStableFindingID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(gatefinding.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(gatefinding.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(gatefinding.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(gatefinding.FieldDetail, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuggestedFix(); ok {
		_spec.SetField(gatefinding.FieldSuggestedFix, field.TypeString, value)
	}
	if _u.mutation.SuggestedFixCleared() {
		_spec.ClearField(gatefinding.FieldSuggestedFix, field.TypeString)
	}
	if value, ok := _u.mutation.IsBlocking(); ok {
		_spec.SetField(gatefinding.FieldIsBlocking, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(gatefinding.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(gatefinding.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedByEventID(); ok {
		_spec.SetField(gatefinding.FieldResolvedByEventID, field.TypeString, value)
	}
	if _u.mutation.ResolvedByEventIDCleared() {
		_spec.ClearField(gatefinding.FieldResolvedByEventID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(gatefinding.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.LoopCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   gatefinding.LoopTable,
			Columns: []string{gatefinding.LoopColumn},
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
			Table:   gatefinding.LoopTable,
			Columns: []string{gatefinding.LoopColumn},
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
	_node = &GateFinding{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gatefinding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
