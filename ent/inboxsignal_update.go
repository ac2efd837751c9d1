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
	"github.com/codeready-toolchain/loopd/ent/inboxsignal"
	"github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// InboxSignalUpdate is the builder for updating InboxSignal entities.
type InboxSignalUpdate struct {
	config
	hooks    []Hook
	mutation *InboxSignalMutation
}

// Where appends a list predicates to the InboxSignalUpdate builder.
func (_u *InboxSignalUpdate) Where(ps ...predicate.InboxSignal) *InboxSignalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLoopID sets the "loop_id" field.
func (_u *InboxSignalUpdate) SetLoopID(v string) *InboxSignalUpdate {
	_u.mutation.SetLoopID(v)
	return _u
}

// SetNillableLoopID sets the "loop_id" field if the given value is not nil.
func (_u *InboxSignalUpdate) SetNillableLoopID(v *string) *InboxSignalUpdate {
	if v != nil {
		_u.SetLoopID(*v)
	}
	return _u
}

// SetCauseType sets the "cause_type" field.
func (_u *InboxSignalUpdate) SetCauseType(v string) *InboxSignalUpdate {
	_u.mutation.SetCauseType(v)
	return _u
}

// SetNillableCauseType sets the "cause_type" field if the given value is not nil.
func (_u *InboxSignalUpdate) SetNillableCauseType(v *string) *InboxSignalUpdate {
	if v != nil {
		_u.SetCauseType(*v)
	}
	return _u
}

// SetCanonicalCauseID sets the "canonical_cause_id" field.
func (_u *InboxSignalUpdate) SetCanonicalCauseID(v string) *InboxSignalUpdate {
	_u.mutation.SetCanonicalCauseID(v)
	return _u
}

// SetNillableCanonicalCauseID sets the "canonical_cause_id" field if the given value is not nil.
func (_u *InboxSignalUpdate) SetNillableCanonicalCauseID(v *string) *InboxSignalUpdate {
	if v != nil {
		_u.SetCanonicalCauseID(*v)
	}
	return _u
}

// SetCauseIdentityVersion sets the "cause_identity_version" field.
func (_u *InboxSignalUpdate) SetCauseIdentityVersion(v int) *InboxSignalUpdate {
	_u.mutation.ResetCauseIdentityVersion()
	_u.mutation.SetCauseIdentityVersion(v)
	return _u
}

// SetNillableCauseIdentityVersion sets the "cause_identity_version" field if the given value is not nil.
func (_u *InboxSignalUpdate) SetNillableCauseIdentityVersion(v *int) *InboxSignalUpdate {
	if v != nil {
		_u.SetCauseIdentityVersion(*v)
	}
	return _u
}

// AddCauseIdentityVersion adds value to the "cause_identity_version" field.
func (_u *InboxSignalUpdate) AddCauseIdentityVersion(v int) *InboxSignalUpdate {
	_u.mutation.AddCauseIdentityVersion(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *InboxSignalUpdate) SetPayload(v map[string]interface{}) *InboxSignalUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *InboxSignalUpdate) ClearPayload() *InboxSignalUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetHeadSha sets the "head_sha" field.
func (_u *InboxSignalUpdate) SetHeadSha(v string) *InboxSignalUpdate {
	_u.mutation.SetHeadSha(v)
	return _u
}

// SetNillableHeadSha sets the "head_sha" field if the given value is not nil.
func (_u *InboxSignalUpdate) SetNillableHeadSha(v *string) *InboxSignalUpdate {
	if v != nil {
		_u.SetHeadSha(*v)
	}
	return _u
}

// ClearHeadSha clears the value of the "head_sha" field.
func (_u *InboxSignalUpdate) ClearHeadSha() *InboxSignalUpdate {
	_u.mutation.ClearHeadSha()
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *InboxSignalUpdate) SetReceivedAt(v time.Time) *InboxSignalUpdate {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *InboxSignalUpdate) SetNillableReceivedAt(v *time.Time) *InboxSignalUpdate {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *InboxSignalUpdate) SetProcessedAt(v time.Time) *InboxSignalUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *InboxSignalUpdate) SetNillableProcessedAt(v *time.Time) *InboxSignalUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *InboxSignalUpdate) ClearProcessedAt() *InboxSignalUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetLoop sets the "loop" edge to the Loop entity.
func (_u *InboxSignalUpdate) SetLoop(v *Loop) *InboxSignalUpdate {
	return _u.SetLoopID(v.ID)
}

// Mutation returns the InboxSignalMutation object of the builder.
func (_u *InboxSignalUpdate) Mutation() *InboxSignalMutation {
	return _u.mutation
}

// ClearLoop clears the "loop" edge to the Loop entity.
func (_u *InboxSignalUpdate) ClearLoop() *InboxSignalUpdate {
	_u.mutation.ClearLoop()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InboxSignalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InboxSignalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InboxSignalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InboxSignalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InboxSignalUpdate) check() error {
	if _u.mutation.LoopCleared() && len(_u.mutation.LoopIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InboxSignal.loop"`)
	}
	return nil
}

func (_u *InboxSignalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inboxsignal.Table, inboxsignal.Columns, sqlgraph.NewFieldSpec(inboxsignal.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CauseType(); ok {
		_spec.SetField(inboxsignal.FieldCauseType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalCauseID(); ok {
		_spec.SetField(inboxsignal.FieldCanonicalCauseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CauseIdentityVersion(); ok {
		_spec.SetField(inboxsignal.FieldCauseIdentityVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCauseIdentityVersion(); ok {
		_spec.AddField(inboxsignal.FieldCauseIdentityVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(inboxsignal.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(inboxsignal.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.HeadSha(); ok {
		_spec.SetField(inboxsignal.FieldHeadSha, field.TypeString, value)
	}
	if _u.mutation.HeadShaCleared() {
		_spec.ClearField(inboxsignal.FieldHeadSha, field.TypeString)
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(inboxsignal.FieldReceivedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(inboxsignal.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(inboxsignal.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.LoopCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LoopIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inboxsignal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InboxSignalUpdateOne is the builder for updating a single InboxSignal entity.
type InboxSignalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InboxSignalMutation
}

// SetLoopID sets the "loop_id" field.
func (_u *InboxSignalUpdateOne) SetLoopID(v string) *InboxSignalUpdateOne {
	_u.mutation.SetLoopID(v)
	return _u
}

// SetNillableLoopID sets the "loop_id" field if the given value is not nil.
func (_u *InboxSignalUpdateOne) SetNillableLoopID(v *string) *InboxSignalUpdateOne {
	if v != nil {
		_u.SetLoopID(*v)
	}
	return _u
}

// SetCauseType sets the "cause_type" field.
func (_u *InboxSignalUpdateOne) SetCauseType(v string) *InboxSignalUpdateOne {
	_u.mutation.SetCauseType(v)
	return _u
}

// SetNillableCauseType sets the "cause_type" field if the given value is not nil.
func (_u *InboxSignalUpdateOne) SetNillableCauseType(v *string) *InboxSignalUpdateOne {
	if v != nil {
		_u.SetCauseType(*v)
	}
	return _u
}

// SetCanonicalCauseID sets the "canonical_cause_id" field.
func (_u *InboxSignalUpdateOne) SetCanonicalCauseID(v string) *InboxSignalUpdateOne {
	_u.mutation.SetCanonicalCauseID(v)
	return _u
}

// SetNillableCanonicalCauseID sets the "canonical_cause_id" field if the given value is not nil.
func (_u *InboxSignalUpdateOne) SetNillableCanonicalCauseID(v *string) *InboxSignalUpdateOne {
	if v != nil {
		_u.SetCanonicalCauseID(*v)
	}
	return _u
}

// SetCauseIdentityVersion sets the "cause_identity_version" field.
func (_u *InboxSignalUpdateOne) SetCauseIdentityVersion(v int) *InboxSignalUpdateOne {
	_u.mutation.ResetCauseIdentityVersion()
	_u.mutation.SetCauseIdentityVersion(v)
	return _u
}

// SetNillableCauseIdentityVersion sets the "cause_identity_version" field if the given value is not nil.
func (_u *InboxSignalUpdateOne) SetNillableCauseIdentityVersion(v *int) *InboxSignalUpdateOne {
	if v != nil {
		_u.SetCauseIdentityVersion(*v)
	}
	return _u
}

// AddCauseIdentityVersion adds value to the "cause_identity_version" field.
func (_u *InboxSignalUpdateOne) AddCauseIdentityVersion(v int) *InboxSignalUpdateOne {
	_u.mutation.AddCauseIdentityVersion(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *InboxSignalUpdateOne) SetPayload(v map[string]interface{}) *InboxSignalUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *InboxSignalUpdateOne) ClearPayload() *InboxSignalUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetHeadSha sets the "head_sha" field.
func (_u *InboxSignalUpdateOne) SetHeadSha(v string) *InboxSignalUpdateOne {
	_u.mutation.SetHeadSha(v)
	return _u
}

// SetNillableHeadSha sets the "head_sha" field if the given value is not nil.
func (_u *InboxSignalUpdateOne) SetNillableHeadSha(v *string) *InboxSignalUpdateOne {
	if v != nil {
		_u.SetHeadSha(*v)
	}
	return _u
}

// ClearHeadSha clears the value of the "head_sha" field.
func (_u *InboxSignalUpdateOne) ClearHeadSha() *InboxSignalUpdateOne {
	_u.mutation.ClearHeadSha()
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *InboxSignalUpdateOne) SetReceivedAt(v time.Time) *InboxSignalUpdateOne {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *InboxSignalUpdateOne) SetNillableReceivedAt(v *time.Time) *InboxSignalUpdateOne {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *InboxSignalUpdateOne) SetProcessedAt(v time.Time) *InboxSignalUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *InboxSignalUpdateOne) SetNillableProcessedAt(v *time.Time) *InboxSignalUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *InboxSignalUpdateOne) ClearProcessedAt() *InboxSignalUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetLoop sets the "loop" edge to the Loop entity.
func (_u *InboxSignalUpdateOne) SetLoop(v *Loop) *InboxSignalUpdateOne {
	return _u.SetLoopID(v.ID)
}

// Mutation returns the InboxSignalMutation object of the builder.
func (_u *InboxSignalUpdateOne) Mutation() *InboxSignalMutation {
	return _u.mutation
}

// ClearLoop clears the "loop" edge to the Loop entity.
func (_u *InboxSignalUpdateOne) ClearLoop() *InboxSignalUpdateOne {
	_u.mutation.ClearLoop()
	return _u
}

// Where appends a list predicates to the InboxSignalUpdate builder.
func (_u *InboxSignalUpdateOne) Where(ps ...predicate.InboxSignal) *InboxSignalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InboxSignalUpdateOne) Select(field string, fields ...string) *InboxSignalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InboxSignal entity.
func (_u *InboxSignalUpdateOne) Save(ctx context.Context) (*InboxSignal, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InboxSignalUpdateOne) SaveX(ctx context.Context) *InboxSignal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InboxSignalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InboxSignalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InboxSignalUpdateOne) check() error {
	if _u.mutation.LoopCleared() && len(_u.mutation.LoopIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InboxSignal.loop"`)
	}
	return nil
}

func (_u *InboxSignalUpdateOne) sqlSave(ctx context.Context) (_node *InboxSignal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inboxsignal.Table, inboxsignal.Columns, sqlgraph.NewFieldSpec(inboxsignal.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InboxSignal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inboxsignal.FieldID)
		for _, f := range fields {
			if !inboxsignal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != inboxsignal.FieldID {
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
	if value, ok := _u.mutation.CauseType(); ok {
		_spec.SetField(inboxsignal.FieldCauseType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalCauseID(); ok {
		_spec.SetField(inboxsignal.FieldCanonicalCauseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CauseIdentityVersion(); ok {
		_spec.SetField(inboxsignal.FieldCauseIdentityVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCauseIdentityVersion(); ok {
		_spec.AddField(inboxsignal.FieldCauseIdentityVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(inboxsignal.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(inboxsignal.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.HeadSha(); ok {
		_spec.SetField(inboxsignal.FieldHeadSha, field.TypeString, value)
	}
	if _u.mutation.HeadShaCleared() {
		_spec.ClearField(inboxsignal.FieldHeadSha, field.TypeString)
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(inboxsignal.FieldReceivedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(inboxsignal.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(inboxsignal.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.LoopCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LoopIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InboxSignal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inboxsignal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
