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
	"github.com/codeready-toolchain/loopd/ent/gatefinding"
	"github.com/codeready-toolchain/loopd/ent/loop"
)

// GateFindingCreate is the builder for creating a GateFinding entity.
type GateFindingCreate struct {
	config
	mutation *GateFindingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLoopID sets the "loop_id" field.
func (_c *GateFindingCreate) SetLoopID(v string) *GateFindingCreate {
	_c.mutation.SetLoopID(v)
	return _c
}

// SetGateKind sets the "gate_kind" field.
func (_c *GateFindingCreate) SetGateKind(v gatefinding.GateKind) *GateFindingCreate {
	_c.mutation.SetGateKind(v)
	return _c
}

// SetHeadSha sets the "head_sha" field.
func (_c *GateFindingCreate) SetHeadSha(v string) *GateFindingCreate {
	_c.mutation.SetHeadSha(v)
	return _c
}

// SetStableFindingID sets the "stable_finding_id" field.
func (_c *GateFindingCreate) SetStableFindingID(v string) *GateFindingCreate {
	_c.mutation.SetStableFindingID(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *GateFindingCreate) SetSeverity(v gatefinding.Severity) *GateFindingCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *GateFindingCreate) SetCategory(v string) *GateFindingCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *GateFindingCreate) SetTitle(v string) *GateFindingCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *GateFindingCreate) SetDetail(v string) *GateFindingCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetSuggestedFix sets the "suggested_fix" field.
func (_c *GateFindingCreate) SetSuggestedFix(v string) *GateFindingCreate {
	_c.mutation.SetSuggestedFix(v)
	return _c
}

// SetNillableSuggestedFix sets the "suggested_fix" field if the given value is not nil.
func (_c *GateFindingCreate) SetNillableSuggestedFix(v *string) *GateFindingCreate {
	if v != nil {
		_c.SetSuggestedFix(*v)
	}
	return _c
}

// SetIsBlocking sets the "is_blocking" field.
func (_c *GateFindingCreate) SetIsBlocking(v bool) *GateFindingCreate {
	_c.mutation.SetIsBlocking(v)
	return _c
}

// SetNillableIsBlocking sets the "is_blocking" field if the given value is not nil.
func (_c *GateFindingCreate) SetNillableIsBlocking(v *bool) *GateFindingCreate {
	if v != nil {
		_c.SetIsBlocking(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *GateFindingCreate) SetResolvedAt(v time.Time) *GateFindingCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *GateFindingCreate) SetNillableResolvedAt(v *time.Time) *GateFindingCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetResolvedByEventID sets the "resolved_by_event_id" field.
func (_c *GateFindingCreate) SetResolvedByEventID(v string) *GateFindingCreate {
	_c.mutation.SetResolvedByEventID(v)
	return _c
}

// SetNillableResolvedByEventID sets the "resolved_by_event_id" field if the given value is not nil.
func (_c *GateFindingCreate) SetNillableResolvedByEventID(v *string) *GateFindingCreate {
	if v != nil {
		_c.SetResolvedByEventID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GateFindingCreate) SetCreatedAt(v time.Time) *GateFindingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GateFindingCreate) SetNillableCreatedAt(v *time.Time) *GateFindingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GateFindingCreate) SetID(v string) *GateFindingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetLoop sets the "loop" edge to the Loop entity.
func (_c *GateFindingCreate) SetLoop(v *Loop) *GateFindingCreate {
	return _c.SetLoopID(v.ID)
}

// Mutation returns the GateFindingMutation object of the builder.
func (_c *GateFindingCreate) Mutation() *GateFindingMutation {
	return _c.mutation
}

// Save creates the GateFinding in the database.
func (_c *GateFindingCreate) Save(ctx context.Context) (*GateFinding, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GateFindingCreate) SaveX(ctx context.Context) *GateFinding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GateFindingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GateFindingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GateFindingCreate) defaults() {
	if _, ok := _c.mutation.IsBlocking(); !ok {
		v := gatefinding.DefaultIsBlocking
		_c.mutation.SetIsBlocking(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := gatefinding.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GateFindingCreate) check() error {
	if _, ok := _c.mutation.LoopID(); !ok {
		return &ValidationError{Name: "loop_id", err: errors.New(`ent: missing required field "GateFinding.loop_id"`)}
	}
	if _, ok := _c.mutation.GateKind(); !ok {
		return &ValidationError{Name: "gate_kind", err: errors.New(`ent: missing required field "GateFinding.gate_kind"`)}
	}
	if v, ok := _c.mutation.GateKind(); ok {
		if err := gatefinding.GateKindValidator(v); err != nil {
			return &ValidationError{Name: "gate_kind", err: fmt.Errorf(`ent: validator failed for field "GateFinding.gate_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HeadSha(); !ok {
		return &ValidationError{Name: "head_sha", err: errors.New(`ent: missing required field "GateFinding.head_sha"`)}
	}
	if _, ok := _c.mutation.StableFindingID(); !ok {
		return &ValidationError{Name: "stable_finding_id", err: errors.New(`ent: missing required field "GateFinding.stable_finding_id"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "GateFinding.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := gatefinding.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "GateFinding.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "GateFinding.category"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "GateFinding.title"`)}
	}
	if _, ok := _c.mutation.Detail(); !ok {
		return &ValidationError{Name: "detail", err: errors.New(`ent: missing required field "GateFinding.detail"`)}
	}
	if _, ok := _c.mutation.IsBlocking(); !ok {
		return &ValidationError{Name: "is_blocking", err: errors.New(`ent: missing required field "GateFinding.is_blocking"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GateFinding.created_at"`)}
	}
	if len(_c.mutation.LoopIDs()) == 0 {
		return &ValidationError{Name: "loop", err: errors.New(`ent: missing required edge "GateFinding.loop"`)}
	}
	return nil
}

func (_c *GateFindingCreate) sqlSave(ctx context.Context) (*GateFinding, error) {
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
			return nil, fmt.Errorf("unexpected GateFinding.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GateFindingCreate) createSpec() (*GateFinding, *sqlgraph.CreateSpec) {
	var (
		_node = &GateFinding{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gatefinding.Table, sqlgraph.NewFieldSpec(gatefinding.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GateKind(); ok {
		_spec.SetField(gatefinding.FieldGateKind, field.TypeEnum, value)
		_node.GateKind = value
	}
	if value, ok := _c.mutation.HeadSha(); ok {
		_spec.SetField(gatefinding.FieldHeadSha, field.TypeString, value)
		_node.HeadSha = value
	}
	if value, ok := _c.mutation.StableFindingID(); ok {
		_spec.SetField(gatefinding.FieldStableFindingID, field.TypeString, value)
		_node.StableFindingID = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(gatefinding.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(gatefinding.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(gatefinding.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(gatefinding.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.SuggestedFix(); ok {
		_spec.SetField(gatefinding.FieldSuggestedFix, field.TypeString, value)
		_node.SuggestedFix = &value
	}
	if value, ok := _c.mutation.IsBlocking(); ok {
		_spec.SetField(gatefinding.FieldIsBlocking, field.TypeBool, value)
		_node.IsBlocking = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(gatefinding.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.ResolvedByEventID(); ok {
		_spec.SetField(gatefinding.FieldResolvedByEventID, field.TypeString, value)
		_node.ResolvedByEventID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(gatefinding.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.LoopIDs(); len(nodes) > 0 {
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
		_node.LoopID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GateFinding.Create().
//		SetLoopID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GateFindingUpsert) {
//			SetLoopID(v+v).
//		}).
//		Exec(ctx)
func (_c *GateFindingCreate) OnConflict(opts ...sql.ConflictOption) *GateFindingUpsertOne {
	_c.conflict = opts
	return &GateFindingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GateFinding.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GateFindingCreate) OnConflictColumns(columns ...string) *GateFindingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GateFindingUpsertOne{
		create: _c,
	}
}

type (
	// GateFindingUpsertOne is the builder for "upsert"-ing
	//  one GateFinding node.
	GateFindingUpsertOne struct {
		create *GateFindingCreate
	}

	// GateFindingUpsert is the "OnConflict" setter.
	GateFindingUpsert struct {
		*sql.UpdateSet
	}
)

// SetLoopID sets the "loop_id" field.
func (u *GateFindingUpsert) SetLoopID(v string) *GateFindingUpsert {
	u.Set(gatefinding.FieldLoopID, v)
	return u
}

// UpdateLoopID sets the "loop_id" field to the value that was provided on create.
func (u *GateFindingUpsert) UpdateLoopID() *GateFindingUpsert {
	u.SetExcluded(gatefinding.FieldLoopID)
	return u
}

// SetGateKind sets the "gate_kind" field.
func (u *GateFindingUpsert) SetGateKind(v gatefinding.GateKind) *GateFindingUpsert {
	u.Set(gatefinding.FieldGateKind, v)
	return u
}

// UpdateGateKind sets the "gate_kind" field to the value that was provided on create.
func (u *GateFindingUpsert) UpdateGateKind() *GateFindingUpsert {
	u.SetExcluded(gatefinding.FieldGateKind)
	return u
}

// SetHeadSha sets the "head_sha" field.
func (u *GateFindingUpsert) SetHeadSha(v string) *GateFindingUpsert {
	u.Set(gatefinding.FieldHeadSha, v)
	return u
}

// UpdateHeadSha sets the "head_sha" field to the value that was provided on create.
func (u *GateFindingUpsert) UpdateHeadSha() *GateFindingUpsert {
	u.SetExcluded(gatefinding.FieldHeadSha)
	return u
}

// SetStableFindingID sets the "stable_finding_id" field.
func (u *GateFindingUpsert) SetStableFindingID(v string) *GateFindingUpsert {
	u.Set(gatefinding.FieldStableFindingID, v)
	return u
}

// UpdateStableFindingID sets the "stable_finding_id" field to the value that was provided on create.
func (u *GateFindingUpsert) UpdateStableFindingID() *GateFindingUpsert {
	u.SetExcluded(gatefinding.FieldStableFindingID)
	return u
}

// SetSeverity sets the "severity" field.
func (u *GateFindingUpsert) SetSeverity(v gatefinding.Severity) *GateFindingUpsert {
	u.Set(gatefinding.FieldSeverity, v)
	return u
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *GateFindingUpsert) UpdateSeverity() *GateFindingUpsert {
	u.SetExcluded(gatefinding.FieldSeverity)
	return u
}

// SetCategory sets the "category" field.
func (u *GateFindingUpsert) SetCategory(v string) *GateFindingUpsert {
	u.Set(gatefinding.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *GateFindingUpsert) UpdateCategory() *GateFindingUpsert {
	u.SetExcluded(gatefinding.FieldCategory)
	return u
}

// SetTitle sets the "title" field.
func (u *GateFindingUpsert) SetTitle(v string) *GateFindingUpsert {
	u.Set(gatefinding.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *GateFindingUpsert) UpdateTitle() *GateFindingUpsert {
	u.SetExcluded(gatefinding.FieldTitle)
	return u
}

// SetDetail sets the "detail" field.
func (u *GateFindingUpsert) SetDetail(v string) *GateFindingUpsert {
	u.Set(gatefinding.FieldDetail, v)
	return u
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *GateFindingUpsert) UpdateDetail() *GateFindingUpsert {
	u.SetExcluded(gatefinding.FieldDetail)
	return u
}

// SetSuggestedFix sets the "suggested_fix" field.
func (u *GateFindingUpsert) SetSuggestedFix(v string) *GateFindingUpsert {
	u.Set(gatefinding.FieldSuggestedFix, v)
	return u
}

// UpdateSuggestedFix sets the "suggested_fix" field to the value that was provided on create.
func (u *GateFindingUpsert) UpdateSuggestedFix() *GateFindingUpsert {
	u.SetExcluded(gatefinding.FieldSuggestedFix)
	return u
}

// ClearSuggestedFix clears the value of the "suggested_fix" field.
func (u *GateFindingUpsert) ClearSuggestedFix() *GateFindingUpsert {
	u.SetNull(gatefinding.FieldSuggestedFix)
	return u
}

// SetIsBlocking sets the "is_blocking" field.
func (u *GateFindingUpsert) SetIsBlocking(v bool) *GateFindingUpsert {
	u.Set(gatefinding.FieldIsBlocking, v)
	return u
}

// UpdateIsBlocking sets the "is_blocking" field to the value that was provided on create.
func (u *GateFindingUpsert) UpdateIsBlocking() *GateFindingUpsert {
	u.SetExcluded(gatefinding.FieldIsBlocking)
	return u
}

// SetResolvedAt sets the "resolved_at" field.
func (u *GateFindingUpsert) SetResolvedAt(v time.Time) *GateFindingUpsert {
	u.Set(gatefinding.FieldResolvedAt, v)
	return u
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *GateFindingUpsert) UpdateResolvedAt() *GateFindingUpsert {
	u.SetExcluded(gatefinding.FieldResolvedAt)
	return u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *GateFindingUpsert) ClearResolvedAt() *GateFindingUpsert {
	u.SetNull(gatefinding.FieldResolvedAt)
	return u
}

// SetResolvedByEventID sets the "resolved_by_event_id" field.
func (u *GateFindingUpsert) SetResolvedByEventID(v string) *GateFindingUpsert {
	u.Set(gatefinding.FieldResolvedByEventID, v)
	return u
}

// UpdateResolvedByEventID sets the "resolved_by_event_id" field to the value that was provided on create.
func (u *GateFindingUpsert) UpdateResolvedByEventID() *GateFindingUpsert {
	u.SetExcluded(gatefinding.FieldResolvedByEventID)
	return u
}

// ClearResolvedByEventID clears the value of the "resolved_by_event_id" field.
func (u *GateFindingUpsert) ClearResolvedByEventID() *GateFindingUpsert {
	u.SetNull(gatefinding.FieldResolvedByEventID)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *GateFindingUpsert) SetCreatedAt(v time.Time) *GateFindingUpsert {
	u.Set(gatefinding.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *GateFindingUpsert) UpdateCreatedAt() *GateFindingUpsert {
	u.SetExcluded(gatefinding.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GateFinding.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gatefinding.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GateFindingUpsertOne) UpdateNewValues() *GateFindingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(gatefinding.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GateFinding.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GateFindingUpsertOne) Ignore() *GateFindingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GateFindingUpsertOne) DoNothing() *GateFindingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GateFindingCreate.OnConflict
// documentation for more info.
func (u *GateFindingUpsertOne) Update(set func(*GateFindingUpsert)) *GateFindingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GateFindingUpsert{UpdateSet: update})
	}))
	return u
}

// SetLoopID sets the "loop_id" field.
func (u *GateFindingUpsertOne) SetLoopID(v string) *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetLoopID(v)
	})
}

// UpdateLoopID sets the "loop_id" field to the value that was provided on create.
func (u *GateFindingUpsertOne) UpdateLoopID() *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateLoopID()
	})
}

// SetGateKind sets the "gate_kind" field.
func (u *GateFindingUpsertOne) SetGateKind(v gatefinding.GateKind) *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetGateKind(v)
	})
}

// UpdateGateKind sets the "gate_kind" field to the value that was provided on create.
func (u *GateFindingUpsertOne) UpdateGateKind() *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateGateKind()
	})
}

// SetHeadSha sets the "head_sha" field.
func (u *GateFindingUpsertOne) SetHeadSha(v string) *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetHeadSha(v)
	})
}

// UpdateHeadSha sets the "head_sha" field to the value that was provided on create.
func (u *GateFindingUpsertOne) UpdateHeadSha() *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateHeadSha()
	})
}

// SetStableFindingID sets the "stable_finding_id" field.
func (u *GateFindingUpsertOne) SetStableFindingID(v string) *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetStableFindingID(v)
	})
}

// UpdateStableFindingID sets the "stable_finding_id" field to the value that was provided on create.
func (u *GateFindingUpsertOne) UpdateStableFindingID() *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateStableFindingID()
	})
}

// SetSeverity sets the "severity" field.
func (u *GateFindingUpsertOne) SetSeverity(v gatefinding.Severity) *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *GateFindingUpsertOne) UpdateSeverity() *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateSeverity()
	})
}

// SetCategory sets the "category" field.
func (u *GateFindingUpsertOne) SetCategory(v string) *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *GateFindingUpsertOne) UpdateCategory() *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateCategory()
	})
}

// SetTitle sets the "title" field.
func (u *GateFindingUpsertOne) SetTitle(v string) *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *GateFindingUpsertOne) UpdateTitle() *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateTitle()
	})
}

// SetDetail sets the "detail" field.
func (u *GateFindingUpsertOne) SetDetail(v string) *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *GateFindingUpsertOne) UpdateDetail() *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateDetail()
	})
}

// SetSuggestedFix sets the "suggested_fix" field.
func (u *GateFindingUpsertOne) SetSuggestedFix(v string) *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetSuggestedFix(v)
	})
}

// UpdateSuggestedFix sets the "suggested_fix" field to the value that was provided on create.
func (u *GateFindingUpsertOne) UpdateSuggestedFix() *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateSuggestedFix()
	})
}

// ClearSuggestedFix clears the value of the "suggested_fix" field.
func (u *GateFindingUpsertOne) ClearSuggestedFix() *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.ClearSuggestedFix()
	})
}

// SetIsBlocking sets the "is_blocking" field.
func (u *GateFindingUpsertOne) SetIsBlocking(v bool) *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetIsBlocking(v)
	})
}

// UpdateIsBlocking sets the "is_blocking" field to the value that was provided on create.
func (u *GateFindingUpsertOne) UpdateIsBlocking() *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateIsBlocking()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *GateFindingUpsertOne) SetResolvedAt(v time.Time) *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *GateFindingUpsertOne) UpdateResolvedAt() *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *GateFindingUpsertOne) ClearResolvedAt() *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.ClearResolvedAt()
	})
}

// SetResolvedByEventID sets the "resolved_by_event_id" field.
func (u *GateFindingUpsertOne) SetResolvedByEventID(v string) *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetResolvedByEventID(v)
	})
}

// UpdateResolvedByEventID sets the "resolved_by_event_id" field to the value that was provided on create.
func (u *GateFindingUpsertOne) UpdateResolvedByEventID() *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateResolvedByEventID()
	})
}

// ClearResolvedByEventID clears the value of the "resolved_by_event_id" field.
func (u *GateFindingUpsertOne) ClearResolvedByEventID() *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.ClearResolvedByEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *GateFindingUpsertOne) SetCreatedAt(v time.Time) *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *GateFindingUpsertOne) UpdateCreatedAt() *GateFindingUpsertOne {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *GateFindingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GateFindingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GateFindingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GateFindingUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GateFindingUpsertOne.ID is not supported by MySQL driver. Use GateFindingUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GateFindingUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GateFindingCreateBulk is the builder for creating many GateFinding entities in bulk.
type GateFindingCreateBulk struct {
	config
	err      error
	builders []*GateFindingCreate
	conflict []sql.ConflictOption
}

// Save creates the GateFinding entities in the database.
func (_c *GateFindingCreateBulk) Save(ctx context.Context) ([]*GateFinding, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GateFinding, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GateFindingMutation)
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
func (_c *GateFindingCreateBulk) SaveX(ctx context.Context) []*GateFinding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GateFindingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GateFindingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GateFinding.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GateFindingUpsert) {
//			SetLoopID(v+v).
//		}).
//		Exec(ctx)
func (_c *GateFindingCreateBulk) OnConflict(opts ...sql.ConflictOption) *GateFindingUpsertBulk {
	_c.conflict = opts
	return &GateFindingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GateFinding.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GateFindingCreateBulk) OnConflictColumns(columns ...string) *GateFindingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GateFindingUpsertBulk{
		create: _c,
	}
}

// GateFindingUpsertBulk is the builder for "upsert"-ing
// a bulk of GateFinding nodes.
type GateFindingUpsertBulk struct {
	create *GateFindingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GateFinding.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gatefinding.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GateFindingUpsertBulk) UpdateNewValues() *GateFindingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(gatefinding.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GateFinding.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GateFindingUpsertBulk) Ignore() *GateFindingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GateFindingUpsertBulk) DoNothing() *GateFindingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GateFindingCreateBulk.OnConflict
// documentation for more info.
func (u *GateFindingUpsertBulk) Update(set func(*GateFindingUpsert)) *GateFindingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GateFindingUpsert{UpdateSet: update})
	}))
	return u
}

// SetLoopID sets the "loop_id" field.
func (u *GateFindingUpsertBulk) SetLoopID(v string) *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetLoopID(v)
	})
}

// UpdateLoopID sets the "loop_id" field to the value that was provided on create.
func (u *GateFindingUpsertBulk) UpdateLoopID() *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateLoopID()
	})
}

// SetGateKind sets the "gate_kind" field.
func (u *GateFindingUpsertBulk) SetGateKind(v gatefinding.GateKind) *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetGateKind(v)
	})
}

// UpdateGateKind sets the "gate_kind" field to the value that was provided on create.
func (u *GateFindingUpsertBulk) UpdateGateKind() *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateGateKind()
	})
}

// SetHeadSha sets the "head_sha" field.
func (u *GateFindingUpsertBulk) SetHeadSha(v string) *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetHeadSha(v)
	})
}

// UpdateHeadSha sets the "head_sha" field to the value that was provided on create.
func (u *GateFindingUpsertBulk) UpdateHeadSha() *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateHeadSha()
	})
}

// SetStableFindingID sets the "stable_finding_id" field.
func (u *GateFindingUpsertBulk) SetStableFindingID(v string) *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetStableFindingID(v)
	})
}

// UpdateStableFindingID sets the "stable_finding_id" field to the value that was provided on create.
func (u *GateFindingUpsertBulk) UpdateStableFindingID() *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateStableFindingID()
	})
}

// SetSeverity sets the "severity" field.
func (u *GateFindingUpsertBulk) SetSeverity(v gatefinding.Severity) *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *GateFindingUpsertBulk) UpdateSeverity() *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateSeverity()
	})
}

// SetCategory sets the "category" field.
func (u *GateFindingUpsertBulk) SetCategory(v string) *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *GateFindingUpsertBulk) UpdateCategory() *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateCategory()
	})
}

// SetTitle sets the "title" field.
func (u *GateFindingUpsertBulk) SetTitle(v string) *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *GateFindingUpsertBulk) UpdateTitle() *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateTitle()
	})
}

// SetDetail sets the "detail" field.
func (u *GateFindingUpsertBulk) SetDetail(v string) *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *GateFindingUpsertBulk) UpdateDetail() *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateDetail()
	})
}

// SetSuggestedFix sets the "suggested_fix" field.
func (u *GateFindingUpsertBulk) SetSuggestedFix(v string) *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetSuggestedFix(v)
	})
}

// UpdateSuggestedFix sets the "suggested_fix" field to the value that was provided on create.
func (u *GateFindingUpsertBulk) UpdateSuggestedFix() *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateSuggestedFix()
	})
}

// ClearSuggestedFix clears the value of the "suggested_fix" field.
func (u *GateFindingUpsertBulk) ClearSuggestedFix() *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.ClearSuggestedFix()
	})
}

// SetIsBlocking sets the "is_blocking" field.
func (u *GateFindingUpsertBulk) SetIsBlocking(v bool) *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetIsBlocking(v)
	})
}

// UpdateIsBlocking sets the "is_blocking" field to the value that was provided on create.
func (u *GateFindingUpsertBulk) UpdateIsBlocking() *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateIsBlocking()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *GateFindingUpsertBulk) SetResolvedAt(v time.Time) *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *GateFindingUpsertBulk) UpdateResolvedAt() *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *GateFindingUpsertBulk) ClearResolvedAt() *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.ClearResolvedAt()
	})
}

// SetResolvedByEventID sets the "resolved_by_event_id" field.
func (u *GateFindingUpsertBulk) SetResolvedByEventID(v string) *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetResolvedByEventID(v)
	})
}

// UpdateResolvedByEventID sets the "resolved_by_event_id" field to the value that was provided on create.
func (u *GateFindingUpsertBulk) UpdateResolvedByEventID() *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateResolvedByEventID()
	})
}

// ClearResolvedByEventID clears the value of the "resolved_by_event_id" field.
func (u *GateFindingUpsertBulk) ClearResolvedByEventID() *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.ClearResolvedByEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *GateFindingUpsertBulk) SetCreatedAt(v time.Time) *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *GateFindingUpsertBulk) UpdateCreatedAt() *GateFindingUpsertBulk {
	return u.Update(func(s *GateFindingUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *GateFindingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GateFindingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GateFindingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GateFindingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
