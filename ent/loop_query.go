// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/loopd/ent/gatefinding"
	"github.com/codeready-toolchain/loopd/ent/gaterun"
	"github.com/codeready-toolchain/loopd/ent/inboxsignal"
	"github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/outboxaction"
	"github.com/codeready-toolchain/loopd/ent/phaseartifact"
	"github.com/codeready-toolchain/loopd/ent/predicate"
)

// LoopQuery is the builder for querying Loop entities.
type LoopQuery struct {
	config
	ctx               *QueryContext
	order             []loop.OrderOption
	inters            []Interceptor
	predicates        []predicate.Loop
	withSignals       *InboxSignalQuery
	withOutboxActions *OutboxActionQuery
	withGateRuns      *GateRunQuery
	withGateFindings  *GateFindingQuery
	withArtifacts     *PhaseArtifactQuery
	modifiers         []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LoopQuery builder.
func (_q *LoopQuery) Where(ps ...predicate.Loop) *LoopQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *LoopQuery) Limit(limit int) *LoopQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *LoopQuery) Offset(offset int) *LoopQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *LoopQuery) Unique(unique bool) *LoopQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *LoopQuery) Order(o ...loop.OrderOption) *LoopQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySignals chains the current query on the "signals" edge.
func (_q *LoopQuery) QuerySignals() *InboxSignalQuery {
	query := (&InboxSignalClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(loop.Table, loop.FieldID, selector),
			sqlgraph.To(inboxsignal.Table, inboxsignal.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, loop.SignalsTable, loop.SignalsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOutboxActions chains the current query on the "outbox_actions" edge.
func (_q *LoopQuery) QueryOutboxActions() *OutboxActionQuery {
	query := (&OutboxActionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(loop.Table, loop.FieldID, selector),
			sqlgraph.To(outboxaction.Table, outboxaction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, loop.OutboxActionsTable, loop.OutboxActionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryGateRuns chains the current query on the "gate_runs" edge.
func (_q *LoopQuery) QueryGateRuns() *GateRunQuery {
	query := (&GateRunClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(loop.Table, loop.FieldID, selector),
			sqlgraph.To(gaterun.Table, gaterun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, loop.GateRunsTable, loop.GateRunsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryGateFindings chains the current query on the "gate_findings" edge.
func (_q *LoopQuery) QueryGateFindings() *GateFindingQuery {
	query := (&GateFindingClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(loop.Table, loop.FieldID, selector),
			sqlgraph.To(gatefinding.Table, gatefinding.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, loop.GateFindingsTable, loop.GateFindingsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryArtifacts chains the current query on the "artifacts" edge.
func (_q *LoopQuery) QueryArtifacts() *PhaseArtifactQuery {
	query := (&PhaseArtifactClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(loop.Table, loop.FieldID, selector),
			sqlgraph.To(phaseartifact.Table, phaseartifact.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, loop.ArtifactsTable, loop.ArtifactsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Loop entity from the query.
// Returns a *NotFoundError when no Loop was found.
func (_q *LoopQuery) First(ctx context.Context) (*Loop, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{loop.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *LoopQuery) FirstX(ctx context.Context) *Loop {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Loop ID from the query.
// Returns a *NotFoundError when no Loop ID was found.
func (_q *LoopQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{loop.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *LoopQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Loop entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Loop entity is found.
// Returns a *NotFoundError when no Loop entities are found.
func (_q *LoopQuery) Only(ctx context.Context) (*Loop, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{loop.Label}
	default:
		return nil, &NotSingularError{loop.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *LoopQuery) OnlyX(ctx context.Context) *Loop {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Loop ID in the query.
// Returns a *NotSingularError when more than one Loop ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *LoopQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{loop.Label}
	default:
		err = &NotSingularError{loop.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *LoopQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Loops.
func (_q *LoopQuery) All(ctx context.Context) ([]*Loop, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Loop, *LoopQuery]()
	return withInterceptors[[]*Loop](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *LoopQuery) AllX(ctx context.Context) []*Loop {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Loop IDs.
func (_q *LoopQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(loop.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *LoopQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *LoopQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*LoopQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *LoopQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *LoopQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *LoopQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LoopQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *LoopQuery) Clone() *LoopQuery {
	if _q == nil {
		return nil
	}
	return &LoopQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]loop.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.Loop{}, _q.predicates...),
		withSignals:       _q.withSignals.Clone(),
		withOutboxActions: _q.withOutboxActions.Clone(),
		withGateRuns:      _q.withGateRuns.Clone(),
		withGateFindings:  _q.withGateFindings.Clone(),
		withArtifacts:     _q.withArtifacts.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSignals tells the query-builder to eager-load the nodes that are connected to
// the "signals" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LoopQuery) WithSignals(opts ...func(*InboxSignalQuery)) *LoopQuery {
	query := (&InboxSignalClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSignals = query
	return _q
}

// WithOutboxActions tells the query-builder to eager-load the nodes that are connected to
// the "outbox_actions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LoopQuery) WithOutboxActions(opts ...func(*OutboxActionQuery)) *LoopQuery {
	query := (&OutboxActionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOutboxActions = query
	return _q
}

// WithGateRuns tells the query-builder to eager-load the nodes that are connected to
// the "gate_runs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LoopQuery) WithGateRuns(opts ...func(*GateRunQuery)) *LoopQuery {
	query := (&GateRunClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGateRuns = query
	return _q
}

// WithGateFindings tells the query-builder to eager-load the nodes that are connected to
// the "gate_findings" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LoopQuery) WithGateFindings(opts ...func(*GateFindingQuery)) *LoopQuery {
	query := (&GateFindingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGateFindings = query
	return _q
}

// WithArtifacts tells the query-builder to eager-load the nodes that are connected to
// the "artifacts" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LoopQuery) WithArtifacts(opts ...func(*PhaseArtifactQuery)) *LoopQuery {
	query := (&PhaseArtifactClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withArtifacts = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Loop.Query().
//		GroupBy(loop.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *LoopQuery) GroupBy(field string, fields ...string) *LoopGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LoopGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = loop.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.Loop.Query().
//		Select(loop.FieldUserID).
//		Scan(ctx, &v)
func (_q *LoopQuery) Select(fields ...string) *LoopSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &LoopSelect{LoopQuery: _q}
	sbuild.label = loop.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LoopSelect configured with the given aggregations.
func (_q *LoopQuery) Aggregate(fns ...AggregateFunc) *LoopSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *LoopQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !loop.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *LoopQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Loop, error) {
	var (
		nodes       = []*Loop{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withSignals != nil,
			_q.withOutboxActions != nil,
			_q.withGateRuns != nil,
			_q.withGateFindings != nil,
			_q.withArtifacts != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Loop).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Loop{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withSignals; query != nil {
		if err := _q.loadSignals(ctx, query, nodes,
			func(n *Loop) { n.Edges.Signals = []*InboxSignal{} },
			func(n *Loop, e *InboxSignal) { n.Edges.Signals = append(n.Edges.Signals, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withOutboxActions; query != nil {
		if err := _q.loadOutboxActions(ctx, query, nodes,
			func(n *Loop) { n.Edges.OutboxActions = []*OutboxAction{} },
			func(n *Loop, e *OutboxAction) { n.Edges.OutboxActions = append(n.Edges.OutboxActions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withGateRuns; query != nil {
		if err := _q.loadGateRuns(ctx, query, nodes,
			func(n *Loop) { n.Edges.GateRuns = []*GateRun{} },
			func(n *Loop, e *GateRun) { n.Edges.GateRuns = append(n.Edges.GateRuns, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withGateFindings; query != nil {
		if err := _q.loadGateFindings(ctx, query, nodes,
			func(n *Loop) { n.Edges.GateFindings = []*GateFinding{} },
			func(n *Loop, e *GateFinding) { n.Edges.GateFindings = append(n.Edges.GateFindings, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withArtifacts; query != nil {
		if err := _q.loadArtifacts(ctx, query, nodes,
			func(n *Loop) { n.Edges.Artifacts = []*PhaseArtifact{} },
			func(n *Loop, e *PhaseArtifact) { n.Edges.Artifacts = append(n.Edges.Artifacts, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *LoopQuery) loadSignals(ctx context.Context, query *InboxSignalQuery, nodes []*Loop, init func(*Loop), assign func(*Loop, *InboxSignal)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Loop)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(inboxsignal.FieldLoopID)
	}
	query.Where(predicate.InboxSignal(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(loop.SignalsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LoopID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "loop_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *LoopQuery) loadOutboxActions(ctx context.Context, query *OutboxActionQuery, nodes []*Loop, init func(*Loop), assign func(*Loop, *OutboxAction)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Loop)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(outboxaction.FieldLoopID)
	}
	query.Where(predicate.OutboxAction(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(loop.OutboxActionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LoopID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "loop_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *LoopQuery) loadGateRuns(ctx context.Context, query *GateRunQuery, nodes []*Loop, init func(*Loop), assign func(*Loop, *GateRun)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Loop)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(gaterun.FieldLoopID)
	}
	query.Where(predicate.GateRun(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(loop.GateRunsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LoopID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "loop_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *LoopQuery) loadGateFindings(ctx context.Context, query *GateFindingQuery, nodes []*Loop, init func(*Loop), assign func(*Loop, *GateFinding)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Loop)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(gatefinding.FieldLoopID)
	}
	query.Where(predicate.GateFinding(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(loop.GateFindingsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LoopID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "loop_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *LoopQuery) loadArtifacts(ctx context.Context, query *PhaseArtifactQuery, nodes []*Loop, init func(*Loop), assign func(*Loop, *PhaseArtifact)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Loop)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(phaseartifact.FieldLoopID)
	}
	query.Where(predicate.PhaseArtifact(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(loop.ArtifactsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LoopID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "loop_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *LoopQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *LoopQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(loop.Table, loop.Columns, sqlgraph.NewFieldSpec(loop.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, loop.FieldID)
		for i := range fields {
			if fields[i] != loop.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *LoopQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(loop.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = loop.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *LoopQuery) ForUpdate(opts ...sql.LockOption) *LoopQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *LoopQuery) ForShare(opts ...sql.LockOption) *LoopQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// LoopGroupBy is the group-by builder for Loop entities.
type LoopGroupBy struct {
	selector
	build *LoopQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *LoopGroupBy) Aggregate(fns ...AggregateFunc) *LoopGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *LoopGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LoopQuery, *LoopGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *LoopGroupBy) sqlScan(ctx context.Context, root *LoopQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// LoopSelect is the builder for selecting fields of Loop entities.
type LoopSelect struct {
	*LoopQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *LoopSelect) Aggregate(fns ...AggregateFunc) *LoopSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *LoopSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LoopQuery, *LoopSelect](ctx, _s.LoopQuery, _s, _s.inters, v)
}

func (_s *LoopSelect) sqlScan(ctx context.Context, root *LoopQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
