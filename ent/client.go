// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/codeready-toolchain/loopd/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/loopd/ent/gatefinding"
	"github.com/codeready-toolchain/loopd/ent/gaterun"
	"github.com/codeready-toolchain/loopd/ent/inboxsignal"
	"github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/looplease"
	"github.com/codeready-toolchain/loopd/ent/outboxaction"
	"github.com/codeready-toolchain/loopd/ent/outboxattempt"
	"github.com/codeready-toolchain/loopd/ent/paritysample"
	"github.com/codeready-toolchain/loopd/ent/phaseartifact"
	"github.com/codeready-toolchain/loopd/ent/plantask"
	"github.com/codeready-toolchain/loopd/ent/webhookdelivery"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// GateFinding is the client for interacting with the GateFinding builders.
	GateFinding *GateFindingClient
	// GateRun is the client for interacting with the GateRun builders.
	GateRun *GateRunClient
	// InboxSignal is the client for interacting with the InboxSignal builders.
	InboxSignal *InboxSignalClient
	// Loop is the client for interacting with the Loop builders.
	Loop *LoopClient
	// LoopLease is the client for interacting with the LoopLease builders.
	LoopLease *LoopLeaseClient
	// OutboxAction is the client for interacting with the OutboxAction builders.
	OutboxAction *OutboxActionClient
	// OutboxAttempt is the client for interacting with the OutboxAttempt builders.
	OutboxAttempt *OutboxAttemptClient
	// ParitySample is the client for interacting with the ParitySample builders.
	ParitySample *ParitySampleClient
	// PhaseArtifact is the client for interacting with the PhaseArtifact builders.
	PhaseArtifact *PhaseArtifactClient
	// PlanTask is the client for interacting with the PlanTask builders.
	PlanTask *PlanTaskClient
	// WebhookDelivery is the client for interacting with the WebhookDelivery builders.
	WebhookDelivery *WebhookDeliveryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.GateFinding = NewGateFindingClient(c.config)
	c.GateRun = NewGateRunClient(c.config)
	c.InboxSignal = NewInboxSignalClient(c.config)
	c.Loop = NewLoopClient(c.config)
	c.LoopLease = NewLoopLeaseClient(c.config)
	c.OutboxAction = NewOutboxActionClient(c.config)
	c.OutboxAttempt = NewOutboxAttemptClient(c.config)
	c.ParitySample = NewParitySampleClient(c.config)
	c.PhaseArtifact = NewPhaseArtifactClient(c.config)
	c.PlanTask = NewPlanTaskClient(c.config)
	c.WebhookDelivery = NewWebhookDeliveryClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		GateFinding:     NewGateFindingClient(cfg),
		GateRun:         NewGateRunClient(cfg),
		InboxSignal:     NewInboxSignalClient(cfg),
		Loop:            NewLoopClient(cfg),
		LoopLease:       NewLoopLeaseClient(cfg),
		OutboxAction:    NewOutboxActionClient(cfg),
		OutboxAttempt:   NewOutboxAttemptClient(cfg),
		ParitySample:    NewParitySampleClient(cfg),
		PhaseArtifact:   NewPhaseArtifactClient(cfg),
		PlanTask:        NewPlanTaskClient(cfg),
		WebhookDelivery: NewWebhookDeliveryClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		GateFinding:     NewGateFindingClient(cfg),
		GateRun:         NewGateRunClient(cfg),
		InboxSignal:     NewInboxSignalClient(cfg),
		Loop:            NewLoopClient(cfg),
		LoopLease:       NewLoopLeaseClient(cfg),
		OutboxAction:    NewOutboxActionClient(cfg),
		OutboxAttempt:   NewOutboxAttemptClient(cfg),
		ParitySample:    NewParitySampleClient(cfg),
		PhaseArtifact:   NewPhaseArtifactClient(cfg),
		PlanTask:        NewPlanTaskClient(cfg),
		WebhookDelivery: NewWebhookDeliveryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		GateFinding.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.GateFinding, c.GateRun, c.InboxSignal, c.Loop, c.LoopLease, c.OutboxAction,
		c.OutboxAttempt, c.ParitySample, c.PhaseArtifact, c.PlanTask,
		c.WebhookDelivery,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.GateFinding, c.GateRun, c.InboxSignal, c.Loop, c.LoopLease, c.OutboxAction,
		c.OutboxAttempt, c.ParitySample, c.PhaseArtifact, c.PlanTask,
		c.WebhookDelivery,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *GateFindingMutation:
		return c.GateFinding.mutate(ctx, m)
	case *GateRunMutation:
		return c.GateRun.mutate(ctx, m)
	case *InboxSignalMutation:
		return c.InboxSignal.mutate(ctx, m)
	case *LoopMutation:
		return c.Loop.mutate(ctx, m)
	case *LoopLeaseMutation:
		return c.LoopLease.mutate(ctx, m)
	case *OutboxActionMutation:
		return c.OutboxAction.mutate(ctx, m)
	case *OutboxAttemptMutation:
		return c.OutboxAttempt.mutate(ctx, m)
	case *ParitySampleMutation:
		return c.ParitySample.mutate(ctx, m)
	case *PhaseArtifactMutation:
		return c.PhaseArtifact.mutate(ctx, m)
	case *PlanTaskMutation:
		return c.PlanTask.mutate(ctx, m)
	case *WebhookDeliveryMutation:
		return c.WebhookDelivery.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// GateFindingClient is a client for the GateFinding schema.
type GateFindingClient struct {
	config
}

// NewGateFindingClient returns a client for the GateFinding from the given config.
func NewGateFindingClient(c config) *GateFindingClient {
	return &GateFindingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gatefinding.Hooks(f(g(h())))`.
func (c *GateFindingClient) Use(hooks ...Hook) {
	c.hooks.GateFinding = append(c.hooks.GateFinding, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gatefinding.Intercept(f(g(h())))`.
func (c *GateFindingClient) Intercept(interceptors ...Interceptor) {
	c.inters.GateFinding = append(c.inters.GateFinding, interceptors...)
}

// Create returns a builder for creating a GateFinding entity.
func (c *GateFindingClient) Create() *GateFindingCreate {
	mutation := newGateFindingMutation(c.config, OpCreate)
	return &GateFindingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GateFinding entities.
func (c *GateFindingClient) CreateBulk(builders ...*GateFindingCreate) *GateFindingCreateBulk {
	return &GateFindingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GateFindingClient) MapCreateBulk(slice any, setFunc func(*GateFindingCreate, int)) *GateFindingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GateFindingCreateBulk{err: fmt.Errorf("calling to GateFindingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GateFindingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GateFindingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GateFinding.
func (c *GateFindingClient) Update() *GateFindingUpdate {
	mutation := newGateFindingMutation(c.config, OpUpdate)
	return &GateFindingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GateFindingClient) UpdateOne(_m *GateFinding) *GateFindingUpdateOne {
	mutation := newGateFindingMutation(c.config, OpUpdateOne, withGateFinding(_m))
	return &GateFindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GateFindingClient) UpdateOneID(id string) *GateFindingUpdateOne {
	mutation := newGateFindingMutation(c.config, OpUpdateOne, withGateFindingID(id))
	return &GateFindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GateFinding.
func (c *GateFindingClient) Delete() *GateFindingDelete {
	mutation := newGateFindingMutation(c.config, OpDelete)
	return &GateFindingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GateFindingClient) DeleteOne(_m *GateFinding) *GateFindingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GateFindingClient) DeleteOneID(id string) *GateFindingDeleteOne {
	builder := c.Delete().Where(gatefinding.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GateFindingDeleteOne{builder}
}

// Query returns a query builder for GateFinding.
func (c *GateFindingClient) Query() *GateFindingQuery {
	return &GateFindingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGateFinding},
		inters: c.Interceptors(),
	}
}

// Get returns a GateFinding entity by its id.
func (c *GateFindingClient) Get(ctx context.Context, id string) (*GateFinding, error) {
	return c.Query().Where(gatefinding.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GateFindingClient) GetX(ctx context.Context, id string) *GateFinding {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLoop queries the loop edge of a GateFinding.
func (c *GateFindingClient) QueryLoop(_m *GateFinding) *LoopQuery {
	query := (&LoopClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(gatefinding.Table, gatefinding.FieldID, id),
			sqlgraph.To(loop.Table, loop.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, gatefinding.LoopTable, gatefinding.LoopColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GateFindingClient) Hooks() []Hook {
	return c.hooks.GateFinding
}

// Interceptors returns the client interceptors.
func (c *GateFindingClient) Interceptors() []Interceptor {
	return c.inters.GateFinding
}

func (c *GateFindingClient) mutate(ctx context.Context, m *GateFindingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GateFindingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GateFindingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GateFindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GateFindingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GateFinding mutation op: %q", m.Op())
	}
}

// GateRunClient is a client for the GateRun schema.
type GateRunClient struct {
	config
}

// NewGateRunClient returns a client for the GateRun from the given config.
func NewGateRunClient(c config) *GateRunClient {
	return &GateRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gaterun.Hooks(f(g(h())))`.
func (c *GateRunClient) Use(hooks ...Hook) {
	c.hooks.GateRun = append(c.hooks.GateRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gaterun.Intercept(f(g(h())))`.
func (c *GateRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.GateRun = append(c.inters.GateRun, interceptors...)
}

// Create returns a builder for creating a GateRun entity.
func (c *GateRunClient) Create() *GateRunCreate {
	mutation := newGateRunMutation(c.config, OpCreate)
	return &GateRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GateRun entities.
func (c *GateRunClient) CreateBulk(builders ...*GateRunCreate) *GateRunCreateBulk {
	return &GateRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GateRunClient) MapCreateBulk(slice any, setFunc func(*GateRunCreate, int)) *GateRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GateRunCreateBulk{err: fmt.Errorf("calling to GateRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GateRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GateRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GateRun.
func (c *GateRunClient) Update() *GateRunUpdate {
	mutation := newGateRunMutation(c.config, OpUpdate)
	return &GateRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GateRunClient) UpdateOne(_m *GateRun) *GateRunUpdateOne {
	mutation := newGateRunMutation(c.config, OpUpdateOne, withGateRun(_m))
	return &GateRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GateRunClient) UpdateOneID(id string) *GateRunUpdateOne {
	mutation := newGateRunMutation(c.config, OpUpdateOne, withGateRunID(id))
	return &GateRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GateRun.
func (c *GateRunClient) Delete() *GateRunDelete {
	mutation := newGateRunMutation(c.config, OpDelete)
	return &GateRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GateRunClient) DeleteOne(_m *GateRun) *GateRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GateRunClient) DeleteOneID(id string) *GateRunDeleteOne {
	builder := c.Delete().Where(gaterun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GateRunDeleteOne{builder}
}

// Query returns a query builder for GateRun.
func (c *GateRunClient) Query() *GateRunQuery {
	return &GateRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGateRun},
		inters: c.Interceptors(),
	}
}

// Get returns a GateRun entity by its id.
func (c *GateRunClient) Get(ctx context.Context, id string) (*GateRun, error) {
	return c.Query().Where(gaterun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GateRunClient) GetX(ctx context.Context, id string) *GateRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLoop queries the loop edge of a GateRun.
func (c *GateRunClient) QueryLoop(_m *GateRun) *LoopQuery {
	query := (&LoopClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(gaterun.Table, gaterun.FieldID, id),
			sqlgraph.To(loop.Table, loop.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, gaterun.LoopTable, gaterun.LoopColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GateRunClient) Hooks() []Hook {
	return c.hooks.GateRun
}

// Interceptors returns the client interceptors.
func (c *GateRunClient) Interceptors() []Interceptor {
	return c.inters.GateRun
}

func (c *GateRunClient) mutate(ctx context.Context, m *GateRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GateRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GateRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GateRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GateRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GateRun mutation op: %q", m.Op())
	}
}

// InboxSignalClient is a client for the InboxSignal schema.
type InboxSignalClient struct {
	config
}

// NewInboxSignalClient returns a client for the InboxSignal from the given config.
func NewInboxSignalClient(c config) *InboxSignalClient {
	return &InboxSignalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `inboxsignal.Hooks(f(g(h())))`.
func (c *InboxSignalClient) Use(hooks ...Hook) {
	c.hooks.InboxSignal = append(c.hooks.InboxSignal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `inboxsignal.Intercept(f(g(h())))`.
func (c *InboxSignalClient) Intercept(interceptors ...Interceptor) {
	c.inters.InboxSignal = append(c.inters.InboxSignal, interceptors...)
}

// Create returns a builder for creating a InboxSignal entity.
func (c *InboxSignalClient) Create() *InboxSignalCreate {
	mutation := newInboxSignalMutation(c.config, OpCreate)
	return &InboxSignalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InboxSignal entities.
func (c *InboxSignalClient) CreateBulk(builders ...*InboxSignalCreate) *InboxSignalCreateBulk {
	return &InboxSignalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InboxSignalClient) MapCreateBulk(slice any, setFunc func(*InboxSignalCreate, int)) *InboxSignalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InboxSignalCreateBulk{err: fmt.Errorf("calling to InboxSignalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InboxSignalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InboxSignalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InboxSignal.
func (c *InboxSignalClient) Update() *InboxSignalUpdate {
	mutation := newInboxSignalMutation(c.config, OpUpdate)
	return &InboxSignalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InboxSignalClient) UpdateOne(_m *InboxSignal) *InboxSignalUpdateOne {
	mutation := newInboxSignalMutation(c.config, OpUpdateOne, withInboxSignal(_m))
	return &InboxSignalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InboxSignalClient) UpdateOneID(id string) *InboxSignalUpdateOne {
	mutation := newInboxSignalMutation(c.config, OpUpdateOne, withInboxSignalID(id))
	return &InboxSignalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InboxSignal.
func (c *InboxSignalClient) Delete() *InboxSignalDelete {
	mutation := newInboxSignalMutation(c.config, OpDelete)
	return &InboxSignalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InboxSignalClient) DeleteOne(_m *InboxSignal) *InboxSignalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InboxSignalClient) DeleteOneID(id string) *InboxSignalDeleteOne {
	builder := c.Delete().Where(inboxsignal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InboxSignalDeleteOne{builder}
}

// Query returns a query builder for InboxSignal.
func (c *InboxSignalClient) Query() *InboxSignalQuery {
	return &InboxSignalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInboxSignal},
		inters: c.Interceptors(),
	}
}

// Get returns a InboxSignal entity by its id.
func (c *InboxSignalClient) Get(ctx context.Context, id string) (*InboxSignal, error) {
	return c.Query().Where(inboxsignal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InboxSignalClient) GetX(ctx context.Context, id string) *InboxSignal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLoop queries the loop edge of a InboxSignal.
func (c *InboxSignalClient) QueryLoop(_m *InboxSignal) *LoopQuery {
	query := (&LoopClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(inboxsignal.Table, inboxsignal.FieldID, id),
			sqlgraph.To(loop.Table, loop.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, inboxsignal.LoopTable, inboxsignal.LoopColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InboxSignalClient) Hooks() []Hook {
	return c.hooks.InboxSignal
}

// Interceptors returns the client interceptors.
func (c *InboxSignalClient) Interceptors() []Interceptor {
	return c.inters.InboxSignal
}

func (c *InboxSignalClient) mutate(ctx context.Context, m *InboxSignalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InboxSignalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InboxSignalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InboxSignalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InboxSignalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InboxSignal mutation op: %q", m.Op())
	}
}

// LoopClient is a client for the Loop schema.
type LoopClient struct {
	config
}

// NewLoopClient returns a client for the Loop from the given config.
func NewLoopClient(c config) *LoopClient {
	return &LoopClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `loop.Hooks(f(g(h())))`.
func (c *LoopClient) Use(hooks ...Hook) {
	c.hooks.Loop = append(c.hooks.Loop, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `loop.Intercept(f(g(h())))`.
func (c *LoopClient) Intercept(interceptors ...Interceptor) {
	c.inters.Loop = append(c.inters.Loop, interceptors...)
}

// Create returns a builder for creating a Loop entity.
func (c *LoopClient) Create() *LoopCreate {
	mutation := newLoopMutation(c.config, OpCreate)
	return &LoopCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Loop entities.
func (c *LoopClient) CreateBulk(builders ...*LoopCreate) *LoopCreateBulk {
	return &LoopCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LoopClient) MapCreateBulk(slice any, setFunc func(*LoopCreate, int)) *LoopCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LoopCreateBulk{err: fmt.Errorf("calling to LoopClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LoopCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LoopCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Loop.
func (c *LoopClient) Update() *LoopUpdate {
	mutation := newLoopMutation(c.config, OpUpdate)
	return &LoopUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LoopClient) UpdateOne(_m *Loop) *LoopUpdateOne {
	mutation := newLoopMutation(c.config, OpUpdateOne, withLoop(_m))
	return &LoopUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LoopClient) UpdateOneID(id string) *LoopUpdateOne {
	mutation := newLoopMutation(c.config, OpUpdateOne, withLoopID(id))
	return &LoopUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Loop.
func (c *LoopClient) Delete() *LoopDelete {
	mutation := newLoopMutation(c.config, OpDelete)
	return &LoopDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LoopClient) DeleteOne(_m *Loop) *LoopDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LoopClient) DeleteOneID(id string) *LoopDeleteOne {
	builder := c.Delete().Where(loop.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LoopDeleteOne{builder}
}

// Query returns a query builder for Loop.
func (c *LoopClient) Query() *LoopQuery {
	return &LoopQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLoop},
		inters: c.Interceptors(),
	}
}

// Get returns a Loop entity by its id.
func (c *LoopClient) Get(ctx context.Context, id string) (*Loop, error) {
	return c.Query().Where(loop.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LoopClient) GetX(ctx context.Context, id string) *Loop {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySignals queries the signals edge of a Loop.
func (c *LoopClient) QuerySignals(_m *Loop) *InboxSignalQuery {
	query := (&InboxSignalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(loop.Table, loop.FieldID, id),
			sqlgraph.To(inboxsignal.Table, inboxsignal.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, loop.SignalsTable, loop.SignalsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOutboxActions queries the outbox_actions edge of a Loop.
func (c *LoopClient) QueryOutboxActions(_m *Loop) *OutboxActionQuery {
	query := (&OutboxActionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(loop.Table, loop.FieldID, id),
			sqlgraph.To(outboxaction.Table, outboxaction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, loop.OutboxActionsTable, loop.OutboxActionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGateRuns queries the gate_runs edge of a Loop.
func (c *LoopClient) QueryGateRuns(_m *Loop) *GateRunQuery {
	query := (&GateRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(loop.Table, loop.FieldID, id),
			sqlgraph.To(gaterun.Table, gaterun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, loop.GateRunsTable, loop.GateRunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGateFindings queries the gate_findings edge of a Loop.
func (c *LoopClient) QueryGateFindings(_m *Loop) *GateFindingQuery {
	query := (&GateFindingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(loop.Table, loop.FieldID, id),
			sqlgraph.To(gatefinding.Table, gatefinding.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, loop.GateFindingsTable, loop.GateFindingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryArtifacts queries the artifacts edge of a Loop.
func (c *LoopClient) QueryArtifacts(_m *Loop) *PhaseArtifactQuery {
	query := (&PhaseArtifactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(loop.Table, loop.FieldID, id),
			sqlgraph.To(phaseartifact.Table, phaseartifact.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, loop.ArtifactsTable, loop.ArtifactsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LoopClient) Hooks() []Hook {
	return c.hooks.Loop
}

// Interceptors returns the client interceptors.
func (c *LoopClient) Interceptors() []Interceptor {
	return c.inters.Loop
}

func (c *LoopClient) mutate(ctx context.Context, m *LoopMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LoopCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LoopUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LoopUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LoopDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Loop mutation op: %q", m.Op())
	}
}

// LoopLeaseClient is a client for the LoopLease schema.
type LoopLeaseClient struct {
	config
}

// NewLoopLeaseClient returns a client for the LoopLease from the given config.
func NewLoopLeaseClient(c config) *LoopLeaseClient {
	return &LoopLeaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `looplease.Hooks(f(g(h())))`.
func (c *LoopLeaseClient) Use(hooks ...Hook) {
	c.hooks.LoopLease = append(c.hooks.LoopLease, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `looplease.Intercept(f(g(h())))`.
func (c *LoopLeaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.LoopLease = append(c.inters.LoopLease, interceptors...)
}

// Create returns a builder for creating a LoopLease entity.
func (c *LoopLeaseClient) Create() *LoopLeaseCreate {
	mutation := newLoopLeaseMutation(c.config, OpCreate)
	return &LoopLeaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LoopLease entities.
func (c *LoopLeaseClient) CreateBulk(builders ...*LoopLeaseCreate) *LoopLeaseCreateBulk {
	return &LoopLeaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LoopLeaseClient) MapCreateBulk(slice any, setFunc func(*LoopLeaseCreate, int)) *LoopLeaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LoopLeaseCreateBulk{err: fmt.Errorf("calling to LoopLeaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LoopLeaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LoopLeaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LoopLease.
func (c *LoopLeaseClient) Update() *LoopLeaseUpdate {
	mutation := newLoopLeaseMutation(c.config, OpUpdate)
	return &LoopLeaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LoopLeaseClient) UpdateOne(_m *LoopLease) *LoopLeaseUpdateOne {
	mutation := newLoopLeaseMutation(c.config, OpUpdateOne, withLoopLease(_m))
	return &LoopLeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LoopLeaseClient) UpdateOneID(id string) *LoopLeaseUpdateOne {
	mutation := newLoopLeaseMutation(c.config, OpUpdateOne, withLoopLeaseID(id))
	return &LoopLeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LoopLease.
func (c *LoopLeaseClient) Delete() *LoopLeaseDelete {
	mutation := newLoopLeaseMutation(c.config, OpDelete)
	return &LoopLeaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LoopLeaseClient) DeleteOne(_m *LoopLease) *LoopLeaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LoopLeaseClient) DeleteOneID(id string) *LoopLeaseDeleteOne {
	builder := c.Delete().Where(looplease.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LoopLeaseDeleteOne{builder}
}

// Query returns a query builder for LoopLease.
func (c *LoopLeaseClient) Query() *LoopLeaseQuery {
	return &LoopLeaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLoopLease},
		inters: c.Interceptors(),
	}
}

// Get returns a LoopLease entity by its id.
func (c *LoopLeaseClient) Get(ctx context.Context, id string) (*LoopLease, error) {
	return c.Query().Where(looplease.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LoopLeaseClient) GetX(ctx context.Context, id string) *LoopLease {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LoopLeaseClient) Hooks() []Hook {
	return c.hooks.LoopLease
}

// Interceptors returns the client interceptors.
func (c *LoopLeaseClient) Interceptors() []Interceptor {
	return c.inters.LoopLease
}

func (c *LoopLeaseClient) mutate(ctx context.Context, m *LoopLeaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LoopLeaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LoopLeaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LoopLeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LoopLeaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LoopLease mutation op: %q", m.Op())
	}
}

// OutboxActionClient is a client for the OutboxAction schema.
type OutboxActionClient struct {
	config
}

// NewOutboxActionClient returns a client for the OutboxAction from the given config.
func NewOutboxActionClient(c config) *OutboxActionClient {
	return &OutboxActionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `outboxaction.Hooks(f(g(h())))`.
func (c *OutboxActionClient) Use(hooks ...Hook) {
	c.hooks.OutboxAction = append(c.hooks.OutboxAction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `outboxaction.Intercept(f(g(h())))`.
func (c *OutboxActionClient) Intercept(interceptors ...Interceptor) {
	c.inters.OutboxAction = append(c.inters.OutboxAction, interceptors...)
}

// Create returns a builder for creating a OutboxAction entity.
func (c *OutboxActionClient) Create() *OutboxActionCreate {
	mutation := newOutboxActionMutation(c.config, OpCreate)
	return &OutboxActionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OutboxAction entities.
func (c *OutboxActionClient) CreateBulk(builders ...*OutboxActionCreate) *OutboxActionCreateBulk {
	return &OutboxActionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OutboxActionClient) MapCreateBulk(slice any, setFunc func(*OutboxActionCreate, int)) *OutboxActionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OutboxActionCreateBulk{err: fmt.Errorf("calling to OutboxActionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OutboxActionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OutboxActionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OutboxAction.
func (c *OutboxActionClient) Update() *OutboxActionUpdate {
	mutation := newOutboxActionMutation(c.config, OpUpdate)
	return &OutboxActionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OutboxActionClient) UpdateOne(_m *OutboxAction) *OutboxActionUpdateOne {
	mutation := newOutboxActionMutation(c.config, OpUpdateOne, withOutboxAction(_m))
	return &OutboxActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OutboxActionClient) UpdateOneID(id string) *OutboxActionUpdateOne {
	mutation := newOutboxActionMutation(c.config, OpUpdateOne, withOutboxActionID(id))
	return &OutboxActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OutboxAction.
func (c *OutboxActionClient) Delete() *OutboxActionDelete {
	mutation := newOutboxActionMutation(c.config, OpDelete)
	return &OutboxActionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OutboxActionClient) DeleteOne(_m *OutboxAction) *OutboxActionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OutboxActionClient) DeleteOneID(id string) *OutboxActionDeleteOne {
	builder := c.Delete().Where(outboxaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OutboxActionDeleteOne{builder}
}

// Query returns a query builder for OutboxAction.
func (c *OutboxActionClient) Query() *OutboxActionQuery {
	return &OutboxActionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOutboxAction},
		inters: c.Interceptors(),
	}
}

// Get returns a OutboxAction entity by its id.
func (c *OutboxActionClient) Get(ctx context.Context, id string) (*OutboxAction, error) {
	return c.Query().Where(outboxaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OutboxActionClient) GetX(ctx context.Context, id string) *OutboxAction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLoop queries the loop edge of a OutboxAction.
func (c *OutboxActionClient) QueryLoop(_m *OutboxAction) *LoopQuery {
	query := (&LoopClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(outboxaction.Table, outboxaction.FieldID, id),
			sqlgraph.To(loop.Table, loop.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, outboxaction.LoopTable, outboxaction.LoopColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAttempts queries the attempts edge of a OutboxAction.
func (c *OutboxActionClient) QueryAttempts(_m *OutboxAction) *OutboxAttemptQuery {
	query := (&OutboxAttemptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(outboxaction.Table, outboxaction.FieldID, id),
			sqlgraph.To(outboxattempt.Table, outboxattempt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, outboxaction.AttemptsTable, outboxaction.AttemptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OutboxActionClient) Hooks() []Hook {
	return c.hooks.OutboxAction
}

// Interceptors returns the client interceptors.
func (c *OutboxActionClient) Interceptors() []Interceptor {
	return c.inters.OutboxAction
}

func (c *OutboxActionClient) mutate(ctx context.Context, m *OutboxActionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OutboxActionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OutboxActionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OutboxActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OutboxActionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OutboxAction mutation op: %q", m.Op())
	}
}

// OutboxAttemptClient is a client for the OutboxAttempt schema.
type OutboxAttemptClient struct {
	config
}

// NewOutboxAttemptClient returns a client for the OutboxAttempt from the given config.
func NewOutboxAttemptClient(c config) *OutboxAttemptClient {
	return &OutboxAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `outboxattempt.Hooks(f(g(h())))`.
func (c *OutboxAttemptClient) Use(hooks ...Hook) {
	c.hooks.OutboxAttempt = append(c.hooks.OutboxAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `outboxattempt.Intercept(f(g(h())))`.
func (c *OutboxAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.OutboxAttempt = append(c.inters.OutboxAttempt, interceptors...)
}

// Create returns a builder for creating a OutboxAttempt entity.
func (c *OutboxAttemptClient) Create() *OutboxAttemptCreate {
	mutation := newOutboxAttemptMutation(c.config, OpCreate)
	return &OutboxAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OutboxAttempt entities.
func (c *OutboxAttemptClient) CreateBulk(builders ...*OutboxAttemptCreate) *OutboxAttemptCreateBulk {
	return &OutboxAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OutboxAttemptClient) MapCreateBulk(slice any, setFunc func(*OutboxAttemptCreate, int)) *OutboxAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OutboxAttemptCreateBulk{err: fmt.Errorf("calling to OutboxAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OutboxAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OutboxAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OutboxAttempt.
func (c *OutboxAttemptClient) Update() *OutboxAttemptUpdate {
	mutation := newOutboxAttemptMutation(c.config, OpUpdate)
	return &OutboxAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OutboxAttemptClient) UpdateOne(_m *OutboxAttempt) *OutboxAttemptUpdateOne {
	mutation := newOutboxAttemptMutation(c.config, OpUpdateOne, withOutboxAttempt(_m))
	return &OutboxAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OutboxAttemptClient) UpdateOneID(id string) *OutboxAttemptUpdateOne {
	mutation := newOutboxAttemptMutation(c.config, OpUpdateOne, withOutboxAttemptID(id))
	return &OutboxAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OutboxAttempt.
func (c *OutboxAttemptClient) Delete() *OutboxAttemptDelete {
	mutation := newOutboxAttemptMutation(c.config, OpDelete)
	return &OutboxAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OutboxAttemptClient) DeleteOne(_m *OutboxAttempt) *OutboxAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OutboxAttemptClient) DeleteOneID(id string) *OutboxAttemptDeleteOne {
	builder := c.Delete().Where(outboxattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OutboxAttemptDeleteOne{builder}
}

// Query returns a query builder for OutboxAttempt.
func (c *OutboxAttemptClient) Query() *OutboxAttemptQuery {
	return &OutboxAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOutboxAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a OutboxAttempt entity by its id.
func (c *OutboxAttemptClient) Get(ctx context.Context, id string) (*OutboxAttempt, error) {
	return c.Query().Where(outboxattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OutboxAttemptClient) GetX(ctx context.Context, id string) *OutboxAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAction queries the action edge of a OutboxAttempt.
func (c *OutboxAttemptClient) QueryAction(_m *OutboxAttempt) *OutboxActionQuery {
	query := (&OutboxActionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(outboxattempt.Table, outboxattempt.FieldID, id),
			sqlgraph.To(outboxaction.Table, outboxaction.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, outboxattempt.ActionTable, outboxattempt.ActionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OutboxAttemptClient) Hooks() []Hook {
	return c.hooks.OutboxAttempt
}

// Interceptors returns the client interceptors.
func (c *OutboxAttemptClient) Interceptors() []Interceptor {
	return c.inters.OutboxAttempt
}

func (c *OutboxAttemptClient) mutate(ctx context.Context, m *OutboxAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OutboxAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OutboxAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OutboxAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OutboxAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OutboxAttempt mutation op: %q", m.Op())
	}
}

// ParitySampleClient is a client for the ParitySample schema.
type ParitySampleClient struct {
	config
}

// NewParitySampleClient returns a client for the ParitySample from the given config.
func NewParitySampleClient(c config) *ParitySampleClient {
	return &ParitySampleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `paritysample.Hooks(f(g(h())))`.
func (c *ParitySampleClient) Use(hooks ...Hook) {
	c.hooks.ParitySample = append(c.hooks.ParitySample, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `paritysample.Intercept(f(g(h())))`.
func (c *ParitySampleClient) Intercept(interceptors ...Interceptor) {
	c.inters.ParitySample = append(c.inters.ParitySample, interceptors...)
}

// Create returns a builder for creating a ParitySample entity.
func (c *ParitySampleClient) Create() *ParitySampleCreate {
	mutation := newParitySampleMutation(c.config, OpCreate)
	return &ParitySampleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ParitySample entities.
func (c *ParitySampleClient) CreateBulk(builders ...*ParitySampleCreate) *ParitySampleCreateBulk {
	return &ParitySampleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParitySampleClient) MapCreateBulk(slice any, setFunc func(*ParitySampleCreate, int)) *ParitySampleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParitySampleCreateBulk{err: fmt.Errorf("calling to ParitySampleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParitySampleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParitySampleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ParitySample.
func (c *ParitySampleClient) Update() *ParitySampleUpdate {
	mutation := newParitySampleMutation(c.config, OpUpdate)
	return &ParitySampleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParitySampleClient) UpdateOne(_m *ParitySample) *ParitySampleUpdateOne {
	mutation := newParitySampleMutation(c.config, OpUpdateOne, withParitySample(_m))
	return &ParitySampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParitySampleClient) UpdateOneID(id string) *ParitySampleUpdateOne {
	mutation := newParitySampleMutation(c.config, OpUpdateOne, withParitySampleID(id))
	return &ParitySampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ParitySample.
func (c *ParitySampleClient) Delete() *ParitySampleDelete {
	mutation := newParitySampleMutation(c.config, OpDelete)
	return &ParitySampleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParitySampleClient) DeleteOne(_m *ParitySample) *ParitySampleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParitySampleClient) DeleteOneID(id string) *ParitySampleDeleteOne {
	builder := c.Delete().Where(paritysample.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParitySampleDeleteOne{builder}
}

// Query returns a query builder for ParitySample.
func (c *ParitySampleClient) Query() *ParitySampleQuery {
	return &ParitySampleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParitySample},
		inters: c.Interceptors(),
	}
}

// Get returns a ParitySample entity by its id.
func (c *ParitySampleClient) Get(ctx context.Context, id string) (*ParitySample, error) {
	return c.Query().Where(paritysample.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParitySampleClient) GetX(ctx context.Context, id string) *ParitySample {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ParitySampleClient) Hooks() []Hook {
	return c.hooks.ParitySample
}

// Interceptors returns the client interceptors.
func (c *ParitySampleClient) Interceptors() []Interceptor {
	return c.inters.ParitySample
}

func (c *ParitySampleClient) mutate(ctx context.Context, m *ParitySampleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParitySampleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParitySampleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParitySampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParitySampleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ParitySample mutation op: %q", m.Op())
	}
}

// PhaseArtifactClient is a client for the PhaseArtifact schema.
type PhaseArtifactClient struct {
	config
}

// NewPhaseArtifactClient returns a client for the PhaseArtifact from the given config.
func NewPhaseArtifactClient(c config) *PhaseArtifactClient {
	return &PhaseArtifactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `phaseartifact.Hooks(f(g(h())))`.
func (c *PhaseArtifactClient) Use(hooks ...Hook) {
	c.hooks.PhaseArtifact = append(c.hooks.PhaseArtifact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `phaseartifact.Intercept(f(g(h())))`.
func (c *PhaseArtifactClient) Intercept(interceptors ...Interceptor) {
	c.inters.PhaseArtifact = append(c.inters.PhaseArtifact, interceptors...)
}

// Create returns a builder for creating a PhaseArtifact entity.
func (c *PhaseArtifactClient) Create() *PhaseArtifactCreate {
	mutation := newPhaseArtifactMutation(c.config, OpCreate)
	return &PhaseArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PhaseArtifact entities.
func (c *PhaseArtifactClient) CreateBulk(builders ...*PhaseArtifactCreate) *PhaseArtifactCreateBulk {
	return &PhaseArtifactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PhaseArtifactClient) MapCreateBulk(slice any, setFunc func(*PhaseArtifactCreate, int)) *PhaseArtifactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PhaseArtifactCreateBulk{err: fmt.Errorf("calling to PhaseArtifactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PhaseArtifactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PhaseArtifactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PhaseArtifact.
func (c *PhaseArtifactClient) Update() *PhaseArtifactUpdate {
	mutation := newPhaseArtifactMutation(c.config, OpUpdate)
	return &PhaseArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PhaseArtifactClient) UpdateOne(_m *PhaseArtifact) *PhaseArtifactUpdateOne {
	mutation := newPhaseArtifactMutation(c.config, OpUpdateOne, withPhaseArtifact(_m))
	return &PhaseArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PhaseArtifactClient) UpdateOneID(id string) *PhaseArtifactUpdateOne {
	mutation := newPhaseArtifactMutation(c.config, OpUpdateOne, withPhaseArtifactID(id))
	return &PhaseArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PhaseArtifact.
func (c *PhaseArtifactClient) Delete() *PhaseArtifactDelete {
	mutation := newPhaseArtifactMutation(c.config, OpDelete)
	return &PhaseArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PhaseArtifactClient) DeleteOne(_m *PhaseArtifact) *PhaseArtifactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PhaseArtifactClient) DeleteOneID(id string) *PhaseArtifactDeleteOne {
	builder := c.Delete().Where(phaseartifact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PhaseArtifactDeleteOne{builder}
}

// Query returns a query builder for PhaseArtifact.
func (c *PhaseArtifactClient) Query() *PhaseArtifactQuery {
	return &PhaseArtifactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePhaseArtifact},
		inters: c.Interceptors(),
	}
}

// Get returns a PhaseArtifact entity by its id.
func (c *PhaseArtifactClient) Get(ctx context.Context, id string) (*PhaseArtifact, error) {
	return c.Query().Where(phaseartifact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PhaseArtifactClient) GetX(ctx context.Context, id string) *PhaseArtifact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLoop queries the loop edge of a PhaseArtifact.
func (c *PhaseArtifactClient) QueryLoop(_m *PhaseArtifact) *LoopQuery {
	query := (&LoopClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(phaseartifact.Table, phaseartifact.FieldID, id),
			sqlgraph.To(loop.Table, loop.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, phaseartifact.LoopTable, phaseartifact.LoopColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTasks queries the tasks edge of a PhaseArtifact.
func (c *PhaseArtifactClient) QueryTasks(_m *PhaseArtifact) *PlanTaskQuery {
	query := (&PlanTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(phaseartifact.Table, phaseartifact.FieldID, id),
			sqlgraph.To(plantask.Table, plantask.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, phaseartifact.TasksTable, phaseartifact.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PhaseArtifactClient) Hooks() []Hook {
	return c.hooks.PhaseArtifact
}

// Interceptors returns the client interceptors.
func (c *PhaseArtifactClient) Interceptors() []Interceptor {
	return c.inters.PhaseArtifact
}

func (c *PhaseArtifactClient) mutate(ctx context.Context, m *PhaseArtifactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PhaseArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PhaseArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PhaseArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PhaseArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PhaseArtifact mutation op: %q", m.Op())
	}
}

// PlanTaskClient is a client for the PlanTask schema.
type PlanTaskClient struct {
	config
}

// NewPlanTaskClient returns a client for the PlanTask from the given config.
func NewPlanTaskClient(c config) *PlanTaskClient {
	return &PlanTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `plantask.Hooks(f(g(h())))`.
func (c *PlanTaskClient) Use(hooks ...Hook) {
	c.hooks.PlanTask = append(c.hooks.PlanTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `plantask.Intercept(f(g(h())))`.
func (c *PlanTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlanTask = append(c.inters.PlanTask, interceptors...)
}

// Create returns a builder for creating a PlanTask entity.
func (c *PlanTaskClient) Create() *PlanTaskCreate {
	mutation := newPlanTaskMutation(c.config, OpCreate)
	return &PlanTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlanTask entities.
func (c *PlanTaskClient) CreateBulk(builders ...*PlanTaskCreate) *PlanTaskCreateBulk {
	return &PlanTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlanTaskClient) MapCreateBulk(slice any, setFunc func(*PlanTaskCreate, int)) *PlanTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlanTaskCreateBulk{err: fmt.Errorf("calling to PlanTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlanTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlanTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlanTask.
func (c *PlanTaskClient) Update() *PlanTaskUpdate {
	mutation := newPlanTaskMutation(c.config, OpUpdate)
	return &PlanTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlanTaskClient) UpdateOne(_m *PlanTask) *PlanTaskUpdateOne {
	mutation := newPlanTaskMutation(c.config, OpUpdateOne, withPlanTask(_m))
	return &PlanTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlanTaskClient) UpdateOneID(id string) *PlanTaskUpdateOne {
	mutation := newPlanTaskMutation(c.config, OpUpdateOne, withPlanTaskID(id))
	return &PlanTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlanTask.
func (c *PlanTaskClient) Delete() *PlanTaskDelete {
	mutation := newPlanTaskMutation(c.config, OpDelete)
	return &PlanTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlanTaskClient) DeleteOne(_m *PlanTask) *PlanTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlanTaskClient) DeleteOneID(id string) *PlanTaskDeleteOne {
	builder := c.Delete().Where(plantask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlanTaskDeleteOne{builder}
}

// Query returns a query builder for PlanTask.
func (c *PlanTaskClient) Query() *PlanTaskQuery {
	return &PlanTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlanTask},
		inters: c.Interceptors(),
	}
}

// Get returns a PlanTask entity by its id.
func (c *PlanTaskClient) Get(ctx context.Context, id string) (*PlanTask, error) {
	return c.Query().Where(plantask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlanTaskClient) GetX(ctx context.Context, id string) *PlanTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryArtifact queries the artifact edge of a PlanTask.
func (c *PlanTaskClient) QueryArtifact(_m *PlanTask) *PhaseArtifactQuery {
	query := (&PhaseArtifactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(plantask.Table, plantask.FieldID, id),
			sqlgraph.To(phaseartifact.Table, phaseartifact.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, plantask.ArtifactTable, plantask.ArtifactColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PlanTaskClient) Hooks() []Hook {
	return c.hooks.PlanTask
}

// Interceptors returns the client interceptors.
func (c *PlanTaskClient) Interceptors() []Interceptor {
	return c.inters.PlanTask
}

func (c *PlanTaskClient) mutate(ctx context.Context, m *PlanTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlanTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlanTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlanTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlanTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlanTask mutation op: %q", m.Op())
	}
}

// WebhookDeliveryClient is a client for the WebhookDelivery schema.
type WebhookDeliveryClient struct {
	config
}

// NewWebhookDeliveryClient returns a client for the WebhookDelivery from the given config.
func NewWebhookDeliveryClient(c config) *WebhookDeliveryClient {
	return &WebhookDeliveryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `webhookdelivery.Hooks(f(g(h())))`.
func (c *WebhookDeliveryClient) Use(hooks ...Hook) {
	c.hooks.WebhookDelivery = append(c.hooks.WebhookDelivery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `webhookdelivery.Intercept(f(g(h())))`.
func (c *WebhookDeliveryClient) Intercept(interceptors ...Interceptor) {
	c.inters.WebhookDelivery = append(c.inters.WebhookDelivery, interceptors...)
}

// Create returns a builder for creating a WebhookDelivery entity.
func (c *WebhookDeliveryClient) Create() *WebhookDeliveryCreate {
	mutation := newWebhookDeliveryMutation(c.config, OpCreate)
	return &WebhookDeliveryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WebhookDelivery entities.
func (c *WebhookDeliveryClient) CreateBulk(builders ...*WebhookDeliveryCreate) *WebhookDeliveryCreateBulk {
	return &WebhookDeliveryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WebhookDeliveryClient) MapCreateBulk(slice any, setFunc func(*WebhookDeliveryCreate, int)) *WebhookDeliveryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WebhookDeliveryCreateBulk{err: fmt.Errorf("calling to WebhookDeliveryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WebhookDeliveryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WebhookDeliveryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WebhookDelivery.
func (c *WebhookDeliveryClient) Update() *WebhookDeliveryUpdate {
	mutation := newWebhookDeliveryMutation(c.config, OpUpdate)
	return &WebhookDeliveryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WebhookDeliveryClient) UpdateOne(_m *WebhookDelivery) *WebhookDeliveryUpdateOne {
	mutation := newWebhookDeliveryMutation(c.config, OpUpdateOne, withWebhookDelivery(_m))
	return &WebhookDeliveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WebhookDeliveryClient) UpdateOneID(id string) *WebhookDeliveryUpdateOne {
	mutation := newWebhookDeliveryMutation(c.config, OpUpdateOne, withWebhookDeliveryID(id))
	return &WebhookDeliveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WebhookDelivery.
func (c *WebhookDeliveryClient) Delete() *WebhookDeliveryDelete {
	mutation := newWebhookDeliveryMutation(c.config, OpDelete)
	return &WebhookDeliveryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WebhookDeliveryClient) DeleteOne(_m *WebhookDelivery) *WebhookDeliveryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WebhookDeliveryClient) DeleteOneID(id string) *WebhookDeliveryDeleteOne {
	builder := c.Delete().Where(webhookdelivery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WebhookDeliveryDeleteOne{builder}
}

// Query returns a query builder for WebhookDelivery.
func (c *WebhookDeliveryClient) Query() *WebhookDeliveryQuery {
	return &WebhookDeliveryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWebhookDelivery},
		inters: c.Interceptors(),
	}
}

// Get returns a WebhookDelivery entity by its id.
func (c *WebhookDeliveryClient) Get(ctx context.Context, id string) (*WebhookDelivery, error) {
	return c.Query().Where(webhookdelivery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WebhookDeliveryClient) GetX(ctx context.Context, id string) *WebhookDelivery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WebhookDeliveryClient) Hooks() []Hook {
	return c.hooks.WebhookDelivery
}

// Interceptors returns the client interceptors.
func (c *WebhookDeliveryClient) Interceptors() []Interceptor {
	return c.inters.WebhookDelivery
}

func (c *WebhookDeliveryClient) mutate(ctx context.Context, m *WebhookDeliveryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WebhookDeliveryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WebhookDeliveryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WebhookDeliveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WebhookDeliveryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WebhookDelivery mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		GateFinding, GateRun, InboxSignal, Loop, LoopLease, OutboxAction, OutboxAttempt,
		ParitySample, PhaseArtifact, PlanTask, WebhookDelivery []ent.Hook
	}
	inters struct {
		GateFinding, GateRun, InboxSignal, Loop, LoopLease, OutboxAction, OutboxAttempt,
		ParitySample, PhaseArtifact, PlanTask, WebhookDelivery []ent.Interceptor
	}
)
