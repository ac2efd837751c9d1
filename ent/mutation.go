// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
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
	"github.com/codeready-toolchain/loopd/ent/predicate"
	"github.com/codeready-toolchain/loopd/ent/webhookdelivery"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeGateFinding     = "GateFinding"
	TypeGateRun         = "GateRun"
	TypeInboxSignal     = "InboxSignal"
	TypeLoop            = "Loop"
	TypeLoopLease       = "LoopLease"
	TypeOutboxAction    = "OutboxAction"
	TypeOutboxAttempt   = "OutboxAttempt"
	TypeParitySample    = "ParitySample"
	TypePhaseArtifact   = "PhaseArtifact"
	TypePlanTask        = "PlanTask"
	TypeWebhookDelivery = "WebhookDelivery"
)

// GateFindingMutation represents an operation that mutates the GateFinding nodes in the graph.
type GateFindingMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	gate_kind            *gatefinding.GateKind
	head_sha             *string
	stable_finding_id    *string
	severity             *gatefinding.Severity
	category             *string
	title                *string
	detail               *string
	suggested_fix        *string
	is_blocking          *bool
	resolved_at          *time.Time
	resolved_by_event_id *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	loop                 *string
	clearedloop          bool
	done                 bool
	oldValue             func(context.Context) (*GateFinding, error)
	predicates           []predicate.GateFinding
}

var _ ent.Mutation = (*GateFindingMutation)(nil)

// gatefindingOption allows management of the mutation configuration using functional options.
type gatefindingOption func(*GateFindingMutation)

// newGateFindingMutation creates new mutation for the GateFinding entity.
func newGateFindingMutation(c config, op Op, opts ...gatefindingOption) *GateFindingMutation {
	m := &GateFindingMutation{
		config:        c,
		op:            op,
		typ:           TypeGateFinding,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGateFindingID sets the ID field of the mutation.
func withGateFindingID(id string) gatefindingOption {
	return func(m *GateFindingMutation) {
		var (
			err   error
			once  sync.Once
			value *GateFinding
		)
		m.oldValue = func(ctx context.Context) (*GateFinding, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GateFinding.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGateFinding sets the old GateFinding of the mutation.
func withGateFinding(node *GateFinding) gatefindingOption {
	return func(m *GateFindingMutation) {
		m.oldValue = func(context.Context) (*GateFinding, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GateFindingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GateFindingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GateFinding entities.
func (m *GateFindingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GateFindingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GateFindingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GateFinding.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLoopID sets the "loop_id" field.
func (m *GateFindingMutation) SetLoopID(s string) {
	m.loop = &s
}

// LoopID returns the value of the "loop_id" field in the mutation.
func (m *GateFindingMutation) LoopID() (r string, exists bool) {
	v := m.loop
	if v == nil {
		return
	}
	return *v, true
}

// OldLoopID returns the old "loop_id" field's value of the GateFinding entity.
// If the GateFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateFindingMutation) OldLoopID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoopID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoopID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoopID: %w", err)
	}
	return oldValue.LoopID, nil
}

// ResetLoopID resets all changes to the "loop_id" field.
func (m *GateFindingMutation) ResetLoopID() {
	m.loop = nil
}

// SetGateKind sets the "gate_kind" field.
func (m *GateFindingMutation) SetGateKind(gk gatefinding.GateKind) {
	m.gate_kind = &gk
}

// GateKind returns the value of the "gate_kind" field in the mutation.
func (m *GateFindingMutation) GateKind() (r gatefinding.GateKind, exists bool) {
	v := m.gate_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldGateKind returns the old "gate_kind" field's value of the GateFinding entity.
// If the GateFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateFindingMutation) OldGateKind(ctx context.Context) (v gatefinding.GateKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGateKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGateKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGateKind: %w", err)
	}
	return oldValue.GateKind, nil
}

// ResetGateKind resets all changes to the "gate_kind" field.
func (m *GateFindingMutation) ResetGateKind() {
	m.gate_kind = nil
}

// SetHeadSha sets the "head_sha" field.
func (m *GateFindingMutation) SetHeadSha(s string) {
	m.head_sha = &s
}

// HeadSha returns the value of the "head_sha" field in the mutation.
func (m *GateFindingMutation) HeadSha() (r string, exists bool) {
	v := m.head_sha
	if v == nil {
		return
	}
	return *v, true
}

// OldHeadSha returns the old "head_sha" field's value of the GateFinding entity.
// If the GateFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateFindingMutation) OldHeadSha(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeadSha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeadSha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeadSha: %w", err)
	}
	return oldValue.HeadSha, nil
}

// ResetHeadSha resets all changes to the "head_sha" field.
func (m *GateFindingMutation) ResetHeadSha() {
	m.head_sha = nil
}

// SetStableFindingID sets the "stable_finding_id" field.
func (m *GateFindingMutation) SetStableFindingID(s string) {
	m.stable_finding_id = &s
}

// StableFindingID returns the value of the "stable_finding_id" field in the mutation.
func (m *GateFindingMutation) StableFindingID() (r string, exists bool) {
	v := m.stable_finding_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStableFindingID returns the old "stable_finding_id" field's value of the GateFinding entity.
// If the GateFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateFindingMutation) OldStableFindingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStableFindingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStableFindingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStableFindingID: %w", err)
	}
	return oldValue.StableFindingID, nil
}

// ResetStableFindingID resets all changes to the "stable_finding_id" field.
func (m *GateFindingMutation) ResetStableFindingID() {
	m.stable_finding_id = nil
}

// SetSeverity sets the "severity" field.
func (m *GateFindingMutation) SetSeverity(ga gatefinding.Severity) {
	m.severity = &ga
}

// Severity returns the value of the "severity" field in the mutation.
func (m *GateFindingMutation) Severity() (r gatefinding.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the GateFinding entity.
// If the GateFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateFindingMutation) OldSeverity(ctx context.Context) (v gatefinding.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *GateFindingMutation) ResetSeverity() {
	m.severity = nil
}

// SetCategory sets the "category" field.
func (m *GateFindingMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *GateFindingMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the GateFinding entity.
// If the GateFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateFindingMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *GateFindingMutation) ResetCategory() {
	m.category = nil
}

// SetTitle sets the "title" field.
func (m *GateFindingMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *GateFindingMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the GateFinding entity.
// If the GateFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateFindingMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *GateFindingMutation) ResetTitle() {
	m.title = nil
}

// SetDetail sets the "detail" field.
func (m *GateFindingMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *GateFindingMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the GateFinding entity.
// If the GateFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateFindingMutation) OldDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ResetDetail resets all changes to the "detail" field.
func (m *GateFindingMutation) ResetDetail() {
	m.detail = nil
}

// SetSuggestedFix sets the "suggested_fix" field.
func (m *GateFindingMutation) SetSuggestedFix(s string) {
	m.suggested_fix = &s
}

// SuggestedFix returns the value of the "suggested_fix" field in the mutation.
func (m *GateFindingMutation) SuggestedFix() (r string, exists bool) {
	v := m.suggested_fix
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestedFix returns the old "suggested_fix" field's value of the GateFinding entity.
// If the GateFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateFindingMutation) OldSuggestedFix(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestedFix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestedFix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestedFix: %w", err)
	}
	return oldValue.SuggestedFix, nil
}

// ClearSuggestedFix clears the value of the "suggested_fix" field.
func (m *GateFindingMutation) ClearSuggestedFix() {
	m.suggested_fix = nil
	m.clearedFields[gatefinding.FieldSuggestedFix] = struct{}{}
}

// SuggestedFixCleared returns if the "suggested_fix" field was cleared in this mutation.
func (m *GateFindingMutation) SuggestedFixCleared() bool {
	_, ok := m.clearedFields[gatefinding.FieldSuggestedFix]
	return ok
}

// ResetSuggestedFix resets all changes to the "suggested_fix" field.
func (m *GateFindingMutation) ResetSuggestedFix() {
	m.suggested_fix = nil
	delete(m.clearedFields, gatefinding.FieldSuggestedFix)
}

// SetIsBlocking sets the "is_blocking" field.
func (m *GateFindingMutation) SetIsBlocking(b bool) {
	m.is_blocking = &b
}

// IsBlocking returns the value of the "is_blocking" field in the mutation.
func (m *GateFindingMutation) IsBlocking() (r bool, exists bool) {
	v := m.is_blocking
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBlocking returns the old "is_blocking" field's value of the GateFinding entity.
// If the GateFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateFindingMutation) OldIsBlocking(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBlocking is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBlocking requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBlocking: %w", err)
	}
	return oldValue.IsBlocking, nil
}

// ResetIsBlocking resets all changes to the "is_blocking" field.
func (m *GateFindingMutation) ResetIsBlocking() {
	m.is_blocking = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *GateFindingMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *GateFindingMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the GateFinding entity.
// If the GateFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateFindingMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *GateFindingMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[gatefinding.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *GateFindingMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[gatefinding.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *GateFindingMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, gatefinding.FieldResolvedAt)
}

// SetResolvedByEventID sets the "resolved_by_event_id" field.
func (m *GateFindingMutation) SetResolvedByEventID(s string) {
	m.resolved_by_event_id = &s
}

// ResolvedByEventID returns the value of the "resolved_by_event_id" field in the mutation.
func (m *GateFindingMutation) ResolvedByEventID() (r string, exists bool) {
	v := m.resolved_by_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedByEventID returns the old "resolved_by_event_id" field's value of the GateFinding entity.
// If the GateFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateFindingMutation) OldResolvedByEventID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedByEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedByEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedByEventID: %w", err)
	}
	return oldValue.ResolvedByEventID, nil
}

// ClearResolvedByEventID clears the value of the "resolved_by_event_id" field.
func (m *GateFindingMutation) ClearResolvedByEventID() {
	m.resolved_by_event_id = nil
	m.clearedFields[gatefinding.FieldResolvedByEventID] = struct{}{}
}

// ResolvedByEventIDCleared returns if the "resolved_by_event_id" field was cleared in this mutation.
func (m *GateFindingMutation) ResolvedByEventIDCleared() bool {
	_, ok := m.clearedFields[gatefinding.FieldResolvedByEventID]
	return ok
}

// ResetResolvedByEventID resets all changes to the "resolved_by_event_id" field.
func (m *GateFindingMutation) ResetResolvedByEventID() {
	m.resolved_by_event_id = nil
	delete(m.clearedFields, gatefinding.FieldResolvedByEventID)
}

// SetCreatedAt sets the "created_at" field.
func (m *GateFindingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GateFindingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GateFinding entity.
// If the GateFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateFindingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GateFindingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearLoop clears the "loop" edge to the Loop entity.
func (m *GateFindingMutation) ClearLoop() {
	m.clearedloop = true
	m.clearedFields[gatefinding.FieldLoopID] = struct{}{}
}

// LoopCleared reports if the "loop" edge to the Loop entity was cleared.
func (m *GateFindingMutation) LoopCleared() bool {
	return m.clearedloop
}

// LoopIDs returns the "loop" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LoopID instead. It exists only for internal usage by the builders.
func (m *GateFindingMutation) LoopIDs() (ids []string) {
	if id := m.loop; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLoop resets all changes to the "loop" edge.
func (m *GateFindingMutation) ResetLoop() {
	m.loop = nil
	m.clearedloop = false
}

// Where appends a list predicates to the GateFindingMutation builder.
func (m *GateFindingMutation) Where(ps ...predicate.GateFinding) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GateFindingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GateFindingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GateFinding, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GateFindingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GateFindingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GateFinding).
func (m *GateFindingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GateFindingMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.loop != nil {
		fields = append(fields, gatefinding.FieldLoopID)
	}
	if m.gate_kind != nil {
		fields = append(fields, gatefinding.FieldGateKind)
	}
	if m.head_sha != nil {
		fields = append(fields, gatefinding.FieldHeadSha)
	}
	if m.stable_finding_id != nil {
		fields = append(fields, gatefinding.FieldStableFindingID)
	}
	if m.severity != nil {
		fields = append(fields, gatefinding.FieldSeverity)
	}
	if m.category != nil {
		fields = append(fields, gatefinding.FieldCategory)
	}
	if m.title != nil {
		fields = append(fields, gatefinding.FieldTitle)
	}
	if m.detail != nil {
		fields = append(fields, gatefinding.FieldDetail)
	}
	if m.suggested_fix != nil {
		fields = append(fields, gatefinding.FieldSuggestedFix)
	}
	if m.is_blocking != nil {
		fields = append(fields, gatefinding.FieldIsBlocking)
	}
	if m.resolved_at != nil {
		fields = append(fields, gatefinding.FieldResolvedAt)
	}
	if m.resolved_by_event_id != nil {
		fields = append(fields, gatefinding.FieldResolvedByEventID)
	}
	if m.created_at != nil {
		fields = append(fields, gatefinding.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GateFindingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gatefinding.FieldLoopID:
		return m.LoopID()
	case gatefinding.FieldGateKind:
		return m.GateKind()
	case gatefinding.FieldHeadSha:
		return m.HeadSha()
	case gatefinding.FieldStableFindingID:
		return m.StableFindingID()
	case gatefinding.FieldSeverity:
		return m.Severity()
	case gatefinding.FieldCategory:
		return m.Category()
	case gatefinding.FieldTitle:
		return m.Title()
	case gatefinding.FieldDetail:
		return m.Detail()
	case gatefinding.FieldSuggestedFix:
		return m.SuggestedFix()
	case gatefinding.FieldIsBlocking:
		return m.IsBlocking()
	case gatefinding.FieldResolvedAt:
		return m.ResolvedAt()
	case gatefinding.FieldResolvedByEventID:
		return m.ResolvedByEventID()
	case gatefinding.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GateFindingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gatefinding.FieldLoopID:
		return m.OldLoopID(ctx)
	case gatefinding.FieldGateKind:
		return m.OldGateKind(ctx)
	case gatefinding.FieldHeadSha:
		return m.OldHeadSha(ctx)
	case gatefinding.FieldStableFindingID:
		return m.OldStableFindingID(ctx)
	case gatefinding.FieldSeverity:
		return m.OldSeverity(ctx)
	case gatefinding.FieldCategory:
		return m.OldCategory(ctx)
	case gatefinding.FieldTitle:
		return m.OldTitle(ctx)
	case gatefinding.FieldDetail:
		return m.OldDetail(ctx)
	case gatefinding.FieldSuggestedFix:
		return m.OldSuggestedFix(ctx)
	case gatefinding.FieldIsBlocking:
		return m.OldIsBlocking(ctx)
	case gatefinding.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case gatefinding.FieldResolvedByEventID:
		return m.OldResolvedByEventID(ctx)
	case gatefinding.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GateFinding field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GateFindingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gatefinding.FieldLoopID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoopID(v)
		return nil
	case gatefinding.FieldGateKind:
		v, ok := value.(gatefinding.GateKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGateKind(v)
		return nil
	case gatefinding.FieldHeadSha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeadSha(v)
		return nil
	case gatefinding.FieldStableFindingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStableFindingID(v)
		return nil
	case gatefinding.FieldSeverity:
		v, ok := value.(gatefinding.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case gatefinding.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case gatefinding.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case gatefinding.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case gatefinding.FieldSuggestedFix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestedFix(v)
		return nil
	case gatefinding.FieldIsBlocking:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBlocking(v)
		return nil
	case gatefinding.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case gatefinding.FieldResolvedByEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedByEventID(v)
		return nil
	case gatefinding.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GateFinding field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GateFindingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GateFindingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GateFindingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GateFinding numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GateFindingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(gatefinding.FieldSuggestedFix) {
		fields = append(fields, gatefinding.FieldSuggestedFix)
	}
	if m.FieldCleared(gatefinding.FieldResolvedAt) {
		fields = append(fields, gatefinding.FieldResolvedAt)
	}
	if m.FieldCleared(gatefinding.FieldResolvedByEventID) {
		fields = append(fields, gatefinding.FieldResolvedByEventID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GateFindingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GateFindingMutation) ClearField(name string) error {
	switch name {
	case gatefinding.FieldSuggestedFix:
		m.ClearSuggestedFix()
		return nil
	case gatefinding.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	case gatefinding.FieldResolvedByEventID:
		m.ClearResolvedByEventID()
		return nil
	}
	return fmt.Errorf("unknown GateFinding nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GateFindingMutation) ResetField(name string) error {
	switch name {
	case gatefinding.FieldLoopID:
		m.ResetLoopID()
		return nil
	case gatefinding.FieldGateKind:
		m.ResetGateKind()
		return nil
	case gatefinding.FieldHeadSha:
		m.ResetHeadSha()
		return nil
	case gatefinding.FieldStableFindingID:
		m.ResetStableFindingID()
		return nil
	case gatefinding.FieldSeverity:
		m.ResetSeverity()
		return nil
	case gatefinding.FieldCategory:
		m.ResetCategory()
		return nil
	case gatefinding.FieldTitle:
		m.ResetTitle()
		return nil
	case gatefinding.FieldDetail:
		m.ResetDetail()
		return nil
	case gatefinding.FieldSuggestedFix:
		m.ResetSuggestedFix()
		return nil
	case gatefinding.FieldIsBlocking:
		m.ResetIsBlocking()
		return nil
	case gatefinding.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case gatefinding.FieldResolvedByEventID:
		m.ResetResolvedByEventID()
		return nil
	case gatefinding.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GateFinding field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GateFindingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.loop != nil {
		edges = append(edges, gatefinding.EdgeLoop)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GateFindingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case gatefinding.EdgeLoop:
		if id := m.loop; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GateFindingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GateFindingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GateFindingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedloop {
		edges = append(edges, gatefinding.EdgeLoop)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GateFindingMutation) EdgeCleared(name string) bool {
	switch name {
	case gatefinding.EdgeLoop:
		return m.clearedloop
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GateFindingMutation) ClearEdge(name string) error {
	switch name {
	case gatefinding.EdgeLoop:
		m.ClearLoop()
		return nil
	}
	return fmt.Errorf("unknown GateFinding unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GateFindingMutation) ResetEdge(name string) error {
	switch name {
	case gatefinding.EdgeLoop:
		m.ResetLoop()
		return nil
	}
	return fmt.Errorf("unknown GateFinding edge %s", name)
}

// GateRunMutation represents an operation that mutates the GateRun nodes in the graph.
type GateRunMutation struct {
	config
	op                             Op
	typ                            string
	id                             *string
	gate_kind                      *gaterun.GateKind
	head_sha                       *string
	loop_version                   *int
	addloop_version                *int
	status                         *string
	gate_passed                    *bool
	trigger_event                  *string
	error_code                     *string
	required_check_source          *string
	required_checks                *[]string
	appendrequired_checks          []string
	failing_required_checks        *[]string
	appendfailing_required_checks  []string
	unresolved_thread_count        *int
	addunresolved_thread_count     *int
	unresolved_thread_count_source *string
	invalid_output                 *bool
	details                        *map[string]interface{}
	created_at                     *time.Time
	updated_at                     *time.Time
	clearedFields                  map[string]struct{}
	loop                           *string
	clearedloop                    bool
	done                           bool
	oldValue                       func(context.Context) (*GateRun, error)
	predicates                     []predicate.GateRun
}

var _ ent.Mutation = (*GateRunMutation)(nil)

// gaterunOption allows management of the mutation configuration using functional options.
type gaterunOption func(*GateRunMutation)

// newGateRunMutation creates new mutation for the GateRun entity.
func newGateRunMutation(c config, op Op, opts ...gaterunOption) *GateRunMutation {
	m := &GateRunMutation{
		config:        c,
		op:            op,
		typ:           TypeGateRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGateRunID sets the ID field of the mutation.
func withGateRunID(id string) gaterunOption {
	return func(m *GateRunMutation) {
		var (
			err   error
			once  sync.Once
			value *GateRun
		)
		m.oldValue = func(ctx context.Context) (*GateRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GateRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGateRun sets the old GateRun of the mutation.
func withGateRun(node *GateRun) gaterunOption {
	return func(m *GateRunMutation) {
		m.oldValue = func(context.Context) (*GateRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GateRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GateRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GateRun entities.
func (m *GateRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GateRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GateRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GateRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLoopID sets the "loop_id" field.
func (m *GateRunMutation) SetLoopID(s string) {
	m.loop = &s
}

// LoopID returns the value of the "loop_id" field in the mutation.
func (m *GateRunMutation) LoopID() (r string, exists bool) {
	v := m.loop
	if v == nil {
		return
	}
	return *v, true
}

// OldLoopID returns the old "loop_id" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldLoopID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoopID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoopID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoopID: %w", err)
	}
	return oldValue.LoopID, nil
}

// ResetLoopID resets all changes to the "loop_id" field.
func (m *GateRunMutation) ResetLoopID() {
	m.loop = nil
}

// SetGateKind sets the "gate_kind" field.
func (m *GateRunMutation) SetGateKind(gk gaterun.GateKind) {
	m.gate_kind = &gk
}

// GateKind returns the value of the "gate_kind" field in the mutation.
func (m *GateRunMutation) GateKind() (r gaterun.GateKind, exists bool) {
	v := m.gate_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldGateKind returns the old "gate_kind" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldGateKind(ctx context.Context) (v gaterun.GateKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGateKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGateKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGateKind: %w", err)
	}
	return oldValue.GateKind, nil
}

// ResetGateKind resets all changes to the "gate_kind" field.
func (m *GateRunMutation) ResetGateKind() {
	m.gate_kind = nil
}

// SetHeadSha sets the "head_sha" field.
func (m *GateRunMutation) SetHeadSha(s string) {
	m.head_sha = &s
}

// HeadSha returns the value of the "head_sha" field in the mutation.
func (m *GateRunMutation) HeadSha() (r string, exists bool) {
	v := m.head_sha
	if v == nil {
		return
	}
	return *v, true
}

// OldHeadSha returns the old "head_sha" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldHeadSha(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeadSha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeadSha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeadSha: %w", err)
	}
	return oldValue.HeadSha, nil
}

// ResetHeadSha resets all changes to the "head_sha" field.
func (m *GateRunMutation) ResetHeadSha() {
	m.head_sha = nil
}

// SetLoopVersion sets the "loop_version" field.
func (m *GateRunMutation) SetLoopVersion(i int) {
	m.loop_version = &i
	m.addloop_version = nil
}

// LoopVersion returns the value of the "loop_version" field in the mutation.
func (m *GateRunMutation) LoopVersion() (r int, exists bool) {
	v := m.loop_version
	if v == nil {
		return
	}
	return *v, true
}

// OldLoopVersion returns the old "loop_version" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldLoopVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoopVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoopVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoopVersion: %w", err)
	}
	return oldValue.LoopVersion, nil
}

// AddLoopVersion adds i to the "loop_version" field.
func (m *GateRunMutation) AddLoopVersion(i int) {
	if m.addloop_version != nil {
		*m.addloop_version += i
	} else {
		m.addloop_version = &i
	}
}

// AddedLoopVersion returns the value that was added to the "loop_version" field in this mutation.
func (m *GateRunMutation) AddedLoopVersion() (r int, exists bool) {
	v := m.addloop_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetLoopVersion resets all changes to the "loop_version" field.
func (m *GateRunMutation) ResetLoopVersion() {
	m.loop_version = nil
	m.addloop_version = nil
}

// SetStatus sets the "status" field.
func (m *GateRunMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *GateRunMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *GateRunMutation) ResetStatus() {
	m.status = nil
}

// SetGatePassed sets the "gate_passed" field.
func (m *GateRunMutation) SetGatePassed(b bool) {
	m.gate_passed = &b
}

// GatePassed returns the value of the "gate_passed" field in the mutation.
func (m *GateRunMutation) GatePassed() (r bool, exists bool) {
	v := m.gate_passed
	if v == nil {
		return
	}
	return *v, true
}

// OldGatePassed returns the old "gate_passed" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldGatePassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGatePassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGatePassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGatePassed: %w", err)
	}
	return oldValue.GatePassed, nil
}

// ResetGatePassed resets all changes to the "gate_passed" field.
func (m *GateRunMutation) ResetGatePassed() {
	m.gate_passed = nil
}

// SetTriggerEvent sets the "trigger_event" field.
func (m *GateRunMutation) SetTriggerEvent(s string) {
	m.trigger_event = &s
}

// TriggerEvent returns the value of the "trigger_event" field in the mutation.
func (m *GateRunMutation) TriggerEvent() (r string, exists bool) {
	v := m.trigger_event
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerEvent returns the old "trigger_event" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldTriggerEvent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerEvent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerEvent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerEvent: %w", err)
	}
	return oldValue.TriggerEvent, nil
}

// ClearTriggerEvent clears the value of the "trigger_event" field.
func (m *GateRunMutation) ClearTriggerEvent() {
	m.trigger_event = nil
	m.clearedFields[gaterun.FieldTriggerEvent] = struct{}{}
}

// TriggerEventCleared returns if the "trigger_event" field was cleared in this mutation.
func (m *GateRunMutation) TriggerEventCleared() bool {
	_, ok := m.clearedFields[gaterun.FieldTriggerEvent]
	return ok
}

// ResetTriggerEvent resets all changes to the "trigger_event" field.
func (m *GateRunMutation) ResetTriggerEvent() {
	m.trigger_event = nil
	delete(m.clearedFields, gaterun.FieldTriggerEvent)
}

// SetErrorCode sets the "error_code" field.
func (m *GateRunMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *GateRunMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *GateRunMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[gaterun.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *GateRunMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[gaterun.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *GateRunMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, gaterun.FieldErrorCode)
}

// SetRequiredCheckSource sets the "required_check_source" field.
func (m *GateRunMutation) SetRequiredCheckSource(s string) {
	m.required_check_source = &s
}

// RequiredCheckSource returns the value of the "required_check_source" field in the mutation.
func (m *GateRunMutation) RequiredCheckSource() (r string, exists bool) {
	v := m.required_check_source
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredCheckSource returns the old "required_check_source" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldRequiredCheckSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredCheckSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredCheckSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredCheckSource: %w", err)
	}
	return oldValue.RequiredCheckSource, nil
}

// ClearRequiredCheckSource clears the value of the "required_check_source" field.
func (m *GateRunMutation) ClearRequiredCheckSource() {
	m.required_check_source = nil
	m.clearedFields[gaterun.FieldRequiredCheckSource] = struct{}{}
}

// RequiredCheckSourceCleared returns if the "required_check_source" field was cleared in this mutation.
func (m *GateRunMutation) RequiredCheckSourceCleared() bool {
	_, ok := m.clearedFields[gaterun.FieldRequiredCheckSource]
	return ok
}

// ResetRequiredCheckSource resets all changes to the "required_check_source" field.
func (m *GateRunMutation) ResetRequiredCheckSource() {
	m.required_check_source = nil
	delete(m.clearedFields, gaterun.FieldRequiredCheckSource)
}

// SetRequiredChecks sets the "required_checks" field.
func (m *GateRunMutation) SetRequiredChecks(s []string) {
	m.required_checks = &s
	m.appendrequired_checks = nil
}

// RequiredChecks returns the value of the "required_checks" field in the mutation.
func (m *GateRunMutation) RequiredChecks() (r []string, exists bool) {
	v := m.required_checks
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredChecks returns the old "required_checks" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldRequiredChecks(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredChecks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredChecks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredChecks: %w", err)
	}
	return oldValue.RequiredChecks, nil
}

// AppendRequiredChecks adds s to the "required_checks" field.
func (m *GateRunMutation) AppendRequiredChecks(s []string) {
	m.appendrequired_checks = append(m.appendrequired_checks, s...)
}

// AppendedRequiredChecks returns the list of values that were appended to the "required_checks" field in this mutation.
func (m *GateRunMutation) AppendedRequiredChecks() ([]string, bool) {
	if len(m.appendrequired_checks) == 0 {
		return nil, false
	}
	return m.appendrequired_checks, true
}

// ClearRequiredChecks clears the value of the "required_checks" field.
func (m *GateRunMutation) ClearRequiredChecks() {
	m.required_checks = nil
	m.appendrequired_checks = nil
	m.clearedFields[gaterun.FieldRequiredChecks] = struct{}{}
}

// RequiredChecksCleared returns if the "required_checks" field was cleared in this mutation.
func (m *GateRunMutation) RequiredChecksCleared() bool {
	_, ok := m.clearedFields[gaterun.FieldRequiredChecks]
	return ok
}

// ResetRequiredChecks resets all changes to the "required_checks" field.
func (m *GateRunMutation) ResetRequiredChecks() {
	m.required_checks = nil
	m.appendrequired_checks = nil
	delete(m.clearedFields, gaterun.FieldRequiredChecks)
}

// SetFailingRequiredChecks sets the "failing_required_checks" field.
func (m *GateRunMutation) SetFailingRequiredChecks(s []string) {
	m.failing_required_checks = &s
	m.appendfailing_required_checks = nil
}

// FailingRequiredChecks returns the value of the "failing_required_checks" field in the mutation.
func (m *GateRunMutation) FailingRequiredChecks() (r []string, exists bool) {
	v := m.failing_required_checks
	if v == nil {
		return
	}
	return *v, true
}

// OldFailingRequiredChecks returns the old "failing_required_checks" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldFailingRequiredChecks(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailingRequiredChecks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailingRequiredChecks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailingRequiredChecks: %w", err)
	}
	return oldValue.FailingRequiredChecks, nil
}

// AppendFailingRequiredChecks adds s to the "failing_required_checks" field.
func (m *GateRunMutation) AppendFailingRequiredChecks(s []string) {
	m.appendfailing_required_checks = append(m.appendfailing_required_checks, s...)
}

// AppendedFailingRequiredChecks returns the list of values that were appended to the "failing_required_checks" field in this mutation.
func (m *GateRunMutation) AppendedFailingRequiredChecks() ([]string, bool) {
	if len(m.appendfailing_required_checks) == 0 {
		return nil, false
	}
	return m.appendfailing_required_checks, true
}

// ClearFailingRequiredChecks clears the value of the "failing_required_checks" field.
func (m *GateRunMutation) ClearFailingRequiredChecks() {
	m.failing_required_checks = nil
	m.appendfailing_required_checks = nil
	m.clearedFields[gaterun.FieldFailingRequiredChecks] = struct{}{}
}

// FailingRequiredChecksCleared returns if the "failing_required_checks" field was cleared in this mutation.
func (m *GateRunMutation) FailingRequiredChecksCleared() bool {
	_, ok := m.clearedFields[gaterun.FieldFailingRequiredChecks]
	return ok
}

// ResetFailingRequiredChecks resets all changes to the "failing_required_checks" field.
func (m *GateRunMutation) ResetFailingRequiredChecks() {
	m.failing_required_checks = nil
	m.appendfailing_required_checks = nil
	delete(m.clearedFields, gaterun.FieldFailingRequiredChecks)
}

// SetUnresolvedThreadCount sets the "unresolved_thread_count" field.
func (m *GateRunMutation) SetUnresolvedThreadCount(i int) {
	m.unresolved_thread_count = &i
	m.addunresolved_thread_count = nil
}

// UnresolvedThreadCount returns the value of the "unresolved_thread_count" field in the mutation.
func (m *GateRunMutation) UnresolvedThreadCount() (r int, exists bool) {
	v := m.unresolved_thread_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUnresolvedThreadCount returns the old "unresolved_thread_count" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldUnresolvedThreadCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnresolvedThreadCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnresolvedThreadCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnresolvedThreadCount: %w", err)
	}
	return oldValue.UnresolvedThreadCount, nil
}

// AddUnresolvedThreadCount adds i to the "unresolved_thread_count" field.
func (m *GateRunMutation) AddUnresolvedThreadCount(i int) {
	if m.addunresolved_thread_count != nil {
		*m.addunresolved_thread_count += i
	} else {
		m.addunresolved_thread_count = &i
	}
}

// AddedUnresolvedThreadCount returns the value that was added to the "unresolved_thread_count" field in this mutation.
func (m *GateRunMutation) AddedUnresolvedThreadCount() (r int, exists bool) {
	v := m.addunresolved_thread_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearUnresolvedThreadCount clears the value of the "unresolved_thread_count" field.
func (m *GateRunMutation) ClearUnresolvedThreadCount() {
	m.unresolved_thread_count = nil
	m.addunresolved_thread_count = nil
	m.clearedFields[gaterun.FieldUnresolvedThreadCount] = struct{}{}
}

// UnresolvedThreadCountCleared returns if the "unresolved_thread_count" field was cleared in this mutation.
func (m *GateRunMutation) UnresolvedThreadCountCleared() bool {
	_, ok := m.clearedFields[gaterun.FieldUnresolvedThreadCount]
	return ok
}

// ResetUnresolvedThreadCount resets all changes to the "unresolved_thread_count" field.
func (m *GateRunMutation) ResetUnresolvedThreadCount() {
	m.unresolved_thread_count = nil
	m.addunresolved_thread_count = nil
	delete(m.clearedFields, gaterun.FieldUnresolvedThreadCount)
}

// SetUnresolvedThreadCountSource sets the "unresolved_thread_count_source" field.
func (m *GateRunMutation) SetUnresolvedThreadCountSource(s string) {
	m.unresolved_thread_count_source = &s
}

// UnresolvedThreadCountSource returns the value of the "unresolved_thread_count_source" field in the mutation.
func (m *GateRunMutation) UnresolvedThreadCountSource() (r string, exists bool) {
	v := m.unresolved_thread_count_source
	if v == nil {
		return
	}
	return *v, true
}

// OldUnresolvedThreadCountSource returns the old "unresolved_thread_count_source" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldUnresolvedThreadCountSource(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnresolvedThreadCountSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnresolvedThreadCountSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnresolvedThreadCountSource: %w", err)
	}
	return oldValue.UnresolvedThreadCountSource, nil
}

// ClearUnresolvedThreadCountSource clears the value of the "unresolved_thread_count_source" field.
func (m *GateRunMutation) ClearUnresolvedThreadCountSource() {
	m.unresolved_thread_count_source = nil
	m.clearedFields[gaterun.FieldUnresolvedThreadCountSource] = struct{}{}
}

// UnresolvedThreadCountSourceCleared returns if the "unresolved_thread_count_source" field was cleared in this mutation.
func (m *GateRunMutation) UnresolvedThreadCountSourceCleared() bool {
	_, ok := m.clearedFields[gaterun.FieldUnresolvedThreadCountSource]
	return ok
}

// ResetUnresolvedThreadCountSource resets all changes to the "unresolved_thread_count_source" field.
func (m *GateRunMutation) ResetUnresolvedThreadCountSource() {
	m.unresolved_thread_count_source = nil
	delete(m.clearedFields, gaterun.FieldUnresolvedThreadCountSource)
}

// SetInvalidOutput sets the "invalid_output" field.
func (m *GateRunMutation) SetInvalidOutput(b bool) {
	m.invalid_output = &b
}

// InvalidOutput returns the value of the "invalid_output" field in the mutation.
func (m *GateRunMutation) InvalidOutput() (r bool, exists bool) {
	v := m.invalid_output
	if v == nil {
		return
	}
	return *v, true
}

// OldInvalidOutput returns the old "invalid_output" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldInvalidOutput(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvalidOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvalidOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvalidOutput: %w", err)
	}
	return oldValue.InvalidOutput, nil
}

// ResetInvalidOutput resets all changes to the "invalid_output" field.
func (m *GateRunMutation) ResetInvalidOutput() {
	m.invalid_output = nil
}

// SetDetails sets the "details" field.
func (m *GateRunMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *GateRunMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *GateRunMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[gaterun.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *GateRunMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[gaterun.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *GateRunMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, gaterun.FieldDetails)
}

// SetCreatedAt sets the "created_at" field.
func (m *GateRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GateRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GateRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GateRunMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GateRunMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GateRunMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearLoop clears the "loop" edge to the Loop entity.
func (m *GateRunMutation) ClearLoop() {
	m.clearedloop = true
	m.clearedFields[gaterun.FieldLoopID] = struct{}{}
}

// LoopCleared reports if the "loop" edge to the Loop entity was cleared.
func (m *GateRunMutation) LoopCleared() bool {
	return m.clearedloop
}

// LoopIDs returns the "loop" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LoopID instead. It exists only for internal usage by the builders.
func (m *GateRunMutation) LoopIDs() (ids []string) {
	if id := m.loop; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLoop resets all changes to the "loop" edge.
func (m *GateRunMutation) ResetLoop() {
	m.loop = nil
	m.clearedloop = false
}

// Where appends a list predicates to the GateRunMutation builder.
func (m *GateRunMutation) Where(ps ...predicate.GateRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GateRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GateRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GateRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GateRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GateRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GateRun).
func (m *GateRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GateRunMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.loop != nil {
		fields = append(fields, gaterun.FieldLoopID)
	}
	if m.gate_kind != nil {
		fields = append(fields, gaterun.FieldGateKind)
	}
	if m.head_sha != nil {
		fields = append(fields, gaterun.FieldHeadSha)
	}
	if m.loop_version != nil {
		fields = append(fields, gaterun.FieldLoopVersion)
	}
	if m.status != nil {
		fields = append(fields, gaterun.FieldStatus)
	}
	if m.gate_passed != nil {
		fields = append(fields, gaterun.FieldGatePassed)
	}
	if m.trigger_event != nil {
		fields = append(fields, gaterun.FieldTriggerEvent)
	}
	if m.error_code != nil {
		fields = append(fields, gaterun.FieldErrorCode)
	}
	if m.required_check_source != nil {
		fields = append(fields, gaterun.FieldRequiredCheckSource)
	}
	if m.required_checks != nil {
		fields = append(fields, gaterun.FieldRequiredChecks)
	}
	if m.failing_required_checks != nil {
		fields = append(fields, gaterun.FieldFailingRequiredChecks)
	}
	if m.unresolved_thread_count != nil {
		fields = append(fields, gaterun.FieldUnresolvedThreadCount)
	}
	if m.unresolved_thread_count_source != nil {
		fields = append(fields, gaterun.FieldUnresolvedThreadCountSource)
	}
	if m.invalid_output != nil {
		fields = append(fields, gaterun.FieldInvalidOutput)
	}
	if m.details != nil {
		fields = append(fields, gaterun.FieldDetails)
	}
	if m.created_at != nil {
		fields = append(fields, gaterun.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, gaterun.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GateRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gaterun.FieldLoopID:
		return m.LoopID()
	case gaterun.FieldGateKind:
		return m.GateKind()
	case gaterun.FieldHeadSha:
		return m.HeadSha()
	case gaterun.FieldLoopVersion:
		return m.LoopVersion()
	case gaterun.FieldStatus:
		return m.Status()
	case gaterun.FieldGatePassed:
		return m.GatePassed()
	case gaterun.FieldTriggerEvent:
		return m.TriggerEvent()
	case gaterun.FieldErrorCode:
		return m.ErrorCode()
	case gaterun.FieldRequiredCheckSource:
		return m.RequiredCheckSource()
	case gaterun.FieldRequiredChecks:
		return m.RequiredChecks()
	case gaterun.FieldFailingRequiredChecks:
		return m.FailingRequiredChecks()
	case gaterun.FieldUnresolvedThreadCount:
		return m.UnresolvedThreadCount()
	case gaterun.FieldUnresolvedThreadCountSource:
		return m.UnresolvedThreadCountSource()
	case gaterun.FieldInvalidOutput:
		return m.InvalidOutput()
	case gaterun.FieldDetails:
		return m.Details()
	case gaterun.FieldCreatedAt:
		return m.CreatedAt()
	case gaterun.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GateRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gaterun.FieldLoopID:
		return m.OldLoopID(ctx)
	case gaterun.FieldGateKind:
		return m.OldGateKind(ctx)
	case gaterun.FieldHeadSha:
		return m.OldHeadSha(ctx)
	case gaterun.FieldLoopVersion:
		return m.OldLoopVersion(ctx)
	case gaterun.FieldStatus:
		return m.OldStatus(ctx)
	case gaterun.FieldGatePassed:
		return m.OldGatePassed(ctx)
	case gaterun.FieldTriggerEvent:
		return m.OldTriggerEvent(ctx)
	case gaterun.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case gaterun.FieldRequiredCheckSource:
		return m.OldRequiredCheckSource(ctx)
	case gaterun.FieldRequiredChecks:
		return m.OldRequiredChecks(ctx)
	case gaterun.FieldFailingRequiredChecks:
		return m.OldFailingRequiredChecks(ctx)
	case gaterun.FieldUnresolvedThreadCount:
		return m.OldUnresolvedThreadCount(ctx)
	case gaterun.FieldUnresolvedThreadCountSource:
		return m.OldUnresolvedThreadCountSource(ctx)
	case gaterun.FieldInvalidOutput:
		return m.OldInvalidOutput(ctx)
	case gaterun.FieldDetails:
		return m.OldDetails(ctx)
	case gaterun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case gaterun.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GateRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GateRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gaterun.FieldLoopID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoopID(v)
		return nil
	case gaterun.FieldGateKind:
		v, ok := value.(gaterun.GateKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGateKind(v)
		return nil
	case gaterun.FieldHeadSha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeadSha(v)
		return nil
	case gaterun.FieldLoopVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoopVersion(v)
		return nil
	case gaterun.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case gaterun.FieldGatePassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGatePassed(v)
		return nil
	case gaterun.FieldTriggerEvent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerEvent(v)
		return nil
	case gaterun.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case gaterun.FieldRequiredCheckSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredCheckSource(v)
		return nil
	case gaterun.FieldRequiredChecks:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredChecks(v)
		return nil
	case gaterun.FieldFailingRequiredChecks:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailingRequiredChecks(v)
		return nil
	case gaterun.FieldUnresolvedThreadCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnresolvedThreadCount(v)
		return nil
	case gaterun.FieldUnresolvedThreadCountSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnresolvedThreadCountSource(v)
		return nil
	case gaterun.FieldInvalidOutput:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvalidOutput(v)
		return nil
	case gaterun.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case gaterun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case gaterun.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GateRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GateRunMutation) AddedFields() []string {
	var fields []string
	if m.addloop_version != nil {
		fields = append(fields, gaterun.FieldLoopVersion)
	}
	if m.addunresolved_thread_count != nil {
		fields = append(fields, gaterun.FieldUnresolvedThreadCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GateRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gaterun.FieldLoopVersion:
		return m.AddedLoopVersion()
	case gaterun.FieldUnresolvedThreadCount:
		return m.AddedUnresolvedThreadCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GateRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gaterun.FieldLoopVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLoopVersion(v)
		return nil
	case gaterun.FieldUnresolvedThreadCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnresolvedThreadCount(v)
		return nil
	}
	return fmt.Errorf("unknown GateRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GateRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(gaterun.FieldTriggerEvent) {
		fields = append(fields, gaterun.FieldTriggerEvent)
	}
	if m.FieldCleared(gaterun.FieldErrorCode) {
		fields = append(fields, gaterun.FieldErrorCode)
	}
	if m.FieldCleared(gaterun.FieldRequiredCheckSource) {
		fields = append(fields, gaterun.FieldRequiredCheckSource)
	}
	if m.FieldCleared(gaterun.FieldRequiredChecks) {
		fields = append(fields, gaterun.FieldRequiredChecks)
	}
	if m.FieldCleared(gaterun.FieldFailingRequiredChecks) {
		fields = append(fields, gaterun.FieldFailingRequiredChecks)
	}
	if m.FieldCleared(gaterun.FieldUnresolvedThreadCount) {
		fields = append(fields, gaterun.FieldUnresolvedThreadCount)
	}
	if m.FieldCleared(gaterun.FieldUnresolvedThreadCountSource) {
		fields = append(fields, gaterun.FieldUnresolvedThreadCountSource)
	}
	if m.FieldCleared(gaterun.FieldDetails) {
		fields = append(fields, gaterun.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GateRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GateRunMutation) ClearField(name string) error {
	switch name {
	case gaterun.FieldTriggerEvent:
		m.ClearTriggerEvent()
		return nil
	case gaterun.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case gaterun.FieldRequiredCheckSource:
		m.ClearRequiredCheckSource()
		return nil
	case gaterun.FieldRequiredChecks:
		m.ClearRequiredChecks()
		return nil
	case gaterun.FieldFailingRequiredChecks:
		m.ClearFailingRequiredChecks()
		return nil
	case gaterun.FieldUnresolvedThreadCount:
		m.ClearUnresolvedThreadCount()
		return nil
	case gaterun.FieldUnresolvedThreadCountSource:
		m.ClearUnresolvedThreadCountSource()
		return nil
	case gaterun.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown GateRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GateRunMutation) ResetField(name string) error {
	switch name {
	case gaterun.FieldLoopID:
		m.ResetLoopID()
		return nil
	case gaterun.FieldGateKind:
		m.ResetGateKind()
		return nil
	case gaterun.FieldHeadSha:
		m.ResetHeadSha()
		return nil
	case gaterun.FieldLoopVersion:
		m.ResetLoopVersion()
		return nil
	case gaterun.FieldStatus:
		m.ResetStatus()
		return nil
	case gaterun.FieldGatePassed:
		m.ResetGatePassed()
		return nil
	case gaterun.FieldTriggerEvent:
		m.ResetTriggerEvent()
		return nil
	case gaterun.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case gaterun.FieldRequiredCheckSource:
		m.ResetRequiredCheckSource()
		return nil
	case gaterun.FieldRequiredChecks:
		m.ResetRequiredChecks()
		return nil
	case gaterun.FieldFailingRequiredChecks:
		m.ResetFailingRequiredChecks()
		return nil
	case gaterun.FieldUnresolvedThreadCount:
		m.ResetUnresolvedThreadCount()
		return nil
	case gaterun.FieldUnresolvedThreadCountSource:
		m.ResetUnresolvedThreadCountSource()
		return nil
	case gaterun.FieldInvalidOutput:
		m.ResetInvalidOutput()
		return nil
	case gaterun.FieldDetails:
		m.ResetDetails()
		return nil
	case gaterun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case gaterun.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown GateRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GateRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.loop != nil {
		edges = append(edges, gaterun.EdgeLoop)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GateRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case gaterun.EdgeLoop:
		if id := m.loop; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GateRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GateRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GateRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedloop {
		edges = append(edges, gaterun.EdgeLoop)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GateRunMutation) EdgeCleared(name string) bool {
	switch name {
	case gaterun.EdgeLoop:
		return m.clearedloop
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GateRunMutation) ClearEdge(name string) error {
	switch name {
	case gaterun.EdgeLoop:
		m.ClearLoop()
		return nil
	}
	return fmt.Errorf("unknown GateRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GateRunMutation) ResetEdge(name string) error {
	switch name {
	case gaterun.EdgeLoop:
		m.ResetLoop()
		return nil
	}
	return fmt.Errorf("unknown GateRun edge %s", name)
}

// InboxSignalMutation represents an operation that mutates the InboxSignal nodes in the graph.
type InboxSignalMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	cause_type                *string
	canonical_cause_id        *string
	cause_identity_version    *int
	addcause_identity_version *int
	payload                   *map[string]interface{}
	head_sha                  *string
	received_at               *time.Time
	processed_at              *time.Time
	clearedFields             map[string]struct{}
	loop                      *string
	clearedloop               bool
	done                      bool
	oldValue                  func(context.Context) (*InboxSignal, error)
	predicates                []predicate.InboxSignal
}

var _ ent.Mutation = (*InboxSignalMutation)(nil)

// inboxsignalOption allows management of the mutation configuration using functional options.
type inboxsignalOption func(*InboxSignalMutation)

// newInboxSignalMutation creates new mutation for the InboxSignal entity.
func newInboxSignalMutation(c config, op Op, opts ...inboxsignalOption) *InboxSignalMutation {
	m := &InboxSignalMutation{
		config:        c,
		op:            op,
		typ:           TypeInboxSignal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInboxSignalID sets the ID field of the mutation.
func withInboxSignalID(id string) inboxsignalOption {
	return func(m *InboxSignalMutation) {
		var (
			err   error
			once  sync.Once
			value *InboxSignal
		)
		m.oldValue = func(ctx context.Context) (*InboxSignal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InboxSignal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInboxSignal sets the old InboxSignal of the mutation.
func withInboxSignal(node *InboxSignal) inboxsignalOption {
	return func(m *InboxSignalMutation) {
		m.oldValue = func(context.Context) (*InboxSignal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InboxSignalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InboxSignalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InboxSignal entities.
func (m *InboxSignalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InboxSignalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InboxSignalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InboxSignal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLoopID sets the "loop_id" field.
func (m *InboxSignalMutation) SetLoopID(s string) {
	m.loop = &s
}

// LoopID returns the value of the "loop_id" field in the mutation.
func (m *InboxSignalMutation) LoopID() (r string, exists bool) {
	v := m.loop
	if v == nil {
		return
	}
	return *v, true
}

// OldLoopID returns the old "loop_id" field's value of the InboxSignal entity.
// If the InboxSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxSignalMutation) OldLoopID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoopID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoopID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoopID: %w", err)
	}
	return oldValue.LoopID, nil
}

// ResetLoopID resets all changes to the "loop_id" field.
func (m *InboxSignalMutation) ResetLoopID() {
	m.loop = nil
}

// SetCauseType sets the "cause_type" field.
func (m *InboxSignalMutation) SetCauseType(s string) {
	m.cause_type = &s
}

// CauseType returns the value of the "cause_type" field in the mutation.
func (m *InboxSignalMutation) CauseType() (r string, exists bool) {
	v := m.cause_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCauseType returns the old "cause_type" field's value of the InboxSignal entity.
// If the InboxSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxSignalMutation) OldCauseType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCauseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCauseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCauseType: %w", err)
	}
	return oldValue.CauseType, nil
}

// ResetCauseType resets all changes to the "cause_type" field.
func (m *InboxSignalMutation) ResetCauseType() {
	m.cause_type = nil
}

// SetCanonicalCauseID sets the "canonical_cause_id" field.
func (m *InboxSignalMutation) SetCanonicalCauseID(s string) {
	m.canonical_cause_id = &s
}

// CanonicalCauseID returns the value of the "canonical_cause_id" field in the mutation.
func (m *InboxSignalMutation) CanonicalCauseID() (r string, exists bool) {
	v := m.canonical_cause_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalCauseID returns the old "canonical_cause_id" field's value of the InboxSignal entity.
// If the InboxSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxSignalMutation) OldCanonicalCauseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalCauseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalCauseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalCauseID: %w", err)
	}
	return oldValue.CanonicalCauseID, nil
}

// ResetCanonicalCauseID resets all changes to the "canonical_cause_id" field.
func (m *InboxSignalMutation) ResetCanonicalCauseID() {
	m.canonical_cause_id = nil
}

// SetCauseIdentityVersion sets the "cause_identity_version" field.
func (m *InboxSignalMutation) SetCauseIdentityVersion(i int) {
	m.cause_identity_version = &i
	m.addcause_identity_version = nil
}

// CauseIdentityVersion returns the value of the "cause_identity_version" field in the mutation.
func (m *InboxSignalMutation) CauseIdentityVersion() (r int, exists bool) {
	v := m.cause_identity_version
	if v == nil {
		return
	}
	return *v, true
}

// OldCauseIdentityVersion returns the old "cause_identity_version" field's value of the InboxSignal entity.
// If the InboxSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxSignalMutation) OldCauseIdentityVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCauseIdentityVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCauseIdentityVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCauseIdentityVersion: %w", err)
	}
	return oldValue.CauseIdentityVersion, nil
}

// AddCauseIdentityVersion adds i to the "cause_identity_version" field.
func (m *InboxSignalMutation) AddCauseIdentityVersion(i int) {
	if m.addcause_identity_version != nil {
		*m.addcause_identity_version += i
	} else {
		m.addcause_identity_version = &i
	}
}

// AddedCauseIdentityVersion returns the value that was added to the "cause_identity_version" field in this mutation.
func (m *InboxSignalMutation) AddedCauseIdentityVersion() (r int, exists bool) {
	v := m.addcause_identity_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetCauseIdentityVersion resets all changes to the "cause_identity_version" field.
func (m *InboxSignalMutation) ResetCauseIdentityVersion() {
	m.cause_identity_version = nil
	m.addcause_identity_version = nil
}

// SetPayload sets the "payload" field.
func (m *InboxSignalMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *InboxSignalMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the InboxSignal entity.
// If the InboxSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxSignalMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *InboxSignalMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[inboxsignal.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *InboxSignalMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[inboxsignal.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *InboxSignalMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, inboxsignal.FieldPayload)
}

// SetHeadSha sets the "head_sha" field.
func (m *InboxSignalMutation) SetHeadSha(s string) {
	m.head_sha = &s
}

// HeadSha returns the value of the "head_sha" field in the mutation.
func (m *InboxSignalMutation) HeadSha() (r string, exists bool) {
	v := m.head_sha
	if v == nil {
		return
	}
	return *v, true
}

// OldHeadSha returns the old "head_sha" field's value of the InboxSignal entity.
// If the InboxSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxSignalMutation) OldHeadSha(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeadSha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeadSha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeadSha: %w", err)
	}
	return oldValue.HeadSha, nil
}

// ClearHeadSha clears the value of the "head_sha" field.
func (m *InboxSignalMutation) ClearHeadSha() {
	m.head_sha = nil
	m.clearedFields[inboxsignal.FieldHeadSha] = struct{}{}
}

// HeadShaCleared returns if the "head_sha" field was cleared in this mutation.
func (m *InboxSignalMutation) HeadShaCleared() bool {
	_, ok := m.clearedFields[inboxsignal.FieldHeadSha]
	return ok
}

// ResetHeadSha resets all changes to the "head_sha" field.
func (m *InboxSignalMutation) ResetHeadSha() {
	m.head_sha = nil
	delete(m.clearedFields, inboxsignal.FieldHeadSha)
}

// SetReceivedAt sets the "received_at" field.
func (m *InboxSignalMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *InboxSignalMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the InboxSignal entity.
// If the InboxSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxSignalMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *InboxSignalMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *InboxSignalMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *InboxSignalMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the InboxSignal entity.
// If the InboxSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxSignalMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *InboxSignalMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[inboxsignal.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *InboxSignalMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[inboxsignal.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *InboxSignalMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, inboxsignal.FieldProcessedAt)
}

// ClearLoop clears the "loop" edge to the Loop entity.
func (m *InboxSignalMutation) ClearLoop() {
	m.clearedloop = true
	m.clearedFields[inboxsignal.FieldLoopID] = struct{}{}
}

// LoopCleared reports if the "loop" edge to the Loop entity was cleared.
func (m *InboxSignalMutation) LoopCleared() bool {
	return m.clearedloop
}

// LoopIDs returns the "loop" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LoopID instead. It exists only for internal usage by the builders.
func (m *InboxSignalMutation) LoopIDs() (ids []string) {
	if id := m.loop; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLoop resets all changes to the "loop" edge.
func (m *InboxSignalMutation) ResetLoop() {
	m.loop = nil
	m.clearedloop = false
}

// Where appends a list predicates to the InboxSignalMutation builder.
func (m *InboxSignalMutation) Where(ps ...predicate.InboxSignal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InboxSignalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InboxSignalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InboxSignal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InboxSignalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InboxSignalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InboxSignal).
func (m *InboxSignalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InboxSignalMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.loop != nil {
		fields = append(fields, inboxsignal.FieldLoopID)
	}
	if m.cause_type != nil {
		fields = append(fields, inboxsignal.FieldCauseType)
	}
	if m.canonical_cause_id != nil {
		fields = append(fields, inboxsignal.FieldCanonicalCauseID)
	}
	if m.cause_identity_version != nil {
		fields = append(fields, inboxsignal.FieldCauseIdentityVersion)
	}
	if m.payload != nil {
		fields = append(fields, inboxsignal.FieldPayload)
	}
	if m.head_sha != nil {
		fields = append(fields, inboxsignal.FieldHeadSha)
	}
	if m.received_at != nil {
		fields = append(fields, inboxsignal.FieldReceivedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, inboxsignal.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InboxSignalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case inboxsignal.FieldLoopID:
		return m.LoopID()
	case inboxsignal.FieldCauseType:
		return m.CauseType()
	case inboxsignal.FieldCanonicalCauseID:
		return m.CanonicalCauseID()
	case inboxsignal.FieldCauseIdentityVersion:
		return m.CauseIdentityVersion()
	case inboxsignal.FieldPayload:
		return m.Payload()
	case inboxsignal.FieldHeadSha:
		return m.HeadSha()
	case inboxsignal.FieldReceivedAt:
		return m.ReceivedAt()
	case inboxsignal.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InboxSignalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case inboxsignal.FieldLoopID:
		return m.OldLoopID(ctx)
	case inboxsignal.FieldCauseType:
		return m.OldCauseType(ctx)
	case inboxsignal.FieldCanonicalCauseID:
		return m.OldCanonicalCauseID(ctx)
	case inboxsignal.FieldCauseIdentityVersion:
		return m.OldCauseIdentityVersion(ctx)
	case inboxsignal.FieldPayload:
		return m.OldPayload(ctx)
	case inboxsignal.FieldHeadSha:
		return m.OldHeadSha(ctx)
	case inboxsignal.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case inboxsignal.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InboxSignal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InboxSignalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case inboxsignal.FieldLoopID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoopID(v)
		return nil
	case inboxsignal.FieldCauseType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCauseType(v)
		return nil
	case inboxsignal.FieldCanonicalCauseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalCauseID(v)
		return nil
	case inboxsignal.FieldCauseIdentityVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCauseIdentityVersion(v)
		return nil
	case inboxsignal.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case inboxsignal.FieldHeadSha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeadSha(v)
		return nil
	case inboxsignal.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case inboxsignal.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InboxSignal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InboxSignalMutation) AddedFields() []string {
	var fields []string
	if m.addcause_identity_version != nil {
		fields = append(fields, inboxsignal.FieldCauseIdentityVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InboxSignalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case inboxsignal.FieldCauseIdentityVersion:
		return m.AddedCauseIdentityVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InboxSignalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case inboxsignal.FieldCauseIdentityVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCauseIdentityVersion(v)
		return nil
	}
	return fmt.Errorf("unknown InboxSignal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InboxSignalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(inboxsignal.FieldPayload) {
		fields = append(fields, inboxsignal.FieldPayload)
	}
	if m.FieldCleared(inboxsignal.FieldHeadSha) {
		fields = append(fields, inboxsignal.FieldHeadSha)
	}
	if m.FieldCleared(inboxsignal.FieldProcessedAt) {
		fields = append(fields, inboxsignal.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InboxSignalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InboxSignalMutation) ClearField(name string) error {
	switch name {
	case inboxsignal.FieldPayload:
		m.ClearPayload()
		return nil
	case inboxsignal.FieldHeadSha:
		m.ClearHeadSha()
		return nil
	case inboxsignal.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown InboxSignal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InboxSignalMutation) ResetField(name string) error {
	switch name {
	case inboxsignal.FieldLoopID:
		m.ResetLoopID()
		return nil
	case inboxsignal.FieldCauseType:
		m.ResetCauseType()
		return nil
	case inboxsignal.FieldCanonicalCauseID:
		m.ResetCanonicalCauseID()
		return nil
	case inboxsignal.FieldCauseIdentityVersion:
		m.ResetCauseIdentityVersion()
		return nil
	case inboxsignal.FieldPayload:
		m.ResetPayload()
		return nil
	case inboxsignal.FieldHeadSha:
		m.ResetHeadSha()
		return nil
	case inboxsignal.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case inboxsignal.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown InboxSignal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InboxSignalMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.loop != nil {
		edges = append(edges, inboxsignal.EdgeLoop)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InboxSignalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case inboxsignal.EdgeLoop:
		if id := m.loop; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InboxSignalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InboxSignalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InboxSignalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedloop {
		edges = append(edges, inboxsignal.EdgeLoop)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InboxSignalMutation) EdgeCleared(name string) bool {
	switch name {
	case inboxsignal.EdgeLoop:
		return m.clearedloop
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InboxSignalMutation) ClearEdge(name string) error {
	switch name {
	case inboxsignal.EdgeLoop:
		m.ClearLoop()
		return nil
	}
	return fmt.Errorf("unknown InboxSignal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InboxSignalMutation) ResetEdge(name string) error {
	switch name {
	case inboxsignal.EdgeLoop:
		m.ResetLoop()
		return nil
	}
	return fmt.Errorf("unknown InboxSignal edge %s", name)
}

// LoopMutation represents an operation that mutates the Loop nodes in the graph.
type LoopMutation struct {
	config
	op                                Op
	typ                               string
	id                                *string
	user_id                           *string
	repo_full_name                    *string
	pr_number                         *int
	addpr_number                      *int
	thread_id                         *string
	thread_chat_id                    *string
	state                             *loop.State
	plan_approval_policy              *loop.PlanApprovalPolicy
	current_head_sha                  *string
	loop_version                      *int
	addloop_version                   *int
	transition_seq                    *int
	addtransition_seq                 *int
	fix_attempt_count                 *int
	addfix_attempt_count              *int
	max_fix_attempts                  *int
	addmax_fix_attempts               *int
	iteration_count                   *int
	additeration_count                *int
	cooldown_until                    *time.Time
	active_plan_artifact_id           *string
	active_implementation_artifact_id *string
	active_review_artifact_id         *string
	active_ui_artifact_id             *string
	active_babysit_artifact_id        *string
	canonical_status_comment_id       *string
	canonical_check_run_id            *string
	video_capture_status              *string
	latest_video_artifact_key         *string
	latest_video_captured_at          *time.Time
	latest_video_failure_class        *string
	latest_video_failure_message      *string
	latest_video_failed_at            *time.Time
	stop_reason                       *string
	created_at                        *time.Time
	updated_at                        *time.Time
	clearedFields                     map[string]struct{}
	signals                           map[string]struct{}
	removedsignals                    map[string]struct{}
	clearedsignals                    bool
	outbox_actions                    map[string]struct{}
	removedoutbox_actions             map[string]struct{}
	clearedoutbox_actions             bool
	gate_runs                         map[string]struct{}
	removedgate_runs                  map[string]struct{}
	clearedgate_runs                  bool
	gate_findings                     map[string]struct{}
	removedgate_findings              map[string]struct{}
	clearedgate_findings              bool
	artifacts                         map[string]struct{}
	removedartifacts                  map[string]struct{}
	clearedartifacts                  bool
	done                              bool
	oldValue                          func(context.Context) (*Loop, error)
	predicates                        []predicate.Loop
}

var _ ent.Mutation = (*LoopMutation)(nil)

// loopOption allows management of the mutation configuration using functional options.
type loopOption func(*LoopMutation)

// newLoopMutation creates new mutation for the Loop entity.
func newLoopMutation(c config, op Op, opts ...loopOption) *LoopMutation {
	m := &LoopMutation{
		config:        c,
		op:            op,
		typ:           TypeLoop,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLoopID sets the ID field of the mutation.
func withLoopID(id string) loopOption {
	return func(m *LoopMutation) {
		var (
			err   error
			once  sync.Once
			value *Loop
		)
		m.oldValue = func(ctx context.Context) (*Loop, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Loop.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLoop sets the old Loop of the mutation.
func withLoop(node *Loop) loopOption {
	return func(m *LoopMutation) {
		m.oldValue = func(context.Context) (*Loop, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LoopMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LoopMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Loop entities.
func (m *LoopMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LoopMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LoopMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Loop.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *LoopMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LoopMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LoopMutation) ResetUserID() {
	m.user_id = nil
}

// SetRepoFullName sets the "repo_full_name" field.
func (m *LoopMutation) SetRepoFullName(s string) {
	m.repo_full_name = &s
}

// RepoFullName returns the value of the "repo_full_name" field in the mutation.
func (m *LoopMutation) RepoFullName() (r string, exists bool) {
	v := m.repo_full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoFullName returns the old "repo_full_name" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldRepoFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoFullName: %w", err)
	}
	return oldValue.RepoFullName, nil
}

// ResetRepoFullName resets all changes to the "repo_full_name" field.
func (m *LoopMutation) ResetRepoFullName() {
	m.repo_full_name = nil
}

// SetPrNumber sets the "pr_number" field.
func (m *LoopMutation) SetPrNumber(i int) {
	m.pr_number = &i
	m.addpr_number = nil
}

// PrNumber returns the value of the "pr_number" field in the mutation.
func (m *LoopMutation) PrNumber() (r int, exists bool) {
	v := m.pr_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPrNumber returns the old "pr_number" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldPrNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrNumber: %w", err)
	}
	return oldValue.PrNumber, nil
}

// AddPrNumber adds i to the "pr_number" field.
func (m *LoopMutation) AddPrNumber(i int) {
	if m.addpr_number != nil {
		*m.addpr_number += i
	} else {
		m.addpr_number = &i
	}
}

// AddedPrNumber returns the value that was added to the "pr_number" field in this mutation.
func (m *LoopMutation) AddedPrNumber() (r int, exists bool) {
	v := m.addpr_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearPrNumber clears the value of the "pr_number" field.
func (m *LoopMutation) ClearPrNumber() {
	m.pr_number = nil
	m.addpr_number = nil
	m.clearedFields[loop.FieldPrNumber] = struct{}{}
}

// PrNumberCleared returns if the "pr_number" field was cleared in this mutation.
func (m *LoopMutation) PrNumberCleared() bool {
	_, ok := m.clearedFields[loop.FieldPrNumber]
	return ok
}

// ResetPrNumber resets all changes to the "pr_number" field.
func (m *LoopMutation) ResetPrNumber() {
	m.pr_number = nil
	m.addpr_number = nil
	delete(m.clearedFields, loop.FieldPrNumber)
}

// SetThreadID sets the "thread_id" field.
func (m *LoopMutation) SetThreadID(s string) {
	m.thread_id = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *LoopMutation) ThreadID() (r string, exists bool) {
	v := m.thread_id
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldThreadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *LoopMutation) ResetThreadID() {
	m.thread_id = nil
}

// SetThreadChatID sets the "thread_chat_id" field.
func (m *LoopMutation) SetThreadChatID(s string) {
	m.thread_chat_id = &s
}

// ThreadChatID returns the value of the "thread_chat_id" field in the mutation.
func (m *LoopMutation) ThreadChatID() (r string, exists bool) {
	v := m.thread_chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadChatID returns the old "thread_chat_id" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldThreadChatID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadChatID: %w", err)
	}
	return oldValue.ThreadChatID, nil
}

// ClearThreadChatID clears the value of the "thread_chat_id" field.
func (m *LoopMutation) ClearThreadChatID() {
	m.thread_chat_id = nil
	m.clearedFields[loop.FieldThreadChatID] = struct{}{}
}

// ThreadChatIDCleared returns if the "thread_chat_id" field was cleared in this mutation.
func (m *LoopMutation) ThreadChatIDCleared() bool {
	_, ok := m.clearedFields[loop.FieldThreadChatID]
	return ok
}

// ResetThreadChatID resets all changes to the "thread_chat_id" field.
func (m *LoopMutation) ResetThreadChatID() {
	m.thread_chat_id = nil
	delete(m.clearedFields, loop.FieldThreadChatID)
}

// SetState sets the "state" field.
func (m *LoopMutation) SetState(l loop.State) {
	m.state = &l
}

// State returns the value of the "state" field in the mutation.
func (m *LoopMutation) State() (r loop.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldState(ctx context.Context) (v loop.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *LoopMutation) ResetState() {
	m.state = nil
}

// SetPlanApprovalPolicy sets the "plan_approval_policy" field.
func (m *LoopMutation) SetPlanApprovalPolicy(lap loop.PlanApprovalPolicy) {
	m.plan_approval_policy = &lap
}

// PlanApprovalPolicy returns the value of the "plan_approval_policy" field in the mutation.
func (m *LoopMutation) PlanApprovalPolicy() (r loop.PlanApprovalPolicy, exists bool) {
	v := m.plan_approval_policy
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanApprovalPolicy returns the old "plan_approval_policy" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldPlanApprovalPolicy(ctx context.Context) (v loop.PlanApprovalPolicy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanApprovalPolicy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanApprovalPolicy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanApprovalPolicy: %w", err)
	}
	return oldValue.PlanApprovalPolicy, nil
}

// ResetPlanApprovalPolicy resets all changes to the "plan_approval_policy" field.
func (m *LoopMutation) ResetPlanApprovalPolicy() {
	m.plan_approval_policy = nil
}

// SetCurrentHeadSha sets the "current_head_sha" field.
func (m *LoopMutation) SetCurrentHeadSha(s string) {
	m.current_head_sha = &s
}

// CurrentHeadSha returns the value of the "current_head_sha" field in the mutation.
func (m *LoopMutation) CurrentHeadSha() (r string, exists bool) {
	v := m.current_head_sha
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentHeadSha returns the old "current_head_sha" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldCurrentHeadSha(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentHeadSha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentHeadSha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentHeadSha: %w", err)
	}
	return oldValue.CurrentHeadSha, nil
}

// ClearCurrentHeadSha clears the value of the "current_head_sha" field.
func (m *LoopMutation) ClearCurrentHeadSha() {
	m.current_head_sha = nil
	m.clearedFields[loop.FieldCurrentHeadSha] = struct{}{}
}

// CurrentHeadShaCleared returns if the "current_head_sha" field was cleared in this mutation.
func (m *LoopMutation) CurrentHeadShaCleared() bool {
	_, ok := m.clearedFields[loop.FieldCurrentHeadSha]
	return ok
}

// ResetCurrentHeadSha resets all changes to the "current_head_sha" field.
func (m *LoopMutation) ResetCurrentHeadSha() {
	m.current_head_sha = nil
	delete(m.clearedFields, loop.FieldCurrentHeadSha)
}

// SetLoopVersion sets the "loop_version" field.
func (m *LoopMutation) SetLoopVersion(i int) {
	m.loop_version = &i
	m.addloop_version = nil
}

// LoopVersion returns the value of the "loop_version" field in the mutation.
func (m *LoopMutation) LoopVersion() (r int, exists bool) {
	v := m.loop_version
	if v == nil {
		return
	}
	return *v, true
}

// OldLoopVersion returns the old "loop_version" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldLoopVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoopVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoopVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoopVersion: %w", err)
	}
	return oldValue.LoopVersion, nil
}

// AddLoopVersion adds i to the "loop_version" field.
func (m *LoopMutation) AddLoopVersion(i int) {
	if m.addloop_version != nil {
		*m.addloop_version += i
	} else {
		m.addloop_version = &i
	}
}

// AddedLoopVersion returns the value that was added to the "loop_version" field in this mutation.
func (m *LoopMutation) AddedLoopVersion() (r int, exists bool) {
	v := m.addloop_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetLoopVersion resets all changes to the "loop_version" field.
func (m *LoopMutation) ResetLoopVersion() {
	m.loop_version = nil
	m.addloop_version = nil
}

// SetTransitionSeq sets the "transition_seq" field.
func (m *LoopMutation) SetTransitionSeq(i int) {
	m.transition_seq = &i
	m.addtransition_seq = nil
}

// TransitionSeq returns the value of the "transition_seq" field in the mutation.
func (m *LoopMutation) TransitionSeq() (r int, exists bool) {
	v := m.transition_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldTransitionSeq returns the old "transition_seq" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldTransitionSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransitionSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransitionSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransitionSeq: %w", err)
	}
	return oldValue.TransitionSeq, nil
}

// AddTransitionSeq adds i to the "transition_seq" field.
func (m *LoopMutation) AddTransitionSeq(i int) {
	if m.addtransition_seq != nil {
		*m.addtransition_seq += i
	} else {
		m.addtransition_seq = &i
	}
}

// AddedTransitionSeq returns the value that was added to the "transition_seq" field in this mutation.
func (m *LoopMutation) AddedTransitionSeq() (r int, exists bool) {
	v := m.addtransition_seq
	if v == nil {
		return
	}
	return *v, true
}

// ResetTransitionSeq resets all changes to the "transition_seq" field.
func (m *LoopMutation) ResetTransitionSeq() {
	m.transition_seq = nil
	m.addtransition_seq = nil
}

// SetFixAttemptCount sets the "fix_attempt_count" field.
func (m *LoopMutation) SetFixAttemptCount(i int) {
	m.fix_attempt_count = &i
	m.addfix_attempt_count = nil
}

// FixAttemptCount returns the value of the "fix_attempt_count" field in the mutation.
func (m *LoopMutation) FixAttemptCount() (r int, exists bool) {
	v := m.fix_attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFixAttemptCount returns the old "fix_attempt_count" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldFixAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFixAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFixAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFixAttemptCount: %w", err)
	}
	return oldValue.FixAttemptCount, nil
}

// AddFixAttemptCount adds i to the "fix_attempt_count" field.
func (m *LoopMutation) AddFixAttemptCount(i int) {
	if m.addfix_attempt_count != nil {
		*m.addfix_attempt_count += i
	} else {
		m.addfix_attempt_count = &i
	}
}

// AddedFixAttemptCount returns the value that was added to the "fix_attempt_count" field in this mutation.
func (m *LoopMutation) AddedFixAttemptCount() (r int, exists bool) {
	v := m.addfix_attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFixAttemptCount resets all changes to the "fix_attempt_count" field.
func (m *LoopMutation) ResetFixAttemptCount() {
	m.fix_attempt_count = nil
	m.addfix_attempt_count = nil
}

// SetMaxFixAttempts sets the "max_fix_attempts" field.
func (m *LoopMutation) SetMaxFixAttempts(i int) {
	m.max_fix_attempts = &i
	m.addmax_fix_attempts = nil
}

// MaxFixAttempts returns the value of the "max_fix_attempts" field in the mutation.
func (m *LoopMutation) MaxFixAttempts() (r int, exists bool) {
	v := m.max_fix_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxFixAttempts returns the old "max_fix_attempts" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldMaxFixAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxFixAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxFixAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxFixAttempts: %w", err)
	}
	return oldValue.MaxFixAttempts, nil
}

// AddMaxFixAttempts adds i to the "max_fix_attempts" field.
func (m *LoopMutation) AddMaxFixAttempts(i int) {
	if m.addmax_fix_attempts != nil {
		*m.addmax_fix_attempts += i
	} else {
		m.addmax_fix_attempts = &i
	}
}

// AddedMaxFixAttempts returns the value that was added to the "max_fix_attempts" field in this mutation.
func (m *LoopMutation) AddedMaxFixAttempts() (r int, exists bool) {
	v := m.addmax_fix_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxFixAttempts resets all changes to the "max_fix_attempts" field.
func (m *LoopMutation) ResetMaxFixAttempts() {
	m.max_fix_attempts = nil
	m.addmax_fix_attempts = nil
}

// SetIterationCount sets the "iteration_count" field.
func (m *LoopMutation) SetIterationCount(i int) {
	m.iteration_count = &i
	m.additeration_count = nil
}

// IterationCount returns the value of the "iteration_count" field in the mutation.
func (m *LoopMutation) IterationCount() (r int, exists bool) {
	v := m.iteration_count
	if v == nil {
		return
	}
	return *v, true
}

// OldIterationCount returns the old "iteration_count" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldIterationCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIterationCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIterationCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIterationCount: %w", err)
	}
	return oldValue.IterationCount, nil
}

// AddIterationCount adds i to the "iteration_count" field.
func (m *LoopMutation) AddIterationCount(i int) {
	if m.additeration_count != nil {
		*m.additeration_count += i
	} else {
		m.additeration_count = &i
	}
}

// AddedIterationCount returns the value that was added to the "iteration_count" field in this mutation.
func (m *LoopMutation) AddedIterationCount() (r int, exists bool) {
	v := m.additeration_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetIterationCount resets all changes to the "iteration_count" field.
func (m *LoopMutation) ResetIterationCount() {
	m.iteration_count = nil
	m.additeration_count = nil
}

// SetCooldownUntil sets the "cooldown_until" field.
func (m *LoopMutation) SetCooldownUntil(t time.Time) {
	m.cooldown_until = &t
}

// CooldownUntil returns the value of the "cooldown_until" field in the mutation.
func (m *LoopMutation) CooldownUntil() (r time.Time, exists bool) {
	v := m.cooldown_until
	if v == nil {
		return
	}
	return *v, true
}

// OldCooldownUntil returns the old "cooldown_until" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldCooldownUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCooldownUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCooldownUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCooldownUntil: %w", err)
	}
	return oldValue.CooldownUntil, nil
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (m *LoopMutation) ClearCooldownUntil() {
	m.cooldown_until = nil
	m.clearedFields[loop.FieldCooldownUntil] = struct{}{}
}

// CooldownUntilCleared returns if the "cooldown_until" field was cleared in this mutation.
func (m *LoopMutation) CooldownUntilCleared() bool {
	_, ok := m.clearedFields[loop.FieldCooldownUntil]
	return ok
}

// ResetCooldownUntil resets all changes to the "cooldown_until" field.
func (m *LoopMutation) ResetCooldownUntil() {
	m.cooldown_until = nil
	delete(m.clearedFields, loop.FieldCooldownUntil)
}

// SetActivePlanArtifactID sets the "active_plan_artifact_id" field.
func (m *LoopMutation) SetActivePlanArtifactID(s string) {
	m.active_plan_artifact_id = &s
}

// ActivePlanArtifactID returns the value of the "active_plan_artifact_id" field in the mutation.
func (m *LoopMutation) ActivePlanArtifactID() (r string, exists bool) {
	v := m.active_plan_artifact_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActivePlanArtifactID returns the old "active_plan_artifact_id" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldActivePlanArtifactID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivePlanArtifactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivePlanArtifactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivePlanArtifactID: %w", err)
	}
	return oldValue.ActivePlanArtifactID, nil
}

// ClearActivePlanArtifactID clears the value of the "active_plan_artifact_id" field.
func (m *LoopMutation) ClearActivePlanArtifactID() {
	m.active_plan_artifact_id = nil
	m.clearedFields[loop.FieldActivePlanArtifactID] = struct{}{}
}

// ActivePlanArtifactIDCleared returns if the "active_plan_artifact_id" field was cleared in this mutation.
func (m *LoopMutation) ActivePlanArtifactIDCleared() bool {
	_, ok := m.clearedFields[loop.FieldActivePlanArtifactID]
	return ok
}

// ResetActivePlanArtifactID resets all changes to the "active_plan_artifact_id" field.
func (m *LoopMutation) ResetActivePlanArtifactID() {
	m.active_plan_artifact_id = nil
	delete(m.clearedFields, loop.FieldActivePlanArtifactID)
}

// SetActiveImplementationArtifactID sets the "active_implementation_artifact_id" field.
func (m *LoopMutation) SetActiveImplementationArtifactID(s string) {
	m.active_implementation_artifact_id = &s
}

// ActiveImplementationArtifactID returns the value of the "active_implementation_artifact_id" field in the mutation.
func (m *LoopMutation) ActiveImplementationArtifactID() (r string, exists bool) {
	v := m.active_implementation_artifact_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveImplementationArtifactID returns the old "active_implementation_artifact_id" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldActiveImplementationArtifactID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveImplementationArtifactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveImplementationArtifactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveImplementationArtifactID: %w", err)
	}
	return oldValue.ActiveImplementationArtifactID, nil
}

// ClearActiveImplementationArtifactID clears the value of the "active_implementation_artifact_id" field.
func (m *LoopMutation) ClearActiveImplementationArtifactID() {
	m.active_implementation_artifact_id = nil
	m.clearedFields[loop.FieldActiveImplementationArtifactID] = struct{}{}
}

// ActiveImplementationArtifactIDCleared returns if the "active_implementation_artifact_id" field was cleared in this mutation.
func (m *LoopMutation) ActiveImplementationArtifactIDCleared() bool {
	_, ok := m.clearedFields[loop.FieldActiveImplementationArtifactID]
	return ok
}

// ResetActiveImplementationArtifactID resets all changes to the "active_implementation_artifact_id" field.
func (m *LoopMutation) ResetActiveImplementationArtifactID() {
	m.active_implementation_artifact_id = nil
	delete(m.clearedFields, loop.FieldActiveImplementationArtifactID)
}

// SetActiveReviewArtifactID sets the "active_review_artifact_id" field.
func (m *LoopMutation) SetActiveReviewArtifactID(s string) {
	m.active_review_artifact_id = &s
}

// ActiveReviewArtifactID returns the value of the "active_review_artifact_id" field in the mutation.
func (m *LoopMutation) ActiveReviewArtifactID() (r string, exists bool) {
	v := m.active_review_artifact_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveReviewArtifactID returns the old "active_review_artifact_id" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldActiveReviewArtifactID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveReviewArtifactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveReviewArtifactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveReviewArtifactID: %w", err)
	}
	return oldValue.ActiveReviewArtifactID, nil
}

// ClearActiveReviewArtifactID clears the value of the "active_review_artifact_id" field.
func (m *LoopMutation) ClearActiveReviewArtifactID() {
	m.active_review_artifact_id = nil
	m.clearedFields[loop.FieldActiveReviewArtifactID] = struct{}{}
}

// ActiveReviewArtifactIDCleared returns if the "active_review_artifact_id" field was cleared in this mutation.
func (m *LoopMutation) ActiveReviewArtifactIDCleared() bool {
	_, ok := m.clearedFields[loop.FieldActiveReviewArtifactID]
	return ok
}

// ResetActiveReviewArtifactID resets all changes to the "active_review_artifact_id" field.
func (m *LoopMutation) ResetActiveReviewArtifactID() {
	m.active_review_artifact_id = nil
	delete(m.clearedFields, loop.FieldActiveReviewArtifactID)
}

// SetActiveUIArtifactID sets the "active_ui_artifact_id" field.
func (m *LoopMutation) SetActiveUIArtifactID(s string) {
	m.active_ui_artifact_id = &s
}

// ActiveUIArtifactID returns the value of the "active_ui_artifact_id" field in the mutation.
func (m *LoopMutation) ActiveUIArtifactID() (r string, exists bool) {
	v := m.active_ui_artifact_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveUIArtifactID returns the old "active_ui_artifact_id" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldActiveUIArtifactID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveUIArtifactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveUIArtifactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveUIArtifactID: %w", err)
	}
	return oldValue.ActiveUIArtifactID, nil
}

// ClearActiveUIArtifactID clears the value of the "active_ui_artifact_id" field.
func (m *LoopMutation) ClearActiveUIArtifactID() {
	m.active_ui_artifact_id = nil
	m.clearedFields[loop.FieldActiveUIArtifactID] = struct{}{}
}

// ActiveUIArtifactIDCleared returns if the "active_ui_artifact_id" field was cleared in this mutation.
func (m *LoopMutation) ActiveUIArtifactIDCleared() bool {
	_, ok := m.clearedFields[loop.FieldActiveUIArtifactID]
	return ok
}

// ResetActiveUIArtifactID resets all changes to the "active_ui_artifact_id" field.
func (m *LoopMutation) ResetActiveUIArtifactID() {
	m.active_ui_artifact_id = nil
	delete(m.clearedFields, loop.FieldActiveUIArtifactID)
}

// SetActiveBabysitArtifactID sets the "active_babysit_artifact_id" field.
func (m *LoopMutation) SetActiveBabysitArtifactID(s string) {
	m.active_babysit_artifact_id = &s
}

// ActiveBabysitArtifactID returns the value of the "active_babysit_artifact_id" field in the mutation.
func (m *LoopMutation) ActiveBabysitArtifactID() (r string, exists bool) {
	v := m.active_babysit_artifact_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveBabysitArtifactID returns the old "active_babysit_artifact_id" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldActiveBabysitArtifactID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveBabysitArtifactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveBabysitArtifactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveBabysitArtifactID: %w", err)
	}
	return oldValue.ActiveBabysitArtifactID, nil
}

// ClearActiveBabysitArtifactID clears the value of the "active_babysit_artifact_id" field.
func (m *LoopMutation) ClearActiveBabysitArtifactID() {
	m.active_babysit_artifact_id = nil
	m.clearedFields[loop.FieldActiveBabysitArtifactID] = struct{}{}
}

// ActiveBabysitArtifactIDCleared returns if the "active_babysit_artifact_id" field was cleared in this mutation.
func (m *LoopMutation) ActiveBabysitArtifactIDCleared() bool {
	_, ok := m.clearedFields[loop.FieldActiveBabysitArtifactID]
	return ok
}

// ResetActiveBabysitArtifactID resets all changes to the "active_babysit_artifact_id" field.
func (m *LoopMutation) ResetActiveBabysitArtifactID() {
	m.active_babysit_artifact_id = nil
	delete(m.clearedFields, loop.FieldActiveBabysitArtifactID)
}

// SetCanonicalStatusCommentID sets the "canonical_status_comment_id" field.
func (m *LoopMutation) SetCanonicalStatusCommentID(s string) {
	m.canonical_status_comment_id = &s
}

// CanonicalStatusCommentID returns the value of the "canonical_status_comment_id" field in the mutation.
func (m *LoopMutation) CanonicalStatusCommentID() (r string, exists bool) {
	v := m.canonical_status_comment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalStatusCommentID returns the old "canonical_status_comment_id" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldCanonicalStatusCommentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalStatusCommentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalStatusCommentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalStatusCommentID: %w", err)
	}
	return oldValue.CanonicalStatusCommentID, nil
}

// ClearCanonicalStatusCommentID clears the value of the "canonical_status_comment_id" field.
func (m *LoopMutation) ClearCanonicalStatusCommentID() {
	m.canonical_status_comment_id = nil
	m.clearedFields[loop.FieldCanonicalStatusCommentID] = struct{}{}
}

// CanonicalStatusCommentIDCleared returns if the "canonical_status_comment_id" field was cleared in this mutation.
func (m *LoopMutation) CanonicalStatusCommentIDCleared() bool {
	_, ok := m.clearedFields[loop.FieldCanonicalStatusCommentID]
	return ok
}

// ResetCanonicalStatusCommentID resets all changes to the "canonical_status_comment_id" field.
func (m *LoopMutation) ResetCanonicalStatusCommentID() {
	m.canonical_status_comment_id = nil
	delete(m.clearedFields, loop.FieldCanonicalStatusCommentID)
}

// SetCanonicalCheckRunID sets the "canonical_check_run_id" field.
func (m *LoopMutation) SetCanonicalCheckRunID(s string) {
	m.canonical_check_run_id = &s
}

// CanonicalCheckRunID returns the value of the "canonical_check_run_id" field in the mutation.
func (m *LoopMutation) CanonicalCheckRunID() (r string, exists bool) {
	v := m.canonical_check_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalCheckRunID returns the old "canonical_check_run_id" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldCanonicalCheckRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalCheckRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalCheckRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalCheckRunID: %w", err)
	}
	return oldValue.CanonicalCheckRunID, nil
}

// ClearCanonicalCheckRunID clears the value of the "canonical_check_run_id" field.
func (m *LoopMutation) ClearCanonicalCheckRunID() {
	m.canonical_check_run_id = nil
	m.clearedFields[loop.FieldCanonicalCheckRunID] = struct{}{}
}

// CanonicalCheckRunIDCleared returns if the "canonical_check_run_id" field was cleared in this mutation.
func (m *LoopMutation) CanonicalCheckRunIDCleared() bool {
	_, ok := m.clearedFields[loop.FieldCanonicalCheckRunID]
	return ok
}

// ResetCanonicalCheckRunID resets all changes to the "canonical_check_run_id" field.
func (m *LoopMutation) ResetCanonicalCheckRunID() {
	m.canonical_check_run_id = nil
	delete(m.clearedFields, loop.FieldCanonicalCheckRunID)
}

// SetVideoCaptureStatus sets the "video_capture_status" field.
func (m *LoopMutation) SetVideoCaptureStatus(s string) {
	m.video_capture_status = &s
}

// VideoCaptureStatus returns the value of the "video_capture_status" field in the mutation.
func (m *LoopMutation) VideoCaptureStatus() (r string, exists bool) {
	v := m.video_capture_status
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoCaptureStatus returns the old "video_capture_status" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldVideoCaptureStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoCaptureStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoCaptureStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoCaptureStatus: %w", err)
	}
	return oldValue.VideoCaptureStatus, nil
}

// ClearVideoCaptureStatus clears the value of the "video_capture_status" field.
func (m *LoopMutation) ClearVideoCaptureStatus() {
	m.video_capture_status = nil
	m.clearedFields[loop.FieldVideoCaptureStatus] = struct{}{}
}

// VideoCaptureStatusCleared returns if the "video_capture_status" field was cleared in this mutation.
func (m *LoopMutation) VideoCaptureStatusCleared() bool {
	_, ok := m.clearedFields[loop.FieldVideoCaptureStatus]
	return ok
}

// ResetVideoCaptureStatus resets all changes to the "video_capture_status" field.
func (m *LoopMutation) ResetVideoCaptureStatus() {
	m.video_capture_status = nil
	delete(m.clearedFields, loop.FieldVideoCaptureStatus)
}

// SetLatestVideoArtifactKey sets the "latest_video_artifact_key" field.
func (m *LoopMutation) SetLatestVideoArtifactKey(s string) {
	m.latest_video_artifact_key = &s
}

// LatestVideoArtifactKey returns the value of the "latest_video_artifact_key" field in the mutation.
func (m *LoopMutation) LatestVideoArtifactKey() (r string, exists bool) {
	v := m.latest_video_artifact_key
	if v == nil {
		return
	}
	return *v, true
}

// OldLatestVideoArtifactKey returns the old "latest_video_artifact_key" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldLatestVideoArtifactKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatestVideoArtifactKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatestVideoArtifactKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatestVideoArtifactKey: %w", err)
	}
	return oldValue.LatestVideoArtifactKey, nil
}

// ClearLatestVideoArtifactKey clears the value of the "latest_video_artifact_key" field.
func (m *LoopMutation) ClearLatestVideoArtifactKey() {
	m.latest_video_artifact_key = nil
	m.clearedFields[loop.FieldLatestVideoArtifactKey] = struct{}{}
}

// LatestVideoArtifactKeyCleared returns if the "latest_video_artifact_key" field was cleared in this mutation.
func (m *LoopMutation) LatestVideoArtifactKeyCleared() bool {
	_, ok := m.clearedFields[loop.FieldLatestVideoArtifactKey]
	return ok
}

// ResetLatestVideoArtifactKey resets all changes to the "latest_video_artifact_key" field.
func (m *LoopMutation) ResetLatestVideoArtifactKey() {
	m.latest_video_artifact_key = nil
	delete(m.clearedFields, loop.FieldLatestVideoArtifactKey)
}

// SetLatestVideoCapturedAt sets the "latest_video_captured_at" field.
func (m *LoopMutation) SetLatestVideoCapturedAt(t time.Time) {
	m.latest_video_captured_at = &t
}

// LatestVideoCapturedAt returns the value of the "latest_video_captured_at" field in the mutation.
func (m *LoopMutation) LatestVideoCapturedAt() (r time.Time, exists bool) {
	v := m.latest_video_captured_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLatestVideoCapturedAt returns the old "latest_video_captured_at" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldLatestVideoCapturedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatestVideoCapturedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatestVideoCapturedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatestVideoCapturedAt: %w", err)
	}
	return oldValue.LatestVideoCapturedAt, nil
}

// ClearLatestVideoCapturedAt clears the value of the "latest_video_captured_at" field.
func (m *LoopMutation) ClearLatestVideoCapturedAt() {
	m.latest_video_captured_at = nil
	m.clearedFields[loop.FieldLatestVideoCapturedAt] = struct{}{}
}

// LatestVideoCapturedAtCleared returns if the "latest_video_captured_at" field was cleared in this mutation.
func (m *LoopMutation) LatestVideoCapturedAtCleared() bool {
	_, ok := m.clearedFields[loop.FieldLatestVideoCapturedAt]
	return ok
}

// ResetLatestVideoCapturedAt resets all changes to the "latest_video_captured_at" field.
func (m *LoopMutation) ResetLatestVideoCapturedAt() {
	m.latest_video_captured_at = nil
	delete(m.clearedFields, loop.FieldLatestVideoCapturedAt)
}

// SetLatestVideoFailureClass sets the "latest_video_failure_class" field.
func (m *LoopMutation) SetLatestVideoFailureClass(s string) {
	m.latest_video_failure_class = &s
}

// LatestVideoFailureClass returns the value of the "latest_video_failure_class" field in the mutation.
func (m *LoopMutation) LatestVideoFailureClass() (r string, exists bool) {
	v := m.latest_video_failure_class
	if v == nil {
		return
	}
	return *v, true
}

// OldLatestVideoFailureClass returns the old "latest_video_failure_class" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldLatestVideoFailureClass(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatestVideoFailureClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatestVideoFailureClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatestVideoFailureClass: %w", err)
	}
	return oldValue.LatestVideoFailureClass, nil
}

// ClearLatestVideoFailureClass clears the value of the "latest_video_failure_class" field.
func (m *LoopMutation) ClearLatestVideoFailureClass() {
	m.latest_video_failure_class = nil
	m.clearedFields[loop.FieldLatestVideoFailureClass] = struct{}{}
}

// LatestVideoFailureClassCleared returns if the "latest_video_failure_class" field was cleared in this mutation.
func (m *LoopMutation) LatestVideoFailureClassCleared() bool {
	_, ok := m.clearedFields[loop.FieldLatestVideoFailureClass]
	return ok
}

// ResetLatestVideoFailureClass resets all changes to the "latest_video_failure_class" field.
func (m *LoopMutation) ResetLatestVideoFailureClass() {
	m.latest_video_failure_class = nil
	delete(m.clearedFields, loop.FieldLatestVideoFailureClass)
}

// SetLatestVideoFailureMessage sets the "latest_video_failure_message" field.
func (m *LoopMutation) SetLatestVideoFailureMessage(s string) {
	m.latest_video_failure_message = &s
}

// LatestVideoFailureMessage returns the value of the "latest_video_failure_message" field in the mutation.
func (m *LoopMutation) LatestVideoFailureMessage() (r string, exists bool) {
	v := m.latest_video_failure_message
	if v == nil {
		return
	}
	return *v, true
}

// OldLatestVideoFailureMessage returns the old "latest_video_failure_message" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldLatestVideoFailureMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatestVideoFailureMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatestVideoFailureMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatestVideoFailureMessage: %w", err)
	}
	return oldValue.LatestVideoFailureMessage, nil
}

// ClearLatestVideoFailureMessage clears the value of the "latest_video_failure_message" field.
func (m *LoopMutation) ClearLatestVideoFailureMessage() {
	m.latest_video_failure_message = nil
	m.clearedFields[loop.FieldLatestVideoFailureMessage] = struct{}{}
}

// LatestVideoFailureMessageCleared returns if the "latest_video_failure_message" field was cleared in this mutation.
func (m *LoopMutation) LatestVideoFailureMessageCleared() bool {
	_, ok := m.clearedFields[loop.FieldLatestVideoFailureMessage]
	return ok
}

// ResetLatestVideoFailureMessage resets all changes to the "latest_video_failure_message" field.
func (m *LoopMutation) ResetLatestVideoFailureMessage() {
	m.latest_video_failure_message = nil
	delete(m.clearedFields, loop.FieldLatestVideoFailureMessage)
}

// SetLatestVideoFailedAt sets the "latest_video_failed_at" field.
func (m *LoopMutation) SetLatestVideoFailedAt(t time.Time) {
	m.latest_video_failed_at = &t
}

// LatestVideoFailedAt returns the value of the "latest_video_failed_at" field in the mutation.
func (m *LoopMutation) LatestVideoFailedAt() (r time.Time, exists bool) {
	v := m.latest_video_failed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLatestVideoFailedAt returns the old "latest_video_failed_at" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldLatestVideoFailedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatestVideoFailedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatestVideoFailedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatestVideoFailedAt: %w", err)
	}
	return oldValue.LatestVideoFailedAt, nil
}

// ClearLatestVideoFailedAt clears the value of the "latest_video_failed_at" field.
func (m *LoopMutation) ClearLatestVideoFailedAt() {
	m.latest_video_failed_at = nil
	m.clearedFields[loop.FieldLatestVideoFailedAt] = struct{}{}
}

// LatestVideoFailedAtCleared returns if the "latest_video_failed_at" field was cleared in this mutation.
func (m *LoopMutation) LatestVideoFailedAtCleared() bool {
	_, ok := m.clearedFields[loop.FieldLatestVideoFailedAt]
	return ok
}

// ResetLatestVideoFailedAt resets all changes to the "latest_video_failed_at" field.
func (m *LoopMutation) ResetLatestVideoFailedAt() {
	m.latest_video_failed_at = nil
	delete(m.clearedFields, loop.FieldLatestVideoFailedAt)
}

// SetStopReason sets the "stop_reason" field.
func (m *LoopMutation) SetStopReason(s string) {
	m.stop_reason = &s
}

// StopReason returns the value of the "stop_reason" field in the mutation.
func (m *LoopMutation) StopReason() (r string, exists bool) {
	v := m.stop_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldStopReason returns the old "stop_reason" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldStopReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStopReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStopReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStopReason: %w", err)
	}
	return oldValue.StopReason, nil
}

// ClearStopReason clears the value of the "stop_reason" field.
func (m *LoopMutation) ClearStopReason() {
	m.stop_reason = nil
	m.clearedFields[loop.FieldStopReason] = struct{}{}
}

// StopReasonCleared returns if the "stop_reason" field was cleared in this mutation.
func (m *LoopMutation) StopReasonCleared() bool {
	_, ok := m.clearedFields[loop.FieldStopReason]
	return ok
}

// ResetStopReason resets all changes to the "stop_reason" field.
func (m *LoopMutation) ResetStopReason() {
	m.stop_reason = nil
	delete(m.clearedFields, loop.FieldStopReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *LoopMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LoopMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LoopMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LoopMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LoopMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Loop entity.
// If the Loop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LoopMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddSignalIDs adds the "signals" edge to the InboxSignal entity by ids.
func (m *LoopMutation) AddSignalIDs(ids ...string) {
	if m.signals == nil {
		m.signals = make(map[string]struct{})
	}
	for i := range ids {
		m.signals[ids[i]] = struct{}{}
	}
}

// ClearSignals clears the "signals" edge to the InboxSignal entity.
func (m *LoopMutation) ClearSignals() {
	m.clearedsignals = true
}

// SignalsCleared reports if the "signals" edge to the InboxSignal entity was cleared.
func (m *LoopMutation) SignalsCleared() bool {
	return m.clearedsignals
}

// RemoveSignalIDs removes the "signals" edge to the InboxSignal entity by IDs.
func (m *LoopMutation) RemoveSignalIDs(ids ...string) {
	if m.removedsignals == nil {
		m.removedsignals = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.signals, ids[i])
		m.removedsignals[ids[i]] = struct{}{}
	}
}

// RemovedSignals returns the removed IDs of the "signals" edge to the InboxSignal entity.
func (m *LoopMutation) RemovedSignalsIDs() (ids []string) {
	for id := range m.removedsignals {
		ids = append(ids, id)
	}
	return
}

// SignalsIDs returns the "signals" edge IDs in the mutation.
func (m *LoopMutation) SignalsIDs() (ids []string) {
	for id := range m.signals {
		ids = append(ids, id)
	}
	return
}

// ResetSignals resets all changes to the "signals" edge.
func (m *LoopMutation) ResetSignals() {
	m.signals = nil
	m.clearedsignals = false
	m.removedsignals = nil
}

// AddOutboxActionIDs adds the "outbox_actions" edge to the OutboxAction entity by ids.
func (m *LoopMutation) AddOutboxActionIDs(ids ...string) {
	if m.outbox_actions == nil {
		m.outbox_actions = make(map[string]struct{})
	}
	for i := range ids {
		m.outbox_actions[ids[i]] = struct{}{}
	}
}

// ClearOutboxActions clears the "outbox_actions" edge to the OutboxAction entity.
func (m *LoopMutation) ClearOutboxActions() {
	m.clearedoutbox_actions = true
}

// OutboxActionsCleared reports if the "outbox_actions" edge to the OutboxAction entity was cleared.
func (m *LoopMutation) OutboxActionsCleared() bool {
	return m.clearedoutbox_actions
}

// RemoveOutboxActionIDs removes the "outbox_actions" edge to the OutboxAction entity by IDs.
func (m *LoopMutation) RemoveOutboxActionIDs(ids ...string) {
	if m.removedoutbox_actions == nil {
		m.removedoutbox_actions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.outbox_actions, ids[i])
		m.removedoutbox_actions[ids[i]] = struct{}{}
	}
}

// RemovedOutboxActions returns the removed IDs of the "outbox_actions" edge to the OutboxAction entity.
func (m *LoopMutation) RemovedOutboxActionsIDs() (ids []string) {
	for id := range m.removedoutbox_actions {
		ids = append(ids, id)
	}
	return
}

// OutboxActionsIDs returns the "outbox_actions" edge IDs in the mutation.
func (m *LoopMutation) OutboxActionsIDs() (ids []string) {
	for id := range m.outbox_actions {
		ids = append(ids, id)
	}
	return
}

// ResetOutboxActions resets all changes to the "outbox_actions" edge.
func (m *LoopMutation) ResetOutboxActions() {
	m.outbox_actions = nil
	m.clearedoutbox_actions = false
	m.removedoutbox_actions = nil
}

// AddGateRunIDs adds the "gate_runs" edge to the GateRun entity by ids.
func (m *LoopMutation) AddGateRunIDs(ids ...string) {
	if m.gate_runs == nil {
		m.gate_runs = make(map[string]struct{})
	}
	for i := range ids {
		m.gate_runs[ids[i]] = struct{}{}
	}
}

// ClearGateRuns clears the "gate_runs" edge to the GateRun entity.
func (m *LoopMutation) ClearGateRuns() {
	m.clearedgate_runs = true
}

// GateRunsCleared reports if the "gate_runs" edge to the GateRun entity was cleared.
func (m *LoopMutation) GateRunsCleared() bool {
	return m.clearedgate_runs
}

// RemoveGateRunIDs removes the "gate_runs" edge to the GateRun entity by IDs.
func (m *LoopMutation) RemoveGateRunIDs(ids ...string) {
	if m.removedgate_runs == nil {
		m.removedgate_runs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.gate_runs, ids[i])
		m.removedgate_runs[ids[i]] = struct{}{}
	}
}

// RemovedGateRuns returns the removed IDs of the "gate_runs" edge to the GateRun entity.
func (m *LoopMutation) RemovedGateRunsIDs() (ids []string) {
	for id := range m.removedgate_runs {
		ids = append(ids, id)
	}
	return
}

// GateRunsIDs returns the "gate_runs" edge IDs in the mutation.
func (m *LoopMutation) GateRunsIDs() (ids []string) {
	for id := range m.gate_runs {
		ids = append(ids, id)
	}
	return
}

// ResetGateRuns resets all changes to the "gate_runs" edge.
func (m *LoopMutation) ResetGateRuns() {
	m.gate_runs = nil
	m.clearedgate_runs = false
	m.removedgate_runs = nil
}

// AddGateFindingIDs adds the "gate_findings" edge to the GateFinding entity by ids.
func (m *LoopMutation) AddGateFindingIDs(ids ...string) {
	if m.gate_findings == nil {
		m.gate_findings = make(map[string]struct{})
	}
	for i := range ids {
		m.gate_findings[ids[i]] = struct{}{}
	}
}

// ClearGateFindings clears the "gate_findings" edge to the GateFinding entity.
func (m *LoopMutation) ClearGateFindings() {
	m.clearedgate_findings = true
}

// GateFindingsCleared reports if the "gate_findings" edge to the GateFinding entity was cleared.
func (m *LoopMutation) GateFindingsCleared() bool {
	return m.clearedgate_findings
}

// RemoveGateFindingIDs removes the "gate_findings" edge to the GateFinding entity by IDs.
func (m *LoopMutation) RemoveGateFindingIDs(ids ...string) {
	if m.removedgate_findings == nil {
		m.removedgate_findings = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.gate_findings, ids[i])
		m.removedgate_findings[ids[i]] = struct{}{}
	}
}

// RemovedGateFindings returns the removed IDs of the "gate_findings" edge to the GateFinding entity.
func (m *LoopMutation) RemovedGateFindingsIDs() (ids []string) {
	for id := range m.removedgate_findings {
		ids = append(ids, id)
	}
	return
}

// GateFindingsIDs returns the "gate_findings" edge IDs in the mutation.
func (m *LoopMutation) GateFindingsIDs() (ids []string) {
	for id := range m.gate_findings {
		ids = append(ids, id)
	}
	return
}

// ResetGateFindings resets all changes to the "gate_findings" edge.
func (m *LoopMutation) ResetGateFindings() {
	m.gate_findings = nil
	m.clearedgate_findings = false
	m.removedgate_findings = nil
}

// AddArtifactIDs adds the "artifacts" edge to the PhaseArtifact entity by ids.
func (m *LoopMutation) AddArtifactIDs(ids ...string) {
	if m.artifacts == nil {
		m.artifacts = make(map[string]struct{})
	}
	for i := range ids {
		m.artifacts[ids[i]] = struct{}{}
	}
}

// ClearArtifacts clears the "artifacts" edge to the PhaseArtifact entity.
func (m *LoopMutation) ClearArtifacts() {
	m.clearedartifacts = true
}

// ArtifactsCleared reports if the "artifacts" edge to the PhaseArtifact entity was cleared.
func (m *LoopMutation) ArtifactsCleared() bool {
	return m.clearedartifacts
}

// RemoveArtifactIDs removes the "artifacts" edge to the PhaseArtifact entity by IDs.
func (m *LoopMutation) RemoveArtifactIDs(ids ...string) {
	if m.removedartifacts == nil {
		m.removedartifacts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.artifacts, ids[i])
		m.removedartifacts[ids[i]] = struct{}{}
	}
}

// RemovedArtifacts returns the removed IDs of the "artifacts" edge to the PhaseArtifact entity.
func (m *LoopMutation) RemovedArtifactsIDs() (ids []string) {
	for id := range m.removedartifacts {
		ids = append(ids, id)
	}
	return
}

// ArtifactsIDs returns the "artifacts" edge IDs in the mutation.
func (m *LoopMutation) ArtifactsIDs() (ids []string) {
	for id := range m.artifacts {
		ids = append(ids, id)
	}
	return
}

// ResetArtifacts resets all changes to the "artifacts" edge.
func (m *LoopMutation) ResetArtifacts() {
	m.artifacts = nil
	m.clearedartifacts = false
	m.removedartifacts = nil
}

// Where appends a list predicates to the LoopMutation builder.
func (m *LoopMutation) Where(ps ...predicate.Loop) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LoopMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LoopMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Loop, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LoopMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LoopMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Loop).
func (m *LoopMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LoopMutation) Fields() []string {
	fields := make([]string, 0, 30)
	if m.user_id != nil {
		fields = append(fields, loop.FieldUserID)
	}
	if m.repo_full_name != nil {
		fields = append(fields, loop.FieldRepoFullName)
	}
	if m.pr_number != nil {
		fields = append(fields, loop.FieldPrNumber)
	}
	if m.thread_id != nil {
		fields = append(fields, loop.FieldThreadID)
	}
	if m.thread_chat_id != nil {
		fields = append(fields, loop.FieldThreadChatID)
	}
	if m.state != nil {
		fields = append(fields, loop.FieldState)
	}
	if m.plan_approval_policy != nil {
		fields = append(fields, loop.FieldPlanApprovalPolicy)
	}
	if m.current_head_sha != nil {
		fields = append(fields, loop.FieldCurrentHeadSha)
	}
	if m.loop_version != nil {
		fields = append(fields, loop.FieldLoopVersion)
	}
	if m.transition_seq != nil {
		fields = append(fields, loop.FieldTransitionSeq)
	}
	if m.fix_attempt_count != nil {
		fields = append(fields, loop.FieldFixAttemptCount)
	}
	if m.max_fix_attempts != nil {
		fields = append(fields, loop.FieldMaxFixAttempts)
	}
	if m.iteration_count != nil {
		fields = append(fields, loop.FieldIterationCount)
	}
	if m.cooldown_until != nil {
		fields = append(fields, loop.FieldCooldownUntil)
	}
	if m.active_plan_artifact_id != nil {
		fields = append(fields, loop.FieldActivePlanArtifactID)
	}
	if m.active_implementation_artifact_id != nil {
		fields = append(fields, loop.FieldActiveImplementationArtifactID)
	}
	if m.active_review_artifact_id != nil {
		fields = append(fields, loop.FieldActiveReviewArtifactID)
	}
	if m.active_ui_artifact_id != nil {
		fields = append(fields, loop.FieldActiveUIArtifactID)
	}
	if m.active_babysit_artifact_id != nil {
		fields = append(fields, loop.FieldActiveBabysitArtifactID)
	}
	if m.canonical_status_comment_id != nil {
		fields = append(fields, loop.FieldCanonicalStatusCommentID)
	}
	if m.canonical_check_run_id != nil {
		fields = append(fields, loop.FieldCanonicalCheckRunID)
	}
	if m.video_capture_status != nil {
		fields = append(fields, loop.FieldVideoCaptureStatus)
	}
	if m.latest_video_artifact_key != nil {
		fields = append(fields, loop.FieldLatestVideoArtifactKey)
	}
	if m.latest_video_captured_at != nil {
		fields = append(fields, loop.FieldLatestVideoCapturedAt)
	}
	if m.latest_video_failure_class != nil {
		fields = append(fields, loop.FieldLatestVideoFailureClass)
	}
	if m.latest_video_failure_message != nil {
		fields = append(fields, loop.FieldLatestVideoFailureMessage)
	}
	if m.latest_video_failed_at != nil {
		fields = append(fields, loop.FieldLatestVideoFailedAt)
	}
	if m.stop_reason != nil {
		fields = append(fields, loop.FieldStopReason)
	}
	if m.created_at != nil {
		fields = append(fields, loop.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, loop.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LoopMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case loop.FieldUserID:
		return m.UserID()
	case loop.FieldRepoFullName:
		return m.RepoFullName()
	case loop.FieldPrNumber:
		return m.PrNumber()
	case loop.FieldThreadID:
		return m.ThreadID()
	case loop.FieldThreadChatID:
		return m.ThreadChatID()
	case loop.FieldState:
		return m.State()
	case loop.FieldPlanApprovalPolicy:
		return m.PlanApprovalPolicy()
	case loop.FieldCurrentHeadSha:
		return m.CurrentHeadSha()
	case loop.FieldLoopVersion:
		return m.LoopVersion()
	case loop.FieldTransitionSeq:
		return m.TransitionSeq()
	case loop.FieldFixAttemptCount:
		return m.FixAttemptCount()
	case loop.FieldMaxFixAttempts:
		return m.MaxFixAttempts()
	case loop.FieldIterationCount:
		return m.IterationCount()
	case loop.FieldCooldownUntil:
		return m.CooldownUntil()
	case loop.FieldActivePlanArtifactID:
		return m.ActivePlanArtifactID()
	case loop.FieldActiveImplementationArtifactID:
		return m.ActiveImplementationArtifactID()
	case loop.FieldActiveReviewArtifactID:
		return m.ActiveReviewArtifactID()
	case loop.FieldActiveUIArtifactID:
		return m.ActiveUIArtifactID()
	case loop.FieldActiveBabysitArtifactID:
		return m.ActiveBabysitArtifactID()
	case loop.FieldCanonicalStatusCommentID:
		return m.CanonicalStatusCommentID()
	case loop.FieldCanonicalCheckRunID:
		return m.CanonicalCheckRunID()
	case loop.FieldVideoCaptureStatus:
		return m.VideoCaptureStatus()
	case loop.FieldLatestVideoArtifactKey:
		return m.LatestVideoArtifactKey()
	case loop.FieldLatestVideoCapturedAt:
		return m.LatestVideoCapturedAt()
	case loop.FieldLatestVideoFailureClass:
		return m.LatestVideoFailureClass()
	case loop.FieldLatestVideoFailureMessage:
		return m.LatestVideoFailureMessage()
	case loop.FieldLatestVideoFailedAt:
		return m.LatestVideoFailedAt()
	case loop.FieldStopReason:
		return m.StopReason()
	case loop.FieldCreatedAt:
		return m.CreatedAt()
	case loop.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LoopMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case loop.FieldUserID:
		return m.OldUserID(ctx)
	case loop.FieldRepoFullName:
		return m.OldRepoFullName(ctx)
	case loop.FieldPrNumber:
		return m.OldPrNumber(ctx)
	case loop.FieldThreadID:
		return m.OldThreadID(ctx)
	case loop.FieldThreadChatID:
		return m.OldThreadChatID(ctx)
	case loop.FieldState:
		return m.OldState(ctx)
	case loop.FieldPlanApprovalPolicy:
		return m.OldPlanApprovalPolicy(ctx)
	case loop.FieldCurrentHeadSha:
		return m.OldCurrentHeadSha(ctx)
	case loop.FieldLoopVersion:
		return m.OldLoopVersion(ctx)
	case loop.FieldTransitionSeq:
		return m.OldTransitionSeq(ctx)
	case loop.FieldFixAttemptCount:
		return m.OldFixAttemptCount(ctx)
	case loop.FieldMaxFixAttempts:
		return m.OldMaxFixAttempts(ctx)
	case loop.FieldIterationCount:
		return m.OldIterationCount(ctx)
	case loop.FieldCooldownUntil:
		return m.OldCooldownUntil(ctx)
	case loop.FieldActivePlanArtifactID:
		return m.OldActivePlanArtifactID(ctx)
	case loop.FieldActiveImplementationArtifactID:
		return m.OldActiveImplementationArtifactID(ctx)
	case loop.FieldActiveReviewArtifactID:
		return m.OldActiveReviewArtifactID(ctx)
	case loop.FieldActiveUIArtifactID:
		return m.OldActiveUIArtifactID(ctx)
	case loop.FieldActiveBabysitArtifactID:
		return m.OldActiveBabysitArtifactID(ctx)
	case loop.FieldCanonicalStatusCommentID:
		return m.OldCanonicalStatusCommentID(ctx)
	case loop.FieldCanonicalCheckRunID:
		return m.OldCanonicalCheckRunID(ctx)
	case loop.FieldVideoCaptureStatus:
		return m.OldVideoCaptureStatus(ctx)
	case loop.FieldLatestVideoArtifactKey:
		return m.OldLatestVideoArtifactKey(ctx)
	case loop.FieldLatestVideoCapturedAt:
		return m.OldLatestVideoCapturedAt(ctx)
	case loop.FieldLatestVideoFailureClass:
		return m.OldLatestVideoFailureClass(ctx)
	case loop.FieldLatestVideoFailureMessage:
		return m.OldLatestVideoFailureMessage(ctx)
	case loop.FieldLatestVideoFailedAt:
		return m.OldLatestVideoFailedAt(ctx)
	case loop.FieldStopReason:
		return m.OldStopReason(ctx)
	case loop.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case loop.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Loop field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LoopMutation) SetField(name string, value ent.Value) error {
	switch name {
	case loop.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case loop.FieldRepoFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoFullName(v)
		return nil
	case loop.FieldPrNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrNumber(v)
		return nil
	case loop.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case loop.FieldThreadChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadChatID(v)
		return nil
	case loop.FieldState:
		v, ok := value.(loop.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case loop.FieldPlanApprovalPolicy:
		v, ok := value.(loop.PlanApprovalPolicy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanApprovalPolicy(v)
		return nil
	case loop.FieldCurrentHeadSha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentHeadSha(v)
		return nil
	case loop.FieldLoopVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoopVersion(v)
		return nil
	case loop.FieldTransitionSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransitionSeq(v)
		return nil
	case loop.FieldFixAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFixAttemptCount(v)
		return nil
	case loop.FieldMaxFixAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxFixAttempts(v)
		return nil
	case loop.FieldIterationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIterationCount(v)
		return nil
	case loop.FieldCooldownUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCooldownUntil(v)
		return nil
	case loop.FieldActivePlanArtifactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivePlanArtifactID(v)
		return nil
	case loop.FieldActiveImplementationArtifactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveImplementationArtifactID(v)
		return nil
	case loop.FieldActiveReviewArtifactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveReviewArtifactID(v)
		return nil
	case loop.FieldActiveUIArtifactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveUIArtifactID(v)
		return nil
	case loop.FieldActiveBabysitArtifactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveBabysitArtifactID(v)
		return nil
	case loop.FieldCanonicalStatusCommentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalStatusCommentID(v)
		return nil
	case loop.FieldCanonicalCheckRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalCheckRunID(v)
		return nil
	case loop.FieldVideoCaptureStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoCaptureStatus(v)
		return nil
	case loop.FieldLatestVideoArtifactKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatestVideoArtifactKey(v)
		return nil
	case loop.FieldLatestVideoCapturedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatestVideoCapturedAt(v)
		return nil
	case loop.FieldLatestVideoFailureClass:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatestVideoFailureClass(v)
		return nil
	case loop.FieldLatestVideoFailureMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatestVideoFailureMessage(v)
		return nil
	case loop.FieldLatestVideoFailedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatestVideoFailedAt(v)
		return nil
	case loop.FieldStopReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStopReason(v)
		return nil
	case loop.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case loop.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Loop field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LoopMutation) AddedFields() []string {
	var fields []string
	if m.addpr_number != nil {
		fields = append(fields, loop.FieldPrNumber)
	}
	if m.addloop_version != nil {
		fields = append(fields, loop.FieldLoopVersion)
	}
	if m.addtransition_seq != nil {
		fields = append(fields, loop.FieldTransitionSeq)
	}
	if m.addfix_attempt_count != nil {
		fields = append(fields, loop.FieldFixAttemptCount)
	}
	if m.addmax_fix_attempts != nil {
		fields = append(fields, loop.FieldMaxFixAttempts)
	}
	if m.additeration_count != nil {
		fields = append(fields, loop.FieldIterationCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LoopMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case loop.FieldPrNumber:
		return m.AddedPrNumber()
	case loop.FieldLoopVersion:
		return m.AddedLoopVersion()
	case loop.FieldTransitionSeq:
		return m.AddedTransitionSeq()
	case loop.FieldFixAttemptCount:
		return m.AddedFixAttemptCount()
	case loop.FieldMaxFixAttempts:
		return m.AddedMaxFixAttempts()
	case loop.FieldIterationCount:
		return m.AddedIterationCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LoopMutation) AddField(name string, value ent.Value) error {
	switch name {
	case loop.FieldPrNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrNumber(v)
		return nil
	case loop.FieldLoopVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLoopVersion(v)
		return nil
	case loop.FieldTransitionSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTransitionSeq(v)
		return nil
	case loop.FieldFixAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFixAttemptCount(v)
		return nil
	case loop.FieldMaxFixAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxFixAttempts(v)
		return nil
	case loop.FieldIterationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIterationCount(v)
		return nil
	}
	return fmt.Errorf("unknown Loop numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LoopMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(loop.FieldPrNumber) {
		fields = append(fields, loop.FieldPrNumber)
	}
	if m.FieldCleared(loop.FieldThreadChatID) {
		fields = append(fields, loop.FieldThreadChatID)
	}
	if m.FieldCleared(loop.FieldCurrentHeadSha) {
		fields = append(fields, loop.FieldCurrentHeadSha)
	}
	if m.FieldCleared(loop.FieldCooldownUntil) {
		fields = append(fields, loop.FieldCooldownUntil)
	}
	if m.FieldCleared(loop.FieldActivePlanArtifactID) {
		fields = append(fields, loop.FieldActivePlanArtifactID)
	}
	if m.FieldCleared(loop.FieldActiveImplementationArtifactID) {
		fields = append(fields, loop.FieldActiveImplementationArtifactID)
	}
	if m.FieldCleared(loop.FieldActiveReviewArtifactID) {
		fields = append(fields, loop.FieldActiveReviewArtifactID)
	}
	if m.FieldCleared(loop.FieldActiveUIArtifactID) {
		fields = append(fields, loop.FieldActiveUIArtifactID)
	}
	if m.FieldCleared(loop.FieldActiveBabysitArtifactID) {
		fields = append(fields, loop.FieldActiveBabysitArtifactID)
	}
	if m.FieldCleared(loop.FieldCanonicalStatusCommentID) {
		fields = append(fields, loop.FieldCanonicalStatusCommentID)
	}
	if m.FieldCleared(loop.FieldCanonicalCheckRunID) {
		fields = append(fields, loop.FieldCanonicalCheckRunID)
	}
	if m.FieldCleared(loop.FieldVideoCaptureStatus) {
		fields = append(fields, loop.FieldVideoCaptureStatus)
	}
	if m.FieldCleared(loop.FieldLatestVideoArtifactKey) {
		fields = append(fields, loop.FieldLatestVideoArtifactKey)
	}
	if m.FieldCleared(loop.FieldLatestVideoCapturedAt) {
		fields = append(fields, loop.FieldLatestVideoCapturedAt)
	}
	if m.FieldCleared(loop.FieldLatestVideoFailureClass) {
		fields = append(fields, loop.FieldLatestVideoFailureClass)
	}
	if m.FieldCleared(loop.FieldLatestVideoFailureMessage) {
		fields = append(fields, loop.FieldLatestVideoFailureMessage)
	}
	if m.FieldCleared(loop.FieldLatestVideoFailedAt) {
		fields = append(fields, loop.FieldLatestVideoFailedAt)
	}
	if m.FieldCleared(loop.FieldStopReason) {
		fields = append(fields, loop.FieldStopReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LoopMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LoopMutation) ClearField(name string) error {
	switch name {
	case loop.FieldPrNumber:
		m.ClearPrNumber()
		return nil
	case loop.FieldThreadChatID:
		m.ClearThreadChatID()
		return nil
	case loop.FieldCurrentHeadSha:
		m.ClearCurrentHeadSha()
		return nil
	case loop.FieldCooldownUntil:
		m.ClearCooldownUntil()
		return nil
	case loop.FieldActivePlanArtifactID:
		m.ClearActivePlanArtifactID()
		return nil
	case loop.FieldActiveImplementationArtifactID:
		m.ClearActiveImplementationArtifactID()
		return nil
	case loop.FieldActiveReviewArtifactID:
		m.ClearActiveReviewArtifactID()
		return nil
	case loop.FieldActiveUIArtifactID:
		m.ClearActiveUIArtifactID()
		return nil
	case loop.FieldActiveBabysitArtifactID:
		m.ClearActiveBabysitArtifactID()
		return nil
	case loop.FieldCanonicalStatusCommentID:
		m.ClearCanonicalStatusCommentID()
		return nil
	case loop.FieldCanonicalCheckRunID:
		m.ClearCanonicalCheckRunID()
		return nil
	case loop.FieldVideoCaptureStatus:
		m.ClearVideoCaptureStatus()
		return nil
	case loop.FieldLatestVideoArtifactKey:
		m.ClearLatestVideoArtifactKey()
		return nil
	case loop.FieldLatestVideoCapturedAt:
		m.ClearLatestVideoCapturedAt()
		return nil
	case loop.FieldLatestVideoFailureClass:
		m.ClearLatestVideoFailureClass()
		return nil
	case loop.FieldLatestVideoFailureMessage:
		m.ClearLatestVideoFailureMessage()
		return nil
	case loop.FieldLatestVideoFailedAt:
		m.ClearLatestVideoFailedAt()
		return nil
	case loop.FieldStopReason:
		m.ClearStopReason()
		return nil
	}
	return fmt.Errorf("unknown Loop nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LoopMutation) ResetField(name string) error {
	switch name {
	case loop.FieldUserID:
		m.ResetUserID()
		return nil
	case loop.FieldRepoFullName:
		m.ResetRepoFullName()
		return nil
	case loop.FieldPrNumber:
		m.ResetPrNumber()
		return nil
	case loop.FieldThreadID:
		m.ResetThreadID()
		return nil
	case loop.FieldThreadChatID:
		m.ResetThreadChatID()
		return nil
	case loop.FieldState:
		m.ResetState()
		return nil
	case loop.FieldPlanApprovalPolicy:
		m.ResetPlanApprovalPolicy()
		return nil
	case loop.FieldCurrentHeadSha:
		m.ResetCurrentHeadSha()
		return nil
	case loop.FieldLoopVersion:
		m.ResetLoopVersion()
		return nil
	case loop.FieldTransitionSeq:
		m.ResetTransitionSeq()
		return nil
	case loop.FieldFixAttemptCount:
		m.ResetFixAttemptCount()
		return nil
	case loop.FieldMaxFixAttempts:
		m.ResetMaxFixAttempts()
		return nil
	case loop.FieldIterationCount:
		m.ResetIterationCount()
		return nil
	case loop.FieldCooldownUntil:
		m.ResetCooldownUntil()
		return nil
	case loop.FieldActivePlanArtifactID:
		m.ResetActivePlanArtifactID()
		return nil
	case loop.FieldActiveImplementationArtifactID:
		m.ResetActiveImplementationArtifactID()
		return nil
	case loop.FieldActiveReviewArtifactID:
		m.ResetActiveReviewArtifactID()
		return nil
	case loop.FieldActiveUIArtifactID:
		m.ResetActiveUIArtifactID()
		return nil
	case loop.FieldActiveBabysitArtifactID:
		m.ResetActiveBabysitArtifactID()
		return nil
	case loop.FieldCanonicalStatusCommentID:
		m.ResetCanonicalStatusCommentID()
		return nil
	case loop.FieldCanonicalCheckRunID:
		m.ResetCanonicalCheckRunID()
		return nil
	case loop.FieldVideoCaptureStatus:
		m.ResetVideoCaptureStatus()
		return nil
	case loop.FieldLatestVideoArtifactKey:
		m.ResetLatestVideoArtifactKey()
		return nil
	case loop.FieldLatestVideoCapturedAt:
		m.ResetLatestVideoCapturedAt()
		return nil
	case loop.FieldLatestVideoFailureClass:
		m.ResetLatestVideoFailureClass()
		return nil
	case loop.FieldLatestVideoFailureMessage:
		m.ResetLatestVideoFailureMessage()
		return nil
	case loop.FieldLatestVideoFailedAt:
		m.ResetLatestVideoFailedAt()
		return nil
	case loop.FieldStopReason:
		m.ResetStopReason()
		return nil
	case loop.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case loop.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Loop field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LoopMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.signals != nil {
		edges = append(edges, loop.EdgeSignals)
	}
	if m.outbox_actions != nil {
		edges = append(edges, loop.EdgeOutboxActions)
	}
	if m.gate_runs != nil {
		edges = append(edges, loop.EdgeGateRuns)
	}
	if m.gate_findings != nil {
		edges = append(edges, loop.EdgeGateFindings)
	}
	if m.artifacts != nil {
		edges = append(edges, loop.EdgeArtifacts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LoopMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case loop.EdgeSignals:
		ids := make([]ent.Value, 0, len(m.signals))
		for id := range m.signals {
			ids = append(ids, id)
		}
		return ids
	case loop.EdgeOutboxActions:
		ids := make([]ent.Value, 0, len(m.outbox_actions))
		for id := range m.outbox_actions {
			ids = append(ids, id)
		}
		return ids
	case loop.EdgeGateRuns:
		ids := make([]ent.Value, 0, len(m.gate_runs))
		for id := range m.gate_runs {
			ids = append(ids, id)
		}
		return ids
	case loop.EdgeGateFindings:
		ids := make([]ent.Value, 0, len(m.gate_findings))
		for id := range m.gate_findings {
			ids = append(ids, id)
		}
		return ids
	case loop.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.artifacts))
		for id := range m.artifacts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LoopMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedsignals != nil {
		edges = append(edges, loop.EdgeSignals)
	}
	if m.removedoutbox_actions != nil {
		edges = append(edges, loop.EdgeOutboxActions)
	}
	if m.removedgate_runs != nil {
		edges = append(edges, loop.EdgeGateRuns)
	}
	if m.removedgate_findings != nil {
		edges = append(edges, loop.EdgeGateFindings)
	}
	if m.removedartifacts != nil {
		edges = append(edges, loop.EdgeArtifacts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LoopMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case loop.EdgeSignals:
		ids := make([]ent.Value, 0, len(m.removedsignals))
		for id := range m.removedsignals {
			ids = append(ids, id)
		}
		return ids
	case loop.EdgeOutboxActions:
		ids := make([]ent.Value, 0, len(m.removedoutbox_actions))
		for id := range m.removedoutbox_actions {
			ids = append(ids, id)
		}
		return ids
	case loop.EdgeGateRuns:
		ids := make([]ent.Value, 0, len(m.removedgate_runs))
		for id := range m.removedgate_runs {
			ids = append(ids, id)
		}
		return ids
	case loop.EdgeGateFindings:
		ids := make([]ent.Value, 0, len(m.removedgate_findings))
		for id := range m.removedgate_findings {
			ids = append(ids, id)
		}
		return ids
	case loop.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.removedartifacts))
		for id := range m.removedartifacts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LoopMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedsignals {
		edges = append(edges, loop.EdgeSignals)
	}
	if m.clearedoutbox_actions {
		edges = append(edges, loop.EdgeOutboxActions)
	}
	if m.clearedgate_runs {
		edges = append(edges, loop.EdgeGateRuns)
	}
	if m.clearedgate_findings {
		edges = append(edges, loop.EdgeGateFindings)
	}
	if m.clearedartifacts {
		edges = append(edges, loop.EdgeArtifacts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LoopMutation) EdgeCleared(name string) bool {
	switch name {
	case loop.EdgeSignals:
		return m.clearedsignals
	case loop.EdgeOutboxActions:
		return m.clearedoutbox_actions
	case loop.EdgeGateRuns:
		return m.clearedgate_runs
	case loop.EdgeGateFindings:
		return m.clearedgate_findings
	case loop.EdgeArtifacts:
		return m.clearedartifacts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LoopMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Loop unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LoopMutation) ResetEdge(name string) error {
	switch name {
	case loop.EdgeSignals:
		m.ResetSignals()
		return nil
	case loop.EdgeOutboxActions:
		m.ResetOutboxActions()
		return nil
	case loop.EdgeGateRuns:
		m.ResetGateRuns()
		return nil
	case loop.EdgeGateFindings:
		m.ResetGateFindings()
		return nil
	case loop.EdgeArtifacts:
		m.ResetArtifacts()
		return nil
	}
	return fmt.Errorf("unknown Loop edge %s", name)
}

// LoopLeaseMutation represents an operation that mutates the LoopLease nodes in the graph.
type LoopLeaseMutation struct {
	config
	op               Op
	typ              string
	id               *string
	lease_owner      *string
	lease_epoch      *int
	addlease_epoch   *int
	lease_expires_at *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LoopLease, error)
	predicates       []predicate.LoopLease
}

var _ ent.Mutation = (*LoopLeaseMutation)(nil)

// loopleaseOption allows management of the mutation configuration using functional options.
type loopleaseOption func(*LoopLeaseMutation)

// newLoopLeaseMutation creates new mutation for the LoopLease entity.
func newLoopLeaseMutation(c config, op Op, opts ...loopleaseOption) *LoopLeaseMutation {
	m := &LoopLeaseMutation{
		config:        c,
		op:            op,
		typ:           TypeLoopLease,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLoopLeaseID sets the ID field of the mutation.
func withLoopLeaseID(id string) loopleaseOption {
	return func(m *LoopLeaseMutation) {
		var (
			err   error
			once  sync.Once
			value *LoopLease
		)
		m.oldValue = func(ctx context.Context) (*LoopLease, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LoopLease.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLoopLease sets the old LoopLease of the mutation.
func withLoopLease(node *LoopLease) loopleaseOption {
	return func(m *LoopLeaseMutation) {
		m.oldValue = func(context.Context) (*LoopLease, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LoopLeaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LoopLeaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LoopLease entities.
func (m *LoopLeaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LoopLeaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LoopLeaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LoopLease.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLeaseOwner sets the "lease_owner" field.
func (m *LoopLeaseMutation) SetLeaseOwner(s string) {
	m.lease_owner = &s
}

// LeaseOwner returns the value of the "lease_owner" field in the mutation.
func (m *LoopLeaseMutation) LeaseOwner() (r string, exists bool) {
	v := m.lease_owner
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseOwner returns the old "lease_owner" field's value of the LoopLease entity.
// If the LoopLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopLeaseMutation) OldLeaseOwner(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseOwner: %w", err)
	}
	return oldValue.LeaseOwner, nil
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (m *LoopLeaseMutation) ClearLeaseOwner() {
	m.lease_owner = nil
	m.clearedFields[looplease.FieldLeaseOwner] = struct{}{}
}

// LeaseOwnerCleared returns if the "lease_owner" field was cleared in this mutation.
func (m *LoopLeaseMutation) LeaseOwnerCleared() bool {
	_, ok := m.clearedFields[looplease.FieldLeaseOwner]
	return ok
}

// ResetLeaseOwner resets all changes to the "lease_owner" field.
func (m *LoopLeaseMutation) ResetLeaseOwner() {
	m.lease_owner = nil
	delete(m.clearedFields, looplease.FieldLeaseOwner)
}

// SetLeaseEpoch sets the "lease_epoch" field.
func (m *LoopLeaseMutation) SetLeaseEpoch(i int) {
	m.lease_epoch = &i
	m.addlease_epoch = nil
}

// LeaseEpoch returns the value of the "lease_epoch" field in the mutation.
func (m *LoopLeaseMutation) LeaseEpoch() (r int, exists bool) {
	v := m.lease_epoch
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseEpoch returns the old "lease_epoch" field's value of the LoopLease entity.
// If the LoopLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopLeaseMutation) OldLeaseEpoch(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseEpoch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseEpoch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseEpoch: %w", err)
	}
	return oldValue.LeaseEpoch, nil
}

// AddLeaseEpoch adds i to the "lease_epoch" field.
func (m *LoopLeaseMutation) AddLeaseEpoch(i int) {
	if m.addlease_epoch != nil {
		*m.addlease_epoch += i
	} else {
		m.addlease_epoch = &i
	}
}

// AddedLeaseEpoch returns the value that was added to the "lease_epoch" field in this mutation.
func (m *LoopLeaseMutation) AddedLeaseEpoch() (r int, exists bool) {
	v := m.addlease_epoch
	if v == nil {
		return
	}
	return *v, true
}

// ResetLeaseEpoch resets all changes to the "lease_epoch" field.
func (m *LoopLeaseMutation) ResetLeaseEpoch() {
	m.lease_epoch = nil
	m.addlease_epoch = nil
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (m *LoopLeaseMutation) SetLeaseExpiresAt(t time.Time) {
	m.lease_expires_at = &t
}

// LeaseExpiresAt returns the value of the "lease_expires_at" field in the mutation.
func (m *LoopLeaseMutation) LeaseExpiresAt() (r time.Time, exists bool) {
	v := m.lease_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseExpiresAt returns the old "lease_expires_at" field's value of the LoopLease entity.
// If the LoopLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoopLeaseMutation) OldLeaseExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseExpiresAt: %w", err)
	}
	return oldValue.LeaseExpiresAt, nil
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (m *LoopLeaseMutation) ClearLeaseExpiresAt() {
	m.lease_expires_at = nil
	m.clearedFields[looplease.FieldLeaseExpiresAt] = struct{}{}
}

// LeaseExpiresAtCleared returns if the "lease_expires_at" field was cleared in this mutation.
func (m *LoopLeaseMutation) LeaseExpiresAtCleared() bool {
	_, ok := m.clearedFields[looplease.FieldLeaseExpiresAt]
	return ok
}

// ResetLeaseExpiresAt resets all changes to the "lease_expires_at" field.
func (m *LoopLeaseMutation) ResetLeaseExpiresAt() {
	m.lease_expires_at = nil
	delete(m.clearedFields, looplease.FieldLeaseExpiresAt)
}

// Where appends a list predicates to the LoopLeaseMutation builder.
func (m *LoopLeaseMutation) Where(ps ...predicate.LoopLease) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LoopLeaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LoopLeaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LoopLease, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LoopLeaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LoopLeaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LoopLease).
func (m *LoopLeaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LoopLeaseMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.lease_owner != nil {
		fields = append(fields, looplease.FieldLeaseOwner)
	}
	if m.lease_epoch != nil {
		fields = append(fields, looplease.FieldLeaseEpoch)
	}
	if m.lease_expires_at != nil {
		fields = append(fields, looplease.FieldLeaseExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LoopLeaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case looplease.FieldLeaseOwner:
		return m.LeaseOwner()
	case looplease.FieldLeaseEpoch:
		return m.LeaseEpoch()
	case looplease.FieldLeaseExpiresAt:
		return m.LeaseExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LoopLeaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case looplease.FieldLeaseOwner:
		return m.OldLeaseOwner(ctx)
	case looplease.FieldLeaseEpoch:
		return m.OldLeaseEpoch(ctx)
	case looplease.FieldLeaseExpiresAt:
		return m.OldLeaseExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown LoopLease field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LoopLeaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case looplease.FieldLeaseOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseOwner(v)
		return nil
	case looplease.FieldLeaseEpoch:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseEpoch(v)
		return nil
	case looplease.FieldLeaseExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown LoopLease field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LoopLeaseMutation) AddedFields() []string {
	var fields []string
	if m.addlease_epoch != nil {
		fields = append(fields, looplease.FieldLeaseEpoch)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LoopLeaseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case looplease.FieldLeaseEpoch:
		return m.AddedLeaseEpoch()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LoopLeaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case looplease.FieldLeaseEpoch:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLeaseEpoch(v)
		return nil
	}
	return fmt.Errorf("unknown LoopLease numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LoopLeaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(looplease.FieldLeaseOwner) {
		fields = append(fields, looplease.FieldLeaseOwner)
	}
	if m.FieldCleared(looplease.FieldLeaseExpiresAt) {
		fields = append(fields, looplease.FieldLeaseExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LoopLeaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LoopLeaseMutation) ClearField(name string) error {
	switch name {
	case looplease.FieldLeaseOwner:
		m.ClearLeaseOwner()
		return nil
	case looplease.FieldLeaseExpiresAt:
		m.ClearLeaseExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown LoopLease nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LoopLeaseMutation) ResetField(name string) error {
	switch name {
	case looplease.FieldLeaseOwner:
		m.ResetLeaseOwner()
		return nil
	case looplease.FieldLeaseEpoch:
		m.ResetLeaseEpoch()
		return nil
	case looplease.FieldLeaseExpiresAt:
		m.ResetLeaseExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown LoopLease field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LoopLeaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LoopLeaseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LoopLeaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LoopLeaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LoopLeaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LoopLeaseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LoopLeaseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LoopLease unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LoopLeaseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LoopLease edge %s", name)
}

// OutboxActionMutation represents an operation that mutates the OutboxAction nodes in the graph.
type OutboxActionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	transition_seq          *int
	addtransition_seq       *int
	action_type             *outboxaction.ActionType
	supersession_group      *string
	action_key              *string
	payload                 *map[string]interface{}
	status                  *outboxaction.Status
	attempt_count           *int
	addattempt_count        *int
	next_retry_at           *time.Time
	claimed_by              *string
	claimed_at              *time.Time
	completed_at            *time.Time
	last_error_class        *string
	last_error_code         *string
	last_error_message      *string
	superseded_by_outbox_id *string
	canceled_reason         *string
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	loop                    *string
	clearedloop             bool
	attempts                map[string]struct{}
	removedattempts         map[string]struct{}
	clearedattempts         bool
	done                    bool
	oldValue                func(context.Context) (*OutboxAction, error)
	predicates              []predicate.OutboxAction
}

var _ ent.Mutation = (*OutboxActionMutation)(nil)

// outboxactionOption allows management of the mutation configuration using functional options.
type outboxactionOption func(*OutboxActionMutation)

// newOutboxActionMutation creates new mutation for the OutboxAction entity.
func newOutboxActionMutation(c config, op Op, opts ...outboxactionOption) *OutboxActionMutation {
	m := &OutboxActionMutation{
		config:        c,
		op:            op,
		typ:           TypeOutboxAction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOutboxActionID sets the ID field of the mutation.
func withOutboxActionID(id string) outboxactionOption {
	return func(m *OutboxActionMutation) {
		var (
			err   error
			once  sync.Once
			value *OutboxAction
		)
		m.oldValue = func(ctx context.Context) (*OutboxAction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OutboxAction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOutboxAction sets the old OutboxAction of the mutation.
func withOutboxAction(node *OutboxAction) outboxactionOption {
	return func(m *OutboxActionMutation) {
		m.oldValue = func(context.Context) (*OutboxAction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OutboxActionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OutboxActionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OutboxAction entities.
func (m *OutboxActionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OutboxActionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OutboxActionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OutboxAction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLoopID sets the "loop_id" field.
func (m *OutboxActionMutation) SetLoopID(s string) {
	m.loop = &s
}

// LoopID returns the value of the "loop_id" field in the mutation.
func (m *OutboxActionMutation) LoopID() (r string, exists bool) {
	v := m.loop
	if v == nil {
		return
	}
	return *v, true
}

// OldLoopID returns the old "loop_id" field's value of the OutboxAction entity.
// If the OutboxAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxActionMutation) OldLoopID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoopID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoopID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoopID: %w", err)
	}
	return oldValue.LoopID, nil
}

// ResetLoopID resets all changes to the "loop_id" field.
func (m *OutboxActionMutation) ResetLoopID() {
	m.loop = nil
}

// SetTransitionSeq sets the "transition_seq" field.
func (m *OutboxActionMutation) SetTransitionSeq(i int) {
	m.transition_seq = &i
	m.addtransition_seq = nil
}

// TransitionSeq returns the value of the "transition_seq" field in the mutation.
func (m *OutboxActionMutation) TransitionSeq() (r int, exists bool) {
	v := m.transition_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldTransitionSeq returns the old "transition_seq" field's value of the OutboxAction entity.
// If the OutboxAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxActionMutation) OldTransitionSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransitionSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransitionSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransitionSeq: %w", err)
	}
	return oldValue.TransitionSeq, nil
}

// AddTransitionSeq adds i to the "transition_seq" field.
func (m *OutboxActionMutation) AddTransitionSeq(i int) {
	if m.addtransition_seq != nil {
		*m.addtransition_seq += i
	} else {
		m.addtransition_seq = &i
	}
}

// AddedTransitionSeq returns the value that was added to the "transition_seq" field in this mutation.
func (m *OutboxActionMutation) AddedTransitionSeq() (r int, exists bool) {
	v := m.addtransition_seq
	if v == nil {
		return
	}
	return *v, true
}

// ResetTransitionSeq resets all changes to the "transition_seq" field.
func (m *OutboxActionMutation) ResetTransitionSeq() {
	m.transition_seq = nil
	m.addtransition_seq = nil
}

// SetActionType sets the "action_type" field.
func (m *OutboxActionMutation) SetActionType(ot outboxaction.ActionType) {
	m.action_type = &ot
}

// ActionType returns the value of the "action_type" field in the mutation.
func (m *OutboxActionMutation) ActionType() (r outboxaction.ActionType, exists bool) {
	v := m.action_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActionType returns the old "action_type" field's value of the OutboxAction entity.
// If the OutboxAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxActionMutation) OldActionType(ctx context.Context) (v outboxaction.ActionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionType: %w", err)
	}
	return oldValue.ActionType, nil
}

// ResetActionType resets all changes to the "action_type" field.
func (m *OutboxActionMutation) ResetActionType() {
	m.action_type = nil
}

// SetSupersessionGroup sets the "supersession_group" field.
func (m *OutboxActionMutation) SetSupersessionGroup(s string) {
	m.supersession_group = &s
}

// SupersessionGroup returns the value of the "supersession_group" field in the mutation.
func (m *OutboxActionMutation) SupersessionGroup() (r string, exists bool) {
	v := m.supersession_group
	if v == nil {
		return
	}
	return *v, true
}

// OldSupersessionGroup returns the old "supersession_group" field's value of the OutboxAction entity.
// If the OutboxAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxActionMutation) OldSupersessionGroup(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupersessionGroup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupersessionGroup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupersessionGroup: %w", err)
	}
	return oldValue.SupersessionGroup, nil
}

// ResetSupersessionGroup resets all changes to the "supersession_group" field.
func (m *OutboxActionMutation) ResetSupersessionGroup() {
	m.supersession_group = nil
}

// SetActionKey sets the "action_key" field.
func (m *OutboxActionMutation) SetActionKey(s string) {
	m.action_key = &s
}

// ActionKey returns the value of the "action_key" field in the mutation.
func (m *OutboxActionMutation) ActionKey() (r string, exists bool) {
	v := m.action_key
	if v == nil {
		return
	}
	return *v, true
}

// OldActionKey returns the old "action_key" field's value of the OutboxAction entity.
// If the OutboxAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxActionMutation) OldActionKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionKey: %w", err)
	}
	return oldValue.ActionKey, nil
}

// ResetActionKey resets all changes to the "action_key" field.
func (m *OutboxActionMutation) ResetActionKey() {
	m.action_key = nil
}

// SetPayload sets the "payload" field.
func (m *OutboxActionMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *OutboxActionMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the OutboxAction entity.
// If the OutboxAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxActionMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *OutboxActionMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[outboxaction.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *OutboxActionMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[outboxaction.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *OutboxActionMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, outboxaction.FieldPayload)
}

// SetStatus sets the "status" field.
func (m *OutboxActionMutation) SetStatus(o outboxaction.Status) {
	m.status = &o
}

// Status returns the value of the "status" field in the mutation.
func (m *OutboxActionMutation) Status() (r outboxaction.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the OutboxAction entity.
// If the OutboxAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxActionMutation) OldStatus(ctx context.Context) (v outboxaction.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *OutboxActionMutation) ResetStatus() {
	m.status = nil
}

// SetAttemptCount sets the "attempt_count" field.
func (m *OutboxActionMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *OutboxActionMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the OutboxAction entity.
// If the OutboxAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxActionMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *OutboxActionMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *OutboxActionMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *OutboxActionMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetNextRetryAt sets the "next_retry_at" field.
func (m *OutboxActionMutation) SetNextRetryAt(t time.Time) {
	m.next_retry_at = &t
}

// NextRetryAt returns the value of the "next_retry_at" field in the mutation.
func (m *OutboxActionMutation) NextRetryAt() (r time.Time, exists bool) {
	v := m.next_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRetryAt returns the old "next_retry_at" field's value of the OutboxAction entity.
// If the OutboxAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxActionMutation) OldNextRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRetryAt: %w", err)
	}
	return oldValue.NextRetryAt, nil
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (m *OutboxActionMutation) ClearNextRetryAt() {
	m.next_retry_at = nil
	m.clearedFields[outboxaction.FieldNextRetryAt] = struct{}{}
}

// NextRetryAtCleared returns if the "next_retry_at" field was cleared in this mutation.
func (m *OutboxActionMutation) NextRetryAtCleared() bool {
	_, ok := m.clearedFields[outboxaction.FieldNextRetryAt]
	return ok
}

// ResetNextRetryAt resets all changes to the "next_retry_at" field.
func (m *OutboxActionMutation) ResetNextRetryAt() {
	m.next_retry_at = nil
	delete(m.clearedFields, outboxaction.FieldNextRetryAt)
}

// SetClaimedBy sets the "claimed_by" field.
func (m *OutboxActionMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *OutboxActionMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the OutboxAction entity.
// If the OutboxAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxActionMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *OutboxActionMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[outboxaction.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *OutboxActionMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[outboxaction.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *OutboxActionMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, outboxaction.FieldClaimedBy)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *OutboxActionMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *OutboxActionMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the OutboxAction entity.
// If the OutboxAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxActionMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *OutboxActionMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[outboxaction.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *OutboxActionMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[outboxaction.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *OutboxActionMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, outboxaction.FieldClaimedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *OutboxActionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *OutboxActionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the OutboxAction entity.
// If the OutboxAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxActionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *OutboxActionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[outboxaction.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *OutboxActionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[outboxaction.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *OutboxActionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, outboxaction.FieldCompletedAt)
}

// SetLastErrorClass sets the "last_error_class" field.
func (m *OutboxActionMutation) SetLastErrorClass(s string) {
	m.last_error_class = &s
}

// LastErrorClass returns the value of the "last_error_class" field in the mutation.
func (m *OutboxActionMutation) LastErrorClass() (r string, exists bool) {
	v := m.last_error_class
	if v == nil {
		return
	}
	return *v, true
}

// OldLastErrorClass returns the old "last_error_class" field's value of the OutboxAction entity.
// If the OutboxAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxActionMutation) OldLastErrorClass(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastErrorClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastErrorClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastErrorClass: %w", err)
	}
	return oldValue.LastErrorClass, nil
}

// ClearLastErrorClass clears the value of the "last_error_class" field.
func (m *OutboxActionMutation) ClearLastErrorClass() {
	m.last_error_class = nil
	m.clearedFields[outboxaction.FieldLastErrorClass] = struct{}{}
}

// LastErrorClassCleared returns if the "last_error_class" field was cleared in this mutation.
func (m *OutboxActionMutation) LastErrorClassCleared() bool {
	_, ok := m.clearedFields[outboxaction.FieldLastErrorClass]
	return ok
}

// ResetLastErrorClass resets all changes to the "last_error_class" field.
func (m *OutboxActionMutation) ResetLastErrorClass() {
	m.last_error_class = nil
	delete(m.clearedFields, outboxaction.FieldLastErrorClass)
}

// SetLastErrorCode sets the "last_error_code" field.
func (m *OutboxActionMutation) SetLastErrorCode(s string) {
	m.last_error_code = &s
}

// LastErrorCode returns the value of the "last_error_code" field in the mutation.
func (m *OutboxActionMutation) LastErrorCode() (r string, exists bool) {
	v := m.last_error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldLastErrorCode returns the old "last_error_code" field's value of the OutboxAction entity.
// If the OutboxAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxActionMutation) OldLastErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastErrorCode: %w", err)
	}
	return oldValue.LastErrorCode, nil
}

// ClearLastErrorCode clears the value of the "last_error_code" field.
func (m *OutboxActionMutation) ClearLastErrorCode() {
	m.last_error_code = nil
	m.clearedFields[outboxaction.FieldLastErrorCode] = struct{}{}
}

// LastErrorCodeCleared returns if the "last_error_code" field was cleared in this mutation.
func (m *OutboxActionMutation) LastErrorCodeCleared() bool {
	_, ok := m.clearedFields[outboxaction.FieldLastErrorCode]
	return ok
}

// ResetLastErrorCode resets all changes to the "last_error_code" field.
func (m *OutboxActionMutation) ResetLastErrorCode() {
	m.last_error_code = nil
	delete(m.clearedFields, outboxaction.FieldLastErrorCode)
}

// SetLastErrorMessage sets the "last_error_message" field.
func (m *OutboxActionMutation) SetLastErrorMessage(s string) {
	m.last_error_message = &s
}

// LastErrorMessage returns the value of the "last_error_message" field in the mutation.
func (m *OutboxActionMutation) LastErrorMessage() (r string, exists bool) {
	v := m.last_error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldLastErrorMessage returns the old "last_error_message" field's value of the OutboxAction entity.
// If the OutboxAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxActionMutation) OldLastErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastErrorMessage: %w", err)
	}
	return oldValue.LastErrorMessage, nil
}

// ClearLastErrorMessage clears the value of the "last_error_message" field.
func (m *OutboxActionMutation) ClearLastErrorMessage() {
	m.last_error_message = nil
	m.clearedFields[outboxaction.FieldLastErrorMessage] = struct{}{}
}

// LastErrorMessageCleared returns if the "last_error_message" field was cleared in this mutation.
func (m *OutboxActionMutation) LastErrorMessageCleared() bool {
	_, ok := m.clearedFields[outboxaction.FieldLastErrorMessage]
	return ok
}

// ResetLastErrorMessage resets all changes to the "last_error_message" field.
func (m *OutboxActionMutation) ResetLastErrorMessage() {
	m.last_error_message = nil
	delete(m.clearedFields, outboxaction.FieldLastErrorMessage)
}

// SetSupersededByOutboxID sets the "superseded_by_outbox_id" field.
func (m *OutboxActionMutation) SetSupersededByOutboxID(s string) {
	m.superseded_by_outbox_id = &s
}

// SupersededByOutboxID returns the value of the "superseded_by_outbox_id" field in the mutation.
func (m *OutboxActionMutation) SupersededByOutboxID() (r string, exists bool) {
	v := m.superseded_by_outbox_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSupersededByOutboxID returns the old "superseded_by_outbox_id" field's value of the OutboxAction entity.
// If the OutboxAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxActionMutation) OldSupersededByOutboxID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupersededByOutboxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupersededByOutboxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupersededByOutboxID: %w", err)
	}
	return oldValue.SupersededByOutboxID, nil
}

// ClearSupersededByOutboxID clears the value of the "superseded_by_outbox_id" field.
func (m *OutboxActionMutation) ClearSupersededByOutboxID() {
	m.superseded_by_outbox_id = nil
	m.clearedFields[outboxaction.FieldSupersededByOutboxID] = struct{}{}
}

// SupersededByOutboxIDCleared returns if the "superseded_by_outbox_id" field was cleared in this mutation.
func (m *OutboxActionMutation) SupersededByOutboxIDCleared() bool {
	_, ok := m.clearedFields[outboxaction.FieldSupersededByOutboxID]
	return ok
}

// ResetSupersededByOutboxID resets all changes to the "superseded_by_outbox_id" field.
func (m *OutboxActionMutation) ResetSupersededByOutboxID() {
	m.superseded_by_outbox_id = nil
	delete(m.clearedFields, outboxaction.FieldSupersededByOutboxID)
}

// SetCanceledReason sets the "canceled_reason" field.
func (m *OutboxActionMutation) SetCanceledReason(s string) {
	m.canceled_reason = &s
}

// CanceledReason returns the value of the "canceled_reason" field in the mutation.
func (m *OutboxActionMutation) CanceledReason() (r string, exists bool) {
	v := m.canceled_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldCanceledReason returns the old "canceled_reason" field's value of the OutboxAction entity.
// If the OutboxAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxActionMutation) OldCanceledReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanceledReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanceledReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanceledReason: %w", err)
	}
	return oldValue.CanceledReason, nil
}

// ClearCanceledReason clears the value of the "canceled_reason" field.
func (m *OutboxActionMutation) ClearCanceledReason() {
	m.canceled_reason = nil
	m.clearedFields[outboxaction.FieldCanceledReason] = struct{}{}
}

// CanceledReasonCleared returns if the "canceled_reason" field was cleared in this mutation.
func (m *OutboxActionMutation) CanceledReasonCleared() bool {
	_, ok := m.clearedFields[outboxaction.FieldCanceledReason]
	return ok
}

// ResetCanceledReason resets all changes to the "canceled_reason" field.
func (m *OutboxActionMutation) ResetCanceledReason() {
	m.canceled_reason = nil
	delete(m.clearedFields, outboxaction.FieldCanceledReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *OutboxActionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OutboxActionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OutboxAction entity.
// If the OutboxAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxActionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OutboxActionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OutboxActionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OutboxActionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the OutboxAction entity.
// If the OutboxAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxActionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OutboxActionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearLoop clears the "loop" edge to the Loop entity.
func (m *OutboxActionMutation) ClearLoop() {
	m.clearedloop = true
	m.clearedFields[outboxaction.FieldLoopID] = struct{}{}
}

// LoopCleared reports if the "loop" edge to the Loop entity was cleared.
func (m *OutboxActionMutation) LoopCleared() bool {
	return m.clearedloop
}

// LoopIDs returns the "loop" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LoopID instead. It exists only for internal usage by the builders.
func (m *OutboxActionMutation) LoopIDs() (ids []string) {
	if id := m.loop; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLoop resets all changes to the "loop" edge.
func (m *OutboxActionMutation) ResetLoop() {
	m.loop = nil
	m.clearedloop = false
}

// AddAttemptIDs adds the "attempts" edge to the OutboxAttempt entity by ids.
func (m *OutboxActionMutation) AddAttemptIDs(ids ...string) {
	if m.attempts == nil {
		m.attempts = make(map[string]struct{})
	}
	for i := range ids {
		m.attempts[ids[i]] = struct{}{}
	}
}

// ClearAttempts clears the "attempts" edge to the OutboxAttempt entity.
func (m *OutboxActionMutation) ClearAttempts() {
	m.clearedattempts = true
}

// AttemptsCleared reports if the "attempts" edge to the OutboxAttempt entity was cleared.
func (m *OutboxActionMutation) AttemptsCleared() bool {
	return m.clearedattempts
}

// RemoveAttemptIDs removes the "attempts" edge to the OutboxAttempt entity by IDs.
func (m *OutboxActionMutation) RemoveAttemptIDs(ids ...string) {
	if m.removedattempts == nil {
		m.removedattempts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.attempts, ids[i])
		m.removedattempts[ids[i]] = struct{}{}
	}
}

// RemovedAttempts returns the removed IDs of the "attempts" edge to the OutboxAttempt entity.
func (m *OutboxActionMutation) RemovedAttemptsIDs() (ids []string) {
	for id := range m.removedattempts {
		ids = append(ids, id)
	}
	return
}

// AttemptsIDs returns the "attempts" edge IDs in the mutation.
func (m *OutboxActionMutation) AttemptsIDs() (ids []string) {
	for id := range m.attempts {
		ids = append(ids, id)
	}
	return
}

// ResetAttempts resets all changes to the "attempts" edge.
func (m *OutboxActionMutation) ResetAttempts() {
	m.attempts = nil
	m.clearedattempts = false
	m.removedattempts = nil
}

// Where appends a list predicates to the OutboxActionMutation builder.
func (m *OutboxActionMutation) Where(ps ...predicate.OutboxAction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OutboxActionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OutboxActionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OutboxAction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OutboxActionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OutboxActionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OutboxAction).
func (m *OutboxActionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OutboxActionMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.loop != nil {
		fields = append(fields, outboxaction.FieldLoopID)
	}
	if m.transition_seq != nil {
		fields = append(fields, outboxaction.FieldTransitionSeq)
	}
	if m.action_type != nil {
		fields = append(fields, outboxaction.FieldActionType)
	}
	if m.supersession_group != nil {
		fields = append(fields, outboxaction.FieldSupersessionGroup)
	}
	if m.action_key != nil {
		fields = append(fields, outboxaction.FieldActionKey)
	}
	if m.payload != nil {
		fields = append(fields, outboxaction.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, outboxaction.FieldStatus)
	}
	if m.attempt_count != nil {
		fields = append(fields, outboxaction.FieldAttemptCount)
	}
	if m.next_retry_at != nil {
		fields = append(fields, outboxaction.FieldNextRetryAt)
	}
	if m.claimed_by != nil {
		fields = append(fields, outboxaction.FieldClaimedBy)
	}
	if m.claimed_at != nil {
		fields = append(fields, outboxaction.FieldClaimedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, outboxaction.FieldCompletedAt)
	}
	if m.last_error_class != nil {
		fields = append(fields, outboxaction.FieldLastErrorClass)
	}
	if m.last_error_code != nil {
		fields = append(fields, outboxaction.FieldLastErrorCode)
	}
	if m.last_error_message != nil {
		fields = append(fields, outboxaction.FieldLastErrorMessage)
	}
	if m.superseded_by_outbox_id != nil {
		fields = append(fields, outboxaction.FieldSupersededByOutboxID)
	}
	if m.canceled_reason != nil {
		fields = append(fields, outboxaction.FieldCanceledReason)
	}
	if m.created_at != nil {
		fields = append(fields, outboxaction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, outboxaction.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OutboxActionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case outboxaction.FieldLoopID:
		return m.LoopID()
	case outboxaction.FieldTransitionSeq:
		return m.TransitionSeq()
	case outboxaction.FieldActionType:
		return m.ActionType()
	case outboxaction.FieldSupersessionGroup:
		return m.SupersessionGroup()
	case outboxaction.FieldActionKey:
		return m.ActionKey()
	case outboxaction.FieldPayload:
		return m.Payload()
	case outboxaction.FieldStatus:
		return m.Status()
	case outboxaction.FieldAttemptCount:
		return m.AttemptCount()
	case outboxaction.FieldNextRetryAt:
		return m.NextRetryAt()
	case outboxaction.FieldClaimedBy:
		return m.ClaimedBy()
	case outboxaction.FieldClaimedAt:
		return m.ClaimedAt()
	case outboxaction.FieldCompletedAt:
		return m.CompletedAt()
	case outboxaction.FieldLastErrorClass:
		return m.LastErrorClass()
	case outboxaction.FieldLastErrorCode:
		return m.LastErrorCode()
	case outboxaction.FieldLastErrorMessage:
		return m.LastErrorMessage()
	case outboxaction.FieldSupersededByOutboxID:
		return m.SupersededByOutboxID()
	case outboxaction.FieldCanceledReason:
		return m.CanceledReason()
	case outboxaction.FieldCreatedAt:
		return m.CreatedAt()
	case outboxaction.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OutboxActionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case outboxaction.FieldLoopID:
		return m.OldLoopID(ctx)
	case outboxaction.FieldTransitionSeq:
		return m.OldTransitionSeq(ctx)
	case outboxaction.FieldActionType:
		return m.OldActionType(ctx)
	case outboxaction.FieldSupersessionGroup:
		return m.OldSupersessionGroup(ctx)
	case outboxaction.FieldActionKey:
		return m.OldActionKey(ctx)
	case outboxaction.FieldPayload:
		return m.OldPayload(ctx)
	case outboxaction.FieldStatus:
		return m.OldStatus(ctx)
	case outboxaction.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case outboxaction.FieldNextRetryAt:
		return m.OldNextRetryAt(ctx)
	case outboxaction.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case outboxaction.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case outboxaction.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case outboxaction.FieldLastErrorClass:
		return m.OldLastErrorClass(ctx)
	case outboxaction.FieldLastErrorCode:
		return m.OldLastErrorCode(ctx)
	case outboxaction.FieldLastErrorMessage:
		return m.OldLastErrorMessage(ctx)
	case outboxaction.FieldSupersededByOutboxID:
		return m.OldSupersededByOutboxID(ctx)
	case outboxaction.FieldCanceledReason:
		return m.OldCanceledReason(ctx)
	case outboxaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case outboxaction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OutboxAction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutboxActionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case outboxaction.FieldLoopID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoopID(v)
		return nil
	case outboxaction.FieldTransitionSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransitionSeq(v)
		return nil
	case outboxaction.FieldActionType:
		v, ok := value.(outboxaction.ActionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionType(v)
		return nil
	case outboxaction.FieldSupersessionGroup:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupersessionGroup(v)
		return nil
	case outboxaction.FieldActionKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionKey(v)
		return nil
	case outboxaction.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case outboxaction.FieldStatus:
		v, ok := value.(outboxaction.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case outboxaction.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case outboxaction.FieldNextRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRetryAt(v)
		return nil
	case outboxaction.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case outboxaction.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case outboxaction.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case outboxaction.FieldLastErrorClass:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastErrorClass(v)
		return nil
	case outboxaction.FieldLastErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastErrorCode(v)
		return nil
	case outboxaction.FieldLastErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastErrorMessage(v)
		return nil
	case outboxaction.FieldSupersededByOutboxID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupersededByOutboxID(v)
		return nil
	case outboxaction.FieldCanceledReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanceledReason(v)
		return nil
	case outboxaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case outboxaction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OutboxAction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OutboxActionMutation) AddedFields() []string {
	var fields []string
	if m.addtransition_seq != nil {
		fields = append(fields, outboxaction.FieldTransitionSeq)
	}
	if m.addattempt_count != nil {
		fields = append(fields, outboxaction.FieldAttemptCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OutboxActionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case outboxaction.FieldTransitionSeq:
		return m.AddedTransitionSeq()
	case outboxaction.FieldAttemptCount:
		return m.AddedAttemptCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutboxActionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case outboxaction.FieldTransitionSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTransitionSeq(v)
		return nil
	case outboxaction.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	}
	return fmt.Errorf("unknown OutboxAction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OutboxActionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(outboxaction.FieldPayload) {
		fields = append(fields, outboxaction.FieldPayload)
	}
	if m.FieldCleared(outboxaction.FieldNextRetryAt) {
		fields = append(fields, outboxaction.FieldNextRetryAt)
	}
	if m.FieldCleared(outboxaction.FieldClaimedBy) {
		fields = append(fields, outboxaction.FieldClaimedBy)
	}
	if m.FieldCleared(outboxaction.FieldClaimedAt) {
		fields = append(fields, outboxaction.FieldClaimedAt)
	}
	if m.FieldCleared(outboxaction.FieldCompletedAt) {
		fields = append(fields, outboxaction.FieldCompletedAt)
	}
	if m.FieldCleared(outboxaction.FieldLastErrorClass) {
		fields = append(fields, outboxaction.FieldLastErrorClass)
	}
	if m.FieldCleared(outboxaction.FieldLastErrorCode) {
		fields = append(fields, outboxaction.FieldLastErrorCode)
	}
	if m.FieldCleared(outboxaction.FieldLastErrorMessage) {
		fields = append(fields, outboxaction.FieldLastErrorMessage)
	}
	if m.FieldCleared(outboxaction.FieldSupersededByOutboxID) {
		fields = append(fields, outboxaction.FieldSupersededByOutboxID)
	}
	if m.FieldCleared(outboxaction.FieldCanceledReason) {
		fields = append(fields, outboxaction.FieldCanceledReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OutboxActionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OutboxActionMutation) ClearField(name string) error {
	switch name {
	case outboxaction.FieldPayload:
		m.ClearPayload()
		return nil
	case outboxaction.FieldNextRetryAt:
		m.ClearNextRetryAt()
		return nil
	case outboxaction.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case outboxaction.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case outboxaction.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case outboxaction.FieldLastErrorClass:
		m.ClearLastErrorClass()
		return nil
	case outboxaction.FieldLastErrorCode:
		m.ClearLastErrorCode()
		return nil
	case outboxaction.FieldLastErrorMessage:
		m.ClearLastErrorMessage()
		return nil
	case outboxaction.FieldSupersededByOutboxID:
		m.ClearSupersededByOutboxID()
		return nil
	case outboxaction.FieldCanceledReason:
		m.ClearCanceledReason()
		return nil
	}
	return fmt.Errorf("unknown OutboxAction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OutboxActionMutation) ResetField(name string) error {
	switch name {
	case outboxaction.FieldLoopID:
		m.ResetLoopID()
		return nil
	case outboxaction.FieldTransitionSeq:
		m.ResetTransitionSeq()
		return nil
	case outboxaction.FieldActionType:
		m.ResetActionType()
		return nil
	case outboxaction.FieldSupersessionGroup:
		m.ResetSupersessionGroup()
		return nil
	case outboxaction.FieldActionKey:
		m.ResetActionKey()
		return nil
	case outboxaction.FieldPayload:
		m.ResetPayload()
		return nil
	case outboxaction.FieldStatus:
		m.ResetStatus()
		return nil
	case outboxaction.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case outboxaction.FieldNextRetryAt:
		m.ResetNextRetryAt()
		return nil
	case outboxaction.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case outboxaction.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case outboxaction.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case outboxaction.FieldLastErrorClass:
		m.ResetLastErrorClass()
		return nil
	case outboxaction.FieldLastErrorCode:
		m.ResetLastErrorCode()
		return nil
	case outboxaction.FieldLastErrorMessage:
		m.ResetLastErrorMessage()
		return nil
	case outboxaction.FieldSupersededByOutboxID:
		m.ResetSupersededByOutboxID()
		return nil
	case outboxaction.FieldCanceledReason:
		m.ResetCanceledReason()
		return nil
	case outboxaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case outboxaction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown OutboxAction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OutboxActionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.loop != nil {
		edges = append(edges, outboxaction.EdgeLoop)
	}
	if m.attempts != nil {
		edges = append(edges, outboxaction.EdgeAttempts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OutboxActionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case outboxaction.EdgeLoop:
		if id := m.loop; id != nil {
			return []ent.Value{*id}
		}
	case outboxaction.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.attempts))
		for id := range m.attempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OutboxActionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedattempts != nil {
		edges = append(edges, outboxaction.EdgeAttempts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OutboxActionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case outboxaction.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.removedattempts))
		for id := range m.removedattempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OutboxActionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedloop {
		edges = append(edges, outboxaction.EdgeLoop)
	}
	if m.clearedattempts {
		edges = append(edges, outboxaction.EdgeAttempts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OutboxActionMutation) EdgeCleared(name string) bool {
	switch name {
	case outboxaction.EdgeLoop:
		return m.clearedloop
	case outboxaction.EdgeAttempts:
		return m.clearedattempts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OutboxActionMutation) ClearEdge(name string) error {
	switch name {
	case outboxaction.EdgeLoop:
		m.ClearLoop()
		return nil
	}
	return fmt.Errorf("unknown OutboxAction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OutboxActionMutation) ResetEdge(name string) error {
	switch name {
	case outboxaction.EdgeLoop:
		m.ResetLoop()
		return nil
	case outboxaction.EdgeAttempts:
		m.ResetAttempts()
		return nil
	}
	return fmt.Errorf("unknown OutboxAction edge %s", name)
}

// OutboxAttemptMutation represents an operation that mutates the OutboxAttempt nodes in the graph.
type OutboxAttemptMutation struct {
	config
	op            Op
	typ           string
	id            *string
	attempt       *int
	addattempt    *int
	status        *outboxattempt.Status
	error_class   *string
	error_code    *string
	error_message *string
	retry_at      *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	action        *string
	clearedaction bool
	done          bool
	oldValue      func(context.Context) (*OutboxAttempt, error)
	predicates    []predicate.OutboxAttempt
}

var _ ent.Mutation = (*OutboxAttemptMutation)(nil)

// outboxattemptOption allows management of the mutation configuration using functional options.
type outboxattemptOption func(*OutboxAttemptMutation)

// newOutboxAttemptMutation creates new mutation for the OutboxAttempt entity.
func newOutboxAttemptMutation(c config, op Op, opts ...outboxattemptOption) *OutboxAttemptMutation {
	m := &OutboxAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeOutboxAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOutboxAttemptID sets the ID field of the mutation.
func withOutboxAttemptID(id string) outboxattemptOption {
	return func(m *OutboxAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *OutboxAttempt
		)
		m.oldValue = func(ctx context.Context) (*OutboxAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OutboxAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOutboxAttempt sets the old OutboxAttempt of the mutation.
func withOutboxAttempt(node *OutboxAttempt) outboxattemptOption {
	return func(m *OutboxAttemptMutation) {
		m.oldValue = func(context.Context) (*OutboxAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OutboxAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OutboxAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OutboxAttempt entities.
func (m *OutboxAttemptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OutboxAttemptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OutboxAttemptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OutboxAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOutboxID sets the "outbox_id" field.
func (m *OutboxAttemptMutation) SetOutboxID(s string) {
	m.action = &s
}

// OutboxID returns the value of the "outbox_id" field in the mutation.
func (m *OutboxAttemptMutation) OutboxID() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldOutboxID returns the old "outbox_id" field's value of the OutboxAttempt entity.
// If the OutboxAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxAttemptMutation) OldOutboxID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutboxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutboxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutboxID: %w", err)
	}
	return oldValue.OutboxID, nil
}

// ResetOutboxID resets all changes to the "outbox_id" field.
func (m *OutboxAttemptMutation) ResetOutboxID() {
	m.action = nil
}

// SetAttempt sets the "attempt" field.
func (m *OutboxAttemptMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *OutboxAttemptMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the OutboxAttempt entity.
// If the OutboxAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxAttemptMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *OutboxAttemptMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *OutboxAttemptMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *OutboxAttemptMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetStatus sets the "status" field.
func (m *OutboxAttemptMutation) SetStatus(o outboxattempt.Status) {
	m.status = &o
}

// Status returns the value of the "status" field in the mutation.
func (m *OutboxAttemptMutation) Status() (r outboxattempt.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the OutboxAttempt entity.
// If the OutboxAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxAttemptMutation) OldStatus(ctx context.Context) (v outboxattempt.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *OutboxAttemptMutation) ResetStatus() {
	m.status = nil
}

// SetErrorClass sets the "error_class" field.
func (m *OutboxAttemptMutation) SetErrorClass(s string) {
	m.error_class = &s
}

// ErrorClass returns the value of the "error_class" field in the mutation.
func (m *OutboxAttemptMutation) ErrorClass() (r string, exists bool) {
	v := m.error_class
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorClass returns the old "error_class" field's value of the OutboxAttempt entity.
// If the OutboxAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxAttemptMutation) OldErrorClass(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorClass: %w", err)
	}
	return oldValue.ErrorClass, nil
}

// ClearErrorClass clears the value of the "error_class" field.
func (m *OutboxAttemptMutation) ClearErrorClass() {
	m.error_class = nil
	m.clearedFields[outboxattempt.FieldErrorClass] = struct{}{}
}

// ErrorClassCleared returns if the "error_class" field was cleared in this mutation.
func (m *OutboxAttemptMutation) ErrorClassCleared() bool {
	_, ok := m.clearedFields[outboxattempt.FieldErrorClass]
	return ok
}

// ResetErrorClass resets all changes to the "error_class" field.
func (m *OutboxAttemptMutation) ResetErrorClass() {
	m.error_class = nil
	delete(m.clearedFields, outboxattempt.FieldErrorClass)
}

// SetErrorCode sets the "error_code" field.
func (m *OutboxAttemptMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *OutboxAttemptMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the OutboxAttempt entity.
// If the OutboxAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxAttemptMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *OutboxAttemptMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[outboxattempt.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *OutboxAttemptMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[outboxattempt.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *OutboxAttemptMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, outboxattempt.FieldErrorCode)
}

// SetErrorMessage sets the "error_message" field.
func (m *OutboxAttemptMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *OutboxAttemptMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the OutboxAttempt entity.
// If the OutboxAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxAttemptMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *OutboxAttemptMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[outboxattempt.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *OutboxAttemptMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[outboxattempt.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *OutboxAttemptMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, outboxattempt.FieldErrorMessage)
}

// SetRetryAt sets the "retry_at" field.
func (m *OutboxAttemptMutation) SetRetryAt(t time.Time) {
	m.retry_at = &t
}

// RetryAt returns the value of the "retry_at" field in the mutation.
func (m *OutboxAttemptMutation) RetryAt() (r time.Time, exists bool) {
	v := m.retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryAt returns the old "retry_at" field's value of the OutboxAttempt entity.
// If the OutboxAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxAttemptMutation) OldRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryAt: %w", err)
	}
	return oldValue.RetryAt, nil
}

// ClearRetryAt clears the value of the "retry_at" field.
func (m *OutboxAttemptMutation) ClearRetryAt() {
	m.retry_at = nil
	m.clearedFields[outboxattempt.FieldRetryAt] = struct{}{}
}

// RetryAtCleared returns if the "retry_at" field was cleared in this mutation.
func (m *OutboxAttemptMutation) RetryAtCleared() bool {
	_, ok := m.clearedFields[outboxattempt.FieldRetryAt]
	return ok
}

// ResetRetryAt resets all changes to the "retry_at" field.
func (m *OutboxAttemptMutation) ResetRetryAt() {
	m.retry_at = nil
	delete(m.clearedFields, outboxattempt.FieldRetryAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *OutboxAttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OutboxAttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OutboxAttempt entity.
// If the OutboxAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxAttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OutboxAttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetActionID sets the "action" edge to the OutboxAction entity by id.
func (m *OutboxAttemptMutation) SetActionID(id string) {
	m.action = &id
}

// ClearAction clears the "action" edge to the OutboxAction entity.
func (m *OutboxAttemptMutation) ClearAction() {
	m.clearedaction = true
	m.clearedFields[outboxattempt.FieldOutboxID] = struct{}{}
}

// ActionCleared reports if the "action" edge to the OutboxAction entity was cleared.
func (m *OutboxAttemptMutation) ActionCleared() bool {
	return m.clearedaction
}

// ActionID returns the "action" edge ID in the mutation.
func (m *OutboxAttemptMutation) ActionID() (id string, exists bool) {
	if m.action != nil {
		return *m.action, true
	}
	return
}

// ActionIDs returns the "action" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ActionID instead. It exists only for internal usage by the builders.
func (m *OutboxAttemptMutation) ActionIDs() (ids []string) {
	if id := m.action; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAction resets all changes to the "action" edge.
func (m *OutboxAttemptMutation) ResetAction() {
	m.action = nil
	m.clearedaction = false
}

// Where appends a list predicates to the OutboxAttemptMutation builder.
func (m *OutboxAttemptMutation) Where(ps ...predicate.OutboxAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OutboxAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OutboxAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OutboxAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OutboxAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OutboxAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OutboxAttempt).
func (m *OutboxAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OutboxAttemptMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.action != nil {
		fields = append(fields, outboxattempt.FieldOutboxID)
	}
	if m.attempt != nil {
		fields = append(fields, outboxattempt.FieldAttempt)
	}
	if m.status != nil {
		fields = append(fields, outboxattempt.FieldStatus)
	}
	if m.error_class != nil {
		fields = append(fields, outboxattempt.FieldErrorClass)
	}
	if m.error_code != nil {
		fields = append(fields, outboxattempt.FieldErrorCode)
	}
	if m.error_message != nil {
		fields = append(fields, outboxattempt.FieldErrorMessage)
	}
	if m.retry_at != nil {
		fields = append(fields, outboxattempt.FieldRetryAt)
	}
	if m.created_at != nil {
		fields = append(fields, outboxattempt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OutboxAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case outboxattempt.FieldOutboxID:
		return m.OutboxID()
	case outboxattempt.FieldAttempt:
		return m.Attempt()
	case outboxattempt.FieldStatus:
		return m.Status()
	case outboxattempt.FieldErrorClass:
		return m.ErrorClass()
	case outboxattempt.FieldErrorCode:
		return m.ErrorCode()
	case outboxattempt.FieldErrorMessage:
		return m.ErrorMessage()
	case outboxattempt.FieldRetryAt:
		return m.RetryAt()
	case outboxattempt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OutboxAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case outboxattempt.FieldOutboxID:
		return m.OldOutboxID(ctx)
	case outboxattempt.FieldAttempt:
		return m.OldAttempt(ctx)
	case outboxattempt.FieldStatus:
		return m.OldStatus(ctx)
	case outboxattempt.FieldErrorClass:
		return m.OldErrorClass(ctx)
	case outboxattempt.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case outboxattempt.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case outboxattempt.FieldRetryAt:
		return m.OldRetryAt(ctx)
	case outboxattempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OutboxAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutboxAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case outboxattempt.FieldOutboxID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutboxID(v)
		return nil
	case outboxattempt.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case outboxattempt.FieldStatus:
		v, ok := value.(outboxattempt.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case outboxattempt.FieldErrorClass:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorClass(v)
		return nil
	case outboxattempt.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case outboxattempt.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case outboxattempt.FieldRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryAt(v)
		return nil
	case outboxattempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OutboxAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OutboxAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, outboxattempt.FieldAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OutboxAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case outboxattempt.FieldAttempt:
		return m.AddedAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutboxAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case outboxattempt.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown OutboxAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OutboxAttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(outboxattempt.FieldErrorClass) {
		fields = append(fields, outboxattempt.FieldErrorClass)
	}
	if m.FieldCleared(outboxattempt.FieldErrorCode) {
		fields = append(fields, outboxattempt.FieldErrorCode)
	}
	if m.FieldCleared(outboxattempt.FieldErrorMessage) {
		fields = append(fields, outboxattempt.FieldErrorMessage)
	}
	if m.FieldCleared(outboxattempt.FieldRetryAt) {
		fields = append(fields, outboxattempt.FieldRetryAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OutboxAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OutboxAttemptMutation) ClearField(name string) error {
	switch name {
	case outboxattempt.FieldErrorClass:
		m.ClearErrorClass()
		return nil
	case outboxattempt.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case outboxattempt.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case outboxattempt.FieldRetryAt:
		m.ClearRetryAt()
		return nil
	}
	return fmt.Errorf("unknown OutboxAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OutboxAttemptMutation) ResetField(name string) error {
	switch name {
	case outboxattempt.FieldOutboxID:
		m.ResetOutboxID()
		return nil
	case outboxattempt.FieldAttempt:
		m.ResetAttempt()
		return nil
	case outboxattempt.FieldStatus:
		m.ResetStatus()
		return nil
	case outboxattempt.FieldErrorClass:
		m.ResetErrorClass()
		return nil
	case outboxattempt.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case outboxattempt.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case outboxattempt.FieldRetryAt:
		m.ResetRetryAt()
		return nil
	case outboxattempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown OutboxAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OutboxAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.action != nil {
		edges = append(edges, outboxattempt.EdgeAction)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OutboxAttemptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case outboxattempt.EdgeAction:
		if id := m.action; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OutboxAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OutboxAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OutboxAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaction {
		edges = append(edges, outboxattempt.EdgeAction)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OutboxAttemptMutation) EdgeCleared(name string) bool {
	switch name {
	case outboxattempt.EdgeAction:
		return m.clearedaction
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OutboxAttemptMutation) ClearEdge(name string) error {
	switch name {
	case outboxattempt.EdgeAction:
		m.ClearAction()
		return nil
	}
	return fmt.Errorf("unknown OutboxAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OutboxAttemptMutation) ResetEdge(name string) error {
	switch name {
	case outboxattempt.EdgeAction:
		m.ResetAction()
		return nil
	}
	return fmt.Errorf("unknown OutboxAttempt edge %s", name)
}

// ParitySampleMutation represents an operation that mutates the ParitySample nodes in the graph.
type ParitySampleMutation struct {
	config
	op            Op
	typ           string
	id            *string
	cause_type    *string
	target_class  *string
	matched       *bool
	eligible      *bool
	observed_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ParitySample, error)
	predicates    []predicate.ParitySample
}

var _ ent.Mutation = (*ParitySampleMutation)(nil)

// paritysampleOption allows management of the mutation configuration using functional options.
type paritysampleOption func(*ParitySampleMutation)

// newParitySampleMutation creates new mutation for the ParitySample entity.
func newParitySampleMutation(c config, op Op, opts ...paritysampleOption) *ParitySampleMutation {
	m := &ParitySampleMutation{
		config:        c,
		op:            op,
		typ:           TypeParitySample,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParitySampleID sets the ID field of the mutation.
func withParitySampleID(id string) paritysampleOption {
	return func(m *ParitySampleMutation) {
		var (
			err   error
			once  sync.Once
			value *ParitySample
		)
		m.oldValue = func(ctx context.Context) (*ParitySample, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ParitySample.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParitySample sets the old ParitySample of the mutation.
func withParitySample(node *ParitySample) paritysampleOption {
	return func(m *ParitySampleMutation) {
		m.oldValue = func(context.Context) (*ParitySample, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParitySampleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParitySampleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ParitySample entities.
func (m *ParitySampleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParitySampleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParitySampleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ParitySample.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCauseType sets the "cause_type" field.
func (m *ParitySampleMutation) SetCauseType(s string) {
	m.cause_type = &s
}

// CauseType returns the value of the "cause_type" field in the mutation.
func (m *ParitySampleMutation) CauseType() (r string, exists bool) {
	v := m.cause_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCauseType returns the old "cause_type" field's value of the ParitySample entity.
// If the ParitySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParitySampleMutation) OldCauseType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCauseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCauseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCauseType: %w", err)
	}
	return oldValue.CauseType, nil
}

// ResetCauseType resets all changes to the "cause_type" field.
func (m *ParitySampleMutation) ResetCauseType() {
	m.cause_type = nil
}

// SetTargetClass sets the "target_class" field.
func (m *ParitySampleMutation) SetTargetClass(s string) {
	m.target_class = &s
}

// TargetClass returns the value of the "target_class" field in the mutation.
func (m *ParitySampleMutation) TargetClass() (r string, exists bool) {
	v := m.target_class
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetClass returns the old "target_class" field's value of the ParitySample entity.
// If the ParitySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParitySampleMutation) OldTargetClass(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetClass: %w", err)
	}
	return oldValue.TargetClass, nil
}

// ResetTargetClass resets all changes to the "target_class" field.
func (m *ParitySampleMutation) ResetTargetClass() {
	m.target_class = nil
}

// SetMatched sets the "matched" field.
func (m *ParitySampleMutation) SetMatched(b bool) {
	m.matched = &b
}

// Matched returns the value of the "matched" field in the mutation.
func (m *ParitySampleMutation) Matched() (r bool, exists bool) {
	v := m.matched
	if v == nil {
		return
	}
	return *v, true
}

// OldMatched returns the old "matched" field's value of the ParitySample entity.
// If the ParitySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParitySampleMutation) OldMatched(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatched is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatched requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatched: %w", err)
	}
	return oldValue.Matched, nil
}

// ResetMatched resets all changes to the "matched" field.
func (m *ParitySampleMutation) ResetMatched() {
	m.matched = nil
}

// SetEligible sets the "eligible" field.
func (m *ParitySampleMutation) SetEligible(b bool) {
	m.eligible = &b
}

// Eligible returns the value of the "eligible" field in the mutation.
func (m *ParitySampleMutation) Eligible() (r bool, exists bool) {
	v := m.eligible
	if v == nil {
		return
	}
	return *v, true
}

// OldEligible returns the old "eligible" field's value of the ParitySample entity.
// If the ParitySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParitySampleMutation) OldEligible(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEligible is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEligible requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEligible: %w", err)
	}
	return oldValue.Eligible, nil
}

// ResetEligible resets all changes to the "eligible" field.
func (m *ParitySampleMutation) ResetEligible() {
	m.eligible = nil
}

// SetObservedAt sets the "observed_at" field.
func (m *ParitySampleMutation) SetObservedAt(t time.Time) {
	m.observed_at = &t
}

// ObservedAt returns the value of the "observed_at" field in the mutation.
func (m *ParitySampleMutation) ObservedAt() (r time.Time, exists bool) {
	v := m.observed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldObservedAt returns the old "observed_at" field's value of the ParitySample entity.
// If the ParitySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParitySampleMutation) OldObservedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservedAt: %w", err)
	}
	return oldValue.ObservedAt, nil
}

// ResetObservedAt resets all changes to the "observed_at" field.
func (m *ParitySampleMutation) ResetObservedAt() {
	m.observed_at = nil
}

// Where appends a list predicates to the ParitySampleMutation builder.
func (m *ParitySampleMutation) Where(ps ...predicate.ParitySample) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParitySampleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParitySampleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ParitySample, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParitySampleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParitySampleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ParitySample).
func (m *ParitySampleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParitySampleMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.cause_type != nil {
		fields = append(fields, paritysample.FieldCauseType)
	}
	if m.target_class != nil {
		fields = append(fields, paritysample.FieldTargetClass)
	}
	if m.matched != nil {
		fields = append(fields, paritysample.FieldMatched)
	}
	if m.eligible != nil {
		fields = append(fields, paritysample.FieldEligible)
	}
	if m.observed_at != nil {
		fields = append(fields, paritysample.FieldObservedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParitySampleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paritysample.FieldCauseType:
		return m.CauseType()
	case paritysample.FieldTargetClass:
		return m.TargetClass()
	case paritysample.FieldMatched:
		return m.Matched()
	case paritysample.FieldEligible:
		return m.Eligible()
	case paritysample.FieldObservedAt:
		return m.ObservedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParitySampleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paritysample.FieldCauseType:
		return m.OldCauseType(ctx)
	case paritysample.FieldTargetClass:
		return m.OldTargetClass(ctx)
	case paritysample.FieldMatched:
		return m.OldMatched(ctx)
	case paritysample.FieldEligible:
		return m.OldEligible(ctx)
	case paritysample.FieldObservedAt:
		return m.OldObservedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ParitySample field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParitySampleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paritysample.FieldCauseType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCauseType(v)
		return nil
	case paritysample.FieldTargetClass:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetClass(v)
		return nil
	case paritysample.FieldMatched:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatched(v)
		return nil
	case paritysample.FieldEligible:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEligible(v)
		return nil
	case paritysample.FieldObservedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ParitySample field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParitySampleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParitySampleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParitySampleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ParitySample numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParitySampleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParitySampleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParitySampleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ParitySample nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParitySampleMutation) ResetField(name string) error {
	switch name {
	case paritysample.FieldCauseType:
		m.ResetCauseType()
		return nil
	case paritysample.FieldTargetClass:
		m.ResetTargetClass()
		return nil
	case paritysample.FieldMatched:
		m.ResetMatched()
		return nil
	case paritysample.FieldEligible:
		m.ResetEligible()
		return nil
	case paritysample.FieldObservedAt:
		m.ResetObservedAt()
		return nil
	}
	return fmt.Errorf("unknown ParitySample field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParitySampleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParitySampleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParitySampleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParitySampleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParitySampleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParitySampleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParitySampleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ParitySample unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParitySampleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ParitySample edge %s", name)
}

// PhaseArtifactMutation represents an operation that mutates the PhaseArtifact nodes in the graph.
type PhaseArtifactMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	phase               *phaseartifact.Phase
	artifact_type       *string
	head_sha            *string
	loop_version        *int
	addloop_version     *int
	status              *phaseartifact.Status
	generated_by        *string
	payload             *map[string]interface{}
	approved_by_user_id *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	loop                *string
	clearedloop         bool
	tasks               map[string]struct{}
	removedtasks        map[string]struct{}
	clearedtasks        bool
	done                bool
	oldValue            func(context.Context) (*PhaseArtifact, error)
	predicates          []predicate.PhaseArtifact
}

var _ ent.Mutation = (*PhaseArtifactMutation)(nil)

// phaseartifactOption allows management of the mutation configuration using functional options.
type phaseartifactOption func(*PhaseArtifactMutation)

// newPhaseArtifactMutation creates new mutation for the PhaseArtifact entity.
func newPhaseArtifactMutation(c config, op Op, opts ...phaseartifactOption) *PhaseArtifactMutation {
	m := &PhaseArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypePhaseArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPhaseArtifactID sets the ID field of the mutation.
func withPhaseArtifactID(id string) phaseartifactOption {
	return func(m *PhaseArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *PhaseArtifact
		)
		m.oldValue = func(ctx context.Context) (*PhaseArtifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PhaseArtifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPhaseArtifact sets the old PhaseArtifact of the mutation.
func withPhaseArtifact(node *PhaseArtifact) phaseartifactOption {
	return func(m *PhaseArtifactMutation) {
		m.oldValue = func(context.Context) (*PhaseArtifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PhaseArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PhaseArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PhaseArtifact entities.
func (m *PhaseArtifactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PhaseArtifactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PhaseArtifactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PhaseArtifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLoopID sets the "loop_id" field.
func (m *PhaseArtifactMutation) SetLoopID(s string) {
	m.loop = &s
}

// LoopID returns the value of the "loop_id" field in the mutation.
func (m *PhaseArtifactMutation) LoopID() (r string, exists bool) {
	v := m.loop
	if v == nil {
		return
	}
	return *v, true
}

// OldLoopID returns the old "loop_id" field's value of the PhaseArtifact entity.
// If the PhaseArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseArtifactMutation) OldLoopID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoopID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoopID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoopID: %w", err)
	}
	return oldValue.LoopID, nil
}

// ResetLoopID resets all changes to the "loop_id" field.
func (m *PhaseArtifactMutation) ResetLoopID() {
	m.loop = nil
}

// SetPhase sets the "phase" field.
func (m *PhaseArtifactMutation) SetPhase(ph phaseartifact.Phase) {
	m.phase = &ph
}

// Phase returns the value of the "phase" field in the mutation.
func (m *PhaseArtifactMutation) Phase() (r phaseartifact.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the PhaseArtifact entity.
// If the PhaseArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseArtifactMutation) OldPhase(ctx context.Context) (v phaseartifact.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *PhaseArtifactMutation) ResetPhase() {
	m.phase = nil
}

// SetArtifactType sets the "artifact_type" field.
func (m *PhaseArtifactMutation) SetArtifactType(s string) {
	m.artifact_type = &s
}

// ArtifactType returns the value of the "artifact_type" field in the mutation.
func (m *PhaseArtifactMutation) ArtifactType() (r string, exists bool) {
	v := m.artifact_type
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifactType returns the old "artifact_type" field's value of the PhaseArtifact entity.
// If the PhaseArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseArtifactMutation) OldArtifactType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifactType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifactType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifactType: %w", err)
	}
	return oldValue.ArtifactType, nil
}

// ResetArtifactType resets all changes to the "artifact_type" field.
func (m *PhaseArtifactMutation) ResetArtifactType() {
	m.artifact_type = nil
}

// SetHeadSha sets the "head_sha" field.
func (m *PhaseArtifactMutation) SetHeadSha(s string) {
	m.head_sha = &s
}

// HeadSha returns the value of the "head_sha" field in the mutation.
func (m *PhaseArtifactMutation) HeadSha() (r string, exists bool) {
	v := m.head_sha
	if v == nil {
		return
	}
	return *v, true
}

// OldHeadSha returns the old "head_sha" field's value of the PhaseArtifact entity.
// If the PhaseArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseArtifactMutation) OldHeadSha(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeadSha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeadSha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeadSha: %w", err)
	}
	return oldValue.HeadSha, nil
}

// ClearHeadSha clears the value of the "head_sha" field.
func (m *PhaseArtifactMutation) ClearHeadSha() {
	m.head_sha = nil
	m.clearedFields[phaseartifact.FieldHeadSha] = struct{}{}
}

// HeadShaCleared returns if the "head_sha" field was cleared in this mutation.
func (m *PhaseArtifactMutation) HeadShaCleared() bool {
	_, ok := m.clearedFields[phaseartifact.FieldHeadSha]
	return ok
}

// ResetHeadSha resets all changes to the "head_sha" field.
func (m *PhaseArtifactMutation) ResetHeadSha() {
	m.head_sha = nil
	delete(m.clearedFields, phaseartifact.FieldHeadSha)
}

// SetLoopVersion sets the "loop_version" field.
func (m *PhaseArtifactMutation) SetLoopVersion(i int) {
	m.loop_version = &i
	m.addloop_version = nil
}

// LoopVersion returns the value of the "loop_version" field in the mutation.
func (m *PhaseArtifactMutation) LoopVersion() (r int, exists bool) {
	v := m.loop_version
	if v == nil {
		return
	}
	return *v, true
}

// OldLoopVersion returns the old "loop_version" field's value of the PhaseArtifact entity.
// If the PhaseArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseArtifactMutation) OldLoopVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoopVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoopVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoopVersion: %w", err)
	}
	return oldValue.LoopVersion, nil
}

// AddLoopVersion adds i to the "loop_version" field.
func (m *PhaseArtifactMutation) AddLoopVersion(i int) {
	if m.addloop_version != nil {
		*m.addloop_version += i
	} else {
		m.addloop_version = &i
	}
}

// AddedLoopVersion returns the value that was added to the "loop_version" field in this mutation.
func (m *PhaseArtifactMutation) AddedLoopVersion() (r int, exists bool) {
	v := m.addloop_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetLoopVersion resets all changes to the "loop_version" field.
func (m *PhaseArtifactMutation) ResetLoopVersion() {
	m.loop_version = nil
	m.addloop_version = nil
}

// SetStatus sets the "status" field.
func (m *PhaseArtifactMutation) SetStatus(ph phaseartifact.Status) {
	m.status = &ph
}

// Status returns the value of the "status" field in the mutation.
func (m *PhaseArtifactMutation) Status() (r phaseartifact.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PhaseArtifact entity.
// If the PhaseArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseArtifactMutation) OldStatus(ctx context.Context) (v phaseartifact.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PhaseArtifactMutation) ResetStatus() {
	m.status = nil
}

// SetGeneratedBy sets the "generated_by" field.
func (m *PhaseArtifactMutation) SetGeneratedBy(s string) {
	m.generated_by = &s
}

// GeneratedBy returns the value of the "generated_by" field in the mutation.
func (m *PhaseArtifactMutation) GeneratedBy() (r string, exists bool) {
	v := m.generated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedBy returns the old "generated_by" field's value of the PhaseArtifact entity.
// If the PhaseArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseArtifactMutation) OldGeneratedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedBy: %w", err)
	}
	return oldValue.GeneratedBy, nil
}

// ResetGeneratedBy resets all changes to the "generated_by" field.
func (m *PhaseArtifactMutation) ResetGeneratedBy() {
	m.generated_by = nil
}

// SetPayload sets the "payload" field.
func (m *PhaseArtifactMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *PhaseArtifactMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the PhaseArtifact entity.
// If the PhaseArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseArtifactMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *PhaseArtifactMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[phaseartifact.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *PhaseArtifactMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[phaseartifact.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *PhaseArtifactMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, phaseartifact.FieldPayload)
}

// SetApprovedByUserID sets the "approved_by_user_id" field.
func (m *PhaseArtifactMutation) SetApprovedByUserID(s string) {
	m.approved_by_user_id = &s
}

// ApprovedByUserID returns the value of the "approved_by_user_id" field in the mutation.
func (m *PhaseArtifactMutation) ApprovedByUserID() (r string, exists bool) {
	v := m.approved_by_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedByUserID returns the old "approved_by_user_id" field's value of the PhaseArtifact entity.
// If the PhaseArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseArtifactMutation) OldApprovedByUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedByUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedByUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedByUserID: %w", err)
	}
	return oldValue.ApprovedByUserID, nil
}

// ClearApprovedByUserID clears the value of the "approved_by_user_id" field.
func (m *PhaseArtifactMutation) ClearApprovedByUserID() {
	m.approved_by_user_id = nil
	m.clearedFields[phaseartifact.FieldApprovedByUserID] = struct{}{}
}

// ApprovedByUserIDCleared returns if the "approved_by_user_id" field was cleared in this mutation.
func (m *PhaseArtifactMutation) ApprovedByUserIDCleared() bool {
	_, ok := m.clearedFields[phaseartifact.FieldApprovedByUserID]
	return ok
}

// ResetApprovedByUserID resets all changes to the "approved_by_user_id" field.
func (m *PhaseArtifactMutation) ResetApprovedByUserID() {
	m.approved_by_user_id = nil
	delete(m.clearedFields, phaseartifact.FieldApprovedByUserID)
}

// SetCreatedAt sets the "created_at" field.
func (m *PhaseArtifactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PhaseArtifactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PhaseArtifact entity.
// If the PhaseArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseArtifactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PhaseArtifactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PhaseArtifactMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PhaseArtifactMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PhaseArtifact entity.
// If the PhaseArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseArtifactMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PhaseArtifactMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearLoop clears the "loop" edge to the Loop entity.
func (m *PhaseArtifactMutation) ClearLoop() {
	m.clearedloop = true
	m.clearedFields[phaseartifact.FieldLoopID] = struct{}{}
}

// LoopCleared reports if the "loop" edge to the Loop entity was cleared.
func (m *PhaseArtifactMutation) LoopCleared() bool {
	return m.clearedloop
}

// LoopIDs returns the "loop" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LoopID instead. It exists only for internal usage by the builders.
func (m *PhaseArtifactMutation) LoopIDs() (ids []string) {
	if id := m.loop; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLoop resets all changes to the "loop" edge.
func (m *PhaseArtifactMutation) ResetLoop() {
	m.loop = nil
	m.clearedloop = false
}

// AddTaskIDs adds the "tasks" edge to the PlanTask entity by ids.
func (m *PhaseArtifactMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the PlanTask entity.
func (m *PhaseArtifactMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the PlanTask entity was cleared.
func (m *PhaseArtifactMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the PlanTask entity by IDs.
func (m *PhaseArtifactMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the PlanTask entity.
func (m *PhaseArtifactMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *PhaseArtifactMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *PhaseArtifactMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the PhaseArtifactMutation builder.
func (m *PhaseArtifactMutation) Where(ps ...predicate.PhaseArtifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PhaseArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PhaseArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PhaseArtifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PhaseArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PhaseArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PhaseArtifact).
func (m *PhaseArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PhaseArtifactMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.loop != nil {
		fields = append(fields, phaseartifact.FieldLoopID)
	}
	if m.phase != nil {
		fields = append(fields, phaseartifact.FieldPhase)
	}
	if m.artifact_type != nil {
		fields = append(fields, phaseartifact.FieldArtifactType)
	}
	if m.head_sha != nil {
		fields = append(fields, phaseartifact.FieldHeadSha)
	}
	if m.loop_version != nil {
		fields = append(fields, phaseartifact.FieldLoopVersion)
	}
	if m.status != nil {
		fields = append(fields, phaseartifact.FieldStatus)
	}
	if m.generated_by != nil {
		fields = append(fields, phaseartifact.FieldGeneratedBy)
	}
	if m.payload != nil {
		fields = append(fields, phaseartifact.FieldPayload)
	}
	if m.approved_by_user_id != nil {
		fields = append(fields, phaseartifact.FieldApprovedByUserID)
	}
	if m.created_at != nil {
		fields = append(fields, phaseartifact.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, phaseartifact.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PhaseArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case phaseartifact.FieldLoopID:
		return m.LoopID()
	case phaseartifact.FieldPhase:
		return m.Phase()
	case phaseartifact.FieldArtifactType:
		return m.ArtifactType()
	case phaseartifact.FieldHeadSha:
		return m.HeadSha()
	case phaseartifact.FieldLoopVersion:
		return m.LoopVersion()
	case phaseartifact.FieldStatus:
		return m.Status()
	case phaseartifact.FieldGeneratedBy:
		return m.GeneratedBy()
	case phaseartifact.FieldPayload:
		return m.Payload()
	case phaseartifact.FieldApprovedByUserID:
		return m.ApprovedByUserID()
	case phaseartifact.FieldCreatedAt:
		return m.CreatedAt()
	case phaseartifact.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PhaseArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case phaseartifact.FieldLoopID:
		return m.OldLoopID(ctx)
	case phaseartifact.FieldPhase:
		return m.OldPhase(ctx)
	case phaseartifact.FieldArtifactType:
		return m.OldArtifactType(ctx)
	case phaseartifact.FieldHeadSha:
		return m.OldHeadSha(ctx)
	case phaseartifact.FieldLoopVersion:
		return m.OldLoopVersion(ctx)
	case phaseartifact.FieldStatus:
		return m.OldStatus(ctx)
	case phaseartifact.FieldGeneratedBy:
		return m.OldGeneratedBy(ctx)
	case phaseartifact.FieldPayload:
		return m.OldPayload(ctx)
	case phaseartifact.FieldApprovedByUserID:
		return m.OldApprovedByUserID(ctx)
	case phaseartifact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case phaseartifact.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PhaseArtifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhaseArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case phaseartifact.FieldLoopID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoopID(v)
		return nil
	case phaseartifact.FieldPhase:
		v, ok := value.(phaseartifact.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case phaseartifact.FieldArtifactType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifactType(v)
		return nil
	case phaseartifact.FieldHeadSha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeadSha(v)
		return nil
	case phaseartifact.FieldLoopVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoopVersion(v)
		return nil
	case phaseartifact.FieldStatus:
		v, ok := value.(phaseartifact.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case phaseartifact.FieldGeneratedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedBy(v)
		return nil
	case phaseartifact.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case phaseartifact.FieldApprovedByUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedByUserID(v)
		return nil
	case phaseartifact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case phaseartifact.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PhaseArtifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PhaseArtifactMutation) AddedFields() []string {
	var fields []string
	if m.addloop_version != nil {
		fields = append(fields, phaseartifact.FieldLoopVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PhaseArtifactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case phaseartifact.FieldLoopVersion:
		return m.AddedLoopVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhaseArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case phaseartifact.FieldLoopVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLoopVersion(v)
		return nil
	}
	return fmt.Errorf("unknown PhaseArtifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PhaseArtifactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(phaseartifact.FieldHeadSha) {
		fields = append(fields, phaseartifact.FieldHeadSha)
	}
	if m.FieldCleared(phaseartifact.FieldPayload) {
		fields = append(fields, phaseartifact.FieldPayload)
	}
	if m.FieldCleared(phaseartifact.FieldApprovedByUserID) {
		fields = append(fields, phaseartifact.FieldApprovedByUserID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PhaseArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PhaseArtifactMutation) ClearField(name string) error {
	switch name {
	case phaseartifact.FieldHeadSha:
		m.ClearHeadSha()
		return nil
	case phaseartifact.FieldPayload:
		m.ClearPayload()
		return nil
	case phaseartifact.FieldApprovedByUserID:
		m.ClearApprovedByUserID()
		return nil
	}
	return fmt.Errorf("unknown PhaseArtifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PhaseArtifactMutation) ResetField(name string) error {
	switch name {
	case phaseartifact.FieldLoopID:
		m.ResetLoopID()
		return nil
	case phaseartifact.FieldPhase:
		m.ResetPhase()
		return nil
	case phaseartifact.FieldArtifactType:
		m.ResetArtifactType()
		return nil
	case phaseartifact.FieldHeadSha:
		m.ResetHeadSha()
		return nil
	case phaseartifact.FieldLoopVersion:
		m.ResetLoopVersion()
		return nil
	case phaseartifact.FieldStatus:
		m.ResetStatus()
		return nil
	case phaseartifact.FieldGeneratedBy:
		m.ResetGeneratedBy()
		return nil
	case phaseartifact.FieldPayload:
		m.ResetPayload()
		return nil
	case phaseartifact.FieldApprovedByUserID:
		m.ResetApprovedByUserID()
		return nil
	case phaseartifact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case phaseartifact.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PhaseArtifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PhaseArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.loop != nil {
		edges = append(edges, phaseartifact.EdgeLoop)
	}
	if m.tasks != nil {
		edges = append(edges, phaseartifact.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PhaseArtifactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case phaseartifact.EdgeLoop:
		if id := m.loop; id != nil {
			return []ent.Value{*id}
		}
	case phaseartifact.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PhaseArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtasks != nil {
		edges = append(edges, phaseartifact.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PhaseArtifactMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case phaseartifact.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PhaseArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedloop {
		edges = append(edges, phaseartifact.EdgeLoop)
	}
	if m.clearedtasks {
		edges = append(edges, phaseartifact.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PhaseArtifactMutation) EdgeCleared(name string) bool {
	switch name {
	case phaseartifact.EdgeLoop:
		return m.clearedloop
	case phaseartifact.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PhaseArtifactMutation) ClearEdge(name string) error {
	switch name {
	case phaseartifact.EdgeLoop:
		m.ClearLoop()
		return nil
	}
	return fmt.Errorf("unknown PhaseArtifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PhaseArtifactMutation) ResetEdge(name string) error {
	switch name {
	case phaseartifact.EdgeLoop:
		m.ResetLoop()
		return nil
	case phaseartifact.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown PhaseArtifact edge %s", name)
}

// PlanTaskMutation represents an operation that mutates the PlanTask nodes in the graph.
type PlanTaskMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	stable_task_id            *string
	title                     *string
	description               *string
	acceptance_criteria       *[]string
	appendacceptance_criteria []string
	status                    *plantask.Status
	completed_at              *time.Time
	completed_by              *plantask.CompletedBy
	completion_evidence       *map[string]interface{}
	created_at                *time.Time
	clearedFields             map[string]struct{}
	artifact                  *string
	clearedartifact           bool
	done                      bool
	oldValue                  func(context.Context) (*PlanTask, error)
	predicates                []predicate.PlanTask
}

var _ ent.Mutation = (*PlanTaskMutation)(nil)

// plantaskOption allows management of the mutation configuration using functional options.
type plantaskOption func(*PlanTaskMutation)

// newPlanTaskMutation creates new mutation for the PlanTask entity.
func newPlanTaskMutation(c config, op Op, opts ...plantaskOption) *PlanTaskMutation {
	m := &PlanTaskMutation{
		config:        c,
		op:            op,
		typ:           TypePlanTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlanTaskID sets the ID field of the mutation.
func withPlanTaskID(id string) plantaskOption {
	return func(m *PlanTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *PlanTask
		)
		m.oldValue = func(ctx context.Context) (*PlanTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PlanTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlanTask sets the old PlanTask of the mutation.
func withPlanTask(node *PlanTask) plantaskOption {
	return func(m *PlanTaskMutation) {
		m.oldValue = func(context.Context) (*PlanTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlanTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlanTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PlanTask entities.
func (m *PlanTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlanTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlanTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PlanTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetArtifactID sets the "artifact_id" field.
func (m *PlanTaskMutation) SetArtifactID(s string) {
	m.artifact = &s
}

// ArtifactID returns the value of the "artifact_id" field in the mutation.
func (m *PlanTaskMutation) ArtifactID() (r string, exists bool) {
	v := m.artifact
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifactID returns the old "artifact_id" field's value of the PlanTask entity.
// If the PlanTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanTaskMutation) OldArtifactID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifactID: %w", err)
	}
	return oldValue.ArtifactID, nil
}

// ResetArtifactID resets all changes to the "artifact_id" field.
func (m *PlanTaskMutation) ResetArtifactID() {
	m.artifact = nil
}

// SetStableTaskID sets the "stable_task_id" field.
func (m *PlanTaskMutation) SetStableTaskID(s string) {
	m.stable_task_id = &s
}

// StableTaskID returns the value of the "stable_task_id" field in the mutation.
func (m *PlanTaskMutation) StableTaskID() (r string, exists bool) {
	v := m.stable_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStableTaskID returns the old "stable_task_id" field's value of the PlanTask entity.
// If the PlanTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanTaskMutation) OldStableTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStableTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStableTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStableTaskID: %w", err)
	}
	return oldValue.StableTaskID, nil
}

// ResetStableTaskID resets all changes to the "stable_task_id" field.
func (m *PlanTaskMutation) ResetStableTaskID() {
	m.stable_task_id = nil
}

// SetTitle sets the "title" field.
func (m *PlanTaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *PlanTaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the PlanTask entity.
// If the PlanTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanTaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *PlanTaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *PlanTaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PlanTaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the PlanTask entity.
// If the PlanTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanTaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PlanTaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[plantask.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PlanTaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[plantask.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PlanTaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, plantask.FieldDescription)
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (m *PlanTaskMutation) SetAcceptanceCriteria(s []string) {
	m.acceptance_criteria = &s
	m.appendacceptance_criteria = nil
}

// AcceptanceCriteria returns the value of the "acceptance_criteria" field in the mutation.
func (m *PlanTaskMutation) AcceptanceCriteria() (r []string, exists bool) {
	v := m.acceptance_criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldAcceptanceCriteria returns the old "acceptance_criteria" field's value of the PlanTask entity.
// If the PlanTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanTaskMutation) OldAcceptanceCriteria(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcceptanceCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcceptanceCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcceptanceCriteria: %w", err)
	}
	return oldValue.AcceptanceCriteria, nil
}

// AppendAcceptanceCriteria adds s to the "acceptance_criteria" field.
func (m *PlanTaskMutation) AppendAcceptanceCriteria(s []string) {
	m.appendacceptance_criteria = append(m.appendacceptance_criteria, s...)
}

// AppendedAcceptanceCriteria returns the list of values that were appended to the "acceptance_criteria" field in this mutation.
func (m *PlanTaskMutation) AppendedAcceptanceCriteria() ([]string, bool) {
	if len(m.appendacceptance_criteria) == 0 {
		return nil, false
	}
	return m.appendacceptance_criteria, true
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (m *PlanTaskMutation) ClearAcceptanceCriteria() {
	m.acceptance_criteria = nil
	m.appendacceptance_criteria = nil
	m.clearedFields[plantask.FieldAcceptanceCriteria] = struct{}{}
}

// AcceptanceCriteriaCleared returns if the "acceptance_criteria" field was cleared in this mutation.
func (m *PlanTaskMutation) AcceptanceCriteriaCleared() bool {
	_, ok := m.clearedFields[plantask.FieldAcceptanceCriteria]
	return ok
}

// ResetAcceptanceCriteria resets all changes to the "acceptance_criteria" field.
func (m *PlanTaskMutation) ResetAcceptanceCriteria() {
	m.acceptance_criteria = nil
	m.appendacceptance_criteria = nil
	delete(m.clearedFields, plantask.FieldAcceptanceCriteria)
}

// SetStatus sets the "status" field.
func (m *PlanTaskMutation) SetStatus(pl plantask.Status) {
	m.status = &pl
}

// Status returns the value of the "status" field in the mutation.
func (m *PlanTaskMutation) Status() (r plantask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PlanTask entity.
// If the PlanTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanTaskMutation) OldStatus(ctx context.Context) (v plantask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PlanTaskMutation) ResetStatus() {
	m.status = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *PlanTaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PlanTaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PlanTask entity.
// If the PlanTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanTaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PlanTaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[plantask.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PlanTaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[plantask.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PlanTaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, plantask.FieldCompletedAt)
}

// SetCompletedBy sets the "completed_by" field.
func (m *PlanTaskMutation) SetCompletedBy(pb plantask.CompletedBy) {
	m.completed_by = &pb
}

// CompletedBy returns the value of the "completed_by" field in the mutation.
func (m *PlanTaskMutation) CompletedBy() (r plantask.CompletedBy, exists bool) {
	v := m.completed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedBy returns the old "completed_by" field's value of the PlanTask entity.
// If the PlanTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanTaskMutation) OldCompletedBy(ctx context.Context) (v *plantask.CompletedBy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedBy: %w", err)
	}
	return oldValue.CompletedBy, nil
}

// ClearCompletedBy clears the value of the "completed_by" field.
func (m *PlanTaskMutation) ClearCompletedBy() {
	m.completed_by = nil
	m.clearedFields[plantask.FieldCompletedBy] = struct{}{}
}

// CompletedByCleared returns if the "completed_by" field was cleared in this mutation.
func (m *PlanTaskMutation) CompletedByCleared() bool {
	_, ok := m.clearedFields[plantask.FieldCompletedBy]
	return ok
}

// ResetCompletedBy resets all changes to the "completed_by" field.
func (m *PlanTaskMutation) ResetCompletedBy() {
	m.completed_by = nil
	delete(m.clearedFields, plantask.FieldCompletedBy)
}

// SetCompletionEvidence sets the "completion_evidence" field.
func (m *PlanTaskMutation) SetCompletionEvidence(value map[string]interface{}) {
	m.completion_evidence = &value
}

// CompletionEvidence returns the value of the "completion_evidence" field in the mutation.
func (m *PlanTaskMutation) CompletionEvidence() (r map[string]interface{}, exists bool) {
	v := m.completion_evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionEvidence returns the old "completion_evidence" field's value of the PlanTask entity.
// If the PlanTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanTaskMutation) OldCompletionEvidence(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionEvidence: %w", err)
	}
	return oldValue.CompletionEvidence, nil
}

// ClearCompletionEvidence clears the value of the "completion_evidence" field.
func (m *PlanTaskMutation) ClearCompletionEvidence() {
	m.completion_evidence = nil
	m.clearedFields[plantask.FieldCompletionEvidence] = struct{}{}
}

// CompletionEvidenceCleared returns if the "completion_evidence" field was cleared in this mutation.
func (m *PlanTaskMutation) CompletionEvidenceCleared() bool {
	_, ok := m.clearedFields[plantask.FieldCompletionEvidence]
	return ok
}

// ResetCompletionEvidence resets all changes to the "completion_evidence" field.
func (m *PlanTaskMutation) ResetCompletionEvidence() {
	m.completion_evidence = nil
	delete(m.clearedFields, plantask.FieldCompletionEvidence)
}

// SetCreatedAt sets the "created_at" field.
func (m *PlanTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlanTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PlanTask entity.
// If the PlanTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlanTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearArtifact clears the "artifact" edge to the PhaseArtifact entity.
func (m *PlanTaskMutation) ClearArtifact() {
	m.clearedartifact = true
	m.clearedFields[plantask.FieldArtifactID] = struct{}{}
}

// ArtifactCleared reports if the "artifact" edge to the PhaseArtifact entity was cleared.
func (m *PlanTaskMutation) ArtifactCleared() bool {
	return m.clearedartifact
}

// ArtifactIDs returns the "artifact" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ArtifactID instead. It exists only for internal usage by the builders.
func (m *PlanTaskMutation) ArtifactIDs() (ids []string) {
	if id := m.artifact; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetArtifact resets all changes to the "artifact" edge.
func (m *PlanTaskMutation) ResetArtifact() {
	m.artifact = nil
	m.clearedartifact = false
}

// Where appends a list predicates to the PlanTaskMutation builder.
func (m *PlanTaskMutation) Where(ps ...predicate.PlanTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlanTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlanTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PlanTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlanTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlanTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PlanTask).
func (m *PlanTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlanTaskMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.artifact != nil {
		fields = append(fields, plantask.FieldArtifactID)
	}
	if m.stable_task_id != nil {
		fields = append(fields, plantask.FieldStableTaskID)
	}
	if m.title != nil {
		fields = append(fields, plantask.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, plantask.FieldDescription)
	}
	if m.acceptance_criteria != nil {
		fields = append(fields, plantask.FieldAcceptanceCriteria)
	}
	if m.status != nil {
		fields = append(fields, plantask.FieldStatus)
	}
	if m.completed_at != nil {
		fields = append(fields, plantask.FieldCompletedAt)
	}
	if m.completed_by != nil {
		fields = append(fields, plantask.FieldCompletedBy)
	}
	if m.completion_evidence != nil {
		fields = append(fields, plantask.FieldCompletionEvidence)
	}
	if m.created_at != nil {
		fields = append(fields, plantask.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlanTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case plantask.FieldArtifactID:
		return m.ArtifactID()
	case plantask.FieldStableTaskID:
		return m.StableTaskID()
	case plantask.FieldTitle:
		return m.Title()
	case plantask.FieldDescription:
		return m.Description()
	case plantask.FieldAcceptanceCriteria:
		return m.AcceptanceCriteria()
	case plantask.FieldStatus:
		return m.Status()
	case plantask.FieldCompletedAt:
		return m.CompletedAt()
	case plantask.FieldCompletedBy:
		return m.CompletedBy()
	case plantask.FieldCompletionEvidence:
		return m.CompletionEvidence()
	case plantask.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlanTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case plantask.FieldArtifactID:
		return m.OldArtifactID(ctx)
	case plantask.FieldStableTaskID:
		return m.OldStableTaskID(ctx)
	case plantask.FieldTitle:
		return m.OldTitle(ctx)
	case plantask.FieldDescription:
		return m.OldDescription(ctx)
	case plantask.FieldAcceptanceCriteria:
		return m.OldAcceptanceCriteria(ctx)
	case plantask.FieldStatus:
		return m.OldStatus(ctx)
	case plantask.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case plantask.FieldCompletedBy:
		return m.OldCompletedBy(ctx)
	case plantask.FieldCompletionEvidence:
		return m.OldCompletionEvidence(ctx)
	case plantask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PlanTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case plantask.FieldArtifactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifactID(v)
		return nil
	case plantask.FieldStableTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStableTaskID(v)
		return nil
	case plantask.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case plantask.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case plantask.FieldAcceptanceCriteria:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcceptanceCriteria(v)
		return nil
	case plantask.FieldStatus:
		v, ok := value.(plantask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case plantask.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case plantask.FieldCompletedBy:
		v, ok := value.(plantask.CompletedBy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedBy(v)
		return nil
	case plantask.FieldCompletionEvidence:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionEvidence(v)
		return nil
	case plantask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PlanTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlanTaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlanTaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PlanTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlanTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(plantask.FieldDescription) {
		fields = append(fields, plantask.FieldDescription)
	}
	if m.FieldCleared(plantask.FieldAcceptanceCriteria) {
		fields = append(fields, plantask.FieldAcceptanceCriteria)
	}
	if m.FieldCleared(plantask.FieldCompletedAt) {
		fields = append(fields, plantask.FieldCompletedAt)
	}
	if m.FieldCleared(plantask.FieldCompletedBy) {
		fields = append(fields, plantask.FieldCompletedBy)
	}
	if m.FieldCleared(plantask.FieldCompletionEvidence) {
		fields = append(fields, plantask.FieldCompletionEvidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlanTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlanTaskMutation) ClearField(name string) error {
	switch name {
	case plantask.FieldDescription:
		m.ClearDescription()
		return nil
	case plantask.FieldAcceptanceCriteria:
		m.ClearAcceptanceCriteria()
		return nil
	case plantask.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case plantask.FieldCompletedBy:
		m.ClearCompletedBy()
		return nil
	case plantask.FieldCompletionEvidence:
		m.ClearCompletionEvidence()
		return nil
	}
	return fmt.Errorf("unknown PlanTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlanTaskMutation) ResetField(name string) error {
	switch name {
	case plantask.FieldArtifactID:
		m.ResetArtifactID()
		return nil
	case plantask.FieldStableTaskID:
		m.ResetStableTaskID()
		return nil
	case plantask.FieldTitle:
		m.ResetTitle()
		return nil
	case plantask.FieldDescription:
		m.ResetDescription()
		return nil
	case plantask.FieldAcceptanceCriteria:
		m.ResetAcceptanceCriteria()
		return nil
	case plantask.FieldStatus:
		m.ResetStatus()
		return nil
	case plantask.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case plantask.FieldCompletedBy:
		m.ResetCompletedBy()
		return nil
	case plantask.FieldCompletionEvidence:
		m.ResetCompletionEvidence()
		return nil
	case plantask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PlanTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlanTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.artifact != nil {
		edges = append(edges, plantask.EdgeArtifact)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlanTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case plantask.EdgeArtifact:
		if id := m.artifact; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlanTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlanTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlanTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedartifact {
		edges = append(edges, plantask.EdgeArtifact)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlanTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case plantask.EdgeArtifact:
		return m.clearedartifact
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlanTaskMutation) ClearEdge(name string) error {
	switch name {
	case plantask.EdgeArtifact:
		m.ClearArtifact()
		return nil
	}
	return fmt.Errorf("unknown PlanTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlanTaskMutation) ResetEdge(name string) error {
	switch name {
	case plantask.EdgeArtifact:
		m.ResetArtifact()
		return nil
	}
	return fmt.Errorf("unknown PlanTask edge %s", name)
}

// WebhookDeliveryMutation represents an operation that mutates the WebhookDelivery nodes in the graph.
type WebhookDeliveryMutation struct {
	config
	op               Op
	typ              string
	id               *string
	event_type       *string
	claimant_token   *string
	claim_expires_at *time.Time
	completed_at     *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*WebhookDelivery, error)
	predicates       []predicate.WebhookDelivery
}

var _ ent.Mutation = (*WebhookDeliveryMutation)(nil)

// webhookdeliveryOption allows management of the mutation configuration using functional options.
type webhookdeliveryOption func(*WebhookDeliveryMutation)

// newWebhookDeliveryMutation creates new mutation for the WebhookDelivery entity.
func newWebhookDeliveryMutation(c config, op Op, opts ...webhookdeliveryOption) *WebhookDeliveryMutation {
	m := &WebhookDeliveryMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookDelivery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookDeliveryID sets the ID field of the mutation.
func withWebhookDeliveryID(id string) webhookdeliveryOption {
	return func(m *WebhookDeliveryMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookDelivery
		)
		m.oldValue = func(ctx context.Context) (*WebhookDelivery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookDelivery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookDelivery sets the old WebhookDelivery of the mutation.
func withWebhookDelivery(node *WebhookDelivery) webhookdeliveryOption {
	return func(m *WebhookDeliveryMutation) {
		m.oldValue = func(context.Context) (*WebhookDelivery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookDeliveryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookDeliveryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookDelivery entities.
func (m *WebhookDeliveryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookDeliveryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookDeliveryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookDelivery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventType sets the "event_type" field.
func (m *WebhookDeliveryMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *WebhookDeliveryMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *WebhookDeliveryMutation) ResetEventType() {
	m.event_type = nil
}

// SetClaimantToken sets the "claimant_token" field.
func (m *WebhookDeliveryMutation) SetClaimantToken(s string) {
	m.claimant_token = &s
}

// ClaimantToken returns the value of the "claimant_token" field in the mutation.
func (m *WebhookDeliveryMutation) ClaimantToken() (r string, exists bool) {
	v := m.claimant_token
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimantToken returns the old "claimant_token" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldClaimantToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimantToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimantToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimantToken: %w", err)
	}
	return oldValue.ClaimantToken, nil
}

// ResetClaimantToken resets all changes to the "claimant_token" field.
func (m *WebhookDeliveryMutation) ResetClaimantToken() {
	m.claimant_token = nil
}

// SetClaimExpiresAt sets the "claim_expires_at" field.
func (m *WebhookDeliveryMutation) SetClaimExpiresAt(t time.Time) {
	m.claim_expires_at = &t
}

// ClaimExpiresAt returns the value of the "claim_expires_at" field in the mutation.
func (m *WebhookDeliveryMutation) ClaimExpiresAt() (r time.Time, exists bool) {
	v := m.claim_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimExpiresAt returns the old "claim_expires_at" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldClaimExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimExpiresAt: %w", err)
	}
	return oldValue.ClaimExpiresAt, nil
}

// ResetClaimExpiresAt resets all changes to the "claim_expires_at" field.
func (m *WebhookDeliveryMutation) ResetClaimExpiresAt() {
	m.claim_expires_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *WebhookDeliveryMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *WebhookDeliveryMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *WebhookDeliveryMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[webhookdelivery.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *WebhookDeliveryMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, webhookdelivery.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *WebhookDeliveryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WebhookDeliveryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WebhookDeliveryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WebhookDeliveryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WebhookDeliveryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WebhookDeliveryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the WebhookDeliveryMutation builder.
func (m *WebhookDeliveryMutation) Where(ps ...predicate.WebhookDelivery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookDeliveryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookDeliveryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookDelivery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookDeliveryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookDeliveryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookDelivery).
func (m *WebhookDeliveryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookDeliveryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.event_type != nil {
		fields = append(fields, webhookdelivery.FieldEventType)
	}
	if m.claimant_token != nil {
		fields = append(fields, webhookdelivery.FieldClaimantToken)
	}
	if m.claim_expires_at != nil {
		fields = append(fields, webhookdelivery.FieldClaimExpiresAt)
	}
	if m.completed_at != nil {
		fields = append(fields, webhookdelivery.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, webhookdelivery.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, webhookdelivery.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookDeliveryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookdelivery.FieldEventType:
		return m.EventType()
	case webhookdelivery.FieldClaimantToken:
		return m.ClaimantToken()
	case webhookdelivery.FieldClaimExpiresAt:
		return m.ClaimExpiresAt()
	case webhookdelivery.FieldCompletedAt:
		return m.CompletedAt()
	case webhookdelivery.FieldCreatedAt:
		return m.CreatedAt()
	case webhookdelivery.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookDeliveryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookdelivery.FieldEventType:
		return m.OldEventType(ctx)
	case webhookdelivery.FieldClaimantToken:
		return m.OldClaimantToken(ctx)
	case webhookdelivery.FieldClaimExpiresAt:
		return m.OldClaimExpiresAt(ctx)
	case webhookdelivery.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case webhookdelivery.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case webhookdelivery.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookDelivery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookDeliveryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookdelivery.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case webhookdelivery.FieldClaimantToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimantToken(v)
		return nil
	case webhookdelivery.FieldClaimExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimExpiresAt(v)
		return nil
	case webhookdelivery.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case webhookdelivery.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case webhookdelivery.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookDeliveryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookDeliveryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookDeliveryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WebhookDelivery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookDeliveryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhookdelivery.FieldCompletedAt) {
		fields = append(fields, webhookdelivery.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookDeliveryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookDeliveryMutation) ClearField(name string) error {
	switch name {
	case webhookdelivery.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookDeliveryMutation) ResetField(name string) error {
	switch name {
	case webhookdelivery.FieldEventType:
		m.ResetEventType()
		return nil
	case webhookdelivery.FieldClaimantToken:
		m.ResetClaimantToken()
		return nil
	case webhookdelivery.FieldClaimExpiresAt:
		m.ResetClaimExpiresAt()
		return nil
	case webhookdelivery.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case webhookdelivery.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case webhookdelivery.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookDeliveryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookDeliveryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookDeliveryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookDeliveryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookDeliveryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookDeliveryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookDeliveryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WebhookDelivery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookDeliveryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WebhookDelivery edge %s", name)
}
