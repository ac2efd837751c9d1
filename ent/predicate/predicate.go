// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// GateFinding is the predicate function for gatefinding builders.
type GateFinding func(*sql.Selector)

// GateRun is the predicate function for gaterun builders.
type GateRun func(*sql.Selector)

// InboxSignal is the predicate function for inboxsignal builders.
type InboxSignal func(*sql.Selector)

// Loop is the predicate function for loop builders.
type Loop func(*sql.Selector)

// LoopLease is the predicate function for looplease builders.
type LoopLease func(*sql.Selector)

// OutboxAction is the predicate function for outboxaction builders.
type OutboxAction func(*sql.Selector)

// OutboxAttempt is the predicate function for outboxattempt builders.
type OutboxAttempt func(*sql.Selector)

// ParitySample is the predicate function for paritysample builders.
type ParitySample func(*sql.Selector)

// PhaseArtifact is the predicate function for phaseartifact builders.
type PhaseArtifact func(*sql.Selector)

// PlanTask is the predicate function for plantask builders.
type PlanTask func(*sql.Selector)

// WebhookDelivery is the predicate function for webhookdelivery builders.
type WebhookDelivery func(*sql.Selector)
