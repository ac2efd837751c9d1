// Package metrics registers the Prometheus instruments exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WebhookClaims counts claim-ledger admission decisions by outcome.
	WebhookClaims = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loopd_webhook_claims_total",
		Help: "Webhook delivery claim outcomes",
	}, []string{"outcome"})

	// InboxTicks counts signal-inbox tick results by outcome reason.
	InboxTicks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loopd_signal_inbox_ticks_total",
		Help: "Signal inbox tick outcomes",
	}, []string{"outcome"})

	// OutboxAttempts counts outbox execution attempts by action type and result.
	OutboxAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loopd_outbox_attempts_total",
		Help: "Outbox action execution attempts",
	}, []string{"action_type", "result"})

	// ParitySamples counts recorded parity samples by bucket and match.
	ParitySamples = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loopd_parity_samples_total",
		Help: "Parity metric samples recorded",
	}, []string{"cause_type", "target_class", "matched"})

	// StateTransitions counts applied loop state transitions.
	StateTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loopd_state_transitions_total",
		Help: "Applied loop state transitions",
	}, []string{"from", "to", "event"})
)
