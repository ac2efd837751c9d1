// Package webhookledger implements exactly-once admission of external
// deliveries. Every webhook flows through a claim row with a fixed TTL;
// expired claims from crashed handlers are stolen by later workers.
package webhookledger

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/loopd/ent"
	"github.com/codeready-toolchain/loopd/ent/webhookdelivery"
	"github.com/codeready-toolchain/loopd/pkg/metrics"
)

// ClaimTTL is how long a claim protects a delivery before another worker may
// steal it. Fixed by contract with the webhook partners.
const ClaimTTL = 5 * time.Minute

// Outcome classifies the result of a claim attempt.
type Outcome string

// Claim outcomes.
const (
	OutcomeClaimedNew       Outcome = "claimed_new"
	OutcomeAlreadyCompleted Outcome = "already_completed"
	OutcomeInProgressFresh  Outcome = "in_progress_fresh"
	OutcomeStaleStolen      Outcome = "stale_stolen"
)

// ClaimResult is the decision returned to the webhook handler.
type ClaimResult struct {
	Outcome       Outcome
	ShouldProcess bool
}

// Ledger provides claim/complete/release over webhook delivery rows.
type Ledger struct {
	client *ent.Client
}

// NewLedger creates a claim ledger backed by the given client.
func NewLedger(client *ent.Client) *Ledger {
	return &Ledger{client: client}
}

// Claim admits a delivery for processing. At most one concurrent caller
// receives ShouldProcess=true for a given delivery id.
func (l *Ledger) Claim(ctx context.Context, deliveryID, claimantToken, eventType string, now time.Time) (ClaimResult, error) {
	err := l.client.WebhookDelivery.Create().
		SetID(deliveryID).
		SetEventType(eventType).
		SetClaimantToken(claimantToken).
		SetClaimExpiresAt(now.Add(ClaimTTL)).
		Exec(ctx)
	if err == nil {
		return l.result(OutcomeClaimedNew, true), nil
	}
	if !ent.IsConstraintError(err) {
		return ClaimResult{}, fmt.Errorf("inserting delivery claim: %w", err)
	}

	// Row exists — inspect it.
	row, err := l.client.WebhookDelivery.Get(ctx, deliveryID)
	if err != nil {
		return ClaimResult{}, fmt.Errorf("reading existing delivery claim: %w", err)
	}
	if row.CompletedAt != nil {
		return l.result(OutcomeAlreadyCompleted, false), nil
	}
	if row.ClaimExpiresAt.After(now) {
		return l.result(OutcomeInProgressFresh, false), nil
	}

	// Expired and not completed: steal via CAS. A concurrent thief winning the
	// race leaves zero rows touched; report the claim as fresh so the partner
	// retries later.
	n, err := l.client.WebhookDelivery.Update().
		Where(
			webhookdelivery.IDEQ(deliveryID),
			webhookdelivery.CompletedAtIsNil(),
			webhookdelivery.ClaimExpiresAtLTE(now),
		).
		SetClaimantToken(claimantToken).
		SetClaimExpiresAt(now.Add(ClaimTTL)).
		Save(ctx)
	if err != nil {
		return ClaimResult{}, fmt.Errorf("stealing stale delivery claim: %w", err)
	}
	if n == 0 {
		return l.result(OutcomeInProgressFresh, false), nil
	}
	return l.result(OutcomeStaleStolen, true), nil
}

// Complete marks the delivery as done. CAS-guarded on the claimant token so a
// displaced handler cannot complete a delivery it no longer owns. Returns
// whether a row was updated.
func (l *Ledger) Complete(ctx context.Context, deliveryID, claimantToken string, now time.Time) (bool, error) {
	n, err := l.client.WebhookDelivery.Update().
		Where(
			webhookdelivery.IDEQ(deliveryID),
			webhookdelivery.ClaimantTokenEQ(claimantToken),
			webhookdelivery.CompletedAtIsNil(),
		).
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("completing delivery claim: %w", err)
	}
	return n > 0, nil
}

// Release expires the claim in place so another worker can retry without
// waiting out the TTL. Returns whether a row was updated.
func (l *Ledger) Release(ctx context.Context, deliveryID, claimantToken string, now time.Time) (bool, error) {
	n, err := l.client.WebhookDelivery.Update().
		Where(
			webhookdelivery.IDEQ(deliveryID),
			webhookdelivery.ClaimantTokenEQ(claimantToken),
			webhookdelivery.CompletedAtIsNil(),
		).
		SetClaimExpiresAt(now).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("releasing delivery claim: %w", err)
	}
	return n > 0, nil
}

func (l *Ledger) result(o Outcome, process bool) ClaimResult {
	metrics.WebhookClaims.WithLabelValues(string(o)).Inc()
	return ClaimResult{Outcome: o, ShouldProcess: process}
}
