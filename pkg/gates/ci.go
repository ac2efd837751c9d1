package gates

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/loopd/ent"
	"github.com/codeready-toolchain/loopd/ent/gaterun"
	"github.com/codeready-toolchain/loopd/pkg/loop"
	"github.com/codeready-toolchain/loopd/pkg/models"
)

// Capability states reported by the required-checks lookup.
const (
	CapabilitySupported      = "supported"
	CapabilityForbidden      = "forbidden"
	CapabilityUnsupported    = "unsupported"
	CapabilityTransientError = "transient_error"
)

// Required-check sources, in lookup precedence order.
const (
	SourceRuleset          = "ruleset"
	SourceBranchProtection = "branch_protection"
	SourceAllowlist        = "allowlist"
	SourceNoRequired       = "no_required"
)

// CiGateInput is one CI gate evaluation request.
type CiGateInput struct {
	LoopID                 string
	HeadSHA                string
	LoopVersion            int
	TriggerEvent           string
	CapabilityState        string
	RulesetChecks          []string
	BranchProtectionChecks []string
	AllowlistChecks        []string
	FailingChecks          []string
}

// CiGateResult reports the persisted evaluation and the transition it drove.
type CiGateResult struct {
	Status                string
	GatePassed            bool
	ErrorCode             *string
	RequiredCheckSource   string
	RequiredChecks        []string
	FailingRequiredChecks []string
	Transition            loop.TransitionResult
	ShouldQueueFollowUp   bool
}

// ResolveRequiredChecks picks the required-check set by source precedence:
// ruleset, then branch protection, then the configured allowlist. All lists
// are normalized first.
func ResolveRequiredChecks(ruleset, branchProtection, allowlist []string) (source string, required []string) {
	if rs := NormalizeChecks(ruleset); len(rs) > 0 {
		return SourceRuleset, rs
	}
	if bp := NormalizeChecks(branchProtection); len(bp) > 0 {
		return SourceBranchProtection, bp
	}
	if al := NormalizeChecks(allowlist); len(al) > 0 {
		return SourceAllowlist, al
	}
	return SourceNoRequired, []string{}
}

// EvaluateOptimisticCiPass decides whether a bare pass signal may close the
// CI gate without a fresh lookup. The snapshot must name its source, claim
// completeness, and cover every known required check.
func EvaluateOptimisticCiPass(snapshotSource *string, snapshotComplete bool, snapshotCheckNames, knownRequiredChecks []string) bool {
	if snapshotSource == nil || *snapshotSource == "" || !snapshotComplete {
		return false
	}
	return isSuperset(NormalizeChecks(snapshotCheckNames), NormalizeChecks(knownRequiredChecks))
}

// PersistCiGateEvaluation writes the CI gate run for (loop, head) and drives
// the state machine with ci_gate_passed / ci_gate_blocked. A capability error
// persists the run with errorCode ci_capability_<state> but drives no
// transition.
func (e *Evaluator) PersistCiGateEvaluation(ctx context.Context, in CiGateInput, now time.Time) (CiGateResult, error) {
	source, required := ResolveRequiredChecks(in.RulesetChecks, in.BranchProtectionChecks, in.AllowlistChecks)
	failingRequired := intersect(NormalizeChecks(in.FailingChecks), required)

	res := CiGateResult{
		RequiredCheckSource:   source,
		RequiredChecks:        required,
		FailingRequiredChecks: failingRequired,
	}
	switch {
	case in.CapabilityState != CapabilitySupported:
		res.Status = "capability_error"
		code := "ci_capability_" + in.CapabilityState
		res.ErrorCode = &code
	case len(required) == 0 || len(failingRequired) == 0:
		res.Status = "passed"
		res.GatePassed = true
	default:
		res.Status = "blocked"
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return CiGateResult{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	stale, err := upsertGateRun(ctx, tx, in.LoopID, in.HeadSHA, in.LoopVersion, gateRunWrite{
		gateKind:     gaterun.GateKindCi,
		status:       res.Status,
		gatePassed:   res.GatePassed,
		triggerEvent: in.TriggerEvent,
		errorCode:    res.ErrorCode,
		mutate: func(u *ent.GateRunUpdateOne) {
			u.SetRequiredCheckSource(source).
				SetRequiredChecks(required).
				SetFailingRequiredChecks(failingRequired)
		},
		mutateCreate: func(c *ent.GateRunCreate) {
			c.SetRequiredCheckSource(source).
				SetRequiredChecks(required).
				SetFailingRequiredChecks(failingRequired)
		},
	}, now)
	if err != nil {
		return CiGateResult{}, err
	}
	if stale {
		res.Transition = loop.TransitionResult{Outcome: loop.OutcomeStaleNoop}
		return res, tx.Commit()
	}

	if res.Status != "capability_error" {
		event := models.EventCIGateBlocked
		if res.GatePassed {
			event = models.EventCIGatePassed
		}
		res.Transition, err = loop.PersistGuardedGateLoopState(ctx, tx, in.LoopID, event,
			loop.GateStateInput{HeadSHA: &in.HeadSHA, LoopVersion: &in.LoopVersion}, now)
		if err != nil {
			return CiGateResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return CiGateResult{}, fmt.Errorf("committing ci gate evaluation: %w", err)
	}
	res.ShouldQueueFollowUp = res.Status == "blocked"
	return res, nil
}

// KnownRequiredChecksForLoop returns the required-check list recorded by the
// latest CI gate run, for optimistic-pass superset checks.
func (e *Evaluator) KnownRequiredChecksForLoop(ctx context.Context, loopID string) ([]string, error) {
	run, err := e.client.GateRun.Query().
		Where(
			gaterun.LoopID(loopID),
			gaterun.GateKindEQ(gaterun.GateKindCi),
		).
		Order(ent.Desc(gaterun.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading latest ci gate run: %w", err)
	}
	return run.RequiredChecks, nil
}
