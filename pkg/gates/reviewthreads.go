package gates

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/codeready-toolchain/loopd/ent"
	"github.com/codeready-toolchain/loopd/ent/gaterun"
	"github.com/codeready-toolchain/loopd/pkg/loop"
	"github.com/codeready-toolchain/loopd/pkg/models"
)

// ReviewThreadGateInput is one review-thread gate evaluation request.
type ReviewThreadGateInput struct {
	LoopID                      string
	HeadSHA                     string
	LoopVersion                 int
	TriggerEvent                string
	UnresolvedThreadCount       int
	UnresolvedThreadCountSource *string
	ErrorCode                   *string
}

// ReviewThreadGateResult reports the evaluation. Skipped means the zero count
// came from an untrusted source and nothing was persisted.
type ReviewThreadGateResult struct {
	Skipped    bool
	Status     string
	GatePassed bool
	Transition loop.TransitionResult
}

// PersistReviewThreadGateEvaluation writes the review-thread gate run for
// (loop, head). A supplied error code records transient_error and drives no
// transition; otherwise the gate passes iff no threads remain unresolved.
// An optimistic zero is only honoured from a trusted count source.
func (e *Evaluator) PersistReviewThreadGateEvaluation(ctx context.Context, in ReviewThreadGateInput, now time.Time) (ReviewThreadGateResult, error) {
	if in.ErrorCode == nil && in.UnresolvedThreadCount == 0 {
		if in.UnresolvedThreadCountSource == nil || !slices.Contains(e.trustedThreadCountSources, *in.UnresolvedThreadCountSource) {
			e.logger.Warn("ignoring unresolved-thread zero from untrusted source",
				"loop_id", in.LoopID,
				"head_sha", in.HeadSHA,
				"source", in.UnresolvedThreadCountSource)
			return ReviewThreadGateResult{Skipped: true}, nil
		}
	}

	res := ReviewThreadGateResult{}
	switch {
	case in.ErrorCode != nil:
		res.Status = "transient_error"
	case in.UnresolvedThreadCount == 0:
		res.Status = "passed"
		res.GatePassed = true
	default:
		res.Status = "blocked"
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return ReviewThreadGateResult{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	stale, err := upsertGateRun(ctx, tx, in.LoopID, in.HeadSHA, in.LoopVersion, gateRunWrite{
		gateKind:     gaterun.GateKindReviewThreads,
		status:       res.Status,
		gatePassed:   res.GatePassed,
		triggerEvent: in.TriggerEvent,
		errorCode:    in.ErrorCode,
		mutate: func(u *ent.GateRunUpdateOne) {
			u.SetUnresolvedThreadCount(in.UnresolvedThreadCount).
				SetNillableUnresolvedThreadCountSource(in.UnresolvedThreadCountSource)
		},
		mutateCreate: func(c *ent.GateRunCreate) {
			c.SetUnresolvedThreadCount(in.UnresolvedThreadCount).
				SetNillableUnresolvedThreadCountSource(in.UnresolvedThreadCountSource)
		},
	}, now)
	if err != nil {
		return ReviewThreadGateResult{}, err
	}
	if stale {
		res.Transition = loop.TransitionResult{Outcome: loop.OutcomeStaleNoop}
		return res, tx.Commit()
	}

	if res.Status != "transient_error" {
		event := models.EventReviewBlocked
		if res.GatePassed {
			event = models.EventReviewPassed
		}
		res.Transition, err = loop.PersistGuardedGateLoopState(ctx, tx, in.LoopID, event,
			loop.GateStateInput{HeadSHA: &in.HeadSHA, LoopVersion: &in.LoopVersion}, now)
		if err != nil {
			return ReviewThreadGateResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return ReviewThreadGateResult{}, fmt.Errorf("committing review-thread gate evaluation: %w", err)
	}
	return res, nil
}
