// Package loop implements the per-PR loop registry, its serialization lease,
// and the state machine that moves a loop through the SDLC phases.
package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/loopd/ent"
	entloop "github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/predicate"
	"github.com/codeready-toolchain/loopd/pkg/metrics"
	"github.com/codeready-toolchain/loopd/pkg/models"
)

// IsTerminal reports whether the state permanently ends the loop.
// Terminal loops are never re-activated; re-enrollment creates a new row.
func IsTerminal(s entloop.State) bool {
	switch s {
	case entloop.StateTerminatedPrClosed, entloop.StateTerminatedPrMerged,
		entloop.StateDone, entloop.StateStopped:
		return true
	}
	return false
}

// ResolveNextState returns the state the event moves the loop to, or nil when
// the event does not apply in the current state (the caller treats nil as a
// stale no-op). Evaluation order: done-idempotence, terminal cutoff, global
// overrides, then the per-state transition table.
func ResolveNextState(current entloop.State, event models.TransitionEvent) *entloop.State {
	// done accepts a small set of late events idempotently; everything else
	// bounces off.
	if current == entloop.StateDone {
		switch event {
		case models.EventVideoCaptureSucceeded, models.EventVideoCaptureFailed,
			models.EventBabysitPassed, models.EventMarkDone:
			return statePtr(entloop.StateDone)
		}
		return nil
	}
	if IsTerminal(current) {
		return nil
	}

	// Global overrides apply in any active state.
	switch event {
	case models.EventPRClosedUnmerged:
		return statePtr(entloop.StateTerminatedPrClosed)
	case models.EventPRMerged:
		return statePtr(entloop.StateTerminatedPrMerged)
	case models.EventManualStop:
		return statePtr(entloop.StateStopped)
	case models.EventHumanFeedbackRequested:
		return statePtr(entloop.StateBlockedOnHumanFeedback)
	}

	switch current {
	case entloop.StatePlanning:
		if event == models.EventPlanCompleted {
			return statePtr(entloop.StateImplementing)
		}

	case entloop.StateImplementing:
		switch event {
		case models.EventImplementationProgress:
			return statePtr(entloop.StateImplementing)
		case models.EventImplementationCompleted:
			return statePtr(entloop.StateReviewing)
		}

	case entloop.StateReviewing:
		switch event {
		case models.EventReviewBlocked, models.EventDeepReviewGateBlocked, models.EventCarmackReviewGateBlocked:
			return statePtr(entloop.StateImplementing)
		case models.EventReviewPassed:
			return statePtr(entloop.StateUITesting)
		case models.EventDeepReviewGatePassed, models.EventCarmackReviewGatePassed:
			return statePtr(entloop.StateReviewing)
		}

	case entloop.StateUITesting:
		switch event {
		case models.EventUISmokeFailed, models.EventVideoCaptureFailed:
			return statePtr(entloop.StateImplementing)
		case models.EventPRLinked, models.EventVideoCaptureSucceeded:
			return statePtr(entloop.StatePrBabysitting)
		case models.EventUISmokePassed, models.EventVideoCaptureStarted:
			return statePtr(entloop.StateUITesting)
		}

	case entloop.StatePrBabysitting:
		switch {
		case event == models.EventBabysitPassed || event == models.EventMarkDone:
			return statePtr(entloop.StateDone)
		case event.IsBlockedGateEvent():
			return statePtr(entloop.StateImplementing)
		case event.IsPositiveGateEvent():
			return statePtr(entloop.StatePrBabysitting)
		}

	case entloop.StateBlockedOnHumanFeedback:
		// Only the global overrides above move a human-blocked loop.
	}

	return nil
}

func statePtr(s entloop.State) *entloop.State { return &s }

// TransitionOutcome classifies the result of a guarded state update.
type TransitionOutcome string

// Transition outcomes. Callers never retry a stale no-op.
const (
	OutcomeUpdated      TransitionOutcome = "updated"
	OutcomeTerminalNoop TransitionOutcome = "terminal_noop"
	OutcomeStaleNoop    TransitionOutcome = "stale_noop"
)

// TransitionResult reports what a guarded transition did.
type TransitionResult struct {
	Outcome       TransitionOutcome
	FromState     entloop.State
	NextState     entloop.State
	TransitionSeq int // sequence of the applied transition (valid when updated)
}

// GateStateInput carries the head/version context a gate evaluation was
// computed against. Nil fields skip the corresponding guard.
type GateStateInput struct {
	HeadSHA     *string
	LoopVersion *int
}

// PersistGuardedGateLoopState applies the transition for event under two
// independent guards which must BOTH hold for the update to land:
//
//   - the row state must still be the one we read (CAS on state), and
//   - when head/version context is provided, the row must not already carry a
//     newer loop version, or the same version with a different head SHA.
//
// Fix-attempt-incrementing events bump the budget counter in the same update;
// exhausting the budget forces blocked_on_human_feedback regardless of the
// per-state target.
func PersistGuardedGateLoopState(ctx context.Context, tx *ent.Tx, loopID string, event models.TransitionEvent, guard GateStateInput, now time.Time) (TransitionResult, error) {
	row, err := tx.Loop.Get(ctx, loopID)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("reading loop %s: %w", loopID, err)
	}

	res := TransitionResult{FromState: row.State}

	next := ResolveNextState(row.State, event)
	if next == nil {
		if IsTerminal(row.State) {
			res.Outcome = OutcomeTerminalNoop
		} else {
			res.Outcome = OutcomeStaleNoop
		}
		res.NextState = row.State
		return res, nil
	}

	nextState := *next
	incrementFix := event.IncrementsFixAttempt()
	if incrementFix && row.FixAttemptCount+1 > row.MaxFixAttempts && !IsTerminal(nextState) {
		nextState = entloop.StateBlockedOnHumanFeedback
	}

	preds := []predicate.Loop{
		entloop.IDEQ(loopID),
		entloop.StateEQ(row.State),
	}
	if guard.LoopVersion != nil {
		preds = append(preds, entloop.LoopVersionLTE(*guard.LoopVersion))
		if guard.HeadSHA != nil {
			preds = append(preds, entloop.Or(
				entloop.LoopVersionLT(*guard.LoopVersion),
				entloop.CurrentHeadShaIsNil(),
				entloop.CurrentHeadShaEQ(*guard.HeadSHA),
			))
		}
	}

	update := tx.Loop.Update().
		Where(preds...).
		SetState(nextState).
		AddTransitionSeq(1).
		SetUpdatedAt(now)
	if guard.HeadSHA != nil {
		update = update.SetCurrentHeadSha(*guard.HeadSHA)
	}
	if guard.LoopVersion != nil {
		update = update.SetLoopVersion(*guard.LoopVersion)
	}
	if incrementFix {
		update = update.AddFixAttemptCount(1)
	}
	if nextState == entloop.StateTerminatedPrClosed || nextState == entloop.StateTerminatedPrMerged {
		update = update.SetStopReason(string(event))
	}

	n, err := update.Save(ctx)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("transitioning loop %s on %s: %w", loopID, event, err)
	}
	if n == 0 {
		// Lost the CAS or failed the head/version guard.
		res.Outcome = OutcomeStaleNoop
		res.NextState = row.State
		return res, nil
	}

	metrics.StateTransitions.WithLabelValues(string(row.State), string(nextState), string(event)).Inc()

	res.Outcome = OutcomeUpdated
	res.NextState = nextState
	res.TransitionSeq = row.TransitionSeq + 1
	return res, nil
}

// ApplyEvent is PersistGuardedGateLoopState in its own transaction, for
// callers that apply a single transition outside a larger write.
func ApplyEvent(ctx context.Context, client *ent.Client, loopID string, event models.TransitionEvent, guard GateStateInput, now time.Time) (TransitionResult, error) {
	tx, err := client.Tx(ctx)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := PersistGuardedGateLoopState(ctx, tx, loopID, event, guard, now)
	if err != nil {
		return TransitionResult{}, err
	}
	if err := tx.Commit(); err != nil {
		return TransitionResult{}, fmt.Errorf("committing transition for loop %s: %w", loopID, err)
	}
	return res, nil
}
