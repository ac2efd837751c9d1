package loop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/loopd/ent"
	entloop "github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/pkg/models"
	testdb "github.com/codeready-toolchain/loopd/test/database"
)

func seedLoop(t *testing.T, client *ent.Client, id string, state entloop.State, mutate func(*ent.LoopCreate)) *ent.Loop {
	t.Helper()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	create := client.Loop.Create().
		SetID(id).
		SetUserID("user-1").
		SetRepoFullName("acme/widgets").
		SetThreadID("thread-" + id).
		SetState(state).
		SetCreatedAt(now).
		SetUpdatedAt(now)
	if mutate != nil {
		mutate(create)
	}
	row, err := create.Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestResolveNextState(t *testing.T) {
	tests := []struct {
		name    string
		current entloop.State
		event   models.TransitionEvent
		want    *entloop.State
	}{
		{"planning advances on plan completion", entloop.StatePlanning, models.EventPlanCompleted, statePtr(entloop.StateImplementing)},
		{"planning ignores review events", entloop.StatePlanning, models.EventReviewPassed, nil},
		{"implementing progress self-loops", entloop.StateImplementing, models.EventImplementationProgress, statePtr(entloop.StateImplementing)},
		{"implementing completes into reviewing", entloop.StateImplementing, models.EventImplementationCompleted, statePtr(entloop.StateReviewing)},
		{"review blocked bounces back", entloop.StateReviewing, models.EventReviewBlocked, statePtr(entloop.StateImplementing)},
		{"deep review blocked bounces back", entloop.StateReviewing, models.EventDeepReviewGateBlocked, statePtr(entloop.StateImplementing)},
		{"review passed advances", entloop.StateReviewing, models.EventReviewPassed, statePtr(entloop.StateUITesting)},
		{"deep review pass holds for carmack", entloop.StateReviewing, models.EventDeepReviewGatePassed, statePtr(entloop.StateReviewing)},
		{"ui smoke failure bounces back", entloop.StateUITesting, models.EventUISmokeFailed, statePtr(entloop.StateImplementing)},
		{"video failure bounces back", entloop.StateUITesting, models.EventVideoCaptureFailed, statePtr(entloop.StateImplementing)},
		{"pr linked advances to babysitting", entloop.StateUITesting, models.EventPRLinked, statePtr(entloop.StatePrBabysitting)},
		{"video success advances to babysitting", entloop.StateUITesting, models.EventVideoCaptureSucceeded, statePtr(entloop.StatePrBabysitting)},
		{"video start self-loops", entloop.StateUITesting, models.EventVideoCaptureStarted, statePtr(entloop.StateUITesting)},
		{"babysit passed finishes", entloop.StatePrBabysitting, models.EventBabysitPassed, statePtr(entloop.StateDone)},
		{"mark done finishes", entloop.StatePrBabysitting, models.EventMarkDone, statePtr(entloop.StateDone)},
		{"ci gate blocked bounces back", entloop.StatePrBabysitting, models.EventCIGateBlocked, statePtr(entloop.StateImplementing)},
		{"ui smoke failure bounces back from babysitting", entloop.StatePrBabysitting, models.EventUISmokeFailed, statePtr(entloop.StateImplementing)},
		{"video failure bounces back from babysitting", entloop.StatePrBabysitting, models.EventVideoCaptureFailed, statePtr(entloop.StateImplementing)},
		{"ci gate passed self-loops", entloop.StatePrBabysitting, models.EventCIGatePassed, statePtr(entloop.StatePrBabysitting)},
		{"human block only exits via overrides", entloop.StateBlockedOnHumanFeedback, models.EventReviewPassed, nil},
		{"pr close overrides anywhere", entloop.StateImplementing, models.EventPRClosedUnmerged, statePtr(entloop.StateTerminatedPrClosed)},
		{"pr merge overrides anywhere", entloop.StateUITesting, models.EventPRMerged, statePtr(entloop.StateTerminatedPrMerged)},
		{"manual stop overrides anywhere", entloop.StateReviewing, models.EventManualStop, statePtr(entloop.StateStopped)},
		{"human feedback request overrides anywhere", entloop.StatePlanning, models.EventHumanFeedbackRequested, statePtr(entloop.StateBlockedOnHumanFeedback)},
		{"done accepts late video success", entloop.StateDone, models.EventVideoCaptureSucceeded, statePtr(entloop.StateDone)},
		{"done accepts late video failure", entloop.StateDone, models.EventVideoCaptureFailed, statePtr(entloop.StateDone)},
		{"done accepts repeat mark done", entloop.StateDone, models.EventMarkDone, statePtr(entloop.StateDone)},
		{"done rejects pr merge", entloop.StateDone, models.EventPRMerged, nil},
		{"stopped is terminal", entloop.StateStopped, models.EventPlanCompleted, nil},
		{"terminated rejects manual stop", entloop.StateTerminatedPrMerged, models.EventManualStop, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveNextState(tt.current, tt.event)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestPersistGuardedGateLoopState(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	inTx := func(t *testing.T, fn func(tx *ent.Tx) (TransitionResult, error)) TransitionResult {
		t.Helper()
		tx, err := client.Client.Tx(ctx)
		require.NoError(t, err)
		res, err := fn(tx)
		require.NoError(t, err)
		require.NoError(t, tx.Commit())
		return res
	}

	t.Run("applies transition and bumps sequence", func(t *testing.T) {
		seedLoop(t, client.Client, "loop-sm-1", entloop.StatePlanning, nil)

		res := inTx(t, func(tx *ent.Tx) (TransitionResult, error) {
			return PersistGuardedGateLoopState(ctx, tx, "loop-sm-1", models.EventPlanCompleted, GateStateInput{}, now)
		})
		assert.Equal(t, OutcomeUpdated, res.Outcome)
		assert.Equal(t, entloop.StateImplementing, res.NextState)
		assert.Equal(t, 1, res.TransitionSeq)

		row, err := client.Client.Loop.Get(ctx, "loop-sm-1")
		require.NoError(t, err)
		assert.Equal(t, entloop.StateImplementing, row.State)
		assert.Equal(t, 1, row.TransitionSeq)
	})

	t.Run("terminal loop reports terminal_noop", func(t *testing.T) {
		seedLoop(t, client.Client, "loop-sm-2", entloop.StateStopped, nil)

		res := inTx(t, func(tx *ent.Tx) (TransitionResult, error) {
			return PersistGuardedGateLoopState(ctx, tx, "loop-sm-2", models.EventPlanCompleted, GateStateInput{}, now)
		})
		assert.Equal(t, OutcomeTerminalNoop, res.Outcome)
		assert.Equal(t, entloop.StateStopped, res.NextState)
	})

	t.Run("inapplicable event is a stale_noop", func(t *testing.T) {
		seedLoop(t, client.Client, "loop-sm-3", entloop.StatePlanning, nil)

		res := inTx(t, func(tx *ent.Tx) (TransitionResult, error) {
			return PersistGuardedGateLoopState(ctx, tx, "loop-sm-3", models.EventReviewPassed, GateStateInput{}, now)
		})
		assert.Equal(t, OutcomeStaleNoop, res.Outcome)
	})

	t.Run("newer loop version on the row rejects the write", func(t *testing.T) {
		seedLoop(t, client.Client, "loop-sm-4", entloop.StateReviewing, func(c *ent.LoopCreate) {
			c.SetLoopVersion(5).SetCurrentHeadSha("sha-new")
		})

		stale := 4
		sha := "sha-old"
		res := inTx(t, func(tx *ent.Tx) (TransitionResult, error) {
			return PersistGuardedGateLoopState(ctx, tx, "loop-sm-4", models.EventReviewPassed, GateStateInput{HeadSHA: &sha, LoopVersion: &stale}, now)
		})
		assert.Equal(t, OutcomeStaleNoop, res.Outcome)

		row, err := client.Client.Loop.Get(ctx, "loop-sm-4")
		require.NoError(t, err)
		assert.Equal(t, entloop.StateReviewing, row.State)
	})

	t.Run("same version with different head rejects the write", func(t *testing.T) {
		seedLoop(t, client.Client, "loop-sm-5", entloop.StateReviewing, func(c *ent.LoopCreate) {
			c.SetLoopVersion(5).SetCurrentHeadSha("sha-a")
		})

		v := 5
		sha := "sha-b"
		res := inTx(t, func(tx *ent.Tx) (TransitionResult, error) {
			return PersistGuardedGateLoopState(ctx, tx, "loop-sm-5", models.EventReviewPassed, GateStateInput{HeadSHA: &sha, LoopVersion: &v}, now)
		})
		assert.Equal(t, OutcomeStaleNoop, res.Outcome)
	})

	t.Run("null head on the row accepts any head at same version", func(t *testing.T) {
		seedLoop(t, client.Client, "loop-sm-6", entloop.StateReviewing, func(c *ent.LoopCreate) {
			c.SetLoopVersion(5)
		})

		v := 5
		sha := "sha-first"
		res := inTx(t, func(tx *ent.Tx) (TransitionResult, error) {
			return PersistGuardedGateLoopState(ctx, tx, "loop-sm-6", models.EventReviewPassed, GateStateInput{HeadSHA: &sha, LoopVersion: &v}, now)
		})
		assert.Equal(t, OutcomeUpdated, res.Outcome)

		row, err := client.Client.Loop.Get(ctx, "loop-sm-6")
		require.NoError(t, err)
		require.NotNil(t, row.CurrentHeadSha)
		assert.Equal(t, "sha-first", *row.CurrentHeadSha)
		assert.Equal(t, 5, row.LoopVersion)
	})

	t.Run("blocked event increments the fix budget", func(t *testing.T) {
		seedLoop(t, client.Client, "loop-sm-7", entloop.StateReviewing, nil)

		res := inTx(t, func(tx *ent.Tx) (TransitionResult, error) {
			return PersistGuardedGateLoopState(ctx, tx, "loop-sm-7", models.EventReviewBlocked, GateStateInput{}, now)
		})
		assert.Equal(t, OutcomeUpdated, res.Outcome)
		assert.Equal(t, entloop.StateImplementing, res.NextState)

		row, err := client.Client.Loop.Get(ctx, "loop-sm-7")
		require.NoError(t, err)
		assert.Equal(t, 1, row.FixAttemptCount)
	})

	t.Run("exhausted fix budget escalates to human feedback", func(t *testing.T) {
		seedLoop(t, client.Client, "loop-sm-8", entloop.StateReviewing, func(c *ent.LoopCreate) {
			c.SetFixAttemptCount(3).SetMaxFixAttempts(3)
		})

		res := inTx(t, func(tx *ent.Tx) (TransitionResult, error) {
			return PersistGuardedGateLoopState(ctx, tx, "loop-sm-8", models.EventReviewBlocked, GateStateInput{}, now)
		})
		assert.Equal(t, OutcomeUpdated, res.Outcome)
		assert.Equal(t, entloop.StateBlockedOnHumanFeedback, res.NextState)

		row, err := client.Client.Loop.Get(ctx, "loop-sm-8")
		require.NoError(t, err)
		assert.Equal(t, entloop.StateBlockedOnHumanFeedback, row.State)
		assert.Equal(t, 4, row.FixAttemptCount)
	})

	t.Run("pr merge records the stop reason", func(t *testing.T) {
		seedLoop(t, client.Client, "loop-sm-9", entloop.StatePrBabysitting, nil)

		res := inTx(t, func(tx *ent.Tx) (TransitionResult, error) {
			return PersistGuardedGateLoopState(ctx, tx, "loop-sm-9", models.EventPRMerged, GateStateInput{}, now)
		})
		assert.Equal(t, OutcomeUpdated, res.Outcome)
		assert.Equal(t, entloop.StateTerminatedPrMerged, res.NextState)

		row, err := client.Client.Loop.Get(ctx, "loop-sm-9")
		require.NoError(t, err)
		require.NotNil(t, row.StopReason)
		assert.Equal(t, "pr_merged", *row.StopReason)
	})
}
