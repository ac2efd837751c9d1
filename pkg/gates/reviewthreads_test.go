package gates

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entloop "github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/gaterun"
	"github.com/codeready-toolchain/loopd/pkg/loop"
)

func TestPersistReviewThreadGateEvaluation(t *testing.T) {
	eval, client := newTestEvaluator(t)
	ctx := context.Background()
	trusted := "api_query"

	t.Run("unresolved threads block and bounce the loop", func(t *testing.T) {
		seedGateLoop(t, client, "loop-rt-1", entloop.StateReviewing, "sha-1", 1)

		res, err := eval.PersistReviewThreadGateEvaluation(ctx, ReviewThreadGateInput{
			LoopID:                "loop-rt-1",
			HeadSHA:               "sha-1",
			LoopVersion:           1,
			UnresolvedThreadCount: 2,
		}, t0)
		require.NoError(t, err)
		assert.False(t, res.Skipped)
		assert.Equal(t, "blocked", res.Status)
		assert.Equal(t, loop.OutcomeUpdated, res.Transition.Outcome)
		assert.Equal(t, entloop.StateImplementing, res.Transition.NextState)
	})

	t.Run("trusted zero passes the gate", func(t *testing.T) {
		seedGateLoop(t, client, "loop-rt-2", entloop.StateReviewing, "sha-2", 1)

		res, err := eval.PersistReviewThreadGateEvaluation(ctx, ReviewThreadGateInput{
			LoopID:                      "loop-rt-2",
			HeadSHA:                     "sha-2",
			LoopVersion:                 1,
			UnresolvedThreadCount:       0,
			UnresolvedThreadCountSource: &trusted,
		}, t0)
		require.NoError(t, err)
		assert.Equal(t, "passed", res.Status)
		assert.True(t, res.GatePassed)
		assert.Equal(t, entloop.StateUITesting, res.Transition.NextState)
	})

	t.Run("untrusted zero is skipped entirely", func(t *testing.T) {
		seedGateLoop(t, client, "loop-rt-3", entloop.StateReviewing, "sha-3", 1)
		hearsay := "webhook_payload"

		res, err := eval.PersistReviewThreadGateEvaluation(ctx, ReviewThreadGateInput{
			LoopID:                      "loop-rt-3",
			HeadSHA:                     "sha-3",
			LoopVersion:                 1,
			UnresolvedThreadCount:       0,
			UnresolvedThreadCountSource: &hearsay,
		}, t0)
		require.NoError(t, err)
		assert.True(t, res.Skipped)

		n, err := client.GateRun.Query().
			Where(gaterun.LoopID("loop-rt-3")).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n, "skip persists nothing")
	})

	t.Run("error code records transient_error without a transition", func(t *testing.T) {
		seedGateLoop(t, client, "loop-rt-4", entloop.StateReviewing, "sha-4", 1)
		code := "github_graphql_timeout"

		res, err := eval.PersistReviewThreadGateEvaluation(ctx, ReviewThreadGateInput{
			LoopID:                "loop-rt-4",
			HeadSHA:               "sha-4",
			LoopVersion:           1,
			UnresolvedThreadCount: 1,
			ErrorCode:             &code,
		}, t0)
		require.NoError(t, err)
		assert.Equal(t, "transient_error", res.Status)
		assert.False(t, res.GatePassed)

		row, err := client.Loop.Get(ctx, "loop-rt-4")
		require.NoError(t, err)
		assert.Equal(t, entloop.StateReviewing, row.State)
	})
}
