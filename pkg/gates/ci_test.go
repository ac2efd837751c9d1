package gates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entloop "github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/gaterun"
	"github.com/codeready-toolchain/loopd/pkg/loop"
)

func TestPersistCiGateEvaluation(t *testing.T) {
	eval, client := newTestEvaluator(t)
	ctx := context.Background()

	t.Run("failing required check blocks and bounces the loop", func(t *testing.T) {
		seedGateLoop(t, client, "loop-ci-1", entloop.StatePrBabysitting, "sha-1", 1)

		res, err := eval.PersistCiGateEvaluation(ctx, CiGateInput{
			LoopID:          "loop-ci-1",
			HeadSHA:         "sha-1",
			LoopVersion:     1,
			TriggerEvent:    "check_run.completed",
			CapabilityState: CapabilitySupported,
			RulesetChecks:   []string{"CI / tests", "CI / lint"},
			FailingChecks:   []string{"CI / tests", "unrelated"},
		}, t0)
		require.NoError(t, err)
		assert.Equal(t, "blocked", res.Status)
		assert.False(t, res.GatePassed)
		assert.Equal(t, SourceRuleset, res.RequiredCheckSource)
		assert.Equal(t, []string{"CI / tests"}, res.FailingRequiredChecks)
		assert.Equal(t, loop.OutcomeUpdated, res.Transition.Outcome)
		assert.Equal(t, entloop.StateImplementing, res.Transition.NextState)
		assert.True(t, res.ShouldQueueFollowUp)

		run, err := client.GateRun.Query().
			Where(gaterun.LoopID("loop-ci-1"), gaterun.GateKindEQ(gaterun.GateKindCi)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "blocked", run.Status)
		assert.Equal(t, []string{"CI / lint", "CI / tests"}, run.RequiredChecks)
	})

	t.Run("all required checks green passes the gate", func(t *testing.T) {
		seedGateLoop(t, client, "loop-ci-2", entloop.StatePrBabysitting, "sha-2", 1)

		res, err := eval.PersistCiGateEvaluation(ctx, CiGateInput{
			LoopID:          "loop-ci-2",
			HeadSHA:         "sha-2",
			LoopVersion:     1,
			CapabilityState: CapabilitySupported,
			AllowlistChecks: []string{"CI / lint", "CI / tests"},
			FailingChecks:   []string{"optional-check"},
		}, t0)
		require.NoError(t, err)
		assert.Equal(t, "passed", res.Status)
		assert.True(t, res.GatePassed)
		assert.Equal(t, SourceAllowlist, res.RequiredCheckSource)
		assert.Equal(t, loop.OutcomeUpdated, res.Transition.Outcome)
		assert.Equal(t, entloop.StatePrBabysitting, res.Transition.NextState)
		assert.False(t, res.ShouldQueueFollowUp)
	})

	t.Run("no required checks means pass", func(t *testing.T) {
		seedGateLoop(t, client, "loop-ci-3", entloop.StatePrBabysitting, "sha-3", 1)

		res, err := eval.PersistCiGateEvaluation(ctx, CiGateInput{
			LoopID:          "loop-ci-3",
			HeadSHA:         "sha-3",
			LoopVersion:     1,
			CapabilityState: CapabilitySupported,
			FailingChecks:   []string{"CI / tests"},
		}, t0)
		require.NoError(t, err)
		assert.Equal(t, "passed", res.Status)
		assert.Equal(t, SourceNoRequired, res.RequiredCheckSource)
	})

	t.Run("capability error persists without a transition", func(t *testing.T) {
		seedGateLoop(t, client, "loop-ci-4", entloop.StatePrBabysitting, "sha-4", 1)

		res, err := eval.PersistCiGateEvaluation(ctx, CiGateInput{
			LoopID:          "loop-ci-4",
			HeadSHA:         "sha-4",
			LoopVersion:     1,
			CapabilityState: CapabilityForbidden,
			RulesetChecks:   []string{"CI / tests"},
		}, t0)
		require.NoError(t, err)
		assert.Equal(t, "capability_error", res.Status)
		require.NotNil(t, res.ErrorCode)
		assert.Equal(t, "ci_capability_forbidden", *res.ErrorCode)

		row, err := client.Loop.Get(ctx, "loop-ci-4")
		require.NoError(t, err)
		assert.Equal(t, entloop.StatePrBabysitting, row.State, "no transition on capability error")
	})

	t.Run("stale loop version does not overwrite the run", func(t *testing.T) {
		seedGateLoop(t, client, "loop-ci-5", entloop.StatePrBabysitting, "sha-5", 3)

		_, err := eval.PersistCiGateEvaluation(ctx, CiGateInput{
			LoopID: "loop-ci-5", HeadSHA: "sha-5", LoopVersion: 3,
			CapabilityState: CapabilitySupported,
			RulesetChecks:   []string{"CI / tests"},
			FailingChecks:   []string{"CI / tests"},
		}, t0)
		require.NoError(t, err)

		res, err := eval.PersistCiGateEvaluation(ctx, CiGateInput{
			LoopID: "loop-ci-5", HeadSHA: "sha-5", LoopVersion: 2,
			CapabilityState: CapabilitySupported,
			RulesetChecks:   []string{"CI / tests"},
		}, t0.Add(time.Second))
		require.NoError(t, err)
		assert.Equal(t, loop.OutcomeStaleNoop, res.Transition.Outcome)

		run, err := client.GateRun.Query().
			Where(gaterun.LoopID("loop-ci-5"), gaterun.GateKindEQ(gaterun.GateKindCi)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "blocked", run.Status, "older evaluation must not overwrite")
		assert.Equal(t, 3, run.LoopVersion)
	})

	t.Run("known required checks come from the latest run", func(t *testing.T) {
		got, err := eval.KnownRequiredChecksForLoop(ctx, "loop-ci-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"CI / lint", "CI / tests"}, got)

		got, err = eval.KnownRequiredChecksForLoop(ctx, "loop-without-runs")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
