package gates

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entloop "github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/gatefinding"
	"github.com/codeready-toolchain/loopd/ent/gaterun"
	"github.com/codeready-toolchain/loopd/pkg/loop"
)

func TestStableFindingID(t *testing.T) {
	f := ReviewFinding{Title: "SQL Injection", Severity: "critical", Category: "security", Detail: "raw concat"}
	h := sha256.Sum256([]byte("sql injection|critical|security|raw concat"))
	want := "deep_review_" + hex.EncodeToString(h[:])[:24]
	assert.Equal(t, want, StableFindingID(gaterun.GateKindDeepReview, f))

	t.Run("caller-provided id wins", func(t *testing.T) {
		id := "custom-id"
		f := f
		f.StableFindingID = &id
		assert.Equal(t, "custom-id", StableFindingID(gaterun.GateKindDeepReview, f))
	})

	t.Run("title casing does not change the id", func(t *testing.T) {
		upper := f
		upper.Title = "SQL INJECTION"
		assert.Equal(t, StableFindingID(gaterun.GateKindDeepReview, f), StableFindingID(gaterun.GateKindDeepReview, upper))
	})
}

func TestPersistDeepReviewGateEvaluation(t *testing.T) {
	eval, client := newTestEvaluator(t)
	ctx := context.Background()

	t.Run("clean pass advances the review", func(t *testing.T) {
		seedGateLoop(t, client, "loop-dr-1", entloop.StateReviewing, "sha-1", 1)

		res, err := eval.PersistDeepReviewGateEvaluation(ctx, ReviewGateInput{
			LoopID:      "loop-dr-1",
			HeadSHA:     "sha-1",
			LoopVersion: 1,
			RawOutput:   json.RawMessage(`{"gatePassed": true, "blockingFindings": []}`),
		}, t0)
		require.NoError(t, err)
		assert.Equal(t, "passed", res.Status)
		assert.True(t, res.GatePassed)
		assert.Equal(t, loop.OutcomeUpdated, res.Transition.Outcome)
	})

	t.Run("blocking findings block and are persisted deduplicated", func(t *testing.T) {
		seedGateLoop(t, client, "loop-dr-2", entloop.StateReviewing, "sha-2", 1)

		raw := `{"gatePassed": false, "blockingFindings": [
			{"title": "Race in claim", "severity": "high", "category": "concurrency", "detail": "no CAS"},
			{"title": "Race in claim", "severity": "high", "category": "concurrency", "detail": "no CAS"},
			{"title": "Typo", "severity": "low", "category": "style", "detail": "nit", "isBlocking": false}
		]}`
		res, err := eval.PersistDeepReviewGateEvaluation(ctx, ReviewGateInput{
			LoopID:      "loop-dr-2",
			HeadSHA:     "sha-2",
			LoopVersion: 1,
			RawOutput:   json.RawMessage(raw),
		}, t0)
		require.NoError(t, err)
		assert.Equal(t, "blocked", res.Status)
		assert.Equal(t, 2, res.FindingCount, "duplicate finding collapses")
		assert.Equal(t, entloop.StateImplementing, res.Transition.NextState)

		findings, err := client.GateFinding.Query().
			Where(gatefinding.LoopID("loop-dr-2"), gatefinding.HeadSha("sha-2")).
			All(ctx)
		require.NoError(t, err)
		assert.Len(t, findings, 2)
	})

	t.Run("non-blocking findings alone do not block", func(t *testing.T) {
		seedGateLoop(t, client, "loop-dr-3", entloop.StateReviewing, "sha-3", 1)

		raw := `{"gatePassed": true, "blockingFindings": [
			{"title": "Typo", "severity": "low", "category": "style", "detail": "nit", "isBlocking": false}
		]}`
		res, err := eval.PersistDeepReviewGateEvaluation(ctx, ReviewGateInput{
			LoopID:      "loop-dr-3",
			HeadSHA:     "sha-3",
			LoopVersion: 1,
			RawOutput:   json.RawMessage(raw),
		}, t0)
		require.NoError(t, err)
		assert.Equal(t, "passed", res.Status)
	})

	t.Run("invalid output wipes prior findings and blocks", func(t *testing.T) {
		seedGateLoop(t, client, "loop-dr-4", entloop.StateReviewing, "sha-4", 1)

		_, err := eval.PersistDeepReviewGateEvaluation(ctx, ReviewGateInput{
			LoopID: "loop-dr-4", HeadSHA: "sha-4", LoopVersion: 1,
			RawOutput: json.RawMessage(`{"gatePassed": false, "blockingFindings": [
				{"title": "Old", "severity": "high", "category": "bug", "detail": "stale"}
			]}`),
		}, t0)
		require.NoError(t, err)

		// The loop bounced to implementing; bring it back for the re-run.
		require.NoError(t, client.Loop.UpdateOneID("loop-dr-4").SetState(entloop.StateReviewing).Exec(ctx))

		res, err := eval.PersistDeepReviewGateEvaluation(ctx, ReviewGateInput{
			LoopID: "loop-dr-4", HeadSHA: "sha-4", LoopVersion: 1,
			RawOutput: json.RawMessage(`{"gatePassed": "yes"}`),
		}, t0.Add(time.Second))
		require.NoError(t, err)
		assert.Equal(t, "invalid_output", res.Status)
		assert.True(t, res.InvalidOutput)
		require.NotNil(t, res.ErrorCode)
		assert.Equal(t, "deep_review_invalid_output", *res.ErrorCode)

		n, err := client.GateFinding.Query().
			Where(gatefinding.LoopID("loop-dr-4"), gatefinding.HeadSha("sha-4")).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n, "prior findings at this head are wiped")

		run, err := client.GateRun.Query().
			Where(gaterun.LoopID("loop-dr-4"), gaterun.GateKindEQ(gaterun.GateKindDeepReview)).
			Only(ctx)
		require.NoError(t, err)
		assert.True(t, run.InvalidOutput)
	})

	t.Run("invalid severity is a schema violation", func(t *testing.T) {
		seedGateLoop(t, client, "loop-dr-5", entloop.StateReviewing, "sha-5", 1)

		res, err := eval.PersistDeepReviewGateEvaluation(ctx, ReviewGateInput{
			LoopID: "loop-dr-5", HeadSHA: "sha-5", LoopVersion: 1,
			RawOutput: json.RawMessage(`{"gatePassed": false, "blockingFindings": [
				{"title": "X", "severity": "catastrophic", "category": "bug", "detail": "d"}
			]}`),
		}, t0)
		require.NoError(t, err)
		assert.Equal(t, "invalid_output", res.Status)
	})
}

func TestPersistCarmackReviewGateEvaluation(t *testing.T) {
	eval, client := newTestEvaluator(t)
	ctx := context.Background()

	seedGateLoop(t, client, "loop-cr-1", entloop.StateReviewing, "sha-1", 1)

	t.Run("refuses before deep review passed at the head", func(t *testing.T) {
		_, err := eval.PersistCarmackReviewGateEvaluation(ctx, ReviewGateInput{
			LoopID: "loop-cr-1", HeadSHA: "sha-1", LoopVersion: 1,
			RawOutput: json.RawMessage(`{"gatePassed": true, "blockingFindings": []}`),
		}, t0)
		assert.Error(t, err)
	})

	t.Run("runs once the prerequisite holds", func(t *testing.T) {
		_, err := eval.PersistDeepReviewGateEvaluation(ctx, ReviewGateInput{
			LoopID: "loop-cr-1", HeadSHA: "sha-1", LoopVersion: 1,
			RawOutput: json.RawMessage(`{"gatePassed": true, "blockingFindings": []}`),
		}, t0)
		require.NoError(t, err)

		ok, err := eval.CanRunCarmackReview(ctx, "loop-cr-1", "sha-1")
		require.NoError(t, err)
		assert.True(t, ok)

		res, err := eval.PersistCarmackReviewGateEvaluation(ctx, ReviewGateInput{
			LoopID: "loop-cr-1", HeadSHA: "sha-1", LoopVersion: 1,
			RawOutput: json.RawMessage(`{"gatePassed": true, "blockingFindings": []}`),
		}, t0.Add(time.Second))
		require.NoError(t, err)
		assert.Equal(t, "passed", res.Status)
		assert.Nil(t, res.ErrorCode)
	})
}
