package gates

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entloop "github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/pkg/loop"
	"github.com/codeready-toolchain/loopd/pkg/models"
)

func TestClassifyVideoCaptureFailure(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"HTTP 401 from capture API", FailureClassAuth},
		{"request Forbidden", FailureClassAuth},
		{"bad token supplied", FailureClassAuth},
		{"permission denied reading bucket", FailureClassAuth},
		{"429 too many requests", FailureClassQuota},
		{"monthly quota exceeded", FailureClassQuota},
		{"insufficient credits on account", FailureClassQuota},
		{"selector #submit not found", FailureClassScript},
		{"playwright timeout waiting for dom", FailureClassScript},
		{"navigation failed after redirect", FailureClassScript},
		{"connection reset by peer", FailureClassInfra},
		{"", FailureClassInfra},
		// auth outranks script when both match
		{"script got 403", FailureClassAuth},
		// quota outranks script
		{"rate limit hit by playwright", FailureClassQuota},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyVideoCaptureFailure(tt.message), "message %q", tt.message)
	}
}

func TestPersistVideoCaptureOutcome(t *testing.T) {
	eval, client := newTestEvaluator(t)
	ctx := context.Background()

	t.Run("success advances ui_testing to pr_babysitting", func(t *testing.T) {
		seedGateLoop(t, client, "loop-v-1", entloop.StateUITesting, "sha-1", 1)
		key := "videos/loop-v-1/run-9.mp4"

		res, err := eval.PersistVideoCaptureOutcome(ctx, VideoOutcomeInput{
			LoopID:      "loop-v-1",
			HeadSHA:     "sha-1",
			LoopVersion: 1,
			ArtifactKey: &key,
		}, t0)
		require.NoError(t, err)
		assert.Equal(t, models.EventVideoCaptureSucceeded, res.Event)
		assert.Equal(t, entloop.StatePrBabysitting, res.Transition.NextState)

		row, err := client.Loop.Get(ctx, "loop-v-1")
		require.NoError(t, err)
		require.NotNil(t, row.VideoCaptureStatus)
		assert.Equal(t, "succeeded", *row.VideoCaptureStatus)
		require.NotNil(t, row.LatestVideoArtifactKey)
		assert.Equal(t, key, *row.LatestVideoArtifactKey)
		assert.NotNil(t, row.LatestVideoCapturedAt)
		assert.Nil(t, row.LatestVideoFailureClass)
	})

	t.Run("failure classifies and bounces to implementing", func(t *testing.T) {
		seedGateLoop(t, client, "loop-v-2", entloop.StateUITesting, "sha-2", 1)
		msg := "playwright timeout waiting for selector"

		res, err := eval.PersistVideoCaptureOutcome(ctx, VideoOutcomeInput{
			LoopID:         "loop-v-2",
			HeadSHA:        "sha-2",
			LoopVersion:    1,
			FailureMessage: &msg,
		}, t0)
		require.NoError(t, err)
		assert.Equal(t, models.EventVideoCaptureFailed, res.Event)
		assert.Equal(t, FailureClassScript, res.FailureClass)
		assert.Equal(t, entloop.StateImplementing, res.Transition.NextState)

		row, err := client.Loop.Get(ctx, "loop-v-2")
		require.NoError(t, err)
		require.NotNil(t, row.VideoCaptureStatus)
		assert.Equal(t, "failed", *row.VideoCaptureStatus)
		require.NotNil(t, row.LatestVideoFailureClass)
		assert.Equal(t, FailureClassScript, *row.LatestVideoFailureClass)
		assert.NotNil(t, row.LatestVideoFailedAt)
	})

	t.Run("older loop version never downgrades", func(t *testing.T) {
		seedGateLoop(t, client, "loop-v-3", entloop.StateUITesting, "sha-3", 5)
		msg := "infra blip"

		res, err := eval.PersistVideoCaptureOutcome(ctx, VideoOutcomeInput{
			LoopID:         "loop-v-3",
			HeadSHA:        "sha-3",
			LoopVersion:    4,
			FailureMessage: &msg,
		}, t0)
		require.NoError(t, err)
		assert.Equal(t, loop.OutcomeStaleNoop, res.Transition.Outcome)

		row, err := client.Loop.Get(ctx, "loop-v-3")
		require.NoError(t, err)
		assert.Equal(t, entloop.StateUITesting, row.State)
		assert.Nil(t, row.VideoCaptureStatus)
	})

	t.Run("same version different head never downgrades", func(t *testing.T) {
		seedGateLoop(t, client, "loop-v-4", entloop.StateUITesting, "sha-current", 2)
		msg := "infra blip"

		res, err := eval.PersistVideoCaptureOutcome(ctx, VideoOutcomeInput{
			LoopID:         "loop-v-4",
			HeadSHA:        "sha-stale",
			LoopVersion:    2,
			FailureMessage: &msg,
		}, t0)
		require.NoError(t, err)
		assert.Equal(t, loop.OutcomeStaleNoop, res.Transition.Outcome)
	})

	t.Run("done loop stays done on a late success", func(t *testing.T) {
		seedGateLoop(t, client, "loop-v-5", entloop.StateDone, "sha-5", 1)
		key := "videos/loop-v-5/final.mp4"

		res, err := eval.PersistVideoCaptureOutcome(ctx, VideoOutcomeInput{
			LoopID:      "loop-v-5",
			HeadSHA:     "sha-5",
			LoopVersion: 1,
			ArtifactKey: &key,
		}, t0)
		require.NoError(t, err)
		assert.Equal(t, loop.OutcomeUpdated, res.Transition.Outcome)
		assert.Equal(t, entloop.StateDone, res.Transition.NextState)

		row, err := client.Loop.Get(ctx, "loop-v-5")
		require.NoError(t, err)
		assert.Equal(t, entloop.StateDone, row.State)
		require.NotNil(t, row.LatestVideoArtifactKey)
		assert.Equal(t, key, *row.LatestVideoArtifactKey)
	})
}
