package parity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/codeready-toolchain/loopd/test/database"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestBucketStatsGroupsEligibleSamples(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	recorder := NewRecorder(client)
	ctx := context.Background()

	seed := []struct {
		causeType   string
		targetClass string
		matched     bool
		eligible    bool
		at          time.Time
	}{
		{"check_run.completed", "ci_gate", true, true, t0},
		{"check_run.completed", "ci_gate", true, true, t0.Add(time.Minute)},
		{"check_run.completed", "ci_gate", false, true, t0.Add(2 * time.Minute)},
		{"pull_request_review", "review_thread_gate", true, true, t0.Add(3 * time.Minute)},
		// Ineligible and out-of-window samples stay out of the stats.
		{"check_run.completed", "ci_gate", false, false, t0.Add(4 * time.Minute)},
		{"check_run.completed", "ci_gate", false, true, t0.Add(2 * time.Hour)},
	}
	for _, s := range seed {
		_, err := recorder.RecordSample(ctx, s.causeType, s.targetClass, s.matched, s.eligible, s.at)
		require.NoError(t, err)
	}

	buckets, err := recorder.GetBucketStats(ctx, t0, t0.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	assert.Equal(t, BucketKey{"check_run.completed", "ci_gate"}, buckets[0].Key)
	assert.Equal(t, 3, buckets[0].EligibleCount)
	assert.Equal(t, 2, buckets[0].MatchedCount)
	assert.InDelta(t, 2.0/3.0, buckets[0].Parity, 1e-9)

	assert.Equal(t, BucketKey{"pull_request_review", "review_thread_gate"}, buckets[1].Key)
	assert.Equal(t, 1, buckets[1].EligibleCount)
	assert.Equal(t, 1.0, buckets[1].Parity)
}

func TestBucketStatsEmptyWindow(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	recorder := NewRecorder(client)

	buckets, err := recorder.GetBucketStats(context.Background(), t0, t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, buckets)
}

func TestEvaluateSlo(t *testing.T) {
	healthy := []BucketStats{
		{Key: BucketKey{"check_run.completed", "ci_gate"}, EligibleCount: 1000, MatchedCount: 1000, Parity: 1},
		{Key: BucketKey{"pull_request_review", "review_thread_gate"}, EligibleCount: 500, MatchedCount: 500, Parity: 1},
	}

	t.Run("all buckets above cutover", func(t *testing.T) {
		res := EvaluateSlo(healthy, false, DefaultCutoverThreshold, DefaultRollbackThreshold)
		assert.True(t, res.CutoverEligible)
		assert.False(t, res.RollbackRequired)
	})

	t.Run("no buckets means no cutover", func(t *testing.T) {
		res := EvaluateSlo(nil, false, DefaultCutoverThreshold, DefaultRollbackThreshold)
		assert.False(t, res.CutoverEligible)
		assert.False(t, res.RollbackRequired)
	})

	t.Run("bucket between thresholds blocks cutover only", func(t *testing.T) {
		buckets := []BucketStats{
			{Key: BucketKey{"check_run.completed", "ci_gate"}, EligibleCount: 1000, MatchedCount: 995, Parity: 0.995},
		}
		res := EvaluateSlo(buckets, false, DefaultCutoverThreshold, DefaultRollbackThreshold)
		assert.False(t, res.CutoverEligible)
		assert.False(t, res.RollbackRequired)
	})

	t.Run("bucket below rollback threshold forces rollback", func(t *testing.T) {
		buckets := []BucketStats{
			{Key: BucketKey{"check_run.completed", "ci_gate"}, EligibleCount: 100, MatchedCount: 90, Parity: 0.9},
		}
		res := EvaluateSlo(buckets, false, DefaultCutoverThreshold, DefaultRollbackThreshold)
		assert.False(t, res.CutoverEligible)
		assert.True(t, res.RollbackRequired)
	})

	t.Run("critical invariant violation overrides everything", func(t *testing.T) {
		res := EvaluateSlo(healthy, true, DefaultCutoverThreshold, DefaultRollbackThreshold)
		assert.False(t, res.CutoverEligible)
		assert.True(t, res.RollbackRequired)
	})

	t.Run("empty bucket blocks cutover without rollback", func(t *testing.T) {
		buckets := []BucketStats{
			{Key: BucketKey{"check_run.completed", "ci_gate"}, EligibleCount: 0, MatchedCount: 0, Parity: 1},
		}
		res := EvaluateSlo(buckets, false, DefaultCutoverThreshold, DefaultRollbackThreshold)
		assert.False(t, res.CutoverEligible)
		assert.False(t, res.RollbackRequired)
	})
}
