// Package parity records behavioural-parity samples while two coordinator
// implementations run side by side, and decides cutover and rollback from
// the bucketed match rates.
package parity

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/loopd/ent"
	"github.com/codeready-toolchain/loopd/ent/paritysample"
	"github.com/codeready-toolchain/loopd/pkg/metrics"
)

// SLO thresholds applied when the caller passes no overrides.
const (
	DefaultCutoverThreshold  = 0.999
	DefaultRollbackThreshold = 0.99
)

// BucketKey identifies one parity bucket.
type BucketKey struct {
	CauseType   string
	TargetClass string
}

// BucketStats aggregates the eligible samples of one bucket. Parity is 1
// when the bucket saw no eligible samples.
type BucketStats struct {
	Key           BucketKey
	EligibleCount int
	MatchedCount  int
	Parity        float64
}

// SloResult is the cutover/rollback decision over a set of buckets.
type SloResult struct {
	CutoverEligible  bool
	RollbackRequired bool
}

// Recorder appends samples and computes bucket statistics.
type Recorder struct {
	client *ent.Client
}

func NewRecorder(client *ent.Client) *Recorder {
	return &Recorder{client: client}
}

// RecordSample appends one parity observation. Samples are append-only;
// nothing ever updates or deletes them.
func (r *Recorder) RecordSample(ctx context.Context, causeType, targetClass string, matched, eligible bool, observedAt time.Time) (*ent.ParitySample, error) {
	row, err := r.client.ParitySample.Create().
		SetID(uuid.New().String()).
		SetCauseType(causeType).
		SetTargetClass(targetClass).
		SetMatched(matched).
		SetEligible(eligible).
		SetObservedAt(observedAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("recording parity sample: %w", err)
	}
	metrics.ParitySamples.WithLabelValues(causeType, targetClass, boolLabel(matched)).Inc()
	return row, nil
}

// GetBucketStats groups the eligible samples observed in [windowStart,
// windowEnd) by (causeType, targetClass). Buckets come back sorted by key so
// callers get a stable order.
func (r *Recorder) GetBucketStats(ctx context.Context, windowStart, windowEnd time.Time) ([]BucketStats, error) {
	rows, err := r.client.ParitySample.Query().
		Where(
			paritysample.Eligible(true),
			paritysample.ObservedAtGTE(windowStart),
			paritysample.ObservedAtLT(windowEnd),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying parity samples: %w", err)
	}

	byKey := make(map[BucketKey]*BucketStats)
	for _, row := range rows {
		key := BucketKey{CauseType: row.CauseType, TargetClass: row.TargetClass}
		stats, ok := byKey[key]
		if !ok {
			stats = &BucketStats{Key: key}
			byKey[key] = stats
		}
		stats.EligibleCount++
		if row.Matched {
			stats.MatchedCount++
		}
	}

	out := make([]BucketStats, 0, len(byKey))
	for _, stats := range byKey {
		stats.Parity = bucketParity(stats.MatchedCount, stats.EligibleCount)
		out = append(out, *stats)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Key.CauseType != out[j].Key.CauseType {
			return out[i].Key.CauseType < out[j].Key.CauseType
		}
		return out[i].Key.TargetClass < out[j].Key.TargetClass
	})
	return out, nil
}

// EvaluateSlo decides cutover and rollback from bucket statistics. Cutover
// needs every bucket populated and above the cutover threshold with no
// critical invariant violation; rollback triggers on a violation or any
// populated bucket below the rollback threshold.
func EvaluateSlo(buckets []BucketStats, criticalInvariantViolation bool, cutoverThreshold, rollbackThreshold float64) SloResult {
	if cutoverThreshold <= 0 {
		cutoverThreshold = DefaultCutoverThreshold
	}
	if rollbackThreshold <= 0 {
		rollbackThreshold = DefaultRollbackThreshold
	}

	res := SloResult{
		CutoverEligible:  len(buckets) > 0 && !criticalInvariantViolation,
		RollbackRequired: criticalInvariantViolation,
	}
	for _, b := range buckets {
		if b.EligibleCount == 0 || b.Parity < cutoverThreshold {
			res.CutoverEligible = false
		}
		if b.EligibleCount > 0 && b.Parity < rollbackThreshold {
			res.RollbackRequired = true
		}
	}
	return res
}

func bucketParity(matched, eligible int) float64 {
	if eligible == 0 {
		return 1
	}
	return float64(matched) / float64(eligible)
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
