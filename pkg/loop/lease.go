package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/loopd/ent"
	"github.com/codeready-toolchain/loopd/ent/looplease"
)

// AcquireResult reports a lease attempt. When Acquired is false, LeaseOwner
// and LeaseExpiresAt describe the current holder so callers can log who won.
type AcquireResult struct {
	Acquired       bool
	Reason         string // "held_by_other" when denied
	LeaseEpoch     int
	LeaseOwner     *string
	LeaseExpiresAt *time.Time
}

// LeaseService hands out the per-loop serialization lease. At most one owner
// holds a loop at a time; every successful acquisition by a different owner
// (or after expiry) bumps the epoch so stale holders can be fenced at
// claim/complete time.
type LeaseService struct {
	client *ent.Client
}

func NewLeaseService(client *ent.Client) *LeaseService {
	return &LeaseService{client: client}
}

// Acquire takes the lease for owner, extending it when the owner already
// holds it. A fresh row starts at epoch 1; every steal or re-acquire after
// expiry increments the epoch.
func (s *LeaseService) Acquire(ctx context.Context, loopID, owner string, ttl time.Duration, now time.Time) (AcquireResult, error) {
	expires := now.Add(ttl)

	created, err := s.client.LoopLease.Create().
		SetID(loopID).
		SetLeaseOwner(owner).
		SetLeaseEpoch(1).
		SetLeaseExpiresAt(expires).
		Save(ctx)
	if err == nil {
		return AcquireResult{Acquired: true, LeaseEpoch: 1, LeaseOwner: &owner, LeaseExpiresAt: created.LeaseExpiresAt}, nil
	}
	if !ent.IsConstraintError(err) {
		return AcquireResult{}, fmt.Errorf("inserting lease for loop %s: %w", loopID, err)
	}

	// Row exists: extend our own lease or steal an expired one. The epoch
	// bump on every successful update fences the previous holder.
	n, err := s.client.LoopLease.Update().
		Where(
			looplease.IDEQ(loopID),
			looplease.Or(
				looplease.LeaseOwnerEQ(owner),
				looplease.LeaseOwnerIsNil(),
				looplease.LeaseExpiresAtIsNil(),
				looplease.LeaseExpiresAtLTE(now),
			),
		).
		SetLeaseOwner(owner).
		AddLeaseEpoch(1).
		SetLeaseExpiresAt(expires).
		Save(ctx)
	if err != nil {
		return AcquireResult{}, fmt.Errorf("updating lease for loop %s: %w", loopID, err)
	}

	row, getErr := s.client.LoopLease.Get(ctx, loopID)
	if getErr != nil {
		return AcquireResult{}, fmt.Errorf("reading lease for loop %s: %w", loopID, getErr)
	}
	if n == 0 {
		return AcquireResult{
			Acquired:       false,
			Reason:         "held_by_other",
			LeaseEpoch:     row.LeaseEpoch,
			LeaseOwner:     row.LeaseOwner,
			LeaseExpiresAt: row.LeaseExpiresAt,
		}, nil
	}
	return AcquireResult{Acquired: true, LeaseEpoch: row.LeaseEpoch, LeaseOwner: row.LeaseOwner, LeaseExpiresAt: row.LeaseExpiresAt}, nil
}

// Release gives up the lease if owner still holds it: the owner is zeroed
// and the expiry brought forward, leaving the epoch as the only trace of the
// previous hold. Returns false when someone else holds (or already stole)
// the lease.
func (s *LeaseService) Release(ctx context.Context, loopID, owner string, now time.Time) (bool, error) {
	n, err := s.client.LoopLease.Update().
		Where(
			looplease.IDEQ(loopID),
			looplease.LeaseOwnerEQ(owner),
		).
		ClearLeaseOwner().
		SetLeaseExpiresAt(now).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("releasing lease for loop %s: %w", loopID, err)
	}
	return n > 0, nil
}

// Holds reports whether owner currently holds an unexpired lease at the
// given epoch. The outbox uses this to fence stale workers.
func (s *LeaseService) Holds(ctx context.Context, loopID, owner string, epoch int, now time.Time) (bool, error) {
	ok, err := s.client.LoopLease.Query().
		Where(
			looplease.IDEQ(loopID),
			looplease.LeaseOwnerEQ(owner),
			looplease.LeaseEpochEQ(epoch),
			looplease.LeaseExpiresAtGT(now),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("checking lease for loop %s: %w", loopID, err)
	}
	return ok, nil
}
