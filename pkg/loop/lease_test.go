package loop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/codeready-toolchain/loopd/test/database"
)

func TestLeaseService_AcquireAndSteal(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewLeaseService(client.Client)
	ctx := context.Background()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// worker-a acquires at 00:00:00 with a 60s TTL.
	res, err := svc.Acquire(ctx, "loop-1", "worker-a", time.Minute, t0)
	require.NoError(t, err)
	assert.True(t, res.Acquired)
	assert.Equal(t, 1, res.LeaseEpoch)
	epochA := res.LeaseEpoch

	// worker-b is denied at 00:00:30 and told who holds the lease.
	res, err = svc.Acquire(ctx, "loop-1", "worker-b", time.Minute, t0.Add(30*time.Second))
	require.NoError(t, err)
	assert.False(t, res.Acquired)
	assert.Equal(t, "held_by_other", res.Reason)
	require.NotNil(t, res.LeaseOwner)
	assert.Equal(t, "worker-a", *res.LeaseOwner)

	// worker-b steals at 00:02:00, after expiry, with a strictly greater epoch.
	res, err = svc.Acquire(ctx, "loop-1", "worker-b", time.Minute, t0.Add(2*time.Minute))
	require.NoError(t, err)
	assert.True(t, res.Acquired)
	require.NotNil(t, res.LeaseOwner)
	assert.Equal(t, "worker-b", *res.LeaseOwner)
	assert.Greater(t, res.LeaseEpoch, epochA)
}

func TestLeaseService_ReacquireExtends(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewLeaseService(client.Client)
	ctx := context.Background()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	res, err := svc.Acquire(ctx, "loop-2", "worker-a", time.Minute, t0)
	require.NoError(t, err)
	require.True(t, res.Acquired)

	// The holder may extend before expiry; the epoch still advances.
	res, err = svc.Acquire(ctx, "loop-2", "worker-a", time.Minute, t0.Add(30*time.Second))
	require.NoError(t, err)
	assert.True(t, res.Acquired)
	require.NotNil(t, res.LeaseExpiresAt)
	assert.Equal(t, t0.Add(90*time.Second), res.LeaseExpiresAt.UTC())
}

func TestLeaseService_Release(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewLeaseService(client.Client)
	ctx := context.Background()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Acquire(ctx, "loop-3", "worker-a", time.Minute, t0)
	require.NoError(t, err)

	ok, err := svc.Release(ctx, "loop-3", "worker-b", t0.Add(time.Second))
	require.NoError(t, err)
	assert.False(t, ok, "non-owner must not release")

	ok, err = svc.Release(ctx, "loop-3", "worker-a", t0.Add(time.Second))
	require.NoError(t, err)
	assert.True(t, ok)

	// A released lease carries no owner; the epoch is all that remains.
	row, err := client.Client.LoopLease.Get(ctx, "loop-3")
	require.NoError(t, err)
	assert.Nil(t, row.LeaseOwner)

	// Released lease is immediately acquirable by anyone.
	res, err := svc.Acquire(ctx, "loop-3", "worker-b", time.Minute, t0.Add(2*time.Second))
	require.NoError(t, err)
	assert.True(t, res.Acquired)
}

func TestLeaseService_Holds(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewLeaseService(client.Client)
	ctx := context.Background()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	res, err := svc.Acquire(ctx, "loop-4", "worker-a", time.Minute, t0)
	require.NoError(t, err)
	require.True(t, res.Acquired)

	ok, err := svc.Holds(ctx, "loop-4", "worker-a", res.LeaseEpoch, t0.Add(10*time.Second))
	require.NoError(t, err)
	assert.True(t, ok)

	// Wrong epoch means a displaced holder.
	ok, err = svc.Holds(ctx, "loop-4", "worker-a", res.LeaseEpoch+1, t0.Add(10*time.Second))
	require.NoError(t, err)
	assert.False(t, ok)

	// Expiry invalidates the hold.
	ok, err = svc.Holds(ctx, "loop-4", "worker-a", res.LeaseEpoch, t0.Add(2*time.Minute))
	require.NoError(t, err)
	assert.False(t, ok)
}
