package webhookledger

import (
	"context"
	"testing"
	"time"

	testdb "github.com/codeready-toolchain/loopd/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_ClaimLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	ledger := NewLedger(client.Client)
	ctx := context.Background()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("fresh delivery is claimed", func(t *testing.T) {
		res, err := ledger.Claim(ctx, "delivery-1", "worker-a", "check_run", t0)
		require.NoError(t, err)
		assert.Equal(t, OutcomeClaimedNew, res.Outcome)
		assert.True(t, res.ShouldProcess)
	})

	t.Run("second claim within TTL is rejected", func(t *testing.T) {
		res, err := ledger.Claim(ctx, "delivery-1", "worker-b", "check_run", t0.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, OutcomeInProgressFresh, res.Outcome)
		assert.False(t, res.ShouldProcess)
	})

	t.Run("expired claim is stolen", func(t *testing.T) {
		res, err := ledger.Claim(ctx, "delivery-1", "worker-b", "check_run", t0.Add(6*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, OutcomeStaleStolen, res.Outcome)
		assert.True(t, res.ShouldProcess)
	})

	t.Run("complete requires the owning token", func(t *testing.T) {
		ok, err := ledger.Complete(ctx, "delivery-1", "worker-a", t0.Add(7*time.Minute))
		require.NoError(t, err)
		assert.False(t, ok, "displaced claimant must not complete")

		ok, err = ledger.Complete(ctx, "delivery-1", "worker-b", t0.Add(7*time.Minute))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("re-delivery after completion", func(t *testing.T) {
		res, err := ledger.Claim(ctx, "delivery-1", "worker-c", "check_run", t0.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, OutcomeAlreadyCompleted, res.Outcome)
		assert.False(t, res.ShouldProcess)
	})

	t.Run("complete is idempotent", func(t *testing.T) {
		ok, err := ledger.Complete(ctx, "delivery-1", "worker-b", t0.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestLedger_Release(t *testing.T) {
	client := testdb.NewTestClient(t)
	ledger := NewLedger(client.Client)
	ctx := context.Background()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	res, err := ledger.Claim(ctx, "delivery-2", "worker-a", "pull_request", t0)
	require.NoError(t, err)
	require.True(t, res.ShouldProcess)

	// Release expires the claim in place; the next claimant steals immediately.
	ok, err := ledger.Release(ctx, "delivery-2", "worker-a", t0.Add(time.Second))
	require.NoError(t, err)
	assert.True(t, ok)

	res, err = ledger.Claim(ctx, "delivery-2", "worker-b", "pull_request", t0.Add(2*time.Second))
	require.NoError(t, err)
	assert.Equal(t, OutcomeStaleStolen, res.Outcome)
	assert.True(t, res.ShouldProcess)
}

func TestLedger_ReleaseWrongToken(t *testing.T) {
	client := testdb.NewTestClient(t)
	ledger := NewLedger(client.Client)
	ctx := context.Background()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := ledger.Claim(ctx, "delivery-3", "worker-a", "pull_request", t0)
	require.NoError(t, err)

	ok, err := ledger.Release(ctx, "delivery-3", "worker-b", t0)
	require.NoError(t, err)
	assert.False(t, ok)
}
