package outbox

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/loopd/ent"
	entloop "github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/outboxaction"
	"github.com/codeready-toolchain/loopd/ent/outboxattempt"
	testdb "github.com/codeready-toolchain/loopd/test/database"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func seedLoopWithLease(t *testing.T, client *ent.Client, loopID, owner string, epoch int, expires time.Time) {
	t.Helper()
	ctx := context.Background()
	_, err := client.Loop.Create().
		SetID(loopID).
		SetUserID("user-1").
		SetRepoFullName("acme/widgets").
		SetThreadID("thread-" + loopID).
		SetState(entloop.StatePrBabysitting).
		SetCreatedAt(t0).
		SetUpdatedAt(t0).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.LoopLease.Create().
		SetID(loopID).
		SetLeaseOwner(owner).
		SetLeaseEpoch(epoch).
		SetLeaseExpiresAt(expires).
		Save(ctx)
	require.NoError(t, err)
}

func TestService_RetryThenSuccess(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, DefaultRetryPolicy())
	ctx := context.Background()

	seedLoopWithLease(t, client.Client, "loop-1", "worker-a", 1, t0.Add(time.Hour))

	row, err := svc.Enqueue(ctx, "loop-1", 7, outboxaction.ActionTypePublishCheckSummary, "check-summary:7", map[string]interface{}{"summary": "ci failed"}, t0)
	require.NoError(t, err)
	assert.Equal(t, outboxaction.StatusPending, row.Status)

	claimed, err := svc.Claim(ctx, "loop-1", "worker-a", 1, nil, t0.Add(2*time.Second))
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, 1, claimed.AttemptCount)

	// First attempt fails with a retriable infra error at 00:00:04.
	row, err = svc.Complete(ctx, CompleteInput{
		OutboxID:     claimed.ID,
		LeaseOwner:   "worker-a",
		Succeeded:    false,
		Retriable:    true,
		ErrorClass:   "infra",
		ErrorCode:    "github_5xx",
		ErrorMessage: "502 from api.github.com",
	}, t0.Add(4*time.Second))
	require.NoError(t, err)
	assert.Equal(t, outboxaction.StatusPending, row.Status)
	require.NotNil(t, row.NextRetryAt)
	assert.Equal(t, t0.Add(34*time.Second), row.NextRetryAt.UTC())

	// Not due yet at 00:00:10.
	claimed, err = svc.Claim(ctx, "loop-1", "worker-a", 1, nil, t0.Add(10*time.Second))
	require.NoError(t, err)
	assert.Nil(t, claimed)

	// Due at 00:00:34; attempt count moves to 2.
	claimed, err = svc.Claim(ctx, "loop-1", "worker-a", 1, nil, t0.Add(34*time.Second))
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, 2, claimed.AttemptCount)

	row, err = svc.Complete(ctx, CompleteInput{
		OutboxID:   claimed.ID,
		LeaseOwner: "worker-a",
		Succeeded:  true,
	}, t0.Add(35*time.Second))
	require.NoError(t, err)
	assert.Equal(t, outboxaction.StatusCompleted, row.Status)

	attempts, err := client.Client.OutboxAttempt.Query().
		Where(outboxattempt.OutboxID(row.ID)).
		Order(ent.Asc(outboxattempt.FieldAttempt)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, outboxattempt.StatusRetryScheduled, attempts[0].Status)
	assert.Equal(t, outboxattempt.StatusCompleted, attempts[1].Status)
}

func TestService_EnqueueSupersedesGroup(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, DefaultRetryPolicy())
	ctx := context.Background()

	seedLoopWithLease(t, client.Client, "loop-2", "worker-a", 1, t0.Add(time.Hour))

	older, err := svc.Enqueue(ctx, "loop-2", 3, outboxaction.ActionTypePublishStatusComment, "status:3", nil, t0)
	require.NoError(t, err)

	// publish_check_summary shares publication_status with the comment action.
	newer, err := svc.Enqueue(ctx, "loop-2", 4, outboxaction.ActionTypePublishCheckSummary, "summary:4", nil, t0.Add(time.Second))
	require.NoError(t, err)

	got, err := client.Client.OutboxAction.Get(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, outboxaction.StatusCanceled, got.Status)
	require.NotNil(t, got.CanceledReason)
	assert.Equal(t, "superseded_by_newer_transition", *got.CanceledReason)
	require.NotNil(t, got.SupersededByOutboxID)
	assert.Equal(t, newer.ID, *got.SupersededByOutboxID)

	t.Run("a different group is untouched", func(t *testing.T) {
		fix, err := svc.Enqueue(ctx, "loop-2", 2, outboxaction.ActionTypeEnqueueFixTask, "fix:2", nil, t0)
		require.NoError(t, err)
		_, err = svc.Enqueue(ctx, "loop-2", 5, outboxaction.ActionTypePublishStatusComment, "status:5", nil, t0.Add(2*time.Second))
		require.NoError(t, err)

		got, err := client.Client.OutboxAction.Get(ctx, fix.ID)
		require.NoError(t, err)
		assert.Equal(t, outboxaction.StatusPending, got.Status)
	})

	t.Run("a newer pending row survives an older enqueue", func(t *testing.T) {
		_, err := svc.Enqueue(ctx, "loop-2", 1, outboxaction.ActionTypePublishStatusComment, "status:1", nil, t0.Add(3*time.Second))
		require.NoError(t, err)

		got, err := client.Client.OutboxAction.Query().
			Where(outboxaction.LoopID("loop-2"), outboxaction.ActionKey("status:5")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, outboxaction.StatusPending, got.Status)
	})
}

func TestService_EnqueueReusesRowByActionKey(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, DefaultRetryPolicy())
	ctx := context.Background()

	seedLoopWithLease(t, client.Client, "loop-3", "worker-a", 1, t0.Add(time.Hour))

	first, err := svc.Enqueue(ctx, "loop-3", 1, outboxaction.ActionTypeEmitTelemetry, "telemetry:tick", nil, t0)
	require.NoError(t, err)

	claimed, err := svc.Claim(ctx, "loop-3", "worker-a", 1, nil, t0.Add(time.Second))
	require.NoError(t, err)
	require.NotNil(t, claimed)
	_, err = svc.Complete(ctx, CompleteInput{
		OutboxID: claimed.ID, LeaseOwner: "worker-a",
		Succeeded: false, Retriable: false, ErrorClass: "auth", ErrorCode: "github_401",
	}, t0.Add(2*time.Second))
	require.NoError(t, err)

	// Re-enqueueing the same key resurrects the failed row as fresh pending.
	again, err := svc.Enqueue(ctx, "loop-3", 2, outboxaction.ActionTypeEmitTelemetry, "telemetry:tick", nil, t0.Add(3*time.Second))
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, outboxaction.StatusPending, again.Status)
	assert.Equal(t, 0, again.AttemptCount)
	assert.Nil(t, again.LastErrorClass)
}

func TestService_ClaimRequiresValidLease(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, DefaultRetryPolicy())
	ctx := context.Background()

	seedLoopWithLease(t, client.Client, "loop-4", "worker-a", 3, t0.Add(time.Minute))
	_, err := svc.Enqueue(ctx, "loop-4", 1, outboxaction.ActionTypeEmitTelemetry, "telemetry:1", nil, t0)
	require.NoError(t, err)

	t.Run("wrong owner", func(t *testing.T) {
		claimed, err := svc.Claim(ctx, "loop-4", "worker-b", 3, nil, t0.Add(time.Second))
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})
	t.Run("stale epoch", func(t *testing.T) {
		claimed, err := svc.Claim(ctx, "loop-4", "worker-a", 2, nil, t0.Add(time.Second))
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})
	t.Run("expired lease", func(t *testing.T) {
		claimed, err := svc.Claim(ctx, "loop-4", "worker-a", 3, nil, t0.Add(2*time.Minute))
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})
	t.Run("action type filter", func(t *testing.T) {
		claimed, err := svc.Claim(ctx, "loop-4", "worker-a", 3,
			[]outboxaction.ActionType{outboxaction.ActionTypePublishVideoLink}, t0.Add(time.Second))
		require.NoError(t, err)
		assert.Nil(t, claimed)

		claimed, err = svc.Claim(ctx, "loop-4", "worker-a", 3,
			[]outboxaction.ActionType{outboxaction.ActionTypeEmitTelemetry}, t0.Add(time.Second))
		require.NoError(t, err)
		assert.NotNil(t, claimed)
	})
}

func TestService_CompleteGuards(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, DefaultRetryPolicy())
	ctx := context.Background()

	seedLoopWithLease(t, client.Client, "loop-5", "worker-a", 1, t0.Add(time.Hour))
	row, err := svc.Enqueue(ctx, "loop-5", 1, outboxaction.ActionTypeEmitTelemetry, "telemetry:1", nil, t0)
	require.NoError(t, err)

	t.Run("pending row cannot complete", func(t *testing.T) {
		_, err := svc.Complete(ctx, CompleteInput{OutboxID: row.ID, LeaseOwner: "worker-a", Succeeded: true}, t0)
		assert.ErrorIs(t, err, ErrNotRunningOrNotOwner)
	})

	claimed, err := svc.Claim(ctx, "loop-5", "worker-a", 1, nil, t0.Add(time.Second))
	require.NoError(t, err)
	require.NotNil(t, claimed)

	t.Run("wrong owner cannot complete", func(t *testing.T) {
		_, err := svc.Complete(ctx, CompleteInput{OutboxID: row.ID, LeaseOwner: "worker-b", Succeeded: true}, t0)
		assert.ErrorIs(t, err, ErrNotRunningOrNotOwner)
	})
	t.Run("unknown row", func(t *testing.T) {
		_, err := svc.Complete(ctx, CompleteInput{OutboxID: "missing", LeaseOwner: "worker-a", Succeeded: true}, t0)
		assert.ErrorIs(t, err, ErrNotFound)
	})
	t.Run("error message is trimmed and truncated", func(t *testing.T) {
		long := "  " + strings.Repeat("x", 2000)
		got, err := svc.Complete(ctx, CompleteInput{
			OutboxID: row.ID, LeaseOwner: "worker-a",
			Succeeded: false, Retriable: false, ErrorClass: "infra", ErrorMessage: long,
		}, t0.Add(2*time.Second))
		require.NoError(t, err)
		require.NotNil(t, got.LastErrorMessage)
		assert.Len(t, *got.LastErrorMessage, 1000)
	})
}

func TestService_ExhaustedBudgetFails(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, RetryPolicy{MaxAttempts: 2, BaseBackoff: time.Second, MaxBackoff: time.Minute})
	ctx := context.Background()

	seedLoopWithLease(t, client.Client, "loop-6", "worker-a", 1, t0.Add(time.Hour))
	row, err := svc.Enqueue(ctx, "loop-6", 1, outboxaction.ActionTypeEnqueueFixTask, "fix:1", nil, t0)
	require.NoError(t, err)

	now := t0
	for attempt := 1; attempt <= 2; attempt++ {
		now = now.Add(5 * time.Second)
		claimed, err := svc.Claim(ctx, "loop-6", "worker-a", 1, nil, now)
		require.NoError(t, err)
		require.NotNil(t, claimed, "attempt %d", attempt)

		row, err = svc.Complete(ctx, CompleteInput{
			OutboxID: row.ID, LeaseOwner: "worker-a",
			Succeeded: false, Retriable: true, ErrorClass: "infra",
		}, now)
		require.NoError(t, err)
	}
	assert.Equal(t, outboxaction.StatusFailed, row.Status, "budget exhausted on the final attempt")

	attempts, err := client.Client.OutboxAttempt.Query().
		Where(outboxattempt.OutboxID(row.ID)).
		Order(ent.Asc(outboxattempt.FieldAttempt)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, outboxattempt.StatusRetryScheduled, attempts[0].Status)
	assert.Equal(t, outboxattempt.StatusFailed, attempts[1].Status)
}

func TestService_RequeueOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, DefaultRetryPolicy())
	ctx := context.Background()

	seedLoopWithLease(t, client.Client, "loop-7", "worker-a", 1, t0.Add(time.Minute))
	_, err := svc.Enqueue(ctx, "loop-7", 1, outboxaction.ActionTypeEmitTelemetry, "telemetry:1", nil, t0)
	require.NoError(t, err)

	claimed, err := svc.Claim(ctx, "loop-7", "worker-a", 1, nil, t0.Add(time.Second))
	require.NoError(t, err)
	require.NotNil(t, claimed)

	// While the lease is alive nothing is touched.
	n, err := svc.RequeueOrphans(ctx, t0.Add(30*time.Second))
	require.NoError(t, err)
	assert.Zero(t, n)

	// Once the lease lapses the running row goes back to pending.
	n, err = svc.RequeueOrphans(ctx, t0.Add(2*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	row, err := client.Client.OutboxAction.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, outboxaction.StatusPending, row.Status)
	assert.Equal(t, 1, row.AttemptCount, "aborted attempt still burned budget")
	assert.Nil(t, row.ClaimedBy)
}
