package loop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entloop "github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/outboxaction"
	testdb "github.com/codeready-toolchain/loopd/test/database"
)

func TestRegistry_Enroll(t *testing.T) {
	client := testdb.NewTestClient(t)
	reg := NewRegistry(client.Client)
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	pr := 42
	row, err := reg.Enroll(ctx, EnrollInput{
		UserID:       "user-1",
		RepoFullName: "acme/widgets",
		PRNumber:     &pr,
		ThreadID:     "thread-1",
	}, now)
	require.NoError(t, err)
	assert.Equal(t, entloop.StatePlanning, row.State)
	assert.Equal(t, entloop.PlanApprovalPolicyAuto, row.PlanApprovalPolicy)
	assert.NotEmpty(t, row.ID)

	t.Run("second active loop on the same thread is rejected", func(t *testing.T) {
		_, err := reg.Enroll(ctx, EnrollInput{
			UserID:       "user-1",
			RepoFullName: "acme/widgets",
			ThreadID:     "thread-1",
		}, now)
		assert.ErrorIs(t, err, ErrActiveLoopExists)
	})

	t.Run("second active loop on the same PR is rejected", func(t *testing.T) {
		_, err := reg.Enroll(ctx, EnrollInput{
			UserID:       "user-1",
			RepoFullName: "acme/widgets",
			PRNumber:     &pr,
			ThreadID:     "thread-other",
		}, now)
		assert.ErrorIs(t, err, ErrActiveLoopExists)
	})

	t.Run("lookups find the active loop", func(t *testing.T) {
		byPR, err := reg.GetActiveLoopForPR(ctx, "acme/widgets", pr)
		require.NoError(t, err)
		assert.Equal(t, row.ID, byPR.ID)

		byThread, err := reg.GetActiveLoopForThread(ctx, "user-1", "thread-1")
		require.NoError(t, err)
		assert.Equal(t, row.ID, byThread.ID)

		_, err = reg.GetActiveLoopForPR(ctx, "acme/widgets", 999)
		assert.ErrorIs(t, err, ErrLoopNotFound)
	})

	t.Run("terminal loop frees the scope for re-enrollment", func(t *testing.T) {
		_, err := reg.ManualStop(ctx, row.ID, "operator request", now.Add(time.Minute))
		require.NoError(t, err)

		again, err := reg.Enroll(ctx, EnrollInput{
			UserID:       "user-1",
			RepoFullName: "acme/widgets",
			PRNumber:     &pr,
			ThreadID:     "thread-1",
		}, now.Add(2*time.Minute))
		require.NoError(t, err)
		assert.NotEqual(t, row.ID, again.ID)
	})
}

func TestRegistry_ManualStopCancelsOutbox(t *testing.T) {
	client := testdb.NewTestClient(t)
	reg := NewRegistry(client.Client)
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	row := seedLoop(t, client.Client, "loop-stop-1", entloop.StateImplementing, nil)

	for i, status := range []outboxaction.Status{outboxaction.StatusPending, outboxaction.StatusRunning, outboxaction.StatusCompleted} {
		_, err := client.Client.OutboxAction.Create().
			SetID(string(rune('a' + i))).
			SetLoopID(row.ID).
			SetTransitionSeq(i + 1).
			SetActionType(outboxaction.ActionTypePublishStatusComment).
			SetSupersessionGroup("publication_status").
			SetActionKey(string(rune('a' + i))).
			SetStatus(status).
			SetCreatedAt(now).
			SetUpdatedAt(now).
			Save(ctx)
		require.NoError(t, err)
	}

	res, err := reg.ManualStop(ctx, row.ID, "user asked", now)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, res.Outcome)
	assert.Equal(t, entloop.StateStopped, res.NextState)

	stopped, err := client.Client.Loop.Get(ctx, row.ID)
	require.NoError(t, err)
	require.NotNil(t, stopped.StopReason)
	assert.Equal(t, "user asked", *stopped.StopReason)

	canceled, err := client.Client.OutboxAction.Query().
		Where(outboxaction.LoopID(row.ID), outboxaction.StatusEQ(outboxaction.StatusCanceled)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, canceled, 2, "pending and running actions are canceled, completed is left alone")
	for _, oa := range canceled {
		require.NotNil(t, oa.CanceledReason)
		assert.Equal(t, "canceled_due_to_stop", *oa.CanceledReason)
	}

	t.Run("stopping again is a terminal_noop", func(t *testing.T) {
		res, err := reg.ManualStop(ctx, row.ID, "again", now.Add(time.Second))
		require.NoError(t, err)
		assert.Equal(t, OutcomeTerminalNoop, res.Outcome)
	})
}
