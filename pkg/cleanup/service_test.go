package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/loopd/ent"
	entloop "github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/outboxaction"
	"github.com/codeready-toolchain/loopd/pkg/config"
	testdb "github.com/codeready-toolchain/loopd/test/database"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newRetentionService(t *testing.T) (*Service, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := &config.RetentionConfig{
		SignalTTL:       24 * time.Hour,
		ActionTTL:       24 * time.Hour,
		DeliveryTTL:     24 * time.Hour,
		ParityTTL:       24 * time.Hour,
		CleanupInterval: time.Hour,
	}
	return NewService(cfg, client.Client), client.Client
}

func seedRetentionLoop(t *testing.T, client *ent.Client, id string) {
	t.Helper()
	_, err := client.Loop.Create().
		SetID(id).
		SetUserID("user-1").
		SetRepoFullName("acme/widgets").
		SetThreadID("thread-" + id).
		SetState(entloop.StateImplementing).
		Save(context.Background())
	require.NoError(t, err)
}

func TestRunAllRemovesOnlyExpiredProcessedSignals(t *testing.T) {
	svc, client := newRetentionService(t)
	ctx := context.Background()
	seedRetentionLoop(t, client, "loop-1")

	old := t0.Add(-48 * time.Hour)
	for _, row := range []struct {
		id          string
		processedAt *time.Time
	}{
		{"sig-expired", &old},
		{"sig-recent", &t0},
		{"sig-unprocessed", nil},
	} {
		create := client.InboxSignal.Create().
			SetID(row.id).
			SetLoopID("loop-1").
			SetCauseType("check_run_completed").
			SetCanonicalCauseID("cause-" + row.id).
			SetReceivedAt(t0.Add(-72 * time.Hour))
		if row.processedAt != nil {
			create.SetProcessedAt(*row.processedAt)
		}
		_, err := create.Save(ctx)
		require.NoError(t, err)
	}

	svc.runAll(ctx, t0)

	remaining, err := client.InboxSignal.Query().IDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"sig-recent", "sig-unprocessed"}, remaining)
}

func TestRunAllRemovesTerminalActionsWithAttemptLedger(t *testing.T) {
	svc, client := newRetentionService(t)
	ctx := context.Background()
	seedRetentionLoop(t, client, "loop-2")

	old := t0.Add(-48 * time.Hour)
	for _, row := range []struct {
		id     string
		status outboxaction.Status
		at     time.Time
	}{
		{"act-expired", outboxaction.StatusCompleted, old},
		{"act-canceled", outboxaction.StatusCanceled, old},
		{"act-pending", outboxaction.StatusPending, old},
		{"act-recent", outboxaction.StatusCompleted, t0},
	} {
		_, err := client.OutboxAction.Create().
			SetID(row.id).
			SetLoopID("loop-2").
			SetTransitionSeq(1).
			SetActionType(outboxaction.ActionTypeEmitTelemetry).
			SetSupersessionGroup("emit_telemetry").
			SetActionKey("key-" + row.id).
			SetStatus(row.status).
			SetCreatedAt(row.at).
			SetUpdatedAt(row.at).
			Save(ctx)
		require.NoError(t, err)
	}
	_, err := client.OutboxAttempt.Create().
		SetID("attempt-1").
		SetOutboxID("act-expired").
		SetAttempt(1).
		SetStatus("completed").
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx, t0)

	remaining, err := client.OutboxAction.Query().IDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"act-pending", "act-recent"}, remaining)

	attempts, err := client.OutboxAttempt.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, attempts)
}

func TestRunAllRemovesExpiredDeliveriesAndSamples(t *testing.T) {
	svc, client := newRetentionService(t)
	ctx := context.Background()

	old := t0.Add(-48 * time.Hour)
	_, err := client.WebhookDelivery.Create().
		SetID("delivery-expired").
		SetEventType("check_run.completed").
		SetClaimantToken("claim-1").
		SetClaimExpiresAt(old).
		SetCompletedAt(old).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.WebhookDelivery.Create().
		SetID("delivery-open").
		SetEventType("check_run.completed").
		SetClaimantToken("claim-2").
		SetClaimExpiresAt(old).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.ParitySample.Create().
		SetID("sample-expired").
		SetCauseType("check_run_completed").
		SetTargetClass("ci_gate").
		SetMatched(true).
		SetObservedAt(old).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.ParitySample.Create().
		SetID("sample-recent").
		SetCauseType("check_run_completed").
		SetTargetClass("ci_gate").
		SetMatched(true).
		SetObservedAt(t0).
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx, t0)

	deliveries, err := client.WebhookDelivery.Query().IDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"delivery-open"}, deliveries)

	samples, err := client.ParitySample.Query().IDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"sample-recent"}, samples)
}
