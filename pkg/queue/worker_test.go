package queue

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/loopd/ent"
	entloop "github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/outboxaction"
	"github.com/codeready-toolchain/loopd/pkg/config"
	"github.com/codeready-toolchain/loopd/pkg/gates"
	"github.com/codeready-toolchain/loopd/pkg/inbox"
	"github.com/codeready-toolchain/loopd/pkg/loop"
	"github.com/codeready-toolchain/loopd/pkg/outbox"
	testdb "github.com/codeready-toolchain/loopd/test/database"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type recordingSink struct {
	mu        sync.Mutex
	published []string
}

func (s *recordingSink) record(loopID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published = append(s.published, loopID)
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.published)
}

func (s *recordingSink) PublishStatusComment(_ context.Context, loopID string, _ map[string]interface{}) error {
	return s.record(loopID)
}
func (s *recordingSink) PublishCheckSummary(_ context.Context, loopID string, _ map[string]interface{}) error {
	return s.record(loopID)
}
func (s *recordingSink) PublishVideoLink(_ context.Context, loopID string, _ map[string]interface{}) error {
	return s.record(loopID)
}
func (s *recordingSink) EmitTelemetry(_ context.Context, loopID string, _ map[string]interface{}) error {
	return s.record(loopID)
}
func (s *recordingSink) EnqueueFixTask(_ context.Context, loopID string, _ map[string]interface{}) error {
	return s.record(loopID)
}

type noopEnqueuer struct{}

func (noopEnqueuer) EnqueueFollowUp(context.Context, inbox.FollowUpRequest) error { return nil }

func newTestWorker(t *testing.T) (*Worker, *ent.Client, *recordingSink) {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	cfg := config.DefaultQueueConfig()
	cfg.LeaseTTL = 30 * time.Second

	leases := loop.NewLeaseService(client)
	outboxSvc := outbox.NewService(client, outbox.DefaultRetryPolicy())
	evaluator := gates.NewEvaluator(client, slog.Default(), nil)
	router := inbox.NewRouter(noopEnqueuer{})
	inboxSvc := inbox.NewService(client, leases, evaluator, outboxSvc, router, slog.Default(), cfg.LeaseTTL)
	sink := &recordingSink{}
	executor := outbox.NewExecutor(outboxSvc, sink, slog.Default())

	worker := NewWorker("worker-0", "pod-test", client, cfg, &config.GuardrailConfig{}, inboxSvc, leases, outboxSvc, executor)
	return worker, client, sink
}

func seedQueueLoop(t *testing.T, client *ent.Client, id string) *ent.Loop {
	t.Helper()
	row, err := client.Loop.Create().
		SetID(id).
		SetUserID("user-1").
		SetRepoFullName("acme/widgets").
		SetThreadID("thread-" + id).
		SetState(entloop.StateImplementing).
		SetCurrentHeadSha("sha-" + id).
		SetCreatedAt(t0).
		SetUpdatedAt(t0).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func seedQueueSignal(t *testing.T, client *ent.Client, id, loopID string, receivedAt time.Time) {
	t.Helper()
	_, err := client.InboxSignal.Create().
		SetID(id).
		SetLoopID(loopID).
		SetCauseType("check_run.completed").
		SetCanonicalCauseID("cause-" + id).
		SetPayload(map[string]interface{}{
			"checkName":    "CI / tests",
			"checkOutcome": "fail",
			"headSha":      "sha-" + loopID,
		}).
		SetReceivedAt(receivedAt).
		Save(context.Background())
	require.NoError(t, err)
}

func TestNextLoopWithWork(t *testing.T) {
	worker, client, _ := newTestWorker(t)
	ctx := context.Background()

	t.Run("empty queue", func(t *testing.T) {
		_, err := worker.nextLoopWithWork(ctx, t0)
		assert.ErrorIs(t, err, ErrNoWorkAvailable)
	})

	seedQueueLoop(t, client, "loop-b")
	seedQueueLoop(t, client, "loop-a")
	seedQueueSignal(t, client, "sig-b", "loop-b", t0.Add(time.Minute))
	seedQueueSignal(t, client, "sig-a", "loop-a", t0)

	t.Run("oldest signal wins", func(t *testing.T) {
		loopID, err := worker.nextLoopWithWork(ctx, t0.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, "loop-a", loopID)
	})

	t.Run("due outbox action after signals drain", func(t *testing.T) {
		_, err := client.InboxSignal.Update().SetProcessedAt(t0.Add(2 * time.Minute)).Save(ctx)
		require.NoError(t, err)

		outboxSvc := outbox.NewService(client, outbox.DefaultRetryPolicy())
		_, err = outboxSvc.Enqueue(ctx, "loop-b", 1,
			outboxaction.ActionTypeEmitTelemetry, "telemetry-1", nil, t0.Add(3*time.Minute))
		require.NoError(t, err)

		loopID, err := worker.nextLoopWithWork(ctx, t0.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, "loop-b", loopID)
	})

	t.Run("future retry is not due", func(t *testing.T) {
		n, err := client.OutboxAction.Update().SetNextRetryAt(t0.Add(24 * time.Hour)).Save(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, n)

		_, err = worker.nextLoopWithWork(ctx, t0.Add(time.Hour))
		assert.ErrorIs(t, err, ErrNoWorkAvailable)
	})
}

func TestPollAndProcessRound(t *testing.T) {
	worker, client, sink := newTestWorker(t)
	ctx := context.Background()

	seedQueueLoop(t, client, "loop-1")
	seedQueueSignal(t, client, "sig-1", "loop-1", t0)

	// One round: the signal is consumed, its publication action is enqueued
	// and then drained through the sink.
	require.NoError(t, worker.pollAndProcess(ctx))

	sig, err := client.InboxSignal.Get(ctx, "sig-1")
	require.NoError(t, err)
	assert.NotNil(t, sig.ProcessedAt)

	action, err := client.OutboxAction.Query().
		Where(outboxaction.ActionKey("signal-inbox:sig-1:publish-status-comment")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, outboxaction.StatusCompleted, action.Status)
	assert.Equal(t, 1, sink.count())

	// Nothing left: the next poll reports no work.
	assert.ErrorIs(t, worker.pollAndProcess(ctx), ErrNoWorkAvailable)

	health := worker.Health()
	assert.Equal(t, 1, health.LoopsProcessed)
	assert.Equal(t, string(WorkerStatusIdle), health.Status)
}

func TestPoolStartAndStop(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 10 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.OrphanSweepInterval = 10 * time.Millisecond

	leases := loop.NewLeaseService(client)
	outboxSvc := outbox.NewService(client, outbox.DefaultRetryPolicy())
	evaluator := gates.NewEvaluator(client, slog.Default(), nil)
	inboxSvc := inbox.NewService(client, leases, evaluator, outboxSvc, inbox.NewRouter(noopEnqueuer{}), slog.Default(), cfg.LeaseTTL)
	sink := &recordingSink{}
	executor := outbox.NewExecutor(outboxSvc, sink, slog.Default())

	pool := NewWorkerPool("pod-test", client, cfg, &config.GuardrailConfig{}, inboxSvc, leases, outboxSvc, executor)
	require.NoError(t, pool.Start(context.Background()))
	// Duplicate start is a no-op.
	require.NoError(t, pool.Start(context.Background()))

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Equal(t, "pod-test", health.PodID)

	pool.Stop()
}
