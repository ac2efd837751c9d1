package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/codeready-toolchain/loopd/ent"
	"github.com/codeready-toolchain/loopd/ent/inboxsignal"
	"github.com/codeready-toolchain/loopd/ent/outboxaction"
	"github.com/codeready-toolchain/loopd/pkg/config"
	"github.com/codeready-toolchain/loopd/pkg/inbox"
	"github.com/codeready-toolchain/loopd/pkg/loop"
	"github.com/codeready-toolchain/loopd/pkg/outbox"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker polls for loops with pending work and processes one loop per
// iteration: a signal-inbox tick, then the loop's due outbox actions, all
// under a lease owned by this worker.
type Worker struct {
	id         string
	podID      string
	client     *ent.Client
	config     *config.QueueConfig
	guardrails *config.GuardrailConfig
	inboxSvc   *inbox.Service
	leases     *loop.LeaseService
	outboxSvc  *outbox.Service
	executor   *outbox.Executor
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentLoopID  string
	loopsProcessed int
	lastActivity   time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, guardrails *config.GuardrailConfig, inboxSvc *inbox.Service, leases *loop.LeaseService, outboxSvc *outbox.Service, executor *outbox.Executor) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		guardrails:   guardrails,
		inboxSvc:     inboxSvc,
		leases:       leases,
		outboxSvc:    outboxSvc,
		executor:     executor,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentLoopID:  w.currentLoopID,
		LoopsProcessed: w.loopsProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoWorkAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing loop", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess finds the next loop with pending work and runs one
// processing round for it. Lease contention is not an error: another worker
// holding the loop just means this round was a no-op.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	loopID, err := w.nextLoopWithWork(ctx, time.Now())
	if err != nil {
		return err
	}

	w.setStatus(WorkerStatusWorking, loopID)
	defer w.setStatus(WorkerStatusIdle, "")

	log := slog.With("loop_id", loopID, "worker_id", w.id)

	tickRes, err := w.inboxSvc.RunBestEffortSignalInboxTick(ctx, loopID, w.id, &inbox.GuardrailRuntime{
		KillSwitchEnabled:   w.guardrails.KillSwitchEnabled,
		MaxIterations:       w.guardrails.MaxIterations,
		ManualIntentAllowed: false,
	}, time.Now())
	if err != nil {
		return fmt.Errorf("signal inbox tick for loop %s: %w", loopID, err)
	}
	if tickRes.Processed {
		log.Info("Signal processed",
			"signal_id", tickRes.SignalID,
			"cause_type", tickRes.CauseType,
			"runtime_action", tickRes.RuntimeAction)
	} else if tickRes.Reason != "no_unprocessed_signal" {
		log.Info("Signal inbox tick skipped", "reason", tickRes.Reason)
	}

	if err := w.drainOutbox(ctx, loopID); err != nil {
		return err
	}

	w.mu.Lock()
	w.loopsProcessed++
	w.mu.Unlock()
	return nil
}

// drainOutbox claims and executes the loop's due actions until none remain,
// under a lease held for the whole drain.
func (w *Worker) drainOutbox(ctx context.Context, loopID string) error {
	now := time.Now()
	lease, err := w.leases.Acquire(ctx, loopID, w.id, w.config.LeaseTTL, now)
	if err != nil {
		return fmt.Errorf("acquiring lease for loop %s: %w", loopID, err)
	}
	if !lease.Acquired {
		return nil
	}
	defer func() {
		if _, err := w.leases.Release(ctx, loopID, w.id, time.Now()); err != nil {
			slog.Warn("Failed to release lease", "loop_id", loopID, "worker_id", w.id, "error", err)
		}
	}()

	for {
		select {
		case <-w.stopCh:
			return nil
		case <-ctx.Done():
			return nil
		default:
		}

		action, err := w.outboxSvc.Claim(ctx, loopID, w.id, lease.LeaseEpoch, nil, time.Now())
		if err != nil {
			return fmt.Errorf("claiming outbox action for loop %s: %w", loopID, err)
		}
		if action == nil {
			return nil
		}
		if _, err := w.executor.Execute(ctx, action, w.id, time.Now()); err != nil {
			return fmt.Errorf("executing outbox action %s: %w", action.ID, err)
		}
	}
}

// nextLoopWithWork returns the loop owning the oldest unprocessed signal,
// falling back to the loop with the oldest due outbox action.
func (w *Worker) nextLoopWithWork(ctx context.Context, now time.Time) (string, error) {
	signal, err := w.client.InboxSignal.Query().
		Where(inboxsignal.ProcessedAtIsNil()).
		Order(ent.Asc(inboxsignal.FieldReceivedAt)).
		First(ctx)
	if err == nil {
		return signal.LoopID, nil
	}
	if !ent.IsNotFound(err) {
		return "", fmt.Errorf("querying unprocessed signals: %w", err)
	}

	action, err := w.client.OutboxAction.Query().
		Where(
			outboxaction.StatusEQ(outboxaction.StatusPending),
			outboxaction.Or(
				outboxaction.NextRetryAtIsNil(),
				outboxaction.NextRetryAtLTE(now),
			),
		).
		Order(ent.Asc(outboxaction.FieldCreatedAt)).
		First(ctx)
	if err == nil {
		return action.LoopID, nil
	}
	if !ent.IsNotFound(err) {
		return "", fmt.Errorf("querying pending outbox actions: %w", err)
	}
	return "", ErrNoWorkAvailable
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, loopID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentLoopID = loopID
	w.lastActivity = time.Now()
}
