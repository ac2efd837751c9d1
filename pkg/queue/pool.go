package queue

import (
	"context"
	"fmt"
	"log/slog"
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

// WorkerPool manages a pool of queue workers plus the background sweep that
// requeues outbox actions orphaned by lapsed leases.
type WorkerPool struct {
	podID      string
	client     *ent.Client
	config     *config.QueueConfig
	guardrails *config.GuardrailConfig
	inboxSvc   *inbox.Service
	leases     *loop.LeaseService
	outboxSvc  *outbox.Service
	executor   *outbox.Executor
	workers    []*Worker
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	started    bool

	// Orphan sweep state
	mu              sync.Mutex
	lastOrphanSweep time.Time
	orphansRequeued int
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, guardrails *config.GuardrailConfig, inboxSvc *inbox.Service, leases *loop.LeaseService, outboxSvc *outbox.Service, executor *outbox.Executor) *WorkerPool {
	return &WorkerPool{
		podID:      podID,
		client:     client,
		config:     cfg,
		guardrails: guardrails,
		inboxSvc:   inboxSvc,
		leases:     leases,
		outboxSvc:  outboxSvc,
		executor:   executor,
		workers:    make([]*Worker, 0, cfg.WorkerCount),
		stopCh:     make(chan struct{}),
	}
}

// Start spawns worker goroutines and the orphan sweep background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.guardrails, p.inboxSvc, p.leases, p.outboxSvc, p.executor)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanSweep(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current loop round before exiting.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// runOrphanSweep periodically returns running outbox actions whose claimant
// lease has lapsed back to pending.
func (p *WorkerPool) runOrphanSweep(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := p.outboxSvc.RequeueOrphans(ctx, time.Now())
			if err != nil {
				slog.Error("Orphan sweep failed", "pod_id", p.podID, "error", err)
				continue
			}
			p.mu.Lock()
			p.lastOrphanSweep = time.Now()
			p.orphansRequeued += n
			p.mu.Unlock()
			if n > 0 {
				slog.Info("Requeued orphaned outbox actions", "pod_id", p.podID, "count", n)
			}
		}
	}
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	pendingSignals, errS := p.client.InboxSignal.Query().
		Where(inboxsignal.ProcessedAtIsNil()).
		Count(ctx)
	if errS != nil {
		slog.Error("Failed to query pending signals for health check",
			"pod_id", p.podID,
			"error", errS)
	}

	pendingActions, errA := p.client.OutboxAction.Query().
		Where(outboxaction.StatusEQ(outboxaction.StatusPending)).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query pending actions for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errS == nil && errA == nil
	isHealthy := len(p.workers) > 0 && dbHealthy

	p.mu.Lock()
	lastOrphanSweep := p.lastOrphanSweep
	orphansRequeued := p.orphansRequeued
	p.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errS != nil {
			dbError = fmt.Sprintf("pending signals query failed: %v", errS)
		} else if errA != nil {
			dbError = fmt.Sprintf("pending actions query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:       isHealthy,
		DBReachable:     dbHealthy,
		DBError:         dbError,
		PodID:           p.podID,
		ActiveWorkers:   activeWorkers,
		TotalWorkers:    len(p.workers),
		PendingSignals:  pendingSignals,
		PendingActions:  pendingActions,
		WorkerStats:     workerStats,
		LastOrphanSweep: lastOrphanSweep,
		OrphansRequeued: orphansRequeued,
	}
}
