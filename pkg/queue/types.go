// Package queue provides the worker pool that drives loop processing:
// signal-inbox ticks and outbox execution under the per-loop lease.
package queue

import (
	"errors"
	"time"
)

// Sentinel errors for queue operations.
var (
	// ErrNoWorkAvailable indicates no loop currently has pending work.
	ErrNoWorkAvailable = errors.New("no work available")
)

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy       bool           `json:"is_healthy"`
	DBReachable     bool           `json:"db_reachable"`
	DBError         string         `json:"db_error,omitempty"`
	PodID           string         `json:"pod_id"`
	ActiveWorkers   int            `json:"active_workers"`
	TotalWorkers    int            `json:"total_workers"`
	PendingSignals  int            `json:"pending_signals"`
	PendingActions  int            `json:"pending_actions"`
	WorkerStats     []WorkerHealth `json:"worker_stats"`
	LastOrphanSweep time.Time      `json:"last_orphan_sweep"`
	OrphansRequeued int            `json:"orphans_requeued"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentLoopID  string    `json:"current_loop_id,omitempty"`
	LoopsProcessed int       `json:"loops_processed"`
	LastActivity   time.Time `json:"last_activity"`
}
