package config

import (
	"strings"
	"time"
)

// QueueConfig contains worker pool configuration. These values control how
// loops are polled, leased, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls for loops with pending work.
	WorkerCount int

	// PollInterval is the base interval for checking pending work.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// LeaseTTL is how long a worker's loop lease lasts before another
	// worker may steal it.
	LeaseTTL time.Duration

	// GracefulShutdownTimeout is the max time to wait for active loops
	// to finish their tick during shutdown.
	GracefulShutdownTimeout time.Duration

	// OrphanSweepInterval is how often to requeue running outbox actions
	// whose claimant lease has lapsed.
	OrphanSweepInterval time.Duration
}

// DefaultQueueConfig returns the built-in worker pool defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		LeaseTTL:                60 * time.Second,
		GracefulShutdownTimeout: 2 * time.Minute,
		OrphanSweepInterval:     1 * time.Minute,
	}
}

func loadQueueConfig() (*QueueConfig, error) {
	cfg := DefaultQueueConfig()

	var err error
	if cfg.WorkerCount, err = intEnv("QUEUE_WORKER_COUNT", cfg.WorkerCount); err != nil {
		return nil, err
	}
	if cfg.PollInterval, err = durationEnv("QUEUE_POLL_INTERVAL", cfg.PollInterval); err != nil {
		return nil, err
	}
	if cfg.PollIntervalJitter, err = durationEnv("QUEUE_POLL_INTERVAL_JITTER", cfg.PollIntervalJitter); err != nil {
		return nil, err
	}
	if cfg.LeaseTTL, err = durationEnv("LOOP_LEASE_TTL", cfg.LeaseTTL); err != nil {
		return nil, err
	}
	if cfg.GracefulShutdownTimeout, err = durationEnv("QUEUE_GRACEFUL_SHUTDOWN_TIMEOUT", cfg.GracefulShutdownTimeout); err != nil {
		return nil, err
	}
	if cfg.OrphanSweepInterval, err = durationEnv("QUEUE_ORPHAN_SWEEP_INTERVAL", cfg.OrphanSweepInterval); err != nil {
		return nil, err
	}
	return cfg, nil
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
