// Package cleanup provides data retention for the loop controller's
// high-churn tables.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/loopd/ent"
	"github.com/codeready-toolchain/loopd/ent/inboxsignal"
	"github.com/codeready-toolchain/loopd/ent/outboxaction"
	"github.com/codeready-toolchain/loopd/ent/paritysample"
	"github.com/codeready-toolchain/loopd/ent/webhookdelivery"
	"github.com/codeready-toolchain/loopd/pkg/config"
)

// Service periodically enforces retention policies:
//   - Removes processed inbox signals past their TTL
//   - Removes terminal outbox actions (the attempt ledger cascades)
//   - Removes completed webhook-delivery claims past the redelivery window
//   - Removes old parity samples
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	return &Service{
		config: cfg,
		client: client,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"signal_ttl", s.config.SignalTTL,
		"action_ttl", s.config.ActionTTL,
		"delivery_ttl", s.config.DeliveryTTL,
		"parity_ttl", s.config.ParityTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx, time.Now())

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx, time.Now())
		}
	}
}

func (s *Service) runAll(ctx context.Context, now time.Time) {
	s.cleanupProcessedSignals(ctx, now)
	s.cleanupTerminalActions(ctx, now)
	s.cleanupCompletedDeliveries(ctx, now)
	s.cleanupParitySamples(ctx, now)
}

func (s *Service) cleanupProcessedSignals(ctx context.Context, now time.Time) {
	count, err := s.client.InboxSignal.Delete().
		Where(
			inboxsignal.ProcessedAtNotNil(),
			inboxsignal.ProcessedAtLT(now.Add(-s.config.SignalTTL)),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: inbox signal cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed processed inbox signals", "count", count)
	}
}

func (s *Service) cleanupTerminalActions(ctx context.Context, now time.Time) {
	count, err := s.client.OutboxAction.Delete().
		Where(
			outboxaction.StatusIn(
				outboxaction.StatusCompleted,
				outboxaction.StatusFailed,
				outboxaction.StatusCanceled,
			),
			outboxaction.UpdatedAtLT(now.Add(-s.config.ActionTTL)),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: outbox action cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed terminal outbox actions", "count", count)
	}
}

func (s *Service) cleanupCompletedDeliveries(ctx context.Context, now time.Time) {
	count, err := s.client.WebhookDelivery.Delete().
		Where(
			webhookdelivery.CompletedAtNotNil(),
			webhookdelivery.CompletedAtLT(now.Add(-s.config.DeliveryTTL)),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: webhook delivery cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed completed webhook deliveries", "count", count)
	}
}

func (s *Service) cleanupParitySamples(ctx context.Context, now time.Time) {
	count, err := s.client.ParitySample.Delete().
		Where(paritysample.ObservedAtLT(now.Add(-s.config.ParityTTL))).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: parity sample cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed old parity samples", "count", count)
	}
}
