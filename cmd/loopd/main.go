// loopd — the SDLC loop controller. Serves the HTTP admission API, runs the
// signal-inbox/outbox worker pool, and drives loop state off PostgreSQL.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/codeready-toolchain/loopd/pkg/api"
	"github.com/codeready-toolchain/loopd/pkg/artifacts"
	"github.com/codeready-toolchain/loopd/pkg/cleanup"
	"github.com/codeready-toolchain/loopd/pkg/config"
	"github.com/codeready-toolchain/loopd/pkg/database"
	"github.com/codeready-toolchain/loopd/pkg/forwarder"
	"github.com/codeready-toolchain/loopd/pkg/gates"
	"github.com/codeready-toolchain/loopd/pkg/inbox"
	"github.com/codeready-toolchain/loopd/pkg/loop"
	"github.com/codeready-toolchain/loopd/pkg/outbox"
	"github.com/codeready-toolchain/loopd/pkg/queue"
	"github.com/codeready-toolchain/loopd/pkg/version"
	"github.com/codeready-toolchain/loopd/pkg/webhookledger"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	logger := slog.Default()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting loopd",
		"version", version.Full(),
		"http_port", cfg.HTTPPort,
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Core services around the ent client.
	client := dbClient.Client
	leases := loop.NewLeaseService(client)
	registry := loop.NewRegistry(client)
	evaluator := gates.NewEvaluator(client, logger, cfg.Gates.TrustedThreadCountSources)
	outboxSvc := outbox.NewService(client, outbox.RetryPolicy{
		MaxAttempts: cfg.Outbox.MaxAttempts,
		BaseBackoff: cfg.Outbox.BaseBackoff,
		MaxBackoff:  cfg.Outbox.MaxBackoff,
	})

	// Outbound gateways: outbox sink and follow-up enqueuer over HTTP.
	gateway := forwarder.NewClient(cfg.Forwarder.SideEffectURL, cfg.Forwarder.FollowUpURL, cfg.Forwarder.Token)
	executor := outbox.NewExecutor(outboxSvc, gateway, logger)
	router := inbox.NewRouter(gateway)
	inboxSvc := inbox.NewService(client, leases, evaluator, outboxSvc, router, logger, cfg.Queue.LeaseTTL)
	slog.Info("Services initialized")

	// One-time startup sweep: running actions claimed by a pod that died
	// while holding a now-lapsed lease go back to pending.
	if n, err := outboxSvc.RequeueOrphans(ctx, time.Now()); err != nil {
		slog.Error("Startup orphan sweep failed", "error", err)
	} else if n > 0 {
		slog.Info("Requeued orphaned outbox actions at startup", "count", n)
	}

	// Worker pool before the HTTP server, so admission never outpaces draining.
	workerPool := queue.NewWorkerPool(podID, client, cfg.Queue, cfg.Guardrails, inboxSvc, leases, outboxSvc, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	retention := cleanup.NewService(cfg.Retention, client)
	retention.Start(ctx)
	defer retention.Stop()

	httpServer := api.NewServer(dbClient, webhookledger.NewLedger(client), registry,
		inboxSvc, artifacts.NewStore(client), workerPool, logger)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.HTTPPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("loopd started successfully", "pod_id", podID)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: drain workers within the budget, then the server.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, running actions will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
