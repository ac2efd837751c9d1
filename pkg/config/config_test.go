package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 60*time.Second, cfg.Queue.LeaseTTL)
	assert.Equal(t, 5, cfg.Outbox.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Outbox.BaseBackoff)
	assert.Equal(t, 30*time.Minute, cfg.Outbox.MaxBackoff)
	assert.False(t, cfg.Guardrails.KillSwitchEnabled)
	assert.Nil(t, cfg.Guardrails.MaxIterations)
	assert.Equal(t, []string{"api_query"}, cfg.Gates.TrustedThreadCountSources)
	assert.Equal(t, 0.999, cfg.Parity.CutoverThreshold)
	assert.Equal(t, 0.99, cfg.Parity.RollbackThreshold)
	assert.Equal(t, "http://localhost:8090/effects", cfg.Forwarder.SideEffectURL)
	assert.Equal(t, 30*24*time.Hour, cfg.Retention.SignalTTL)
	assert.Equal(t, time.Hour, cfg.Retention.CleanupInterval)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("QUEUE_WORKER_COUNT", "2")
	t.Setenv("LOOP_LEASE_TTL", "30s")
	t.Setenv("LOOP_KILL_SWITCH", "true")
	t.Setenv("LOOP_MAX_ITERATIONS", "50")
	t.Setenv("OUTBOX_MAX_ATTEMPTS", "3")
	t.Setenv("TRUSTED_THREAD_COUNT_SOURCES", "api_query, github_graphql")
	t.Setenv("PARITY_ROLLBACK_THRESHOLD", "0.95")
	t.Setenv("SIDE_EFFECT_GATEWAY_URL", "https://gateway.internal/effects")
	t.Setenv("RETENTION_SIGNAL_TTL", "72h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.HTTPPort)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 30*time.Second, cfg.Queue.LeaseTTL)
	assert.True(t, cfg.Guardrails.KillSwitchEnabled)
	require.NotNil(t, cfg.Guardrails.MaxIterations)
	assert.Equal(t, 50, *cfg.Guardrails.MaxIterations)
	assert.Equal(t, 3, cfg.Outbox.MaxAttempts)
	assert.Equal(t, []string{"api_query", "github_graphql"}, cfg.Gates.TrustedThreadCountSources)
	assert.Equal(t, 0.95, cfg.Parity.RollbackThreshold)
	assert.Equal(t, "https://gateway.internal/effects", cfg.Forwarder.SideEffectURL)
	assert.Equal(t, 72*time.Hour, cfg.Retention.SignalTTL)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("LOOP_MAX_ITERATIONS", "many")
	_, err := Load()
	assert.Error(t, err)
}
