// Package config resolves the runtime configuration of the loop controller
// from the environment. There is no config file and no CLI surface; every
// knob is an environment variable with a production default.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the umbrella configuration object returned by Load and passed
// to the server and the worker pool.
type Config struct {
	// HTTPPort is the listen port of the API server.
	HTTPPort string

	Queue      *QueueConfig
	Outbox     *OutboxConfig
	Guardrails *GuardrailConfig
	Gates      *GateConfig
	Parity     *ParityConfig
	Forwarder  *ForwarderConfig
	Retention  *RetentionConfig
}

// OutboxConfig controls outbox action retries.
type OutboxConfig struct {
	// MaxAttempts is the per-action attempt budget before the action is
	// marked failed.
	MaxAttempts int

	// BaseBackoff is the delay before the second attempt; it doubles per
	// attempt up to MaxBackoff.
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
}

// GuardrailConfig carries the deployment-level guardrails applied before
// every signal-inbox tick.
type GuardrailConfig struct {
	// KillSwitchEnabled halts all automated processing when set.
	KillSwitchEnabled bool

	// MaxIterations bounds signal-inbox ticks per loop; nil means unbounded.
	MaxIterations *int
}

// GateConfig carries gate-evaluator settings.
type GateConfig struct {
	// TrustedThreadCountSources is the allowlist of sources whose
	// unresolved-thread-count of zero may close the review-thread gate.
	TrustedThreadCountSources []string
}

// ParityConfig carries the cutover/rollback thresholds of the parity SLO.
type ParityConfig struct {
	CutoverThreshold  float64
	RollbackThreshold float64
}

// ForwarderConfig points at the outbound gateways: the side-effect gateway
// that materializes outbox actions, and the agent runtime that accepts
// follow-up messages.
type ForwarderConfig struct {
	SideEffectURL string
	FollowUpURL   string
	Token         string
}

// RetentionConfig controls how long terminal rows stay queryable before the
// background sweep removes them.
type RetentionConfig struct {
	// SignalTTL bounds processed inbox signals.
	SignalTTL time.Duration

	// ActionTTL bounds terminal outbox actions; their attempt ledger rows
	// go with them.
	ActionTTL time.Duration

	// DeliveryTTL bounds completed webhook-delivery claims. Claims must
	// outlive any plausible provider redelivery window.
	DeliveryTTL time.Duration

	// ParityTTL bounds shadow-mode parity samples.
	ParityTTL time.Duration

	CleanupInterval time.Duration
}

// Load resolves the full configuration from the environment.
func Load() (*Config, error) {
	queue, err := loadQueueConfig()
	if err != nil {
		return nil, err
	}

	outbox := &OutboxConfig{
		MaxAttempts: 5,
		BaseBackoff: 30 * time.Second,
		MaxBackoff:  30 * time.Minute,
	}
	if v, err := intEnv("OUTBOX_MAX_ATTEMPTS", outbox.MaxAttempts); err != nil {
		return nil, err
	} else {
		outbox.MaxAttempts = v
	}
	if v, err := durationEnv("OUTBOX_BASE_BACKOFF", outbox.BaseBackoff); err != nil {
		return nil, err
	} else {
		outbox.BaseBackoff = v
	}
	if v, err := durationEnv("OUTBOX_MAX_BACKOFF", outbox.MaxBackoff); err != nil {
		return nil, err
	} else {
		outbox.MaxBackoff = v
	}

	guardrails := &GuardrailConfig{
		KillSwitchEnabled: os.Getenv("LOOP_KILL_SWITCH") == "true",
	}
	if raw := os.Getenv("LOOP_MAX_ITERATIONS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid LOOP_MAX_ITERATIONS: %w", err)
		}
		guardrails.MaxIterations = &n
	}

	gates := &GateConfig{
		TrustedThreadCountSources: []string{"api_query"},
	}
	if raw := os.Getenv("TRUSTED_THREAD_COUNT_SOURCES"); raw != "" {
		gates.TrustedThreadCountSources = splitAndTrim(raw)
	}

	parity := &ParityConfig{CutoverThreshold: 0.999, RollbackThreshold: 0.99}
	if v, err := floatEnv("PARITY_CUTOVER_THRESHOLD", parity.CutoverThreshold); err != nil {
		return nil, err
	} else {
		parity.CutoverThreshold = v
	}
	if v, err := floatEnv("PARITY_ROLLBACK_THRESHOLD", parity.RollbackThreshold); err != nil {
		return nil, err
	} else {
		parity.RollbackThreshold = v
	}

	forwarder := &ForwarderConfig{
		SideEffectURL: getEnvOrDefault("SIDE_EFFECT_GATEWAY_URL", "http://localhost:8090/effects"),
		FollowUpURL:   getEnvOrDefault("AGENT_FOLLOWUP_URL", "http://localhost:8091/follow-up"),
		Token:         os.Getenv("GATEWAY_TOKEN"),
	}

	retention := &RetentionConfig{
		SignalTTL:       30 * 24 * time.Hour,
		ActionTTL:       30 * 24 * time.Hour,
		DeliveryTTL:     7 * 24 * time.Hour,
		ParityTTL:       90 * 24 * time.Hour,
		CleanupInterval: time.Hour,
	}
	if v, err := durationEnv("RETENTION_SIGNAL_TTL", retention.SignalTTL); err != nil {
		return nil, err
	} else {
		retention.SignalTTL = v
	}
	if v, err := durationEnv("RETENTION_ACTION_TTL", retention.ActionTTL); err != nil {
		return nil, err
	} else {
		retention.ActionTTL = v
	}
	if v, err := durationEnv("RETENTION_DELIVERY_TTL", retention.DeliveryTTL); err != nil {
		return nil, err
	} else {
		retention.DeliveryTTL = v
	}
	if v, err := durationEnv("RETENTION_PARITY_TTL", retention.ParityTTL); err != nil {
		return nil, err
	} else {
		retention.ParityTTL = v
	}
	if v, err := durationEnv("RETENTION_CLEANUP_INTERVAL", retention.CleanupInterval); err != nil {
		return nil, err
	} else {
		retention.CleanupInterval = v
	}

	return &Config{
		HTTPPort:   getEnvOrDefault("HTTP_PORT", "8080"),
		Queue:      queue,
		Outbox:     outbox,
		Guardrails: guardrails,
		Gates:      gates,
		Parity:     parity,
		Forwarder:  forwarder,
		Retention:  retention,
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func intEnv(key string, defaultVal int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func floatEnv(key string, defaultVal float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func durationEnv(key string, defaultVal time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
