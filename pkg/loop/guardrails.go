package loop

import "time"

// Guardrail denial reason codes, in precedence order.
const (
	GuardrailKillSwitch         = "kill_switch"
	GuardrailTerminalState      = "terminal_state"
	GuardrailLeaseInvalid       = "lease_invalid"
	GuardrailCooldown           = "cooldown"
	GuardrailMaxIterations      = "max_iterations"
	GuardrailManualIntentDenied = "manual_intent_denied"
)

// GuardrailInput bundles everything the guardrail check looks at. The caller
// resolves lease validity and terminality before calling; the check itself is
// pure so it can gate both inbox ticks and control-plane intents.
type GuardrailInput struct {
	KillSwitchEnabled   bool
	IsTerminalState     bool
	HasValidLease       bool
	CooldownUntil       *time.Time
	IterationCount      int
	MaxIterations       *int
	ManualIntentAllowed bool
}

// GuardrailResult is the outcome of a guardrail evaluation. ReasonCode is
// empty when Allowed.
type GuardrailResult struct {
	Allowed    bool
	ReasonCode string
}

// EvaluateLoopGuardrails checks whether work on a loop may proceed.
// First matching denial wins.
func EvaluateLoopGuardrails(in GuardrailInput, now time.Time) GuardrailResult {
	switch {
	case in.KillSwitchEnabled:
		return GuardrailResult{ReasonCode: GuardrailKillSwitch}
	case in.IsTerminalState:
		return GuardrailResult{ReasonCode: GuardrailTerminalState}
	case !in.HasValidLease:
		return GuardrailResult{ReasonCode: GuardrailLeaseInvalid}
	case in.CooldownUntil != nil && in.CooldownUntil.After(now):
		return GuardrailResult{ReasonCode: GuardrailCooldown}
	case in.MaxIterations != nil && in.IterationCount >= *in.MaxIterations:
		return GuardrailResult{ReasonCode: GuardrailMaxIterations}
	case !in.ManualIntentAllowed:
		return GuardrailResult{ReasonCode: GuardrailManualIntentDenied}
	}
	return GuardrailResult{Allowed: true}
}
