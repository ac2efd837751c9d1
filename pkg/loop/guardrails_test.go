package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateLoopGuardrails(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)
	three := 3

	allowed := GuardrailInput{
		HasValidLease:       true,
		ManualIntentAllowed: true,
	}

	tests := []struct {
		name   string
		mutate func(*GuardrailInput)
		want   GuardrailResult
	}{
		{"all clear", nil, GuardrailResult{Allowed: true}},
		{"kill switch wins over everything", func(in *GuardrailInput) {
			in.KillSwitchEnabled = true
			in.IsTerminalState = true
			in.HasValidLease = false
		}, GuardrailResult{ReasonCode: GuardrailKillSwitch}},
		{"terminal state", func(in *GuardrailInput) {
			in.IsTerminalState = true
			in.HasValidLease = false
		}, GuardrailResult{ReasonCode: GuardrailTerminalState}},
		{"invalid lease", func(in *GuardrailInput) {
			in.HasValidLease = false
			in.CooldownUntil = &future
		}, GuardrailResult{ReasonCode: GuardrailLeaseInvalid}},
		{"active cooldown", func(in *GuardrailInput) {
			in.CooldownUntil = &future
		}, GuardrailResult{ReasonCode: GuardrailCooldown}},
		{"elapsed cooldown does not block", func(in *GuardrailInput) {
			in.CooldownUntil = &past
		}, GuardrailResult{Allowed: true}},
		{"iteration budget exhausted", func(in *GuardrailInput) {
			in.IterationCount = 3
			in.MaxIterations = &three
		}, GuardrailResult{ReasonCode: GuardrailMaxIterations}},
		{"iteration budget remaining", func(in *GuardrailInput) {
			in.IterationCount = 2
			in.MaxIterations = &three
		}, GuardrailResult{Allowed: true}},
		{"no iteration cap configured", func(in *GuardrailInput) {
			in.IterationCount = 100
		}, GuardrailResult{Allowed: true}},
		{"manual intent denied", func(in *GuardrailInput) {
			in.ManualIntentAllowed = false
		}, GuardrailResult{ReasonCode: GuardrailManualIntentDenied}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := allowed
			if tt.mutate != nil {
				tt.mutate(&in)
			}
			assert.Equal(t, tt.want, EvaluateLoopGuardrails(in, now))
		})
	}
}
