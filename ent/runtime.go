// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codeready-toolchain/loopd/ent/gatefinding"
	"github.com/codeready-toolchain/loopd/ent/gaterun"
	"github.com/codeready-toolchain/loopd/ent/inboxsignal"
	"github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/looplease"
	"github.com/codeready-toolchain/loopd/ent/outboxaction"
	"github.com/codeready-toolchain/loopd/ent/outboxattempt"
	"github.com/codeready-toolchain/loopd/ent/paritysample"
	"github.com/codeready-toolchain/loopd/ent/phaseartifact"
	"github.com/codeready-toolchain/loopd/ent/plantask"
	"github.com/codeready-toolchain/loopd/ent/schema"
	"github.com/codeready-toolchain/loopd/ent/webhookdelivery"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	gatefindingFields := schema.GateFinding{}.Fields()
	_ = gatefindingFields
	// gatefindingDescIsBlocking is the schema descriptor for is_blocking field.
	gatefindingDescIsBlocking := gatefindingFields[10].Descriptor()
	// gatefinding.DefaultIsBlocking holds the default value on creation for the is_blocking field.
	gatefinding.DefaultIsBlocking = gatefindingDescIsBlocking.Default.(bool)
	// gatefindingDescCreatedAt is the schema descriptor for created_at field.
	gatefindingDescCreatedAt := gatefindingFields[13].Descriptor()
	// gatefinding.DefaultCreatedAt holds the default value on creation for the created_at field.
	gatefinding.DefaultCreatedAt = gatefindingDescCreatedAt.Default.(func() time.Time)
	gaterunFields := schema.GateRun{}.Fields()
	_ = gaterunFields
	// gaterunDescGatePassed is the schema descriptor for gate_passed field.
	gaterunDescGatePassed := gaterunFields[6].Descriptor()
	// gaterun.DefaultGatePassed holds the default value on creation for the gate_passed field.
	gaterun.DefaultGatePassed = gaterunDescGatePassed.Default.(bool)
	// gaterunDescInvalidOutput is the schema descriptor for invalid_output field.
	gaterunDescInvalidOutput := gaterunFields[14].Descriptor()
	// gaterun.DefaultInvalidOutput holds the default value on creation for the invalid_output field.
	gaterun.DefaultInvalidOutput = gaterunDescInvalidOutput.Default.(bool)
	// gaterunDescCreatedAt is the schema descriptor for created_at field.
	gaterunDescCreatedAt := gaterunFields[16].Descriptor()
	// gaterun.DefaultCreatedAt holds the default value on creation for the created_at field.
	gaterun.DefaultCreatedAt = gaterunDescCreatedAt.Default.(func() time.Time)
	// gaterunDescUpdatedAt is the schema descriptor for updated_at field.
	gaterunDescUpdatedAt := gaterunFields[17].Descriptor()
	// gaterun.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	gaterun.DefaultUpdatedAt = gaterunDescUpdatedAt.Default.(func() time.Time)
	// gaterun.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	gaterun.UpdateDefaultUpdatedAt = gaterunDescUpdatedAt.UpdateDefault.(func() time.Time)
	inboxsignalFields := schema.InboxSignal{}.Fields()
	_ = inboxsignalFields
	// inboxsignalDescCauseIdentityVersion is the schema descriptor for cause_identity_version field.
	inboxsignalDescCauseIdentityVersion := inboxsignalFields[4].Descriptor()
	// inboxsignal.DefaultCauseIdentityVersion holds the default value on creation for the cause_identity_version field.
	inboxsignal.DefaultCauseIdentityVersion = inboxsignalDescCauseIdentityVersion.Default.(int)
	// inboxsignalDescReceivedAt is the schema descriptor for received_at field.
	inboxsignalDescReceivedAt := inboxsignalFields[7].Descriptor()
	// inboxsignal.DefaultReceivedAt holds the default value on creation for the received_at field.
	inboxsignal.DefaultReceivedAt = inboxsignalDescReceivedAt.Default.(func() time.Time)
	loopFields := schema.Loop{}.Fields()
	_ = loopFields
	// loopDescLoopVersion is the schema descriptor for loop_version field.
	loopDescLoopVersion := loopFields[9].Descriptor()
	// loop.DefaultLoopVersion holds the default value on creation for the loop_version field.
	loop.DefaultLoopVersion = loopDescLoopVersion.Default.(int)
	// loopDescTransitionSeq is the schema descriptor for transition_seq field.
	loopDescTransitionSeq := loopFields[10].Descriptor()
	// loop.DefaultTransitionSeq holds the default value on creation for the transition_seq field.
	loop.DefaultTransitionSeq = loopDescTransitionSeq.Default.(int)
	// loopDescFixAttemptCount is the schema descriptor for fix_attempt_count field.
	loopDescFixAttemptCount := loopFields[11].Descriptor()
	// loop.DefaultFixAttemptCount holds the default value on creation for the fix_attempt_count field.
	loop.DefaultFixAttemptCount = loopDescFixAttemptCount.Default.(int)
	// loopDescMaxFixAttempts is the schema descriptor for max_fix_attempts field.
	loopDescMaxFixAttempts := loopFields[12].Descriptor()
	// loop.DefaultMaxFixAttempts holds the default value on creation for the max_fix_attempts field.
	loop.DefaultMaxFixAttempts = loopDescMaxFixAttempts.Default.(int)
	// loopDescIterationCount is the schema descriptor for iteration_count field.
	loopDescIterationCount := loopFields[13].Descriptor()
	// loop.DefaultIterationCount holds the default value on creation for the iteration_count field.
	loop.DefaultIterationCount = loopDescIterationCount.Default.(int)
	// loopDescCreatedAt is the schema descriptor for created_at field.
	loopDescCreatedAt := loopFields[29].Descriptor()
	// loop.DefaultCreatedAt holds the default value on creation for the created_at field.
	loop.DefaultCreatedAt = loopDescCreatedAt.Default.(func() time.Time)
	// loopDescUpdatedAt is the schema descriptor for updated_at field.
	loopDescUpdatedAt := loopFields[30].Descriptor()
	// loop.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	loop.DefaultUpdatedAt = loopDescUpdatedAt.Default.(func() time.Time)
	// loop.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	loop.UpdateDefaultUpdatedAt = loopDescUpdatedAt.UpdateDefault.(func() time.Time)
	loopleaseFields := schema.LoopLease{}.Fields()
	_ = loopleaseFields
	// loopleaseDescLeaseEpoch is the schema descriptor for lease_epoch field.
	loopleaseDescLeaseEpoch := loopleaseFields[2].Descriptor()
	// looplease.DefaultLeaseEpoch holds the default value on creation for the lease_epoch field.
	looplease.DefaultLeaseEpoch = loopleaseDescLeaseEpoch.Default.(int)
	outboxactionFields := schema.OutboxAction{}.Fields()
	_ = outboxactionFields
	// outboxactionDescAttemptCount is the schema descriptor for attempt_count field.
	outboxactionDescAttemptCount := outboxactionFields[8].Descriptor()
	// outboxaction.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	outboxaction.DefaultAttemptCount = outboxactionDescAttemptCount.Default.(int)
	// outboxactionDescCreatedAt is the schema descriptor for created_at field.
	outboxactionDescCreatedAt := outboxactionFields[18].Descriptor()
	// outboxaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	outboxaction.DefaultCreatedAt = outboxactionDescCreatedAt.Default.(func() time.Time)
	// outboxactionDescUpdatedAt is the schema descriptor for updated_at field.
	outboxactionDescUpdatedAt := outboxactionFields[19].Descriptor()
	// outboxaction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	outboxaction.DefaultUpdatedAt = outboxactionDescUpdatedAt.Default.(func() time.Time)
	// outboxaction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	outboxaction.UpdateDefaultUpdatedAt = outboxactionDescUpdatedAt.UpdateDefault.(func() time.Time)
	outboxattemptFields := schema.OutboxAttempt{}.Fields()
	_ = outboxattemptFields
	// outboxattemptDescCreatedAt is the schema descriptor for created_at field.
	outboxattemptDescCreatedAt := outboxattemptFields[8].Descriptor()
	// outboxattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	outboxattempt.DefaultCreatedAt = outboxattemptDescCreatedAt.Default.(func() time.Time)
	paritysampleFields := schema.ParitySample{}.Fields()
	_ = paritysampleFields
	// paritysampleDescEligible is the schema descriptor for eligible field.
	paritysampleDescEligible := paritysampleFields[4].Descriptor()
	// paritysample.DefaultEligible holds the default value on creation for the eligible field.
	paritysample.DefaultEligible = paritysampleDescEligible.Default.(bool)
	// paritysampleDescObservedAt is the schema descriptor for observed_at field.
	paritysampleDescObservedAt := paritysampleFields[5].Descriptor()
	// paritysample.DefaultObservedAt holds the default value on creation for the observed_at field.
	paritysample.DefaultObservedAt = paritysampleDescObservedAt.Default.(func() time.Time)
	phaseartifactFields := schema.PhaseArtifact{}.Fields()
	_ = phaseartifactFields
	// phaseartifactDescCreatedAt is the schema descriptor for created_at field.
	phaseartifactDescCreatedAt := phaseartifactFields[10].Descriptor()
	// phaseartifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	phaseartifact.DefaultCreatedAt = phaseartifactDescCreatedAt.Default.(func() time.Time)
	// phaseartifactDescUpdatedAt is the schema descriptor for updated_at field.
	phaseartifactDescUpdatedAt := phaseartifactFields[11].Descriptor()
	// phaseartifact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	phaseartifact.DefaultUpdatedAt = phaseartifactDescUpdatedAt.Default.(func() time.Time)
	// phaseartifact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	phaseartifact.UpdateDefaultUpdatedAt = phaseartifactDescUpdatedAt.UpdateDefault.(func() time.Time)
	plantaskFields := schema.PlanTask{}.Fields()
	_ = plantaskFields
	// plantaskDescCreatedAt is the schema descriptor for created_at field.
	plantaskDescCreatedAt := plantaskFields[10].Descriptor()
	// plantask.DefaultCreatedAt holds the default value on creation for the created_at field.
	plantask.DefaultCreatedAt = plantaskDescCreatedAt.Default.(func() time.Time)
	webhookdeliveryFields := schema.WebhookDelivery{}.Fields()
	_ = webhookdeliveryFields
	// webhookdeliveryDescCreatedAt is the schema descriptor for created_at field.
	webhookdeliveryDescCreatedAt := webhookdeliveryFields[5].Descriptor()
	// webhookdelivery.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhookdelivery.DefaultCreatedAt = webhookdeliveryDescCreatedAt.Default.(func() time.Time)
	// webhookdeliveryDescUpdatedAt is the schema descriptor for updated_at field.
	webhookdeliveryDescUpdatedAt := webhookdeliveryFields[6].Descriptor()
	// webhookdelivery.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	webhookdelivery.DefaultUpdatedAt = webhookdeliveryDescUpdatedAt.Default.(func() time.Time)
	// webhookdelivery.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	webhookdelivery.UpdateDefaultUpdatedAt = webhookdeliveryDescUpdatedAt.UpdateDefault.(func() time.Time)
}
