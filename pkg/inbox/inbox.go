// Package inbox consumes per-loop signal rows and routes untrusted external
// feedback into the agent thread.
package inbox

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/loopd/ent"
	"github.com/codeready-toolchain/loopd/ent/inboxsignal"
	"github.com/codeready-toolchain/loopd/ent/outboxaction"
	"github.com/codeready-toolchain/loopd/pkg/cause"
	"github.com/codeready-toolchain/loopd/pkg/gates"
	"github.com/codeready-toolchain/loopd/pkg/loop"
	"github.com/codeready-toolchain/loopd/pkg/metrics"
	"github.com/codeready-toolchain/loopd/pkg/outbox"
)

// Runtime actions a tick can report.
const (
	ActionNone                  = "none"
	ActionCiGatePersisted       = "ci_gate_persisted"
	ActionReviewGatePersisted   = "review_thread_gate_persisted"
	ActionFeedbackFollowUpQueue = "feedback_follow_up_queued"
)

// TickResult reports one signal-inbox iteration.
type TickResult struct {
	Processed     bool
	Reason        string
	SignalID      string
	CauseType     string
	RuntimeAction string
	OutboxID      string
}

// GuardrailRuntime carries the deployment-level guardrail inputs a tick runs
// under. Nil means everything is permitted.
type GuardrailRuntime struct {
	KillSwitchEnabled   bool
	MaxIterations       *int
	ManualIntentAllowed bool
}

// Service drains the signal inbox one signal per tick, under the loop lease.
type Service struct {
	client   *ent.Client
	leases   *loop.LeaseService
	gates    *gates.Evaluator
	outbox   *outbox.Service
	router   *Router
	logger   *slog.Logger
	leaseTTL time.Duration
}

func NewService(client *ent.Client, leases *loop.LeaseService, evaluator *gates.Evaluator, outboxSvc *outbox.Service, router *Router, logger *slog.Logger, leaseTTL time.Duration) *Service {
	if leaseTTL <= 0 {
		leaseTTL = 30 * time.Second
	}
	return &Service{
		client:   client,
		leases:   leases,
		gates:    evaluator,
		outbox:   outboxSvc,
		router:   router,
		logger:   logger,
		leaseTTL: leaseTTL,
	}
}

// RecordSignal files an external cause into the loop's inbox. Re-deliveries
// of the same canonical cause collapse onto the existing row.
func (s *Service) RecordSignal(ctx context.Context, loopID string, c cause.Cause, payload map[string]interface{}, receivedAt time.Time) (*ent.InboxSignal, error) {
	row, err := s.client.InboxSignal.Create().
		SetID(uuid.New().String()).
		SetLoopID(loopID).
		SetCauseType(string(c.Type)).
		SetCanonicalCauseID(c.CanonicalID).
		SetCauseIdentityVersion(c.IdentityVersion).
		SetPayload(payload).
		SetNillableHeadSha(c.HeadSHA).
		SetReceivedAt(receivedAt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.client.InboxSignal.Query().
				Where(
					inboxsignal.LoopID(loopID),
					inboxsignal.CanonicalCauseID(c.CanonicalID),
				).
				Only(ctx)
		}
		return nil, fmt.Errorf("recording signal for loop %s: %w", loopID, err)
	}
	return row, nil
}

// RunBestEffortSignalInboxTick processes at most one unprocessed signal for
// the loop. Best effort: every guard failure comes back as a deterministic
// reason, never an error, and a failed follow-up leaves the signal
// unprocessed for a later tick.
func (s *Service) RunBestEffortSignalInboxTick(ctx context.Context, loopID, leaseOwner string, runtime *GuardrailRuntime, now time.Time) (TickResult, error) {
	loopRow, err := s.client.Loop.Get(ctx, loopID)
	if err != nil {
		if ent.IsNotFound(err) {
			return s.finish(TickResult{Reason: "no_unprocessed_signal"}), nil
		}
		return TickResult{}, fmt.Errorf("reading loop %s: %w", loopID, err)
	}

	acquired, err := s.leases.Acquire(ctx, loopID, leaseOwner, s.leaseTTL, now)
	if err != nil {
		return TickResult{}, err
	}
	if !acquired.Acquired {
		return s.finish(TickResult{Reason: "lease_held"}), nil
	}
	defer func() {
		if _, err := s.leases.Release(ctx, loopID, leaseOwner, now); err != nil {
			s.logger.Warn("failed to release inbox lease", "loop_id", loopID, "error", err)
		}
	}()

	if runtime == nil {
		runtime = &GuardrailRuntime{ManualIntentAllowed: true}
	}
	guard := loop.EvaluateLoopGuardrails(loop.GuardrailInput{
		KillSwitchEnabled:   runtime.KillSwitchEnabled,
		IsTerminalState:     loop.IsTerminal(loopRow.State),
		HasValidLease:       true,
		CooldownUntil:       loopRow.CooldownUntil,
		IterationCount:      loopRow.IterationCount,
		MaxIterations:       runtime.MaxIterations,
		ManualIntentAllowed: runtime.ManualIntentAllowed,
	}, now)
	if !guard.Allowed {
		return s.finish(TickResult{Reason: guard.ReasonCode}), nil
	}

	signal, err := s.client.InboxSignal.Query().
		Where(
			inboxsignal.LoopID(loopID),
			inboxsignal.ProcessedAtIsNil(),
		).
		Order(ent.Asc(inboxsignal.FieldReceivedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return s.finish(TickResult{Reason: "no_unprocessed_signal"}), nil
		}
		return TickResult{}, fmt.Errorf("selecting unprocessed signal: %w", err)
	}

	res := TickResult{
		SignalID:      signal.ID,
		CauseType:     signal.CauseType,
		RuntimeAction: ActionNone,
	}

	switch cause.Type(signal.CauseType) {
	case cause.TypeCheckRunCompleted:
		res.RuntimeAction, err = s.dispatchCheckRun(ctx, loopRow, signal, now)
	case cause.TypePRReview, cause.TypePRReviewComment, cause.TypeReviewThreadPollSynthetic:
		res.RuntimeAction, err = s.dispatchReviewThreads(ctx, loopRow, signal, now)
	default:
		// Other causes (PR lifecycle, daemon terminal) are handled at
		// admission time; the inbox just drains them.
	}
	if err != nil {
		res.Reason = "feedback_follow_up_enqueue_failed"
		s.logger.Warn("signal dispatch failed, leaving signal unprocessed",
			"loop_id", loopID,
			"signal_id", signal.ID,
			"cause_type", signal.CauseType,
			"error", err)
		return s.finish(res), nil
	}

	// Publication enqueue and the processed-mark land atomically.
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return TickResult{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := tx.Loop.Get(ctx, loopID)
	if err != nil {
		return TickResult{}, fmt.Errorf("re-reading loop %s: %w", loopID, err)
	}
	action, err := s.outbox.EnqueueTx(ctx, tx, loopID, current.TransitionSeq,
		outboxaction.ActionTypePublishStatusComment,
		fmt.Sprintf("signal-inbox:%s:publish-status-comment", signal.ID),
		map[string]interface{}{
			"signalId":  signal.ID,
			"causeType": signal.CauseType,
			"state":     string(current.State),
		}, now)
	if err != nil {
		res.Reason = "feedback_follow_up_enqueue_failed"
		s.logger.Warn("status publication enqueue failed", "signal_id", signal.ID, "error", err)
		return s.finish(res), nil
	}
	res.OutboxID = action.ID

	n, err := tx.InboxSignal.Update().
		Where(
			inboxsignal.IDEQ(signal.ID),
			inboxsignal.ProcessedAtIsNil(),
		).
		SetProcessedAt(now).
		Save(ctx)
	if err != nil {
		return TickResult{}, fmt.Errorf("marking signal %s processed: %w", signal.ID, err)
	}
	if n == 0 {
		// Another tick won the race; nothing to publish twice.
		res.Reason = "no_unprocessed_signal"
		return s.finish(res), nil
	}
	if err := tx.Loop.UpdateOneID(loopID).AddIterationCount(1).Exec(ctx); err != nil {
		return TickResult{}, fmt.Errorf("bumping iteration count for loop %s: %w", loopID, err)
	}
	if err := tx.Commit(); err != nil {
		res.Reason = "feedback_follow_up_enqueue_failed"
		s.logger.Warn("signal processing commit failed", "signal_id", signal.ID, "error", err)
		return s.finish(res), nil
	}

	res.Processed = true
	return s.finish(res), nil
}

func (s *Service) finish(res TickResult) TickResult {
	outcome := res.Reason
	if res.Processed {
		outcome = "processed"
	}
	metrics.InboxTicks.WithLabelValues(outcome).Inc()
	return res
}

func (s *Service) dispatchCheckRun(ctx context.Context, loopRow *ent.Loop, signal *ent.InboxSignal, now time.Time) (string, error) {
	payload := signal.Payload
	checkName, _ := payload["checkName"].(string)
	checkOutcome, _ := payload["checkOutcome"].(string)
	headSHA, _ := payload["headSha"].(string)
	if checkName == "" || checkOutcome == "" || headSHA == "" {
		s.logger.Warn("incomplete check_run payload, dropping signal",
			"loop_id", loopRow.ID,
			"signal_id", signal.ID)
		return ActionNone, nil
	}

	knownRequired, err := s.gates.KnownRequiredChecksForLoop(ctx, loopRow.ID)
	if err != nil {
		return ActionNone, err
	}

	switch checkOutcome {
	case "pass":
		snapshotSource := optString(payload, "ciSnapshotSource")
		snapshotComplete, _ := payload["ciSnapshotComplete"].(bool)
		snapshotChecks := stringList(payload, "ciSnapshotCheckNames")
		if !gates.EvaluateOptimisticCiPass(snapshotSource, snapshotComplete, snapshotChecks, knownRequired) {
			s.logger.Warn("suppressing optimistic ci pass without trusted snapshot",
				"loop_id", loopRow.ID,
				"signal_id", signal.ID,
				"check_name", checkName)
			return ActionNone, nil
		}
		_, err := s.gates.PersistCiGateEvaluation(ctx, gates.CiGateInput{
			LoopID:          loopRow.ID,
			HeadSHA:         headSHA,
			LoopVersion:     loopRow.LoopVersion,
			TriggerEvent:    signal.CauseType,
			CapabilityState: gates.CapabilitySupported,
			AllowlistChecks: snapshotChecks,
		}, now)
		if err != nil {
			return ActionNone, err
		}
		return ActionCiGatePersisted, nil

	default: // fail
		res, err := s.gates.PersistCiGateEvaluation(ctx, gates.CiGateInput{
			LoopID:          loopRow.ID,
			HeadSHA:         headSHA,
			LoopVersion:     loopRow.LoopVersion,
			TriggerEvent:    signal.CauseType,
			CapabilityState: gates.CapabilitySupported,
			AllowlistChecks: knownRequired,
			FailingChecks:   stringList(payload, "failingChecks"),
		}, now)
		if err != nil {
			return ActionNone, err
		}
		if !res.ShouldQueueFollowUp {
			return ActionCiGatePersisted, nil
		}
		feedback := fmt.Sprintf("CI check %q failed on %s.", checkName, headSHA)
		if details, ok := payload["failingDetails"].(string); ok && details != "" {
			feedback += "\n" + details
		}
		if err := s.router.RouteFeedback(ctx, loopRow.UserID, loopRow.ThreadID, loopRow.ThreadChatID, feedback); err != nil {
			return ActionNone, err
		}
		return ActionFeedbackFollowUpQueue, nil
	}
}

func (s *Service) dispatchReviewThreads(ctx context.Context, loopRow *ent.Loop, signal *ent.InboxSignal, now time.Time) (string, error) {
	payload := signal.Payload
	headSHA, _ := payload["headSha"].(string)
	if headSHA == "" {
		s.logger.Warn("incomplete review payload, dropping signal",
			"loop_id", loopRow.ID,
			"signal_id", signal.ID)
		return ActionNone, nil
	}
	count := 0
	if v, ok := payload["unresolvedThreadCount"].(float64); ok {
		count = int(v)
	}

	res, err := s.gates.PersistReviewThreadGateEvaluation(ctx, gates.ReviewThreadGateInput{
		LoopID:                      loopRow.ID,
		HeadSHA:                     headSHA,
		LoopVersion:                 loopRow.LoopVersion,
		TriggerEvent:                signal.CauseType,
		UnresolvedThreadCount:       count,
		UnresolvedThreadCountSource: optString(payload, "unresolvedThreadCountSource"),
		ErrorCode:                   optString(payload, "errorCode"),
	}, now)
	if err != nil {
		return ActionNone, err
	}
	if res.Skipped {
		return ActionNone, nil
	}
	if res.Status != "blocked" {
		return ActionReviewGatePersisted, nil
	}

	body, _ := payload["reviewBody"].(string)
	feedback := fmt.Sprintf("%d review thread(s) remain unresolved on %s.", count, headSHA)
	if body != "" {
		feedback += "\n" + body
	}
	if err := s.router.RouteFeedback(ctx, loopRow.UserID, loopRow.ThreadID, loopRow.ThreadChatID, feedback); err != nil {
		return ActionNone, err
	}
	return ActionFeedbackFollowUpQueue, nil
}

func optString(payload map[string]interface{}, key string) *string {
	if v, ok := payload[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

func stringList(payload map[string]interface{}, key string) []string {
	raw, ok := payload[key].([]interface{})
	if !ok {
		if typed, ok := payload[key].([]string); ok {
			return typed
		}
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
