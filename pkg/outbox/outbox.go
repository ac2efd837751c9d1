// Package outbox implements the transactional outbox for loop side effects:
// supersession-aware enqueue, lease-fenced claim, and retry with an
// append-only attempt ledger.
package outbox

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/loopd/ent"
	"github.com/codeready-toolchain/loopd/ent/looplease"
	"github.com/codeready-toolchain/loopd/ent/outboxaction"
	"github.com/codeready-toolchain/loopd/ent/outboxattempt"
	"github.com/codeready-toolchain/loopd/ent/predicate"
	"github.com/codeready-toolchain/loopd/pkg/metrics"
)

// Errors surfaced by Complete.
var (
	ErrNotFound             = errors.New("outbox action not found")
	ErrNotRunningOrNotOwner = errors.New("outbox action is not running or claimed by another owner")
)

const maxErrorMessageLen = 1000

// supersessionGroups maps each action type to its group. Enqueueing a new
// action cancels older pending/running actions in the same group.
var supersessionGroups = map[outboxaction.ActionType]string{
	outboxaction.ActionTypePublishStatusComment: "publication_status",
	outboxaction.ActionTypePublishCheckSummary:  "publication_status",
	outboxaction.ActionTypeEnqueueFixTask:       "fix_task_enqueue",
	outboxaction.ActionTypePublishVideoLink:     "publication_video",
	outboxaction.ActionTypeEmitTelemetry:        "telemetry",
}

// SupersessionGroupFor returns the supersession group of an action type.
func SupersessionGroupFor(actionType outboxaction.ActionType) string {
	return supersessionGroups[actionType]
}

// RetryPolicy controls the exponential backoff applied by Complete.
type RetryPolicy struct {
	MaxAttempts int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
}

// DefaultRetryPolicy matches the production retry budget.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 5,
		BaseBackoff: 30 * time.Second,
		MaxBackoff:  30 * time.Minute,
	}
}

func (p RetryPolicy) backoff(attempt int) time.Duration {
	exp := float64(attempt - 1)
	if exp < 0 {
		exp = 0
	}
	d := time.Duration(float64(p.BaseBackoff) * math.Pow(2, exp))
	if d > p.MaxBackoff {
		d = p.MaxBackoff
	}
	return d
}

// Service persists and hands out outbox actions.
type Service struct {
	client *ent.Client
	policy RetryPolicy
}

func NewService(client *ent.Client, policy RetryPolicy) *Service {
	return &Service{client: client, policy: policy}
}

// Enqueue records a side effect produced by a transition. The row is upserted
// by (loopID, actionKey) back to a fresh pending state, and every older
// pending/running action in the same supersession group is canceled with a
// back-reference to the new row. The whole operation is one transaction.
func (s *Service) Enqueue(ctx context.Context, loopID string, transitionSeq int, actionType outboxaction.ActionType, actionKey string, payload map[string]interface{}, now time.Time) (*ent.OutboxAction, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := s.EnqueueTx(ctx, tx, loopID, transitionSeq, actionType, actionKey, payload, now)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing outbox enqueue: %w", err)
	}
	return row, nil
}

// EnqueueTx is Enqueue running inside a caller-owned transaction, so signal
// processing can make the enqueue and the processed-mark atomic.
func (s *Service) EnqueueTx(ctx context.Context, tx *ent.Tx, loopID string, transitionSeq int, actionType outboxaction.ActionType, actionKey string, payload map[string]interface{}, now time.Time) (*ent.OutboxAction, error) {
	group := SupersessionGroupFor(actionType)
	if group == "" {
		return nil, fmt.Errorf("unknown action type %q", actionType)
	}

	row, err := tx.OutboxAction.Query().
		Where(outboxaction.LoopID(loopID), outboxaction.ActionKey(actionKey)).
		Only(ctx)
	switch {
	case err == nil:
		row, err = tx.OutboxAction.UpdateOne(row).
			SetTransitionSeq(transitionSeq).
			SetActionType(actionType).
			SetSupersessionGroup(group).
			SetPayload(payload).
			SetStatus(outboxaction.StatusPending).
			SetAttemptCount(0).
			ClearNextRetryAt().
			ClearClaimedBy().
			ClearClaimedAt().
			ClearCompletedAt().
			ClearLastErrorClass().
			ClearLastErrorCode().
			ClearLastErrorMessage().
			ClearSupersededByOutboxID().
			ClearCanceledReason().
			SetUpdatedAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("refreshing outbox action %s: %w", actionKey, err)
		}
	case ent.IsNotFound(err):
		row, err = tx.OutboxAction.Create().
			SetID(uuid.New().String()).
			SetLoopID(loopID).
			SetTransitionSeq(transitionSeq).
			SetActionType(actionType).
			SetSupersessionGroup(group).
			SetActionKey(actionKey).
			SetPayload(payload).
			SetStatus(outboxaction.StatusPending).
			SetCreatedAt(now).
			SetUpdatedAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("inserting outbox action %s: %w", actionKey, err)
		}
	default:
		return nil, fmt.Errorf("looking up outbox action %s: %w", actionKey, err)
	}

	_, err = tx.OutboxAction.Update().
		Where(
			outboxaction.LoopID(loopID),
			outboxaction.SupersessionGroup(group),
			outboxaction.IDNEQ(row.ID),
			outboxaction.StatusIn(outboxaction.StatusPending, outboxaction.StatusRunning),
			outboxaction.TransitionSeqLTE(transitionSeq),
		).
		SetStatus(outboxaction.StatusCanceled).
		SetCanceledReason("superseded_by_newer_transition").
		SetSupersededByOutboxID(row.ID).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("superseding outbox group %s: %w", group, err)
	}
	return row, nil
}

// Claim hands the oldest due pending action for the loop to a lease holder.
// The caller's (owner, epoch) must match an unexpired lease row; a displaced
// worker gets nothing. Returns nil when there is no claimable work.
func (s *Service) Claim(ctx context.Context, loopID, leaseOwner string, leaseEpoch int, allowedActionTypes []outboxaction.ActionType, now time.Time) (*ent.OutboxAction, error) {
	held, err := s.client.LoopLease.Query().
		Where(
			looplease.IDEQ(loopID),
			looplease.LeaseOwnerEQ(leaseOwner),
			looplease.LeaseEpochEQ(leaseEpoch),
			looplease.LeaseExpiresAtGT(now),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("verifying lease for loop %s: %w", loopID, err)
	}
	if !held {
		return nil, nil
	}

	preds := []predicate.OutboxAction{
		outboxaction.LoopID(loopID),
		outboxaction.StatusEQ(outboxaction.StatusPending),
		outboxaction.Or(
			outboxaction.NextRetryAtIsNil(),
			outboxaction.NextRetryAtLTE(now),
		),
	}
	if len(allowedActionTypes) > 0 {
		preds = append(preds, outboxaction.ActionTypeIn(allowedActionTypes...))
	}

	row, err := s.client.OutboxAction.Query().
		Where(preds...).
		Order(ent.Asc(outboxaction.FieldTransitionSeq), ent.Asc(outboxaction.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("selecting pending outbox action: %w", err)
	}

	n, err := s.client.OutboxAction.Update().
		Where(
			outboxaction.IDEQ(row.ID),
			outboxaction.StatusEQ(outboxaction.StatusPending),
		).
		SetStatus(outboxaction.StatusRunning).
		SetClaimedBy(leaseOwner).
		SetClaimedAt(now).
		AddAttemptCount(1).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("claiming outbox action %s: %w", row.ID, err)
	}
	if n == 0 {
		// Raced with another claimant.
		return nil, nil
	}
	return s.client.OutboxAction.Get(ctx, row.ID)
}

// CompleteInput reports the result of executing a claimed action.
type CompleteInput struct {
	OutboxID     string
	LeaseOwner   string
	Succeeded    bool
	Retriable    bool
	ErrorClass   string
	ErrorCode    string
	ErrorMessage string
}

// Complete finishes an attempt. On success the row becomes completed; on a
// retriable failure with budget left it goes back to pending with an
// exponential nextRetryAt; otherwise it becomes failed. Every call appends
// exactly one attempt-ledger row. Refuses unless the row is running and
// claimed by the caller.
func (s *Service) Complete(ctx context.Context, in CompleteInput, now time.Time) (*ent.OutboxAction, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.OutboxAction.Get(ctx, in.OutboxID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading outbox action %s: %w", in.OutboxID, err)
	}
	if row.Status != outboxaction.StatusRunning || row.ClaimedBy == nil || *row.ClaimedBy != in.LeaseOwner {
		return nil, ErrNotRunningOrNotOwner
	}

	errMsg := truncateError(in.ErrorMessage)
	attempt := tx.OutboxAttempt.Create().
		SetID(uuid.New().String()).
		SetOutboxID(row.ID).
		SetAttempt(row.AttemptCount).
		SetCreatedAt(now)
	update := tx.OutboxAction.UpdateOne(row).SetUpdatedAt(now)

	var result string
	switch {
	case in.Succeeded:
		result = "completed"
		update = update.
			SetStatus(outboxaction.StatusCompleted).
			SetCompletedAt(now).
			ClearNextRetryAt()
		attempt = attempt.SetStatus(outboxattempt.StatusCompleted)

	case in.Retriable && row.AttemptCount < s.policy.MaxAttempts:
		result = "retry_scheduled"
		retryAt := now.Add(s.policy.backoff(row.AttemptCount))
		update = update.
			SetStatus(outboxaction.StatusPending).
			SetNextRetryAt(retryAt).
			ClearClaimedBy().
			ClearClaimedAt().
			SetLastErrorClass(in.ErrorClass).
			SetLastErrorCode(in.ErrorCode).
			SetLastErrorMessage(errMsg)
		attempt = attempt.
			SetStatus(outboxattempt.StatusRetryScheduled).
			SetErrorClass(in.ErrorClass).
			SetErrorCode(in.ErrorCode).
			SetErrorMessage(errMsg).
			SetRetryAt(retryAt)

	default:
		result = "failed"
		update = update.
			SetStatus(outboxaction.StatusFailed).
			ClearNextRetryAt().
			SetLastErrorClass(in.ErrorClass).
			SetLastErrorCode(in.ErrorCode).
			SetLastErrorMessage(errMsg)
		attempt = attempt.
			SetStatus(outboxattempt.StatusFailed).
			SetErrorClass(in.ErrorClass).
			SetErrorCode(in.ErrorCode).
			SetErrorMessage(errMsg)
	}

	row, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating outbox action %s: %w", in.OutboxID, err)
	}
	if err := attempt.Exec(ctx); err != nil {
		return nil, fmt.Errorf("appending attempt for %s: %w", in.OutboxID, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing outbox completion: %w", err)
	}

	metrics.OutboxAttempts.WithLabelValues(string(row.ActionType), result).Inc()
	return row, nil
}

// RequeueOrphans returns running actions whose loop lease has lapsed (or
// changed hands) to pending so another worker can pick them up. The attempt
// count is kept; the aborted attempt still burned budget.
func (s *Service) RequeueOrphans(ctx context.Context, now time.Time) (int, error) {
	running, err := s.client.OutboxAction.Query().
		Where(outboxaction.StatusEQ(outboxaction.StatusRunning)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing running outbox actions: %w", err)
	}

	requeued := 0
	for _, row := range running {
		if row.ClaimedBy != nil {
			held, err := s.client.LoopLease.Query().
				Where(
					looplease.IDEQ(row.LoopID),
					looplease.LeaseOwnerEQ(*row.ClaimedBy),
					looplease.LeaseExpiresAtGT(now),
				).
				Exist(ctx)
			if err != nil {
				return requeued, fmt.Errorf("checking lease for loop %s: %w", row.LoopID, err)
			}
			if held {
				continue
			}
		}
		n, err := s.client.OutboxAction.Update().
			Where(
				outboxaction.IDEQ(row.ID),
				outboxaction.StatusEQ(outboxaction.StatusRunning),
			).
			SetStatus(outboxaction.StatusPending).
			ClearClaimedBy().
			ClearClaimedAt().
			SetUpdatedAt(now).
			Save(ctx)
		if err != nil {
			return requeued, fmt.Errorf("requeueing outbox action %s: %w", row.ID, err)
		}
		requeued += n
	}
	return requeued, nil
}

func truncateError(msg string) string {
	msg = strings.TrimSpace(msg)
	if len(msg) > maxErrorMessageLen {
		msg = msg[:maxErrorMessageLen]
	}
	return msg
}
