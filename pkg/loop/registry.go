package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/loopd/ent"
	entloop "github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/outboxaction"
	"github.com/codeready-toolchain/loopd/pkg/models"
)

// Registry errors surfaced to the control plane.
var (
	ErrLoopNotFound     = errors.New("loop not found")
	ErrActiveLoopExists = errors.New("an active loop already exists for this scope")
)

var terminalStates = []entloop.State{
	entloop.StateTerminatedPrClosed,
	entloop.StateTerminatedPrMerged,
	entloop.StateDone,
	entloop.StateStopped,
}

// EnrollInput describes a new loop. LoopID is generated when empty.
type EnrollInput struct {
	LoopID             string
	UserID             string
	RepoFullName       string
	PRNumber           *int
	ThreadID           string
	ThreadChatID       *string
	CurrentHeadSHA     *string
	PlanApprovalPolicy entloop.PlanApprovalPolicy
	MaxFixAttempts     *int
}

// Registry owns loop rows: enrollment, active-loop lookup, and manual stop.
type Registry struct {
	client *ent.Client
}

func NewRegistry(client *ent.Client) *Registry {
	return &Registry{client: client}
}

// Client exposes the backing ent client for composed writes.
func (r *Registry) Client() *ent.Client {
	return r.client
}

// Enroll creates a loop in planning. The partial unique indexes on
// (user, thread) and (repo, pr, user) reject a second active loop for the
// same scope; terminal rows do not count against either.
func (r *Registry) Enroll(ctx context.Context, in EnrollInput, now time.Time) (*ent.Loop, error) {
	if in.UserID == "" || in.RepoFullName == "" || in.ThreadID == "" {
		return nil, fmt.Errorf("enroll: userId, repoFullName and threadId are required")
	}
	id := in.LoopID
	if id == "" {
		id = uuid.New().String()
	}
	policy := in.PlanApprovalPolicy
	if policy == "" {
		policy = entloop.PlanApprovalPolicyAuto
	}

	create := r.client.Loop.Create().
		SetID(id).
		SetUserID(in.UserID).
		SetRepoFullName(in.RepoFullName).
		SetThreadID(in.ThreadID).
		SetState(entloop.StatePlanning).
		SetPlanApprovalPolicy(policy).
		SetNillablePrNumber(in.PRNumber).
		SetNillableThreadChatID(in.ThreadChatID).
		SetNillableCurrentHeadSha(in.CurrentHeadSHA).
		SetNillableMaxFixAttempts(in.MaxFixAttempts).
		SetCreatedAt(now).
		SetUpdatedAt(now)

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrActiveLoopExists
		}
		return nil, fmt.Errorf("enrolling loop: %w", err)
	}
	return row, nil
}

// Get fetches a loop by id.
func (r *Registry) Get(ctx context.Context, loopID string) (*ent.Loop, error) {
	row, err := r.client.Loop.Get(ctx, loopID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrLoopNotFound
		}
		return nil, fmt.Errorf("reading loop %s: %w", loopID, err)
	}
	return row, nil
}

// GetActiveLoopForPR returns the non-terminal loop bound to a PR, newest
// first if the index invariant was ever relaxed.
func (r *Registry) GetActiveLoopForPR(ctx context.Context, repoFullName string, prNumber int) (*ent.Loop, error) {
	row, err := r.client.Loop.Query().
		Where(
			entloop.RepoFullNameEQ(repoFullName),
			entloop.PrNumberEQ(prNumber),
			entloop.StateNotIn(terminalStates...),
		).
		Order(ent.Desc(entloop.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrLoopNotFound
		}
		return nil, fmt.Errorf("finding active loop for %s#%d: %w", repoFullName, prNumber, err)
	}
	return row, nil
}

// GetActiveLoopForThread returns the non-terminal loop bound to a user's
// thread.
func (r *Registry) GetActiveLoopForThread(ctx context.Context, userID, threadID string) (*ent.Loop, error) {
	row, err := r.client.Loop.Query().
		Where(
			entloop.UserIDEQ(userID),
			entloop.ThreadIDEQ(threadID),
			entloop.StateNotIn(terminalStates...),
		).
		Order(ent.Desc(entloop.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrLoopNotFound
		}
		return nil, fmt.Errorf("finding active loop for user %s thread %s: %w", userID, threadID, err)
	}
	return row, nil
}

// ManualStop moves the loop to stopped and cancels its undelivered outbox
// actions in the same transaction, so no side effect of the stopped loop
// fires afterwards. A terminal loop reports terminal_noop and stays put.
func (r *Registry) ManualStop(ctx context.Context, loopID, reason string, now time.Time) (TransitionResult, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := PersistGuardedGateLoopState(ctx, tx, loopID, models.EventManualStop, GateStateInput{}, now)
	if err != nil {
		if ent.IsNotFound(err) {
			return TransitionResult{}, ErrLoopNotFound
		}
		return TransitionResult{}, err
	}
	if res.Outcome != OutcomeUpdated {
		return res, tx.Commit()
	}

	err = tx.Loop.UpdateOneID(loopID).
		SetStopReason(reason).
		Exec(ctx)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("recording stop reason for loop %s: %w", loopID, err)
	}

	_, err = tx.OutboxAction.Update().
		Where(
			outboxaction.LoopID(loopID),
			outboxaction.StatusIn(outboxaction.StatusPending, outboxaction.StatusRunning),
		).
		SetStatus(outboxaction.StatusCanceled).
		SetCanceledReason("canceled_due_to_stop").
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("canceling outbox actions for loop %s: %w", loopID, err)
	}

	if err := tx.Commit(); err != nil {
		return TransitionResult{}, fmt.Errorf("committing stop for loop %s: %w", loopID, err)
	}
	return res, nil
}
