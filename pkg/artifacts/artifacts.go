// Package artifacts persists phase artifacts (plans, snapshots, reviews, UI
// runs, babysit reports) and the plan-task completion gate.
package artifacts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/loopd/ent"
	entloop "github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/phaseartifact"
	"github.com/codeready-toolchain/loopd/ent/plantask"
	"github.com/codeready-toolchain/loopd/pkg/loop"
	"github.com/codeready-toolchain/loopd/pkg/models"
)

// ErrArtifactNotApprovable reports an approve call against an artifact that
// is superseded or already approved by someone else.
var ErrArtifactNotApprovable = errors.New("artifact is not in an approvable status")

// Store persists phase artifacts and their plan tasks.
type Store struct {
	client *ent.Client
}

func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// CreateArtifactInput describes a new phase artifact.
type CreateArtifactInput struct {
	LoopID        string
	Phase         phaseartifact.Phase
	ArtifactType  string
	HeadSHA       *string
	LoopVersion   int
	InitialStatus phaseartifact.Status
	GeneratedBy   string
	Payload       map[string]interface{}
}

// CreateArtifactForLoop supersedes every prior non-superseded artifact for
// the (loop, phase) and inserts the new one, in a single transaction. The
// new artifact becomes the loop's active artifact for the phase.
func (s *Store) CreateArtifactForLoop(ctx context.Context, in CreateArtifactInput, now time.Time) (*ent.PhaseArtifact, error) {
	if in.InitialStatus == "" {
		in.InitialStatus = phaseartifact.StatusGenerated
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.PhaseArtifact.Update().
		Where(
			phaseartifact.LoopID(in.LoopID),
			phaseartifact.PhaseEQ(in.Phase),
			phaseartifact.StatusIn(
				phaseartifact.StatusGenerated,
				phaseartifact.StatusApproved,
				phaseartifact.StatusAccepted,
			),
		).
		SetStatus(phaseartifact.StatusSuperseded).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("superseding prior %s artifacts: %w", in.Phase, err)
	}

	row, err := tx.PhaseArtifact.Create().
		SetID(uuid.New().String()).
		SetLoopID(in.LoopID).
		SetPhase(in.Phase).
		SetArtifactType(in.ArtifactType).
		SetNillableHeadSha(in.HeadSHA).
		SetLoopVersion(in.LoopVersion).
		SetStatus(in.InitialStatus).
		SetGeneratedBy(in.GeneratedBy).
		SetPayload(in.Payload).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("inserting %s artifact: %w", in.Phase, err)
	}

	if err := s.setActivePointer(ctx, tx, in.LoopID, in.Phase, row.ID, now); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing artifact creation: %w", err)
	}
	return row, nil
}

// ApprovePlanArtifactForLoop CAS-moves a planning artifact from
// generated/accepted to approved and records the approver.
func (s *Store) ApprovePlanArtifactForLoop(ctx context.Context, loopID, artifactID, userID string, now time.Time) (*ent.PhaseArtifact, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	n, err := tx.PhaseArtifact.Update().
		Where(
			phaseartifact.IDEQ(artifactID),
			phaseartifact.LoopID(loopID),
			phaseartifact.PhaseEQ(phaseartifact.PhasePlanning),
			phaseartifact.StatusIn(phaseartifact.StatusGenerated, phaseartifact.StatusAccepted),
		).
		SetStatus(phaseartifact.StatusApproved).
		SetApprovedByUserID(userID).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("approving plan artifact %s: %w", artifactID, err)
	}
	if n == 0 {
		return nil, ErrArtifactNotApprovable
	}

	if err := s.setActivePointer(ctx, tx, loopID, phaseartifact.PhasePlanning, artifactID, now); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing plan approval: %w", err)
	}
	return s.client.PhaseArtifact.Get(ctx, artifactID)
}

func (s *Store) setActivePointer(ctx context.Context, tx *ent.Tx, loopID string, phase phaseartifact.Phase, artifactID string, now time.Time) error {
	update := tx.Loop.UpdateOneID(loopID).SetUpdatedAt(now)
	switch phase {
	case phaseartifact.PhasePlanning:
		update = update.SetActivePlanArtifactID(artifactID)
	case phaseartifact.PhaseImplementing:
		update = update.SetActiveImplementationArtifactID(artifactID)
	case phaseartifact.PhaseReviewing:
		update = update.SetActiveReviewArtifactID(artifactID)
	case phaseartifact.PhaseUITesting:
		update = update.SetActiveUIArtifactID(artifactID)
	case phaseartifact.PhasePrBabysitting:
		update = update.SetActiveBabysitArtifactID(artifactID)
	case phaseartifact.PhasePrLinking:
		// PR-linking artifacts have no pointer on the loop row.
		return nil
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("updating active %s artifact pointer: %w", phase, err)
	}
	return nil
}

// PlanTaskInput is one task of a plan.
type PlanTaskInput struct {
	StableTaskID       string
	Title              string
	Description        string
	AcceptanceCriteria []string
}

// ReplacePlanTasksForArtifact wipes the artifact's tasks and re-inserts the
// given list, deduplicated on stable task id (first occurrence wins).
func (s *Store) ReplacePlanTasksForArtifact(ctx context.Context, artifactID string, tasks []PlanTaskInput, now time.Time) ([]*ent.PlanTask, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.PlanTask.Delete().
		Where(plantask.ArtifactID(artifactID)).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("deleting tasks for artifact %s: %w", artifactID, err)
	}

	seen := make(map[string]struct{}, len(tasks))
	inserted := make([]*ent.PlanTask, 0, len(tasks))
	for _, task := range tasks {
		if _, ok := seen[task.StableTaskID]; ok {
			continue
		}
		seen[task.StableTaskID] = struct{}{}
		row, err := tx.PlanTask.Create().
			SetID(uuid.New().String()).
			SetArtifactID(artifactID).
			SetStableTaskID(task.StableTaskID).
			SetTitle(task.Title).
			SetDescription(task.Description).
			SetAcceptanceCriteria(task.AcceptanceCriteria).
			SetCreatedAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("inserting task %s: %w", task.StableTaskID, err)
		}
		inserted = append(inserted, row)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing task replacement: %w", err)
	}
	return inserted, nil
}

// TaskCompletionResult reports the plan-task completion gate for a head SHA.
type TaskCompletionResult struct {
	GatePassed             bool
	IncompleteTaskIDs      []string
	InvalidEvidenceTaskIDs []string
}

// VerifyPlanTaskCompletionForHead checks that every task of the artifact is
// finished with evidence anchored at the given head. Skipped tasks are
// exempt; an empty task list never passes.
func (s *Store) VerifyPlanTaskCompletionForHead(ctx context.Context, artifactID, headSHA string) (TaskCompletionResult, error) {
	tasks, err := s.client.PlanTask.Query().
		Where(plantask.ArtifactID(artifactID)).
		Order(ent.Asc(plantask.FieldStableTaskID)).
		All(ctx)
	if err != nil {
		return TaskCompletionResult{}, fmt.Errorf("listing tasks for artifact %s: %w", artifactID, err)
	}

	res := TaskCompletionResult{
		IncompleteTaskIDs:      []string{},
		InvalidEvidenceTaskIDs: []string{},
	}
	for _, task := range tasks {
		switch task.Status {
		case plantask.StatusTodo, plantask.StatusInProgress, plantask.StatusBlocked:
			res.IncompleteTaskIDs = append(res.IncompleteTaskIDs, task.StableTaskID)
		case plantask.StatusDone:
			evidenceSHA, _ := task.CompletionEvidence["headSha"].(string)
			if task.CompletionEvidence == nil || evidenceSHA != headSHA {
				res.InvalidEvidenceTaskIDs = append(res.InvalidEvidenceTaskIDs, task.StableTaskID)
			}
		case plantask.StatusSkipped:
			// Exempt.
		}
	}
	res.GatePassed = len(tasks) > 0 && len(res.IncompleteTaskIDs) == 0 && len(res.InvalidEvidenceTaskIDs) == 0
	return res, nil
}

// RequiredPlanStatus returns the artifact status a loop needs before it may
// advance out of planning.
func RequiredPlanStatus(policy entloop.PlanApprovalPolicy) phaseartifact.Status {
	if policy == entloop.PlanApprovalPolicyHumanRequired {
		return phaseartifact.StatusApproved
	}
	return phaseartifact.StatusAccepted
}

// Artifact-bound transition outcomes, extending the state machine's set.
const (
	OutcomeArtifactNotFound   loop.TransitionOutcome = "artifact_not_found"
	OutcomeArtifactGateFailed loop.TransitionOutcome = "artifact_gate_failed"
)

// ArtifactTransitionInput binds a state transition to an artifact gate.
type ArtifactTransitionInput struct {
	LoopID      string
	ArtifactID  string
	Phase       phaseartifact.Phase
	Event       models.TransitionEvent
	HeadSHA     *string
	LoopVersion int
}

// TransitionLoopStateWithArtifact advances the loop only when the named
// artifact exists for the expected phase, carries the policy-required status,
// matches the head SHA when one is supplied, and is not from a newer loop
// version than the caller observed.
func (s *Store) TransitionLoopStateWithArtifact(ctx context.Context, in ArtifactTransitionInput, now time.Time) (loop.TransitionResult, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return loop.TransitionResult{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.Loop.Get(ctx, in.LoopID)
	if err != nil {
		return loop.TransitionResult{}, fmt.Errorf("reading loop %s: %w", in.LoopID, err)
	}

	artifact, err := tx.PhaseArtifact.Query().
		Where(
			phaseartifact.IDEQ(in.ArtifactID),
			phaseartifact.LoopID(in.LoopID),
			phaseartifact.PhaseEQ(in.Phase),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return loop.TransitionResult{Outcome: OutcomeArtifactNotFound, FromState: row.State, NextState: row.State}, tx.Commit()
		}
		return loop.TransitionResult{}, fmt.Errorf("reading artifact %s: %w", in.ArtifactID, err)
	}

	required := phaseartifact.StatusAccepted
	if in.Phase == phaseartifact.PhasePlanning {
		required = RequiredPlanStatus(row.PlanApprovalPolicy)
	}
	gateFailed := artifact.Status != required ||
		artifact.LoopVersion > in.LoopVersion ||
		(in.HeadSHA != nil && (artifact.HeadSha == nil || *artifact.HeadSha != *in.HeadSHA))
	if gateFailed {
		return loop.TransitionResult{Outcome: OutcomeArtifactGateFailed, FromState: row.State, NextState: row.State}, tx.Commit()
	}

	res, err := loop.PersistGuardedGateLoopState(ctx, tx, in.LoopID, in.Event,
		loop.GateStateInput{HeadSHA: in.HeadSHA, LoopVersion: &in.LoopVersion}, now)
	if err != nil {
		return loop.TransitionResult{}, err
	}
	if err := tx.Commit(); err != nil {
		return loop.TransitionResult{}, fmt.Errorf("committing artifact transition: %w", err)
	}
	return res, nil
}
