package artifacts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/loopd/ent"
	entloop "github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/phaseartifact"
	"github.com/codeready-toolchain/loopd/ent/plantask"
	"github.com/codeready-toolchain/loopd/pkg/loop"
	"github.com/codeready-toolchain/loopd/pkg/models"
	testdb "github.com/codeready-toolchain/loopd/test/database"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func seedArtifactLoop(t *testing.T, client *ent.Client, id string, state entloop.State, policy entloop.PlanApprovalPolicy) *ent.Loop {
	t.Helper()
	row, err := client.Loop.Create().
		SetID(id).
		SetUserID("user-1").
		SetRepoFullName("acme/widgets").
		SetThreadID("thread-" + id).
		SetState(state).
		SetPlanApprovalPolicy(policy).
		SetCreatedAt(t0).
		SetUpdatedAt(t0).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestStore_CreateArtifactSupersedesPrior(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	seedArtifactLoop(t, client.Client, "loop-a-1", entloop.StatePlanning, entloop.PlanApprovalPolicyAuto)

	first, err := store.CreateArtifactForLoop(ctx, CreateArtifactInput{
		LoopID:       "loop-a-1",
		Phase:        phaseartifact.PhasePlanning,
		ArtifactType: "plan",
		LoopVersion:  0,
		GeneratedBy:  "planner",
	}, t0)
	require.NoError(t, err)
	assert.Equal(t, phaseartifact.StatusGenerated, first.Status)

	second, err := store.CreateArtifactForLoop(ctx, CreateArtifactInput{
		LoopID:        "loop-a-1",
		Phase:         phaseartifact.PhasePlanning,
		ArtifactType:  "plan",
		LoopVersion:   0,
		InitialStatus: phaseartifact.StatusAccepted,
		GeneratedBy:   "planner",
	}, t0.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, phaseartifact.StatusAccepted, second.Status)

	got, err := client.Client.PhaseArtifact.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, phaseartifact.StatusSuperseded, got.Status)

	row, err := client.Client.Loop.Get(ctx, "loop-a-1")
	require.NoError(t, err)
	require.NotNil(t, row.ActivePlanArtifactID)
	assert.Equal(t, second.ID, *row.ActivePlanArtifactID)
}

func TestStore_ApprovePlanArtifact(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	seedArtifactLoop(t, client.Client, "loop-a-2", entloop.StatePlanning, entloop.PlanApprovalPolicyHumanRequired)
	artifact, err := store.CreateArtifactForLoop(ctx, CreateArtifactInput{
		LoopID:       "loop-a-2",
		Phase:        phaseartifact.PhasePlanning,
		ArtifactType: "plan",
		LoopVersion:  0,
		GeneratedBy:  "planner",
	}, t0)
	require.NoError(t, err)

	approved, err := store.ApprovePlanArtifactForLoop(ctx, "loop-a-2", artifact.ID, "user-1", t0.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, phaseartifact.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedByUserID)
	assert.Equal(t, "user-1", *approved.ApprovedByUserID)

	t.Run("approved artifact cannot be approved again", func(t *testing.T) {
		_, err := store.ApprovePlanArtifactForLoop(ctx, "loop-a-2", artifact.ID, "user-2", t0.Add(2*time.Minute))
		assert.ErrorIs(t, err, ErrArtifactNotApprovable)
	})

	t.Run("superseded artifact cannot be approved", func(t *testing.T) {
		newer, err := store.CreateArtifactForLoop(ctx, CreateArtifactInput{
			LoopID:       "loop-a-2",
			Phase:        phaseartifact.PhasePlanning,
			ArtifactType: "plan",
			LoopVersion:  0,
			GeneratedBy:  "planner",
		}, t0.Add(3*time.Minute))
		require.NoError(t, err)

		_, err = store.ApprovePlanArtifactForLoop(ctx, "loop-a-2", artifact.ID, "user-1", t0.Add(4*time.Minute))
		assert.ErrorIs(t, err, ErrArtifactNotApprovable)

		_, err = store.ApprovePlanArtifactForLoop(ctx, "loop-a-2", newer.ID, "user-1", t0.Add(4*time.Minute))
		assert.NoError(t, err)
	})
}

func TestStore_ReplacePlanTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	seedArtifactLoop(t, client.Client, "loop-a-3", entloop.StatePlanning, entloop.PlanApprovalPolicyAuto)
	artifact, err := store.CreateArtifactForLoop(ctx, CreateArtifactInput{
		LoopID: "loop-a-3", Phase: phaseartifact.PhasePlanning,
		ArtifactType: "plan", LoopVersion: 0, GeneratedBy: "planner",
	}, t0)
	require.NoError(t, err)

	inserted, err := store.ReplacePlanTasksForArtifact(ctx, artifact.ID, []PlanTaskInput{
		{StableTaskID: "t1", Title: "Add schema"},
		{StableTaskID: "t2", Title: "Wire handler"},
		{StableTaskID: "t1", Title: "Duplicate"},
	}, t0)
	require.NoError(t, err)
	assert.Len(t, inserted, 2, "duplicate stable ids collapse")

	inserted, err = store.ReplacePlanTasksForArtifact(ctx, artifact.ID, []PlanTaskInput{
		{StableTaskID: "t3", Title: "New plan"},
	}, t0.Add(time.Minute))
	require.NoError(t, err)
	assert.Len(t, inserted, 1)

	all, err := client.Client.PlanTask.Query().Where(plantask.ArtifactID(artifact.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "t3", all[0].StableTaskID)
}

func TestStore_VerifyPlanTaskCompletionForHead(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	seedArtifactLoop(t, client.Client, "loop-a-4", entloop.StateImplementing, entloop.PlanApprovalPolicyAuto)
	artifact, err := store.CreateArtifactForLoop(ctx, CreateArtifactInput{
		LoopID: "loop-a-4", Phase: phaseartifact.PhasePlanning,
		ArtifactType: "plan", LoopVersion: 0, GeneratedBy: "planner",
	}, t0)
	require.NoError(t, err)

	_, err = store.ReplacePlanTasksForArtifact(ctx, artifact.ID, []PlanTaskInput{
		{StableTaskID: "t1", Title: "a"},
		{StableTaskID: "t2", Title: "b"},
		{StableTaskID: "t3", Title: "c"},
		{StableTaskID: "t4", Title: "d"},
	}, t0)
	require.NoError(t, err)

	setTask := func(stableID string, status plantask.Status, evidence map[string]interface{}) {
		t.Helper()
		task, err := client.Client.PlanTask.Query().
			Where(plantask.ArtifactID(artifact.ID), plantask.StableTaskID(stableID)).
			Only(ctx)
		require.NoError(t, err)
		update := client.Client.PlanTask.UpdateOne(task).SetStatus(status)
		if evidence != nil {
			update = update.SetCompletionEvidence(evidence)
		}
		require.NoError(t, update.Exec(ctx))
	}

	setTask("t1", plantask.StatusDone, map[string]interface{}{"headSha": "sha-head"})
	setTask("t2", plantask.StatusDone, map[string]interface{}{"headSha": "sha-old"})
	setTask("t3", plantask.StatusSkipped, nil)
	// t4 stays todo

	res, err := store.VerifyPlanTaskCompletionForHead(ctx, artifact.ID, "sha-head")
	require.NoError(t, err)
	assert.False(t, res.GatePassed)
	assert.Equal(t, []string{"t4"}, res.IncompleteTaskIDs)
	assert.Equal(t, []string{"t2"}, res.InvalidEvidenceTaskIDs)

	setTask("t2", plantask.StatusDone, map[string]interface{}{"headSha": "sha-head"})
	setTask("t4", plantask.StatusDone, map[string]interface{}{"headSha": "sha-head"})

	res, err = store.VerifyPlanTaskCompletionForHead(ctx, artifact.ID, "sha-head")
	require.NoError(t, err)
	assert.True(t, res.GatePassed)

	t.Run("empty task list never passes", func(t *testing.T) {
		_, err := store.ReplacePlanTasksForArtifact(ctx, artifact.ID, nil, t0.Add(time.Hour))
		require.NoError(t, err)
		res, err := store.VerifyPlanTaskCompletionForHead(ctx, artifact.ID, "sha-head")
		require.NoError(t, err)
		assert.False(t, res.GatePassed)
	})
}

func TestStore_TransitionLoopStateWithArtifact(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	t.Run("auto policy requires accepted", func(t *testing.T) {
		seedArtifactLoop(t, client.Client, "loop-a-5", entloop.StatePlanning, entloop.PlanApprovalPolicyAuto)
		artifact, err := store.CreateArtifactForLoop(ctx, CreateArtifactInput{
			LoopID: "loop-a-5", Phase: phaseartifact.PhasePlanning,
			ArtifactType: "plan", LoopVersion: 0, GeneratedBy: "planner",
		}, t0)
		require.NoError(t, err)

		in := ArtifactTransitionInput{
			LoopID:      "loop-a-5",
			ArtifactID:  artifact.ID,
			Phase:       phaseartifact.PhasePlanning,
			Event:       models.EventPlanCompleted,
			LoopVersion: 0,
		}
		res, err := store.TransitionLoopStateWithArtifact(ctx, in, t0)
		require.NoError(t, err)
		assert.Equal(t, OutcomeArtifactGateFailed, res.Outcome, "generated is not accepted")

		require.NoError(t, client.Client.PhaseArtifact.UpdateOneID(artifact.ID).
			SetStatus(phaseartifact.StatusAccepted).Exec(ctx))

		res, err = store.TransitionLoopStateWithArtifact(ctx, in, t0.Add(time.Second))
		require.NoError(t, err)
		assert.Equal(t, loop.OutcomeUpdated, res.Outcome)
		assert.Equal(t, entloop.StateImplementing, res.NextState)
	})

	t.Run("human_required policy requires approved", func(t *testing.T) {
		seedArtifactLoop(t, client.Client, "loop-a-6", entloop.StatePlanning, entloop.PlanApprovalPolicyHumanRequired)
		artifact, err := store.CreateArtifactForLoop(ctx, CreateArtifactInput{
			LoopID: "loop-a-6", Phase: phaseartifact.PhasePlanning,
			ArtifactType: "plan", LoopVersion: 0,
			InitialStatus: phaseartifact.StatusAccepted, GeneratedBy: "planner",
		}, t0)
		require.NoError(t, err)

		in := ArtifactTransitionInput{
			LoopID:      "loop-a-6",
			ArtifactID:  artifact.ID,
			Phase:       phaseartifact.PhasePlanning,
			Event:       models.EventPlanCompleted,
			LoopVersion: 0,
		}
		res, err := store.TransitionLoopStateWithArtifact(ctx, in, t0)
		require.NoError(t, err)
		assert.Equal(t, OutcomeArtifactGateFailed, res.Outcome, "accepted is not enough under human_required")

		_, err = store.ApprovePlanArtifactForLoop(ctx, "loop-a-6", artifact.ID, "user-1", t0)
		require.NoError(t, err)

		res, err = store.TransitionLoopStateWithArtifact(ctx, in, t0.Add(time.Second))
		require.NoError(t, err)
		assert.Equal(t, loop.OutcomeUpdated, res.Outcome)
	})

	t.Run("missing artifact", func(t *testing.T) {
		seedArtifactLoop(t, client.Client, "loop-a-7", entloop.StatePlanning, entloop.PlanApprovalPolicyAuto)
		res, err := store.TransitionLoopStateWithArtifact(ctx, ArtifactTransitionInput{
			LoopID:      "loop-a-7",
			ArtifactID:  "nope",
			Phase:       phaseartifact.PhasePlanning,
			Event:       models.EventPlanCompleted,
			LoopVersion: 0,
		}, t0)
		require.NoError(t, err)
		assert.Equal(t, OutcomeArtifactNotFound, res.Outcome)
	})

	t.Run("head mismatch fails the gate", func(t *testing.T) {
		seedArtifactLoop(t, client.Client, "loop-a-8", entloop.StateImplementing, entloop.PlanApprovalPolicyAuto)
		sha := "sha-a"
		artifact, err := store.CreateArtifactForLoop(ctx, CreateArtifactInput{
			LoopID: "loop-a-8", Phase: phaseartifact.PhaseImplementing,
			ArtifactType: "snapshot", HeadSHA: &sha, LoopVersion: 1,
			InitialStatus: phaseartifact.StatusAccepted, GeneratedBy: "agent",
		}, t0)
		require.NoError(t, err)

		other := "sha-b"
		res, err := store.TransitionLoopStateWithArtifact(ctx, ArtifactTransitionInput{
			LoopID:      "loop-a-8",
			ArtifactID:  artifact.ID,
			Phase:       phaseartifact.PhaseImplementing,
			Event:       models.EventImplementationCompleted,
			HeadSHA:     &other,
			LoopVersion: 1,
		}, t0)
		require.NoError(t, err)
		assert.Equal(t, OutcomeArtifactGateFailed, res.Outcome)
	})

	t.Run("artifact from a newer loop version fails the gate", func(t *testing.T) {
		seedArtifactLoop(t, client.Client, "loop-a-9", entloop.StateImplementing, entloop.PlanApprovalPolicyAuto)
		artifact, err := store.CreateArtifactForLoop(ctx, CreateArtifactInput{
			LoopID: "loop-a-9", Phase: phaseartifact.PhaseImplementing,
			ArtifactType: "snapshot", LoopVersion: 5,
			InitialStatus: phaseartifact.StatusAccepted, GeneratedBy: "agent",
		}, t0)
		require.NoError(t, err)

		res, err := store.TransitionLoopStateWithArtifact(ctx, ArtifactTransitionInput{
			LoopID:      "loop-a-9",
			ArtifactID:  artifact.ID,
			Phase:       phaseartifact.PhaseImplementing,
			Event:       models.EventImplementationCompleted,
			LoopVersion: 4,
		}, t0)
		require.NoError(t, err)
		assert.Equal(t, OutcomeArtifactGateFailed, res.Outcome)
	})

	t.Run("terminal loop reports terminal_noop", func(t *testing.T) {
		seedArtifactLoop(t, client.Client, "loop-a-10", entloop.StateStopped, entloop.PlanApprovalPolicyAuto)
		artifact, err := store.CreateArtifactForLoop(ctx, CreateArtifactInput{
			LoopID: "loop-a-10", Phase: phaseartifact.PhasePlanning,
			ArtifactType: "plan", LoopVersion: 0,
			InitialStatus: phaseartifact.StatusAccepted, GeneratedBy: "planner",
		}, t0)
		require.NoError(t, err)

		res, err := store.TransitionLoopStateWithArtifact(ctx, ArtifactTransitionInput{
			LoopID:      "loop-a-10",
			ArtifactID:  artifact.ID,
			Phase:       phaseartifact.PhasePlanning,
			Event:       models.EventPlanCompleted,
			LoopVersion: 0,
		}, t0)
		require.NoError(t, err)
		assert.Equal(t, loop.OutcomeTerminalNoop, res.Outcome)
	})
}
