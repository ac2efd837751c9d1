package gates

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/loopd/ent"
	entloop "github.com/codeready-toolchain/loopd/ent/loop"
	testdb "github.com/codeready-toolchain/loopd/test/database"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestEvaluator(t *testing.T) (*Evaluator, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return NewEvaluator(client.Client, slog.Default(), nil), client.Client
}

func seedGateLoop(t *testing.T, client *ent.Client, id string, state entloop.State, headSHA string, version int) *ent.Loop {
	t.Helper()
	create := client.Loop.Create().
		SetID(id).
		SetUserID("user-1").
		SetRepoFullName("acme/widgets").
		SetThreadID("thread-" + id).
		SetState(state).
		SetLoopVersion(version).
		SetCreatedAt(t0).
		SetUpdatedAt(t0)
	if headSHA != "" {
		create = create.SetCurrentHeadSha(headSHA)
	}
	row, err := create.Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestNormalizeChecks(t *testing.T) {
	assert.Equal(t,
		[]string{"CI / lint", "CI / tests"},
		NormalizeChecks([]string{" CI / tests ", "CI / lint", "", "CI / tests"}))
	assert.Empty(t, NormalizeChecks(nil))
}

func TestResolveRequiredChecks(t *testing.T) {
	t.Run("ruleset wins", func(t *testing.T) {
		source, required := ResolveRequiredChecks([]string{"rs"}, []string{"bp"}, []string{"al"})
		assert.Equal(t, SourceRuleset, source)
		assert.Equal(t, []string{"rs"}, required)
	})
	t.Run("branch protection next", func(t *testing.T) {
		source, required := ResolveRequiredChecks(nil, []string{"bp"}, []string{"al"})
		assert.Equal(t, SourceBranchProtection, source)
		assert.Equal(t, []string{"bp"}, required)
	})
	t.Run("allowlist next", func(t *testing.T) {
		source, required := ResolveRequiredChecks(nil, []string{"  "}, []string{"al"})
		assert.Equal(t, SourceAllowlist, source)
		assert.Equal(t, []string{"al"}, required)
	})
	t.Run("nothing configured", func(t *testing.T) {
		source, required := ResolveRequiredChecks(nil, nil, nil)
		assert.Equal(t, SourceNoRequired, source)
		assert.Empty(t, required)
	})
}

func TestEvaluateOptimisticCiPass(t *testing.T) {
	source := "github_check_runs"
	required := []string{"CI / lint", "CI / tests"}

	t.Run("complete superset snapshot is accepted", func(t *testing.T) {
		assert.True(t, EvaluateOptimisticCiPass(&source, true, []string{"CI / tests", "CI / lint", "extra"}, required))
	})
	t.Run("missing source is rejected", func(t *testing.T) {
		assert.False(t, EvaluateOptimisticCiPass(nil, true, required, required))
	})
	t.Run("incomplete snapshot is rejected", func(t *testing.T) {
		assert.False(t, EvaluateOptimisticCiPass(&source, false, required, required))
	})
	t.Run("snapshot missing a required check is rejected", func(t *testing.T) {
		assert.False(t, EvaluateOptimisticCiPass(&source, true, []string{"CI / lint"}, required))
	})
}
