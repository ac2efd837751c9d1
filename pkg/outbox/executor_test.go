package outbox

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/loopd/ent/outboxaction"
	testdb "github.com/codeready-toolchain/loopd/test/database"
)

type stubSink struct {
	err   error
	calls []string
}

func (s *stubSink) record(name string) error {
	s.calls = append(s.calls, name)
	return s.err
}

func (s *stubSink) PublishStatusComment(context.Context, string, map[string]interface{}) error {
	return s.record("publish_status_comment")
}
func (s *stubSink) PublishCheckSummary(context.Context, string, map[string]interface{}) error {
	return s.record("publish_check_summary")
}
func (s *stubSink) PublishVideoLink(context.Context, string, map[string]interface{}) error {
	return s.record("publish_video_link")
}
func (s *stubSink) EmitTelemetry(context.Context, string, map[string]interface{}) error {
	return s.record("emit_telemetry")
}
func (s *stubSink) EnqueueFixTask(context.Context, string, map[string]interface{}) error {
	return s.record("enqueue_fix_task")
}

func TestExecutor_Execute(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, DefaultRetryPolicy())
	ctx := context.Background()

	seedLoopWithLease(t, client.Client, "loop-exec", "worker-a", 1, t0.Add(time.Hour))

	enqueueAndClaim := func(t *testing.T, key string) string {
		t.Helper()
		_, err := svc.Enqueue(ctx, "loop-exec", 1, outboxaction.ActionTypePublishStatusComment, key, nil, t0)
		require.NoError(t, err)
		claimed, err := svc.Claim(ctx, "loop-exec", "worker-a", 1, nil, t0.Add(time.Second))
		require.NoError(t, err)
		require.NotNil(t, claimed)
		return claimed.ID
	}

	t.Run("success completes the action", func(t *testing.T) {
		sink := &stubSink{}
		exec := NewExecutor(svc, sink, slog.Default())
		id := enqueueAndClaim(t, "status:ok")

		claimed, err := client.Client.OutboxAction.Get(ctx, id)
		require.NoError(t, err)
		row, err := exec.Execute(ctx, claimed, "worker-a", t0.Add(2*time.Second))
		require.NoError(t, err)
		assert.Equal(t, outboxaction.StatusCompleted, row.Status)
		assert.Equal(t, []string{"publish_status_comment"}, sink.calls)
	})

	t.Run("classified terminal failure", func(t *testing.T) {
		sink := &stubSink{err: &SinkError{Class: "auth", Code: "github_401", Retriable: false,
			Err: errors.New("401 bad credentials")}}
		exec := NewExecutor(svc, sink, slog.Default())
		id := enqueueAndClaim(t, "status:auth")

		claimed, err := client.Client.OutboxAction.Get(ctx, id)
		require.NoError(t, err)
		row, err := exec.Execute(ctx, claimed, "worker-a", t0.Add(2*time.Second))
		require.NoError(t, err)
		assert.Equal(t, outboxaction.StatusFailed, row.Status)
		require.NotNil(t, row.LastErrorClass)
		assert.Equal(t, "auth", *row.LastErrorClass)
	})

	t.Run("unclassified failure retries as unknown", func(t *testing.T) {
		sink := &stubSink{err: errors.New("connection reset")}
		exec := NewExecutor(svc, sink, slog.Default())
		id := enqueueAndClaim(t, "status:flaky")

		claimed, err := client.Client.OutboxAction.Get(ctx, id)
		require.NoError(t, err)
		row, err := exec.Execute(ctx, claimed, "worker-a", t0.Add(2*time.Second))
		require.NoError(t, err)
		assert.Equal(t, outboxaction.StatusPending, row.Status)
		require.NotNil(t, row.LastErrorClass)
		assert.Equal(t, "unknown", *row.LastErrorClass)
		assert.NotNil(t, row.NextRetryAt)
	})
}
