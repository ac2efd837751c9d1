package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/loopd/ent"
	entloop "github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/pkg/artifacts"
	"github.com/codeready-toolchain/loopd/pkg/gates"
	"github.com/codeready-toolchain/loopd/pkg/inbox"
	"github.com/codeready-toolchain/loopd/pkg/loop"
	"github.com/codeready-toolchain/loopd/pkg/outbox"
	"github.com/codeready-toolchain/loopd/pkg/webhookledger"
	testdb "github.com/codeready-toolchain/loopd/test/database"
)

type noopEnqueuer struct{}

func (noopEnqueuer) EnqueueFollowUp(context.Context, inbox.FollowUpRequest) error { return nil }

func newTestServer(t *testing.T) (*Server, *ent.Client) {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client

	leases := loop.NewLeaseService(client)
	outboxSvc := outbox.NewService(client, outbox.DefaultRetryPolicy())
	evaluator := gates.NewEvaluator(client, slog.Default(), nil)
	inboxSvc := inbox.NewService(client, leases, evaluator, outboxSvc,
		inbox.NewRouter(noopEnqueuer{}), slog.Default(), 30*time.Second)

	srv := NewServer(dbClient, webhookledger.NewLedger(client), loop.NewRegistry(client),
		inboxSvc, artifacts.NewStore(client), nil, slog.Default())
	return srv, client
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestEnrollAndLookupLoop(t *testing.T) {
	srv, _ := newTestServer(t)

	pr := 7
	rec := doJSON(t, srv, http.MethodPost, "/api/v1/loops", EnrollLoopRequest{
		UserID:       "user-1",
		RepoFullName: "acme/widgets",
		PRNumber:     &pr,
		ThreadID:     "thread-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	assert.Equal(t, "planning", created["state"])
	loopID := created["loopId"].(string)

	// Second active loop for the same thread is rejected.
	rec = doJSON(t, srv, http.MethodPost, "/api/v1/loops", EnrollLoopRequest{
		UserID:       "user-1",
		RepoFullName: "acme/widgets",
		ThreadID:     "thread-1",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/loops/pr?repo=acme/widgets&prNumber=7", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, loopID, decodeBody(t, rec)["loopId"])

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/loops/thread?userId=user-1&threadId=thread-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, loopID, decodeBody(t, rec)["loopId"])

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/loops/pr?repo=acme/widgets&prNumber=999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWebhookAdmission(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	pr := 7
	row, err := client.Loop.Create().
		SetID("loop-wh").
		SetUserID("user-1").
		SetRepoFullName("acme/widgets").
		SetPrNumber(pr).
		SetThreadID("thread-wh").
		SetState(entloop.StateImplementing).
		SetCurrentHeadSha("sha-1").
		Save(ctx)
	require.NoError(t, err)

	body := GitHubWebhookRequest{
		DeliveryID:   "delivery-1",
		EventType:    "check_run.completed",
		RepoFullName: "acme/widgets",
		PRNumber:     &pr,
		HeadSHA:      "sha-1",
		CheckRunID:   "42",
		Payload: map[string]interface{}{
			"checkName":    "CI / tests",
			"checkOutcome": "fail",
		},
	}

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/webhooks/github", body)
	require.Equal(t, http.StatusAccepted, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "accepted", resp["status"])
	assert.Equal(t, row.ID, resp["loopId"])

	n, err := client.InboxSignal.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Replay of a completed delivery answers 200 and fans in nothing new.
	rec = doJSON(t, srv, http.MethodPost, "/api/v1/webhooks/github", body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "already_completed", decodeBody(t, rec)["status"])

	n, err = client.InboxSignal.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWebhookWithoutActiveLoopIsIgnored(t *testing.T) {
	srv, _ := newTestServer(t)

	pr := 12
	rec := doJSON(t, srv, http.MethodPost, "/api/v1/webhooks/github", GitHubWebhookRequest{
		DeliveryID:   "delivery-2",
		EventType:    "check_run.completed",
		RepoFullName: "acme/widgets",
		PRNumber:     &pr,
		CheckRunID:   "1",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "ignored", decodeBody(t, rec)["status"])
}

func TestWebhookPRClosedTerminatesLoop(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	pr := 9
	_, err := client.Loop.Create().
		SetID("loop-closed").
		SetUserID("user-1").
		SetRepoFullName("acme/widgets").
		SetPrNumber(pr).
		SetThreadID("thread-closed").
		SetState(entloop.StatePrBabysitting).
		Save(ctx)
	require.NoError(t, err)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/webhooks/github", GitHubWebhookRequest{
		DeliveryID:    "delivery-3",
		EventType:     "pull_request.closed",
		RepoFullName:  "acme/widgets",
		PRNumber:      &pr,
		PullRequestID: "pr-9",
		Merged:        true,
	})
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "updated", decodeBody(t, rec)["transition"])

	row, err := client.Loop.Get(ctx, "loop-closed")
	require.NoError(t, err)
	assert.Equal(t, entloop.StateTerminatedPrMerged, row.State)
}

func TestDaemonEventAckEchoesIdentity(t *testing.T) {
	srv, client := newTestServer(t)

	_, err := client.Loop.Create().
		SetID("loop-d").
		SetUserID("user-1").
		SetRepoFullName("acme/widgets").
		SetThreadID("thread-d").
		SetState(entloop.StateImplementing).
		Save(context.Background())
	require.NoError(t, err)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/daemon/events", DaemonEventRequest{
		PayloadVersion: 2,
		EventID:        "event-1",
		RunID:          "run-1",
		Seq:            4,
		LoopID:         "loop-d",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var ack DaemonEventAck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.Equal(t, "event-1", ack.AcknowledgedEventID)
	assert.Equal(t, 4, ack.AcknowledgedSeq)
}

func TestDaemonEventRejectsWrongVersion(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/daemon/events", DaemonEventRequest{
		PayloadVersion: 1,
		EventID:        "event-1",
		RunID:          "run-1",
		LoopID:         "loop-x",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStopLoop(t *testing.T) {
	srv, client := newTestServer(t)

	_, err := client.Loop.Create().
		SetID("loop-s").
		SetUserID("user-1").
		SetRepoFullName("acme/widgets").
		SetThreadID("thread-s").
		SetState(entloop.StateImplementing).
		Save(context.Background())
	require.NoError(t, err)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/loops/loop-s/stop", StopLoopRequest{Reason: "operator request"})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "updated", resp["outcome"])
	assert.Equal(t, "stopped", resp["state"])

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/loops/missing/stop", StopLoopRequest{})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
