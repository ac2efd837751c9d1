package forwarder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/loopd/pkg/inbox"
	"github.com/codeready-toolchain/loopd/pkg/outbox"
)

type capturedRequest struct {
	path string
	auth string
	body map[string]any
}

func newGatewayServer(t *testing.T, status int) (*httptest.Server, func() []capturedRequest) {
	t.Helper()
	var mu sync.Mutex
	var captured []capturedRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		mu.Lock()
		captured = append(captured, capturedRequest{
			path: r.URL.Path,
			auth: r.Header.Get("Authorization"),
			body: body,
		})
		mu.Unlock()
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	return srv, func() []capturedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]capturedRequest(nil), captured...)
	}
}

func TestSideEffectDeliveryRoutesByActionType(t *testing.T) {
	srv, captured := newGatewayServer(t, http.StatusOK)
	client := NewClient(srv.URL+"/effects", srv.URL+"/follow-up", "token-1")
	ctx := context.Background()

	payload := map[string]interface{}{"body": "hello"}
	require.NoError(t, client.PublishStatusComment(ctx, "loop-1", payload))
	require.NoError(t, client.PublishCheckSummary(ctx, "loop-1", payload))
	require.NoError(t, client.PublishVideoLink(ctx, "loop-1", payload))
	require.NoError(t, client.EmitTelemetry(ctx, "loop-1", payload))
	require.NoError(t, client.EnqueueFixTask(ctx, "loop-1", payload))

	reqs := captured()
	require.Len(t, reqs, 5)
	assert.Equal(t, "/effects/status-comment", reqs[0].path)
	assert.Equal(t, "/effects/check-summary", reqs[1].path)
	assert.Equal(t, "/effects/video-link", reqs[2].path)
	assert.Equal(t, "/effects/telemetry", reqs[3].path)
	assert.Equal(t, "/effects/fix-task", reqs[4].path)

	for _, req := range reqs {
		assert.Equal(t, "Bearer token-1", req.auth)
		assert.Equal(t, "loop-1", req.body["loopId"])
	}
}

func TestEnqueueFollowUpPostsMessages(t *testing.T) {
	srv, captured := newGatewayServer(t, http.StatusAccepted)
	client := NewClient(srv.URL+"/effects", srv.URL+"/follow-up", "")

	err := client.EnqueueFollowUp(context.Background(), inbox.FollowUpRequest{
		UserID:   "user-1",
		ThreadID: "thread-1",
		Messages: []inbox.Message{
			{Role: "user", Parts: []inbox.MessagePart{{Type: "text", Text: "feedback"}}},
		},
	})
	require.NoError(t, err)

	reqs := captured()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/follow-up", reqs[0].path)
	assert.Empty(t, reqs[0].auth)
	assert.Equal(t, "user-1", reqs[0].body["userId"])
}

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantClass     string
		wantRetriable bool
	}{
		{"unauthorized", http.StatusUnauthorized, "auth", false},
		{"forbidden", http.StatusForbidden, "auth", false},
		{"rate limited", http.StatusTooManyRequests, "quota", true},
		{"server error", http.StatusBadGateway, "infra", true},
		{"bad request", http.StatusUnprocessableEntity, "script", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newGatewayServer(t, tt.status)
			client := NewClient(srv.URL+"/effects", srv.URL+"/follow-up", "")

			err := client.EmitTelemetry(context.Background(), "loop-1", nil)
			require.Error(t, err)

			var sinkErr *outbox.SinkError
			require.True(t, errors.As(err, &sinkErr))
			assert.Equal(t, tt.wantClass, sinkErr.Class)
			assert.Equal(t, tt.wantRetriable, sinkErr.Retriable)
		})
	}
}

func TestUnreachableGatewayIsRetriableInfra(t *testing.T) {
	srv, _ := newGatewayServer(t, http.StatusOK)
	srv.Close()
	client := NewClient(srv.URL+"/effects", srv.URL+"/follow-up", "")

	err := client.PublishStatusComment(context.Background(), "loop-1", nil)
	require.Error(t, err)

	var sinkErr *outbox.SinkError
	require.True(t, errors.As(err, &sinkErr))
	assert.Equal(t, "infra", sinkErr.Class)
	assert.Equal(t, "gateway_unreachable", sinkErr.Code)
	assert.True(t, sinkErr.Retriable)
}
