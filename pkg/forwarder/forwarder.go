// Package forwarder delivers the controller's outbound effects over HTTP:
// outbox actions go to the side-effect gateway, follow-up messages to the
// agent runtime. Both targets are external collaborators; this package only
// speaks their JSON endpoints.
package forwarder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/codeready-toolchain/loopd/pkg/inbox"
	"github.com/codeready-toolchain/loopd/pkg/outbox"
)

// Client posts JSON to the configured gateway endpoints.
type Client struct {
	httpClient    *http.Client
	sideEffectURL string
	followUpURL   string
	token         string
}

// NewClient creates a forwarder. token may be empty (gateway without auth).
func NewClient(sideEffectURL, followUpURL, token string) *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		sideEffectURL: sideEffectURL,
		followUpURL:   followUpURL,
		token:         token,
	}
}

// sideEffect posts one outbox action to the gateway under its action path.
func (c *Client) sideEffect(ctx context.Context, action, loopID string, payload map[string]interface{}) error {
	body := map[string]interface{}{
		"loopId":  loopID,
		"payload": payload,
	}
	return c.post(ctx, fmt.Sprintf("%s/%s", c.sideEffectURL, action), body)
}

// PublishStatusComment implements outbox.Sink.
func (c *Client) PublishStatusComment(ctx context.Context, loopID string, payload map[string]interface{}) error {
	return c.sideEffect(ctx, "status-comment", loopID, payload)
}

// PublishCheckSummary implements outbox.Sink.
func (c *Client) PublishCheckSummary(ctx context.Context, loopID string, payload map[string]interface{}) error {
	return c.sideEffect(ctx, "check-summary", loopID, payload)
}

// PublishVideoLink implements outbox.Sink.
func (c *Client) PublishVideoLink(ctx context.Context, loopID string, payload map[string]interface{}) error {
	return c.sideEffect(ctx, "video-link", loopID, payload)
}

// EmitTelemetry implements outbox.Sink.
func (c *Client) EmitTelemetry(ctx context.Context, loopID string, payload map[string]interface{}) error {
	return c.sideEffect(ctx, "telemetry", loopID, payload)
}

// EnqueueFixTask implements outbox.Sink.
func (c *Client) EnqueueFixTask(ctx context.Context, loopID string, payload map[string]interface{}) error {
	return c.sideEffect(ctx, "fix-task", loopID, payload)
}

// EnqueueFollowUp implements inbox.FollowUpEnqueuer.
func (c *Client) EnqueueFollowUp(ctx context.Context, req inbox.FollowUpRequest) error {
	return c.post(ctx, c.followUpURL, req)
}

func (c *Client) post(ctx context.Context, url string, body any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &outbox.SinkError{Class: "infra", Code: "gateway_unreachable", Retriable: true, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	return classifyStatus(resp.StatusCode)
}

// classifyStatus maps gateway HTTP status codes onto sink error classes.
func classifyStatus(status int) error {
	switch {
	case status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &outbox.SinkError{Class: "auth", Code: fmt.Sprintf("gateway_%d", status), Retriable: false,
			Err: fmt.Errorf("gateway rejected request with status %d", status)}
	case status == http.StatusTooManyRequests:
		return &outbox.SinkError{Class: "quota", Code: "gateway_429", Retriable: true,
			Err: fmt.Errorf("gateway rate limited the request")}
	case status >= 500:
		return &outbox.SinkError{Class: "infra", Code: fmt.Sprintf("gateway_%d", status), Retriable: true,
			Err: fmt.Errorf("gateway failed with status %d", status)}
	default:
		return &outbox.SinkError{Class: "script", Code: fmt.Sprintf("gateway_%d", status), Retriable: false,
			Err: fmt.Errorf("gateway rejected request with status %d", status)}
	}
}
