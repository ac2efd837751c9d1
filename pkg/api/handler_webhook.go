package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/codeready-toolchain/loopd/pkg/cause"
	"github.com/codeready-toolchain/loopd/pkg/loop"
	"github.com/codeready-toolchain/loopd/pkg/models"
	"github.com/codeready-toolchain/loopd/pkg/webhookledger"
)

// GitHubWebhookRequest is the pre-parsed webhook envelope posted by the
// receiver in front of this service. EventType is one of the supported cause
// types; the identity fields feed canonical cause construction.
type GitHubWebhookRequest struct {
	DeliveryID    string                 `json:"deliveryId" binding:"required"`
	EventType     string                 `json:"eventType" binding:"required"`
	RepoFullName  string                 `json:"repoFullName"`
	PRNumber      *int                   `json:"prNumber"`
	HeadSHA       string                 `json:"headSha"`
	CheckRunID    string                 `json:"checkRunId"`
	CheckSuiteID  string                 `json:"checkSuiteId"`
	PullRequestID string                 `json:"pullRequestId"`
	Merged        bool                   `json:"merged"`
	ReviewID      string                 `json:"reviewId"`
	ReviewState   string                 `json:"reviewState"`
	CommentID     string                 `json:"commentId"`
	Payload       map[string]interface{} `json:"payload"`
}

// HandleGitHubWebhook handles POST /api/v1/webhooks/github. Admission runs
// through the claim ledger: a completed delivery answers 200, everything
// else 202 so the partner stops retrying.
func (s *Server) HandleGitHubWebhook(c *gin.Context) {
	var req GitHubWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	claimant := uuid.New().String()

	claim, err := s.ledger.Claim(c.Request.Context(), req.DeliveryID, claimant, req.EventType, now)
	if err != nil {
		s.logger.Error("webhook claim failed", "delivery_id", req.DeliveryID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "claim failed"})
		return
	}
	if !claim.ShouldProcess {
		status := http.StatusAccepted
		if claim.Outcome == webhookledger.OutcomeAlreadyCompleted {
			status = http.StatusOK
		}
		c.JSON(status, gin.H{"status": string(claim.Outcome)})
		return
	}

	resp, err := s.admitDelivery(c, req, now)
	if err != nil {
		// Give the claim back so a later re-delivery can retry.
		if _, relErr := s.ledger.Release(c.Request.Context(), req.DeliveryID, claimant, time.Now()); relErr != nil {
			s.logger.Error("webhook claim release failed", "delivery_id", req.DeliveryID, "error", relErr)
		}
		s.logger.Error("webhook admission failed", "delivery_id", req.DeliveryID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "admission failed"})
		return
	}

	if _, err := s.ledger.Complete(c.Request.Context(), req.DeliveryID, claimant, time.Now()); err != nil {
		s.logger.Error("webhook claim completion failed", "delivery_id", req.DeliveryID, "error", err)
	}
	c.JSON(http.StatusAccepted, resp)
}

// admitDelivery builds the canonical cause, fans the signal into the target
// loop, and applies PR lifecycle overrides immediately.
func (s *Server) admitDelivery(c *gin.Context, req GitHubWebhookRequest, now time.Time) (gin.H, error) {
	built, err := cause.Build(cause.Input{
		Type:          cause.Type(req.EventType),
		DeliveryID:    req.DeliveryID,
		CheckRunID:    req.CheckRunID,
		CheckSuiteID:  req.CheckSuiteID,
		PullRequestID: req.PullRequestID,
		HeadSHA:       req.HeadSHA,
		Merged:        req.Merged,
		ReviewID:      req.ReviewID,
		ReviewState:   req.ReviewState,
		CommentID:     req.CommentID,
	})
	if err != nil {
		// A malformed envelope is not retryable; drop it as ignored.
		s.logger.Warn("dropping webhook with unbuildable cause",
			"delivery_id", req.DeliveryID,
			"event_type", req.EventType,
			"error", err)
		return gin.H{"status": "ignored", "reason": "invalid_cause"}, nil
	}

	if req.RepoFullName == "" || req.PRNumber == nil {
		return gin.H{"status": "ignored", "reason": "no_pr_scope"}, nil
	}
	target, err := s.registry.GetActiveLoopForPR(c.Request.Context(), req.RepoFullName, *req.PRNumber)
	if err != nil {
		if errors.Is(err, loop.ErrLoopNotFound) {
			return gin.H{"status": "ignored", "reason": "no_active_loop"}, nil
		}
		return nil, err
	}

	payload := req.Payload
	if payload == nil {
		payload = map[string]interface{}{}
	}
	if req.HeadSHA != "" {
		if _, ok := payload["headSha"]; !ok {
			payload["headSha"] = req.HeadSHA
		}
	}

	signal, err := s.inboxSvc.RecordSignal(c.Request.Context(), target.ID, built, payload, now)
	if err != nil {
		return nil, err
	}

	resp := gin.H{"status": "accepted", "loopId": target.ID, "signalId": signal.ID}

	// PR lifecycle events terminate the loop at admission time; the queued
	// signal only drives the status publication afterwards.
	if built.Type == cause.TypePRClosed {
		event := models.EventPRClosedUnmerged
		if req.Merged {
			event = models.EventPRMerged
		}
		res, err := loop.ApplyEvent(c.Request.Context(), s.registry.Client(), target.ID, event, loop.GateStateInput{}, now)
		if err != nil {
			return nil, err
		}
		resp["transition"] = string(res.Outcome)
	}

	return resp, nil
}
