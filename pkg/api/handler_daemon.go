package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/loopd/pkg/cause"
	"github.com/codeready-toolchain/loopd/pkg/loop"
)

// daemonPayloadVersion is the only envelope version this server accepts.
const daemonPayloadVersion = 2

// DaemonEventRequest is the terminal-event envelope posted by the sandbox
// daemon when an agent run finishes.
type DaemonEventRequest struct {
	PayloadVersion int                    `json:"payloadVersion"`
	EventID        string                 `json:"eventId" binding:"required"`
	RunID          string                 `json:"runId" binding:"required"`
	Seq            int                    `json:"seq"`
	LoopID         string                 `json:"loopId" binding:"required"`
	Payload        map[string]interface{} `json:"payload"`
}

// DaemonEventAck echoes the event identity back to the daemon. The daemon
// treats any mismatch with what it sent as a retryable error.
type DaemonEventAck struct {
	AcknowledgedEventID string `json:"acknowledgedEventId"`
	AcknowledgedSeq     int    `json:"acknowledgedSeq"`
}

// HandleDaemonEvent handles POST /api/v1/daemon/events.
func (s *Server) HandleDaemonEvent(c *gin.Context) {
	var req DaemonEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PayloadVersion != daemonPayloadVersion {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported payloadVersion"})
		return
	}
	if req.Seq < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "seq must be non-negative"})
		return
	}

	built, err := cause.Build(cause.Input{
		Type:    cause.TypeDaemonTerminal,
		EventID: req.EventID,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := s.registry.Get(c.Request.Context(), req.LoopID); err != nil {
		if errors.Is(err, loop.ErrLoopNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "loop not found"})
			return
		}
		s.logger.Error("daemon event loop lookup failed", "loop_id", req.LoopID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	payload := req.Payload
	if payload == nil {
		payload = map[string]interface{}{}
	}
	payload["runId"] = req.RunID
	payload["seq"] = req.Seq

	if _, err := s.inboxSvc.RecordSignal(c.Request.Context(), req.LoopID, built, payload, time.Now()); err != nil {
		s.logger.Error("daemon event signal record failed",
			"loop_id", req.LoopID,
			"event_id", req.EventID,
			"error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "record failed"})
		return
	}

	c.JSON(http.StatusOK, DaemonEventAck{
		AcknowledgedEventID: req.EventID,
		AcknowledgedSeq:     req.Seq,
	})
}
