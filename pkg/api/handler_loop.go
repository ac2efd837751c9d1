package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/loopd/ent"
	entloop "github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/pkg/artifacts"
	"github.com/codeready-toolchain/loopd/pkg/loop"
)

// EnrollLoopRequest creates a new loop in planning.
type EnrollLoopRequest struct {
	UserID             string  `json:"userId" binding:"required"`
	RepoFullName       string  `json:"repoFullName" binding:"required"`
	PRNumber           *int    `json:"prNumber"`
	ThreadID           string  `json:"threadId" binding:"required"`
	ThreadChatID       *string `json:"threadChatId"`
	CurrentHeadSHA     *string `json:"currentHeadSha"`
	PlanApprovalPolicy string  `json:"planApprovalPolicy"`
	MaxFixAttempts     *int    `json:"maxFixAttempts"`
}

// StopLoopRequest carries the operator's stop reason.
type StopLoopRequest struct {
	Reason string `json:"reason"`
}

// LoopResponse is the control-plane view of a loop row.
type LoopResponse struct {
	LoopID             string  `json:"loopId"`
	UserID             string  `json:"userId"`
	RepoFullName       string  `json:"repoFullName"`
	PRNumber           *int    `json:"prNumber,omitempty"`
	ThreadID           string  `json:"threadId"`
	State              string  `json:"state"`
	PlanApprovalPolicy string  `json:"planApprovalPolicy"`
	CurrentHeadSHA     *string `json:"currentHeadSha,omitempty"`
	LoopVersion        int     `json:"loopVersion"`
	TransitionSeq      int     `json:"transitionSeq"`
	FixAttemptCount    int     `json:"fixAttemptCount"`
	MaxFixAttempts     int     `json:"maxFixAttempts"`
	IterationCount     int     `json:"iterationCount"`
	StopReason         *string `json:"stopReason,omitempty"`
}

func toLoopResponse(row *ent.Loop) LoopResponse {
	return LoopResponse{
		LoopID:             row.ID,
		UserID:             row.UserID,
		RepoFullName:       row.RepoFullName,
		PRNumber:           row.PrNumber,
		ThreadID:           row.ThreadID,
		State:              string(row.State),
		PlanApprovalPolicy: string(row.PlanApprovalPolicy),
		CurrentHeadSHA:     row.CurrentHeadSha,
		LoopVersion:        row.LoopVersion,
		TransitionSeq:      row.TransitionSeq,
		FixAttemptCount:    row.FixAttemptCount,
		MaxFixAttempts:     row.MaxFixAttempts,
		IterationCount:     row.IterationCount,
		StopReason:         row.StopReason,
	}
}

// EnrollLoop handles POST /api/v1/loops.
func (s *Server) EnrollLoop(c *gin.Context) {
	var req EnrollLoopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := s.registry.Enroll(c.Request.Context(), loop.EnrollInput{
		UserID:             req.UserID,
		RepoFullName:       req.RepoFullName,
		PRNumber:           req.PRNumber,
		ThreadID:           req.ThreadID,
		ThreadChatID:       req.ThreadChatID,
		CurrentHeadSHA:     req.CurrentHeadSHA,
		PlanApprovalPolicy: entloop.PlanApprovalPolicy(req.PlanApprovalPolicy),
		MaxFixAttempts:     req.MaxFixAttempts,
	}, time.Now())
	if err != nil {
		if errors.Is(err, loop.ErrActiveLoopExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "an active loop already exists for this scope"})
			return
		}
		s.logger.Error("loop enrollment failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toLoopResponse(row))
}

// GetLoop handles GET /api/v1/loops/:id.
func (s *Server) GetLoop(c *gin.Context) {
	row, err := s.registry.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondLoopError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLoopResponse(row))
}

// GetLoopForPR handles GET /api/v1/loops/pr?repo=owner/name&prNumber=N.
func (s *Server) GetLoopForPR(c *gin.Context) {
	repo := c.Query("repo")
	prNumber, err := strconv.Atoi(c.Query("prNumber"))
	if repo == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "repo and prNumber are required"})
		return
	}

	row, err := s.registry.GetActiveLoopForPR(c.Request.Context(), repo, prNumber)
	if err != nil {
		s.respondLoopError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLoopResponse(row))
}

// GetLoopForThread handles GET /api/v1/loops/thread?userId=U&threadId=T.
func (s *Server) GetLoopForThread(c *gin.Context) {
	userID := c.Query("userId")
	threadID := c.Query("threadId")
	if userID == "" || threadID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and threadId are required"})
		return
	}

	row, err := s.registry.GetActiveLoopForThread(c.Request.Context(), userID, threadID)
	if err != nil {
		s.respondLoopError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLoopResponse(row))
}

// ApprovePlanArtifact handles POST /api/v1/loops/:id/plan/:artifactId/approve.
func (s *Server) ApprovePlanArtifact(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	row, err := s.artifacts.ApprovePlanArtifactForLoop(c.Request.Context(),
		c.Param("id"), c.Param("artifactId"), userID, time.Now())
	if err != nil {
		if errors.Is(err, artifacts.ErrArtifactNotApprovable) {
			c.JSON(http.StatusConflict, gin.H{"error": "artifact is not in an approvable state"})
			return
		}
		s.logger.Error("plan approval failed",
			"loop_id", c.Param("id"),
			"artifact_id", c.Param("artifactId"),
			"error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "approval failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"artifactId": row.ID,
		"status":     string(row.Status),
	})
}

// StopLoop handles POST /api/v1/loops/:id/stop.
func (s *Server) StopLoop(c *gin.Context) {
	var req StopLoopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reason := req.Reason
	if reason == "" {
		reason = "manual_stop"
	}

	res, err := s.registry.ManualStop(c.Request.Context(), c.Param("id"), reason, time.Now())
	if err != nil {
		s.respondLoopError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"outcome":   string(res.Outcome),
		"fromState": string(res.FromState),
		"state":     string(res.NextState),
	})
}

func (s *Server) respondLoopError(c *gin.Context, err error) {
	if errors.Is(err, loop.ErrLoopNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "loop not found"})
		return
	}
	s.logger.Error("loop request failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
