// Package models contains shared domain types used across services.
package models

// TransitionEvent drives the loop state machine. Events originate from gate
// evaluations, webhook signals, the daemon, and the control plane.
type TransitionEvent string

// Transition events.
const (
	// Global overrides — accepted in any active state.
	EventPRClosedUnmerged       TransitionEvent = "pr_closed_unmerged"
	EventPRMerged               TransitionEvent = "pr_merged"
	EventManualStop             TransitionEvent = "manual_stop"
	EventHumanFeedbackRequested TransitionEvent = "human_feedback_requested"

	// Phase progress.
	EventPlanCompleted           TransitionEvent = "plan_completed"
	EventImplementationProgress  TransitionEvent = "implementation_progress"
	EventImplementationCompleted TransitionEvent = "implementation_completed"
	EventReviewPassed            TransitionEvent = "review_passed"
	EventReviewBlocked           TransitionEvent = "review_blocked"
	EventUISmokePassed           TransitionEvent = "ui_smoke_passed"
	EventUISmokeFailed           TransitionEvent = "ui_smoke_failed"
	EventPRLinked                TransitionEvent = "pr_linked"
	EventBabysitPassed           TransitionEvent = "babysit_passed"
	EventBabysitBlocked          TransitionEvent = "babysit_blocked"
	EventMarkDone                TransitionEvent = "mark_done"

	// Gate outcomes.
	EventCIGatePassed             TransitionEvent = "ci_gate_passed"
	EventCIGateBlocked            TransitionEvent = "ci_gate_blocked"
	EventDeepReviewGatePassed     TransitionEvent = "deep_review_gate_passed"
	EventDeepReviewGateBlocked    TransitionEvent = "deep_review_gate_blocked"
	EventCarmackReviewGatePassed  TransitionEvent = "carmack_review_gate_passed"
	EventCarmackReviewGateBlocked TransitionEvent = "carmack_review_gate_blocked"

	// Video capture lifecycle.
	EventVideoCaptureStarted   TransitionEvent = "video_capture_started"
	EventVideoCaptureSucceeded TransitionEvent = "video_capture_succeeded"
	EventVideoCaptureFailed    TransitionEvent = "video_capture_failed"
)

// IncrementsFixAttempt reports whether applying the event consumes one unit
// of the loop's fix-attempt budget.
func (e TransitionEvent) IncrementsFixAttempt() bool {
	switch e {
	case EventReviewBlocked, EventUISmokeFailed, EventBabysitBlocked,
		EventCIGateBlocked, EventDeepReviewGateBlocked, EventCarmackReviewGateBlocked:
		return true
	}
	return false
}

// IsBlockedGateEvent reports whether the event is a negative gate outcome.
func (e TransitionEvent) IsBlockedGateEvent() bool {
	switch e {
	case EventCIGateBlocked,
		EventDeepReviewGateBlocked, EventCarmackReviewGateBlocked,
		EventReviewBlocked, EventUISmokeFailed, EventBabysitBlocked,
		EventVideoCaptureFailed:
		return true
	}
	return false
}

// IsPositiveGateEvent reports whether the event is a positive gate outcome.
func (e TransitionEvent) IsPositiveGateEvent() bool {
	switch e {
	case EventCIGatePassed,
		EventDeepReviewGatePassed, EventCarmackReviewGatePassed,
		EventReviewPassed, EventUISmokePassed, EventVideoCaptureSucceeded:
		return true
	}
	return false
}
