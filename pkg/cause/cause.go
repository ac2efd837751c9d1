// Package cause constructs canonical cause identifiers for external signals.
//
// Every inbound event is reduced to a deterministic (causeType, canonicalCauseID)
// pair before it touches a loop, so re-deliveries and cross-worker races
// collapse onto a single signal-inbox row.
package cause

import (
	"fmt"
	"time"
)

// Type enumerates the supported cause kinds. Construction fails loudly on
// anything outside this set.
type Type string

// Cause types.
const (
	TypeDaemonTerminal       Type = "daemon_terminal"
	TypeCheckRunCompleted    Type = "check_run.completed"
	TypeCheckSuiteCompleted  Type = "check_suite.completed"
	TypePRSynchronize        Type = "pull_request.synchronize"
	TypePRClosed             Type = "pull_request.closed"
	TypePRReopened           Type = "pull_request.reopened"
	TypePREdited             Type = "pull_request.edited"
	TypePRReview             Type = "pull_request_review"
	TypePRReviewComment      Type = "pull_request_review_comment"
	TypeReviewThreadPollSynthetic Type = "review-thread-poll-synthetic"
)

// IdentityVersion is bumped if the encoding rules below ever change shape.
const IdentityVersion = 1

// Cause is a deterministic identifier for one external event instance.
type Cause struct {
	Type            Type
	CanonicalID     string
	HeadSHA         *string // non-nil only when the cause kind carries one
	IdentityVersion int
}

// Input carries the raw fields needed to build a canonical cause. Only the
// fields relevant to the given Type need to be set.
type Input struct {
	Type Type

	EventID       string // daemon_terminal
	DeliveryID    string // all webhook kinds
	CheckRunID    string
	CheckSuiteID  string
	PullRequestID string
	HeadSHA       string
	Merged        bool
	ReviewID      string
	ReviewState   string
	CommentID     string

	// Synthetic review-thread poll.
	LoopID          string
	PollWindowStart time.Time
	PollWindowEnd   time.Time
	PollSequence    int
}

// Build constructs the canonical cause for the input. The encoding strings
// are stable and byte-exact; changing them breaks signal dedup across
// versions, so any change must bump IdentityVersion.
func Build(in Input) (Cause, error) {
	c := Cause{Type: in.Type, IdentityVersion: IdentityVersion}

	switch in.Type {
	case TypeDaemonTerminal:
		if in.EventID == "" {
			return Cause{}, fmt.Errorf("daemon_terminal cause requires event id")
		}
		c.CanonicalID = in.EventID

	case TypeCheckRunCompleted:
		if err := requireDelivery(in); err != nil {
			return Cause{}, err
		}
		c.CanonicalID = fmt.Sprintf("%s:%s", in.DeliveryID, in.CheckRunID)

	case TypeCheckSuiteCompleted:
		if err := requireDelivery(in); err != nil {
			return Cause{}, err
		}
		c.CanonicalID = fmt.Sprintf("%s:%s", in.DeliveryID, in.CheckSuiteID)

	case TypePRSynchronize:
		if err := requireDelivery(in); err != nil {
			return Cause{}, err
		}
		c.CanonicalID = fmt.Sprintf("%s:%s:%s", in.DeliveryID, in.PullRequestID, in.HeadSHA)
		sha := in.HeadSHA
		c.HeadSHA = &sha

	case TypePRClosed:
		if err := requireDelivery(in); err != nil {
			return Cause{}, err
		}
		merged := "unmerged"
		if in.Merged {
			merged = "merged"
		}
		c.CanonicalID = fmt.Sprintf("%s:%s:closed:%s", in.DeliveryID, in.PullRequestID, merged)

	case TypePRReopened:
		if err := requireDelivery(in); err != nil {
			return Cause{}, err
		}
		c.CanonicalID = fmt.Sprintf("%s:%s:reopened", in.DeliveryID, in.PullRequestID)

	case TypePREdited:
		if err := requireDelivery(in); err != nil {
			return Cause{}, err
		}
		c.CanonicalID = fmt.Sprintf("%s:%s:edited", in.DeliveryID, in.PullRequestID)

	case TypePRReview:
		if err := requireDelivery(in); err != nil {
			return Cause{}, err
		}
		c.CanonicalID = fmt.Sprintf("%s:%s:%s", in.DeliveryID, in.ReviewID, in.ReviewState)

	case TypePRReviewComment:
		if err := requireDelivery(in); err != nil {
			return Cause{}, err
		}
		c.CanonicalID = fmt.Sprintf("%s:%s", in.DeliveryID, in.CommentID)

	case TypeReviewThreadPollSynthetic:
		if in.LoopID == "" {
			return Cause{}, fmt.Errorf("review-thread poll cause requires loop id")
		}
		c.CanonicalID = fmt.Sprintf("%s:%s:%s:%d",
			in.LoopID,
			in.PollWindowStart.UTC().Format(time.RFC3339),
			in.PollWindowEnd.UTC().Format(time.RFC3339),
			in.PollSequence,
		)

	default:
		return Cause{}, fmt.Errorf("unknown cause type %q", in.Type)
	}

	return c, nil
}

func requireDelivery(in Input) error {
	if in.DeliveryID == "" {
		return fmt.Errorf("%s cause requires delivery id", in.Type)
	}
	return nil
}
