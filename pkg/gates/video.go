package gates

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/codeready-toolchain/loopd/pkg/loop"
	"github.com/codeready-toolchain/loopd/pkg/models"
)

// Video capture failure classes.
const (
	FailureClassAuth   = "auth"
	FailureClassQuota  = "quota"
	FailureClassScript = "script"
	FailureClassInfra  = "infra"
)

var failureClassMarkers = []struct {
	class   string
	markers []string
}{
	{FailureClassAuth, []string{"401", "403", "unauthorized", "unauthorised", "forbidden", "auth", "token", "permission denied"}},
	{FailureClassQuota, []string{"429", "quota", "rate limit", "insufficient credits", "billing"}},
	{FailureClassScript, []string{"script", "selector", "assert", "dom", "playwright", "puppeteer", "navigation failed"}},
}

// ClassifyVideoCaptureFailure buckets a capture error message by substring
// match on the lowercased text; the first matching class wins, anything
// unrecognized is infra.
func ClassifyVideoCaptureFailure(message string) string {
	msg := strings.ToLower(message)
	for _, fc := range failureClassMarkers {
		for _, marker := range fc.markers {
			if strings.Contains(msg, marker) {
				return fc.class
			}
		}
	}
	return FailureClassInfra
}

// VideoOutcomeInput reports the result of one video capture run. Exactly one
// of ArtifactKey (success) or FailureMessage (failure) is expected.
type VideoOutcomeInput struct {
	LoopID         string
	HeadSHA        string
	LoopVersion    int
	ArtifactKey    *string
	FailureClass   *string
	FailureMessage *string
}

// VideoOutcomeResult reports the applied outcome.
type VideoOutcomeResult struct {
	Event        models.TransitionEvent
	FailureClass string
	Transition   loop.TransitionResult
}

// PersistVideoCaptureOutcome records a capture result on the loop row and
// drives video_capture_succeeded / video_capture_failed. Outcomes from an
// older loop version, or from a different head at the same version, never
// downgrade the stored result.
func (e *Evaluator) PersistVideoCaptureOutcome(ctx context.Context, in VideoOutcomeInput, now time.Time) (VideoOutcomeResult, error) {
	succeeded := in.ArtifactKey != nil && *in.ArtifactKey != ""
	res := VideoOutcomeResult{Event: models.EventVideoCaptureFailed}
	if succeeded {
		res.Event = models.EventVideoCaptureSucceeded
	} else {
		if in.FailureClass != nil && *in.FailureClass != "" {
			res.FailureClass = *in.FailureClass
		} else if in.FailureMessage != nil {
			res.FailureClass = ClassifyVideoCaptureFailure(*in.FailureMessage)
		} else {
			res.FailureClass = FailureClassInfra
		}
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return VideoOutcomeResult{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.Loop.Get(ctx, in.LoopID)
	if err != nil {
		return VideoOutcomeResult{}, fmt.Errorf("reading loop %s: %w", in.LoopID, err)
	}
	if row.LoopVersion > in.LoopVersion ||
		(row.LoopVersion == in.LoopVersion && row.CurrentHeadSha != nil && *row.CurrentHeadSha != in.HeadSHA) {
		res.Transition = loop.TransitionResult{Outcome: loop.OutcomeStaleNoop, FromState: row.State, NextState: row.State}
		return res, tx.Commit()
	}

	res.Transition, err = loop.PersistGuardedGateLoopState(ctx, tx, in.LoopID, res.Event,
		loop.GateStateInput{HeadSHA: &in.HeadSHA, LoopVersion: &in.LoopVersion}, now)
	if err != nil {
		return VideoOutcomeResult{}, err
	}
	if res.Transition.Outcome != loop.OutcomeUpdated {
		return res, tx.Commit()
	}

	update := tx.Loop.UpdateOneID(in.LoopID)
	if succeeded {
		update = update.
			SetVideoCaptureStatus("succeeded").
			SetLatestVideoArtifactKey(*in.ArtifactKey).
			SetLatestVideoCapturedAt(now).
			ClearLatestVideoFailureClass().
			ClearLatestVideoFailureMessage().
			ClearLatestVideoFailedAt()
	} else {
		update = update.
			SetVideoCaptureStatus("failed").
			SetLatestVideoFailureClass(res.FailureClass).
			SetNillableLatestVideoFailureMessage(in.FailureMessage).
			SetLatestVideoFailedAt(now)
	}
	if err := update.Exec(ctx); err != nil {
		return VideoOutcomeResult{}, fmt.Errorf("writing video outcome for loop %s: %w", in.LoopID, err)
	}

	if err := tx.Commit(); err != nil {
		return VideoOutcomeResult{}, fmt.Errorf("committing video outcome: %w", err)
	}
	return res, nil
}
