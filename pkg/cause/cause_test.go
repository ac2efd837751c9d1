package cause

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EncodingsAreStable(t *testing.T) {
	tests := []struct {
		name    string
		in      Input
		wantID  string
		wantSHA string
	}{
		{
			name:   "daemon terminal",
			in:     Input{Type: TypeDaemonTerminal, EventID: "evt-1"},
			wantID: "evt-1",
		},
		{
			name:   "check run completed",
			in:     Input{Type: TypeCheckRunCompleted, DeliveryID: "d-1", CheckRunID: "cr-9"},
			wantID: "d-1:cr-9",
		},
		{
			name:   "check suite completed",
			in:     Input{Type: TypeCheckSuiteCompleted, DeliveryID: "d-1", CheckSuiteID: "cs-4"},
			wantID: "d-1:cs-4",
		},
		{
			name:    "pr synchronize carries head sha",
			in:      Input{Type: TypePRSynchronize, DeliveryID: "d-2", PullRequestID: "pr-7", HeadSHA: "abc123"},
			wantID:  "d-2:pr-7:abc123",
			wantSHA: "abc123",
		},
		{
			name:   "pr closed merged",
			in:     Input{Type: TypePRClosed, DeliveryID: "d-3", PullRequestID: "pr-7", Merged: true},
			wantID: "d-3:pr-7:closed:merged",
		},
		{
			name:   "pr closed unmerged",
			in:     Input{Type: TypePRClosed, DeliveryID: "d-3", PullRequestID: "pr-7", Merged: false},
			wantID: "d-3:pr-7:closed:unmerged",
		},
		{
			name:   "pr reopened",
			in:     Input{Type: TypePRReopened, DeliveryID: "d-4", PullRequestID: "pr-7"},
			wantID: "d-4:pr-7:reopened",
		},
		{
			name:   "pr edited",
			in:     Input{Type: TypePREdited, DeliveryID: "d-4", PullRequestID: "pr-7"},
			wantID: "d-4:pr-7:edited",
		},
		{
			name:   "pr review",
			in:     Input{Type: TypePRReview, DeliveryID: "d-5", ReviewID: "rv-2", ReviewState: "changes_requested"},
			wantID: "d-5:rv-2:changes_requested",
		},
		{
			name:   "pr review comment",
			in:     Input{Type: TypePRReviewComment, DeliveryID: "d-6", CommentID: "c-11"},
			wantID: "d-6:c-11",
		},
		{
			name: "synthetic review thread poll",
			in: Input{
				Type:            TypeReviewThreadPollSynthetic,
				LoopID:          "loop-1",
				PollWindowStart: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				PollWindowEnd:   time.Date(2026, 1, 1, 0, 5, 0, 0, time.UTC),
				PollSequence:    3,
			},
			wantID: "loop-1:2026-01-01T00:00:00Z:2026-01-01T00:05:00Z:3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Build(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, c.CanonicalID)
			assert.Equal(t, 1, c.IdentityVersion)
			if tt.wantSHA == "" {
				assert.Nil(t, c.HeadSHA)
			} else {
				require.NotNil(t, c.HeadSHA)
				assert.Equal(t, tt.wantSHA, *c.HeadSHA)
			}
		})
	}
}

func TestBuild_MergedAndUnmergedCloseDiffer(t *testing.T) {
	merged, err := Build(Input{Type: TypePRClosed, DeliveryID: "d-1", PullRequestID: "pr-1", Merged: true})
	require.NoError(t, err)
	unmerged, err := Build(Input{Type: TypePRClosed, DeliveryID: "d-1", PullRequestID: "pr-1", Merged: false})
	require.NoError(t, err)
	assert.NotEqual(t, merged.CanonicalID, unmerged.CanonicalID)
}

func TestBuild_UnknownTypeFailsLoudly(t *testing.T) {
	_, err := Build(Input{Type: "issue_comment.created", DeliveryID: "d-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown cause type")
}

func TestBuild_MissingDeliveryID(t *testing.T) {
	_, err := Build(Input{Type: TypeCheckRunCompleted, CheckRunID: "cr-1"})
	require.Error(t, err)
}
