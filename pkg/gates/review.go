package gates

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/codeready-toolchain/loopd/ent"
	"github.com/codeready-toolchain/loopd/ent/gatefinding"
	"github.com/codeready-toolchain/loopd/ent/gaterun"
	"github.com/codeready-toolchain/loopd/pkg/loop"
	"github.com/codeready-toolchain/loopd/pkg/models"
)

// ReviewFinding is one finding reported by a review gate.
type ReviewFinding struct {
	Title           string  `json:"title"`
	Severity        string  `json:"severity"`
	Category        string  `json:"category"`
	Detail          string  `json:"detail"`
	SuggestedFix    *string `json:"suggestedFix,omitempty"`
	IsBlocking      *bool   `json:"isBlocking,omitempty"`
	StableFindingID *string `json:"stableFindingId,omitempty"`
}

// ReviewGateOutput is the shape a review gate's model output must satisfy.
type ReviewGateOutput struct {
	GatePassed       bool            `json:"gatePassed"`
	BlockingFindings []ReviewFinding `json:"blockingFindings"`
}

// ReviewGateInput is one deep-review or Carmack-review persistence request.
// RawOutput carries the unvalidated model output.
type ReviewGateInput struct {
	LoopID       string
	HeadSHA      string
	LoopVersion  int
	TriggerEvent string
	RawOutput    json.RawMessage
}

// ReviewGateResult reports the persisted evaluation.
type ReviewGateResult struct {
	Status        string
	GatePassed    bool
	InvalidOutput bool
	ErrorCode     *string
	FindingCount  int
	Transition    loop.TransitionResult
}

var validSeverities = map[string]gatefinding.Severity{
	"critical": gatefinding.SeverityCritical,
	"high":     gatefinding.SeverityHigh,
	"medium":   gatefinding.SeverityMedium,
	"low":      gatefinding.SeverityLow,
}

// StableFindingID derives the deterministic finding identity used to track a
// finding across re-evaluations at the same head.
func StableFindingID(gateKind gaterun.GateKind, f ReviewFinding) string {
	if f.StableFindingID != nil && *f.StableFindingID != "" {
		return *f.StableFindingID
	}
	h := sha256.Sum256([]byte(strings.ToLower(f.Title) + "|" + f.Severity + "|" + f.Category + "|" + f.Detail))
	return string(gateKind) + "_" + hex.EncodeToString(h[:])[:24]
}

// parseReviewOutput validates raw model output against the fixed schema.
func parseReviewOutput(raw json.RawMessage) (*ReviewGateOutput, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty output")
	}
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.DisallowUnknownFields()
	var out ReviewGateOutput
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding output: %w", err)
	}
	for i, f := range out.BlockingFindings {
		if strings.TrimSpace(f.Title) == "" || strings.TrimSpace(f.Category) == "" || strings.TrimSpace(f.Detail) == "" {
			return nil, fmt.Errorf("finding %d: title, category and detail are required", i)
		}
		if _, ok := validSeverities[f.Severity]; !ok {
			return nil, fmt.Errorf("finding %d: invalid severity %q", i, f.Severity)
		}
	}
	return &out, nil
}

// PersistDeepReviewGateEvaluation validates and persists a deep-review gate
// evaluation at (loop, head).
func (e *Evaluator) PersistDeepReviewGateEvaluation(ctx context.Context, in ReviewGateInput, now time.Time) (ReviewGateResult, error) {
	return e.persistReviewGate(ctx, gaterun.GateKindDeepReview,
		models.EventDeepReviewGatePassed, models.EventDeepReviewGateBlocked, in, now)
}

// PersistCarmackReviewGateEvaluation validates and persists a Carmack-review
// gate evaluation. It refuses to run before the deep-review gate has passed
// at the same head.
func (e *Evaluator) PersistCarmackReviewGateEvaluation(ctx context.Context, in ReviewGateInput, now time.Time) (ReviewGateResult, error) {
	ok, err := e.CanRunCarmackReview(ctx, in.LoopID, in.HeadSHA)
	if err != nil {
		return ReviewGateResult{}, err
	}
	if !ok {
		return ReviewGateResult{}, fmt.Errorf("carmack review requires a passed deep review at head %s", in.HeadSHA)
	}
	return e.persistReviewGate(ctx, gaterun.GateKindCarmackReview,
		models.EventCarmackReviewGatePassed, models.EventCarmackReviewGateBlocked, in, now)
}

// CanRunCarmackReview reports whether the deep-review gate passed at the head.
func (e *Evaluator) CanRunCarmackReview(ctx context.Context, loopID, headSHA string) (bool, error) {
	ok, err := e.client.GateRun.Query().
		Where(
			gaterun.LoopID(loopID),
			gaterun.GateKindEQ(gaterun.GateKindDeepReview),
			gaterun.HeadSha(headSHA),
			gaterun.Status("passed"),
			gaterun.GatePassed(true),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("checking deep review prerequisite: %w", err)
	}
	return ok, nil
}

func (e *Evaluator) persistReviewGate(ctx context.Context, gateKind gaterun.GateKind, passedEvent, blockedEvent models.TransitionEvent, in ReviewGateInput, now time.Time) (ReviewGateResult, error) {
	findingKind := gatefinding.GateKind(gateKind)

	output, parseErr := parseReviewOutput(in.RawOutput)

	res := ReviewGateResult{}
	var findings []ReviewFinding
	if parseErr != nil {
		res.Status = "invalid_output"
		res.InvalidOutput = true
		code := string(gateKind) + "_invalid_output"
		res.ErrorCode = &code
		e.logger.Warn("review gate output failed schema validation",
			"loop_id", in.LoopID,
			"gate_kind", gateKind,
			"head_sha", in.HeadSHA,
			"error", parseErr)
	} else {
		// Dedupe on stable finding id; the first occurrence wins.
		seen := make(map[string]struct{})
		for _, f := range output.BlockingFindings {
			id := StableFindingID(gateKind, f)
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			findings = append(findings, f)
		}
		blocking := 0
		for _, f := range findings {
			if f.IsBlocking == nil || *f.IsBlocking {
				blocking++
			}
		}
		res.FindingCount = len(findings)
		if output.GatePassed && blocking == 0 {
			res.Status = "passed"
			res.GatePassed = true
		} else {
			res.Status = "blocked"
		}
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return ReviewGateResult{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	stale, err := upsertGateRun(ctx, tx, in.LoopID, in.HeadSHA, in.LoopVersion, gateRunWrite{
		gateKind:     gateKind,
		status:       res.Status,
		gatePassed:   res.GatePassed,
		triggerEvent: in.TriggerEvent,
		errorCode:    res.ErrorCode,
		mutate:       func(u *ent.GateRunUpdateOne) { u.SetInvalidOutput(res.InvalidOutput) },
		mutateCreate: func(c *ent.GateRunCreate) { c.SetInvalidOutput(res.InvalidOutput) },
	}, now)
	if err != nil {
		return ReviewGateResult{}, err
	}
	if stale {
		res.Transition = loop.TransitionResult{Outcome: loop.OutcomeStaleNoop}
		return res, tx.Commit()
	}

	// Replace the finding set at this head; on invalid output the prior set
	// is wiped so nothing stale survives the bad evaluation.
	_, err = tx.GateFinding.Delete().
		Where(
			gatefinding.LoopID(in.LoopID),
			gatefinding.GateKindEQ(findingKind),
			gatefinding.HeadSha(in.HeadSHA),
		).
		Exec(ctx)
	if err != nil {
		return ReviewGateResult{}, fmt.Errorf("deleting prior findings: %w", err)
	}
	for _, f := range findings {
		create := tx.GateFinding.Create().
			SetID(newID()).
			SetLoopID(in.LoopID).
			SetGateKind(findingKind).
			SetHeadSha(in.HeadSHA).
			SetStableFindingID(StableFindingID(gateKind, f)).
			SetSeverity(validSeverities[f.Severity]).
			SetCategory(f.Category).
			SetTitle(f.Title).
			SetDetail(f.Detail).
			SetNillableSuggestedFix(f.SuggestedFix).
			SetCreatedAt(now)
		if f.IsBlocking != nil {
			create = create.SetIsBlocking(*f.IsBlocking)
		}
		if err := create.Exec(ctx); err != nil {
			return ReviewGateResult{}, fmt.Errorf("inserting finding: %w", err)
		}
	}

	event := blockedEvent
	if res.GatePassed {
		event = passedEvent
	}
	res.Transition, err = loop.PersistGuardedGateLoopState(ctx, tx, in.LoopID, event,
		loop.GateStateInput{HeadSHA: &in.HeadSHA, LoopVersion: &in.LoopVersion}, now)
	if err != nil {
		return ReviewGateResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return ReviewGateResult{}, fmt.Errorf("committing %s gate evaluation: %w", gateKind, err)
	}
	return res, nil
}
