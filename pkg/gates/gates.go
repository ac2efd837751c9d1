// Package gates implements the four merge-gate evaluators (CI checks, review
// threads, deep review, Carmack review) and the video-capture outcome writer.
// Every evaluator persists a head-SHA-keyed gate run and drives the loop state
// machine in one transaction.
package gates

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/loopd/ent"
	"github.com/codeready-toolchain/loopd/ent/gaterun"
)

func newID() string { return uuid.New().String() }

// Evaluator persists gate evaluations. TrustedThreadCountSources lists the
// unresolved-thread-count origins the review-thread gate accepts for an
// optimistic zero; anything else is ignored as hearsay.
type Evaluator struct {
	client                    *ent.Client
	logger                    *slog.Logger
	trustedThreadCountSources []string
}

func NewEvaluator(client *ent.Client, logger *slog.Logger, trustedThreadCountSources []string) *Evaluator {
	if len(trustedThreadCountSources) == 0 {
		trustedThreadCountSources = []string{"api_query"}
	}
	return &Evaluator{
		client:                    client,
		logger:                    logger,
		trustedThreadCountSources: trustedThreadCountSources,
	}
}

// NormalizeChecks trims, drops empties, dedupes and lex-sorts a check-name
// list. All gate comparisons run on normalized lists.
func NormalizeChecks(checks []string) []string {
	seen := make(map[string]struct{}, len(checks))
	out := make([]string, 0, len(checks))
	for _, c := range checks {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func intersect(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, s := range b {
		set[s] = struct{}{}
	}
	out := make([]string, 0)
	for _, s := range a {
		if _, ok := set[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

func isSuperset(super, sub []string) bool {
	set := make(map[string]struct{}, len(super))
	for _, s := range super {
		set[s] = struct{}{}
	}
	for _, s := range sub {
		if _, ok := set[s]; !ok {
			return false
		}
	}
	return true
}

// gateRunWrite carries the evaluator-specific columns of a gate-run upsert.
type gateRunWrite struct {
	gateKind     gaterun.GateKind
	status       string
	gatePassed   bool
	triggerEvent string
	errorCode    *string
	mutate       func(*ent.GateRunUpdateOne)
	mutateCreate func(*ent.GateRunCreate)
}

// upsertGateRun writes the gate-run row for (loop, kind, head). An existing
// row with a newer loop version wins; the incoming write is dropped and the
// function reports stale=true.
func upsertGateRun(ctx context.Context, tx *ent.Tx, loopID, headSHA string, loopVersion int, w gateRunWrite, now time.Time) (stale bool, err error) {
	existing, err := tx.GateRun.Query().
		Where(
			gaterun.LoopID(loopID),
			gaterun.GateKindEQ(w.gateKind),
			gaterun.HeadSha(headSHA),
		).
		Only(ctx)
	switch {
	case err == nil:
		if existing.LoopVersion > loopVersion {
			return true, nil
		}
		update := tx.GateRun.UpdateOne(existing).
			SetLoopVersion(loopVersion).
			SetStatus(w.status).
			SetGatePassed(w.gatePassed).
			SetTriggerEvent(w.triggerEvent).
			SetNillableErrorCode(w.errorCode).
			SetUpdatedAt(now)
		if w.errorCode == nil {
			update = update.ClearErrorCode()
		}
		if w.mutate != nil {
			w.mutate(update)
		}
		if err := update.Exec(ctx); err != nil {
			return false, fmt.Errorf("updating %s gate run: %w", w.gateKind, err)
		}
	case ent.IsNotFound(err):
		create := tx.GateRun.Create().
			SetID(newID()).
			SetLoopID(loopID).
			SetGateKind(w.gateKind).
			SetHeadSha(headSHA).
			SetLoopVersion(loopVersion).
			SetStatus(w.status).
			SetGatePassed(w.gatePassed).
			SetTriggerEvent(w.triggerEvent).
			SetNillableErrorCode(w.errorCode).
			SetCreatedAt(now).
			SetUpdatedAt(now)
		if w.mutateCreate != nil {
			w.mutateCreate(create)
		}
		if err := create.Exec(ctx); err != nil {
			return false, fmt.Errorf("inserting %s gate run: %w", w.gateKind, err)
		}
	default:
		return false, fmt.Errorf("reading %s gate run: %w", w.gateKind, err)
	}
	return false, nil
}
