// Package guard implements the constitutional policy gate: a pre-action
// verdict engine consulted on every routed intent. Front-loading the
// decision avoids post-hoc rollback of partially applied effects.
package guard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/agentium/agentium/pkg/audit"
	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/agentium/agentium/pkg/semantic"
)

// Verdict of a constitutional check.
type Verdict string

// Verdicts. A block is absolute: the caller must abort the operation.
// An escalate verdict redirects the intent one tier up.
const (
	VerdictAllow    Verdict = "allow"
	VerdictBlock    Verdict = "block"
	VerdictEscalate Verdict = "escalate"
)

// Severity of a decision.
type Severity string

// Severities.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Decision is the outcome of a constitutional check.
type Decision struct {
	Verdict     Verdict
	Severity    Severity
	Explanation string
	ArticleRefs []string
}

// BlockError is returned by callers that abort on a block verdict.
type BlockError struct {
	ActorID  string
	Decision Decision
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("constitutional violation by %s: %s", e.ActorID, e.Decision.Explanation)
}

// ActionContext carries the evidence considered alongside the rule table.
type ActionContext struct {
	// RecentViolations is the actor's violation count in the current
	// accounting window.
	RecentViolations int
	// Extra is opaque caller-supplied context recorded with the audit
	// trail on block.
	Extra map[string]any
}

// repeatOffenderThreshold is the recent-violation count at which otherwise
// allowed lower-tier actions start escalating.
const repeatOffenderThreshold = 3

// Guard is the pre-action verdict engine.
type Guard struct {
	rules []rule
	store *semantic.Store
	audit audit.Recorder
	log   *slog.Logger
}

// New creates a guard. store may be nil (no semantic evidence attached).
func New(store *semantic.Store, recorder audit.Recorder) *Guard {
	if recorder == nil {
		recorder = audit.NewSlogRecorder()
	}
	return &Guard{
		rules: builtinRules,
		store: store,
		audit: recorder,
		log:   slog.Default().With("component", "constitutional-guard"),
	}
}

// CheckAction evaluates an action description for an actor and returns a
// verdict. Inputs are the deterministic rule table, the actor's tier and
// recent violation count, and semantic constitution hits.
func (g *Guard) CheckAction(ctx context.Context, actorID, action string, actx ActionContext) (Decision, error) {
	tier, err := hierarchy.ParseID(actorID)
	if err != nil {
		return Decision{}, err
	}

	decision := g.applyRules(tier, action, actx)

	if g.store != nil {
		hits, err := g.store.ConstitutionHits(ctx, action, 3)
		if err != nil {
			g.log.Warn("Constitution retrieval failed during check",
				"actor_id", actorID, "error", err)
		}
		for _, h := range hits {
			decision.ArticleRefs = append(decision.ArticleRefs, h.ID)
		}
	}

	if decision.Verdict == VerdictBlock {
		g.audit.Record(ctx, audit.Entry{
			Kind:     audit.KindConstitutionalBlock,
			Severity: audit.SeverityWarning,
			ActorID:  actorID,
			Details: map[string]any{
				"action":      action,
				"severity":    string(decision.Severity),
				"explanation": decision.Explanation,
				"extra":       actx.Extra,
			},
		})
	}

	return decision, nil
}

// applyRules walks the deterministic rule table. The most severe hit wins;
// repeat offenders below the Council tier have medium-severity escalations
// promoted out of allow.
func (g *Guard) applyRules(tier hierarchy.Tier, action string, actx ActionContext) Decision {
	best := Decision{Verdict: VerdictAllow, Severity: SeverityLow, Explanation: "no prohibited pattern matched"}

	for _, r := range g.rules {
		if !r.regex.MatchString(action) {
			continue
		}
		if severityRank(r.severity) > severityRank(best.Severity) || best.Verdict == VerdictAllow {
			best = Decision{
				Verdict:     r.verdict,
				Severity:    r.severity,
				Explanation: r.explanation,
			}
		}
	}

	// Lower-tier repeat offenders lose the benefit of the doubt: an
	// otherwise allowed action escalates for review.
	if best.Verdict == VerdictAllow &&
		tier > hierarchy.TierCouncil &&
		actx.RecentViolations >= repeatOffenderThreshold {
		best = Decision{
			Verdict:     VerdictEscalate,
			Severity:    SeverityMedium,
			Explanation: fmt.Sprintf("actor has %d recent violations; action requires review", actx.RecentViolations),
		}
	}

	return best
}

func severityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}
