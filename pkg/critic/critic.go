// Package critic runs out-of-band review of task outputs. A critic's
// rejection is an absolute veto; repeated rejection escalates the task
// into deliberation.
package critic

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/agentium/agentium/pkg/audit"
)

// Type is the critic specialty.
type Type string

// Critic types.
const (
	TypeCode   Type = "code-critic"
	TypeOutput Type = "output-critic"
	TypePlan   Type = "plan-critic"
)

// Valid reports whether t is a defined critic type.
func (t Type) Valid() bool {
	switch t {
	case TypeCode, TypeOutput, TypePlan:
		return true
	}
	return false
}

// Verdict of a review.
type Verdict string

// Verdicts.
const (
	VerdictPass     Verdict = "pass"
	VerdictReject   Verdict = "reject"
	VerdictEscalate Verdict = "escalate"
)

// defaultMaxRetries bounds how many rejections a task output absorbs
// before escalation.
const defaultMaxRetries = 5

// Review is the outcome of a critic pass.
type Review struct {
	Verdict     Verdict
	CriticID    string
	Reason      string
	Suggestions []string
	// Escalation is set only on an escalate verdict.
	Escalation map[string]any
	// Cached is true when the verdict came from the fingerprint cache
	// without re-executing the critic.
	Cached bool
}

// Evaluation is a critic's raw judgment of an output.
type Evaluation struct {
	Passed      bool
	Reason      string
	Suggestions []string
}

// Evaluator performs the actual judging, typically LLM-backed.
type Evaluator interface {
	Evaluate(ctx context.Context, criticType Type, taskID, output string) (*Evaluation, error)
}

// CriticAgent is a registered reviewer of one specialty.
type CriticAgent struct {
	ID               string
	Specialty        Type
	CompletedReviews int
}

// Directory lists available critic agents and tracks their load.
type Directory interface {
	Available(ctx context.Context, specialty Type) ([]*CriticAgent, error)
	RecordCompleted(ctx context.Context, criticID string) error
}

// TaskMarker forces a task into deliberation on escalation.
type TaskMarker interface {
	MarkDeliberating(ctx context.Context, taskID, reason string) error
}

// Pipeline coordinates critic reviews.
type Pipeline struct {
	directory  Directory
	evaluator  Evaluator
	tasks      TaskMarker
	audit      audit.Recorder
	maxRetries int
	log        *slog.Logger

	mu         sync.Mutex
	cache      map[string]*cachedEvaluation
	rejections map[string]int
}

// cachedEvaluation is a critic judgment remembered per content fingerprint.
// Retry accounting still advances on cache hits; only the critic execution
// itself is skipped.
type cachedEvaluation struct {
	eval     *Evaluation
	criticID string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithMaxRetries overrides the rejection budget.
func WithMaxRetries(n int) Option {
	return func(p *Pipeline) { p.maxRetries = n }
}

// New creates a critic pipeline.
func New(directory Directory, evaluator Evaluator, tasks TaskMarker, recorder audit.Recorder, opts ...Option) *Pipeline {
	if recorder == nil {
		recorder = audit.NewSlogRecorder()
	}
	p := &Pipeline{
		directory:  directory,
		evaluator:  evaluator,
		tasks:      tasks,
		audit:      recorder,
		maxRetries: defaultMaxRetries,
		log:        slog.Default().With("component", "critic-pipeline"),
		cache:      map[string]*cachedEvaluation{},
		rejections: map[string]int{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Fingerprint is the sha-256 hex digest of an output.
func Fingerprint(output string) string {
	sum := sha256.Sum256([]byte(output))
	return hex.EncodeToString(sum[:])
}

func cacheKey(taskID string, criticType Type, fingerprint string) string {
	return taskID + "|" + string(criticType) + "|" + fingerprint
}

func retryKey(taskID string, criticType Type) string {
	return taskID + "|" + string(criticType)
}

// Review judges a task output. Identical content for the same task and
// critic type reuses the cached judgment without re-executing the critic;
// the retry budget still advances per submission, so a repeatedly
// resubmitted rejection eventually escalates.
func (p *Pipeline) Review(ctx context.Context, taskID string, criticType Type, output string) (*Review, error) {
	key := cacheKey(taskID, criticType, Fingerprint(output))

	p.mu.Lock()
	cached, hit := p.cache[key]
	p.mu.Unlock()

	if !hit {
		critic, err := p.selectCritic(ctx, criticType)
		if err != nil {
			return nil, err
		}

		eval, err := p.evaluator.Evaluate(ctx, criticType, taskID, output)
		if err != nil {
			return nil, fmt.Errorf("critic evaluation failed for task %s: %w", taskID, err)
		}
		if err := p.directory.RecordCompleted(ctx, critic.ID); err != nil {
			p.log.Warn("Failed to record critic load", "critic_id", critic.ID, "error", err)
		}

		cached = &cachedEvaluation{eval: eval, criticID: critic.ID}
		p.mu.Lock()
		p.cache[key] = cached
		p.mu.Unlock()
	}

	review := p.resolve(ctx, taskID, criticType, cached.criticID, cached.eval)
	review.Cached = hit
	return review, nil
}

// selectCritic picks the available critic of the specialty with the fewest
// completed reviews.
func (p *Pipeline) selectCritic(ctx context.Context, criticType Type) (*CriticAgent, error) {
	critics, err := p.directory.Available(ctx, criticType)
	if err != nil {
		return nil, fmt.Errorf("failed to list critics of type %s: %w", criticType, err)
	}
	if len(critics) == 0 {
		return nil, fmt.Errorf("no available critic of type %s", criticType)
	}
	sort.SliceStable(critics, func(i, j int) bool {
		if critics[i].CompletedReviews != critics[j].CompletedReviews {
			return critics[i].CompletedReviews < critics[j].CompletedReviews
		}
		return critics[i].ID < critics[j].ID
	})
	return critics[0], nil
}

// resolve turns a raw evaluation into a verdict, applying the retry budget.
func (p *Pipeline) resolve(ctx context.Context, taskID string, criticType Type, criticID string, eval *Evaluation) *Review {
	if eval.Passed {
		p.mu.Lock()
		delete(p.rejections, retryKey(taskID, criticType))
		p.mu.Unlock()
		return &Review{Verdict: VerdictPass, CriticID: criticID}
	}

	p.mu.Lock()
	p.rejections[retryKey(taskID, criticType)]++
	attempts := p.rejections[retryKey(taskID, criticType)]
	p.mu.Unlock()

	if attempts <= p.maxRetries {
		p.log.Info("Critic rejected output",
			"task_id", taskID,
			"critic_type", string(criticType),
			"attempt", attempts,
			"reason", eval.Reason)
		return &Review{
			Verdict:     VerdictReject,
			CriticID:    criticID,
			Reason:      eval.Reason,
			Suggestions: eval.Suggestions,
		}
	}

	// Retries exhausted: force the task into deliberation.
	if err := p.tasks.MarkDeliberating(ctx, taskID, eval.Reason); err != nil {
		p.log.Error("Failed to move task to deliberating", "task_id", taskID, "error", err)
	}
	p.audit.Record(ctx, audit.Entry{
		Kind:     audit.KindCriticEscalation,
		Severity: audit.SeverityWarning,
		ActorID:  criticID,
		Details: map[string]any{
			"task_id":     taskID,
			"critic_type": string(criticType),
			"attempts":    attempts,
			"reason":      eval.Reason,
		},
	})

	return &Review{
		Verdict:     VerdictEscalate,
		CriticID:    criticID,
		Reason:      eval.Reason,
		Suggestions: eval.Suggestions,
		Escalation: map[string]any{
			"task_id":     taskID,
			"critic_type": string(criticType),
			"attempts":    attempts,
			"last_reason": eval.Reason,
			"suggestions": eval.Suggestions,
		},
	}
}
