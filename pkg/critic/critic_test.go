package critic

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/agentium/agentium/pkg/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryDirectory struct {
	mu      sync.Mutex
	critics map[string]*CriticAgent
}

func newMemoryDirectory(critics ...*CriticAgent) *memoryDirectory {
	d := &memoryDirectory{critics: map[string]*CriticAgent{}}
	for _, c := range critics {
		cp := *c
		d.critics[c.ID] = &cp
	}
	return d
}

func (d *memoryDirectory) Available(_ context.Context, specialty Type) ([]*CriticAgent, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []*CriticAgent
	for _, c := range d.critics {
		if c.Specialty == specialty {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (d *memoryDirectory) RecordCompleted(_ context.Context, criticID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.critics[criticID]
	if !ok {
		return fmt.Errorf("critic %s not found", criticID)
	}
	c.CompletedReviews++
	return nil
}

// scriptedEvaluator returns canned evaluations in order and counts calls.
type scriptedEvaluator struct {
	mu     sync.Mutex
	script []*Evaluation
	calls  int
}

func (e *scriptedEvaluator) Evaluate(_ context.Context, _ Type, _, _ string) (*Evaluation, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	if len(e.script) == 0 {
		return &Evaluation{Passed: true}, nil
	}
	next := e.script[0]
	if len(e.script) > 1 {
		e.script = e.script[1:]
	}
	return next, nil
}

type fakeTaskMarker struct {
	mu     sync.Mutex
	marked map[string]string
}

func newFakeTaskMarker() *fakeTaskMarker {
	return &fakeTaskMarker{marked: map[string]string{}}
}

func (m *fakeTaskMarker) MarkDeliberating(_ context.Context, taskID, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.marked[taskID] = reason
	return nil
}

func TestReviewPass(t *testing.T) {
	dir := newMemoryDirectory(&CriticAgent{ID: "10002", Specialty: TypeOutput})
	eval := &scriptedEvaluator{}
	p := New(dir, eval, newFakeTaskMarker(), audit.NewMemoryRecorder())

	r, err := p.Review(context.Background(), "task-1", TypeOutput, "final report text")
	require.NoError(t, err)
	assert.Equal(t, VerdictPass, r.Verdict)
	assert.Equal(t, "10002", r.CriticID)
	assert.False(t, r.Cached)
}

func TestReviewCachesByFingerprint(t *testing.T) {
	dir := newMemoryDirectory(&CriticAgent{ID: "10002", Specialty: TypeCode})
	eval := &scriptedEvaluator{}
	p := New(dir, eval, newFakeTaskMarker(), audit.NewMemoryRecorder())
	ctx := context.Background()

	first, err := p.Review(ctx, "task-1", TypeCode, "def f(): pass")
	require.NoError(t, err)
	second, err := p.Review(ctx, "task-1", TypeCode, "def f(): pass")
	require.NoError(t, err)

	assert.Equal(t, first.Verdict, second.Verdict)
	assert.True(t, second.Cached)
	assert.Equal(t, 1, eval.calls, "critic not re-executed for identical content")

	// A different critic type re-executes even for identical content.
	_, err = p.Review(ctx, "task-1", TypeOutput, "def f(): pass")
	require.Error(t, err, "no output critic registered")
}

func TestReviewRejectCarriesReasonAndSuggestions(t *testing.T) {
	dir := newMemoryDirectory(&CriticAgent{ID: "10002", Specialty: TypeCode})
	eval := &scriptedEvaluator{script: []*Evaluation{
		{Passed: false, Reason: "missing error handling", Suggestions: []string{"wrap the parse call"}},
	}}
	p := New(dir, eval, newFakeTaskMarker(), audit.NewMemoryRecorder())

	r, err := p.Review(context.Background(), "task-1", TypeCode, "v1")
	require.NoError(t, err)
	assert.Equal(t, VerdictReject, r.Verdict)
	assert.Equal(t, "missing error handling", r.Reason)
	assert.Equal(t, []string{"wrap the parse call"}, r.Suggestions)
	assert.Nil(t, r.Escalation)
}

func TestRetriesExhaustedEscalates(t *testing.T) {
	dir := newMemoryDirectory(&CriticAgent{ID: "10002", Specialty: TypeCode})
	eval := &scriptedEvaluator{script: []*Evaluation{{Passed: false, Reason: "still broken"}}}
	marker := newFakeTaskMarker()
	recorder := audit.NewMemoryRecorder()
	p := New(dir, eval, marker, recorder, WithMaxRetries(2))
	ctx := context.Background()

	// Distinct content each attempt so the critic actually re-executes.
	r1, err := p.Review(ctx, "task-1", TypeCode, "attempt 1")
	require.NoError(t, err)
	assert.Equal(t, VerdictReject, r1.Verdict)

	r2, err := p.Review(ctx, "task-1", TypeCode, "attempt 2")
	require.NoError(t, err)
	assert.Equal(t, VerdictReject, r2.Verdict)

	r3, err := p.Review(ctx, "task-1", TypeCode, "attempt 3")
	require.NoError(t, err)
	assert.Equal(t, VerdictEscalate, r3.Verdict)
	assert.Equal(t, 3, r3.Escalation["attempts"])
	assert.Equal(t, "still broken", r3.Escalation["last_reason"])

	assert.Equal(t, "still broken", marker.marked["task-1"], "task forced into deliberation")

	entries := recorder.ByKind(audit.KindCriticEscalation)
	require.Len(t, entries, 1)
	assert.Equal(t, audit.SeverityWarning, entries[0].Severity)
}

func TestSameHashResubmissionEscalatesWithoutReExecution(t *testing.T) {
	dir := newMemoryDirectory(&CriticAgent{ID: "10002", Specialty: TypeOutput})
	eval := &scriptedEvaluator{script: []*Evaluation{{Passed: false, Reason: "unacceptable"}}}
	marker := newFakeTaskMarker()
	p := New(dir, eval, marker, audit.NewMemoryRecorder(), WithMaxRetries(5))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		r, err := p.Review(ctx, "task-1", TypeOutput, "same output")
		require.NoError(t, err)
		assert.Equal(t, VerdictReject, r.Verdict)
		assert.Equal(t, i > 0, r.Cached)
	}

	// The 6th submission of the same hash escalates, still without
	// re-running the critic.
	r, err := p.Review(ctx, "task-1", TypeOutput, "same output")
	require.NoError(t, err)
	assert.Equal(t, VerdictEscalate, r.Verdict)
	assert.True(t, r.Cached)
	assert.Equal(t, 1, eval.calls, "critic executed once for the hash")
	assert.Equal(t, "unacceptable", marker.marked["task-1"])
}

func TestPassResetsRejectionCount(t *testing.T) {
	dir := newMemoryDirectory(&CriticAgent{ID: "10002", Specialty: TypeCode})
	eval := &scriptedEvaluator{script: []*Evaluation{
		{Passed: false, Reason: "broken"},
		{Passed: true},
		{Passed: false, Reason: "broken again"},
	}}
	p := New(dir, eval, newFakeTaskMarker(), audit.NewMemoryRecorder(), WithMaxRetries(2))
	ctx := context.Background()

	r, err := p.Review(ctx, "task-1", TypeCode, "v1")
	require.NoError(t, err)
	assert.Equal(t, VerdictReject, r.Verdict)

	r, err = p.Review(ctx, "task-1", TypeCode, "v2")
	require.NoError(t, err)
	assert.Equal(t, VerdictPass, r.Verdict)

	// The pass wiped the rejection count, so this is attempt 1 again.
	r, err = p.Review(ctx, "task-1", TypeCode, "v3")
	require.NoError(t, err)
	assert.Equal(t, VerdictReject, r.Verdict)
}

func TestLeastBusySelection(t *testing.T) {
	dir := newMemoryDirectory(
		&CriticAgent{ID: "10002", Specialty: TypeOutput, CompletedReviews: 4},
		&CriticAgent{ID: "10003", Specialty: TypeOutput, CompletedReviews: 1},
		&CriticAgent{ID: "10004", Specialty: TypePlan, CompletedReviews: 0},
	)
	eval := &scriptedEvaluator{}
	p := New(dir, eval, newFakeTaskMarker(), audit.NewMemoryRecorder())

	r, err := p.Review(context.Background(), "task-1", TypeOutput, "output")
	require.NoError(t, err)
	assert.Equal(t, "10003", r.CriticID, "fewest completed reviews of the matching specialty")
}

func TestNoCriticAvailable(t *testing.T) {
	p := New(newMemoryDirectory(), &scriptedEvaluator{}, newFakeTaskMarker(), audit.NewMemoryRecorder())
	_, err := p.Review(context.Background(), "task-1", TypePlan, "plan text")
	require.Error(t, err)
}
