// Package executor runs agent-submitted code through the full pipeline:
// static analysis, sandbox provisioning, harness execution, and
// summary-only reporting.
package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/agentium/agentium/pkg/execguard"
	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/agentium/agentium/pkg/sandbox"
	"github.com/google/uuid"
)

// Timeout bounds for user code.
const (
	MinTimeoutSeconds     = 10
	MaxTimeoutSeconds     = 3600
	DefaultTimeoutSeconds = 60
)

// Output truncation caps in the summary.
const (
	maxStreamChars = 1000
	maxScalarChars = 500
)

// Request describes one execution.
type Request struct {
	Code           string
	AgentID        string
	TaskID         string
	Language       string
	Dependencies   []string
	InputData      any
	TimeoutSeconds int
	MemoryLimitMB  int
	CPULimit       float64
	NetworkAccess  bool
}

// OutputMasker scrubs credentials from execution output before it leaves
// the executor.
type OutputMasker interface {
	Mask(content string) string
}

// Option configures the executor service.
type Option func(*Service)

// WithMasker installs credential masking on summaries and harness errors.
func WithMasker(m OutputMasker) Option {
	return func(s *Service) { s.masker = m }
}

// WithConcurrencyLimit caps simultaneous sandbox executions. Waiting
// executions block until a slot frees or their context is cancelled.
func WithConcurrencyLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.slots = make(chan struct{}, n)
		}
	}
}

// Service is the remote executor.
type Service struct {
	sandboxes *sandbox.Manager
	store     Store
	masker    OutputMasker
	slots     chan struct{}
	log       *slog.Logger
}

// New creates an executor service. store may be nil (no persistence).
func New(sandboxes *sandbox.Manager, store Store, opts ...Option) *Service {
	s := &Service{
		sandboxes: sandboxes,
		store:     store,
		log:       slog.Default().With("component", "remote-executor"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func clampTimeout(seconds int) int {
	if seconds == 0 {
		seconds = DefaultTimeoutSeconds
	}
	if seconds < MinTimeoutSeconds {
		return MinTimeoutSeconds
	}
	if seconds > MaxTimeoutSeconds {
		return MaxTimeoutSeconds
	}
	return seconds
}

// Execute runs the pipeline. The sandbox is destroyed on every exit path
// past its creation; the returned report carries only the summary.
func (s *Service) Execute(ctx context.Context, req Request) (*Report, error) {
	tier, err := hierarchy.ParseID(req.AgentID)
	if err != nil {
		return nil, fmt.Errorf("invalid requesting agent: %w", err)
	}
	if req.Language != "" && !strings.EqualFold(req.Language, "python") {
		return nil, fmt.Errorf("unsupported language %q", req.Language)
	}

	rec := &Record{
		ID:           uuid.NewString(),
		AgentID:      req.AgentID,
		TaskID:       req.TaskID,
		Code:         req.Code,
		Language:     "python",
		Dependencies: req.Dependencies,
		StartedAt:    time.Now().UTC(),
	}

	// Static analysis happens before any container exists.
	analysis := execguard.Analyze(req.Code, tier)
	security := &SecurityResult{
		Passed:         analysis.Passed,
		Severity:       analysis.Severity,
		Violations:     analysis.Violations,
		Recommendation: analysis.Recommendation,
	}
	rec.SecurityResult = security
	if !analysis.Passed {
		rec.Status = StatusBlocked
		rec.Error = "execution blocked by static analysis"
		rec.CompletedAt = time.Now().UTC()
		s.persist(ctx, rec, true)
		s.log.Warn("Execution blocked",
			"execution_id", rec.ID,
			"agent_id", req.AgentID,
			"severity", string(analysis.Severity))
		return &Report{
			ExecutionID:    rec.ID,
			Status:         StatusBlocked,
			SecurityResult: security,
			Error:          rec.Error,
		}, nil
	}

	rec.Status = StatusPending
	s.persist(ctx, rec, true)

	// Blocked executions never held a slot; the cap applies from here on.
	if s.slots != nil {
		select {
		case s.slots <- struct{}{}:
			defer func() { <-s.slots }()
		case <-ctx.Done():
			return s.fail(ctx, rec, security,
				fmt.Sprintf("cancelled while waiting for an execution slot: %v", ctx.Err())), nil
		}
	}

	timeoutSeconds := clampTimeout(req.TimeoutSeconds)
	networkMode := sandbox.NetworkNone
	if req.NetworkAccess {
		networkMode = sandbox.NetworkBridge
	}

	sb, err := s.sandboxes.Create(ctx, req.AgentID, sandbox.Config{
		MemoryLimitMB: req.MemoryLimitMB,
		CPULimit:      req.CPULimit,
		NetworkMode:   networkMode,
	})
	if err != nil {
		rec.Status = StatusFailed
		rec.Error = fmt.Sprintf("sandbox provisioning failed: %v", err)
		rec.CompletedAt = time.Now().UTC()
		s.persist(ctx, rec, false)
		return &Report{ExecutionID: rec.ID, Status: StatusFailed, SecurityResult: security, Error: rec.Error}, nil
	}
	rec.SandboxID = sb.ID
	defer func() {
		if err := s.sandboxes.Destroy(context.WithoutCancel(ctx), sb, "execution finished"); err != nil {
			s.log.Error("Failed to destroy sandbox",
				"sandbox_id", sb.ID, "execution_id", rec.ID, "error", err)
		}
	}()

	rec.Status = StatusRunning
	s.persist(ctx, rec, false)

	if err := s.sandboxes.Stage(ctx, sb, req.Code, req.InputData, req.Dependencies); err != nil {
		return s.fail(ctx, rec, security, fmt.Sprintf("staging failed: %v", err)), nil
	}

	result, err := s.sandboxes.RunHarness(ctx, sb, time.Duration(timeoutSeconds)*time.Second)
	if err != nil {
		return s.fail(ctx, rec, security, fmt.Sprintf("harness invocation failed: %v", err)), nil
	}
	if result.TimedOut {
		return s.fail(ctx, rec, security,
			fmt.Sprintf("Execution timed out after %d seconds", timeoutSeconds)), nil
	}

	summary, harnessErr, err := parseHarnessOutput(result.Stdout)
	if err != nil {
		return s.fail(ctx, rec, security, fmt.Sprintf("unreadable harness output: %v", err)), nil
	}
	s.maskSummary(summary)
	harnessErr = s.maskString(harnessErr)
	if harnessErr != "" {
		rec.Summary = summary
		return s.fail(ctx, rec, security, harnessErr), nil
	}

	rec.Status = StatusCompleted
	rec.Summary = summary
	rec.CompletedAt = time.Now().UTC()
	s.persist(ctx, rec, false)

	return &Report{
		ExecutionID:    rec.ID,
		Status:         StatusCompleted,
		Summary:        summary,
		SecurityResult: security,
		SandboxID:      sb.ID,
	}, nil
}

func (s *Service) fail(ctx context.Context, rec *Record, security *SecurityResult, message string) *Report {
	rec.Status = StatusFailed
	rec.Error = message
	rec.CompletedAt = time.Now().UTC()
	s.persist(ctx, rec, false)
	return &Report{
		ExecutionID:    rec.ID,
		Status:         StatusFailed,
		Summary:        rec.Summary,
		SecurityResult: security,
		SandboxID:      rec.SandboxID,
		Error:          message,
	}
}

func (s *Service) persist(ctx context.Context, rec *Record, create bool) {
	if s.store == nil {
		return
	}
	var err error
	if create {
		err = s.store.Create(ctx, rec)
	} else {
		err = s.store.Update(ctx, rec)
	}
	if err != nil {
		s.log.Error("Failed to persist execution record",
			"execution_id", rec.ID, "status", string(rec.Status), "error", err)
	}
}

func (s *Service) maskString(v string) string {
	if s.masker == nil {
		return v
	}
	return s.masker.Mask(v)
}

// maskSummary scrubs the user-controlled parts of a summary in place.
// Schema and stats keys come from the harness, not user code, and values
// echoed through the sample are strings when they matter.
func (s *Service) maskSummary(summary *Summary) {
	if s.masker == nil || summary == nil {
		return
	}
	summary.Stdout = s.masker.Mask(summary.Stdout)
	summary.Stderr = s.masker.Mask(summary.Stderr)
	for i, item := range summary.Sample {
		if str, ok := item.(string); ok {
			summary.Sample[i] = s.masker.Mask(str)
		}
	}
}

// harnessOutput mirrors the JSON contract the in-sandbox harness prints.
type harnessOutput struct {
	Success         bool              `json:"success"`
	OutputSchema    map[string]string `json:"output_schema"`
	RowCount        int               `json:"row_count"`
	Sample          []any             `json:"sample"`
	Stats           map[string]any    `json:"stats"`
	Stdout          string            `json:"stdout"`
	Stderr          string            `json:"stderr"`
	ExecutionTimeMs int               `json:"execution_time_ms"`
	Error           string            `json:"error"`
}

// parseHarnessOutput decodes the harness JSON and applies the summary
// truncation caps.
func parseHarnessOutput(stdout string) (*Summary, string, error) {
	var out harnessOutput
	if err := json.Unmarshal([]byte(strings.TrimSpace(stdout)), &out); err != nil {
		return nil, "", fmt.Errorf("harness output is not valid JSON: %w", err)
	}

	sample := out.Sample
	if len(sample) > 3 {
		sample = sample[:3]
	}
	for i, item := range sample {
		if s, ok := item.(string); ok && len(s) > maxScalarChars {
			sample[i] = s[:maxScalarChars]
		}
	}

	summary := &Summary{
		OutputSchema:    out.OutputSchema,
		RowCount:        out.RowCount,
		Sample:          sample,
		Stats:           out.Stats,
		Stdout:          truncate(out.Stdout, maxStreamChars),
		Stderr:          truncate(out.Stderr, maxStreamChars),
		ExecutionTimeMs: out.ExecutionTimeMs,
	}
	if !out.Success && out.Error == "" {
		return summary, "user code failed without detail", nil
	}
	return summary, out.Error, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
