package executor

import (
	"context"
	"time"

	"github.com/agentium/agentium/pkg/execguard"
)

// Status of an execution record.
type Status string

// Execution statuses.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusBlocked   Status = "blocked"
)

// Summary is the only execution output that leaves the sandbox. Raw result
// data never crosses the container boundary.
type Summary struct {
	OutputSchema    map[string]string `json:"output_schema"`
	RowCount        int               `json:"row_count"`
	Sample          []any             `json:"sample"`
	Stats           map[string]any    `json:"stats"`
	Stdout          string            `json:"stdout"`
	Stderr          string            `json:"stderr"`
	ExecutionTimeMs int               `json:"execution_time_ms"`
}

// SecurityResult is the static-analysis outcome attached to a report.
type SecurityResult struct {
	Passed         bool                  `json:"passed"`
	Severity       execguard.Severity    `json:"severity"`
	Violations     []execguard.Violation `json:"violations"`
	Recommendation string                `json:"recommendation"`
}

// Report is the caller-visible outcome of an execution.
type Report struct {
	ExecutionID    string          `json:"execution_id"`
	Status         Status          `json:"status"`
	Summary        *Summary        `json:"summary,omitempty"`
	SecurityResult *SecurityResult `json:"security_result,omitempty"`
	SandboxID      string          `json:"sandbox_id,omitempty"`
	Error          string          `json:"error,omitempty"`
}

// Record is the persisted execution row.
type Record struct {
	ID             string
	AgentID        string
	TaskID         string
	Code           string
	Language       string
	Dependencies   []string
	Status         Status
	SecurityResult *SecurityResult
	Summary        *Summary
	Error          string
	SandboxID      string
	StartedAt      time.Time
	CompletedAt    time.Time
}

// Store persists execution records.
type Store interface {
	Create(ctx context.Context, rec *Record) error
	Update(ctx context.Context, rec *Record) error
}
