// Package audit defines the append-only audit event contract. Writers emit
// structured entries; storage is behind the Recorder interface (the
// ent-backed implementation lives in pkg/services).
package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Severity of an audit entry.
type Severity string

// Severities.
const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// Entry kinds emitted by the governance core.
const (
	KindRoutingViolation    = "routing_violation"
	KindCapabilityDenied    = "capability_denied"
	KindCapabilityGranted   = "capability_granted"
	KindCapabilityRevoked   = "capability_revoked"
	KindConstitutionalBlock = "constitutional_block"
	KindCriticEscalation    = "critic_escalation"
	KindKeyExhaustion       = "key_exhaustion"
	KindAgentLifecycle      = "agent_lifecycle"
	KindBudgetChange        = "budget_change"
)

// Entry is a single append-only audit record.
type Entry struct {
	Kind      string
	Severity  Severity
	ActorID   string
	Details   map[string]any
	CreatedAt time.Time
}

// Recorder persists audit entries. The stream is append-only; recording
// never blocks the operation being audited for long.
type Recorder interface {
	Record(ctx context.Context, entry Entry)
}

// SlogRecorder writes audit entries to the process logger. Used as the
// default when no persistent recorder is wired.
type SlogRecorder struct {
	log *slog.Logger
}

// NewSlogRecorder creates a logger-backed recorder.
func NewSlogRecorder() *SlogRecorder {
	return &SlogRecorder{log: slog.Default().With("component", "audit")}
}

// Record logs the entry at a level matching its severity.
func (r *SlogRecorder) Record(_ context.Context, entry Entry) {
	attrs := []any{"kind", entry.Kind, "actor_id", entry.ActorID, "details", entry.Details}
	switch entry.Severity {
	case SeverityWarning:
		r.log.Warn("Audit event", attrs...)
	case SeverityError, SeverityCritical:
		r.log.Error("Audit event", attrs...)
	default:
		r.log.Info("Audit event", attrs...)
	}
}

// MemoryRecorder collects entries in memory. Test helper.
type MemoryRecorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemoryRecorder creates an empty in-memory recorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

// Record appends the entry, stamping CreatedAt when unset.
func (r *MemoryRecorder) Record(_ context.Context, entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	r.entries = append(r.entries, entry)
}

// Entries returns a snapshot of recorded entries.
func (r *MemoryRecorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// ByKind returns recorded entries of the given kind.
func (r *MemoryRecorder) ByKind(kind string) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
