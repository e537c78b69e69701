package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agentium/agentium/ent"
	"github.com/agentium/agentium/ent/auditlog"
	"github.com/agentium/agentium/pkg/audit"
	"github.com/google/uuid"
)

// AuditService persists audit entries to the append-only audit_logs table.
// Recording is best-effort: a failed insert is logged and dropped rather
// than failing the operation being audited.
type AuditService struct {
	client *ent.Client
	log    *slog.Logger
}

// NewAuditService creates a new AuditService.
func NewAuditService(client *ent.Client) *AuditService {
	return &AuditService{
		client: client,
		log:    slog.Default().With("component", "audit"),
	}
}

// Record implements audit.Recorder. The write runs on a detached context so
// audit rows survive cancellation of the audited request.
func (s *AuditService) Record(_ context.Context, entry audit.Entry) {
	wctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.AuditLog.Create().
		SetID(uuid.New().String()).
		SetKind(entry.Kind).
		SetSeverity(auditlog.Severity(entry.Severity))
	if entry.ActorID != "" {
		create.SetActorID(entry.ActorID)
	}
	if entry.Details != nil {
		create.SetDetails(entry.Details)
	}
	if !entry.CreatedAt.IsZero() {
		create.SetCreatedAt(entry.CreatedAt)
	}

	if _, err := create.Save(wctx); err != nil {
		s.log.Error("Failed to persist audit entry",
			"kind", entry.Kind, "actor_id", entry.ActorID, "error", err)
	}
}

// ListByKind returns the most recent entries of one kind, newest first.
func (s *AuditService) ListByKind(ctx context.Context, kind string, limit int) ([]audit.Entry, error) {
	rows, err := s.client.AuditLog.Query().
		Where(auditlog.Kind(kind)).
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries of kind %s: %w", kind, err)
	}
	return auditEntriesFromRows(rows), nil
}

// ListByActor returns the most recent entries attributed to one agent,
// newest first.
func (s *AuditService) ListByActor(ctx context.Context, actorID string, limit int) ([]audit.Entry, error) {
	rows, err := s.client.AuditLog.Query().
		Where(auditlog.ActorID(actorID)).
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries for actor %s: %w", actorID, err)
	}
	return auditEntriesFromRows(rows), nil
}

// CountByActorSince counts entries of one kind attributed to an agent after
// the cutoff. Feeds the repeat-offender check.
func (s *AuditService) CountByActorSince(ctx context.Context, actorID, kind string, since time.Time) (int, error) {
	n, err := s.client.AuditLog.Query().
		Where(
			auditlog.ActorID(actorID),
			auditlog.Kind(kind),
			auditlog.CreatedAtGTE(since),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count audit entries for actor %s: %w", actorID, err)
	}
	return n, nil
}

func auditEntriesFromRows(rows []*ent.AuditLog) []audit.Entry {
	out := make([]audit.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, audit.Entry{
			Kind:      row.Kind,
			Severity:  audit.Severity(row.Severity),
			ActorID:   row.ActorID,
			Details:   row.Details,
			CreatedAt: row.CreatedAt,
		})
	}
	return out
}

// DeleteOlderThan removes audit rows created before the cutoff and returns
// how many were removed.
func (s *AuditService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.AuditLog.Delete().
		Where(auditlog.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune audit logs: %w", err)
	}
	return n, nil
}
