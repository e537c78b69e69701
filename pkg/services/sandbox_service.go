package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agentium/agentium/ent"
	"github.com/agentium/agentium/ent/sandboxrecord"
	"github.com/agentium/agentium/pkg/sandbox"
)

// SandboxRecordService keeps one row per container for leak detection and
// audit. Sink callbacks are best-effort: a failed write never blocks the
// sandbox lifecycle.
type SandboxRecordService struct {
	client *ent.Client
	log    *slog.Logger
}

// NewSandboxRecordService creates a new SandboxRecordService.
func NewSandboxRecordService(client *ent.Client) *SandboxRecordService {
	return &SandboxRecordService{
		client: client,
		log:    slog.Default().With("component", "sandbox-records"),
	}
}

// SandboxCreated implements sandbox.RecordSink.
func (s *SandboxRecordService) SandboxCreated(_ context.Context, sb *sandbox.Sandbox) {
	wctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.SandboxRecord.Create().
		SetID(sb.ID).
		SetContainerID(sb.ContainerID).
		SetAgentID(sb.AgentID).
		SetImage(sb.Config.Image).
		SetNetworkMode(sb.Config.NetworkMode).
		SetCreatedAt(sb.CreatedAt).
		Save(wctx)
	if err != nil {
		s.log.Error("Failed to record sandbox creation",
			"sandbox_id", sb.ID, "agent_id", sb.AgentID, "error", err)
	}
}

// SandboxDestroyed implements sandbox.RecordSink.
func (s *SandboxRecordService) SandboxDestroyed(_ context.Context, sandboxID, reason string) {
	wctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.SandboxRecord.UpdateOneID(sandboxID).
		SetDestroyedAt(time.Now().UTC()).
		SetDestroyReason(reason).
		Exec(wctx)
	if err != nil {
		s.log.Error("Failed to record sandbox destruction",
			"sandbox_id", sandboxID, "error", err)
	}
}

// Leaked returns records of containers created before the cutoff that were
// never closed out. Candidates for the reaper.
func (s *SandboxRecordService) Leaked(ctx context.Context, olderThan time.Duration) ([]*ent.SandboxRecord, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	rows, err := s.client.SandboxRecord.Query().
		Where(
			sandboxrecord.DestroyedAtIsNil(),
			sandboxrecord.CreatedAtLT(cutoff),
		).
		Order(ent.Asc(sandboxrecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaked sandboxes: %w", err)
	}
	return rows, nil
}

// DeleteClosedOlderThan removes records of sandboxes destroyed before the
// cutoff. Open records are kept regardless of age so leak detection still
// sees them.
func (s *SandboxRecordService) DeleteClosedOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.SandboxRecord.Delete().
		Where(
			sandboxrecord.DestroyedAtNotNil(),
			sandboxrecord.DestroyedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune sandbox records: %w", err)
	}
	return n, nil
}
