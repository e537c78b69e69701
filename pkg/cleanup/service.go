// Package cleanup enforces data retention on the append-only tables.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/agentium/agentium/pkg/config"
)

// Pruner deletes rows created (or closed) before a cutoff and reports how
// many were removed.
type Pruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// ClosedPruner deletes closed-out rows older than a cutoff. Open rows are
// out of scope so downstream leak detection keeps working.
type ClosedPruner interface {
	DeleteClosedOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// Service periodically prunes audit logs, usage logs and closed sandbox
// records past their retention windows. Every pass is idempotent and safe
// to run from multiple replicas.
type Service struct {
	config  *config.RetentionConfig
	audit   Pruner
	usage   Pruner
	sandbox ClosedPruner

	cancel context.CancelFunc
	done   chan struct{}
	log    *slog.Logger
}

// NewService creates a retention service over the three pruned stores.
func NewService(cfg *config.RetentionConfig, audit, usage Pruner, sandbox ClosedPruner) *Service {
	return &Service{
		config:  cfg,
		audit:   audit,
		usage:   usage,
		sandbox: sandbox,
		log:     slog.Default().With("component", "retention"),
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.log.Info("Retention service started",
		"audit_retention_days", s.config.AuditRetentionDays,
		"usage_retention_days", s.config.UsageRetentionDays,
		"sandbox_retention_days", s.config.SandboxRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.log.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs one retention pass. A failure in one store never blocks
// pruning of the others.
func (s *Service) RunOnce(ctx context.Context) {
	now := time.Now().UTC()

	s.prune(ctx, "audit logs", s.audit, now.AddDate(0, 0, -s.config.AuditRetentionDays))
	s.prune(ctx, "usage logs", s.usage, now.AddDate(0, 0, -s.config.UsageRetentionDays))

	cutoff := now.AddDate(0, 0, -s.config.SandboxRetentionDays)
	count, err := s.sandbox.DeleteClosedOlderThan(ctx, cutoff)
	if err != nil {
		s.log.Error("Retention: sandbox record prune failed", "error", err)
		return
	}
	if count > 0 {
		s.log.Info("Retention: pruned sandbox records", "count", count)
	}
}

func (s *Service) prune(ctx context.Context, what string, p Pruner, cutoff time.Time) {
	count, err := p.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.log.Error("Retention: prune failed", "store", what, "error", err)
		return
	}
	if count > 0 {
		s.log.Info("Retention: pruned rows", "store", what, "count", count)
	}
}
