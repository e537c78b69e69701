package agents

import (
	"context"
	"log/slog"
	"time"

	"github.com/agentium/agentium/pkg/audit"
	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/agentium/agentium/pkg/models"
)

// StaleLister finds live agents that have not checked in since the cutoff.
// Agents that never sent a heartbeat are judged by creation time.
type StaleLister interface {
	ListStaleActive(ctx context.Context, cutoff time.Time) ([]*Agent, error)
}

// HeartbeatMonitor suspends agents that go silent past the heartbeat
// timeout. A suspended agent keeps its tasks and resumes on the next
// explicit status change.
type HeartbeatMonitor struct {
	svc      *Service
	lister   StaleLister
	timeout  time.Duration
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
	log    *slog.Logger
}

// NewHeartbeatMonitor creates a monitor. Zero interval defaults to a
// quarter of the timeout.
func NewHeartbeatMonitor(svc *Service, lister StaleLister, timeout, interval time.Duration) *HeartbeatMonitor {
	if interval <= 0 {
		interval = timeout / 4
	}
	return &HeartbeatMonitor{
		svc:      svc,
		lister:   lister,
		timeout:  timeout,
		interval: interval,
		log:      slog.Default().With("component", "heartbeat-monitor"),
	}
}

// Start launches the background check loop.
func (m *HeartbeatMonitor) Start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})
	go m.run(ctx)
}

// Stop terminates the loop and waits for it to exit.
func (m *HeartbeatMonitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}

func (m *HeartbeatMonitor) run(ctx context.Context) {
	defer close(m.done)
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.CheckOnce(ctx)
		}
	}
}

// CheckOnce suspends every live agent silent for longer than the timeout.
// The Head never heartbeats and is exempt.
func (m *HeartbeatMonitor) CheckOnce(ctx context.Context) {
	cutoff := m.svc.now().Add(-m.timeout)
	stale, err := m.lister.ListStaleActive(ctx, cutoff)
	if err != nil {
		m.log.Warn("Stale agent scan failed", "error", err)
		return
	}

	for _, a := range stale {
		if hierarchy.IsHead(a.ID) {
			continue
		}
		if err := m.svc.UpdateStatus(ctx, a.ID, models.AgentStatusSuspended); err != nil {
			m.log.Error("Failed to suspend silent agent", "agent_id", a.ID, "error", err)
			continue
		}
		m.svc.audit.Record(ctx, audit.Entry{
			Kind:     audit.KindAgentLifecycle,
			Severity: audit.SeverityWarning,
			ActorID:  a.ID,
			Details: map[string]any{
				"event":   "suspended",
				"reason":  "heartbeat timeout",
				"timeout": m.timeout.String(),
			},
		})
		m.log.Warn("Agent suspended after heartbeat timeout",
			"agent_id", a.ID, "timeout", m.timeout.String())
	}
}
