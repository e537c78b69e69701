// Package agents implements the agent lifecycle: spawning under the tier
// rules, status transitions, termination with task liquidation, heartbeats
// and ethos ownership.
package agents

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agentium/agentium/pkg/alerts"
	"github.com/agentium/agentium/pkg/audit"
	"github.com/agentium/agentium/pkg/bus"
	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/agentium/agentium/pkg/models"
)

// TaskCanceller cancels the non-terminal tasks assigned to an agent and
// returns how many were cancelled. Terminal tasks are untouched.
type TaskCanceller interface {
	CancelNonTerminal(ctx context.Context, agentID, reason string) (int, error)
}

// Publisher is the bus surface used for liquidation notices.
type Publisher interface {
	Publish(ctx context.Context, env *bus.Envelope, persistent bool) (*bus.PublishResult, error)
}

// SpawnRequest describes a new agent.
type SpawnRequest struct {
	ParentID   string
	Tier       hierarchy.Tier
	Persistent bool
	Ethos      string
}

// Service is the agent lifecycle manager.
type Service struct {
	store    Store
	tasks    TaskCanceller
	bus      Publisher
	notifier alerts.Notifier
	audit    audit.Recorder
	now      func() time.Time
	log      *slog.Logger
}

// Option configures the service.
type Option func(*Service)

// WithTaskCanceller wires task liquidation on termination.
func WithTaskCanceller(tc TaskCanceller) Option {
	return func(s *Service) { s.tasks = tc }
}

// WithPublisher wires liquidation notices onto the bus.
func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.bus = p }
}

// WithNotifier wires operator alerts.
func WithNotifier(n alerts.Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a lifecycle service.
func New(store Store, recorder audit.Recorder, opts ...Option) *Service {
	if recorder == nil {
		recorder = audit.NewSlogRecorder()
	}
	s := &Service{
		store: store,
		audit: recorder,
		now:   func() time.Time { return time.Now().UTC() },
		log:   slog.Default().With("component", "agent-lifecycle"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnsureHead creates the singleton Head agent when missing and returns it.
func (s *Service) EnsureHead(ctx context.Context) (*Agent, error) {
	if existing, err := s.store.Get(ctx, hierarchy.HeadID); err == nil {
		return existing, nil
	}
	head := &Agent{
		ID:         hierarchy.HeadID,
		Tier:       hierarchy.TierHead,
		Status:     models.AgentStatusActive,
		Persistent: true,
		CreatedAt:  s.now(),
	}
	if err := s.store.Create(ctx, head); err != nil {
		return nil, fmt.Errorf("failed to create head agent: %w", err)
	}
	s.log.Info("Head agent created", "agent_id", head.ID)
	return head, nil
}

// Spawn creates a child agent under the tier spawn rules.
func (s *Service) Spawn(ctx context.Context, req SpawnRequest) (*Agent, error) {
	parent, err := s.store.Get(ctx, req.ParentID)
	if err != nil {
		return nil, fmt.Errorf("spawn parent lookup: %w", err)
	}
	if parent.Status.IsTerminal() {
		return nil, fmt.Errorf("agent %s is terminated and cannot spawn", parent.ID)
	}
	if !hierarchy.CanSpawn(parent.Tier, req.Tier) {
		return nil, fmt.Errorf("tier %s may not spawn tier %s", parent.Tier, req.Tier)
	}

	id, err := s.store.NextID(ctx, req.Tier)
	if err != nil {
		return nil, err
	}
	child := &Agent{
		ID:         id,
		Tier:       req.Tier,
		ParentID:   parent.ID,
		Status:     models.AgentStatusInitializing,
		Persistent: req.Persistent,
		Ethos:      req.Ethos,
		CreatedAt:  s.now(),
	}
	if err := s.store.Create(ctx, child); err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		Kind:     audit.KindAgentLifecycle,
		Severity: audit.SeverityInfo,
		ActorID:  parent.ID,
		Details:  map[string]any{"event": "spawned", "agent_id": child.ID, "tier": child.Tier.String()},
	})
	s.log.Info("Agent spawned", "agent_id", child.ID, "parent_id", parent.ID, "tier", child.Tier.String())
	return child, nil
}

// UpdateStatus moves an agent to a new status. Terminated agents admit no
// further transitions; termination goes through Terminate.
func (s *Service) UpdateStatus(ctx context.Context, id string, status models.AgentStatus) error {
	valid := false
	for _, known := range models.ValidAgentStatuses {
		if known == status {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown agent status %q", status)
	}
	if status == models.AgentStatusTerminated {
		return fmt.Errorf("termination must go through Terminate")
	}

	a, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if a.Status.IsTerminal() {
		return fmt.Errorf("agent %s is terminated", id)
	}
	a.Status = status
	return s.store.Update(ctx, a)
}

// Heartbeat stamps the agent's liveness.
func (s *Service) Heartbeat(ctx context.Context, id string) error {
	a, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if a.Status.IsTerminal() {
		return fmt.Errorf("agent %s is terminated", id)
	}
	a.LastHeartbeatAt = s.now()
	return s.store.Update(ctx, a)
}

// Terminate liquidates an agent: status terminated, non-terminal tasks
// cancelled, a liquidation notice to its parent, an audit entry and an
// operator alert. The Head may not be terminated.
func (s *Service) Terminate(ctx context.Context, id, reason string) error {
	if hierarchy.IsHead(id) {
		return fmt.Errorf("the head agent may not be terminated")
	}
	a, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if a.Status.IsTerminal() {
		return nil
	}

	a.Status = models.AgentStatusTerminated
	if err := s.store.Update(ctx, a); err != nil {
		return fmt.Errorf("failed to terminate agent %s: %w", id, err)
	}

	cancelled := 0
	if s.tasks != nil {
		cancelled, err = s.tasks.CancelNonTerminal(ctx, id, reason)
		if err != nil {
			s.log.Error("Failed to cancel tasks during liquidation",
				"agent_id", id, "error", err)
		}
	}

	if s.bus != nil && a.ParentID != "" {
		env, envErr := bus.NewEnvelope(id, a.ParentID, hierarchy.DirectionUp,
			bus.TypeLiquidation, reason, map[string]any{"cancelled_tasks": cancelled})
		if envErr == nil {
			if _, pubErr := s.bus.Publish(ctx, env, true); pubErr != nil {
				s.log.Warn("Failed to publish liquidation notice",
					"agent_id", id, "error", pubErr)
			}
		}
	}

	s.audit.Record(ctx, audit.Entry{
		Kind:     audit.KindAgentLifecycle,
		Severity: audit.SeverityWarning,
		ActorID:  id,
		Details:  map[string]any{"event": "terminated", "reason": reason, "cancelled_tasks": cancelled},
	})
	if s.notifier != nil {
		s.notifier.Notify(ctx, alerts.Alert{
			Kind:    alerts.KindAgentLiquidated,
			AgentID: id,
			Detail:  fmt.Sprintf("%s (%d tasks cancelled)", reason, cancelled),
		})
	}
	s.log.Warn("Agent terminated", "agent_id", id, "reason", reason, "cancelled_tasks", cancelled)
	return nil
}

// canTouchEthos reports whether reader may access target's ethos: the owner
// always may, a strictly higher tier may, peers and subordinates may not.
func canTouchEthos(reader, target *Agent) bool {
	if reader.ID == target.ID {
		return true
	}
	return reader.Tier < target.Tier
}

// ReadEthos returns the target's ethos when the reader owns it or outranks
// the target.
func (s *Service) ReadEthos(ctx context.Context, readerID, targetID string) (string, error) {
	reader, err := s.store.Get(ctx, readerID)
	if err != nil {
		return "", err
	}
	target, err := s.store.Get(ctx, targetID)
	if err != nil {
		return "", err
	}
	if !canTouchEthos(reader, target) {
		return "", fmt.Errorf("agent %s may not read the ethos of %s", readerID, targetID)
	}
	return target.Ethos, nil
}

// CorrectEthos rewrites the target's ethos under the same ownership rule.
func (s *Service) CorrectEthos(ctx context.Context, writerID, targetID, ethos string) error {
	writer, err := s.store.Get(ctx, writerID)
	if err != nil {
		return err
	}
	target, err := s.store.Get(ctx, targetID)
	if err != nil {
		return err
	}
	if !canTouchEthos(writer, target) {
		return fmt.Errorf("agent %s may not modify the ethos of %s", writerID, targetID)
	}
	target.Ethos = ethos
	return s.store.Update(ctx, target)
}
