package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/agentium/agentium/ent"
	"github.com/agentium/agentium/ent/agent"
	"github.com/agentium/agentium/ent/predicate"
	"github.com/agentium/agentium/ent/task"
	"github.com/agentium/agentium/pkg/agents"
	"github.com/agentium/agentium/pkg/allocator"
	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/agentium/agentium/pkg/models"
	"github.com/agentium/agentium/pkg/orchestrator"
	"github.com/agentium/agentium/pkg/taskflow"
)

// tierWidth is the number of digits after the tier prefix in an agent id.
const tierWidth = 4

// AgentService is the database-backed agent store. It also resolves parents
// for message routing and serves the orchestrator's registry view.
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService.
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// Get returns the agent by id.
func (s *AgentService) Get(ctx context.Context, id string) (*agents.Agent, error) {
	row, err := s.client.Agent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &agents.ErrAgentNotFound{ID: id}
		}
		return nil, fmt.Errorf("failed to get agent %s: %w", id, err)
	}
	return agentFromRow(row), nil
}

// Create persists a new agent row. The write runs on a detached context so
// a registration is not lost when the spawning request is abandoned.
func (s *AgentService) Create(ctx context.Context, a *agents.Agent) error {
	if _, err := hierarchy.ParseID(a.ID); err != nil {
		return NewValidationError("id", err.Error())
	}
	if !a.Status.Valid() {
		return NewValidationError("status", fmt.Sprintf("unknown status %q", a.Status))
	}

	wctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	create := s.client.Agent.Create().
		SetID(a.ID).
		SetTier(agent.Tier(a.Tier.String())).
		SetStatus(agent.Status(a.Status)).
		SetPersistent(a.Persistent).
		SetRecentViolations(a.RecentViolations)
	if a.ParentID != "" {
		create.SetParentID(a.ParentID)
	}
	if a.Ethos != "" {
		create.SetEthos(a.Ethos)
	}
	if a.PreferredConfigID != "" {
		create.SetPreferredConfigID(a.PreferredConfigID)
	}
	if !a.LastHeartbeatAt.IsZero() {
		create.SetLastHeartbeatAt(a.LastHeartbeatAt)
	}
	if !a.CreatedAt.IsZero() {
		create.SetCreatedAt(a.CreatedAt)
	}

	if _, err := create.Save(wctx); err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("agent %s: %w", a.ID, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create agent %s: %w", a.ID, err)
	}
	return nil
}

// Update persists the agent's mutable fields.
func (s *AgentService) Update(ctx context.Context, a *agents.Agent) error {
	if !a.Status.Valid() {
		return NewValidationError("status", fmt.Sprintf("unknown status %q", a.Status))
	}

	upd := s.client.Agent.UpdateOneID(a.ID).
		SetStatus(agent.Status(a.Status)).
		SetRecentViolations(a.RecentViolations).
		SetEthos(a.Ethos)
	if a.PreferredConfigID != "" {
		upd.SetPreferredConfigID(a.PreferredConfigID)
	} else {
		upd.ClearPreferredConfigID()
	}
	if !a.LastHeartbeatAt.IsZero() {
		upd.SetLastHeartbeatAt(a.LastHeartbeatAt)
	}

	if _, err := upd.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return &agents.ErrAgentNotFound{ID: a.ID}
		}
		return fmt.Errorf("failed to update agent %s: %w", a.ID, err)
	}
	return nil
}

// ListByParent returns the direct children of an agent, ordered by id.
func (s *AgentService) ListByParent(ctx context.Context, parentID string) ([]*agents.Agent, error) {
	rows, err := s.client.Agent.Query().
		Where(agent.ParentID(parentID)).
		Order(ent.Asc(agent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list children of %s: %w", parentID, err)
	}
	out := make([]*agents.Agent, 0, len(rows))
	for _, row := range rows {
		out = append(out, agentFromRow(row))
	}
	return out, nil
}

// ListStaleActive implements agents.StaleLister: live agents whose last
// heartbeat (or creation, when they never checked in) predates the cutoff.
func (s *AgentService) ListStaleActive(ctx context.Context, cutoff time.Time) ([]*agents.Agent, error) {
	live := []agent.Status{
		agent.Status(models.AgentStatusActive),
		agent.Status(models.AgentStatusWorking),
		agent.Status(models.AgentStatusReviewing),
		agent.Status(models.AgentStatusDeliberating),
	}
	rows, err := s.client.Agent.Query().
		Where(
			agent.StatusIn(live...),
			agent.Or(
				agent.LastHeartbeatAtLT(cutoff),
				agent.And(agent.LastHeartbeatAtIsNil(), agent.CreatedAtLT(cutoff)),
			),
		).
		Order(ent.Asc(agent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale agents: %w", err)
	}
	out := make([]*agents.Agent, 0, len(rows))
	for _, row := range rows {
		out = append(out, agentFromRow(row))
	}
	return out, nil
}

// NextID allocates the next unused identifier in the given tier. Identifiers
// are dense: the numeric suffix of the highest existing id plus one.
func (s *AgentService) NextID(ctx context.Context, tier hierarchy.Tier) (string, error) {
	if !tier.Valid() {
		return "", NewValidationError("tier", fmt.Sprintf("unknown tier %d", tier))
	}

	prefix := strconv.Itoa(int(tier))
	last, err := s.client.Agent.Query().
		Where(predicate.Agent(sql.FieldHasPrefix(agent.FieldID, prefix))).
		Order(ent.Desc(agent.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Sprintf("%d%0*d", tier, tierWidth, 1), nil
		}
		return "", fmt.Errorf("failed to allocate id in tier %s: %w", tier, err)
	}

	n, err := strconv.Atoi(last.ID[1:])
	if err != nil {
		return "", fmt.Errorf("malformed agent id %q in tier %s: %w", last.ID, tier, err)
	}
	if n >= 9999 {
		return "", fmt.Errorf("identifier space for tier %s is exhausted", tier)
	}
	return fmt.Sprintf("%d%0*d", tier, tierWidth, n+1), nil
}

// ParentOf resolves the routing parent of an agent. Falls back to the
// default parent of the tier above when no explicit parent is recorded.
func (s *AgentService) ParentOf(ctx context.Context, agentID string) (string, error) {
	row, err := s.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", &agents.ErrAgentNotFound{ID: agentID}
		}
		return "", fmt.Errorf("failed to resolve parent of %s: %w", agentID, err)
	}
	if row.ParentID != "" {
		return row.ParentID, nil
	}
	if hierarchy.IsHead(agentID) {
		return "", fmt.Errorf("agent %s has no parent", agentID)
	}
	return hierarchy.DefaultParentID(agentID)
}

// Registry returns the orchestrator-facing read view over the agent table.
func (s *AgentService) Registry() *AgentRegistry {
	return &AgentRegistry{svc: s}
}

// AgentRegistry adapts AgentService to the orchestrator's registry surface.
type AgentRegistry struct {
	svc *AgentService
}

// Get returns the routing view of an agent.
func (r *AgentRegistry) Get(ctx context.Context, id string) (*orchestrator.AgentInfo, error) {
	a, err := r.svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &orchestrator.AgentInfo{
		ID:               a.ID,
		ParentID:         a.ParentID,
		Status:           a.Status,
		RecentViolations: a.RecentViolations,
	}, nil
}

// IdleTaskAgent returns the lowest-numbered paused Task agent under the
// given Lead.
func (r *AgentRegistry) IdleTaskAgent(ctx context.Context, leadID string) (string, error) {
	row, err := r.svc.client.Agent.Query().
		Where(
			agent.ParentID(leadID),
			agent.TierEQ(agent.Tier(hierarchy.TierTask.String())),
			agent.StatusEQ(agent.Status(models.AgentStatusIdlePaused)),
		).
		Order(ent.Asc(agent.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", fmt.Errorf("no idle task agent under %s", leadID)
		}
		return "", fmt.Errorf("failed to find idle task agent under %s: %w", leadID, err)
	}
	return row.ID, nil
}

// AllocatorDirectory is the allocator's mutable view over the agent table.
type AllocatorDirectory struct {
	client *ent.Client
}

// NewAllocatorDirectory creates a directory backed by the agent table.
func NewAllocatorDirectory(client *ent.Client) *AllocatorDirectory {
	return &AllocatorDirectory{client: client}
}

// Get returns the allocator record for an agent, including the description
// of its most recent live task for wake-time re-allocation.
func (d *AllocatorDirectory) Get(ctx context.Context, id string) (*allocator.AgentRecord, error) {
	row, err := d.client.Agent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &agents.ErrAgentNotFound{ID: id}
		}
		return nil, fmt.Errorf("failed to get agent %s: %w", id, err)
	}
	rec := allocatorRecordFromRow(row)

	current, err := d.client.Task.Query().
		Where(
			task.AgentID(id),
			task.StatusIn(task.Status(taskflow.StatusAssigned), task.Status(taskflow.StatusInProgress)),
		).
		Order(ent.Desc(task.FieldCreatedAt)).
		First(ctx)
	if err == nil {
		rec.CurrentTaskDescription = current.Description
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load current task of %s: %w", id, err)
	}
	return rec, nil
}

// List returns allocator records for every agent.
func (d *AllocatorDirectory) List(ctx context.Context) ([]*allocator.AgentRecord, error) {
	rows, err := d.client.Agent.Query().
		Order(ent.Asc(agent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	out := make([]*allocator.AgentRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, allocatorRecordFromRow(row))
	}
	return out, nil
}

// Update persists the allocator-owned fields: status and the preferred and
// saved configuration pointers.
func (d *AllocatorDirectory) Update(ctx context.Context, a *allocator.AgentRecord) error {
	upd := d.client.Agent.UpdateOneID(a.ID).
		SetStatus(agent.Status(a.Status))
	if a.PreferredConfigID != "" {
		upd.SetPreferredConfigID(a.PreferredConfigID)
	} else {
		upd.ClearPreferredConfigID()
	}
	if a.SavedConfigID != "" {
		upd.SetSavedConfigID(a.SavedConfigID)
	} else {
		upd.ClearSavedConfigID()
	}

	if _, err := upd.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return &agents.ErrAgentNotFound{ID: a.ID}
		}
		return fmt.Errorf("failed to update agent %s: %w", a.ID, err)
	}
	return nil
}

func agentFromRow(row *ent.Agent) *agents.Agent {
	a := &agents.Agent{
		ID:               row.ID,
		Tier:             hierarchy.TierOf(row.ID),
		ParentID:         row.ParentID,
		Status:           models.AgentStatus(row.Status),
		Persistent:       row.Persistent,
		Ethos:            row.Ethos,
		RecentViolations: row.RecentViolations,
		CreatedAt:        row.CreatedAt,
	}
	if row.PreferredConfigID != nil {
		a.PreferredConfigID = *row.PreferredConfigID
	}
	if row.LastHeartbeatAt != nil {
		a.LastHeartbeatAt = *row.LastHeartbeatAt
	}
	return a
}

func allocatorRecordFromRow(row *ent.Agent) *allocator.AgentRecord {
	rec := &allocator.AgentRecord{
		ID:         row.ID,
		Tier:       hierarchy.TierOf(row.ID),
		Status:     models.AgentStatus(row.Status),
		Persistent: row.Persistent,
	}
	if row.PreferredConfigID != nil {
		rec.PreferredConfigID = *row.PreferredConfigID
	}
	if row.SavedConfigID != nil {
		rec.SavedConfigID = *row.SavedConfigID
	}
	return rec
}
