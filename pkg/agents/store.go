package agents

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/agentium/agentium/pkg/models"
)

// Agent is the persisted agent record.
type Agent struct {
	ID                string
	Tier              hierarchy.Tier
	ParentID          string
	Status            models.AgentStatus
	Persistent        bool
	Ethos             string
	PreferredConfigID string
	RecentViolations  int
	LastHeartbeatAt   time.Time
	CreatedAt         time.Time
}

// Store persists agent records. The ent-backed implementation lives in
// pkg/services.
type Store interface {
	Get(ctx context.Context, id string) (*Agent, error)
	Create(ctx context.Context, a *Agent) error
	Update(ctx context.Context, a *Agent) error
	ListByParent(ctx context.Context, parentID string) ([]*Agent, error)
	// NextID allocates the next unused identifier in the given tier.
	NextID(ctx context.Context, tier hierarchy.Tier) (string, error)
}

// ErrAgentNotFound is returned by lookups of unknown agents.
type ErrAgentNotFound struct {
	ID string
}

func (e *ErrAgentNotFound) Error() string {
	return fmt.Sprintf("agent %s not found", e.ID)
}

// MemoryStore is an in-memory Store for tests and single-process use.
type MemoryStore struct {
	mu     sync.RWMutex
	agents map[string]*Agent
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{agents: make(map[string]*Agent)}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, id string) (*Agent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.agents[id]
	if !ok {
		return nil, &ErrAgentNotFound{ID: id}
	}
	cp := *a
	return &cp, nil
}

// Create implements Store.
func (s *MemoryStore) Create(_ context.Context, a *Agent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.agents[a.ID]; exists {
		return fmt.Errorf("agent %s already exists", a.ID)
	}
	cp := *a
	s.agents[a.ID] = &cp
	return nil
}

// Update implements Store.
func (s *MemoryStore) Update(_ context.Context, a *Agent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.agents[a.ID]; !exists {
		return &ErrAgentNotFound{ID: a.ID}
	}
	cp := *a
	s.agents[a.ID] = &cp
	return nil
}

// ListByParent implements Store. Results are ordered by identifier.
func (s *MemoryStore) ListByParent(_ context.Context, parentID string) ([]*Agent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Agent
	for _, a := range s.agents {
		if a.ParentID == parentID {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// NextID implements Store. Identifiers are dense per tier starting at 1.
func (s *MemoryStore) NextID(_ context.Context, tier hierarchy.Tier) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for n := 1; n <= 9999; n++ {
		id := fmt.Sprintf("%d%04d", int(tier), n)
		if _, exists := s.agents[id]; !exists {
			return id, nil
		}
	}
	return "", fmt.Errorf("tier %s identifier space exhausted", tier)
}

// liveStatuses are the states in which an agent is expected to heartbeat.
var liveStatuses = []models.AgentStatus{
	models.AgentStatusActive,
	models.AgentStatusWorking,
	models.AgentStatusReviewing,
	models.AgentStatusDeliberating,
}

// ListStaleActive implements StaleLister. An agent without any heartbeat
// is judged by its creation time.
func (s *MemoryStore) ListStaleActive(_ context.Context, cutoff time.Time) ([]*Agent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Agent
	for _, a := range s.agents {
		live := false
		for _, st := range liveStatuses {
			if a.Status == st {
				live = true
				break
			}
		}
		if !live {
			continue
		}
		last := a.LastHeartbeatAt
		if last.IsZero() {
			last = a.CreatedAt
		}
		if last.Before(cutoff) {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
