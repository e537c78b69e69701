package capability

import (
	"context"
	"fmt"
	"sync"

	"github.com/agentium/agentium/pkg/audit"
	"github.com/agentium/agentium/pkg/hierarchy"
)

// DeniedError reports a failed capability check.
type DeniedError struct {
	AgentID    string
	Capability Capability
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("agent %s lacks capability %q", e.AgentID, e.Capability)
}

// Overrides are the per-agent custom capability sets. Granted and revoked
// are kept disjoint by the registry.
type Overrides struct {
	Granted Set
	Revoked Set
}

// OverrideStore persists per-agent overrides. The ent-backed implementation
// lives in pkg/services.
type OverrideStore interface {
	Get(ctx context.Context, agentID string) (Overrides, error)
	Put(ctx context.Context, agentID string, o Overrides) error
}

// Registry computes effective capability sets and applies grant/revoke
// operations with authority checks.
type Registry struct {
	store OverrideStore
	audit audit.Recorder
}

// NewRegistry creates a capability registry.
func NewRegistry(store OverrideStore, recorder audit.Recorder) *Registry {
	return &Registry{store: store, audit: recorder}
}

// Effective returns (base(tier) ∪ granted) \ revoked for the agent.
func (r *Registry) Effective(ctx context.Context, agentID string) (Set, error) {
	tier, err := hierarchy.ParseID(agentID)
	if err != nil {
		return nil, err
	}
	o, err := r.store.Get(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load overrides for %s: %w", agentID, err)
	}
	return BaseFor(tier).Union(o.Granted).Subtract(o.Revoked), nil
}

// Can checks whether the agent's effective set contains the capability. On
// deny an audit entry is emitted at INFO level; when raiseOnDeny is set the
// check also fails with a DeniedError.
func (r *Registry) Can(ctx context.Context, agentID string, c Capability, raiseOnDeny bool) (bool, error) {
	effective, err := r.Effective(ctx, agentID)
	if err != nil {
		return false, err
	}
	if effective.Has(c) {
		return true, nil
	}

	r.audit.Record(ctx, audit.Entry{
		Kind:     audit.KindCapabilityDenied,
		Severity: audit.SeverityInfo,
		ActorID:  agentID,
		Details:  map[string]any{"capability": string(c)},
	})
	if raiseOnDeny {
		return false, &DeniedError{AgentID: agentID, Capability: c}
	}
	return false, nil
}

// Grant adds a capability to the target's grants. The granter must itself
// possess the grant_capability meta-capability. Granting removes the
// capability from the target's revokes, keeping the two sets disjoint.
func (r *Registry) Grant(ctx context.Context, targetID string, c Capability, granterID, reason string) error {
	if _, err := r.Can(ctx, granterID, GrantCapability, true); err != nil {
		return err
	}
	if _, err := hierarchy.ParseID(targetID); err != nil {
		return err
	}

	o, err := r.store.Get(ctx, targetID)
	if err != nil {
		return fmt.Errorf("failed to load overrides for %s: %w", targetID, err)
	}
	if o.Granted == nil {
		o.Granted = NewSet()
	}
	o.Granted[c] = struct{}{}
	delete(o.Revoked, c)
	if err := r.store.Put(ctx, targetID, o); err != nil {
		return fmt.Errorf("failed to persist overrides for %s: %w", targetID, err)
	}

	r.audit.Record(ctx, audit.Entry{
		Kind:     audit.KindCapabilityGranted,
		Severity: audit.SeverityInfo,
		ActorID:  granterID,
		Details:  map[string]any{"target": targetID, "capability": string(c), "reason": reason},
	})
	return nil
}

// Revoke removes a capability from the target. The revoker must possess
// revoke_capability. The Head agent's baseline capabilities cannot be
// stripped.
func (r *Registry) Revoke(ctx context.Context, targetID string, c Capability, revokerID, reason string) error {
	if _, err := r.Can(ctx, revokerID, RevokeCapability, true); err != nil {
		return err
	}
	tier, err := hierarchy.ParseID(targetID)
	if err != nil {
		return err
	}
	if tier == hierarchy.TierHead && BaseFor(hierarchy.TierHead).Has(c) {
		return fmt.Errorf("cannot revoke baseline capability %q from the Head agent", c)
	}

	o, err := r.store.Get(ctx, targetID)
	if err != nil {
		return fmt.Errorf("failed to load overrides for %s: %w", targetID, err)
	}
	if o.Revoked == nil {
		o.Revoked = NewSet()
	}
	o.Revoked[c] = struct{}{}
	delete(o.Granted, c)
	if err := r.store.Put(ctx, targetID, o); err != nil {
		return fmt.Errorf("failed to persist overrides for %s: %w", targetID, err)
	}

	r.audit.Record(ctx, audit.Entry{
		Kind:     audit.KindCapabilityRevoked,
		Severity: audit.SeverityInfo,
		ActorID:  revokerID,
		Details:  map[string]any{"target": targetID, "capability": string(c), "reason": reason},
	})
	return nil
}

// RevokeAll strips every non-base capability from the target and revokes
// all granted extras. Forbidden against the Head.
func (r *Registry) RevokeAll(ctx context.Context, targetID, revokerID, reason string) error {
	if _, err := r.Can(ctx, revokerID, RevokeCapability, true); err != nil {
		return err
	}
	tier, err := hierarchy.ParseID(targetID)
	if err != nil {
		return err
	}
	if tier == hierarchy.TierHead {
		return fmt.Errorf("cannot revoke all capabilities from the Head agent")
	}

	o, err := r.store.Get(ctx, targetID)
	if err != nil {
		return fmt.Errorf("failed to load overrides for %s: %w", targetID, err)
	}
	// Every non-base capability goes away; prior targeted revocations of
	// base capabilities stay in force.
	o.Granted = NewSet()
	if err := r.store.Put(ctx, targetID, o); err != nil {
		return fmt.Errorf("failed to persist overrides for %s: %w", targetID, err)
	}
	r.audit.Record(ctx, audit.Entry{
		Kind:     audit.KindCapabilityRevoked,
		Severity: audit.SeverityInfo,
		ActorID:  revokerID,
		Details:  map[string]any{"target": targetID, "capability": "*", "reason": reason},
	})
	return nil
}

// MemoryOverrideStore is an in-memory OverrideStore for tests and
// stateless deployments.
type MemoryOverrideStore struct {
	mu        sync.Mutex
	overrides map[string]Overrides
}

// NewMemoryOverrideStore creates an empty store.
func NewMemoryOverrideStore() *MemoryOverrideStore {
	return &MemoryOverrideStore{overrides: make(map[string]Overrides)}
}

// Get returns the agent's overrides, empty when none are stored.
func (s *MemoryOverrideStore) Get(_ context.Context, agentID string) (Overrides, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.overrides[agentID]
	if !ok {
		return Overrides{Granted: NewSet(), Revoked: NewSet()}, nil
	}
	return Overrides{Granted: o.Granted.Clone(), Revoked: o.Revoked.Clone()}, nil
}

// Put stores the agent's overrides.
func (s *MemoryOverrideStore) Put(_ context.Context, agentID string, o Overrides) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[agentID] = Overrides{Granted: o.Granted.Clone(), Revoked: o.Revoked.Clone()}
	return nil
}
