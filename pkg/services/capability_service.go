package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/agentium/agentium/ent"
	"github.com/agentium/agentium/ent/capabilityoverride"
	"github.com/agentium/agentium/pkg/capability"
	"github.com/google/uuid"
)

// CapabilityOverrideService persists per-agent capability overrides. One
// row per (agent, capability); the mode column records grant or revoke.
type CapabilityOverrideService struct {
	client *ent.Client
	log    *slog.Logger
}

// NewCapabilityOverrideService creates a new CapabilityOverrideService.
func NewCapabilityOverrideService(client *ent.Client) *CapabilityOverrideService {
	return &CapabilityOverrideService{
		client: client,
		log:    slog.Default().With("component", "capability-overrides"),
	}
}

// Get implements capability.OverrideStore. Rows naming a capability this
// build no longer defines are skipped with a warning.
func (s *CapabilityOverrideService) Get(ctx context.Context, agentID string) (capability.Overrides, error) {
	rows, err := s.client.CapabilityOverride.Query().
		Where(capabilityoverride.AgentID(agentID)).
		All(ctx)
	if err != nil {
		return capability.Overrides{}, fmt.Errorf("failed to load overrides of %s: %w", agentID, err)
	}

	o := capability.Overrides{
		Granted: capability.NewSet(),
		Revoked: capability.NewSet(),
	}
	for _, row := range rows {
		c, err := capability.Parse(row.Capability)
		if err != nil {
			s.log.Warn("Skipping unknown capability override",
				"agent_id", agentID, "capability", row.Capability)
			continue
		}
		switch row.Mode {
		case capabilityoverride.ModeGrant:
			o.Granted[c] = struct{}{}
		case capabilityoverride.ModeRevoke:
			o.Revoked[c] = struct{}{}
		}
	}
	return o, nil
}

// Put implements capability.OverrideStore. The agent's override rows are
// replaced wholesale in one transaction.
func (s *CapabilityOverrideService) Put(ctx context.Context, agentID string, o capability.Overrides) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.CapabilityOverride.Delete().
		Where(capabilityoverride.AgentID(agentID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear overrides of %s: %w", agentID, err)
	}

	for c := range o.Granted {
		if err := createOverride(ctx, tx, agentID, c, capabilityoverride.ModeGrant); err != nil {
			return err
		}
	}
	for c := range o.Revoked {
		if err := createOverride(ctx, tx, agentID, c, capabilityoverride.ModeRevoke); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit overrides of %s: %w", agentID, err)
	}
	return nil
}

func createOverride(ctx context.Context, tx *ent.Tx, agentID string, c capability.Capability, mode capabilityoverride.Mode) error {
	_, err := tx.CapabilityOverride.Create().
		SetID(uuid.New().String()).
		SetAgentID(agentID).
		SetCapability(string(c)).
		SetMode(mode).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to store %s override %s for %s: %w", mode, c, agentID, err)
	}
	return nil
}
