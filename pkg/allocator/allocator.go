// Package allocator assigns model configurations to agents: task
// classification, per-tier model preference, and the system-wide idle
// protocol that shifts persistent agents onto locally served models.
package allocator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/agentium/agentium/pkg/models"
)

// idleModel is the locally served model persistent agents fall back to
// while the system is idling.
const idleModel = "llama3.1:8b"

// AgentRecord is the allocator's view of an agent.
type AgentRecord struct {
	ID                string
	Tier              hierarchy.Tier
	Status            models.AgentStatus
	PreferredConfigID string
	// SavedConfigID stashes the pre-idle configuration for restoration
	// on wake.
	SavedConfigID string
	Persistent    bool
	// CurrentTaskDescription drives re-allocation on wake when no saved
	// configuration exists.
	CurrentTaskDescription string
}

// Directory is the agent registry surface the allocator mutates.
type Directory interface {
	Get(ctx context.Context, id string) (*AgentRecord, error)
	List(ctx context.Context) ([]*AgentRecord, error)
	Update(ctx context.Context, a *AgentRecord) error
}

// ConfigStore ensures model configuration records exist.
type ConfigStore interface {
	// Ensure returns the id of the agent's configuration record for the
	// model, creating the record when absent.
	Ensure(ctx context.Context, agentID, model string) (string, error)
}

// tierPreferences maps tier and workload class to a model. Higher tiers
// get stronger models for the same class.
var tierPreferences = map[hierarchy.Tier]map[TaskClass]string{
	hierarchy.TierHead: {
		ClassCode:     "claude-opus-4",
		ClassAnalysis: "claude-opus-4",
		ClassCreative: "claude-sonnet-4",
		ClassSimple:   "claude-sonnet-4",
	},
	hierarchy.TierCouncil: {
		ClassCode:     "claude-sonnet-4",
		ClassAnalysis: "claude-sonnet-4",
		ClassCreative: "claude-sonnet-4",
		ClassSimple:   "claude-haiku-3-5",
	},
	hierarchy.TierLead: {
		ClassCode:     "claude-sonnet-4",
		ClassAnalysis: "gpt-4o",
		ClassCreative: "gpt-4o",
		ClassSimple:   "claude-haiku-3-5",
	},
	hierarchy.TierTask: {
		ClassCode:     "gpt-4o-mini",
		ClassAnalysis: "gpt-4o-mini",
		ClassCreative: "claude-haiku-3-5",
		ClassSimple:   "llama3.1:8b",
	},
}

// Allocation is the outcome of a model assignment.
type Allocation struct {
	AgentID  string
	Model    string
	ConfigID string
	Class    TaskClass
}

// Allocator assigns model configurations.
type Allocator struct {
	directory Directory
	configs   ConfigStore
	log       *slog.Logger
}

// New creates an allocator.
func New(directory Directory, configs ConfigStore) *Allocator {
	return &Allocator{
		directory: directory,
		configs:   configs,
		log:       slog.Default().With("component", "model-allocator"),
	}
}

// ModelFor returns the preferred model for a tier and workload class.
func ModelFor(tier hierarchy.Tier, class TaskClass) string {
	prefs, ok := tierPreferences[tier]
	if !ok {
		return idleModel
	}
	return prefs[class]
}

// Allocate classifies the task, picks the tier-preferred model, ensures the
// agent's configuration record for it exists, and stores it as the agent's
// preferred configuration.
func (a *Allocator) Allocate(ctx context.Context, agentID, taskDescription string) (*Allocation, error) {
	agent, err := a.directory.Get(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up agent %s: %w", agentID, err)
	}

	class := Classify(taskDescription)
	model := ModelFor(agent.Tier, class)

	configID, err := a.configs.Ensure(ctx, agentID, model)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure model config for agent %s: %w", agentID, err)
	}

	agent.PreferredConfigID = configID
	if err := a.directory.Update(ctx, agent); err != nil {
		return nil, fmt.Errorf("failed to store preferred config for agent %s: %w", agentID, err)
	}

	a.log.Info("Model allocated",
		"agent_id", agentID,
		"class", string(class),
		"model", model,
		"config_id", configID)

	return &Allocation{AgentID: agentID, Model: model, ConfigID: configID, Class: class}, nil
}

// EnterIdleMode shifts the system into low-cost idling. Persistent agents
// stash their configuration and move to the local model with status
// idle_working; every other active agent is paused.
func (a *Allocator) EnterIdleMode(ctx context.Context) error {
	agents, err := a.directory.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list agents for idle mode: %w", err)
	}

	for _, agent := range agents {
		switch {
		case agent.Persistent:
			configID, err := a.configs.Ensure(ctx, agent.ID, idleModel)
			if err != nil {
				return fmt.Errorf("failed to ensure idle config for agent %s: %w", agent.ID, err)
			}
			agent.SavedConfigID = agent.PreferredConfigID
			agent.PreferredConfigID = configID
			agent.Status = models.AgentStatusIdleWorking
		case agent.Status == models.AgentStatusActive || agent.Status == models.AgentStatusWorking:
			agent.Status = models.AgentStatusIdlePaused
		default:
			continue
		}
		if err := a.directory.Update(ctx, agent); err != nil {
			return fmt.Errorf("failed to idle agent %s: %w", agent.ID, err)
		}
	}

	a.log.Info("System entered idle mode", "agents", len(agents))
	return nil
}

// WakeFromIdle restores agents to active duty. Persistent agents get back
// their stashed configuration, or a fresh allocation against their current
// task when none was stashed.
func (a *Allocator) WakeFromIdle(ctx context.Context) error {
	agents, err := a.directory.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list agents for wake: %w", err)
	}

	for _, agent := range agents {
		switch agent.Status {
		case models.AgentStatusIdleWorking:
			if agent.SavedConfigID != "" {
				agent.PreferredConfigID = agent.SavedConfigID
				agent.SavedConfigID = ""
			} else {
				class := Classify(agent.CurrentTaskDescription)
				model := ModelFor(agent.Tier, class)
				configID, err := a.configs.Ensure(ctx, agent.ID, model)
				if err != nil {
					return fmt.Errorf("failed to reallocate model for agent %s: %w", agent.ID, err)
				}
				agent.PreferredConfigID = configID
			}
			agent.Status = models.AgentStatusActive
		case models.AgentStatusIdlePaused:
			agent.Status = models.AgentStatusActive
		default:
			continue
		}
		if err := a.directory.Update(ctx, agent); err != nil {
			return fmt.Errorf("failed to wake agent %s: %w", agent.ID, err)
		}
	}

	a.log.Info("System woke from idle mode", "agents", len(agents))
	return nil
}
