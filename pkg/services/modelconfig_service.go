package services

import (
	"context"
	"fmt"

	"github.com/agentium/agentium/ent"
	"github.com/agentium/agentium/ent/modelconfig"
	"github.com/google/uuid"
)

// ModelConfigService manages the (agent, model) configuration records the
// allocator points agents at.
type ModelConfigService struct {
	client *ent.Client
}

// NewModelConfigService creates a new ModelConfigService.
func NewModelConfigService(client *ent.Client) *ModelConfigService {
	return &ModelConfigService{client: client}
}

// Ensure implements allocator.ConfigStore: it returns the id of the
// agent's configuration record for the model, creating it when absent. A
// concurrent create racing on the unique (agent, model) index resolves to
// the winner's record.
func (s *ModelConfigService) Ensure(ctx context.Context, agentID, model string) (string, error) {
	if agentID == "" {
		return "", NewValidationError("agent_id", "agent ID is required")
	}
	if model == "" {
		return "", NewValidationError("model", "model is required")
	}

	row, err := s.client.ModelConfig.Query().
		Where(modelconfig.AgentID(agentID), modelconfig.Model(model)).
		Only(ctx)
	if err == nil {
		return row.ID, nil
	}
	if !ent.IsNotFound(err) {
		return "", fmt.Errorf("failed to look up config for %s/%s: %w", agentID, model, err)
	}

	id := uuid.New().String()
	_, err = s.client.ModelConfig.Create().
		SetID(id).
		SetAgentID(agentID).
		SetModel(model).
		Save(ctx)
	if err == nil {
		return id, nil
	}
	if !ent.IsConstraintError(err) {
		return "", fmt.Errorf("failed to create config for %s/%s: %w", agentID, model, err)
	}

	row, qerr := s.client.ModelConfig.Query().
		Where(modelconfig.AgentID(agentID), modelconfig.Model(model)).
		Only(ctx)
	if qerr != nil {
		return "", fmt.Errorf("failed to resolve config race for %s/%s: %w", agentID, model, qerr)
	}
	return row.ID, nil
}

// Get returns the configuration record by id.
func (s *ModelConfigService) Get(ctx context.Context, id string) (*ent.ModelConfig, error) {
	row, err := s.client.ModelConfig.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("model config %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get model config %s: %w", id, err)
	}
	return row, nil
}

// SetLimits updates the optional sampling limits on a configuration.
func (s *ModelConfigService) SetLimits(ctx context.Context, id string, temperature float64, maxTokens int) error {
	upd := s.client.ModelConfig.UpdateOneID(id)
	if temperature > 0 {
		upd.SetTemperature(temperature)
	}
	if maxTokens > 0 {
		upd.SetMaxTokens(maxTokens)
	}
	if err := upd.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("model config %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to update model config %s: %w", id, err)
	}
	return nil
}
