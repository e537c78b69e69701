package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/agentium/agentium/ent"
	"github.com/agentium/agentium/ent/execution"
	"github.com/agentium/agentium/pkg/executor"
)

// ExecutionService persists execution records. Only summaries cross the
// sandbox boundary, so the stored rows never contain raw result data.
type ExecutionService struct {
	client *ent.Client
}

// NewExecutionService creates a new ExecutionService.
func NewExecutionService(client *ent.Client) *ExecutionService {
	return &ExecutionService{client: client}
}

// Create persists the initial execution row.
func (s *ExecutionService) Create(ctx context.Context, rec *executor.Record) error {
	create := s.client.Execution.Create().
		SetID(rec.ID).
		SetAgentID(rec.AgentID).
		SetCode(rec.Code).
		SetLanguage(rec.Language).
		SetStatus(execution.Status(rec.Status)).
		SetStartedAt(rec.StartedAt)
	if rec.TaskID != "" {
		create.SetTaskID(rec.TaskID)
	}
	if len(rec.Dependencies) > 0 {
		create.SetDependencies(rec.Dependencies)
	}
	if rec.SandboxID != "" {
		create.SetSandboxID(rec.SandboxID)
	}
	if rec.SecurityResult != nil {
		m, err := toJSONMap(rec.SecurityResult)
		if err != nil {
			return fmt.Errorf("failed to encode security result: %w", err)
		}
		create.SetSecurityResult(m)
	}
	if rec.Error != "" {
		create.SetErrorMessage(rec.Error)
	}
	if !rec.CompletedAt.IsZero() {
		create.SetCompletedAt(rec.CompletedAt)
	}

	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("execution %s: %w", rec.ID, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create execution %s: %w", rec.ID, err)
	}
	return nil
}

// Update persists the mutable outcome fields of an execution.
func (s *ExecutionService) Update(ctx context.Context, rec *executor.Record) error {
	upd := s.client.Execution.UpdateOneID(rec.ID).
		SetStatus(execution.Status(rec.Status))
	if rec.SandboxID != "" {
		upd.SetSandboxID(rec.SandboxID)
	}
	if rec.Summary != nil {
		m, err := toJSONMap(rec.Summary)
		if err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		upd.SetSummary(m)
	}
	if rec.SecurityResult != nil {
		m, err := toJSONMap(rec.SecurityResult)
		if err != nil {
			return fmt.Errorf("failed to encode security result: %w", err)
		}
		upd.SetSecurityResult(m)
	}
	if rec.Error != "" {
		upd.SetErrorMessage(rec.Error)
	}
	if !rec.CompletedAt.IsZero() {
		upd.SetCompletedAt(rec.CompletedAt)
	}

	if _, err := upd.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("execution %s: %w", rec.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to update execution %s: %w", rec.ID, err)
	}
	return nil
}

// ListByAgent returns the agent's executions, newest first.
func (s *ExecutionService) ListByAgent(ctx context.Context, agentID string, limit int) ([]*ent.Execution, error) {
	rows, err := s.client.Execution.Query().
		Where(execution.AgentID(agentID)).
		Order(ent.Desc(execution.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions of %s: %w", agentID, err)
	}
	return rows, nil
}

// toJSONMap converts a struct into the generic map shape the JSON columns
// store.
func toJSONMap(v any) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
