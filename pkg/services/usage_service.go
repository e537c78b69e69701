package services

import (
	"context"
	"fmt"
	"time"

	"github.com/agentium/agentium/ent"
	"github.com/agentium/agentium/ent/apiusagelog"
	"github.com/agentium/agentium/pkg/llm"
	"github.com/google/uuid"
)

// UsageRecord is one provider call's accounting.
type UsageRecord struct {
	KeyID        string
	AgentID      string
	Model        string
	InputTokens  int
	OutputTokens int
	Cost         float64
}

// DailyUsage is the aggregate over one UTC day, the basis for the daily
// budget check.
type DailyUsage struct {
	Tokens int
	Cost   float64
}

// UsageService logs per-call provider usage and answers daily aggregate
// queries.
type UsageService struct {
	client *ent.Client
}

// NewUsageService creates a new UsageService.
func NewUsageService(client *ent.Client) *UsageService {
	return &UsageService{client: client}
}

// Log appends one usage row.
func (s *UsageService) Log(ctx context.Context, rec UsageRecord) error {
	if rec.KeyID == "" {
		return NewValidationError("key_id", "key ID is required")
	}
	if rec.Model == "" {
		return NewValidationError("model", "model is required")
	}

	create := s.client.APIUsageLog.Create().
		SetID(uuid.New().String()).
		SetKeyID(rec.KeyID).
		SetModel(rec.Model).
		SetInputTokens(rec.InputTokens).
		SetOutputTokens(rec.OutputTokens).
		SetCost(rec.Cost)
	if rec.AgentID != "" {
		create.SetAgentID(rec.AgentID)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to log api usage: %w", err)
	}
	return nil
}

// LogCall implements llm.UsageSink.
func (s *UsageService) LogCall(ctx context.Context, call llm.CallLog) error {
	return s.Log(ctx, UsageRecord{
		KeyID:        call.KeyID,
		AgentID:      call.AgentID,
		Model:        call.Model,
		InputTokens:  call.InputTokens,
		OutputTokens: call.OutputTokens,
		Cost:         call.Cost,
	})
}

// ForDay returns the aggregate usage over the UTC day containing t.
func (s *UsageService) ForDay(ctx context.Context, t time.Time) (*DailyUsage, error) {
	start := t.UTC().Truncate(24 * time.Hour)
	end := start.Add(24 * time.Hour)

	rows, err := s.client.APIUsageLog.Query().
		Where(
			apiusagelog.CreatedAtGTE(start),
			apiusagelog.CreatedAtLT(end),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load usage for %s: %w", start.Format("2006-01-02"), err)
	}

	usage := &DailyUsage{}
	for _, row := range rows {
		usage.Tokens += row.InputTokens + row.OutputTokens
		usage.Cost += row.Cost
	}
	return usage, nil
}

// ForAgent returns the most recent usage rows attributed to an agent,
// newest first.
func (s *UsageService) ForAgent(ctx context.Context, agentID string, limit int) ([]*ent.APIUsageLog, error) {
	rows, err := s.client.APIUsageLog.Query().
		Where(apiusagelog.AgentID(agentID)).
		Order(ent.Desc(apiusagelog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list usage of %s: %w", agentID, err)
	}
	return rows, nil
}

// DeleteOlderThan removes usage rows created before the cutoff and returns
// how many were removed. Rows inside the current budget day are never
// eligible because retention windows are measured in whole days.
func (s *UsageService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.APIUsageLog.Delete().
		Where(apiusagelog.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune usage logs: %w", err)
	}
	return n, nil
}
