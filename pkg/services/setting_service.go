package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/agentium/agentium/ent"
	"github.com/agentium/agentium/ent/systemsetting"
)

// Setting keys. Zero values mean unlimited, matching the per-key monthly
// budget convention.
const (
	SettingDailyTokenLimit = "daily_token_limit"
	SettingDailyCostLimit  = "daily_cost_limit"
)

// SettingService manages runtime-tunable key/value settings.
type SettingService struct {
	client *ent.Client
}

// NewSettingService creates a new SettingService.
func NewSettingService(client *ent.Client) *SettingService {
	return &SettingService{client: client}
}

// Get returns the raw value of a setting.
func (s *SettingService) Get(ctx context.Context, key string) (string, error) {
	row, err := s.client.SystemSetting.Get(ctx, key)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", fmt.Errorf("setting %s: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return row.Value, nil
}

// Set upserts a setting value, recording who changed it. Authorization is
// the caller's responsibility.
func (s *SettingService) Set(ctx context.Context, key, value, updatedBy string) error {
	if key == "" {
		return NewValidationError("key", "setting key is required")
	}

	n, err := s.client.SystemSetting.Update().
		Where(systemsetting.ID(key)).
		SetValue(value).
		SetUpdatedBy(updatedBy).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update setting %s: %w", key, err)
	}
	if n > 0 {
		return nil
	}

	_, err = s.client.SystemSetting.Create().
		SetID(key).
		SetValue(value).
		SetUpdatedBy(updatedBy).
		Save(ctx)
	if err == nil {
		return nil
	}
	if !ent.IsConstraintError(err) {
		return fmt.Errorf("failed to create setting %s: %w", key, err)
	}
	// Lost the create race; the row exists now.
	_, err = s.client.SystemSetting.Update().
		Where(systemsetting.ID(key)).
		SetValue(value).
		SetUpdatedBy(updatedBy).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update setting %s: %w", key, err)
	}
	return nil
}

// DailyTokenLimit returns the configured daily token cap. Zero means
// unlimited.
func (s *SettingService) DailyTokenLimit(ctx context.Context) (int, error) {
	raw, err := s.Get(ctx, SettingDailyTokenLimit)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("setting %s holds non-integer %q", SettingDailyTokenLimit, raw)
	}
	return n, nil
}

// DailyCostLimit returns the configured daily USD cap. Zero means
// unlimited.
func (s *SettingService) DailyCostLimit(ctx context.Context) (float64, error) {
	raw, err := s.Get(ctx, SettingDailyCostLimit)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("setting %s holds non-numeric %q", SettingDailyCostLimit, raw)
	}
	return f, nil
}
