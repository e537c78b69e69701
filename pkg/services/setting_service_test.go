package services

import (
	"context"
	"testing"

	"github.com/agentium/agentium/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingUpsert(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSettingService(client)
	ctx := context.Background()

	_, err := svc.Get(ctx, SettingDailyTokenLimit)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Set(ctx, SettingDailyTokenLimit, "500000", "admin"))
	got, err := svc.Get(ctx, SettingDailyTokenLimit)
	require.NoError(t, err)
	assert.Equal(t, "500000", got)

	// Second Set takes the update path.
	require.NoError(t, svc.Set(ctx, SettingDailyTokenLimit, "750000", "admin"))
	got, err = svc.Get(ctx, SettingDailyTokenLimit)
	require.NoError(t, err)
	assert.Equal(t, "750000", got)
}

func TestSettingValidation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSettingService(client)

	err := svc.Set(context.Background(), "", "1", "admin")
	assert.True(t, IsValidationError(err))
}

func TestDailyLimitsDefaultToUnlimited(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSettingService(client)
	ctx := context.Background()

	tokens, err := svc.DailyTokenLimit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, tokens)

	cost, err := svc.DailyCostLimit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cost)

	require.NoError(t, svc.Set(ctx, SettingDailyTokenLimit, "1000000", "admin"))
	require.NoError(t, svc.Set(ctx, SettingDailyCostLimit, "75.5", "admin"))

	tokens, err = svc.DailyTokenLimit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1000000, tokens)

	cost, err = svc.DailyCostLimit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 75.5, cost)
}

func TestDailyLimitRejectsGarbage(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSettingService(client)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, SettingDailyTokenLimit, "lots", "admin"))
	_, err := svc.DailyTokenLimit(ctx)
	assert.Error(t, err)
}
