package services

import (
	"context"
	"testing"

	"github.com/agentium/agentium/pkg/capability"
	"github.com/agentium/agentium/test/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapabilityOverridesRoundTrip(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	agentSvc := NewAgentService(client)
	seedChain(t, agentSvc)
	svc := NewCapabilityOverrideService(client)
	ctx := context.Background()

	empty, err := svc.Get(ctx, "30001")
	require.NoError(t, err)
	assert.Empty(t, empty.Granted)
	assert.Empty(t, empty.Revoked)

	err = svc.Put(ctx, "30001", capability.Overrides{
		Granted: capability.NewSet(capability.NetworkAccess),
		Revoked: capability.NewSet(capability.ExecuteCode),
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "30001")
	require.NoError(t, err)
	assert.True(t, got.Granted.Has(capability.NetworkAccess))
	assert.True(t, got.Revoked.Has(capability.ExecuteCode))

	// Put replaces the whole override set.
	err = svc.Put(ctx, "30001", capability.Overrides{
		Granted: capability.NewSet(capability.ReadKnowledge),
		Revoked: capability.NewSet(),
	})
	require.NoError(t, err)

	got, err = svc.Get(ctx, "30001")
	require.NoError(t, err)
	assert.False(t, got.Granted.Has(capability.NetworkAccess))
	assert.True(t, got.Granted.Has(capability.ReadKnowledge))
	assert.Empty(t, got.Revoked)
}

func TestCapabilityOverridesSkipUnknown(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	agentSvc := NewAgentService(client)
	seedChain(t, agentSvc)
	svc := NewCapabilityOverrideService(client)
	ctx := context.Background()

	// A row from a build that knew more capabilities than this one.
	_, err := client.CapabilityOverride.Create().
		SetID(uuid.New().String()).
		SetAgentID("30001").
		SetCapability("time_travel").
		SetMode("grant").
		Save(ctx)
	require.NoError(t, err)

	got, err := svc.Get(ctx, "30001")
	require.NoError(t, err)
	assert.Empty(t, got.Granted)
}

func TestModelConfigEnsureIdempotent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	agentSvc := NewAgentService(client)
	seedChain(t, agentSvc)
	svc := NewModelConfigService(client)
	ctx := context.Background()

	first, err := svc.Ensure(ctx, "30001", "gpt-4o-mini")
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := svc.Ensure(ctx, "30001", "gpt-4o-mini")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := svc.Ensure(ctx, "30001", "claude-haiku-3-5")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestModelConfigSetLimits(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	agentSvc := NewAgentService(client)
	seedChain(t, agentSvc)
	svc := NewModelConfigService(client)
	ctx := context.Background()

	id, err := svc.Ensure(ctx, "30001", "gpt-4o")
	require.NoError(t, err)
	require.NoError(t, svc.SetLimits(ctx, id, 0.2, 2048))

	row, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0.2, row.Temperature)
	assert.Equal(t, 2048, row.MaxTokens)
}
