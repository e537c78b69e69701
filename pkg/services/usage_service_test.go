package services

import (
	"context"
	"testing"
	"time"

	"github.com/agentium/agentium/pkg/keypool"
	"github.com/agentium/agentium/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageLogAndDailyAggregate(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	keys := NewKeyStoreService(client)
	svc := NewUsageService(client)
	ctx := context.Background()

	key, err := keys.CreateKey(ctx, &keypool.Key{Provider: "openai", EncryptedSecret: "enc", Active: true})
	require.NoError(t, err)

	require.NoError(t, svc.Log(ctx, UsageRecord{
		KeyID: key.ID, AgentID: "30001", Model: "gpt-4o-mini",
		InputTokens: 1200, OutputTokens: 300, Cost: 0.02,
	}))
	require.NoError(t, svc.Log(ctx, UsageRecord{
		KeyID: key.ID, AgentID: "20001", Model: "gpt-4o",
		InputTokens: 4000, OutputTokens: 1000, Cost: 0.11,
	}))

	usage, err := svc.ForDay(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 6500, usage.Tokens)
	assert.InDelta(t, 0.13, usage.Cost, 1e-9)

	// Yesterday is empty.
	usage, err = svc.ForDay(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, usage.Tokens)
	assert.Equal(t, 0.0, usage.Cost)
}

func TestUsageLogValidation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewUsageService(client)
	ctx := context.Background()

	err := svc.Log(ctx, UsageRecord{Model: "gpt-4o"})
	assert.True(t, IsValidationError(err))

	err = svc.Log(ctx, UsageRecord{KeyID: "k"})
	assert.True(t, IsValidationError(err))
}

func TestUsageForAgent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	keys := NewKeyStoreService(client)
	svc := NewUsageService(client)
	ctx := context.Background()

	key, err := keys.CreateKey(ctx, &keypool.Key{Provider: "anthropic", EncryptedSecret: "enc", Active: true})
	require.NoError(t, err)

	require.NoError(t, svc.Log(ctx, UsageRecord{KeyID: key.ID, AgentID: "30001", Model: "claude-haiku-3-5", InputTokens: 10}))
	require.NoError(t, svc.Log(ctx, UsageRecord{KeyID: key.ID, AgentID: "30002", Model: "claude-haiku-3-5", InputTokens: 20}))

	rows, err := svc.ForAgent(ctx, "30001", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 10, rows[0].InputTokens)
}
