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

func TestKeyStoreCreateAndGet(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewKeyStoreService(client)
	ctx := context.Background()

	created, err := svc.CreateKey(ctx, &keypool.Key{
		Provider:        "anthropic",
		EncryptedSecret: "enc:abc",
		Priority:        10,
		MonthlyBudget:   250,
		Active:          true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, keypool.StatusOK, created.Status)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "anthropic", got.Provider)
	assert.Equal(t, "enc:abc", got.EncryptedSecret)
	assert.Equal(t, 10, got.Priority)
	assert.Equal(t, 250.0, got.MonthlyBudget)
	assert.True(t, got.Active)
	assert.Nil(t, got.CooldownUntil)
}

func TestKeyStoreCreateValidation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewKeyStoreService(client)
	ctx := context.Background()

	_, err := svc.CreateKey(ctx, &keypool.Key{EncryptedSecret: "enc:abc"})
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateKey(ctx, &keypool.Key{Provider: "openai"})
	assert.True(t, IsValidationError(err))
}

func TestKeyStoreGetNotFound(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewKeyStoreService(client)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKeyStoreUpdateAccounting(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewKeyStoreService(client)
	ctx := context.Background()

	created, err := svc.CreateKey(ctx, &keypool.Key{
		Provider:        "openai",
		EncryptedSecret: "enc:def",
		Active:          true,
	})
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	cooldown := now.Add(10 * time.Minute)
	created.ConsecutiveFailures = 3
	created.LastFailureAt = &now
	created.CooldownUntil = &cooldown
	created.CurrentSpend = 12.5
	created.Status = keypool.StatusError
	require.NoError(t, svc.Update(ctx, created))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.ConsecutiveFailures)
	require.NotNil(t, got.CooldownUntil)
	assert.WithinDuration(t, cooldown, *got.CooldownUntil, time.Second)
	assert.Equal(t, 12.5, got.CurrentSpend)
	assert.Equal(t, keypool.StatusError, got.Status)

	// Recovery clears the failure timestamps.
	got.ConsecutiveFailures = 0
	got.LastFailureAt = nil
	got.CooldownUntil = nil
	got.Status = keypool.StatusOK
	require.NoError(t, svc.Update(ctx, got))

	got, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.LastFailureAt)
	assert.Nil(t, got.CooldownUntil)
	assert.Equal(t, keypool.StatusOK, got.Status)
}

func TestKeyStoreListByProvider(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewKeyStoreService(client)
	ctx := context.Background()

	_, err := svc.CreateKey(ctx, &keypool.Key{Provider: "anthropic", EncryptedSecret: "a", Active: true})
	require.NoError(t, err)
	_, err = svc.CreateKey(ctx, &keypool.Key{Provider: "anthropic", EncryptedSecret: "b", Active: true})
	require.NoError(t, err)
	_, err = svc.CreateKey(ctx, &keypool.Key{Provider: "openai", EncryptedSecret: "c", Active: true})
	require.NoError(t, err)

	anthropic, err := svc.ListByProvider(ctx, "anthropic")
	require.NoError(t, err)
	assert.Len(t, anthropic, 2)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
