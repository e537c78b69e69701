package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderRegistry(t *testing.T) {
	reg := NewProviderRegistry(map[string]*ProviderConfig{
		"anthropic": {Type: ProviderTypeAnthropic, APIKeyEnv: "ANTHROPIC_API_KEY", DefaultModel: "claude-sonnet-4-5"},
	})

	got, err := reg.Get("anthropic")
	require.NoError(t, err)
	assert.Equal(t, ProviderTypeAnthropic, got.Type)

	_, err = reg.Get("openai")
	assert.ErrorIs(t, err, ErrProviderNotFound)

	assert.True(t, reg.Has("anthropic"))
	assert.False(t, reg.Has("openai"))
	assert.Equal(t, 1, reg.Len())
}

func TestProviderRegistryGetAllReturnsCopy(t *testing.T) {
	reg := NewProviderRegistry(map[string]*ProviderConfig{
		"anthropic": {Type: ProviderTypeAnthropic},
	})

	all := reg.GetAll()
	delete(all, "anthropic")

	// Registry content is unaffected by mutation of the returned map.
	assert.True(t, reg.Has("anthropic"))
}

func TestModelRegistry(t *testing.T) {
	reg := NewModelRegistry(map[string]*ModelSpec{
		"gpt-4o":      {Provider: "openai", ContextWindow: 128_000},
		"gpt-4o-mini": {Provider: "openai", ContextWindow: 128_000},
	})

	got, err := reg.Get("gpt-4o")
	require.NoError(t, err)
	assert.Equal(t, "openai", got.Provider)

	_, err = reg.Get("claude-sonnet-4-5")
	assert.ErrorIs(t, err, ErrModelNotFound)

	assert.Equal(t, 2, reg.Len())
	assert.Len(t, reg.GetAll(), 2)
}

func TestRegistryConstructorCopiesInput(t *testing.T) {
	src := map[string]*ProviderConfig{
		"anthropic": {Type: ProviderTypeAnthropic},
	}
	reg := NewProviderRegistry(src)

	delete(src, "anthropic")
	assert.True(t, reg.Has("anthropic"))
}
