package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinConfigIsValid(t *testing.T) {
	builtin := GetBuiltinConfig()

	// Every built-in model references a built-in provider.
	for name, model := range builtin.Models {
		_, ok := builtin.Providers[model.Provider]
		assert.True(t, ok, "model %s references unknown provider %s", name, model.Provider)
	}

	// Every built-in provider is well formed.
	for name, provider := range builtin.Providers {
		assert.True(t, provider.Type.IsValid(), "provider %s", name)
		assert.NotEmpty(t, provider.DefaultModel, "provider %s", name)
	}

	_, ok := builtin.Providers[builtin.DefaultProvider]
	assert.True(t, ok)

	require.NotEmpty(t, builtin.Constitution)
	for _, doc := range builtin.Constitution {
		assert.NotEmpty(t, doc.Name)
		assert.NotEmpty(t, doc.Text)
	}
}

func TestBuiltinConfigReturnsFreshInstance(t *testing.T) {
	a := GetBuiltinConfig()
	b := GetBuiltinConfig()

	a.Providers["anthropic"] = ProviderConfig{Type: ProviderTypeOllama}
	assert.Equal(t, ProviderTypeAnthropic, b.Providers["anthropic"].Type)
}
