package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeProviders(t *testing.T) {
	builtin := map[string]ProviderConfig{
		"anthropic": {Type: ProviderTypeAnthropic, APIKeyEnv: "ANTHROPIC_API_KEY", DefaultModel: "claude-sonnet-4-5"},
		"openai":    {Type: ProviderTypeOpenAI, APIKeyEnv: "OPENAI_API_KEY", DefaultModel: "gpt-4o"},
	}
	user := map[string]ProviderConfig{
		"openai": {Type: ProviderTypeOpenAI, APIKeyEnv: "CUSTOM_KEY", DefaultModel: "gpt-4o-mini"},
		"local":  {Type: ProviderTypeOllama, BaseURL: "http://gpu-box:11434", DefaultModel: "qwen2.5-coder:7b"},
	}

	merged := mergeProviders(builtin, user)

	require.Len(t, merged, 3)
	assert.Equal(t, "ANTHROPIC_API_KEY", merged["anthropic"].APIKeyEnv)
	assert.Equal(t, "CUSTOM_KEY", merged["openai"].APIKeyEnv)
	assert.Equal(t, "http://gpu-box:11434", merged["local"].BaseURL)
}

func TestMergeModels(t *testing.T) {
	builtin := map[string]ModelSpec{
		"gpt-4o": {Provider: "openai", ContextWindow: 128_000},
	}
	user := map[string]ModelSpec{
		"gpt-4o":  {Provider: "openai", ContextWindow: 200_000},
		"gpt-4.1": {Provider: "openai", ContextWindow: 1_000_000},
	}

	merged := mergeModels(builtin, user)

	require.Len(t, merged, 2)
	assert.Equal(t, 200_000, merged["gpt-4o"].ContextWindow)
	assert.Equal(t, 1_000_000, merged["gpt-4.1"].ContextWindow)
}

func TestMergeCriticsReplacesRosterPerSpecialty(t *testing.T) {
	builtin := map[CriticSpecialty][]string{
		CriticSpecialtyCode:   {"10002"},
		CriticSpecialtyOutput: {"10003"},
	}
	user := map[CriticSpecialty][]string{
		CriticSpecialtyCode: {"10005", "10006"},
	}

	merged := mergeCritics(builtin, user)

	assert.Equal(t, []string{"10005", "10006"}, merged[CriticSpecialtyCode])
	assert.Equal(t, []string{"10003"}, merged[CriticSpecialtyOutput])

	// The merged roster is a copy, not a view of the inputs.
	merged[CriticSpecialtyOutput][0] = "mutated"
	assert.Equal(t, []string{"10003"}, builtin[CriticSpecialtyOutput])
}

func TestMergeConstitution(t *testing.T) {
	builtin := []ConstitutionDoc{
		{Name: "core", Text: "built-in core"},
	}
	user := []ConstitutionDoc{
		{Name: "core", Text: "replaced core"},
		{Name: "data-handling", Text: "no exfiltration"},
	}

	merged := mergeConstitution(builtin, user)

	require.Len(t, merged, 2)
	assert.Equal(t, "core", merged[0].Name)
	assert.Equal(t, "replaced core", merged[0].Text)
	assert.Equal(t, "data-handling", merged[1].Name)
}
