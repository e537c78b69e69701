package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a minimal configuration that passes validation.
// Tests mutate the returned value to provoke specific failures.
func validConfig() *Config {
	return &Config{
		Defaults: &Defaults{Provider: "anthropic"},
		Workers:  DefaultWorkerConfig(),
		Sandbox: &SandboxConfig{
			Image:         "agentium-sandbox:latest",
			CPULimit:      1.0,
			MemoryLimitMB: 512,
			NetworkMode:   "none",
			Timeout:       time.Minute,
		},
		Retention: DefaultRetentionConfig(),
		ProviderRegistry: NewProviderRegistry(map[string]*ProviderConfig{
			"anthropic": {Type: ProviderTypeAnthropic, APIKeyEnv: "ANTHROPIC_API_KEY", DefaultModel: "claude-sonnet-4-5"},
			"ollama":    {Type: ProviderTypeOllama, BaseURL: "http://localhost:11434", DefaultModel: "llama3.1:8b"},
		}),
		ModelRegistry: NewModelRegistry(map[string]*ModelSpec{
			"claude-sonnet-4-5": {Provider: "anthropic", ContextWindow: 200_000},
			"llama3.1:8b":       {Provider: "ollama"},
		}),
		Critics: map[CriticSpecialty][]string{
			CriticSpecialtyCode: {"10002"},
		},
		Constitution: []ConstitutionDoc{
			{Name: "core", Text: "No exfiltration."},
		},
	}
}

func TestValidateAllPasses(t *testing.T) {
	require.NoError(t, NewValidator(validConfig()).ValidateAll())
}

func TestValidateProviders(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		contains string
	}{
		{
			name: "unknown provider type",
			mutate: func(c *Config) {
				c.ProviderRegistry = NewProviderRegistry(map[string]*ProviderConfig{
					"azure": {Type: "azure", APIKeyEnv: "K", DefaultModel: "m"},
				})
			},
			contains: "type",
		},
		{
			name: "hosted provider without api key env",
			mutate: func(c *Config) {
				c.ProviderRegistry = NewProviderRegistry(map[string]*ProviderConfig{
					"anthropic": {Type: ProviderTypeAnthropic, DefaultModel: "m"},
				})
			},
			contains: "api_key_env",
		},
		{
			name: "ollama without base url",
			mutate: func(c *Config) {
				c.ProviderRegistry = NewProviderRegistry(map[string]*ProviderConfig{
					"ollama": {Type: ProviderTypeOllama, DefaultModel: "m"},
				})
			},
			contains: "base_url",
		},
		{
			name: "missing default model",
			mutate: func(c *Config) {
				c.ProviderRegistry = NewProviderRegistry(map[string]*ProviderConfig{
					"anthropic": {Type: ProviderTypeAnthropic, APIKeyEnv: "K"},
				})
			},
			contains: "default_model",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.ModelRegistry = NewModelRegistry(nil)
			tt.mutate(cfg)
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidateModelProviderReference(t *testing.T) {
	cfg := validConfig()
	cfg.ModelRegistry = NewModelRegistry(map[string]*ModelSpec{
		"gpt-4o": {Provider: "openai"},
	})

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestValidateCritics(t *testing.T) {
	tests := []struct {
		name     string
		critics  map[CriticSpecialty][]string
		contains string
	}{
		{
			name:     "unknown specialty",
			critics:  map[CriticSpecialty][]string{"vibe-critic": {"10002"}},
			contains: "unknown specialty",
		},
		{
			name:     "malformed agent id",
			critics:  map[CriticSpecialty][]string{CriticSpecialtyCode: {"1000"}},
			contains: "invalid agent id",
		},
		{
			name:     "wrong tier",
			critics:  map[CriticSpecialty][]string{CriticSpecialtyCode: {"30001"}},
			contains: "must be council tier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Critics = tt.critics
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidateConstitution(t *testing.T) {
	cfg := validConfig()
	cfg.Constitution = nil
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one document")

	cfg = validConfig()
	cfg.Constitution = []ConstitutionDoc{{Name: "core", Text: "a"}, {Name: "core", Text: "b"}}
	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")

	cfg = validConfig()
	cfg.Constitution = []ConstitutionDoc{{Name: "core"}}
	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty text")
}

func TestValidateSystem(t *testing.T) {
	cfg := validConfig()
	cfg.Defaults.Provider = "nonexistent"
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReference)

	cfg = validConfig()
	cfg.Sandbox.NetworkMode = "host"
	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network_mode")

	cfg = validConfig()
	cfg.Workers.BusConsumers = 0
	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bus_consumers")
}
