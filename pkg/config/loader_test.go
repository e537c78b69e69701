package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigDir creates a temp config directory with the given file contents.
func writeConfigDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestInitializeWithDefaults(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"agentium.yaml":  "",
		"providers.yaml": "",
	})

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Built-in configuration carries the whole system when YAML is empty.
	assert.True(t, cfg.ProviderRegistry.Has("anthropic"))
	assert.True(t, cfg.ProviderRegistry.Has("openai"))
	assert.True(t, cfg.ProviderRegistry.Has("ollama"))
	assert.True(t, cfg.ModelRegistry.Has("claude-sonnet-4-5"))
	assert.Equal(t, "anthropic", cfg.Defaults.Provider)
	assert.Equal(t, []string{"10002"}, cfg.Critics[CriticSpecialtyCode])
	require.Len(t, cfg.Constitution, 1)
	assert.NotEmpty(t, cfg.Constitution[0].Text)

	// Resolved system defaults.
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "none", cfg.Sandbox.NetworkMode)
	assert.Equal(t, 5*time.Minute, cfg.Sandbox.Timeout)
	assert.False(t, cfg.Slack.Enabled)
	assert.Equal(t, 2, cfg.Workers.BusConsumers)
}

func TestInitializeUserOverrides(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"agentium.yaml": `
system:
  redis:
    addr: redis.internal:6380
    db: 2
  sandbox:
    image: custom-sandbox:v2
    network_mode: bridge
    timeout: 90s
  slack:
    enabled: true
    channel: C0GOVERNANCE
critics:
  code-critic: ["10005", "10006"]
defaults:
  provider: openai
  daily_token_limit: 500000
workers:
  bus_consumers: 4
  key_sweep_interval: 2m
  graceful_shutdown_timeout: 45s
`,
		"providers.yaml": `
providers:
  openai:
    type: openai
    api_key_env: OPENAI_KEY_OVERRIDE
    default_model: gpt-4o-mini
models:
  gpt-4.1:
    provider: openai
    context_window: 1000000
`,
	})

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "custom-sandbox:v2", cfg.Sandbox.Image)
	assert.Equal(t, "bridge", cfg.Sandbox.NetworkMode)
	assert.Equal(t, 90*time.Second, cfg.Sandbox.Timeout)
	assert.True(t, cfg.Slack.Enabled)
	assert.Equal(t, "C0GOVERNANCE", cfg.Slack.Channel)
	assert.Equal(t, "openai", cfg.Defaults.Provider)
	assert.Equal(t, 500000, cfg.Defaults.DailyTokenLimit)
	assert.Equal(t, 4, cfg.Workers.BusConsumers)
	assert.Equal(t, 2*time.Minute, cfg.Workers.KeySweepInterval)
	assert.Equal(t, 45*time.Second, cfg.Workers.GracefulShutdownTimeout)
	// Unset worker fields keep built-in defaults.
	assert.Equal(t, 5, cfg.Workers.MaxConcurrentExecutions)

	// User roster replaces the built-in one for that specialty only.
	assert.Equal(t, []string{"10005", "10006"}, cfg.Critics[CriticSpecialtyCode])
	assert.Equal(t, []string{"10003"}, cfg.Critics[CriticSpecialtyOutput])

	// User provider overrides built-in entry of the same name.
	openai, err := cfg.ProviderRegistry.Get("openai")
	require.NoError(t, err)
	assert.Equal(t, "OPENAI_KEY_OVERRIDE", openai.APIKeyEnv)
	assert.Equal(t, "gpt-4o-mini", openai.DefaultModel)

	// New model merged alongside built-ins.
	assert.True(t, cfg.ModelRegistry.Has("gpt-4.1"))
	assert.True(t, cfg.ModelRegistry.Has("claude-haiku-3-5"))
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("TEST_REDIS_ADDR", "bus.example.com:6379")

	dir := writeConfigDir(t, map[string]string{
		"agentium.yaml": `
system:
  redis:
    addr: "{{.TEST_REDIS_ADDR}}"
`,
		"providers.yaml": "",
	})

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "bus.example.com:6379", cfg.Redis.Addr)
}

func TestInitializeConstitutionFromFile(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"agentium.yaml": `
constitution:
  - name: data-handling
    path: data-handling.md
`,
		"providers.yaml":   "",
		"data-handling.md": "Raw result data never leaves the sandbox.",
	})

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	var found bool
	for _, doc := range cfg.Constitution {
		if doc.Name == "data-handling" {
			found = true
			assert.Equal(t, "Raw result data never leaves the sandbox.", doc.Text)
		}
	}
	assert.True(t, found)
}

func TestInitializeMissingConstitutionFile(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"agentium.yaml": `
constitution:
  - name: missing
    path: does-not-exist.md
`,
		"providers.yaml": "",
	})

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.md")
}

func TestInitializeMissingFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"agentium.yaml":  "critics: [not: a: map",
		"providers.yaml": "",
	})

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeRejectsInvalidReference(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"agentium.yaml": "",
		"providers.yaml": `
models:
  mystery-model:
    provider: nonexistent
`,
	})

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestStats(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"agentium.yaml":  "",
		"providers.yaml": "",
	})

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	stats := cfg.Stats()
	assert.Equal(t, 3, stats.Providers)
	assert.Equal(t, 7, stats.Models)
	assert.Equal(t, 3, stats.CriticRosters)
	assert.Equal(t, 1, stats.ConstitutionDocs)
	assert.Equal(t, dir, cfg.ConfigDir())
}
