package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// AgentiumYAMLConfig represents the complete agentium.yaml file structure
type AgentiumYAMLConfig struct {
	System       *SystemYAMLConfig            `yaml:"system"`
	Critics      map[CriticSpecialty][]string `yaml:"critics"`
	Constitution []ConstitutionDoc            `yaml:"constitution"`
	Defaults     *Defaults                    `yaml:"defaults"`
	Workers      *WorkerConfig                `yaml:"workers"`
}

// ProvidersYAMLConfig represents the complete providers.yaml file structure
type ProvidersYAMLConfig struct {
	Providers map[string]ProviderConfig `yaml:"providers"`
	Models    map[string]ModelSpec      `yaml:"models"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Resolve constitutional document files
//  6. Build in-memory registries
//  7. Apply default values
//  8. Validate all configuration
//  9. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	// 1. Load configuration files
	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Validate all configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"providers", stats.Providers,
		"models", stats.Models,
		"critic_rosters", stats.CriticRosters,
		"constitution_docs", stats.ConstitutionDocs)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load agentium.yaml (system, critics, constitution, defaults, workers)
	mainConfig, err := loader.loadAgentiumYAML()
	if err != nil {
		return nil, NewLoadError("agentium.yaml", err)
	}

	// 2. Load providers.yaml
	providers, models, err := loader.loadProvidersYAML()
	if err != nil {
		return nil, NewLoadError("providers.yaml", err)
	}

	// 3. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 4. Merge built-in + user-defined components (user overrides built-in)
	providersMerged := mergeProviders(builtin.Providers, providers)
	modelsMerged := mergeModels(builtin.Models, models)
	critics := mergeCritics(builtin.Critics, mainConfig.Critics)
	constitution := mergeConstitution(builtin.Constitution, mainConfig.Constitution)

	// 5. Resolve constitutional documents that point at files
	constitution, err = loader.resolveConstitutionDocs(constitution)
	if err != nil {
		return nil, err
	}

	// 6. Build registries
	providerRegistry := NewProviderRegistry(providersMerged)
	modelRegistry := NewModelRegistry(modelsMerged)

	// 7. Resolve defaults (YAML overrides built-in)
	defaults := mainConfig.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if defaults.Provider == "" {
		defaults.Provider = builtin.DefaultProvider
	}

	// Resolve worker config (merge user YAML with built-in defaults)
	// Start with defaults, then merge user config on top to preserve unset defaults
	workerConfig := DefaultWorkerConfig()
	if mainConfig.Workers != nil {
		// Merge user-provided config into defaults (non-zero values override)
		if err := mergo.Merge(workerConfig, mainConfig.Workers, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge worker config: %w", err)
		}
	}

	// Resolve system config (Redis + Sandbox + Slack + Retention + WS Origins)
	redisCfg := resolveRedisConfig(mainConfig.System)
	sandboxCfg := resolveSandboxConfig(mainConfig.System)
	slackCfg := resolveSlackConfig(mainConfig.System)
	retentionCfg := resolveRetentionConfig(mainConfig.System)
	allowedWSOrigins := resolveAllowedWSOrigins(mainConfig.System)

	return &Config{
		configDir:        configDir,
		Defaults:         defaults,
		Workers:          workerConfig,
		Redis:            redisCfg,
		Sandbox:          sandboxCfg,
		Slack:            slackCfg,
		Retention:        retentionCfg,
		AllowedWSOrigins: allowedWSOrigins,
		ProviderRegistry: providerRegistry,
		ModelRegistry:    modelRegistry,
		Critics:          critics,
		Constitution:     constitution,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadAgentiumYAML() (*AgentiumYAMLConfig, error) {
	var config AgentiumYAMLConfig

	// Initialize map to avoid nil map
	config.Critics = make(map[CriticSpecialty][]string)

	if err := l.loadYAML("agentium.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadProvidersYAML() (map[string]ProviderConfig, map[string]ModelSpec, error) {
	var config ProvidersYAMLConfig

	// Initialize maps to avoid nil maps
	config.Providers = make(map[string]ProviderConfig)
	config.Models = make(map[string]ModelSpec)

	if err := l.loadYAML("providers.yaml", &config); err != nil {
		return nil, nil, err
	}

	return config.Providers, config.Models, nil
}

// resolveConstitutionDocs reads document files for entries that carry a Path
// and no inline Text. Paths are resolved relative to the config directory.
func (l *configLoader) resolveConstitutionDocs(docs []ConstitutionDoc) ([]ConstitutionDoc, error) {
	resolved := make([]ConstitutionDoc, len(docs))
	copy(resolved, docs)

	for i, doc := range resolved {
		if doc.Text != "" || doc.Path == "" {
			continue
		}
		path := doc.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(l.configDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, NewLoadError(doc.Path, fmt.Errorf("constitution doc %q: %w", doc.Name, err))
		}
		resolved[i].Text = string(data)
	}

	return resolved, nil
}

// resolveRedisConfig resolves Redis configuration from system YAML, applying defaults.
func resolveRedisConfig(sys *SystemYAMLConfig) *RedisConfig {
	cfg := &RedisConfig{
		Addr:        "localhost:6379",
		PasswordEnv: "REDIS_PASSWORD",
	}

	if sys == nil || sys.Redis == nil {
		return cfg
	}

	r := sys.Redis
	if r.Addr != "" {
		cfg.Addr = r.Addr
	}
	if r.PasswordEnv != "" {
		cfg.PasswordEnv = r.PasswordEnv
	}
	cfg.DB = r.DB

	return cfg
}

// resolveSandboxConfig resolves sandbox configuration from system YAML, applying defaults.
func resolveSandboxConfig(sys *SystemYAMLConfig) *SandboxConfig {
	cfg := &SandboxConfig{
		Image:         "agentium-sandbox:latest",
		CPULimit:      1.0,
		MemoryLimitMB: 512,
		MaxDiskMB:     1024,
		NetworkMode:   "none",
		Timeout:       5 * time.Minute,
	}

	if sys == nil || sys.Sandbox == nil {
		return cfg
	}

	sb := sys.Sandbox
	if sb.Image != "" {
		cfg.Image = sb.Image
	}
	if sb.CPULimit > 0 {
		cfg.CPULimit = sb.CPULimit
	}
	if sb.MemoryLimitMB > 0 {
		cfg.MemoryLimitMB = sb.MemoryLimitMB
	}
	if sb.MaxDiskMB > 0 {
		cfg.MaxDiskMB = sb.MaxDiskMB
	}
	if sb.NetworkMode != "" {
		cfg.NetworkMode = sb.NetworkMode
	}
	if sb.Timeout != "" {
		if d, err := time.ParseDuration(sb.Timeout); err == nil {
			cfg.Timeout = d
		} else {
			slog.Warn("Invalid timeout in sandbox config, using default",
				"value", sb.Timeout,
				"default", cfg.Timeout,
				"error", err)
		}
	}

	return cfg
}

// resolveSlackConfig resolves Slack configuration from system YAML, applying defaults.
func resolveSlackConfig(sys *SystemYAMLConfig) *SlackConfig {
	cfg := &SlackConfig{
		Enabled:  false,
		TokenEnv: "SLACK_BOT_TOKEN",
	}

	if sys == nil || sys.Slack == nil {
		return cfg
	}

	s := sys.Slack
	if s.Enabled != nil {
		cfg.Enabled = *s.Enabled
	}
	if s.TokenEnv != "" {
		cfg.TokenEnv = s.TokenEnv
	}
	if s.Channel != "" {
		cfg.Channel = s.Channel
	}

	return cfg
}

// resolveRetentionConfig resolves retention configuration from system YAML, applying defaults.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	r := sys.Retention
	if r.AuditRetentionDays > 0 {
		cfg.AuditRetentionDays = r.AuditRetentionDays
	}
	if r.UsageRetentionDays > 0 {
		cfg.UsageRetentionDays = r.UsageRetentionDays
	}
	if r.SandboxRetentionDays > 0 {
		cfg.SandboxRetentionDays = r.SandboxRetentionDays
	}
	if r.CleanupInterval != "" {
		if d, err := time.ParseDuration(r.CleanupInterval); err == nil {
			cfg.CleanupInterval = d
		} else {
			slog.Warn("Invalid cleanup_interval in retention config, using default",
				"value", r.CleanupInterval,
				"default", cfg.CleanupInterval,
				"error", err)
		}
	}

	return cfg
}

// resolveAllowedWSOrigins returns additional WebSocket origin patterns from system YAML.
func resolveAllowedWSOrigins(sys *SystemYAMLConfig) []string {
	if sys != nil {
		return sys.AllowedWSOrigins
	}
	return nil
}
