// Package config provides configuration management for the Agentium
// governance core: YAML loading with environment expansion, built-in
// defaults, registry construction, and validation.
package config

// Config is the umbrella configuration object that encapsulates
// all registries, defaults, and configuration state.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults
	Defaults *Defaults

	// Worker pool and background loop configuration
	Workers *WorkerConfig

	// Resolved infrastructure settings
	Redis            *RedisConfig
	Sandbox          *SandboxConfig
	Slack            *SlackConfig
	Retention        *RetentionConfig
	AllowedWSOrigins []string

	// Component registries
	ProviderRegistry *ProviderRegistry
	ModelRegistry    *ModelRegistry

	// Critic roster: specialty to council-tier agent ids
	Critics map[CriticSpecialty][]string

	// Constitutional documents, text resolved
	Constitution []ConstitutionDoc
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	Providers        int
	Models           int
	CriticRosters    int
	ConstitutionDocs int
}

// Stats returns statistics about loaded configuration
func (c *Config) Stats() Stats {
	return Stats{
		Providers:        c.ProviderRegistry.Len(),
		Models:           c.ModelRegistry.Len(),
		CriticRosters:    len(c.Critics),
		ConstitutionDocs: len(c.Constitution),
	}
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}
