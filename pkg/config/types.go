package config

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	AllowedWSOrigins []string             `yaml:"allowed_ws_origins"`
	Redis            *RedisYAMLConfig     `yaml:"redis"`
	Sandbox          *SandboxYAMLConfig   `yaml:"sandbox"`
	Slack            *SlackYAMLConfig     `yaml:"slack"`
	Retention        *RetentionYAMLConfig `yaml:"retention"`
}

// RedisYAMLConfig holds message bus connection settings from YAML.
type RedisYAMLConfig struct {
	Addr        string `yaml:"addr,omitempty"`
	PasswordEnv string `yaml:"password_env,omitempty"`
	DB          int    `yaml:"db,omitempty"`
}

// SandboxYAMLConfig holds sandbox resource settings from YAML.
type SandboxYAMLConfig struct {
	Image         string  `yaml:"image,omitempty"`
	CPULimit      float64 `yaml:"cpu_limit,omitempty"`
	MemoryLimitMB int     `yaml:"memory_limit_mb,omitempty"`
	MaxDiskMB     int     `yaml:"max_disk_mb,omitempty"`
	NetworkMode   string  `yaml:"network_mode,omitempty"`
	Timeout       string  `yaml:"timeout,omitempty"` // Parsed to time.Duration
}

// SlackYAMLConfig holds Slack notification settings from YAML.
type SlackYAMLConfig struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	TokenEnv string `yaml:"token_env,omitempty"`
	Channel  string `yaml:"channel,omitempty"`
}

// RetentionYAMLConfig holds data retention settings from YAML.
type RetentionYAMLConfig struct {
	AuditRetentionDays   int    `yaml:"audit_retention_days,omitempty"`
	UsageRetentionDays   int    `yaml:"usage_retention_days,omitempty"`
	SandboxRetentionDays int    `yaml:"sandbox_retention_days,omitempty"`
	CleanupInterval      string `yaml:"cleanup_interval,omitempty"` // Parsed to time.Duration
}

// ConstitutionDoc is one constitutional document. Text wins over Path;
// Path is resolved relative to the configuration directory.
type ConstitutionDoc struct {
	Name string `yaml:"name"`
	Path string `yaml:"path,omitempty"`
	Text string `yaml:"text,omitempty"`
}
