package config

import "time"

// RedisConfig holds resolved message bus connection configuration.
type RedisConfig struct {
	Addr        string // host:port (default: "localhost:6379")
	PasswordEnv string // Env var name for the Redis password (default: "REDIS_PASSWORD")
	DB          int
}

// SandboxConfig holds resolved sandbox resource configuration.
type SandboxConfig struct {
	Image         string
	CPULimit      float64
	MemoryLimitMB int
	MaxDiskMB     int
	NetworkMode   string
	Timeout       time.Duration // Per-execution wall clock limit
}

// SlackConfig holds resolved Slack notification configuration.
type SlackConfig struct {
	Enabled  bool
	TokenEnv string // Env var name for Slack bot token (default: "SLACK_BOT_TOKEN")
	Channel  string // Slack channel ID (e.g., "C12345678")
}
