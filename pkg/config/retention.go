package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// AuditRetentionDays is how many days audit log rows are kept.
	AuditRetentionDays int

	// UsageRetentionDays is how many days API usage rows are kept. They
	// only feed daily budget accounting, so the window can be short.
	UsageRetentionDays int

	// SandboxRetentionDays is how many days closed sandbox records are kept.
	SandboxRetentionDays int

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		AuditRetentionDays:   365,
		UsageRetentionDays:   90,
		SandboxRetentionDays: 30,
		CleanupInterval:      12 * time.Hour,
	}
}
