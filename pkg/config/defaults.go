package config

// Defaults contains system-wide default configurations
// These values are used when specific components don't specify their own values
type Defaults struct {
	// Provider registry key used when a model's provider lookup fails
	Provider string `yaml:"provider,omitempty"`

	// Max automatic retries before a task fails permanently
	MaxTaskRetries *int `yaml:"max_task_retries,omitempty"`

	// Max critic rejections before escalation to deliberation
	CriticMaxRetries *int `yaml:"critic_max_retries,omitempty"`

	// Daily budget ceilings seeded into system settings on first start.
	// 0 means unlimited.
	DailyTokenLimit int     `yaml:"daily_token_limit,omitempty"`
	DailyCostLimit  float64 `yaml:"daily_cost_limit,omitempty"`
}
