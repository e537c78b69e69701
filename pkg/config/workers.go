package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// WorkerConfig contains worker pool and background loop configuration.
type WorkerConfig struct {
	// BusConsumers is the number of goroutines draining each agent inbox.
	BusConsumers int `yaml:"bus_consumers"`

	// MaxConcurrentExecutions caps simultaneous sandbox executions per replica.
	MaxConcurrentExecutions int `yaml:"max_concurrent_executions"`

	// KeySweepInterval is how often tripped API keys are re-examined.
	KeySweepInterval time.Duration `yaml:"key_sweep_interval"`

	// ReaperInterval is how often leaked sandboxes are swept.
	ReaperInterval time.Duration `yaml:"reaper_interval"`

	// ReaperMaxAge is the age past which an undestroyed sandbox counts as leaked.
	ReaperMaxAge time.Duration `yaml:"reaper_max_age"`

	// HeartbeatTimeout is how long an agent may go silent before it is
	// marked suspended.
	HeartbeatTimeout time.Duration `yaml:"heartbeat_timeout"`

	// GracefulShutdownTimeout is the max time to wait for in-flight work
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// UnmarshalYAML accepts duration fields in the human form ("5m", "30s")
// rather than raw nanoseconds.
func (w *WorkerConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		BusConsumers            int    `yaml:"bus_consumers"`
		MaxConcurrentExecutions int    `yaml:"max_concurrent_executions"`
		KeySweepInterval        string `yaml:"key_sweep_interval"`
		ReaperInterval          string `yaml:"reaper_interval"`
		ReaperMaxAge            string `yaml:"reaper_max_age"`
		HeartbeatTimeout        string `yaml:"heartbeat_timeout"`
		GracefulShutdownTimeout string `yaml:"graceful_shutdown_timeout"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	w.BusConsumers = raw.BusConsumers
	w.MaxConcurrentExecutions = raw.MaxConcurrentExecutions

	for _, d := range []struct {
		name string
		in   string
		out  *time.Duration
	}{
		{"key_sweep_interval", raw.KeySweepInterval, &w.KeySweepInterval},
		{"reaper_interval", raw.ReaperInterval, &w.ReaperInterval},
		{"reaper_max_age", raw.ReaperMaxAge, &w.ReaperMaxAge},
		{"heartbeat_timeout", raw.HeartbeatTimeout, &w.HeartbeatTimeout},
		{"graceful_shutdown_timeout", raw.GracefulShutdownTimeout, &w.GracefulShutdownTimeout},
	} {
		if d.in == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.in)
		if err != nil {
			return fmt.Errorf("workers.%s: %w", d.name, err)
		}
		*d.out = parsed
	}
	return nil
}

// DefaultWorkerConfig returns the built-in worker defaults.
func DefaultWorkerConfig() *WorkerConfig {
	return &WorkerConfig{
		BusConsumers:            2,
		MaxConcurrentExecutions: 5,
		KeySweepInterval:        1 * time.Minute,
		ReaperInterval:          5 * time.Minute,
		ReaperMaxAge:            30 * time.Minute,
		HeartbeatTimeout:        2 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}
