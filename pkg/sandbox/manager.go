// Package sandbox manages ephemeral execution containers. Containers are
// scoped resources: every creator must destroy on every exit path, and the
// manager exclusively owns the container handles.
package sandbox

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Defaults for sandbox containers.
const (
	DefaultImage         = "python:3.12-slim"
	DefaultCPULimit      = 1.0
	DefaultMemoryLimitMB = 512
	DefaultMaxDiskMB     = 1024

	gracefulStopTimeout = 5 * time.Second
	pipInstallTimeout   = 120 * time.Second
	stagingTimeout      = 30 * time.Second
)

// Labels identifying sandbox containers and their owners.
const (
	LabelSandbox = "agentium.sandbox"
	LabelOwner   = "agentium.owner"
	LabelID      = "agentium.sandbox-id"
)

// Network modes.
const (
	NetworkNone   = "none"
	NetworkBridge = "bridge"
)

// Config is the per-sandbox resource envelope.
type Config struct {
	Image         string
	CPULimit      float64
	MemoryLimitMB int
	MaxDiskMB     int
	NetworkMode   string
}

func (c Config) withDefaults() Config {
	if c.Image == "" {
		c.Image = DefaultImage
	}
	if c.CPULimit <= 0 {
		c.CPULimit = DefaultCPULimit
	}
	if c.MemoryLimitMB <= 0 {
		c.MemoryLimitMB = DefaultMemoryLimitMB
	}
	if c.MaxDiskMB <= 0 {
		c.MaxDiskMB = DefaultMaxDiskMB
	}
	if c.NetworkMode == "" {
		c.NetworkMode = NetworkNone
	}
	return c
}

// Status of a sandbox.
type Status string

// Sandbox statuses.
const (
	StatusRunning   Status = "running"
	StatusDestroyed Status = "destroyed"
)

// Sandbox is a live container handle.
type Sandbox struct {
	ID          string
	ContainerID string
	AgentID     string
	Config      Config
	CreatedAt   time.Time
}

// RecordSink observes sandbox lifecycle for persistence. May be nil.
type RecordSink interface {
	SandboxCreated(ctx context.Context, sb *Sandbox)
	SandboxDestroyed(ctx context.Context, sandboxID, reason string)
}

// Manager creates and destroys sandboxes.
type Manager struct {
	runtime Runtime
	records RecordSink
	log     *slog.Logger
}

// NewManager creates a sandbox manager. records may be nil.
func NewManager(runtime Runtime, records RecordSink) *Manager {
	return &Manager{
		runtime: runtime,
		records: records,
		log:     slog.Default().With("component", "sandbox-manager"),
	}
}

// Create starts a new ephemeral container for the agent. Bytecode caching
// is disabled and stdout unbuffered so harness output arrives promptly.
func (m *Manager) Create(ctx context.Context, agentID string, cfg Config) (*Sandbox, error) {
	cfg = cfg.withDefaults()
	sandboxID := uuid.NewString()
	createdAt := time.Now().UTC()

	spec := ContainerSpec{
		Image:         cfg.Image,
		CPULimit:      cfg.CPULimit,
		MemoryLimitMB: cfg.MemoryLimitMB,
		MaxDiskMB:     cfg.MaxDiskMB,
		NetworkMode:   cfg.NetworkMode,
		Labels: map[string]string{
			LabelSandbox:   "true",
			LabelOwner:     agentID,
			LabelID:        sandboxID,
			LabelCreatedAt: createdAt.Format(time.RFC3339),
		},
		Env: map[string]string{
			"PYTHONDONTWRITEBYTECODE": "1",
			"PYTHONUNBUFFERED":        "1",
		},
	}

	containerID, err := m.runtime.Create(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to create sandbox for agent %s: %w", agentID, err)
	}

	sb := &Sandbox{
		ID:          sandboxID,
		ContainerID: containerID,
		AgentID:     agentID,
		Config:      cfg,
		CreatedAt:   createdAt,
	}

	m.log.Info("Sandbox created",
		"sandbox_id", sb.ID,
		"container_id", shortID(containerID),
		"agent_id", agentID,
		"network", cfg.NetworkMode)
	if m.records != nil {
		m.records.SandboxCreated(ctx, sb)
	}
	return sb, nil
}

// Destroy stops the container gracefully, then force-removes it. Absent
// containers are treated as success, so Destroy is idempotent.
func (m *Manager) Destroy(ctx context.Context, sb *Sandbox, reason string) error {
	if err := m.runtime.Stop(ctx, sb.ContainerID, gracefulStopTimeout); err != nil {
		m.log.Warn("Graceful sandbox stop failed, forcing removal",
			"sandbox_id", sb.ID, "error", err)
	}
	if err := m.runtime.Remove(ctx, sb.ContainerID, true); err != nil {
		return fmt.Errorf("failed to remove sandbox %s: %w", sb.ID, err)
	}

	m.log.Info("Sandbox destroyed", "sandbox_id", sb.ID, "reason", reason)
	if m.records != nil {
		m.records.SandboxDestroyed(ctx, sb.ID, reason)
	}
	return nil
}

// List returns sandbox containers, optionally filtered by owner and state.
func (m *Manager) List(ctx context.Context, agentID, state string) ([]ContainerInfo, error) {
	labels := map[string]string{LabelSandbox: "true"}
	if agentID != "" {
		labels[LabelOwner] = agentID
	}
	infos, err := m.runtime.List(ctx, labels)
	if err != nil {
		return nil, fmt.Errorf("failed to list sandboxes: %w", err)
	}
	if state == "" {
		return infos, nil
	}
	var filtered []ContainerInfo
	for _, info := range infos {
		if strings.EqualFold(info.State, state) {
			filtered = append(filtered, info)
		}
	}
	return filtered, nil
}

// Stage copies the input JSON, the user code, and the harness into the
// sandbox, then pip-installs any declared dependencies.
func (m *Manager) Stage(ctx context.Context, sb *Sandbox, code string, inputData any, dependencies []string) error {
	input := []byte("{}")
	if inputData != nil {
		var err error
		input, err = json.Marshal(inputData)
		if err != nil {
			return fmt.Errorf("failed to encode input data: %w", err)
		}
	}

	stageCtx, cancel := context.WithTimeout(ctx, stagingTimeout)
	defer cancel()

	files := []struct {
		path    string
		content []byte
	}{
		{InputPath, input},
		{CodePath, []byte(code)},
		{HarnessPath, []byte(Harness)},
	}
	for _, f := range files {
		if err := m.runtime.WriteFile(stageCtx, sb.ContainerID, f.path, f.content); err != nil {
			return fmt.Errorf("failed to stage %s into sandbox %s: %w", f.path, sb.ID, err)
		}
	}

	if len(dependencies) > 0 {
		cmd := append([]string{"pip", "install", "--quiet", "--no-warn-script-location"}, dependencies...)
		result, err := m.runtime.Exec(ctx, sb.ContainerID, cmd, pipInstallTimeout)
		if err != nil {
			return fmt.Errorf("dependency install failed in sandbox %s: %w", sb.ID, err)
		}
		if result.TimedOut {
			return fmt.Errorf("dependency install timed out in sandbox %s", sb.ID)
		}
		if result.ExitCode != 0 {
			return fmt.Errorf("dependency install failed in sandbox %s: %s", sb.ID, strings.TrimSpace(result.Stderr))
		}
	}
	return nil
}

// RunHarness executes the staged harness with the given timeout.
func (m *Manager) RunHarness(ctx context.Context, sb *Sandbox, timeout time.Duration) (*ExecResult, error) {
	return m.runtime.Exec(ctx, sb.ContainerID, []string{"python", HarnessPath}, timeout)
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
