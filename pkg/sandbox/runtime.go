package sandbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ContainerSpec describes a container to start.
type ContainerSpec struct {
	Image         string
	CPULimit      float64
	MemoryLimitMB int
	MaxDiskMB     int
	NetworkMode   string
	Labels        map[string]string
	Env           map[string]string
}

// ContainerInfo is a runtime listing entry.
type ContainerInfo struct {
	ID     string
	State  string
	Labels map[string]string
}

// ExecResult is the outcome of a command inside a container.
type ExecResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
}

// Runtime abstracts the container engine. All calls are subprocess-backed
// and honor the passed context.
type Runtime interface {
	Create(ctx context.Context, spec ContainerSpec) (string, error)
	Stop(ctx context.Context, id string, timeout time.Duration) error
	Remove(ctx context.Context, id string, force bool) error
	WriteFile(ctx context.Context, id, path string, content []byte) error
	Exec(ctx context.Context, id string, cmd []string, timeout time.Duration) (*ExecResult, error)
	List(ctx context.Context, labels map[string]string) ([]ContainerInfo, error)
}

// DockerRuntime drives the docker CLI.
type DockerRuntime struct {
	// Binary is the engine CLI; defaults to "docker" and also works with
	// podman.
	Binary string
}

// NewDockerRuntime creates a runtime using the docker binary on PATH.
func NewDockerRuntime() *DockerRuntime {
	return &DockerRuntime{Binary: "docker"}
}

func (d *DockerRuntime) binary() string {
	if d.Binary == "" {
		return "docker"
	}
	return d.Binary
}

func (d *DockerRuntime) run(ctx context.Context, stdin []byte, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, d.binary(), args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Create starts a detached container held open by a sleep, ready for exec.
func (d *DockerRuntime) Create(ctx context.Context, spec ContainerSpec) (string, error) {
	args := []string{"run", "-d"}
	if spec.CPULimit > 0 {
		args = append(args, fmt.Sprintf("--cpus=%.2f", spec.CPULimit))
	}
	if spec.MemoryLimitMB > 0 {
		args = append(args, fmt.Sprintf("--memory=%dm", spec.MemoryLimitMB))
	}
	if spec.MaxDiskMB > 0 {
		args = append(args, fmt.Sprintf("--storage-opt=size=%dm", spec.MaxDiskMB))
	}
	if spec.NetworkMode != "" {
		args = append(args, "--network="+spec.NetworkMode)
	}
	for k, v := range spec.Labels {
		args = append(args, fmt.Sprintf("--label=%s=%s", k, v))
	}
	for k, v := range spec.Env {
		args = append(args, fmt.Sprintf("--env=%s=%s", k, v))
	}
	args = append(args, spec.Image, "sleep", "infinity")

	stdout, stderr, err := d.run(ctx, nil, args...)
	if err != nil {
		return "", fmt.Errorf("container create failed: %w: %s", err, strings.TrimSpace(stderr))
	}
	return strings.TrimSpace(stdout), nil
}

// Stop gracefully stops the container within the timeout.
func (d *DockerRuntime) Stop(ctx context.Context, id string, timeout time.Duration) error {
	secs := int(timeout.Seconds())
	if secs < 1 {
		secs = 1
	}
	_, stderr, err := d.run(ctx, nil, "stop", "-t", fmt.Sprintf("%d", secs), id)
	if err != nil {
		if isAbsent(stderr) {
			return nil
		}
		return fmt.Errorf("container stop failed: %w: %s", err, strings.TrimSpace(stderr))
	}
	return nil
}

// Remove deletes the container. Absent containers are treated as success.
func (d *DockerRuntime) Remove(ctx context.Context, id string, force bool) error {
	args := []string{"rm"}
	if force {
		args = append(args, "-f")
	}
	args = append(args, id)
	_, stderr, err := d.run(ctx, nil, args...)
	if err != nil {
		if isAbsent(stderr) {
			return nil
		}
		return fmt.Errorf("container remove failed: %w: %s", err, strings.TrimSpace(stderr))
	}
	return nil
}

func isAbsent(stderr string) bool {
	s := strings.ToLower(stderr)
	return strings.Contains(s, "no such container") || strings.Contains(s, "is not running")
}

// WriteFile streams content to a path inside the container.
func (d *DockerRuntime) WriteFile(ctx context.Context, id, path string, content []byte) error {
	_, stderr, err := d.run(ctx, content, "exec", "-i", id, "sh", "-c", "cat > "+path)
	if err != nil {
		return fmt.Errorf("file staging to %s failed: %w: %s", path, err, strings.TrimSpace(stderr))
	}
	return nil
}

// Exec runs a command inside the container with a hard timeout.
func (d *DockerRuntime) Exec(ctx context.Context, id string, cmd []string, timeout time.Duration) (*ExecResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := append([]string{"exec", id}, cmd...)
	stdout, stderr, err := d.run(ctx, nil, args...)

	result := &ExecResult{Stdout: stdout, Stderr: stderr}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		result.TimedOut = true
		result.ExitCode = -1
		return result, nil
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, fmt.Errorf("container exec failed: %w: %s", err, strings.TrimSpace(stderr))
	}
	return result, nil
}

// List returns containers matching every given label.
func (d *DockerRuntime) List(ctx context.Context, labels map[string]string) ([]ContainerInfo, error) {
	args := []string{"ps", "-a", "--no-trunc", "--format", "{{.ID}}\t{{.State}}\t{{.Labels}}"}
	for k, v := range labels {
		args = append(args, fmt.Sprintf("--filter=label=%s=%s", k, v))
	}
	stdout, stderr, err := d.run(ctx, nil, args...)
	if err != nil {
		return nil, fmt.Errorf("container list failed: %w: %s", err, strings.TrimSpace(stderr))
	}

	var out []ContainerInfo
	for _, line := range strings.Split(strings.TrimSpace(stdout), "\n") {
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		info := ContainerInfo{ID: fields[0], Labels: map[string]string{}}
		if len(fields) > 1 {
			info.State = fields[1]
		}
		if len(fields) > 2 {
			for _, pair := range strings.Split(fields[2], ",") {
				if k, v, ok := strings.Cut(pair, "="); ok {
					info.Labels[k] = v
				}
			}
		}
		out = append(out, info)
	}
	return out, nil
}
