package sandbox

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRuntime records every call and serves canned exec results.
type fakeRuntime struct {
	mu         sync.Mutex
	containers map[string]ContainerSpec
	removed    []string
	staged     map[string][]byte // path -> content, last container only
	execs      [][]string
	execResult *ExecResult
	nextID     int
}

func newFakeRuntime() *fakeRuntime {
	return &fakeRuntime{
		containers: map[string]ContainerSpec{},
		staged:     map[string][]byte{},
		execResult: &ExecResult{ExitCode: 0},
	}
}

func (f *fakeRuntime) Create(_ context.Context, spec ContainerSpec) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := fmt.Sprintf("container-%d", f.nextID)
	f.containers[id] = spec
	return id, nil
}

func (f *fakeRuntime) Stop(_ context.Context, _ string, _ time.Duration) error { return nil }

func (f *fakeRuntime) Remove(_ context.Context, id string, _ bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	// Absent containers succeed, matching the engine behavior.
	delete(f.containers, id)
	f.removed = append(f.removed, id)
	return nil
}

func (f *fakeRuntime) WriteFile(_ context.Context, _ string, path string, content []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.staged[path] = content
	return nil
}

func (f *fakeRuntime) Exec(_ context.Context, _ string, cmd []string, _ time.Duration) (*ExecResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.execs = append(f.execs, cmd)
	cp := *f.execResult
	return &cp, nil
}

func (f *fakeRuntime) List(_ context.Context, labels map[string]string) ([]ContainerInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []ContainerInfo
	for id, spec := range f.containers {
		match := true
		for k, v := range labels {
			if spec.Labels[k] != v {
				match = false
				break
			}
		}
		if match {
			out = append(out, ContainerInfo{ID: id, State: "running", Labels: spec.Labels})
		}
	}
	return out, nil
}

type recordingSink struct {
	mu        sync.Mutex
	created   []string
	destroyed map[string]string
}

func newRecordingSink() *recordingSink {
	return &recordingSink{destroyed: map[string]string{}}
}

func (s *recordingSink) SandboxCreated(_ context.Context, sb *Sandbox) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, sb.ID)
}

func (s *recordingSink) SandboxDestroyed(_ context.Context, sandboxID, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destroyed[sandboxID] = reason
}

func TestCreateAppliesDefaultsAndLabels(t *testing.T) {
	rt := newFakeRuntime()
	m := NewManager(rt, nil)

	sb, err := m.Create(context.Background(), "30001", Config{})
	require.NoError(t, err)
	assert.NotEmpty(t, sb.ID)

	spec := rt.containers[sb.ContainerID]
	assert.Equal(t, DefaultImage, spec.Image)
	assert.Equal(t, DefaultCPULimit, spec.CPULimit)
	assert.Equal(t, DefaultMemoryLimitMB, spec.MemoryLimitMB)
	assert.Equal(t, NetworkNone, spec.NetworkMode, "network disabled unless requested")
	assert.Equal(t, "true", spec.Labels[LabelSandbox])
	assert.Equal(t, "30001", spec.Labels[LabelOwner])
	assert.Equal(t, sb.ID, spec.Labels[LabelID])
	assert.Equal(t, "1", spec.Env["PYTHONDONTWRITEBYTECODE"])
	assert.Equal(t, "1", spec.Env["PYTHONUNBUFFERED"])
}

func TestDestroyIsIdempotent(t *testing.T) {
	rt := newFakeRuntime()
	sink := newRecordingSink()
	m := NewManager(rt, sink)
	ctx := context.Background()

	sb, err := m.Create(ctx, "30001", Config{})
	require.NoError(t, err)

	require.NoError(t, m.Destroy(ctx, sb, "execution finished"))
	require.NoError(t, m.Destroy(ctx, sb, "execution finished"))

	assert.Equal(t, "execution finished", sink.destroyed[sb.ID])
	assert.Equal(t, []string{sb.ID}, sink.created)
}

func TestListFiltersByOwner(t *testing.T) {
	rt := newFakeRuntime()
	m := NewManager(rt, nil)
	ctx := context.Background()

	_, err := m.Create(ctx, "30001", Config{})
	require.NoError(t, err)
	_, err = m.Create(ctx, "30002", Config{})
	require.NoError(t, err)

	all, err := m.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := m.List(ctx, "30001", "")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "30001", mine[0].Labels[LabelOwner])
}

func TestStageCopiesFilesAndInstallsDependencies(t *testing.T) {
	rt := newFakeRuntime()
	m := NewManager(rt, nil)
	ctx := context.Background()

	sb, err := m.Create(ctx, "30001", Config{})
	require.NoError(t, err)

	code := "result = [r for r in input_data['rows']]"
	input := map[string]any{"rows": []int{1, 2, 3}}
	require.NoError(t, m.Stage(ctx, sb, code, input, []string{"pandas", "numpy"}))

	assert.Equal(t, code, string(rt.staged[CodePath]))
	assert.JSONEq(t, `{"rows":[1,2,3]}`, string(rt.staged[InputPath]))
	assert.Equal(t, Harness, string(rt.staged[HarnessPath]))

	require.Len(t, rt.execs, 1)
	install := strings.Join(rt.execs[0], " ")
	assert.Contains(t, install, "pip install")
	assert.Contains(t, install, "pandas")
	assert.Contains(t, install, "numpy")
}

func TestStageWithoutInputWritesEmptyObject(t *testing.T) {
	rt := newFakeRuntime()
	m := NewManager(rt, nil)
	ctx := context.Background()

	sb, err := m.Create(ctx, "30001", Config{})
	require.NoError(t, err)
	require.NoError(t, m.Stage(ctx, sb, "result = 1", nil, nil))

	assert.Equal(t, "{}", string(rt.staged[InputPath]))
	assert.Empty(t, rt.execs, "no pip run without dependencies")
}

func TestStageFailsOnPipError(t *testing.T) {
	rt := newFakeRuntime()
	rt.execResult = &ExecResult{ExitCode: 1, Stderr: "no matching distribution"}
	m := NewManager(rt, nil)
	ctx := context.Background()

	sb, err := m.Create(ctx, "30001", Config{})
	require.NoError(t, err)

	err = m.Stage(ctx, sb, "result = 1", nil, []string{"nosuchpkg"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no matching distribution")
}

func TestRunHarnessInvokesPython(t *testing.T) {
	rt := newFakeRuntime()
	rt.execResult = &ExecResult{Stdout: `{"success": true}`}
	m := NewManager(rt, nil)
	ctx := context.Background()

	sb, err := m.Create(ctx, "30001", Config{})
	require.NoError(t, err)

	result, err := m.RunHarness(ctx, sb, 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, `{"success": true}`, result.Stdout)
	assert.Equal(t, []string{"python", HarnessPath}, rt.execs[len(rt.execs)-1])
}

func TestReaperRemovesOnlyOldSandboxes(t *testing.T) {
	rt := newFakeRuntime()
	m := NewManager(rt, nil)
	ctx := context.Background()

	fresh, err := m.Create(ctx, "30001", Config{})
	require.NoError(t, err)
	stale, err := m.Create(ctx, "30002", Config{})
	require.NoError(t, err)

	// Age the second container past the cutoff via its label.
	spec := rt.containers[stale.ContainerID]
	spec.Labels[LabelCreatedAt] = time.Now().UTC().Add(-3 * time.Hour).Format(time.RFC3339)
	rt.containers[stale.ContainerID] = spec

	reaper := NewReaper(rt, ReaperConfig{MaxAge: 2 * time.Hour})
	reaper.ReapOnce(ctx)

	assert.Contains(t, rt.removed, stale.ContainerID)
	assert.NotContains(t, rt.removed, fresh.ContainerID)
}
