package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/agentium/agentium/pkg/masking"
	"github.com/agentium/agentium/pkg/sandbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRuntime is a scripted container engine.
type fakeRuntime struct {
	mu          sync.Mutex
	created     int
	removed     []string
	execResults []*sandbox.ExecResult
	lastTimeout time.Duration
}

func (f *fakeRuntime) Create(_ context.Context, _ sandbox.ContainerSpec) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created++
	return fmt.Sprintf("container-%d", f.created), nil
}

func (f *fakeRuntime) Stop(_ context.Context, _ string, _ time.Duration) error { return nil }

func (f *fakeRuntime) Remove(_ context.Context, id string, _ bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, id)
	return nil
}

func (f *fakeRuntime) WriteFile(_ context.Context, _, _ string, _ []byte) error { return nil }

func (f *fakeRuntime) Exec(_ context.Context, _ string, _ []string, timeout time.Duration) (*sandbox.ExecResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastTimeout = timeout
	if len(f.execResults) == 0 {
		return &sandbox.ExecResult{}, nil
	}
	next := f.execResults[0]
	f.execResults = f.execResults[1:]
	return next, nil
}

func (f *fakeRuntime) List(_ context.Context, _ map[string]string) ([]sandbox.ContainerInfo, error) {
	return nil, nil
}

type memoryStore struct {
	mu      sync.Mutex
	records map[string]Record
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: map[string]Record{}}
}

func (s *memoryStore) Create(_ context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = *rec
	return nil
}

func (s *memoryStore) Update(_ context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = *rec
	return nil
}

func harnessJSON(t *testing.T, out map[string]any) string {
	t.Helper()
	b, err := json.Marshal(out)
	require.NoError(t, err)
	return string(b)
}

func newService(rt *fakeRuntime, store Store) *Service {
	return New(sandbox.NewManager(rt, nil), store)
}

func TestExecuteBlockedCreatesNoContainer(t *testing.T) {
	rt := &fakeRuntime{}
	store := newMemoryStore()
	svc := newService(rt, store)

	report, err := svc.Execute(context.Background(), Request{
		Code:    `import os; os.system('rm -rf /')`,
		AgentID: "30001",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusBlocked, report.Status)
	assert.Nil(t, report.Summary)
	require.NotNil(t, report.SecurityResult)
	assert.False(t, report.SecurityResult.Passed)
	assert.Equal(t, "critical", string(report.SecurityResult.Severity))
	assert.NotEmpty(t, report.SecurityResult.Violations)

	assert.Zero(t, rt.created, "no container for a blocked execution")

	rec := store.records[report.ExecutionID]
	assert.Equal(t, StatusBlocked, rec.Status)
}

func TestExecuteCompletedTabularSummary(t *testing.T) {
	// A tabular result with 1000 rows and 4 columns; the harness sends
	// only the summary.
	out := map[string]any{
		"success":       true,
		"output_schema": map[string]string{"name": "object", "age": "int64", "city": "object", "score": "float64"},
		"row_count":     1000,
		"sample": []any{
			map[string]any{"name": "a", "age": 1, "city": "x", "score": 0.5},
			map[string]any{"name": "b", "age": 2, "city": "y", "score": 0.7},
			map[string]any{"name": "c", "age": 3, "city": "z", "score": 0.9},
		},
		"stats":             map[string]any{},
		"stdout":            "done\n",
		"stderr":            "",
		"execution_time_ms": 128,
	}
	rt := &fakeRuntime{execResults: []*sandbox.ExecResult{{Stdout: harnessJSON(t, out)}}}
	store := newMemoryStore()
	svc := newService(rt, store)

	report, err := svc.Execute(context.Background(), Request{
		Code:    "result = build_table(input_data)",
		AgentID: "30001",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, report.Status)
	require.NotNil(t, report.Summary)
	assert.Equal(t, 1000, report.Summary.RowCount)
	assert.Len(t, report.Summary.OutputSchema, 4)
	assert.Len(t, report.Summary.Sample, 3)
	assert.Equal(t, 128, report.Summary.ExecutionTimeMs)

	// The sandbox was destroyed after completion.
	require.Len(t, rt.removed, 1)
	assert.Equal(t, "container-1", rt.removed[0])

	rec := store.records[report.ExecutionID]
	assert.Equal(t, StatusCompleted, rec.Status)
	assert.NotEmpty(t, rec.SandboxID)
}

func TestExecuteTimeout(t *testing.T) {
	rt := &fakeRuntime{execResults: []*sandbox.ExecResult{{TimedOut: true, ExitCode: -1}}}
	svc := newService(rt, newMemoryStore())

	report, err := svc.Execute(context.Background(), Request{
		Code:           "while True: pass",
		AgentID:        "30001",
		TimeoutSeconds: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, report.Status)
	assert.Equal(t, "Execution timed out after 30 seconds", report.Error)
	assert.Len(t, rt.removed, 1, "container destroyed on timeout")
}

func TestExecuteTimeoutClamped(t *testing.T) {
	rt := &fakeRuntime{execResults: []*sandbox.ExecResult{{Stdout: `{"success": true}`}}}
	svc := newService(rt, nil)

	_, err := svc.Execute(context.Background(), Request{
		Code:           "result = 1",
		AgentID:        "30001",
		TimeoutSeconds: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Duration(MinTimeoutSeconds)*time.Second, rt.lastTimeout)
}

func TestExecuteUserCodeFailure(t *testing.T) {
	out := map[string]any{
		"success":           false,
		"error":             "ZeroDivisionError: division by zero",
		"stdout":            "",
		"stderr":            "",
		"execution_time_ms": 4,
	}
	rt := &fakeRuntime{execResults: []*sandbox.ExecResult{{Stdout: harnessJSON(t, out)}}}
	svc := newService(rt, newMemoryStore())

	report, err := svc.Execute(context.Background(), Request{Code: "result = 1/0", AgentID: "30001"})
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, report.Status)
	assert.Contains(t, report.Error, "ZeroDivisionError")
	assert.Len(t, rt.removed, 1)
}

func TestExecuteTruncatesStreams(t *testing.T) {
	out := map[string]any{
		"success":           true,
		"stdout":            strings.Repeat("x", 5000),
		"stderr":            strings.Repeat("y", 5000),
		"execution_time_ms": 1,
	}
	rt := &fakeRuntime{execResults: []*sandbox.ExecResult{{Stdout: harnessJSON(t, out)}}}
	svc := newService(rt, nil)

	report, err := svc.Execute(context.Background(), Request{Code: "result = None", AgentID: "30001"})
	require.NoError(t, err)
	require.NotNil(t, report.Summary)
	assert.Len(t, report.Summary.Stdout, 1000)
	assert.Len(t, report.Summary.Stderr, 1000)
}

func TestExecuteRejectsUnknownLanguage(t *testing.T) {
	svc := newService(&fakeRuntime{}, nil)
	_, err := svc.Execute(context.Background(), Request{Code: "x", AgentID: "30001", Language: "ruby"})
	require.Error(t, err)
}

func TestExecuteRejectsInvalidAgent(t *testing.T) {
	svc := newService(&fakeRuntime{}, nil)
	_, err := svc.Execute(context.Background(), Request{Code: "x", AgentID: "bogus"})
	require.Error(t, err)
}

func TestExecuteNetworkModeFollowsRequest(t *testing.T) {
	// Restricted imports pass for the Head tier, and network access maps
	// to the bridge mode.
	rt := &fakeRuntime{execResults: []*sandbox.ExecResult{{Stdout: `{"success": true}`}}}
	svc := newService(rt, nil)

	report, err := svc.Execute(context.Background(), Request{
		Code:          "import requests\nresult = None",
		AgentID:       "00001",
		NetworkAccess: true,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, report.Status)
}

func TestExecuteMasksLeakedCredentials(t *testing.T) {
	out := map[string]any{
		"success":           true,
		"row_count":         1,
		"sample":            []any{"token is sk-ant-abc123def456ghi789"},
		"stdout":            "ANTHROPIC_API_KEY=sk-ant-secret\ndone\n",
		"stderr":            "connecting to postgres://svc:hunter22@db/app",
		"execution_time_ms": 5,
	}
	rt := &fakeRuntime{execResults: []*sandbox.ExecResult{{Stdout: harnessJSON(t, out)}}}
	svc := New(sandbox.NewManager(rt, nil), nil, WithMasker(masking.NewService()))

	report, err := svc.Execute(context.Background(), Request{
		Code:    "result = call_api(input_data)",
		AgentID: "30001",
	})
	require.NoError(t, err)

	require.NotNil(t, report.Summary)
	assert.Equal(t, "ANTHROPIC_API_KEY=[MASKED]\ndone\n", report.Summary.Stdout)
	assert.Equal(t, "connecting to postgres://svc:[MASKED]@db/app", report.Summary.Stderr)
	require.Len(t, report.Summary.Sample, 1)
	assert.Equal(t, "token is [MASKED_API_KEY]", report.Summary.Sample[0])
}

func TestExecuteMasksHarnessErrors(t *testing.T) {
	out := map[string]any{
		"success": false,
		"error":   "auth failed for key sk-ant-abc123def456ghi789",
	}
	rt := &fakeRuntime{execResults: []*sandbox.ExecResult{{Stdout: harnessJSON(t, out)}}}
	svc := New(sandbox.NewManager(rt, nil), nil, WithMasker(masking.NewService()))

	report, err := svc.Execute(context.Background(), Request{
		Code:    "result = call_api(input_data)",
		AgentID: "30001",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, report.Status)
	assert.Equal(t, "auth failed for key [MASKED_API_KEY]", report.Error)
}

func TestExecuteReleasesConcurrencySlot(t *testing.T) {
	rt := &fakeRuntime{execResults: []*sandbox.ExecResult{
		{Stdout: `{"success": true}`},
		{Stdout: `{"success": true}`},
	}}
	svc := New(sandbox.NewManager(rt, nil), nil, WithConcurrencyLimit(1))

	// Two back-to-back executions through a single slot: the slot must be
	// returned on completion or the second call would block forever.
	for i := 0; i < 2; i++ {
		report, err := svc.Execute(context.Background(), Request{
			Code:    "result = input_data",
			AgentID: "30001",
		})
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, report.Status)
	}
}
