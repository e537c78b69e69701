package allocator

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/agentium/agentium/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryDirectory struct {
	mu     sync.Mutex
	agents map[string]*AgentRecord
}

func newMemoryDirectory(agents ...*AgentRecord) *memoryDirectory {
	d := &memoryDirectory{agents: map[string]*AgentRecord{}}
	for _, a := range agents {
		cp := *a
		d.agents[a.ID] = &cp
	}
	return d
}

func (d *memoryDirectory) Get(_ context.Context, id string) (*AgentRecord, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	a, ok := d.agents[id]
	if !ok {
		return nil, fmt.Errorf("agent %s not found", id)
	}
	cp := *a
	return &cp, nil
}

func (d *memoryDirectory) List(_ context.Context) ([]*AgentRecord, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []*AgentRecord
	for _, a := range d.agents {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (d *memoryDirectory) Update(_ context.Context, a *AgentRecord) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	cp := *a
	d.agents[a.ID] = &cp
	return nil
}

type memoryConfigStore struct {
	mu      sync.Mutex
	configs map[string]string // agentID/model -> configID
	next    int
}

func newMemoryConfigStore() *memoryConfigStore {
	return &memoryConfigStore{configs: map[string]string{}}
}

func (s *memoryConfigStore) Ensure(_ context.Context, agentID, model string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := agentID + "/" + model
	if id, ok := s.configs[key]; ok {
		return id, nil
	}
	s.next++
	id := fmt.Sprintf("cfg-%d", s.next)
	s.configs[key] = id
	return id, nil
}

func TestClassify(t *testing.T) {
	tests := []struct {
		description string
		want        TaskClass
	}{
		{"refactor the ingestion script", ClassCode},
		{"implement a new API endpoint in Python", ClassCode},
		{"analyze last week's error metrics", ClassAnalysis},
		{"investigate the latency regression", ClassAnalysis},
		{"draft a launch announcement article", ClassCreative},
		{"move the files to the archive folder", ClassSimple},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.description), tt.description)
	}
}

func TestAllocatePicksTierPreferredModel(t *testing.T) {
	dir := newMemoryDirectory(
		&AgentRecord{ID: "00001", Tier: hierarchy.TierHead, Status: models.AgentStatusActive, Persistent: true},
		&AgentRecord{ID: "30001", Tier: hierarchy.TierTask, Status: models.AgentStatusActive},
	)
	configs := newMemoryConfigStore()
	a := New(dir, configs)
	ctx := context.Background()

	head, err := a.Allocate(ctx, "00001", "implement the migration script")
	require.NoError(t, err)
	assert.Equal(t, ClassCode, head.Class)
	assert.Equal(t, "claude-opus-4", head.Model)

	task, err := a.Allocate(ctx, "30001", "implement the migration script")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", task.Model)

	// The preferred config id is persisted on the agent.
	got, err := dir.Get(ctx, "30001")
	require.NoError(t, err)
	assert.Equal(t, task.ConfigID, got.PreferredConfigID)
}

func TestAllocateReusesExistingConfig(t *testing.T) {
	dir := newMemoryDirectory(&AgentRecord{ID: "30001", Tier: hierarchy.TierTask, Status: models.AgentStatusActive})
	configs := newMemoryConfigStore()
	a := New(dir, configs)
	ctx := context.Background()

	first, err := a.Allocate(ctx, "30001", "debug the parser")
	require.NoError(t, err)
	second, err := a.Allocate(ctx, "30001", "fix the compile error")
	require.NoError(t, err)
	assert.Equal(t, first.ConfigID, second.ConfigID)
}

func TestAllocateUnknownAgent(t *testing.T) {
	a := New(newMemoryDirectory(), newMemoryConfigStore())
	_, err := a.Allocate(context.Background(), "30009", "anything")
	require.Error(t, err)
}

func TestIdleAndWakeProtocol(t *testing.T) {
	dir := newMemoryDirectory(
		&AgentRecord{ID: "00001", Tier: hierarchy.TierHead, Status: models.AgentStatusActive, Persistent: true, PreferredConfigID: "cfg-head"},
		&AgentRecord{ID: "10001", Tier: hierarchy.TierCouncil, Status: models.AgentStatusActive, Persistent: true, PreferredConfigID: "cfg-council"},
		&AgentRecord{ID: "30001", Tier: hierarchy.TierTask, Status: models.AgentStatusWorking},
		&AgentRecord{ID: "30002", Tier: hierarchy.TierTask, Status: models.AgentStatusTerminated},
	)
	configs := newMemoryConfigStore()
	a := New(dir, configs)
	ctx := context.Background()

	require.NoError(t, a.EnterIdleMode(ctx))

	head, err := dir.Get(ctx, "00001")
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusIdleWorking, head.Status)
	assert.Equal(t, "cfg-head", head.SavedConfigID)
	assert.NotEqual(t, "cfg-head", head.PreferredConfigID, "switched to the idle model config")

	task, err := dir.Get(ctx, "30001")
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusIdlePaused, task.Status)

	dead, err := dir.Get(ctx, "30002")
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusTerminated, dead.Status, "terminated agents untouched")

	require.NoError(t, a.WakeFromIdle(ctx))

	head, err = dir.Get(ctx, "00001")
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusActive, head.Status)
	assert.Equal(t, "cfg-head", head.PreferredConfigID, "prior config restored")
	assert.Empty(t, head.SavedConfigID)

	task, err = dir.Get(ctx, "30001")
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusActive, task.Status)
}

func TestWakeReallocatesWithoutSavedConfig(t *testing.T) {
	dir := newMemoryDirectory(
		&AgentRecord{
			ID:                     "10001",
			Tier:                   hierarchy.TierCouncil,
			Status:                 models.AgentStatusIdleWorking,
			Persistent:             true,
			CurrentTaskDescription: "analyze the budget report",
		},
	)
	configs := newMemoryConfigStore()
	a := New(dir, configs)
	ctx := context.Background()

	require.NoError(t, a.WakeFromIdle(ctx))

	got, err := dir.Get(ctx, "10001")
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusActive, got.Status)
	assert.NotEmpty(t, got.PreferredConfigID, "fresh allocation from the current task")
}
