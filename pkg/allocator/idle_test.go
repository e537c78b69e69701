package allocator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/agentium/agentium/pkg/models"
)

type scriptedBacklog struct {
	open int
	err  error
}

func (b *scriptedBacklog) OpenTaskCount(context.Context) (int, error) {
	return b.open, b.err
}

func newIdleFixture() (*Watcher, *scriptedBacklog, *memoryDirectory) {
	dir := newMemoryDirectory(
		&AgentRecord{ID: "10001", Tier: hierarchy.TierCouncil, Persistent: true, Status: models.AgentStatusActive},
		&AgentRecord{ID: "30001", Tier: hierarchy.TierTask, Status: models.AgentStatusActive},
	)
	a := New(dir, newMemoryConfigStore())
	backlog := &scriptedBacklog{}
	w := NewWatcher(a, backlog, WatcherConfig{IdleAfter: 2})
	return w, backlog, dir
}

func TestWatcherEntersIdleAfterSustainedEmptyBacklog(t *testing.T) {
	w, _, dir := newIdleFixture()
	ctx := context.Background()

	// One empty check is not enough.
	w.CheckOnce(ctx)
	agent, err := dir.Get(ctx, "10001")
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusActive, agent.Status)

	w.CheckOnce(ctx)
	agent, err = dir.Get(ctx, "10001")
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusIdleWorking, agent.Status)

	paused, err := dir.Get(ctx, "30001")
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusIdlePaused, paused.Status)
}

func TestWatcherWakesOnNewWork(t *testing.T) {
	w, backlog, dir := newIdleFixture()
	ctx := context.Background()

	w.CheckOnce(ctx)
	w.CheckOnce(ctx)
	require.True(t, w.idle)

	backlog.open = 3
	w.CheckOnce(ctx)
	assert.False(t, w.idle)

	agent, err := dir.Get(ctx, "10001")
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusActive, agent.Status)
}

func TestWatcherWorkResetsIdleCountdown(t *testing.T) {
	w, backlog, _ := newIdleFixture()
	ctx := context.Background()

	w.CheckOnce(ctx)
	backlog.open = 1
	w.CheckOnce(ctx)
	backlog.open = 0
	w.CheckOnce(ctx)
	assert.False(t, w.idle, "a single empty check after work must not idle the system")

	w.CheckOnce(ctx)
	assert.True(t, w.idle)
}

func TestWatcherBacklogErrorLeavesModeUnchanged(t *testing.T) {
	w, backlog, _ := newIdleFixture()
	ctx := context.Background()

	backlog.err = errors.New("database down")
	w.CheckOnce(ctx)
	w.CheckOnce(ctx)
	w.CheckOnce(ctx)
	assert.False(t, w.idle)
	assert.Zero(t, w.empty)
}
