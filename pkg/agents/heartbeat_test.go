package agents

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentium/agentium/pkg/audit"
	"github.com/agentium/agentium/pkg/models"
)

func newHeartbeatFixture(t *testing.T, now time.Time) (*HeartbeatMonitor, *Service, *MemoryStore, *audit.MemoryRecorder) {
	t.Helper()
	store := NewMemoryStore()
	recorder := audit.NewMemoryRecorder()
	svc := New(store, recorder, WithClock(func() time.Time { return now }))
	m := NewHeartbeatMonitor(svc, store, 2*time.Minute, time.Minute)
	return m, svc, store, recorder
}

func TestHeartbeatMonitorSuspendsSilentAgents(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m, svc, store, recorder := newHeartbeatFixture(t, now)
	ctx := context.Background()

	_, lead, task := seedHierarchy(t, svc)

	// The lead checked in recently, the task went silent.
	fresh, err := store.Get(ctx, lead.ID)
	require.NoError(t, err)
	fresh.LastHeartbeatAt = now.Add(-30 * time.Second)
	require.NoError(t, store.Update(ctx, fresh))

	silent, err := store.Get(ctx, task.ID)
	require.NoError(t, err)
	silent.Status = models.AgentStatusWorking
	silent.LastHeartbeatAt = now.Add(-10 * time.Minute)
	require.NoError(t, store.Update(ctx, silent))

	m.CheckOnce(ctx)

	got, err := store.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusSuspended, got.Status)

	got, err = store.Get(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusActive, got.Status)

	entries := recorder.ByKind(audit.KindAgentLifecycle)
	found := false
	for _, e := range entries {
		if e.ActorID == task.ID && e.Details["event"] == "suspended" {
			found = true
		}
	}
	assert.True(t, found, "suspension must be audited")
}

func TestHeartbeatMonitorJudgesNeverSeenAgentsByCreation(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m, svc, store, _ := newHeartbeatFixture(t, now)
	ctx := context.Background()

	_, _, task := seedHierarchy(t, svc)

	// No heartbeat ever; created long before the cutoff.
	a, err := store.Get(ctx, task.ID)
	require.NoError(t, err)
	a.Status = models.AgentStatusActive
	a.CreatedAt = now.Add(-time.Hour)
	a.LastHeartbeatAt = time.Time{}
	require.NoError(t, store.Update(ctx, a))

	m.CheckOnce(ctx)

	got, err := store.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusSuspended, got.Status)
}

func TestHeartbeatMonitorNeverSuspendsHead(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m, svc, store, _ := newHeartbeatFixture(t, now)
	ctx := context.Background()

	head, _, _ := seedHierarchy(t, svc)

	a, err := store.Get(ctx, head.ID)
	require.NoError(t, err)
	a.CreatedAt = now.Add(-24 * time.Hour)
	require.NoError(t, store.Update(ctx, a))

	m.CheckOnce(ctx)

	got, err := store.Get(ctx, head.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusActive, got.Status)
}

func TestHeartbeatMonitorIgnoresParkedAgents(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m, svc, store, _ := newHeartbeatFixture(t, now)
	ctx := context.Background()

	_, _, task := seedHierarchy(t, svc)

	a, err := store.Get(ctx, task.ID)
	require.NoError(t, err)
	a.Status = models.AgentStatusIdlePaused
	a.CreatedAt = now.Add(-time.Hour)
	require.NoError(t, store.Update(ctx, a))

	m.CheckOnce(ctx)

	got, err := store.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusIdlePaused, got.Status)
}
