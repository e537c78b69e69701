package services

import (
	"context"
	"errors"
	"testing"

	"github.com/agentium/agentium/pkg/agents"
	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/agentium/agentium/pkg/models"
	"github.com/agentium/agentium/pkg/taskflow"
	"github.com/agentium/agentium/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAgentRecord(id, parentID string, status models.AgentStatus) *agents.Agent {
	return &agents.Agent{
		ID:       id,
		Tier:     hierarchy.TierOf(id),
		ParentID: parentID,
		Status:   status,
	}
}

func seedChain(t *testing.T, svc *AgentService) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, svc.Create(ctx, newAgentRecord("00001", "", models.AgentStatusActive)))
	require.NoError(t, svc.Create(ctx, newAgentRecord("10001", "00001", models.AgentStatusActive)))
	require.NoError(t, svc.Create(ctx, newAgentRecord("20001", "10001", models.AgentStatusActive)))
	require.NoError(t, svc.Create(ctx, newAgentRecord("30001", "20001", models.AgentStatusWorking)))
}

func TestAgentServiceCreateAndGet(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAgentService(client)
	ctx := context.Background()

	head := newAgentRecord("00001", "", models.AgentStatusActive)
	head.Persistent = true
	head.Ethos = "serve the user"
	require.NoError(t, svc.Create(ctx, head))

	got, err := svc.Get(ctx, "00001")
	require.NoError(t, err)
	assert.Equal(t, hierarchy.TierHead, got.Tier)
	assert.Equal(t, models.AgentStatusActive, got.Status)
	assert.True(t, got.Persistent)
	assert.Equal(t, "serve the user", got.Ethos)
	assert.Empty(t, got.ParentID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestAgentServiceCreateDuplicate(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAgentService(client)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, newAgentRecord("00001", "", models.AgentStatusActive)))
	err := svc.Create(ctx, newAgentRecord("00001", "", models.AgentStatusActive))
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestAgentServiceCreateValidation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAgentService(client)
	ctx := context.Background()

	err := svc.Create(ctx, newAgentRecord("abc", "", models.AgentStatusActive))
	assert.True(t, IsValidationError(err))

	bad := newAgentRecord("30001", "20001", models.AgentStatus("hibernating"))
	err = svc.Create(ctx, bad)
	assert.True(t, IsValidationError(err))
}

func TestAgentServiceGetNotFound(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAgentService(client)

	_, err := svc.Get(context.Background(), "30099")
	var notFound *agents.ErrAgentNotFound
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "30099", notFound.ID)
}

func TestAgentServiceUpdate(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAgentService(client)
	ctx := context.Background()
	seedChain(t, svc)

	a, err := svc.Get(ctx, "30001")
	require.NoError(t, err)
	a.Status = models.AgentStatusIdlePaused
	a.RecentViolations = 2
	a.Ethos = "prefer small steps"
	require.NoError(t, svc.Update(ctx, a))

	got, err := svc.Get(ctx, "30001")
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusIdlePaused, got.Status)
	assert.Equal(t, 2, got.RecentViolations)
	assert.Equal(t, "prefer small steps", got.Ethos)
}

func TestAgentServiceListByParent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAgentService(client)
	ctx := context.Background()
	seedChain(t, svc)
	require.NoError(t, svc.Create(ctx, newAgentRecord("30002", "20001", models.AgentStatusIdlePaused)))

	children, err := svc.ListByParent(ctx, "20001")
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "30001", children[0].ID)
	assert.Equal(t, "30002", children[1].ID)
}

func TestAgentServiceNextID(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAgentService(client)
	ctx := context.Background()

	id, err := svc.NextID(ctx, hierarchy.TierTask)
	require.NoError(t, err)
	assert.Equal(t, "30001", id)

	seedChain(t, svc)
	id, err = svc.NextID(ctx, hierarchy.TierTask)
	require.NoError(t, err)
	assert.Equal(t, "30002", id)

	id, err = svc.NextID(ctx, hierarchy.TierCouncil)
	require.NoError(t, err)
	assert.Equal(t, "10002", id)
}

func TestAgentServiceParentOf(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAgentService(client)
	ctx := context.Background()
	seedChain(t, svc)

	parent, err := svc.ParentOf(ctx, "30001")
	require.NoError(t, err)
	assert.Equal(t, "20001", parent)

	_, err = svc.ParentOf(ctx, "00001")
	assert.Error(t, err)

	// No recorded parent falls back to the default of the tier above.
	require.NoError(t, svc.Create(ctx, newAgentRecord("30005", "", models.AgentStatusWorking)))
	parent, err = svc.ParentOf(ctx, "30005")
	require.NoError(t, err)
	assert.Equal(t, "20001", parent)
}

func TestAgentRegistryIdleTaskAgent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAgentService(client)
	ctx := context.Background()
	seedChain(t, svc)

	registry := svc.Registry()
	_, err := registry.IdleTaskAgent(ctx, "20001")
	assert.Error(t, err, "no paused task agent yet")

	require.NoError(t, svc.Create(ctx, newAgentRecord("30002", "20001", models.AgentStatusIdlePaused)))
	require.NoError(t, svc.Create(ctx, newAgentRecord("30003", "20001", models.AgentStatusIdlePaused)))

	id, err := registry.IdleTaskAgent(ctx, "20001")
	require.NoError(t, err)
	assert.Equal(t, "30002", id)
}

func TestAgentRegistryGet(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAgentService(client)
	ctx := context.Background()
	seedChain(t, svc)

	info, err := svc.Registry().Get(ctx, "30001")
	require.NoError(t, err)
	assert.Equal(t, "20001", info.ParentID)
	assert.Equal(t, models.AgentStatusWorking, info.Status)
}

func TestAllocatorDirectoryRoundTrip(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAgentService(client)
	ctx := context.Background()
	seedChain(t, svc)

	dir := NewAllocatorDirectory(client)
	rec, err := dir.Get(ctx, "30001")
	require.NoError(t, err)
	assert.Equal(t, hierarchy.TierTask, rec.Tier)
	assert.Empty(t, rec.PreferredConfigID)

	rec.PreferredConfigID = "cfg-1"
	rec.SavedConfigID = "cfg-0"
	rec.Status = models.AgentStatusIdleWorking
	require.NoError(t, dir.Update(ctx, rec))

	got, err := dir.Get(ctx, "30001")
	require.NoError(t, err)
	assert.Equal(t, "cfg-1", got.PreferredConfigID)
	assert.Equal(t, "cfg-0", got.SavedConfigID)
	assert.Equal(t, models.AgentStatusIdleWorking, got.Status)

	all, err := dir.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestAllocatorDirectoryCurrentTask(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAgentService(client)
	tasks := NewTaskService(client)
	ctx := context.Background()
	seedChain(t, svc)

	task, err := tasks.CreateTask(ctx, "30001", "Summarize logs", "summarize the error logs", "", taskflow.PrioritySovereign)
	require.NoError(t, err)
	_, err = tasks.Transition(ctx, task.ID, taskflow.StatusApproved, "")
	require.NoError(t, err)
	_, err = tasks.Transition(ctx, task.ID, taskflow.StatusInProgress, "")
	require.NoError(t, err)

	rec, err := NewAllocatorDirectory(client).Get(ctx, "30001")
	require.NoError(t, err)
	assert.Equal(t, "summarize the error logs", rec.CurrentTaskDescription)
}
