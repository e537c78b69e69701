package services

import (
	"context"
	"testing"

	"github.com/agentium/agentium/pkg/taskflow"
	"github.com/agentium/agentium/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDeliberation(t *testing.T) (*DeliberationService, *TaskService, context.Context) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	agentSvc := NewAgentService(client)
	seedChain(t, agentSvc)
	return NewDeliberationService(client), NewTaskService(client), context.Background()
}

func TestDeliberationLifecycle(t *testing.T) {
	svc, tasks, ctx := setupDeliberation(t)

	task, err := tasks.CreateTask(ctx, "30001", "Contested plan", "", "", taskflow.PriorityNormal)
	require.NoError(t, err)

	delib, err := svc.Open(ctx, task.ID, "plan exceeds scope", "10001")
	require.NoError(t, err)
	assert.Equal(t, "10001", delib.OpenedBy)

	open, err := svc.ListOpen(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)

	require.NoError(t, svc.CastVote(ctx, delib.ID, "10001", "approve", "scope is fine"))
	require.NoError(t, svc.CastVote(ctx, delib.ID, "10002", "reject", ""))
	require.NoError(t, svc.CastVote(ctx, delib.ID, "10003", "approve", ""))

	tally, err := svc.Tally(ctx, delib.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, tally.Approve)
	assert.Equal(t, 1, tally.Reject)
	assert.Equal(t, 0, tally.Abstain)

	require.NoError(t, svc.Resolve(ctx, delib.ID, "approved 2-1", false))

	got, err := svc.Get(ctx, delib.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.ResolvedAt)

	open, err = svc.ListOpen(ctx)
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestCastVoteRejectsDuplicates(t *testing.T) {
	svc, _, ctx := setupDeliberation(t)

	delib, err := svc.Open(ctx, "", "budget increase", "10001")
	require.NoError(t, err)

	require.NoError(t, svc.CastVote(ctx, delib.ID, "10002", "approve", ""))
	err = svc.CastVote(ctx, delib.ID, "10002", "reject", "changed my mind")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCastVoteValidation(t *testing.T) {
	svc, _, ctx := setupDeliberation(t)

	delib, err := svc.Open(ctx, "", "topic", "10001")
	require.NoError(t, err)

	err = svc.CastVote(ctx, delib.ID, "10002", "maybe", "")
	assert.True(t, IsValidationError(err))

	err = svc.CastVote(ctx, delib.ID, "", "approve", "")
	assert.True(t, IsValidationError(err))
}

func TestVoteAfterResolutionRejected(t *testing.T) {
	svc, _, ctx := setupDeliberation(t)

	delib, err := svc.Open(ctx, "", "topic", "10001")
	require.NoError(t, err)
	require.NoError(t, svc.Resolve(ctx, delib.ID, "dismissed as duplicate", true))

	err = svc.CastVote(ctx, delib.ID, "10002", "approve", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.Resolve(ctx, delib.ID, "again", false)
	assert.ErrorIs(t, err, ErrConcurrentModification)
}
