package services

import (
	"context"
	"errors"
	"testing"

	"github.com/agentium/agentium/pkg/models"
	"github.com/agentium/agentium/pkg/taskflow"
	"github.com/agentium/agentium/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTaskService(t *testing.T) (*TaskService, *AgentService) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	agentSvc := NewAgentService(client)
	seedChain(t, agentSvc)
	return NewTaskService(client), agentSvc
}

func TestCreateTaskPersistsCreationEvent(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "30001", "Fetch dataset", "download and verify the dataset", "code", taskflow.PriorityNormal)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := svc.Load(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, taskflow.StatusPending, got.Status)
	assert.Equal(t, "Fetch dataset", got.Title)
	assert.Equal(t, "code", got.Type)
	assert.Equal(t, taskflow.PriorityNormal, got.Priority)
	require.Len(t, got.Events, 1)
	assert.Equal(t, taskflow.EventTaskCreated, got.Events[0].Type)
}

func TestCreateTaskValidation(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, "", "x", "", "", taskflow.PriorityNormal)
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateTask(ctx, "30001", "", "", "", taskflow.PriorityNormal)
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateTask(ctx, "30001", "x", "", "", taskflow.Priority("urgent"))
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateTask(ctx, "30099", "x", "", "", taskflow.PriorityNormal)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransitionEnforcesTable(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "30001", "Review PR", "", "", taskflow.PriorityNormal)
	require.NoError(t, err)

	// Normal priority may not take the fast-approval shortcut.
	_, err = svc.Transition(ctx, created.ID, taskflow.StatusApproved, "")
	var illegal *taskflow.IllegalStateTransition
	require.True(t, errors.As(err, &illegal))
	assert.Equal(t, taskflow.StatusPending, illegal.From)

	got, err := svc.Transition(ctx, created.ID, taskflow.StatusDeliberating, "council review")
	require.NoError(t, err)
	assert.Equal(t, taskflow.StatusDeliberating, got.Status)

	got, err = svc.Transition(ctx, created.ID, taskflow.StatusApproved, "vote passed")
	require.NoError(t, err)
	assert.Equal(t, taskflow.StatusApproved, got.Status)

	// Reloading replays the event log to the same state.
	loaded, err := svc.Load(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, taskflow.StatusApproved, loaded.Status)
	assert.Len(t, loaded.Events, 3)
}

func TestRecordFailureRetriesThenFails(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "30001", "Flaky job", "", "", taskflow.PrioritySovereign)
	require.NoError(t, err)
	_, err = svc.Transition(ctx, created.ID, taskflow.StatusApproved, "")
	require.NoError(t, err)
	_, err = svc.Transition(ctx, created.ID, taskflow.StatusInProgress, "")
	require.NoError(t, err)

	// Three failures fit the default retry budget.
	for attempt := 1; attempt <= 3; attempt++ {
		got, err := svc.RecordFailure(ctx, created.ID, "worker crashed")
		require.NoError(t, err)
		assert.Equal(t, taskflow.StatusAssigned, got.Status)
		assert.Equal(t, attempt, got.RetryCount)

		_, err = svc.Transition(ctx, created.ID, taskflow.StatusInProgress, "")
		require.NoError(t, err)
	}

	got, err := svc.RecordFailure(ctx, created.ID, "worker crashed again")
	require.NoError(t, err)
	assert.Equal(t, taskflow.StatusFailed, got.Status)

	loaded, err := svc.Load(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, taskflow.StatusFailed, loaded.Status)
	assert.Equal(t, 3, loaded.RetryCount)
}

func TestUpdateProgressValidation(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "30001", "Long job", "", "", taskflow.PriorityNormal)
	require.NoError(t, err)

	_, err = svc.UpdateProgress(ctx, created.ID, 150, "")
	assert.True(t, IsValidationError(err))

	got, err := svc.UpdateProgress(ctx, created.ID, 40, "halfway there")
	require.NoError(t, err)
	assert.Equal(t, 40, got.Progress)
}

func TestMarkDeliberatingForcesMidFlight(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "30001", "Contested output", "", "", taskflow.PrioritySovereign)
	require.NoError(t, err)
	_, err = svc.Transition(ctx, created.ID, taskflow.StatusApproved, "")
	require.NoError(t, err)
	_, err = svc.Transition(ctx, created.ID, taskflow.StatusInProgress, "")
	require.NoError(t, err)

	require.NoError(t, svc.MarkDeliberating(ctx, created.ID, "critic escalation"))

	loaded, err := svc.Load(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, taskflow.StatusDeliberating, loaded.Status)
}

func TestCancelNonTerminal(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	first, err := svc.CreateTask(ctx, "30001", "one", "", "", taskflow.PrioritySovereign)
	require.NoError(t, err)
	second, err := svc.CreateTask(ctx, "30001", "two", "", "", taskflow.PrioritySovereign)
	require.NoError(t, err)
	done, err := svc.CreateTask(ctx, "30001", "three", "", "", taskflow.PrioritySovereign)
	require.NoError(t, err)

	for _, to := range []taskflow.Status{taskflow.StatusApproved, taskflow.StatusInProgress, taskflow.StatusReview, taskflow.StatusCompleted} {
		_, err = svc.Transition(ctx, done.ID, to, "")
		require.NoError(t, err)
	}

	n, err := svc.CancelNonTerminal(ctx, "30001", "agent liquidated")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, id := range []string{first.ID, second.ID} {
		loaded, err := svc.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, taskflow.StatusCancelled, loaded.Status)
		last := loaded.Events[len(loaded.Events)-1]
		assert.Equal(t, taskflow.EventCancelled, last.Type)
		assert.Equal(t, "agent liquidated", last.Data["reason"])
	}

	loaded, err := svc.Load(ctx, done.ID)
	require.NoError(t, err)
	assert.Equal(t, taskflow.StatusCompleted, loaded.Status)
}

func TestListByAgent(t *testing.T) {
	svc, agentSvc := setupTaskService(t)
	ctx := context.Background()
	require.NoError(t, agentSvc.Create(ctx, newAgentRecord("30002", "20001", models.AgentStatusWorking)))

	_, err := svc.CreateTask(ctx, "30001", "mine", "", "", taskflow.PriorityNormal)
	require.NoError(t, err)
	_, err = svc.CreateTask(ctx, "30002", "other", "", "", taskflow.PriorityNormal)
	require.NoError(t, err)

	mine, err := svc.ListByAgent(ctx, "30001")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "mine", mine[0].Title)
}
