package services

import (
	"context"
	"testing"

	"github.com/agentium/agentium/pkg/critic"
	"github.com/agentium/agentium/pkg/taskflow"
	"github.com/agentium/agentium/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupReviews(t *testing.T) (*CriticReviewService, string, context.Context) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	agentSvc := NewAgentService(client)
	seedChain(t, agentSvc)
	tasks := NewTaskService(client)
	ctx := context.Background()

	task, err := tasks.CreateTask(ctx, "30001", "Build report", "", "", taskflow.PriorityNormal)
	require.NoError(t, err)

	svc := NewCriticReviewService(client, map[critic.Type][]string{
		critic.TypeCode:   {"10002", "10003"},
		critic.TypeOutput: {"10004"},
	})
	return svc, task.ID, ctx
}

func TestReviewRecordAndList(t *testing.T) {
	svc, taskID, ctx := setupReviews(t)

	hash := critic.Fingerprint("print('hello')")
	err := svc.Record(ctx, taskID, critic.TypeCode, hash, 1, &critic.Review{
		Verdict:     critic.VerdictReject,
		CriticID:    "10002",
		Reason:      "missing error handling",
		Suggestions: []string{"wrap the file read"},
	})
	require.NoError(t, err)

	rows, err := svc.ListByTask(ctx, taskID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "10002", rows[0].CriticID)
	assert.Equal(t, hash, rows[0].SubmissionHash)
	assert.Equal(t, []string{"wrap the file read"}, rows[0].Suggestions)
	assert.False(t, rows[0].Cached)

	n, err := svc.AttemptCount(ctx, taskID, critic.TypeCode)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = svc.AttemptCount(ctx, taskID, critic.TypeOutput)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestReviewRecordValidation(t *testing.T) {
	svc, taskID, ctx := setupReviews(t)

	err := svc.Record(ctx, "", critic.TypeCode, "h", 1, &critic.Review{Verdict: critic.VerdictPass, CriticID: "10002"})
	assert.True(t, IsValidationError(err))

	err = svc.Record(ctx, taskID, critic.TypeCode, "h", 1, nil)
	assert.True(t, IsValidationError(err))
}

func TestDirectoryCountsFromStoredReviews(t *testing.T) {
	svc, taskID, ctx := setupReviews(t)

	require.NoError(t, svc.Record(ctx, taskID, critic.TypeCode, "h1", 1,
		&critic.Review{Verdict: critic.VerdictReject, CriticID: "10002"}))
	require.NoError(t, svc.Record(ctx, taskID, critic.TypeCode, "h2", 2,
		&critic.Review{Verdict: critic.VerdictPass, CriticID: "10002"}))

	critics, err := svc.Available(ctx, critic.TypeCode)
	require.NoError(t, err)
	require.Len(t, critics, 2)
	assert.Equal(t, "10002", critics[0].ID)
	assert.Equal(t, 2, critics[0].CompletedReviews)
	assert.Equal(t, "10003", critics[1].ID)
	assert.Equal(t, 0, critics[1].CompletedReviews)

	none, err := svc.Available(ctx, critic.TypePlan)
	require.NoError(t, err)
	assert.Empty(t, none)
}
