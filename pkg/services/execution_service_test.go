package services

import (
	"context"
	"testing"
	"time"

	"github.com/agentium/agentium/pkg/executor"
	"github.com/agentium/agentium/pkg/sandbox"
	"github.com/agentium/agentium/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutionCreateAndUpdate(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	agentSvc := NewAgentService(client)
	seedChain(t, agentSvc)
	svc := NewExecutionService(client)
	ctx := context.Background()

	rec := &executor.Record{
		ID:           "exec-1",
		AgentID:      "30001",
		Code:         "print('hi')",
		Language:     "python",
		Dependencies: []string{"pandas"},
		Status:       executor.StatusPending,
		SecurityResult: &executor.SecurityResult{
			Passed:         true,
			Recommendation: "APPROVE",
		},
		StartedAt: time.Now().UTC(),
	}
	require.NoError(t, svc.Create(ctx, rec))
	assert.ErrorIs(t, svc.Create(ctx, rec), ErrAlreadyExists)

	rec.Status = executor.StatusCompleted
	rec.SandboxID = "sb-1"
	rec.Summary = &executor.Summary{
		RowCount:        42,
		Stdout:          "done",
		ExecutionTimeMs: 1800,
	}
	rec.CompletedAt = time.Now().UTC()
	require.NoError(t, svc.Update(ctx, rec))

	rows, err := svc.ListByAgent(ctx, "30001", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "sb-1", rows[0].SandboxID)
	assert.Equal(t, float64(42), rows[0].Summary["row_count"])
	assert.Equal(t, true, rows[0].SecurityResult["passed"])
	require.NotNil(t, rows[0].CompletedAt)
}

func TestExecutionUpdateNotFound(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewExecutionService(client)

	err := svc.Update(context.Background(), &executor.Record{ID: "missing", Status: executor.StatusFailed})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSandboxRecordLifecycle(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSandboxRecordService(client)
	ctx := context.Background()

	sb := &sandbox.Sandbox{
		ID:          "sb-1",
		ContainerID: "c0ffee",
		AgentID:     "30001",
		Config:      sandbox.Config{Image: "agentium-sandbox:latest", NetworkMode: "none"},
		CreatedAt:   time.Now().UTC().Add(-2 * time.Hour),
	}
	svc.SandboxCreated(ctx, sb)

	leaked, err := svc.Leaked(ctx, time.Hour)
	require.NoError(t, err)
	require.Len(t, leaked, 1)
	assert.Equal(t, "c0ffee", leaked[0].ContainerID)

	svc.SandboxDestroyed(ctx, "sb-1", "execution finished")

	leaked, err = svc.Leaked(ctx, time.Hour)
	require.NoError(t, err)
	assert.Empty(t, leaked)

	row, err := client.SandboxRecord.Get(ctx, "sb-1")
	require.NoError(t, err)
	require.NotNil(t, row.DestroyReason)
	assert.Equal(t, "execution finished", *row.DestroyReason)
}
