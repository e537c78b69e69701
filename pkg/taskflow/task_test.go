package taskflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionTable(t *testing.T) {
	tests := []struct {
		name     string
		from, to Status
		priority Priority
		want     bool
	}{
		{"pending to deliberating", StatusPending, StatusDeliberating, PriorityNormal, true},
		{"pending to approved needs fast priority", StatusPending, StatusApproved, PriorityNormal, false},
		{"pending to approved critical", StatusPending, StatusApproved, PriorityCritical, true},
		{"pending to approved sovereign", StatusPending, StatusApproved, PrioritySovereign, true},
		{"pending to approved idle", StatusPending, StatusApproved, PriorityIdle, true},
		{"deliberating to approved", StatusDeliberating, StatusApproved, PriorityNormal, true},
		{"deliberating to rejected", StatusDeliberating, StatusRejected, PriorityNormal, true},
		{"approved to delegating", StatusApproved, StatusDelegating, PriorityNormal, true},
		{"approved to in_progress", StatusApproved, StatusInProgress, PriorityNormal, true},
		{"delegating to assigned", StatusDelegating, StatusAssigned, PriorityNormal, true},
		{"assigned to in_progress", StatusAssigned, StatusInProgress, PriorityNormal, true},
		{"in_progress retry self-loop", StatusInProgress, StatusInProgress, PriorityNormal, true},
		{"in_progress to review", StatusInProgress, StatusReview, PriorityNormal, true},
		{"review to completed", StatusReview, StatusCompleted, PriorityNormal, true},
		{"review back to in_progress", StatusReview, StatusInProgress, PriorityNormal, true},
		{"skip deliberation stages", StatusPending, StatusInProgress, PriorityCritical, false},
		{"completed is terminal", StatusCompleted, StatusInProgress, PriorityNormal, false},
		{"rejected is terminal", StatusRejected, StatusApproved, PriorityNormal, false},
		{"failed is terminal", StatusFailed, StatusAssigned, PriorityNormal, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, PriorityNormal, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to, tt.priority))
		})
	}
}

func TestTransitionAppendsEvents(t *testing.T) {
	task := NewTask("task-1", "ingest", "ingest the feed", PriorityNormal)
	require.Equal(t, StatusPending, task.Status)
	require.Len(t, task.Events, 1)
	assert.Equal(t, EventTaskCreated, task.Events[0].Type)

	require.NoError(t, task.Transition(StatusDeliberating, ""))
	require.NoError(t, task.Transition(StatusApproved, "vote passed"))
	require.NoError(t, task.Transition(StatusInProgress, ""))
	require.NoError(t, task.Transition(StatusReview, ""))
	require.NoError(t, task.Transition(StatusCompleted, ""))

	assert.Equal(t, StatusCompleted, task.Status)
	last := task.Events[len(task.Events)-1]
	assert.Equal(t, EventCompleted, last.Type)
}

func TestIllegalTransitionLeavesTaskUntouched(t *testing.T) {
	task := NewTask("task-1", "ingest", "", PriorityNormal)

	err := task.Transition(StatusApproved, "")
	var illegal *IllegalStateTransition
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, StatusPending, illegal.From)
	assert.Equal(t, StatusApproved, illegal.To)

	assert.Equal(t, StatusPending, task.Status)
	assert.Len(t, task.Events, 1, "no event appended for a rejected move")
}

func TestRecordFailureRetriesThenFails(t *testing.T) {
	task := NewTask("task-1", "ingest", "", PriorityCritical, WithMaxRetries(2))
	require.NoError(t, task.Transition(StatusApproved, ""))
	require.NoError(t, task.Transition(StatusInProgress, ""))

	// First two failures re-enter assigned.
	for attempt := 1; attempt <= 2; attempt++ {
		require.NoError(t, task.RecordFailure("worker crashed"))
		assert.Equal(t, StatusAssigned, task.Status)
		assert.Equal(t, attempt, task.RetryCount)
		require.NoError(t, task.Transition(StatusInProgress, ""))
	}

	// Budget exhausted: the third failure is final.
	require.NoError(t, task.RecordFailure("worker crashed"))
	assert.Equal(t, StatusFailed, task.Status)

	last := task.Events[len(task.Events)-1]
	assert.Equal(t, EventFailed, last.Type)
	assert.Equal(t, "worker crashed", last.Data["reason"])
}

func TestRecordFailureOutsideInProgress(t *testing.T) {
	task := NewTask("task-1", "ingest", "", PriorityNormal)
	err := task.RecordFailure("too early")
	var illegal *IllegalStateTransition
	require.ErrorAs(t, err, &illegal)
}

func TestFoldReconstructsState(t *testing.T) {
	clock := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	tick := func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	task := NewTask("task-1", "ingest", "", PriorityCritical, WithClock(tick), WithMaxRetries(3))
	require.NoError(t, task.Transition(StatusApproved, ""))
	require.NoError(t, task.Transition(StatusDelegating, ""))
	require.NoError(t, task.Transition(StatusAssigned, ""))
	require.NoError(t, task.Transition(StatusInProgress, ""))
	task.UpdateProgress(40, "halfway")
	require.NoError(t, task.RecordFailure("flaky worker"))
	require.NoError(t, task.Transition(StatusInProgress, ""))
	require.NoError(t, task.Transition(StatusReview, ""))

	status, retries := Fold(task.Events)
	assert.Equal(t, StatusReview, status)
	assert.Equal(t, 1, retries)

	// The fold is order-insensitive in input: shuffle and replay.
	shuffled := []Event{task.Events[5], task.Events[1], task.Events[7], task.Events[0],
		task.Events[3], task.Events[8], task.Events[2], task.Events[6], task.Events[4]}
	status, retries = Fold(shuffled)
	assert.Equal(t, StatusReview, status)
	assert.Equal(t, 1, retries)
}

func TestReconcileRestoresDivergedStatus(t *testing.T) {
	task := NewTask("task-1", "ingest", "", PriorityCritical)
	require.NoError(t, task.Transition(StatusApproved, ""))
	require.NoError(t, task.Transition(StatusInProgress, ""))

	// Simulate a divergent in-memory value.
	task.Status = StatusCompleted
	task.Reconcile()
	assert.Equal(t, StatusInProgress, task.Status)
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
}
