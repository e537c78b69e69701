package services

import (
	"context"
	"fmt"

	"github.com/agentium/agentium/ent"
	"github.com/agentium/agentium/ent/agent"
	"github.com/agentium/agentium/ent/task"
	"github.com/agentium/agentium/ent/taskevent"
	"github.com/agentium/agentium/pkg/taskflow"
	"github.com/google/uuid"
)

// terminalTaskStatuses are the statuses liquidation leaves untouched.
var terminalTaskStatuses = []task.Status{
	task.Status(taskflow.StatusCompleted),
	task.Status(taskflow.StatusRejected),
	task.Status(taskflow.StatusFailed),
	task.Status(taskflow.StatusCancelled),
}

// TaskService persists the task state machine and its append-only event
// log. Every mutation replays the stored events first, so a snapshot that
// diverged from the log is corrected before the transition is judged.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService.
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// CreateTask validates the request, builds a pending task and persists the
// row together with its creation event in one transaction.
func (s *TaskService) CreateTask(ctx context.Context, agentID, title, description, taskType string, priority taskflow.Priority) (*taskflow.Task, error) {
	if agentID == "" {
		return nil, NewValidationError("agent_id", "agent ID is required")
	}
	if title == "" {
		return nil, NewValidationError("title", "title is required")
	}
	if !priority.Valid() {
		return nil, NewValidationError("priority", fmt.Sprintf("unknown priority %q", priority))
	}

	t := taskflow.NewTask(uuid.New().String(), title, description, priority)
	t.Type = taskType

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := tx.Agent.Query().Where(agent.ID(agentID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check agent %s: %w", agentID, err)
	}
	if !exists {
		return nil, fmt.Errorf("agent %s: %w", agentID, ErrNotFound)
	}

	create := tx.Task.Create().
		SetID(t.ID).
		SetAgentID(agentID).
		SetTitle(title).
		SetDescription(description).
		SetStatus(task.Status(t.Status)).
		SetPriority(task.Priority(priority)).
		SetMaxRetries(t.MaxRetries)
	if taskType != "" {
		create.SetType(taskType)
	}
	if _, err := create.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	if err := insertEvents(ctx, tx.TaskEvent, t.ID, t.Events); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit task creation: %w", err)
	}
	return t, nil
}

// Load returns the task rebuilt from its row and event log.
func (s *TaskService) Load(ctx context.Context, taskID string) (*taskflow.Task, error) {
	row, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task %s: %w", taskID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get task %s: %w", taskID, err)
	}
	events, err := loadEvents(ctx, s.client.TaskEvent, taskID)
	if err != nil {
		return nil, err
	}
	return rebuildTask(row, events), nil
}

// ListByAgent returns the tasks assigned to an agent, newest first. Event
// logs are not loaded.
func (s *TaskService) ListByAgent(ctx context.Context, agentID string) ([]*taskflow.Task, error) {
	rows, err := s.client.Task.Query().
		Where(task.AgentID(agentID)).
		Order(ent.Desc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks of %s: %w", agentID, err)
	}
	out := make([]*taskflow.Task, 0, len(rows))
	for _, row := range rows {
		out = append(out, rebuildTask(row, nil))
	}
	return out, nil
}

// Transition moves the task to a new status through the legal-move table.
func (s *TaskService) Transition(ctx context.Context, taskID string, to taskflow.Status, reason string) (*taskflow.Task, error) {
	return s.mutate(ctx, taskID, func(t *taskflow.Task) error {
		return t.Transition(to, reason)
	})
}

// UpdateProgress records a progress report on an in-flight task.
func (s *TaskService) UpdateProgress(ctx context.Context, taskID string, percent int, note string) (*taskflow.Task, error) {
	if percent < 0 || percent > 100 {
		return nil, NewValidationError("percent", "progress must be between 0 and 100")
	}
	return s.mutate(ctx, taskID, func(t *taskflow.Task) error {
		t.UpdateProgress(percent, note)
		return nil
	})
}

// RecordFailure applies the retry policy to a failed attempt.
func (s *TaskService) RecordFailure(ctx context.Context, taskID, reason string) (*taskflow.Task, error) {
	return s.mutate(ctx, taskID, func(t *taskflow.Task) error {
		return t.RecordFailure(reason)
	})
}

// SetResult stores the task's result payload without a status change.
func (s *TaskService) SetResult(ctx context.Context, taskID, result string) (*taskflow.Task, error) {
	return s.mutate(ctx, taskID, func(t *taskflow.Task) error {
		t.Result = result
		return nil
	})
}

// MarkDeliberating forces the task into deliberation. Used by critic
// escalations, which open a council review regardless of current status.
func (s *TaskService) MarkDeliberating(ctx context.Context, taskID, reason string) error {
	_, err := s.mutate(ctx, taskID, func(t *taskflow.Task) error {
		return t.ForceDeliberation(reason)
	})
	return err
}

// CancelNonTerminal force-cancels every live task assigned to the agent
// and returns how many were cancelled. Called on agent liquidation.
func (s *TaskService) CancelNonTerminal(ctx context.Context, agentID, reason string) (int, error) {
	ids, err := s.client.Task.Query().
		Where(task.AgentID(agentID), task.StatusNotIn(terminalTaskStatuses...)).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list live tasks of %s: %w", agentID, err)
	}

	cancelled := 0
	for _, id := range ids {
		if _, err := s.mutate(ctx, id, func(t *taskflow.Task) error {
			t.Cancel(reason)
			return nil
		}); err != nil {
			return cancelled, err
		}
		cancelled++
	}
	return cancelled, nil
}

// OpenTaskCount implements allocator.Backlog: the number of tasks not yet
// in a terminal state.
func (s *TaskService) OpenTaskCount(ctx context.Context) (int, error) {
	n, err := s.client.Task.Query().
		Where(task.StatusNotIn(terminalTaskStatuses...)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count open tasks: %w", err)
	}
	return n, nil
}

// mutate loads the task inside a transaction, applies fn and persists the
// changed snapshot plus any events fn appended.
func (s *TaskService) mutate(ctx context.Context, taskID string, fn func(*taskflow.Task) error) (*taskflow.Task, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task %s: %w", taskID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get task %s: %w", taskID, err)
	}
	events, err := loadEvents(ctx, tx.TaskEvent, taskID)
	if err != nil {
		return nil, err
	}

	t := rebuildTask(row, events)
	before := len(t.Events)
	if err := fn(t); err != nil {
		return nil, err
	}

	upd := tx.Task.UpdateOneID(taskID).
		SetStatus(task.Status(t.Status)).
		SetRetryCount(t.RetryCount).
		SetProgress(t.Progress)
	if t.Result != "" {
		upd.SetResult(t.Result)
	}
	if reason, ok := failureReason(t.Events[before:]); ok {
		upd.SetFailureReason(reason)
	}
	if _, err := upd.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to update task %s: %w", taskID, err)
	}
	if err := insertEvents(ctx, tx.TaskEvent, taskID, t.Events[before:]); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit task %s: %w", taskID, err)
	}
	return t, nil
}

func insertEvents(ctx context.Context, client *ent.TaskEventClient, taskID string, events []taskflow.Event) error {
	for _, ev := range events {
		create := client.Create().
			SetID(uuid.New().String()).
			SetTaskID(taskID).
			SetType(taskevent.Type(ev.Type)).
			SetSeq(ev.Seq).
			SetOccurredAt(ev.At)
		if ev.Data != nil {
			create.SetData(ev.Data)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("failed to append %s event to task %s: %w", ev.Type, taskID, err)
		}
	}
	return nil
}

func loadEvents(ctx context.Context, client *ent.TaskEventClient, taskID string) ([]taskflow.Event, error) {
	rows, err := client.Query().
		Where(taskevent.TaskID(taskID)).
		Order(ent.Asc(taskevent.FieldOccurredAt), ent.Asc(taskevent.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events of task %s: %w", taskID, err)
	}
	return eventsFromRows(rows), nil
}

func eventsFromRows(rows []*ent.TaskEvent) []taskflow.Event {
	events := make([]taskflow.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, taskflow.Event{
			Type:   taskflow.EventType(row.Type),
			TaskID: row.TaskID,
			Seq:    row.Seq,
			At:     row.OccurredAt,
			Data:   row.Data,
		})
	}
	return events
}

func rebuildTask(row *ent.Task, events []taskflow.Event) *taskflow.Task {
	snapshot := taskflow.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Type:        row.Type,
		Priority:    taskflow.Priority(row.Priority),
		Status:      taskflow.Status(row.Status),
		RetryCount:  row.RetryCount,
		MaxRetries:  row.MaxRetries,
		Progress:    row.Progress,
		Result:      row.Result,
	}
	return taskflow.Restore(snapshot, events)
}

// failureReason extracts the reason of the last FAILED event, if any.
func failureReason(events []taskflow.Event) (string, bool) {
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type != taskflow.EventFailed {
			continue
		}
		if reason, ok := events[i].Data["reason"].(string); ok {
			return reason, true
		}
	}
	return "", false
}
