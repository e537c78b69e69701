package taskflow

import (
	"time"
)

// defaultMaxRetries bounds automatic re-assignment after failures.
const defaultMaxRetries = 3

// Task is the in-memory state machine plus its event log.
type Task struct {
	ID          string
	Title       string
	Description string
	Type        string
	Priority    Priority
	Status      Status
	RetryCount  int
	MaxRetries  int
	// Progress is the latest reported completion fraction in percent.
	Progress int
	Result   string
	Events   []Event

	now func() time.Time
	seq int
}

// TaskOption configures a new task.
type TaskOption func(*Task)

// WithMaxRetries overrides the retry budget.
func WithMaxRetries(n int) TaskOption {
	return func(t *Task) { t.MaxRetries = n }
}

// WithClock overrides the task's time source. Test hook.
func WithClock(now func() time.Time) TaskOption {
	return func(t *Task) { t.now = now }
}

// NewTask creates a pending task and appends its creation event.
func NewTask(id, title, description string, priority Priority, opts ...TaskOption) *Task {
	t := &Task{
		ID:          id,
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      StatusPending,
		MaxRetries:  defaultMaxRetries,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.append(EventTaskCreated, map[string]any{"title": title, "priority": string(priority)})
	return t
}

// Restore rehydrates a task from a stored snapshot and its event log. The
// log is replayed, so a snapshot status that diverged from the events is
// corrected on load.
func Restore(snapshot Task, events []Event, opts ...TaskOption) *Task {
	t := snapshot
	t.Events = events
	t.now = time.Now
	for _, e := range events {
		if e.Seq > t.seq {
			t.seq = e.Seq
		}
	}
	for _, opt := range opts {
		opt(&t)
	}
	if len(events) > 0 {
		t.Reconcile()
	}
	return &t
}

func (t *Task) append(eventType EventType, data map[string]any) {
	t.seq++
	t.Events = append(t.Events, Event{
		Type:   eventType,
		TaskID: t.ID,
		Seq:    t.seq,
		At:     t.now().UTC(),
		Data:   data,
	})
}

// Transition moves the task to a new status, appending the matching event.
// Illegal moves fail with IllegalStateTransition and leave the task
// untouched.
func (t *Task) Transition(to Status, reason string) error {
	if !CanTransition(t.Status, to, t.Priority) {
		return &IllegalStateTransition{TaskID: t.ID, From: t.Status, To: to}
	}

	old := t.Status
	t.Status = to

	switch to {
	case StatusCompleted:
		t.append(EventCompleted, map[string]any{"old": string(old)})
	case StatusFailed:
		t.append(EventFailed, map[string]any{"old": string(old), "reason": reason})
	case StatusCancelled:
		t.append(EventCancelled, map[string]any{"old": string(old), "reason": reason})
	default:
		t.append(EventStatusChanged, map[string]any{"old": string(old), "new": string(to), "reason": reason})
	}
	return nil
}

// UpdateProgress records a progress report without changing status.
func (t *Task) UpdateProgress(percent int, note string) {
	t.Progress = percent
	t.append(EventProgressUpdated, map[string]any{"percent": percent, "note": note})
}

// RecordFailure applies the retry policy to a failed attempt: below the
// retry budget the task re-enters assigned with the counter incremented;
// otherwise it moves to failed.
func (t *Task) RecordFailure(reason string) error {
	if t.Status != StatusInProgress {
		return &IllegalStateTransition{TaskID: t.ID, From: t.Status, To: StatusFailed}
	}

	if t.RetryCount < t.MaxRetries {
		t.RetryCount++
		t.Status = StatusAssigned
		t.append(EventRetryScheduled, map[string]any{"attempt": t.RetryCount, "reason": reason})
		return nil
	}
	return t.Transition(StatusFailed, reason)
}

// Cancel force-moves the task to cancelled regardless of the transition
// table. Liquidation drops in-flight work wholesale, including states the
// table gives no cancel edge. Terminal tasks are left untouched.
func (t *Task) Cancel(reason string) {
	if t.Status.IsTerminal() {
		return
	}
	old := t.Status
	t.Status = StatusCancelled
	t.append(EventCancelled, map[string]any{"old": string(old), "reason": reason})
}

// ForceDeliberation moves the task to deliberating from any non-terminal
// status. Critic escalations open a council review even mid-flight, where
// the transition table has no deliberating edge.
func (t *Task) ForceDeliberation(reason string) error {
	if t.Status.IsTerminal() {
		return &IllegalStateTransition{TaskID: t.ID, From: t.Status, To: StatusDeliberating}
	}
	if t.Status == StatusDeliberating {
		return nil
	}
	old := t.Status
	t.Status = StatusDeliberating
	t.append(EventStatusChanged, map[string]any{
		"old": string(old), "new": string(StatusDeliberating), "reason": reason,
	})
	return nil
}

// Reconcile replaces the in-memory status and retry count with the fold
// over the event log.
func (t *Task) Reconcile() {
	status, retries := Fold(t.Events)
	t.Status = status
	t.RetryCount = retries
}
