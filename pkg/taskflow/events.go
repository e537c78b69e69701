package taskflow

import (
	"sort"
	"time"
)

// EventType of a task log entry.
type EventType string

// Event types.
const (
	EventTaskCreated     EventType = "TASK_CREATED"
	EventStatusChanged   EventType = "STATUS_CHANGED"
	EventProgressUpdated EventType = "PROGRESS_UPDATED"
	EventRetryScheduled  EventType = "RETRY_SCHEDULED"
	EventCompleted       EventType = "COMPLETED"
	EventFailed          EventType = "FAILED"
	EventCancelled       EventType = "CANCELLED"
)

// Event is one append-only task log entry.
type Event struct {
	Type   EventType
	TaskID string
	// Seq breaks ordering ties between events stamped in the same
	// instant.
	Seq  int
	At   time.Time
	Data map[string]any
}

// Fold reconstructs the current status and retry count by replaying events
// in timestamp order. This is the authoritative state whenever a stored
// status diverges from the log.
func Fold(events []Event) (Status, int) {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].At.Equal(sorted[j].At) {
			return sorted[i].At.Before(sorted[j].At)
		}
		return sorted[i].Seq < sorted[j].Seq
	})

	status := Status("")
	retries := 0
	for _, e := range sorted {
		switch e.Type {
		case EventTaskCreated:
			status = StatusPending
		case EventStatusChanged:
			if next, ok := e.Data["new"].(string); ok {
				status = Status(next)
			}
		case EventRetryScheduled:
			retries++
			status = StatusAssigned
		case EventCompleted:
			status = StatusCompleted
		case EventFailed:
			status = StatusFailed
		case EventCancelled:
			status = StatusCancelled
		case EventProgressUpdated:
			// No status effect.
		}
	}
	return status, retries
}
