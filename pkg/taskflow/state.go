// Package taskflow defines the task state machine and its append-only
// event log. The event log is authoritative: whenever an in-memory status
// diverges, the fold over events wins.
package taskflow

import "fmt"

// Status of a task.
type Status string

// Task statuses.
const (
	StatusPending      Status = "pending"
	StatusDeliberating Status = "deliberating"
	StatusApproved     Status = "approved"
	StatusRejected     Status = "rejected"
	StatusDelegating   Status = "delegating"
	StatusAssigned     Status = "assigned"
	StatusInProgress   Status = "in_progress"
	StatusReview       Status = "review"
	StatusCompleted    Status = "completed"
	StatusFailed       Status = "failed"
	StatusCancelled    Status = "cancelled"
)

// Priority of a task.
type Priority string

// Task priorities.
const (
	PrioritySovereign Priority = "sovereign"
	PriorityCritical  Priority = "critical"
	PriorityHigh      Priority = "high"
	PriorityNormal    Priority = "normal"
	PriorityLow       Priority = "low"
	PriorityIdle      Priority = "idle"
)

// Valid reports whether p is one of the defined priorities.
func (p Priority) Valid() bool {
	switch p {
	case PrioritySovereign, PriorityCritical, PriorityHigh, PriorityNormal, PriorityLow, PriorityIdle:
		return true
	}
	return false
}

// IllegalStateTransition reports a transition outside the legal table.
type IllegalStateTransition struct {
	TaskID string
	From   Status
	To     Status
}

func (e *IllegalStateTransition) Error() string {
	return fmt.Sprintf("illegal state transition for task %s: %s -> %s", e.TaskID, e.From, e.To)
}

// transitions is the legal-move table. Terminal states have no entry.
var transitions = map[Status][]Status{
	StatusPending:      {StatusDeliberating, StatusApproved},
	StatusDeliberating: {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved:     {StatusDelegating, StatusInProgress, StatusCancelled},
	StatusDelegating:   {StatusAssigned, StatusCancelled},
	StatusAssigned:     {StatusInProgress, StatusCancelled},
	StatusInProgress:   {StatusReview, StatusFailed, StatusCancelled, StatusInProgress, StatusAssigned},
	StatusReview:       {StatusCompleted, StatusFailed, StatusInProgress},
}

// IsTerminal reports whether the status admits no outgoing transition.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusRejected, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// fastApprovalPriorities may skip deliberation on the pending -> approved
// edge.
var fastApprovalPriorities = map[Priority]bool{
	PriorityCritical:  true,
	PrioritySovereign: true,
	PriorityIdle:      true,
}

// CanTransition reports whether a task of the given priority may move from
// one status to another. The pending -> approved shortcut is gated on
// priority; every other edge comes straight from the table.
func CanTransition(from, to Status, priority Priority) bool {
	if from == StatusPending && to == StatusApproved && !fastApprovalPriorities[priority] {
		return false
	}
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
