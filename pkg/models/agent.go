// Package models contains request/response models and business domain types.
package models

// AgentStatus is the lifecycle state of an agent.
type AgentStatus string

// Agent statuses.
const (
	AgentStatusInitializing AgentStatus = "initializing"
	AgentStatusActive       AgentStatus = "active"
	AgentStatusIdleWorking  AgentStatus = "idle_working"
	AgentStatusIdlePaused   AgentStatus = "idle_paused"
	AgentStatusDeliberating AgentStatus = "deliberating"
	AgentStatusWorking      AgentStatus = "working"
	AgentStatusReviewing    AgentStatus = "reviewing"
	AgentStatusSuspended    AgentStatus = "suspended"
	AgentStatusTerminated   AgentStatus = "terminated"
)

// ValidAgentStatuses enumerates every accepted agent status value.
var ValidAgentStatuses = []AgentStatus{
	AgentStatusInitializing,
	AgentStatusActive,
	AgentStatusIdleWorking,
	AgentStatusIdlePaused,
	AgentStatusDeliberating,
	AgentStatusWorking,
	AgentStatusReviewing,
	AgentStatusSuspended,
	AgentStatusTerminated,
}

// Valid reports whether s is one of the defined statuses.
func (s AgentStatus) Valid() bool {
	for _, v := range ValidAgentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s AgentStatus) IsTerminal() bool {
	return s == AgentStatusTerminated
}
