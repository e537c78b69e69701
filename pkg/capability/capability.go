// Package capability implements per-tier capability sets with per-agent
// grant/revoke overrides and authority checks.
package capability

import (
	"fmt"

	"github.com/agentium/agentium/pkg/hierarchy"
)

// Capability is a named permission.
type Capability string

// The capability enumeration. Effective capability is tier base plus grants
// minus revocations.
const (
	// Governance
	SpawnAgent        Capability = "spawn_agent"
	TerminateAgent    Capability = "terminate_agent"
	GrantCapability   Capability = "grant_capability"
	RevokeCapability  Capability = "revoke_capability"
	AmendConstitution Capability = "amend_constitution"
	ManageBudget      Capability = "manage_budget"

	// Coordination
	Broadcast        Capability = "broadcast"
	Delegate         Capability = "delegate"
	Escalate         Capability = "escalate"
	OpenDeliberation Capability = "open_deliberation"
	CastVote         Capability = "cast_vote"
	ReviewOutput     Capability = "review_output"

	// Work
	ExecuteCode    Capability = "execute_code"
	NetworkAccess  Capability = "network_access"
	ReadKnowledge  Capability = "read_knowledge"
	WriteKnowledge Capability = "write_knowledge"
	SendMessage    Capability = "send_message"
	UseModel       Capability = "use_model"
)

// Set is an unordered capability set.
type Set map[Capability]struct{}

// NewSet builds a set from its members.
func NewSet(caps ...Capability) Set {
	s := make(Set, len(caps))
	for _, c := range caps {
		s[c] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s Set) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Union returns s ∪ other.
func (s Set) Union(other Set) Set {
	out := s.Clone()
	for c := range other {
		out[c] = struct{}{}
	}
	return out
}

// Subtract returns s \ other.
func (s Set) Subtract(other Set) Set {
	out := make(Set, len(s))
	for c := range s {
		if !other.Has(c) {
			out[c] = struct{}{}
		}
	}
	return out
}

// taskBase through headBase build the tier bases so that
// Head ⊇ Council ⊇ Lead ⊇ Task.
var (
	taskBase = NewSet(ExecuteCode, ReadKnowledge, SendMessage, UseModel, Escalate)

	leadBase = taskBase.Union(NewSet(Delegate, ReviewOutput, WriteKnowledge, SpawnAgent))

	councilBase = leadBase.Union(NewSet(OpenDeliberation, CastVote, TerminateAgent))

	headBase = councilBase.Union(NewSet(
		Broadcast, GrantCapability, RevokeCapability, AmendConstitution,
		ManageBudget, NetworkAccess,
	))
)

// BaseFor returns a copy of the base capability set for a tier.
func BaseFor(tier hierarchy.Tier) Set {
	switch tier {
	case hierarchy.TierHead:
		return headBase.Clone()
	case hierarchy.TierCouncil:
		return councilBase.Clone()
	case hierarchy.TierLead:
		return leadBase.Clone()
	case hierarchy.TierTask:
		return taskBase.Clone()
	default:
		return NewSet()
	}
}

// Parse validates a capability name.
func Parse(name string) (Capability, error) {
	c := Capability(name)
	if !headBase.Has(c) {
		return "", fmt.Errorf("unknown capability %q", name)
	}
	return c, nil
}
