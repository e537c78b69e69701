// Package hierarchy defines the tiered agent identifier scheme and the
// pure routing rules between tiers.
package hierarchy

import (
	"fmt"
)

// Tier is the authority level of an agent, in descending order of authority.
type Tier int

// Tiers, encoded as the first digit of the agent identifier.
const (
	TierHead    Tier = 0
	TierCouncil Tier = 1
	TierLead    Tier = 2
	TierTask    Tier = 3
)

// HeadID is the singleton Head agent identifier.
const HeadID = "00001"

// Broadcast is a destination token, not an agent identifier.
const Broadcast = "broadcast"

// String returns the human-readable tier name.
func (t Tier) String() string {
	switch t {
	case TierHead:
		return "head"
	case TierCouncil:
		return "council"
	case TierLead:
		return "lead"
	case TierTask:
		return "task"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// Valid reports whether t is one of the four defined tiers.
func (t Tier) Valid() bool {
	return t >= TierHead && t <= TierTask
}

// Below returns the immediately lower-authority tier, or false for Task.
func (t Tier) Below() (Tier, bool) {
	if t >= TierTask {
		return 0, false
	}
	return t + 1, true
}

// Above returns the immediately higher-authority tier, or false for Head.
func (t Tier) Above() (Tier, bool) {
	if t <= TierHead {
		return 0, false
	}
	return t - 1, true
}

// ParseID validates a 5-character decimal agent identifier and returns its tier.
// The tier is derived from the first digit; no other encoding is used.
func ParseID(id string) (Tier, error) {
	if len(id) != 5 {
		return 0, fmt.Errorf("invalid agent id %q: must be 5 decimal digits", id)
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid agent id %q: must be 5 decimal digits", id)
		}
	}
	tier := Tier(id[0] - '0')
	if !tier.Valid() {
		return 0, fmt.Errorf("invalid agent id %q: unknown tier digit %c", id, id[0])
	}
	return tier, nil
}

// TierOf is like ParseID but panics on malformed ids. Use only on ids that
// were already validated.
func TierOf(id string) Tier {
	tier, err := ParseID(id)
	if err != nil {
		panic(err)
	}
	return tier
}

// IsHead reports whether id is the singleton Head agent.
func IsHead(id string) bool {
	return id == HeadID
}

// DefaultParentID returns the tier-parent pattern id for an agent: the
// first id of the tier immediately above. Used as a routing fallback when
// an agent's explicit parent is missing from the registry.
func DefaultParentID(id string) (string, error) {
	tier, err := ParseID(id)
	if err != nil {
		return "", err
	}
	above, ok := tier.Above()
	if !ok {
		return "", fmt.Errorf("agent %s has no parent tier", id)
	}
	if above == TierHead {
		return HeadID, nil
	}
	return fmt.Sprintf("%d0001", int(above)), nil
}

// CanSpawn reports whether an agent of tier parent may spawn an agent of
// tier child. Head spawns Council and Lead; Lead spawns Task; Task never
// spawns.
func CanSpawn(parent, child Tier) bool {
	switch parent {
	case TierHead:
		return child == TierCouncil || child == TierLead
	case TierLead:
		return child == TierTask
	default:
		return false
	}
}
