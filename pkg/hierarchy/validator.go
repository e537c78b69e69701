package hierarchy

// Direction is the routing direction of a message relative to the hierarchy.
type Direction string

// Routing directions.
const (
	DirectionUp        Direction = "up"
	DirectionDown      Direction = "down"
	DirectionLateral   Direction = "lateral"
	DirectionBroadcast Direction = "broadcast"
)

// Valid reports whether d is a defined direction.
func (d Direction) Valid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionLateral, DirectionBroadcast:
		return true
	}
	return false
}

// DirectionBetween computes the routing direction implied by two tiers.
func DirectionBetween(from, to Tier) Direction {
	switch {
	case from == to:
		return DirectionLateral
	case to < from:
		return DirectionUp
	default:
		return DirectionDown
	}
}

// CanRoute reports whether an agent may send a message to the given
// recipient in the given direction. The rules prevent authority
// short-circuits: every escalation and delegation must pass through the
// adjacent tier.
//
//   - broadcast: only the Head may address the broadcast token.
//   - up: only between adjacent tiers in descending numeric order
//     (Task→Lead, Lead→Council, Council→Head). Skipping a tier is forbidden.
//   - down: only to the immediately lower tier (Head→Council, Council→Lead,
//     Lead→Task).
//   - lateral: only when tiers are equal.
func CanRoute(fromID, toID string, dir Direction) bool {
	fromTier, err := ParseID(fromID)
	if err != nil {
		return false
	}
	if toID == Broadcast {
		return dir == DirectionBroadcast && IsHead(fromID)
	}
	toTier, err := ParseID(toID)
	if err != nil {
		return false
	}

	switch dir {
	case DirectionUp:
		return fromTier-toTier == 1
	case DirectionDown:
		return toTier-fromTier == 1
	case DirectionLateral:
		return fromTier == toTier
	case DirectionBroadcast:
		// Broadcast direction requires the broadcast destination token.
		return false
	default:
		return false
	}
}
