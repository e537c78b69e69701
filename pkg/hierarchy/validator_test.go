package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanRoute(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		dir  Direction
		want bool
	}{
		// Upward routing: adjacent tiers only.
		{"task to lead", "30001", "20001", DirectionUp, true},
		{"lead to council", "20001", "10001", DirectionUp, true},
		{"council to head", "10001", "00001", DirectionUp, true},
		{"task skips to council", "30001", "10001", DirectionUp, false},
		{"task skips to head", "30001", "00001", DirectionUp, false},
		{"lead skips to head", "20001", "00001", DirectionUp, false},
		{"up to same tier", "30001", "30002", DirectionUp, false},
		{"up to lower tier", "10001", "20001", DirectionUp, false},

		// Downward routing: immediately lower tier only.
		{"head to council", "00001", "10001", DirectionDown, true},
		{"council to lead", "10001", "20001", DirectionDown, true},
		{"lead to task", "20001", "30001", DirectionDown, true},
		{"head skips to lead", "00001", "20001", DirectionDown, false},
		{"head skips to task", "00001", "30001", DirectionDown, false},
		{"down to same tier", "20001", "20002", DirectionDown, false},

		// Lateral routing: equal tiers only.
		{"council to council", "10001", "10002", DirectionLateral, true},
		{"task to task", "30001", "30002", DirectionLateral, true},
		{"lateral across tiers", "10001", "20001", DirectionLateral, false},

		// Broadcast: Head only, via the broadcast token.
		{"head broadcast", "00001", Broadcast, DirectionBroadcast, true},
		{"council broadcast", "10001", Broadcast, DirectionBroadcast, false},
		{"task broadcast", "30001", Broadcast, DirectionBroadcast, false},
		{"broadcast direction to concrete agent", "00001", "10001", DirectionBroadcast, false},
		{"broadcast token with up direction", "00001", Broadcast, DirectionUp, false},

		// Malformed identifiers never route.
		{"bad sender", "abc", "10001", DirectionUp, false},
		{"bad recipient", "10001", "xyz", DirectionDown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanRoute(tt.from, tt.to, tt.dir))
		})
	}
}

func TestDirectionBetween(t *testing.T) {
	assert.Equal(t, DirectionUp, DirectionBetween(TierTask, TierLead))
	assert.Equal(t, DirectionDown, DirectionBetween(TierHead, TierCouncil))
	assert.Equal(t, DirectionLateral, DirectionBetween(TierLead, TierLead))
}
