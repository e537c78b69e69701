package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		tier    Tier
		wantErr bool
	}{
		{"head singleton", "00001", TierHead, false},
		{"council", "10001", TierCouncil, false},
		{"lead", "20001", TierLead, false},
		{"task", "30001", TierTask, false},
		{"unknown tier digit", "40001", 0, true},
		{"too short", "0001", 0, true},
		{"too long", "000001", 0, true},
		{"non-digit", "1000a", 0, true},
		{"broadcast is not an agent id", "broadcast", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, err := ParseID(tt.id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.tier, tier)
		})
	}
}

func TestTierAdjacency(t *testing.T) {
	below, ok := TierHead.Below()
	require.True(t, ok)
	assert.Equal(t, TierCouncil, below)

	_, ok = TierTask.Below()
	assert.False(t, ok)

	above, ok := TierTask.Above()
	require.True(t, ok)
	assert.Equal(t, TierLead, above)

	_, ok = TierHead.Above()
	assert.False(t, ok)
}

func TestCanSpawn(t *testing.T) {
	tests := []struct {
		parent, child Tier
		want          bool
	}{
		{TierHead, TierCouncil, true},
		{TierHead, TierLead, true},
		{TierHead, TierTask, false},
		{TierCouncil, TierLead, false},
		{TierCouncil, TierTask, false},
		{TierLead, TierTask, true},
		{TierLead, TierLead, false},
		{TierTask, TierTask, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanSpawn(tt.parent, tt.child),
			"CanSpawn(%s, %s)", tt.parent, tt.child)
	}
}
