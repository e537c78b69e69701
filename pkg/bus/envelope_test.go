package bus

import (
	"testing"
	"time"

	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelopeValidation(t *testing.T) {
	t.Run("valid envelope", func(t *testing.T) {
		env, err := NewEnvelope("30001", "20001", hierarchy.DirectionUp, TypeIntent, "need input", nil)
		require.NoError(t, err)
		assert.NotEmpty(t, env.MessageID)
		assert.Equal(t, 0, env.HopCount)
		assert.Equal(t, PriorityNormal, env.Priority)
		assert.False(t, env.Timestamp.IsZero())
	})

	t.Run("invalid sender", func(t *testing.T) {
		_, err := NewEnvelope("bogus", "20001", hierarchy.DirectionUp, TypeIntent, "", nil)
		require.Error(t, err)
	})

	t.Run("broadcast recipient is allowed", func(t *testing.T) {
		_, err := NewEnvelope("00001", hierarchy.Broadcast, hierarchy.DirectionBroadcast, TypeNotification, "all hands", nil)
		require.NoError(t, err)
	})

	t.Run("invalid message type", func(t *testing.T) {
		env := &Envelope{
			MessageID:   "m1",
			SenderID:    "30001",
			RecipientID: "20001",
			Direction:   hierarchy.DirectionUp,
			Type:        MessageType("bogus"),
			TTL:         time.Hour,
			Timestamp:   time.Now(),
		}
		require.Error(t, env.Validate())
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		env := &Envelope{
			MessageID:   "m1",
			SenderID:    "30001",
			RecipientID: "20001",
			Direction:   hierarchy.DirectionUp,
			Type:        TypeIntent,
			TTL:         0,
			Timestamp:   time.Now(),
		}
		require.Error(t, env.Validate())
	})

	t.Run("hop count at cap", func(t *testing.T) {
		env := &Envelope{
			MessageID:   "m1",
			SenderID:    "30001",
			RecipientID: "20001",
			Direction:   hierarchy.DirectionUp,
			Type:        TypeIntent,
			TTL:         time.Hour,
			Timestamp:   time.Now(),
			HopCount:    MaxHops,
		}
		err := env.Validate()
		var loopErr *RoutingLoopError
		require.ErrorAs(t, err, &loopErr)
	})
}

func TestEnvelopeForward(t *testing.T) {
	env, err := NewEnvelope("30001", "20001", hierarchy.DirectionUp, TypeIntent, "x", map[string]any{"k": "v"})
	require.NoError(t, err)

	fwd, err := env.Forward()
	require.NoError(t, err)
	assert.Equal(t, 1, fwd.HopCount)
	assert.Equal(t, 0, env.HopCount, "original envelope is never mutated")
	assert.Equal(t, env.MessageID, fwd.MessageID)

	// Payload is copied, not shared.
	fwd.Payload["k"] = "changed"
	assert.Equal(t, "v", env.Payload["k"])
}

func TestEnvelopeForwardHopCap(t *testing.T) {
	env, err := NewEnvelope("30001", "20001", hierarchy.DirectionUp, TypeIntent, "x", nil)
	require.NoError(t, err)

	// Hop count strictly increases along the chain; the forward that would
	// reach the cap is rejected.
	current := env
	for i := 0; i < MaxHops-1; i++ {
		next, err := current.Forward()
		require.NoError(t, err, "forward %d", i)
		current = next
	}
	assert.Equal(t, MaxHops-1, current.HopCount)

	_, err = current.Forward()
	var loopErr *RoutingLoopError
	require.ErrorAs(t, err, &loopErr)
}

func TestEnvelopeCodecRoundTrip(t *testing.T) {
	env, err := NewEnvelope("10002", "00001", hierarchy.DirectionUp, TypeEscalation, "budget overrun", map[string]any{"amount": "42"})
	require.NoError(t, err)
	env = env.WithCorrelation("corr-7")
	env = env.WithEnrichment(&Enrichment{
		SemanticContext: []ContextHit{{ID: "art-3", Content: "Article 3", Similarity: 0.91, Collection: "constitution"}},
		ArticleRefs:     []string{"art-3"},
	})
	env.Priority = PriorityCritical
	env.RequiresAck = true

	values, err := encodeEnvelope(env)
	require.NoError(t, err)
	assert.Equal(t, "0", values["hop_count"], "hop count is string-encoded on the wire")

	decoded, err := decodeEnvelope(values)
	require.NoError(t, err)

	assert.Equal(t, env.MessageID, decoded.MessageID)
	assert.Equal(t, env.CorrelationID, decoded.CorrelationID)
	assert.Equal(t, env.SenderID, decoded.SenderID)
	assert.Equal(t, env.RecipientID, decoded.RecipientID)
	assert.Equal(t, env.Direction, decoded.Direction)
	assert.Equal(t, env.Type, decoded.Type)
	assert.Equal(t, env.Content, decoded.Content)
	assert.Equal(t, env.Priority, decoded.Priority)
	assert.Equal(t, env.HopCount, decoded.HopCount)
	assert.Equal(t, env.TTL, decoded.TTL)
	assert.Equal(t, env.RequiresAck, decoded.RequiresAck)
	assert.True(t, env.Timestamp.Equal(decoded.Timestamp))
	assert.Equal(t, env.Payload, decoded.Payload)
	require.NotNil(t, decoded.Enrichment)
	assert.Equal(t, env.Enrichment.ArticleRefs, decoded.Enrichment.ArticleRefs)
	assert.Equal(t, env.Enrichment.SemanticContext, decoded.Enrichment.SemanticContext)
}

func TestEnvelopeExpired(t *testing.T) {
	env, err := NewEnvelope("30001", "20001", hierarchy.DirectionUp, TypeHeartbeat, "", nil)
	require.NoError(t, err)
	env.TTL = time.Minute

	assert.False(t, env.Expired(env.Timestamp.Add(30*time.Second)))
	assert.True(t, env.Expired(env.Timestamp.Add(2*time.Minute)))
}
