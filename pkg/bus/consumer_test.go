package bus

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentium/agentium/pkg/hierarchy"
)

type collectingHandler struct {
	mu   sync.Mutex
	seen []string
	err  error
}

func (h *collectingHandler) handle(_ context.Context, env *Envelope) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.err != nil {
		return h.err
	}
	h.seen = append(h.seen, env.MessageID)
	return nil
}

func TestConsumerPoolDrainsAndAcknowledges(t *testing.T) {
	b, _ := newTestBus(t)
	ctx := context.Background()

	first := mustEnvelope(t, "10001", "00001", hierarchy.DirectionUp, "report one")
	second := mustEnvelope(t, "10001", "00001", hierarchy.DirectionUp, "report two")
	_, err := b.Publish(ctx, first, true)
	require.NoError(t, err)
	_, err = b.Publish(ctx, second, true)
	require.NoError(t, err)

	h := &collectingHandler{}
	pool := NewConsumerPool(b, "00001", h.handle, ConsumerConfig{Workers: 2})

	read := pool.DrainOnce(ctx)
	assert.Equal(t, 2, read)
	assert.ElementsMatch(t, []string{first.MessageID, second.MessageID}, h.seen)

	// The inbox is empty and the entries are marked processed.
	n, err := b.InboxLen(ctx, "00001")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestConsumerPoolLeavesRejectedMessagesQueued(t *testing.T) {
	b, _ := newTestBus(t)
	ctx := context.Background()

	env := mustEnvelope(t, "10001", "00001", hierarchy.DirectionUp, "poison")
	_, err := b.Publish(ctx, env, true)
	require.NoError(t, err)

	h := &collectingHandler{err: errors.New("not yet")}
	pool := NewConsumerPool(b, "00001", h.handle, ConsumerConfig{})

	pool.DrainOnce(ctx)

	n, err := b.InboxLen(ctx, "00001")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	// Once the handler recovers the message goes through.
	h.mu.Lock()
	h.err = nil
	h.mu.Unlock()
	read := pool.DrainOnce(ctx)
	assert.Equal(t, 1, read)

	n, err = b.InboxLen(ctx, "00001")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestConsumerPoolStopWithoutStartIsANoop(t *testing.T) {
	b, _ := newTestBus(t)
	pool := NewConsumerPool(b, "00001", func(context.Context, *Envelope) error { return nil }, ConsumerConfig{})
	pool.Stop()
}
