package bus

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus(t *testing.T, opts ...Option) (*Bus, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb, opts...), rdb
}

type staticParents map[string]string

func (p staticParents) ParentOf(_ context.Context, agentID string) (string, error) {
	parent, ok := p[agentID]
	if !ok {
		return "", fmt.Errorf("agent %s not found", agentID)
	}
	return parent, nil
}

func mustEnvelope(t *testing.T, sender, recipient string, dir hierarchy.Direction, content string) *Envelope {
	t.Helper()
	env, err := NewEnvelope(sender, recipient, dir, TypeIntent, content, nil)
	require.NoError(t, err)
	return env
}

func TestPublishAppendsToInbox(t *testing.T) {
	b, _ := newTestBus(t)
	ctx := context.Background()

	env := mustEnvelope(t, "30001", "20001", hierarchy.DirectionUp, "need human input")
	res, err := b.Publish(ctx, env, true)
	require.NoError(t, err)
	assert.Equal(t, "agent:20001:inbox", res.Path)
	assert.Equal(t, env.MessageID, res.MessageID)

	got, err := b.ConsumeStream(ctx, "20001", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, env.MessageID, got[0].Envelope.MessageID)
	assert.Equal(t, "need human input", got[0].Envelope.Content)
}

func TestPublishRejectsHierarchyViolation(t *testing.T) {
	b, _ := newTestBus(t)
	ctx := context.Background()

	// Task agent attempting to address the Head directly.
	env := mustEnvelope(t, "30001", "00001", hierarchy.DirectionUp, "short circuit")
	_, err := b.Publish(ctx, env, true)

	var hvErr *HierarchyViolationError
	require.ErrorAs(t, err, &hvErr)
	assert.Contains(t, err.Error(), "Hierarchy violation")

	// No side effect: every inbox stays empty.
	for _, agent := range []string{"00001", "10001", "20001"} {
		n, lenErr := b.InboxLen(ctx, agent)
		require.NoError(t, lenErr)
		assert.Zero(t, n, "inbox of %s", agent)
	}
}

func TestPublishRateLimitPerTier(t *testing.T) {
	b, _ := newTestBus(t)
	ctx := context.Background()

	// Task tier allows 5 messages per second; the 6th in the same second
	// must fail.
	for i := 0; i < 5; i++ {
		env := mustEnvelope(t, "30001", "20001", hierarchy.DirectionUp, fmt.Sprintf("m%d", i))
		_, err := b.Publish(ctx, env, true)
		require.NoError(t, err, "publish %d", i)
	}

	env := mustEnvelope(t, "30001", "20001", hierarchy.DirectionUp, "over the cap")
	_, err := b.Publish(ctx, env, true)
	var rlErr *RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "task", rlErr.Tier)

	// Other senders are unaffected: buckets are per sender.
	env2 := mustEnvelope(t, "30002", "20001", hierarchy.DirectionUp, "different sender")
	_, err = b.Publish(ctx, env2, true)
	require.NoError(t, err)
}

func TestFIFOOrderPerSenderRecipientPair(t *testing.T) {
	b, _ := newTestBus(t)
	ctx := context.Background()

	var want []string
	for i := 0; i < 5; i++ {
		env := mustEnvelope(t, "20001", "30001", hierarchy.DirectionDown, fmt.Sprintf("step-%d", i))
		_, err := b.Publish(ctx, env, true)
		require.NoError(t, err)
		want = append(want, env.MessageID)
	}

	got, err := b.ConsumeStream(ctx, "30001", 10)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i, rec := range got {
		assert.Equal(t, want[i], rec.Envelope.MessageID, "position %d", i)
	}
}

func TestRouteUpAutoFindParent(t *testing.T) {
	b, _ := newTestBus(t, WithParentResolver(staticParents{"30001": "20001"}))
	ctx := context.Background()

	env, err := NewEnvelope("30001", "20001", hierarchy.DirectionUp, TypeIntent, "escalate me", nil)
	require.NoError(t, err)
	env.RecipientID = ""

	res, err := b.RouteUp(ctx, env, true)
	require.NoError(t, err)
	assert.Equal(t, "agent:20001:inbox", res.Path)

	got, err := b.ConsumeStream(ctx, "20001", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Envelope.HopCount, "routing increments the hop counter")
	assert.Equal(t, hierarchy.DirectionUp, got[0].Envelope.Direction)
}

func TestRouteRejectsHopOverflow(t *testing.T) {
	b, _ := newTestBus(t)
	ctx := context.Background()

	env := mustEnvelope(t, "30001", "20001", hierarchy.DirectionUp, "looping")
	env.HopCount = MaxHops - 1

	_, err := b.RouteUp(ctx, env, false)
	var loopErr *RoutingLoopError
	require.ErrorAs(t, err, &loopErr)

	n, err := b.InboxLen(ctx, "20001")
	require.NoError(t, err)
	assert.Zero(t, n, "a message at the hop cap never enters any inbox")
}

func TestBroadcastFromHeadFansOutToAllTiers(t *testing.T) {
	b, rdb := newTestBus(t)
	ctx := context.Background()

	env, err := NewEnvelope("00001", hierarchy.Broadcast, hierarchy.DirectionBroadcast, TypeNotification, "system notice", nil)
	require.NoError(t, err)

	res, err := b.BroadcastFromHead(ctx, env)
	require.NoError(t, err)
	assert.Equal(t, hierarchy.Broadcast, res.Path)

	for tier := 1; tier <= 3; tier++ {
		n, err := rdb.XLen(ctx, fmt.Sprintf("tier:%d:inbox", tier)).Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), n, "tier %d broadcast stream", tier)
	}
}

func TestBroadcastFromNonHeadRejected(t *testing.T) {
	b, _ := newTestBus(t)
	ctx := context.Background()

	env, err := NewEnvelope("10001", hierarchy.Broadcast, hierarchy.DirectionBroadcast, TypeNotification, "not allowed", nil)
	require.NoError(t, err)

	_, err = b.BroadcastFromHead(ctx, env)
	var hvErr *HierarchyViolationError
	require.ErrorAs(t, err, &hvErr)
}

func TestAcknowledgeIsIdempotent(t *testing.T) {
	b, _ := newTestBus(t)
	ctx := context.Background()

	env := mustEnvelope(t, "30001", "20001", hierarchy.DirectionUp, "ack me")
	_, err := b.Publish(ctx, env, true)
	require.NoError(t, err)

	got, err := b.ConsumeStream(ctx, "20001", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.NoError(t, b.Acknowledge(ctx, got[0].Receipt))
	require.NoError(t, b.Acknowledge(ctx, got[0].Receipt), "double acknowledge succeeds")

	after, err := b.ConsumeStream(ctx, "20001", 10)
	require.NoError(t, err)
	assert.Empty(t, after)
}

func TestConsumeStreamEvictsExpired(t *testing.T) {
	b, _ := newTestBus(t)
	ctx := context.Background()

	env := mustEnvelope(t, "30001", "20001", hierarchy.DirectionUp, "stale")
	env.TTL = time.Second
	env.Timestamp = time.Now().UTC().Add(-time.Minute)
	_, err := b.Publish(ctx, env, true)
	require.NoError(t, err)

	got, err := b.ConsumeStream(ctx, "20001", 10)
	require.NoError(t, err)
	assert.Empty(t, got, "expired envelopes are evicted on consume")

	n, err := b.InboxLen(ctx, "20001")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStreamLengthCapDropsOldest(t *testing.T) {
	// Miniredis applies MAXLEN exactly, which is sufficient to verify the
	// drop-oldest policy.
	b, _ := newTestBus(t, WithMaxStreamLen(3))
	ctx := context.Background()

	var ids []string
	// Head tier has a large bucket, no rate-limit interference.
	for i := 0; i < 5; i++ {
		env := mustEnvelope(t, "00001", "10001", hierarchy.DirectionDown, fmt.Sprintf("n%d", i))
		_, err := b.Publish(ctx, env, true)
		require.NoError(t, err)
		ids = append(ids, env.MessageID)
	}

	got, err := b.ConsumeStream(ctx, "10001", 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, ids[2:], []string{
		got[0].Envelope.MessageID,
		got[1].Envelope.MessageID,
		got[2].Envelope.MessageID,
	})
}

func TestSubscribeDeliversNotifications(t *testing.T) {
	b, _ := newTestBus(t)
	ctx := context.Background()

	notifications := make(chan Notification, 1)
	sub, err := b.Subscribe(ctx, "20001", func(n Notification) {
		notifications <- n
	})
	require.NoError(t, err)
	defer sub.Close()

	env := mustEnvelope(t, "30001", "20001", hierarchy.DirectionUp, "ping")
	_, err = b.Publish(ctx, env, true)
	require.NoError(t, err)

	select {
	case n := <-notifications:
		assert.Equal(t, env.MessageID, n.MessageID)
		assert.Equal(t, string(TypeIntent), n.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
	}
}
