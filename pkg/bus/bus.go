package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/redis/go-redis/v9"
)

const (
	// defaultMaxStreamLen caps each inbox stream. At the cap the oldest
	// entries are evicted first.
	defaultMaxStreamLen = 1000

	// processedTTL is how long acknowledged message ids are remembered for
	// idempotent consumption.
	processedTTL = 24 * time.Hour
)

// inboxKey is the persistent stream holding an agent's pending envelopes.
func inboxKey(agentID string) string { return fmt.Sprintf("agent:%s:inbox", agentID) }

// channelKey is the pub/sub channel carrying lightweight notifications.
func channelKey(agentID string) string { return fmt.Sprintf("channel:%s", agentID) }

// processedKey is the per-agent set of acknowledged message ids.
func processedKey(agentID string) string { return fmt.Sprintf("agent:%s:processed", agentID) }

// tierInboxKey is the broadcast stream for a whole tier.
func tierInboxKey(t hierarchy.Tier) string { return fmt.Sprintf("tier:%d:inbox", int(t)) }

// tierChannelKey is the pub/sub channel for a whole tier.
func tierChannelKey(t hierarchy.Tier) string { return fmt.Sprintf("channel:tier:%d", int(t)) }

// ParentResolver looks up the parent agent id for routing with
// auto-find-parent. Implemented by the agent registry.
type ParentResolver interface {
	ParentOf(ctx context.Context, agentID string) (string, error)
}

// PublishResult reports where a successfully published envelope went.
type PublishResult struct {
	MessageID string
	Path      string
}

// Receipt identifies a consumed stream entry for acknowledgement.
type Receipt struct {
	AgentID   string
	EntryID   string
	MessageID string
}

// Received pairs a decoded envelope with its acknowledgement receipt.
type Received struct {
	Envelope *Envelope
	Receipt  Receipt
}

// Notification is the lightweight pub/sub record published alongside each
// persisted envelope. Consumers pull the full envelope from the stream, so
// nothing is lost if a subscriber is momentarily absent.
type Notification struct {
	MessageID string `json:"message_id"`
	Type      string `json:"message_type"`
}

// Bus routes envelopes between agents over a Redis stream/pubsub substrate.
// Only the bus mutates inbox streams.
type Bus struct {
	rdb          redis.UniversalClient
	limiter      *tierLimiter
	parents      ParentResolver
	maxStreamLen int64
	log          *slog.Logger
}

// Option configures a Bus.
type Option func(*Bus)

// WithMaxStreamLen overrides the per-inbox stream length cap.
func WithMaxStreamLen(n int64) Option {
	return func(b *Bus) { b.maxStreamLen = n }
}

// WithParentResolver wires the agent registry used by RouteUp's
// auto-find-parent.
func WithParentResolver(r ParentResolver) Option {
	return func(b *Bus) { b.parents = r }
}

// New creates a message bus on the given Redis client.
func New(rdb redis.UniversalClient, opts ...Option) *Bus {
	b := &Bus{
		rdb:          rdb,
		limiter:      newTierLimiter(),
		maxStreamLen: defaultMaxStreamLen,
		log:          slog.Default().With("component", "message-bus"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish validates and enqueues an envelope.
//
// The pipeline is: hierarchy validation (rejection has no side effect) →
// per-sender token bucket sized by tier → stream append with drop-oldest at
// the cap → lightweight pub/sub notification. When persistent is false the
// notification is still published but nothing is appended to the inbox.
func (b *Bus) Publish(ctx context.Context, env *Envelope, persistent bool) (*PublishResult, error) {
	if err := env.Validate(); err != nil {
		return nil, err
	}
	if !hierarchy.CanRoute(env.SenderID, env.RecipientID, env.Direction) {
		return nil, &HierarchyViolationError{
			SenderID:    env.SenderID,
			RecipientID: env.RecipientID,
			Direction:   string(env.Direction),
		}
	}

	senderTier := hierarchy.TierOf(env.SenderID)
	if err := b.limiter.allow(env.SenderID, senderTier); err != nil {
		return nil, err
	}

	if env.RecipientID == hierarchy.Broadcast {
		return b.fanOutBroadcast(ctx, env)
	}

	path := inboxKey(env.RecipientID)
	if persistent {
		if err := b.append(ctx, path, env); err != nil {
			return nil, err
		}
	}
	if err := b.notify(ctx, channelKey(env.RecipientID), env); err != nil {
		// The envelope is already durable in the stream; a failed
		// notification only delays pickup until the next poll.
		b.log.Warn("Failed to publish notification",
			"message_id", env.MessageID, "recipient", env.RecipientID, "error", err)
	}

	return &PublishResult{MessageID: env.MessageID, Path: path}, nil
}

// RouteUp forwards an envelope one tier up. When autoFindParent is set and
// the recipient is unset, the parent is resolved from the agent registry.
// Forwarding increments the hop counter; the original envelope is unchanged.
func (b *Bus) RouteUp(ctx context.Context, env *Envelope, autoFindParent bool) (*PublishResult, error) {
	if env.RecipientID == "" && autoFindParent {
		if b.parents == nil {
			return nil, fmt.Errorf("auto-find-parent requested but no parent resolver configured")
		}
		parentID, err := b.parents.ParentOf(ctx, env.SenderID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve parent of %s: %w", env.SenderID, err)
		}
		cp := *env
		cp.RecipientID = parentID
		env = &cp
	}
	fwd, err := env.Forward()
	if err != nil {
		return nil, err
	}
	fwd.Direction = hierarchy.DirectionUp
	return b.Publish(ctx, fwd, true)
}

// RouteDown forwards an envelope one tier down.
func (b *Bus) RouteDown(ctx context.Context, env *Envelope) (*PublishResult, error) {
	fwd, err := env.Forward()
	if err != nil {
		return nil, err
	}
	fwd.Direction = hierarchy.DirectionDown
	return b.Publish(ctx, fwd, true)
}

// BroadcastFromHead replicates an envelope from the Head to every
// subordinate tier channel.
func (b *Bus) BroadcastFromHead(ctx context.Context, env *Envelope) (*PublishResult, error) {
	fwd, err := env.Forward()
	if err != nil {
		return nil, err
	}
	fwd.Direction = hierarchy.DirectionBroadcast
	fwd.RecipientID = hierarchy.Broadcast
	return b.Publish(ctx, fwd, true)
}

// fanOutBroadcast appends the envelope to each subordinate tier stream and
// notifies each tier channel. Hierarchy validation has already confirmed the
// sender is the Head.
func (b *Bus) fanOutBroadcast(ctx context.Context, env *Envelope) (*PublishResult, error) {
	for _, tier := range []hierarchy.Tier{hierarchy.TierCouncil, hierarchy.TierLead, hierarchy.TierTask} {
		if err := b.append(ctx, tierInboxKey(tier), env); err != nil {
			return nil, fmt.Errorf("broadcast to tier %s failed: %w", tier, err)
		}
		if err := b.notify(ctx, tierChannelKey(tier), env); err != nil {
			b.log.Warn("Failed to publish broadcast notification",
				"message_id", env.MessageID, "tier", tier.String(), "error", err)
		}
	}
	return &PublishResult{MessageID: env.MessageID, Path: hierarchy.Broadcast}, nil
}

func (b *Bus) append(ctx context.Context, stream string, env *Envelope) error {
	values, err := encodeEnvelope(env)
	if err != nil {
		return err
	}
	err = b.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		MaxLen: b.maxStreamLen,
		Approx: true,
		Values: values,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to append to %s: %w", stream, err)
	}
	return nil
}

func (b *Bus) notify(ctx context.Context, channel string, env *Envelope) error {
	payload := fmt.Sprintf(`{"message_id":%q,"message_type":%q}`, env.MessageID, env.Type)
	return b.rdb.Publish(ctx, channel, payload).Err()
}

// ConsumeStream returns up to count pending envelopes from the agent's
// inbox in enqueue order. Envelopes past their TTL are evicted and skipped.
// Already-acknowledged message ids are skipped for idempotency.
func (b *Bus) ConsumeStream(ctx context.Context, agentID string, count int) ([]Received, error) {
	if _, err := hierarchy.ParseID(agentID); err != nil {
		return nil, err
	}
	entries, err := b.rdb.XRangeN(ctx, inboxKey(agentID), "-", "+", int64(count)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read inbox of %s: %w", agentID, err)
	}

	now := time.Now().UTC()
	received := make([]Received, 0, len(entries))
	for _, entry := range entries {
		env, err := decodeEnvelope(entry.Values)
		if err != nil {
			b.log.Error("Dropping undecodable inbox entry",
				"agent_id", agentID, "entry_id", entry.ID, "error", err)
			b.rdb.XDel(ctx, inboxKey(agentID), entry.ID)
			continue
		}
		if env.Expired(now) {
			b.rdb.XDel(ctx, inboxKey(agentID), entry.ID)
			continue
		}
		seen, err := b.rdb.SIsMember(ctx, processedKey(agentID), env.MessageID).Result()
		if err == nil && seen {
			continue
		}
		received = append(received, Received{
			Envelope: env,
			Receipt:  Receipt{AgentID: agentID, EntryID: entry.ID, MessageID: env.MessageID},
		})
	}
	return received, nil
}

// Acknowledge removes a consumed entry from the inbox and remembers its
// message id for 24 hours so redeliveries are detected.
func (b *Bus) Acknowledge(ctx context.Context, r Receipt) error {
	if err := b.rdb.XDel(ctx, inboxKey(r.AgentID), r.EntryID).Err(); err != nil {
		return fmt.Errorf("failed to delete inbox entry %s: %w", r.EntryID, err)
	}
	pk := processedKey(r.AgentID)
	if err := b.rdb.SAdd(ctx, pk, r.MessageID).Err(); err != nil {
		return fmt.Errorf("failed to record processed id: %w", err)
	}
	b.rdb.Expire(ctx, pk, processedTTL)
	return nil
}

// InboxLen returns the number of pending entries in an agent's inbox.
func (b *Bus) InboxLen(ctx context.Context, agentID string) (int64, error) {
	return b.rdb.XLen(ctx, inboxKey(agentID)).Result()
}

// Subscription is a live pub/sub subscription delivering notifications to a
// callback. Close stops delivery.
type Subscription struct {
	pubsub *redis.PubSub
	done   chan struct{}
}

// Close terminates the subscription.
func (s *Subscription) Close() error {
	close(s.done)
	return s.pubsub.Close()
}

// Subscribe registers a callback for the agent's notification channel.
// Notifications carry only the message id and type; the consumer pulls full
// envelopes with ConsumeStream.
func (b *Bus) Subscribe(ctx context.Context, agentID string, fn func(Notification)) (*Subscription, error) {
	if _, err := hierarchy.ParseID(agentID); err != nil {
		return nil, err
	}
	channels := []string{channelKey(agentID), tierChannelKey(hierarchy.TierOf(agentID))}
	pubsub := b.rdb.Subscribe(ctx, channels...)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe %s: %w", agentID, err)
	}

	sub := &Subscription{pubsub: pubsub, done: make(chan struct{})}
	go func() {
		ch := pubsub.Channel()
		for {
			select {
			case <-sub.done:
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				fn(parseNotification(msg.Payload))
			}
		}
	}()
	return sub, nil
}

func parseNotification(payload string) Notification {
	var n Notification
	// Payloads are produced by notify; malformed ones yield zero values and
	// the consumer falls back to a full stream poll.
	_ = json.Unmarshal([]byte(payload), &n)
	return n
}
