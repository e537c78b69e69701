package bus

import (
	"sync"
	"time"

	"github.com/agentium/agentium/pkg/hierarchy"
	"golang.org/x/time/rate"
)

// Per-tier publish caps in messages per second. The Head is practically
// unlimited; lower tiers get progressively smaller buckets.
var tierRates = map[hierarchy.Tier]rate.Limit{
	hierarchy.TierHead:    rate.Limit(1000),
	hierarchy.TierCouncil: rate.Limit(20),
	hierarchy.TierLead:    rate.Limit(10),
	hierarchy.TierTask:    rate.Limit(5),
}

// tierLimiter hands out one token bucket per sender, sized by the sender's
// tier and refilled each second.
type tierLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

func newTierLimiter() *tierLimiter {
	return &tierLimiter{buckets: make(map[string]*rate.Limiter)}
}

// allow consumes one token from the sender's bucket. On an empty bucket it
// returns a RateLimitError; the caller backs off and retries.
func (l *tierLimiter) allow(senderID string, tier hierarchy.Tier) error {
	l.mu.Lock()
	bucket, ok := l.buckets[senderID]
	if !ok {
		limit := tierRates[tier]
		bucket = rate.NewLimiter(limit, int(limit))
		l.buckets[senderID] = bucket
	}
	l.mu.Unlock()

	if !bucket.Allow() {
		return &RateLimitError{
			SenderID:   senderID,
			Tier:       tier.String(),
			RetryAfter: time.Second,
		}
	}
	return nil
}
