package bus

import (
	"fmt"
	"time"
)

// HierarchyViolationError reports a (sender, recipient, direction) triple
// the hierarchy validator forbids. It is surfaced to the caller and never
// retried.
type HierarchyViolationError struct {
	SenderID    string
	RecipientID string
	Direction   string
}

func (e *HierarchyViolationError) Error() string {
	return fmt.Sprintf("Hierarchy violation: %s may not send %s to %s",
		e.SenderID, e.Direction, e.RecipientID)
}

// RateLimitError reports that a sender exceeded its tier's token bucket.
// The caller is expected to back off and retry.
type RateLimitError struct {
	SenderID   string
	Tier       string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded for %s (tier %s), retry after %s",
		e.SenderID, e.Tier, e.RetryAfter)
}

// RoutingLoopError reports a hop-count overflow: the message has been
// forwarded too many times and is assumed to be looping.
type RoutingLoopError struct {
	MessageID string
	HopCount  int
}

func (e *RoutingLoopError) Error() string {
	return fmt.Sprintf("routing loop: message %s at hop count %d (cap %d)",
		e.MessageID, e.HopCount, MaxHops)
}
