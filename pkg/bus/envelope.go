// Package bus implements the hierarchical message bus: typed envelopes,
// tier-validated routing over Redis streams, pub/sub notifications and
// per-tier rate limiting.
package bus

import (
	"fmt"
	"time"

	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/google/uuid"
)

// MaxHops is the hop-count cap. A message whose hop count would reach this
// value is never enqueued; this bounds routing loops.
const MaxHops = 5

// MessageType classifies the intent of an envelope.
type MessageType string

// Message types carried by the bus.
const (
	TypeIntent         MessageType = "intent"
	TypeDelegation     MessageType = "delegation"
	TypeEscalation     MessageType = "escalation"
	TypeVoteProposal   MessageType = "vote_proposal"
	TypeVoteCast       MessageType = "vote_cast"
	TypeNotification   MessageType = "notification"
	TypeKnowledgeShare MessageType = "knowledge_share"
	TypeHeartbeat      MessageType = "heartbeat"
	TypeLiquidation    MessageType = "liquidation"
)

// Valid reports whether t is a defined message type.
func (t MessageType) Valid() bool {
	switch t {
	case TypeIntent, TypeDelegation, TypeEscalation, TypeVoteProposal,
		TypeVoteCast, TypeNotification, TypeKnowledgeShare, TypeHeartbeat,
		TypeLiquidation:
		return true
	}
	return false
}

// Priority orders messages for consumers. It does not affect bus ordering,
// which stays FIFO per (sender, recipient).
type Priority string

// Priorities.
const (
	PriorityLow      Priority = "low"
	PriorityNormal   Priority = "normal"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// ContextHit is a single semantic-store retrieval attached to an envelope.
type ContextHit struct {
	ID         string  `json:"id"`
	Content    string  `json:"content"`
	Similarity float32 `json:"similarity"`
	Collection string  `json:"collection"`
}

// Enrichment carries optional semantic context attached by the context
// store. The original content of the envelope is never altered.
type Enrichment struct {
	SemanticContext []ContextHit `json:"semantic_context,omitempty"`
	ArticleRefs     []string     `json:"article_refs,omitempty"`
}

// Envelope is the immutable routing record carried between agents. Forward
// returns incremented copies; an Envelope is never mutated in place.
type Envelope struct {
	MessageID     string
	CorrelationID string
	SenderID      string
	RecipientID   string // may be hierarchy.Broadcast
	Direction     hierarchy.Direction
	Type          MessageType
	Content       string
	Payload       map[string]any
	Enrichment    *Enrichment
	Priority      Priority
	TTL           time.Duration
	Timestamp     time.Time
	HopCount      int
	RequiresAck   bool
}

// NewEnvelope constructs a validated envelope with hop count zero and a
// fresh message id.
func NewEnvelope(senderID, recipientID string, dir hierarchy.Direction, msgType MessageType, content string, payload map[string]any) (*Envelope, error) {
	env := &Envelope{
		MessageID:   uuid.New().String(),
		SenderID:    senderID,
		RecipientID: recipientID,
		Direction:   dir,
		Type:        msgType,
		Content:     content,
		Payload:     payload,
		Priority:    PriorityNormal,
		TTL:         time.Hour,
		Timestamp:   time.Now().UTC(),
		HopCount:    0,
	}
	if err := env.Validate(); err != nil {
		return nil, err
	}
	return env, nil
}

// Validate checks the envelope construction rules: sender and recipient
// format, hop count below the cap and a positive TTL.
func (e *Envelope) Validate() error {
	if _, err := hierarchy.ParseID(e.SenderID); err != nil {
		return fmt.Errorf("invalid sender: %w", err)
	}
	if e.RecipientID != hierarchy.Broadcast {
		if _, err := hierarchy.ParseID(e.RecipientID); err != nil {
			return fmt.Errorf("invalid recipient: %w", err)
		}
	}
	if !e.Direction.Valid() {
		return fmt.Errorf("invalid direction %q", e.Direction)
	}
	if !e.Type.Valid() {
		return fmt.Errorf("invalid message type %q", e.Type)
	}
	if e.HopCount < 0 || e.HopCount >= MaxHops {
		return &RoutingLoopError{MessageID: e.MessageID, HopCount: e.HopCount}
	}
	if e.TTL <= 0 {
		return fmt.Errorf("ttl must be positive, got %s", e.TTL)
	}
	return nil
}

// Forward returns a copy of the envelope with the hop counter incremented.
// The hop counter strictly increases along any routing chain; once the next
// hop would reach the cap the message is rejected with a RoutingLoopError
// and never enters another inbox.
func (e *Envelope) Forward() (*Envelope, error) {
	if e.HopCount+1 >= MaxHops {
		return nil, &RoutingLoopError{MessageID: e.MessageID, HopCount: e.HopCount}
	}
	fwd := *e
	fwd.HopCount = e.HopCount + 1
	if e.Payload != nil {
		fwd.Payload = make(map[string]any, len(e.Payload))
		for k, v := range e.Payload {
			fwd.Payload[k] = v
		}
	}
	return &fwd, nil
}

// WithCorrelation returns a copy carrying the given correlation id.
func (e *Envelope) WithCorrelation(correlationID string) *Envelope {
	cp := *e
	cp.CorrelationID = correlationID
	return &cp
}

// WithEnrichment returns a copy carrying the given enrichment. Content and
// payload are untouched.
func (e *Envelope) WithEnrichment(enr *Enrichment) *Envelope {
	cp := *e
	cp.Enrichment = enr
	return &cp
}

// Expired reports whether the envelope's TTL has elapsed relative to now.
func (e *Envelope) Expired(now time.Time) bool {
	return now.After(e.Timestamp.Add(e.TTL))
}
