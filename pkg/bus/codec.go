package bus

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/agentium/agentium/pkg/hierarchy"
)

// Stream entry field names. The wire format is flat string values: payload
// and enrichment are stringified JSON, the hop count a string-encoded
// non-negative integer strictly below MaxHops, the timestamp ISO-8601 UTC.
const (
	fieldMessageID     = "message_id"
	fieldCorrelationID = "correlation_id"
	fieldSenderID      = "sender_id"
	fieldRecipientID   = "recipient_id"
	fieldType          = "message_type"
	fieldDirection     = "route_direction"
	fieldContent       = "content"
	fieldPayload       = "payload"
	fieldEnrichment    = "enrichment"
	fieldPriority      = "priority"
	fieldTimestamp     = "timestamp"
	fieldHopCount      = "hop_count"
	fieldTTLSeconds    = "ttl_seconds"
	fieldRequiresAck   = "requires_ack"
)

// encodeEnvelope flattens an envelope into a redis stream entry.
func encodeEnvelope(e *Envelope) (map[string]any, error) {
	payloadJSON := "{}"
	if e.Payload != nil {
		raw, err := json.Marshal(e.Payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		payloadJSON = string(raw)
	}

	entry := map[string]any{
		fieldMessageID:     e.MessageID,
		fieldCorrelationID: e.CorrelationID,
		fieldSenderID:      e.SenderID,
		fieldRecipientID:   e.RecipientID,
		fieldType:          string(e.Type),
		fieldDirection:     string(e.Direction),
		fieldContent:       e.Content,
		fieldPayload:       payloadJSON,
		fieldPriority:      string(e.Priority),
		fieldTimestamp:     e.Timestamp.UTC().Format(time.RFC3339Nano),
		fieldHopCount:      strconv.Itoa(e.HopCount),
		fieldTTLSeconds:    strconv.Itoa(int(e.TTL.Seconds())),
		fieldRequiresAck:   strconv.FormatBool(e.RequiresAck),
	}

	if e.Enrichment != nil {
		raw, err := json.Marshal(e.Enrichment)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal enrichment: %w", err)
		}
		entry[fieldEnrichment] = string(raw)
	}
	return entry, nil
}

// decodeEnvelope reconstructs an envelope from a redis stream entry. The
// round trip is lossless for every field the routing contract requires.
func decodeEnvelope(values map[string]any) (*Envelope, error) {
	str := func(key string) string {
		if v, ok := values[key].(string); ok {
			return v
		}
		return ""
	}

	hop, err := strconv.Atoi(str(fieldHopCount))
	if err != nil {
		return nil, fmt.Errorf("malformed hop_count %q: %w", str(fieldHopCount), err)
	}
	ttlSecs, err := strconv.Atoi(str(fieldTTLSeconds))
	if err != nil {
		return nil, fmt.Errorf("malformed ttl_seconds %q: %w", str(fieldTTLSeconds), err)
	}
	ts, err := time.Parse(time.RFC3339Nano, str(fieldTimestamp))
	if err != nil {
		return nil, fmt.Errorf("malformed timestamp %q: %w", str(fieldTimestamp), err)
	}

	env := &Envelope{
		MessageID:     str(fieldMessageID),
		CorrelationID: str(fieldCorrelationID),
		SenderID:      str(fieldSenderID),
		RecipientID:   str(fieldRecipientID),
		Type:          MessageType(str(fieldType)),
		Direction:     hierarchy.Direction(str(fieldDirection)),
		Content:       str(fieldContent),
		Priority:      Priority(str(fieldPriority)),
		Timestamp:     ts,
		HopCount:      hop,
		TTL:           time.Duration(ttlSecs) * time.Second,
		RequiresAck:   str(fieldRequiresAck) == "true",
	}

	if raw := str(fieldPayload); raw != "" && raw != "{}" {
		var payload map[string]any
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return nil, fmt.Errorf("malformed payload: %w", err)
		}
		env.Payload = payload
	}
	if raw := str(fieldEnrichment); raw != "" {
		var enr Enrichment
		if err := json.Unmarshal([]byte(raw), &enr); err != nil {
			return nil, fmt.Errorf("malformed enrichment: %w", err)
		}
		env.Enrichment = &enr
	}
	return env, nil
}
