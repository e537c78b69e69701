// Package orchestrator coordinates intent processing: agent lookup,
// constitutional and hierarchy gating, semantic enrichment and dispatch
// through the message bus.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agentium/agentium/pkg/audit"
	"github.com/agentium/agentium/pkg/bus"
	"github.com/agentium/agentium/pkg/guard"
	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/agentium/agentium/pkg/models"
	"github.com/agentium/agentium/pkg/semantic"
	"github.com/google/uuid"
)

// AgentInfo is the orchestrator's view of a registered agent.
type AgentInfo struct {
	ID               string
	ParentID         string
	Status           models.AgentStatus
	RecentViolations int
}

// Registry looks up agents for routing decisions.
type Registry interface {
	Get(ctx context.Context, id string) (*AgentInfo, error)
	// IdleTaskAgent returns an idle Task agent under the given Lead.
	IdleTaskAgent(ctx context.Context, leadID string) (string, error)
}

// IntentRequest is one raw agent intent.
type IntentRequest struct {
	RawInput      string
	SourceID      string
	TargetID      string // empty: route to the source's parent
	CorrelationID string
	Payload       map[string]any
}

// RouteResult reports the outcome of an orchestrated route.
type RouteResult struct {
	Success   bool
	MessageID string
	Path      string
	Error     string
	LatencyMs int64
}

// Orchestrator is the central intent processor.
type Orchestrator struct {
	registry Registry
	guard    *guard.Guard
	store    *semantic.Store
	bus      *bus.Bus
	audit    audit.Recorder
	log      *slog.Logger
}

// New creates an orchestrator. store may be nil (no enrichment).
func New(registry Registry, g *guard.Guard, store *semantic.Store, b *bus.Bus, recorder audit.Recorder) *Orchestrator {
	if recorder == nil {
		recorder = audit.NewSlogRecorder()
	}
	return &Orchestrator{
		registry: registry,
		guard:    g,
		store:    store,
		bus:      b,
		audit:    recorder,
		log:      slog.Default().With("component", "orchestrator"),
	}
}

// ProcessIntent routes a raw intent through the full gate sequence. Handled
// policy failures come back in the result with Success=false; the error
// return carries the typed cause for transport mapping, and is nil on
// success.
func (o *Orchestrator) ProcessIntent(ctx context.Context, req IntentRequest) (*RouteResult, error) {
	started := time.Now()
	result := &RouteResult{}
	finish := func() *RouteResult {
		result.LatencyMs = time.Since(started).Milliseconds()
		return result
	}

	source, err := o.registry.Get(ctx, req.SourceID)
	if err != nil {
		return nil, fmt.Errorf("unknown source agent %s: %w", req.SourceID, err)
	}

	targetID := req.TargetID
	if targetID == "" {
		targetID = parentOf(req.SourceID, source)
		if targetID == "" {
			return nil, fmt.Errorf("cannot resolve target for %s", req.SourceID)
		}
	}

	decision, err := o.guard.CheckAction(ctx, req.SourceID, req.RawInput, guard.ActionContext{
		RecentViolations: source.RecentViolations,
	})
	if err != nil {
		return nil, fmt.Errorf("constitutional check failed: %w", err)
	}
	switch decision.Verdict {
	case guard.VerdictBlock:
		blockErr := &guard.BlockError{ActorID: req.SourceID, Decision: decision}
		result.Error = blockErr.Error()
		return finish(), blockErr
	case guard.VerdictEscalate:
		// Redirect to the sender's parent instead of the intended
		// handler. The Head has nowhere to escalate to.
		if parent := parentOf(req.SourceID, source); parent != "" {
			targetID = parent
		}
		o.log.Info("Intent escalated by constitutional guard",
			"source_id", req.SourceID, "new_target", targetID)
	}

	direction, dirErr := o.directionTo(req.SourceID, targetID)
	if dirErr != nil {
		result.Error = dirErr.Error()
		return finish(), dirErr
	}
	if !hierarchy.CanRoute(req.SourceID, targetID, direction) {
		violation := &bus.HierarchyViolationError{
			SenderID:    req.SourceID,
			RecipientID: targetID,
			Direction:   string(direction),
		}
		o.audit.Record(ctx, audit.Entry{
			Kind:     audit.KindRoutingViolation,
			Severity: audit.SeverityWarning,
			ActorID:  req.SourceID,
			Details: map[string]any{
				"recipient": targetID,
				"direction": string(direction),
				"content":   req.RawInput,
			},
		})
		result.Error = violation.Error()
		return finish(), violation
	}

	env, err := bus.NewEnvelope(req.SourceID, targetID, direction, bus.TypeIntent, req.RawInput, req.Payload)
	if err != nil {
		result.Error = err.Error()
		return finish(), err
	}
	if req.CorrelationID != "" {
		env = env.WithCorrelation(req.CorrelationID)
	}
	env = o.enrich(ctx, env)

	pub, err := o.dispatch(ctx, env, direction)
	if err != nil {
		result.Error = err.Error()
		return finish(), err
	}

	result.Success = true
	result.MessageID = pub.MessageID
	result.Path = pub.Path
	return finish(), nil
}

// parentOf resolves an agent's parent, falling back to the tier-pattern
// default. Empty for the Head.
func parentOf(agentID string, info *AgentInfo) string {
	if info != nil && info.ParentID != "" {
		return info.ParentID
	}
	parent, err := hierarchy.DefaultParentID(agentID)
	if err != nil {
		return ""
	}
	return parent
}

func (o *Orchestrator) directionTo(sourceID, targetID string) (hierarchy.Direction, error) {
	if targetID == hierarchy.Broadcast {
		return hierarchy.DirectionBroadcast, nil
	}
	fromTier, err := hierarchy.ParseID(sourceID)
	if err != nil {
		return "", err
	}
	toTier, err := hierarchy.ParseID(targetID)
	if err != nil {
		return "", fmt.Errorf("invalid target agent: %w", err)
	}
	return hierarchy.DirectionBetween(fromTier, toTier), nil
}

// enrich attaches semantic context; retrieval failures degrade to the
// unenriched envelope.
func (o *Orchestrator) enrich(ctx context.Context, env *bus.Envelope) *bus.Envelope {
	if o.store == nil {
		return env
	}
	enriched, err := o.store.Enrich(ctx, env)
	if err != nil {
		o.log.Warn("Semantic enrichment failed", "message_id", env.MessageID, "error", err)
		return env
	}
	return enriched
}

func (o *Orchestrator) dispatch(ctx context.Context, env *bus.Envelope, direction hierarchy.Direction) (*bus.PublishResult, error) {
	switch direction {
	case hierarchy.DirectionUp:
		return o.bus.RouteUp(ctx, env, false)
	case hierarchy.DirectionDown:
		return o.bus.RouteDown(ctx, env)
	case hierarchy.DirectionBroadcast:
		return o.bus.BroadcastFromHead(ctx, env)
	default:
		fwd, err := env.Forward()
		if err != nil {
			return nil, err
		}
		return o.bus.Publish(ctx, fwd, true)
	}
}

// EscalateToCouncil routes an issue up from the reporter with the top
// constitution hits attached, letting the bus resolve the parent.
func (o *Orchestrator) EscalateToCouncil(ctx context.Context, issue, reporterID string) (*RouteResult, error) {
	started := time.Now()

	if _, err := o.registry.Get(ctx, reporterID); err != nil {
		return nil, fmt.Errorf("unknown reporter %s: %w", reporterID, err)
	}

	payload := map[string]any{"issue": issue}
	if o.store != nil {
		hits, err := o.store.ConstitutionHits(ctx, issue, 3)
		if err != nil {
			o.log.Warn("Constitution retrieval failed during escalation",
				"reporter_id", reporterID, "error", err)
		}
		payload["constitution_hits"] = hitPayload(hits)
	}

	env := &bus.Envelope{
		MessageID: uuid.New().String(),
		SenderID:  reporterID,
		Direction: hierarchy.DirectionUp,
		Type:      bus.TypeEscalation,
		Content:   issue,
		Payload:   payload,
		Priority:  bus.PriorityHigh,
		TTL:       time.Hour,
		Timestamp: time.Now().UTC(),
	}

	pub, err := o.bus.RouteUp(ctx, env, true)
	if err != nil {
		return &RouteResult{Error: err.Error(), LatencyMs: time.Since(started).Milliseconds()}, err
	}
	return &RouteResult{
		Success:   true,
		MessageID: pub.MessageID,
		Path:      pub.Path,
		LatencyMs: time.Since(started).Milliseconds(),
	}, nil
}

// DelegateToTask sends a delegation from a Lead to a Task agent, picking an
// idle one when none is named. Execution-pattern hits ride along to prime
// the worker.
func (o *Orchestrator) DelegateToTask(ctx context.Context, taskPayload map[string]any, leadID, taskAgentID string) (*RouteResult, error) {
	started := time.Now()

	if _, err := o.registry.Get(ctx, leadID); err != nil {
		return nil, fmt.Errorf("unknown lead %s: %w", leadID, err)
	}
	if taskAgentID == "" {
		var err error
		taskAgentID, err = o.registry.IdleTaskAgent(ctx, leadID)
		if err != nil {
			return nil, fmt.Errorf("no idle task agent under %s: %w", leadID, err)
		}
	}

	content, _ := taskPayload["description"].(string)
	payload := make(map[string]any, len(taskPayload)+1)
	for k, v := range taskPayload {
		payload[k] = v
	}
	if o.store != nil {
		hits, err := o.store.TaskPatternHits(ctx, content, 3)
		if err != nil {
			o.log.Warn("Task-pattern retrieval failed during delegation",
				"lead_id", leadID, "error", err)
		}
		payload["execution_patterns"] = hitPayload(hits)
	}

	env, err := bus.NewEnvelope(leadID, taskAgentID, hierarchy.DirectionDown, bus.TypeDelegation, content, payload)
	if err != nil {
		return &RouteResult{Error: err.Error(), LatencyMs: time.Since(started).Milliseconds()}, err
	}

	pub, err := o.bus.RouteDown(ctx, env)
	if err != nil {
		return &RouteResult{Error: err.Error(), LatencyMs: time.Since(started).Milliseconds()}, err
	}
	return &RouteResult{
		Success:   true,
		MessageID: pub.MessageID,
		Path:      pub.Path,
		LatencyMs: time.Since(started).Milliseconds(),
	}, nil
}

func hitPayload(hits []semantic.Hit) []map[string]any {
	out := make([]map[string]any, 0, len(hits))
	for _, h := range hits {
		out = append(out, map[string]any{
			"id":      h.ID,
			"content": h.Content,
		})
	}
	return out
}
