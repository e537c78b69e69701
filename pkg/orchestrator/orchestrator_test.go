package orchestrator

import (
	"context"
	"fmt"
	"testing"

	"github.com/agentium/agentium/pkg/audit"
	"github.com/agentium/agentium/pkg/bus"
	"github.com/agentium/agentium/pkg/guard"
	"github.com/agentium/agentium/pkg/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRegistry serves a fixed agent table.
type memoryRegistry struct {
	agents map[string]*AgentInfo
}

func (r *memoryRegistry) Get(_ context.Context, id string) (*AgentInfo, error) {
	info, ok := r.agents[id]
	if !ok {
		return nil, fmt.Errorf("agent %s not found", id)
	}
	return info, nil
}

func (r *memoryRegistry) IdleTaskAgent(_ context.Context, leadID string) (string, error) {
	for id, info := range r.agents {
		if info.ParentID == leadID && info.Status == models.AgentStatusIdlePaused {
			return id, nil
		}
	}
	return "", fmt.Errorf("no idle task agent under %s", leadID)
}

func newTestRegistry() *memoryRegistry {
	return &memoryRegistry{agents: map[string]*AgentInfo{
		"00001": {ID: "00001", Status: models.AgentStatusActive},
		"10001": {ID: "10001", ParentID: "00001", Status: models.AgentStatusActive},
		"20001": {ID: "20001", ParentID: "10001", Status: models.AgentStatusActive},
		"30001": {ID: "30001", ParentID: "20001", Status: models.AgentStatusWorking},
		"30002": {ID: "30002", ParentID: "20001", Status: models.AgentStatusIdlePaused},
	}}
}

func newTestOrchestrator(t *testing.T) (*Orchestrator, *bus.Bus, *audit.MemoryRecorder, *memoryRegistry) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	registry := newTestRegistry()
	b := bus.New(rdb, bus.WithParentResolver(registryParents{registry}))
	recorder := audit.NewMemoryRecorder()
	g := guard.New(nil, recorder)
	return New(registry, g, nil, b, recorder), b, recorder, registry
}

type registryParents struct{ r *memoryRegistry }

func (p registryParents) ParentOf(ctx context.Context, agentID string) (string, error) {
	info, err := p.r.Get(ctx, agentID)
	if err != nil {
		return "", err
	}
	if info.ParentID == "" {
		return "", fmt.Errorf("agent %s has no parent", agentID)
	}
	return info.ParentID, nil
}

func TestProcessIntentRoutesToParent(t *testing.T) {
	o, b, _, _ := newTestOrchestrator(t)
	ctx := context.Background()

	res, err := o.ProcessIntent(ctx, IntentRequest{
		RawInput: "need more context on the sales dataset",
		SourceID: "30001",
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "agent:20001:inbox", res.Path)
	assert.NotEmpty(t, res.MessageID)
	assert.GreaterOrEqual(t, res.LatencyMs, int64(0))

	// Delivered one hop up and nowhere else.
	msgs, err := b.ConsumeStream(ctx, "20001", 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, 1, msgs[0].Envelope.HopCount)
	assert.Equal(t, "30001", msgs[0].Envelope.SenderID)

	for _, agent := range []string{"00001", "10001"} {
		n, lenErr := b.InboxLen(ctx, agent)
		require.NoError(t, lenErr)
		assert.Zero(t, n, "inbox of %s", agent)
	}
}

func TestProcessIntentHierarchyViolation(t *testing.T) {
	o, b, recorder, _ := newTestOrchestrator(t)
	ctx := context.Background()

	// A Task agent addressing the Head directly skips a tier.
	res, err := o.ProcessIntent(ctx, IntentRequest{
		RawInput: "reporting straight to the top",
		SourceID: "30001",
		TargetID: "00001",
	})
	require.Error(t, err)
	var hvErr *bus.HierarchyViolationError
	require.ErrorAs(t, err, &hvErr)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "Hierarchy violation")

	// Nothing enqueued anywhere, and exactly one audit entry.
	for _, agent := range []string{"00001", "10001", "20001"} {
		n, lenErr := b.InboxLen(ctx, agent)
		require.NoError(t, lenErr)
		assert.Zero(t, n, "inbox of %s", agent)
	}
	entries := recorder.ByKind(audit.KindRoutingViolation)
	require.Len(t, entries, 1)
	assert.Equal(t, "30001", entries[0].ActorID)
	assert.Equal(t, "00001", entries[0].Details["recipient"])
}

func TestProcessIntentBlockedByGuard(t *testing.T) {
	o, b, recorder, _ := newTestOrchestrator(t)
	ctx := context.Background()

	res, err := o.ProcessIntent(ctx, IntentRequest{
		RawInput: "terminate the head agent",
		SourceID: "30001",
	})
	require.Error(t, err)
	var blockErr *guard.BlockError
	require.ErrorAs(t, err, &blockErr)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "constitutional violation")

	n, lenErr := b.InboxLen(ctx, "20001")
	require.NoError(t, lenErr)
	assert.Zero(t, n, "blocked intents never reach the bus")

	require.Len(t, recorder.ByKind(audit.KindConstitutionalBlock), 1)
}

func TestProcessIntentEscalateRedirectsUpward(t *testing.T) {
	o, b, _, _ := newTestOrchestrator(t)
	ctx := context.Background()

	// A purchase intent aimed downward escalates: the delegation target
	// is replaced by the sender's parent.
	res, err := o.ProcessIntent(ctx, IntentRequest{
		RawInput: "purchase a data export license for the vendor api",
		SourceID: "20001",
		TargetID: "30001",
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "agent:10001:inbox", res.Path)

	msgs, err := b.ConsumeStream(ctx, "10001", 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	n, lenErr := b.InboxLen(ctx, "30001")
	require.NoError(t, lenErr)
	assert.Zero(t, n, "original delegation target bypassed")
}

func TestProcessIntentRepeatOffenderEscalates(t *testing.T) {
	o, b, _, registry := newTestOrchestrator(t)
	ctx := context.Background()
	registry.agents["30001"].RecentViolations = 3

	// A benign lateral intent from a repeat offender is pulled up to the
	// sender's parent for review.
	res, err := o.ProcessIntent(ctx, IntentRequest{
		RawInput: "summarize the quarterly numbers",
		SourceID: "30001",
		TargetID: "30002",
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "agent:20001:inbox", res.Path)

	n, lenErr := b.InboxLen(ctx, "30002")
	require.NoError(t, lenErr)
	assert.Zero(t, n)
}

func TestProcessIntentUnknownSource(t *testing.T) {
	o, _, _, _ := newTestOrchestrator(t)

	_, err := o.ProcessIntent(context.Background(), IntentRequest{
		RawInput: "hello",
		SourceID: "30099",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown source agent")
}

func TestProcessIntentCarriesCorrelation(t *testing.T) {
	o, b, _, _ := newTestOrchestrator(t)
	ctx := context.Background()

	_, err := o.ProcessIntent(ctx, IntentRequest{
		RawInput:      "partial results attached",
		SourceID:      "30001",
		CorrelationID: "corr-42",
		Payload:       map[string]any{"rows": "118"},
	})
	require.NoError(t, err)

	msgs, err := b.ConsumeStream(ctx, "20001", 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "corr-42", msgs[0].Envelope.CorrelationID)
	assert.Equal(t, "118", msgs[0].Envelope.Payload["rows"])
}

func TestEscalateToCouncilResolvesParent(t *testing.T) {
	o, b, _, _ := newTestOrchestrator(t)
	ctx := context.Background()

	res, err := o.EscalateToCouncil(ctx, "lead is unresponsive", "30001")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "agent:20001:inbox", res.Path)

	msgs, err := b.ConsumeStream(ctx, "20001", 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	env := msgs[0].Envelope
	assert.Equal(t, bus.TypeEscalation, env.Type)
	assert.Equal(t, bus.PriorityHigh, env.Priority)
	assert.Equal(t, "lead is unresponsive", env.Content)
	assert.Equal(t, "lead is unresponsive", env.Payload["issue"])
}

func TestEscalateToCouncilUnknownReporter(t *testing.T) {
	o, _, _, _ := newTestOrchestrator(t)
	_, err := o.EscalateToCouncil(context.Background(), "issue", "30099")
	require.Error(t, err)
}

func TestDelegateToTaskPicksIdleAgent(t *testing.T) {
	o, b, _, _ := newTestOrchestrator(t)
	ctx := context.Background()

	res, err := o.DelegateToTask(ctx, map[string]any{
		"description": "clean the customer table",
		"task_id":     "task-7",
	}, "20001", "")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "agent:30002:inbox", res.Path)

	msgs, err := b.ConsumeStream(ctx, "30002", 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	env := msgs[0].Envelope
	assert.Equal(t, bus.TypeDelegation, env.Type)
	assert.Equal(t, "clean the customer table", env.Content)
	assert.Equal(t, "task-7", env.Payload["task_id"])
}

func TestDelegateToTaskExplicitAgent(t *testing.T) {
	o, b, _, _ := newTestOrchestrator(t)
	ctx := context.Background()

	res, err := o.DelegateToTask(ctx, map[string]any{
		"description": "rerun the failed import",
	}, "20001", "30001")
	require.NoError(t, err)
	assert.Equal(t, "agent:30001:inbox", res.Path)

	n, err := b.InboxLen(ctx, "30002")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDelegateToTaskNoIdleAgent(t *testing.T) {
	o, _, _, registry := newTestOrchestrator(t)
	registry.agents["30002"].Status = models.AgentStatusWorking

	_, err := o.DelegateToTask(context.Background(), map[string]any{
		"description": "anything",
	}, "20001", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no idle task agent")
}
