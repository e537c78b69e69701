package agents

import (
	"context"
	"testing"
	"time"

	"github.com/agentium/agentium/pkg/alerts"
	"github.com/agentium/agentium/pkg/audit"
	"github.com/agentium/agentium/pkg/bus"
	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/agentium/agentium/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCanceller struct {
	cancelled map[string]string
	count     int
}

func (f *fakeCanceller) CancelNonTerminal(_ context.Context, agentID, reason string) (int, error) {
	if f.cancelled == nil {
		f.cancelled = map[string]string{}
	}
	f.cancelled[agentID] = reason
	return f.count, nil
}

type capturingPublisher struct {
	published []*bus.Envelope
}

func (p *capturingPublisher) Publish(_ context.Context, env *bus.Envelope, _ bool) (*bus.PublishResult, error) {
	p.published = append(p.published, env)
	return &bus.PublishResult{MessageID: env.MessageID}, nil
}

func seedHierarchy(t *testing.T, svc *Service) (head, lead, task *Agent) {
	t.Helper()
	ctx := context.Background()

	head, err := svc.EnsureHead(ctx)
	require.NoError(t, err)

	lead, err = svc.Spawn(ctx, SpawnRequest{ParentID: head.ID, Tier: hierarchy.TierLead})
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(ctx, lead.ID, models.AgentStatusActive))

	task, err = svc.Spawn(ctx, SpawnRequest{ParentID: lead.ID, Tier: hierarchy.TierTask})
	require.NoError(t, err)
	return head, lead, task
}

func TestEnsureHeadIsIdempotent(t *testing.T) {
	svc := New(NewMemoryStore(), audit.NewMemoryRecorder())
	ctx := context.Background()

	first, err := svc.EnsureHead(ctx)
	require.NoError(t, err)
	assert.Equal(t, hierarchy.HeadID, first.ID)
	assert.True(t, first.Persistent)
	assert.Equal(t, models.AgentStatusActive, first.Status)

	second, err := svc.EnsureHead(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestSpawnFollowsTierRules(t *testing.T) {
	recorder := audit.NewMemoryRecorder()
	svc := New(NewMemoryStore(), recorder)
	ctx := context.Background()

	head, err := svc.EnsureHead(ctx)
	require.NoError(t, err)

	council, err := svc.Spawn(ctx, SpawnRequest{ParentID: head.ID, Tier: hierarchy.TierCouncil})
	require.NoError(t, err)
	assert.Equal(t, "10001", council.ID)
	assert.Equal(t, models.AgentStatusInitializing, council.Status)

	lead, err := svc.Spawn(ctx, SpawnRequest{ParentID: head.ID, Tier: hierarchy.TierLead})
	require.NoError(t, err)
	assert.Equal(t, "20001", lead.ID)

	// Council may not spawn at all; Lead spawns only Task agents.
	_, err = svc.Spawn(ctx, SpawnRequest{ParentID: council.ID, Tier: hierarchy.TierTask})
	require.Error(t, err)
	_, err = svc.Spawn(ctx, SpawnRequest{ParentID: lead.ID, Tier: hierarchy.TierLead})
	require.Error(t, err)

	taskAgent, err := svc.Spawn(ctx, SpawnRequest{ParentID: lead.ID, Tier: hierarchy.TierTask})
	require.NoError(t, err)
	assert.Equal(t, "30001", taskAgent.ID)
	assert.Equal(t, lead.ID, taskAgent.ParentID)

	spawns := recorder.ByKind(audit.KindAgentLifecycle)
	assert.Len(t, spawns, 3)
}

func TestSpawnSequentialIdentifiers(t *testing.T) {
	svc := New(NewMemoryStore(), audit.NewMemoryRecorder())
	ctx := context.Background()
	_, lead, _ := seedHierarchy(t, svc)

	second, err := svc.Spawn(ctx, SpawnRequest{ParentID: lead.ID, Tier: hierarchy.TierTask})
	require.NoError(t, err)
	assert.Equal(t, "30002", second.ID)
}

func TestSpawnFromTerminatedParent(t *testing.T) {
	svc := New(NewMemoryStore(), audit.NewMemoryRecorder())
	ctx := context.Background()
	_, lead, _ := seedHierarchy(t, svc)

	require.NoError(t, svc.Terminate(ctx, lead.ID, "restructuring"))
	_, err := svc.Spawn(ctx, SpawnRequest{ParentID: lead.ID, Tier: hierarchy.TierTask})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminated")
}

func TestTerminateHeadRejected(t *testing.T) {
	svc := New(NewMemoryStore(), audit.NewMemoryRecorder())
	_, err := svc.EnsureHead(context.Background())
	require.NoError(t, err)

	err = svc.Terminate(context.Background(), hierarchy.HeadID, "no reason is good enough")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "may not be terminated")
}

func TestTerminateLiquidatesTasksAndNotifies(t *testing.T) {
	recorder := audit.NewMemoryRecorder()
	canceller := &fakeCanceller{count: 2}
	publisher := &capturingPublisher{}
	notifier := alerts.NewMemoryNotifier()
	svc := New(NewMemoryStore(), recorder,
		WithTaskCanceller(canceller),
		WithPublisher(publisher),
		WithNotifier(notifier))
	ctx := context.Background()
	_, lead, task := seedHierarchy(t, svc)

	require.NoError(t, svc.Terminate(ctx, task.ID, "budget cut"))

	assert.Equal(t, "budget cut", canceller.cancelled[task.ID])

	require.Len(t, publisher.published, 1)
	notice := publisher.published[0]
	assert.Equal(t, bus.TypeLiquidation, notice.Type)
	assert.Equal(t, task.ID, notice.SenderID)
	assert.Equal(t, lead.ID, notice.RecipientID)
	assert.Equal(t, 2, notice.Payload["cancelled_tasks"])

	terminations := 0
	for _, e := range recorder.ByKind(audit.KindAgentLifecycle) {
		if e.Details["event"] == "terminated" {
			terminations++
		}
	}
	assert.Equal(t, 1, terminations)

	alertsSent := notifier.Alerts()
	require.Len(t, alertsSent, 1)
	assert.Equal(t, alerts.KindAgentLiquidated, alertsSent[0].Kind)
}

func TestTerminateIsIdempotent(t *testing.T) {
	canceller := &fakeCanceller{}
	svc := New(NewMemoryStore(), audit.NewMemoryRecorder(), WithTaskCanceller(canceller))
	ctx := context.Background()
	_, _, task := seedHierarchy(t, svc)

	require.NoError(t, svc.Terminate(ctx, task.ID, "first"))
	require.NoError(t, svc.Terminate(ctx, task.ID, "second"))
	assert.Equal(t, "first", canceller.cancelled[task.ID])
}

func TestHeartbeatStampsLiveness(t *testing.T) {
	stamp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	svc := New(store, audit.NewMemoryRecorder(), WithClock(func() time.Time { return stamp }))
	ctx := context.Background()
	_, _, task := seedHierarchy(t, svc)

	require.NoError(t, svc.Heartbeat(ctx, task.ID))
	got, err := store.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, stamp, got.LastHeartbeatAt)
}

func TestUpdateStatusValidation(t *testing.T) {
	svc := New(NewMemoryStore(), audit.NewMemoryRecorder())
	ctx := context.Background()
	_, _, task := seedHierarchy(t, svc)

	require.Error(t, svc.UpdateStatus(ctx, task.ID, "daydreaming"))
	require.Error(t, svc.UpdateStatus(ctx, task.ID, models.AgentStatusTerminated))
	require.NoError(t, svc.UpdateStatus(ctx, task.ID, models.AgentStatusWorking))
}

func TestEthosOwnership(t *testing.T) {
	svc := New(NewMemoryStore(), audit.NewMemoryRecorder())
	ctx := context.Background()
	head, lead, task := seedHierarchy(t, svc)

	peer, err := svc.Spawn(ctx, SpawnRequest{ParentID: lead.ID, Tier: hierarchy.TierTask})
	require.NoError(t, err)

	// The owner writes its own ethos.
	require.NoError(t, svc.CorrectEthos(ctx, task.ID, task.ID, "thorough and honest"))
	got, err := svc.ReadEthos(ctx, task.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "thorough and honest", got)

	// Higher tiers read and correct subordinates.
	got, err = svc.ReadEthos(ctx, lead.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "thorough and honest", got)
	require.NoError(t, svc.CorrectEthos(ctx, head.ID, task.ID, "thorough, honest, brief"))

	// Peers and subordinates are shut out.
	_, err = svc.ReadEthos(ctx, peer.ID, task.ID)
	require.Error(t, err)
	require.Error(t, svc.CorrectEthos(ctx, peer.ID, task.ID, "sloppy"))
	_, err = svc.ReadEthos(ctx, task.ID, lead.ID)
	require.Error(t, err)
	require.Error(t, svc.CorrectEthos(ctx, task.ID, lead.ID, "do what I say"))
}
