package capability

import (
	"context"
	"testing"

	"github.com/agentium/agentium/pkg/audit"
	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() (*Registry, *audit.MemoryRecorder) {
	recorder := audit.NewMemoryRecorder()
	return NewRegistry(NewMemoryOverrideStore(), recorder), recorder
}

func TestTierBasesAreNested(t *testing.T) {
	head := BaseFor(hierarchy.TierHead)
	council := BaseFor(hierarchy.TierCouncil)
	lead := BaseFor(hierarchy.TierLead)
	task := BaseFor(hierarchy.TierTask)

	for c := range task {
		assert.True(t, lead.Has(c), "lead base missing task capability %s", c)
	}
	for c := range lead {
		assert.True(t, council.Has(c), "council base missing lead capability %s", c)
	}
	for c := range council {
		assert.True(t, head.Has(c), "head base missing council capability %s", c)
	}

	assert.True(t, head.Has(GrantCapability))
	assert.False(t, task.Has(Delegate))
	assert.False(t, council.Has(Broadcast))
}

func TestEffectiveAppliesOverrides(t *testing.T) {
	r, _ := newTestRegistry()
	ctx := context.Background()

	// Head grants network access to a task agent.
	require.NoError(t, r.Grant(ctx, "30001", NetworkAccess, hierarchy.HeadID, "needs external data"))
	// And revokes its code execution.
	require.NoError(t, r.Revoke(ctx, "30001", ExecuteCode, hierarchy.HeadID, "incident response"))

	effective, err := r.Effective(ctx, "30001")
	require.NoError(t, err)
	assert.True(t, effective.Has(NetworkAccess))
	assert.False(t, effective.Has(ExecuteCode))
	assert.True(t, effective.Has(ReadKnowledge), "untouched base capability remains")
}

func TestGrantRevokeRoundTripRestoresEffective(t *testing.T) {
	r, _ := newTestRegistry()
	ctx := context.Background()

	before, err := r.Effective(ctx, "30001")
	require.NoError(t, err)

	require.NoError(t, r.Grant(ctx, "30001", WriteKnowledge, hierarchy.HeadID, "test"))
	require.NoError(t, r.Revoke(ctx, "30001", WriteKnowledge, hierarchy.HeadID, "test"))

	after, err := r.Effective(ctx, "30001")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestGrantedAndRevokedStayDisjoint(t *testing.T) {
	r, _ := newTestRegistry()
	store := r.store
	ctx := context.Background()

	require.NoError(t, r.Revoke(ctx, "30001", ExecuteCode, hierarchy.HeadID, "suspend"))
	require.NoError(t, r.Grant(ctx, "30001", ExecuteCode, hierarchy.HeadID, "reinstate"))

	o, err := store.Get(ctx, "30001")
	require.NoError(t, err)
	assert.True(t, o.Granted.Has(ExecuteCode))
	assert.False(t, o.Revoked.Has(ExecuteCode))

	require.NoError(t, r.Revoke(ctx, "30001", ExecuteCode, hierarchy.HeadID, "suspend again"))
	o, err = store.Get(ctx, "30001")
	require.NoError(t, err)
	assert.False(t, o.Granted.Has(ExecuteCode))
	assert.True(t, o.Revoked.Has(ExecuteCode))
}

func TestGrantRequiresMetaCapability(t *testing.T) {
	r, recorder := newTestRegistry()
	ctx := context.Background()

	// A lead agent does not hold grant_capability.
	err := r.Grant(ctx, "30001", NetworkAccess, "20001", "not allowed")
	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, GrantCapability, denied.Capability)

	entries := recorder.ByKind(audit.KindCapabilityDenied)
	require.Len(t, entries, 1)
	assert.Equal(t, audit.SeverityInfo, entries[0].Severity)
	assert.Equal(t, "20001", entries[0].ActorID)
}

func TestCanEmitsAuditOnDeny(t *testing.T) {
	r, recorder := newTestRegistry()
	ctx := context.Background()

	ok, err := r.Can(ctx, "30001", Broadcast, false)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, recorder.ByKind(audit.KindCapabilityDenied), 1)

	// raiseOnDeny surfaces the permission error.
	_, err = r.Can(ctx, "30001", Broadcast, true)
	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
}

func TestHeadBaselineIsProtected(t *testing.T) {
	r, _ := newTestRegistry()
	ctx := context.Background()

	err := r.Revoke(ctx, hierarchy.HeadID, Broadcast, hierarchy.HeadID, "self-harm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baseline")

	err = r.RevokeAll(ctx, hierarchy.HeadID, hierarchy.HeadID, "nope")
	require.Error(t, err)
}

func TestRevokeAllClearsGrants(t *testing.T) {
	r, _ := newTestRegistry()
	ctx := context.Background()

	require.NoError(t, r.Grant(ctx, "30001", NetworkAccess, hierarchy.HeadID, "temp"))
	require.NoError(t, r.Grant(ctx, "30001", WriteKnowledge, hierarchy.HeadID, "temp"))
	require.NoError(t, r.RevokeAll(ctx, "30001", hierarchy.HeadID, "liquidation"))

	effective, err := r.Effective(ctx, "30001")
	require.NoError(t, err)
	assert.False(t, effective.Has(NetworkAccess))
	assert.False(t, effective.Has(WriteKnowledge))
	assert.Equal(t, BaseFor(hierarchy.TierTask), effective)
}
