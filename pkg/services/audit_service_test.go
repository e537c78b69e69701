package services

import (
	"context"
	"testing"
	"time"

	"github.com/agentium/agentium/pkg/audit"
	"github.com/agentium/agentium/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRecordAndList(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAuditService(client)
	ctx := context.Background()

	svc.Record(ctx, audit.Entry{
		Kind:     audit.KindRoutingViolation,
		Severity: audit.SeverityWarning,
		ActorID:  "30001",
		Details:  map[string]any{"recipient": "00001"},
	})
	svc.Record(ctx, audit.Entry{
		Kind:     audit.KindConstitutionalBlock,
		Severity: audit.SeverityWarning,
		ActorID:  "30001",
	})
	svc.Record(ctx, audit.Entry{
		Kind:     audit.KindRoutingViolation,
		Severity: audit.SeverityWarning,
		ActorID:  "30002",
	})

	violations, err := svc.ListByKind(ctx, audit.KindRoutingViolation, 10)
	require.NoError(t, err)
	require.Len(t, violations, 2)

	mine, err := svc.ListByActor(ctx, "30001", 10)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "00001", mine[1].Details["recipient"])
}

func TestAuditCountByActorSince(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAuditService(client)
	ctx := context.Background()

	old := audit.Entry{
		Kind:      audit.KindRoutingViolation,
		Severity:  audit.SeverityWarning,
		ActorID:   "30001",
		CreatedAt: time.Now().UTC().Add(-48 * time.Hour),
	}
	svc.Record(ctx, old)
	svc.Record(ctx, audit.Entry{
		Kind:     audit.KindRoutingViolation,
		Severity: audit.SeverityWarning,
		ActorID:  "30001",
	})

	n, err := svc.CountByActorSince(ctx, "30001", audit.KindRoutingViolation, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = svc.CountByActorSince(ctx, "30001", audit.KindRoutingViolation, time.Now().UTC().Add(-72*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
