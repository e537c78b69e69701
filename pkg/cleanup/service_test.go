package cleanup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentium/agentium/pkg/config"
)

type recordingPruner struct {
	cutoff time.Time
	count  int
	err    error
	calls  int
}

func (p *recordingPruner) DeleteOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	p.calls++
	p.cutoff = cutoff
	return p.count, p.err
}

type recordingClosedPruner struct {
	cutoff time.Time
	calls  int
}

func (p *recordingClosedPruner) DeleteClosedOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	p.calls++
	p.cutoff = cutoff
	return 0, nil
}

func newRetentionFixture() (*Service, *recordingPruner, *recordingPruner, *recordingClosedPruner) {
	cfg := &config.RetentionConfig{
		AuditRetentionDays:   90,
		UsageRetentionDays:   30,
		SandboxRetentionDays: 7,
		CleanupInterval:      time.Hour,
	}
	auditP := &recordingPruner{count: 12}
	usageP := &recordingPruner{count: 3}
	sandboxP := &recordingClosedPruner{}
	return NewService(cfg, auditP, usageP, sandboxP), auditP, usageP, sandboxP
}

func TestRunOnceUsesPerStoreCutoffs(t *testing.T) {
	svc, auditP, usageP, sandboxP := newRetentionFixture()

	before := time.Now().UTC()
	svc.RunOnce(context.Background())
	after := time.Now().UTC()

	require.Equal(t, 1, auditP.calls)
	require.Equal(t, 1, usageP.calls)
	require.Equal(t, 1, sandboxP.calls)

	// Each store gets a cutoff matching its own retention window.
	assert.WithinRange(t, auditP.cutoff, before.AddDate(0, 0, -90), after.AddDate(0, 0, -90))
	assert.WithinRange(t, usageP.cutoff, before.AddDate(0, 0, -30), after.AddDate(0, 0, -30))
	assert.WithinRange(t, sandboxP.cutoff, before.AddDate(0, 0, -7), after.AddDate(0, 0, -7))
}

func TestRunOnceFailureDoesNotBlockOtherStores(t *testing.T) {
	svc, auditP, usageP, sandboxP := newRetentionFixture()
	auditP.err = errors.New("deadlock detected")

	svc.RunOnce(context.Background())

	assert.Equal(t, 1, usageP.calls)
	assert.Equal(t, 1, sandboxP.calls)
}

func TestStartRunsImmediatelyAndStopWaits(t *testing.T) {
	svc, auditP, _, _ := newRetentionFixture()

	svc.Start(context.Background())
	svc.Stop()

	assert.Equal(t, 1, auditP.calls)
}

func TestStopWithoutStartIsANoop(t *testing.T) {
	svc, _, _, _ := newRetentionFixture()
	svc.Stop()
}
