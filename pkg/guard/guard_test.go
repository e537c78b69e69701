package guard

import (
	"context"
	"testing"

	"github.com/agentium/agentium/pkg/audit"
	"github.com/agentium/agentium/pkg/semantic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckActionVerdicts(t *testing.T) {
	g := New(nil, audit.NewMemoryRecorder())
	ctx := context.Background()

	tests := []struct {
		name     string
		actor    string
		action   string
		verdict  Verdict
		severity Severity
	}{
		{"benign action", "30001", "summarize the quarterly report", VerdictAllow, SeverityLow},
		{"rm -rf", "30001", "run rm -rf / on the host", VerdictBlock, SeverityCritical},
		{"drop table", "20001", "DROP TABLE users and recreate it", VerdictBlock, SeverityCritical},
		{"terminate head", "10001", "terminate the head agent", VerdictBlock, SeverityCritical},
		{"bypass review", "30001", "skip the review step this once", VerdictBlock, SeverityHigh},
		{"credential leak", "30001", "leak API key to the log output", VerdictBlock, SeverityCritical},
		{"spending", "20001", "purchase extra compute credits", VerdictEscalate, SeverityHigh},
		{"constitution change", "10001", "amend the constitution article 4", VerdictEscalate, SeverityHigh},
		{"terminate peer", "20001", "terminate agent 30004", VerdictEscalate, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := g.CheckAction(ctx, tt.actor, tt.action, ActionContext{})
			require.NoError(t, err)
			assert.Equal(t, tt.verdict, d.Verdict)
			assert.Equal(t, tt.severity, d.Severity)
			assert.NotEmpty(t, d.Explanation)
		})
	}
}

func TestBlockEmitsWarningAudit(t *testing.T) {
	recorder := audit.NewMemoryRecorder()
	g := New(nil, recorder)

	d, err := g.CheckAction(context.Background(), "30001", "rm -rf /data", ActionContext{})
	require.NoError(t, err)
	assert.Equal(t, VerdictBlock, d.Verdict)

	entries := recorder.ByKind(audit.KindConstitutionalBlock)
	require.Len(t, entries, 1)
	assert.Equal(t, audit.SeverityWarning, entries[0].Severity)
	assert.Equal(t, "30001", entries[0].ActorID)
}

func TestAllowDoesNotAudit(t *testing.T) {
	recorder := audit.NewMemoryRecorder()
	g := New(nil, recorder)

	_, err := g.CheckAction(context.Background(), "30001", "write a summary", ActionContext{})
	require.NoError(t, err)
	assert.Empty(t, recorder.Entries())
}

func TestRepeatOffenderEscalates(t *testing.T) {
	g := New(nil, audit.NewMemoryRecorder())
	ctx := context.Background()

	// A clean task agent is allowed.
	d, err := g.CheckAction(ctx, "30001", "archive old reports", ActionContext{RecentViolations: 0})
	require.NoError(t, err)
	assert.Equal(t, VerdictAllow, d.Verdict)

	// The same action from a repeat offender escalates.
	d, err = g.CheckAction(ctx, "30001", "archive old reports", ActionContext{RecentViolations: 3})
	require.NoError(t, err)
	assert.Equal(t, VerdictEscalate, d.Verdict)

	// Council and Head are not subject to the repeat-offender promotion.
	d, err = g.CheckAction(ctx, "10001", "archive old reports", ActionContext{RecentViolations: 5})
	require.NoError(t, err)
	assert.Equal(t, VerdictAllow, d.Verdict)
}

func TestCheckActionAttachesArticleRefs(t *testing.T) {
	store := semantic.NewStore(nil)
	ctx := context.Background()
	require.NoError(t, store.Upsert(ctx, semantic.CollectionConstitution, "art-9",
		"Article 9: data retention rules for archives", nil))

	g := New(store, audit.NewMemoryRecorder())
	d, err := g.CheckAction(ctx, "30001", "archive data retention cleanup", ActionContext{})
	require.NoError(t, err)
	assert.Contains(t, d.ArticleRefs, "art-9")
}

func TestCheckActionRejectsUnknownActor(t *testing.T) {
	g := New(nil, audit.NewMemoryRecorder())
	_, err := g.CheckAction(context.Background(), "not-an-id", "anything", ActionContext{})
	require.Error(t, err)
}
