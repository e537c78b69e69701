package critic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentium/agentium/pkg/llm"
)

type scriptedGenerator struct {
	content string
	err     error
	lastReq llm.Request
	agentID string
}

func (g *scriptedGenerator) Complete(_ context.Context, agentID string, req llm.Request) (*llm.Response, error) {
	g.agentID = agentID
	g.lastReq = req
	if g.err != nil {
		return nil, g.err
	}
	return &llm.Response{Content: g.content, Model: req.Model}, nil
}

func TestLLMEvaluatorParsesVerdict(t *testing.T) {
	gen := &scriptedGenerator{
		content: `{"passed": false, "reason": "missing tests", "suggestions": ["add a regression test"]}`,
	}
	e := NewLLMEvaluator(gen, "10002", "claude-sonnet-4-5")

	eval, err := e.Evaluate(context.Background(), TypeCode, "task-1", "def f(): pass")
	require.NoError(t, err)
	assert.False(t, eval.Passed)
	assert.Equal(t, "missing tests", eval.Reason)
	assert.Equal(t, []string{"add a regression test"}, eval.Suggestions)

	// The call is billed to the critic's identity on its configured model.
	assert.Equal(t, "10002", gen.agentID)
	assert.Equal(t, "claude-sonnet-4-5", gen.lastReq.Model)
	assert.Contains(t, gen.lastReq.Prompt, "task-1")
}

func TestLLMEvaluatorToleratesSurroundingProse(t *testing.T) {
	gen := &scriptedGenerator{
		content: "Here is my judgment:\n```json\n{\"passed\": true, \"reason\": \"solid\"}\n```\nDone.",
	}
	e := NewLLMEvaluator(gen, "10002", "claude-sonnet-4-5")

	eval, err := e.Evaluate(context.Background(), TypeOutput, "task-1", "result")
	require.NoError(t, err)
	assert.True(t, eval.Passed)
}

func TestLLMEvaluatorUnparseableVerdictIsAnError(t *testing.T) {
	gen := &scriptedGenerator{content: "looks fine to me"}
	e := NewLLMEvaluator(gen, "10002", "claude-sonnet-4-5")

	_, err := e.Evaluate(context.Background(), TypePlan, "task-1", "the plan")
	assert.Error(t, err)
}

func TestLLMEvaluatorPropagatesModelErrors(t *testing.T) {
	gen := &scriptedGenerator{err: errors.New("overloaded")}
	e := NewLLMEvaluator(gen, "10002", "claude-sonnet-4-5")

	_, err := e.Evaluate(context.Background(), TypeCode, "task-1", "x")
	assert.ErrorContains(t, err, "overloaded")
}

func TestLLMEvaluatorRejectsUnknownType(t *testing.T) {
	e := NewLLMEvaluator(&scriptedGenerator{}, "10002", "m")
	_, err := e.Evaluate(context.Background(), Type("vibe-critic"), "task-1", "x")
	assert.Error(t, err)
}
