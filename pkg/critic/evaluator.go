package critic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/agentium/agentium/pkg/llm"
)

// evaluatorMaxTokens caps the critic's judgment completion.
const evaluatorMaxTokens = 1024

// systemPrompts frame the judgment per specialty. Each demands a strict
// JSON answer so the verdict is machine-readable.
var systemPrompts = map[Type]string{
	TypeCode: "You are a code critic. Judge the submitted code for correctness, " +
		"error handling and safety. Answer with a single JSON object: " +
		`{"passed": bool, "reason": string, "suggestions": [string]}.`,
	TypeOutput: "You are an output critic. Judge whether the submitted output " +
		"fulfills its task completely and accurately. Answer with a single JSON object: " +
		`{"passed": bool, "reason": string, "suggestions": [string]}.`,
	TypePlan: "You are a plan critic. Judge whether the submitted plan is feasible, " +
		"complete and free of policy risks. Answer with a single JSON object: " +
		`{"passed": bool, "reason": string, "suggestions": [string]}.`,
}

// Generator runs one completion. Implemented by llm.Gateway.
type Generator interface {
	Complete(ctx context.Context, agentID string, req llm.Request) (*llm.Response, error)
}

// LLMEvaluator judges outputs by prompting a model and parsing its JSON
// verdict. Calls are attributed to the evaluator's agent identity for
// usage accounting.
type LLMEvaluator struct {
	generator Generator
	agentID   string
	model     string
}

// NewLLMEvaluator creates an evaluator that bills its calls to agentID and
// judges with the given model.
func NewLLMEvaluator(generator Generator, agentID, model string) *LLMEvaluator {
	return &LLMEvaluator{generator: generator, agentID: agentID, model: model}
}

// Evaluate implements Evaluator.
func (e *LLMEvaluator) Evaluate(ctx context.Context, criticType Type, taskID, output string) (*Evaluation, error) {
	system, ok := systemPrompts[criticType]
	if !ok {
		return nil, fmt.Errorf("no prompt for critic type %s", criticType)
	}

	resp, err := e.generator.Complete(ctx, e.agentID, llm.Request{
		Model:     e.model,
		System:    system,
		Prompt:    fmt.Sprintf("Task %s submitted the following for review:\n\n%s", taskID, output),
		MaxTokens: evaluatorMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("critic model call failed: %w", err)
	}

	eval, err := parseEvaluation(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("critic %s returned an unparseable verdict: %w", criticType, err)
	}
	return eval, nil
}

// parseEvaluation extracts the JSON verdict from a model answer, tolerating
// surrounding prose and code fences.
func parseEvaluation(content string) (*Evaluation, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in %q", truncate(content, 120))
	}

	var raw struct {
		Passed      bool     `json:"passed"`
		Reason      string   `json:"reason"`
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		return nil, err
	}
	return &Evaluation{Passed: raw.Passed, Reason: raw.Reason, Suggestions: raw.Suggestions}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
