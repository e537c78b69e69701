// Package llm defines the provider-neutral language model contract and the
// adapters for the supported backends: Anthropic, OpenAI and a local Ollama
// host for idle-mode work.
package llm

import (
	"context"
	"errors"
)

// ErrRateLimited marks provider errors caused by upstream rate limiting.
// Callers route these to the key pool failure accounting.
var ErrRateLimited = errors.New("llm: rate limited")

// Request is a single completion request.
type Request struct {
	// Model overrides the provider's default model when set.
	Model       string
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Usage reports token consumption for one completion.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Response is a completed generation.
type Response struct {
	Content    string
	Model      string
	StopReason string
	Usage      Usage
}

// Chunk is one streamed fragment. Done marks the end of the stream; a chunk
// with Err set is terminal.
type Chunk struct {
	Content string
	Done    bool
	Err     error
}

// Provider generates completions against one backend.
type Provider interface {
	Name() string
	Generate(ctx context.Context, req Request) (*Response, error)
	// Stream emits fragments on the returned channel. The channel is
	// closed after the terminal chunk.
	Stream(ctx context.Context, req Request) (<-chan Chunk, error)
	Close() error
}
