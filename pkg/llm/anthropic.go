package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"
)

// defaultAnthropicMaxTokens caps completions when the request does not set a
// limit. The Messages API requires an explicit cap.
const defaultAnthropicMaxTokens = 4096

// MessagesClient is the subset of the Anthropic SDK used by the adapter.
// Satisfied by *sdk.MessageService; tests pass a mock.
type MessagesClient interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
	NewStreaming(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) *ssestream.Stream[sdk.MessageStreamEventUnion]
}

// AnthropicProvider implements Provider on the Claude Messages API.
type AnthropicProvider struct {
	msg          MessagesClient
	defaultModel string
}

// NewAnthropic builds a provider from an existing messages client.
func NewAnthropic(msg MessagesClient, defaultModel string) (*AnthropicProvider, error) {
	if msg == nil {
		return nil, errors.New("anthropic messages client is required")
	}
	if defaultModel == "" {
		return nil, errors.New("default model is required")
	}
	return &AnthropicProvider{msg: msg, defaultModel: defaultModel}, nil
}

// NewAnthropicFromAPIKey builds a provider on the default SDK HTTP client.
func NewAnthropicFromAPIKey(apiKey, defaultModel string) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, errors.New("api key is required")
	}
	ac := sdk.NewClient(option.WithAPIKey(apiKey))
	return NewAnthropic(&ac.Messages, defaultModel)
}

// Name implements Provider.
func (p *AnthropicProvider) Name() string { return "anthropic" }

// Close implements Provider. The SDK holds no per-provider resources.
func (p *AnthropicProvider) Close() error { return nil }

func (p *AnthropicProvider) params(req Request) sdk.MessageNewParams {
	modelID := req.Model
	if modelID == "" {
		modelID = p.defaultModel
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultAnthropicMaxTokens
	}
	params := sdk.MessageNewParams{
		Model:     sdk.Model(modelID),
		MaxTokens: int64(maxTokens),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = sdk.Float(req.Temperature)
	}
	return params
}

// Generate implements Provider.
func (p *AnthropicProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	msg, err := p.msg.New(ctx, p.params(req))
	if err != nil {
		if isRateLimitMessage(err.Error()) {
			return nil, fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
		return nil, fmt.Errorf("anthropic messages.new: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return &Response{
		Content:    sb.String(),
		Model:      string(msg.Model),
		StopReason: string(msg.StopReason),
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
			TotalTokens:  int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
		},
	}, nil
}

// Stream implements Provider. Text deltas are forwarded as they arrive.
func (p *AnthropicProvider) Stream(ctx context.Context, req Request) (<-chan Chunk, error) {
	stream := p.msg.NewStreaming(ctx, p.params(req))
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("anthropic messages.new stream: %w", err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		defer func() { _ = stream.Close() }()

		for stream.Next() {
			event := stream.Current()
			delta, ok := event.AsAny().(sdk.ContentBlockDeltaEvent)
			if !ok {
				continue
			}
			if text, ok := delta.Delta.AsAny().(sdk.TextDelta); ok && text.Text != "" {
				select {
				case ch <- Chunk{Content: text.Text}:
				case <-ctx.Done():
					return
				}
			}
		}
		if err := stream.Err(); err != nil {
			ch <- Chunk{Err: err, Done: true}
			return
		}
		ch <- Chunk{Done: true}
	}()
	return ch, nil
}
