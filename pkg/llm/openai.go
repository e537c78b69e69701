package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/ssestream"
)

// ChatCompletionsClient is the subset of the OpenAI SDK used by the adapter.
// Satisfied by *oai.ChatCompletionService; tests pass a mock.
type ChatCompletionsClient interface {
	New(ctx context.Context, params oai.ChatCompletionNewParams, opts ...option.RequestOption) (*oai.ChatCompletion, error)
	NewStreaming(ctx context.Context, params oai.ChatCompletionNewParams, opts ...option.RequestOption) *ssestream.Stream[oai.ChatCompletionChunk]
}

// OpenAIProvider implements Provider on the Chat Completions API.
type OpenAIProvider struct {
	chat         ChatCompletionsClient
	defaultModel string
}

// NewOpenAI builds a provider from an existing chat completions client.
func NewOpenAI(chat ChatCompletionsClient, defaultModel string) (*OpenAIProvider, error) {
	if chat == nil {
		return nil, errors.New("openai chat client is required")
	}
	if defaultModel == "" {
		return nil, errors.New("default model is required")
	}
	return &OpenAIProvider{chat: chat, defaultModel: defaultModel}, nil
}

// NewOpenAIFromAPIKey builds a provider on the default SDK HTTP client.
func NewOpenAIFromAPIKey(apiKey, defaultModel string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, errors.New("api key is required")
	}
	oc := oai.NewClient(option.WithAPIKey(apiKey))
	return NewOpenAI(&oc.Chat.Completions, defaultModel)
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string { return "openai" }

// Close implements Provider.
func (p *OpenAIProvider) Close() error { return nil }

func (p *OpenAIProvider) params(req Request) oai.ChatCompletionNewParams {
	modelID := req.Model
	if modelID == "" {
		modelID = p.defaultModel
	}
	messages := make([]oai.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, oai.SystemMessage(req.System))
	}
	messages = append(messages, oai.UserMessage(req.Prompt))

	params := oai.ChatCompletionNewParams{
		Model:    oai.ChatModel(modelID),
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = oai.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = oai.Float(req.Temperature)
	}
	return params
}

// Generate implements Provider.
func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	completion, err := p.chat.New(ctx, p.params(req))
	if err != nil {
		if isRateLimitMessage(err.Error()) {
			return nil, fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
		return nil, fmt.Errorf("openai chat.completions.new: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("openai: completion returned no choices")
	}
	choice := completion.Choices[0]
	return &Response{
		Content:    choice.Message.Content,
		Model:      completion.Model,
		StopReason: string(choice.FinishReason),
		Usage: Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:  int(completion.Usage.TotalTokens),
		},
	}, nil
}

// Stream implements Provider.
func (p *OpenAIProvider) Stream(ctx context.Context, req Request) (<-chan Chunk, error) {
	stream := p.chat.NewStreaming(ctx, p.params(req))
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("openai chat.completions.new stream: %w", err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		defer func() { _ = stream.Close() }()

		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) == 0 {
				continue
			}
			if text := chunk.Choices[0].Delta.Content; text != "" {
				select {
				case ch <- Chunk{Content: text}:
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

// isRateLimitMessage reports whether an upstream error text indicates
// throttling. Used by callers that cannot rely on typed SDK errors.
func isRateLimitMessage(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "rate limit") || strings.Contains(lower, "429")
}
