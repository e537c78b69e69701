package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	anthropicsse "github.com/anthropics/anthropic-sdk-go/packages/ssestream"
	oai "github.com/openai/openai-go"
	openaioption "github.com/openai/openai-go/option"
	openaisse "github.com/openai/openai-go/packages/ssestream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessages struct {
	lastParams sdk.MessageNewParams
	message    *sdk.Message
	err        error
}

func (f *fakeMessages) New(_ context.Context, body sdk.MessageNewParams, _ ...anthropicoption.RequestOption) (*sdk.Message, error) {
	f.lastParams = body
	return f.message, f.err
}

func (f *fakeMessages) NewStreaming(_ context.Context, _ sdk.MessageNewParams, _ ...anthropicoption.RequestOption) *anthropicsse.Stream[sdk.MessageStreamEventUnion] {
	return nil
}

type fakeChat struct {
	lastParams oai.ChatCompletionNewParams
	completion *oai.ChatCompletion
	err        error
}

func (f *fakeChat) New(_ context.Context, params oai.ChatCompletionNewParams, _ ...openaioption.RequestOption) (*oai.ChatCompletion, error) {
	f.lastParams = params
	return f.completion, f.err
}

func (f *fakeChat) NewStreaming(_ context.Context, _ oai.ChatCompletionNewParams, _ ...openaioption.RequestOption) *openaisse.Stream[oai.ChatCompletionChunk] {
	return nil
}

func TestAnthropicGenerate(t *testing.T) {
	fake := &fakeMessages{message: &sdk.Message{
		Model: "claude-sonnet-4",
		Content: []sdk.ContentBlockUnion{
			{Type: "text", Text: "the answer"},
		},
		Usage: sdk.Usage{InputTokens: 12, OutputTokens: 7},
	}}
	p, err := NewAnthropic(fake, "claude-sonnet-4")
	require.NoError(t, err)

	resp, err := p.Generate(context.Background(), Request{
		System:      "be terse",
		Prompt:      "what is the answer",
		MaxTokens:   256,
		Temperature: 0.2,
	})
	require.NoError(t, err)
	assert.Equal(t, "the answer", resp.Content)
	assert.Equal(t, 12, resp.Usage.InputTokens)
	assert.Equal(t, 19, resp.Usage.TotalTokens)

	assert.Equal(t, sdk.Model("claude-sonnet-4"), fake.lastParams.Model)
	assert.Equal(t, int64(256), fake.lastParams.MaxTokens)
	require.Len(t, fake.lastParams.System, 1)
	assert.Equal(t, "be terse", fake.lastParams.System[0].Text)
}

func TestAnthropicGenerateDefaultsMaxTokens(t *testing.T) {
	fake := &fakeMessages{message: &sdk.Message{}}
	p, err := NewAnthropic(fake, "claude-haiku-3-5")
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), Request{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, int64(defaultAnthropicMaxTokens), fake.lastParams.MaxTokens)
}

func TestOpenAIGenerate(t *testing.T) {
	fake := &fakeChat{completion: &oai.ChatCompletion{
		Model: "gpt-4o",
		Choices: []oai.ChatCompletionChoice{
			{Message: oai.ChatCompletionMessage{Content: "hello"}, FinishReason: "stop"},
		},
		Usage: oai.CompletionUsage{PromptTokens: 5, CompletionTokens: 3, TotalTokens: 8},
	}}
	p, err := NewOpenAI(fake, "gpt-4o")
	require.NoError(t, err)

	resp, err := p.Generate(context.Background(), Request{Prompt: "say hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Content)
	assert.Equal(t, "stop", resp.StopReason)
	assert.Equal(t, 8, resp.Usage.TotalTokens)
}

func TestOpenAIGenerateNoChoices(t *testing.T) {
	fake := &fakeChat{completion: &oai.ChatCompletion{}}
	p, err := NewOpenAI(fake, "gpt-4o")
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), Request{Prompt: "x"})
	require.Error(t, err)
}

func TestGenerateWrapsRateLimit(t *testing.T) {
	fake := &fakeChat{err: errors.New("429 Too Many Requests: rate limit exceeded")}
	p, err := NewOpenAI(fake, "gpt-4o")
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), Request{Prompt: "x"})
	require.ErrorIs(t, err, ErrRateLimited)
}

func TestOllamaGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		var req ollamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3.1:8b", req.Model)
		assert.False(t, req.Stream)

		_ = json.NewEncoder(w).Encode(ollamaResponse{
			Model:           req.Model,
			Response:        "local answer",
			Done:            true,
			DoneReason:      "stop",
			PromptEvalCount: 9,
			EvalCount:       4,
		})
	}))
	defer srv.Close()

	p, err := NewOllama(srv.URL, "llama3.1:8b")
	require.NoError(t, err)

	resp, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "local answer", resp.Content)
	assert.Equal(t, 13, resp.Usage.TotalTokens)
}

func TestOllamaStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		enc := json.NewEncoder(w)
		_ = enc.Encode(ollamaResponse{Response: "chunk one "})
		_ = enc.Encode(ollamaResponse{Response: "chunk two"})
		_ = enc.Encode(ollamaResponse{Done: true, DoneReason: "stop"})
	}))
	defer srv.Close()

	p, err := NewOllama(srv.URL, "llama3.1:8b")
	require.NoError(t, err)

	ch, err := p.Stream(context.Background(), Request{Prompt: "hi"})
	require.NoError(t, err)

	var text string
	var done bool
	for chunk := range ch {
		require.NoError(t, chunk.Err)
		text += chunk.Content
		done = chunk.Done
	}
	assert.Equal(t, "chunk one chunk two", text)
	assert.True(t, done)
}

func TestOllamaGenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	p, err := NewOllama(srv.URL, "llama3.1:8b")
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), Request{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestRegistryResolvesByModelPrefix(t *testing.T) {
	reg := NewRegistry()

	anth, err := NewAnthropic(&fakeMessages{}, "claude-sonnet-4")
	require.NoError(t, err)
	open, err := NewOpenAI(&fakeChat{}, "gpt-4o")
	require.NoError(t, err)
	local, err := NewOllama("", "llama3.1:8b")
	require.NoError(t, err)

	require.NoError(t, reg.Register(anth))
	require.NoError(t, reg.Register(open))
	require.NoError(t, reg.Register(local))

	cases := map[string]string{
		"claude-opus-4":  "anthropic",
		"gpt-4o-mini":    "openai",
		"o3-mini":        "openai",
		"llama3.1:8b":    "ollama",
		"qwen2.5-coder":  "ollama",
		"unknown-model7": "ollama",
	}
	for model, want := range cases {
		p, err := reg.ForModel(model)
		require.NoError(t, err, model)
		assert.Equal(t, want, p.Name(), model)
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	reg := NewRegistry()
	local, err := NewOllama("", "llama3.1:8b")
	require.NoError(t, err)

	require.NoError(t, reg.Register(local))
	require.Error(t, reg.Register(local))
}

func TestRegistryForModelWithoutProvider(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.ForModel("claude-opus-4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic")
}
