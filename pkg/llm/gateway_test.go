package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentium/agentium/pkg/keypool"
)

type scriptedProvider struct {
	name     string
	resp     *Response
	err      error
	calls    int
	lastReq  Request
	closed   bool
	dialedAs string
}

func (p *scriptedProvider) Name() string { return p.name }

func (p *scriptedProvider) Generate(_ context.Context, req Request) (*Response, error) {
	p.calls++
	p.lastReq = req
	if p.err != nil {
		return nil, p.err
	}
	return p.resp, nil
}

func (p *scriptedProvider) Stream(context.Context, Request) (<-chan Chunk, error) {
	return nil, errors.New("not scripted")
}

func (p *scriptedProvider) Close() error {
	p.closed = true
	return nil
}

type scriptedPool struct {
	key       *keypool.Key
	getErr    error
	successes []float64
	failures  int
}

func (p *scriptedPool) GetActiveKeyWithFallback(_ context.Context, providers []string, _ float64) (*keypool.Key, string, error) {
	if p.getErr != nil {
		return nil, "", p.getErr
	}
	return p.key, providers[0], nil
}

func (p *scriptedPool) RecordSuccess(_ context.Context, _ string, cost float64) error {
	p.successes = append(p.successes, cost)
	return nil
}

func (p *scriptedPool) RecordFailure(context.Context, string) error {
	p.failures++
	return nil
}

type capturedUsage struct {
	calls []CallLog
}

func (c *capturedUsage) LogCall(_ context.Context, call CallLog) error {
	c.calls = append(c.calls, call)
	return nil
}

func newGatewayFixture(t *testing.T) (*Gateway, *scriptedProvider, *scriptedPool, *capturedUsage) {
	t.Helper()
	hosted := &scriptedProvider{
		name: "anthropic",
		resp: &Response{
			Content: "done",
			Model:   "claude-sonnet-4-5",
			Usage:   Usage{InputTokens: 1000, OutputTokens: 500},
		},
	}
	pool := &scriptedPool{key: &keypool.Key{ID: "key-1", Provider: "anthropic", EncryptedSecret: "sk-test"}}
	usage := &capturedUsage{}

	registry := NewRegistry()
	g := NewGateway(registry, pool,
		WithUsageSink(usage),
		WithDialFunc(func(provider, apiKey, _ string) (Provider, error) {
			hosted.dialedAs = provider + "/" + apiKey
			return hosted, nil
		}),
	)
	return g, hosted, pool, usage
}

func TestGatewayCompleteLeasesKeyAndSettles(t *testing.T) {
	g, hosted, pool, usage := newGatewayFixture(t)

	resp, err := g.Complete(context.Background(), "20001", Request{
		Model:  "claude-sonnet-4-5",
		Prompt: "summarize the incident",
	})
	require.NoError(t, err)
	assert.Equal(t, "done", resp.Content)
	assert.Equal(t, "anthropic/sk-test", hosted.dialedAs)

	// claude-sonnet: 1000 in at $3/M plus 500 out at $15/M.
	require.Len(t, pool.successes, 1)
	assert.InDelta(t, 0.0105, pool.successes[0], 1e-9)

	require.Len(t, usage.calls, 1)
	assert.Equal(t, "key-1", usage.calls[0].KeyID)
	assert.Equal(t, "20001", usage.calls[0].AgentID)
	assert.Equal(t, 1000, usage.calls[0].InputTokens)
}

func TestGatewayCompleteRecordsFailure(t *testing.T) {
	g, hosted, pool, usage := newGatewayFixture(t)
	hosted.err = errors.New("overloaded")

	_, err := g.Complete(context.Background(), "20001", Request{Model: "claude-sonnet-4-5", Prompt: "x"})
	require.Error(t, err)
	assert.Equal(t, 1, pool.failures)
	assert.Empty(t, pool.successes)
	assert.Empty(t, usage.calls)
}

func TestGatewayCompleteCachesDialedProvider(t *testing.T) {
	g, hosted, _, _ := newGatewayFixture(t)
	dials := 0
	g.dial = func(provider, apiKey, _ string) (Provider, error) {
		dials++
		return hosted, nil
	}

	for i := 0; i < 3; i++ {
		_, err := g.Complete(context.Background(), "20001", Request{Model: "claude-sonnet-4-5", Prompt: "x"})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, dials)
}

func TestGatewayCompleteLocalModelBypassesPool(t *testing.T) {
	local := &scriptedProvider{name: "ollama", resp: &Response{Content: "local", Model: "qwen2.5-coder:7b"}}
	registry := NewRegistry()
	require.NoError(t, registry.Register(local))
	pool := &scriptedPool{getErr: errors.New("pool must not be consulted")}

	g := NewGateway(registry, pool)
	resp, err := g.Complete(context.Background(), "30001", Request{Model: "qwen2.5-coder:7b", Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "local", resp.Content)
	assert.Equal(t, 1, local.calls)
}

func TestGatewayCompleteDegradesToLocalOnExhaustion(t *testing.T) {
	local := &scriptedProvider{name: "ollama", resp: &Response{Content: "fallback", Model: "qwen2.5-coder:7b"}}
	registry := NewRegistry()
	require.NoError(t, registry.Register(local))
	pool := &scriptedPool{getErr: keypool.ErrKeysExhausted}

	g := NewGateway(registry, pool)
	resp, err := g.Complete(context.Background(), "20001", Request{Model: "claude-sonnet-4-5", Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "fallback", resp.Content)

	// The fallback call runs on the local provider's default model.
	assert.Empty(t, local.lastReq.Model)
}

func TestGatewayCompleteExhaustionWithoutLocalProviderFails(t *testing.T) {
	registry := NewRegistry()
	pool := &scriptedPool{getErr: keypool.ErrKeysExhausted}

	g := NewGateway(registry, pool)
	_, err := g.Complete(context.Background(), "20001", Request{Model: "claude-sonnet-4-5", Prompt: "x"})
	assert.ErrorIs(t, err, keypool.ErrKeysExhausted)
}

func TestGatewayCompleteRequiresModel(t *testing.T) {
	g, _, _, _ := newGatewayFixture(t)
	_, err := g.Complete(context.Background(), "20001", Request{Prompt: "x"})
	assert.Error(t, err)
}

func TestGatewayClose(t *testing.T) {
	g, hosted, _, _ := newGatewayFixture(t)
	_, err := g.Complete(context.Background(), "20001", Request{Model: "claude-sonnet-4-5", Prompt: "x"})
	require.NoError(t, err)

	require.NoError(t, g.Close())
	assert.True(t, hosted.closed)
}

func TestProviderNameForModel(t *testing.T) {
	assert.Equal(t, "anthropic", ProviderNameForModel("claude-opus-4-1"))
	assert.Equal(t, "openai", ProviderNameForModel("gpt-4o-mini"))
	assert.Equal(t, "openai", ProviderNameForModel("o3-mini"))
	assert.Equal(t, "ollama", ProviderNameForModel("llama3.1:8b"))
}
