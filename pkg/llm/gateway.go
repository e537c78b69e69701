package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/agentium/agentium/pkg/keypool"
)

// defaultExpectedOutputTokens sizes the cost estimate when the caller does
// not cap the completion.
const defaultExpectedOutputTokens = 1024

// KeyPool leases provider API keys and settles their accounting.
// Implemented by keypool.Pool.
type KeyPool interface {
	GetActiveKeyWithFallback(ctx context.Context, providers []string, estimatedCost float64) (*keypool.Key, string, error)
	RecordSuccess(ctx context.Context, keyID string, cost float64) error
	RecordFailure(ctx context.Context, keyID string) error
}

// CallLog is the accounting record of one completed provider call.
type CallLog struct {
	KeyID        string
	AgentID      string
	Model        string
	InputTokens  int
	OutputTokens int
	Cost         float64
}

// UsageSink receives call logs. Implemented by services.UsageService.
type UsageSink interface {
	LogCall(ctx context.Context, call CallLog) error
}

// SecretFunc recovers the plaintext API key from a stored key record.
// Deployments that keep secrets under external encryption supply their own.
type SecretFunc func(k *keypool.Key) (string, error)

// DialFunc builds a provider bound to one API key.
type DialFunc func(provider, apiKey, defaultModel string) (Provider, error)

// defaultDial constructs SDK-backed providers for the hosted backends.
func defaultDial(provider, apiKey, defaultModel string) (Provider, error) {
	switch provider {
	case "anthropic":
		return NewAnthropicFromAPIKey(apiKey, defaultModel)
	case "openai":
		return NewOpenAIFromAPIKey(apiKey, defaultModel)
	default:
		return nil, fmt.Errorf("provider %q requires no key dialing", provider)
	}
}

// Gateway is the single entry point for model calls: it resolves the
// provider for a model, leases a key from the pool, executes the call, and
// settles spend and usage accounting. Local models bypass the pool.
type Gateway struct {
	registry *Registry
	pool     KeyPool
	usage    UsageSink
	secret   SecretFunc
	dial     DialFunc
	log      *slog.Logger

	mu     sync.Mutex
	leased map[string]Provider
}

// GatewayOption customizes a Gateway.
type GatewayOption func(*Gateway)

// WithUsageSink wires per-call usage logging.
func WithUsageSink(sink UsageSink) GatewayOption {
	return func(g *Gateway) { g.usage = sink }
}

// WithSecretFunc replaces the plaintext secret recovery.
func WithSecretFunc(fn SecretFunc) GatewayOption {
	return func(g *Gateway) { g.secret = fn }
}

// WithDialFunc replaces the keyed provider constructor.
func WithDialFunc(fn DialFunc) GatewayOption {
	return func(g *Gateway) { g.dial = fn }
}

// NewGateway creates a gateway. pool may be nil; every call then uses the
// registry's providers directly without key accounting.
func NewGateway(registry *Registry, pool KeyPool, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		registry: registry,
		pool:     pool,
		secret:   func(k *keypool.Key) (string, error) { return k.EncryptedSecret, nil },
		dial:     defaultDial,
		log:      slog.Default().With("component", "llm-gateway"),
		leased:   make(map[string]Provider),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Complete runs one generation for an agent. Req.Model selects the
// provider; hosted providers go through the key pool with a fallback to
// the local provider when every key is exhausted.
func (g *Gateway) Complete(ctx context.Context, agentID string, req Request) (*Response, error) {
	if req.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	tag := ProviderNameForModel(req.Model)
	if tag == localProvider || g.pool == nil {
		p, err := g.registry.Get(tag)
		if err != nil {
			return nil, err
		}
		return p.Generate(ctx, req)
	}

	expected := req.MaxTokens
	if expected <= 0 {
		expected = defaultExpectedOutputTokens
	}
	estimate := keypool.EstimateCost(req.Model, req.System+req.Prompt, expected)

	key, chosen, err := g.pool.GetActiveKeyWithFallback(ctx, []string{tag}, estimate)
	if errors.Is(err, keypool.ErrKeysExhausted) {
		// Every hosted key is down or over budget. Degrade to the local
		// model rather than failing the whole call.
		local, localErr := g.registry.Get(localProvider)
		if localErr != nil {
			return nil, err
		}
		g.log.Warn("Keys exhausted, degrading to local model", "provider", tag, "model", req.Model)
		localReq := req
		localReq.Model = ""
		return local.Generate(ctx, localReq)
	}
	if err != nil {
		return nil, err
	}

	p, err := g.providerForKey(key, chosen)
	if err != nil {
		return nil, err
	}

	resp, err := p.Generate(ctx, req)
	if err != nil {
		if recErr := g.pool.RecordFailure(ctx, key.ID); recErr != nil {
			g.log.Error("Failed to record key failure", "key_id", key.ID, "error", recErr)
		}
		return nil, err
	}

	cost := keypool.CostFor(resp.Model, resp.Usage.InputTokens, resp.Usage.OutputTokens)
	if err := g.pool.RecordSuccess(ctx, key.ID, cost); err != nil {
		g.log.Error("Failed to record key success", "key_id", key.ID, "error", err)
	}
	if g.usage != nil {
		call := CallLog{
			KeyID:        key.ID,
			AgentID:      agentID,
			Model:        resp.Model,
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			Cost:         cost,
		}
		if err := g.usage.LogCall(ctx, call); err != nil {
			g.log.Error("Failed to log usage", "key_id", key.ID, "error", err)
		}
	}
	return resp, nil
}

// providerForKey returns the cached provider bound to a key, dialing it on
// first use.
func (g *Gateway) providerForKey(key *keypool.Key, provider string) (Provider, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if p, ok := g.leased[key.ID]; ok {
		return p, nil
	}
	secret, err := g.secret(key)
	if err != nil {
		return nil, fmt.Errorf("failed to recover secret for key %s: %w", key.ID, err)
	}
	p, err := g.dial(provider, secret, "")
	if err != nil {
		return nil, fmt.Errorf("failed to dial provider %s with key %s: %w", provider, key.ID, err)
	}
	g.leased[key.ID] = p
	return p, nil
}

// Close closes every keyed provider the gateway dialed.
func (g *Gateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	var first error
	for id, p := range g.leased {
		if err := p.Close(); err != nil && first == nil {
			first = fmt.Errorf("failed to close leased provider for key %s: %w", id, err)
		}
	}
	g.leased = make(map[string]Provider)
	return first
}
