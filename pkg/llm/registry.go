package llm

import (
	"fmt"
	"strings"
	"sync"
)

// modelRoutes maps model name prefixes to provider names. Checked in order;
// anything unmatched is treated as a locally hosted model.
var modelRoutes = []struct {
	prefix   string
	provider string
}{
	{"claude", "anthropic"},
	{"gpt", "openai"},
	{"o1", "openai"},
	{"o3", "openai"},
	{"o4", "openai"},
}

const localProvider = "ollama"

// Registry holds the configured providers and resolves models to them.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds a provider under its name. Duplicate names are rejected.
func (r *Registry) Register(p Provider) error {
	if p == nil {
		return fmt.Errorf("provider cannot be nil")
	}
	name := p.Name()
	if name == "" {
		return fmt.Errorf("provider name cannot be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("provider %q already registered", name)
	}
	r.providers[name] = p
	return nil
}

// Get returns the provider registered under name.
func (r *Registry) Get(name string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("provider %q not registered", name)
	}
	return p, nil
}

// ProviderNameForModel returns the provider tag a model name routes to.
func ProviderNameForModel(model string) string {
	lower := strings.ToLower(model)
	for _, route := range modelRoutes {
		if strings.HasPrefix(lower, route.prefix) {
			return route.provider
		}
	}
	return localProvider
}

// ForModel resolves a model name to its provider by prefix.
func (r *Registry) ForModel(model string) (Provider, error) {
	p, err := r.Get(ProviderNameForModel(model))
	if err != nil {
		return nil, fmt.Errorf("no provider for model %q: %w", model, err)
	}
	return p, nil
}

// Names returns the registered provider names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}

// Close closes every registered provider, returning the first error.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var first error
	for name, p := range r.providers {
		if err := p.Close(); err != nil && first == nil {
			first = fmt.Errorf("failed to close provider %q: %w", name, err)
		}
	}
	return first
}
