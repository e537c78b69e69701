package config

import (
	"fmt"
	"sync"
)

// ModelSpec describes one model in the catalog the allocator draws from
type ModelSpec struct {
	// Provider registry key serving this model (required)
	Provider string `yaml:"provider"`

	// Context window in tokens
	ContextWindow int `yaml:"context_window,omitempty"`

	// Hard cap on completion tokens; 0 leaves the provider default
	MaxOutputTokens int `yaml:"max_output_tokens,omitempty"`
}

// ModelRegistry stores the model catalog in memory with thread-safe access
type ModelRegistry struct {
	models map[string]*ModelSpec
	mu     sync.RWMutex
}

// NewModelRegistry creates a new model registry
func NewModelRegistry(models map[string]*ModelSpec) *ModelRegistry {
	copied := make(map[string]*ModelSpec, len(models))
	for k, v := range models {
		copied[k] = v
	}
	return &ModelRegistry{
		models: copied,
	}
}

// Get retrieves a model spec by name (thread-safe)
func (r *ModelRegistry) Get(name string) (*ModelSpec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	model, exists := r.models[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}
	return model, nil
}

// GetAll returns all model specs (thread-safe, returns copy)
func (r *ModelRegistry) GetAll() map[string]*ModelSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*ModelSpec, len(r.models))
	for k, v := range r.models {
		result[k] = v
	}
	return result
}

// Has checks if a model exists in the registry (thread-safe)
func (r *ModelRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.models[name]
	return exists
}

// Len returns the number of models in the registry (thread-safe)
func (r *ModelRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.models)
}
