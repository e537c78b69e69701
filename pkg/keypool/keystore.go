// Package keypool manages provider API keys: prioritized selection,
// failure-driven cooldown, monthly budget enforcement, and multi-provider
// fallback. Only the pool mutates failure counts, cooldowns, and spend.
package keypool

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Status of a key.
type Status string

// Key statuses.
const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// Key is a single provider API key and its health accounting.
type Key struct {
	ID                  string
	Provider            string
	EncryptedSecret     string
	Priority            int // lower number = higher priority
	ConsecutiveFailures int
	LastFailureAt       *time.Time
	CooldownUntil       *time.Time
	MonthlyBudget       float64 // USD; 0 = unlimited
	CurrentSpend        float64
	LastSpendReset      time.Time
	Active              bool
	Status              Status
}

// Store is the persistence boundary for keys.
type Store interface {
	// Get returns the key by id.
	Get(ctx context.Context, id string) (*Key, error)
	// ListByProvider returns all keys for a provider, in no particular order.
	ListByProvider(ctx context.Context, provider string) ([]*Key, error)
	// ListAll returns every key.
	ListAll(ctx context.Context) ([]*Key, error)
	// Update persists the key's mutable accounting fields.
	Update(ctx context.Context, k *Key) error
}

// MemoryStore is an in-memory Store for tests and single-node deployments.
type MemoryStore struct {
	mu   sync.Mutex
	keys map[string]*Key
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{keys: map[string]*Key{}}
}

// Add inserts or replaces a key.
func (s *MemoryStore) Add(k *Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *k
	s.keys[k.ID] = &cp
}

// Get returns the key by id.
func (s *MemoryStore) Get(_ context.Context, id string) (*Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k, ok := s.keys[id]
	if !ok {
		return nil, fmt.Errorf("key %s not found", id)
	}
	cp := *k
	return &cp, nil
}

// ListByProvider returns all keys for a provider.
func (s *MemoryStore) ListByProvider(_ context.Context, provider string) ([]*Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Key
	for _, k := range s.keys {
		if k.Provider == provider {
			cp := *k
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListAll returns every key.
func (s *MemoryStore) ListAll(_ context.Context) ([]*Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Key
	for _, k := range s.keys {
		cp := *k
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update persists the key.
func (s *MemoryStore) Update(_ context.Context, k *Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.keys[k.ID]; !ok {
		return fmt.Errorf("key %s not found", k.ID)
	}
	cp := *k
	s.keys[k.ID] = &cp
	return nil
}
