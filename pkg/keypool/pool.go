package keypool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/agentium/agentium/pkg/alerts"
	"github.com/agentium/agentium/pkg/audit"
)

// ErrKeysExhausted is returned when no healthy key exists across every
// provider in a fallback chain.
var ErrKeysExhausted = errors.New("all api keys exhausted")

const (
	// cooldownAfterFailures is the consecutive-failure count that trips
	// a cooldown.
	cooldownAfterFailures = 3
	// cooldownDuration is how long a tripped key stays out of rotation.
	cooldownDuration = 5 * time.Minute
	// exhaustionAlertCooloff bounds how often the all-keys-down alert
	// fires.
	exhaustionAlertCooloff = 60 * time.Second
)

// Pool selects and accounts API keys.
type Pool struct {
	store    Store
	notifier alerts.Notifier
	audit    audit.Recorder
	now      func() time.Time
	log      *slog.Logger

	mu                  sync.Mutex
	lastExhaustionAlert time.Time
}

// Option configures a Pool.
type Option func(*Pool)

// WithClock overrides the pool's time source. Test hook.
func WithClock(now func() time.Time) Option {
	return func(p *Pool) { p.now = now }
}

// WithNotifier sets the alert destination for exhaustion events.
func WithNotifier(n alerts.Notifier) Option {
	return func(p *Pool) { p.notifier = n }
}

// New creates a key pool over the given store.
func New(store Store, recorder audit.Recorder, opts ...Option) *Pool {
	if recorder == nil {
		recorder = audit.NewSlogRecorder()
	}
	p := &Pool{
		store: store,
		audit: recorder,
		now:   time.Now,
		log:   slog.Default().With("component", "key-pool"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// healthy reports whether the key may serve a call of the estimated cost.
func healthy(k *Key, now time.Time, estimatedCost float64) bool {
	if !k.Active || k.Status == StatusError {
		return false
	}
	if k.CooldownUntil != nil && now.Before(*k.CooldownUntil) {
		return false
	}
	if k.MonthlyBudget > 0 {
		spend := effectiveSpend(k, now)
		if spend+estimatedCost > k.MonthlyBudget {
			return false
		}
	}
	return true
}

// effectiveSpend is the key's spend after any pending month rollover.
func effectiveSpend(k *Key, now time.Time) float64 {
	if sameMonth(k.LastSpendReset, now) {
		return k.CurrentSpend
	}
	return 0
}

func sameMonth(a, b time.Time) bool {
	ay, am, _ := a.UTC().Date()
	by, bm, _ := b.UTC().Date()
	return ay == by && am == bm
}

// GetActiveKey returns the best healthy key for the provider, or nil when
// none can serve the estimated cost. Ordering is priority ascending, ties
// broken by lowest consecutive-failure count, then oldest last-failure.
func (p *Pool) GetActiveKey(ctx context.Context, provider string, estimatedCost float64) (*Key, error) {
	keys, err := p.store.ListByProvider(ctx, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys for provider %s: %w", provider, err)
	}

	now := p.now()
	var survivors []*Key
	for _, k := range keys {
		if healthy(k, now, estimatedCost) {
			survivors = append(survivors, k)
		}
	}
	if len(survivors) == 0 {
		return nil, nil
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		a, b := survivors[i], survivors[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.ConsecutiveFailures != b.ConsecutiveFailures {
			return a.ConsecutiveFailures < b.ConsecutiveFailures
		}
		return failureTime(a).Before(failureTime(b))
	})
	return survivors[0], nil
}

func failureTime(k *Key) time.Time {
	if k.LastFailureAt == nil {
		return time.Time{}
	}
	return *k.LastFailureAt
}

// GetActiveKeyWithFallback walks the provider list in order and returns the
// first healthy key with its provider name. On full exhaustion it emits a
// critical all_api_keys_down alert at most once per cool-off window and
// returns ErrKeysExhausted.
func (p *Pool) GetActiveKeyWithFallback(ctx context.Context, providers []string, estimatedCost float64) (*Key, string, error) {
	for _, provider := range providers {
		k, err := p.GetActiveKey(ctx, provider, estimatedCost)
		if err != nil {
			return nil, "", err
		}
		if k != nil {
			return k, provider, nil
		}
	}

	p.alertExhaustion(ctx, providers, estimatedCost)
	return nil, "", ErrKeysExhausted
}

func (p *Pool) alertExhaustion(ctx context.Context, providers []string, estimatedCost float64) {
	now := p.now()

	p.mu.Lock()
	due := now.Sub(p.lastExhaustionAlert) >= exhaustionAlertCooloff
	if due {
		p.lastExhaustionAlert = now
	}
	p.mu.Unlock()

	p.log.Error("No healthy API key across all providers",
		"providers", providers, "estimated_cost", estimatedCost)
	p.audit.Record(ctx, audit.Entry{
		Kind:     audit.KindKeyExhaustion,
		Severity: audit.SeverityCritical,
		Details:  map[string]any{"providers": providers, "estimated_cost": estimatedCost},
	})

	if due && p.notifier != nil {
		p.notifier.Notify(ctx, alerts.Alert{
			Kind:   alerts.KindAllKeysDown,
			Detail: fmt.Sprintf("No healthy key across providers %v (estimated cost $%.4f).", providers, estimatedCost),
		})
	}
}

// RecordFailure increments the key's consecutive-failure count and stamps
// the failure time. The third consecutive failure trips a 5-minute cooldown
// and marks the key ERROR.
func (p *Pool) RecordFailure(ctx context.Context, keyID string) error {
	k, err := p.store.Get(ctx, keyID)
	if err != nil {
		return fmt.Errorf("failed to load key %s: %w", keyID, err)
	}

	now := p.now()
	k.ConsecutiveFailures++
	k.LastFailureAt = &now

	if k.ConsecutiveFailures >= cooldownAfterFailures {
		until := now.Add(cooldownDuration)
		k.CooldownUntil = &until
		k.Status = StatusError
		p.log.Error("API key entered cooldown after repeated failures",
			"key_id", k.ID,
			"provider", k.Provider,
			"consecutive_failures", k.ConsecutiveFailures,
			"cooldown_until", until)
	} else {
		p.log.Warn("API key call failed",
			"key_id", k.ID,
			"provider", k.Provider,
			"consecutive_failures", k.ConsecutiveFailures)
	}

	return p.store.Update(ctx, k)
}

// RecordSuccess resets failure accounting and adds the call cost to the
// key's monthly spend, rolling the budget month over first if needed.
func (p *Pool) RecordSuccess(ctx context.Context, keyID string, cost float64) error {
	k, err := p.store.Get(ctx, keyID)
	if err != nil {
		return fmt.Errorf("failed to load key %s: %w", keyID, err)
	}

	now := p.now()
	if !sameMonth(k.LastSpendReset, now) {
		k.CurrentSpend = 0
		k.LastSpendReset = now
	}

	k.ConsecutiveFailures = 0
	k.LastFailureAt = nil
	k.CooldownUntil = nil
	k.Status = StatusOK
	k.CurrentSpend += cost

	return p.store.Update(ctx, k)
}

// SetMonthlyBudget updates a key's budget cap and emits an audit entry.
func (p *Pool) SetMonthlyBudget(ctx context.Context, keyID string, budget float64, actorID string) error {
	if budget < 0 {
		return fmt.Errorf("monthly budget must not be negative, got %.2f", budget)
	}
	k, err := p.store.Get(ctx, keyID)
	if err != nil {
		return fmt.Errorf("failed to load key %s: %w", keyID, err)
	}

	old := k.MonthlyBudget
	k.MonthlyBudget = budget
	if err := p.store.Update(ctx, k); err != nil {
		return err
	}

	p.audit.Record(ctx, audit.Entry{
		Kind:     audit.KindBudgetChange,
		Severity: audit.SeverityInfo,
		ActorID:  actorID,
		Details:  map[string]any{"key_id": keyID, "old_budget": old, "new_budget": budget},
	})
	return nil
}

// sweepOnce returns tripped keys to rotation: any key whose cooldown has
// elapsed has its failure count decremented by one and its ERROR status
// cleared. The slow decay keeps a flapping key from immediately regaining
// top rank.
func (p *Pool) sweepOnce(ctx context.Context) error {
	keys, err := p.store.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list keys for sweep: %w", err)
	}

	now := p.now()
	for _, k := range keys {
		if k.CooldownUntil == nil || now.Before(*k.CooldownUntil) {
			continue
		}
		if k.ConsecutiveFailures > 0 {
			k.ConsecutiveFailures--
		}
		k.CooldownUntil = nil
		k.Status = StatusOK
		if err := p.store.Update(ctx, k); err != nil {
			p.log.Error("Failed to persist key recovery", "key_id", k.ID, "error", err)
			continue
		}
		p.log.Info("API key recovered from cooldown",
			"key_id", k.ID,
			"provider", k.Provider,
			"remaining_failures", k.ConsecutiveFailures)
	}
	return nil
}
