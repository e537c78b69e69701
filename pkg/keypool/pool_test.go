package keypool

import (
	"context"
	"testing"
	"time"

	"github.com/agentium/agentium/pkg/alerts"
	"github.com/agentium/agentium/pkg/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestPool(t *testing.T) (*Pool, *MemoryStore, *fakeClock, *alerts.MemoryNotifier) {
	t.Helper()
	store := NewMemoryStore()
	clock := &fakeClock{t: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}
	notifier := alerts.NewMemoryNotifier()
	pool := New(store, audit.NewMemoryRecorder(), WithClock(clock.now), WithNotifier(notifier))
	return pool, store, clock, notifier
}

func key(id, provider string, priority int) *Key {
	return &Key{
		ID:             id,
		Provider:       provider,
		Priority:       priority,
		Active:         true,
		Status:         StatusOK,
		LastSpendReset: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetActiveKeyOrdering(t *testing.T) {
	pool, store, clock, _ := newTestPool(t)
	ctx := context.Background()

	earlier := clock.t.Add(-time.Hour)
	later := clock.t.Add(-time.Minute)

	low := key("k-low", "anthropic", 5)
	a := key("k-a", "anthropic", 1)
	a.ConsecutiveFailures = 2
	b := key("k-b", "anthropic", 1)
	b.ConsecutiveFailures = 1
	b.LastFailureAt = &later
	c := key("k-c", "anthropic", 1)
	c.ConsecutiveFailures = 1
	c.LastFailureAt = &earlier
	for _, k := range []*Key{low, a, b, c} {
		store.Add(k)
	}

	// Priority wins first; among ties the fewest failures, then the
	// oldest failure.
	got, err := pool.GetActiveKey(ctx, "anthropic", 0)
	require.NoError(t, err)
	assert.Equal(t, "k-c", got.ID)
}

func TestGetActiveKeyFiltersUnhealthy(t *testing.T) {
	pool, store, clock, _ := newTestPool(t)
	ctx := context.Background()

	inactive := key("k-inactive", "openai", 1)
	inactive.Active = false
	store.Add(inactive)

	errored := key("k-error", "openai", 2)
	errored.Status = StatusError
	store.Add(errored)

	cooling := key("k-cooling", "openai", 3)
	until := clock.t.Add(time.Minute)
	cooling.CooldownUntil = &until
	store.Add(cooling)

	overBudget := key("k-budget", "openai", 4)
	overBudget.MonthlyBudget = 10
	overBudget.CurrentSpend = 9.99
	store.Add(overBudget)

	got, err := pool.GetActiveKey(ctx, "openai", 0.05)
	require.NoError(t, err)
	assert.Nil(t, got)

	// The cooled-down key becomes eligible once its window passes.
	clock.advance(2 * time.Minute)
	got, err = pool.GetActiveKey(ctx, "openai", 0.05)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "k-cooling", got.ID)
}

func TestBudgetResetsOnMonthChange(t *testing.T) {
	pool, store, clock, _ := newTestPool(t)
	ctx := context.Background()

	k := key("k-1", "anthropic", 1)
	k.MonthlyBudget = 10
	k.CurrentSpend = 10
	store.Add(k)

	got, err := pool.GetActiveKey(ctx, "anthropic", 1)
	require.NoError(t, err)
	assert.Nil(t, got, "budget exhausted within the month")

	// July: spend is considered reset before accounting the new call.
	clock.t = time.Date(2025, 7, 1, 0, 0, 1, 0, time.UTC)
	got, err = pool.GetActiveKey(ctx, "anthropic", 1)
	require.NoError(t, err)
	require.NotNil(t, got)

	require.NoError(t, pool.RecordSuccess(ctx, "k-1", 1.5))
	stored, err := store.Get(ctx, "k-1")
	require.NoError(t, err)
	assert.Equal(t, 1.5, stored.CurrentSpend)
	assert.True(t, sameMonth(stored.LastSpendReset, clock.t))
}

func TestRecordFailureTripsCooldownOnThird(t *testing.T) {
	pool, store, clock, _ := newTestPool(t)
	ctx := context.Background()
	store.Add(key("k-1", "anthropic", 1))

	require.NoError(t, pool.RecordFailure(ctx, "k-1"))
	require.NoError(t, pool.RecordFailure(ctx, "k-1"))
	k, err := store.Get(ctx, "k-1")
	require.NoError(t, err)
	assert.Equal(t, StatusOK, k.Status)
	assert.Nil(t, k.CooldownUntil)

	require.NoError(t, pool.RecordFailure(ctx, "k-1"))
	k, err = store.Get(ctx, "k-1")
	require.NoError(t, err)
	assert.Equal(t, StatusError, k.Status)
	require.NotNil(t, k.CooldownUntil)
	assert.Equal(t, clock.t.Add(5*time.Minute), *k.CooldownUntil)
	assert.Equal(t, 3, k.ConsecutiveFailures)
}

func TestRecordSuccessResetsFailureState(t *testing.T) {
	pool, store, _, _ := newTestPool(t)
	ctx := context.Background()
	store.Add(key("k-1", "anthropic", 1))

	for i := 0; i < 3; i++ {
		require.NoError(t, pool.RecordFailure(ctx, "k-1"))
	}
	require.NoError(t, pool.RecordSuccess(ctx, "k-1", 0.25))

	k, err := store.Get(ctx, "k-1")
	require.NoError(t, err)
	assert.Equal(t, 0, k.ConsecutiveFailures)
	assert.Nil(t, k.CooldownUntil)
	assert.Nil(t, k.LastFailureAt)
	assert.Equal(t, StatusOK, k.Status)
	assert.Equal(t, 0.25, k.CurrentSpend)
}

func TestSweepDecaysFailuresAfterCooldown(t *testing.T) {
	pool, store, clock, _ := newTestPool(t)
	ctx := context.Background()
	store.Add(key("k-1", "anthropic", 1))

	for i := 0; i < 3; i++ {
		require.NoError(t, pool.RecordFailure(ctx, "k-1"))
	}

	// Cooldown not yet elapsed: sweep leaves the key untouched.
	require.NoError(t, pool.sweepOnce(ctx))
	k, err := store.Get(ctx, "k-1")
	require.NoError(t, err)
	assert.Equal(t, StatusError, k.Status)

	clock.advance(6 * time.Minute)
	require.NoError(t, pool.sweepOnce(ctx))
	k, err = store.Get(ctx, "k-1")
	require.NoError(t, err)
	assert.Equal(t, StatusOK, k.Status)
	assert.Nil(t, k.CooldownUntil)
	assert.Equal(t, 2, k.ConsecutiveFailures, "failure count decays by one per sweep")
}

func TestFallbackAcrossProviders(t *testing.T) {
	pool, store, _, _ := newTestPool(t)
	ctx := context.Background()

	dead := key("k-anthropic", "anthropic", 1)
	dead.Active = false
	store.Add(dead)
	store.Add(key("k-openai", "openai", 1))

	k, provider, err := pool.GetActiveKeyWithFallback(ctx, []string{"anthropic", "openai"}, 0)
	require.NoError(t, err)
	assert.Equal(t, "k-openai", k.ID)
	assert.Equal(t, "openai", provider)
}

func TestExhaustionAlertOncePerWindow(t *testing.T) {
	pool, _, clock, notifier := newTestPool(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _, err := pool.GetActiveKeyWithFallback(ctx, []string{"anthropic"}, 0)
		require.ErrorIs(t, err, ErrKeysExhausted)
	}
	assert.Len(t, notifier.Alerts(), 1, "alert throttled within the cool-off window")

	clock.advance(61 * time.Second)
	_, _, err := pool.GetActiveKeyWithFallback(ctx, []string{"anthropic"}, 0)
	require.ErrorIs(t, err, ErrKeysExhausted)

	got := notifier.Alerts()
	require.Len(t, got, 2)
	assert.Equal(t, alerts.KindAllKeysDown, got[0].Kind)
}

func TestSetMonthlyBudgetRejectsNegative(t *testing.T) {
	pool, store, _, _ := newTestPool(t)
	store.Add(key("k-1", "anthropic", 1))

	err := pool.SetMonthlyBudget(context.Background(), "k-1", -5, "00001")
	require.Error(t, err)
}

func TestEstimateCost(t *testing.T) {
	// Empty prompt: cost is driven by expected output alone.
	cost := EstimateCost("claude-sonnet-4", "", 1_000_000)
	assert.InDelta(t, 15.00, cost, 0.001)

	// Local models are free.
	assert.Zero(t, EstimateCost("llama3.1:8b", "some prompt text", 500))

	// gpt-4o-mini must not be priced at the gpt-4o rate.
	mini := EstimateCost("gpt-4o-mini", "", 1_000_000)
	assert.InDelta(t, 0.60, mini, 0.001)
}
