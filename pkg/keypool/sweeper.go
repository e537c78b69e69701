package keypool

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// defaultSweepInterval is how often tripped keys are re-examined.
const defaultSweepInterval = time.Minute

// Sweeper periodically returns cooled-down keys to rotation.
type Sweeper struct {
	pool     *Pool
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	log      *slog.Logger
}

// NewSweeper creates a sweeper over the pool. A non-positive interval uses
// the default of one minute.
func NewSweeper(pool *Pool, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &Sweeper{
		pool:     pool,
		interval: interval,
		stopCh:   make(chan struct{}),
		log:      slog.Default().With("component", "key-sweeper"),
	}
}

// Start begins the sweep loop in a goroutine.
func (s *Sweeper) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.run(ctx)
}

// Stop signals the sweeper to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *Sweeper) run(ctx context.Context) {
	defer s.wg.Done()

	s.log.Info("Key sweeper started", "interval", s.interval)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			s.log.Info("Key sweeper shutting down")
			return
		case <-ctx.Done():
			s.log.Info("Context cancelled, key sweeper shutting down")
			return
		case <-ticker.C:
			if err := s.pool.sweepOnce(ctx); err != nil {
				s.log.Error("Key sweep failed", "error", err)
			}
		}
	}
}
