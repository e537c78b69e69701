package allocator

import (
	"context"
	"log/slog"
	"time"
)

// Backlog reports how many tasks are still in flight.
type Backlog interface {
	OpenTaskCount(ctx context.Context) (int, error)
}

// WatcherConfig tunes the idle-mode watcher.
type WatcherConfig struct {
	// Interval between backlog checks.
	Interval time.Duration
	// IdleAfter is how many consecutive empty checks trigger idle mode.
	IdleAfter int
}

// Watcher drives idle-mode transitions from the task backlog: a sustained
// empty backlog moves every agent to the low-cost local model, and the
// first new task wakes them back up.
type Watcher struct {
	allocator *Allocator
	backlog   Backlog
	config    WatcherConfig
	idle      bool
	empty     int

	cancel context.CancelFunc
	done   chan struct{}
	log    *slog.Logger
}

// NewWatcher creates a watcher. Zero config fields get sane defaults.
func NewWatcher(a *Allocator, backlog Backlog, cfg WatcherConfig) *Watcher {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.IdleAfter <= 0 {
		cfg.IdleAfter = 5
	}
	return &Watcher{
		allocator: a,
		backlog:   backlog,
		config:    cfg,
		log:       slog.Default().With("component", "idle-watcher"),
	}
}

// Start launches the background check loop.
func (w *Watcher) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})
	go w.run(ctx)
}

// Stop terminates the loop and waits for it to exit.
func (w *Watcher) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)
	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.CheckOnce(ctx)
		}
	}
}

// CheckOnce performs one backlog check and any resulting mode transition.
func (w *Watcher) CheckOnce(ctx context.Context) {
	open, err := w.backlog.OpenTaskCount(ctx)
	if err != nil {
		w.log.Warn("Backlog check failed", "error", err)
		return
	}

	if open > 0 {
		w.empty = 0
		if w.idle {
			if err := w.allocator.WakeFromIdle(ctx); err != nil {
				w.log.Error("Failed to wake from idle", "error", err)
				return
			}
			w.idle = false
		}
		return
	}

	w.empty++
	if !w.idle && w.empty >= w.config.IdleAfter {
		if err := w.allocator.EnterIdleMode(ctx); err != nil {
			w.log.Error("Failed to enter idle mode", "error", err)
			return
		}
		w.idle = true
	}
}
