package sandbox

import (
	"context"
	"log/slog"
	"time"
)

// ReaperConfig bounds orphaned-sandbox cleanup.
type ReaperConfig struct {
	// MaxAge is how long a sandbox container may exist before the reaper
	// removes it. Normal executions destroy their own sandbox well
	// before this.
	MaxAge time.Duration
	// Interval between sweeps.
	Interval time.Duration
}

// Reaper removes sandbox containers that outlived their execution, e.g.
// after a crashed pod. All operations are idempotent.
type Reaper struct {
	runtime Runtime
	config  ReaperConfig
	now     func() time.Time

	cancel context.CancelFunc
	done   chan struct{}
	log    *slog.Logger
}

// NewReaper creates a reaper. Zero config fields get sane defaults.
func NewReaper(runtime Runtime, cfg ReaperConfig) *Reaper {
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = 2 * time.Hour
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Minute
	}
	return &Reaper{
		runtime: runtime,
		config:  cfg,
		now:     time.Now,
		log:     slog.Default().With("component", "sandbox-reaper"),
	}
}

// Start launches the background reap loop.
func (r *Reaper) Start(ctx context.Context) {
	if r.cancel != nil {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	go r.run(ctx)

	r.log.Info("Sandbox reaper started",
		"max_age", r.config.MaxAge,
		"interval", r.config.Interval)
}

// Stop signals the reap loop to exit and waits for it to finish.
func (r *Reaper) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	r.log.Info("Sandbox reaper stopped")
}

func (r *Reaper) run(ctx context.Context) {
	defer close(r.done)

	r.ReapOnce(ctx)

	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.ReapOnce(ctx)
		}
	}
}

// ReapOnce removes every sandbox container older than MaxAge. Creation
// time rides on a label because the runtime listing does not expose it
// uniformly.
func (r *Reaper) ReapOnce(ctx context.Context) {
	infos, err := r.runtime.List(ctx, map[string]string{LabelSandbox: "true"})
	if err != nil {
		r.log.Error("Failed to list sandbox containers", "error", err)
		return
	}

	cutoff := r.now().Add(-r.config.MaxAge)
	reaped := 0
	for _, info := range infos {
		createdAt, ok := parseCreatedLabel(info.Labels)
		if ok && createdAt.After(cutoff) {
			continue
		}
		if err := r.runtime.Remove(ctx, info.ID, true); err != nil {
			r.log.Error("Failed to reap sandbox container",
				"container_id", shortID(info.ID), "error", err)
			continue
		}
		reaped++
	}
	if reaped > 0 {
		r.log.Warn("Reaped orphaned sandbox containers", "count", reaped)
	}
}

// LabelCreatedAt carries the container creation time in RFC 3339.
const LabelCreatedAt = "agentium.created-at"

func parseCreatedLabel(labels map[string]string) (time.Time, bool) {
	raw, ok := labels[LabelCreatedAt]
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
