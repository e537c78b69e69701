package bus

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Handler processes one delivered envelope. A nil return acknowledges the
// entry; an error leaves it in the inbox for redelivery.
type Handler func(ctx context.Context, env *Envelope) error

// ConsumerPool drains one agent's inbox with a bounded number of handler
// workers. A batch is fully settled before the next poll, so an entry is
// never handled twice within the pool.
type ConsumerPool struct {
	bus      *Bus
	agentID  string
	handler  Handler
	workers  int
	batch    int
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
	log    *slog.Logger
}

// ConsumerConfig tunes a ConsumerPool.
type ConsumerConfig struct {
	// Workers is the number of concurrent handler invocations per batch.
	Workers int
	// Batch is the max entries read per poll.
	Batch int
	// Interval between polls of an empty inbox.
	Interval time.Duration
}

// NewConsumerPool creates a pool for one agent inbox. Zero config fields
// get sane defaults.
func NewConsumerPool(b *Bus, agentID string, handler Handler, cfg ConsumerConfig) *ConsumerPool {
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.Batch <= 0 {
		cfg.Batch = 10
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	return &ConsumerPool{
		bus:      b,
		agentID:  agentID,
		handler:  handler,
		workers:  cfg.Workers,
		batch:    cfg.Batch,
		interval: cfg.Interval,
		log:      slog.Default().With("component", "bus-consumer", "agent_id", agentID),
	}
}

// Start launches the background drain loop.
func (p *ConsumerPool) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})
	go p.run(ctx)
}

// Stop terminates the loop and waits for in-flight handlers to settle.
func (p *ConsumerPool) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
}

func (p *ConsumerPool) run(ctx context.Context) {
	defer close(p.done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// A full batch hints at backlog; keep draining without
			// waiting for the next tick.
			for p.DrainOnce(ctx) == p.batch {
				if ctx.Err() != nil {
					return
				}
			}
		}
	}
}

// DrainOnce reads one batch, runs the handler across the worker limit and
// acknowledges every entry the handler accepted. Returns how many entries
// were read.
func (p *ConsumerPool) DrainOnce(ctx context.Context) int {
	msgs, err := p.bus.ConsumeStream(ctx, p.agentID, p.batch)
	if err != nil {
		p.log.Warn("Inbox read failed", "error", err)
		return 0
	}
	if len(msgs) == 0 {
		return 0
	}

	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup
	for _, m := range msgs {
		wg.Add(1)
		sem <- struct{}{}
		go func(m Received) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := p.handler(ctx, m.Envelope); err != nil {
				p.log.Warn("Handler rejected message, leaving it queued",
					"message_id", m.Envelope.MessageID,
					"type", string(m.Envelope.Type),
					"error", err)
				return
			}
			if err := p.bus.Acknowledge(ctx, m.Receipt); err != nil {
				p.log.Error("Failed to acknowledge message",
					"message_id", m.Envelope.MessageID, "error", err)
			}
		}(m)
	}
	wg.Wait()
	return len(msgs)
}
