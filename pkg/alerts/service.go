// Package alerts delivers operational notifications to a Slack channel.
// Alert delivery is fail-open: the system never degrades because the
// notification channel is unreachable.
package alerts

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Kind identifies the class of operational event being reported.
type Kind string

// Alert kinds.
const (
	KindAllKeysDown     Kind = "all_api_keys_down"
	KindBudgetExhausted Kind = "budget_exhausted"
	KindAgentLiquidated Kind = "agent_liquidated"
	KindSandboxReaped   Kind = "sandbox_reaped"
	KindGuardBlock      Kind = "constitutional_block"
)

// Alert is a single operational notification.
type Alert struct {
	Kind    Kind
	AgentID string // optional
	Detail  string
}

// Notifier delivers alerts. Implementations must be safe for concurrent use.
type Notifier interface {
	Notify(ctx context.Context, a Alert)
}

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// Service delivers alerts to Slack.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new alert service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "alerts-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "alerts-service"),
	}
}

// Notify posts the alert to the configured channel.
// Fail-open: errors are logged, never returned.
func (s *Service) Notify(ctx context.Context, a Alert) {
	if s == nil {
		return
	}

	blocks := BuildAlertMessage(a, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, 5*time.Second); err != nil {
		s.logger.Error("Failed to send alert",
			"kind", string(a.Kind),
			"agent_id", a.AgentID,
			"error", err)
	}
}

// MemoryNotifier records alerts in memory. Test helper.
type MemoryNotifier struct {
	mu     sync.Mutex
	alerts []Alert
}

// NewMemoryNotifier creates an empty in-memory notifier.
func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{}
}

// Notify appends the alert.
func (m *MemoryNotifier) Notify(_ context.Context, a Alert) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alerts = append(m.alerts, a)
}

// Alerts returns a copy of the recorded alerts.
func (m *MemoryNotifier) Alerts() []Alert {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Alert, len(m.alerts))
	copy(out, m.alerts)
	return out
}
