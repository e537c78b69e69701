// Package api exposes the governance core over HTTP: intent submission,
// remote execution, capability administration, critic reviews, budget
// settings and a WebSocket chat channel. Agent identity always derives
// from the bearer token, never from request bodies.
package api

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agentium/agentium/pkg/bus"
	"github.com/agentium/agentium/pkg/capability"
	"github.com/agentium/agentium/pkg/critic"
	"github.com/agentium/agentium/pkg/executor"
	"github.com/agentium/agentium/pkg/orchestrator"
	"github.com/agentium/agentium/pkg/services"
)

// IntentRouter processes raw agent intents. Implemented by
// orchestrator.Orchestrator.
type IntentRouter interface {
	ProcessIntent(ctx context.Context, req orchestrator.IntentRequest) (*orchestrator.RouteResult, error)
}

// CodeRunner executes agent-submitted code. Implemented by
// executor.Service.
type CodeRunner interface {
	Execute(ctx context.Context, req executor.Request) (*executor.Report, error)
}

// ReviewPipeline runs critic reviews. Implemented by critic.Pipeline.
type ReviewPipeline interface {
	Review(ctx context.Context, taskID string, criticType critic.Type, output string) (*critic.Review, error)
}

// ReviewStore persists review outcomes. Implemented by
// services.CriticReviewService.
type ReviewStore interface {
	Record(ctx context.Context, taskID string, criticType critic.Type, submissionHash string, attempt int, review *critic.Review) error
}

// BudgetSettings reads and writes the persistent daily caps. Implemented
// by services.SettingService.
type BudgetSettings interface {
	DailyTokenLimit(ctx context.Context) (int, error)
	DailyCostLimit(ctx context.Context) (float64, error)
	Set(ctx context.Context, key, value, updatedBy string) error
}

// UsageReader answers daily usage aggregates. Implemented by
// services.UsageService.
type UsageReader interface {
	ForDay(ctx context.Context, t time.Time) (*services.DailyUsage, error)
}

// Notifier delivers bus notifications to WebSocket sessions. Implemented
// by bus.Bus.
type Notifier interface {
	Subscribe(ctx context.Context, agentID string, fn func(bus.Notification)) (*bus.Subscription, error)
}

// Deps are the server's collaborators. Notifier and DB may be nil; the
// WebSocket channel then runs without push delivery and /health without a
// database probe.
type Deps struct {
	Intents      IntentRouter
	Runner       CodeRunner
	Capabilities *capability.Registry
	Critics      ReviewPipeline
	Reviews      ReviewStore
	Settings     BudgetSettings
	Usage        UsageReader
	Notifier     Notifier
	DB           *sql.DB
	Verifier     TokenVerifier
	// WSOrigins is the origin allowlist for WebSocket upgrades. Empty
	// means same-origin only.
	WSOrigins []string
}

// Server is the HTTP and WebSocket front of the governance core.
type Server struct {
	intents   IntentRouter
	runner    CodeRunner
	caps      *capability.Registry
	critics   ReviewPipeline
	reviews   ReviewStore
	settings  BudgetSettings
	usage     UsageReader
	notifier  Notifier
	db        *sql.DB
	verifier  TokenVerifier
	wsOrigins []string
	log       *slog.Logger
}

// NewServer creates the API server.
func NewServer(deps Deps) *Server {
	return &Server{
		intents:   deps.Intents,
		runner:    deps.Runner,
		caps:      deps.Capabilities,
		critics:   deps.Critics,
		reviews:   deps.Reviews,
		settings:  deps.Settings,
		usage:     deps.Usage,
		notifier:  deps.Notifier,
		db:        deps.DB,
		verifier:  deps.Verifier,
		wsOrigins: deps.WSOrigins,
		log:       slog.Default().With("component", "api"),
	}
}

// Router builds the route table. The WebSocket endpoint authenticates
// inside the handler so it can answer with close code 4001 instead of an
// HTTP status.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	r.GET("/health", s.health)
	r.GET("/ws/chat", s.chatSocket)

	v1 := r.Group("/api/v1", requireAuth(s.verifier))
	v1.POST("/chat/send", s.sendChat)
	v1.POST("/remote-executor/execute", s.executeCode)
	v1.POST("/capabilities/grant", s.grantCapability)
	v1.POST("/capabilities/revoke", s.revokeCapability)
	v1.POST("/critics/review", s.reviewOutput)

	budget := v1.Group("/budget", requireBudgetRole())
	budget.GET("", s.getBudget)
	budget.PUT("", s.putBudget)

	return r
}
