// Agentium governance server: loads configuration, connects storage and
// the message bus, wires the policy engines, and serves the HTTP and
// WebSocket API.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/agentium/agentium/pkg/agents"
	"github.com/agentium/agentium/pkg/alerts"
	"github.com/agentium/agentium/pkg/allocator"
	"github.com/agentium/agentium/pkg/api"
	"github.com/agentium/agentium/pkg/bus"
	"github.com/agentium/agentium/pkg/capability"
	"github.com/agentium/agentium/pkg/cleanup"
	"github.com/agentium/agentium/pkg/config"
	"github.com/agentium/agentium/pkg/critic"
	"github.com/agentium/agentium/pkg/database"
	"github.com/agentium/agentium/pkg/executor"
	"github.com/agentium/agentium/pkg/guard"
	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/agentium/agentium/pkg/keypool"
	"github.com/agentium/agentium/pkg/llm"
	"github.com/agentium/agentium/pkg/masking"
	"github.com/agentium/agentium/pkg/orchestrator"
	"github.com/agentium/agentium/pkg/sandbox"
	"github.com/agentium/agentium/pkg/semantic"
	"github.com/agentium/agentium/pkg/services"
	"github.com/agentium/agentium/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// buildProviders registers one LLM provider per configured entry. Hosted
// providers without their API key env set are skipped with a warning so a
// partial deployment still starts.
func buildProviders(cfg *config.Config, registry *llm.Registry) {
	for name, p := range cfg.ProviderRegistry.GetAll() {
		var (
			provider llm.Provider
			err      error
		)
		switch p.Type {
		case config.ProviderTypeAnthropic:
			apiKey := os.Getenv(p.APIKeyEnv)
			if apiKey == "" {
				slog.Warn("Skipping provider, API key env not set", "provider", name, "env", p.APIKeyEnv)
				continue
			}
			provider, err = llm.NewAnthropicFromAPIKey(apiKey, p.DefaultModel)
		case config.ProviderTypeOpenAI:
			apiKey := os.Getenv(p.APIKeyEnv)
			if apiKey == "" {
				slog.Warn("Skipping provider, API key env not set", "provider", name, "env", p.APIKeyEnv)
				continue
			}
			provider, err = llm.NewOpenAIFromAPIKey(apiKey, p.DefaultModel)
		case config.ProviderTypeOllama:
			provider, err = llm.NewOllama(p.BaseURL, p.DefaultModel)
		}
		if err != nil {
			slog.Error("Failed to construct provider", "provider", name, "error", err)
			continue
		}
		if err := registry.Register(provider); err != nil {
			slog.Error("Failed to register provider", "provider", name, "error", err)
		}
	}
}

// seedConstitution upserts every constitutional document into the vector
// store so the guard and the enricher can retrieve them.
func seedConstitution(ctx context.Context, cfg *config.Config, store *semantic.Store) error {
	for _, doc := range cfg.Constitution {
		meta := map[string]string{"name": doc.Name}
		if err := store.Upsert(ctx, semantic.CollectionConstitution, doc.Name, doc.Text, meta); err != nil {
			return err
		}
	}
	return nil
}

// criticRoster converts the configured rosters to the pipeline's types.
func criticRoster(cfg *config.Config) map[critic.Type][]string {
	roster := make(map[critic.Type][]string, len(cfg.Critics))
	for specialty, ids := range cfg.Critics {
		roster[critic.Type(specialty)] = ids
	}
	return roster
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting Agentium",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Message bus
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: os.Getenv(cfg.Redis.PasswordEnv),
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to redis", "addr", cfg.Redis.Addr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			slog.Error("Error closing redis client", "error", err)
		}
	}()

	// 4. Persistence services
	agentService := services.NewAgentService(dbClient.Client)
	auditService := services.NewAuditService(dbClient.Client)
	taskService := services.NewTaskService(dbClient.Client)
	usageService := services.NewUsageService(dbClient.Client)
	settingService := services.NewSettingService(dbClient.Client)
	keyStore := services.NewKeyStoreService(dbClient.Client)
	executionService := services.NewExecutionService(dbClient.Client)
	sandboxRecords := services.NewSandboxRecordService(dbClient.Client)
	reviewService := services.NewCriticReviewService(dbClient.Client, criticRoster(cfg))
	overrideService := services.NewCapabilityOverrideService(dbClient.Client)
	slog.Info("Services initialized")

	msgBus := bus.New(rdb, bus.WithParentResolver(agentService))

	// 5. Alerting
	var notifier alerts.Notifier
	if cfg.Slack.Enabled {
		alertService := alerts.NewService(alerts.ServiceConfig{
			Token:   os.Getenv(cfg.Slack.TokenEnv),
			Channel: cfg.Slack.Channel,
		})
		if alertService == nil {
			slog.Warn("Slack alerting enabled but token or channel missing")
		}
		notifier = alertService
	}

	// 6. Semantic store and constitutional guard
	semStore := semantic.NewStore(semantic.LocalEmbedding())
	if err := seedConstitution(ctx, cfg, semStore); err != nil {
		slog.Error("Failed to seed constitution", "error", err)
		os.Exit(1)
	}
	constitutionalGuard := guard.New(semStore, auditService)
	slog.Info("Constitution seeded", "documents", len(cfg.Constitution))

	// 7. LLM providers, key pool, gateway
	registry := llm.NewRegistry()
	buildProviders(cfg, registry)
	defer func() {
		if err := registry.Close(); err != nil {
			slog.Error("Error closing providers", "error", err)
		}
	}()

	pool := keypool.New(keyStore, auditService, keypool.WithNotifier(notifier))
	sweeper := keypool.NewSweeper(pool, cfg.Workers.KeySweepInterval)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	gateway := llm.NewGateway(registry, pool, llm.WithUsageSink(usageService))
	defer func() {
		if err := gateway.Close(); err != nil {
			slog.Error("Error closing gateway", "error", err)
		}
	}()

	// 8. Model allocator and idle-mode watcher
	modelAllocator := allocator.New(
		services.NewAllocatorDirectory(dbClient.Client),
		services.NewModelConfigService(dbClient.Client),
	)
	idleWatcher := allocator.NewWatcher(modelAllocator, taskService, allocator.WatcherConfig{})
	idleWatcher.Start(ctx)
	defer idleWatcher.Stop()

	// 9. Critic pipeline
	defaultProvider, err := cfg.ProviderRegistry.Get(cfg.Defaults.Provider)
	if err != nil {
		slog.Error("Default provider not configured", "provider", cfg.Defaults.Provider, "error", err)
		os.Exit(1)
	}
	evaluatorID := hierarchy.HeadID
	if ids := cfg.Critics[config.CriticSpecialtyCode]; len(ids) > 0 {
		evaluatorID = ids[0]
	}
	evaluator := critic.NewLLMEvaluator(gateway, evaluatorID, defaultProvider.DefaultModel)

	var criticOpts []critic.Option
	if cfg.Defaults.CriticMaxRetries != nil {
		criticOpts = append(criticOpts, critic.WithMaxRetries(*cfg.Defaults.CriticMaxRetries))
	}
	pipeline := critic.New(reviewService, evaluator, taskService, auditService, criticOpts...)

	// 10. Capability registry and agent lifecycle
	capRegistry := capability.NewRegistry(overrideService, auditService)
	lifecycle := agents.New(agentService, auditService,
		agents.WithTaskCanceller(taskService),
		agents.WithPublisher(msgBus),
		agents.WithNotifier(notifier),
	)
	head, err := lifecycle.EnsureHead(ctx)
	if err != nil {
		slog.Error("Failed to ensure Head agent", "error", err)
		os.Exit(1)
	}
	slog.Info("Head agent ready", "agent_id", head.ID)

	heartbeats := agents.NewHeartbeatMonitor(lifecycle, agentService, cfg.Workers.HeartbeatTimeout, 0)
	heartbeats.Start(ctx)
	defer heartbeats.Stop()

	// The governance core is the Head's mailbox processor: heartbeats
	// stamp liveness, everything else is logged for the operator.
	headInbox := bus.NewConsumerPool(msgBus, hierarchy.HeadID,
		func(ctx context.Context, env *bus.Envelope) error {
			if env.Type == bus.TypeHeartbeat {
				return lifecycle.Heartbeat(ctx, env.SenderID)
			}
			slog.Info("Message delivered to Head",
				"message_id", env.MessageID,
				"sender_id", env.SenderID,
				"type", string(env.Type))
			return nil
		},
		bus.ConsumerConfig{Workers: cfg.Workers.BusConsumers})
	headInbox.Start(ctx)
	defer headInbox.Stop()

	// 11. Sandboxes and the remote executor
	runtime := sandbox.NewDockerRuntime()
	sandboxes := sandbox.NewManager(runtime, sandboxRecords)
	reaper := sandbox.NewReaper(runtime, sandbox.ReaperConfig{
		MaxAge:   cfg.Workers.ReaperMaxAge,
		Interval: cfg.Workers.ReaperInterval,
	})
	reaper.Start(ctx)
	defer reaper.Stop()

	execService := executor.New(sandboxes, executionService,
		executor.WithMasker(masking.NewService()),
		executor.WithConcurrencyLimit(cfg.Workers.MaxConcurrentExecutions))

	// Retention pruning over the append-only tables
	retention := cleanup.NewService(cfg.Retention, auditService, usageService, sandboxRecords)
	retention.Start(ctx)
	defer retention.Stop()

	// 12. Orchestrator
	orch := orchestrator.New(agentService.Registry(), constitutionalGuard, semStore, msgBus, auditService)

	// 13. HTTP server
	tokens := api.NewStaticTokenStore()
	if adminToken := os.Getenv("AGENTIUM_ADMIN_TOKEN"); adminToken != "" {
		tokens.Add(adminToken, api.Claims{
			Subject: "admin",
			Role:    api.RoleSovereign,
			IsAdmin: true,
			AgentID: hierarchy.HeadID,
		})
	} else {
		slog.Warn("AGENTIUM_ADMIN_TOKEN not set, no admin API access")
	}

	server := api.NewServer(api.Deps{
		Intents:      orch,
		Runner:       execService,
		Capabilities: capRegistry,
		Critics:      pipeline,
		Reviews:      reviewService,
		Settings:     settingService,
		Usage:        usageService,
		Notifier:     msgBus,
		DB:           dbClient.DB(),
		Verifier:     tokens,
		WSOrigins:    cfg.AllowedWSOrigins,
	})
	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	slog.Info("Agentium started")

	// 14. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 15. Graceful shutdown: stop accepting requests, then let the
	// deferred stops unwind the workers.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Workers.GracefulShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
