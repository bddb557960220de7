// Weft orchestrator server. Serves the HTTP API, runs the queue workers,
// and drives runs through the engine.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/weftworks/weft/pkg/api"
	"github.com/weftworks/weft/pkg/checkpoint"
	"github.com/weftworks/weft/pkg/config"
	"github.com/weftworks/weft/pkg/database"
	"github.com/weftworks/weft/pkg/engine"
	"github.com/weftworks/weft/pkg/events"
	"github.com/weftworks/weft/pkg/llm"
	"github.com/weftworks/weft/pkg/queue"
	"github.com/weftworks/weft/pkg/services"
	"github.com/weftworks/weft/pkg/skills"
	"github.com/weftworks/weft/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	slog.Info("Starting weft", "version", version.Full(), "pod_id", podID, "config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs embedded migrations)
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

	// 3. Event bus
	var bus events.Bus
	switch cfg.Bus.Backend {
	case config.BusRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Bus.RedisAddr,
			Password: cfg.Bus.RedisPassword,
			DB:       cfg.Bus.RedisDB,
		})
		redisBus := events.NewRedisBus(rdb, nil)
		defer redisBus.Close()
		bus = redisBus
		slog.Info("Event bus initialized", "backend", "redis", "addr", cfg.Bus.RedisAddr)
	default:
		pgBus := events.NewPostgresBus(dbClient.DB(), dbConfig.DSN(), nil)
		if err := pgBus.Start(ctx); err != nil {
			slog.Error("Failed to start Postgres event bus", "error", err)
			os.Exit(1)
		}
		defer pgBus.Stop(ctx)
		bus = pgBus
		slog.Info("Event bus initialized", "backend", "postgres")
	}

	// 4. Services
	checkpoints := checkpoint.NewEntStore(dbClient.Client, dbClient.DB(), nil)
	runService := services.NewRunService(dbClient.Client, checkpoints, bus)
	callbackService := services.NewCallbackService(dbClient.Client)
	skillService := services.NewSkillService(dbClient.Client)
	credentialService := services.NewCredentialService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. Skill registry (filesystem + database sources)
	registry := skills.NewRegistry(cfg.Skills.Dir, skillService)
	if err := registry.LoadAll(ctx); err != nil {
		slog.Error("Failed to load skill registry", "error", err)
		os.Exit(1)
	}
	for _, diag := range registry.Diagnostics() {
		slog.Warn("Skill failed to load", "name", diag.Name, "source", diag.Source, "error", diag.Err)
	}

	// 6. LLM sidecar client (lazy dial; first RPC connects)
	llmClient, err := llm.NewGRPCClient(cfg.LLM.SidecarAddr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.SidecarAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "addr", cfg.LLM.SidecarAddr, "default_model", cfg.LLM.DefaultModel)

	// 7. Engine and worker pool
	orchestrator := engine.New(engine.Config{
		Registry:     registry,
		LLM:          llmClient,
		Checkpoints:  checkpoints,
		Bus:          bus,
		Credentials:  credentialService,
		Functions:    engine.NewFunctionTable(),
		Callbacks:    callbackService,
		DefaultModel: cfg.LLM.DefaultModel,
		Logger:       slog.Default(),
	})
	executor := queue.NewEngineExecutor(orchestrator, slog.Default())

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, runService, callbackService, bus)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. HTTP API
	httpServer := api.NewServer(cfg.Server, api.Deps{
		DB:          dbClient,
		Runs:        runService,
		Callbacks:   callbackService,
		Skills:      skillService,
		Credentials: credentialService,
		Registry:    registry,
		Pool:        workerPool,
	})
	httpServer.Start()

	slog.Info("Weft started successfully",
		"pod_id", podID,
		"port", cfg.Server.Port,
		"workers", cfg.Queue.WorkerCount)

	// 9. Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig)

	// 10. Graceful shutdown: let active drives finish, then drain HTTP.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, unfinished runs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
