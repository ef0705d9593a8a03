// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Aluno HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the storage selected by STORAGE_DRIVER (memory, postgres or redis).
//  4. Build the hasher, token service and metrics registry.
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/aluno-api/internal/api"
	"github.com/taibuivan/aluno-api/internal/core/aluno"
	"github.com/taibuivan/aluno-api/internal/platform/config"
	"github.com/taibuivan/aluno-api/internal/platform/constants"
	"github.com/taibuivan/aluno-api/internal/platform/metrics"
	"github.com/taibuivan/aluno-api/internal/platform/migration"
	pgstore "github.com/taibuivan/aluno-api/internal/platform/postgres"
	redisstore "github.com/taibuivan/aluno-api/internal/platform/redis"
	"github.com/taibuivan/aluno-api/internal/platform/sec"
	"github.com/taibuivan/aluno-api/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage_driver", cfg.StorageDriver),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	// ── 3. Storage ────────────────────────────────────────────────────────
	storage := openStores(startupCtx, cfg, log)
	defer storage.close(log)

	// ── 4. Security & Metrics ─────────────────────────────────────────────
	hasher, err := sec.NewPasswordHasher(cfg.BcryptCost, constants.MinBcryptCost)
	must(log, err, "initialize password hasher")

	tokenService, err := sec.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, constants.AccessTokenTTL)
	must(log, err, "initialize token service")

	collector := metrics.New()

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(storage.healthDependencies())

	docs, err := api.NewDocsHandler(api.NewOpenAPIDocument("http://localhost:" + cfg.ServerPort))
	must(log, err, "render api docs")

	authService := auth.NewService(storage.credentials, hasher, tokenService, collector)
	alunoService := aluno.NewService(storage.alunos)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService),
		Aluno:     aluno.NewHandler(alunoService),
		Docs:      docs,
	}

	server := api.NewServer(cfg, log, tokenService, collector, handlers)

	// ── 6. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("server_shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

// newLogger builds the JSON logger and makes it the process default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// # Storage Selection

// stores holds the repositories for the selected driver plus the clients that
// back them. Unused clients stay nil.
type stores struct {
	credentials auth.CredentialStore
	alunos      aluno.Repository
	pool        *pgxpool.Pool
	redis       *redis.Client
}

// openStores connects to the configured backend. The redis driver keeps
// identities in Redis and alunos in memory.
func openStores(ctx context.Context, cfg *config.Config, log *slog.Logger) *stores {
	var seed []aluno.Aluno
	if cfg.SeedSampleAluno {
		seed = append(seed, aluno.Sample)
	}

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")

		return &stores{
			credentials: auth.NewPostgresCredentialStore(pool),
			alunos:      aluno.NewPostgresRepository(pool),
			pool:        pool,
		}

	case config.DriverRedis:
		client, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
		must(log, err, "connect to redis")

		return &stores{
			credentials: auth.NewRedisCredentialStore(client),
			alunos:      aluno.NewMemoryRepository(seed...),
			redis:       client,
		}

	default:
		log.Warn("memory_storage_selected", slog.String("note", "data is lost on restart"))
		return &stores{
			credentials: auth.NewMemoryCredentialStore(),
			alunos:      aluno.NewMemoryRepository(seed...),
		}
	}
}

func (s *stores) healthDependencies() api.HealthDependencies {
	var deps api.HealthDependencies
	if s.pool != nil {
		deps.CheckDatabase = func(ctx context.Context) error { return pgstore.Ping(ctx, s.pool) }
	}
	if s.redis != nil {
		deps.CheckRedis = func(ctx context.Context) error { return redisstore.Ping(ctx, s.redis) }
	}
	return deps
}

func (s *stores) close(log *slog.Logger) {
	if s.pool != nil {
		log.Info("closing_postgres_pool")
		s.pool.Close()
	}
	if s.redis != nil {
		log.Info("closing_redis_client")
		if err := s.redis.Close(); err != nil {
			log.Error("redis_close_error", slog.Any("error", err))
		}
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
