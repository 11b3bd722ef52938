package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/akomcomputer/shopsuite-backend/api/controllers"
	"github.com/akomcomputer/shopsuite-backend/api/routes"
	"github.com/akomcomputer/shopsuite-backend/internal/leads"
	"github.com/akomcomputer/shopsuite-backend/internal/snapshot"
	"github.com/akomcomputer/shopsuite-backend/internal/store"
	"github.com/akomcomputer/shopsuite-backend/pkg/auth/session"
	"github.com/akomcomputer/shopsuite-backend/pkg/config"
	"github.com/akomcomputer/shopsuite-backend/pkg/db"
	"github.com/akomcomputer/shopsuite-backend/pkg/logger"
	"github.com/akomcomputer/shopsuite-backend/pkg/metrics"
	"github.com/akomcomputer/shopsuite-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	var dbClient *db.Client
	var backend snapshot.Backend
	switch cfg.Snapshot.Backend {
	case config.SnapshotBackendDB:
		dbClient, err = db.New(context.Background(), cfg.Snapshot, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap database", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing database", err)
			}
		}()
		backend, err = snapshot.NewDBBackend(dbClient)
		if err != nil {
			logg.Error(context.Background(), "failed to prepare snapshot table", err)
			os.Exit(1)
		}
	case config.SnapshotBackendMemory:
		logg.Warn(context.Background(), "memory snapshot backend selected, state will not survive restarts")
		backend = snapshot.NewMemoryBackend()
	default:
		backend, err = snapshot.NewRedisBackend(redisClient)
		if err != nil {
			logg.Error(context.Background(), "failed to prepare redis snapshot backend", err)
			os.Exit(1)
		}
	}

	codec, err := snapshot.NewCodec(backend, cfg.Snapshot.Key, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create snapshot codec", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	storeMetrics := metrics.NewStoreMetrics(registry)

	st, err := store.New(context.Background(), store.Options{
		Codec:   codec,
		Logger:  logg,
		Metrics: storeMetrics,
		Guards:  cfg.Guards,
		Seeds:   store.DefaultSeeds(cfg.Shop, nil),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to load domain store", err)
		os.Exit(1)
	}

	var scorer leads.Scorer
	if cfg.Gemini.APIKey != "" {
		scorer, err = leads.NewGeminiScorer(context.Background(), cfg.Gemini)
		if err != nil {
			logg.Error(context.Background(), "failed to create gemini scorer", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "gemini api key not set, lead scoring disabled")
	}

	scoring, err := leads.NewService(st, scorer, logg, storeMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create lead scoring service", err)
		os.Exit(1)
	}

	sessions, err := session.NewManager(redisClient, cfg.Auth.SessionTTL())
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	var dbPinger controllers.Pinger
	if dbClient != nil {
		dbPinger = dbClient
	}

	router := routes.NewRouter(routes.Deps{
		Config:       cfg,
		Logger:       logg,
		Store:        st,
		Sessions:     sessions,
		Scoring:      scoring,
		RedisLimiter: redisClient,
		RedisPinger:  redisClient,
		DBPinger:     dbPinger,
		Registry:     registry,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":              cfg.App.Env,
		"addr":             addr,
		"snapshot_backend": cfg.Snapshot.Backend,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
