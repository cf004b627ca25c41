// Package bootstrap is the composition root. All construction and wiring
// happens here so module code stays framework-agnostic.
package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	pollengine "rankify/contexts/polling/poll-engine"
	postgresadapter "rankify/contexts/polling/poll-engine/adapters/postgres"
	"rankify/contexts/polling/poll-engine/adapters/rediscache"
	"rankify/contexts/polling/poll-engine/ports"
	"rankify/internal/platform/config"
	"rankify/internal/platform/db"
	"rankify/internal/platform/httpserver"

	"github.com/redis/go-redis/v9"
)

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	redis    *redis.Client
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	var redisClient *redis.Client
	var ballotCache ports.BallotCache
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ballotCache = rediscache.New(redisClient, logger)
	}

	repo := postgresadapter.NewRepository(pg.DB, logger)
	module := pollengine.NewModule(pollengine.Dependencies{
		Polls:     repo,
		Votes:     repo,
		Cache:     ballotCache,
		Clock:     postgresadapter.SystemClock{},
		IDGen:     postgresadapter.UUIDGenerator{},
		BallotTTL: cfg.BallotTTL,
		Logger:    logger,
	})

	server := httpserver.New(module, logger, ":"+cfg.HTTPPort)
	return &APIApp{
		server:   server,
		postgres: pg,
		redis:    redisClient,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}
