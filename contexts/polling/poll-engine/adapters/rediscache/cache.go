package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"rankify/contexts/polling/poll-engine/domain/entities"

	"github.com/redis/go-redis/v9"
)

// Cache implements ports.BallotCache on Redis. Ballots are immutable for a
// poll's lifetime, so entries only need invalidation when a lifecycle
// transition rewrites the poll row alongside them.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
}

func New(client *redis.Client, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{client: client, logger: logger}
}

func (c *Cache) GetBallot(ctx context.Context, id entities.PollID) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, ballotKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("ballot cache get: %w", err)
	}
	var options []string
	if err := json.Unmarshal([]byte(raw), &options); err != nil {
		// Corrupt entry; treat as a miss so the repository read repairs it.
		c.logger.Warn("dropping undecodable ballot cache entry",
			"event", "ballot_cache_decode_failed",
			"module", "polling/poll-engine",
			"layer", "adapter",
			"poll_id", id.String(),
			"error", err.Error(),
		)
		_ = c.client.Del(ctx, ballotKey(id)).Err()
		return nil, false, nil
	}
	return options, true, nil
}

func (c *Cache) PutBallot(ctx context.Context, id entities.PollID, options []string, ttl time.Duration) error {
	payload, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("ballot cache encode: %w", err)
	}
	if err := c.client.Set(ctx, ballotKey(id), payload, ttl).Err(); err != nil {
		return fmt.Errorf("ballot cache set: %w", err)
	}
	return nil
}

func (c *Cache) Invalidate(ctx context.Context, id entities.PollID) error {
	if err := c.client.Del(ctx, ballotKey(id)).Err(); err != nil {
		return fmt.Errorf("ballot cache del: %w", err)
	}
	return nil
}

func ballotKey(id entities.PollID) string {
	return "rankify:ballot:" + id.String()
}
