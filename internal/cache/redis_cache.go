package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/event-betting-service/internal/models"
)

const keyPrefix = "odds:event:"

// ErrMiss is returned when an event has no cached odds
var ErrMiss = errors.New("odds not found in cache")

// RedisCache caches event odds snapshots in Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// RedisCacheConfig holds Redis cache configuration
type RedisCacheConfig struct {
	Addr     string // e.g., "localhost:6379"
	Password string
	DB       int
	TTL      time.Duration // e.g., 5 * time.Minute
}

// NewRedisCache creates a new Redis cache
func NewRedisCache(config RedisCacheConfig, logger zerolog.Logger) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &RedisCache{
		client: client,
		ttl:    config.TTL,
		logger: logger.With().Str("component", "redis_cache").Logger(),
	}
}

func eventKey(eventID uuid.UUID) string {
	return keyPrefix + eventID.String()
}

// SetEventOdds caches the odds snapshot of an event
func (c *RedisCache) SetEventOdds(ctx context.Context, odds *models.EventOdds) error {
	if odds == nil {
		return errors.New("odds snapshot is nil")
	}
	key := eventKey(odds.EventID)

	data, err := json.Marshal(odds)
	if err != nil {
		return fmt.Errorf("failed to marshal odds: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	c.logger.Debug().
		Str("key", key).
		Int("total_bets", odds.TotalBets).
		Dur("ttl", c.ttl).
		Msg("cached event odds")

	return nil
}

// GetEventOdds retrieves the cached odds snapshot of an event
func (c *RedisCache) GetEventOdds(ctx context.Context, eventID uuid.UUID) (*models.EventOdds, error) {
	data, err := c.client.Get(ctx, eventKey(eventID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	} else if err != nil {
		return nil, fmt.Errorf("failed to get from Redis: %w", err)
	}

	var odds models.EventOdds
	if err := json.Unmarshal(data, &odds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal odds: %w", err)
	}

	return &odds, nil
}

// Invalidate drops the cached snapshot of an event
func (c *RedisCache) Invalidate(ctx context.Context, eventID uuid.UUID) error {
	if err := c.client.Del(ctx, eventKey(eventID)).Err(); err != nil {
		return fmt.Errorf("failed to delete from Redis: %w", err)
	}
	return nil
}

// Purge drops every cached event snapshot and returns how many were removed
func (c *RedisCache) Purge(ctx context.Context) (int, error) {
	var cursor uint64
	removed := 0

	for {
		keys, next, err := c.client.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			return removed, fmt.Errorf("failed to scan keys: %w", err)
		}

		if len(keys) > 0 {
			n, err := c.client.Del(ctx, keys...).Result()
			if err != nil {
				return removed, fmt.Errorf("failed to delete keys: %w", err)
			}
			removed += int(n)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	c.logger.Info().Int("count", removed).Msg("purged cached event odds")
	return removed, nil
}

// Ping checks Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
