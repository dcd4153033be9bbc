package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"offer_agent/internal/usecase/interfaces"
)

const eventTTL = 72 * time.Hour

// RedisDeduper records webhook event ids with SETNX so retried deliveries
// are processed once.
type RedisDeduper struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ interfaces.IEventDeduper = (*RedisDeduper)(nil)

func NewRedisDeduper(client redis.Cmdable) *RedisDeduper {
	return &RedisDeduper{client: client, ttl: eventTTL}
}

// NewRedisDeduperFromURL parses a redis:// URL and pings the server.
func NewRedisDeduperFromURL(ctx context.Context, url string) (*RedisDeduper, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisDeduper(client), nil
}

func eventKey(provider, eventID string) string {
	return "webhook:" + provider + ":" + eventID
}

func (d *RedisDeduper) FirstSeen(ctx context.Context, provider string, eventID string) (bool, error) {
	ok, err := d.client.SetNX(ctx, eventKey(provider, eventID), time.Now().UTC().Format(time.RFC3339), d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx: %w", err)
	}
	return ok, nil
}

func (d *RedisDeduper) Forget(ctx context.Context, provider string, eventID string) error {
	if err := d.client.Del(ctx, eventKey(provider, eventID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// NoopDeduper treats every event as new. Payment and subscription updates
// are idempotent, so replays without Redis are harmless.
type NoopDeduper struct{}

var _ interfaces.IEventDeduper = NoopDeduper{}

func (NoopDeduper) FirstSeen(context.Context, string, string) (bool, error) { return true, nil }

func (NoopDeduper) Forget(context.Context, string, string) error { return nil }
