package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Redis is the shared Cache backend, used when multiple instances serve the
// same site and must see each other's invalidations.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewRedis creates a redis-backed cache whose entries go stale after ttl
func NewRedis(client *redis.Client, ttl time.Duration, log zerolog.Logger) *Redis {
	return &Redis{
		client: client,
		ttl:    ttl,
		log:    log.With().Str("component", "cache").Logger(),
	}
}

// Get returns the cached value for key, if present
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		return nil, false
	}
	return val, true
}

// Set stores value under key with the staleness window as TTL
func (r *Redis) Set(ctx context.Context, key string, value []byte) {
	if err := r.client.Set(ctx, key, value, r.ttl).Err(); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}

// Invalidate deletes every key starting with keyPrefix
func (r *Redis) Invalidate(ctx context.Context, keyPrefix string) {
	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			r.log.Warn().Err(err).Str("key", iter.Val()).Msg("Cache delete failed")
		}
	}
	if err := iter.Err(); err != nil {
		r.log.Warn().Err(err).Str("prefix", keyPrefix).Msg("Cache scan failed")
	}
}
