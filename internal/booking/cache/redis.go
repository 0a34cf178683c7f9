// Package cache holds TripCache implementations for paginated trip listings.
// Failures are logged and reported as misses; a cache never fails a request.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"tripapp/internal/booking/models"
)

const (
	defaultPrefix = "tripapp:trips"
	generationKey = ":generation"
	defaultTTL    = time.Minute
)

type tripPage = models.PaginatedResult[models.TripSummary]

// Redis stores pages as JSON. Invalidate bumps a generation counter that is part
// of every page key, so stale pages become unreachable and expire on their own.
type Redis struct {
	client redis.UniversalClient
	ttl    time.Duration
	prefix string
	logger *slog.Logger
}

type RedisOption func(*Redis)

func WithTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

func WithPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		if prefix != "" {
			r.prefix = prefix
		}
	}
}

func WithLogger(logger *slog.Logger) RedisOption {
	return func(r *Redis) {
		r.logger = logger
	}
}

func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	r := &Redis{client: client, ttl: defaultTTL, prefix: defaultPrefix, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get reads the page stored under the current generation. A failed generation
// lookup reports gen -1, which Set refuses.
func (r *Redis) Get(ctx context.Context, key string) (*tripPage, int64, bool) {
	gen, err := r.generation(ctx)
	if err != nil {
		r.logger.WarnContext(ctx, "trip cache generation lookup failed", "error", err)
		return nil, -1, false
	}
	raw, err := r.client.Get(ctx, r.pageKey(gen, key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.WarnContext(ctx, "trip cache read failed", "error", err, "key", key)
		}
		return nil, gen, false
	}
	var page tripPage
	if err := json.Unmarshal(raw, &page); err != nil {
		r.logger.WarnContext(ctx, "trip cache entry corrupt", "error", err, "key", key)
		return nil, gen, false
	}
	return &page, gen, true
}

// Set writes the page under gen, the generation Get observed. After an
// Invalidate that key is no longer read, so a page loaded before the bump never
// becomes visible.
func (r *Redis) Set(ctx context.Context, gen int64, key string, page *tripPage) {
	if gen < 0 {
		return
	}
	raw, err := json.Marshal(page)
	if err != nil {
		r.logger.WarnContext(ctx, "trip cache encode failed", "error", err, "key", key)
		return
	}
	if err := r.client.Set(ctx, r.pageKey(gen, key), raw, r.ttl).Err(); err != nil {
		r.logger.WarnContext(ctx, "trip cache write failed", "error", err, "key", key)
	}
}

func (r *Redis) Invalidate(ctx context.Context) {
	if err := r.client.Incr(ctx, r.prefix+generationKey).Err(); err != nil {
		r.logger.WarnContext(ctx, "trip cache invalidation failed", "error", err)
	}
}

func (r *Redis) generation(ctx context.Context) (int64, error) {
	gen, err := r.client.Get(ctx, r.prefix+generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (r *Redis) pageKey(gen int64, key string) string {
	return r.prefix + ":g" + strconv.FormatInt(gen, 10) + ":" + key
}
