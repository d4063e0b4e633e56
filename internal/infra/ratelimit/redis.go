// Package ratelimit counts requests per key in fixed windows stored in Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Decision struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

type RedisLimiter struct {
	rdb    redis.Cmdable
	limit  int64
	window time.Duration
	prefix string
}

func NewRedisLimiter(rdb redis.Cmdable, limit int64, window time.Duration, prefix string) *RedisLimiter {
	return &RedisLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		prefix: prefix,
	}
}

// Allow counts one hit for key in the current window. The window starts on
// the first hit and the key expires with it.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	k := fmt.Sprintf("%s:%s", l.prefix, key)

	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.ExpireNX(ctx, k, l.window)
		ttl = pipe.PTTL(ctx, k)
		return nil
	})
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit %s: %w", k, err)
	}

	count := incr.Val()
	remaining := l.limit - count
	if remaining < 0 {
		remaining = 0
	}
	if count <= l.limit {
		return Decision{Allowed: true, Remaining: remaining}, nil
	}

	retry := ttl.Val()
	if retry <= 0 {
		retry = l.window
	}
	return Decision{Allowed: false, Remaining: 0, RetryAfter: retry}, nil
}

func (l *RedisLimiter) Limit() int64 {
	return l.limit
}
