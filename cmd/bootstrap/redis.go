package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/handler/middleware"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/ratelimit"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewRateLimiter,
	),
)

// NewRedisClient returns nil when no address is configured.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		slog.Info("redis not configured, rate limiting disabled")
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
			}
			slog.Info("redis connected", "addr", cfg.Redis.Addr)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}

// NewRateLimiter yields a nil interface when limiting is off so the middleware passes through.
func NewRateLimiter(cfg config.Config, rdb *redis.Client) middleware.RateLimiter {
	if rdb == nil || !cfg.RateLimit.Enabled {
		return nil
	}
	return ratelimit.NewRedisLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window, cfg.RateLimit.KeyPrefix)
}
