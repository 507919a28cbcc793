package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const defaultRateLimitWindow = 30 * time.Minute

// RateLimitStore is the slice of the Redis API the limiter needs; *redis.Client
// satisfies it.
type RateLimitStore interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd
}

// RateLimit applies a fixed-window request limit per client IP, backed by
// Redis so the count survives restarts and is shared across replicas.
// Key format: ratelimit:<ip>:<window_start_unix>
//
// Windows are aligned to whole seconds; anything shorter than a second falls
// back to the default window. The limiter fails open: if Redis is unreachable
// the request proceeds and the error is logged, so an infrastructure outage
// never locks everyone out.
func RateLimit(store RateLimitStore, max int64, window time.Duration, log zerolog.Logger) echo.MiddlewareFunc {
	if window < time.Second {
		window = defaultRateLimitWindow
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			now := time.Now().Unix()
			windowStart := now - now%int64(window.Seconds())
			key := fmt.Sprintf("ratelimit:%s:%d", c.RealIP(), windowStart)

			count, err := store.Incr(ctx, key).Result()
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable, letting request through")
				return next(c)
			}
			if count == 1 {
				if err := store.Expire(ctx, key, window).Err(); err != nil {
					log.Warn().Err(err).Msg("failed to set rate limit key expiry")
				}
			}

			if count > max {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, please try again later")
			}
			return next(c)
		}
	}
}
