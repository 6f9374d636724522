package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RateLimiter counts requests per client key in fixed windows
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// redisLimiter implements fixed-window counting with INCR and EXPIRE. The
// expiry is set only on the first hit of a window so the window boundary
// stays put.
type redisLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.client.Incr(ctx, "ratelimit:"+key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := l.client.Expire(ctx, "ratelimit:"+key, l.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(l.max), nil
}

// memoryLimiter is the in-process fallback when no Redis is configured. Each
// key gets its own window starting at its first hit, matching the Redis
// limiter's per-key expiry.
type memoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*memoryWindow
	max     int
	window  time.Duration
}

type memoryWindow struct {
	count   int
	resetAt time.Time
}

func (l *memoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &memoryWindow{resetAt: now.Add(l.window)}
		l.windows[key] = w
	}
	w.count++
	return w.count <= l.max, nil
}

// NewRateLimiter builds a Redis-backed limiter when cfg.RedisURL is set and
// an in-memory one otherwise.
func NewRateLimiter(cfg *config.Config) RateLimiter {
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err == nil {
			return &redisLimiter{
				client: redis.NewClient(opts),
				max:    cfg.RateLimitMax,
				window: cfg.RateLimitWindow(),
			}
		}
		logrus.WithError(err).Warn("Invalid REDIS_URL, falling back to in-memory rate limiting")
	}
	return &memoryLimiter{
		windows: make(map[string]*memoryWindow),
		max:     cfg.RateLimitMax,
		window:  cfg.RateLimitWindow(),
	}
}

// RateLimit rejects clients that exceed the per-IP ceiling with 429. Limiter
// errors fail open so a Redis outage does not take the API down.
func RateLimit(limiter RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logrus.WithError(err).Warn("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
