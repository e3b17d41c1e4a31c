package middleware

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// ======================================================
// IN-PROCESS (token bucket per key)
// ======================================================

type MemoryLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func NewMemoryLimiter(rps float64, burst int) *MemoryLimiter {
	return &MemoryLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow(), nil
}

// ======================================================
// REDIS (fixed window shared by all instances)
// ======================================================

type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRedisLimiter allows rps*window requests per key and window. The burst
// is added on top so short spikes behave like the in-process limiter.
func NewRedisLimiter(client *redis.Client, rps float64, burst int) *RedisLimiter {
	window := time.Second
	return &RedisLimiter{
		client: client,
		limit:  int64(math.Ceil(rps*window.Seconds())) + int64(burst),
		window: window,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	slot := time.Now().UnixNano() / int64(l.window)
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, slot)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, 2*l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return incr.Val() <= l.limit, nil
}

// ======================================================
// MIDDLEWARE
// ======================================================

// RateLimit rejects clients over their quota with 429. Limiter failures
// let the request through.
func RateLimit(limiter Limiter, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn("rate limiter unavailable",
				zap.String("request_id", c.GetString(ContextRequestID)),
				zap.Error(err),
			)
			c.Next()
			return
		}

		if !allowed {
			httperr.TooManyRequests(c, "rate_limited", "too many requests")
			c.Abort()
			return
		}

		c.Next()
	}
}
