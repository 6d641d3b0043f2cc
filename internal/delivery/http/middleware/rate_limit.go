package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"portfolio-contact-backend/internal/delivery/http/response"
	"portfolio-contact-backend/pkg/logger"
	"portfolio-contact-backend/pkg/security"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis
	KeyPrefix string
	// Whether to fail closed (reject) when Redis is unavailable
	FailClosed bool
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	count   int
	resetAt time.Time
	mu      sync.Mutex
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// RateLimiter counts requests in Redis when a client is given, in memory otherwise.
// Stop ends the in-memory cleanup loop.
type RateLimiter struct {
	redis       *goredis.Client
	store       sync.Map
	cleanupOnce sync.Once
	stopOnce    sync.Once
	stop        chan struct{}
	done        chan struct{}
}

func NewRateLimiter(client *goredis.Client) *RateLimiter {
	return &RateLimiter{
		redis: client,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Stop terminates the background cleanup. It is safe to call more than once.
func (l *RateLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// DefaultRateLimitConfig returns the global per-IP limit
func DefaultRateLimitConfig(limit int) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     1 * time.Minute,
		KeyPrefix:  "rl:ip:",
		FailClosed: false, // Fail open by default for availability
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// ContactRateLimitConfig returns the stricter limit for contact form submissions.
// Each accepted submission costs two or three provider calls.
func ContactRateLimitConfig(perMinute int) RateLimitConfig {
	return RateLimitConfig{
		Limit:      perMinute,
		Window:     1 * time.Minute,
		KeyPrefix:  "rl:contact:",
		FailClosed: false,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// startCleanup runs a background goroutine to clean up expired entries
func (l *RateLimiter) startCleanup() {
	go func() {
		defer close(l.done)
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-l.stop:
				return
			case now := <-ticker.C:
				l.store.Range(func(key, value interface{}) bool {
					entry := value.(*rateLimitEntry)
					entry.mu.Lock()
					if now.After(entry.resetAt) {
						l.store.Delete(key)
					}
					entry.mu.Unlock()
					return true
				})
			}
		}
	}()
}

// Middleware creates a rate limiting middleware with the given config
func (l *RateLimiter) Middleware(config RateLimitConfig) gin.HandlerFunc {
	l.cleanupOnce.Do(l.startCleanup)

	return func(c *gin.Context) {
		fullKey := config.KeyPrefix + config.KeyFunc(c)
		now := time.Now()

		var count int
		var resetAt time.Time

		if l.redis != nil {
			var err error
			count, resetAt, err = checkRateLimitRedis(c.Request.Context(), l.redis, fullKey, config)
			if err != nil {
				logger.Log.Warn("Rate limit backend error", "key_prefix", config.KeyPrefix, "error", err)
				if config.FailClosed {
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
					c.Abort()
					return
				}
				count, resetAt = l.checkInMemory(fullKey, config, now)
			}
		} else {
			count, resetAt = l.checkInMemory(fullKey, config, now)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}

			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Info("Rate limit triggered", "client", security.HashValue(c.ClientIP()), "path", c.FullPath())

			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(config.Limit-count))
		c.Next()
	}
}

// checkRateLimitRedis checks rate limit using Redis with atomic Lua script
func checkRateLimitRedis(ctx context.Context, client *goredis.Client, key string, config RateLimitConfig) (int, time.Time, error) {
	ttlSeconds := int(config.Window.Seconds())

	result, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

// checkInMemory checks rate limit using the in-memory store (fallback)
func (l *RateLimiter) checkInMemory(key string, config RateLimitConfig, now time.Time) (int, time.Time) {
	entryI, _ := l.store.LoadOrStore(key, &rateLimitEntry{
		resetAt: now.Add(config.Window),
	})
	entry := entryI.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(config.Window)
	}

	entry.count++

	return entry.count, entry.resetAt
}
