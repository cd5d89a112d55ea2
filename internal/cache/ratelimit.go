package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bizmatchke/bizmatchke/internal/ratelimit"
)

// rateLimitPrefix is the Redis key prefix for fixed-window counters.
const rateLimitPrefix = "ratelimit:ip:"

// fixedWindowScript increments the counter for a window atomically,
// setting the expiry when the window opens.
var fixedWindowScript = redis.NewScript(`
	local key = KEYS[1]
	local window_ms = tonumber(ARGV[1])

	local count = redis.call('INCR', key)
	if count == 1 then
		redis.call('PEXPIRE', key, window_ms)
	end

	local ttl = redis.call('PTTL', key)
	return {count, ttl}
`)

// Allow implements ratelimit.Store using a shared fixed-window counter.
// Client keys are hashed so raw addresses are never stored in Redis.
func (c *Cache) Allow(ctx context.Context, key string, limit int, window time.Duration) (ratelimit.Result, error) {
	redisKey := rateLimitPrefix + hashKey(key)

	values, err := fixedWindowScript.Run(ctx, c.client, []string{redisKey}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return ratelimit.Result{}, fmt.Errorf("rate limit check: %w", err)
	}

	count := int(values[0])
	ttl := time.Duration(values[1]) * time.Millisecond
	resetAt := time.Now().Add(ttl)

	if count > limit {
		return ratelimit.Result{
			Allowed:    false,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: ttl,
		}, nil
	}

	return ratelimit.Result{
		Allowed:   true,
		Remaining: limit - count,
		ResetAt:   resetAt,
	}, nil
}

// hashKey creates a truncated SHA256 hash of a client key.
func hashKey(key string) string {
	hash := sha256.Sum256([]byte(key))
	return hex.EncodeToString(hash[:8])
}
