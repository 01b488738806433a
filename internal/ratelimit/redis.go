// Package ratelimit throttles credential-guessing against the auth
// operations with a Redis fixed-window counter. The limiter fails open:
// a missing or unreachable Redis never blocks a legitimate request.
package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const fixedWindowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

// RedisLimiter is a fixed-window counter backed by Redis.
type RedisLimiter struct {
	client *redis.Client
	script *redis.Script
}

// NewRedisLimiter returns a limiter over client, or nil if client is nil.
// A nil *RedisLimiter is valid and allows everything.
func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	if client == nil {
		return nil
	}
	return &RedisLimiter{
		client: client,
		script: redis.NewScript(fixedWindowScript),
	}
}

// Allow reports whether one more hit on key fits inside the window.
// The counter and its expiry are updated atomically in a Lua script so
// concurrent callers cannot race past the limit.
func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) bool {
	if l == nil || l.client == nil {
		return true
	}
	if key == "" || limit <= 0 || window <= 0 {
		return true
	}
	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}
	ctx, cancel := context.WithTimeout(ctx, 250*time.Millisecond)
	defer cancel()
	allowed, err := l.script.Run(ctx, l.client, []string{key}, ttl, limit).Int64()
	if err != nil {
		return true
	}
	return allowed == 1
}
