package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Namespace prefixes every limiter key, e.g. "estate_erp:prod:".
type Namespace string

// fixedWindowScript counts a hit and arms the window expiry on the first hit.
// It returns the hit count and the remaining window in milliseconds.
const fixedWindowScript = `
local hits = redis.call("INCR", KEYS[1])
if hits == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {hits, ttl}
`

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
}

// RedisRateLimiter is a distributed fixed-window limiter. All replicas sharing the Redis
// instance share the same windows.
type RedisRateLimiter struct {
	client    redis.Scripter
	namespace Namespace
	policy    string
	limit     int
	window    time.Duration
	script    *redis.Script
}

func NewRedisRateLimiter(client redis.Scripter, ns Namespace, policy string, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client:    client,
		namespace: ns,
		policy:    policy,
		limit:     limit,
		window:    window,
		script:    redis.NewScript(fixedWindowScript),
	}
}

// Allow records one hit for identifier and reports whether it fits in the current window.
func (l *RedisRateLimiter) Allow(ctx context.Context, identifier string) (Decision, error) {
	key := fmt.Sprintf("%sratelimit:%s:%s", l.namespace, l.policy, identifier)

	vals, err := l.script.Run(ctx, l.client, []string{key}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("failed to execute rate limit script: %w", err)
	}
	if len(vals) != 2 {
		return Decision{}, fmt.Errorf("unexpected rate limit script reply: %v", vals)
	}

	hits, ttl := int(vals[0]), time.Duration(vals[1])*time.Millisecond
	remaining := l.limit - hits
	if remaining < 0 {
		remaining = 0
	}
	return Decision{Allowed: hits <= l.limit, Remaining: remaining, ResetIn: ttl}, nil
}

func (l *RedisRateLimiter) Limit() int { return l.limit }
