package limiter

import (
	"fmt"
	"time"

	"estate_erp/internal/conf"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultPolicy     = "default"
	DestructivePolicy = "destructive"
)

// Manager holds the configured limiters by policy name.
type Manager struct {
	limiters map[string]*RedisRateLimiter
}

// NewManager builds a limiter for the default policy and each named policy.
func NewManager(cfg *conf.RateLimiterConfig, client *redis.Client, ns Namespace) (*Manager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("rate limiter config is nil")
	}

	build := func(name string, policy conf.RateLimiterPolicy) (*RedisRateLimiter, error) {
		if policy.Limit <= 0 {
			return nil, fmt.Errorf("policy limit must be positive")
		}
		window, err := time.ParseDuration(policy.Interval)
		if err != nil {
			return nil, fmt.Errorf("invalid policy interval format: %w", err)
		}
		if window < time.Millisecond {
			return nil, fmt.Errorf("policy interval must be at least 1ms")
		}
		return NewRedisRateLimiter(client, ns, name, policy.Limit, window), nil
	}

	limiters := make(map[string]*RedisRateLimiter, len(cfg.Policies)+1)
	def, err := build(DefaultPolicy, cfg.Default)
	if err != nil {
		return nil, fmt.Errorf("failed to create default rate limiter: %w", err)
	}
	limiters[DefaultPolicy] = def

	for name, policy := range cfg.Policies {
		l, err := build(name, policy)
		if err != nil {
			return nil, fmt.Errorf("failed to create policy '%s': %w", name, err)
		}
		limiters[name] = l
	}
	return &Manager{limiters: limiters}, nil
}

// Get returns the named limiter, or the default one when name is unknown.
func (m *Manager) Get(name string) *RedisRateLimiter {
	if l, ok := m.limiters[name]; ok {
		return l
	}
	return m.limiters[DefaultPolicy]
}
