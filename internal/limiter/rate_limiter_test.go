package limiter

import (
	"context"
	"testing"
	"time"

	"estate_erp/internal/conf"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisRateLimiter_FixedWindow(t *testing.T) {
	mr, client := setupTestRedis(t)
	l := NewRedisRateLimiter(client, "estate_erp:test:", DestructivePolicy, 2, time.Minute)
	ctx := context.Background()

	d, err := l.Allow(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, d.Remaining)

	d, err = l.Allow(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)

	d, err = l.Allow(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Greater(t, d.ResetIn, time.Duration(0))
	assert.LessOrEqual(t, d.ResetIn, time.Minute)

	// other actors have their own window
	d, err = l.Allow(ctx, "user-2")
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	assert.True(t, mr.Exists("estate_erp:test:ratelimit:destructive:user-1"))

	mr.FastForward(time.Minute + time.Second)
	d, err = l.Allow(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestRedisRateLimiter_RedisDown(t *testing.T) {
	mr, client := setupTestRedis(t)
	l := NewRedisRateLimiter(client, "ns:", DefaultPolicy, 1, time.Second)
	mr.Close()

	_, err := l.Allow(context.Background(), "user-1")
	assert.Error(t, err)
}

func TestNewManager(t *testing.T) {
	_, client := setupTestRedis(t)

	m, err := NewManager(&conf.RateLimiterConfig{
		Default: conf.RateLimiterPolicy{Interval: "1s", Limit: 20},
		Policies: map[string]conf.RateLimiterPolicy{
			DestructivePolicy: {Interval: "1m", Limit: 5},
		},
	}, client, "ns:")
	require.NoError(t, err)
	assert.Equal(t, 5, m.Get(DestructivePolicy).Limit())
	assert.Equal(t, 20, m.Get("unknown").Limit())

	cases := []struct {
		name string
		cfg  *conf.RateLimiterConfig
	}{
		{"nil config", nil},
		{"zero limit", &conf.RateLimiterConfig{Default: conf.RateLimiterPolicy{Interval: "1s"}}},
		{"bad interval", &conf.RateLimiterConfig{Default: conf.RateLimiterPolicy{Interval: "soon", Limit: 1}}},
		{"bad policy", &conf.RateLimiterConfig{
			Default:  conf.RateLimiterPolicy{Interval: "1s", Limit: 1},
			Policies: map[string]conf.RateLimiterPolicy{"x": {Interval: "0s", Limit: 1}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewManager(tc.cfg, client, "ns:")
			assert.Error(t, err)
		})
	}
}
