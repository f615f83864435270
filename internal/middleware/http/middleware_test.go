package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"estate_erp/internal/conf"
	"estate_erp/internal/limiter"
	"estate_erp/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestActorMiddleware(t *testing.T) {
	var seen primitive.ObjectID
	h := NewActorMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = service.ActorFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	uid := primitive.NewObjectID()
	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", uid.Hex(), http.StatusNoContent},
		{"missing", "", http.StatusUnauthorized},
		{"malformed", "not-an-id", http.StatusUnauthorized},
		{"zero", primitive.NilObjectID.Hex(), http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/buildings/x", nil)
			if tc.header != "" {
				req.Header.Set(ActorHeader, tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
	assert.Equal(t, uid, seen)
}

func TestRateLimitMiddleware(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	m, err := limiter.NewManager(&conf.RateLimiterConfig{
		Default: conf.RateLimiterPolicy{Interval: "1s", Limit: 100},
		Policies: map[string]conf.RateLimiterPolicy{
			limiter.DestructivePolicy: {Interval: "1m", Limit: 1},
		},
	}, client, "test:")
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := NewActorMiddleware()(CreateRateLimitMiddleware(m, limiter.DestructivePolicy, zap.NewNop())(next))

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/units/x", nil)
		req.Header.Set(ActorHeader, "65f0a0a0a0a0a0a0a0a0a0a0")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do().Code)
	rec := do()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// redis outage fails open
	mr.Close()
	assert.Equal(t, http.StatusOK, do().Code)
}
