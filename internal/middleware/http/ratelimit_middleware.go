package http

import (
	"math"
	"net/http"
	"strconv"

	"estate_erp/internal/limiter"
	"estate_erp/internal/service"

	"go.uber.org/zap"
)

// CreateRateLimitMiddleware builds a per-actor rate limit for policyName. It must run after ActorMiddleware.
// Redis outages fail open.
func CreateRateLimitMiddleware(limiterManager *limiter.Manager, policyName string, logger *zap.Logger) func(http.Handler) http.Handler {
	l := limiterManager.Get(policyName)
	logger = logger.Named("RateLimit").With(zap.String("policy", policyName))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid, ok := service.ActorFromContext(r.Context())
			if !ok {
				service.WriteHttpError(w, http.StatusUnauthorized, "Unauthorized: User ID not found in context.")
				return
			}

			d, err := l.Allow(r.Context(), uid.Hex())
			if err != nil {
				logger.Warn("rate limit check failed, letting request through", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.Limit()))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			if !d.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(d.ResetIn.Seconds()))))
				service.WriteHttpError(w, http.StatusTooManyRequests, "Too Many Requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
