package http

import (
	"net/http"

	"estate_erp/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActorHeader carries the authenticated user's id, set by the upstream gateway.
const ActorHeader = "X-User-Id"

// ActorMiddleware requires ActorHeader and stores the parsed id on the request context.
type ActorMiddleware func(http.Handler) http.Handler

func NewActorMiddleware() ActorMiddleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(ActorHeader)
			if raw == "" {
				service.WriteHttpError(w, http.StatusUnauthorized, "Unauthorized: Missing X-User-Id header")
				return
			}
			uid, err := primitive.ObjectIDFromHex(raw)
			if err != nil || uid.IsZero() {
				service.WriteHttpError(w, http.StatusUnauthorized, "Unauthorized: Invalid X-User-Id header")
				return
			}

			next.ServeHTTP(w, r.WithContext(service.WithActor(r.Context(), uid)))
		})
	}
}
