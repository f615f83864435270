package app

import (
	"net/http"

	"estate_erp/internal/limiter"
	http_middleware "estate_erp/internal/middleware/http"
	"estate_erp/internal/service"

	"go.uber.org/zap"
)

// NewHttpHandlerRegister wires the API routes. Mutations need an actor; destructive ones are rate limited.
func NewHttpHandlerRegister(
	actorMiddleware http_middleware.ActorMiddleware,
	limiterManager *limiter.Manager,
	hierarchy *service.HierarchyHandler,
	entities *service.EntityHandler,
	audit *service.AuditHandler,
	logger *zap.Logger,
) HttpHandlerRegister {
	return func(mux *http.ServeMux) {
		destructive := http_middleware.CreateRateLimitMiddleware(limiterManager, limiter.DestructivePolicy, logger)
		mutate := func(h http.HandlerFunc) http.Handler {
			return actorMiddleware(h)
		}
		guarded := func(h http.HandlerFunc) http.Handler {
			return actorMiddleware(destructive(h))
		}

		mux.Handle("POST /api/v1/buildings", mutate(hierarchy.CreateBuilding))
		mux.HandleFunc("GET /api/v1/buildings", hierarchy.ListBuildings)
		mux.HandleFunc("GET /api/v1/buildings/{id}", hierarchy.GetBuilding)
		mux.Handle("POST /api/v1/buildings/{id}/floors", mutate(hierarchy.CreateFloorUnit))
		mux.HandleFunc("GET /api/v1/buildings/{id}/floors", hierarchy.ListFloorUnits)
		mux.Handle("POST /api/v1/floors/{id}/units", mutate(hierarchy.CreatePropertyUnit))
		mux.HandleFunc("GET /api/v1/floors/{id}/units", hierarchy.ListPropertyUnits)
		mux.Handle("PATCH /api/v1/units/{id}/status", mutate(hierarchy.UpdatePropertyUnitStatus))

		mux.Handle("DELETE /api/v1/{entity}/{id}", guarded(entities.Delete))
		mux.Handle("POST /api/v1/{entity}/{id}/restore", guarded(entities.Restore))

		mux.HandleFunc("GET /api/v1/audit-logs", audit.ListAuditLogs)
	}
}
