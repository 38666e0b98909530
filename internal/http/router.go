package http

import (
	"net/http"

	"call-monitor/internal/monitors"
	"call-monitor/internal/quotas"
	"call-monitor/internal/shared/loggers"
	"call-monitor/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router for the query interface.
func NewRouter(quotaService quotas.QuotaService, statsService monitors.StatsService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	getModelLimitHandler := NewGetModelLimitHandler(quotaService)
	setModelLimitHandler := NewSetModelLimitHandler(quotaService)
	limitCheckHandler := NewLimitCheckHandler(quotaService)
	activeUsersHourHandler := NewActiveUsersLastHourHandler(statsService)
	activeUsersDayHandler := NewActiveUsersLastDayHandler(statsService)
	userStatsHandler := NewUserStatsHandler(statsService)
	modelStatsHandler := NewModelStatsHandler(statsService)

	// Routes
	router.Get("/models/{model}/limit", errorHandlingAdapter(getModelLimitHandler))
	router.Put("/models/{model}/limit", errorHandlingAdapter(setModelLimitHandler))
	router.Get("/limits/check", errorHandlingAdapter(limitCheckHandler))
	router.Get("/stats/active_users/hour", errorHandlingAdapter(activeUsersHourHandler))
	router.Get("/stats/active_users/day", errorHandlingAdapter(activeUsersDayHandler))
	router.Get("/stats/users", errorHandlingAdapter(userStatsHandler))
	router.Get("/stats/models", errorHandlingAdapter(modelStatsHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
