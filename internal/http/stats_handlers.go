package http

import (
	"net/http"

	"call-monitor/internal/models"
	"call-monitor/internal/monitors"
)

// ActiveUsersResponse reports the number of distinct users with at least one
// call in the window.
type ActiveUsersResponse struct {
	ActiveUsers int `json:"activeUsers"`
}

type activeUsersHandler struct {
	statsService monitors.StatsService
	daily        bool
}

// NewActiveUsersLastHourHandler serves GET /stats/active_users/hour from the
// snapshot's cached hourly view.
func NewActiveUsersLastHourHandler(statsService monitors.StatsService) AppHttpHandler {
	return &activeUsersHandler{statsService: statsService}
}

// NewActiveUsersLastDayHandler serves GET /stats/active_users/day from the
// snapshot's cached daily view.
func NewActiveUsersLastDayHandler(statsService monitors.StatsService) AppHttpHandler {
	return &activeUsersHandler{statsService: statsService, daily: true}
}

func (h *activeUsersHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	count := h.statsService.ActiveUsersLastHour()
	if h.daily {
		count = h.statsService.ActiveUsersLastDay()
	}
	return respondJSON(w, http.StatusOK, ActiveUsersResponse{ActiveUsers: count})
}

// UserStatsResponse maps user identifiers to their in-window call stats.
type UserStatsResponse struct {
	Users map[string]models.UserCallStats `json:"users"`
}

type userStatsHandler struct {
	statsService monitors.StatsService
}

func NewUserStatsHandler(statsService monitors.StatsService) AppHttpHandler {
	return &userStatsHandler{statsService: statsService}
}

// Handle processes GET /stats/users requests. Window and top-K are computed
// on demand from the current snapshot's raw indices.
func (h *userStatsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	query, err := parseStatsQuery(r)
	if err != nil {
		return err
	}

	users := h.statsService.UserStats(query.WindowMinutes, query.TopK, query.TargetModel)
	return respondJSON(w, http.StatusOK, UserStatsResponse{Users: users})
}

// ModelStatsResponse maps model identifiers to in-window call counts.
type ModelStatsResponse struct {
	Models map[string]int64 `json:"models"`
}

type modelStatsHandler struct {
	statsService monitors.StatsService
}

func NewModelStatsHandler(statsService monitors.StatsService) AppHttpHandler {
	return &modelStatsHandler{statsService: statsService}
}

// Handle processes GET /stats/models requests.
func (h *modelStatsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	query, err := parseStatsQuery(r)
	if err != nil {
		return err
	}

	stats := h.statsService.ModelStats(query.WindowMinutes, query.TopK, query.TargetModel)
	return respondJSON(w, http.StatusOK, ModelStatsResponse{Models: stats})
}
