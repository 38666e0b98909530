package monitors

import (
	"time"

	"call-monitor/internal/models"
)

// StatsService answers stats queries against the current snapshot. The
// hour/day active-user counts come from the snapshot's cached views; ad hoc
// window and top-K queries are recomputed from the raw indices at query
// time. Every method reads the snapshot pointer exactly once, so a query's
// result is always consistent with a single cycle's data.
//
//go:generate mockgen -source=stats_service.go -destination=./mocks/stats_service_mock.go -package=mocks
type StatsService interface {
	// ModelStats returns in-window call counts per model. topK <= 0 means no
	// cap; targetModel == "" means all models.
	ModelStats(windowMinutes, topK int, targetModel string) map[string]int64

	// UserStats returns in-window per-user call stats; users with zero calls
	// are excluded.
	UserStats(windowMinutes, topK int, targetModel string) map[string]models.UserCallStats

	// ActiveUsers returns the number of users with at least one call in the
	// trailing window.
	ActiveUsers(windowMinutes int) int

	// ActiveUsersLastHour and ActiveUsersLastDay read the snapshot's cached
	// views instead of recomputing.
	ActiveUsersLastHour() int
	ActiveUsersLastDay() int
}

type statsService struct {
	holder *SnapshotHolder
	now    func() time.Time
}

func NewStatsService(holder *SnapshotHolder) StatsService {
	return &statsService{holder: holder, now: time.Now}
}

func (s *statsService) ModelStats(windowMinutes, topK int, targetModel string) map[string]int64 {
	snapshot := s.holder.Current()
	return modelCallStats(snapshot.ModelIndex, s.now(), windowMinutes, topK, targetModel)
}

func (s *statsService) UserStats(windowMinutes, topK int, targetModel string) map[string]models.UserCallStats {
	snapshot := s.holder.Current()
	return userCallStats(snapshot.UserIndex, s.now(), windowMinutes, topK, targetModel)
}

func (s *statsService) ActiveUsers(windowMinutes int) int {
	snapshot := s.holder.Current()
	return len(userCallStats(snapshot.UserIndex, s.now(), windowMinutes, 0, ""))
}

func (s *statsService) ActiveUsersLastHour() int {
	return len(s.holder.Current().UserStatsHour)
}

func (s *statsService) ActiveUsersLastDay() int {
	return len(s.holder.Current().UserStatsDay)
}
