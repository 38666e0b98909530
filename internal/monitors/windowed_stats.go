package monitors

import (
	"sort"
	"time"

	"call-monitor/internal/models"
)

const (
	WindowHourMinutes = 60
	WindowDayMinutes  = 24 * 60
)

// modelCallStats counts in-window calls per model from a fixed ModelIndex.
// An event qualifies when its timestamp is at or after now minus the window.
// Models with zero qualifying calls are omitted. topK <= 0 means no cap;
// targetModel == "" means all models. Ranking is by count descending with
// model name ascending as the tie-break, so results are deterministic.
func modelCallStats(idx models.ModelIndex, now time.Time, windowMinutes int, topK int, targetModel string) map[string]int64 {
	cutoff := epochSeconds(now) - float64(windowMinutes)*60

	stats := make(map[string]int64)
	for model, calls := range idx {
		if targetModel != "" && model != targetModel {
			continue
		}
		var count int64
		for _, call := range calls {
			if call.Tstamp >= cutoff {
				count++
			}
		}
		if count > 0 {
			stats[model] = count
		}
	}

	if topK > 0 && len(stats) > topK {
		stats = keepTopModels(stats, topK)
	}
	return stats
}

// userCallStats builds per-user stats from a fixed UserIndex, restricted to
// the window and, when targetModel is set, to that model. Users whose total
// is zero are excluded entirely. topK caps the result by TotalCalls.
func userCallStats(idx models.UserIndex, now time.Time, windowMinutes int, topK int, targetModel string) map[string]models.UserCallStats {
	cutoff := epochSeconds(now) - float64(windowMinutes)*60

	stats := make(map[string]models.UserCallStats)
	for userID, calls := range idx {
		callsByModel := make(map[string]int64)
		var total int64
		for _, call := range calls {
			if call.Tstamp < cutoff {
				continue
			}
			if targetModel != "" && call.Model != targetModel {
				continue
			}
			callsByModel[call.Model]++
			total++
		}
		if total > 0 {
			stats[userID] = models.UserCallStats{CallsByModel: callsByModel, TotalCalls: total}
		}
	}

	if topK > 0 && len(stats) > topK {
		stats = keepTopUsers(stats, topK)
	}
	return stats
}

func keepTopModels(stats map[string]int64, topK int) map[string]int64 {
	names := sortedKeysByCount(stats, func(name string) int64 { return stats[name] })
	top := make(map[string]int64, topK)
	for _, name := range names[:topK] {
		top[name] = stats[name]
	}
	return top
}

func keepTopUsers(stats map[string]models.UserCallStats, topK int) map[string]models.UserCallStats {
	names := sortedKeysByCount(stats, func(name string) int64 { return stats[name].TotalCalls })
	top := make(map[string]models.UserCallStats, topK)
	for _, name := range names[:topK] {
		top[name] = stats[name]
	}
	return top
}

// sortedKeysByCount orders keys by count descending, name ascending on ties.
func sortedKeysByCount[V any](m map[string]V, count func(string) int64) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ci, cj := count(names[i]), count(names[j])
		if ci != cj {
			return ci > cj
		}
		return names[i] < names[j]
	})
	return names
}

func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
