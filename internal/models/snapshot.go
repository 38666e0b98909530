package models

import "time"

// Snapshot is the complete aggregation state produced by one refresh cycle:
// the raw per-model and per-user indices plus the four derived views cached
// for cheap repeated reads (hour and day windows, no top-K cap).
//
// A Snapshot is built wholly before publication and is immutable afterwards.
// All fields come from the same cycle's scan; hour/day views are never mixed
// across cycles. Readers hold one Snapshot instance for the duration of
// their computation and never lock it.
type Snapshot struct {
	CycleID string
	BuiltAt time.Time

	ModelIndex ModelIndex
	UserIndex  UserIndex

	ModelStatsHour map[string]int64
	ModelStatsDay  map[string]int64
	UserStatsHour  map[string]UserCallStats
	UserStatsDay   map[string]UserCallStats
}

// NewEmptySnapshot returns the snapshot the process starts with, before the
// first refresh cycle completes. Every query against it reports zero
// activity and no limit reached.
func NewEmptySnapshot() *Snapshot {
	return &Snapshot{
		ModelIndex:     make(ModelIndex),
		UserIndex:      make(UserIndex),
		ModelStatsHour: make(map[string]int64),
		ModelStatsDay:  make(map[string]int64),
		UserStatsHour:  make(map[string]UserCallStats),
		UserStatsDay:   make(map[string]UserCallStats),
	}
}
