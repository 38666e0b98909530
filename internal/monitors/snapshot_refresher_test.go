package monitors

import (
	"context"
	"testing"
	"time"

	"call-monitor/internal/shared/loggers"
	"call-monitor/internal/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRefresher(t *testing.T, sources []string, holder *SnapshotHolder) *snapshotRefresher {
	t.Helper()
	logger, err := loggers.New("error")
	require.NoError(t, err)
	scanner := NewLogScanner(stores.NewCallLogStore(), sources, 2)
	return NewSnapshotRefresher(scanner, holder, time.Hour, logger).(*snapshotRefresher)
}

func TestSnapshotRefresher_EndToEndCycle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	now := time.Now()

	// Older file from a previous day, and a fresh file with one chat record
	// plus one non-chat record that must be ignored.
	writeLogFile(t, dir, "old.json",
		chatLine("m-old", "u9", epochSeconds(now.Add(-30*time.Hour))),
		now.Add(-30*time.Hour))
	writeLogFile(t, dir, "new.json",
		chatLine("m1", "u1", epochSeconds(now.Add(-10*time.Second)))+
			`{"type":"vote","model":"m1","ip":"u1","tstamp":`+"1756200000}\n",
		now)

	holder := NewSnapshotHolder()
	refresher := newTestRefresher(t, []string{dir}, holder)

	refresher.runCycle(context.Background())

	snapshot := holder.Current()
	assert.NotEmpty(t, snapshot.CycleID)
	assert.Equal(t, map[string]int64{"m1": 1}, snapshot.ModelStatsHour)
	assert.Len(t, snapshot.UserStatsHour, 1, "one active user in the last hour")
	assert.Contains(t, snapshot.UserStatsDay, "u1")
	assert.NotContains(t, snapshot.UserStatsHour, "u9", "30h-old event is outside both windows")
	assert.NotContains(t, snapshot.UserStatsDay, "u9")
}

func TestSnapshotRefresher_CycleReplacesPreviousAggregate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	now := time.Now()
	writeLogFile(t, dir, "a.json", chatLine("m1", "u1", epochSeconds(now)), now)

	holder := NewSnapshotHolder()
	refresher := newTestRefresher(t, []string{dir}, holder)

	refresher.runCycle(context.Background())
	require.Equal(t, map[string]int64{"m1": 1}, holder.Current().ModelStatsHour)

	// Rewrite the source: the next cycle's aggregate is built from scratch,
	// not merged with the previous one.
	writeLogFile(t, dir, "a.json", chatLine("m2", "u2", epochSeconds(now)), now)

	refresher.runCycle(context.Background())
	snapshot := holder.Current()
	assert.Equal(t, map[string]int64{"m2": 1}, snapshot.ModelStatsHour)
	assert.NotContains(t, snapshot.ModelIndex, "m1")
}

func TestSnapshotRefresher_ReaderSeesOneGenerationDuringSwap(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	now := time.Now()
	writeLogFile(t, dir, "a.json", chatLine("m1", "u1", epochSeconds(now)), now)

	holder := NewSnapshotHolder()
	refresher := newTestRefresher(t, []string{dir}, holder)
	refresher.runCycle(context.Background())

	// A reader holds the snapshot it started with; a swap mid-computation
	// cannot mix generations into its view.
	reader := holder.Current()
	firstCycle := reader.CycleID

	writeLogFile(t, dir, "a.json", chatLine("m2", "u2", epochSeconds(now)), now)
	refresher.runCycle(context.Background())

	assert.Equal(t, firstCycle, reader.CycleID)
	assert.Equal(t, map[string]int64{"m1": 1}, reader.ModelStatsHour)
	assert.NotEqual(t, firstCycle, holder.Current().CycleID, "new readers see the new generation")
}

func TestSnapshotRefresher_StartStop(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	now := time.Now()
	writeLogFile(t, dir, "a.json", chatLine("m1", "u1", epochSeconds(now)), now)

	holder := NewSnapshotHolder()
	logger, err := loggers.New("error")
	require.NoError(t, err)
	scanner := NewLogScanner(stores.NewCallLogStore(), []string{dir}, 2)
	refresher := NewSnapshotRefresher(scanner, holder, 10*time.Millisecond, logger)

	refresher.Start(context.Background())

	// The first cycle runs immediately; wait for it to publish.
	assert.Eventually(t, func() bool {
		return holder.Current().CycleID != ""
	}, 2*time.Second, 5*time.Millisecond)

	refresher.Stop()
	refresher.Stop() // idempotent
}

func TestSnapshotHolder_StartsEmpty(t *testing.T) {
	t.Parallel()

	holder := NewSnapshotHolder()
	snapshot := holder.Current()
	require.NotNil(t, snapshot)
	assert.Empty(t, snapshot.ModelIndex)
	assert.Empty(t, snapshot.UserStatsDay)
}
