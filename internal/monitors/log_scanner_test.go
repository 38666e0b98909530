package monitors

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"call-monitor/internal/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLogFile(t *testing.T, dir, name, content string, modTime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	require.NoError(t, os.Chtimes(path, modTime, modTime))
	return path
}

func chatLine(model, ip string, tstamp float64) string {
	return fmt.Sprintf(`{"type":"chat","model":%q,"ip":%q,"tstamp":%f}`+"\n", model, ip, tstamp)
}

func TestLogScanner_Scan_BuildsBothIndices(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	now := time.Now()
	ts := epochSeconds(now.Add(-10 * time.Second))

	writeLogFile(t, dir, "2026-08-26-conv.json",
		chatLine("m1", "10.0.0.1", ts)+
			chatLine("m1", "10.0.0.2", ts)+
			chatLine("m2", "10.0.0.1", ts),
		now)

	scanner := NewLogScanner(stores.NewCallLogStore(), []string{dir}, 2)
	result, err := scanner.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, result.Records)
	assert.Equal(t, 1, result.FilesRead)
	assert.Len(t, result.ModelIndex["m1"], 2)
	assert.Len(t, result.ModelIndex["m2"], 1)
	assert.Len(t, result.UserIndex["10.0.0.1"], 2)
	assert.Len(t, result.UserIndex["10.0.0.2"], 1)
	assert.Equal(t, "10.0.0.2", result.ModelIndex["m1"][1].UserID)
	assert.Equal(t, "m2", result.UserIndex["10.0.0.1"][1].Model)
}

func TestLogScanner_Scan_SelectsMostRecentFilesPerSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	now := time.Now()
	ts := epochSeconds(now)

	writeLogFile(t, dir, "day1.json", chatLine("m-old", "u1", ts), now.Add(-72*time.Hour))
	writeLogFile(t, dir, "day2.json", chatLine("m-mid", "u1", ts), now.Add(-48*time.Hour))
	writeLogFile(t, dir, "day3.json", chatLine("m-new", "u1", ts), now)

	scanner := NewLogScanner(stores.NewCallLogStore(), []string{dir}, 2)
	result, err := scanner.Scan(context.Background())
	require.NoError(t, err)

	// Only the two most recently modified files are read.
	assert.Equal(t, 2, result.FilesRead)
	assert.Contains(t, result.ModelIndex, "m-new")
	assert.Contains(t, result.ModelIndex, "m-mid")
	assert.NotContains(t, result.ModelIndex, "m-old")
}

func TestLogScanner_Scan_SkipsMalformedLinesOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	now := time.Now()
	ts := epochSeconds(now)

	content := chatLine("m1", "u1", ts) +
		"this is not json\n" +
		`{"type":"chat","model":"","ip":"u1","tstamp":1}` + "\n" + // missing model
		`{"type":"chat","model":"m1","ip":"u1"}` + "\n" + // missing tstamp
		chatLine("m1", "u2", ts)
	writeLogFile(t, dir, "mixed.json", content, now)

	scanner := NewLogScanner(stores.NewCallLogStore(), []string{dir}, 2)
	result, err := scanner.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Records, "good records around bad lines still count")
	assert.Equal(t, 3, result.ParseErrors)
	assert.Len(t, result.ModelIndex["m1"], 2)
}

func TestLogScanner_Scan_IgnoresNonChatRecords(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	now := time.Now()
	ts := epochSeconds(now)

	content := chatLine("m1", "u1", ts) +
		fmt.Sprintf(`{"type":"vote","model":"m1","ip":"u1","tstamp":%f}`+"\n", ts) +
		fmt.Sprintf(`{"type":"upvote","model":"m1","ip":"u1","tstamp":%f}`+"\n", ts)
	writeLogFile(t, dir, "votes.json", content, now)

	scanner := NewLogScanner(stores.NewCallLogStore(), []string{dir}, 2)
	result, err := scanner.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Records)
	assert.Zero(t, result.ParseErrors, "non-chat records are not parse errors")
}

func TestLogScanner_Scan_MissingSourceDoesNotAbortScan(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	now := time.Now()
	writeLogFile(t, dir, "ok.json", chatLine("m1", "u1", epochSeconds(now)), now)

	missing := filepath.Join(t.TempDir(), "does-not-exist")
	scanner := NewLogScanner(stores.NewCallLogStore(), []string{missing, dir}, 2)

	result, err := scanner.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.SourcesUnavailable)
	assert.Equal(t, 1, result.Records, "healthy sources are still scanned")
}

func TestParseCallRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		line      string
		wantEvent bool
		wantOK    bool
	}{
		{
			name:      "valid chat record",
			line:      `{"type":"chat","model":"m1","ip":"10.0.0.1","tstamp":1756200000.25}`,
			wantEvent: true,
			wantOK:    true,
		},
		{
			name:   "non-chat record",
			line:   `{"type":"share","model":"m1","ip":"10.0.0.1","tstamp":1756200000}`,
			wantOK: true,
		},
		{
			name: "invalid json",
			line: `{"type":"chat",`,
		},
		{
			name: "missing ip",
			line: `{"type":"chat","model":"m1","tstamp":1756200000}`,
		},
		{
			name: "non-positive tstamp",
			line: `{"type":"chat","model":"m1","ip":"10.0.0.1","tstamp":0}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			event, ok := parseCallRecord([]byte(tt.line))
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantEvent {
				require.NotNil(t, event)
				assert.Equal(t, "m1", event.Model)
				assert.Equal(t, "10.0.0.1", event.UserID)
				assert.InDelta(t, 1756200000.25, event.Tstamp, 0.001)
			} else {
				assert.Nil(t, event)
			}
		})
	}
}
