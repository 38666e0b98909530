package stores

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

var (
	ErrSourceUnavailable = errors.New("log source unavailable")
	ErrLogFileNotFound   = errors.New("log file not found")
)

// LogFile describes one candidate log file within a source directory.
type LogFile struct {
	Path    string
	ModTime time.Time
}

// CallLogStore provides read access to the per-server call log directories
// maintained by the external log producers. The store never writes: log
// files are append-only and owned by the producers.
//
//go:generate mockgen -source=call_log_store.go -destination=./mocks/call_log_store_mock.go -package=mocks
type CallLogStore interface {
	// ListRecent returns up to n log files under sourceDir, most recently
	// modified first. It returns ErrSourceUnavailable when the directory is
	// missing or unreadable; the caller treats that as zero files from this
	// source for the cycle.
	ListRecent(ctx context.Context, sourceDir string, n int) ([]LogFile, error)

	// Open opens one log file for reading. The caller owns the ReadCloser.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

type callLogStore struct{}

func NewCallLogStore() CallLogStore {
	return &callLogStore{}
}

func (s *callLogStore) ListRecent(_ context.Context, sourceDir string, n int) ([]LogFile, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, sourceDir, err)
	}

	var files []LogFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// File vanished between ReadDir and Stat; skip it.
			continue
		}
		files = append(files, LogFile{
			Path:    filepath.Join(sourceDir, entry.Name()),
			ModTime: info.ModTime(),
		})
	}

	// Most recent first; equal mtimes fall back to name order so the
	// selection stays deterministic.
	sort.Slice(files, func(i, j int) bool {
		if !files[i].ModTime.Equal(files[j].ModTime) {
			return files[i].ModTime.After(files[j].ModTime)
		}
		return files[i].Path > files[j].Path
	})

	if n > 0 && len(files) > n {
		files = files[:n]
	}
	return files, nil
}

func (s *callLogStore) Open(_ context.Context, path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrLogFileNotFound, path)
		}
		return nil, err
	}
	return file, nil
}
