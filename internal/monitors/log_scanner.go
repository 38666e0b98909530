package monitors

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"

	"call-monitor/internal/models"
	"call-monitor/internal/shared/loggers"
	"call-monitor/internal/stores"
)

const (
	recordTypeChat = "chat"

	// Individual log lines hold one JSON chat record, which can carry full
	// conversation state. Allow generously large lines before giving up.
	maxLineBytes = 4 * 1024 * 1024
)

// ScanResult carries one cycle's freshly built indices plus diagnostic
// counts for logging and metrics.
type ScanResult struct {
	ModelIndex models.ModelIndex
	UserIndex  models.UserIndex

	FilesRead          int
	Records            int
	ParseErrors        int
	SourcesUnavailable int
}

// LogScanner reads the most recent log files of every configured source and
// builds brand-new call indices over exactly those files. Scans are not
// incremental: each scan fully replaces the previous aggregate's scope.
//
//go:generate mockgen -source=log_scanner.go -destination=./mocks/log_scanner_mock.go -package=mocks
type LogScanner interface {
	Scan(ctx context.Context) (*ScanResult, error)
}

type logScanner struct {
	store          stores.CallLogStore
	sources        []string
	filesPerSource int
}

func NewLogScanner(store stores.CallLogStore, sources []string, filesPerSource int) LogScanner {
	return &logScanner{
		store:          store,
		sources:        sources,
		filesPerSource: filesPerSource,
	}
}

// callRecord is the wire shape of one log line. Only "chat" records are
// aggregated; the actor identity is the producer-recorded network address.
type callRecord struct {
	Type   string  `json:"type"`
	Model  string  `json:"model"`
	Tstamp float64 `json:"tstamp"`
	IP     string  `json:"ip"`
}

func (s *logScanner) Scan(ctx context.Context) (*ScanResult, error) {
	logger := loggers.Ctx(ctx)

	result := &ScanResult{
		ModelIndex: make(models.ModelIndex),
		UserIndex:  make(models.UserIndex),
	}

	var files []stores.LogFile
	for _, sourceDir := range s.sources {
		recent, err := s.store.ListRecent(ctx, sourceDir, s.filesPerSource)
		if err != nil {
			// A missing source contributes zero files this cycle; the scan
			// continues with the remaining sources.
			if errors.Is(err, stores.ErrSourceUnavailable) {
				result.SourcesUnavailable++
				metricSourceUnavailableTotal.WithLabelValues(sourceDir).Inc()
				logger.Warn().Str(loggers.FieldSource, sourceDir).Err(err).Msg("log source unavailable, skipping for this cycle")
				continue
			}
			return nil, err
		}
		files = append(files, recent...)
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.scanFile(ctx, file.Path, result); err != nil {
			// An unreadable file is scoped like an unavailable source.
			result.SourcesUnavailable++
			logger.Warn().Str(loggers.FieldSource, file.Path).Err(err).Msg("log file unreadable, skipping for this cycle")
			continue
		}
		result.FilesRead++
	}

	return result, nil
}

func (s *logScanner) scanFile(ctx context.Context, path string, result *ScanResult) error {
	readCloser, err := s.store.Open(ctx, path)
	if err != nil {
		return err
	}
	defer readCloser.Close()

	scanner := bufio.NewScanner(readCloser)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		event, ok := parseCallRecord(line)
		if !ok {
			result.ParseErrors++
			metricParseErrorsTotal.Inc()
			continue
		}
		if event == nil {
			// Well-formed record of a kind we do not aggregate.
			continue
		}
		result.ModelIndex.Add(*event)
		result.UserIndex.Add(*event)
		result.Records++
	}
	return scanner.Err()
}

// parseCallRecord parses one log line. It returns (nil, true) for well-formed
// records that are not chat calls, and (nil, false) for malformed lines or
// chat records missing a required field. A bad line only ever costs itself.
func parseCallRecord(line []byte) (*models.CallEvent, bool) {
	var record callRecord
	if err := json.Unmarshal(line, &record); err != nil {
		return nil, false
	}
	if record.Type != recordTypeChat {
		return nil, true
	}
	if record.Model == "" || record.IP == "" || record.Tstamp <= 0 {
		return nil, false
	}
	return &models.CallEvent{
		Tstamp: record.Tstamp,
		Model:  record.Model,
		UserID: record.IP,
	}, true
}
