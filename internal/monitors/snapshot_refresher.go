package monitors

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"call-monitor/internal/models"
	"call-monitor/internal/shared/loggers"
	"call-monitor/internal/shared/metrics"
	"call-monitor/internal/shared/svcerrors"
	"call-monitor/internal/shared/ulid"
)

// SnapshotRefresher runs the aggregation cycle on one dedicated goroutine:
// scan the sources, build a new snapshot, swap it into the holder, sleep.
// The first cycle runs immediately at Start so queries have data as soon as
// the logs allow. Cycles never overlap, and no cycle failure terminates the
// loop; it runs for the life of the process until Stop.
//
//go:generate mockgen -source=snapshot_refresher.go -destination=./mocks/snapshot_refresher_mock.go -package=mocks
type SnapshotRefresher interface {
	Start(ctx context.Context)
	Stop()
}

type snapshotRefresher struct {
	scanner  LogScanner
	holder   *SnapshotHolder
	interval time.Duration

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewSnapshotRefresher(scanner LogScanner, holder *SnapshotHolder, interval time.Duration, logger loggers.Logger) SnapshotRefresher {
	return &snapshotRefresher{
		scanner:  scanner,
		holder:   holder,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (r *snapshotRefresher) Start(ctx context.Context) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(ctx)
	}()
}

// Stop waits for the refresh goroutine to finish (best called during app shutdown).
func (r *snapshotRefresher) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

func (r *snapshotRefresher) run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.runCycle(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.runCycle(ctx)
		}
	}
}

// runCycle executes one scan-build-swap pass. Panics are recovered so a
// defective record or filesystem surprise cannot kill the refresh task.
func (r *snapshotRefresher) runCycle(ctx context.Context) {
	cycleID := ulid.NewULID()
	ctx = r.logger.With().
		Str(loggers.FieldCycleID, cycleID).
		Logger().WithContext(ctx)
	logger := loggers.Ctx(ctx)

	defer func() {
		if p := recover(); p != nil {
			logger.Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("refresh cycle panic recovered: %v", p)

			var panicErr error
			if err, ok := p.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", p)
			}
			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricRefreshCycleTotal.WithLabelValues(svcErr.Code).Inc()
		}
	}()

	start := time.Now()
	scanResult, err := r.scanner.Scan(ctx)
	if err != nil {
		// Only context cancellation reaches here; per-source and per-line
		// failures are absorbed inside the scan.
		logger.Warn().Err(err).Msg("refresh cycle aborted")
		metricRefreshCycleTotal.WithLabelValues(svcerrors.NewInternalErrorUndefined(err).Code).Inc()
		return
	}

	snapshot := buildSnapshot(cycleID, start, scanResult)
	r.holder.Replace(snapshot)

	metricRefreshCycleTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricRefreshCycleDuration.Observe(time.Since(start).Seconds())
	metricRecordsScannedTotal.Add(float64(scanResult.Records))
	metricSnapshotModels.Set(float64(len(snapshot.ModelIndex)))
	metricSnapshotUsers.Set(float64(len(snapshot.UserIndex)))

	logger.Info().
		Int("files_read", scanResult.FilesRead).
		Int("records", scanResult.Records).
		Int("parse_errors", scanResult.ParseErrors).
		Int("sources_unavailable", scanResult.SourcesUnavailable).
		Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
		Msg("refresh cycle completed")
}

// buildSnapshot derives the four cached views from this cycle's indices.
// The views share the cycle's clock reading, so hour and day views always
// reflect the same generation of data.
func buildSnapshot(cycleID string, now time.Time, scanResult *ScanResult) *models.Snapshot {
	return &models.Snapshot{
		CycleID:        cycleID,
		BuiltAt:        now,
		ModelIndex:     scanResult.ModelIndex,
		UserIndex:      scanResult.UserIndex,
		ModelStatsHour: modelCallStats(scanResult.ModelIndex, now, WindowHourMinutes, 0, ""),
		ModelStatsDay:  modelCallStats(scanResult.ModelIndex, now, WindowDayMinutes, 0, ""),
		UserStatsHour:  userCallStats(scanResult.UserIndex, now, WindowHourMinutes, 0, ""),
		UserStatsDay:   userCallStats(scanResult.UserIndex, now, WindowDayMinutes, 0, ""),
	}
}
