package monitors

import (
	"call-monitor/internal/shared/metrics"
)

var (
	// metricRefreshCycleTotal counts completed refresh cycles by error code.
	// A healthy process increments the empty error code once per interval.
	metricRefreshCycleTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubMonitor,
			Name:      "refresh_cycle_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricRefreshCycleDuration = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubMonitor,
			Name:      "refresh_cycle_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
	)

	metricRecordsScannedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubMonitor,
			Name:      "records_scanned_total",
		},
	)

	// metricParseErrorsTotal counts individual log lines skipped because they
	// were malformed or missing required fields. A bad line never aborts the
	// cycle, so this counter is the only trace it leaves.
	metricParseErrorsTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubMonitor,
			Name:      "parse_errors_total",
		},
	)

	metricSourceUnavailableTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubMonitor,
			Name:      "source_unavailable_total",
		},
		[]string{"source"},
	)

	metricSnapshotModels = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubMonitor,
			Name:      "snapshot_models",
		},
	)

	metricSnapshotUsers = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubMonitor,
			Name:      "snapshot_users",
		},
	)
)
