package quotas

import (
	"call-monitor/internal/shared/metrics"
)

const (
	outcomeAllowed          = "allowed"
	outcomeModelHourlyLimit = "model_hourly_limit"
	outcomeUserDailyLimit   = "user_daily_limit"
	outcomeUpdated          = "updated"
	outcomeUnknownModel     = "unknown_model"
)

var (
	// metricLimitCheckTotal counts quota decisions by outcome, giving
	// operators the rate at which each policy tier fires.
	metricLimitCheckTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQuota,
			Name:      "limit_check_total",
		},
		[]string{"outcome"},
	)

	metricLimitUpdateTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQuota,
			Name:      "limit_update_total",
		},
		[]string{"outcome"},
	)
)
