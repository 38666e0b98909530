package quotas

import (
	"fmt"

	"call-monitor/internal/monitors"
)

// Reason tags distinguish the two policy tiers in limit decisions, so the
// gating caller can present an appropriate message per tier.
const (
	ReasonModelHourlyLimit = "MODEL_HOURLY_LIMIT"
	ReasonUserDailyLimit   = "USER_DAILY_LIMIT"
)

// Decision is the outcome of a two-tier limit check.
type Decision struct {
	Limited bool
	Reason  string // reason tag, set when Limited
	Detail  string // human-readable, e.g. "MODEL_HOURLY_LIMIT (gpt-4): 100"
}

// QuotaService evaluates the two quota policies against the snapshot's
// cached hourly/daily views and manages the limit tables.
//
//go:generate mockgen -source=quota_service.go -destination=./mocks/quota_service_mock.go -package=mocks
type QuotaService interface {
	// ModelHourlyLimit returns the configured hourly ceiling for the model,
	// or Unlimited when it has none.
	ModelHourlyLimit(model string) int64

	// SetModelHourlyLimit adjusts the ceiling of an already-configured model.
	// It reports false, changing nothing, for unknown models.
	SetModelHourlyLimit(model string, limit int64) bool

	// CheckLimit answers whether the model or the user has exhausted its
	// allowance. The model-level hourly check runs first; when it fires the
	// user-level check is not evaluated, so global backend protection takes
	// precedence over per-user fairness.
	CheckLimit(model, userID string) Decision
}

type quotaService struct {
	holder      *monitors.SnapshotHolder
	modelHourly *LimitTable
	userDaily   *LimitTable
}

func NewQuotaService(holder *monitors.SnapshotHolder, modelHourly, userDaily *LimitTable) QuotaService {
	return &quotaService{
		holder:      holder,
		modelHourly: modelHourly,
		userDaily:   userDaily,
	}
}

func (s *quotaService) ModelHourlyLimit(model string) int64 {
	return s.modelHourly.Limit(model)
}

func (s *quotaService) SetModelHourlyLimit(model string, limit int64) bool {
	updated := s.modelHourly.Set(model, limit)
	if updated {
		metricLimitUpdateTotal.WithLabelValues(outcomeUpdated).Inc()
	} else {
		metricLimitUpdateTotal.WithLabelValues(outcomeUnknownModel).Inc()
	}
	return updated
}

func (s *quotaService) CheckLimit(model, userID string) Decision {
	snapshot := s.holder.Current()

	if limit, ok := s.modelHourly.Lookup(model); ok {
		// Threshold is inclusive: reaching the ceiling exactly counts as
		// reached. Models absent from the hourly view had no recent calls.
		if count, active := snapshot.ModelStatsHour[model]; active && count >= limit {
			metricLimitCheckTotal.WithLabelValues(outcomeModelHourlyLimit).Inc()
			return Decision{
				Limited: true,
				Reason:  ReasonModelHourlyLimit,
				Detail:  fmt.Sprintf("%s (%s): %d", ReasonModelHourlyLimit, model, limit),
			}
		}
	}

	if limit, ok := s.userDaily.Lookup(model); ok {
		if userStats, active := snapshot.UserStatsDay[userID]; active {
			if count, called := userStats.CallsByModel[model]; called && count >= limit {
				metricLimitCheckTotal.WithLabelValues(outcomeUserDailyLimit).Inc()
				return Decision{
					Limited: true,
					Reason:  ReasonUserDailyLimit,
					Detail:  fmt.Sprintf("%s (%s): %d", ReasonUserDailyLimit, model, limit),
				}
			}
		}
	}

	metricLimitCheckTotal.WithLabelValues(outcomeAllowed).Inc()
	return Decision{}
}

