package quotas

import "sync"

// Unlimited is the sentinel ceiling for models with no configured quota.
const Unlimited = int64(-1)

// LimitTable maps model identifiers to call ceilings. The key set is fixed
// at construction from static configuration: Set adjusts existing entries
// only and reports false for unknown models, so quota policy cannot be
// invented for unlisted models at runtime.
//
// Updates are rare administrative operations; reads happen on every limit
// check. A reader racing an update may observe the previous ceiling
// (last-writer-wins).
type LimitTable struct {
	mu     sync.RWMutex
	limits map[string]int64
}

func NewLimitTable(limits map[string]int64) *LimitTable {
	table := &LimitTable{limits: make(map[string]int64, len(limits))}
	for model, limit := range limits {
		table.limits[model] = limit
	}
	return table
}

// Limit returns the configured ceiling, or Unlimited when the model has no
// entry.
func (t *LimitTable) Limit(model string) int64 {
	limit, ok := t.Lookup(model)
	if !ok {
		return Unlimited
	}
	return limit
}

// Lookup returns the ceiling and whether the model is configured at all.
func (t *LimitTable) Lookup(model string) (int64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	limit, ok := t.limits[model]
	return limit, ok
}

// Set overwrites the ceiling for an already-configured model. It returns
// false, without inserting, for models absent from the table.
func (t *LimitTable) Set(model string, limit int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.limits[model]; !ok {
		return false
	}
	t.limits[model] = limit
	return true
}
