package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"call-monitor/internal/monitors"
)

const (
	paramModel         = "model"
	paramUserID        = "user_id"
	paramWindowMinutes = "window_minutes"
	paramTopK          = "top_k"
)

// statsQuery carries the parsed common parameters of the stats endpoints.
type statsQuery struct {
	WindowMinutes int
	TopK          int // 0 = no cap
	TargetModel   string
}

func parseStatsQuery(r *http.Request) (statsQuery, error) {
	query := statsQuery{
		WindowMinutes: monitors.WindowHourMinutes,
		TargetModel:   strings.TrimSpace(r.URL.Query().Get(paramModel)),
	}

	windowMinutes, err := queryInt(r, paramWindowMinutes, monitors.WindowHourMinutes)
	if err != nil {
		return statsQuery{}, err
	}
	if windowMinutes < 1 {
		return statsQuery{}, errInvalidQuery(fmt.Sprintf("%s must be >= 1", paramWindowMinutes), nil)
	}
	query.WindowMinutes = windowMinutes

	topK, err := queryInt(r, paramTopK, 0)
	if err != nil {
		return statsQuery{}, err
	}
	if topK < 0 {
		return statsQuery{}, errInvalidQuery(fmt.Sprintf("%s must be >= 0", paramTopK), nil)
	}
	query.TopK = topK

	return query, nil
}

// queryInt parses an optional integer query parameter, returning def when it
// is absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errInvalidQuery(fmt.Sprintf("%s must be an integer", name), err)
	}
	return value, nil
}
