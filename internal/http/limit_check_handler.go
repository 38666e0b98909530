package http

import (
	"net/http"
	"strings"

	"call-monitor/internal/quotas"
)

// LimitCheckResponse is the gating decision for one (model, user) pair.
// Reason is MODEL_HOURLY_LIMIT or USER_DAILY_LIMIT when the limit is
// reached; the model-level reason wins when both tiers fire.
type LimitCheckResponse struct {
	IsLimitReached bool   `json:"isLimitReached"`
	Reason         string `json:"reason,omitempty"`
	Detail         string `json:"detail,omitempty"`
}

type limitCheckHandler struct {
	quotaService quotas.QuotaService
}

func NewLimitCheckHandler(quotaService quotas.QuotaService) AppHttpHandler {
	return &limitCheckHandler{quotaService: quotaService}
}

// Handle processes GET /limits/check requests.
func (h *limitCheckHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	model := strings.TrimSpace(r.URL.Query().Get(paramModel))
	if model == "" {
		return errInvalidQuery("model is required", nil)
	}
	userID := strings.TrimSpace(r.URL.Query().Get(paramUserID))
	if userID == "" {
		return errInvalidQuery("user_id is required", nil)
	}

	decision := h.quotaService.CheckLimit(model, userID)
	return respondJSON(w, http.StatusOK, LimitCheckResponse{
		IsLimitReached: decision.Limited,
		Reason:         decision.Reason,
		Detail:         decision.Detail,
	})
}
