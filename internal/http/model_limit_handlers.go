package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"call-monitor/internal/quotas"

	"github.com/go-chi/chi/v5"
)

// ModelLimitResponse reports a model's hourly ceiling; -1 means unlimited.
type ModelLimitResponse struct {
	Model       string `json:"model"`
	HourlyLimit int64  `json:"hourlyLimit"`
}

type getModelLimitHandler struct {
	quotaService quotas.QuotaService
}

func NewGetModelLimitHandler(quotaService quotas.QuotaService) AppHttpHandler {
	return &getModelLimitHandler{quotaService: quotaService}
}

// Handle processes GET /models/{model}/limit requests.
func (h *getModelLimitHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	model := strings.TrimSpace(chi.URLParam(r, "model"))
	if model == "" {
		return errInvalidQuery("model is required", nil)
	}

	return respondJSON(w, http.StatusOK, ModelLimitResponse{
		Model:       model,
		HourlyLimit: h.quotaService.ModelHourlyLimit(model),
	})
}

// SetModelLimitRequest is the body of PUT /models/{model}/limit.
type SetModelLimitRequest struct {
	HourlyLimit *int64 `json:"hourlyLimit"`
}

// SetModelLimitResponse reports whether the update was applied. Success is
// false for models that were never configured: the limit tables are
// closed-world and the update is a deliberate no-op.
type SetModelLimitResponse struct {
	Success bool `json:"success"`
}

type setModelLimitHandler struct {
	quotaService quotas.QuotaService
}

func NewSetModelLimitHandler(quotaService quotas.QuotaService) AppHttpHandler {
	return &setModelLimitHandler{quotaService: quotaService}
}

// Handle processes PUT /models/{model}/limit requests.
func (h *setModelLimitHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	model := strings.TrimSpace(chi.URLParam(r, "model"))
	if model == "" {
		return errInvalidQuery("model is required", nil)
	}

	var req SetModelLimitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return errInvalidQuery("invalid json body", err)
	}
	if req.HourlyLimit == nil {
		return errInvalidQuery("hourlyLimit is required", nil)
	}
	if *req.HourlyLimit < 0 {
		return errInvalidQuery("hourlyLimit must be >= 0", nil)
	}

	updated := h.quotaService.SetModelHourlyLimit(model, *req.HourlyLimit)
	return respondJSON(w, http.StatusOK, SetModelLimitResponse{Success: updated})
}
