package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"call-monitor/internal/quotas"
	quotamocks "call-monitor/internal/quotas/mocks"
	"call-monitor/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLimitCheckHandler_Handle_NotLimited(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuotaService := quotamocks.NewMockQuotaService(ctrl)
	handler := NewLimitCheckHandler(mockQuotaService)

	req := httptest.NewRequest(http.MethodGet, "/limits/check?model=gpt-4&user_id=10.0.0.1", nil)
	rr := httptest.NewRecorder()

	mockQuotaService.EXPECT().CheckLimit("gpt-4", "10.0.0.1").Return(quotas.Decision{})

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp LimitCheckResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.IsLimitReached)
	assert.Empty(t, resp.Reason)

	// reason and detail are omitted entirely when the limit is not reached
	assert.NotContains(t, rr.Body.String(), "reason")
	assert.NotContains(t, rr.Body.String(), "detail")
}

func TestLimitCheckHandler_Handle_Limited(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuotaService := quotamocks.NewMockQuotaService(ctrl)
	handler := NewLimitCheckHandler(mockQuotaService)

	req := httptest.NewRequest(http.MethodGet, "/limits/check?model=gpt-4&user_id=10.0.0.1", nil)
	rr := httptest.NewRecorder()

	mockQuotaService.EXPECT().CheckLimit("gpt-4", "10.0.0.1").Return(quotas.Decision{
		Limited: true,
		Reason:  quotas.ReasonModelHourlyLimit,
		Detail:  "MODEL_HOURLY_LIMIT (gpt-4): 100",
	})

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	var resp LimitCheckResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.IsLimitReached)
	assert.Equal(t, quotas.ReasonModelHourlyLimit, resp.Reason)
	assert.Equal(t, "MODEL_HOURLY_LIMIT (gpt-4): 100", resp.Detail)
}

func TestLimitCheckHandler_Handle_MissingParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
	}{
		{name: "missing model", url: "/limits/check?user_id=10.0.0.1"},
		{name: "missing user_id", url: "/limits/check?model=gpt-4"},
		{name: "blank model", url: "/limits/check?model=%20&user_id=10.0.0.1"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuotaService := quotamocks.NewMockQuotaService(ctrl)
			handler := NewLimitCheckHandler(mockQuotaService)

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			rr := httptest.NewRecorder()

			err := handler.Handle(rr, req)

			require.Error(t, err)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, codeInvalidQuery, svcErr.Code)
		})
	}
}
