package points

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cybercyclones/oceanscan/internal/service/pointsservice"
	"github.com/cybercyclones/oceanscan/pkg/auth"
	"github.com/cybercyclones/oceanscan/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*PointsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetSummaryHandler(t *testing.T) {
	handler, service := NewMock(t)

	needed := 150

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful summary",
			prepareMock: func() {
				service.EXPECT().GetSummary(gomock.Any(), 1).Return(&pointsservice.Summary{
					CurrentBalance:      180,
					TotalEarned:         350,
					CurrentRank:         1,
					RankTitle:           "Explorer",
					LeaderboardPosition: 4,
					NextRank:            2,
					PointsToNextRank:    &needed,
					DiscoveriesCount:    12,
				}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "User not found",
			prepareMock: func() {
				service.EXPECT().GetSummary(gomock.Any(), 1).Return(nil, pointsservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "user not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/v1/points/summary", nil)
			req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
			rr := httptest.NewRecorder()

			handler.GetSummary(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestGetHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		target        string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Missing timeframe defaults to week",
			target: "/api/v1/points/history",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 1, "week").Return(nil, nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name:   "Explicit month timeframe",
			target: "/api/v1/points/history?timeframe=month",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 1, "month").Return(nil, nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name:   "Invalid timeframe",
			target: "/api/v1/points/history?timeframe=decade",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 1, "decade").Return(nil, pointsservice.ErrInvalidTimeframe)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid timeframe: must be 'week', 'month' or 'year'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", tt.target, nil)
			req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
			rr := httptest.NewRecorder()

			handler.GetHistory(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestDeductHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful deduction",
			body: `{"points":50,"reason":"skin purchase"}`,
			prepareMock: func() {
				service.EXPECT().Deduct(gomock.Any(), 1, 50).Return(130, nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Negative amount",
			body: `{"points":-10}`,
			prepareMock: func() {
				service.EXPECT().Deduct(gomock.Any(), 1, -10).Return(0, pointsservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "points to deduct must be positive",
		},
		{
			name: "Insufficient balance",
			body: `{"points":500}`,
			prepareMock: func() {
				service.EXPECT().Deduct(gomock.Any(), 1, 500).Return(0, pointsservice.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient points balance",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/v1/points/deduct", bytes.NewReader([]byte(tt.body)))
			req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
			rr := httptest.NewRecorder()

			handler.Deduct(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
