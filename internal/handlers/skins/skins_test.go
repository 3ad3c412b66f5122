package skins

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cybercyclones/oceanscan/internal/service/skinservice"
	"github.com/cybercyclones/oceanscan/pkg/auth"
	"github.com/cybercyclones/oceanscan/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*SkinHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newSkinRequest(method, target, skinID string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("skinID", skinID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestPurchaseHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		skinID        string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Successful purchase",
			skinID: "3",
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, 3).Return(&skinservice.PurchaseResult{
					SkinName:    "Coral Guardian",
					PointsSpent: 200,
					NewBalance:  300,
					Rarity:      "RARE",
				}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name:   "Already owned",
			skinID: "3",
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, 3).Return(nil, skinservice.ErrAlreadyOwned)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "you already own this skin",
		},
		{
			name:   "Insufficient balance",
			skinID: "3",
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, 3).Return(nil, skinservice.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient points balance",
		},
		{
			name:   "Skin not found",
			skinID: "99",
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, 99).Return(nil, skinservice.ErrSkinNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "skin not found",
		},
		{
			name:   "Skin unavailable",
			skinID: "4",
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, 4).Return(nil, skinservice.ErrSkinUnavailable)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "this skin is not available for purchase",
		},
		{
			name:          "Invalid skin id",
			skinID:        "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid skin id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newSkinRequest("POST", "/api/v1/skins/"+tt.skinID+"/purchase", tt.skinID)
			rr := httptest.NewRecorder()

			handler.Purchase(rr, req)

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

func TestEquipHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		skinID        string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Successful equip",
			skinID: "3",
			prepareMock: func() {
				service.EXPECT().Equip(gomock.Any(), 1, 3).Return(&skinservice.EquipResult{
					SkinName:   "Coral Guardian",
					Rarity:     "RARE",
					EquippedAt: time.Now(),
				}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name:   "Skin not owned",
			skinID: "5",
			prepareMock: func() {
				service.EXPECT().Equip(gomock.Any(), 1, 5).Return(nil, skinservice.ErrSkinNotOwned)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "you don't own this skin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newSkinRequest("POST", "/api/v1/skins/"+tt.skinID+"/equip", tt.skinID)
			rr := httptest.NewRecorder()

			handler.Equip(rr, req)

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

func TestGetOwnedHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Owned skins with equipped flag",
			prepareMock: func() {
				service.EXPECT().GetOwned(gomock.Any(), 1).Return([]skinservice.OwnedSkinView{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User not found",
			prepareMock: func() {
				service.EXPECT().GetOwned(gomock.Any(), 1).Return(nil, skinservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/v1/skins/owned", nil)
			req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
			rr := httptest.NewRecorder()

			handler.GetOwned(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
