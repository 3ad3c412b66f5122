package users

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cybercyclones/oceanscan/internal/domain"
	"github.com/cybercyclones/oceanscan/internal/dto"
	"github.com/cybercyclones/oceanscan/internal/service/userservice"
	"github.com/cybercyclones/oceanscan/pkg/auth"
	"github.com/cybercyclones/oceanscan/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*UserHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newUsernameRequest(method, target, username string) *http.Request {
	req := httptest.NewRequest(method, target, nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("username", username)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetProfileHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful profile",
			prepareMock: func() {
				service.EXPECT().GetProfile(gomock.Any(), 1).Return(&userservice.Profile{
					Username:            "finn",
					Rank:                1,
					RankTitle:           "Explorer",
					PointsBalance:       180,
					TotalPointsEarned:   350,
					LeaderboardPosition: 4,
					MemberSince:         time.Now(),
				}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "User not found",
			prepareMock: func() {
				service.EXPECT().GetProfile(gomock.Any(), 1).Return(nil, userservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "user not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/v1/users/profile", nil)
			req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
			rr := httptest.NewRecorder()

			handler.GetProfile(rr, req)

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

func TestUpdateDisplayNameHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful update",
			body: `{"display_name":"Reef Keeper"}`,
			prepareMock: func() {
				service.EXPECT().UpdateDisplayName(gomock.Any(), 1, "Reef Keeper").
					Return(&domain.User{ID: 1, Username: "finn"}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Empty display name",
			body: `{"display_name":"   "}`,
			prepareMock: func() {
				service.EXPECT().UpdateDisplayName(gomock.Any(), 1, "   ").
					Return(nil, userservice.ErrEmptyDisplayName)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "display name cannot be empty",
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

			req := httptest.NewRequest("PATCH", "/api/v1/users/update_display_name", bytes.NewReader([]byte(tt.body)))
			req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
			rr := httptest.NewRecorder()

			handler.UpdateDisplayName(rr, req)

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

func TestDeactivateReactivateHandlers(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name            string
		prepareMock     func()
		run             func(w http.ResponseWriter, r *http.Request)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "Successful deactivation",
			prepareMock: func() {
				service.EXPECT().Deactivate(gomock.Any(), 1).Return(nil)
			},
			run:             func(w http.ResponseWriter, r *http.Request) { handler.Deactivate(w, r) },
			expectedCode:    http.StatusOK,
			expectedMessage: "Account deactivated",
		},
		{
			name: "Successful reactivation",
			prepareMock: func() {
				service.EXPECT().Reactivate(gomock.Any(), 1).Return(nil)
			},
			run:             func(w http.ResponseWriter, r *http.Request) { handler.Reactivate(w, r) },
			expectedCode:    http.StatusOK,
			expectedMessage: "Account reactivated",
		},
		{
			name: "Deactivate unknown user",
			prepareMock: func() {
				service.EXPECT().Deactivate(gomock.Any(), 1).Return(userservice.ErrUserNotFound)
			},
			run:          func(w http.ResponseWriter, r *http.Request) { handler.Deactivate(w, r) },
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/v1/users/deactivate", nil)
			req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
			rr := httptest.NewRecorder()

			tt.run(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedMessage != "" {
				var resp dto.MessageResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
		})
	}
}

func TestGetByUsernameHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		username      string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:     "Public profile found",
			username: "marina",
			prepareMock: func() {
				service.EXPECT().GetByUsername(gomock.Any(), "marina").Return(&domain.User{
					ID:                2,
					Username:          "marina",
					Rank:              2,
					TotalPointsEarned: 900,
				}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name:     "User not found",
			username: "ghost",
			prepareMock: func() {
				service.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "user not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newUsernameRequest("GET", "/api/v1/users/by_username/"+tt.username, tt.username)
			rr := httptest.NewRecorder()

			handler.GetByUsername(rr, req)

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

func TestExistsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name        string
		username    string
		prepareMock func()
		exists      bool
	}{
		{
			name:     "Username taken",
			username: "finn",
			prepareMock: func() {
				service.EXPECT().GetByUsername(gomock.Any(), "finn").
					Return(&domain.User{ID: 1, Username: "finn"}, nil)
			},
			exists: true,
		},
		{
			name:     "Username free",
			username: "newcomer",
			prepareMock: func() {
				service.EXPECT().GetByUsername(gomock.Any(), "newcomer").Return(nil, nil)
			},
			exists: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newUsernameRequest("GET", "/api/v1/users/exists/"+tt.username, tt.username)
			rr := httptest.NewRecorder()

			handler.Exists(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)

			var resp dto.UsernameExistsResponseDTO
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.username, resp.Username)
			assert.Equal(t, tt.exists, resp.Exists)
		})
	}
}
