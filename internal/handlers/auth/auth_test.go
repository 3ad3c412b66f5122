package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cybercyclones/oceanscan/internal/domain"
	"github.com/cybercyclones/oceanscan/internal/service/authservice"
	pkgauth "github.com/cybercyclones/oceanscan/pkg/auth"
	"github.com/cybercyclones/oceanscan/pkg/utils"
	"github.com/cybercyclones/oceanscan/pkg/validate"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"username":"finn","email":"finn@example.com","password":"Str0ngPass"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "finn", "finn@example.com", "Str0ngPass", nil).
					Return(&domain.User{ID: 1, Username: "finn"}, "some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Username taken",
			body: `{"username":"finn","email":"finn@example.com","password":"Str0ngPass"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "finn", "finn@example.com", "Str0ngPass", nil).
					Return(nil, "", authservice.ErrUsernameTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "username already exists",
		},
		{
			name: "Weak password",
			body: `{"username":"finn","email":"finn@example.com","password":"short"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "finn", "finn@example.com", "short", nil).
					Return(nil, "", validate.ErrPasswordTooShort)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "password must be at least 8 characters long",
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

			req := httptest.NewRequest("POST", "/api/v1/auth/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"username":"finn","password":"Str0ngPass"}`,
			prepareMock: func() {
				service.EXPECT().Login(gomock.Any(), "finn", "Str0ngPass").
					Return(&domain.User{ID: 1, Username: "finn", Rank: 1}, "some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Invalid credentials",
			body: `{"username":"finn","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Login(gomock.Any(), "finn", "wrong").
					Return(nil, "", authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Deactivated account",
			body: `{"username":"finn","password":"Str0ngPass"}`,
			prepareMock: func() {
				service.EXPECT().Login(gomock.Any(), "finn", "Str0ngPass").
					Return(nil, "", authservice.ErrAccountDeactivated)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "account is deactivated",
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

			req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			}
		})
	}
}

func TestChangePasswordHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful change",
			body: `{"old_password":"OldPass123","new_password":"NewPass456"}`,
			prepareMock: func() {
				service.EXPECT().ChangePassword(gomock.Any(), 1, "OldPass123", "NewPass456").Return(nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Wrong current password",
			body: `{"old_password":"wrong","new_password":"NewPass456"}`,
			prepareMock: func() {
				service.EXPECT().ChangePassword(gomock.Any(), 1, "wrong", "NewPass456").
					Return(authservice.ErrWrongPassword)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "current password is incorrect",
		},
		{
			name: "Weak new password",
			body: `{"old_password":"OldPass123","new_password":"short"}`,
			prepareMock: func() {
				service.EXPECT().ChangePassword(gomock.Any(), 1, "OldPass123", "short").
					Return(validate.ErrPasswordTooShort)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "password must be at least 8 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/v1/auth/change_password", bytes.NewReader([]byte(tt.body)))
			req = req.WithContext(context.WithValue(req.Context(), pkgauth.UserIDKey, 1))
			rr := httptest.NewRecorder()

			handler.ChangePassword(rr, req)

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

func TestResetPasswordRequestHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Known email",
			body: `{"email":"finn@example.com"}`,
			prepareMock: func() {
				service.EXPECT().GenerateResetToken(gomock.Any(), "finn@example.com").Return("reset-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown email gets the same answer",
			body: `{"email":"ghost@example.com"}`,
			prepareMock: func() {
				service.EXPECT().GenerateResetToken(gomock.Any(), "ghost@example.com").Return("", nil)
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/v1/auth/reset_password_request", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.ResetPasswordRequest(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
