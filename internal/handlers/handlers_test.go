package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/cybercyclones/oceanscan/docs"
	authhandlers "github.com/cybercyclones/oceanscan/internal/handlers/auth"
	discoveryhandlers "github.com/cybercyclones/oceanscan/internal/handlers/discoveries"
	leaderboardhandlers "github.com/cybercyclones/oceanscan/internal/handlers/leaderboard"
	pointshandlers "github.com/cybercyclones/oceanscan/internal/handlers/points"
	skinhandlers "github.com/cybercyclones/oceanscan/internal/handlers/skins"
	userhandlers "github.com/cybercyclones/oceanscan/internal/handlers/users"
	"github.com/cybercyclones/oceanscan/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:        authhandlers.NewMockService(ctrl),
		DiscoveryService:   discoveryhandlers.NewMockService(ctrl),
		LeaderboardService: leaderboardhandlers.NewMockService(ctrl),
		PointsService:      pointshandlers.NewMockService(ctrl),
		SkinService:        skinhandlers.NewMockService(ctrl),
		UserService:        userhandlers.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockDiscoveryHandler := NewMockDiscoveryHandler(ctrl)
	mockLeaderboardHandler := NewMockLeaderboardHandler(ctrl)
	mockPointsHandler := NewMockPointsHandler(ctrl)
	mockSkinHandler := NewMockSkinHandler(ctrl)
	mockUserHandler := NewMockUserHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().ResetPasswordRequest(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().ResetPassword(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().Exists(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:        mockAuthHandler,
		DiscoveryHandler:   mockDiscoveryHandler,
		LeaderboardHandler: mockLeaderboardHandler,
		PointsHandler:      mockPointsHandler,
		SkinHandler:        mockSkinHandler,
		UserHandler:        mockUserHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/health", http.StatusOK},
		{"POST", "/api/v1/auth/register", http.StatusOK},
		{"POST", "/api/v1/auth/login", http.StatusOK},
		{"POST", "/api/v1/auth/reset_password_request", http.StatusOK},
		{"GET", "/api/v1/users/exists/finn", http.StatusOK},
		{"POST", "/api/v1/auth/change_password", http.StatusUnauthorized},
		{"POST", "/api/v1/discoveries/scan", http.StatusUnauthorized},
		{"GET", "/api/v1/discoveries/history", http.StatusUnauthorized},
		{"GET", "/api/v1/leaderboard/global", http.StatusUnauthorized},
		{"GET", "/api/v1/points/summary", http.StatusUnauthorized},
		{"POST", "/api/v1/skins/1/purchase", http.StatusUnauthorized},
		{"GET", "/api/v1/users/profile", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
