package discoveries

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cybercyclones/oceanscan/internal/classifier"
	"github.com/cybercyclones/oceanscan/internal/service/discoveryservice"
	"github.com/cybercyclones/oceanscan/internal/service/pointsservice"
	"github.com/cybercyclones/oceanscan/pkg/auth"
	"github.com/cybercyclones/oceanscan/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*DiscoveryHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newScanRequest(t *testing.T, imageData []byte) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", "debris.jpg")
	assert.NoError(t, err)
	_, err = part.Write(imageData)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/v1/discoveries/scan", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
}

func TestScanHandler(t *testing.T) {
	handler, service := NewMock(t)

	// "hello" encodes to "aGVsbG8="
	imageData := []byte("hello")

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful scan",
			prepareMock: func() {
				service.EXPECT().ProcessScan(gomock.Any(), 1, "aGVsbG8=").Return(&discoveryservice.ScanResult{
					ItemName:            "plastic bottle",
					Category:            "PLASTIC",
					PointsAwarded:       40,
					NewTotalPoints:      120,
					EnvironmentalImpact: "Chokes marine life",
					DecompositionTime:   450,
					ThreatLevel:         3,
				}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Item already discovered",
			prepareMock: func() {
				service.EXPECT().ProcessScan(gomock.Any(), 1, "aGVsbG8=").
					Return(nil, pointsservice.ErrAlreadyDiscovered)
			},
			expectedCode:  http.StatusConflict,
			expectedError: pointsservice.ErrAlreadyDiscovered.Error(),
		},
		{
			name: "Item not recognized",
			prepareMock: func() {
				service.EXPECT().ProcessScan(gomock.Any(), 1, "aGVsbG8=").
					Return(nil, discoveryservice.ErrItemNotRecognized)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "item not recognized in our database",
		},
		{
			name: "Classification failure",
			prepareMock: func() {
				service.EXPECT().ProcessScan(gomock.Any(), 1, "aGVsbG8=").
					Return(nil, classifier.ErrClassification)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "image classification failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newScanRequest(t, imageData)
			rr := httptest.NewRecorder()

			handler.Scan(rr, req)

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

func TestScanHandlerMissingImage(t *testing.T) {
	handler, _ := NewMock(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	assert.NoError(t, writer.WriteField("note", "no file here"))
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/v1/discoveries/scan", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
	rr := httptest.NewRecorder()

	handler.Scan(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp utils.Response
	err := json.NewDecoder(rr.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, "Image file is required", resp.Error)
}

func TestGetHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful history",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "User not found",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 1).Return(nil, discoveryservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "user not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/v1/discoveries/history", nil)
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

func TestGetStatsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful stats",
			prepareMock: func() {
				service.EXPECT().GetStatistics(gomock.Any(), 1).Return(&discoveryservice.Statistics{
					TotalDiscoveries:         12,
					Categories:               map[string]int{"PLASTIC": 8, "METAL": 4},
					Rarities:                 map[string]int{"COMMON": 10, "RARE": 2},
					TotalDecompositionYears:  5.0,
					DiscoveriesLastWeek:      3,
					TotalPointsFromDiscovery: 350,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User not found",
			prepareMock: func() {
				service.EXPECT().GetStatistics(gomock.Any(), 1).Return(nil, discoveryservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/v1/discoveries/stats", nil)
			req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
			rr := httptest.NewRecorder()

			handler.GetStats(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetPopularHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetPopular(gomock.Any()).Return(nil, nil)

	req := httptest.NewRequest("GET", "/api/v1/discoveries/popular", nil)
	req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
	rr := httptest.NewRecorder()

	handler.GetPopular(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
