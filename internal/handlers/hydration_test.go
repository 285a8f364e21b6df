package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
	"github.com/sbilibin2017/gw-nutriplan/internal/services"
)

func TestHydrationGoalHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockSvc := NewMockHydrationTracker(ctrl)
	mockSvc.EXPECT().Goal(gomock.Any(), userID).Return(&models.HydrationGoal{DailyGlasses: 8, DailyML: 2000, WeightKg: 70, Goal: "general"}, nil)

	rr := httptest.NewRecorder()
	NewHydrationGoalHandler(mockSvc)(rr, newRequest(t, http.MethodGet, "/api/hydration/goal", nil, userID, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"daily_glasses":8,"daily_ml":2000,"weight_kg":70,"goal":"general"}`, rr.Body.String())
}

func TestHydrationLogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *MockHydrationTracker)
		expectedCode   int
		expectedDetail string
	}{
		{
			name: "logged",
			body: `{"glasses":8,"date":"2025-03-02"}`,
			mockSetup: func(m *MockHydrationTracker) {
				m.EXPECT().Log(gomock.Any(), userID, 8, "2025-03-02").Return(&models.HydrationRecord{Date: "2025-03-02", Glasses: 8}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "zero glasses is a valid reset",
			body: `{"glasses":0}`,
			mockSetup: func(m *MockHydrationTracker) {
				m.EXPECT().Log(gomock.Any(), userID, 0, "").Return(&models.HydrationRecord{Glasses: 0}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:           "missing glasses",
			body:           `{"date":"2025-03-02"}`,
			mockSetup:      func(m *MockHydrationTracker) {},
			expectedCode:   http.StatusBadRequest,
			expectedDetail: "glasses is required",
		},
		{
			name: "too many",
			body: `{"glasses":31}`,
			mockSetup: func(m *MockHydrationTracker) {
				m.EXPECT().Log(gomock.Any(), userID, 31, "").Return(nil, services.ErrInvalidGlasses)
			},
			expectedCode:   http.StatusBadRequest,
			expectedDetail: services.ErrInvalidGlasses.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockHydrationTracker(ctrl)
			tt.mockSetup(mockSvc)

			rr := httptest.NewRecorder()
			NewHydrationLogHandler(mockSvc)(rr, newRequest(t, http.MethodPost, "/api/hydration/log", tt.body, userID, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedDetail != "" {
				assert.Equal(t, tt.expectedDetail, decodeDetail(t, rr))
			}
		})
	}
}

func TestHydrationTodayHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockSvc := NewMockHydrationTracker(ctrl)
	mockSvc.EXPECT().Today(gomock.Any(), userID).Return(&models.HydrationRecord{Date: "2025-03-02", Glasses: 0}, nil)

	rr := httptest.NewRecorder()
	NewHydrationTodayHandler(mockSvc)(rr, newRequest(t, http.MethodGet, "/api/hydration/today", nil, userID, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp models.HydrationRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "2025-03-02", resp.Date)
}

func TestHydrationHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		target       string
		wantDays     int
		expectedCode int
	}{
		{name: "default week", target: "/api/hydration/history", wantDays: 7, expectedCode: http.StatusOK},
		{name: "explicit", target: "/api/hydration/history?days=30", wantDays: 30, expectedCode: http.StatusOK},
		{name: "clamping left to service", target: "/api/hydration/history?days=500", wantDays: 500, expectedCode: http.StatusOK},
		{name: "not a number", target: "/api/hydration/history?days=week", expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockHydrationTracker(ctrl)
			if tt.expectedCode == http.StatusOK {
				mockSvc.EXPECT().History(gomock.Any(), userID, tt.wantDays).Return([]models.HydrationRecord{}, nil)
			}

			rr := httptest.NewRecorder()
			NewHydrationHistoryHandler(mockSvc)(rr, newRequest(t, http.MethodGet, tt.target, nil, userID, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
