package handlers

import (
	"encoding/json"
	"errors"
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

func TestTrialPlanHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name           string
		err            error
		expectedCode   int
		expectedDetail string
	}{
		{name: "generated", expectedCode: http.StatusOK},
		{name: "no questionnaire", err: services.ErrQuestionnaireRequired, expectedCode: http.StatusBadRequest, expectedDetail: "Complete the questionnaire first"},
		{name: "already used", err: services.ErrTrialAlreadyUsed, expectedCode: http.StatusBadRequest, expectedDetail: "Trial plan already used"},
		{name: "unexpected", err: errors.New("db down"), expectedCode: http.StatusInternalServerError, expectedDetail: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPlanGenerator(ctrl)
			var plan *models.MealPlan
			if tt.err == nil {
				plan = &models.MealPlan{ID: uuid.New(), UserID: userID, PlanType: models.PlanTypeTrial, CaloriesTarget: 1650}
			}
			mockSvc.EXPECT().GenerateTrial(gomock.Any(), userID).Return(plan, tt.err)

			rr := httptest.NewRecorder()
			NewTrialPlanHandler(mockSvc)(rr, newRequest(t, http.MethodPost, "/api/meal-plans/trial", nil, userID, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedDetail != "" {
				assert.Equal(t, tt.expectedDetail, decodeDetail(t, rr))
				return
			}
			var resp models.MealPlan
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, models.PlanTypeTrial, resp.PlanType)
			assert.Equal(t, 1650, resp.CaloriesTarget)
		})
	}
}

func TestGeneratePlanHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "generated", expectedCode: http.StatusOK},
		{name: "no subscription", err: services.ErrSubscriptionRequired, expectedCode: http.StatusForbidden},
		{name: "no questionnaire", err: services.ErrQuestionnaireRequired, expectedCode: http.StatusBadRequest},
		{name: "user gone", err: services.ErrUserNotFound, expectedCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPlanGenerator(ctrl)
			var plan *models.MealPlan
			if tt.err == nil {
				plan = &models.MealPlan{ID: uuid.New(), PlanType: "monthly"}
			}
			mockSvc.EXPECT().GenerateFull(gomock.Any(), userID).Return(plan, tt.err)

			rr := httptest.NewRecorder()
			NewGeneratePlanHandler(mockSvc)(rr, newRequest(t, http.MethodPost, "/api/meal-plans/generate", nil, userID, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListPlansHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockSvc := NewMockPlanReader(ctrl)
	mockSvc.EXPECT().List(gomock.Any(), userID).Return([]models.MealPlan{{PlanType: "weekly"}, {PlanType: "trial"}}, nil)

	rr := httptest.NewRecorder()
	NewListPlansHandler(mockSvc)(rr, newRequest(t, http.MethodGet, "/api/meal-plans", nil, userID, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []models.MealPlan
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestGetPlanHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	planID := uuid.New()

	tests := []struct {
		name         string
		id           string
		mockSetup    func(m *MockPlanReader)
		expectedCode int
	}{
		{
			name: "found",
			id:   planID.String(),
			mockSetup: func(m *MockPlanReader) {
				m.EXPECT().Get(gomock.Any(), userID, planID).Return(&models.MealPlan{ID: planID}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "other user's or missing",
			id:   planID.String(),
			mockSetup: func(m *MockPlanReader) {
				m.EXPECT().Get(gomock.Any(), userID, planID).Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "malformed id",
			id:           "not-a-uuid",
			mockSetup:    func(m *MockPlanReader) {},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPlanReader(ctrl)
			tt.mockSetup(mockSvc)

			rr := httptest.NewRecorder()
			req := newRequest(t, http.MethodGet, "/api/meal-plans/"+tt.id, nil, userID, map[string]string{"id": tt.id})
			NewGetPlanHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestPlanPDFHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	planID := uuid.New()

	t.Run("streams attachment", func(t *testing.T) {
		mockSvc := NewMockPlanExporter(ctrl)
		mockSvc.EXPECT().ExportPDF(gomock.Any(), userID, planID).
			Return([]byte("%PDF-1.3 test"), "plan-alimenticio-"+planID.String()[:8]+".pdf", nil)

		rr := httptest.NewRecorder()
		req := newRequest(t, http.MethodGet, "/api/meal-plans/"+planID.String()+"/pdf", nil, userID, map[string]string{"id": planID.String()})
		NewPlanPDFHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=plan-alimenticio-"+planID.String()[:8]+".pdf", rr.Header().Get("Content-Disposition"))
		assert.Equal(t, "%PDF-1.3 test", rr.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockPlanExporter(ctrl)
		mockSvc.EXPECT().ExportPDF(gomock.Any(), userID, planID).Return(nil, "", services.ErrNotFound)

		rr := httptest.NewRecorder()
		req := newRequest(t, http.MethodGet, "/", nil, userID, map[string]string{"id": planID.String()})
		NewPlanPDFHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Plan not found", decodeDetail(t, rr))
	})
}
