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

func TestAdminCheckHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	for _, isAdmin := range []bool{true, false} {
		checker := NewMockAdminChecker(ctrl)
		checker.EXPECT().IsAdmin(testEmail).Return(isAdmin)

		rr := httptest.NewRecorder()
		NewAdminCheckHandler(checker)(rr, newRequest(t, http.MethodGet, "/api/admin/check", nil, uuid.New(), nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp AdminCheckResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, AdminCheckResponse{IsAdmin: isAdmin, Email: testEmail}, resp)
	}
}

func TestAdminStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("ok", func(t *testing.T) {
		mockSvc := NewMockAdminDashboard(ctrl)
		mockSvc.EXPECT().Stats(gomock.Any()).Return(&models.AdminStats{TotalUsers: 3, QuestionnaireCompletionRate: 66.7}, nil)

		rr := httptest.NewRecorder()
		NewAdminStatsHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp models.AdminStats
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 66.7, resp.QuestionnaireCompletionRate)
	})

	t.Run("failure", func(t *testing.T) {
		mockSvc := NewMockAdminDashboard(ctrl)
		mockSvc.EXPECT().Stats(gomock.Any()).Return(nil, errors.New("db down"))

		rr := httptest.NewRecorder()
		NewAdminStatsHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestAdminUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		target       string
		wantFilter   *models.UserFilter
		expectedCode int
	}{
		{name: "defaults", target: "/api/admin/users", wantFilter: &models.UserFilter{Limit: 50}, expectedCode: http.StatusOK},
		{name: "paged search", target: "/api/admin/users?limit=10&skip=20&search=ana", wantFilter: &models.UserFilter{Search: "ana", Limit: 10, Skip: 20}, expectedCode: http.StatusOK},
		{name: "bad limit", target: "/api/admin/users?limit=ten", expectedCode: http.StatusBadRequest},
		{name: "bad skip", target: "/api/admin/users?skip=x", expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAdminDashboard(ctrl)
			if tt.wantFilter != nil {
				mockSvc.EXPECT().Users(gomock.Any(), *tt.wantFilter).Return([]models.AdminUser{{Email: testEmail}}, 1, nil)
			}

			rr := httptest.NewRecorder()
			NewAdminUsersHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp AdminUsersResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, 1, resp.Total)
				assert.Equal(t, testEmail, resp.Users[0].Email)
			}
		})
	}
}

func TestAdminUserDetailHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		id           string
		detail       *models.AdminUserDetail
		err          error
		callsService bool
		expectedCode int
	}{
		{
			name:         "found",
			id:           userID.String(),
			detail:       &models.AdminUserDetail{User: models.UserSummary{ID: userID}, Plans: []models.MealPlanSummary{}},
			callsService: true,
			expectedCode: http.StatusOK,
		},
		{name: "unknown", id: userID.String(), err: services.ErrUserNotFound, callsService: true, expectedCode: http.StatusNotFound},
		{name: "malformed", id: "x", expectedCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAdminDashboard(ctrl)
			if tt.callsService {
				mockSvc.EXPECT().UserDetail(gomock.Any(), userID).Return(tt.detail, tt.err)
			}

			rr := httptest.NewRecorder()
			req := newRequest(t, http.MethodGet, "/api/admin/users/"+tt.id, nil, uuid.Nil, map[string]string{"id": tt.id})
			NewAdminUserDetailHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAdminSetSubscriptionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	monthly := "monthly"

	tests := []struct {
		name         string
		body         any
		err          error
		callsService bool
		expectedCode int
	}{
		{name: "set", body: SubscriptionRequest{SubscriptionType: "monthly", Days: 30}, callsService: true, expectedCode: http.StatusOK},
		{name: "unknown plan", body: SubscriptionRequest{SubscriptionType: "lifetime"}, err: services.ErrInvalidPlanType, callsService: true, expectedCode: http.StatusBadRequest},
		{name: "negative days", body: SubscriptionRequest{SubscriptionType: "monthly", Days: -2}, err: services.ErrInvalidDays, callsService: true, expectedCode: http.StatusBadRequest},
		{name: "days too large", body: SubscriptionRequest{SubscriptionType: "monthly", Days: 200000}, err: services.ErrInvalidDays, callsService: true, expectedCode: http.StatusBadRequest},
		{name: "unknown user", body: SubscriptionRequest{}, err: services.ErrUserNotFound, callsService: true, expectedCode: http.StatusNotFound},
		{name: "bad body", body: "[", expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSubscriptionSetter(ctrl)
			if tt.callsService {
				req := tt.body.(SubscriptionRequest)
				var summary *models.UserSummary
				if tt.err == nil {
					summary = &models.UserSummary{ID: userID, SubscriptionType: &monthly, SubscriptionActive: true}
				}
				mockSvc.EXPECT().SetSubscription(gomock.Any(), userID, req.SubscriptionType, req.Days).Return(summary, tt.err)
			}

			rr := httptest.NewRecorder()
			req := newRequest(t, http.MethodPut, "/api/admin/users/"+userID.String()+"/subscription", tt.body, uuid.Nil, map[string]string{"id": userID.String()})
			NewAdminSetSubscriptionHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp SubscriptionResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.True(t, resp.User.SubscriptionActive)
			}
		})
	}
}

func TestAdminPaymentsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAdminDashboard(ctrl)
	mockSvc.EXPECT().Payments(gomock.Any(), models.PaymentFilter{Status: "paid", Limit: 20, Skip: 0}).
		Return([]models.AdminPayment{}, 0, nil)

	rr := httptest.NewRecorder()
	NewAdminPaymentsHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/api/admin/payments?status=paid&limit=20", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"payments":[],"total":0}`, rr.Body.String())
}
