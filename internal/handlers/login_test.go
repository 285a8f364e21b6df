package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
	"github.com/sbilibin2017/gw-nutriplan/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)
	weekly := "weekly"
	expires := time.Now().Add(48 * time.Hour)

	tests := []struct {
		name           string
		inputBody      any
		mockSetup      func()
		expectedCode   int
		expectedDetail string
	}{
		{
			name:      "success",
			inputBody: LoginRequest{Email: testEmail, Password: "pass123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), testEmail, "pass123").
					Return(&models.AuthResult{
						Token: "JWT_TOKEN",
						User:  &models.User{ID: uuid.New(), Email: testEmail, SubscriptionType: &weekly, SubscriptionExpires: &expires},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:           "invalid JSON",
			inputBody:      "{invalid json}",
			mockSetup:      func() {},
			expectedCode:   http.StatusBadRequest,
			expectedDetail: "invalid request body",
		},
		{
			name:      "wrong credentials",
			inputBody: LoginRequest{Email: testEmail, Password: "wrongpass"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), testEmail, "wrongpass").
					Return(nil, services.ErrInvalidCredentials)
			},
			expectedCode:   http.StatusUnauthorized,
			expectedDetail: "Invalid email or password",
		},
		{
			name:      "internal error",
			inputBody: LoginRequest{Email: testEmail, Password: "pass123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), testEmail, "pass123").
					Return(nil, errors.New("database error"))
			},
			expectedCode:   http.StatusInternalServerError,
			expectedDetail: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			NewLoginHandler(mockSvc)(rr, newRequest(t, http.MethodPost, "/api/auth/login", tt.inputBody, uuid.Nil, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedDetail != "" {
				assert.Equal(t, tt.expectedDetail, decodeDetail(t, rr))
				return
			}

			var resp AuthResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "JWT_TOKEN", resp.Token)
			assert.True(t, resp.User.SubscriptionActive)
			assert.Equal(t, "weekly", *resp.User.SubscriptionType)
		})
	}
}

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		userID       uuid.UUID
		mockSetup    func(m *MockMeGetter)
		expectedCode int
	}{
		{
			name:   "success",
			userID: userID,
			mockSetup: func(m *MockMeGetter) {
				m.EXPECT().Me(gomock.Any(), userID).Return(&models.User{ID: userID, Email: testEmail, Name: "Ana"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "deleted user",
			userID: userID,
			mockSetup: func(m *MockMeGetter) {
				m.EXPECT().Me(gomock.Any(), userID).Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "no claims",
			mockSetup:    func(m *MockMeGetter) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "store failure",
			userID: userID,
			mockSetup: func(m *MockMeGetter) {
				m.EXPECT().Me(gomock.Any(), userID).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMeGetter(ctrl)
			tt.mockSetup(mockSvc)

			rr := httptest.NewRecorder()
			NewMeHandler(mockSvc)(rr, newRequest(t, http.MethodGet, "/api/auth/me", nil, tt.userID, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp models.UserSummary
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "Ana", resp.Name)
				assert.False(t, resp.SubscriptionActive)
			}
		})
	}
}
