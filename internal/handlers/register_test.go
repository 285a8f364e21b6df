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

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name           string
		body           any
		mockSetup      func(m *MockRegisterer)
		expectedCode   int
		expectedDetail string
	}{
		{
			name: "success",
			body: RegisterRequest{Email: testEmail, Password: "secret123", Name: "Ana"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), testEmail, "secret123", "Ana").
					Return(&models.AuthResult{Token: "JWT_TOKEN", User: &models.User{ID: userID, Email: testEmail, Name: "Ana"}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "user already exists",
			body: RegisterRequest{Email: testEmail, Password: "secret123", Name: "Ana"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), testEmail, "secret123", "Ana").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode:   http.StatusBadRequest,
			expectedDetail: "Email already registered",
		},
		{
			name: "internal server error",
			body: RegisterRequest{Email: testEmail, Password: "secret123", Name: "Ana"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), testEmail, "secret123", "Ana").
					Return(nil, errors.New("database failure"))
			},
			expectedCode:   http.StatusInternalServerError,
			expectedDetail: "Internal server error",
		},
		{
			name:           "invalid json",
			body:           "{invalid json}",
			expectedCode:   http.StatusBadRequest,
			expectedDetail: "invalid request body",
		},
		{
			name:           "missing name",
			body:           RegisterRequest{Email: testEmail, Password: "secret123"},
			expectedCode:   http.StatusBadRequest,
			expectedDetail: "name is required",
		},
		{
			name:           "short password",
			body:           RegisterRequest{Email: testEmail, Password: "123", Name: "Ana"},
			expectedCode:   http.StatusBadRequest,
			expectedDetail: "password must be at least 6 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewRegisterHandler(mockSvc)(rr, newRequest(t, http.MethodPost, "/api/auth/register", tt.body, uuid.Nil, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedDetail != "" {
				assert.Equal(t, tt.expectedDetail, decodeDetail(t, rr))
				return
			}

			var resp AuthResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "JWT_TOKEN", resp.Token)
			assert.Equal(t, userID, resp.User.ID)
			assert.False(t, resp.User.SubscriptionActive)
		})
	}
}
