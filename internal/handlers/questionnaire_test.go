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
)

func validQuestionnaire() models.QuestionnaireData {
	return models.QuestionnaireData{
		Name:         "Ana",
		Age:          30,
		BirthDate:    "1995-04-12",
		Sex:          "femenino",
		HeightCm:     165,
		WeightKg:     70,
		MainGoal:     "Bajar de peso",
		ExerciseDays: 3,
		Allergies:    []string{"cacahuate"},
	}
}

func TestSubmitQuestionnaireHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	savedID := uuid.New()

	missingAge := validQuestionnaire()
	missingAge.Age = 0

	tests := []struct {
		name           string
		body           any
		mockSetup      func(m *MockQuestionnaireSubmitter)
		expectedCode   int
		expectedDetail string
	}{
		{
			name: "saved",
			body: validQuestionnaire(),
			mockSetup: func(m *MockQuestionnaireSubmitter) {
				m.EXPECT().Submit(gomock.Any(), userID, gomock.Any()).
					DoAndReturn(func(_ any, _ uuid.UUID, data models.QuestionnaireData) (uuid.UUID, error) {
						assert.Equal(t, []string{"cacahuate"}, data.Allergies)
						assert.Equal(t, 165.0, data.HeightCm)
						return savedID, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:           "validation error",
			body:           missingAge,
			mockSetup:      func(m *MockQuestionnaireSubmitter) {},
			expectedCode:   http.StatusBadRequest,
			expectedDetail: "edad is required",
		},
		{
			name: "store failure",
			body: validQuestionnaire(),
			mockSetup: func(m *MockQuestionnaireSubmitter) {
				m.EXPECT().Submit(gomock.Any(), userID, gomock.Any()).Return(uuid.Nil, errors.New("db down"))
			},
			expectedCode:   http.StatusInternalServerError,
			expectedDetail: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockQuestionnaireSubmitter(ctrl)
			tt.mockSetup(mockSvc)

			rr := httptest.NewRecorder()
			NewSubmitQuestionnaireHandler(mockSvc)(rr, newRequest(t, http.MethodPost, "/api/questionnaire", tt.body, userID, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedDetail != "" {
				assert.Equal(t, tt.expectedDetail, decodeDetail(t, rr))
				return
			}
			var resp QuestionnaireSavedResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, savedID, resp.ID)
			assert.Equal(t, "Cuestionario guardado correctamente", resp.Message)
		})
	}
}

func TestGetQuestionnaireHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("none yet", func(t *testing.T) {
		mockSvc := NewMockQuestionnaireGetter(ctrl)
		mockSvc.EXPECT().Latest(gomock.Any(), userID).Return(nil, nil)

		rr := httptest.NewRecorder()
		NewGetQuestionnaireHandler(mockSvc)(rr, newRequest(t, http.MethodGet, "/api/questionnaire", nil, userID, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "null", rr.Body.String())
	})

	t.Run("latest", func(t *testing.T) {
		mockSvc := NewMockQuestionnaireGetter(ctrl)
		data := validQuestionnaire()
		data.Normalize()
		mockSvc.EXPECT().Latest(gomock.Any(), userID).Return(&models.QuestionnaireResponse{ID: uuid.New(), UserID: userID, Data: data}, nil)

		rr := httptest.NewRecorder()
		NewGetQuestionnaireHandler(mockSvc)(rr, newRequest(t, http.MethodGet, "/api/questionnaire", nil, userID, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp models.QuestionnaireResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, data, resp.Data)
	})

	t.Run("store failure", func(t *testing.T) {
		mockSvc := NewMockQuestionnaireGetter(ctrl)
		mockSvc.EXPECT().Latest(gomock.Any(), userID).Return(nil, errors.New("db down"))

		rr := httptest.NewRecorder()
		NewGetQuestionnaireHandler(mockSvc)(rr, newRequest(t, http.MethodGet, "/api/questionnaire", nil, userID, nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
