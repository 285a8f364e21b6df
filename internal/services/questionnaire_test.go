package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
	"github.com/sbilibin2017/gw-nutriplan/internal/nutrition"
	"github.com/sbilibin2017/gw-nutriplan/internal/services"
)

func sampleQuestionnaire() models.QuestionnaireData {
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

func sampleResponse(userID uuid.UUID) *models.QuestionnaireResponse {
	return &models.QuestionnaireResponse{ID: uuid.New(), UserID: userID, Data: sampleQuestionnaire()}
}

func newCalculator() *nutrition.Calculator {
	return nutrition.NewCalculator(nutrition.DefaultKeywords())
}

func TestQuestionnaireService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockQuestionnaireWriter(ctrl)
	svc := services.NewQuestionnaireService(writer, nil)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("saves a normalized copy", func(t *testing.T) {
		var saved *models.QuestionnaireResponse
		writer.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *models.QuestionnaireResponse) error {
			saved = r
			return nil
		})

		id, err := svc.Submit(ctx, userID, sampleQuestionnaire())
		require.NoError(t, err)
		assert.Equal(t, saved.ID, id)
		assert.Equal(t, userID, saved.UserID)
		assert.Equal(t, []string{}, saved.Data.Conditions)
		assert.Equal(t, []string{"cacahuate"}, saved.Data.Allergies)
		assert.False(t, saved.CreatedAt.IsZero())
	})

	t.Run("writer error", func(t *testing.T) {
		writer.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("insert failed"))

		id, err := svc.Submit(ctx, userID, sampleQuestionnaire())
		assert.EqualError(t, err, "insert failed")
		assert.Equal(t, uuid.Nil, id)
	})
}

func TestQuestionnaireService_Latest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockQuestionnaireReader(ctrl)
	svc := services.NewQuestionnaireService(nil, reader)
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name    string
		resp    *models.QuestionnaireResponse
		err     error
		wantErr bool
	}{
		{name: "latest", resp: sampleResponse(userID)},
		{name: "none yet"},
		{name: "error", err: errors.New("db error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader.EXPECT().GetLatest(ctx, userID).Return(tt.resp, tt.err)

			got, err := svc.Latest(ctx, userID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.resp, got)
		})
	}
}
