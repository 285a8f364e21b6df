package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
	"github.com/sbilibin2017/gw-nutriplan/internal/nutrition"
	"github.com/sbilibin2017/gw-nutriplan/internal/services"
)

type progressMocks struct {
	writer         *services.MockWeightWriter
	reader         *services.MockWeightReader
	goals          *services.MockGoalStore
	questionnaires *services.MockQuestionnaireReader
}

func newProgressService(t *testing.T) (*services.ProgressService, progressMocks) {
	ctrl := gomock.NewController(t)
	m := progressMocks{
		writer:         services.NewMockWeightWriter(ctrl),
		reader:         services.NewMockWeightReader(ctrl),
		goals:          services.NewMockGoalStore(ctrl),
		questionnaires: services.NewMockQuestionnaireReader(ctrl),
	}
	return services.NewProgressService(m.writer, m.reader, m.goals, m.questionnaires, newCalculator()), m
}

func TestProgressService_AddWeight(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	today := time.Now().UTC().Format(services.DateLayout)

	tests := []struct {
		name     string
		weight   float64
		date     string
		wantDate string
		wantErr  error
	}{
		{name: "defaults to today", weight: 68.4, wantDate: today},
		{name: "explicit date", weight: 68.4, date: "2025-03-01", wantDate: "2025-03-01"},
		{name: "lower bound", weight: 20, wantDate: today},
		{name: "upper bound", weight: 400, wantDate: today},
		{name: "too light", weight: 19.9, wantErr: services.ErrInvalidWeight},
		{name: "too heavy", weight: 400.1, wantErr: services.ErrInvalidWeight},
		{name: "bad date", weight: 70, date: "01/03/2025", wantErr: services.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newProgressService(t)
			if tt.wantErr == nil {
				m.writer.EXPECT().Save(ctx, gomock.Any()).Return(nil)
			}

			rec, err := svc.AddWeight(ctx, userID, tt.weight, tt.date, " despues de correr ")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDate, rec.Date)
			assert.Equal(t, "despues de correr", rec.Notes)
			assert.Equal(t, userID, rec.UserID)
		})
	}
}

func TestProgressService_DeleteWeight(t *testing.T) {
	ctx := context.Background()
	userID, id := uuid.New(), uuid.New()

	t.Run("deleted", func(t *testing.T) {
		svc, m := newProgressService(t)
		m.writer.EXPECT().Delete(ctx, userID, id).Return(true, nil)
		assert.NoError(t, svc.DeleteWeight(ctx, userID, id))
	})

	t.Run("unknown or foreign", func(t *testing.T) {
		svc, m := newProgressService(t)
		m.writer.EXPECT().Delete(ctx, userID, id).Return(false, nil)
		assert.ErrorIs(t, svc.DeleteWeight(ctx, userID, id), services.ErrNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		svc, m := newProgressService(t)
		m.writer.EXPECT().Delete(ctx, userID, id).Return(false, errors.New("boom"))
		assert.EqualError(t, svc.DeleteWeight(ctx, userID, id), "boom")
	})
}

func TestProgressService_ListWeights(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newProgressService(t)
	m.reader.EXPECT().ListByUser(ctx, userID).Return(nil, nil)

	records, err := svc.ListWeights(ctx, userID)
	require.NoError(t, err)
	assert.NotNil(t, records)
}

func TestProgressService_Stats(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("with records", func(t *testing.T) {
		svc, m := newProgressService(t)
		m.questionnaires.EXPECT().GetLatest(ctx, userID).Return(sampleResponse(userID), nil)
		m.reader.EXPECT().ListByUser(ctx, userID).Return([]models.WeightRecord{
			{Weight: 72, Date: "2025-01-01"},
			{Weight: 70.2, Date: "2025-01-08"},
			{Weight: 68.5, Date: "2025-01-15"},
		}, nil)
		m.goals.EXPECT().Get(ctx, userID).Return(nil, nil)

		stats, err := svc.Stats(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 72.0, stats.InitialWeight)
		assert.Equal(t, 68.5, stats.CurrentWeight)
		assert.Equal(t, -3.5, stats.WeightChange)
		assert.Equal(t, 3, stats.TotalRecords)
		assert.Equal(t, 59.9, stats.TargetWeight)
		assert.Equal(t, models.GoalLose, stats.GoalType)
		assert.False(t, stats.IsCustomGoal)
		assert.Equal(t, "Bajar de peso", stats.Goal)
		assert.Equal(t, 25.2, stats.BMI)
		assert.Equal(t, nutrition.BMIOverweight, stats.BMICategory)
		assert.Equal(t, 0.8, stats.WeeklyRate)
		assert.Equal(t, 11, stats.EstimatedWeeks)
	})

	t.Run("questionnaire only", func(t *testing.T) {
		svc, m := newProgressService(t)
		m.questionnaires.EXPECT().GetLatest(ctx, userID).Return(sampleResponse(userID), nil)
		m.reader.EXPECT().ListByUser(ctx, userID).Return([]models.WeightRecord{}, nil)
		m.goals.EXPECT().Get(ctx, userID).Return(nil, nil)

		stats, err := svc.Stats(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 70.0, stats.InitialWeight)
		assert.Equal(t, 70.0, stats.CurrentWeight)
		assert.Equal(t, 0.0, stats.WeightChange)
		assert.Equal(t, 0, stats.TotalRecords)
		assert.Equal(t, 13, stats.EstimatedWeeks)
	})

	t.Run("custom goal wins", func(t *testing.T) {
		svc, m := newProgressService(t)
		m.questionnaires.EXPECT().GetLatest(ctx, userID).Return(sampleResponse(userID), nil)
		m.reader.EXPECT().ListByUser(ctx, userID).Return(nil, nil)
		m.goals.EXPECT().Get(ctx, userID).Return(&models.CustomGoal{UserID: userID, TargetWeight: 65, GoalType: models.GoalLose, IsCustom: true}, nil)

		stats, err := svc.Stats(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 65.0, stats.TargetWeight)
		assert.True(t, stats.IsCustomGoal)
		assert.Equal(t, 6, stats.EstimatedWeeks)
	})

	t.Run("nothing stored", func(t *testing.T) {
		svc, m := newProgressService(t)
		m.questionnaires.EXPECT().GetLatest(ctx, userID).Return(nil, nil)
		m.reader.EXPECT().ListByUser(ctx, userID).Return(nil, nil)
		m.goals.EXPECT().Get(ctx, userID).Return(nil, nil)

		stats, err := svc.Stats(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 0.0, stats.CurrentWeight)
		assert.Equal(t, 0.0, stats.BMI)
		assert.Empty(t, stats.BMICategory)
		assert.Equal(t, 0, stats.EstimatedWeeks)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, m := newProgressService(t)
		m.questionnaires.EXPECT().GetLatest(ctx, userID).Return(nil, errors.New("db down"))

		_, err := svc.Stats(ctx, userID)
		assert.EqualError(t, err, "db down")
	})
}

func TestProgressService_SetGoal(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name     string
		target   float64
		goalType string
		wantErr  error
	}{
		{name: "valid", target: 65, goalType: models.GoalLose},
		{name: "zero target", target: 0, goalType: models.GoalLose, wantErr: services.ErrInvalidGoal},
		{name: "unknown type", target: 65, goalType: "perder", wantErr: services.ErrInvalidGoalType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newProgressService(t)
			if tt.wantErr == nil {
				m.goals.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, g *models.CustomGoal) error {
					assert.True(t, g.IsCustom)
					assert.Equal(t, tt.target, g.TargetWeight)
					return nil
				})
				m.questionnaires.EXPECT().GetLatest(ctx, userID).Return(sampleResponse(userID), nil)
				m.reader.EXPECT().ListByUser(ctx, userID).Return(nil, nil)
				m.goals.EXPECT().Get(ctx, userID).Return(&models.CustomGoal{TargetWeight: tt.target, GoalType: tt.goalType, IsCustom: true}, nil)
			}

			view, err := svc.SetGoal(ctx, userID, tt.target, tt.goalType)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, view.TargetWeight)
			assert.Equal(t, tt.goalType, view.GoalType)
			assert.True(t, view.IsCustom)
			assert.Equal(t, 70.0, view.CurrentWeight)
		})
	}
}
