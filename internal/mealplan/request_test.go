package mealplan

import (
	"testing"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
	"github.com/sbilibin2017/gw-nutriplan/internal/nutrition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots_SharesSumToOne(t *testing.T) {
	for count := MinMealsPerDay; count <= MaxMealsPerDay; count++ {
		slots, err := Slots(count)
		require.NoError(t, err)
		require.Len(t, slots, count)

		var sum float64
		for _, s := range slots {
			sum += s.Share
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "count %d", count)
	}
}

func TestSlots_Unsupported(t *testing.T) {
	for _, count := range []int{0, 2, 7} {
		_, err := Slots(count)
		assert.ErrorIs(t, err, ErrUnsupportedMealCount)
	}
}

func TestNewRequest(t *testing.T) {
	targets := nutrition.Targets{Calories: 2000}

	tests := []struct {
		name        string
		variant     Variant
		mealsPerDay int
		wantDays    int
		wantSlots   int
		wantErr     error
	}{
		{"trial ignores meals per day", Trial, 6, 1, TrialMealsPerDay, nil},
		{"full with five meals", Full, 5, 7, 5, nil},
		{"full with three meals", Full, 3, 7, 3, nil},
		{"full with bad meal count", Full, 8, 0, 0, ErrUnsupportedMealCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewRequest(tt.variant, models.QuestionnaireData{}, targets, tt.mealsPerDay)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, req.Days, tt.wantDays)
			assert.Len(t, req.Slots, tt.wantSlots)
			assert.Equal(t, "Lunes", req.Days[0])
		})
	}
}

func TestRequest_SlotCalories(t *testing.T) {
	req, err := NewRequest(Full, models.QuestionnaireData{}, nutrition.Targets{Calories: 2091}, 5)
	require.NoError(t, err)

	got := make([]int, len(req.Slots))
	for i, s := range req.Slots {
		got[i] = req.SlotCalories(s)
	}
	assert.Equal(t, []int{522, 209, 731, 209, 418}, got)
}

func TestVariant_String(t *testing.T) {
	assert.Equal(t, "trial", Trial.String())
	assert.Equal(t, "full", Full.String())
}
