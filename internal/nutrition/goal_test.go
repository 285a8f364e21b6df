package nutrition

import (
	"testing"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCalculator_GoalType(t *testing.T) {
	calc := NewCalculator(DefaultKeywords())

	assert.Equal(t, models.GoalLose, calc.GoalType("Bajar de peso"))
	assert.Equal(t, models.GoalGain, calc.GoalType("Aumentar masa muscular"))
	assert.Equal(t, models.GoalMaintain, calc.GoalType("Mejorar salud"))
}

func TestWeeklyRate(t *testing.T) {
	assert.InDelta(t, 0.9, WeeklyRate(85, 70, 4), 1e-9)
	assert.InDelta(t, 0.35, WeeklyRate(60, 66, 2), 1e-9)
	assert.Equal(t, 0.0, WeeklyRate(70, 70, 3))
	assert.Equal(t, minWeeklyRate, WeeklyRate(85, 70, -10))
	assert.Equal(t, minWeeklyRate, WeeklyRate(60, 70, -10))
}

func TestEstimatedWeeks(t *testing.T) {
	assert.Equal(t, 20, EstimatedWeeks(85, 67.4, 0.9))
	assert.Equal(t, 0, EstimatedWeeks(85, 67.4, 0))
}

func TestCalculator_Project(t *testing.T) {
	calc := NewCalculator(DefaultKeywords())

	tests := []struct {
		name      string
		in        ProjectionInput
		target    float64
		goalType  string
		isCustom  bool
		rate      float64
		weeksFrom int
		weeksTo   int
	}{
		{
			name:      "weight loss to ideal weight",
			in:        ProjectionInput{CurrentWeight: 85, HeightCm: 175, Goal: "bajar de peso", ExerciseDays: 4},
			target:    67.4,
			goalType:  models.GoalLose,
			rate:      0.9,
			weeksFrom: 18,
			weeksTo:   22,
		},
		{
			name:      "muscle gain adds ten percent",
			in:        ProjectionInput{CurrentWeight: 60, HeightCm: 170, Goal: "aumentar masa", ExerciseDays: 2},
			target:    66,
			goalType:  models.GoalGain,
			rate:      0.35,
			weeksFrom: 17,
			weeksTo:   17,
		},
		{
			name:     "maintain keeps current weight",
			in:       ProjectionInput{CurrentWeight: 70, HeightCm: 170, Goal: "mantener"},
			target:   70,
			goalType: models.GoalMaintain,
		},
		{
			name: "custom goal overrides target",
			in: ProjectionInput{
				CurrentWeight: 85,
				HeightCm:      175,
				Goal:          "bajar de peso",
				Custom:        &models.CustomGoal{TargetWeight: 80, GoalType: models.GoalLose, IsCustom: true},
			},
			target:    80,
			goalType:  models.GoalLose,
			isCustom:  true,
			rate:      0.5,
			weeksFrom: 10,
			weeksTo:   10,
		},
		{
			name:      "underweight loss goal uses gain rate",
			in:        ProjectionInput{CurrentWeight: 50, HeightCm: 175, Goal: "bajar"},
			target:    67.4,
			goalType:  models.GoalLose,
			rate:      0.25,
			weeksFrom: 70,
			weeksTo:   70,
		},
		{
			name:     "no current weight",
			in:       ProjectionInput{HeightCm: 175, Goal: "mantener"},
			target:   0,
			goalType: models.GoalMaintain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := calc.Project(tt.in)
			assert.InDelta(t, tt.target, p.TargetWeight, 0.1)
			assert.Equal(t, tt.goalType, p.GoalType)
			assert.Equal(t, tt.isCustom, p.IsCustom)
			assert.InDelta(t, tt.rate, p.WeeklyRate, 1e-9)
			assert.GreaterOrEqual(t, p.EstimatedWeeks, tt.weeksFrom)
			assert.LessOrEqual(t, p.EstimatedWeeks, tt.weeksTo)
		})
	}
}
