package nutrition

import (
	"math"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
)

const (
	idealBMI       = 22.0
	gainFactor     = 1.10
	minWeeklyRate  = 0.1
	lossBaseRate   = 0.5
	lossPerDayRate = 0.1
	gainBaseRate   = 0.25
	gainPerDayRate = 0.05
)

// ProjectionInput holds what a goal projection needs.
type ProjectionInput struct {
	CurrentWeight float64
	HeightCm      float64
	Goal          string
	ExerciseDays  int
	Custom        *models.CustomGoal
}

// Projection is a target weight with its estimated timeline.
type Projection struct {
	TargetWeight   float64
	GoalType       string
	IsCustom       bool
	WeeklyRate     float64
	EstimatedWeeks int
}

// GoalType maps goal text to a lose/gain/maintain tag.
func (c *Calculator) GoalType(goal string) string {
	switch {
	case c.keywords.IsLose(goal):
		return models.GoalLose
	case c.keywords.IsGain(goal):
		return models.GoalGain
	default:
		return models.GoalMaintain
	}
}

// DefaultTarget is the system-computed target weight for the goal.
func (c *Calculator) DefaultTarget(weightKg, heightCm float64, goal string) float64 {
	switch c.GoalType(goal) {
	case models.GoalLose:
		h := heightCm / 100
		return round1(idealBMI * h * h)
	case models.GoalGain:
		return round1(weightKg * gainFactor)
	default:
		return weightKg
	}
}

// WeeklyRate returns the expected kg/week change towards target. The loss or
// gain formula is chosen by the direction of the change.
func WeeklyRate(current, target float64, exerciseDays int) float64 {
	var rate float64
	switch {
	case target < current:
		rate = lossBaseRate + lossPerDayRate*float64(exerciseDays)
	case target > current:
		rate = gainBaseRate + gainPerDayRate*float64(exerciseDays)
	default:
		return 0
	}
	return math.Max(rate, minWeeklyRate)
}

// EstimatedWeeks is |target-current| / rate rounded to whole weeks.
func EstimatedWeeks(current, target, rate float64) int {
	if rate <= 0 {
		return 0
	}
	return int(math.Round(math.Abs(target-current) / rate))
}

// Project computes the effective target. A custom goal replaces the computed
// target and goal type but not the rate formula.
func (c *Calculator) Project(in ProjectionInput) Projection {
	p := Projection{
		TargetWeight: c.DefaultTarget(in.CurrentWeight, in.HeightCm, in.Goal),
		GoalType:     c.GoalType(in.Goal),
	}
	if in.Custom != nil {
		p.TargetWeight = in.Custom.TargetWeight
		p.GoalType = in.Custom.GoalType
		p.IsCustom = in.Custom.IsCustom
	}
	if in.CurrentWeight <= 0 {
		return p
	}

	rate := WeeklyRate(in.CurrentWeight, p.TargetWeight, in.ExerciseDays)
	p.WeeklyRate = round2(rate)
	p.EstimatedWeeks = EstimatedWeeks(in.CurrentWeight, p.TargetWeight, rate)
	return p
}
