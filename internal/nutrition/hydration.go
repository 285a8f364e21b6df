package nutrition

import "math"

// Hydration defaults used before a questionnaire exists.
const (
	DefaultGlasses  = 8
	DefaultWaterML  = 2000
	DefaultWeightKg = 70.0
	DefaultGoal     = "general"
	GlassML         = 250
)

const (
	baseMLPerKg   = 33
	loseMLPerKg   = 40
	muscleMLPerKg = 38
)

// Water is a daily water target.
type Water struct {
	ML      int
	Glasses int
}

// Hydration returns the daily water target for a weight and goal.
func (c *Calculator) Hydration(weightKg float64, goal string) Water {
	factor := float64(baseMLPerKg)
	switch {
	case c.keywords.IsLose(goal):
		factor = loseMLPerKg
	case c.keywords.IsMuscle(goal):
		factor = muscleMLPerKg
	}

	// Halves round to even.
	ml := int(math.RoundToEven(weightKg * factor))
	return Water{
		ML:      ml,
		Glasses: int(math.RoundToEven(float64(ml) / GlassML)),
	}
}
