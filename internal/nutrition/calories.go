package nutrition

import (
	"math"
	"strings"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
)

// Activity multipliers.
const (
	ActivitySedentary = 1.2
	ActivityModerate  = 1.55
	ActivityHigh      = 1.725
)

const fatRatio = 0.25

// Profile holds the inputs of the calorie calculation.
type Profile struct {
	WeightKg     float64
	HeightCm     float64
	Age          int
	Sex          string
	Goal         string
	PhysicalJob  bool
	ExerciseDays int
}

// ProfileFromQuestionnaire extracts the calculation inputs from a questionnaire.
func ProfileFromQuestionnaire(q models.QuestionnaireData) Profile {
	return Profile{
		WeightKg:     q.WeightKg,
		HeightCm:     q.HeightCm,
		Age:          q.Age,
		Sex:          q.Sex,
		Goal:         q.MainGoal,
		PhysicalJob:  q.PhysicalJob,
		ExerciseDays: q.ExerciseDays,
	}
}

// Targets is the daily calorie target and its macro split.
type Targets struct {
	Calories int
	Macros   models.Macros
}

// Calculator derives nutrition targets. It holds no state besides the keyword sets.
type Calculator struct {
	keywords Keywords
}

// NewCalculator creates a Calculator using the given keyword sets.
func NewCalculator(keywords Keywords) *Calculator {
	return &Calculator{keywords: keywords}
}

// IsMale reports whether a free-text sex value denotes male.
func IsMale(sex string) bool {
	switch strings.ToLower(strings.TrimSpace(sex)) {
	case "masculino", "male", "hombre", "m":
		return true
	}
	return false
}

// BMR is the Mifflin-St Jeor basal metabolic rate.
func BMR(weightKg, heightCm float64, age int, sex string) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if IsMale(sex) {
		return base + 5
	}
	return base - 161
}

// ActivityMultiplier never decreases as more qualifying conditions apply.
func ActivityMultiplier(physicalJob bool, exerciseDays int) float64 {
	m := ActivitySedentary
	if physicalJob || exerciseDays >= 3 {
		m = math.Max(m, ActivityModerate)
	}
	if exerciseDays >= 5 {
		m = math.Max(m, ActivityHigh)
	}
	return m
}

// Calculate returns the calorie target and macro split for the profile.
func (c *Calculator) Calculate(p Profile) Targets {
	tdee := BMR(p.WeightKg, p.HeightCm, p.Age, p.Sex) * ActivityMultiplier(p.PhysicalJob, p.ExerciseDays)

	switch {
	case c.keywords.IsLose(p.Goal):
		tdee *= 0.8
	case c.keywords.IsGain(p.Goal):
		tdee *= 1.15
	}
	calories := int(tdee)

	proteinRatio := 0.25
	if c.keywords.IsMuscle(p.Goal) {
		proteinRatio = 0.30
	}
	carbRatio := 1 - proteinRatio - fatRatio

	kcal := float64(calories)
	return Targets{
		Calories: calories,
		Macros: models.Macros{
			Protein: round1(kcal * proteinRatio / 4),
			Carbs:   round1(kcal * carbRatio / 4),
			Fat:     round1(kcal * fatRatio / 9),
		},
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
