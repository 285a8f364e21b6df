package models

import (
	"time"

	"github.com/google/uuid"
)

// Goal type tags.
const (
	GoalLose     = "bajar"
	GoalGain     = "aumentar"
	GoalMaintain = "mantener"
)

// WeightRecord is one weight sample. Date is a calendar day (YYYY-MM-DD).
// swagger:model WeightRecord
type WeightRecord struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Weight    float64   `db:"weight" json:"weight"`
	Date      string    `db:"date" json:"date"`
	Notes     string    `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CustomGoal is a target weight chosen by the user.
type CustomGoal struct {
	UserID       uuid.UUID `db:"user_id"`
	TargetWeight float64   `db:"target_weight"`
	GoalType     string    `db:"goal_type"`
	IsCustom     bool      `db:"is_custom"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// GoalView is the effective goal for a user.
// swagger:model GoalView
type GoalView struct {
	TargetWeight   float64 `json:"target_weight"`
	GoalType       string  `json:"goal_type"`
	IsCustom       bool    `json:"is_custom"`
	CurrentWeight  float64 `json:"current_weight"`
	WeeklyRate     float64 `json:"weekly_rate"`
	EstimatedWeeks int     `json:"estimated_weeks"`
}

// ProgressStats aggregates a user's weight history.
// swagger:model ProgressStats
type ProgressStats struct {
	InitialWeight  float64 `json:"initial_weight"`
	CurrentWeight  float64 `json:"current_weight"`
	TargetWeight   float64 `json:"target_weight"`
	WeightChange   float64 `json:"weight_change"`
	TotalRecords   int     `json:"total_records"`
	Goal           string  `json:"goal"`
	GoalType       string  `json:"goal_type"`
	IsCustomGoal   bool    `json:"is_custom_goal"`
	BMI            float64 `json:"bmi"`
	BMICategory    string  `json:"bmi_category"`
	WeeklyRate     float64 `json:"weekly_rate"`
	EstimatedWeeks int     `json:"estimated_weeks"`
}
