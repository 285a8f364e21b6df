package models

import (
	"time"

	"github.com/google/uuid"
)

// HydrationRecord is the glass count of one user on one day.
// swagger:model HydrationRecord
type HydrationRecord struct {
	UserID    uuid.UUID `db:"user_id" json:"-"`
	Date      string    `db:"date" json:"date"`
	Glasses   int       `db:"glasses" json:"glasses"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// HydrationGoal is the daily water target.
// swagger:model HydrationGoal
type HydrationGoal struct {
	DailyGlasses int     `json:"daily_glasses"`
	DailyML      int     `json:"daily_ml"`
	WeightKg     float64 `json:"weight_kg"`
	Goal         string  `json:"goal"`
}
