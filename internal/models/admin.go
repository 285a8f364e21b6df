package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminStats is the dashboard aggregate.
// swagger:model AdminStats
type AdminStats struct {
	TotalUsers                  int            `json:"total_users"`
	ActiveSubscriptions         int            `json:"active_subscriptions"`
	TotalPlansGenerated         int            `json:"total_plans_generated"`
	TotalRevenue                float64        `json:"total_revenue"`
	UsersBySubscription         map[string]int `json:"users_by_subscription"`
	PlansByType                 map[string]int `json:"plans_by_type"`
	RecentSignups               int            `json:"recent_signups"`
	QuestionnaireCompletionRate float64        `json:"questionnaire_completion_rate"`
}

// AdminCounters are the raw counts the dashboard is derived from.
type AdminCounters struct {
	TotalUsers             int     `db:"total_users"`
	ActiveSubscriptions    int     `db:"active_subscriptions"`
	TotalPlansGenerated    int     `db:"total_plans_generated"`
	TotalRevenue           float64 `db:"total_revenue"`
	RecentSignups          int     `db:"recent_signups"`
	UsersWithQuestionnaire int     `db:"users_with_questionnaire"`
	UsersBySubscription    map[string]int
	PlansByType            map[string]int
}

// AdminUser is a user row for the admin list. It never carries the password hash.
// swagger:model AdminUser
type AdminUser struct {
	ID                  uuid.UUID  `db:"id" json:"id"`
	Email               string     `db:"email" json:"email"`
	Name                string     `db:"name" json:"name"`
	SubscriptionType    *string    `db:"subscription_type" json:"subscription_type"`
	SubscriptionExpires *time.Time `db:"subscription_expires" json:"subscription_expires"`
	CreatedAt           time.Time  `db:"created_at" json:"created_at"`
	PlansCount          int        `db:"plans_count" json:"plans_count"`
	HasQuestionnaire    bool       `db:"has_questionnaire" json:"has_questionnaire"`
}

// AdminPayment is a transaction joined with its owner's email.
// swagger:model AdminPayment
type AdminPayment struct {
	PaymentTransaction
	UserEmail string `db:"user_email" json:"user_email"`
}

// AdminUserDetail is everything stored about one user.
// swagger:model AdminUserDetail
type AdminUserDetail struct {
	User          UserSummary            `json:"user"`
	CreatedAt     time.Time              `json:"created_at"`
	Questionnaire *QuestionnaireResponse `json:"questionnaire"`
	Plans         []MealPlanSummary      `json:"plans"`
	Progress      []WeightRecord         `json:"progress"`
	Payments      []PaymentTransaction   `json:"payments"`
}

// UserFilter narrows admin user listings.
type UserFilter struct {
	Search string
	Limit  int
	Skip   int
}

// PaymentFilter narrows admin payment listings.
type PaymentFilter struct {
	Status string
	Limit  int
	Skip   int
}
