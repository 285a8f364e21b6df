package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment statuses.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// PricingPlan is one purchasable subscription tier.
type PricingPlan struct {
	Type     string
	Name     string
	Price    float64
	Currency string
	Duration time.Duration
}

// PaymentTransaction tracks one checkout session.
// swagger:model PaymentTransaction
type PaymentTransaction struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	SessionID     string     `db:"session_id" json:"session_id"`
	UserID        uuid.UUID  `db:"user_id" json:"user_id"`
	Amount        float64    `db:"amount" json:"amount"`
	Currency      string     `db:"currency" json:"currency"`
	PlanType      string     `db:"plan_type" json:"plan_type"`
	PaymentStatus string     `db:"payment_status" json:"payment_status"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at"`
}

// CheckoutRequest describes a session to open with the payment provider.
type CheckoutRequest struct {
	UserID     uuid.UUID
	Email      string
	Plan       PricingPlan
	SuccessURL string
	CancelURL  string
}

// CheckoutSession is the provider view of a checkout.
type CheckoutSession struct {
	ID            string
	URL           string
	Status        string
	PaymentStatus string
	AmountTotal   int64
	Currency      string
	Metadata      map[string]string
}

// CheckoutEvent is a verified provider callback.
type CheckoutEvent struct {
	Type    string
	Session *CheckoutSession
}

// SubscriptionEvent is published when a payment activates a subscription.
type SubscriptionEvent struct {
	EventID   string    `json:"event_id"`
	Type      string    `json:"type"`
	UserID    string    `json:"user_id"`
	PlanType  string    `json:"plan_type"`
	SessionID string    `json:"session_id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	ExpiresAt time.Time `json:"expires_at"`
	Source    string    `json:"source"`
	Timestamp int64     `json:"timestamp"`
}

// PaymentStatusView is the state of a checkout as reported to its owner.
// swagger:model PaymentStatusView
type PaymentStatusView struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	AmountTotal   int64  `json:"amount_total"`
	Currency      string `json:"currency"`
}
