package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a row of the users table.
type User struct {
	ID                  uuid.UUID  `db:"id"`
	Email               string     `db:"email"`
	Name                string     `db:"name"`
	PasswordHash        string     `db:"password_hash"`
	SubscriptionType    *string    `db:"subscription_type"`
	SubscriptionExpires *time.Time `db:"subscription_expires"`
	CreatedAt           time.Time  `db:"created_at"`
}

// SubscriptionActive reports whether the user holds a subscription that has
// not expired at now. A subscription without expiry never lapses.
func (u *User) SubscriptionActive(now time.Time) bool {
	if u.SubscriptionType == nil || *u.SubscriptionType == "" {
		return false
	}
	if u.SubscriptionExpires == nil {
		return true
	}
	return u.SubscriptionExpires.UTC().After(now.UTC())
}

// UserSummary is the public view of a user.
// swagger:model UserSummary
type UserSummary struct {
	ID                  uuid.UUID  `json:"id"`
	Email               string     `json:"email"`
	Name                string     `json:"name"`
	SubscriptionType    *string    `json:"subscription_type"`
	SubscriptionExpires *time.Time `json:"subscription_expires"`
	SubscriptionActive  bool       `json:"subscription_active"`
}

// Summary builds the public view evaluated at now.
func (u *User) Summary(now time.Time) UserSummary {
	return UserSummary{
		ID:                  u.ID,
		Email:               u.Email,
		Name:                u.Name,
		SubscriptionType:    u.SubscriptionType,
		SubscriptionExpires: u.SubscriptionExpires,
		SubscriptionActive:  u.SubscriptionActive(now),
	}
}

// AuthResult is returned by register and login.
type AuthResult struct {
	Token string
	User  *User
}
