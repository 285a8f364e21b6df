package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
)

func TestAdminRepository_Counters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdminRepository(db)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`AS total_users`).
		WithArgs(now, now.AddDate(0, 0, -7)).
		WillReturnRows(sqlmock.NewRows([]string{
			"total_users", "active_subscriptions", "total_plans_generated",
			"total_revenue", "recent_signups", "users_with_questionnaire",
		}).AddRow(10, 3, 12, "1197.00", 4, 8))
	mock.ExpectQuery(`FROM users GROUP BY 1`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "n"}).
			AddRow("none", 7).AddRow("monthly", 2).AddRow("weekly", 1))
	mock.ExpectQuery(`FROM meal_plans GROUP BY 1`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "n"}).
			AddRow("trial", 9).AddRow("monthly", 3))

	c, err := repo.Counters(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 10, c.TotalUsers)
	assert.Equal(t, 3, c.ActiveSubscriptions)
	assert.Equal(t, 1197.0, c.TotalRevenue)
	assert.Equal(t, 8, c.UsersWithQuestionnaire)
	assert.Equal(t, map[string]int{"none": 7, "monthly": 2, "weekly": 1}, c.UsersBySubscription)
	assert.Equal(t, map[string]int{"trial": 9, "monthly": 3}, c.PlansByType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepository_ListUsers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdminRepository(db)
	filter := models.UserFilter{Search: "ana", Limit: 50, Skip: 0}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users u WHERE`).
		WithArgs("ana").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`AS plans_count`).
		WithArgs("ana", 50, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "name", "subscription_type", "subscription_expires", "created_at", "plans_count", "has_questionnaire",
		}).AddRow(uuid.NewString(), "ana@example.com", "Ana", nil, nil, time.Now(), 2, true))

	users, total, err := repo.ListUsers(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, users, 1)
	assert.Equal(t, 2, users[0].PlansCount)
	assert.True(t, users[0].HasQuestionnaire)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepository_ListPayments(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdminRepository(db)
	filter := models.PaymentFilter{Status: "paid", Limit: 20, Skip: 20}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM payment_transactions t WHERE`).
		WithArgs("paid").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))
	mock.ExpectQuery(`LEFT JOIN users u ON u.id = t.user_id`).
		WithArgs("paid", 20, 20).
		WillReturnRows(sqlmock.NewRows(append(append([]string{}, paymentRowColumns...), "user_email")).
			AddRow(uuid.NewString(), "cs_1", uuid.NewString(), 499.0, "mxn", "monthly", "paid", time.Now(), time.Now(), "ana@example.com"))

	payments, total, err := repo.ListPayments(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 21, total)
	require.Len(t, payments, 1)
	assert.Equal(t, "ana@example.com", payments[0].UserEmail)
	assert.Equal(t, "cs_1", payments[0].SessionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
