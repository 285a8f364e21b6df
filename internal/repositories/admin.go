package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
)

// AdminRepository runs the cross-user reads of the dashboard.
type AdminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Counters collects the raw dashboard numbers evaluated at now.
func (r *AdminRepository) Counters(ctx context.Context, now time.Time) (*models.AdminCounters, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM users
			  WHERE subscription_type IS NOT NULL AND subscription_type <> ''
			    AND (subscription_expires IS NULL OR subscription_expires > $1)) AS active_subscriptions,
			(SELECT COUNT(*) FROM meal_plans) AS total_plans_generated,
			(SELECT COALESCE(SUM(amount), 0) FROM payment_transactions WHERE payment_status = 'paid') AS total_revenue,
			(SELECT COUNT(*) FROM users WHERE created_at >= $2) AS recent_signups,
			(SELECT COUNT(DISTINCT user_id) FROM questionnaire_responses) AS users_with_questionnaire
	`
	now = now.UTC()
	weekAgo := now.AddDate(0, 0, -7)

	var c models.AdminCounters
	err := r.db.GetContext(ctx, &c, query, now, weekAgo)
	logQuery(query, []any{now, weekAgo}, c.TotalUsers, err)
	if err != nil {
		return nil, err
	}

	if c.UsersBySubscription, err = r.groupCount(ctx, `
		SELECT COALESCE(NULLIF(subscription_type, ''), 'none') AS key, COUNT(*) AS n
		FROM users
		GROUP BY 1
	`); err != nil {
		return nil, err
	}
	if c.PlansByType, err = r.groupCount(ctx, `
		SELECT plan_type AS key, COUNT(*) AS n
		FROM meal_plans
		GROUP BY 1
	`); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *AdminRepository) groupCount(ctx context.Context, query string) (map[string]int, error) {
	var rows []struct {
		Key string `db:"key"`
		N   int    `db:"n"`
	}
	err := r.db.SelectContext(ctx, &rows, query)
	logQuery(query, nil, len(rows), err)
	if err != nil {
		return nil, err
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Key] = row.N
	}
	return out, nil
}

// ListUsers pages through users, newest first, optionally matching search
// against email or name. It also returns the total of matching users.
func (r *AdminRepository) ListUsers(ctx context.Context, f models.UserFilter) ([]models.AdminUser, int, error) {
	const where = `WHERE ($1 = '' OR u.email ILIKE '%' || $1 || '%' OR u.name ILIKE '%' || $1 || '%')`

	countQuery := `SELECT COUNT(*) FROM users u ` + where
	var total int
	err := r.db.GetContext(ctx, &total, countQuery, f.Search)
	logQuery(countQuery, []any{f.Search}, total, err)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT u.id, u.email, u.name, u.subscription_type, u.subscription_expires, u.created_at,
		       (SELECT COUNT(*) FROM meal_plans p WHERE p.user_id = u.id) AS plans_count,
		       EXISTS (SELECT 1 FROM questionnaire_responses q WHERE q.user_id = u.id) AS has_questionnaire
		FROM users u
		` + where + `
		ORDER BY u.created_at DESC
		LIMIT $2 OFFSET $3
	`
	users := []models.AdminUser{}
	err = r.db.SelectContext(ctx, &users, query, f.Search, f.Limit, f.Skip)
	logQuery(query, []any{f.Search, f.Limit, f.Skip}, len(users), err)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// ListPayments pages through transactions, newest first, optionally by status.
func (r *AdminRepository) ListPayments(ctx context.Context, f models.PaymentFilter) ([]models.AdminPayment, int, error) {
	const where = `WHERE ($1 = '' OR t.payment_status = $1)`

	countQuery := `SELECT COUNT(*) FROM payment_transactions t ` + where
	var total int
	err := r.db.GetContext(ctx, &total, countQuery, f.Status)
	logQuery(countQuery, []any{f.Status}, total, err)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT t.id, t.session_id, t.user_id, t.amount, t.currency, t.plan_type, t.payment_status,
		       t.created_at, t.updated_at, COALESCE(u.email, '') AS user_email
		FROM payment_transactions t
		LEFT JOIN users u ON u.id = t.user_id
		` + where + `
		ORDER BY t.created_at DESC
		LIMIT $2 OFFSET $3
	`
	payments := []models.AdminPayment{}
	err = r.db.SelectContext(ctx, &payments, query, f.Status, f.Limit, f.Skip)
	logQuery(query, []any{f.Status, f.Limit, f.Skip}, len(payments), err)
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}
