package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
)

type HydrationRepository struct {
	db *sqlx.DB
}

func NewHydrationRepository(db *sqlx.DB) *HydrationRepository {
	return &HydrationRepository{db: db}
}

// Upsert sets the glass count of a day in one statement, so logging the same
// day twice leaves a single row holding the last value.
func (r *HydrationRepository) Upsert(ctx context.Context, rec *models.HydrationRecord) error {
	const query = `
		INSERT INTO hydration_records (user_id, date, glasses, updated_at)
		VALUES ($1, $2::date, $3, $4)
		ON CONFLICT (user_id, date) DO UPDATE
		SET glasses = EXCLUDED.glasses, updated_at = EXCLUDED.updated_at
	`
	args := []any{rec.UserID, rec.Date, rec.Glasses, rec.UpdatedAt}

	_, err := r.db.ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)
	return err
}

// GetByDate returns nil when nothing was logged that day.
func (r *HydrationRepository) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*models.HydrationRecord, error) {
	const query = `
		SELECT user_id, date::text AS date, glasses, updated_at
		FROM hydration_records
		WHERE user_id = $1 AND date = $2::date
	`
	var rec models.HydrationRecord
	err := r.db.GetContext(ctx, &rec, query, userID, date)
	logQuery(query, []any{userID, date}, rec.Glasses, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListSince returns at most limit records on or after since, newest first.
func (r *HydrationRepository) ListSince(ctx context.Context, userID uuid.UUID, since string, limit int) ([]models.HydrationRecord, error) {
	const query = `
		SELECT user_id, date::text AS date, glasses, updated_at
		FROM hydration_records
		WHERE user_id = $1 AND date >= $2::date
		ORDER BY date DESC
		LIMIT $3
	`
	records := []models.HydrationRecord{}
	err := r.db.SelectContext(ctx, &records, query, userID, since, limit)
	logQuery(query, []any{userID, since, limit}, len(records), err)
	return records, err
}
