package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
)

type WeightWriteRepository struct {
	db *sqlx.DB
}

func NewWeightWriteRepository(db *sqlx.DB) *WeightWriteRepository {
	return &WeightWriteRepository{db: db}
}

func (r *WeightWriteRepository) Save(ctx context.Context, rec *models.WeightRecord) error {
	const query = `
		INSERT INTO weight_records (id, user_id, weight, date, notes, created_at)
		VALUES ($1, $2, $3, $4::date, $5, $6)
	`
	args := []any{rec.ID, rec.UserID, rec.Weight, rec.Date, rec.Notes, rec.CreatedAt}

	_, err := r.db.ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)
	return err
}

// Delete removes a record owned by userID and reports whether one existed.
func (r *WeightWriteRepository) Delete(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM weight_records WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id, userID}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

type WeightReadRepository struct {
	db *sqlx.DB
}

func NewWeightReadRepository(db *sqlx.DB) *WeightReadRepository {
	return &WeightReadRepository{db: db}
}

// ListByUser returns the records of a user ordered by date, oldest first.
func (r *WeightReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WeightRecord, error) {
	const query = `
		SELECT id, user_id, weight, date::text AS date, notes, created_at
		FROM weight_records
		WHERE user_id = $1
		ORDER BY date ASC, created_at ASC
	`
	records := []models.WeightRecord{}
	err := r.db.SelectContext(ctx, &records, query, userID)
	logQuery(query, []any{userID}, len(records), err)
	return records, err
}
