package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
)

func TestHydrationRepository_UpsertIsSingleStatement(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHydrationRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	for _, glasses := range []int{3, 8} {
		mock.ExpectExec(`INSERT INTO hydration_records .* ON CONFLICT \(user_id, date\) DO UPDATE SET glasses = EXCLUDED.glasses`).
			WithArgs(userID.String(), "2025-03-01", glasses, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Upsert(ctx, &models.HydrationRecord{UserID: userID, Date: "2025-03-01", Glasses: glasses, UpdatedAt: time.Now()})
		require.NoError(t, err)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHydrationRepository_GetByDate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHydrationRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	mock.ExpectQuery(`FROM hydration_records WHERE user_id = \$1 AND date = \$2::date`).
		WithArgs(userID.String(), "2025-03-01").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "date", "glasses", "updated_at"}).
			AddRow(userID.String(), "2025-03-01", 8, time.Now()))

	rec, err := repo.GetByDate(ctx, userID, "2025-03-01")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 8, rec.Glasses)

	mock.ExpectQuery(`FROM hydration_records`).
		WithArgs(userID.String(), "2025-03-02").
		WillReturnError(sql.ErrNoRows)

	rec, err = repo.GetByDate(ctx, userID, "2025-03-02")
	assert.NoError(t, err)
	assert.Nil(t, rec)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHydrationRepository_ListSince(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHydrationRepository(db)
	userID := uuid.New()

	mock.ExpectQuery(`WHERE user_id = \$1 AND date >= \$2::date ORDER BY date DESC LIMIT \$3`).
		WithArgs(userID.String(), "2025-02-23", 7).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "date", "glasses", "updated_at"}).
			AddRow(userID.String(), "2025-03-01", 8, time.Now()).
			AddRow(userID.String(), "2025-02-28", 5, time.Now()))

	recs, err := repo.ListSince(context.Background(), userID, "2025-02-23", 7)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "2025-03-01", recs[0].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}
