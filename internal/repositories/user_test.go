package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

var userRowColumns = []string{"id", "email", "name", "password_hash", "subscription_type", "subscription_expires", "created_at"}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db, nil)
	ctx := context.Background()

	id := uuid.New()
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
			WithArgs("ana@example.com").
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow(id.String(), "ana@example.com", "Ana", "hash", nil, nil, created))

		user, err := repo.GetByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "Ana", user.Name)
		assert.Nil(t, user.SubscriptionType)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
			WillReturnError(errors.New("boom"))

		_, err := repo.GetByEmail(ctx, "ana@example.com")
		assert.EqualError(t, err, "boom")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db, nil)

	id := uuid.New()
	plan := "monthly"
	expires := time.Now().UTC().Add(time.Hour)

	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(id.String(), "ana@example.com", "Ana", "hash", plan, expires, time.Now()))

	user, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, user.SubscriptionType)
	assert.Equal(t, "monthly", *user.SubscriptionType)
	assert.True(t, user.SubscriptionActive(time.Now()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	user := &models.User{ID: uuid.New(), Email: "ana@example.com", Name: "Ana", PasswordHash: "hash", CreatedAt: time.Now()}

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(user.ID.String(), user.Email, user.Name, user.PasswordHash, nil, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Save(ctx, user))

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	assert.ErrorIs(t, repo.Save(ctx, user), models.ErrDuplicate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_UpdateSubscription(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()
	id := uuid.New()
	plan := "weekly"
	expires := time.Now().UTC().Add(7 * 24 * time.Hour)

	t.Run("uses transaction from context", func(t *testing.T) {
		mock.ExpectBegin()
		tx, err := db.Beginx()
		require.NoError(t, err)

		repo := NewUserWriteRepository(db, func(context.Context) *sqlx.Tx { return tx })

		mock.ExpectExec(`UPDATE users SET subscription_type = \$2, subscription_expires = \$3 WHERE id = \$1`).
			WithArgs(id.String(), plan, expires).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.UpdateSubscription(ctx, id, &plan, &expires))
		require.NoError(t, tx.Commit())
	})

	t.Run("clears subscription", func(t *testing.T) {
		repo := NewUserWriteRepository(db, nil)
		mock.ExpectExec(`UPDATE users`).
			WithArgs(id.String(), nil, nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateSubscription(ctx, id, nil, nil))
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := NewUserWriteRepository(db, nil)
		mock.ExpectExec(`UPDATE users`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateSubscription(ctx, id, &plan, &expires), sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
