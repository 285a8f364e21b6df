package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

type txKey struct{}

func testTxGetter(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}

func testTxSetter(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func TestTxRunner_Commit(t *testing.T) {
	db, mock := newMockDB(t)
	runner := NewTxRunner(db, testTxGetter, testTxSetter)

	mock.ExpectBegin()
	mock.ExpectCommit()

	var inside *sqlx.Tx
	err := runner.WithinTx(context.Background(), func(ctx context.Context) error {
		inside = testTxGetter(ctx)
		return nil
	})

	assert.NoError(t, err)
	assert.NotNil(t, inside)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRunner_RollbackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	runner := NewTxRunner(db, testTxGetter, testTxSetter)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := runner.WithinTx(context.Background(), func(context.Context) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRunner_RollbackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	runner := NewTxRunner(db, testTxGetter, testTxSetter)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = runner.WithinTx(context.Background(), func(context.Context) error { panic("boom") })
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRunner_JoinsOuterTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	runner := NewTxRunner(db, testTxGetter, testTxSetter)

	mock.ExpectBegin()
	outer, err := db.Beginx()
	assert.NoError(t, err)
	ctx := testTxSetter(context.Background(), outer)

	// No second Begin and no Commit: the outer owner finishes the transaction.
	err = runner.WithinTx(ctx, func(ctx context.Context) error {
		assert.Same(t, outer, testTxGetter(ctx))
		return nil
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
