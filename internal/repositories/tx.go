package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-nutriplan/internal/logger"
)

// TxSetter binds a transaction to a context.
type TxSetter func(ctx context.Context, tx *sqlx.Tx) context.Context

// TxRunner runs a function inside a database transaction. When ctx already
// carries one, the function joins it and the outer owner commits.
type TxRunner struct {
	db       *sqlx.DB
	txGetter TxGetter
	txSetter TxSetter
}

func NewTxRunner(db *sqlx.DB, txGetter TxGetter, txSetter TxSetter) *TxRunner {
	return &TxRunner{db: db, txGetter: txGetter, txSetter: txSetter}
}

func (r *TxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if r.txGetter != nil && r.txGetter(ctx) != nil {
		return fn(ctx)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			panic(rec)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
			}
			return
		}
		err = tx.Commit()
	}()

	return fn(r.txSetter(ctx, tx))
}
