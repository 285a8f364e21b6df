package middlewares

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-nutriplan/internal/logger"
)

// txOptions keeps the paid-session compare-and-set and the subscription
// update on one read-committed snapshot per statement.
var txOptions = &sql.TxOptions{Isolation: sql.LevelReadCommitted}

// TxMiddleware wraps an HTTP handler with a database transaction. The
// transaction commits when the handler answers below 400 and rolls back otherwise.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), txOptions)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "path", r.URL.Path, "error", err)
				writeDetail(w, http.StatusInternalServerError, "internal server error")
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					_ = tx.Rollback()
					panic(rec)
				}
			}()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r.WithContext(WithTx(r.Context(), tx)))

			if rw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "path", r.URL.Path, "status", rw.statusCode, "error", err)
				}
				return
			}
			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "path", r.URL.Path, "error", err)
			}
		})
	}
}

type txContextKey struct{}

var txKey = txContextKey{}

// WithTx stores a transaction in the context
func WithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
