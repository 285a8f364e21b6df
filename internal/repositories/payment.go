package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
)

const paymentColumns = `id, session_id, user_id, amount, currency, plan_type, payment_status, created_at, updated_at`

type PaymentWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPaymentWriteRepository(db *sqlx.DB, txGetter TxGetter) *PaymentWriteRepository {
	return &PaymentWriteRepository{db: db, txGetter: txGetter}
}

func (r *PaymentWriteRepository) Save(ctx context.Context, tx *models.PaymentTransaction) error {
	const query = `
		INSERT INTO payment_transactions (id, session_id, user_id, amount, currency, plan_type, payment_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	args := []any{tx.ID, tx.SessionID, tx.UserID, tx.Amount, tx.Currency, tx.PlanType, tx.PaymentStatus, tx.CreatedAt}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)

	if isUniqueViolation(err) {
		return models.ErrDuplicate
	}
	return err
}

// MarkPaid moves a transaction to paid if it is not paid yet and returns it.
// It returns nil when the session is unknown or was already paid, which makes
// repeated confirmations a no-op.
func (r *PaymentWriteRepository) MarkPaid(ctx context.Context, sessionID string) (*models.PaymentTransaction, error) {
	query := `
		UPDATE payment_transactions
		SET payment_status = 'paid', updated_at = NOW()
		WHERE session_id = $1 AND payment_status <> 'paid'
		RETURNING ` + paymentColumns

	var tx models.PaymentTransaction
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &tx, query, sessionID)
	logQuery(query, []any{sessionID}, tx.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

type PaymentReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPaymentReadRepository(db *sqlx.DB, txGetter TxGetter) *PaymentReadRepository {
	return &PaymentReadRepository{db: db, txGetter: txGetter}
}

// GetBySessionID returns nil when the session is unknown.
func (r *PaymentReadRepository) GetBySessionID(ctx context.Context, sessionID string) (*models.PaymentTransaction, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_transactions WHERE session_id = $1`

	var tx models.PaymentTransaction
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &tx, query, sessionID)
	logQuery(query, []any{sessionID}, tx.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// ListByUser returns the transactions of a user, newest first.
func (r *PaymentReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PaymentTransaction, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payment_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	txs := []models.PaymentTransaction{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &txs, query, userID)
	logQuery(query, []any{userID}, len(txs), err)
	return txs, err
}
