package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
)

type QuestionnaireWriteRepository struct {
	db *sqlx.DB
}

func NewQuestionnaireWriteRepository(db *sqlx.DB) *QuestionnaireWriteRepository {
	return &QuestionnaireWriteRepository{db: db}
}

// Save inserts a new response. Responses are never updated in place.
func (r *QuestionnaireWriteRepository) Save(ctx context.Context, resp *models.QuestionnaireResponse) error {
	const query = `
		INSERT INTO questionnaire_responses (id, user_id, data, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query, resp.ID, resp.UserID, resp.Data, resp.CreatedAt)
	logQuery(query, []any{resp.ID, resp.UserID}, nil, err)
	return err
}

type QuestionnaireReadRepository struct {
	db *sqlx.DB
}

func NewQuestionnaireReadRepository(db *sqlx.DB) *QuestionnaireReadRepository {
	return &QuestionnaireReadRepository{db: db}
}

// GetLatest returns the most recent response of the user, or nil.
func (r *QuestionnaireReadRepository) GetLatest(ctx context.Context, userID uuid.UUID) (*models.QuestionnaireResponse, error) {
	const query = `
		SELECT id, user_id, data, created_at
		FROM questionnaire_responses
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	var resp models.QuestionnaireResponse
	err := r.db.GetContext(ctx, &resp, query, userID)
	logQuery(query, []any{userID}, resp.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
