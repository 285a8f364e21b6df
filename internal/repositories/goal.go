package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
)

type GoalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// Get returns the custom goal of the user, or nil when none was set.
func (r *GoalRepository) Get(ctx context.Context, userID uuid.UUID) (*models.CustomGoal, error) {
	const query = `
		SELECT user_id, target_weight, goal_type, is_custom, updated_at
		FROM custom_goals
		WHERE user_id = $1
	`
	var goal models.CustomGoal
	err := r.db.GetContext(ctx, &goal, query, userID)
	logQuery(query, []any{userID}, goal.TargetWeight, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// Upsert stores the goal, replacing any previous one.
func (r *GoalRepository) Upsert(ctx context.Context, goal *models.CustomGoal) error {
	const query = `
		INSERT INTO custom_goals (user_id, target_weight, goal_type, is_custom, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET target_weight = EXCLUDED.target_weight,
		    goal_type = EXCLUDED.goal_type,
		    is_custom = EXCLUDED.is_custom,
		    updated_at = EXCLUDED.updated_at
	`
	args := []any{goal.UserID, goal.TargetWeight, goal.GoalType, goal.IsCustom, goal.UpdatedAt}

	_, err := r.db.ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)
	return err
}
