package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
)

const mealPlanColumns = `id, user_id, plan_type, schema_version, plan_data, recommendations, calories_target, macros, created_at`

type MealPlanWriteRepository struct {
	db *sqlx.DB
}

func NewMealPlanWriteRepository(db *sqlx.DB) *MealPlanWriteRepository {
	return &MealPlanWriteRepository{db: db}
}

// Save inserts a plan. A second trial plan for the same user yields
// models.ErrDuplicate through the partial unique index.
func (r *MealPlanWriteRepository) Save(ctx context.Context, plan *models.MealPlan) error {
	const query = `
		INSERT INTO meal_plans (id, user_id, plan_type, schema_version, plan_data, recommendations, calories_target, macros, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	args := []any{
		plan.ID, plan.UserID, plan.PlanType, plan.SchemaVersion, plan.PlanData,
		plan.Recommendations, plan.CaloriesTarget, plan.Macros, plan.CreatedAt,
	}

	_, err := r.db.ExecContext(ctx, query, args...)
	logQuery(query, []any{plan.ID, plan.UserID, plan.PlanType}, nil, err)

	if isUniqueViolation(err) {
		return models.ErrDuplicate
	}
	return err
}

type MealPlanReadRepository struct {
	db *sqlx.DB
}

func NewMealPlanReadRepository(db *sqlx.DB) *MealPlanReadRepository {
	return &MealPlanReadRepository{db: db}
}

// ListByUser returns the newest plans of a user first.
func (r *MealPlanReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.MealPlan, error) {
	query := `
		SELECT ` + mealPlanColumns + `
		FROM meal_plans
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	plans := []models.MealPlan{}
	err := r.db.SelectContext(ctx, &plans, query, userID, limit)
	logQuery(query, []any{userID, limit}, len(plans), err)
	return plans, err
}

// GetByID returns the plan only when it belongs to userID; otherwise nil.
func (r *MealPlanReadRepository) GetByID(ctx context.Context, userID, planID uuid.UUID) (*models.MealPlan, error) {
	query := `
		SELECT ` + mealPlanColumns + `
		FROM meal_plans
		WHERE id = $1 AND user_id = $2
	`
	var plan models.MealPlan
	err := r.db.GetContext(ctx, &plan, query, planID, userID)
	logQuery(query, []any{planID, userID}, plan.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// HasTrial reports whether the user already owns a trial plan.
func (r *MealPlanReadRepository) HasTrial(ctx context.Context, userID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM meal_plans WHERE user_id = $1 AND plan_type = 'trial')`
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID)
	logQuery(query, []any{userID}, exists, err)
	return exists, err
}

// ListSummariesByUser returns plan headers without payloads, newest first.
func (r *MealPlanReadRepository) ListSummariesByUser(ctx context.Context, userID uuid.UUID) ([]models.MealPlanSummary, error) {
	const query = `
		SELECT id, plan_type, calories_target, created_at
		FROM meal_plans
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	plans := []models.MealPlanSummary{}
	err := r.db.SelectContext(ctx, &plans, query, userID)
	logQuery(query, []any{userID}, len(plans), err)
	return plans, err
}
