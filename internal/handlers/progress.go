package handlers

//go:generate mockgen -source=progress.go -destination=progress_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-nutriplan/internal/logger"
	"github.com/sbilibin2017/gw-nutriplan/internal/models"
	"github.com/sbilibin2017/gw-nutriplan/internal/services"
)

// WeightTracker manages weight samples.
type WeightTracker interface {
	AddWeight(ctx context.Context, userID uuid.UUID, weight float64, date, notes string) (*models.WeightRecord, error)
	ListWeights(ctx context.Context, userID uuid.UUID) ([]models.WeightRecord, error)
	DeleteWeight(ctx context.Context, userID, id uuid.UUID) error
}

// GoalTracker reads and overrides the target weight.
type GoalTracker interface {
	Goal(ctx context.Context, userID uuid.UUID) (*models.GoalView, error)
	SetGoal(ctx context.Context, userID uuid.UUID, targetWeight float64, goalType string) (*models.GoalView, error)
}

// StatsGetter aggregates progress.
type StatsGetter interface {
	Stats(ctx context.Context, userID uuid.UUID) (*models.ProgressStats, error)
}

// WeightRequest records one weight sample.
// swagger:model WeightRequest
type WeightRequest struct {
	// Weight in kg
	// required: true
	// default: 68.5
	Weight float64 `json:"weight" validate:"required"`

	// Calendar day, defaults to today
	// default: 2025-01-15
	Date string `json:"date"`

	Notes string `json:"notes"`
}

// GoalRequest overrides the target weight.
// swagger:model GoalRequest
type GoalRequest struct {
	// required: true
	// default: 65
	TargetWeight float64 `json:"target_weight" validate:"required"`

	// One of bajar, aumentar, mantener
	// required: true
	// default: bajar
	GoalType string `json:"goal_type" validate:"required"`
}

// NewAddWeightHandler records a weight sample.
// @Summary Add weight
// @Tags progress
// @Accept json
// @Produce json
// @Param request body handlers.WeightRequest true "Weight sample"
// @Success 200 {object} models.WeightRecord
// @Failure 400 {object} handlers.ErrorResponse "Invalid weight or date"
// @Router /progress/weight [post]
// @Security BearerAuth
func NewAddWeightHandler(svc WeightTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req WeightRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		rec, err := svc.AddWeight(r.Context(), claims.UserID, req.Weight, req.Date, req.Notes)
		if err != nil {
			writeProgressError(w, claims.UserID, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// NewListWeightsHandler lists weight samples ordered by date.
// @Summary List weights
// @Tags progress
// @Produce json
// @Success 200 {array} models.WeightRecord
// @Router /progress/weight [get]
// @Security BearerAuth
func NewListWeightsHandler(svc WeightTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		records, err := svc.ListWeights(r.Context(), claims.UserID)
		if err != nil {
			writeProgressError(w, claims.UserID, err)
			return
		}
		writeJSON(w, http.StatusOK, records)
	}
}

// NewDeleteWeightHandler removes one of the caller's samples.
// @Summary Delete weight
// @Tags progress
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "Record not found"
// @Router /progress/weight/{id} [delete]
// @Security BearerAuth
func NewDeleteWeightHandler(svc WeightTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		id, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, "Record not found")
			return
		}

		if err := svc.DeleteWeight(r.Context(), claims.UserID, id); err != nil {
			writeProgressError(w, claims.UserID, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Registro eliminado"})
	}
}

// NewGetGoalHandler returns the effective goal.
// @Summary Get goal
// @Tags progress
// @Produce json
// @Success 200 {object} models.GoalView
// @Router /progress/goal [get]
// @Security BearerAuth
func NewGetGoalHandler(svc GoalTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		goal, err := svc.Goal(r.Context(), claims.UserID)
		if err != nil {
			writeProgressError(w, claims.UserID, err)
			return
		}
		writeJSON(w, http.StatusOK, goal)
	}
}

// NewSetGoalHandler stores a custom goal.
// @Summary Set goal
// @Tags progress
// @Accept json
// @Produce json
// @Param request body handlers.GoalRequest true "Goal"
// @Success 200 {object} models.GoalView
// @Failure 400 {object} handlers.ErrorResponse "Invalid goal"
// @Router /progress/goal [put]
// @Security BearerAuth
func NewSetGoalHandler(svc GoalTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req GoalRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		goal, err := svc.SetGoal(r.Context(), claims.UserID, req.TargetWeight, req.GoalType)
		if err != nil {
			writeProgressError(w, claims.UserID, err)
			return
		}
		writeJSON(w, http.StatusOK, goal)
	}
}

// NewStatsHandler returns the progress aggregate.
// @Summary Progress stats
// @Tags progress
// @Produce json
// @Success 200 {object} models.ProgressStats
// @Router /progress/stats [get]
// @Security BearerAuth
func NewStatsHandler(svc StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		stats, err := svc.Stats(r.Context(), claims.UserID)
		if err != nil {
			writeProgressError(w, claims.UserID, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

func writeProgressError(w http.ResponseWriter, userID uuid.UUID, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidWeight),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidGoal),
		errors.Is(err, services.ErrInvalidGoalType),
		errors.Is(err, services.ErrInvalidGlasses):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Record not found")
	default:
		logger.Log.Errorw("progress request failed", "userID", userID, "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
