package handlers

//go:generate mockgen -source=hydration.go -destination=hydration_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
	"github.com/sbilibin2017/gw-nutriplan/internal/services"
)

// HydrationTracker manages daily water intake.
type HydrationTracker interface {
	Goal(ctx context.Context, userID uuid.UUID) (*models.HydrationGoal, error)
	Log(ctx context.Context, userID uuid.UUID, glasses int, date string) (*models.HydrationRecord, error)
	Today(ctx context.Context, userID uuid.UUID) (*models.HydrationRecord, error)
	History(ctx context.Context, userID uuid.UUID, days int) ([]models.HydrationRecord, error)
}

// HydrationLogRequest sets the glass count of a day.
// swagger:model HydrationLogRequest
type HydrationLogRequest struct {
	// required: true
	// default: 6
	Glasses *int `json:"glasses" validate:"required"`

	// Calendar day, defaults to today
	Date string `json:"date"`
}

// NewHydrationGoalHandler returns the daily water target.
// @Summary Hydration goal
// @Tags hydration
// @Produce json
// @Success 200 {object} models.HydrationGoal
// @Router /hydration/goal [get]
// @Security BearerAuth
func NewHydrationGoalHandler(svc HydrationTracker) http.HandlerFunc {
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

// NewHydrationLogHandler sets the glass count for a day. Repeated calls overwrite.
// @Summary Log hydration
// @Tags hydration
// @Accept json
// @Produce json
// @Param request body handlers.HydrationLogRequest true "Glasses"
// @Success 200 {object} models.HydrationRecord
// @Failure 400 {object} handlers.ErrorResponse "Invalid glasses or date"
// @Router /hydration/log [post]
// @Security BearerAuth
func NewHydrationLogHandler(svc HydrationTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req HydrationLogRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		rec, err := svc.Log(r.Context(), claims.UserID, *req.Glasses, req.Date)
		if err != nil {
			writeProgressError(w, claims.UserID, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// NewHydrationTodayHandler returns today's record, zero when nothing was logged.
// @Summary Today's hydration
// @Tags hydration
// @Produce json
// @Success 200 {object} models.HydrationRecord
// @Router /hydration/today [get]
// @Security BearerAuth
func NewHydrationTodayHandler(svc HydrationTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		rec, err := svc.Today(r.Context(), claims.UserID)
		if err != nil {
			writeProgressError(w, claims.UserID, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// NewHydrationHistoryHandler returns the last N days, newest first.
// @Summary Hydration history
// @Tags hydration
// @Produce json
// @Param days query int false "Days to include" default(7)
// @Success 200 {array} models.HydrationRecord
// @Failure 400 {object} handlers.ErrorResponse "Invalid days"
// @Router /hydration/history [get]
// @Security BearerAuth
func NewHydrationHistoryHandler(svc HydrationTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		days, err := queryInt(r, "days", services.DefaultHistoryDays)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		records, err := svc.History(r.Context(), claims.UserID, days)
		if err != nil {
			writeProgressError(w, claims.UserID, err)
			return
		}
		writeJSON(w, http.StatusOK, records)
	}
}
