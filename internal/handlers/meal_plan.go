package handlers

//go:generate mockgen -source=meal_plan.go -destination=meal_plan_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-nutriplan/internal/logger"
	"github.com/sbilibin2017/gw-nutriplan/internal/models"
	"github.com/sbilibin2017/gw-nutriplan/internal/services"
)

// PlanGenerator creates a plan for the caller.
type PlanGenerator interface {
	GenerateTrial(ctx context.Context, userID uuid.UUID) (*models.MealPlan, error)
	GenerateFull(ctx context.Context, userID uuid.UUID) (*models.MealPlan, error)
}

// PlanReader reads stored plans.
type PlanReader interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.MealPlan, error)
	Get(ctx context.Context, userID, planID uuid.UUID) (*models.MealPlan, error)
}

// PlanExporter renders a plan as PDF.
type PlanExporter interface {
	ExportPDF(ctx context.Context, userID, planID uuid.UUID) ([]byte, string, error)
}

// NewTrialPlanHandler generates the one free single-day plan.
// @Summary Generate trial plan
// @Tags meal-plans
// @Produce json
// @Success 200 {object} models.MealPlan
// @Failure 400 {object} handlers.ErrorResponse "Questionnaire missing or trial already used"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /meal-plans/trial [post]
// @Security BearerAuth
func NewTrialPlanHandler(svc PlanGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		plan, err := svc.GenerateTrial(r.Context(), claims.UserID)
		if err != nil {
			writePlanError(w, claims.UserID, err)
			return
		}
		writeJSON(w, http.StatusOK, plan)
	}
}

// NewGeneratePlanHandler generates a full plan for a subscriber.
// @Summary Generate full plan
// @Tags meal-plans
// @Produce json
// @Success 200 {object} models.MealPlan
// @Failure 400 {object} handlers.ErrorResponse "Questionnaire missing"
// @Failure 403 {object} handlers.ErrorResponse "Active subscription required"
// @Router /meal-plans/generate [post]
// @Security BearerAuth
func NewGeneratePlanHandler(svc PlanGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		plan, err := svc.GenerateFull(r.Context(), claims.UserID)
		if err != nil {
			writePlanError(w, claims.UserID, err)
			return
		}
		writeJSON(w, http.StatusOK, plan)
	}
}

// NewListPlansHandler lists the caller's plans, newest first.
// @Summary List plans
// @Tags meal-plans
// @Produce json
// @Success 200 {array} models.MealPlan
// @Router /meal-plans [get]
// @Security BearerAuth
func NewListPlansHandler(svc PlanReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		plans, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			writePlanError(w, claims.UserID, err)
			return
		}
		writeJSON(w, http.StatusOK, plans)
	}
}

// NewGetPlanHandler returns one of the caller's plans.
// @Summary Get plan
// @Tags meal-plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} models.MealPlan
// @Failure 404 {object} handlers.ErrorResponse "Plan not found"
// @Router /meal-plans/{id} [get]
// @Security BearerAuth
func NewGetPlanHandler(svc PlanReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		planID, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, "Plan not found")
			return
		}

		plan, err := svc.Get(r.Context(), claims.UserID, planID)
		if err != nil {
			writePlanError(w, claims.UserID, err)
			return
		}
		writeJSON(w, http.StatusOK, plan)
	}
}

// NewPlanPDFHandler streams a plan as a PDF attachment.
// @Summary Download plan PDF
// @Tags meal-plans
// @Produce application/pdf
// @Param id path string true "Plan ID"
// @Success 200 {file} binary
// @Failure 404 {object} handlers.ErrorResponse "Plan not found"
// @Router /meal-plans/{id}/pdf [get]
// @Security BearerAuth
func NewPlanPDFHandler(svc PlanExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		planID, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, "Plan not found")
			return
		}

		data, filename, err := svc.ExportPDF(r.Context(), claims.UserID, planID)
		if err != nil {
			writePlanError(w, claims.UserID, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func writePlanError(w http.ResponseWriter, userID uuid.UUID, err error) {
	switch {
	case errors.Is(err, services.ErrQuestionnaireRequired):
		writeError(w, http.StatusBadRequest, "Complete the questionnaire first")
	case errors.Is(err, services.ErrTrialAlreadyUsed):
		writeError(w, http.StatusBadRequest, "Trial plan already used")
	case errors.Is(err, services.ErrSubscriptionRequired):
		writeError(w, http.StatusForbidden, "An active subscription is required to generate plans")
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Plan not found")
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusUnauthorized, "User not found")
	default:
		logger.Log.Errorw("meal plan request failed", "userID", userID, "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
