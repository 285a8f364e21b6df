package handlers

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-nutriplan/internal/logger"
	"github.com/sbilibin2017/gw-nutriplan/internal/models"
	"github.com/sbilibin2017/gw-nutriplan/internal/services"
)

// AdminChecker tells whether an email is on the allowlist.
type AdminChecker interface {
	IsAdmin(email string) bool
}

// AdminDashboard serves the admin views.
type AdminDashboard interface {
	Stats(ctx context.Context) (*models.AdminStats, error)
	Users(ctx context.Context, f models.UserFilter) ([]models.AdminUser, int, error)
	Payments(ctx context.Context, f models.PaymentFilter) ([]models.AdminPayment, int, error)
	UserDetail(ctx context.Context, userID uuid.UUID) (*models.AdminUserDetail, error)
}

// SubscriptionSetter overrides a user's subscription.
type SubscriptionSetter interface {
	SetSubscription(ctx context.Context, userID uuid.UUID, planType string, days int) (*models.UserSummary, error)
}

// AdminCheckResponse reports whether the caller is an admin.
// swagger:model AdminCheckResponse
type AdminCheckResponse struct {
	IsAdmin bool   `json:"is_admin"`
	Email   string `json:"email"`
}

// AdminUsersResponse is a page of users.
// swagger:model AdminUsersResponse
type AdminUsersResponse struct {
	Users []models.AdminUser `json:"users"`
	Total int                `json:"total"`
}

// AdminPaymentsResponse is a page of payments.
// swagger:model AdminPaymentsResponse
type AdminPaymentsResponse struct {
	Payments []models.AdminPayment `json:"payments"`
	Total    int                   `json:"total"`
}

// SubscriptionRequest overrides a subscription. An empty type clears it.
// swagger:model SubscriptionRequest
type SubscriptionRequest struct {
	// default: monthly
	SubscriptionType string `json:"subscription_type"`
	// Days until expiry, 0 uses the plan duration
	// default: 30
	Days int `json:"days"`
}

// SubscriptionResponse confirms an override.
// swagger:model SubscriptionResponse
type SubscriptionResponse struct {
	Message string             `json:"message"`
	User    models.UserSummary `json:"user"`
}

// NewAdminCheckHandler reports whether the caller is an admin.
// @Summary Admin check
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.AdminCheckResponse
// @Router /admin/check [get]
// @Security BearerAuth
func NewAdminCheckHandler(svc AdminChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, AdminCheckResponse{IsAdmin: svc.IsAdmin(claims.Email), Email: claims.Email})
	}
}

// NewAdminStatsHandler returns the dashboard aggregate.
// @Summary Admin stats
// @Tags admin
// @Produce json
// @Success 200 {object} models.AdminStats
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Router /admin/stats [get]
// @Security BearerAuth
func NewAdminStatsHandler(svc AdminDashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to compute admin stats", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

// NewAdminUsersHandler lists users.
// @Summary Admin users
// @Tags admin
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param skip query int false "Offset"
// @Param search query string false "Email or name fragment"
// @Success 200 {object} handlers.AdminUsersResponse
// @Router /admin/users [get]
// @Security BearerAuth
func NewAdminUsersHandler(svc AdminDashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, skip, ok := pageParams(w, r)
		if !ok {
			return
		}

		users, total, err := svc.Users(r.Context(), models.UserFilter{
			Search: r.URL.Query().Get("search"),
			Limit:  limit,
			Skip:   skip,
		})
		if err != nil {
			logger.Log.Errorw("failed to list users", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, AdminUsersResponse{Users: users, Total: total})
	}
}

// NewAdminUserDetailHandler returns everything stored about one user.
// @Summary Admin user detail
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.AdminUserDetail
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /admin/users/{id} [get]
// @Security BearerAuth
func NewAdminUserDetailHandler(svc AdminDashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		detail, err := svc.UserDetail(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			logger.Log.Errorw("failed to load user detail", "userID", userID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, detail)
	}
}

// NewAdminSetSubscriptionHandler overrides a user's subscription.
// @Summary Override subscription
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body handlers.SubscriptionRequest true "Subscription"
// @Success 200 {object} handlers.SubscriptionResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid plan type or days"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /admin/users/{id}/subscription [put]
// @Security BearerAuth
func NewAdminSetSubscriptionHandler(svc SubscriptionSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		var req SubscriptionRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		user, err := svc.SetSubscription(r.Context(), userID, req.SubscriptionType, req.Days)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidPlanType), errors.Is(err, services.ErrInvalidDays):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("failed to set subscription", "userID", userID, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, SubscriptionResponse{Message: "Suscripción actualizada", User: *user})
	}
}

// NewAdminPaymentsHandler lists payments.
// @Summary Admin payments
// @Tags admin
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param skip query int false "Offset"
// @Param status query string false "pending or paid"
// @Success 200 {object} handlers.AdminPaymentsResponse
// @Router /admin/payments [get]
// @Security BearerAuth
func NewAdminPaymentsHandler(svc AdminDashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, skip, ok := pageParams(w, r)
		if !ok {
			return
		}

		payments, total, err := svc.Payments(r.Context(), models.PaymentFilter{
			Status: r.URL.Query().Get("status"),
			Limit:  limit,
			Skip:   skip,
		})
		if err != nil {
			logger.Log.Errorw("failed to list payments", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, AdminPaymentsResponse{Payments: payments, Total: total})
	}
}

func pageParams(w http.ResponseWriter, r *http.Request) (limit, skip int, ok bool) {
	var err error
	if limit, err = queryInt(r, "limit", services.DefaultAdminPageSize); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return 0, 0, false
	}
	if skip, err = queryInt(r, "skip", 0); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return 0, 0, false
	}
	return limit, skip, true
}
