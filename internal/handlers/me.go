package handlers

//go:generate mockgen -source=me.go -destination=me_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-nutriplan/internal/logger"
	"github.com/sbilibin2017/gw-nutriplan/internal/models"
	"github.com/sbilibin2017/gw-nutriplan/internal/services"
)

// MeGetter loads the authenticated user.
type MeGetter interface {
	Me(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// NewMeHandler returns the current user summary.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} models.UserSummary
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler(svc MeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		user, err := svc.Me(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusUnauthorized, "User not found")
				return
			}
			logger.Log.Errorw("failed to load user", "userID", claims.UserID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, user.Summary(time.Now()))
	}
}
