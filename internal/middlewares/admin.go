package middlewares

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=middlewares

import (
	"net/http"

	"github.com/sbilibin2017/gw-nutriplan/internal/jwt"
	"github.com/sbilibin2017/gw-nutriplan/internal/logger"
)

// AdminChecker decides whether an email belongs to an administrator.
type AdminChecker interface {
	IsAdmin(email string) bool
}

// AdminMiddleware lets through only requests whose authenticated email is on
// the allowlist. It must run after AuthMiddleware.
func AdminMiddleware(checker AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := jwt.ClaimsFromContext(r.Context())
			if !ok {
				writeDetail(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			if !checker.IsAdmin(claims.Email) {
				logger.Log.Warnw("admin access denied", "user_id", claims.UserID, "email", claims.Email)
				writeDetail(w, http.StatusForbidden, "Admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
