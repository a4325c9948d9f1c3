package middleware

import (
	"net/http"

	"github.com/fdestech/timetrack-backend-go/internal/domain/user"
	"github.com/fdestech/timetrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func roleFromContext(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return user.Role(roleStr), true
}

// RequireReviewer requires hr or manager role
func RequireReviewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || (role != user.RoleHR && role != user.RoleManager) {
			response.HandleError(w, user.ErrReviewerRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireManager requires manager role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || role != user.RoleManager {
			response.HandleError(w, user.ErrManagerRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireEmployee requires employee role
func RequireEmployee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || role != user.RoleEmployee {
			response.HandleError(w, user.ErrEmployeeRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
