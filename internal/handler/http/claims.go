package http

import (
	"net/http"

	"github.com/fdestech/timetrack-backend-go/internal/domain/auth"
	"github.com/fdestech/timetrack-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// principal resolves the authenticated {id, role} pair from the verified
// access token. Only valid behind the AuthRequired middleware.
func principal(r *http.Request) (userID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", auth.ErrInvalidToken
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", "", auth.ErrInvalidToken
	}
	return userID, user.Role(roleStr), nil
}
