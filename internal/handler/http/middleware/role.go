package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/mir-ams/attendance-backend-go/internal/domain/user"
	"github.com/mir-ams/attendance-backend-go/internal/handler/http/response"
)

// RequireRole gates a route group on a minimum role. Roles rank
// employee < supervisor < hr < admin.
func RequireRole(required string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", required))
				return
			}

			role, ok := claims["role"].(string)
			if !ok || !user.RoleAtLeast(role, required) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", required))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly requires the admin role exactly.
func AdminOnly(next http.Handler) http.Handler {
	return RequireRole(user.RoleAdmin)(next)
}
