package middleware

import (
	"net/http"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/user"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireOwner restricts a route to the company owner. Worker accounts can
// clock in and out but never see wages, payroll or the recovery numbers.
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Owner access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleOwner) {
			response.Forbidden(w, "Owner access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
