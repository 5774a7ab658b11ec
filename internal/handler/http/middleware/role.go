package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/handler/http/response"
)

// AdminOnly requires admin role. Must run after AuthRequired.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profile, err := auth.MustProfile(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !profile.IsAdmin() {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
