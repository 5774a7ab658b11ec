package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/handler/http/response"
)

// AuthRequired resolves the bearer token to a local user and stores the
// resulting profile in the request context.
func AuthRequired(sessions auth.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			profile, err := sessions.Authenticate(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithProfile(r.Context(), profile)))
		}
		return http.HandlerFunc(hfn)
	}
}

// IdentityRequired only verifies the bearer token; the caller may not have a
// local account yet.
func IdentityRequired(sessions auth.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			identity, err := sessions.Identify(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		}
		return http.HandlerFunc(hfn)
	}
}
