package middle

import (
	"net/http"
	"slices"
	"tripdash/internals/security"
	"tripdash/pkg/apperror"
	"tripdash/pkg/utils"

	"github.com/go-chi/chi/v5/middleware"
)

// RequireRole guards JSON API routes. Pages use the gate instead, which
// redirects rather than answering with an error body.
func RequireRole(roles ...security.Role) Middleware {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			reqID := middleware.GetReqID(ctx)

			claims, ok := ClaimsFromContext(ctx)
			if !ok || !claims.Role.Valid() {
				utils.WriteError(w, http.StatusUnauthorized, reqID, apperror.Unauthenticated, utils.SignInNeeded)
				return
			}

			if !slices.Contains(roles, claims.Role) {
				utils.WriteError(w, http.StatusForbidden, reqID, apperror.Forbidden, "user do not have access")
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}
