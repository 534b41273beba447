// middleware/rbac.go
// Middleware RBAC: batasi endpoint ke role tertentu

package middleware

import (
	"net/http"

	"alphawell/internal/util"
)

// RequireRole harus dipasang setelah JWTAuth.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFrom(r.Context())
			if !ok {
				util.WriteError(w, util.Unauthorized("missing token"))
				return
			}
			if _, ok := allowed[p.Role]; !ok {
				util.WriteJSON(w, http.StatusForbidden, map[string]string{
					"error":   "forbidden",
					"message": "role " + p.Role + " not allowed",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
