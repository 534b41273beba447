// internal/middleware/jwt_auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	"alphawell/internal/auth"
	"alphawell/internal/util"
)

type ctxKey int

const principalKey ctxKey = iota

// Principal adalah identitas user yang lolos validasi access token.
type Principal struct {
	UserID string
	Email  string
	Role   string
}

// TokenParser dipenuhi oleh *auth.Manager.
type TokenParser interface {
	ParseAccess(token string) (*auth.Claims, error)
}

// JWTAuth mewajibkan header Authorization: Bearer <access token>.
func JWTAuth(tp TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				util.WriteError(w, util.Unauthorized("missing token"))
				return
			}
			claims, err := tp.ParseAccess(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				util.WriteError(w, util.Unauthorized("invalid token"))
				return
			}
			p := Principal{UserID: claims.Subject, Email: claims.Email, Role: claims.Role}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFrom mengambil user dari context; ok=false kalau request tidak terautentikasi.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}
