// internal/middleware/middleware_test.go

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alphawell/internal/auth"
	"alphawell/internal/middleware"
	"alphawell/internal/models"
)

func echoPrincipal(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	_, _ = w.Write([]byte(p.UserID + "|" + p.Role))
}

func TestJWTAuth(t *testing.T) {
	m := auth.NewManager("k", time.Minute, time.Hour, nil)
	pair, err := m.Issue(models.User{ID: "u-9", Email: "a@b.c", Role: models.RoleAnalyst})
	require.NoError(t, err)

	h := middleware.JWTAuth(m)(http.HandlerFunc(echoPrincipal))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+pair.Access)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "u-9|analyst", rr.Body.String())
}

func TestRequireRole(t *testing.T) {
	h := middleware.RequireRole("operator")(http.HandlerFunc(echoPrincipal))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(middleware.WithPrincipal(req.Context(), middleware.Principal{UserID: "x", Role: "investor"}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	req = req.WithContext(middleware.WithPrincipal(req.Context(), middleware.Principal{UserID: "x", Role: "operator"}))
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequestIDAndCORS(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFrom(r.Context())
	})
	h := middleware.CORSWithOrigin("https://app.alphawell.io")(middleware.RequestID(middleware.Logging(zap.NewNop())(inner)))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rr.Header().Get("X-Request-ID"))
	assert.Equal(t, "https://app.alphawell.io", rr.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "fixed-id", rr.Header().Get("X-Request-ID"))

	rr = httptest.NewRecorder()
	seen = ""
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, seen, "preflight tidak diteruskan")
}
