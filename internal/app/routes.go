// internal/app/routes.go
package app

import (
	"net/http"

	"github.com/gorilla/mux"

	"alphawell/internal/auth"
	hh "alphawell/internal/handlers/http"
	"alphawell/internal/middleware"
)

type Handlers struct {
	Auth     *hh.AuthHandler
	Analysis *hh.AnalysisHandler
	Reports  *hh.ReportsHandler
	Metrics  *hh.Metrics
	Tokens   *auth.Manager
	Ready    http.HandlerFunc
}

// RegisterRoutes: route publik di mux, /api/analysis/* diteruskan ke subrouter chi.
func RegisterRoutes(r *mux.Router, h Handlers) {
	// --- no prefix ---
	r.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/readyz", h.Ready).Methods(http.MethodGet)
	r.HandleFunc("/metrics", h.Metrics.Handler).Methods(http.MethodGet)

	// --- /api prefix ---
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	api.HandleFunc("/defaults", hh.Defaults).Methods(http.MethodGet)

	authR := api.PathPrefix("/auth").Subrouter()
	authR.HandleFunc("/signup", h.Auth.Signup).Methods(http.MethodPost)
	authR.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)
	authR.HandleFunc("/refresh", h.Auth.Refresh).Methods(http.MethodPost)
	authR.HandleFunc("/logout", h.Auth.Logout).Methods(http.MethodPost)
	authR.Handle("/me", middleware.JWTAuth(h.Tokens)(http.HandlerFunc(h.Auth.Me))).Methods(http.MethodGet)

	// Analysis (JWT protected)
	api.PathPrefix("/analysis").Handler(analysisRouter(h))
}
