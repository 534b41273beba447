// internal/app/routes_analysis.go
package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"alphawell/internal/middleware"
	"alphawell/internal/models"
)

// analysisRouter memakai path lengkap karena mux tidak memotong prefix.
func analysisRouter(h Handlers) chi.Router {
	r := chi.NewRouter()
	r.Route("/api/analysis", func(cr chi.Router) {
		cr.Use(middleware.JWTAuth(h.Tokens))

		cr.Post("/analyze", h.Analysis.Analyze)
		cr.Post("/stream", h.Analysis.Stream)
		cr.Post("/kpis", h.Analysis.KPIs)
		cr.Post("/narrative", h.Analysis.ExecutiveSummary)
		cr.Get("/neighborhood", h.Analysis.NeighborhoodBenchmark)
		cr.Get("/decisions", h.Analysis.ListDecisions)

		cr.Route("/reports", func(rr chi.Router) {
			rr.Get("/", h.Reports.List)
			rr.Get("/{id}", h.Reports.Load)
			// menyimpan report hanya untuk operator & analyst
			rr.With(middleware.RequireRole(string(models.RoleOperator), string(models.RoleAnalyst))).
				Post("/", h.Reports.Save)
		})
	})
	return r
}

func chiParam(name string) func(r *http.Request) string {
	return func(r *http.Request) string { return chi.URLParam(r, name) }
}
