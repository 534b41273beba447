// internal/handlers/http/health_handler.go
// Handler sederhana untuk health check & readiness

package http

import (
	"context"
	"net/http"
	"time"

	"alphawell/internal/config"
	"alphawell/internal/util"
)

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	util.WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": config.BuildVersion,
	})
}

// Pinger dipenuhi oleh *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// ReadyHandler: 503 kalau DB dikonfigurasi tapi tidak bisa di-ping. db nil = mode memory.
func ReadyHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storage := "memory"
		if db != nil {
			storage = "mysql"
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				util.WriteJSON(w, http.StatusServiceUnavailable, map[string]any{
					"status":  "unavailable",
					"storage": storage,
				})
				return
			}
		}
		util.WriteJSON(w, http.StatusOK, map[string]any{"status": "ready", "storage": storage})
	}
}
