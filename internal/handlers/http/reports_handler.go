// internal/handlers/http/reports_handler.go
// Proxy report API Wells AI (save/list/load) per user yang login

package http

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"alphawell/internal/forecast"
	"alphawell/internal/middleware"
	"alphawell/internal/util"
	"alphawell/internal/wellsai"
)

// ReportClient dipenuhi oleh *wellsai.Client.
type ReportClient interface {
	SaveReport(ctx context.Context, userID string, rep wellsai.Report) (*wellsai.SaveReportResponse, error)
	ListReports(ctx context.Context, userID string) ([]wellsai.ReportSummary, error)
	LoadReport(ctx context.Context, userID, reportID string) (*wellsai.Report, error)
}

type ReportsHandler struct {
	Client ReportClient // nil = remote tidak dikonfigurasi
	Log    *zap.Logger
	// PathID mengambil {id} dari router (chi.URLParam).
	PathID func(r *http.Request) string
}

func (h *ReportsHandler) ready(w http.ResponseWriter, r *http.Request) (string, bool) {
	if h.Client == nil {
		util.WriteError(w, util.Unavailable("report service not configured"))
		return "", false
	}
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		util.WriteError(w, util.Unauthorized("missing token"))
		return "", false
	}
	return p.UserID, true
}

func (h *ReportsHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.ready(w, r)
	if !ok {
		return
	}
	var res forecast.Result
	if err := decodeJSON(w, r, &res); err != nil {
		util.WriteError(w, err)
		return
	}
	if len(res.Production) == 0 {
		util.WriteError(w, util.BadInput("production series required"))
		return
	}
	out, err := h.Client.SaveReport(r.Context(), userID, wellsai.BuildReport(res))
	if err != nil {
		h.writeRemoteError(w, "save report", err)
		return
	}
	util.WriteJSON(w, http.StatusCreated, out)
}

func (h *ReportsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.ready(w, r)
	if !ok {
		return
	}
	items, err := h.Client.ListReports(r.Context(), userID)
	if err != nil {
		h.writeRemoteError(w, "list reports", err)
		return
	}
	util.WriteJSON(w, http.StatusOK, map[string]any{"reports": items})
}

// Load mengembalikan seri hasil adaptasi; KPI dihitung ulang lewat /kpis dengan parameter terkini.
func (h *ReportsHandler) Load(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.ready(w, r)
	if !ok {
		return
	}
	id := h.PathID(r)
	if id == "" {
		util.WriteError(w, util.BadInput("report id required"))
		return
	}
	rep, err := h.Client.LoadReport(r.Context(), userID, id)
	if err != nil {
		h.writeRemoteError(w, "load report", err)
		return
	}
	s := wellsai.Adapt(rep)
	util.WriteJSON(w, http.StatusOK, map[string]any{
		"reportId":   id,
		"production": s.Production,
		"economics":  s.Economics,
		"carbon":     s.Carbon,
	})
}

func (h *ReportsHandler) writeRemoteError(w http.ResponseWriter, op string, err error) {
	h.Log.Warn("wells ai report call failed", zap.String("op", op), zap.Error(err))
	var apiErr *wellsai.APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		util.WriteError(w, util.NotFound("report not found"))
		return
	}
	util.WriteJSON(w, http.StatusBadGateway, map[string]string{
		"error":   "bad_gateway",
		"message": op + " failed",
	})
}
