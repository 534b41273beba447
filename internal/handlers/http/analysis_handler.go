// internal/handlers/http/analysis_handler.go
// Endpoint analisis forecast (analyze, stream SSE, kpis, narrative, neighborhood, decisions)

package http

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"alphawell/internal/forecast"
	"alphawell/internal/repositories"
	"alphawell/internal/services"
	"alphawell/internal/util"
	"alphawell/internal/util/sse"
)

type AnalysisHandler struct {
	Analysis     *services.AnalysisService
	Neighborhood *services.NeighborhoodService
	Narrative    *services.NarrativeService
	Decisions    repositories.DecisionRepository
	Metrics      *Metrics
	Log          *zap.Logger
}

// Defaults mengembalikan parameter form awal.
func Defaults(w http.ResponseWriter, r *http.Request) {
	util.WriteJSON(w, http.StatusOK, forecast.DefaultInputs())
}

// decodeInputs: field yang tidak dikirim memakai nilai default, lalu divalidasi
// (horizon maksimal 50 tahun, harga & rate tidak negatif).
func decodeInputs(w http.ResponseWriter, r *http.Request) (forecast.Inputs, error) {
	in := forecast.DefaultInputs()
	if err := decodeJSON(w, r, &in); err != nil {
		return in, err
	}
	if err := util.Validate(in); err != nil {
		return in, err
	}
	return in, nil
}

func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	in, err := decodeInputs(w, r)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	a, err := h.Analysis.Analyze(r.Context(), in)
	if err != nil {
		// hanya terjadi kalau client memutus koneksi
		h.Log.Info("analysis aborted", zap.Error(err))
		return
	}
	h.observe(a)
	util.WriteJSON(w, http.StatusOK, a)
}

// Stream menjalankan run yang sama dan mengirim fase sebagai SSE:
// phase*, notice?, result, done.
func (h *AnalysisHandler) Stream(w http.ResponseWriter, r *http.Request) {
	in, err := decodeInputs(w, r)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	flusher := sse.PrepareSSE(w)
	w.WriteHeader(http.StatusOK)

	a, err := h.Analysis.AnalyzeWithProgress(r.Context(), in, func(phase string) {
		_ = sse.WriteEvent(w, flusher, "phase", map[string]string{"phase": phase})
	})
	if err != nil {
		h.Log.Info("analysis stream aborted", zap.Error(err))
		return
	}
	h.observe(a)
	if a.Notice != "" {
		_ = sse.WriteEvent(w, flusher, "notice", map[string]string{"notice": a.Notice})
	}
	_ = sse.WriteEvent(w, flusher, "result", a)
	_ = sse.WriteEvent(w, flusher, "done", map[string]string{"runId": a.RunID})
}

type kpiReq struct {
	Production []forecast.ProductionRecord `json:"production"`
	Economics  []forecast.EconomicRecord   `json:"economics"`
	Carbon     []forecast.CarbonRecord     `json:"carbon"`
	forecast.Inputs
}

// KPIs menjalankan classifier saja; kpis null kalau salah satu seri kosong.
func (h *AnalysisHandler) KPIs(w http.ResponseWriter, r *http.Request) {
	req := kpiReq{Inputs: forecast.DefaultInputs()}
	if err := decodeJSON(w, r, &req); err != nil {
		util.WriteError(w, err)
		return
	}
	p := req.Inputs
	k := forecast.Classify(req.Production, req.Economics, req.Carbon, p.Economic, p.Well, p.Carbon)
	util.WriteJSON(w, http.StatusOK, map[string]any{"kpis": k})
}

type narrativeReq struct {
	Well forecast.WellParameters `json:"wellParams"`
	KPIs *forecast.KPISummary    `json:"kpis"`
}

func (h *AnalysisHandler) ExecutiveSummary(w http.ResponseWriter, r *http.Request) {
	req := narrativeReq{Well: forecast.DefaultWellParameters()}
	if err := decodeJSON(w, r, &req); err != nil {
		util.WriteError(w, err)
		return
	}
	if req.KPIs == nil {
		util.WriteError(w, util.BadInput("kpis required"))
		return
	}
	util.WriteJSON(w, http.StatusOK, h.Narrative.Summarize(r.Context(), req.Well, *req.KPIs))
}

// Neighborhood: ?lat=&lng=&formation=[&npv=] ; npv (dalam $M) mengaktifkan rank.
func (h *AnalysisHandler) NeighborhoodBenchmark(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	well := forecast.DefaultWellParameters()
	var err error
	if v := q.Get("lat"); v != "" {
		if well.Latitude, err = strconv.ParseFloat(v, 64); err != nil {
			util.WriteError(w, util.BadInput("invalid lat"))
			return
		}
	}
	if v := q.Get("lng"); v != "" {
		if well.Longitude, err = strconv.ParseFloat(v, 64); err != nil {
			util.WriteError(w, util.BadInput("invalid lng"))
			return
		}
	}
	if v := q.Get("formation"); v != "" {
		well.Formation = v
	}
	var kpis *forecast.KPISummary
	if v := q.Get("npv"); v != "" {
		npv, err := strconv.ParseFloat(v, 64)
		if err != nil {
			util.WriteError(w, util.BadInput("invalid npv"))
			return
		}
		kpis = &forecast.KPISummary{NPV: npv}
	}
	util.WriteJSON(w, http.StatusOK, h.Neighborhood.Benchmark(r.Context(), well, kpis))
}

// Decisions: ?limit=&verdict= (verdict boleh berulang).
func (h *AnalysisHandler) ListDecisions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repositories.DecisionFilter{Verdicts: q["verdict"]}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			util.WriteError(w, util.BadInput("invalid limit"))
			return
		}
		f.Limit = n
	}
	items, err := h.Decisions.List(r.Context(), f)
	if err != nil {
		h.Log.Error("list decisions", zap.Error(err))
		util.WriteError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, map[string]any{"decisions": items, "count": len(items)})
}

func (h *AnalysisHandler) observe(a *services.Analysis) {
	if h.Metrics != nil {
		h.Metrics.ObserveAnalysis(a)
	}
}
