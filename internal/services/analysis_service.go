// internal/services/analysis_service.go
// Layanan analisis: remote Wells AI dulu, fallback ke simulator lokal per seri

package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"alphawell/internal/forecast"
	"alphawell/internal/util"
	"alphawell/internal/wellsai"
)

type Source string

const (
	SourceLocal  Source = "local"
	SourceRemote Source = "remote"
	SourceMixed  Source = "mixed"
)

const (
	NoticeFallback    = "Analysis failed. Falling back to simulator."
	NoticeRemoteEmpty = "Remote analysis returned no data. Using simulator."
)

// Forecaster dipenuhi oleh *wellsai.Client.
type Forecaster interface {
	Analyze(ctx context.Context, req wellsai.AnalyzeRequest) (*wellsai.AnalyzeResponse, error)
}

type Analysis struct {
	RunID        string                      `json:"runId"`
	Source       Source                      `json:"source"`
	Notice       string                      `json:"notice,omitempty"`
	Production   []forecast.ProductionRecord `json:"production"`
	Economics    []forecast.EconomicRecord   `json:"economics"`
	Carbon       []forecast.CarbonRecord     `json:"carbon"`
	KPIs         *forecast.KPISummary        `json:"kpis"`
	Neighborhood *Benchmark                  `json:"neighborhood,omitempty"`
}

// ProgressFunc menerima nama fase saat run berjalan (dipakai stream SSE).
type ProgressFunc func(phase string)

type AnalysisService struct {
	remote        Forecaster // nil = remote tidak dikonfigurasi
	neighborhood  *NeighborhoodService
	remoteTimeout time.Duration
	log           *zap.Logger
}

func NewAnalysisService(remote Forecaster, nb *NeighborhoodService, remoteTimeout time.Duration, log *zap.Logger) *AnalysisService {
	if remoteTimeout <= 0 {
		remoteTimeout = 20 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AnalysisService{remote: remote, neighborhood: nb, remoteTimeout: remoteTimeout, log: log}
}

func (s *AnalysisService) RemoteEnabled() bool { return s.remote != nil }

func (s *AnalysisService) Analyze(ctx context.Context, in forecast.Inputs) (*Analysis, error) {
	return s.AnalyzeWithProgress(ctx, in, nil)
}

// AnalyzeWithProgress hanya mengembalikan error kalau ctx dibatalkan; kegagalan
// remote diubah menjadi Notice.
func (s *AnalysisService) AnalyzeWithProgress(ctx context.Context, in forecast.Inputs, progress ProgressFunc) (*Analysis, error) {
	if progress == nil {
		progress = func(string) {}
	}
	in = in.Normalize()
	a := &Analysis{RunID: util.NewID()}

	var neighbors *neighborSet
	g, gctx := errgroup.WithContext(ctx)
	if s.neighborhood != nil {
		g.Go(func() error {
			// best-effort: error tidak membatalkan analisis
			neighbors = s.neighborhood.fetch(gctx, in.Well)
			return nil
		})
	}
	g.Go(func() error {
		s.runSeries(gctx, in, a, progress)
		return nil
	})
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	progress("kpis")
	a.KPIs = forecast.Classify(a.Production, a.Economics, a.Carbon, in.Economic, in.Well, in.Carbon)

	if neighbors != nil {
		progress("neighborhood")
		b := summarizeNeighbors(*neighbors, a.KPIs)
		a.Neighborhood = &b
	}

	s.log.Info("analysis completed",
		zap.String("run_id", a.RunID),
		zap.String("source", string(a.Source)),
		zap.Int("months", len(a.Production)),
	)
	return a, nil
}

func (s *AnalysisService) runSeries(ctx context.Context, in forecast.Inputs, a *Analysis, progress ProgressFunc) {
	if s.remote == nil {
		s.runLocal(in, a, progress)
		return
	}

	progress("remote")
	rctx, cancel := context.WithTimeout(ctx, s.remoteTimeout)
	defer cancel()
	resp, err := s.remote.Analyze(rctx, wellsai.BuildAnalyzeRequest(in))
	if err != nil {
		s.log.Warn("remote analysis failed, falling back to simulator", zap.String("run_id", a.RunID), zap.Error(err))
		s.runLocal(in, a, progress)
		a.Notice = NoticeFallback
		return
	}

	rs := wellsai.Adapt(resp)
	fromRemote := 0

	progress("production")
	a.Production = rs.Production
	if len(a.Production) == 0 {
		a.Production = forecast.GenerateProduction(in.Well.PredictionHorizon, in.Well.LateralLength)
	} else {
		fromRemote++
	}

	// fallback ekonomi & karbon diturunkan dari seri produksi yang dipakai.
	// Seri remote yang panjangnya beda dari produksi dianggap kosong supaya
	// record tetap sejajar 1:1 per bulan.
	progress("economics")
	a.Economics = rs.Economics
	if len(a.Economics) != len(a.Production) {
		s.logMisaligned(a.RunID, "economics", len(a.Economics), len(a.Production))
		a.Economics = forecast.GenerateEconomics(a.Production, in.Economic)
	} else {
		fromRemote++
	}

	progress("carbon")
	a.Carbon = rs.Carbon
	if len(a.Carbon) != len(a.Production) {
		s.logMisaligned(a.RunID, "carbon", len(a.Carbon), len(a.Production))
		a.Carbon = forecast.GenerateCarbon(a.Production, in.Carbon)
	} else {
		fromRemote++
	}

	switch fromRemote {
	case 3:
		a.Source = SourceRemote
	case 0:
		a.Source = SourceLocal
		a.Notice = NoticeRemoteEmpty
	default:
		a.Source = SourceMixed
	}
}

func (s *AnalysisService) logMisaligned(runID, series string, got, want int) {
	if got == 0 {
		return
	}
	s.log.Warn("remote series misaligned with production, using simulator",
		zap.String("run_id", runID),
		zap.String("series", series),
		zap.Int("remote_len", got),
		zap.Int("production_len", want),
	)
}

func (s *AnalysisService) runLocal(in forecast.Inputs, a *Analysis, progress ProgressFunc) {
	progress("production")
	a.Production = forecast.GenerateProduction(in.Well.PredictionHorizon, in.Well.LateralLength)
	progress("economics")
	a.Economics = forecast.GenerateEconomics(a.Production, in.Economic)
	progress("carbon")
	a.Carbon = forecast.GenerateCarbon(a.Production, in.Carbon)
	a.Source = SourceLocal
}
