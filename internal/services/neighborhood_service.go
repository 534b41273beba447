// internal/services/neighborhood_service.go
// Benchmark offset well: rata-rata, band intensitas, dan rank NPV sumur yang dianalisis

package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"alphawell/internal/forecast"
	"alphawell/internal/models"
	"alphawell/internal/wellsai"
)

type IntensityBand string

const (
	BandLow      IntensityBand = "low"
	BandModerate IntensityBand = "moderate"
	BandHigh     IntensityBand = "high"
)

// BandFor: <43 low, <50 moderate, selain itu high.
func BandFor(intensity float64) IntensityBand {
	switch {
	case intensity < 43:
		return BandLow
	case intensity < 50:
		return BandModerate
	default:
		return BandHigh
	}
}

// NeighborFetcher dipenuhi oleh *wellsai.Client.
type NeighborFetcher interface {
	Neighborhood(ctx context.Context, req wellsai.NeighborhoodRequest) (*wellsai.NeighborhoodResponse, error)
}

type BenchmarkWell struct {
	models.NeighborWell
	Band IntensityBand `json:"band"`
}

type Benchmark struct {
	Source       string          `json:"source"` // remote | fixtures
	Wells        []BenchmarkWell `json:"wells"`
	AvgEUR       float64         `json:"avgEur"`
	AvgNPV       float64         `json:"avgNpv"`
	AvgIntensity float64         `json:"avgIntensity"`
	Rank         int             `json:"rank,omitempty"`       // 1 = NPV tertinggi
	TopPercent   int             `json:"topPercent,omitempty"` // "top N%"
	RankLabel    string          `json:"rankLabel,omitempty"`
}

type neighborSet struct {
	source string
	wells  []models.NeighborWell
}

type NeighborhoodService struct {
	remote   NeighborFetcher // nil = pakai fixture saja
	fixtures []models.NeighborWell
	timeout  time.Duration
	log      *zap.Logger
}

func NewNeighborhoodService(remote NeighborFetcher, fixtures []models.NeighborWell, timeout time.Duration, log *zap.Logger) *NeighborhoodService {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	cp := make([]models.NeighborWell, len(fixtures))
	copy(cp, fixtures)
	return &NeighborhoodService{remote: remote, fixtures: cp, timeout: timeout, log: log}
}

// Benchmark mengambil tetangga lalu menghitung statistik; kpis boleh nil (tanpa rank).
func (s *NeighborhoodService) Benchmark(ctx context.Context, well forecast.WellParameters, kpis *forecast.KPISummary) Benchmark {
	return summarizeNeighbors(*s.fetch(ctx, well), kpis)
}

// fetch: remote kalau tersedia & tidak kosong, selain itu fixture.
func (s *NeighborhoodService) fetch(ctx context.Context, well forecast.WellParameters) *neighborSet {
	if s.remote != nil {
		rctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		resp, err := s.remote.Neighborhood(rctx, wellsai.BuildNeighborhoodRequest(well))
		if err != nil {
			s.log.Warn("neighborhood fetch failed", zap.Error(err))
		} else if wells := wellsai.AdaptNeighbors(resp, well.Formation); len(wells) > 0 {
			return &neighborSet{source: "remote", wells: wells}
		}
	}
	cp := make([]models.NeighborWell, len(s.fixtures))
	copy(cp, s.fixtures)
	return &neighborSet{source: "fixtures", wells: cp}
}

func summarizeNeighbors(ns neighborSet, kpis *forecast.KPISummary) Benchmark {
	b := Benchmark{Source: ns.source, Wells: make([]BenchmarkWell, 0, len(ns.wells))}
	if len(ns.wells) == 0 {
		return b
	}
	var eur, npv, ci float64
	for _, w := range ns.wells {
		eur += w.EUR
		npv += w.NPV
		ci += w.CarbonIntensity
		b.Wells = append(b.Wells, BenchmarkWell{NeighborWell: w, Band: BandFor(w.CarbonIntensity)})
	}
	n := float64(len(ns.wells))
	b.AvgEUR = eur / n
	b.AvgNPV = npv / n
	b.AvgIntensity = ci / n

	if kpis != nil {
		rank := 1
		for _, w := range ns.wells {
			if w.NPV > kpis.NPV {
				rank++
			}
		}
		b.Rank = rank
		b.TopPercent = int(math.Ceil(float64(rank) / (n + 1) * 100))
		b.RankLabel = fmt.Sprintf("top %d%%", b.TopPercent)
	}
	return b
}
