// internal/services/narrative_service.go
// Ringkasan eksekutif: LLM kalau tersedia, template deterministik kalau tidak

package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"alphawell/internal/forecast"
)

// Summarizer dipenuhi oleh *llm.Narrator.
type Summarizer interface {
	Summarize(ctx context.Context, well forecast.WellParameters, k forecast.KPISummary) (string, error)
}

type Narrative struct {
	Text   string `json:"narrative"`
	Source string `json:"source"` // llm | template
}

type NarrativeService struct {
	llm Summarizer // nil = template saja
	log *zap.Logger
}

func NewNarrativeService(llm Summarizer, log *zap.Logger) *NarrativeService {
	if log == nil {
		log = zap.NewNop()
	}
	return &NarrativeService{llm: llm, log: log}
}

func (s *NarrativeService) Summarize(ctx context.Context, well forecast.WellParameters, k forecast.KPISummary) Narrative {
	if s.llm != nil {
		text, err := s.llm.Summarize(ctx, well, k)
		if err == nil && strings.TrimSpace(text) != "" {
			return Narrative{Text: text, Source: "llm"}
		}
		s.log.Warn("llm narrative failed, using template", zap.Error(err))
	}
	return Narrative{Text: TemplateNarrative(well, k), Source: "template"}
}

// TemplateNarrative menghasilkan teks yang sama untuk input yang sama.
func TemplateNarrative(w forecast.WellParameters, k forecast.KPISummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Well %s targets the %s formation with a %.0f ft lateral over %d years. ",
		w.WellID, w.Formation, w.Lateral(), w.HorizonYears())
	fmt.Fprintf(&b, "The forecast recovers %.0f bbl of oil and %.0f mcf of gas, for an NPV of $%.2fM",
		k.EUROil, k.EURGas, k.NPV)
	if k.IRR <= forecast.IRRNeverPaysBack {
		b.WriteString(" and the well does not pay back within the horizon. ")
	} else {
		fmt.Fprintf(&b, " and an IRR of %.1f%%. ", k.IRR)
	}
	fmt.Fprintf(&b, "Lifetime emissions are %.1f t CO2e at %.1f g CO2e/BOE (ESG risk %s). ",
		k.TotalCO2, k.AvgIntensity, k.ESGRisk)
	fmt.Fprintf(&b, "Recommendation: %s.", k.Verdict)
	return b.String()
}
