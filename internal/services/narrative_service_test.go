// internal/services/narrative_service_test.go

package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alphawell/internal/forecast"
	"alphawell/internal/services"
)

type fakeSummarizer struct {
	text string
	err  error
}

func (f fakeSummarizer) Summarize(context.Context, forecast.WellParameters, forecast.KPISummary) (string, error) {
	return f.text, f.err
}

func TestNarrativeTemplateFallback(t *testing.T) {
	res := forecast.Run(forecast.DefaultInputs())
	require.NotNil(t, res.KPIs)
	well := forecast.DefaultWellParameters()

	n := services.NewNarrativeService(nil, nil).Summarize(context.Background(), well, *res.KPIs)
	assert.Equal(t, "template", n.Source)
	assert.Contains(t, n.Text, "AW-2024-457")
	assert.Contains(t, n.Text, "does not pay back")
	assert.Contains(t, n.Text, "Recommendation: High Risk.")

	n2 := services.NewNarrativeService(fakeSummarizer{err: errors.New("quota")}, nil).Summarize(context.Background(), well, *res.KPIs)
	assert.Equal(t, n, n2)
}

func TestNarrativeUsesLLM(t *testing.T) {
	k := forecast.KPISummary{Verdict: forecast.VerdictDrill, IRR: 30}
	n := services.NewNarrativeService(fakeSummarizer{text: "Drill it."}, nil).
		Summarize(context.Background(), forecast.DefaultWellParameters(), k)
	assert.Equal(t, "llm", n.Source)
	assert.Equal(t, "Drill it.", n.Text)

	tmpl := services.TemplateNarrative(forecast.DefaultWellParameters(), k)
	assert.Contains(t, tmpl, "IRR of 30.0%")
}
