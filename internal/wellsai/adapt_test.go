// internal/wellsai/adapt_test.go

package wellsai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alphawell/internal/forecast"
	"alphawell/internal/wellsai"
)

func TestAdaptRebuildsCumulatives(t *testing.T) {
	resp := &wellsai.AnalyzeResponse{
		ProductionData: []wellsai.ProductionPoint{
			{Time: 1, Oil: 100, Gas: 200, Water: 0},
			{Time: 2, Oil: 50, Gas: 100, Water: 50},
		},
		CashFlow: []wellsai.CashFlowPoint{
			{Month: 1, Date: "2025-01-31T00:00:00", Revenue: 10, OPEX: 2, Taxes: 1, CumulativeCashFlow: 7},
			{Month: 2, Date: "2025-02-28T00:00:00", Revenue: 10, OPEX: 2, Taxes: 1, NetCashFlow: 7, CumulativeCashFlow: 14},
		},
		FinancialMetrics: wellsai.FinancialMetrics{NPV: 2_000_000},
		CarbonIntensity:  []wellsai.IntensityPoint{{Date: "2025-01-31", CarbonIntensity: 33}},
		CarbonMetrics:    wellsai.CarbonMetrics{TotalEmitted: 120},
	}

	s := wellsai.Adapt(resp)
	require.Len(t, s.Production, 2)
	assert.Equal(t, "2025-01-31", s.Production[0].Date)
	assert.Equal(t, 150.0, s.Production[1].CumulativeOil)
	assert.Equal(t, 300.0, s.Production[1].CumulativeGas)
	assert.Equal(t, 50.0, s.Production[1].WaterCut)

	require.Len(t, s.Economics, 2)
	assert.Equal(t, 7.0, s.Economics[0].NetCashFlow, "net dihitung ulang kalau kosong")
	assert.Equal(t, 2_000_000.0, s.Economics[1].NPV)

	require.Len(t, s.Carbon, 1)
	assert.Equal(t, 120.0, s.Carbon[0].CumulativeCO2)
	assert.Equal(t, 33.0, s.Carbon[0].Intensity)
}

func TestAdaptMissingSeriesAndDates(t *testing.T) {
	s := wellsai.Adapt(&wellsai.AnalyzeResponse{
		ProductionData: []wellsai.ProductionPoint{{Time: 7, Oil: 1}},
	})
	require.Len(t, s.Production, 1)
	assert.Equal(t, "M7", s.Production[0].Date)
	assert.Empty(t, s.Economics)
	assert.Empty(t, s.Carbon)

	assert.Empty(t, wellsai.Adapt(nil).Production)
}

func TestBuildAnalyzeRequestNormalizesHorizon(t *testing.T) {
	in := forecast.DefaultInputs()
	in.Well.PredictionHorizon = 0
	in.Well.LateralLength = 0
	req := wellsai.BuildAnalyzeRequest(in)
	assert.Equal(t, forecast.DefaultHorizonYears*12, req.WellParams.PredictionHorizon)
	assert.Equal(t, forecast.DefaultLateralLength, req.WellParams.LateralLengthFt)
}

func TestBuildReportMetrics(t *testing.T) {
	res := forecast.Run(forecast.DefaultInputs())
	rep := wellsai.BuildReport(res)
	last := len(res.Economics) - 1
	assert.Equal(t, res.Economics[last].NPV, rep.FinancialMetrics.NPV)
	assert.Equal(t, res.Carbon[last].CumulativeCO2, rep.CarbonMetrics.TotalEmitted)
	assert.Equal(t, 1, rep.ProductionData[0].Time)
	assert.Equal(t, "Y1M1", rep.CashFlow[0].Date)
}
