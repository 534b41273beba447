// internal/forecast/production_test.go

package forecast_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alphawell/internal/forecast"
)

func TestGenerateProductionLengthAndNonNegative(t *testing.T) {
	for _, years := range []int{1, 5, 10, 15, 20} {
		prod := forecast.GenerateProduction(years, 7500)
		require.Len(t, prod, years*12)
		for i, p := range prod {
			assert.GreaterOrEqual(t, p.Oil, 0.0, "oil month %d", i)
			assert.GreaterOrEqual(t, p.Gas, 0.0, "gas month %d", i)
			assert.GreaterOrEqual(t, p.Water, 0.0, "water month %d", i)
			assert.Equal(t, i+1, p.Month)
		}
	}
}

func TestGenerateProductionEmptyHorizon(t *testing.T) {
	assert.Empty(t, forecast.GenerateProduction(0, 7500))
	assert.Empty(t, forecast.GenerateProduction(-3, 7500))
}

func TestGenerateProductionCapsHorizon(t *testing.T) {
	assert.Len(t, forecast.GenerateProduction(forecast.MaxHorizonYears+1, 7500), forecast.MaxHorizonYears*12)
	// horizon*12 overflow int64 tidak boleh panic di makeslice
	assert.NotPanics(t, func() {
		prod := forecast.GenerateProduction(768614336404564651, 7500)
		assert.Len(t, prod, forecast.MaxHorizonYears*12)
	})
}

func TestGenerateProductionCumulativeRecurrence(t *testing.T) {
	prod := forecast.GenerateProduction(15, 9200)
	require.NotEmpty(t, prod)

	assert.Equal(t, prod[0].Oil, prod[0].CumulativeOil)
	assert.Equal(t, prod[0].Gas, prod[0].CumulativeGas)
	assert.Equal(t, prod[0].Water, prod[0].CumulativeWater)

	for i := 1; i < len(prod); i++ {
		assert.InDelta(t, prod[i-1].CumulativeOil+prod[i].Oil, prod[i].CumulativeOil, 1e-6)
		assert.InDelta(t, prod[i-1].CumulativeGas+prod[i].Gas, prod[i].CumulativeGas, 1e-6)
		assert.InDelta(t, prod[i-1].CumulativeWater+prod[i].Water, prod[i].CumulativeWater, 1e-6)
	}
}

func TestGenerateProductionFirstYear(t *testing.T) {
	prod := forecast.GenerateProduction(1, 7500)
	require.Len(t, prod, 12)

	first := prod[0]
	assert.InDelta(t, 2500, first.Oil, 1e-9)
	assert.InDelta(t, 4500, first.Gas, 1e-9)
	assert.InDelta(t, 0, first.Water, 1e-9)
	assert.Equal(t, 0.0, first.WaterCut)
	assert.Equal(t, "Y1M1", first.Date)

	// i=11: 2500 * (1 + 0.8*11/12)^-1.2
	want := 2500 * math.Pow(1+0.8*11.0/12.0, -1.2)
	assert.InEpsilon(t, want, prod[11].Oil, 0.005)
	assert.InDelta(t, 1292.06, prod[11].Oil, 0.5)
	assert.Equal(t, "Y1M12", prod[11].Date)
}

func TestGenerateProductionScalesWithLateral(t *testing.T) {
	base := forecast.GenerateProduction(2, 7500)
	double := forecast.GenerateProduction(2, 15000)
	for i := range base {
		assert.InDelta(t, base[i].Oil*2, double[i].Oil, 1e-6)
		assert.InDelta(t, base[i].Gas*2, double[i].Gas, 1e-6)
		// water tidak tergantung lateral
		assert.InDelta(t, base[i].Water, double[i].Water, 1e-9)
	}
}

func TestGenerateProductionZeroLateralWaterCutGuard(t *testing.T) {
	prod := forecast.GenerateProduction(1, 0)
	// month 0: oil=0, water=0 -> waterCut harus 0, bukan NaN
	assert.Equal(t, 0.0, prod[0].WaterCut)
	assert.False(t, math.IsNaN(prod[0].WaterCut))
	// bulan berikutnya: oil=0, water>0 -> 100%
	assert.InDelta(t, 100, prod[5].WaterCut, 1e-9)
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Y1M1", forecast.MonthLabel(0))
	assert.Equal(t, "Y2M1", forecast.MonthLabel(12))
	assert.Equal(t, "Y15M12", forecast.MonthLabel(179))
}
