// internal/forecast/production.go
// Generator produksi: decline curve hyperbolic oil/gas + water ramp

package forecast

import (
	"fmt"
	"math"
)

type ProductionRecord struct {
	Month           int     `json:"month"` // 1-based
	Date            string  `json:"date"`  // "Y1M1"
	Oil             float64 `json:"oil"`   // bbl/bulan
	Gas             float64 `json:"gas"`   // mcf/bulan
	Water           float64 `json:"water"` // bbl/bulan
	CumulativeOil   float64 `json:"cumulativeOil"`
	CumulativeGas   float64 `json:"cumulativeGas"`
	CumulativeWater float64 `json:"cumulativeWater"`
	WaterCut        float64 `json:"waterCut"` // %
}

// Referensi type curve: 2500 bbl & 4500 mcf bulan pertama pada lateral 7500 ft.
const (
	refLateralFt  = 7500.0
	oilInitial    = 2500.0
	gasInitial    = 4500.0
	oilDeclineD   = 0.8
	oilDeclineExp = -1.2
	gasDeclineD   = 0.7
	gasDeclineExp = -1.1
)

// MonthLabel menghasilkan label "Y{tahun}M{bulan}" untuk index bulan 0-based.
func MonthLabel(i int) string {
	return fmt.Sprintf("Y%dM%d", i/12+1, i%12+1)
}

// GenerateProduction menghasilkan horizonYears*12 record bulanan, horizon maksimal MaxHorizonYears.
// Kumulatif: cum[0] = rate[0], cum[i] = cum[i-1] + rate[i].
func GenerateProduction(horizonYears int, lateralLength float64) []ProductionRecord {
	if horizonYears <= 0 {
		return []ProductionRecord{}
	}
	if horizonYears > MaxHorizonYears {
		horizonYears = MaxHorizonYears
	}
	months := horizonYears * 12
	scale := lateralLength / refLateralFt

	out := make([]ProductionRecord, 0, months)
	var cumOil, cumGas, cumWater float64
	for i := 0; i < months; i++ {
		t := float64(i) / 12

		oil := math.Max(0, oilInitial*scale*math.Pow(1+oilDeclineD*t, oilDeclineExp))
		gas := math.Max(0, gasInitial*scale*math.Pow(1+gasDeclineD*t, gasDeclineExp))
		water := math.Max(0, 150*(1-math.Exp(-float64(i)/24))+50*t)

		cumOil += oil
		cumGas += gas
		cumWater += water

		out = append(out, ProductionRecord{
			Month:           i + 1,
			Date:            MonthLabel(i),
			Oil:             oil,
			Gas:             gas,
			Water:           water,
			CumulativeOil:   cumOil,
			CumulativeGas:   cumGas,
			CumulativeWater: cumWater,
			WaterCut:        waterCut(oil, water),
		})
	}
	return out
}

// waterCut = water / (oil + water) * 100; 0 kalau penyebut 0 (hindari NaN).
func waterCut(oil, water float64) float64 {
	den := oil + water
	if den <= 0 {
		return 0
	}
	return water / den * 100
}
