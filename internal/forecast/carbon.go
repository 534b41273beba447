// internal/forecast/carbon.go
// Generator emisi karbon per sumber (kombusi, processing, flaring)

package forecast

type CarbonRecord struct {
	Month          int     `json:"month"`
	Date           string  `json:"date"`
	CombustionOil  float64 `json:"combustionOil"`  // ton
	CombustionGas  float64 `json:"combustionGas"`  // ton
	Processing     float64 `json:"processing"`     // ton
	Flaring        float64 `json:"flaring"`        // ton
	TotalEmissions float64 `json:"totalEmissions"` // ton
	CumulativeCO2  float64 `json:"cumulativeCO2"`  // ton
	Intensity      float64 `json:"intensity"`      // kg CO2e / BOE
	BOE            float64 `json:"boe"`
}

// Faktor emisi (kg CO2e).
const (
	oilCombustionKgPerBbl = 0.43
	gasCombustionKgPerMcf = 0.053
	oilProcessingFactor   = 2.1
	gasProcessingFactor   = 0.8
	methaneGWP            = 28.0
	mcfPerBOE             = 6.0
)

// GenerateCarbon menghitung emisi bulanan; kumulatif CO2 tidak pernah turun
// selama rate produksi dan parameter non-negatif.
func GenerateCarbon(prod []ProductionRecord, p CarbonParameters) []CarbonRecord {
	out := make([]CarbonRecord, 0, len(prod))
	var cumCO2 float64
	for _, pr := range prod {
		combOil := pr.Oil * oilCombustionKgPerBbl
		combGas := pr.Gas * gasCombustionKgPerMcf
		processing := (pr.Oil*oilProcessingFactor + pr.Gas*gasProcessingFactor) * p.ProcessingIntensity
		flaring := pr.Gas * p.FlarePercent * gasCombustionKgPerMcf * methaneGWP
		total := combOil + combGas + processing + flaring

		cumCO2 += total / 1000

		boe := pr.Oil + pr.Gas/mcfPerBOE
		var intensity float64
		if boe > 0 {
			intensity = total / boe
		}

		out = append(out, CarbonRecord{
			Month:          pr.Month,
			Date:           pr.Date,
			CombustionOil:  combOil / 1000,
			CombustionGas:  combGas / 1000,
			Processing:     processing / 1000,
			Flaring:        flaring / 1000,
			TotalEmissions: total / 1000,
			CumulativeCO2:  cumCO2,
			Intensity:      intensity,
			BOE:            boe,
		})
	}
	return out
}
