// internal/forecast/kpi.go
// KPI ringkasan + klasifikasi verdict (Drill / Evaluate Further / High Risk)

package forecast

import "math"

type Verdict string

const (
	VerdictDrill           Verdict = "Drill"
	VerdictEvaluateFurther Verdict = "Evaluate Further"
	VerdictHighRisk        Verdict = "High Risk"
)

type ESGRisk string

const (
	ESGRiskLow      ESGRisk = "Low"
	ESGRiskModerate ESGRisk = "Moderate"
	ESGRiskHigh     ESGRisk = "High"
)

// IRRNeverPaysBack adalah sentinel IRR kalau cumulative cash flow tidak pernah positif.
const IRRNeverPaysBack = -100.0

// EmissionBreakdown adalah total emisi per sumber sepanjang horizon (ton).
type EmissionBreakdown struct {
	CombustionOil float64 `json:"combustionOil"`
	CombustionGas float64 `json:"combustionGas"`
	Processing    float64 `json:"processing"`
	Flaring       float64 `json:"flaring"`
}

type KPISummary struct {
	EUROil                float64           `json:"eurOil"`
	EURGas                float64           `json:"eurGas"`
	NPV                   float64           `json:"npv"` // $M
	IRR                   float64           `json:"irr"` // %, aproksimasi annualized return
	TotalCO2              float64           `json:"totalCO2"`
	AvgIntensity          float64           `json:"avgIntensity"`          // g CO2e/BOE
	CarbonCreditPotential float64           `json:"carbonCreditPotential"` // $K
	Verdict               Verdict           `json:"verdict"`
	ESGRisk               ESGRisk           `json:"esgRisk"`
	PaybackMonth          *int              `json:"paybackMonths"` // nil = tidak pernah payback
	EmissionBreakdown     EmissionBreakdown `json:"emissionBreakdown"`
}

// Classify menurunkan KPI dari record terakhir tiap series.
// Mengembalikan nil kalau salah satu series kosong (belum ada analisis).
func Classify(
	prod []ProductionRecord,
	econ []EconomicRecord,
	carbon []CarbonRecord,
	ep EconomicParameters,
	wp WellParameters,
	cp CarbonParameters,
) *KPISummary {
	if len(prod) == 0 || len(econ) == 0 || len(carbon) == 0 {
		return nil
	}

	lastProd := prod[len(prod)-1]
	lastEcon := econ[len(econ)-1]
	lastCarbon := carbon[len(carbon)-1]

	years := wp.PredictionHorizon
	if years <= 0 {
		years = 1
	}

	k := &KPISummary{
		EUROil:   lastProd.CumulativeOil,
		EURGas:   lastProd.CumulativeGas,
		NPV:      lastEcon.NPV / 1_000_000,
		IRR:      approximateIRR(lastEcon.CumulativeCashFlow, ep.TotalCAPEX, years),
		TotalCO2: lastCarbon.CumulativeCO2,
	}

	if boeLife := k.EUROil + k.EURGas/mcfPerBOE; boeLife > 0 {
		k.AvgIntensity = k.TotalCO2 * 1_000_000 / boeLife
	}
	if cp.EnableCarbonCredits {
		k.CarbonCreditPotential = k.TotalCO2 * 0.15 * cp.CarbonPrice / 1000
	}

	k.Verdict, k.ESGRisk = ClassifyMetrics(k.NPV, k.IRR, k.AvgIntensity)
	k.PaybackMonth = PaybackMonth(econ)

	for _, c := range carbon {
		k.EmissionBreakdown.CombustionOil += c.CombustionOil
		k.EmissionBreakdown.CombustionGas += c.CombustionGas
		k.EmissionBreakdown.Processing += c.Processing
		k.EmissionBreakdown.Flaring += c.Flaring
	}
	return k
}

// ClassifyMetrics: rule pertama yang cocok menang, dievaluasi berurutan.
func ClassifyMetrics(npv, irr, avgIntensity float64) (Verdict, ESGRisk) {
	switch {
	case npv > 8 && irr > 25 && avgIntensity < 45:
		return VerdictDrill, ESGRiskLow
	case npv < 4 || irr < 15 || avgIntensity > 55:
		return VerdictHighRisk, ESGRiskHigh
	default:
		return VerdictEvaluateFurther, ESGRiskModerate
	}
}

// PaybackMonth mengembalikan index pertama dengan cumulative cash flow > 0.
func PaybackMonth(econ []EconomicRecord) *int {
	for i, e := range econ {
		if e.CumulativeCashFlow > 0 {
			idx := i
			return &idx
		}
	}
	return nil
}

// approximateIRR bukan root-find IRR sebenarnya: ((cumCF/capex)^(1/years) - 1) * 100.
func approximateIRR(cumCF, capex float64, years int) float64 {
	if cumCF <= 0 || capex <= 0 {
		return IRRNeverPaysBack
	}
	return (math.Pow(cumCF/capex, 1/float64(years)) - 1) * 100
}
