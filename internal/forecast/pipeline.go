// internal/forecast/pipeline.go
// Pipeline deterministik: Production -> {Economics, Carbon} -> KPI

package forecast

type Result struct {
	Production []ProductionRecord `json:"production"`
	Economics  []EconomicRecord   `json:"economics"`
	Carbon     []CarbonRecord     `json:"carbon"`
	KPIs       *KPISummary        `json:"kpis"`
}

// Normalize mengisi horizon & lateral default supaya generator dan classifier
// memakai horizon yang sama.
func (in Inputs) Normalize() Inputs {
	in.Well.PredictionHorizon = in.Well.HorizonYears()
	in.Well.LateralLength = in.Well.Lateral()
	return in
}

// Run menjalankan empat stage secara berurutan. Setiap panggilan menghasilkan
// slice baru; tidak ada state bersama antar run.
func Run(in Inputs) Result {
	in = in.Normalize()

	prod := GenerateProduction(in.Well.PredictionHorizon, in.Well.LateralLength)
	econ := GenerateEconomics(prod, in.Economic)
	carb := GenerateCarbon(prod, in.Carbon)

	return Result{
		Production: prod,
		Economics:  econ,
		Carbon:     carb,
		KPIs:       Classify(prod, econ, carb, in.Economic, in.Well, in.Carbon),
	}
}
