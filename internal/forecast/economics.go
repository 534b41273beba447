// internal/forecast/economics.go
// Generator ekonomi: revenue, opex, pajak, cash flow & NPV berjalan

package forecast

import "math"

type EconomicRecord struct {
	Month              int     `json:"month"`
	Date               string  `json:"date"`
	Revenue            float64 `json:"revenue"`
	OPEX               float64 `json:"opex"`
	Taxes              float64 `json:"taxes"`
	NetCashFlow        float64 `json:"netCashFlow"`
	FreeCashFlow       float64 `json:"freeCashFlow"`
	CumulativeCashFlow float64 `json:"cumulativeCashFlow"`
	DiscountedCF       float64 `json:"discountedCF"`
	NPV                float64 `json:"npv"` // kumulatif discounted FCF s/d bulan ini
}

// GenerateEconomics menghitung cash flow bulanan, index sejajar dengan produksi.
// CAPEX hanya dibebankan sekali di record pertama.
func GenerateEconomics(prod []ProductionRecord, p EconomicParameters) []EconomicRecord {
	out := make([]EconomicRecord, 0, len(prod))
	var cumCF, npv float64
	for i, pr := range prod {
		gasMcfK := pr.Gas / 1000

		oilRevenue := pr.Oil * p.OilPrice * (1 - p.OilDiff) * p.OilNRI
		gasRevenue := gasMcfK * p.GasPrice * p.GasMult * p.GasNRI
		revenue := oilRevenue + gasRevenue

		opex := p.FixedOPEX/12 + pr.Oil*p.OilOPEX + gasMcfK*p.GasOPEX + pr.Water*p.WaterOPEX

		severance := oilRevenue*p.OilSeverance + gasRevenue*p.GasSeverance
		adValorem := revenue * p.AdValorem
		taxes := severance + adValorem

		net := revenue - opex - taxes

		var capex float64
		if i == 0 {
			capex = p.TotalCAPEX
		}
		fcf := net - capex

		discounted := fcf * math.Pow(1+p.DiscountRate, -float64(i)/12)

		cumCF += fcf
		npv += discounted

		out = append(out, EconomicRecord{
			Month:              pr.Month,
			Date:               pr.Date,
			Revenue:            revenue,
			OPEX:               opex,
			Taxes:              taxes,
			NetCashFlow:        net,
			FreeCashFlow:       fcf,
			CumulativeCashFlow: cumCF,
			DiscountedCF:       discounted,
			NPV:                npv,
		})
	}
	return out
}
