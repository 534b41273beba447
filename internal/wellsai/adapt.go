// internal/wellsai/adapt.go
// Konversi parameter lokal <-> payload Wells AI

package wellsai

import (
	"fmt"
	"math"

	"alphawell/internal/forecast"
	"alphawell/internal/models"
)

// nilai default payload yang tidak ada di form parameter
const (
	defaultEnvWellType     = "OIL"
	defaultEnvWellboreType = "SINGLE BORE"
	defaultEnvFluidType    = "FRESH WATER"
	defaultElevationGLFt   = 2995
	defaultNeighborStatus  = "ACTIVE"
)

func pct(f float64) float64 { return f * 100 }

// BuildAnalyzeRequest: horizon dalam bulan, discount/WI/NRI/pajak/flaring dalam %,
// fixed opex per bulan.
func BuildAnalyzeRequest(in forecast.Inputs) AnalyzeRequest {
	in = in.Normalize()
	w, e, c := in.Well, in.Economic, in.Carbon
	return AnalyzeRequest{
		WellParams: WellPayload{
			WellID:            w.WellID,
			Latitude:          w.Latitude,
			Longitude:         w.Longitude,
			EnvInterval:       orDefault(w.EnvInterval, "WOLFCAMP A LOWER"),
			StateWellType:     orDefault(w.StateWellType, "OIL_WELL"),
			EnvWellType:       defaultEnvWellType,
			Trajectory:        orDefault(w.Trajectory, "HORIZONTAL"),
			EnvWellboreType:   defaultEnvWellboreType,
			Formation:         orDefault(w.Formation, "WOLFCAMP"),
			TVDFt:             w.TVD,
			MDFt:              w.MD,
			EnvElevationKBFt:  w.ElevationKB,
			EnvElevationGLFt:  defaultElevationGLFt,
			ElevationKBFt:     w.ElevationKB,
			ElevationGLFt:     defaultElevationGLFt,
			EnvFluidType:      defaultEnvFluidType,
			LateralLengthFt:   w.LateralLength,
			PredictionHorizon: w.PredictionHorizon * 12,
		},
		EconomicParams: EconomicPayload{
			DiscountFactor:        pct(e.DiscountRate),
			GasOPEX:               e.GasOPEX,
			OilOPEX:               e.OilOPEX,
			WaterOPEX:             e.WaterOPEX,
			FixedOPEX:             e.FixedOPEX / 12,
			WorkingInterestOil:    pct(e.OilWI),
			WorkingInterestGas:    pct(e.GasWI),
			WorkingInterestWater:  pct(e.WaterWI),
			NetRevenueInterestOil: pct(e.OilNRI),
			NetRevenueInterestGas: pct(e.GasNRI),
			TotalCAPEX:            e.TotalCAPEX,
			AdValorem:             pct(e.AdValorem),
			OilSevTax:             pct(e.OilSeverance),
			GasSevTax:             pct(e.GasSeverance),
		},
		CarbonParams: CarbonPayload{
			ProcessingIntensityFactor: c.ProcessingIntensity,
			FlaringPercentage:         pct(c.FlarePercent),
			CarbonPricePerTon:         c.CarbonPrice,
		},
		IncludeConfidence: true,
	}
}

// BuildNeighborhoodRequest memakai radius 5 mi.
func BuildNeighborhoodRequest(w forecast.WellParameters) NeighborhoodRequest {
	return NeighborhoodRequest{
		Latitude:        w.Latitude,
		Longitude:       w.Longitude,
		RadiusMi:        DefaultRadiusMi,
		Formation:       orDefault(w.Formation, "WOLFCAMP"),
		Trajectory:      orDefault(w.Trajectory, "HORIZONTAL"),
		EnvWellType:     defaultEnvWellType,
		EnvWellboreType: defaultEnvWellboreType,
		EnvFluidType:    defaultEnvFluidType,
	}
}

// Series adalah hasil adaptasi respons remote. Slice kosong = remote tidak mengirim seri itu.
type Series struct {
	Production []forecast.ProductionRecord
	Economics  []forecast.EconomicRecord
	Carbon     []forecast.CarbonRecord
}

// Adapt memetakan respons remote ke seri lokal. Kumulatif produksi dihitung ulang
// dengan running sum; NPV tiap record = npv finansial; cumulative CO2 = total emitted.
func Adapt(resp *AnalyzeResponse) Series {
	var s Series
	if resp == nil {
		return s
	}

	dateByMonth := make(map[int]string, len(resp.CashFlow))
	for _, cf := range resp.CashFlow {
		dateByMonth[cf.Month] = trimDate(cf.Date)
	}

	var cumOil, cumGas, cumWater float64
	for i, d := range resp.ProductionData {
		cumOil += d.Oil
		cumGas += d.Gas
		cumWater += d.Water
		date := dateByMonth[d.Time]
		if date == "" {
			date = fmt.Sprintf("M%d", d.Time)
		}
		var wc float64
		if d.Oil+d.Water > 0 {
			wc = d.Water / (d.Oil + d.Water) * 100
		}
		s.Production = append(s.Production, forecast.ProductionRecord{
			Month:           i + 1,
			Date:            date,
			Oil:             d.Oil,
			Gas:             d.Gas,
			Water:           d.Water,
			CumulativeOil:   cumOil,
			CumulativeGas:   cumGas,
			CumulativeWater: cumWater,
			WaterCut:        wc,
		})
	}

	for i, m := range resp.CashFlow {
		net := m.NetCashFlow
		if net == 0 {
			net = m.Revenue - m.OPEX - m.Taxes
		}
		s.Economics = append(s.Economics, forecast.EconomicRecord{
			Month:              i + 1,
			Date:               trimDate(m.Date),
			Revenue:            m.Revenue,
			OPEX:               m.OPEX,
			Taxes:              m.Taxes,
			NetCashFlow:        net,
			FreeCashFlow:       net,
			CumulativeCashFlow: m.CumulativeCashFlow,
			NPV:                resp.FinancialMetrics.NPV,
		})
	}

	for i, c := range resp.CarbonIntensity {
		s.Carbon = append(s.Carbon, forecast.CarbonRecord{
			Month:         i + 1,
			Date:          trimDate(c.Date),
			Intensity:     c.CarbonIntensity,
			CumulativeCO2: resp.CarbonMetrics.TotalEmitted,
		})
	}
	return s
}

// BuildReport memetakan hasil lokal ke bentuk report Wells AI.
func BuildReport(res forecast.Result) Report {
	rep := Report{
		Success:         true,
		ProductionData:  make([]ProductionPoint, 0, len(res.Production)),
		CashFlow:        make([]CashFlowPoint, 0, len(res.Economics)),
		CarbonIntensity: make([]IntensityPoint, 0, len(res.Carbon)),
	}
	for i, p := range res.Production {
		rep.ProductionData = append(rep.ProductionData, ProductionPoint{
			Time:  i + 1,
			Oil:   p.Oil,
			Gas:   p.Gas,
			Water: p.Water,
		})
	}
	for i, e := range res.Economics {
		rep.CashFlow = append(rep.CashFlow, CashFlowPoint{
			Month:              i + 1,
			Date:               e.Date,
			Revenue:            e.Revenue,
			OPEX:               e.OPEX,
			Taxes:              e.Taxes,
			NetCashFlow:        e.Revenue - e.OPEX - e.Taxes,
			CumulativeCashFlow: e.CumulativeCashFlow,
		})
	}
	if n := len(res.Economics); n > 0 {
		rep.FinancialMetrics.NPV = res.Economics[n-1].NPV
	}
	for _, c := range res.Carbon {
		rep.CarbonIntensity = append(rep.CarbonIntensity, IntensityPoint{Date: c.Date, CarbonIntensity: c.Intensity})
	}
	if n := len(res.Carbon); n > 0 {
		rep.CarbonMetrics.TotalEmitted = res.Carbon[n-1].CumulativeCO2
		rep.CarbonMetrics.CarbonIntensity = res.Carbon[n-1].Intensity
	}
	return rep
}

// AdaptNeighbors: intensitas tiap well = rata-rata avg_carbon_intensity area (dibulatkan).
func AdaptNeighbors(resp *NeighborhoodResponse, formation string) []models.NeighborWell {
	if resp == nil {
		return nil
	}
	var avgCI float64
	if n := len(resp.Metrics.AvgCarbonIntensity); n > 0 {
		var sum float64
		for _, v := range resp.Metrics.AvgCarbonIntensity {
			sum += v
		}
		avgCI = math.Round(sum / float64(n))
	}

	out := make([]models.NeighborWell, 0, len(resp.Wells))
	for i, w := range resp.Wells {
		out = append(out, models.NeighborWell{
			ID:              orDefault(w.WellID, fmt.Sprintf("W-%d", i)),
			Latitude:        w.Latitude,
			Longitude:       w.Longitude,
			EUR:             w.CumulativeOil,
			Formation:       orDefault(w.Formation, formation),
			CarbonIntensity: avgCI,
			Status:          orDefault(w.Status, defaultNeighborStatus),
			Distance:        math.Round(w.DistanceMi*100) / 100,
		})
	}
	return out
}

func trimDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
