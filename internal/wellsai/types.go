// internal/wellsai/types.go
// Payload request/response Wells AI (snake_case, persentase dalam %)

package wellsai

type WellPayload struct {
	WellID            string  `json:"well_id"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	EnvInterval       string  `json:"env_interval"`
	StateWellType     string  `json:"state_well_type"`
	EnvWellType       string  `json:"env_well_type"`
	Trajectory        string  `json:"trajectory"`
	EnvWellboreType   string  `json:"env_wellbore_type"`
	Formation         string  `json:"formation"`
	TVDFt             float64 `json:"tvd_ft"`
	MDFt              float64 `json:"md_ft"`
	EnvElevationKBFt  float64 `json:"env_elevation_kb_ft"`
	EnvElevationGLFt  float64 `json:"env_elevation_gl_ft"`
	ElevationKBFt     float64 `json:"elevation_kb_ft"`
	ElevationGLFt     float64 `json:"elevation_gl_ft"`
	EnvFluidType      string  `json:"env_fluid_type"`
	LateralLengthFt   float64 `json:"lateral_length_ft"`
	PredictionHorizon int     `json:"prediction_horizon"` // bulan
}

type EconomicPayload struct {
	DiscountFactor        float64 `json:"discount_factor"` // %
	GasOPEX               float64 `json:"gas_opex"`
	OilOPEX               float64 `json:"oil_opex"`
	WaterOPEX             float64 `json:"water_opex"`
	FixedOPEX             float64 `json:"fixed_opex"` // $/bulan
	WorkingInterestOil    float64 `json:"working_interest_oil"`
	WorkingInterestGas    float64 `json:"working_interest_gas"`
	WorkingInterestWater  float64 `json:"working_interest_water"`
	NetRevenueInterestOil float64 `json:"net_revenue_interest_oil"`
	NetRevenueInterestGas float64 `json:"net_revenue_interest_gas"`
	TotalCAPEX            float64 `json:"total_capex"`
	AdValorem             float64 `json:"ad_valorem"`
	OilSevTax             float64 `json:"oil_sev_tax"`
	GasSevTax             float64 `json:"gas_sev_tax"`
}

type CarbonPayload struct {
	ProcessingIntensityFactor float64 `json:"processing_intensity_factor"`
	FlaringPercentage         float64 `json:"flaring_percentage"`
	CarbonPricePerTon         float64 `json:"carbon_price_per_ton"`
}

type AnalyzeRequest struct {
	WellParams        WellPayload     `json:"well_params"`
	EconomicParams    EconomicPayload `json:"economic_params"`
	CarbonParams      CarbonPayload   `json:"carbon_params"`
	IncludeConfidence bool            `json:"include_confidence"`
}

type ProductionPoint struct {
	Time         int     `json:"time"`
	Oil          float64 `json:"gross_production_oil_bbls"`
	Gas          float64 `json:"gross_production_wh_gas_mcf"`
	Water        float64 `json:"gross_production_water_bbls"`
	OilLowerCI   float64 `json:"oil_lower_ci"`
	OilUpperCI   float64 `json:"oil_upper_ci"`
	GasLowerCI   float64 `json:"gas_lower_ci"`
	GasUpperCI   float64 `json:"gas_upper_ci"`
	WaterLowerCI float64 `json:"water_lower_ci"`
	WaterUpperCI float64 `json:"water_upper_ci"`
}

type CashFlowPoint struct {
	Month              int     `json:"month"`
	Date               string  `json:"date"`
	Revenue            float64 `json:"revenue"`
	OPEX               float64 `json:"opex"`
	Taxes              float64 `json:"taxes"`
	NetCashFlow        float64 `json:"net_cash_flow"`
	CumulativeCashFlow float64 `json:"cumulative_cash_flow"`
}

type IntensityPoint struct {
	Date            string  `json:"date"`
	CarbonIntensity float64 `json:"carbon_intensity"`
}

type FinancialMetrics struct {
	NPV float64 `json:"npv"`
}

type CarbonMetrics struct {
	TotalEmitted    float64 `json:"total_emitted"`
	CarbonIntensity float64 `json:"carbon_intensity"`
	CarbonCredits   float64 `json:"carbon_credits"`
}

// AnalyzeResponse juga dipakai sebagai bentuk report tersimpan.
type AnalyzeResponse struct {
	Success          bool              `json:"success"`
	ProductionData   []ProductionPoint `json:"production_data"`
	CashFlow         []CashFlowPoint   `json:"cash_flow"`
	FinancialMetrics FinancialMetrics  `json:"financial_metrics"`
	CarbonMetrics    CarbonMetrics     `json:"carbon_metrics"`
	CarbonIntensity  []IntensityPoint  `json:"carbon_intensity"`
}

type Report = AnalyzeResponse

type SaveReportResponse struct {
	ReportID string `json:"report_id"`
}

type ReportSummary struct {
	ReportID  string `json:"report_id"`
	Name      string `json:"name,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type NeighborhoodRequest struct {
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	RadiusMi        float64 `json:"radius_mi"`
	Formation       string  `json:"formation"`
	Trajectory      string  `json:"trajectory"`
	EnvWellType     string  `json:"env_well_type"`
	EnvWellboreType string  `json:"env_wellbore_type"`
	EnvFluidType    string  `json:"env_fluid_type"`
}

type NeighborWell struct {
	WellID        string  `json:"well_id"`
	Formation     string  `json:"formation"`
	DistanceMi    float64 `json:"distance_mi"`
	CumulativeOil float64 `json:"cumulative_oil"`
	Status        string  `json:"status"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

type NeighborhoodResponse struct {
	Wells   []NeighborWell `json:"wells"`
	Metrics struct {
		AvgCarbonIntensity []float64 `json:"avg_carbon_intensity"`
	} `json:"neighborhood_production_metrics"`
}
