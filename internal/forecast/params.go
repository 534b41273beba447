// internal/forecast/params.go
// Parameter input untuk satu run forecast (well, ekonomi, karbon)

package forecast

// WellParameters adalah data statis sumur yang diedit user sebelum "Analyze".
type WellParameters struct {
	WellID            string  `json:"wellId" yaml:"wellId"`
	Latitude          float64 `json:"latitude" yaml:"latitude" validate:"gte=-90,lte=90"`
	Longitude         float64 `json:"longitude" yaml:"longitude" validate:"gte=-180,lte=180"`
	Formation         string  `json:"formation" yaml:"formation"`
	EnvInterval       string  `json:"envInterval,omitempty" yaml:"envInterval,omitempty"`
	StateWellType     string  `json:"stateWellType,omitempty" yaml:"stateWellType,omitempty"`
	Trajectory        string  `json:"trajectory" yaml:"trajectory"`
	TVD               float64 `json:"tvd" yaml:"tvd" validate:"gte=0"`                              // ft
	MD                float64 `json:"md" yaml:"md" validate:"gte=0"`                                // ft
	LateralLength     float64 `json:"lateralLength" yaml:"lateralLength"`                           // ft
	ElevationKB       float64 `json:"elevationKB" yaml:"elevationKB"`                               // ft
	PredictionHorizon int     `json:"predictionHorizon" yaml:"predictionHorizon" validate:"lte=50"` // tahun
}

type EconomicParameters struct {
	TotalCAPEX        float64 `json:"totalCAPEX" yaml:"totalCAPEX" validate:"gte=0"`
	DrillingExpense   float64 `json:"drillingExpense" yaml:"drillingExpense" validate:"gte=0"`
	CompletionExpense float64 `json:"completionExpense" yaml:"completionExpense" validate:"gte=0"`

	FixedOPEX float64 `json:"fixedOPEX" yaml:"fixedOPEX" validate:"gte=0"` // $/tahun
	OilOPEX   float64 `json:"oilOPEX" yaml:"oilOPEX" validate:"gte=0"`     // $/bbl
	GasOPEX   float64 `json:"gasOPEX" yaml:"gasOPEX" validate:"gte=0"`     // $/mcf
	WaterOPEX float64 `json:"waterOPEX" yaml:"waterOPEX" validate:"gte=0"` // $/bbl

	OilWI   float64 `json:"oilWI" yaml:"oilWI" validate:"gte=0,lte=1"`
	GasWI   float64 `json:"gasWI" yaml:"gasWI" validate:"gte=0,lte=1"`
	WaterWI float64 `json:"waterWI" yaml:"waterWI" validate:"gte=0,lte=1"`
	OilNRI  float64 `json:"oilNRI" yaml:"oilNRI" validate:"gte=0,lte=1"`
	GasNRI  float64 `json:"gasNRI" yaml:"gasNRI" validate:"gte=0,lte=1"`

	DiscountRate float64 `json:"discountRate" yaml:"discountRate" validate:"gte=0,lte=1"` // fraksi, 0.10 = 10%
	OilPrice     float64 `json:"oilPrice" yaml:"oilPrice" validate:"gte=0"`
	GasPrice     float64 `json:"gasPrice" yaml:"gasPrice" validate:"gte=0"`
	OilDiff      float64 `json:"oilDiff" yaml:"oilDiff" validate:"gte=0,lte=1"`
	GasMult      float64 `json:"gasMult" yaml:"gasMult" validate:"gte=0"`

	AdValorem    float64 `json:"adValorem" yaml:"adValorem" validate:"gte=0,lte=1"`
	OilSeverance float64 `json:"oilSeverance" yaml:"oilSeverance" validate:"gte=0,lte=1"`
	GasSeverance float64 `json:"gasSeverance" yaml:"gasSeverance" validate:"gte=0,lte=1"`
}

type CarbonParameters struct {
	ProcessingIntensity float64 `json:"processingIntensity" yaml:"processingIntensity" validate:"gte=0"`
	FlarePercent        float64 `json:"flarePercent" yaml:"flarePercent" validate:"gte=0,lte=1"` // fraksi
	CarbonPrice         float64 `json:"carbonPrice" yaml:"carbonPrice" validate:"gte=0"`         // $/tCO2e
	EnableCarbonCredits bool    `json:"enableCarbonCredits" yaml:"enableCarbonCredits"`
}

// Inputs mengelompokkan tiga set parameter untuk satu run.
type Inputs struct {
	Well     WellParameters     `json:"wellParams" yaml:"wellParams"`
	Economic EconomicParameters `json:"economicParams" yaml:"economicParams"`
	Carbon   CarbonParameters   `json:"carbonParams" yaml:"carbonParams"`
}

const (
	DefaultHorizonYears  = 15
	DefaultLateralLength = 7500.0
	// MaxHorizonYears sama dengan tag lte pada PredictionHorizon.
	MaxHorizonYears = 50
)

func DefaultWellParameters() WellParameters {
	return WellParameters{
		WellID:            "AW-2024-457",
		Latitude:          31.8467,
		Longitude:         -102.3689,
		Formation:         "WOLFCAMP",
		EnvInterval:       "WOLFCAMP A LOWER",
		StateWellType:     "OIL_WELL",
		Trajectory:        "HORIZONTAL",
		TVD:               8450,
		MD:                16250,
		LateralLength:     DefaultLateralLength,
		ElevationKB:       2847,
		PredictionHorizon: DefaultHorizonYears,
	}
}

func DefaultEconomicParameters() EconomicParameters {
	return EconomicParameters{
		TotalCAPEX:        8_500_000,
		DrillingExpense:   4_200_000,
		CompletionExpense: 4_300_000,
		FixedOPEX:         120_000,
		OilOPEX:           8.5,
		GasOPEX:           0.45,
		WaterOPEX:         2.1,
		OilWI:             0.75,
		GasWI:             0.75,
		WaterWI:           0.75,
		OilNRI:            0.6375,
		GasNRI:            0.6375,
		DiscountRate:      0.10,
		OilPrice:          75,
		GasPrice:          3.25,
		OilDiff:           0.02,
		GasMult:           0.95,
		AdValorem:         0.015,
		OilSeverance:      0.046,
		GasSeverance:      0.075,
	}
}

func DefaultCarbonParameters() CarbonParameters {
	return CarbonParameters{
		ProcessingIntensity: 1.0,
		FlarePercent:        0.02,
		CarbonPrice:         50,
		EnableCarbonCredits: false,
	}
}

// DefaultInputs mengembalikan set parameter default seperti form awal di UI.
func DefaultInputs() Inputs {
	return Inputs{
		Well:     DefaultWellParameters(),
		Economic: DefaultEconomicParameters(),
		Carbon:   DefaultCarbonParameters(),
	}
}

// HorizonYears mengembalikan horizon prediksi; nilai <= 0 jatuh ke default 15 tahun,
// nilai di atas MaxHorizonYears dipotong.
func (w WellParameters) HorizonYears() int {
	switch {
	case w.PredictionHorizon <= 0:
		return DefaultHorizonYears
	case w.PredictionHorizon > MaxHorizonYears:
		return MaxHorizonYears
	}
	return w.PredictionHorizon
}

// Lateral mengembalikan panjang lateral; nilai <= 0 jatuh ke default 7500 ft.
func (w WellParameters) Lateral() float64 {
	if w.LateralLength <= 0 {
		return DefaultLateralLength
	}
	return w.LateralLength
}
