package fatliquor

// Furniture is the drum internal fitting that lifts and drops the pack.
type Furniture int

const (
	FurnitureNone Furniture = iota
	FurniturePegs
	FurnitureHybrid
)

func (f Furniture) String() string {
	switch f {
	case FurniturePegs:
		return "Pegs"
	case FurnitureHybrid:
		return "Hybrid"
	default:
		return "None"
	}
}

// multiplier maps furniture to its mechanical massaging gain. Unknown values
// fall back to the smooth-drum factor.
func (f Furniture) multiplier() float64 {
	switch f {
	case FurniturePegs:
		return 1.25
	case FurnitureHybrid:
		return 1.40
	default:
		return 1.0
	}
}

// PickleStrategy selects how acid fixation distributed chrome across the hide
// cross-section before fatliquoring.
type PickleStrategy int

const (
	PickleEquilibrium PickleStrategy = iota
	PickleChaser
)

func (p PickleStrategy) String() string {
	if p == PickleChaser {
		return "Chaser"
	}
	return "Equilibrium"
}

// DryingMethod is the post-fatliquor drying route.
type DryingMethod int

const (
	AirDrying DryingMethod = iota
	PartialVacuum
)

func (d DryingMethod) String() string {
	if d == PartialVacuum {
		return "Partial Vacuum"
	}
	return "Air Drying"
}

// ClimateZone is the ambient climate of the drying hall.
type ClimateZone int

const (
	Temperate ClimateZone = iota
	Tropical
)

func (c ClimateZone) String() string {
	if c == Tropical {
		return "Tropical"
	}
	return "Temperate"
}

// spueMultiplier scales the spue risk with ambient humidity/heat cycling.
func (c ClimateZone) spueMultiplier() float64 {
	if c == Tropical {
		return 1.8
	}
	return 1.2
}

// dryingResistance scales evaporation difficulty. Unknown values fall back to
// the temperate factor.
func (c ClimateZone) dryingResistance() float64 {
	if c == Tropical {
		return 2.7
	}
	return 1.0
}

// OilDose is one fatliquor position in the recipe: an oil from the reference
// table and its offer in % w/w on shaved weight.
type OilDose struct {
	Name     string
	OfferPct float64
}

// Input is one complete process description. It is consumed by value and never
// retained; the caller (UI or CLI) is responsible for keeping slider values in
// sane industrial ranges before building it.
type Input struct {
	// Substrate
	ThicknessMM      float64 // shaved thickness, > 0
	NeutralizationPH float64 // typically 3.0..6.5
	ChromeOfferPct   float64 // % w/w, >= 0

	// Recipe (offers in % w/w; up to three oil positions)
	Oils           []OilDose
	SyntanOfferPct float64
	NSAOfferPct    float64
	VegName        string // "" or "None" means no vegetable retannage
	VegOfferPct    float64
	Waterproof     bool

	// Mechanical
	DrumDiameterM float64
	DrumWidthM    float64 // 0 means derive from diameter
	RPM           float64
	LoadKg        float64
	DurationMin   float64
	Furniture     Furniture
	LoadFactorPct float64 // 0 means 100

	// Thermal
	FatliquorTempC   float64
	RetanTempC       float64
	VacuumPlateTempC float64 // read only on the vacuum drying branch

	// Process choices
	Pickle  PickleStrategy
	Drying  DryingMethod
	Climate ClimateZone
}

// TotalOilOfferPct sums the oil offers of the recipe. A zero total means there
// is nothing to compute (see ErrNoOilOffer).
func (in Input) TotalOilOfferPct() float64 {
	var total float64
	for _, o := range in.Oils {
		if o.OfferPct > 0 {
			total += o.OfferPct
		}
	}
	return total
}

// Result is the derived process-quality record for one compute call. Numeric
// fields are rounded for presentation at construction and never mutated after.
type Result struct {
	// Electro-chemistry
	ZetaMV     float64 // net electrostatic drag, mV; negative means fully masked
	SwellGain  float64 // osmotic area gain, %
	FillGain   float64 // vegetable fill area gain, %

	// Mechanics
	PeripheralVelocity float64 // m/s
	DrumFillPct        float64 // effective drum fill, %
	PunchKW            float64 // instantaneous mechanical punch rate
	KineticEnergyKJ    float64 // cumulative over the run

	// Thermal
	OilMobility  float64 // >= 1
	TempJumpC    float64 // fatliquor minus retan temperature
	FixationRate float64 // >= 1

	// Core outcome
	Penetration float64 // core strike score, [0, 100]

	// Quality indicators
	GrainBreak       float64 // [1, 5]; 1 is fine break
	SpueRisk         float64 // [0, 5]
	Adhesion         float64 // >= 0
	VBI              float64 // vapor barrier / surface loading index
	AreaYield        float64 // %
	DryingComplexity float64

	// Blended mixture properties (offer-weighted over nonzero oils)
	Blend OilSpec

	// Narrative lookups
	OilNote    string
	VegNote    string
	DryingNote string
}

// Config holds the tuned model coefficients. These are empirical calibration
// data, not physical constants; the formula shapes (thresholds, monotonicity,
// branch directions) are the contract, the numbers are adjustable.
//
// Units:
//   - DiffusionExp: dimensionless thickness exponent (calibrations range 2.2..2.7)
//   - ZetaScale: resistance per mV of unmasked charge
//   - PushEps: additive guard in the push denominator
//   - SwellPerPH: % area gain per pH unit above the swelling floor
//   - FillGain: % area gain per (% veg offer x fill factor)
//   - AstringencyGain: % yield penalty per (% veg offer x astringency x pH deficit)
//   - SyntanMask/NSAMask: mV masked per % offer
//   - PHStressGain: mV of electrostatic wall per unit of exponential pH stress
//   - FixationGain: fixation-rate gain per (pH excess x °C of thermal jump)
//   - FillPeakPct/FillSpreadPct: centre and width of the fall-efficiency curve
//   - VBIOfferGain: surface loading per % of total oil offer
//   - BaseYield: area yield before gains and drying losses, %
type Config struct {
	DiffusionExp    float64
	ZetaScale       float64
	PushEps         float64
	SwellPerPH      float64
	FillGain        float64
	AstringencyGain float64
	SyntanMask      float64
	NSAMask         float64
	PHStressGain    float64
	FixationGain    float64
	FillPeakPct     float64
	FillSpreadPct   float64
	VBIOfferGain    float64
	BaseYield       float64
}

// _defaultConfig returns a Config pre-filled with the canonical calibration.
func _defaultConfig() *Config {
	return &Config{
		DiffusionExp:    2.65,
		ZetaScale:       0.01,
		PushEps:         0.1,
		SwellPerPH:      0.8,
		FillGain:        0.12,
		AstringencyGain: 0.08,
		SyntanMask:      10.0,
		NSAMask:         28.0,
		PHStressGain:    12.0,
		FixationGain:    0.05,
		FillPeakPct:     38.0,
		FillSpreadPct:   24.0,
		VBIOfferGain:    0.04,
		BaseYield:       97.0,
	}
}
