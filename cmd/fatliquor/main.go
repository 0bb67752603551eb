package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pithnub/leather-digital-twin/pkg/fatliquor"
	"github.com/pithnub/leather-digital-twin/pkg/recipe"
)

type opts struct {
	// substrate
	thickness float64
	ph        float64
	chrome    float64

	// recipe
	oils       []string // "Oil Name=offer%" entries, up to three
	syntan     float64
	nsa        float64
	veg        string
	vegOffer   float64
	waterproof bool

	// drum
	diameter   float64
	width      float64
	rpm        float64
	load       float64
	duration   float64
	furniture  string
	loadFactor float64

	// thermal
	tempFat   float64
	tempRetan float64
	plateTemp float64

	// process
	pickle  string
	drying  string
	climate string

	// model calibration
	cfg fatliquor.Config

	// inputs/outputs
	recipePath string
	tablesPath string
	csvPath    string
	jsonPath   string
}

// row is one computed record for file export.
type row struct {
	Param       string  `json:"param,omitempty"`
	Value       float64 `json:"value,omitempty"`
	Zeta        float64 `json:"zeta_mv"`
	Penetration float64 `json:"penetration_pct"`
	GrainBreak  float64 `json:"grain_break"`
	SpueRisk    float64 `json:"spue_risk"`
	Adhesion    float64 `json:"adhesion"`
	VBI         float64 `json:"vbi"`
	AreaYield   float64 `json:"area_yield_pct"`
	Complexity  float64 `json:"drying_complexity"`
	PunchKW     float64 `json:"punch_kw"`
	KineticKJ   float64 `json:"kinetic_kj"`
	Velocity    float64 `json:"peripheral_velocity_ms"`
	Mobility    float64 `json:"oil_mobility"`
	Fixation    float64 `json:"fixation_rate"`
	TempJump    float64 `json:"temp_jump_c"`
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "fatliquor",
		Short: "Leather fatliquoring process calculator",
		Long: `The fatliquor tool predicts wet-end process quality from recipe, drum,
thermal and environment parameters: core penetration (strike), area yield,
grain break, spue risk, surface loading and drying behaviour.

The model is a fixed chain of closed-form relations; every tuned coefficient
is exposed as a flag so a tannery can calibrate against its own drums.

Examples:
  fatliquor --oil "Sulphited Fish Oil=8" --thickness 1.6 --ph 5.7 --chrome 4.5
  fatliquor --recipe sheet.yaml --tables house-tables.yaml --json run.json
  fatliquor sweep --param rpm --from 2 --to 24 --step 1 --csv rpm-sweep.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(o)
		},
	}

	fl := root.PersistentFlags()
	fl.Float64Var(&o.thickness, "thickness", 1.6, "shaved thickness in mm")
	fl.Float64Var(&o.ph, "ph", 5.7, "neutralization pH")
	fl.Float64Var(&o.chrome, "chrome", 4.5, "chrome offer in % w/w")

	fl.StringArrayVar(&o.oils, "oil", []string{"Sulphited Fish Oil=8"},
		`fatliquor position as "Name=offer%" (repeatable, up to three)`)
	fl.Float64Var(&o.syntan, "syntan", 5.0, "syntan offer in %")
	fl.Float64Var(&o.nsa, "nsa", 0.5, "NSA/surfactant offer in %")
	fl.StringVar(&o.veg, "veg", "None", "vegetable tannin (None, Tara, Mimosa, Chestnut)")
	fl.Float64Var(&o.vegOffer, "veg-offer", 0, "vegetable tannin offer in %")
	fl.BoolVar(&o.waterproof, "waterproof", false, "apply waterproofing top-up")

	fl.Float64Var(&o.diameter, "diameter", 3.0, "drum diameter in m")
	fl.Float64Var(&o.width, "width", 0, "drum width in m (0 = derive from diameter)")
	fl.Float64Var(&o.rpm, "rpm", 12, "drum speed")
	fl.Float64Var(&o.load, "load", 1000, "weight of goods in kg")
	fl.Float64Var(&o.duration, "duration", 60, "run duration in minutes")
	fl.StringVar(&o.furniture, "furniture", "none", "drum furniture: none, pegs, hybrid")
	fl.Float64Var(&o.loadFactor, "load-factor", 100, "effective load factor in %")

	fl.Float64Var(&o.tempFat, "temp-fat", 55, "fatliquor bath temperature in °C")
	fl.Float64Var(&o.tempRetan, "temp-retan", 35, "retan/hide temperature in °C")
	fl.Float64Var(&o.plateTemp, "plate-temp", 60, "vacuum plate temperature in °C")

	fl.StringVar(&o.pickle, "pickle", "equilibrium", "pickle strategy: equilibrium, chaser")
	fl.StringVar(&o.drying, "drying", "air", "drying method: air, vacuum")
	fl.StringVar(&o.climate, "climate", "temperate", "climate zone: temperate, tropical")

	fl.Float64Var(&o.cfg.DiffusionExp, "diffusion-exp", 0, "thickness diffusion exponent (0 = default 2.65)")
	fl.Float64Var(&o.cfg.ZetaScale, "zeta-scale", 0, "resistance per mV of unmasked charge")
	fl.Float64Var(&o.cfg.PushEps, "push-eps", 0, "additive guard in the push denominator")
	fl.Float64Var(&o.cfg.SwellPerPH, "swell-per-ph", 0, "area gain per pH unit above the swelling floor")
	fl.Float64Var(&o.cfg.FillGain, "fill-gain", 0, "area gain per % veg offer x fill factor")
	fl.Float64Var(&o.cfg.AstringencyGain, "astringency-gain", 0, "yield penalty coefficient below pH 5")
	fl.Float64Var(&o.cfg.SyntanMask, "syntan-mask", 0, "mV masked per % syntan offer")
	fl.Float64Var(&o.cfg.NSAMask, "nsa-mask", 0, "mV masked per % NSA offer")
	fl.Float64Var(&o.cfg.PHStressGain, "ph-stress-gain", 0, "electrostatic wall gain below pH 5.2")
	fl.Float64Var(&o.cfg.FixationGain, "fixation-gain", 0, "fixation rate gain per pH excess x °C jump")
	fl.Float64Var(&o.cfg.FillPeakPct, "fill-peak", 0, "drum fill % of peak fall efficiency")
	fl.Float64Var(&o.cfg.FillSpreadPct, "fill-spread", 0, "width of the fall efficiency curve")
	fl.Float64Var(&o.cfg.VBIOfferGain, "vbi-offer-gain", 0, "surface loading per % total oil offer")
	fl.Float64Var(&o.cfg.BaseYield, "base-yield", 0, "area yield before gains and losses")

	fl.StringVar(&o.recipePath, "recipe", "", "load the full process sheet from a YAML file")
	fl.StringVar(&o.tablesPath, "tables", "", "YAML overrides for the oil/tannin reference tables")
	fl.StringVar(&o.csvPath, "csv", "", "write computed rows to a CSV file")
	fl.StringVar(&o.jsonPath, "json", "", "write computed rows to a JSON file")

	root.AddCommand(newSweepCmd(&o), newTablesCmd(&o))

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// buildInput assembles the process input from flags, or from a recipe sheet
// when one was given (flags other than the sheet are ignored in that case).
func buildInput(o opts) (fatliquor.Input, error) {
	if o.recipePath != "" {
		return recipe.Load(o.recipePath)
	}

	furniture, err := fatliquor.ParseFurniture(o.furniture)
	if err != nil {
		return fatliquor.Input{}, err
	}
	pickle, err := fatliquor.ParsePickle(o.pickle)
	if err != nil {
		return fatliquor.Input{}, err
	}
	drying, err := fatliquor.ParseDrying(o.drying)
	if err != nil {
		return fatliquor.Input{}, err
	}
	climate, err := fatliquor.ParseClimate(o.climate)
	if err != nil {
		return fatliquor.Input{}, err
	}
	oils, err := parseOilFlags(o.oils)
	if err != nil {
		return fatliquor.Input{}, err
	}

	return fatliquor.Input{
		ThicknessMM:      o.thickness,
		NeutralizationPH: o.ph,
		ChromeOfferPct:   o.chrome,
		Oils:             oils,
		SyntanOfferPct:   o.syntan,
		NSAOfferPct:      o.nsa,
		VegName:          o.veg,
		VegOfferPct:      o.vegOffer,
		Waterproof:       o.waterproof,
		DrumDiameterM:    o.diameter,
		DrumWidthM:       o.width,
		RPM:              o.rpm,
		LoadKg:           o.load,
		DurationMin:      o.duration,
		Furniture:        furniture,
		LoadFactorPct:    o.loadFactor,
		FatliquorTempC:   o.tempFat,
		RetanTempC:       o.tempRetan,
		VacuumPlateTempC: o.plateTemp,
		Pickle:           pickle,
		Drying:           drying,
		Climate:          climate,
	}, nil
}

// parseOilFlags resolves repeated `--oil "Name=offer"` values.
func parseOilFlags(entries []string) ([]fatliquor.OilDose, error) {
	if len(entries) > 3 {
		return nil, fmt.Errorf("at most three oil positions, got %d", len(entries))
	}
	var oils []fatliquor.OilDose
	for _, e := range entries {
		name, offerStr, ok := strings.Cut(e, "=")
		if !ok {
			return nil, fmt.Errorf("oil %q: want \"Name=offer%%\"", e)
		}
		offer, err := strconv.ParseFloat(strings.TrimSpace(offerStr), 64)
		if err != nil {
			return nil, fmt.Errorf("oil %q: bad offer: %w", e, err)
		}
		oils = append(oils, fatliquor.OilDose{Name: strings.TrimSpace(name), OfferPct: offer})
	}
	return oils, nil
}

func newCalculator(o opts) (*fatliquor.Calculator, error) {
	tables := fatliquor.DefaultTables()
	if o.tablesPath != "" {
		var err error
		tables, err = fatliquor.LoadTables(o.tablesPath)
		if err != nil {
			return nil, err
		}
	}
	return fatliquor.New(tables, &o.cfg), nil
}

func runOnce(o opts) error {
	calc, err := newCalculator(o)
	if err != nil {
		return err
	}
	in, err := buildInput(o)
	if err != nil {
		return err
	}
	if err := validateRanges(in); err != nil {
		return err
	}

	res, err := calc.Compute(in)
	if errors.Is(err, fatliquor.ErrNoOilOffer) {
		// Empty recipe is not a fault: there is simply nothing to render.
		fmt.Println("no oil offered; nothing to compute")
		return nil
	}
	if err != nil {
		return err
	}

	renderDashboard(in, res)

	rows := []row{resultRow(res, "", 0)}
	if err := exportRows(o, rows); err != nil {
		return err
	}
	return nil
}

// validateRanges is the caller-side slider-domain check the engine itself
// does not perform.
func validateRanges(in fatliquor.Input) error {
	switch {
	case in.ThicknessMM <= 0 || in.ThicknessMM > 12:
		return fmt.Errorf("thickness %.2f mm out of range (0, 12]", in.ThicknessMM)
	case in.NeutralizationPH < 2.5 || in.NeutralizationPH > 9:
		return fmt.Errorf("pH %.2f out of range [2.5, 9]", in.NeutralizationPH)
	case in.ChromeOfferPct < 0:
		return fmt.Errorf("chrome offer %.2f%% negative", in.ChromeOfferPct)
	case in.DrumDiameterM <= 0:
		return fmt.Errorf("drum diameter %.2f m must be positive", in.DrumDiameterM)
	case in.RPM < 0 || in.RPM > 40:
		return fmt.Errorf("rpm %.1f out of range [0, 40]", in.RPM)
	case in.LoadKg < 0:
		return fmt.Errorf("load %.0f kg negative", in.LoadKg)
	}
	return nil
}

func resultRow(res *fatliquor.Result, param string, value float64) row {
	return row{
		Param:       param,
		Value:       value,
		Zeta:        res.ZetaMV,
		Penetration: res.Penetration,
		GrainBreak:  res.GrainBreak,
		SpueRisk:    res.SpueRisk,
		Adhesion:    res.Adhesion,
		VBI:         res.VBI,
		AreaYield:   res.AreaYield,
		Complexity:  res.DryingComplexity,
		PunchKW:     res.PunchKW,
		KineticKJ:   res.KineticEnergyKJ,
		Velocity:    res.PeripheralVelocity,
		Mobility:    res.OilMobility,
		Fixation:    res.FixationRate,
		TempJump:    res.TempJumpC,
	}
}

// exportRows writes the computed rows to the CSV/JSON paths when set.
func exportRows(o opts, rows []row) error {
	if o.csvPath != "" {
		if err := writeCSV(o.csvPath, rows); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
	}
	if o.jsonPath != "" {
		if err := writeJSON(o.jsonPath, rows); err != nil {
			return fmt.Errorf("json: %w", err)
		}
	}
	return nil
}

func writeCSV(path string, rows []row) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{
		"param", "value", "zeta_mv", "penetration_pct", "grain_break", "spue_risk",
		"adhesion", "vbi", "area_yield_pct", "drying_complexity",
		"punch_kw", "kinetic_kj", "peripheral_velocity_ms", "oil_mobility",
		"fixation_rate", "temp_jump_c",
	}); err != nil {
		return err
	}
	fmtF := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	for _, r := range rows {
		if err := w.Write([]string{
			r.Param, fmtF(r.Value), fmtF(r.Zeta), fmtF(r.Penetration), fmtF(r.GrainBreak),
			fmtF(r.SpueRisk), fmtF(r.Adhesion), fmtF(r.VBI), fmtF(r.AreaYield),
			fmtF(r.Complexity), fmtF(r.PunchKW), fmtF(r.KineticKJ), fmtF(r.Velocity),
			fmtF(r.Mobility), fmtF(r.Fixation), fmtF(r.TempJump),
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(path string, rows []row) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
