// Package recipe loads a full process sheet (substrate, recipe, drum,
// thermal and environment sections) from YAML into a fatliquor.Input.
// It exists for the CLI; the engine itself never touches files.
package recipe

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pithnub/leather-digital-twin/pkg/fatliquor"
)

var (
	// ErrNoSubstrate indicates a sheet without a substrate section.
	ErrNoSubstrate = errors.New("recipe: missing substrate section")

	// ErrNoDrum indicates a sheet without a drum section.
	ErrNoDrum = errors.New("recipe: missing drum section")
)

// Sheet is the YAML schema of a process sheet. Enum-like fields are free-form
// labels resolved through the fatliquor parse helpers.
type Sheet struct {
	Substrate struct {
		ThicknessMM    float64 `yaml:"thickness_mm"`
		PH             float64 `yaml:"neutralization_ph"`
		ChromeOfferPct float64 `yaml:"chrome_offer_pct"`
	} `yaml:"substrate"`

	Recipe struct {
		Oils []struct {
			Name     string  `yaml:"name"`
			OfferPct float64 `yaml:"offer_pct"`
		} `yaml:"oils"`
		SyntanOfferPct float64 `yaml:"syntan_offer_pct"`
		NSAOfferPct    float64 `yaml:"nsa_offer_pct"`
		Veg            string  `yaml:"veg"`
		VegOfferPct    float64 `yaml:"veg_offer_pct"`
		Waterproof     bool    `yaml:"waterproof"`
	} `yaml:"recipe"`

	Drum struct {
		DiameterM     float64 `yaml:"diameter_m"`
		WidthM        float64 `yaml:"width_m"`
		RPM           float64 `yaml:"rpm"`
		LoadKg        float64 `yaml:"load_kg"`
		DurationMin   float64 `yaml:"duration_min"`
		Furniture     string  `yaml:"furniture"`
		LoadFactorPct float64 `yaml:"load_factor_pct"`
	} `yaml:"drum"`

	Thermal struct {
		FatliquorC   float64 `yaml:"fatliquor_c"`
		RetanC       float64 `yaml:"retan_c"`
		VacuumPlateC float64 `yaml:"vacuum_plate_c"`
	} `yaml:"thermal"`

	Process struct {
		Pickle  string `yaml:"pickle"`
		Drying  string `yaml:"drying"`
		Climate string `yaml:"climate"`
	} `yaml:"process"`
}

// Load reads and resolves a process sheet file.
func Load(path string) (fatliquor.Input, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fatliquor.Input{}, fmt.Errorf("recipe: %w", err)
	}
	return Parse(raw)
}

// Parse resolves YAML bytes into a fatliquor.Input.
func Parse(raw []byte) (fatliquor.Input, error) {
	var s Sheet
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return fatliquor.Input{}, fmt.Errorf("recipe: parse: %w", err)
	}
	if s.Substrate.ThicknessMM <= 0 {
		return fatliquor.Input{}, ErrNoSubstrate
	}
	if s.Drum.DiameterM <= 0 {
		return fatliquor.Input{}, ErrNoDrum
	}

	furniture, err := fatliquor.ParseFurniture(s.Drum.Furniture)
	if err != nil {
		return fatliquor.Input{}, err
	}
	pickle, err := fatliquor.ParsePickle(s.Process.Pickle)
	if err != nil {
		return fatliquor.Input{}, err
	}
	drying, err := fatliquor.ParseDrying(s.Process.Drying)
	if err != nil {
		return fatliquor.Input{}, err
	}
	climate, err := fatliquor.ParseClimate(s.Process.Climate)
	if err != nil {
		return fatliquor.Input{}, err
	}

	in := fatliquor.Input{
		ThicknessMM:      s.Substrate.ThicknessMM,
		NeutralizationPH: s.Substrate.PH,
		ChromeOfferPct:   s.Substrate.ChromeOfferPct,

		SyntanOfferPct: s.Recipe.SyntanOfferPct,
		NSAOfferPct:    s.Recipe.NSAOfferPct,
		VegName:        s.Recipe.Veg,
		VegOfferPct:    s.Recipe.VegOfferPct,
		Waterproof:     s.Recipe.Waterproof,

		DrumDiameterM: s.Drum.DiameterM,
		DrumWidthM:    s.Drum.WidthM,
		RPM:           s.Drum.RPM,
		LoadKg:        s.Drum.LoadKg,
		DurationMin:   s.Drum.DurationMin,
		Furniture:     furniture,
		LoadFactorPct: s.Drum.LoadFactorPct,

		FatliquorTempC:   s.Thermal.FatliquorC,
		RetanTempC:       s.Thermal.RetanC,
		VacuumPlateTempC: s.Thermal.VacuumPlateC,

		Pickle:  pickle,
		Drying:  drying,
		Climate: climate,
	}
	for _, o := range s.Recipe.Oils {
		in.Oils = append(in.Oils, fatliquor.OilDose{Name: o.Name, OfferPct: o.OfferPct})
	}
	return in, nil
}
