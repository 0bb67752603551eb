package fatliquor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OilSpec is the chemistry record of one fatliquor product. It is a superset
// of what historical data sheets carry; absent fields stay zero.
type OilSpec struct {
	Stability       float64 `yaml:"stability"`        // electrolyte stability, 1..10
	PenetrationBase float64 `yaml:"penetration_base"` // intrinsic strike ability, 0..1
	Softness        float64 `yaml:"softness"`         // handle softness, 1..10
	CloudPointC     float64 `yaml:"cloud_point_c"`    // °C; low cloud point resists spue
	SpueFactor      float64 `yaml:"spue_factor"`      // migration tendency, 0..5
	GreaseDrag      float64 `yaml:"grease_drag"`      // surface residue load, 0..10
	Note            string  `yaml:"note"`
}

// VegSpec is the record of one vegetable retanning tannin.
type VegSpec struct {
	ZetaContribution float64 `yaml:"zeta_contribution"` // mV of masking at the 6% reference offer
	FillFactor       float64 `yaml:"fill_factor"`       // area fill per % offer, relative
	Astringency      float64 `yaml:"astringency"`       // grain-tightening aggression, 0..5
	Note             string  `yaml:"note"`
}

// Tables are the static oil/tannin reference data. They load once at startup
// and are copied into the Calculator; nothing mutates them afterwards.
type Tables struct {
	Oils    map[string]OilSpec `yaml:"oils"`
	Tannins map[string]VegSpec `yaml:"tannins"`
}

// DefaultTables returns the built-in industrial reference data.
func DefaultTables() *Tables {
	return &Tables{
		Oils: map[string]OilSpec{
			"Sulphated Fish Oil": {
				Stability: 2, PenetrationBase: 0.4, Softness: 5,
				CloudPointC: 14, SpueFactor: 2.6, GreaseDrag: 4.0,
				Note: "Typically rapid fixation and surface focused.",
			},
			"Sulphited Fish Oil": {
				Stability: 8, PenetrationBase: 0.9, Softness: 7,
				CloudPointC: 8, SpueFactor: 1.4, GreaseDrag: 2.5,
				Note: "Inherently salt stable with deep penetration.",
			},
			"Sulphated Vegetable Oil": {
				Stability: 3, PenetrationBase: 0.5, Softness: 4,
				CloudPointC: 12, SpueFactor: 2.0, GreaseDrag: 3.0,
				Note: "Standard grain-focused lubrication property.",
			},
			"Synthetic Waterproofing Oil": {
				Stability: 6, PenetrationBase: 0.7, Softness: 3,
				CloudPointC: 4, SpueFactor: 0.8, GreaseDrag: 5.5,
				Note: "Polymer-based with reactive barrier logic.",
			},
			"Phosphoric Ester": {
				Stability: 9, PenetrationBase: 0.8, Softness: 4,
				CloudPointC: 2, SpueFactor: 0.5, GreaseDrag: 1.5,
				Note: "Superior electrolyte stability; stays mobile easily.",
			},
			"Raw/Neutral Oil (Neatsfoot)": {
				Stability: 1, PenetrationBase: 0.2, Softness: 8,
				CloudPointC: 20, SpueFactor: 3.8, GreaseDrag: 6.0,
				Note: "High crash risk without significant NSA/Surfactants.",
			},
		},
		Tannins: map[string]VegSpec{
			"Tara": {
				ZetaContribution: 25, FillFactor: 0.6, Astringency: 1.2,
				Note: "Light colour, mild astringency, strong anionic masking.",
			},
			"Mimosa": {
				ZetaContribution: -6, FillFactor: 1.0, Astringency: 2.0,
				Note: "Balanced fill with moderate astringency.",
			},
			"Chestnut": {
				ZetaContribution: -12, FillFactor: 1.4, Astringency: 3.4,
				Note: "Heavy fill; tightens grain hard below pH 5.",
			},
		},
	}
}

// LoadTables reads a YAML override file and merges it over the defaults.
// Entries replace whole records keyed by name; unmentioned names keep their
// built-in values.
func LoadTables(path string) (*Tables, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tables: %w", err)
	}
	var over Tables
	if err := yaml.Unmarshal(raw, &over); err != nil {
		return nil, fmt.Errorf("tables: parse %s: %w", path, err)
	}
	t := DefaultTables()
	for name, spec := range over.Oils {
		t.Oils[name] = spec
	}
	for name, spec := range over.Tannins {
		t.Tannins[name] = spec
	}
	return t, nil
}

// Oil looks up one oil record.
func (t *Tables) Oil(name string) (OilSpec, error) {
	spec, ok := t.Oils[name]
	if !ok {
		return OilSpec{}, fmt.Errorf("%w: %q", ErrUnknownOil, name)
	}
	return spec, nil
}

// Veg looks up one tannin record. The empty name and "None" are the documented
// no-retannage case and yield a zero record.
func (t *Tables) Veg(name string) (VegSpec, error) {
	if name == "" || name == "None" {
		return VegSpec{}, nil
	}
	spec, ok := t.Tannins[name]
	if !ok {
		return VegSpec{}, fmt.Errorf("%w: %q", ErrUnknownTannin, name)
	}
	return spec, nil
}

// clone deep-copies the tables so the Calculator cannot observe later edits.
func (t *Tables) clone() Tables {
	c := Tables{
		Oils:    make(map[string]OilSpec, len(t.Oils)),
		Tannins: make(map[string]VegSpec, len(t.Tannins)),
	}
	for k, v := range t.Oils {
		c.Oils[k] = v
	}
	for k, v := range t.Tannins {
		c.Tannins[k] = v
	}
	return c
}
