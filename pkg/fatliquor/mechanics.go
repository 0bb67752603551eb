package fatliquor

import (
	"math"

	"github.com/pithnub/leather-digital-twin/pkg/mathx"
)

const (
	gravity = 9.81

	// Drum width defaults to this fraction of the diameter when unspecified.
	widthDiameterRatio = 0.6

	// Nominal pack density used to convert load mass into drum fill, kg/m³
	// (hides plus float, loosely packed).
	packDensityKgM3 = 400.0

	// Fraction of the diameter the pack falls from the wall on each lift.
	dropHeightFactor = 0.75

	// Additive guard against near-zero shaved thickness.
	thicknessEpsMM = 0.1
)

// mechanics is the stage-4 outcome.
type mechanics struct {
	velocityMS float64 // peripheral drum velocity
	fillPct    float64 // effective drum fill
	fallEff    float64 // tumble quality, (0, 1]
	punchKW    float64 // instantaneous massaging rate
	kineticKJ  float64 // cumulative over the run
}

// drumMechanics derives the mechanical punch delivered to the pack. The fall
// efficiency is a Gaussian over drum fill: an empty drum has nothing to throw,
// an overloaded one has no room to tumble.
func (c *Calculator) drumMechanics(in Input) mechanics {
	var m mechanics

	m.velocityMS = math.Pi * in.DrumDiameterM * in.RPM / 60

	width := in.DrumWidthM
	if width <= 0 {
		width = in.DrumDiameterM * widthDiameterRatio
	}
	volume := math.Pi * (in.DrumDiameterM / 2) * (in.DrumDiameterM / 2) * width

	loadFactor := in.LoadFactorPct
	if loadFactor <= 0 {
		loadFactor = 100
	}
	m.fillPct = mathx.SafeDiv(in.LoadKg*(loadFactor/100), packDensityKgM3*volume) * 100

	dev := (m.fillPct - c.cfg.FillPeakPct) / c.cfg.FillSpreadPct
	m.fallEff = math.Exp(-dev * dev)

	dropKJ := in.LoadKg * gravity * (in.DrumDiameterM * dropHeightFactor) / 1000

	m.punchKW = m.velocityMS * dropKJ * m.fallEff * in.Furniture.multiplier() /
		(in.ThicknessMM + thicknessEpsMM)
	m.kineticKJ = m.punchKW * in.DurationMin

	return m
}
