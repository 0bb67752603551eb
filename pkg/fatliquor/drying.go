package fatliquor

import "github.com/pithnub/leather-digital-twin/pkg/mathx"

const (
	// Total-offer loading cost on area yield, % per % offer.
	offerYieldLoss = 0.15

	// Air drying: evaporation loss per (mm x VBI x climate resistance).
	airLossGain = 0.55

	// Vacuum drying: striction baseline and plate-temperature scaling.
	vacuumLossBase     = 1.5
	vacuumPlateRefC    = 40.0
	vacuumPlateGain    = 0.09
	vacuumChromeGain   = 0.08
	vegBracingGain     = 0.04
	vegBracingMax      = 0.5
	vacuumHighPHLimit  = 5.4
	vacuumVBIHighPH    = 1.35
	vacuumVBILowPH     = 0.75
	vacuumThicknessExp = 1.6
	vacuumClimateScale = 0.55

	// Hard floor on area yield; below this the piece is scrap anyway.
	minAreaYieldPct = 70.0
)

// Narrative verdicts selected per drying branch.
const (
	airDryingNote     = "Natural capillary evaporation. High sensitivity to ambient humidity."
	partialVacuumNote = "Mechanical moisture extraction. Risk of 'Blinded Grain' at high pH."
)

// dryingOutcome is the stage-9 result.
type dryingOutcome struct {
	areaYield  float64 // %
	complexity float64
	note       string
}

// dryAndYield applies the drying-method branch to the base yield.
//
// Air drying loses area to slow, climate-bound evaporation through the oil
// loaded surface. Partial vacuum loses more to heat striction: the hotter the
// plate and the more chrome in the hide the harder it sets, while vegetable
// tannins brace the fiber network against the shrink.
func (c *Calculator) dryAndYield(in Input, fr fiberResponse, effPH float64,
	veg VegSpec, vbi, totalOfferPct float64) dryingOutcome {

	var out dryingOutcome

	baseYield := c.cfg.BaseYield + fr.swellGain + fr.fillGain -
		fr.astringencyPenalty - totalOfferPct*offerYieldLoss

	climate := in.Climate.dryingResistance()

	var loss float64
	switch in.Drying {
	case PartialVacuum:
		bracing := 1 - mathx.Clamp(veg.FillFactor*in.VegOfferPct*vegBracingGain, 0, vegBracingMax)
		loss = (vacuumLossBase +
			mathx.Floor0(in.VacuumPlateTempC-vacuumPlateRefC)*vacuumPlateGain*(1+in.ChromeOfferPct*vacuumChromeGain)) *
			bracing

		vbiAdj := vbi * vacuumVBILowPH
		if effPH > vacuumHighPHLimit {
			vbiAdj = vbi * vacuumVBIHighPH
		}
		out.complexity = mathx.Pow(in.ThicknessMM, vacuumThicknessExp) * vbiAdj * climate * vacuumClimateScale
		out.note = partialVacuumNote

	default: // AirDrying
		loss = in.ThicknessMM * vbi * climate * airLossGain
		out.complexity = in.ThicknessMM * in.ThicknessMM * vbi * climate
		out.note = airDryingNote
	}

	out.areaYield = mathx.Clamp(baseYield-loss, minAreaYieldPct, 110)
	return out
}
