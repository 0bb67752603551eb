package fatliquor

import (
	"math"

	"github.com/pithnub/leather-digital-twin/pkg/mathx"
)

// Osmotic swelling stops below this neutralization pH.
const swellFloorPH = 4.2

// Astringency only bites when the float is still acidic.
const astringencyPHLimit = 5.0

// Exponential electrostatic wall activates below this effective pH.
const phStressThresholdPH = 5.2

// Chrome offer at which the fiber surface charge saturates, % w/w.
const chromeSaturationPct = 3.0

// Steepness of the pH stress exponential.
const phStressSlope = 1.3

// Veg masking values in the tables are quoted at this reference offer.
const vegOfferRefPct = 6.0

// fiberResponse is the stage-1 tannin/pH outcome.
type fiberResponse struct {
	swellGain          float64 // % area
	fillGain           float64 // % area
	astringencyPenalty float64 // % area
}

// fiberRespond derives osmotic swelling and vegetable fill/astringency effects
// from the raw neutralization pH, before any pickle shift.
func (c *Calculator) fiberRespond(in Input, veg VegSpec) fiberResponse {
	r := fiberResponse{
		swellGain: mathx.Floor0(in.NeutralizationPH-swellFloorPH) * c.cfg.SwellPerPH,
		fillGain:  veg.FillFactor * in.VegOfferPct * c.cfg.FillGain,
	}
	if in.NeutralizationPH < astringencyPHLimit {
		deficit := astringencyPHLimit - in.NeutralizationPH
		r.astringencyPenalty = veg.Astringency * in.VegOfferPct * deficit * c.cfg.AstringencyGain
	}
	return r
}

// pickleEffects is the stage-2 branch outcome: how the acid-fixation strategy
// redistributed chrome between surface and core.
type pickleEffects struct {
	phShift       float64 // applied to the neutralization pH downstream
	coreBarrier   float64 // chemical diffusion barrier in the core, >= 0
	surfaceDrag   float64 // multiplier on surface grease residue
	caseHardening float64 // multiplier on the diffusion resistance
}

// Core barrier normalization points: a 6% chrome offer on a 2 mm substrate
// yields the branch's nominal barrier.
const (
	barrierChromeRefPct   = 6.0
	barrierThicknessRefMM = 2.0
)

// pickleBranch evaluates the two-way strategy table. Chaser loads the core
// with chrome (higher barrier and case hardening, raised effective pH, less
// surface drag); Equilibrium does the opposite.
func pickleBranch(strategy PickleStrategy, chromePct, thicknessMM float64) pickleEffects {
	scale := (chromePct / barrierChromeRefPct) * (thicknessMM / barrierThicknessRefMM)
	if strategy == PickleChaser {
		return pickleEffects{
			phShift:       +0.25,
			coreBarrier:   mathx.Floor0(1.45 * scale),
			surfaceDrag:   0.85,
			caseHardening: 1.30,
		}
	}
	return pickleEffects{
		phShift:       -0.10,
		coreBarrier:   mathx.Floor0(0.85 * scale),
		surfaceDrag:   1.25,
		caseHardening: 0.95,
	}
}

// phStress is the exponential electrostatic wall below the stress threshold,
// in mV. Zero at or above the threshold.
func (c *Calculator) phStress(effPH float64) float64 {
	if effPH >= phStressThresholdPH {
		return 0
	}
	return (math.Exp(phStressSlope*(phStressThresholdPH-effPH)) - 1) * c.cfg.PHStressGain
}

// zetaPotential is the stage-3 net electrical drag in mV: chrome base charge
// plus pH stress, reduced by the masking soup. May go negative under full
// masking.
func (c *Calculator) zetaPotential(in Input, effPH float64, veg VegSpec) (zeta, stress float64) {
	crSat := math.Min(1.0, in.ChromeOfferPct/chromeSaturationPct)
	baseCharge := crSat * 100

	stress = c.phStress(effPH)

	vegMask := veg.ZetaContribution * (in.VegOfferPct / vegOfferRefPct)
	masking := in.SyntanOfferPct*c.cfg.SyntanMask + in.NSAOfferPct*c.cfg.NSAMask + vegMask

	return baseCharge + stress - masking, stress
}
