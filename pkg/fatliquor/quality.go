package fatliquor

import "github.com/pithnub/leather-digital-twin/pkg/mathx"

const (
	// Grain break grade lost per point of penetration.
	grainBreakSlope = 0.04

	// Fixation rates above this coarsen the break further.
	rapidFixationLimit        = 1.6
	rapidFixationBreakPenalty = 0.8

	// Cloud points below this reference add spue pressure, °C.
	cloudPointRefC     = 18.0
	cloudPointSpueGain = 0.08

	// Spue contribution per mV of pH stress.
	phStressSpueGain = 0.02

	// Adhesion penalty weights.
	adhesionSpueWeight   = 8.0
	adhesionGreaseWeight = 6.0

	// Emulsion-crash rule: unstable oils crash above this pH.
	crashPHThreshold  = 5.3
	crashStabilityMax = 4.0
	crashVBIFactor    = 2.1

	// Free chrome beyond saturation loads the surface once it exceeds 1%.
	freeChromeVBIBase  = 1.2
	freeChromeVBISlope = 0.06

	waterproofVBIFactor = 1.35
)

// quality is the stage-8 outcome.
type quality struct {
	grainBreak float64 // [1, 5]
	spueRisk   float64 // [0, 5]
	adhesion   float64 // >= 0
	vbi        float64
}

// qualityIndicators derives the secondary indices from upstream stage results.
func (c *Calculator) qualityIndicators(in Input, effPH, penetration, phStress float64,
	blend OilSpec, pe pickleEffects, th thermal, totalOfferPct float64) quality {

	var q quality

	q.grainBreak = mathx.Clamp(
		5-penetration*grainBreakSlope+mathx.Floor0(th.fixation-rapidFixationLimit)*rapidFixationBreakPenalty,
		1, 5)

	spueBase := blend.SpueFactor + mathx.Floor0(cloudPointRefC-blend.CloudPointC)*cloudPointSpueGain
	q.spueRisk = mathx.Clamp(
		(spueBase+phStress*phStressSpueGain)*in.Climate.spueMultiplier()*(100/(penetration+25)),
		0, 5)

	q.adhesion = mathx.Floor0(100 -
		q.spueRisk*adhesionSpueWeight -
		blend.GreaseDrag*pe.surfaceDrag*adhesionGreaseWeight)

	q.vbi = 1 + totalOfferPct*c.cfg.VBIOfferGain
	if effPH > crashPHThreshold && blend.Stability < crashStabilityMax {
		q.vbi *= crashVBIFactor
	}
	if freeCr := mathx.Floor0(in.ChromeOfferPct - chromeSaturationPct); freeCr > 1 {
		q.vbi *= freeChromeVBIBase + freeCr*freeChromeVBISlope
	}
	if in.Waterproof {
		q.vbi *= waterproofVBIFactor
	}

	return q
}
