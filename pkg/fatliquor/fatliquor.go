// Package fatliquor implements the fatliquoring process calculator: a fixed
// chain of closed-form relations mapping recipe, mechanical, thermal and
// environmental inputs to derived process-quality indicators (core strike,
// area yield, grain break, spue risk ...).
//
// The engine is pure: Compute reads only the immutable reference tables and
// coefficient Config captured at construction, holds no state between calls,
// and may be invoked concurrently without coordination.
package fatliquor

import (
	"github.com/pithnub/leather-digital-twin/pkg/mathx"
)

// Calculator evaluates process inputs against one calibration and one set of
// reference tables.
type Calculator struct {
	cfg    *Config
	tables Tables
}

// New creates a calculator. A nil tables argument uses the built-in reference
// data; a nil cfg uses the canonical calibration. Fields > 0 in cfg override
// defaults; zero and negative values are treated as "unset" and defaulted, so
// a partially filled Config is safe.
func New(tables *Tables, cfg *Config) *Calculator {
	base := _defaultConfig()

	if cfg != nil {
		merged := *base
		if cfg.DiffusionExp > 0 {
			merged.DiffusionExp = cfg.DiffusionExp
		}
		if cfg.ZetaScale > 0 {
			merged.ZetaScale = cfg.ZetaScale
		}
		if cfg.PushEps > 0 {
			merged.PushEps = cfg.PushEps
		}
		if cfg.SwellPerPH > 0 {
			merged.SwellPerPH = cfg.SwellPerPH
		}
		if cfg.FillGain > 0 {
			merged.FillGain = cfg.FillGain
		}
		if cfg.AstringencyGain > 0 {
			merged.AstringencyGain = cfg.AstringencyGain
		}
		if cfg.SyntanMask > 0 {
			merged.SyntanMask = cfg.SyntanMask
		}
		if cfg.NSAMask > 0 {
			merged.NSAMask = cfg.NSAMask
		}
		if cfg.PHStressGain > 0 {
			merged.PHStressGain = cfg.PHStressGain
		}
		if cfg.FixationGain > 0 {
			merged.FixationGain = cfg.FixationGain
		}
		if cfg.FillPeakPct > 0 {
			merged.FillPeakPct = cfg.FillPeakPct
		}
		if cfg.FillSpreadPct > 0 {
			merged.FillSpreadPct = cfg.FillSpreadPct
		}
		if cfg.VBIOfferGain > 0 {
			merged.VBIOfferGain = cfg.VBIOfferGain
		}
		if cfg.BaseYield > 0 {
			merged.BaseYield = cfg.BaseYield
		}
		base = &merged
	}

	if tables == nil {
		tables = DefaultTables()
	}
	return &Calculator{cfg: base, tables: tables.clone()}
}

// Compute runs the derivation chain on one process input.
//
// It returns ErrNoOilOffer when the recipe's total oil offer is zero — the
// expected "nothing to compute" condition. ErrUnknownOil/ErrUnknownTannin
// report names absent from the reference tables. Any other input is accepted
// as-is; range validation belongs to the caller.
func (c *Calculator) Compute(in Input) (*Result, error) {
	// Mixture blending first: every downstream oil property reads the blend,
	// and the zero-offer guard lives in the blend denominator.
	blend, totalOffer, err := c.blendOils(in.Oils)
	if err != nil {
		return nil, err
	}
	veg, err := c.tables.Veg(in.VegName)
	if err != nil {
		return nil, err
	}

	// Stage 1: tannin/pH fiber response.
	fr := c.fiberRespond(in, veg)

	// Stage 2: pickle-strategy branch.
	pe := pickleBranch(in.Pickle, in.ChromeOfferPct, in.ThicknessMM)
	effPH := in.NeutralizationPH + pe.phShift

	// Stage 3: zeta potential.
	zeta, stress := c.zetaPotential(in, effPH, veg)

	// Stage 4: drum mechanics.
	mech := c.drumMechanics(in)

	// Stage 5: thermal mobility and fixation.
	th := c.thermalState(in, effPH)

	// Stage 6: core penetration. Electrochemical resistance in the numerator
	// against mechanical/thermal push in the denominator; the additive
	// PushEps keeps a dead drum from dividing the model by zero.
	diffusion := mathx.Pow(in.ThicknessMM, c.cfg.DiffusionExp) *
		(1 + pe.coreBarrier) * pe.caseHardening * th.fixation
	resistance := mathx.Floor0(zeta) * c.cfg.ZetaScale * diffusion
	push := blend.PenetrationBase*mech.punchKW*th.mobility + c.cfg.PushEps
	penetration := mathx.Clamp(100/(1+resistance/push), 0, 100)

	// Stage 8: quality indicators.
	q := c.qualityIndicators(in, effPH, penetration, stress, blend, pe, th, totalOffer)

	// Stage 9: drying and area yield.
	dry := c.dryAndYield(in, fr, effPH, veg, q.vbi, totalOffer)

	return &Result{
		ZetaMV:    mathx.RoundTo(zeta, 1),
		SwellGain: mathx.RoundTo(fr.swellGain, 2),
		FillGain:  mathx.RoundTo(fr.fillGain, 2),

		PeripheralVelocity: mathx.RoundTo(mech.velocityMS, 2),
		DrumFillPct:        mathx.RoundTo(mech.fillPct, 1),
		PunchKW:            mathx.RoundTo(mech.punchKW, 2),
		KineticEnergyKJ:    mathx.RoundTo(mech.kineticKJ, 2),

		OilMobility:  mathx.RoundTo(th.mobility, 2),
		TempJumpC:    mathx.RoundTo(th.jumpC, 1),
		FixationRate: mathx.RoundTo(th.fixation, 2),

		Penetration: mathx.RoundTo(penetration, 1),

		GrainBreak:       mathx.RoundTo(q.grainBreak, 1),
		SpueRisk:         mathx.RoundTo(q.spueRisk, 2),
		Adhesion:         mathx.RoundTo(q.adhesion, 1),
		VBI:              mathx.RoundTo(q.vbi, 2),
		AreaYield:        mathx.RoundTo(dry.areaYield, 1),
		DryingComplexity: mathx.RoundTo(dry.complexity, 1),

		Blend:      blend,
		OilNote:    blend.Note,
		VegNote:    veg.Note,
		DryingNote: dry.note,
	}, nil
}
