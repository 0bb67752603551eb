package fatliquor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiberRespond_SwellingFloor(t *testing.T) {
	calc := New(nil, nil)

	in := baseInput()
	in.NeutralizationPH = 4.0 // below the 4.2 floor
	fr := calc.fiberRespond(in, VegSpec{})
	assert.Equal(t, 0.0, fr.swellGain)

	in.NeutralizationPH = 5.7
	fr = calc.fiberRespond(in, VegSpec{})
	assert.InDelta(t, 1.5*0.8, fr.swellGain, 1e-12)
}

func TestFiberRespond_AstringencyOnlyWhenAcidic(t *testing.T) {
	calc := New(nil, nil)
	chestnut, err := DefaultTables().Veg("Chestnut")
	require.NoError(t, err)

	in := baseInput()
	in.VegName = "Chestnut"
	in.VegOfferPct = 4

	in.NeutralizationPH = 5.5
	fr := calc.fiberRespond(in, chestnut)
	assert.Equal(t, 0.0, fr.astringencyPenalty, "no penalty at or above pH 5.0")
	assert.Greater(t, fr.fillGain, 0.0)

	in.NeutralizationPH = 4.4
	fr = calc.fiberRespond(in, chestnut)
	assert.InDelta(t, 3.4*4*0.6*0.08, fr.astringencyPenalty, 1e-12)
}

func TestPHStress_ThresholdActivation(t *testing.T) {
	calc := New(nil, nil)

	assert.Equal(t, 0.0, calc.phStress(5.2))
	assert.Equal(t, 0.0, calc.phStress(6.0))

	// Just below the wall the stress is small; deep below it explodes.
	shallow := calc.phStress(5.1)
	deep := calc.phStress(4.2)
	assert.Greater(t, shallow, 0.0)
	assert.Greater(t, deep, shallow*5)
	assert.InDelta(t, (math.Exp(1.3*1.0)-1)*12, deep, 1e-9)
}

func TestZetaPotential_MaskingAndSaturation(t *testing.T) {
	calc := New(nil, nil)

	// Chrome charge saturates at 3% offer.
	in := baseInput()
	in.SyntanOfferPct = 0
	in.NSAOfferPct = 0
	in.ChromeOfferPct = 3.0
	zAt3, _ := calc.zetaPotential(in, 5.6, VegSpec{})
	in.ChromeOfferPct = 8.0
	zAt8, _ := calc.zetaPotential(in, 5.6, VegSpec{})
	assert.InDelta(t, zAt3, zAt8, 1e-12, "base charge flat beyond saturation")
	assert.InDelta(t, 100.0, zAt3, 1e-12)

	// Full masking can push the net charge negative.
	in.SyntanOfferPct = 12
	in.NSAOfferPct = 2
	z, _ := calc.zetaPotential(in, 5.6, VegSpec{})
	assert.Less(t, z, 0.0)

	// Tara masks (positive contribution), chestnut anti-masks, both scaled
	// by offer against the 6% reference.
	tara, _ := DefaultTables().Veg("Tara")
	chestnut, _ := DefaultTables().Veg("Chestnut")
	in.SyntanOfferPct = 0
	in.NSAOfferPct = 0
	in.VegOfferPct = 6
	zTara, _ := calc.zetaPotential(in, 5.6, tara)
	zChestnut, _ := calc.zetaPotential(in, 5.6, chestnut)
	assert.InDelta(t, 100-25, zTara, 1e-12)
	assert.InDelta(t, 100+12, zChestnut, 1e-12)
}

func TestPickleBranch_Table(t *testing.T) {
	eq := pickleBranch(PickleEquilibrium, 6.0, 2.0)
	ch := pickleBranch(PickleChaser, 6.0, 2.0)

	// At the normalization point the nominal barriers apply.
	assert.InDelta(t, 0.85, eq.coreBarrier, 1e-12)
	assert.InDelta(t, 1.45, ch.coreBarrier, 1e-12)
	assert.InDelta(t, -0.10, eq.phShift, 1e-12)
	assert.InDelta(t, +0.25, ch.phShift, 1e-12)
	assert.InDelta(t, 1.25, eq.surfaceDrag, 1e-12)
	assert.InDelta(t, 0.85, ch.surfaceDrag, 1e-12)
	assert.InDelta(t, 0.95, eq.caseHardening, 1e-12)
	assert.InDelta(t, 1.30, ch.caseHardening, 1e-12)

	// Barrier scales with chrome and thickness, floored at zero.
	thin := pickleBranch(PickleChaser, 6.0, 1.0)
	assert.InDelta(t, 1.45/2, thin.coreBarrier, 1e-12)
	none := pickleBranch(PickleChaser, 0, 2.0)
	assert.Equal(t, 0.0, none.coreBarrier)
}
