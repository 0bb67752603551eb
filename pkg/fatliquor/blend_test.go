package fatliquor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlendOils_SingleOilDegenerates(t *testing.T) {
	calc := New(nil, nil)
	spec, err := DefaultTables().Oil("Phosphoric Ester")
	require.NoError(t, err)

	blend, total, err := calc.blendOils([]OilDose{{Name: "Phosphoric Ester", OfferPct: 6}})
	require.NoError(t, err)
	assert.Equal(t, 6.0, total)
	assert.InDelta(t, spec.Stability, blend.Stability, 1e-12)
	assert.InDelta(t, spec.PenetrationBase, blend.PenetrationBase, 1e-12)
	assert.InDelta(t, spec.CloudPointC, blend.CloudPointC, 1e-12)
	assert.InDelta(t, spec.SpueFactor, blend.SpueFactor, 1e-12)
	assert.InDelta(t, spec.GreaseDrag, blend.GreaseDrag, 1e-12)
	assert.Equal(t, spec.Note, blend.Note)
}

func TestBlendOils_WeightedAverage(t *testing.T) {
	calc := New(nil, nil)
	tables := DefaultTables()
	a, _ := tables.Oil("Sulphited Fish Oil")
	b, _ := tables.Oil("Raw/Neutral Oil (Neatsfoot)")

	blend, total, err := calc.blendOils([]OilDose{
		{Name: "Sulphited Fish Oil", OfferPct: 6},
		{Name: "Raw/Neutral Oil (Neatsfoot)", OfferPct: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 8.0, total)
	assert.InDelta(t, (a.PenetrationBase*6+b.PenetrationBase*2)/8, blend.PenetrationBase, 1e-12)
	assert.InDelta(t, (a.Stability*6+b.Stability*2)/8, blend.Stability, 1e-12)
	assert.Equal(t, a.Note, blend.Note, "dominant oil's note carries the blend")
}

func TestBlendOils_ZeroOfferSlotsIgnored(t *testing.T) {
	calc := New(nil, nil)

	// A zero-offer slot with a bogus name must neither error nor contribute.
	blend, total, err := calc.blendOils([]OilDose{
		{Name: "Sulphited Fish Oil", OfferPct: 8},
		{Name: "Something Not In The Table", OfferPct: 0},
		{Name: "Phosphoric Ester", OfferPct: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 8.0, total)

	spec, _ := DefaultTables().Oil("Sulphited Fish Oil")
	assert.InDelta(t, spec.PenetrationBase, blend.PenetrationBase, 1e-12)
}

func TestBlendOils_Errors(t *testing.T) {
	calc := New(nil, nil)

	_, _, err := calc.blendOils(nil)
	require.ErrorIs(t, err, ErrNoOilOffer)

	_, _, err = calc.blendOils([]OilDose{{Name: "Whale Oil", OfferPct: 3}})
	require.ErrorIs(t, err, ErrUnknownOil)
	assert.Contains(t, err.Error(), "Whale Oil")
}
