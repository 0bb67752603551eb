package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pithnub/leather-digital-twin/pkg/fatliquor"
)

func TestParseOilFlags(t *testing.T) {
	oils, err := parseOilFlags([]string{"Sulphited Fish Oil=6", "Phosphoric Ester = 2.5"})
	require.NoError(t, err)
	require.Len(t, oils, 2)
	assert.Equal(t, fatliquor.OilDose{Name: "Sulphited Fish Oil", OfferPct: 6}, oils[0])
	assert.Equal(t, fatliquor.OilDose{Name: "Phosphoric Ester", OfferPct: 2.5}, oils[1])

	_, err = parseOilFlags([]string{"no-separator"})
	require.Error(t, err)

	_, err = parseOilFlags([]string{"Oil=abc"})
	require.Error(t, err)

	_, err = parseOilFlags([]string{"a=1", "b=1", "c=1", "d=1"})
	require.Error(t, err, "more than three positions rejected")
}

func TestValidateRanges(t *testing.T) {
	ok := fatliquor.Input{ThicknessMM: 1.6, NeutralizationPH: 5.7, DrumDiameterM: 3, RPM: 12, LoadKg: 1000}
	require.NoError(t, validateRanges(ok))

	bad := ok
	bad.ThicknessMM = 0
	require.Error(t, validateRanges(bad))

	bad = ok
	bad.NeutralizationPH = 1.0
	require.Error(t, validateRanges(bad))

	bad = ok
	bad.RPM = 60
	require.Error(t, validateRanges(bad))
}

func TestCrossSection_FillOrder(t *testing.T) {
	// At a partial strike the surfaces are saturated while the core lags.
	out := crossSection(50)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "100%")
	assert.Contains(t, lines[4], "100%")
	assert.NotContains(t, lines[2], "100%")

	// Full strike saturates everything.
	for _, line := range strings.Split(crossSection(100), "\n") {
		assert.Contains(t, line, "100%")
	}

	// No strike leaves everything empty.
	for _, line := range strings.Split(crossSection(0), "\n") {
		assert.Contains(t, line, "  0%")
	}
}
