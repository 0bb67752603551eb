package mathx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp_BoundsAndNaN(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 100))
	assert.Equal(t, 100.0, Clamp(250, 0, 100))
	assert.Equal(t, 42.0, Clamp(42, 0, 100))
	assert.Equal(t, 1.0, Clamp(math.NaN(), 1, 5), "NaN collapses to the lower bound")

	assert.Equal(t, 0.0, Clamp01(-0.1))
	assert.Equal(t, 1.0, Clamp01(1.5))
	assert.Equal(t, 0.37, Clamp01(0.37))
}

func TestFloor0(t *testing.T) {
	assert.Equal(t, 0.0, Floor0(-12.5))
	assert.Equal(t, 0.0, Floor0(math.NaN()))
	assert.Equal(t, 3.25, Floor0(3.25))
}

func TestSafeDiv(t *testing.T) {
	assert.InDelta(t, 2.5, SafeDiv(5, 2), 1e-12)
	assert.Equal(t, 0.0, SafeDiv(5, 0), "division by zero yields zero, not Inf")
	assert.Equal(t, 0.0, SafeDiv(5, 1e-13), "sub-epsilon denominator treated as zero")
	assert.InDelta(t, -2.5, SafeDiv(5, -2), 1e-12)
}

func TestRoundTo(t *testing.T) {
	cases := []struct {
		in     float64
		places int
		want   float64
	}{
		{3.14159, 2, 3.14},
		{3.14159, 1, 3.1},
		{2.675, 2, 2.68},
		{99.999, 1, 100.0},
		{-1.25, 1, -1.3}, // math.Round halves go away from zero
	}
	for _, tc := range cases {
		got := RoundTo(tc.in, tc.places)
		require.InDelta(t, tc.want, got, 1e-9, "RoundTo(%v, %d)", tc.in, tc.places)
	}
}

func TestPow_NonPositiveBase(t *testing.T) {
	assert.Equal(t, 0.0, Pow(0, 2.65))
	assert.Equal(t, 0.0, Pow(-1.6, 2.65))
	assert.InDelta(t, math.Pow(1.6, 2.65), Pow(1.6, 2.65), 1e-9)
}
