package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitFormatting(t *testing.T) {
	assert.Equal(t, "87.5%", Percent(87.52).String())
	assert.Equal(t, "100.0%", Percent(99.96).String())
	assert.Equal(t, "55.0 °C", Celsius(55).String())
	assert.Equal(t, "-3.5 °C", Celsius(-3.5).String())
	assert.Equal(t, "1.60 mm", Millimetres(1.6).String())
	assert.Equal(t, "1.88 m/s", MetresPerSecond(1.885).String())
	assert.Equal(t, "41.57 kJ", Kilojoules(41.571).String())
	assert.Equal(t, "-12.0 mV", Millivolts(-12.04).String())
}
