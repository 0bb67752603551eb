package fatliquor

import "github.com/pithnub/leather-digital-twin/pkg/mathx"

const (
	// Oil mobility baseline: below this bath temperature the emulsion moves
	// no better than at rest.
	mobilityBaseTempC = 35.0

	// Temperature span over which mobility doubles.
	mobilitySpanC = 55.0

	// Chemical fixation accelerates above this effective pH.
	fixationPHThreshold = 5.1
)

// thermal is the stage-5 outcome.
type thermal struct {
	mobility float64 // >= 1
	jumpC    float64 // bath minus hide temperature; may be negative
	fixation float64 // >= 1
}

// thermalState derives oil mobility and the fixation-rate multiplier. A hot
// bath hitting a cooler, alkaline hide fixes oil before it can migrate; the
// multiplier never drops below 1 (a cold bath slows nothing chemically, it
// only fails to accelerate).
func (c *Calculator) thermalState(in Input, effPH float64) thermal {
	t := thermal{
		mobility: 1 + mathx.Floor0(in.FatliquorTempC-mobilityBaseTempC)/mobilitySpanC,
		jumpC:    in.FatliquorTempC - in.RetanTempC,
	}
	t.fixation = 1 + mathx.Floor0(effPH-fixationPHThreshold)*mathx.Floor0(t.jumpC)*c.cfg.FixationGain
	return t
}
