package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/pithnub/leather-digital-twin/pkg/fatliquor"
	"github.com/pithnub/leather-digital-twin/pkg/types"
)

// Verdict thresholds on the derived outputs. These belong to the presentation
// layer, not the engine.
const (
	fullStrikePct     = 90.0
	crashStrikePct    = 45.0
	rapidFixationRate = 1.6
	thermalShockC     = 20.0
	blindedGrainPH    = 5.4
	dryingStallLimit  = 35.0
	crashVBILimit     = 1.8
)

func renderDashboard(in fatliquor.Input, res *fatliquor.Result) {
	pterm.DefaultHeader.WithFullWidth().Println("Fatliquor Process Dashboard")

	metrics := [][]string{
		{"Kinetic Energy", types.Kilojoules(res.KineticEnergyKJ).String(), "total mechanical work over the run"},
		{"Mechanical Punch", fmt.Sprintf("%.2f kW", res.PunchKW), "instantaneous massaging rate"},
		{"Peripheral Velocity", types.MetresPerSecond(res.PeripheralVelocity).String(), fmt.Sprintf("drum fill %.1f%%", res.DrumFillPct)},
		{"Core Penetration", types.Percent(res.Penetration).String(), "saturation of the core centre"},
		{"Electrical Drag (Zeta)", types.Millivolts(res.ZetaMV).String(), "net repulsion to the oil emulsion"},
		{"Surface Loading (VBI)", fmt.Sprintf("%.2f", res.VBI), fmt.Sprintf(">%.1f indicates an emulsion crash", crashVBILimit)},
		{"Oil Mobility", fmt.Sprintf("%.2fx", res.OilMobility), fmt.Sprintf("thermal jump %s", types.Celsius(res.TempJumpC))},
		{"Fixation Rate", fmt.Sprintf("%.2fx", res.FixationRate), "chemical binding speed"},
		{"Grain Break", fmt.Sprintf("%.1f / 5", res.GrainBreak), "1 is fine, 5 is coarse"},
		{"Spue Risk", fmt.Sprintf("%.2f / 5", res.SpueRisk), "long-term surface bloom"},
		{"Adhesion Index", fmt.Sprintf("%.1f", res.Adhesion), "finish anchoring"},
		{"Area Yield", types.Percent(res.AreaYield).String(), "predicted after drying"},
		{"Drying Complexity", fmt.Sprintf("%.1f", res.DryingComplexity), in.Drying.String()},
	}
	table := pterm.TableData{{"Metric", "Value", "Note"}}
	table = append(table, metrics...)
	_ = pterm.DefaultTable.WithHasHeader().WithData(table).Render()

	pterm.DefaultSection.Println("Cross-Section Strike")
	pterm.DefaultBox.WithTitle("grain → flesh").Println(crossSection(res.Penetration))

	pterm.DefaultSection.Println("Verdicts")
	printVerdicts(in, res)

	if res.OilNote != "" {
		pterm.Info.Println("Oil chemistry: " + res.OilNote)
	}
	if res.VegNote != "" {
		pterm.Info.Println("Vegetable tannin: " + res.VegNote)
	}
	pterm.Info.Println("Drying profile: " + res.DryingNote)
}

// crossSection renders the five hide layers with their oil saturation. The
// emulsion enters from both surfaces, so outer layers fill first and the core
// fills last.
func crossSection(pen float64) string {
	layers := []struct {
		name   string
		lo, hi float64 // penetration band over which this layer saturates
	}{
		{"grain", 0, 20},
		{"upper corium", 15, 45},
		{"core", 40, 85},
		{"lower corium", 15, 45},
		{"flesh", 0, 20},
	}

	const barWidth = 30
	var b strings.Builder
	for _, l := range layers {
		frac := (pen - l.lo) / (l.hi - l.lo)
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		filled := int(frac*barWidth + 0.5)
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		switch {
		case frac >= 0.99:
			bar = pterm.Green(bar)
		case frac >= 0.5:
			bar = pterm.Yellow(bar)
		default:
			bar = pterm.Red(bar)
		}
		fmt.Fprintf(&b, "%-13s %s %3.0f%%\n", l.name, bar, frac*100)
	}
	return strings.TrimRight(b.String(), "\n")
}

func printVerdicts(in fatliquor.Input, res *fatliquor.Result) {
	switch {
	case res.Penetration > fullStrikePct:
		pterm.Success.Printfln("Full penetration: the recipe drove through the %.1f mm substance.", in.ThicknessMM)
	case res.Penetration < crashStrikePct:
		pterm.Error.Printfln("EMULSION CRASH: chemistry fixed too rapidly; the %.1f mm core is starving for lubricant.", in.ThicknessMM)
	default:
		pterm.Warning.Println("Saturation warning: the oil has stalled before reaching the centre.")
	}

	if res.FixationRate > rapidFixationRate {
		pterm.Error.Printfln("RAPID FIXATION RISK: rate %.2fx is too aggressive; high risk of coarse break.", res.FixationRate)
	}
	if res.TempJumpC > thermalShockC {
		pterm.Warning.Printfln("Thermal shock: %.1f °C jump between bath and hide.", res.TempJumpC)
	}
	if res.VBI > crashVBILimit {
		pterm.Warning.Printfln("Surface loading %.2f indicates an emulsion crash on the grain.", res.VBI)
	}

	switch {
	case res.DryingComplexity > dryingStallLimit && in.Climate == fatliquor.Tropical:
		pterm.Error.Println("DRYING STALL: high humidity plus surface loading means stagnant evaporation.")
	case in.Drying == fatliquor.PartialVacuum && in.NeutralizationPH > blindedGrainPH:
		pterm.Warning.Println("BLINDED GRAIN: vacuum heat is ironing un-fixed oil into the pores.")
	default:
		pterm.Success.Println("Open path: fixation is internal; moisture transmission is optimal.")
	}
}
