package main

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/pithnub/leather-digital-twin/pkg/fatliquor"
)

// sweepSetters maps a sweep parameter name to the input field it varies.
var sweepSetters = map[string]func(*fatliquor.Input, float64){
	"rpm":       func(in *fatliquor.Input, v float64) { in.RPM = v },
	"ph":        func(in *fatliquor.Input, v float64) { in.NeutralizationPH = v },
	"thickness": func(in *fatliquor.Input, v float64) { in.ThicknessMM = v },
	"chrome":    func(in *fatliquor.Input, v float64) { in.ChromeOfferPct = v },
	"temp-fat":  func(in *fatliquor.Input, v float64) { in.FatliquorTempC = v },
	"load":      func(in *fatliquor.Input, v float64) { in.LoadKg = v },
	"syntan":    func(in *fatliquor.Input, v float64) { in.SyntanOfferPct = v },
	"duration":  func(in *fatliquor.Input, v float64) { in.DurationMin = v },
}

func newSweepCmd(o *opts) *cobra.Command {
	var (
		param string
		from  float64
		to    float64
		step  float64
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Vary one input over a range and tabulate the outcomes",
		Long: `Sweep holds the whole process fixed and varies a single parameter over
[from, to] with the given step, computing the full indicator set at each point.
Useful for finding the rpm or temperature where a recipe tips from crash to
full strike.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(*o, param, from, to, step)
		},
	}

	cmd.Flags().StringVar(&param, "param", "rpm", "parameter to sweep: rpm, ph, thickness, chrome, temp-fat, load, syntan, duration")
	cmd.Flags().Float64Var(&from, "from", 2, "sweep start")
	cmd.Flags().Float64Var(&to, "to", 24, "sweep end (inclusive)")
	cmd.Flags().Float64Var(&step, "step", 1, "sweep increment")
	return cmd
}

func runSweep(o opts, param string, from, to, step float64) error {
	set, ok := sweepSetters[param]
	if !ok {
		return fmt.Errorf("unknown sweep parameter %q", param)
	}
	if step <= 0 {
		return fmt.Errorf("step must be positive, got %v", step)
	}
	if to < from {
		return fmt.Errorf("sweep end %v below start %v", to, from)
	}

	calc, err := newCalculator(o)
	if err != nil {
		return err
	}
	base, err := buildInput(o)
	if err != nil {
		return err
	}

	var rows []row
	table := pterm.TableData{{param, "zeta (mV)", "penetration", "break", "spue", "yield", "VBI"}}

	for v := from; v <= to+step/2; v += step {
		in := base
		set(&in, v)

		res, err := calc.Compute(in)
		if errors.Is(err, fatliquor.ErrNoOilOffer) {
			continue
		}
		if err != nil {
			return err
		}

		rows = append(rows, resultRow(res, param, v))
		table = append(table, []string{
			fmt.Sprintf("%.2f", v),
			fmt.Sprintf("%.1f", res.ZetaMV),
			fmt.Sprintf("%.1f%%", res.Penetration),
			fmt.Sprintf("%.1f", res.GrainBreak),
			fmt.Sprintf("%.2f", res.SpueRisk),
			fmt.Sprintf("%.1f%%", res.AreaYield),
			fmt.Sprintf("%.2f", res.VBI),
		})
	}

	if len(rows) == 0 {
		fmt.Println("no oil offered; nothing to compute")
		return nil
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(table).Render(); err != nil {
		return err
	}
	return exportRows(o, rows)
}
