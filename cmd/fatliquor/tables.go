package main

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/pithnub/leather-digital-twin/pkg/fatliquor"
)

func newTablesCmd(o *opts) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the oil and tannin reference tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := fatliquor.DefaultTables()
			if o.tablesPath != "" {
				var err error
				tables, err = fatliquor.LoadTables(o.tablesPath)
				if err != nil {
					return err
				}
			}
			return renderTables(tables)
		},
	}
}

func renderTables(tables *fatliquor.Tables) error {
	oilNames := make([]string, 0, len(tables.Oils))
	for name := range tables.Oils {
		oilNames = append(oilNames, name)
	}
	sort.Strings(oilNames)

	oilData := pterm.TableData{{"Oil", "Stability", "Pen. Base", "Softness", "Cloud Pt", "Spue", "Grease Drag"}}
	for _, name := range oilNames {
		s := tables.Oils[name]
		oilData = append(oilData, []string{
			name,
			fmt.Sprintf("%.0f", s.Stability),
			fmt.Sprintf("%.2f", s.PenetrationBase),
			fmt.Sprintf("%.0f", s.Softness),
			fmt.Sprintf("%.0f °C", s.CloudPointC),
			fmt.Sprintf("%.1f", s.SpueFactor),
			fmt.Sprintf("%.1f", s.GreaseDrag),
		})
	}
	pterm.DefaultSection.Println("Fatliquor Oils")
	if err := pterm.DefaultTable.WithHasHeader().WithData(oilData).Render(); err != nil {
		return err
	}

	vegNames := make([]string, 0, len(tables.Tannins))
	for name := range tables.Tannins {
		vegNames = append(vegNames, name)
	}
	sort.Strings(vegNames)

	vegData := pterm.TableData{{"Tannin", "Zeta Contribution", "Fill Factor", "Astringency"}}
	for _, name := range vegNames {
		s := tables.Tannins[name]
		vegData = append(vegData, []string{
			name,
			fmt.Sprintf("%+.0f mV", s.ZetaContribution),
			fmt.Sprintf("%.1f", s.FillFactor),
			fmt.Sprintf("%.1f", s.Astringency),
		})
	}
	pterm.DefaultSection.Println("Vegetable Tannins")
	return pterm.DefaultTable.WithHasHeader().WithData(vegData).Render()
}
