package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/litigation-cli/internal/query"
	"github.com/sells-group/litigation-cli/internal/report"
)

var overviewFlags struct {
	yearMin   int
	yearMax   int
	claimType string
	industry  string
	format    string
}

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show the litigation dashboard",
	Long:  "Prints headline metrics over all cases plus charts and summaries for the cases matching the filters. The year range defaults to the range present in the data.",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := report.ParseFormat(overviewFlags.format)
		if err != nil {
			return err
		}

		t, err := loadTable(cmd.Context())
		if err != nil {
			return err
		}

		p := query.OverviewParams{
			ClaimType: overviewFlags.claimType,
			Industry:  overviewFlags.industry,
		}
		lo, hi, ok := query.YearBounds(t)
		switch {
		case cmd.Flags().Changed("year-min"):
			p.YearMin = &overviewFlags.yearMin
		case ok:
			p.YearMin = &lo
		}
		switch {
		case cmd.Flags().Changed("year-max"):
			p.YearMax = &overviewFlags.yearMax
		case ok:
			p.YearMax = &hi
		}

		o, err := query.BuildOverview(t, p)
		if err != nil {
			return err
		}
		return report.Overview(cmd.OutOrStdout(), format, o)
	},
}

func init() {
	f := overviewCmd.Flags()
	f.IntVar(&overviewFlags.yearMin, "year-min", 0, "first year to include (default earliest in data)")
	f.IntVar(&overviewFlags.yearMax, "year-max", 0, "last year to include (default latest in data)")
	f.StringVar(&overviewFlags.claimType, "claim-type", query.All, "claim type filter")
	f.StringVar(&overviewFlags.industry, "industry", query.All, "industry sector filter")
	f.StringVar(&overviewFlags.format, "format", "table", "output format: table, json, yaml, csv")
	rootCmd.AddCommand(overviewCmd)
}
