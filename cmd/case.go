package main

import (
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/litigation-cli/internal/query"
	"github.com/sells-group/litigation-cli/internal/report"
)

var caseFlags struct {
	keyword string
	format  string
}

var caseCmd = &cobra.Command{
	Use:   "case <index>",
	Short: "Show one case in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return eris.Errorf("case index must be an integer, got %q", args[0])
		}
		format, err := report.ParseFormat(caseFlags.format)
		if err != nil {
			return err
		}

		t, err := loadTable(cmd.Context())
		if err != nil {
			return err
		}

		d, err := query.Detail(t, index, caseFlags.keyword)
		if err != nil {
			return eris.Wrapf(err, "case %d", index)
		}
		return report.Detail(cmd.OutOrStdout(), format, d)
	},
}

func init() {
	caseCmd.Flags().StringVar(&caseFlags.keyword, "keyword", "", "words to highlight in the quote")
	caseCmd.Flags().StringVar(&caseFlags.format, "format", "table", "output format: table, json, yaml, csv")
	rootCmd.AddCommand(caseCmd)
}
