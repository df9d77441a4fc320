package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/litigation-cli/internal/query"
	"github.com/sells-group/litigation-cli/internal/report"
)

var choicesFlags struct {
	claimType string
	format    string
}

var choicesCmd = &cobra.Command{
	Use:   "choices",
	Short: "List filter and sort options",
	Long:  "Lists the values accepted by the cases filters. Sub-categories are narrowed to --claim-type.",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := report.ParseFormat(choicesFlags.format)
		if err != nil {
			return err
		}

		t, err := loadTable(cmd.Context())
		if err != nil {
			return err
		}

		c, err := query.BuildChoices(t, choicesFlags.claimType)
		if err != nil {
			return err
		}
		return report.Choices(cmd.OutOrStdout(), format, c)
	},
}

func init() {
	choicesCmd.Flags().StringVar(&choicesFlags.claimType, "claim-type", query.All, "narrow sub-categories to this claim type")
	choicesCmd.Flags().StringVar(&choicesFlags.format, "format", "table", "output format: table, json, yaml")
	rootCmd.AddCommand(choicesCmd)
}
