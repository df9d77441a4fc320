package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/litigation-cli/internal/query"
	"github.com/sells-group/litigation-cli/internal/report"
)

var casesFlags struct {
	keyword      string
	claimType    string
	subCategory  string
	status       string
	jurisdiction string
	sort         string
	limit        int
	format       string
}

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "Search and list cases",
	Long:  "Lists cases matching a keyword in the quote and exact-match filters, sorted by year, name, or settlement.",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := report.ParseFormat(casesFlags.format)
		if err != nil {
			return err
		}

		t, err := loadTable(cmd.Context())
		if err != nil {
			return err
		}

		res, err := query.Explore(t, query.ExplorerParams{
			Keyword:      casesFlags.keyword,
			ClaimType:    casesFlags.claimType,
			SubCategory:  casesFlags.subCategory,
			Status:       casesFlags.status,
			Jurisdiction: casesFlags.jurisdiction,
			Sort:         query.SortOption(casesFlags.sort),
		}, query.Session{})
		if err != nil {
			return err
		}

		if casesFlags.limit > 0 && len(res.Cases) > casesFlags.limit {
			res.Cases = res.Cases[:casesFlags.limit]
		}
		return report.Cases(cmd.OutOrStdout(), format, res, casesFlags.keyword)
	},
}

func init() {
	f := casesCmd.Flags()
	f.StringVar(&casesFlags.keyword, "keyword", "", "case-insensitive keyword to find in quotes")
	f.StringVar(&casesFlags.claimType, "claim-type", query.All, "claim type filter")
	f.StringVar(&casesFlags.subCategory, "sub-category", query.All, "sub-category filter")
	f.StringVar(&casesFlags.status, "status", query.All, "status group filter")
	f.StringVar(&casesFlags.jurisdiction, "jurisdiction", query.All, "jurisdiction filter")
	f.StringVar(&casesFlags.sort, "sort", string(query.DefaultSort), "sort: year_desc, year_asc, name_asc, settlement_desc")
	f.IntVar(&casesFlags.limit, "limit", 0, "maximum cases to print (0 = all)")
	f.StringVar(&casesFlags.format, "format", "table", "output format: table, json, yaml, csv")
	rootCmd.AddCommand(casesCmd)
}
