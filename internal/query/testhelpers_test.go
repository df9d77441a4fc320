package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sells-group/litigation-cli/internal/model"
	"github.com/sells-group/litigation-cli/internal/normalize"
)

var fixtureColumns = []string{
	model.ColCaseName, model.ColProductCompany, model.ColQuote, model.ColClaimType,
	model.ColSubCategory, model.ColJurisdiction, model.ColCurrentStatus, model.ColSettlementAmount,
	model.ColChannel, model.ColIndustrySector, model.ColSources, model.ColYear,
	model.ColVerifiedIndependently, "reviewer",
}

// fixtureTable returns six normalized cases:
//
//	0 Alpha    Carbon Neutral  Settled     $1.5 million  2021
//	1 EcoBottle Recyclable     Pending     -             2022
//	2 Gamma    Carbon Neutral  Dismissed (without prejudice) 2022
//	3 Delta    Natural         MTD Denied  undisclosed   -
//	4 Epsilon  Carbon Neutral  Settled     $2.3 billion  2020
//	5 Zeta     Sustainable     Dismissed   $500,000      2021
func fixtureTable(t *testing.T) *model.Table {
	t.Helper()
	raw := []model.RawRecord{
		{
			model.ColCaseName: "Alpha v. GreenCo", model.ColProductCompany: "GreenCo",
			model.ColQuote: "We are 100% carbon neutral", model.ColClaimType: "Carbon Neutral",
			model.ColSubCategory: "Offsets", model.ColJurisdiction: "California",
			model.ColCurrentStatus: "Settled for $1.5 million", model.ColSettlementAmount: "$1.5 million",
			model.ColChannel: "Advertising", model.ColIndustrySector: "Energy",
			model.ColSources: "https://example.com/a | press release | http://news.org/b",
			model.ColYear: 2021, model.ColVerifiedIndependently: "TRUE", "reviewer": "kim",
		},
		{
			model.ColProductCompany: "EcoBottle", model.ColQuote: "Fully recyclable bottle",
			model.ColClaimType: "Recyclable", model.ColSubCategory: "Packaging",
			model.ColJurisdiction: "New York", model.ColCurrentStatus: "Pending",
			model.ColChannel: "Packaging", model.ColIndustrySector: "Consumer Goods",
			model.ColYear: 2022,
		},
		{
			model.ColCaseName: "Gamma v. Airline", model.ColQuote: "Fly carbon neutral",
			model.ColClaimType: "Carbon Neutral", model.ColSubCategory: "Offsets",
			model.ColJurisdiction: "California", model.ColCurrentStatus: "Dismissed without prejudice",
			model.ColChannel: "Advertising", model.ColIndustrySector: "Aviation",
			model.ColYear: 2022,
		},
		{
			model.ColCaseName: "Delta v. FoodCo", model.ColQuote: "All natural",
			model.ColClaimType: "Natural", model.ColSubCategory: "Ingredients",
			model.ColJurisdiction: "Federal", model.ColCurrentStatus: "Motion to dismiss denied",
			model.ColSettlementAmount: "undisclosed", model.ColChannel: "Label",
			model.ColIndustrySector: "Food",
		},
		{
			model.ColCaseName: "Epsilon v. Oil", model.ColQuote: "net zero by 2050",
			model.ColClaimType: "Carbon Neutral", model.ColSubCategory: "Net Zero",
			model.ColJurisdiction: "Federal", model.ColCurrentStatus: "Case settled",
			model.ColSettlementAmount: "$2.3 billion", model.ColChannel: "Advertising",
			model.ColIndustrySector: "Energy", model.ColYear: 2020,
		},
		{
			model.ColCaseName: "Zeta v. Apparel", model.ColQuote: "sustainable cotton",
			model.ColClaimType: "Sustainable", model.ColSubCategory: "Materials",
			model.ColJurisdiction: "New York", model.ColCurrentStatus: "Voluntarily dismissed",
			model.ColSettlementAmount: "$500,000", model.ColChannel: "Online",
			model.ColIndustrySector: "Apparel", model.ColYear: 2021,
		},
	}
	tbl := normalize.Normalize(fixtureColumns, raw)
	require.Equal(t, 6, tbl.Len())
	return tbl
}

func indices(t *model.Table) []int {
	out := make([]int, len(t.Cases))
	for i, c := range t.Cases {
		out[i] = c.Index
	}
	return out
}

func caseIndices(cases []model.Case) []int {
	return indices(&model.Table{Cases: cases})
}

func intPtr(v int) *int { return &v }
