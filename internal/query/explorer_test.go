package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplore(t *testing.T) {
	tbl := fixtureTable(t)

	tests := []struct {
		name   string
		params ExplorerParams
		want   []int
	}{
		{"defaults", ExplorerParams{}, []int{1, 2, 0, 5, 4, 3}},
		{"keyword and claim type", ExplorerParams{Keyword: "carbon", ClaimType: "Carbon Neutral", Sort: SortNameAsc}, []int{0, 2}},
		{"status group", ExplorerParams{Status: "Settled"}, []int{0, 4}},
		{"sub category", ExplorerParams{SubCategory: "Offsets", Sort: SortYearAsc}, []int{0, 2}},
		{"jurisdiction", ExplorerParams{Jurisdiction: "Federal", Sort: SortSettlementDesc}, []int{4, 3}},
		{"all sentinels", ExplorerParams{ClaimType: All, SubCategory: All, Status: All, Jurisdiction: All}, []int{1, 2, 0, 5, 4, 3}},
		{"no match", ExplorerParams{Keyword: "greenhushing"}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Explore(tbl, tt.params, Session{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, caseIndices(res.Cases))
			assert.Equal(t, len(tt.want), res.Count)
			assert.Nil(t, res.Selected)
		})
	}
}

func TestExplore_Choices(t *testing.T) {
	tbl := fixtureTable(t)

	res, err := Explore(tbl, ExplorerParams{ClaimType: "Carbon Neutral"}, Session{})
	require.NoError(t, err)

	assert.Equal(t, []string{All, "Carbon Neutral", "Natural", "Recyclable", "Sustainable"}, res.Choices.ClaimTypes)
	assert.Equal(t, []string{All, "Net Zero", "Offsets"}, res.Choices.SubCategories)
	assert.Equal(t, All, res.Choices.Statuses[0])
	assert.Equal(t, []string{All, "California", "Federal", "New York"}, res.Choices.Jurisdictions)
	assert.Equal(t, []string{"year_desc", "year_asc", "name_asc", "settlement_desc"}, res.Choices.SortOptions)

	choices, err := BuildChoices(tbl, All)
	require.NoError(t, err)
	assert.Len(t, choices.SubCategories, 6)
}

func TestExplore_SelectedCase(t *testing.T) {
	tbl := fixtureTable(t)

	var s Session
	s.Select(3)

	// The selected case is looked up in the full table, even when filtered out.
	res, err := Explore(tbl, ExplorerParams{ClaimType: "Carbon Neutral", Keyword: "natural"}, s)
	require.NoError(t, err)
	require.NotNil(t, res.Selected)
	assert.Equal(t, 3, res.Selected.Case.Index)
	assert.Equal(t, NotAvailable, res.Selected.YearLabel)
	assert.Equal(t, []Span{{Start: 4, End: 11}}, res.Selected.QuoteHighlights)
	assert.Empty(t, res.Cases)

	res, err = Explore(tbl, ExplorerParams{}, Session{})
	require.NoError(t, err)
	assert.Nil(t, res.Selected)
}

func TestExplore_Errors(t *testing.T) {
	tbl := fixtureTable(t)

	s := Session{SelectedCase: intPtr(99)}
	_, err := Explore(tbl, ExplorerParams{}, s)
	assert.ErrorIs(t, err, ErrCaseNotFound)

	_, err = Explore(tbl, ExplorerParams{Sort: "random"}, Session{})
	var qe *QueryError
	assert.True(t, errors.As(err, &qe))
}
