package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/litigation-cli/internal/model"
)

func TestSortBy(t *testing.T) {
	tbl := fixtureTable(t)

	tests := []struct {
		name string
		key  string
		dir  Direction
		want []int
	}{
		// Ties (1,2) and (0,5) keep input order; the missing year is last.
		{"year desc", model.ColYear, Desc, []int{1, 2, 0, 5, 4, 3}},
		{"year asc", model.ColYear, Asc, []int{4, 0, 5, 1, 2, 3}},
		{"name asc", model.ColDisplayName, Asc, []int{0, 3, 1, 4, 2, 5}},
		{"settlement desc", model.ColSettlementNumeric, Desc, []int{4, 0, 5, 1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SortBy(tbl, tt.key, tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, indices(got))
		})
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, indices(tbl), "input must not be reordered")
}

func TestSortBy_Stable(t *testing.T) {
	year := 2020
	cases := make([]model.Case, 20)
	for i := range cases {
		y := year + i%3
		cases[i] = model.Case{Index: i, Year: &y, DisplayName: "same"}
	}
	tbl := &model.Table{Cases: cases}

	for _, dir := range []Direction{Asc, Desc} {
		got, err := SortBy(tbl, model.ColYear, dir)
		require.NoError(t, err)
		for i := 1; i < len(got.Cases); i++ {
			a, b := got.Cases[i-1], got.Cases[i]
			if *a.Year == *b.Year {
				assert.Less(t, a.Index, b.Index, "equal keys must keep input order")
			}
		}
	}

	got, err := SortBy(tbl, model.ColDisplayName, Asc)
	require.NoError(t, err)
	assert.Equal(t, indices(tbl), indices(got))
}

func TestSortBy_Unsupported(t *testing.T) {
	tbl := fixtureTable(t)

	tests := []struct {
		key string
		dir Direction
	}{
		{model.ColDisplayName, Desc},
		{model.ColSettlementNumeric, Asc},
		{model.ColQuote, Asc},
		{model.ColYear, "sideways"},
	}
	for _, tt := range tests {
		_, err := SortBy(tbl, tt.key, tt.dir)
		var qe *QueryError
		assert.True(t, errors.As(err, &qe), "%s %s", tt.key, tt.dir)
	}
}

func TestParseSortOption(t *testing.T) {
	o, err := ParseSortOption("")
	require.NoError(t, err)
	assert.Equal(t, SortYearDesc, o)

	o, err = ParseSortOption("settlement_desc")
	require.NoError(t, err)
	assert.Equal(t, SortSettlementDesc, o)
	assert.Equal(t, "Settlement Amount (Highest)", o.Label())

	_, err = ParseSortOption("bogus")
	assert.Error(t, err)
}

func TestSortOption_Key(t *testing.T) {
	for _, o := range SortOptions {
		key, dir := o.Key()
		_, err := SortBy(&model.Table{}, key, dir)
		assert.NoError(t, err, o)
	}
}
