package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/litigation-cli/internal/model"
)

func TestFilterByRange(t *testing.T) {
	tbl := fixtureTable(t)

	got, err := FilterByRange(tbl, model.ColYear, 2021, 2022)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 5}, indices(got))

	got, err = FilterByRange(tbl, model.ColSettlementNumeric, 1, 2e6)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 5}, indices(got))
}

func TestFilterByRange_Errors(t *testing.T) {
	tbl := fixtureTable(t)

	tests := []struct {
		name     string
		field    string
		min, max float64
	}{
		{"unknown field", "nope", 0, 1},
		{"text field", model.ColClaimType, 0, 1},
		{"empty field", "", 0, 1},
		{"min greater than max", model.ColYear, 2022, 2020},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FilterByRange(tbl, tt.field, tt.min, tt.max)
			var qe *QueryError
			require.True(t, errors.As(err, &qe), "got %v", err)
			assert.Equal(t, "filter by range", qe.Op)
		})
	}
}

func TestFilterByExactMatch(t *testing.T) {
	tbl := fixtureTable(t)

	tests := []struct {
		name  string
		field string
		value string
		want  []int
	}{
		{"claim type", model.ColClaimType, "Carbon Neutral", []int{0, 2, 4}},
		{"all sentinel", model.ColClaimType, All, []int{0, 1, 2, 3, 4, 5}},
		{"status group", model.ColStatusGroup, "Settled", []int{0, 4}},
		{"display name", model.ColDisplayName, "EcoBottle", []int{1}},
		{"passthrough column", "reviewer", "kim", []int{0}},
		{"year as text", model.ColYear, "2022", []int{1, 2}},
		{"no match", model.ColJurisdiction, "Texas", []int{}},
		{"case sensitive", model.ColClaimType, "carbon neutral", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FilterByExactMatch(tbl, tt.field, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, indices(got))
		})
	}
}

func TestFilterByExactMatch_UnknownField(t *testing.T) {
	_, err := FilterByExactMatch(fixtureTable(t), "nope", "x")
	var qe *QueryError
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, "nope", qe.Field)
	assert.Contains(t, err.Error(), "unknown field")
}

func TestFilterByKeyword(t *testing.T) {
	tbl := fixtureTable(t)

	tests := []struct {
		name    string
		keyword string
		want    []int
	}{
		{"case insensitive", "CARBON", []int{0, 2}},
		{"empty keyword", "", []int{0, 1, 2, 3, 4, 5}},
		{"literal match", "100%", []int{0}},
		{"regex characters are literal", "n.t", []int{}},
		{"phrase", "net zero", []int{4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FilterByKeyword(tbl, model.ColQuote, tt.keyword)
			require.NoError(t, err)
			assert.Equal(t, tt.want, indices(got))
		})
	}
}

func TestFilterByKeyword_NumericField(t *testing.T) {
	_, err := FilterByKeyword(fixtureTable(t), model.ColYear, "20")
	var qe *QueryError
	require.True(t, errors.As(err, &qe))
	assert.Contains(t, qe.Reason, "numeric")
}

func TestApply_OrderInvariant(t *testing.T) {
	tbl := fixtureTable(t)

	filters := []Filter{
		Range(model.ColYear, 2020, 2021),
		Exact(model.ColClaimType, "Carbon Neutral"),
		Keyword(model.ColQuote, "neutral"),
	}
	perms := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

	var want []int
	for _, p := range perms {
		ordered := []Filter{filters[p[0]], filters[p[1]], filters[p[2]]}

		got, err := Apply(tbl, ordered...)
		require.NoError(t, err)

		chained := tbl
		for _, f := range ordered {
			chained, err = Apply(chained, f)
			require.NoError(t, err)
		}
		assert.Equal(t, indices(got), indices(chained))

		if want == nil {
			want = indices(got)
		}
		assert.Equal(t, want, indices(got), "permutation %v", p)
	}
	assert.Equal(t, []int{0}, want)
}

func TestApply_DoesNotMutate(t *testing.T) {
	tbl := fixtureTable(t)
	before := indices(tbl)

	got, err := Apply(tbl, Exact(model.ColClaimType, "Natural"))
	require.NoError(t, err)
	require.Len(t, got.Cases, 1)

	got.Cases[0].DisplayName = "changed"
	assert.Equal(t, before, indices(tbl))
	assert.Equal(t, "Delta v. FoodCo", tbl.Cases[3].DisplayName)
	assert.Equal(t, tbl.Columns, got.Columns)
}

func TestApply_InvalidFilterFailsBeforeFiltering(t *testing.T) {
	_, err := Apply(fixtureTable(t), Exact(model.ColClaimType, "Natural"), Range(model.ColYear, 5, 1))
	var qe *QueryError
	assert.True(t, errors.As(err, &qe))
}

func TestApply_NilTable(t *testing.T) {
	got, err := Apply(nil, Exact(model.ColClaimType, "x"))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}
