package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/litigation-cli/internal/model"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"csv", FormatCSV, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2.3e9, "$2.3B"},
		{1e9, "$1.0B"},
		{1.5e6, "$1.5M"},
		{999_999, "$999,999"},
		{500_000, "$500,000"},
		{1234.6, "$1,235"},
		{0, "$0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(tt.in), "%v", tt.in)
	}

}

func TestFormatSummaryMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "-"},
		{-5, "-"},
		{1234.4, "$1,234"},
		{999_999, "$999,999"},
		{1.5e6, "$1.5M"},
		{2.3e9, "$2300.0M"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSummaryMoney(tt.in), "%v", tt.in)
	}

	assert.Equal(t, "$0", formatMillions(0))
	assert.Equal(t, "$2300.0M", formatMillions(2.3e9))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 60))
	assert.Equal(t, "ab...", Truncate("abcdef", 5))
	assert.Equal(t, "日本...", Truncate("日本語テキスト", 8))

	long := "Consumers for Truthful Environmental Advertising v. Global Beverage Holdings Incorporated"
	got := Truncate(long, NameWidth)
	assert.Len(t, got, NameWidth)
	assert.Equal(t, long[:57]+"...", got)
}

func TestCaseTitle(t *testing.T) {
	assert.Equal(t, "Alpha", CaseTitle(model.Case{DisplayName: "Alpha"}))
	assert.Equal(t, "Case #7", CaseTitle(model.Case{Index: 7}))
}
