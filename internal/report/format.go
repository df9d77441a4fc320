// Package report renders query results for the terminal and encodes them
// as JSON, YAML, or CSV.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rotisserie/eris"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/litigation-cli/internal/model"
)

// Format is an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCSV   Format = "csv"
)

// ParseFormat validates s. An empty string yields FormatTable.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML, FormatCSV:
		return f, nil
	default:
		return "", eris.Errorf("report: unknown format %q (want table, json, yaml, or csv)", s)
	}
}

// Column widths in terminal cells.
const (
	NameWidth  = 60
	ClaimWidth = 15
	QuoteWidth = 150
)

const (
	ellipsis      = "..."
	notApplicable = "N/A"
	emptySummary  = "-"
)

var printer = message.NewPrinter(language.English)

// FormatMoney renders a dollar value compactly: $2.3B, $1.5M, or $500,000.
func FormatMoney(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("$%.1fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.1fM", v/1e6)
	default:
		return printer.Sprintf("$%d", int64(math.Round(v)))
	}
}

// FormatSummaryMoney renders the claim type summary column: $1.5M from a
// million up (billions included), $500,000 below, and "-" for zero.
func FormatSummaryMoney(v float64) string {
	if v <= 0 {
		return emptySummary
	}
	return formatMillions(v)
}

// formatMillions is FormatMoney without the billions tier, as used by the
// settlement chart and summary.
func formatMillions(v float64) string {
	if v >= 1e6 {
		return fmt.Sprintf("$%.1fM", v/1e6)
	}
	return printer.Sprintf("$%d", int64(math.Round(v)))
}

// Truncate shortens s to at most width terminal cells, ending in "...".
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, ellipsis)
}

// CaseTitle is the display name of a case, or "Case #<index>" when blank.
func CaseTitle(c model.Case) string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return "Case #" + strconv.Itoa(c.Index)
}

func yearLabel(c model.Case) string {
	if c.Year == nil {
		return notApplicable
	}
	return strconv.Itoa(*c.Year)
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}
