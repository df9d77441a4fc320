package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/sells-group/litigation-cli/internal/model"
	"github.com/sells-group/litigation-cli/internal/normalize"
	"github.com/sells-group/litigation-cli/internal/query"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2E7D32"))
	headerStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#757575"))
	highlightStyle = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("#FFF59D")).Foreground(lipgloss.Color("#000000"))

	badgeStyles = map[model.BadgeKind]lipgloss.Style{
		model.BadgeSettled:   lipgloss.NewStyle().Foreground(lipgloss.Color("#2E7D32")),
		model.BadgePending:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F9A825")),
		model.BadgeDismissed: lipgloss.NewStyle().Foreground(lipgloss.Color("#C62828")),
		model.BadgeOther:     lipgloss.NewStyle().Foreground(lipgloss.Color("#616161")),
	}
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func section(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, titleStyle.Render(title))
}

func writeTable(w io.Writer, t *table.Table) {
	_, _ = fmt.Fprintln(w, t.String())
	_, _ = fmt.Fprintln(w)
}

func writeSeries(w io.Writer, s query.Series, money bool) {
	section(w, s.Title)
	if len(s.Points) == 0 {
		_, _ = fmt.Fprintln(w, mutedStyle.Render("No data for the selected filters"))
		_, _ = fmt.Fprintln(w)
		return
	}
	t := newTable(s.CategoryLabel, s.ValueLabel)
	for _, p := range s.Points {
		value := strconv.FormatFloat(p.Value, 'f', -1, 64)
		if money {
			value = formatMillions(p.Value)
		}
		t.Row(Truncate(p.Label, NameWidth), value)
	}
	writeTable(w, t)
}

// WriteOverview renders the dashboard as a set of terminal tables.
func WriteOverview(w io.Writer, o *query.Overview) {
	m := o.Metrics
	section(w, "Greenwashing Litigation Overview")
	metrics := newTable("Total Cases", "Settled", "Pending", "Dismissed", "Total Settlements").
		Row(strconv.Itoa(m.TotalCases), strconv.Itoa(m.Settled), strconv.Itoa(m.Pending),
			strconv.Itoa(m.Dismissed), FormatMoney(m.TotalSettlements))
	writeTable(w, metrics)

	_, _ = fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d cases match the selected filters", o.FilteredCases)))
	_, _ = fmt.Fprintln(w)

	writeSeries(w, o.CasesByYear, false)
	writeSeries(w, o.CasesByStatus, false)
	writeSeries(w, o.CasesByClaimType, false)
	writeSeries(w, o.TopIndustries, false)
	writeSeries(w, o.TopJurisdictions, false)
	writeSeries(w, o.SettlementsByYear, true)

	section(w, "Top Settlements")
	if len(o.TopSettlements) == 0 {
		_, _ = fmt.Fprintln(w, mutedStyle.Render("No settlement data available for selected filters"))
		_, _ = fmt.Fprintln(w)
	} else {
		t := newTable("#", "Case", "Year", "Settlement")
		for _, c := range o.TopSettlements {
			t.Row(strconv.Itoa(c.Index), Truncate(CaseTitle(c), NameWidth), yearLabel(c), FormatMoney(c.SettlementNumeric))
		}
		writeTable(w, t)
	}

	section(w, "Cases by Claim Type Over Time")
	trends := newTable("Year", "Claim Type", "Cases")
	for _, p := range o.Trends {
		trends.Row(strconv.Itoa(p.Year), p.ClaimType, strconv.Itoa(p.Count))
	}
	writeTable(w, trends)

	section(w, "By Claim Type")
	claims := newTable("Claim Type", "Cases", "Total Settlements")
	for _, s := range o.ClaimSummary {
		claims.Row(s.ClaimType, strconv.Itoa(s.Cases), FormatSummaryMoney(s.TotalSettlements))
	}
	writeTable(w, claims)

	section(w, "By Status")
	statuses := newTable("Status", "Count", "Percentage")
	for _, s := range o.StatusSummary {
		statuses.Row(s.Status, strconv.Itoa(s.Count), percent(s.Percentage))
	}
	writeTable(w, statuses)

	section(w, "By Channel")
	channels := newTable("Channel", "Count")
	for _, p := range o.ChannelSummary {
		channels.Row(p.Label, strconv.FormatFloat(p.Value, 'f', -1, 64))
	}
	writeTable(w, channels)
}

// WriteCases renders the explorer list. With a keyword, a highlighted quote
// preview is shown for each case.
func WriteCases(w io.Writer, res *query.ExplorerResult, keyword string) {
	_, _ = fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Found %d cases", res.Count)))

	headers := []string{"#", "Case", "Status", "Year", "Claim Type"}
	if keyword != "" {
		headers = append(headers, "Quote")
	}
	t := newTable(headers...)
	for _, c := range res.Cases {
		row := []string{
			strconv.Itoa(c.Index),
			Truncate(CaseTitle(c), NameWidth),
			Badge(c.CurrentStatus),
			yearLabel(c),
			Truncate(c.ClaimType, ClaimWidth),
		}
		if keyword != "" {
			preview := Truncate(c.Quote, QuoteWidth)
			row = append(row, Highlight(preview, query.HighlightSpans(preview, keyword)))
		}
		t.Row(row...)
	}
	writeTable(w, t)
}

// WriteDetail renders a single case.
func WriteDetail(w io.Writer, d *query.CaseDetail) {
	c := d.Case
	section(w, CaseTitle(c))

	verified := "No"
	if d.Verified {
		verified = "Yes"
	}
	header := newTable("Status", "Year", "Settlement", "Jurisdiction", "Verified").
		Row(Badge(c.CurrentStatus), d.YearLabel, d.SettlementLabel, orNA(c.Jurisdiction), verified)
	writeTable(w, header)

	fields := newTable("Field", "Value")
	for _, f := range []struct{ label, value string }{
		{"Product/Company", c.ProductCompany},
		{"Claim Type", c.ClaimType},
		{"Sub-category", c.SubCategory},
		{"Court", c.Court},
		{"Docket Number", c.DocketNumber},
		{"Plaintiff Law Firm", c.PlaintiffLawFirm},
		{"Industry", c.IndustrySector},
		{"Channel", c.Channel},
		{"Defendant Type", c.DefendantType},
		{"Class Size", c.ClassSize},
		{"State Law Cited", c.StateLawCited},
		{"Relief Sought", c.ReliefSought},
		{"Key Dates", c.KeyDates},
		{"Outcome", c.Outcome},
		{"Confidence", c.Confidence},
	} {
		if f.value != "" {
			fields.Row(f.label, f.value)
		}
	}
	writeTable(w, fields)

	for _, p := range []struct{ title, body string }{
		{"Summary", c.Summary},
		{"Environmental Claims", c.EnvironmentalClaims},
		{"Ruling", c.RulingDescription},
	} {
		if p.body == "" {
			continue
		}
		section(w, p.title)
		_, _ = fmt.Fprintln(w, p.body)
		_, _ = fmt.Fprintln(w)
	}

	if c.Quote != "" {
		section(w, "Quote")
		_, _ = fmt.Fprintln(w, Highlight(c.Quote, d.QuoteHighlights))
		_, _ = fmt.Fprintln(w)
	}

	if len(d.Sources) > 0 {
		section(w, "Sources")
		for _, s := range d.Sources {
			_, _ = fmt.Fprintf(w, "[%d] %s  %s\n", s.Number, s.Domain, mutedStyle.Render(s.URL))
		}
		_, _ = fmt.Fprintln(w)
	}
	if c.RulingPDFURL != "" {
		_, _ = fmt.Fprintf(w, "Ruling PDF: %s\n", c.RulingPDFURL)
	}
	if c.ProductCompanyURL != "" {
		_, _ = fmt.Fprintf(w, "Company: %s\n", c.ProductCompanyURL)
	}
}

// WriteChoices renders the selector options.
func WriteChoices(w io.Writer, c query.Choices) {
	for _, g := range []struct {
		title  string
		values []string
	}{
		{"Claim Types", c.ClaimTypes},
		{"Sub-categories", c.SubCategories},
		{"Statuses", c.Statuses},
		{"Jurisdictions", c.Jurisdictions},
	} {
		section(w, g.title)
		for _, v := range g.values {
			_, _ = fmt.Fprintf(w, "  %s\n", v)
		}
		_, _ = fmt.Fprintln(w)
	}

	section(w, "Sort Options")
	for _, o := range c.SortOptions {
		_, _ = fmt.Fprintf(w, "  %-16s %s\n", o, query.SortOption(o).Label())
	}
}

// Badge renders a raw status string with its badge color.
func Badge(status string) string {
	kind := normalize.StatusBadge(status)
	return badgeStyles[kind].Render(orNA(status))
}

// Highlight wraps each span of text in the highlight style. Spans must be
// sorted, non-overlapping, and within text.
func Highlight(text string, spans []query.Span) string {
	if len(spans) == 0 {
		return text
	}
	var b strings.Builder
	last := 0
	for _, s := range spans {
		if s.Start < last || s.End > len(text) {
			continue
		}
		b.WriteString(text[last:s.Start])
		b.WriteString(highlightStyle.Render(text[s.Start:s.End]))
		last = s.End
	}
	b.WriteString(text[last:])
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return notApplicable
	}
	return s
}
