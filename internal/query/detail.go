package query

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sells-group/litigation-cli/internal/model"
	"github.com/sells-group/litigation-cli/internal/normalize"
)

// NotAvailable is shown for absent year or settlement values.
const NotAvailable = "N/A"

// SourceLink is one linkable entry from a case's sources field. Number is the
// entry's 1-based position among all " | "-separated entries.
type SourceLink struct {
	Number int    `json:"number" yaml:"number"`
	URL    string `json:"url" yaml:"url"`
	Domain string `json:"domain" yaml:"domain"`
}

// Span is a half-open byte range [Start, End) into a string.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// CaseDetail is the full view of a single case.
type CaseDetail struct {
	Case            model.Case      `json:"case" yaml:"case"`
	Badge           model.BadgeKind `json:"badge" yaml:"badge"`
	YearLabel       string          `json:"year_label" yaml:"year_label"`
	SettlementLabel string          `json:"settlement_label" yaml:"settlement_label"`
	Sources         []SourceLink    `json:"sources" yaml:"sources"`
	Verified        bool            `json:"verified" yaml:"verified"`
	QuoteHighlights []Span          `json:"quote_highlights" yaml:"quote_highlights"`
}

// Detail builds the detail view for the case at index. keyword, when set,
// marks its words inside the quote.
func Detail(t *model.Table, index int, keyword string) (*CaseDetail, error) {
	c, ok := t.ByIndex(index)
	if !ok {
		return nil, ErrCaseNotFound
	}

	d := &CaseDetail{
		Case:            c,
		Badge:           normalize.StatusBadge(c.CurrentStatus),
		YearLabel:       NotAvailable,
		SettlementLabel: NotAvailable,
		Sources:         SourceLinks(c.Sources),
		Verified:        strings.EqualFold(c.VerifiedIndependently, "true"),
		QuoteHighlights: HighlightSpans(c.Quote, keyword),
	}
	if c.Year != nil {
		d.YearLabel = strconv.Itoa(*c.Year)
	}
	if c.SettlementAmount != "" {
		d.SettlementLabel = c.SettlementAmount
	}
	return d, nil
}

const sourceSeparator = " | "

// SourceLinks extracts the http(s) entries from a sources field. Non-link
// entries are skipped but still consume a number.
func SourceLinks(sources string) []SourceLink {
	links := []SourceLink{}
	if sources == "" {
		return links
	}
	for i, s := range strings.Split(sources, sourceSeparator) {
		if !strings.HasPrefix(s, "http") {
			continue
		}
		links = append(links, SourceLink{Number: i + 1, URL: s, Domain: sourceDomain(s)})
	}
	return links
}

// sourceDomain returns the third "/"-separated segment, which is the host of
// a well-formed URL, or the whole string when there are fewer segments.
func sourceDomain(s string) string {
	parts := strings.Split(s, "/")
	if len(parts) > 2 {
		return parts[2]
	}
	return s
}

// HighlightSpans finds case-insensitive occurrences of each whitespace
// separated word of keyword longer than two characters. Overlapping and
// adjacent spans are merged; the result is sorted by Start.
func HighlightSpans(text, keyword string) []Span {
	spans := []Span{}
	if text == "" {
		return spans
	}
	for _, w := range strings.Fields(keyword) {
		if utf8.RuneCountInString(w) <= 2 {
			continue
		}
		re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(w))
		for _, m := range re.FindAllStringIndex(text, -1) {
			spans = append(spans, Span{Start: m[0], End: m[1]})
		}
	}
	return mergeSpans(spans)
}

func mergeSpans(spans []Span) []Span {
	if len(spans) < 2 {
		return spans
	}
	slices.SortFunc(spans, func(a, b Span) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}
		return a.End - b.End
	})
	out := spans[:1]
	for _, s := range spans[1:] {
		last := &out[len(out)-1]
		if s.Start <= last.End {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		out = append(out, s)
	}
	return out
}
