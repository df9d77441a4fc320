package query

import (
	"cmp"
	"math"
	"slices"

	"github.com/sells-group/litigation-cli/internal/model"
)

// OverviewParams narrows the charts and summaries of the overview. Nil year
// bounds are open; ClaimType and Industry accept All.
type OverviewParams struct {
	YearMin   *int
	YearMax   *int
	ClaimType string
	Industry  string
}

// Metrics are the headline counts. They always describe the whole table.
type Metrics struct {
	TotalCases       int     `json:"total_cases" yaml:"total_cases"`
	Settled          int     `json:"settled" yaml:"settled"`
	Pending          int     `json:"pending" yaml:"pending"`
	Dismissed        int     `json:"dismissed" yaml:"dismissed"`
	TotalSettlements float64 `json:"total_settlements" yaml:"total_settlements"`
}

// Series is chart-ready data plus the labels a renderer needs.
type Series struct {
	Title         string  `json:"title" yaml:"title"`
	CategoryLabel string  `json:"category_label" yaml:"category_label"`
	ValueLabel    string  `json:"value_label" yaml:"value_label"`
	Points        []Point `json:"points" yaml:"points"`
}

// TrendPoint counts cases for one (year, claim type) pair.
type TrendPoint struct {
	Year      int    `json:"year" yaml:"year" csv:"year"`
	ClaimType string `json:"claim_type" yaml:"claim_type" csv:"claim_type"`
	Count     int    `json:"count" yaml:"count" csv:"count"`
}

// ClaimSummary is one row of the claim type summary table. Rows are ordered
// by claim type.
type ClaimSummary struct {
	ClaimType        string  `json:"claim_type" yaml:"claim_type" csv:"claim_type"`
	Cases            int     `json:"cases" yaml:"cases" csv:"cases"`
	TotalSettlements float64 `json:"total_settlements" yaml:"total_settlements" csv:"total_settlements"`
}

// StatusShare is one row of the status summary table. Percentage is rounded
// to one decimal place.
type StatusShare struct {
	Status     string  `json:"status" yaml:"status" csv:"status"`
	Count      int     `json:"count" yaml:"count" csv:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage" csv:"percentage"`
}

// Overview is the aggregate dashboard view.
type Overview struct {
	Metrics           Metrics        `json:"metrics" yaml:"metrics"`
	FilteredCases     int            `json:"filtered_cases" yaml:"filtered_cases"`
	CasesByYear       Series         `json:"cases_by_year" yaml:"cases_by_year"`
	CasesByStatus     Series         `json:"cases_by_status" yaml:"cases_by_status"`
	CasesByClaimType  Series         `json:"cases_by_claim_type" yaml:"cases_by_claim_type"`
	TopIndustries     Series         `json:"top_industries" yaml:"top_industries"`
	TopJurisdictions  Series         `json:"top_jurisdictions" yaml:"top_jurisdictions"`
	SettlementsByYear Series         `json:"settlements_by_year" yaml:"settlements_by_year"`
	TopSettlements    []model.Case   `json:"top_settlements" yaml:"top_settlements"`
	Trends            []TrendPoint   `json:"trends" yaml:"trends"`
	ClaimSummary      []ClaimSummary `json:"claim_summary" yaml:"claim_summary"`
	StatusSummary     []StatusShare  `json:"status_summary" yaml:"status_summary"`
	ChannelSummary    []Point        `json:"channel_summary" yaml:"channel_summary"`
}

const (
	topIndustries    = 10
	topJurisdictions = 8
	topSettlements   = 10
)

// ComputeMetrics returns the headline counts for t.
func ComputeMetrics(t *model.Table) Metrics {
	m := Metrics{TotalCases: t.Len()}
	if t == nil {
		return m
	}
	for _, c := range t.Cases {
		switch {
		case c.StatusGroup == model.StatusSettled:
			m.Settled++
		case c.StatusGroup == model.StatusPending:
			m.Pending++
		case c.StatusGroup.IsDismissal():
			m.Dismissed++
		}
		m.TotalSettlements += c.SettlementNumeric
	}
	return m
}

// OverviewFilters converts params into filters.
func OverviewFilters(p OverviewParams) []Filter {
	var filters []Filter
	if p.YearMin != nil || p.YearMax != nil {
		lo, hi := math.Inf(-1), math.Inf(1)
		if p.YearMin != nil {
			lo = float64(*p.YearMin)
		}
		if p.YearMax != nil {
			hi = float64(*p.YearMax)
		}
		filters = append(filters, Range(model.ColYear, lo, hi))
	}
	if p.ClaimType != "" {
		filters = append(filters, Exact(model.ColClaimType, p.ClaimType))
	}
	if p.Industry != "" {
		filters = append(filters, Exact(model.ColIndustrySector, p.Industry))
	}
	return filters
}

// BuildOverview computes the dashboard. Metrics cover the whole table; every
// chart and summary covers the rows matching p.
func BuildOverview(t *model.Table, p OverviewParams) (*Overview, error) {
	filtered, err := Apply(t, OverviewFilters(p)...)
	if err != nil {
		return nil, err
	}

	o := &Overview{
		Metrics:       ComputeMetrics(t),
		FilteredCases: filtered.Len(),
	}

	byYear, err := GroupCount(filtered, model.ColYear)
	if err != nil {
		return nil, err
	}
	o.CasesByYear = Series{
		Title: "Cases Filed by Year", CategoryLabel: "Year", ValueLabel: "Number of Cases",
		Points: ByNumericLabel(pointsOf(byYear)),
	}

	byStatus, err := GroupCount(filtered, model.ColStatusGroup)
	if err != nil {
		return nil, err
	}
	statusPoints := RankCounts(byStatus)
	o.CasesByStatus = Series{
		Title: "Case Status Distribution", CategoryLabel: "Status", ValueLabel: "Number of Cases",
		Points: statusPoints,
	}

	byClaim, err := GroupCount(filtered, model.ColClaimType)
	if err != nil {
		return nil, err
	}
	claimPoints := RankCounts(byClaim)
	o.CasesByClaimType = Series{
		Title: "Cases by Claim Type", CategoryLabel: "Claim Type", ValueLabel: "Number of Cases",
		Points: claimPoints,
	}

	byIndustry, err := GroupCount(filtered, model.ColIndustrySector)
	if err != nil {
		return nil, err
	}
	o.TopIndustries = Series{
		Title: "Top 10 Industries", CategoryLabel: "Industry", ValueLabel: "Number of Cases",
		Points: head(RankCounts(byIndustry), topIndustries),
	}

	byJurisdiction, err := GroupCount(filtered, model.ColJurisdiction)
	if err != nil {
		return nil, err
	}
	o.TopJurisdictions = Series{
		Title: "Top Jurisdictions", CategoryLabel: "Jurisdiction", ValueLabel: "Number of Cases",
		Points: head(RankCounts(byJurisdiction), topJurisdictions),
	}

	withSettlement, err := FilterByRange(filtered, model.ColSettlementNumeric, math.SmallestNonzeroFloat64, math.Inf(1))
	if err != nil {
		return nil, err
	}
	settleByYear, err := GroupSum(withSettlement, model.ColYear, model.ColSettlementNumeric)
	if err != nil {
		return nil, err
	}
	o.SettlementsByYear = Series{
		Title: "Settlement Amounts by Year", CategoryLabel: "Year", ValueLabel: "Total Settlements ($)",
		Points: ByNumericLabel(pointsOf(settleByYear)),
	}

	top, err := TopN(filtered, model.ColSettlementNumeric, topSettlements)
	if err != nil {
		return nil, err
	}
	o.TopSettlements = top.Cases

	o.Trends = trends(filtered)

	claimSums, err := GroupSum(filtered, model.ColClaimType, model.ColSettlementNumeric)
	if err != nil {
		return nil, err
	}
	o.ClaimSummary = make([]ClaimSummary, 0, len(byClaim))
	for claim, n := range byClaim {
		o.ClaimSummary = append(o.ClaimSummary, ClaimSummary{
			ClaimType:        claim,
			Cases:            n,
			TotalSettlements: claimSums[claim],
		})
	}
	slices.SortFunc(o.ClaimSummary, func(a, b ClaimSummary) int {
		return cmp.Compare(a.ClaimType, b.ClaimType)
	})

	o.StatusSummary = make([]StatusShare, len(statusPoints))
	for i, pt := range statusPoints {
		o.StatusSummary[i] = StatusShare{
			Status:     pt.Label,
			Count:      int(pt.Value),
			Percentage: percentage(int(pt.Value), filtered.Len()),
		}
	}

	byChannel, err := GroupCount(filtered, model.ColChannel)
	if err != nil {
		return nil, err
	}
	o.ChannelSummary = RankCounts(byChannel)

	return o, nil
}

func trends(t *model.Table) []TrendPoint {
	type key struct {
		year  int
		claim string
	}
	counts := make(map[key]int)
	for _, c := range t.Cases {
		if c.Year == nil {
			continue
		}
		counts[key{*c.Year, c.ClaimType}]++
	}
	out := make([]TrendPoint, 0, len(counts))
	for k, n := range counts {
		out = append(out, TrendPoint{Year: k.year, ClaimType: k.claim, Count: n})
	}
	slices.SortFunc(out, func(a, b TrendPoint) int {
		if c := cmp.Compare(a.Year, b.Year); c != 0 {
			return c
		}
		return cmp.Compare(a.ClaimType, b.ClaimType)
	})
	return out
}

func percentage(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(total)*1000) / 10
}
