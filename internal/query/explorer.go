package query

import (
	"github.com/sells-group/litigation-cli/internal/model"
)

// ExplorerParams are the explorer's filter and sort inputs. Empty strings
// and All disable the corresponding filter.
type ExplorerParams struct {
	Keyword      string
	ClaimType    string
	SubCategory  string
	Status       string
	Jurisdiction string
	Sort         SortOption
}

// Session is per-viewer explorer state. SelectedCase holds the index of the
// case being viewed in detail, or nil for the list view. It is owned by the
// host and never shared between viewers.
type Session struct {
	SelectedCase *int
}

// Select opens the detail view for index.
func (s *Session) Select(index int) { s.SelectedCase = &index }

// Choices are the option lists for the explorer's selectors, each prefixed
// with All.
type Choices struct {
	ClaimTypes    []string `json:"claim_types" yaml:"claim_types"`
	SubCategories []string `json:"sub_categories" yaml:"sub_categories"`
	Statuses      []string `json:"statuses" yaml:"statuses"`
	Jurisdictions []string `json:"jurisdictions" yaml:"jurisdictions"`
	SortOptions   []string `json:"sort_options" yaml:"sort_options"`
}

// ExplorerResult is the explorer view: the matching cases in display order
// and, when a case is selected, its detail.
type ExplorerResult struct {
	Count    int          `json:"count" yaml:"count"`
	Cases    []model.Case `json:"cases" yaml:"cases"`
	Choices  Choices      `json:"choices" yaml:"choices"`
	Selected *CaseDetail  `json:"selected,omitempty" yaml:"selected,omitempty"`
}

// ExplorerFilters converts params into filters.
func ExplorerFilters(p ExplorerParams) []Filter {
	filters := []Filter{Keyword(model.ColQuote, p.Keyword)}
	for _, f := range []struct{ field, value string }{
		{model.ColClaimType, p.ClaimType},
		{model.ColSubCategory, p.SubCategory},
		{model.ColStatusGroup, p.Status},
		{model.ColJurisdiction, p.Jurisdiction},
	} {
		if f.value != "" {
			filters = append(filters, Exact(f.field, f.value))
		}
	}
	return filters
}

// Explore filters and sorts t for the explorer. When the session has a
// selected case, its detail is looked up in the full table, with the
// keyword highlighted in the quote.
func Explore(t *model.Table, p ExplorerParams, s Session) (*ExplorerResult, error) {
	sortOpt, err := ParseSortOption(string(p.Sort))
	if err != nil {
		return nil, err
	}

	filtered, err := Apply(t, ExplorerFilters(p)...)
	if err != nil {
		return nil, err
	}
	sorted, err := SortByOption(filtered, sortOpt)
	if err != nil {
		return nil, err
	}

	choices, err := BuildChoices(t, p.ClaimType)
	if err != nil {
		return nil, err
	}

	res := &ExplorerResult{
		Count:   sorted.Len(),
		Cases:   sorted.Cases,
		Choices: choices,
	}
	if s.SelectedCase != nil {
		d, err := Detail(t, *s.SelectedCase, p.Keyword)
		if err != nil {
			return nil, err
		}
		res.Selected = d
	}
	return res, nil
}

// BuildChoices lists selector options from the full table. Sub-categories
// are narrowed to claimType unless it is empty or All.
func BuildChoices(t *model.Table, claimType string) (Choices, error) {
	var c Choices
	var err error

	if c.ClaimTypes, err = withAll(DistinctValues(t, model.ColClaimType)); err != nil {
		return Choices{}, err
	}

	scope := t
	if claimType != "" && claimType != All {
		if scope, err = FilterByExactMatch(t, model.ColClaimType, claimType); err != nil {
			return Choices{}, err
		}
	}
	if c.SubCategories, err = withAll(DistinctValues(scope, model.ColSubCategory)); err != nil {
		return Choices{}, err
	}
	if c.Statuses, err = withAll(DistinctValues(t, model.ColStatusGroup)); err != nil {
		return Choices{}, err
	}
	if c.Jurisdictions, err = withAll(DistinctValues(t, model.ColJurisdiction)); err != nil {
		return Choices{}, err
	}

	c.SortOptions = make([]string, len(SortOptions))
	for i, o := range SortOptions {
		c.SortOptions[i] = string(o)
	}
	return c, nil
}

func withAll(values []string, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	return append([]string{All}, values...), nil
}
