package query

import (
	"cmp"
	"slices"

	"github.com/sells-group/litigation-cli/internal/model"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortOption is one of the explorer's sort choices.
type SortOption string

const (
	SortYearDesc       SortOption = "year_desc"
	SortYearAsc        SortOption = "year_asc"
	SortNameAsc        SortOption = "name_asc"
	SortSettlementDesc SortOption = "settlement_desc"
)

// DefaultSort is used when no sort option is given.
const DefaultSort = SortYearDesc

// SortOptions lists the supported options in display order.
var SortOptions = []SortOption{SortYearDesc, SortYearAsc, SortNameAsc, SortSettlementDesc}

// Label returns the human-readable name of the option.
func (o SortOption) Label() string {
	switch o {
	case SortYearDesc:
		return "Year (Newest)"
	case SortYearAsc:
		return "Year (Oldest)"
	case SortNameAsc:
		return "Case Name (A-Z)"
	case SortSettlementDesc:
		return "Settlement Amount (Highest)"
	default:
		return string(o)
	}
}

// Key returns the field and direction the option sorts by.
func (o SortOption) Key() (string, Direction) {
	switch o {
	case SortYearAsc:
		return model.ColYear, Asc
	case SortNameAsc:
		return model.ColDisplayName, Asc
	case SortSettlementDesc:
		return model.ColSettlementNumeric, Desc
	default:
		return model.ColYear, Desc
	}
}

// ParseSortOption validates s. An empty string yields DefaultSort.
func ParseSortOption(s string) (SortOption, error) {
	if s == "" {
		return DefaultSort, nil
	}
	o := SortOption(s)
	if !slices.Contains(SortOptions, o) {
		return "", queryErr("sort", "", "unsupported sort option %q", s)
	}
	return o, nil
}

// SortBy returns a stably sorted copy of t. Supported keys are Year (either
// direction), display_name ascending, and settlement_numeric descending.
// Rows with a missing Year sort last in both directions.
func SortBy(t *model.Table, key string, dir Direction) (*model.Table, error) {
	var less func(a, b model.Case) int

	switch {
	case key == model.ColYear && (dir == Asc || dir == Desc):
		desc := dir == Desc
		less = func(a, b model.Case) int {
			switch {
			case a.Year == nil && b.Year == nil:
				return 0
			case a.Year == nil:
				return 1
			case b.Year == nil:
				return -1
			case desc:
				return cmp.Compare(*b.Year, *a.Year)
			default:
				return cmp.Compare(*a.Year, *b.Year)
			}
		}
	case key == model.ColDisplayName && dir == Asc:
		less = func(a, b model.Case) int { return cmp.Compare(a.DisplayName, b.DisplayName) }
	case key == model.ColSettlementNumeric && dir == Desc:
		less = func(a, b model.Case) int { return cmp.Compare(b.SettlementNumeric, a.SettlementNumeric) }
	default:
		return nil, queryErr("sort", key, "unsupported sort %s %s", key, dir)
	}

	if t == nil {
		return &model.Table{}, nil
	}
	out := slices.Clone(t.Cases)
	slices.SortStableFunc(out, less)
	return t.With(out), nil
}

// SortByOption applies a SortOption.
func SortByOption(t *model.Table, o SortOption) (*model.Table, error) {
	key, dir := o.Key()
	return SortBy(t, key, dir)
}
