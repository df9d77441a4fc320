// Package query implements the filter, sort, aggregate, and view operations
// that back the overview, explorer, and case detail surfaces.
//
// Every operation is a pure function of its inputs: it never mutates the
// input table and returns a new *model.Table that shares column metadata.
package query

import (
	"math"
	"strings"

	"github.com/sells-group/litigation-cli/internal/model"
)

// All is the sentinel choice value that disables an exact-match filter.
const All = "All"

// FilterKind selects the predicate a Filter applies.
type FilterKind int

const (
	KindRange FilterKind = iota
	KindExact
	KindKeyword
)

func (k FilterKind) String() string {
	switch k {
	case KindRange:
		return "range"
	case KindExact:
		return "exact"
	case KindKeyword:
		return "keyword"
	default:
		return "unknown"
	}
}

// Filter is a single row predicate. Build one with Range, Exact, or Keyword.
type Filter struct {
	Kind  FilterKind
	Field string
	Min   float64
	Max   float64
	Value string
}

// Range keeps rows whose numeric field lies in [min, max].
func Range(field string, min, max float64) Filter {
	return Filter{Kind: KindRange, Field: field, Min: min, Max: max}
}

// Exact keeps rows whose field equals value. value == All keeps every row.
func Exact(field, value string) Filter {
	return Filter{Kind: KindExact, Field: field, Value: value}
}

// Keyword keeps rows whose field contains keyword, ignoring case. An empty
// keyword keeps every row.
func Keyword(field, keyword string) Filter {
	return Filter{Kind: KindKeyword, Field: field, Value: keyword}
}

type predicate func(c *model.Case) bool

// compile validates f against t. A nil predicate means the filter is a no-op.
func (f Filter) compile(t *model.Table) (predicate, error) {
	switch f.Kind {
	case KindRange:
		op := "filter by range"
		if err := requireNumeric(t, op, f.Field); err != nil {
			return nil, err
		}
		if math.IsNaN(f.Min) || math.IsNaN(f.Max) {
			return nil, queryErr(op, f.Field, "bounds must be numbers")
		}
		if f.Min > f.Max {
			return nil, queryErr(op, f.Field, "min %v is greater than max %v", f.Min, f.Max)
		}
		field, lo, hi := f.Field, f.Min, f.Max
		return func(c *model.Case) bool {
			v, ok := c.Number(field)
			return ok && v >= lo && v <= hi
		}, nil

	case KindExact:
		op := "filter by exact match"
		if err := requireColumn(t, op, f.Field); err != nil {
			return nil, err
		}
		if f.Value == All {
			return nil, nil
		}
		field, want := f.Field, f.Value
		return func(c *model.Case) bool {
			v, ok := keyOf(c, field)
			return ok && v == want
		}, nil

	case KindKeyword:
		op := "filter by keyword"
		if err := requireText(t, op, f.Field); err != nil {
			return nil, err
		}
		if f.Value == "" {
			return nil, nil
		}
		field, needle := f.Field, strings.ToLower(f.Value)
		return func(c *model.Case) bool {
			v, _ := c.Text(field)
			return strings.Contains(strings.ToLower(v), needle)
		}, nil

	default:
		return nil, queryErr("filter", f.Field, "unknown filter kind %d", f.Kind)
	}
}

// Apply keeps the rows matching every filter, in input order. All filters
// are validated before any row is examined, so the result is independent of
// filter order.
func Apply(t *model.Table, filters ...Filter) (*model.Table, error) {
	preds := make([]predicate, 0, len(filters))
	for _, f := range filters {
		p, err := f.compile(t)
		if err != nil {
			return nil, err
		}
		if p != nil {
			preds = append(preds, p)
		}
	}

	if t == nil {
		return &model.Table{}, nil
	}

	out := make([]model.Case, 0, len(t.Cases))
rows:
	for i := range t.Cases {
		c := &t.Cases[i]
		for _, p := range preds {
			if !p(c) {
				continue rows
			}
		}
		out = append(out, *c)
	}
	return t.With(out), nil
}

// FilterByRange keeps rows whose numeric field lies in [min, max]. Rows with
// a missing value are excluded.
func FilterByRange(t *model.Table, field string, min, max float64) (*model.Table, error) {
	return Apply(t, Range(field, min, max))
}

// FilterByExactMatch keeps rows whose field equals value exactly.
func FilterByExactMatch(t *model.Table, field, value string) (*model.Table, error) {
	return Apply(t, Exact(field, value))
}

// FilterByKeyword keeps rows whose text field contains keyword, ignoring
// case. The keyword is matched literally.
func FilterByKeyword(t *model.Table, field, keyword string) (*model.Table, error) {
	return Apply(t, Keyword(field, keyword))
}
