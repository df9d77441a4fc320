package query

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/sells-group/litigation-cli/internal/model"
)

// Point is one labelled value in a chart series or summary.
type Point struct {
	Label string  `json:"label" yaml:"label" csv:"label"`
	Value float64 `json:"value" yaml:"value" csv:"value"`
}

// GroupCount counts rows per distinct value of field. Rows with a missing
// value (a missing Year) are skipped.
func GroupCount(t *model.Table, field string) (map[string]int, error) {
	if err := requireColumn(t, "group count", field); err != nil {
		return nil, err
	}
	out := make(map[string]int)
	if t == nil {
		return out, nil
	}
	for i := range t.Cases {
		if k, ok := keyOf(&t.Cases[i], field); ok {
			out[k]++
		}
	}
	return out, nil
}

// GroupSum sums valueField per distinct value of keyField.
func GroupSum(t *model.Table, keyField, valueField string) (map[string]float64, error) {
	op := "group sum"
	if err := requireColumn(t, op, keyField); err != nil {
		return nil, err
	}
	if err := requireNumeric(t, op, valueField); err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	if t == nil {
		return out, nil
	}
	for i := range t.Cases {
		c := &t.Cases[i]
		k, ok := keyOf(c, keyField)
		if !ok {
			continue
		}
		v, ok := c.Number(valueField)
		if !ok {
			continue
		}
		out[k] += v
	}
	return out, nil
}

// RankCounts orders counts by count descending, then label ascending.
func RankCounts(counts map[string]int) []Point {
	return rank(pointsOf(counts))
}

// RankSums orders sums by value descending, then label ascending.
func RankSums(sums map[string]float64) []Point {
	return rank(pointsOf(sums))
}

func rank(points []Point) []Point {
	slices.SortFunc(points, func(a, b Point) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
	return points
}

// ByNumericLabel orders points whose labels are numbers (years) ascending.
func ByNumericLabel(points []Point) []Point {
	out := slices.Clone(points)
	slices.SortFunc(out, func(a, b Point) int {
		x, errA := strconv.ParseFloat(a.Label, 64)
		y, errB := strconv.ParseFloat(b.Label, 64)
		if errA != nil || errB != nil {
			return cmp.Compare(a.Label, b.Label)
		}
		return cmp.Compare(x, y)
	})
	return out
}

func pointsOf[V int | float64](m map[string]V) []Point {
	out := make([]Point, 0, len(m))
	for k, v := range m {
		out = append(out, Point{Label: k, Value: float64(v)})
	}
	return out
}

func head(points []Point, n int) []Point {
	if len(points) > n {
		return points[:n]
	}
	return points
}

// TopN returns the n rows with the largest positive value of field, in
// descending order. Zero values are excluded; ties keep input order.
func TopN(t *model.Table, field string, n int) (*model.Table, error) {
	op := "top n"
	if err := requireNumeric(t, op, field); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, queryErr(op, field, "n must not be negative, got %d", n)
	}
	if t == nil {
		return &model.Table{}, nil
	}

	type ranked struct {
		c model.Case
		v float64
	}
	var rows []ranked
	for _, c := range t.Cases {
		if v, ok := c.Number(field); ok && v > 0 {
			rows = append(rows, ranked{c: c, v: v})
		}
	}
	slices.SortStableFunc(rows, func(a, b ranked) int { return cmp.Compare(b.v, a.v) })

	if len(rows) > n {
		rows = rows[:n]
	}
	out := make([]model.Case, len(rows))
	for i, r := range rows {
		out[i] = r.c
	}
	return t.With(out), nil
}

// DistinctValues returns the sorted, non-empty distinct values of field.
func DistinctValues(t *model.Table, field string) ([]string, error) {
	if err := requireColumn(t, "distinct values", field); err != nil {
		return nil, err
	}
	if t == nil {
		return []string{}, nil
	}
	seen := make(map[string]struct{})
	out := []string{}
	for i := range t.Cases {
		k, ok := keyOf(&t.Cases[i], field)
		if !ok || k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	if model.IsNumericColumn(field) {
		slices.SortFunc(out, func(a, b string) int {
			x, _ := strconv.ParseFloat(a, 64)
			y, _ := strconv.ParseFloat(b, 64)
			return cmp.Compare(x, y)
		})
		return out, nil
	}
	slices.Sort(out)
	return out, nil
}

// YearBounds returns the smallest and largest Year in t. ok is false when no
// row has a Year.
func YearBounds(t *model.Table) (min, max int, ok bool) {
	if t == nil {
		return 0, 0, false
	}
	for _, c := range t.Cases {
		if c.Year == nil {
			continue
		}
		y := *c.Year
		if !ok {
			min, max, ok = y, y, true
			continue
		}
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}
	return min, max, ok
}
