// Package normalize turns raw case rows into canonical model.Case records.
//
// Normalization never fails on individual fields: missing or malformed
// values fall back to "", 0, or the Unknown/Other status groups.
package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/litigation-cli/internal/model"
)

// Normalize builds the canonical table from raw records. columns is the
// input header; derived columns in it are dropped. Output order matches
// input order and each case's Index is its position.
func Normalize(columns []string, raw []model.RawRecord) *model.Table {
	t := &model.Table{
		Columns: inputColumns(columns),
		Cases:   make([]model.Case, len(raw)),
	}

	var unparsed int
	for i, r := range raw {
		c := NormalizeRecord(i, r)
		if c.SettlementAmount != "" && c.SettlementNumeric == 0 {
			unparsed++
		}
		t.Cases[i] = c
	}

	zap.L().Debug("normalize: table built",
		zap.Int("cases", len(t.Cases)),
		zap.Int("columns", len(t.Columns)),
		zap.Int("unparsed_settlements", unparsed),
	)
	return t
}

// NormalizeRecord converts a single raw record.
func NormalizeRecord(idx int, r model.RawRecord) model.Case {
	c := model.Case{Index: idx}

	for name, v := range r {
		switch {
		case name == model.ColYear:
			c.Year = parseYear(v)
		case isDerived(name):
			// Recomputed below.
		case c.SetText(name, coerceText(v)):
		case v != nil:
			if c.Extra == nil {
				c.Extra = make(map[string]string)
			}
			c.Extra[name] = coerceText(v)
		}
	}

	c.DisplayName = c.CaseName
	if c.DisplayName == "" {
		c.DisplayName = c.ProductCompany
	}
	c.SettlementNumeric = ParseSettlementAmount(c.SettlementAmount)
	c.StatusGroup = NormalizeStatus(c.CurrentStatus)
	return c
}

// Denormalize converts a canonical table back to raw input form: known text
// columns, Year, and passthrough columns. Derived columns are left out, so
// Normalize(Denormalize(t)) reproduces t.
func Denormalize(t *model.Table) ([]string, []model.RawRecord) {
	cols := inputColumns(t.Columns)
	raw := make([]model.RawRecord, len(t.Cases))
	for i := range t.Cases {
		c := &t.Cases[i]
		r := make(model.RawRecord, len(cols))
		for _, name := range model.TextColumns() {
			v, _ := c.Text(name)
			r[name] = v
		}
		if c.Year != nil {
			r[model.ColYear] = *c.Year
		}
		for k, v := range c.Extra {
			r[k] = v
		}
		raw[i] = r
	}
	return cols, raw
}

func isDerived(name string) bool {
	switch name {
	case model.ColDisplayName, model.ColStatusGroup, model.ColSettlementNumeric:
		return true
	}
	return false
}

func inputColumns(columns []string) []string {
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		if !isDerived(c) {
			out = append(out, c)
		}
	}
	return out
}

// coerceText renders any cell value as a string. nil and NaN become "".
func coerceText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		if math.IsNaN(x) {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return coerceText(float64(x))
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		if x {
			return "True"
		}
		return "False"
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// parseYear accepts whole numbers written as ints, floats, or text
// ("2021", "2021.0"). Anything else is treated as missing.
func parseYear(v any) *int {
	var f float64
	switch x := v.(type) {
	case nil:
		return nil
	case int:
		return &x
	case int64:
		y := int(x)
		return &y
	case float64:
		f = x
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return nil
		}
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		f = p
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil
	}
	y := int(f)
	return &y
}
