package query

import (
	"strconv"

	"github.com/sells-group/litigation-cli/internal/model"
)

// keyOf returns the grouping key for a case. Numeric columns are rendered in
// their shortest decimal form; a missing Year yields ok=false.
func keyOf(c *model.Case, field string) (string, bool) {
	if model.IsNumericColumn(field) {
		v, ok := c.Number(field)
		if !ok {
			return "", false
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	}
	v, ok := c.Text(field)
	if !ok {
		// Passthrough column that was empty for this row.
		return "", true
	}
	return v, true
}

func requireColumn(t *model.Table, op, field string) error {
	if field == "" {
		return queryErr(op, field, "field is required")
	}
	if !t.HasColumn(field) {
		return queryErr(op, field, "unknown field")
	}
	return nil
}

func requireNumeric(t *model.Table, op, field string) error {
	if err := requireColumn(t, op, field); err != nil {
		return err
	}
	if !model.IsNumericColumn(field) {
		return queryErr(op, field, "field is not numeric")
	}
	return nil
}

func requireText(t *model.Table, op, field string) error {
	if err := requireColumn(t, op, field); err != nil {
		return err
	}
	if model.IsNumericColumn(field) {
		return queryErr(op, field, "field is numeric")
	}
	return nil
}
