package model

// Table is an ordered collection of canonical cases. Columns keeps the input
// header order, unknown passthrough columns included. Tables are treated as
// read-only once built; derived views are new Table values.
type Table struct {
	Columns []string `json:"columns"`
	Cases   []Case   `json:"cases"`
}

// Len returns the number of cases.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Cases)
}

// HasColumn reports whether name is addressable on this table: either part
// of the fixed schema or a passthrough column present in the input header.
func (t *Table) HasColumn(name string) bool {
	if IsKnownColumn(name) {
		return true
	}
	if t == nil {
		return false
	}
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ByIndex returns the case with the given stable index.
func (t *Table) ByIndex(idx int) (Case, bool) {
	if t == nil {
		return Case{}, false
	}
	// Canonical tables keep Index == position; views may not.
	if idx >= 0 && idx < len(t.Cases) && t.Cases[idx].Index == idx {
		return t.Cases[idx], true
	}
	for _, c := range t.Cases {
		if c.Index == idx {
			return c, true
		}
	}
	return Case{}, false
}

// With returns a new table sharing t's columns with the given cases.
func (t *Table) With(cases []Case) *Table {
	var cols []string
	if t != nil {
		cols = t.Columns
	}
	return &Table{Columns: cols, Cases: cases}
}
