package report

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return eris.Wrap(enc.Encode(v), "report: encode json")
}

// WriteYAML writes v as YAML.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return eris.Wrap(err, "report: encode yaml")
	}
	return eris.Wrap(enc.Close(), "report: encode yaml")
}

// WriteCSV writes rows, a slice of structs, as CSV with a header taken from
// the struct tags. An empty slice writes nothing.
func WriteCSV[T any](w io.Writer, rows []T) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	for _, r := range rows {
		if err := enc.Encode(r); err != nil {
			return eris.Wrap(err, "report: encode csv")
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "report: flush csv")
}
