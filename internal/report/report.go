package report

import (
	"io"

	"github.com/rotisserie/eris"

	"github.com/sells-group/litigation-cli/internal/model"
	"github.com/sells-group/litigation-cli/internal/query"
)

// Overview writes o in format f. CSV output holds the claim type summary.
func Overview(w io.Writer, f Format, o *query.Overview) error {
	switch f {
	case FormatTable:
		WriteOverview(w, o)
		return nil
	case FormatCSV:
		return WriteCSV(w, o.ClaimSummary)
	default:
		return encode(w, f, o)
	}
}

// Cases writes an explorer result in format f. CSV output holds one row per
// case in display order.
func Cases(w io.Writer, f Format, res *query.ExplorerResult, keyword string) error {
	switch f {
	case FormatTable:
		WriteCases(w, res, keyword)
		return nil
	case FormatCSV:
		return WriteCSV(w, res.Cases)
	default:
		return encode(w, f, res)
	}
}

// Detail writes a case detail in format f.
func Detail(w io.Writer, f Format, d *query.CaseDetail) error {
	switch f {
	case FormatTable:
		WriteDetail(w, d)
		return nil
	case FormatCSV:
		return WriteCSV(w, []model.Case{d.Case})
	default:
		return encode(w, f, d)
	}
}

// Choices writes selector options in format f. CSV is not supported.
func Choices(w io.Writer, f Format, c query.Choices) error {
	switch f {
	case FormatTable:
		WriteChoices(w, c)
		return nil
	case FormatCSV:
		return eris.New("report: csv output is not supported for choices")
	default:
		return encode(w, f, c)
	}
}

func encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, v)
	case FormatYAML:
		return WriteYAML(w, v)
	default:
		return eris.Errorf("report: unsupported format %q", f)
	}
}
