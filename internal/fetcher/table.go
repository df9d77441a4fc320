package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// Format identifies a tabular file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat picks a format from the file extension. Anything that is not
// an Excel workbook is read as delimited text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

// TableOptions configures ReadTable and ReadTableBytes.
type TableOptions struct {
	Format    Format // empty = detect from path
	Delimiter rune   // CSV only, default ','
	Sheet     string // XLSX only, default first sheet
}

// TableData is a header plus data rows. Header names are trimmed. Each row
// has at most len(Header) cells; short rows are left short.
type TableData struct {
	Header []string
	Rows   [][]any
}

// ReadTable parses delimited text from r. The first row is the header.
func ReadTable(ctx context.Context, r io.Reader, opts TableOptions) (*TableData, error) {
	headerCh := make(chan []string, 1)
	rowCh, errCh := StreamCSV(ctx, r, CSVOptions{
		Delimiter: opts.Delimiter,
		HasHeader: true,
		HeaderCh:  headerCh,
	})

	var raw [][]string
	for row := range rowCh {
		raw = append(raw, row)
	}
	for err := range errCh {
		if err != nil {
			return nil, err
		}
	}

	var header []string
	select {
	case header = <-headerCh:
	default:
		return nil, eris.New("csv: missing header row")
	}

	data := &TableData{Header: uniqueHeader(trimHeader(header))}
	for i, row := range raw {
		if blankRow(row) {
			continue
		}
		if len(row) > len(header) {
			return nil, eris.Errorf("csv: row %d has %d fields, header has %d", i+2, len(row), len(header))
		}
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		data.Rows = append(data.Rows, cells)
	}
	return data, nil
}

// ReadTableBytes parses a CSV or XLSX table held in memory. name is only
// used to detect the format when opts.Format is empty.
func ReadTableBytes(ctx context.Context, name string, content []byte, opts TableOptions) (*TableData, error) {
	format := opts.Format
	if format == "" {
		format = DetectFormat(name)
	}

	switch format {
	case FormatXLSX:
		rows, err := ReadXLSX(content, XLSXOptions{SheetName: opts.Sheet})
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, eris.New("xlsx: missing header row")
		}
		header := make([]string, len(rows[0]))
		for i, v := range rows[0] {
			header[i] = fmt.Sprint(v)
		}
		data := &TableData{Header: uniqueHeader(trimHeader(header))}
		for _, row := range rows[1:] {
			if len(row) > len(header) {
				row = row[:len(header)]
			}
			if blankValues(row) {
				continue
			}
			data.Rows = append(data.Rows, row)
		}
		return data, nil

	case FormatCSV:
		return ReadTable(ctx, bytes.NewReader(content), opts)

	default:
		return nil, eris.Errorf("fetcher: unsupported format %q", format)
	}
}

func trimHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.TrimSpace(h)
	}
	return out
}

// uniqueHeader renames repeated column names to name.1, name.2, and so on,
// so every column keeps its own values. The first occurrence keeps its name.
func uniqueHeader(header []string) []string {
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		seen[h] = true
	}
	out := make([]string, len(header))
	used := make(map[string]bool, len(header))
	for i, h := range header {
		name := h
		for n := 1; used[name]; n++ {
			if candidate := h + "." + strconv.Itoa(n); !seen[candidate] {
				name = candidate
			}
		}
		used[name] = true
		out[i] = name
	}
	return out
}

// blankValues reports whether every cell of a workbook row is empty.
func blankValues(row []any) bool {
	for _, v := range row {
		switch x := v.(type) {
		case nil:
		case string:
			if strings.TrimSpace(x) != "" {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// blankRow matches the single empty field encoding/csv yields for lines
// that contain only whitespace.
func blankRow(row []string) bool {
	return len(row) == 1 && strings.TrimSpace(row[0]) == ""
}
