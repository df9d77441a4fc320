// Package loader reads the case table from disk and memoizes the canonical
// result per input fingerprint.
package loader

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"

	"go.uber.org/zap"

	"github.com/sells-group/litigation-cli/internal/fetcher"
	"github.com/sells-group/litigation-cli/internal/model"
	"github.com/sells-group/litigation-cli/internal/normalize"
)

// Options selects how the input file is parsed.
type Options struct {
	Sheet     string // XLSX sheet name, empty = first sheet
	Delimiter rune   // CSV delimiter, 0 = ','
}

// ReadFile reads the raw bytes of the input table.
func ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &DataLoadError{Path: path, Err: err}
	}
	return content, nil
}

// readRaw parses content into raw records keyed by trimmed header name.
// Empty cells are omitted from the records.
func readRaw(ctx context.Context, path string, content []byte, opts Options) ([]string, []model.RawRecord, error) {
	data, err := fetcher.ReadTableBytes(ctx, path, content, fetcher.TableOptions{
		Sheet:     opts.Sheet,
		Delimiter: opts.Delimiter,
	})
	if err != nil {
		return nil, nil, &DataLoadError{Path: path, Err: err}
	}
	return data.Header, toRecords(data), nil
}

// Parse normalizes the table held in content. path picks the format by
// extension and labels errors.
func Parse(ctx context.Context, path string, content []byte, opts Options) (*model.Table, error) {
	cols, raw, err := readRaw(ctx, path, content, opts)
	if err != nil {
		return nil, err
	}
	t := normalize.Normalize(cols, raw)
	zap.L().Info("loader: table loaded",
		zap.String("path", path),
		zap.Int("cases", t.Len()),
	)
	return t, nil
}

// Load reads and normalizes the table at path without caching.
func Load(ctx context.Context, path string, opts Options) (*model.Table, error) {
	content, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(ctx, path, content, opts)
}

// Fingerprint hashes table contents together with the parse options so a
// changed file or a different sheet gets a new cache entry.
func Fingerprint(content []byte, opts Options) string {
	h := sha256.New()
	h.Write(content)
	h.Write([]byte{0})
	h.Write([]byte(opts.Sheet))
	h.Write([]byte(string(opts.Delimiter)))
	return "cases:v1:" + hex.EncodeToString(h.Sum(nil))
}

func toRecords(data *fetcher.TableData) []model.RawRecord {
	out := make([]model.RawRecord, len(data.Rows))
	for i, row := range data.Rows {
		r := make(model.RawRecord, len(row))
		for j, v := range row {
			if j >= len(data.Header) || isEmpty(v) {
				continue
			}
			r[data.Header[j]] = v
		}
		out[i] = r
	}
	return out
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	}
	return false
}
