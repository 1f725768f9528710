package dataprocessing

import (
	"context"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cabgap/internal/errors"
)

// Expected input columns, as named in the file header.
const (
	ColRequestID   = "Request id"
	ColPickupPoint = "Pickup point"
	ColDriverID    = "Driver id"
	ColStatus      = "Status"
	ColRequestTime = "Request timestamp"
	ColDropTime    = "Drop timestamp"
)

var expectedColumns = []string{
	ColRequestID,
	ColPickupPoint,
	ColDriverID,
	ColStatus,
	ColRequestTime,
	ColDropTime,
}

// RawTable holds the input file contents before any type coercion: the
// header and the data rows as raw strings, column order preserved.
type RawTable struct {
	Header []string
	Rows   [][]string

	columns map[string]int // lower-cased header name -> column index
}

// LoadRawTable reads the delimited input file. It performs no coercion; the
// only structural guarantees are a recognizable header and a consistent
// column count across rows (enforced by the csv reader). Anything else is a
// LOAD error.
func LoadRawTable(ctx context.Context, logger *slog.Logger, path string) (*RawTable, error) {
	if logger == nil {
		logger = slog.Default()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewLoadError("failed to open input file", err).WithContext("path", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	all, err := reader.ReadAll()
	if err != nil {
		loadErr := errors.NewLoadError("malformed input file", err).WithContext("path", path)
		var parseErr *csv.ParseError
		if stderrors.As(err, &parseErr) {
			loadErr = loadErr.WithContext("line", parseErr.Line)
		}
		return nil, loadErr
	}
	if len(all) == 0 {
		return nil, errors.NewLoadError("input file is empty", nil).WithContext("path", path)
	}

	table := &RawTable{
		Header:  all[0],
		Rows:    all[1:],
		columns: make(map[string]int, len(all[0])),
	}
	for i, name := range table.Header {
		table.columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range expectedColumns {
		if _, ok := table.columns[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, errors.NewLoadError(
			fmt.Sprintf("input file is missing required columns: %s", strings.Join(missing, ", ")), nil).
			WithContext("path", path)
	}

	logger.InfoContext(ctx, "loaded raw input table",
		slog.String("path", path),
		slog.Int("column_count", len(table.Header)),
		slog.Int("row_count", len(table.Rows)))

	return table, nil
}

// Field returns the trimmed raw value of the named column in a row. Header
// names are matched case-insensitively.
func (t *RawTable) Field(row []string, column string) string {
	idx, ok := t.columns[strings.ToLower(column)]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
