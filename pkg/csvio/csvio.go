// pkg/csvio/csvio.go
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/qoriq-io/dq-engine/pkg/model"
)

// Read parses delimited text into rows. The first record is the header row;
// header names are trimmed but cell values are preserved verbatim so the fix
// engine can observe whitespace defects. Records shorter than the header
// leave trailing cells absent; longer records have their extras dropped.
func Read(r io.Reader) ([]model.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = false

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty input: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}

	var rows []model.Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record %d: %w", len(rows)+2, err)
		}
		if blank(record) {
			continue
		}

		row := model.NewRow(columns)
		for i, col := range columns {
			if i < len(record) {
				row.Cells[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadFile parses a CSV file from disk.
func ReadFile(path string) ([]model.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Write serializes rows back to delimited text. The column set is the union
// of all row columns in first-appearance order; fix metadata and priority
// scores are never exported.
func Write(w io.Writer, rows []model.Row) error {
	columns := unionColumns(rows)
	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	record := make([]string, len(columns))
	for i, row := range rows {
		for j, col := range columns {
			record[j] = row.Value(col)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile serializes rows to a CSV file, replacing any existing file.
func WriteFile(path string, rows []model.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Write(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func unionColumns(rows []model.Row) []string {
	var columns []string
	seen := make(map[string]struct{})
	for _, row := range rows {
		for _, col := range row.Columns {
			if _, ok := seen[col]; !ok {
				seen[col] = struct{}{}
				columns = append(columns, col)
			}
		}
	}
	return columns
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
