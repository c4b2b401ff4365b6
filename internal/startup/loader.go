package startup

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoData indicates the startup CSV is missing or unreadable. Callers
// on the normalization path surface this as an empty-result status, not
// a hard failure.
var ErrNoData = errors.New("startup data unavailable")

// headerNoiseLines is the number of non-data lines before the real
// header row in the CSV export.
const headerNoiseLines = 2

// RawRow is one CSV row as a mapping from trimmed column header to cell
// value. Immutable once loaded.
type RawRow map[string]string

// RawTable holds the loaded CSV: trimmed headers in column order plus
// the surviving (non-empty) rows.
type RawTable struct {
	Headers []string
	Rows    []RawRow
}

// LoadCSV reads the startup export at path. The first two lines are
// export noise and are skipped; the third line supplies the headers.
// Rows that are entirely empty are dropped. A missing file maps to
// ErrNoData.
func LoadCSV(path string) (*RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoData, path)
		}
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	return parseCSV(f)
}

func parseCSV(r io.Reader) (*RawTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // export rows are ragged

	for i := 0; i < headerNoiseLines; i++ {
		if _, err := reader.Read(); err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("%w: file too short", ErrNoData)
			}
			return nil, fmt.Errorf("skip header noise: %w", err)
		}
	}

	headerRow, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: missing header row", ErrNoData)
		}
		return nil, fmt.Errorf("read header row: %w", err)
	}

	headers := make([]string, len(headerRow))
	for i, h := range headerRow {
		headers[i] = strings.TrimSpace(h)
	}

	table := &RawTable{Headers: headers}

	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Tolerate malformed rows the same way every cell-level
			// parse failure is tolerated: skip, keep going.
			continue
		}

		row := make(RawRow, len(headers))
		empty := true
		for i, header := range headers {
			value := ""
			if i < len(cells) {
				value = strings.TrimSpace(cells[i])
			}
			row[header] = value
			if value != "" {
				empty = false
			}
		}

		if !empty {
			table.Rows = append(table.Rows, row)
		}
	}

	return table, nil
}
