package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Record is one CSV row keyed by the header row's column names.
type Record map[string]string

// Each streams path row by row, calling fn for every data row. The
// first row is the header; blank lines are skipped by the underlying
// reader. Rows shorter than the header read as "" for the missing
// columns, extra cells are dropped. Any stream or parse error is
// returned and the caller must treat it as fatal for this file.
func Each(path string, fn func(Record) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("read header %s: %w", path, err)
	}

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		rec := make(Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

// ReadFile loads the whole file into memory. Chain exports are small
// enough that the pipeline works on full slices.
func ReadFile(path string) ([]Record, error) {
	var out []Record
	err := Each(path, func(rec Record) error {
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
