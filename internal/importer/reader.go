// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Row maps column name to raw cell value.
type Row map[string]string

// Reader streams rows from a CSV with a header line.
type Reader struct {
	csv     *csv.Reader
	headers []string
	line    int
}

// NewReader reads the header line. A UTF-8 byte order mark on the first
// header is dropped, as IPEDS exports carry one.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("csv: empty input (no header row)")
	}
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}

	headers := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		headers[i] = strings.ToUpper(strings.TrimSpace(h))
	}

	return &Reader{csv: cr, headers: headers, line: 1}, nil
}

// Headers returns the normalized header names.
func (r *Reader) Headers() []string {
	return r.headers
}

// Line returns the 1-based line number of the last row read.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next row or io.EOF. Short rows leave trailing columns
// empty; extra cells are ignored.
func (r *Reader) Next() (Row, error) {
	record, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("csv: line %d: %w", r.line+1, err)
	}
	r.line++

	row := make(Row, len(r.headers))
	for i, h := range r.headers {
		if i < len(record) {
			row[h] = record[i]
		}
	}
	return row, nil
}
