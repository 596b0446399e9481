// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package unloved reads the unloved-applications spreadsheet export. The file
// is a comma-delimited, double-quote quoted CSV whose real records follow a
// header row; everything above that header is free-form preamble.
package unloved

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// SentinelPrefix starts field [1] of the header row that precedes real data.
const SentinelPrefix = "desktop file name"

// FieldCount is the number of fields in a well-formed data row.
const FieldCount = 10

// Field indexes within a data row.
const (
	FieldID = iota + 1
	FieldName
	FieldSummary
	FieldDescription
	FieldHomepage
	FieldScreenshots
	FieldUpdateContact
	FieldProjectGroup
)

// Row is one CSV record together with the line it starts on.
type Row struct {
	Line   int
	Fields []string
}

// ID returns the desktop file identifier, or "" when the row is too short.
func (r Row) ID() string {
	return fieldAt(r.Fields, FieldID)
}

// Reader yields rows of an unloved CSV file in order.
type Reader struct {
	f   *os.File
	csv *csv.Reader
}

// Open opens the CSV at path. The contents are decoded as UTF-8 and a
// leading byte-order mark is dropped.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input %s: %w", path, err)
	}
	return &Reader{f: f, csv: NewCSVReader(f)}, nil
}

// NewCSVReader configures a csv.Reader for the unloved export format.
// Row widths vary (preamble rows are short) and stray quotes are tolerated.
func NewCSVReader(r io.Reader) *csv.Reader {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	cr := csv.NewReader(transform.NewReader(r, dec))
	cr.Comma = ','
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

// Next returns the next row, or io.EOF when the file is exhausted.
func (r *Reader) Next() (Row, error) {
	fields, err := r.csv.Read()
	if err != nil {
		if err == io.EOF {
			return Row{}, io.EOF
		}
		return Row{}, fmt.Errorf("reading %s: %w", r.f.Name(), err)
	}
	line, _ := r.csv.FieldPos(0)
	return Row{Line: line, Fields: fields}, nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.f.Close()
}

// Advance folds the header-sentinel state over one row. It returns the new
// state and whether the row is a data row that should be converted. Rows up
// to and including the first sentinel row are never data.
func Advance(seen bool, fields []string) (bool, bool) {
	if seen {
		return true, true
	}
	return strings.HasPrefix(fieldAt(fields, FieldID), SentinelPrefix), false
}

func fieldAt(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}
