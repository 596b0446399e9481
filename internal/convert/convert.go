// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs the unloved.csv to AppData conversion: one sequential
// pass that reads rows, builds records, and writes one XML file per
// accepted row.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/pdiddy/create-appdata/internal/appdata"
	"github.com/pdiddy/create-appdata/internal/unloved"
	"github.com/pdiddy/create-appdata/pkg/types"
)

// Status is the outcome of converting one row.
type Status string

const (
	StatusPreamble Status = "preamble"
	StatusWritten  Status = "written"
	StatusSkipped  Status = "skipped"
	StatusInvalid  Status = "invalid"
)

// RowResult holds the outcome of one row.
type RowResult struct {
	Status Status
	// Path is the output file, set when Status is StatusWritten.
	Path string
	// Skip is set when Status is StatusSkipped or StatusInvalid.
	Skip *appdata.SkipError
}

// BatchResult holds the outcome of a conversion run.
type BatchResult struct {
	Written  int
	Skipped  int
	Invalid  int
	Preamble int

	Report types.RunReport
}

// Total returns the number of data rows processed (preamble excluded).
func (r BatchResult) Total() int {
	return r.Written + r.Skipped + r.Invalid
}

// Summary returns the one-line batch summary.
func (r BatchResult) Summary() string {
	return fmt.Sprintf("Batch summary: %d written, %d skipped, %d invalid (total: %d)",
		r.Written, r.Skipped, r.Invalid, r.Total())
}

func (r *BatchResult) add(row unloved.Row, res RowResult) {
	switch res.Status {
	case StatusPreamble:
		r.Preamble++
		return
	case StatusWritten:
		r.Written++
		r.Report.Written = append(r.Report.Written, res.Path)
		return
	case StatusSkipped:
		r.Skipped++
	case StatusInvalid:
		r.Invalid++
	}
	r.Report.Skipped = append(r.Report.Skipped, types.SkippedRow{
		Line:   row.Line,
		ID:     row.ID(),
		Reason: string(res.Skip.Reason),
		Fields: res.Skip.Fields,
	})
}

// ConvertRow builds and writes the AppData file for one data row. Row
// problems are reported on w and returned in the result; only a failure to
// write the output file is returned as an error.
func ConvertRow(fields []string, cfg types.ConverterConfig, sink Sink, w io.Writer) (RowResult, error) {
	rec, err := appdata.Build(fields, appdata.Options{WrapWidth: cfg.WrapWidth})
	if err != nil {
		var skip *appdata.SkipError
		if !errors.As(err, &skip) {
			return RowResult{}, err
		}
		if msg := skip.Diagnostic(); msg != "" {
			fmt.Fprintln(w, msg)
		}
		status := StatusSkipped
		if errors.Is(skip, appdata.ErrStructuralRow) {
			status = StatusInvalid
		}
		return RowResult{Status: status, Skip: skip}, nil
	}

	path := filepath.Join(cfg.OutputDir, rec.Filename())
	if err := sink.Write(path, appdata.Marshal(rec)); err != nil {
		return RowResult{}, fmt.Errorf("writing appdata for %s: %w", rec.ID, err)
	}
	fmt.Fprintln(w, sink.Verb(), path)
	return RowResult{Status: StatusWritten, Path: path}, nil
}

// Run converts every data row of cfg.InputPath. Rows are processed one at
// a time in file order; the header-sentinel state is threaded through the
// loop. ctx is checked between rows. Run returns an error only when the
// input cannot be read or an output cannot be written. Once the input is
// open the report summary is filled in on every return, so a run that
// stops early still describes the rows it processed.
func Run(ctx context.Context, cfg types.ConverterConfig, w io.Writer) (result BatchResult, err error) {
	result = BatchResult{
		Report: types.RunReport{Input: cfg.InputPath, Written: []string{}},
	}

	r, err := unloved.Open(cfg.InputPath)
	if err != nil {
		return result, err
	}
	defer r.Close()
	defer func() { result.finish(cfg.DryRun, err) }()

	sink := NewSink(cfg.DryRun)
	seen := false
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		row, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return result, err
		}

		var data bool
		seen, data = unloved.Advance(seen, row.Fields)
		if !data {
			result.add(row, RowResult{Status: StatusPreamble})
			continue
		}

		res, err := ConvertRow(row.Fields, cfg, sink, w)
		if err != nil {
			return result, err
		}
		result.add(row, res)
	}
	return result, nil
}

func (r *BatchResult) finish(dryRun bool, err error) {
	r.Report.Summary = types.RunSummary{
		Written:   r.Written,
		Skipped:   r.Skipped,
		Invalid:   r.Invalid,
		Preamble:  r.Preamble,
		DryRun:    dryRun,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		r.Report.Summary.Error = err.Error()
	}
}
