// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// SkippedRow records one data row that did not produce an output file.
type SkippedRow struct {
	// Line is the 1-based CSV line on which the row starts.
	Line   int    `json:"line" yaml:"line"`
	ID     string `json:"id" yaml:"id"`
	Reason string `json:"reason" yaml:"reason"`
	Fields int    `json:"fields" yaml:"fields"`
}

// RunSummary holds the outcome counts of a conversion run.
type RunSummary struct {
	Written   int       `json:"written" yaml:"written"`
	Skipped   int       `json:"skipped" yaml:"skipped"`
	Invalid   int       `json:"invalid" yaml:"invalid"`
	Preamble  int       `json:"preamble" yaml:"preamble"`
	DryRun    bool      `json:"dry_run" yaml:"dry_run"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	// Error is set when the run stopped before the end of the input; the
	// counts then cover only the rows processed so far.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// RunReport is the on-disk representation of a conversion run.
type RunReport struct {
	Input   string       `json:"input" yaml:"input"`
	Written []string     `json:"written" yaml:"written"`
	Skipped []SkippedRow `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Summary RunSummary   `json:"summary" yaml:"summary"`
}
