// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package appdata

import (
	"errors"
	"fmt"
)

var (
	// ErrStructuralRow marks rows that are malformed and reported on the console.
	ErrStructuralRow = errors.New("structural row error")

	// ErrIncompleteContent marks rows that are not ready for publication.
	// These are skipped without a diagnostic.
	ErrIncompleteContent = errors.New("incomplete content")
)

// SkipReason names why a data row produced no AppData file.
type SkipReason string

const (
	SkipFieldCount     SkipReason = "field-count"
	SkipUnsafeID       SkipReason = "unsafe-id"
	SkipNoDescription  SkipReason = "no-description"
	SkipParagraphCount SkipReason = "paragraph-count"
	SkipNoScreenshots  SkipReason = "no-screenshots"
)

// category maps a reason to the error it wraps.
func (r SkipReason) category() error {
	switch r {
	case SkipFieldCount, SkipUnsafeID:
		return ErrStructuralRow
	default:
		return ErrIncompleteContent
	}
}

// SkipError is returned by Build for a row that produces no record.
type SkipError struct {
	ID     string
	Reason SkipReason
	Fields int
}

func newSkip(id string, reason SkipReason, fields int) *SkipError {
	return &SkipError{ID: id, Reason: reason, Fields: fields}
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("row %q skipped: %s (%d fields)", e.ID, e.Reason, e.Fields)
}

func (e *SkipError) Unwrap() error {
	return e.Reason.category()
}

// Diagnostic returns the console line reported for the skip, or "" when the
// skip is silent.
func (e *SkipError) Diagnostic() string {
	switch e.Reason {
	case SkipFieldCount:
		return fmt.Sprintf("%s INVALID %d", e.ID, e.Fields)
	case SkipUnsafeID:
		return fmt.Sprintf("%s UNSAFE", e.ID)
	default:
		return ""
	}
}
