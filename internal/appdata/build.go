// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package appdata turns rows of the unloved spreadsheet into AppData
// records and renders them as XML.
//
// Build is pure: it either returns a record or a *SkipError naming the rule
// the row failed. Rendering goes through an element tree so every piece of
// field text is escaped the same way.
package appdata

import (
	"strings"

	"github.com/pdiddy/create-appdata/internal/unloved"
	"github.com/pdiddy/create-appdata/pkg/types"
)

// Options controls record building.
type Options struct {
	// WrapWidth is the maximum description line width (default 74).
	WrapWidth int
}

func (o Options) wrapWidth() int {
	if o.WrapWidth <= 0 {
		return types.DefaultWrapWidth
	}
	return o.WrapWidth
}

// Build validates one data row and converts it to a record. Checks run in
// the order the fields are rendered: field count, description, then
// screenshots. The identifier is checked last so that only rows which would
// otherwise be written are reported as unsafe.
func Build(fields []string, opts Options) (*types.AppDataRecord, error) {
	id := unloved.Row{Fields: fields}.ID()
	if len(fields) != unloved.FieldCount {
		return nil, newSkip(id, SkipFieldCount, len(fields))
	}

	rec := &types.AppDataRecord{
		ID:            id,
		Name:          fields[unloved.FieldName],
		Summary:       fields[unloved.FieldSummary],
		Homepage:      fields[unloved.FieldHomepage],
		UpdateContact: fields[unloved.FieldUpdateContact],
		ProjectGroup:  fields[unloved.FieldProjectGroup],
	}

	desc := fields[unloved.FieldDescription]
	if desc == "" {
		return nil, newSkip(id, SkipNoDescription, len(fields))
	}
	rec.Description = Paragraphs(desc, opts.wrapWidth())
	if n := len(rec.Description); n < 2 || n > 3 {
		return nil, newSkip(id, SkipParagraphCount, len(fields))
	}

	shots := fields[unloved.FieldScreenshots]
	if shots == "" {
		return nil, newSkip(id, SkipNoScreenshots, len(fields))
	}
	rec.Screenshots = strings.Split(strings.ReplaceAll(shots, "\n", ""), "|")

	if !safeID(id) {
		return nil, newSkip(id, SkipUnsafeID, len(fields))
	}
	return rec, nil
}

// safeID reports whether id can be used as a file name stem inside the
// output directory.
func safeID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`)
}
