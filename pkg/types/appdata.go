// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AppDataRecord is the validated form of one unloved.csv row, ready to be
// rendered as an AppData XML file. All text fields hold raw, unescaped text.
type AppDataRecord struct {
	// ID is the desktop file identifier without the ".desktop" suffix.
	ID string `json:"id" yaml:"id"`

	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// Description holds one entry per paragraph; each paragraph is the list
	// of wrapped text lines rendered inside its <p> element.
	Description [][]string `json:"description" yaml:"description"`

	Homepage string `json:"homepage,omitempty" yaml:"homepage,omitempty"`

	// Screenshots is ordered; the first entry is the default screenshot.
	Screenshots []string `json:"screenshots" yaml:"screenshots"`

	// UpdateContact is empty when the row has no contact; the rendered file
	// then carries a commented-out placeholder.
	UpdateContact string `json:"update_contact,omitempty" yaml:"update_contact,omitempty"`

	ProjectGroup string `json:"project_group,omitempty" yaml:"project_group,omitempty"`
}

// Filename returns the output file name for the record.
func (r AppDataRecord) Filename() string {
	return r.ID + ".appdata.xml"
}
