// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Defaults for ConverterConfig fields left unset.
const (
	DefaultInputName = "unloved.csv"
	DefaultWrapWidth = 74
)

// ConverterConfig holds settings for a conversion run.
type ConverterConfig struct {
	// HomeDir is the base directory for the default input and output paths.
	HomeDir string `json:"home" yaml:"home"`

	// InputPath is the CSV file to read (default HomeDir/unloved.csv).
	InputPath string `json:"input" yaml:"input"`

	// OutputDir receives one <id>.appdata.xml per accepted row (default HomeDir).
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// WrapWidth is the maximum column width of description lines (default 74).
	WrapWidth int `json:"wrap_width" yaml:"wrap_width"`

	// DryRun runs every step except writing output files.
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// ReportPath, when set, receives a YAML or JSON run report.
	ReportPath string `json:"report,omitempty" yaml:"report,omitempty"`
}
