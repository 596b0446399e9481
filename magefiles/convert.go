//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Convert builds the CLI and converts ~/unloved.csv into AppData files.
func Convert() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "convert")
}

// DryRun builds the CLI and lists the AppData files a conversion would write.
func DryRun() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "convert", "--dry-run")
}
