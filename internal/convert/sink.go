// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "os"

// Sink receives rendered AppData files. The file sink writes them to disk;
// the dry-run sink discards them.
type Sink interface {
	// Write stores data at path, replacing any existing file.
	Write(path string, data []byte) error
	// Verb is the console word printed before the path of each file.
	Verb() string
}

// NewSink returns the file sink, or the dry-run sink when dryRun is set.
func NewSink(dryRun bool) Sink {
	if dryRun {
		return dryRunSink{}
	}
	return fileSink{}
}

type fileSink struct{}

func (fileSink) Write(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func (fileSink) Verb() string { return "writing" }

type dryRunSink struct{}

func (dryRunSink) Write(string, []byte) error { return nil }

func (dryRunSink) Verb() string { return "would write" }
