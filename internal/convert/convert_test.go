// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/create-appdata/internal/appdata"
	"github.com/pdiddy/create-appdata/pkg/types"
)

// dataRow returns a valid ten-field row for id.
func dataRow(id string) []string {
	return []string{
		"_", id, "My App", "Does things",
		"First para sentence one. Sentence two.|Second para.",
		"http://example.com", "shot1.png|shot2.png", "", "", "_",
	}
}

func withField(row []string, i int, v string) []string {
	row[i] = v
	return row
}

// setupCSV writes rows as an unloved.csv in a temp home directory and
// returns a config pointing at it.
func setupCSV(t *testing.T, rows [][]string) types.ConverterConfig {
	t.Helper()
	home := t.TempDir()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, w.WriteAll(rows))

	input := filepath.Join(home, "unloved.csv")
	require.NoError(t, os.WriteFile(input, buf.Bytes(), 0o644))
	return types.ConverterConfig{
		HomeDir:   home,
		InputPath: input,
		OutputDir: home,
		WrapWidth: types.DefaultWrapWidth,
	}
}

func header() []string {
	return []string{"", "desktop file name (without .desktop)", "name", "summary", "description", "homepage", "screenshots", "contact", "group", "notes"}
}

func TestRun(t *testing.T) {
	cfg := setupCSV(t, [][]string{
		{"Unloved applications"},
		dataRow("before-header"),
		header(),
		dataRow("myapp"),
		{"_", "narrow", "Name", "Summary", "a|b", "", "s.png", "", "_"},
		withField(dataRow("noshots"), 6, ""),
		withField(dataRow("nodesc"), 4, ""),
		withField(dataRow("onepara"), 4, "Just one."),
		withField(dataRow("fourpara"), 4, "a|b|c|d"),
		withField(dataRow("threepara"), 4, "a|b|c"),
		make([]string, 10),
	})

	var out bytes.Buffer
	result, err := Run(context.Background(), cfg, &out)
	require.NoError(t, err)

	myapp := filepath.Join(cfg.OutputDir, "myapp.appdata.xml")
	three := filepath.Join(cfg.OutputDir, "threepara.appdata.xml")
	wantOut := "writing " + myapp + "\n" +
		"narrow INVALID 9\n" +
		"writing " + three + "\n"
	assert.Equal(t, wantOut, out.String())

	assert.Equal(t, 2, result.Written)
	assert.Equal(t, 5, result.Skipped)
	assert.Equal(t, 1, result.Invalid)
	assert.Equal(t, 3, result.Preamble)
	assert.Equal(t, 8, result.Total())
	assert.Equal(t, "Batch summary: 2 written, 5 skipped, 1 invalid (total: 8)", result.Summary())

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	var written []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".appdata.xml") {
			written = append(written, e.Name())
		}
	}
	assert.ElementsMatch(t, []string{"myapp.appdata.xml", "threepara.appdata.xml"}, written)

	data, err := os.ReadFile(myapp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<id type="desktop">myapp.desktop</id>`)
	assert.Contains(t, string(data), `<screenshot type="default">shot1.png</screenshot>`)

	assert.Equal(t, []string{myapp, three}, result.Report.Written)
	reasons := map[string]string{}
	for _, s := range result.Report.Skipped {
		reasons[s.ID] = s.Reason
	}
	assert.Equal(t, map[string]string{
		"narrow":   string(appdata.SkipFieldCount),
		"noshots":  string(appdata.SkipNoScreenshots),
		"nodesc":   string(appdata.SkipNoDescription),
		"onepara":  string(appdata.SkipParagraphCount),
		"fourpara": string(appdata.SkipParagraphCount),
		"":         string(appdata.SkipNoDescription),
	}, reasons)
	assert.Equal(t, 2, result.Report.Summary.Written)
	assert.False(t, result.Report.Summary.Timestamp.IsZero())
	assert.Empty(t, result.Report.Summary.Error)
}

func TestRunWithoutHeaderWritesNothing(t *testing.T) {
	cfg := setupCSV(t, [][]string{dataRow("a"), dataRow("b")})

	var out bytes.Buffer
	result, err := Run(context.Background(), cfg, &out)
	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Equal(t, 2, result.Preamble)
	assert.Zero(t, result.Total())
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "a.appdata.xml"))
}

func TestRunOverwritesExisting(t *testing.T) {
	cfg := setupCSV(t, [][]string{header(), dataRow("myapp")})
	path := filepath.Join(cfg.OutputDir, "myapp.appdata.xml")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	_, err := Run(context.Background(), cfg, &bytes.Buffer{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), appdata.Preamble))
}

func TestRunIsIdempotent(t *testing.T) {
	cfg := setupCSV(t, [][]string{header(), dataRow("myapp")})
	path := filepath.Join(cfg.OutputDir, "myapp.appdata.xml")

	_, err := Run(context.Background(), cfg, &bytes.Buffer{})
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = Run(context.Background(), cfg, &bytes.Buffer{})
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunDryRun(t *testing.T) {
	cfg := setupCSV(t, [][]string{header(), dataRow("myapp")})
	cfg.DryRun = true

	var out bytes.Buffer
	result, err := Run(context.Background(), cfg, &out)
	require.NoError(t, err)

	path := filepath.Join(cfg.OutputDir, "myapp.appdata.xml")
	assert.Equal(t, "would write "+path+"\n", out.String())
	assert.Equal(t, 1, result.Written)
	assert.True(t, result.Report.Summary.DryRun)
	assert.NoFileExists(t, path)
}

func TestRunSeparateOutputDir(t *testing.T) {
	cfg := setupCSV(t, [][]string{header(), dataRow("myapp")})
	cfg.OutputDir = t.TempDir()

	_, err := Run(context.Background(), cfg, &bytes.Buffer{})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "myapp.appdata.xml"))
	assert.NoFileExists(t, filepath.Join(cfg.HomeDir, "myapp.appdata.xml"))
}

func TestRunErrors(t *testing.T) {
	t.Run("missing input", func(t *testing.T) {
		cfg := types.ConverterConfig{InputPath: filepath.Join(t.TempDir(), "unloved.csv")}
		_, err := Run(context.Background(), cfg, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "opening input")
	})

	t.Run("unwritable output", func(t *testing.T) {
		cfg := setupCSV(t, [][]string{header(), dataRow("myapp"), dataRow("other")})
		cfg.OutputDir = filepath.Join(cfg.HomeDir, "missing")

		var out bytes.Buffer
		result, err := Run(context.Background(), cfg, &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "writing appdata for myapp")
		assert.Empty(t, out.String())
		assert.Zero(t, result.Written)
		assert.False(t, result.Report.Summary.Timestamp.IsZero())
		assert.Contains(t, result.Report.Summary.Error, "writing appdata for myapp")
	})

	t.Run("canceled context", func(t *testing.T) {
		cfg := setupCSV(t, [][]string{header(), dataRow("myapp")})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := Run(ctx, cfg, &bytes.Buffer{})
		assert.ErrorIs(t, err, context.Canceled)
		assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "myapp.appdata.xml"))
		assert.Equal(t, context.Canceled.Error(), result.Report.Summary.Error)
	})

	t.Run("stopped after some rows", func(t *testing.T) {
		cfg := setupCSV(t, [][]string{
			header(),
			{"_", "narrow", "Name"},
			withField(dataRow("noshots"), 6, ""),
			dataRow("myapp"),
			dataRow("never"),
		})
		cfg.OutputDir = filepath.Join(cfg.HomeDir, "missing")

		var out bytes.Buffer
		result, err := Run(context.Background(), cfg, &out)
		require.Error(t, err)
		assert.Equal(t, "narrow INVALID 3\n", out.String())

		summary := result.Report.Summary
		assert.Equal(t, 1, summary.Preamble)
		assert.Equal(t, 1, summary.Invalid)
		assert.Equal(t, 1, summary.Skipped)
		assert.Zero(t, summary.Written)
		assert.Contains(t, summary.Error, "writing appdata for myapp")
		assert.Len(t, result.Report.Skipped, 2)
	})
}

// failingSink rejects every write.
type failingSink struct{ err error }

func (f failingSink) Write(string, []byte) error { return f.err }
func (failingSink) Verb() string                 { return "writing" }

func TestConvertRow(t *testing.T) {
	cfg := types.ConverterConfig{OutputDir: "/out"}

	tests := []struct {
		name       string
		fields     []string
		sink       Sink
		wantStatus Status
		wantLog    string
		wantErr    bool
	}{
		{
			name:       "written",
			fields:     dataRow("myapp"),
			sink:       dryRunSink{},
			wantStatus: StatusWritten,
			wantLog:    "would write " + filepath.Join("/out", "myapp.appdata.xml") + "\n",
		},
		{
			name:       "invalid width reported",
			fields:     append(dataRow("wide"), "extra"),
			sink:       dryRunSink{},
			wantStatus: StatusInvalid,
			wantLog:    "wide INVALID 11\n",
		},
		{
			name:       "unsafe id reported",
			fields:     dataRow("a/b"),
			sink:       dryRunSink{},
			wantStatus: StatusInvalid,
			wantLog:    "a/b UNSAFE\n",
		},
		{
			name:       "incomplete content is silent",
			fields:     withField(dataRow("quiet"), 6, ""),
			sink:       dryRunSink{},
			wantStatus: StatusSkipped,
		},
		{
			name:    "sink failure",
			fields:  dataRow("myapp"),
			sink:    failingSink{err: errors.New("disk full")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log bytes.Buffer
			res, err := ConvertRow(tt.fields, cfg, tt.sink, &log)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "disk full")
				assert.Empty(t, log.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantLog, log.String())
		})
	}
}
