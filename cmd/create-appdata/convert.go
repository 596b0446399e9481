// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/create-appdata/internal/convert"
	"github.com/pdiddy/create-appdata/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert unloved.csv into AppData files",
	Long: `Convert performs a single pass over the unloved applications CSV and writes
one <id>.appdata.xml per publishable row, overwriting files from earlier runs.
It prints "<id> INVALID <fields>" for rows without exactly ten fields and
"writing <path>" for every file written. Invalid rows do not change the exit
status; only an unreadable input or unwritable output does.`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := converterConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, runErr := convert.Run(ctx, cfg, cmd.OutOrStdout())
	if runErr == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), result.Summary())
	}

	// A run that stopped partway still reports the rows it processed.
	if cfg.ReportPath != "" && !result.Report.Summary.Timestamp.IsZero() {
		if err := convert.WriteReport(cfg.ReportPath, result.Report); err != nil {
			return errors.Join(runErr, err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Report written to", cfg.ReportPath)
	}
	return runErr
}

// converterConfig resolves the run configuration from flags, environment,
// and config file. The home directory is required.
func converterConfig() (types.ConverterConfig, error) {
	home := viper.GetString("home")
	if home == "" {
		return types.ConverterConfig{}, errors.New("home directory not set: set HOME or pass --home")
	}

	cfg := types.ConverterConfig{
		HomeDir:    home,
		InputPath:  viper.GetString("input"),
		OutputDir:  viper.GetString("output_dir"),
		WrapWidth:  viper.GetInt("wrap_width"),
		DryRun:     viper.GetBool("dry_run"),
		ReportPath: viper.GetString("report"),
	}
	if cfg.InputPath == "" {
		cfg.InputPath = filepath.Join(home, types.DefaultInputName)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = home
	}
	if cfg.WrapWidth <= 0 {
		cfg.WrapWidth = types.DefaultWrapWidth
	}
	return cfg, nil
}
