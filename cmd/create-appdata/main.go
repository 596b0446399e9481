// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the create-appdata CLI.
// It converts the unloved-applications spreadsheet export into one AppData
// XML file per publishable application.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the create-appdata CLI. Run without a
// subcommand it performs the conversion.
var rootCmd = &cobra.Command{
	Use:   "create-appdata",
	Short: "Generate AppData files from the unloved applications CSV",
	Long: `create-appdata reads ~/unloved.csv, a spreadsheet export describing desktop
applications that lack upstream AppData, and writes ~/<id>.appdata.xml for
every row that is ready for publication.

Rows above the "desktop file name" header are ignored. Rows without exactly
ten fields are reported as INVALID. Rows with no description, no screenshots,
or a description that is not two or three paragraphs long are skipped.`,
	Args:         cobra.NoArgs,
	RunE:         runConvert,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./create-appdata.yaml or ~/.config/create-appdata/create-appdata.yaml)")
	pf.String("home", "", "base directory for the default input and output (default $HOME)")
	pf.String("input", "", "CSV file to convert (default <home>/unloved.csv)")
	pf.String("output-dir", "", "directory for generated AppData files (default <home>)")
	pf.Int("wrap-width", 0, "maximum description line width (default 74)")
	pf.Bool("dry-run", false, "report what would be written without writing files")
	pf.String("report", "", "write a run report to this path (.json for JSON, otherwise YAML)")

	for key, flag := range map[string]string{
		"home":       "home",
		"input":      "input",
		"output_dir": "output-dir",
		"wrap_width": "wrap-width",
		"dry_run":    "dry-run",
		"report":     "report",
	} {
		_ = viper.BindPFlag(key, pf.Lookup(flag))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("create-appdata")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "create-appdata"))
		}
	}

	viper.SetEnvPrefix("CREATE_APPDATA")
	viper.AutomaticEnv()
	_ = viper.BindEnv("home", "CREATE_APPDATA_HOME", "HOME")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
