// Package cli implements the shelf command line.
package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/shelf/internal/catalog"
	"github.com/theirongolddev/shelf/internal/config"
	"github.com/theirongolddev/shelf/internal/logging"
	"github.com/theirongolddev/shelf/internal/output"
)

var (
	cfgFile     string
	catalogFile string
	logLevel    string

	// Global JSON output flag - inherited by all subcommands
	jsonOutput bool

	cfg           *config.Config
	cat           *catalog.Catalog
	catalogSource string

	// Build information - set by goreleaser via ldflags
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Command annotations read by the root pre-run.
const (
	annotationSkipConfig = "shelf/skip-config"
	annotationCatalog    = "shelf/catalog"
)

var rootCmd = &cobra.Command{
	Use:   "shelf",
	Short: "Browse a product catalog in the terminal",
	Long: `shelf shows a product list and product details. Wide windows show both
side by side; tall windows show one at a time with a Back control.

Quick Start:
  shelf                                 # Open the browser
  shelf list                            # Print the catalog
  shelf show "Product C"                # Print one product
  shelf render --width 60 --height 40   # Print one frame without a terminal`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Annotations:   map[string]string{annotationCatalog: "true"},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[annotationSkipConfig] == "true" {
			return nil
		}
		if err := loadConfig(); err != nil {
			return err
		}
		if cmd.Annotations[annotationCatalog] == "true" {
			return loadCatalog()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd)
	},
}

// Execute runs the root command and reports any error.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors is set so JSON mode can report errors on stdout.
		_ = output.WriteCLIError(os.Stdout, os.Stderr, output.AsCLIError(err), jsonOutput)
		return err
	}
	return nil
}

func loadConfig() error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return output.ConfigError(err)
	}
	if logLevel != "" {
		if _, err := logging.ParseLevel(logLevel); err != nil {
			return output.NewCLIError("invalid --log-level").
				WithErr(err).
				WithCode(output.CodeBadFlag).
				WithHint(fmt.Sprintf("Use one of %v", config.LogLevels))
		}
		loaded.Log.Level = logLevel
	}
	cfg = loaded
	return nil
}

func loadCatalog() error {
	path := cfg.CatalogFile
	if catalogFile != "" {
		path = config.ExpandHome(catalogFile)
	}
	loaded, err := catalog.Load(path)
	if err != nil {
		return output.CatalogError(err)
	}
	cat = loaded
	catalogSource = path
	if catalogSource == "" {
		catalogSource = "builtin"
	}
	return nil
}

// GetFormatter returns a formatter for the current output mode writing to
// the command's stdout.
func GetFormatter(cmd *cobra.Command) *output.Formatter {
	return output.New(
		output.WithFormat(output.DetectFormat(jsonOutput)),
		output.WithWriter(cmd.OutOrStdout()),
	)
}

// goVersion returns the current Go runtime version.
func goVersion() string {
	return runtime.Version()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/shelf/config.toml)")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "catalog file (.toml, .yaml or .md); overrides catalog_file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (machine-readable)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newBrowseCmd(),
		newListCmd(),
		newShowCmd(),
		newRenderCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
}
