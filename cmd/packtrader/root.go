// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"packtrader/internal/config"
	"packtrader/internal/issue"
	"packtrader/internal/registry"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// loader is the process-wide registry, built once during initialization.
	loader *registry.Loader
	// appConfig is the loaded configuration backing the registry.
	appConfig *config.Config

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "packtrader",
		Short: "Discover, inspect and index content packages",
		Long: TitleStyle.Render("packtrader") + SubtitleStyle.Render(" - Discover, inspect and index content packages") + `

packtrader manages installed content packages: directory trees of assets
described by a metadata.desktop or metadata.json descriptor. Packages are
grouped by format, and each format's layout rules come from a structure
module resolved through the plugin search path.

` + SubtitleStyle.Render("Examples:") + `
  packtrader list -t org.example.theme   List installed packages of a format
  packtrader list-types                  List known package formats
  packtrader show ./my-package           Show a package's metadata
  packtrader generate-index -p <dir>     Write a binary plugin index`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/packtrader/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(listTypesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(generateIndexCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads the config file and builds the process-wide registry.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		renderIssue(issue.ConfigLoadFailedId)
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		cfg = config.DefaultConfig()
	}

	if cfg.Verbose {
		verbose = true
	}

	logger := log.New(os.Stderr)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	appConfig = cfg
	loader = registry.New(
		registry.WithConfig(cfg),
		registry.WithLogger(logger),
	)
	registry.SetLoader(loader)
}

// renderIssue prints the catalog entry for id to stderr.
func renderIssue(id issue.Id) {
	rendered, err := issue.Get(id).Render("dark")
	if err != nil {
		return
	}
	fmt.Fprint(os.Stderr, rendered)
}
