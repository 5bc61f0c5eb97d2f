package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/internal/logger"
	"github.com/joshuapare/pngkit/pkg/png"
	"github.com/joshuapare/pngkit/pkg/types"
)

var (
	// Global flags
	verbose      bool
	quiet        bool
	jsonOut      bool
	limitsPreset string
	limitsFile   string
)

var rootCmd = &cobra.Command{
	Use:   "pngctl",
	Short: "Inspect and edit PNG chunks",
	Long: `pngctl reads and rewrites the chunk stream of PNG files. It can hide
messages in private chunks, read them back, remove chunks, print the chunk
layout and validate files against size limits.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&limitsPreset, "limits", "default", "Limits preset to use (default, strict, relaxed)")
	rootCmd.PersistentFlags().
		StringVar(&limitsFile, "limits-file", "", "YAML file with limits (overrides --limits)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

func initLogging() {
	switch {
	case quiet:
		logger.Init(logger.Options{Enabled: false})
	case verbose:
		logger.Init(logger.Options{Enabled: true, Level: slog.LevelDebug})
	default:
		logger.Init(logger.Options{Enabled: true, Level: slog.LevelWarn})
	}
}

// resolveLimits returns the limits selected by --limits-file or --limits.
func resolveLimits() (png.Limits, error) {
	if limitsFile != "" {
		return png.LoadLimits(limitsFile)
	}
	lim, ok := types.LimitsPreset(limitsPreset)
	if !ok {
		return png.Limits{}, fmt.Errorf(
			"unknown limits preset: %s (must be default, strict, or relaxed)", limitsPreset)
	}
	return lim, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
