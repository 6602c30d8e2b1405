package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tagdex/tagdex/internal/facet"
	"github.com/tagdex/tagdex/internal/logging"
	"github.com/tagdex/tagdex/internal/version"
)

var (
	flagSource   string
	flagGlobs    []string
	flagDepth    int
	flagLogLevel string
	flagPretty   bool
)

var rootCmd = &cobra.Command{
	Use:   "tagdex",
	Short: "Generate keyword index pages from tagged documentation",
	Long: `Tagdex extracts tagged user documentation from source trees and builds a
browsable directory of cross-linked index pages: one page for every useful
combination of keywords, each listing its narrower sub-indices and the
documents matching the selection.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("tagdex %s\n", version.String()))

	defaultSource := "."
	if env := os.Getenv("TAGDEX_SOURCE"); env != "" {
		defaultSource = env
	}
	rootCmd.PersistentFlags().StringVarP(&flagSource, "source", "s", defaultSource, "Source directory to scan")
	rootCmd.PersistentFlags().StringSliceVarP(&flagGlobs, "glob", "g", []string{"*.h"}, "Glob patterns, relative to the source directory")
	rootCmd.PersistentFlags().IntVarP(&flagDepth, "depth", "d", facet.DefaultMaxDepth, "Maximum number of keywords per index")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagPretty, "pretty", true, "Human-readable log output")
}

func newLogger(cmd *cobra.Command) zerolog.Logger {
	return logging.New(flagLogLevel, flagPretty, cmd.ErrOrStderr())
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
