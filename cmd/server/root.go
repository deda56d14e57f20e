package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"lawncare/config"
	"lawncare/pkg/logger"
)

var (
	cfg     config.AppConfig
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lawncare",
	Short: "Household lawn care tracker",
	Long: `lawncare keeps a lawn profile, a care schedule, inventory, expenses and
a photo log in memory and serves them over HTTP.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		slog.SetDefault(logger.New(os.Stderr, level, cfg.LogFormat))
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
