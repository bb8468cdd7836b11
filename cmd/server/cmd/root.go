package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags, applied over the environment
	logLevel    string
	logFormat   string
	storeEngine string
	storePath   string

	rootCmd = &cobra.Command{
		Use:   "server",
		Short: "Dance event booking backend",
		Long: `Event booking backend for dance events: venues, packages, events,
users and registrations, persisted in an embedded key-value store.

Without a subcommand the HTTP server is started.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveCmd.RunE(cmd, args)
		},
	}
)

// Execute runs the root command. It is called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error) (default: info)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json, console)")
	rootCmd.PersistentFlags().StringVar(&storeEngine, "store-engine", "", "key-value engine (bolt, postgres) (default: bolt)")
	rootCmd.PersistentFlags().StringVar(&storePath, "store-path", "", "bolt store directory (default: ./data/dancemode)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(dataCmd)
}
